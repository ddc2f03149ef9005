package evaluation

import (
	"fmt"
	"sort"
)

// Theme is one of the six Holland occupational themes.
type Theme string

const (
	ThemeRealistic     Theme = "Realistic"
	ThemeInvestigative Theme = "Investigative"
	ThemeArtistic      Theme = "Artistic"
	ThemeSocial        Theme = "Social"
	ThemeEnterprising  Theme = "Enterprising"
	ThemeConventional  Theme = "Conventional"
)

var themeOrder = []Theme{
	ThemeRealistic,
	ThemeInvestigative,
	ThemeArtistic,
	ThemeSocial,
	ThemeEnterprising,
	ThemeConventional,
}

// riasecThemeCounts holds the number of bank items per theme. Counts are
// uneven: the bank spans ids 1..48 with id 37 absent, so Enterprising has 7
// items where the other themes have 8. Normalization must use these counts,
// not an assumed uniform 8.
var riasecThemeCounts = func() map[Theme]int {
	counts := make(map[Theme]int, len(themeOrder))
	for _, q := range RiasecBank {
		counts[Theme(q.Tag)]++
	}
	return counts
}()

// ThemeScore is the scored outcome for one theme. Normalized rebases the raw
// sum onto a zero floor (raw minus the theme's minimum possible score); its
// ceiling is the theme's item count times 4.
type ThemeScore struct {
	Theme          Theme  `bson:"theme" json:"theme"`
	Raw            int    `bson:"raw" json:"raw"`
	Normalized     int    `bson:"normalized" json:"normalized"`
	Interpretation string `bson:"interpretation" json:"interpretation"`
}

// TopTheme is a top-3 theme enriched with its full descriptive paragraph.
type TopTheme struct {
	Theme       Theme  `bson:"theme" json:"theme"`
	Score       int    `bson:"score" json:"score"`
	Description string `bson:"description" json:"description"`
}

// RiasecResult is the complete RIASEC evaluation output. AllScores is always
// sorted by normalized score descending; HollandCode is derived from the
// first three entries of that ordering.
type RiasecResult struct {
	Responses      Responses    `bson:"responses" json:"responses"`
	AllScores      []ThemeScore `bson:"all_scores" json:"all_scores"`
	HollandCode    string       `bson:"holland_code" json:"holland_code"`
	TopThreeThemes []TopTheme   `bson:"top_three_themes" json:"top_three_themes"`
}

func riasecInterpretation(normalized int, summary string) string {
	var level string
	switch {
	case normalized >= 25:
		level = "High to very high"
	case normalized >= 17:
		level = "Moderate to high"
	case normalized >= 9:
		level = "Low to moderate"
	default:
		level = "Very low"
	}
	return fmt.Sprintf("%s interest in %s", level, summary)
}

// EvaluateRiasec scores a RIASEC response set. Theme sums are rebased by each
// theme's own item count and ranked with a stable sort, so tied themes keep
// the canonical R-I-A-S-E-C order. The Holland code concatenates the first
// letter of the top three themes, most to least preferred.
func EvaluateRiasec(responses Responses) RiasecResult {
	raw := make(map[Theme]int, len(themeOrder))
	for _, q := range RiasecBank {
		v, ok := responses.Answer(q.ID)
		if !ok {
			continue
		}
		raw[Theme(q.Tag)] += v
	}

	scores := make([]ThemeScore, 0, len(themeOrder))
	for _, theme := range themeOrder {
		normalized := raw[theme] - riasecThemeCounts[theme]
		scores = append(scores, ThemeScore{
			Theme:          theme,
			Raw:            raw[theme],
			Normalized:     normalized,
			Interpretation: riasecInterpretation(normalized, riasecThemes[theme].Summary),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Normalized > scores[j].Normalized
	})

	code := ""
	topThree := make([]TopTheme, 0, 3)
	for _, s := range scores[:3] {
		code += string(s.Theme[0])
		topThree = append(topThree, TopTheme{
			Theme:       s.Theme,
			Score:       s.Normalized,
			Description: riasecThemes[s.Theme].Description,
		})
	}

	return RiasecResult{
		Responses:      responses,
		AllScores:      scores,
		HollandCode:    code,
		TopThreeThemes: topThree,
	}
}
