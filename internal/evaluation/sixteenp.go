package evaluation

import "fmt"

// DimensionCode identifies one of the five 16 Personalities dimensions.
type DimensionCode string

const (
	DimEI DimensionCode = "EI"
	DimSN DimensionCode = "SN"
	DimTF DimensionCode = "TF"
	DimJP DimensionCode = "JP"
	DimAT DimensionCode = "AT"
)

// dimensionOrder fixes the display order and the letter order of the type
// code (EI, SN, TF, JP build the four-letter code; AT is the variant suffix).
var dimensionOrder = []DimensionCode{DimEI, DimSN, DimTF, DimJP, DimAT}

const (
	sixteenPFloor = 7  // minimum raw sum with 7 answered items
	sixteenPRange = 28 // 7 items spanning 1..5 each
)

// DimensionScore is the scored outcome for one dimension.
type DimensionScore struct {
	Dimension         DimensionCode `bson:"dimension" json:"dimension"`
	Name              string        `bson:"name" json:"name"`
	Raw               int           `bson:"raw" json:"raw"`
	Normalized        int           `bson:"normalized" json:"normalized"`
	IsDominant        bool          `bson:"is_dominant" json:"is_dominant"`
	Preference        string        `bson:"preference" json:"preference"`
	PreferenceCode    string        `bson:"preference_code" json:"preference_code"`
	ClarityPercentage int           `bson:"clarity_percentage" json:"clarity_percentage"`
	ClarityBand       string        `bson:"clarity_band" json:"clarity_band"`
}

// PersonalityType is the derived type classification.
type PersonalityType struct {
	Code        string `bson:"code" json:"code"`
	Variant     string `bson:"variant" json:"variant"`
	FullCode    string `bson:"full_code" json:"full_code"`
	Description string `bson:"description" json:"description"`
}

// PreferenceEntry pairs a dimension with its formatted score and the
// description of the pole the respondent landed on.
type PreferenceEntry struct {
	Dimension   string `bson:"dimension" json:"dimension"`
	Score       string `bson:"score" json:"score"`
	Description string `bson:"description" json:"description"`
}

// SixteenPResult is the complete 16 Personalities evaluation output.
type SixteenPResult struct {
	Responses       Responses         `bson:"responses" json:"responses"`
	Dimensions      []DimensionScore  `bson:"dimensions" json:"dimensions"`
	PersonalityType PersonalityType   `bson:"personality_type" json:"personality_type"`
	Preferences     []PreferenceEntry `bson:"preferences" json:"preferences"`
}

// clarityBands maps distance from the 50% tie point to a confidence label.
// Ordered by upper bound, inclusive.
var clarityBands = []struct {
	Max   int
	Label string
}{
	{5, "Slight"},
	{15, "Moderate"},
	{25, "Clear"},
	{50, "Very Clear"},
}

func clarityBand(pct int) string {
	for _, b := range clarityBands {
		if pct <= b.Max {
			return b.Label
		}
	}
	return clarityBands[len(clarityBands)-1].Label
}

// EvaluateSixteenP scores a 16 Personalities response set. Missing answers
// are skipped; the normalization constants assume all 7 items per dimension
// were answered, so partial input yields out-of-range but well-formed scores.
func EvaluateSixteenP(responses Responses) SixteenPResult {
	raw := make(map[DimensionCode]int, len(dimensionOrder))
	for _, q := range SixteenPBank {
		v, ok := responses.Answer(q.ID)
		if !ok {
			continue
		}
		if q.Keying == KeyReverse {
			v = reverseScore(v)
		}
		raw[DimensionCode(q.Tag)] += v
	}

	dimensions := make([]DimensionScore, 0, len(dimensionOrder))
	poles := make(map[DimensionCode]PoleMeta, len(dimensionOrder))
	preferences := make([]PreferenceEntry, 0, len(dimensionOrder))
	for _, code := range dimensionOrder {
		meta := sixteenPDimensions[code]
		normalized := roundScore(float64(raw[code]-sixteenPFloor) / sixteenPRange * 100)

		// 50 is the tie point; ties go to the dominant pole.
		dominant := normalized >= 50
		pole := meta.Recessive
		if dominant {
			pole = meta.Dominant
		}
		poles[code] = pole

		clarity := normalized - 50
		if clarity < 0 {
			clarity = -clarity
		}

		dimensions = append(dimensions, DimensionScore{
			Dimension:         code,
			Name:              meta.Name,
			Raw:               raw[code],
			Normalized:        normalized,
			IsDominant:        dominant,
			Preference:        pole.Label,
			PreferenceCode:    pole.Code,
			ClarityPercentage: clarity,
			ClarityBand:       clarityBand(clarity),
		})
		preferences = append(preferences, PreferenceEntry{
			Dimension:   meta.Name,
			Score:       fmt.Sprintf("%d%%", normalized),
			Description: pole.Description,
		})
	}

	code := poles[DimEI].Code + poles[DimSN].Code + poles[DimTF].Code + poles[DimJP].Code
	variant := poles[DimAT]
	fullCode := code + "-" + variant.Code
	description := fmt.Sprintf(
		"Your profile combines %s, %s, %s and %s tendencies, carried with a %s identity.",
		poles[DimEI].Label, poles[DimSN].Label, poles[DimTF].Label, poles[DimJP].Label, variant.Label,
	)

	return SixteenPResult{
		Responses:  responses,
		Dimensions: dimensions,
		PersonalityType: PersonalityType{
			Code:        code,
			Variant:     variant.Label,
			FullCode:    fullCode,
			Description: description,
		},
		Preferences: preferences,
	}
}
