package evaluation

import "sort"

// StrengthDomain groups the twenty HIGH5 strengths into four domains.
type StrengthDomain string

const (
	DomainDoing      StrengthDomain = "Doing"
	DomainFeeling    StrengthDomain = "Feeling"
	DomainMotivating StrengthDomain = "Motivating"
	DomainThinking   StrengthDomain = "Thinking"
)

var high5DomainOrder = []StrengthDomain{DomainDoing, DomainFeeling, DomainMotivating, DomainThinking}

// Rank categories: the ranked list partitions into four tiers of five.
const (
	CategoryFocus    = "FOCUS"
	CategoryLeverage = "LEVERAGE"
	CategoryNavigate = "NAVIGATE"
	CategoryAvoid    = "AVOID"
)

var high5Categories = []struct {
	MaxRank int
	Label   string
}{
	{5, CategoryFocus},
	{10, CategoryLeverage},
	{15, CategoryNavigate},
	{20, CategoryAvoid},
}

func high5Category(rank int) string {
	for _, c := range high5Categories {
		if rank <= c.MaxRank {
			return c.Label
		}
	}
	return CategoryAvoid
}

// StrengthScore is one ranked strength in the full 20-entry list.
type StrengthScore struct {
	Strength   string         `bson:"strength" json:"strength"`
	Domain     StrengthDomain `bson:"domain" json:"domain"`
	RawAverage float64        `bson:"raw_average" json:"raw_average"`
	Normalized int            `bson:"normalized" json:"normalized"`
	Rank       int            `bson:"rank" json:"rank"`
	Category   string         `bson:"category" json:"category"`
}

// TopStrength is a top-5 strength enriched with its static metadata.
type TopStrength struct {
	Strength           string         `bson:"strength" json:"strength"`
	Domain             StrengthDomain `bson:"domain" json:"domain"`
	Score              int            `bson:"score" json:"score"`
	CoreCharacteristic string         `bson:"core_characteristic" json:"core_characteristic"`
	Energizers         string         `bson:"energizers" json:"energizers"`
	Drainers           string         `bson:"drainers" json:"drainers"`
	Description        string         `bson:"description" json:"description"`
}

// DomainBreakdown counts top-5 strengths per domain.
type DomainBreakdown struct {
	Domain     StrengthDomain `bson:"domain" json:"domain"`
	Count      int            `bson:"count" json:"count"`
	Strengths  []string       `bson:"strengths" json:"strengths"`
	Percentage float64        `bson:"percentage" json:"percentage"`
}

// High5Result is the complete HIGH5 evaluation output.
type High5Result struct {
	Responses       Responses         `bson:"responses" json:"responses"`
	AllStrengths    []StrengthScore   `bson:"all_strengths" json:"all_strengths"`
	TopFive         []TopStrength     `bson:"top_five" json:"top_five"`
	DomainBreakdown []DomainBreakdown `bson:"domain_breakdown" json:"domain_breakdown"`
}

// EvaluateHigh5 scores a HIGH5 response set. Unlike the other inventories the
// raw score per strength is the arithmetic mean of its answered items, so the
// aggregate stays on the 1..5 item scale regardless of how many of a
// strength's items were answered. All 20 strengths are ranked by normalized
// score descending with a stable sort; ties keep the bank's strength order.
func EvaluateHigh5(responses Responses) High5Result {
	sums := make(map[string]int, len(high5StrengthOrder))
	counts := make(map[string]int, len(high5StrengthOrder))
	for _, q := range High5Bank {
		v, ok := responses.Answer(q.ID)
		if !ok {
			continue
		}
		sums[q.Tag] += v
		counts[q.Tag]++
	}

	all := make([]StrengthScore, 0, len(high5StrengthOrder))
	for _, name := range high5StrengthOrder {
		var mean float64
		if counts[name] > 0 {
			mean = float64(sums[name]) / float64(counts[name])
		}
		all = append(all, StrengthScore{
			Strength:   name,
			Domain:     high5Strengths[name].Domain,
			RawAverage: mean,
			Normalized: roundScore((mean - 1) / 4 * 100),
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Normalized > all[j].Normalized
	})
	for i := range all {
		all[i].Rank = i + 1
		all[i].Category = high5Category(i + 1)
	}

	topFive := make([]TopStrength, 0, 5)
	for _, s := range all[:5] {
		meta := high5Strengths[s.Strength]
		topFive = append(topFive, TopStrength{
			Strength:           s.Strength,
			Domain:             meta.Domain,
			Score:              s.Normalized,
			CoreCharacteristic: meta.CoreCharacteristic,
			Energizers:         meta.Energizers,
			Drainers:           meta.Drainers,
			Description:        meta.Description,
		})
	}

	breakdown := make([]DomainBreakdown, 0, len(high5DomainOrder))
	for _, domain := range high5DomainOrder {
		entry := DomainBreakdown{Domain: domain, Strengths: []string{}}
		for _, s := range topFive {
			if s.Domain == domain {
				entry.Count++
				entry.Strengths = append(entry.Strengths, s.Strength)
			}
		}
		entry.Percentage = float64(entry.Count) / 5 * 100
		breakdown = append(breakdown, entry)
	}

	return High5Result{
		Responses:       responses,
		AllStrengths:    all,
		TopFive:         topFive,
		DomainBreakdown: breakdown,
	}
}
