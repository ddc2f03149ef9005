package evaluation

// TraitCode identifies one of the five OCEAN traits. ES stands for
// Emotional Stability (the inverse framing of Neuroticism).
type TraitCode string

const (
	TraitO  TraitCode = "O"
	TraitC  TraitCode = "C"
	TraitE  TraitCode = "E"
	TraitA  TraitCode = "A"
	TraitES TraitCode = "ES"
)

// traitOrder fixes the display order everywhere trait scores appear.
var traitOrder = []TraitCode{TraitO, TraitC, TraitE, TraitA, TraitES}

const (
	bigFiveFloor = 10 // minimum raw sum with 10 answered items
	bigFiveRange = 40 // 10 items spanning 1..5 each
)

// TraitScore is the scored outcome for one trait.
type TraitScore struct {
	Trait       TraitCode `bson:"trait" json:"trait"`
	Name        string    `bson:"name" json:"name"`
	Raw         int       `bson:"raw" json:"raw"`
	Percentile  int       `bson:"percentile" json:"percentile"`
	Level       string    `bson:"level" json:"level"`
	Description string    `bson:"description" json:"description"`
}

// BigFiveResult is the complete Big Five evaluation output.
type BigFiveResult struct {
	Responses Responses    `bson:"responses" json:"responses"`
	Traits    []TraitScore `bson:"traits" json:"traits"`
}

// bigFiveLevels maps a percentile to an interpretation level. Ordered by
// upper bound, inclusive; anything above the last bound is Very High.
var bigFiveLevels = []struct {
	Max   int
	Label string
}{
	{20, "Very Low"},
	{40, "Low"},
	{60, "Moderate"},
	{80, "High"},
}

func bigFiveLevel(percentile int) string {
	for _, b := range bigFiveLevels {
		if percentile <= b.Max {
			return b.Label
		}
	}
	return "Very High"
}

// EvaluateBigFive scores a Big Five response set. Negative-keyed answers are
// reversed before summing; missing answers are skipped. The percentile
// formula assumes all 10 items per trait were answered.
func EvaluateBigFive(responses Responses) BigFiveResult {
	raw := make(map[TraitCode]int, len(traitOrder))
	for _, q := range BigFiveBank {
		v, ok := responses.Answer(q.ID)
		if !ok {
			continue
		}
		if q.Keying == KeyReverse {
			v = reverseScore(v)
		}
		raw[TraitCode(q.Tag)] += v
	}

	traits := make([]TraitScore, 0, len(traitOrder))
	for _, code := range traitOrder {
		percentile := roundScore(float64(raw[code]-bigFiveFloor) / bigFiveRange * 100)
		level := bigFiveLevel(percentile)
		traits = append(traits, TraitScore{
			Trait:       code,
			Name:        bigFiveTraitNames[code],
			Raw:         raw[code],
			Percentile:  percentile,
			Level:       level,
			Description: bigFiveDescriptions[code][level],
		})
	}

	return BigFiveResult{Responses: responses, Traits: traits}
}
