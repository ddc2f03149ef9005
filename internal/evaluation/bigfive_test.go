package evaluation

import (
	"fmt"
	"testing"
)

// setTraitScores assigns answers so the trait's post-reversal item scores
// match the given slice, in bank order.
func setTraitScores(responses Responses, trait TraitCode, scores []int) {
	i := 0
	for _, q := range BigFiveBank {
		if q.Tag != string(trait) || i >= len(scores) {
			continue
		}
		answer := scores[i]
		if q.Keying == KeyReverse {
			answer = 6 - scores[i]
		}
		responses[fmt.Sprintf("q%d", q.ID)] = answer
		i++
	}
}

func repeatScore(score, n int) []int {
	scores := make([]int, n)
	for i := range scores {
		scores[i] = score
	}
	return scores
}

func TestBigFiveLevelBoundaries(t *testing.T) {
	testCases := []struct {
		percentile int
		expected   string
	}{
		{0, "Very Low"},
		{20, "Very Low"},
		{21, "Low"},
		{40, "Low"},
		{41, "Moderate"},
		{60, "Moderate"},
		{61, "High"},
		{80, "High"},
		{81, "Very High"},
		{100, "Very High"},
		{113, "Very High"}, // out-of-formula-range input still lands somewhere
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("p%d", tc.percentile), func(t *testing.T) {
			if got := bigFiveLevel(tc.percentile); got != tc.expected {
				t.Errorf("bigFiveLevel(%d) expected %s, got %s", tc.percentile, tc.expected, got)
			}
		})
	}
}

func TestBigFiveRawSumBandEdges(t *testing.T) {
	testCases := []struct {
		raw           int
		expectedPct   int
		expectedLevel string
	}{
		{18, 20, "Very Low"},
		{19, 23, "Low"}, // 22.5 rounds up
		{26, 40, "Low"},
		{27, 43, "Moderate"},
		{34, 60, "Moderate"},
		{35, 63, "High"},
		{42, 80, "High"},
		{43, 83, "Very High"},
		{50, 100, "Very High"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("raw%d", tc.raw), func(t *testing.T) {
			// 10 item scores summing to the target raw value.
			scores := repeatScore(1, 10)
			remaining := tc.raw - 10
			for i := 0; remaining > 0; i++ {
				add := remaining
				if add > 4 {
					add = 4
				}
				scores[i] += add
				remaining -= add
			}

			responses := Responses{}
			setTraitScores(responses, TraitO, scores)
			result := EvaluateBigFive(responses)

			o := result.Traits[0]
			if o.Trait != TraitO {
				t.Fatalf("Expected Openness first, got %s", o.Trait)
			}
			if o.Raw != tc.raw {
				t.Fatalf("Expected raw %d, got %d", tc.raw, o.Raw)
			}
			if o.Percentile != tc.expectedPct {
				t.Errorf("Expected percentile %d, got %d", tc.expectedPct, o.Percentile)
			}
			if o.Level != tc.expectedLevel {
				t.Errorf("Expected level %s, got %s", tc.expectedLevel, o.Level)
			}
		})
	}
}

func TestBigFiveFixedTraitOrder(t *testing.T) {
	responses := Responses{}
	for _, trait := range traitOrder {
		setTraitScores(responses, trait, repeatScore(3, 10))
	}
	result := EvaluateBigFive(responses)

	expectedNames := []string{"Openness", "Conscientiousness", "Extraversion", "Agreeableness", "Emotional Stability"}
	if len(result.Traits) != len(expectedNames) {
		t.Fatalf("Expected %d traits, got %d", len(expectedNames), len(result.Traits))
	}
	for i, name := range expectedNames {
		trait := result.Traits[i]
		if trait.Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, trait.Name)
		}
		if trait.Raw != 30 || trait.Percentile != 50 || trait.Level != "Moderate" {
			t.Errorf("%s: expected raw 30 / percentile 50 / Moderate, got %d / %d / %s",
				name, trait.Raw, trait.Percentile, trait.Level)
		}
		if trait.Description != bigFiveDescriptions[trait.Trait]["Moderate"] {
			t.Errorf("%s: description does not match the Moderate lookup entry", name)
		}
	}
}

func TestBigFiveNegativeKeyingReverses(t *testing.T) {
	// q26 is a negative-keyed Openness item: strong disagreement scores high.
	result := EvaluateBigFive(Responses{"q26": 1})
	if result.Traits[0].Raw != 5 {
		t.Errorf("Expected reversed raw 5 from a 1 on a negative item, got %d", result.Traits[0].Raw)
	}

	result = EvaluateBigFive(Responses{"q26": 5})
	if result.Traits[0].Raw != 1 {
		t.Errorf("Expected reversed raw 1 from a 5 on a negative item, got %d", result.Traits[0].Raw)
	}
}

func TestBigFiveEmptyResponses(t *testing.T) {
	result := EvaluateBigFive(Responses{})
	if len(result.Traits) != 5 {
		t.Fatalf("Expected 5 traits, got %d", len(result.Traits))
	}
	for _, trait := range result.Traits {
		if trait.Raw != 0 {
			t.Errorf("%s: expected raw 0, got %d", trait.Name, trait.Raw)
		}
		if trait.Percentile != -25 {
			t.Errorf("%s: expected percentile -25, got %d", trait.Name, trait.Percentile)
		}
		if trait.Level != "Very Low" {
			t.Errorf("%s: expected Very Low, got %s", trait.Name, trait.Level)
		}
	}
}
