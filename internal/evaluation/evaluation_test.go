package evaluation

import (
	"fmt"
	"reflect"
	"testing"
)

// bankResponses builds a deterministic but non-uniform response set.
func bankResponses(bank []Question) Responses {
	responses := Responses{}
	for i, q := range bank {
		responses[fmt.Sprintf("q%d", q.ID)] = (i*7)%5 + 1
	}
	return responses
}

func TestEvaluatorsAreDeterministic(t *testing.T) {
	t.Run("16p", func(t *testing.T) {
		responses := bankResponses(SixteenPBank)
		if !reflect.DeepEqual(EvaluateSixteenP(responses), EvaluateSixteenP(responses)) {
			t.Error("Repeated 16P evaluations differ")
		}
	})
	t.Run("bigfive", func(t *testing.T) {
		responses := bankResponses(BigFiveBank)
		if !reflect.DeepEqual(EvaluateBigFive(responses), EvaluateBigFive(responses)) {
			t.Error("Repeated Big Five evaluations differ")
		}
	})
	t.Run("high5", func(t *testing.T) {
		responses := bankResponses(High5Bank)
		if !reflect.DeepEqual(EvaluateHigh5(responses), EvaluateHigh5(responses)) {
			t.Error("Repeated HIGH5 evaluations differ")
		}
	})
	t.Run("riasec", func(t *testing.T) {
		responses := bankResponses(RiasecBank)
		if !reflect.DeepEqual(EvaluateRiasec(responses), EvaluateRiasec(responses)) {
			t.Error("Repeated RIASEC evaluations differ")
		}
	})
}

func TestBankShapes(t *testing.T) {
	t.Run("16p has 7 items per dimension", func(t *testing.T) {
		counts := map[string]int{}
		for _, q := range SixteenPBank {
			counts[q.Tag]++
		}
		if len(SixteenPBank) != 35 {
			t.Errorf("Expected 35 items, got %d", len(SixteenPBank))
		}
		for _, code := range dimensionOrder {
			if counts[string(code)] != 7 {
				t.Errorf("Dimension %s: expected 7 items, got %d", code, counts[string(code)])
			}
		}
	})

	t.Run("bigfive has 10 items per trait", func(t *testing.T) {
		counts := map[string]int{}
		reversed := map[string]int{}
		for _, q := range BigFiveBank {
			counts[q.Tag]++
			if q.Keying == KeyReverse {
				reversed[q.Tag]++
			}
		}
		if len(BigFiveBank) != 50 {
			t.Errorf("Expected 50 items, got %d", len(BigFiveBank))
		}
		for _, code := range traitOrder {
			if counts[string(code)] != 10 {
				t.Errorf("Trait %s: expected 10 items, got %d", code, counts[string(code)])
			}
			if reversed[string(code)] != 5 {
				t.Errorf("Trait %s: expected 5 negative-keyed items, got %d", code, reversed[string(code)])
			}
		}
	})

	t.Run("high5 has 6 items per strength and 5 strengths per domain", func(t *testing.T) {
		counts := map[string]int{}
		for _, q := range High5Bank {
			if q.Keying != KeyForward {
				t.Errorf("Item %d: HIGH5 items are never reverse-keyed", q.ID)
			}
			counts[q.Tag]++
		}
		if len(High5Bank) != 120 {
			t.Errorf("Expected 120 items, got %d", len(High5Bank))
		}
		domainCounts := map[StrengthDomain]int{}
		for _, name := range high5StrengthOrder {
			if counts[name] != 6 {
				t.Errorf("Strength %s: expected 6 items, got %d", name, counts[name])
			}
			domainCounts[high5Strengths[name].Domain]++
		}
		for _, domain := range high5DomainOrder {
			if domainCounts[domain] != 5 {
				t.Errorf("Domain %s: expected 5 strengths, got %d", domain, domainCounts[domain])
			}
		}
	})
}

func TestResponseKeyFormat(t *testing.T) {
	responses := Responses{"q7": 4, "7": 1, "question7": 2}
	if v, ok := responses.Answer(7); !ok || v != 4 {
		t.Errorf("Expected Answer(7) to read the q7 key, got %d/%v", v, ok)
	}
	if _, ok := responses.Answer(1); ok {
		t.Error("Answer must only match the q{id} key form")
	}
}
