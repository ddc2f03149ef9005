package evaluation

import (
	"fmt"
	"sort"
	"testing"
)

func setThemeAnswers(responses Responses, theme Theme, value int) {
	for _, q := range RiasecBank {
		if q.Tag == string(theme) {
			responses[fmt.Sprintf("q%d", q.ID)] = value
		}
	}
}

func TestRiasecBankShape(t *testing.T) {
	if len(RiasecBank) != 47 {
		t.Fatalf("Expected 47 bank items, got %d", len(RiasecBank))
	}
	for _, q := range RiasecBank {
		if q.ID == 37 {
			t.Error("Id 37 must be absent from the bank")
		}
	}
	expectedCounts := map[Theme]int{
		ThemeRealistic:     8,
		ThemeInvestigative: 8,
		ThemeArtistic:      8,
		ThemeSocial:        8,
		ThemeEnterprising:  7,
		ThemeConventional:  8,
	}
	for theme, expected := range expectedCounts {
		if riasecThemeCounts[theme] != expected {
			t.Errorf("Theme %s: expected %d items, got %d", theme, expected, riasecThemeCounts[theme])
		}
	}
}

func TestRiasecHollandCodeComposition(t *testing.T) {
	responses := Responses{}
	for _, q := range RiasecBank {
		responses[fmt.Sprintf("q%d", q.ID)] = 1
	}
	setThemeAnswers(responses, ThemeArtistic, 5)
	setThemeAnswers(responses, ThemeSocial, 4)
	setThemeAnswers(responses, ThemeInvestigative, 3)

	result := EvaluateRiasec(responses)

	if result.HollandCode != "ASI" {
		t.Fatalf("Expected Holland code ASI, got %s", result.HollandCode)
	}
	if len(result.HollandCode) != 3 {
		t.Fatalf("Holland code must be exactly 3 characters, got %q", result.HollandCode)
	}
	seen := map[byte]bool{}
	for i := 0; i < 3; i++ {
		if seen[result.HollandCode[i]] {
			t.Errorf("Holland code letters must be distinct, got %s", result.HollandCode)
		}
		seen[result.HollandCode[i]] = true
	}

	expectedScores := map[Theme]int{
		ThemeArtistic:      32, // 8*5 - 8
		ThemeSocial:        24, // 8*4 - 8
		ThemeInvestigative: 16, // 8*3 - 8
		ThemeRealistic:     0,
		ThemeEnterprising:  0,
		ThemeConventional:  0,
	}
	expectedLevels := map[Theme]string{
		ThemeArtistic:      "High to very high",
		ThemeSocial:        "Moderate to high",
		ThemeInvestigative: "Low to moderate",
		ThemeRealistic:     "Very low",
	}
	for _, s := range result.AllScores {
		if s.Normalized != expectedScores[s.Theme] {
			t.Errorf("Theme %s: expected normalized %d, got %d", s.Theme, expectedScores[s.Theme], s.Normalized)
		}
		if level, ok := expectedLevels[s.Theme]; ok {
			expected := fmt.Sprintf("%s interest in %s", level, riasecThemes[s.Theme].Summary)
			if s.Interpretation != expected {
				t.Errorf("Theme %s: expected interpretation %q, got %q", s.Theme, expected, s.Interpretation)
			}
		}
	}

	if len(result.TopThreeThemes) != 3 {
		t.Fatalf("Expected 3 top themes, got %d", len(result.TopThreeThemes))
	}
	for _, top := range result.TopThreeThemes {
		if top.Description != riasecThemes[top.Theme].Description {
			t.Errorf("Theme %s: top entry should carry the full theme description", top.Theme)
		}
	}
}

func TestRiasecTieBreakIsStable(t *testing.T) {
	responses := Responses{}
	for _, q := range RiasecBank {
		responses[fmt.Sprintf("q%d", q.ID)] = 3
	}

	first := EvaluateRiasec(responses)
	// The five 8-item themes tie; Enterprising trails with its 7 items.
	for _, s := range first.AllScores[:5] {
		if s.Normalized != 16 {
			t.Errorf("Theme %s: expected normalized 16, got %d", s.Theme, s.Normalized)
		}
	}
	last := first.AllScores[5]
	if last.Theme != ThemeEnterprising || last.Normalized != 14 {
		t.Errorf("Expected Enterprising last at 14, got %s at %d", last.Theme, last.Normalized)
	}

	// Ties resolve consistently on every evaluation.
	for i := 0; i < 10; i++ {
		again := EvaluateRiasec(responses)
		if again.HollandCode != first.HollandCode {
			t.Fatalf("Tie break is unstable: %s vs %s", again.HollandCode, first.HollandCode)
		}
		for j := range again.AllScores {
			if again.AllScores[j].Theme != first.AllScores[j].Theme {
				t.Fatalf("Tie ordering changed between evaluations at position %d", j)
			}
		}
	}
}

func TestRiasecSortIsIdempotent(t *testing.T) {
	responses := Responses{}
	for i, q := range RiasecBank {
		responses[fmt.Sprintf("q%d", q.ID)] = (i*3)%5 + 1
	}
	result := EvaluateRiasec(responses)

	resorted := make([]ThemeScore, len(result.AllScores))
	copy(resorted, result.AllScores)
	sort.SliceStable(resorted, func(i, j int) bool {
		return resorted[i].Normalized > resorted[j].Normalized
	})
	for i := range resorted {
		if resorted[i].Theme != result.AllScores[i].Theme {
			t.Errorf("Position %d: re-sorting changed the order (%s vs %s)",
				i, resorted[i].Theme, result.AllScores[i].Theme)
		}
	}
}

func TestRiasecEmptyResponses(t *testing.T) {
	result := EvaluateRiasec(Responses{})

	if len(result.AllScores) != 6 {
		t.Fatalf("Expected 6 theme scores, got %d", len(result.AllScores))
	}
	for _, s := range result.AllScores {
		if s.Raw != 0 {
			t.Errorf("Theme %s: expected raw 0, got %d", s.Theme, s.Raw)
		}
		if s.Normalized != -riasecThemeCounts[s.Theme] {
			t.Errorf("Theme %s: expected normalized %d, got %d", s.Theme, -riasecThemeCounts[s.Theme], s.Normalized)
		}
	}
	if len(result.HollandCode) != 3 {
		t.Errorf("Holland code must stay 3 characters on empty input, got %q", result.HollandCode)
	}
}
