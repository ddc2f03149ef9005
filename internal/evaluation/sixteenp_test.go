package evaluation

import (
	"fmt"
	"testing"
)

// fillSixteenP answers every bank item with the same raw value.
func fillSixteenP(value int) Responses {
	responses := Responses{}
	for _, q := range SixteenPBank {
		responses[fmt.Sprintf("q%d", q.ID)] = value
	}
	return responses
}

func TestSixteenPNeutralResponses(t *testing.T) {
	result := EvaluateSixteenP(fillSixteenP(3))

	if len(result.Dimensions) != 5 {
		t.Fatalf("Expected 5 dimensions, got %d", len(result.Dimensions))
	}
	for _, d := range result.Dimensions {
		if d.Raw != 21 {
			t.Errorf("Dimension %s: expected raw 21, got %d", d.Dimension, d.Raw)
		}
		if d.Normalized != 50 {
			t.Errorf("Dimension %s: expected normalized 50, got %d", d.Dimension, d.Normalized)
		}
		if !d.IsDominant {
			t.Errorf("Dimension %s: expected dominant at the 50 tie point", d.Dimension)
		}
		if d.ClarityPercentage != 0 {
			t.Errorf("Dimension %s: expected clarity 0, got %d", d.Dimension, d.ClarityPercentage)
		}
		if d.ClarityBand != "Slight" {
			t.Errorf("Dimension %s: expected Slight clarity band, got %s", d.Dimension, d.ClarityBand)
		}
	}

	// Ties resolve to every dominant pole letter.
	if result.PersonalityType.Code != "ESTJ" {
		t.Errorf("Expected type code ESTJ, got %s", result.PersonalityType.Code)
	}
	if result.PersonalityType.FullCode != "ESTJ-A" {
		t.Errorf("Expected full code ESTJ-A, got %s", result.PersonalityType.FullCode)
	}
	if result.PersonalityType.Variant != "Assertive" {
		t.Errorf("Expected Assertive variant, got %s", result.PersonalityType.Variant)
	}
}

func TestSixteenPMaximalDominantSignal(t *testing.T) {
	responses := Responses{}
	for _, q := range SixteenPBank {
		if q.Keying == KeyReverse {
			responses[fmt.Sprintf("q%d", q.ID)] = 1
		} else {
			responses[fmt.Sprintf("q%d", q.ID)] = 5
		}
	}
	result := EvaluateSixteenP(responses)

	for _, d := range result.Dimensions {
		if d.Raw != 35 {
			t.Errorf("Dimension %s: expected raw 35, got %d", d.Dimension, d.Raw)
		}
		if d.Normalized != 100 {
			t.Errorf("Dimension %s: expected normalized 100, got %d", d.Dimension, d.Normalized)
		}
		if d.ClarityBand != "Very Clear" {
			t.Errorf("Dimension %s: expected Very Clear, got %s", d.Dimension, d.ClarityBand)
		}
	}
	if result.PersonalityType.FullCode != "ESTJ-A" {
		t.Errorf("Expected full code ESTJ-A, got %s", result.PersonalityType.FullCode)
	}
}

func TestSixteenPClarityBandBoundaries(t *testing.T) {
	testCases := []struct {
		clarity  int
		expected string
	}{
		{0, "Slight"},
		{5, "Slight"},
		{6, "Moderate"},
		{15, "Moderate"},
		{16, "Clear"},
		{25, "Clear"},
		{26, "Very Clear"},
		{50, "Very Clear"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			if got := clarityBand(tc.clarity); got != tc.expected {
				t.Errorf("clarityBand(%d) expected %s, got %s", tc.clarity, tc.expected, got)
			}
		})
	}
}

func TestSixteenPPreferenceUsesOwnPolarity(t *testing.T) {
	// Push EI hard toward Introverted, leave the rest neutral. The EI
	// preference entry must describe the recessive pole even though other
	// dimensions resolved dominant.
	responses := fillSixteenP(3)
	for _, q := range SixteenPBank {
		if q.Tag != string(DimEI) {
			continue
		}
		if q.Keying == KeyReverse {
			responses[fmt.Sprintf("q%d", q.ID)] = 5
		} else {
			responses[fmt.Sprintf("q%d", q.ID)] = 1
		}
	}
	result := EvaluateSixteenP(responses)

	if result.PersonalityType.Code != "ISTJ" {
		t.Errorf("Expected type code ISTJ, got %s", result.PersonalityType.Code)
	}
	ei := result.Dimensions[0]
	if ei.Dimension != DimEI {
		t.Fatalf("Expected EI first in dimension order, got %s", ei.Dimension)
	}
	if ei.IsDominant {
		t.Error("Expected EI to resolve recessive")
	}
	if ei.Preference != "Introverted" || ei.PreferenceCode != "I" {
		t.Errorf("Expected Introverted/I, got %s/%s", ei.Preference, ei.PreferenceCode)
	}
	if len(result.Preferences) != 5 {
		t.Fatalf("Expected 5 preference entries, got %d", len(result.Preferences))
	}
	if result.Preferences[0].Description != sixteenPDimensions[DimEI].Recessive.Description {
		t.Error("EI preference entry should carry the recessive pole description")
	}
	if result.Preferences[4].Description != sixteenPDimensions[DimAT].Dominant.Description {
		t.Error("AT preference entry should carry the dominant pole description")
	}
}

func TestSixteenPEmptyResponses(t *testing.T) {
	result := EvaluateSixteenP(Responses{})

	for _, d := range result.Dimensions {
		if d.Raw != 0 {
			t.Errorf("Dimension %s: expected raw 0, got %d", d.Dimension, d.Raw)
		}
		if d.Normalized != -25 {
			t.Errorf("Dimension %s: expected normalized -25, got %d", d.Dimension, d.Normalized)
		}
		if d.IsDominant {
			t.Errorf("Dimension %s: expected recessive on empty input", d.Dimension)
		}
	}
	// Everything recessive, including the variant.
	if result.PersonalityType.FullCode != "INFP-T" {
		t.Errorf("Expected full code INFP-T, got %s", result.PersonalityType.FullCode)
	}
}
