package service

import (
	"fmt"
	"strings"

	"assessment-service/internal/evaluation"
	"assessment-service/internal/models"
)

// BuildReportSummary renders a stored result as the plain-text block the
// narrative report prompt is composed from. The summary carries every score
// and classification but none of the raw responses.
func BuildReportSummary(record *models.AssessmentResult) (string, error) {
	var b strings.Builder
	switch {
	case record.SixteenP != nil:
		r := record.SixteenP
		fmt.Fprintf(&b, "16 Personalities result: %s (%s)\n", r.PersonalityType.FullCode, r.PersonalityType.Variant)
		fmt.Fprintf(&b, "%s\n", r.PersonalityType.Description)
		for _, d := range r.Dimensions {
			fmt.Fprintf(&b, "- %s: %s (%d%%), clarity %d%% (%s)\n",
				d.Name, d.Preference, d.Normalized, d.ClarityPercentage, d.ClarityBand)
		}
	case record.BigFive != nil:
		b.WriteString("Big Five (OCEAN) result:\n")
		for _, t := range record.BigFive.Traits {
			fmt.Fprintf(&b, "- %s: %d percentile (%s). %s\n", t.Name, t.Percentile, t.Level, t.Description)
		}
	case record.High5 != nil:
		r := record.High5
		b.WriteString("HIGH5 strengths result.\nTop 5 strengths:\n")
		for _, s := range r.TopFive {
			fmt.Fprintf(&b, "- %s (%s domain, score %d): %s\n", s.Strength, s.Domain, s.Score, s.Description)
		}
		b.WriteString("Domain spread of the top 5:\n")
		for _, d := range r.DomainBreakdown {
			fmt.Fprintf(&b, "- %s: %d strength(s), %.0f%%\n", d.Domain, d.Count, d.Percentage)
		}
		b.WriteString("Lower-ranked strengths to be mindful of:\n")
		for _, s := range r.AllStrengths {
			if s.Category == evaluation.CategoryAvoid {
				fmt.Fprintf(&b, "- %s (rank %d)\n", s.Strength, s.Rank)
			}
		}
	case record.Riasec != nil:
		r := record.Riasec
		fmt.Fprintf(&b, "RIASEC result: Holland code %s\n", r.HollandCode)
		for _, s := range r.AllScores {
			fmt.Fprintf(&b, "- %s: %d. %s\n", s.Theme, s.Normalized, s.Interpretation)
		}
		b.WriteString("Top themes:\n")
		for _, t := range r.TopThreeThemes {
			fmt.Fprintf(&b, "- %s: %s\n", t.Theme, t.Description)
		}
	default:
		return "", fmt.Errorf("result %s carries no evaluation payload", record.ID)
	}
	return b.String(), nil
}
