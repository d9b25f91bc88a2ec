package usecase

import (
	"fmt"

	"farmatch-backend/internal/domain"
)

// Field weights; they sum to MaxScore.
var fieldWeights = []struct {
	field  domain.Field
	weight int
}{
	{domain.FieldFocus, 30},
	{domain.FieldEcosystem, 25},
	{domain.FieldProject, 20},
	{domain.FieldApproach, 15},
	{domain.FieldMotto, 10},
}

const (
	MaxScore = 100
	// ComplementaryFocusScore is awarded for a synergistic, not identical, focus pair
	ComplementaryFocusScore = 25
	DefaultMatchThreshold   = 40
	DefaultMatchLimit       = 3
)

// complementaryFocus is symmetric: a pair listed once matches both ways.
var complementaryFocus = map[string]string{
	"Frontend/UX":            "Smart Contracts",
	"Smart Contracts":        "Frontend/UX",
	"Full-stack Development": "Protocol Design",
	"Protocol Design":        "Full-stack Development",
}

// IsComplementaryFocus reports whether two different focus values earn partial credit.
func IsComplementaryFocus(a, b string) bool {
	return a != "" && complementaryFocus[a] == b
}

// ScoreProfiles compares two answer sets field by field. Each contributing field
// appends one commonality, in field order. Empty answers never match.
func ScoreProfiles(a, b domain.Answers) (int, []string) {
	score := 0
	commonalities := []string{}

	for _, fw := range fieldWeights {
		av, bv := a.Get(fw.field), b.Get(fw.field)
		if av == "" || bv == "" {
			continue
		}

		if av == bv {
			score += fw.weight
			commonalities = append(commonalities, describeShared(fw.field, av))
			continue
		}

		if fw.field == domain.FieldFocus && IsComplementaryFocus(av, bv) {
			score += ComplementaryFocusScore
			commonalities = append(commonalities, fmt.Sprintf("Complementary skills: %s + %s", av, bv))
		}
	}

	return score, commonalities
}

func describeShared(field domain.Field, value string) string {
	switch field {
	case domain.FieldFocus:
		return "Same focus: " + value
	case domain.FieldEcosystem:
		return "Both build on " + value
	case domain.FieldProject:
		return "Both interested in " + value
	case domain.FieldApproach:
		return "Shared approach: " + value
	case domain.FieldMotto:
		return fmt.Sprintf("Same motto: %q", value)
	}
	return fmt.Sprintf("Same %s: %s", field, value)
}
