// Package ranking scores the course corpus against a resume profile and
// explains the results.
package ranking

import (
	"strings"

	"github.com/jonathan/course-matcher/internal/types"
	"github.com/jonathan/course-matcher/internal/vectorspace"
)

// Repetition factors upweight the most reliable profile signals when the
// query document is assembled.
const (
	skillRepeat  = 3
	domainRepeat = 2
)

// ProjectProfile converts a resume profile into a query vector in the frozen
// corpus space. It concatenates, in order: skills repeated skillRepeat times,
// domains repeated domainRepeat times, education markers once, and the full
// resume text once, then transforms the result through the model. Terms
// outside the frozen vocabulary are ignored, so a profile with no extractable
// signal yields a zero vector, which is valid.
func ProjectProfile(profile *types.ResumeProfile, model *vectorspace.Model) map[string]float64 {
	var parts []string

	if len(profile.Skills) > 0 {
		joined := strings.Join(profile.Skills, " ")
		for i := 0; i < skillRepeat; i++ {
			parts = append(parts, joined)
		}
	}
	if len(profile.Domains) > 0 {
		joined := strings.Join(profile.Domains, " ")
		for i := 0; i < domainRepeat; i++ {
			parts = append(parts, joined)
		}
	}
	if len(profile.Education) > 0 {
		parts = append(parts, strings.Join(profile.Education, " "))
	}
	if profile.FullText != "" {
		parts = append(parts, profile.FullText)
	}

	return model.Transform(strings.Join(parts, " "))
}
