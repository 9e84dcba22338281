package types

// ExperienceLevel buckets a candidate's seniority as extracted from a resume.
type ExperienceLevel string

// Experience levels in ascending order of seniority.
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// ResumeProfile holds everything extracted from a single resume submission.
// It is created once per submission and never mutated afterwards.
type ResumeProfile struct {
	Skills          []string        `json:"skills"`
	SkillCount      int             `json:"skill_count"`
	Education       []string        `json:"education"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Domains         []string        `json:"domains"`
	DomainScores    map[string]int  `json:"domain_scores,omitempty"`

	// RawText is the first 500 characters of the cleaned resume text,
	// kept for audit/reference output. FullText is what vectorization uses.
	RawText  string `json:"raw_text,omitempty"`
	FullText string `json:"-"`
}

// HasSkill reports whether the profile contains the given skill (exact match,
// skills are stored lowercase).
func (p *ResumeProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
