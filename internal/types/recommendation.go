package types

// CourseScore holds the scoring outcome for one course against one resume.
type CourseScore struct {
	CourseID string `json:"course_id"`
	// SimilarityScore is the raw cosine similarity before boosting, in [0,1].
	SimilarityScore float64 `json:"-"`
	// FinalScore is the boosted score. It may exceed 1.0; it is preserved
	// unclamped for diagnostics.
	FinalScore float64 `json:"final_score"`
	// MatchPercentage is min(100, floor(FinalScore*100)).
	MatchPercentage int `json:"match_percentage"`
}

// Recommendation is a scored, explained course returned to the caller.
// The JSON field names for course identity, rating, enrollment and URL are
// wire-compatible with the existing consumer and must not be renamed.
type Recommendation struct {
	CourseID   string      `json:"course_id"`
	CourseName string      `json:"course_name"`
	Instructor string      `json:"instructor"`
	Rating     float64     `json:"rating"`
	Platform   string      `json:"platform"`
	IsPaid     PricingTier `json:"is_paid"`
	Enrolled   int         `json:"enrolled"`
	CourseURL  string      `json:"course_url"`

	// SimilarityScore carries the boosted score under the historical wire
	// name; MatchPercentage is derived from it.
	SimilarityScore float64  `json:"similarity_score"`
	MatchPercentage int      `json:"match_percentage"`
	MatchReasons    []string `json:"match_reasons"`
}

// AnalysisSummary is the profile excerpt returned alongside recommendations.
type AnalysisSummary struct {
	Skills          []string        `json:"skills"`
	SkillCount      int             `json:"skill_count"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Domains         []string        `json:"domains"`
	Education       []string        `json:"education"`
}
