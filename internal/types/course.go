// Package types provides type definitions for structured data used throughout the course-matcher system.
package types

// PricingTier indicates whether a course is free, paid, or of unknown pricing.
type PricingTier string

// Pricing tiers for courses.
const (
	PricingFree    PricingTier = "Free"
	PricingPaid    PricingTier = "Paid"
	PricingUnknown PricingTier = "Unknown"
)

// ParsePricingTier maps a raw dataset value onto a pricing tier.
// Anything that is not recognizably free or paid becomes Unknown.
func ParsePricingTier(raw string) PricingTier {
	switch raw {
	case "Free", "free", "FREE":
		return PricingFree
	case "Paid", "paid", "PAID", "True", "true":
		return PricingPaid
	default:
		return PricingUnknown
	}
}

// CourseRecord represents a single course from the catalog.
// Records are immutable after the catalog is loaded; the derived fields
// CombinedText and PopularityScore are filled in during catalog construction.
type CourseRecord struct {
	CourseID      string      `json:"course_id"`
	CourseName    string      `json:"course_name"`
	Instructor    string      `json:"instructor"`
	CourseRating  float64     `json:"rating"`
	Platform      string      `json:"platform"`
	IsPaid        PricingTier `json:"is_paid"`
	EnrolledCount int         `json:"enrolled"`
	Comments      []string    `json:"user_comments,omitempty"`
	CourseURL     string      `json:"course_url"`

	// Derived during catalog construction.
	CombinedText    string  `json:"-"`
	PopularityScore float64 `json:"-"`
}

// CatalogStats summarizes the loaded course catalog.
type CatalogStats struct {
	TotalCourses  int      `json:"total_courses"`
	Platforms     []string `json:"platforms"`
	AvgRating     float64  `json:"avg_rating"`
	PaidCourses   int      `json:"paid_courses"`
	FreeCourses   int      `json:"free_courses"`
	MaxEnrollment int      `json:"max_enrollment"`
}
