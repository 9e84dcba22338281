// Package catalog loads and normalizes the course corpus and exposes
// read-only lookups over it.
package catalog

import (
	"strings"

	"github.com/jonathan/course-matcher/internal/types"
)

// DefaultSearchLimit bounds name-search results when the caller supplies none.
const DefaultSearchLimit = 10

// Catalog holds the normalized, immutable course corpus. Construction fills
// in the derived CombinedText and PopularityScore fields; after New returns
// the catalog is read-only and safe to share across requests without locking.
type Catalog struct {
	courses []types.CourseRecord
	byID    map[string]int
	stats   types.CatalogStats
}

// New builds a catalog from already-parsed course records. Records keep
// their input order, which is the tie-break order used by ranking.
func New(records []types.CourseRecord) *Catalog {
	courses := make([]types.CourseRecord, len(records))
	copy(courses, records)

	maxEnrollment := 0
	for i := range courses {
		normalizeRecord(&courses[i])
		if courses[i].EnrolledCount > maxEnrollment {
			maxEnrollment = courses[i].EnrolledCount
		}
	}

	byID := make(map[string]int, len(courses))
	platformSet := make(map[string]bool)
	ratingSum := 0.0
	paid, free := 0, 0

	for i := range courses {
		c := &courses[i]

		c.CombinedText = c.CourseName + " " + c.Instructor + " " + strings.Join(c.Comments, " ")
		if maxEnrollment > 0 {
			c.PopularityScore = float64(c.EnrolledCount) / float64(maxEnrollment)
		}

		// First record wins on duplicate IDs.
		if _, exists := byID[c.CourseID]; !exists {
			byID[c.CourseID] = i
		}

		platformSet[c.Platform] = true
		ratingSum += c.CourseRating
		switch c.IsPaid {
		case types.PricingPaid:
			paid++
		case types.PricingFree:
			free++
		}
	}

	platforms := make([]string, 0, len(platformSet))
	for _, c := range courses {
		if platformSet[c.Platform] {
			platforms = append(platforms, c.Platform)
			delete(platformSet, c.Platform)
		}
	}

	avgRating := 0.0
	if len(courses) > 0 {
		avgRating = ratingSum / float64(len(courses))
	}

	return &Catalog{
		courses: courses,
		byID:    byID,
		stats: types.CatalogStats{
			TotalCourses:  len(courses),
			Platforms:     platforms,
			AvgRating:     avgRating,
			PaidCourses:   paid,
			FreeCourses:   free,
			MaxEnrollment: maxEnrollment,
		},
	}
}

// normalizeRecord applies the documented ingestion defaults: negative or
// invalid numerics become zero, empty text fields become "Unknown" where the
// field has one, and comments are already a flat sequence by this point.
func normalizeRecord(c *types.CourseRecord) {
	if c.CourseRating < 0 || c.CourseRating > 5 {
		c.CourseRating = 0
	}
	if c.EnrolledCount < 0 {
		c.EnrolledCount = 0
	}
	if c.Instructor == "" {
		c.Instructor = "Unknown"
	}
	if c.Platform == "" {
		c.Platform = "Unknown"
	}
	if c.IsPaid == "" {
		c.IsPaid = types.PricingUnknown
	}
	if c.Comments == nil {
		c.Comments = []string{}
	}
}

// Len returns the number of courses in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.courses)
}

// Courses returns the corpus in load order. Callers must not mutate it.
func (cat *Catalog) Courses() []types.CourseRecord {
	return cat.courses
}

// Course returns the record at corpus position i.
func (cat *Catalog) Course(i int) *types.CourseRecord {
	return &cat.courses[i]
}

// ByID looks up a course by its identifier. The boolean result is the
// not-found signal; an absent ID is a normal negative outcome, not an error.
func (cat *Catalog) ByID(courseID string) (*types.CourseRecord, bool) {
	i, ok := cat.byID[courseID]
	if !ok {
		return nil, false
	}
	return &cat.courses[i], true
}

// Search performs a case-insensitive containment match over course names
// only, returning at most limit results in corpus order.
func (cat *Catalog) Search(query string, limit int) []types.CourseRecord {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	queryLower := strings.ToLower(query)

	results := make([]types.CourseRecord, 0, limit)
	for _, c := range cat.courses {
		if strings.Contains(strings.ToLower(c.CourseName), queryLower) {
			results = append(results, c)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// CombinedTexts returns the per-course text used for vectorization, aligned
// with corpus order.
func (cat *Catalog) CombinedTexts() []string {
	texts := make([]string, len(cat.courses))
	for i, c := range cat.courses {
		texts[i] = c.CombinedText
	}
	return texts
}

// Stats returns summary statistics about the loaded corpus.
func (cat *Catalog) Stats() types.CatalogStats {
	return cat.stats
}
