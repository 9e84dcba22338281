package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-matcher/internal/types"
)

func testRecords() []types.CourseRecord {
	return []types.CourseRecord{
		{
			CourseID:      "c1",
			CourseName:    "Python for Data Science",
			Instructor:    "Jane Doe",
			CourseRating:  4.8,
			Platform:      "Coursera",
			IsPaid:        types.PricingPaid,
			EnrolledCount: 50000,
			Comments:      []string{"great course", "very practical"},
			CourseURL:     "https://example.com/c1",
		},
		{
			CourseID:      "c2",
			CourseName:    "Intro to Web Development",
			CourseRating:  4.2,
			Platform:      "Udemy",
			IsPaid:        types.PricingFree,
			EnrolledCount: 10000,
		},
		{
			CourseID:     "c3",
			CourseName:   "Advanced Python Patterns",
			CourseRating: 4.5,
			Platform:     "Coursera",
			IsPaid:       types.PricingPaid,
		},
	}
}

func TestNew_DerivedFields(t *testing.T) {
	cat := New(testRecords())
	require.Equal(t, 3, cat.Len())

	c1 := cat.Course(0)
	assert.Equal(t, "Python for Data Science Jane Doe great course very practical", c1.CombinedText)
	assert.InDelta(t, 1.0, c1.PopularityScore, 1e-9)

	c2 := cat.Course(1)
	assert.InDelta(t, 0.2, c2.PopularityScore, 1e-9)
	assert.Equal(t, "Unknown", c2.Instructor)
	assert.Equal(t, []string{}, c2.Comments)

	c3 := cat.Course(2)
	assert.Zero(t, c3.PopularityScore)
}

func TestNew_NormalizesInvalidNumerics(t *testing.T) {
	cat := New([]types.CourseRecord{
		{CourseID: "bad", CourseRating: 9.5, EnrolledCount: -10},
	})

	c := cat.Course(0)
	assert.Zero(t, c.CourseRating)
	assert.Zero(t, c.EnrolledCount)
	assert.Equal(t, types.PricingUnknown, c.IsPaid)
	assert.Equal(t, "Unknown", c.Platform)
}

func TestNew_DuplicateIDsFirstWins(t *testing.T) {
	cat := New([]types.CourseRecord{
		{CourseID: "dup", CourseName: "First"},
		{CourseID: "dup", CourseName: "Second"},
	})

	c, ok := cat.ByID("dup")
	require.True(t, ok)
	assert.Equal(t, "First", c.CourseName)
	assert.Equal(t, 2, cat.Len())
}

func TestByID_NotFound(t *testing.T) {
	cat := New(testRecords())

	c, ok := cat.ByID("missing")
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestSearch_NameContainment(t *testing.T) {
	cat := New(testRecords())

	results := cat.Search("python", 0)
	require.Len(t, results, 2)
	assert.Equal(t, "c1", results[0].CourseID)
	assert.Equal(t, "c3", results[1].CourseID)

	// Comments are not searched, only names.
	assert.Empty(t, cat.Search("practical", 0))
}

func TestSearch_LimitApplied(t *testing.T) {
	cat := New(testRecords())

	results := cat.Search("python", 1)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].CourseID)
}

func TestStats(t *testing.T) {
	cat := New(testRecords())

	stats := cat.Stats()
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, []string{"Coursera", "Udemy"}, stats.Platforms)
	assert.InDelta(t, (4.8+4.2+4.5)/3, stats.AvgRating, 1e-9)
	assert.Equal(t, 2, stats.PaidCourses)
	assert.Equal(t, 1, stats.FreeCourses)
	assert.Equal(t, 50000, stats.MaxEnrollment)
}

func TestCombinedTexts_AlignedWithCorpusOrder(t *testing.T) {
	cat := New(testRecords())

	texts := cat.CombinedTexts()
	require.Len(t, texts, 3)
	for i, text := range texts {
		assert.Equal(t, cat.Course(i).CombinedText, text)
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	cat := New(nil)
	assert.Zero(t, cat.Len())
	assert.Zero(t, cat.Stats().AvgRating)
	assert.Empty(t, cat.Search("anything", 0))
}
