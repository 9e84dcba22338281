package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-matcher/internal/schemas"
	"github.com/jonathan/course-matcher/internal/types"
)

func TestParseJSON_ValidCatalog(t *testing.T) {
	data := []byte(`{
		"courses": [
			{
				"course_id": "c1",
				"course_name": "Python Basics",
				"instructor": "Jane Doe",
				"course_rating": 4.7,
				"platform": "Coursera",
				"is_paid": "Paid",
				"Number_of_student_enrolled": 50000,
				"user_comments": ["great", "useful"],
				"course_url": "https://example.com/c1"
			}
		]
	}`)

	records, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, records, 1)

	c := records[0]
	assert.Equal(t, "c1", c.CourseID)
	assert.InDelta(t, 4.7, c.CourseRating, 1e-9)
	assert.Equal(t, types.PricingPaid, c.IsPaid)
	assert.Equal(t, 50000, c.EnrolledCount)
	assert.Equal(t, []string{"great", "useful"}, c.Comments)
}

func TestParseJSON_FlexibleNumericsAndComments(t *testing.T) {
	data := []byte(`{
		"courses": [
			{
				"course_id": "c2",
				"course_name": "Loose Types",
				"course_rating": "4.2",
				"Number_of_student_enrolled": "1000",
				"user_comments": "single comment"
			}
		]
	}`)

	records, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, records, 1)

	c := records[0]
	assert.InDelta(t, 4.2, c.CourseRating, 1e-9)
	assert.Equal(t, 1000, c.EnrolledCount)
	assert.Equal(t, []string{"single comment"}, c.Comments)
}

func TestParseJSON_SchemaViolation(t *testing.T) {
	// course_id is required and must be non-empty.
	data := []byte(`{"courses": [{"course_name": "No ID"}]}`)

	_, err := ParseJSON(data)
	require.Error(t, err)

	var verr *schemas.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestParseJSON_MissingCoursesKey(t *testing.T) {
	_, err := ParseJSON([]byte(`{}`))
	require.Error(t, err)
}

func TestParseJSON_EmptyCoursesList(t *testing.T) {
	records, err := ParseJSON([]byte(`{"courses": []}`))
	require.NoError(t, err)
	assert.Empty(t, records)
}
