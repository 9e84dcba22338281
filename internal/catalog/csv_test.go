package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-matcher/internal/types"
)

const sampleCSV = `course_id,course_name,instructor,course_rating,platform,is_paid,Number_of_student_enrolled,user_comments,course_url
c1,Python Basics,Jane Doe,4.7,Coursera,Paid,50000,"['great', 'useful']",https://example.com/c1
c2,Intro to SQL,,not-a-number,Udemy,Free,abc,solid intro,
`

func TestReadCSV_ParsesRows(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	c1 := records[0]
	assert.Equal(t, "c1", c1.CourseID)
	assert.Equal(t, "Python Basics", c1.CourseName)
	assert.Equal(t, "Jane Doe", c1.Instructor)
	assert.InDelta(t, 4.7, c1.CourseRating, 1e-9)
	assert.Equal(t, types.PricingPaid, c1.IsPaid)
	assert.Equal(t, 50000, c1.EnrolledCount)
	assert.Equal(t, []string{"great", "useful"}, c1.Comments)
	assert.Equal(t, "https://example.com/c1", c1.CourseURL)
}

func TestReadCSV_InvalidNumericsDefaultToZero(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	c2 := records[1]
	assert.Zero(t, c2.CourseRating)
	assert.Zero(t, c2.EnrolledCount)
	assert.Equal(t, types.PricingFree, c2.IsPaid)
	assert.Equal(t, []string{"solid intro"}, c2.Comments)
}

func TestReadCSV_ColumnOrderIndependent(t *testing.T) {
	reordered := "course_name,course_id\nSome Course,c9\n"
	records, err := ReadCSV(strings.NewReader(reordered))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c9", records[0].CourseID)
	assert.Equal(t, "Some Course", records[0].CourseName)
}

func TestReadCSV_MissingIDColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("course_name\nNo ID Here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course_id")
}

func TestReadCSV_EmptyInput(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}
