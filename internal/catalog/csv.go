package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/course-matcher/internal/types"
)

// CSV column names as they appear in the course dataset. The enrollment
// column name is preserved verbatim for compatibility with the existing
// dataset files.
const (
	colCourseID   = "course_id"
	colCourseName = "course_name"
	colInstructor = "instructor"
	colRating     = "course_rating"
	colPlatform   = "platform"
	colIsPaid     = "is_paid"
	colEnrolled   = "Number_of_student_enrolled"
	colComments   = "user_comments"
	colCourseURL  = "course_url"
)

// LoadCSV reads course records from a CSV dataset file. Missing or invalid
// numeric fields default to zero; missing text fields default per the data
// model. Row order is preserved as corpus order.
func LoadCSV(path string) ([]types.CourseRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses course records from CSV content. The first row must be a
// header; columns are matched by name so column order does not matter.
func ReadCSV(r io.Reader) ([]types.CourseRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []types.CourseRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colCourseID]; !ok {
		return nil, fmt.Errorf("CSV header missing required column %q", colCourseID)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []types.CourseRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rating, err := strconv.ParseFloat(field(row, colRating), 64)
		if err != nil {
			rating = 0
		}
		enrolled, err := strconv.Atoi(field(row, colEnrolled))
		if err != nil {
			enrolled = 0
		}

		records = append(records, types.CourseRecord{
			CourseID:      field(row, colCourseID),
			CourseName:    field(row, colCourseName),
			Instructor:    field(row, colInstructor),
			CourseRating:  rating,
			Platform:      field(row, colPlatform),
			IsPaid:        types.ParsePricingTier(field(row, colIsPaid)),
			EnrolledCount: enrolled,
			Comments:      ParseCommentField(field(row, colComments)),
			CourseURL:     field(row, colCourseURL),
		})
	}
	return records, nil
}
