package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/course-matcher/internal/schemas"
	"github.com/jonathan/course-matcher/internal/types"
)

//go:embed catalog_schema.json
var catalogSchema string

// jsonCourse mirrors one catalog entry with the loosely-typed fields the
// dataset allows: numeric fields may arrive as numbers or strings, and
// user_comments may be a list, a scalar, or missing.
type jsonCourse struct {
	CourseID     string          `json:"course_id"`
	CourseName   string          `json:"course_name"`
	Instructor   string          `json:"instructor"`
	CourseRating json.RawMessage `json:"course_rating"`
	Platform     string          `json:"platform"`
	IsPaid       string          `json:"is_paid"`
	Enrolled     json.RawMessage `json:"Number_of_student_enrolled"`
	UserComments json.RawMessage `json:"user_comments"`
	CourseURL    string          `json:"course_url"`
}

type jsonCatalog struct {
	Courses []jsonCourse `json:"courses"`
}

// LoadJSON reads course records from a JSON catalog file. The document is
// validated against the embedded catalog schema before ingestion, so shape
// errors surface with field paths instead of zero-value records.
func LoadJSON(path string) ([]types.CourseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	records, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return records, nil
}

// ParseJSON validates and decodes JSON catalog content.
func ParseJSON(data []byte) ([]types.CourseRecord, error) {
	if err := schemas.ValidateJSONString(catalogSchema, string(data)); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var doc jsonCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}

	records := make([]types.CourseRecord, 0, len(doc.Courses))
	for _, c := range doc.Courses {
		records = append(records, types.CourseRecord{
			CourseID:      c.CourseID,
			CourseName:    c.CourseName,
			Instructor:    c.Instructor,
			CourseRating:  flexibleFloat(c.CourseRating),
			Platform:      c.Platform,
			IsPaid:        types.ParsePricingTier(c.IsPaid),
			EnrolledCount: int(flexibleFloat(c.Enrolled)),
			Comments:      flexibleComments(c.UserComments),
			CourseURL:     c.CourseURL,
		})
	}
	return records, nil
}

// flexibleFloat decodes a numeric field that may be a number, a numeric
// string, or absent. Anything unparseable defaults to zero.
func flexibleFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

// flexibleComments decodes user_comments from a list, scalar, or missing
// value into a flat string sequence.
func flexibleComments(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseCommentField(s)
	}
	return []string{}
}
