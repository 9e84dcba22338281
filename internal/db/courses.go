package db

import (
	"context"
	"fmt"

	"github.com/jonathan/course-matcher/internal/types"
)

// LoadCourses fetches the full course catalog, ordered by catalog position so
// index builds and rank tie-breaks are stable across reloads.
func (db *DB) LoadCourses(ctx context.Context) ([]types.CourseRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT course_id,
		        COALESCE(course_name, ''),
		        COALESCE(instructor, ''),
		        COALESCE(course_rating, 0),
		        COALESCE(platform, ''),
		        COALESCE(pricing_tier, ''),
		        COALESCE(enrolled_count, 0),
		        COALESCE(course_url, ''),
		        COALESCE(comments, '{}')
		 FROM courses
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var records []types.CourseRecord
	for rows.Next() {
		var (
			rec  types.CourseRecord
			tier string
		)
		err := rows.Scan(
			&rec.CourseID,
			&rec.CourseName,
			&rec.Instructor,
			&rec.CourseRating,
			&rec.Platform,
			&tier,
			&rec.EnrolledCount,
			&rec.CourseURL,
			&rec.Comments,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		rec.IsPaid = types.ParsePricingTier(tier)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course rows: %w", err)
	}
	return records, nil
}
