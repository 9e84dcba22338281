package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/course-matcher/internal/catalog"
	"github.com/jonathan/course-matcher/internal/types"
)

// FileSource loads the course corpus from a dataset file, dispatching on the
// file extension (.csv or .json).
type FileSource struct {
	Path string
}

// Load reads and parses the dataset file.
func (s FileSource) Load(_ context.Context) ([]types.CourseRecord, error) {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".csv":
		return catalog.LoadCSV(s.Path)
	case ".json":
		return catalog.LoadJSON(s.Path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", s.Path)
	}
}

// StaticSource serves a fixed, in-memory corpus. Used in tests and for
// embedding the engine without a backing file.
type StaticSource []types.CourseRecord

// Load returns the fixed records.
func (s StaticSource) Load(_ context.Context) ([]types.CourseRecord, error) {
	return s, nil
}
