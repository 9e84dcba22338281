// Package server provides the HTTP REST API for the course matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/course-matcher/internal/ingestion"
)

// ErrCourseNotFound indicates the requested course ID is not in the catalog
type ErrCourseNotFound struct {
	CourseID string
}

func (e *ErrCourseNotFound) Error() string {
	return fmt.Sprintf("course not found: %s", e.CourseID)
}

// ErrMissingFile indicates the upload request carried no resume file
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
	return "no resume file provided"
}

// ErrInvalidCredentials indicates the admin password was wrong
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid credentials"
}

// ErrAuthDisabled indicates the admin endpoints are not configured
type ErrAuthDisabled struct{}

func (e *ErrAuthDisabled) Error() string {
	return "authentication is not configured"
}

// ErrUnauthorized indicates a missing or invalid bearer token
type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unsupported *ingestion.ErrUnsupportedFormat
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}
	switch err.(type) {
	case *ErrCourseNotFound:
		return http.StatusNotFound
	case *ErrMissingFile, *ErrValidation:
		return http.StatusBadRequest
	case *ErrInvalidCredentials, *ErrUnauthorized:
		return http.StatusUnauthorized
	case *ErrAuthDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
