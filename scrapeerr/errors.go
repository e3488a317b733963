// Package scrapeerr defines the failure taxonomy shared by the fetch, parse and
// extraction stages, and maps it onto HTTP status codes.
package scrapeerr

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	ErrFetch      = errors.New("fetch failed")
	ErrParse      = errors.New("document not parseable")
	ErrExtraction = errors.New("extraction failed")
)

// FetchError reports an unreachable upstream or a non-success response.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s failed", e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ParseError means the fetched content could not be turned into a document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parse document"
	}
	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ExtractionError means a structural element required for a well-formed
// top-level record is absent, e.g. a match link with too few path segments.
type ExtractionError struct {
	Page   string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.Page, e.Reason)
}

func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }

func NewExtraction(page, format string, args ...any) error {
	return errors.WithStack(&ExtractionError{Page: page, Reason: fmt.Sprintf(format, args...)})
}

// StatusCode returns the upstream status for fetch failures that carried an
// error status, and 500 for everything else.
func StatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) && fe.StatusCode >= http.StatusBadRequest {
		return fe.StatusCode
	}
	return http.StatusInternalServerError
}
