package secureapi

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse wraps every failure to read a response body
	// into the declared shape.
	ErrMalformedResponse = errors.New("secureapi: malformed response")

	// ErrPropertyNotFound is returned by GetRevenueSummary on 404.
	ErrPropertyNotFound = errors.New("secureapi: property not found")

	// ErrNoCredentials is returned when the client has no TokenSource.
	ErrNoCredentials = errors.New("secureapi: no credentials")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("secureapi: %s %s: status %d: %s", e.Method, e.Path, e.Code, e.Detail)
	}
	return fmt.Sprintf("secureapi: %s %s: status %d", e.Method, e.Path, e.Code)
}
