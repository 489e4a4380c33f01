package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks requests that never produced a server response
// (connection refused, timeout, DNS failure).
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx server response. Detail carries the human-readable
// message from the backend's {"detail": "..."} body when present.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, http.StatusText(e.Status))
}

// IsUnauthorized reports whether err is a 401 response, i.e. the credential
// is missing, expired or invalid.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsForbidden reports whether err is a 403 response (role mismatch).
func IsForbidden(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// Detail extracts the server-provided detail string from err, or returns the
// given fallback when err carries none.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
