// Package common defines shared constants and sentinel errors used across the
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks input rejected client-side, before any network
	// call is issued.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized marks a missing, expired or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")
)
