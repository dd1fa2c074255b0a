// Package common defines shared constants and sentinel errors used across
// the CineIA client layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Transport-level errors: the request could not complete or the backend
	// answered with a non-2xx status and no usable envelope.
	ErrNetwork = errors.New("network error")

	// The backend answered with success=false.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrUnauthenticated = errors.New("no active session")
	ErrSessionExpired  = errors.New("session expired")
	ErrForbidden       = errors.New("admin privileges required")

	// Validation errors.
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 10", ErrInvalidInput)

	// Catalog load failure, rendered as an error panel with a retry action.
	ErrFetch = errors.New("failed to load catalog")
)
