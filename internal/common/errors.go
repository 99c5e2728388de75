// Package common defines shared constants and sentinel errors used across
// the Jobly client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, revoked or expired token).
	ErrUnauthorized = errors.New("unauthorized")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNoSession = errors.New("no active session")
)
