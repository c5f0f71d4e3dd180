// Package common defines shared constants and sentinel errors used across
// the admin console layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport / backend errors.
	ErrUnavailable = errors.New("server unavailable")

	// Authorization errors (rejected token, missing role).
	ErrUnauthorized = errors.New("unauthorized")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// ErrEmptyResponse marks a response envelope whose data field is absent
	// where a single object was required.
	ErrEmptyResponse = errors.New("empty response")
)
