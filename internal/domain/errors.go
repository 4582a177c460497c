package domain

import "errors"

// Sentinel errors returned by services. The HTTP layer maps these to
// status codes; expected auth outcomes are never logged as server errors.
var (
	// ErrInvalidCredentials covers unknown identity, inactive account and
	// secret mismatch alike, so responses carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound means no session record exists for the token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired means the session exists but its TTL has elapsed.
	ErrSessionExpired = errors.New("session expired")

	// ErrTokenExists signals a token collision on session insert.
	ErrTokenExists = errors.New("session token already exists")

	// ErrNotFound is the generic missing-resource error for CRUD lookups.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps connectivity failures against the backing
	// stores. Fatal during bootstrap, a 500-equivalent at request time.
	ErrStoreUnavailable = errors.New("store unavailable")
)
