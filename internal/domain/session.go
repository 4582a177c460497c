package domain

import "time"

// ActorKind differentiates admin vs driver sessions.
type ActorKind string

const (
	ActorKindAdmin  ActorKind = "admin"
	ActorKindDriver ActorKind = "driver"
)

// Session binds an opaque bearer token to an actor and an expiry time.
// Records are created once per login and never mutated; there is no
// rolling TTL extension.
type Session struct {
	Token     string    `json:"token"`
	ActorKind ActorKind `json:"actor_kind"`
	ActorID   string    `json:"actor_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session is past its TTL at the given instant.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Validation is the transient outcome of a successful session check. It is
// never persisted.
type Validation struct {
	ActorKind ActorKind
	ActorID   string
}
