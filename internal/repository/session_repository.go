package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fastbite/delivery-service/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores session records keyed by their opaque token.
// The service performs its own expiry check at validation time; the store
// TTL only keeps abandoned records from accumulating.
type SessionRepository interface {
	// Create persists a new session. Returns domain.ErrTokenExists when a
	// record with the same token already exists, so the caller can retry
	// with a freshly generated token.
	Create(ctx context.Context, session *domain.Session) error
	// Get returns the session for the token or domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes the session and reports whether one existed.
	// Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) (bool, error)
}

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository returns a Redis-backed implementation.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// Keep the key around slightly past expiry so validation can still
	// observe the record and report "expired" rather than "not found".
	ttl := time.Until(session.ExpiresAt) + time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}

	ok, err := r.client.SetNX(ctx, sessionKeyPrefix+session.Token, payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !ok {
		return domain.ErrTokenExists
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) (bool, error) {
	removed, err := r.client.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return removed > 0, nil
}
