package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastbite/delivery-service/internal/domain"
)

func newTestSessionRepo(t *testing.T) (*miniredis.Miniredis, SessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewSessionRepository(client)
}

func testSession(token string) *domain.Session {
	issued := time.Now().UTC().Truncate(time.Second)
	return &domain.Session{
		Token:     token,
		ActorKind: domain.ActorKindDriver,
		ActorID:   "driver-1",
		IssuedAt:  issued,
		ExpiresAt: issued.Add(24 * time.Hour),
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	mr, repo := newTestSessionRepo(t)
	ctx := context.Background()
	session := testSession("tok-1")

	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActorKindDriver, got.ActorKind)
	assert.Equal(t, "driver-1", got.ActorID)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))

	// The key carries a TTL so abandoned sessions do not accumulate.
	assert.Greater(t, mr.TTL("session:tok-1"), time.Duration(0))
}

func TestSessionRepository_Create_TokenCollision(t *testing.T) {
	_, repo := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("tok-1")))

	second := testSession("tok-1")
	second.ActorID = "driver-2"
	require.ErrorIs(t, repo.Create(ctx, second), domain.ErrTokenExists)

	// The original session must be untouched by the rejected write.
	got, err := repo.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "driver-1", got.ActorID)
}

func TestSessionRepository_Get_Missing(t *testing.T) {
	_, repo := newTestSessionRepo(t)

	_, err := repo.Get(context.Background(), "absent")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	_, repo := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("tok-1")))

	existed, err := repo.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.Get(ctx, "tok-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting an absent token reports false, not an error.
	existed, err = repo.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSessionRepository_StoreUnavailable(t *testing.T) {
	mr, repo := newTestSessionRepo(t)
	ctx := context.Background()
	mr.Close()

	assert.ErrorIs(t, repo.Create(ctx, testSession("tok-1")), domain.ErrStoreUnavailable)
	_, err := repo.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.Delete(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
