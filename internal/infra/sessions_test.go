package infra

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastromunicipal.com/internal/domain"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(rdb, ttl), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)

	token, err := store.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestSessionTokensAreUnique(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)

	first, err := store.Create(context.Background(), 1)
	require.NoError(t, err)
	second, err := store.Create(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResolveUnknownToken(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)

	_, err := store.Resolve(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrSessionMiss)
}

func TestDestroyInvalidatesToken(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)

	token, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(context.Background(), token))

	_, err = store.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionMiss)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestSessionStore(t, time.Minute)

	token, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionMiss)
}
