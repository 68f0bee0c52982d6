package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRevocationStore(client)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "tok-1", time.Now().Add(30*time.Minute)))

	revoked, err = store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	other, err := store.IsRevoked(ctx, "tok-2")
	require.NoError(t, err)
	assert.False(t, other)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], DefaultPrefix)
	assert.NotContains(t, keys[0], "tok-1", "raw tokens must not be stored")
}

func TestRevocationStore_TTLFollowsExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRevocationStoreWithPrefix(client, "erp:revoked:")
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "tok", time.Now().Add(10*time.Minute)))
	keys := mr.Keys()
	require.Len(t, keys, 1)
	ttl := mr.TTL(keys[0])
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)

	mr.FastForward(11 * time.Minute)
	revoked, err := store.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_ExpiredToken(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRevocationStore(client)

	err := store.Revoke(context.Background(), "tok", time.Now().Add(-time.Second))
	assert.ErrorIs(t, err, ErrExpired)
	assert.Empty(t, mr.Keys())
}

func TestRevocationStore_EmptyToken(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRevocationStoreWithPrefix(client, "")
	ctx := context.Background()

	assert.Error(t, store.Revoke(ctx, "", time.Now().Add(time.Minute)))
	revoked, err := store.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, DefaultPrefix, store.prefix)
}

func TestRevocationStore_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	store := NewRevocationStore(client)
	mr.Close()

	_, err = store.IsRevoked(context.Background(), "tok")
	assert.Error(t, err)
}
