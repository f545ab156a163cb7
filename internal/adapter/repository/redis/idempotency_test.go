package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIdempotencyStoreFirstRequestLocksKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, cached, err := store.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)
	require.False(t, exists)
	require.Nil(t, cached)

	// The key is now held with a processing placeholder.
	val, err := mr.Get("idempotency:key-1")
	require.NoError(t, err)
	require.Equal(t, "processing", val)
}

func TestIdempotencyStoreSecondRequestSeesExisting(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "key-1", []byte(`{"status":"Success"}`), time.Hour))

	exists, cached, err := store.CheckAndSet(ctx, "key-1", nil, time.Hour)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, []byte(`{"status":"Success"}`), cached)
}

func TestIdempotencyStoreCheckAndSetWithResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "key-2", []byte(`{"done":true}`), time.Hour)
	require.NoError(t, err)
	require.False(t, exists)

	exists, cached, err := store.CheckAndSet(ctx, "key-2", nil, time.Hour)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, []byte(`{"done":true}`), cached)
}

func TestIdempotencyStoreKeysExpire(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-3", nil, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	exists, _, err := store.CheckAndSet(ctx, "key-3", nil, time.Minute)
	require.NoError(t, err)
	require.False(t, exists)
}
