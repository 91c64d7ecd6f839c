//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-cart/internal/testutil"
)

func TestRedisCartStore_Integration(t *testing.T) {
	ctx := context.Background()
	client, err := NewRedisClient(ctx, RedisConfig{Addr: testutil.RedisAddr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := testutil.SanitizeName(t.Name())
	store := NewRedisCartStore(client, prefix, time.Minute)

	require.NoError(t, store.Ping(ctx))

	data, err := store.Load(ctx, "cart:none")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Save(ctx, "cart:s1", []byte(`{"version":1}`)))
	data, err = store.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))

	ttl, err := client.TTL(ctx, prefix+":cart:s1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, store.Delete(ctx, "cart:s1"))
	data, err = store.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
