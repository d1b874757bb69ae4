package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	err := client.Set(ctx, "test-key", "test-value", time.Minute)
	require.NoError(t, err)

	value, err := client.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", value)
}

func TestClient_GetMissingKey(t *testing.T) {
	client, _ := setupTestRedis(t)

	_, err := client.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", 0))
	require.NoError(t, client.Set(ctx, "b", "2", 0))

	require.NoError(t, client.Delete(ctx, "a", "b"))

	exists, err := client.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_Exists(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	exists, err := client.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Set(ctx, "yes", "1", 0))
	exists, err = client.Exists(ctx, "yes")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_GetAndIncrement(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	// Missing key counts from zero.
	v, err := client.GetAndIncrement(ctx, "layout_counter:food")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = client.GetAndIncrement(ctx, "layout_counter:food")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	// Independent counters per key.
	v, err = client.GetAndIncrement(ctx, "layout_counter:trades")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestClient_DeletePattern(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "website:1", "a", 0))
	require.NoError(t, client.Set(ctx, "website:2", "b", 0))
	require.NoError(t, client.Set(ctx, "prospect:1", "c", 0))

	require.NoError(t, client.DeletePattern(ctx, "website:*"))

	exists, err := client.Exists(ctx, "website:1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "prospect:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_GetMulti(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", "v1", 0))
	require.NoError(t, client.Set(ctx, "k3", "v3", 0))

	values, err := client.GetMulti(ctx, "k1", "k2", "k3")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "", "v3"}, values)
}

func TestClient_TTLAndExpire(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Hour))
	require.NoError(t, client.Expire(ctx, "k", time.Minute))

	ttl, err := client.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}
