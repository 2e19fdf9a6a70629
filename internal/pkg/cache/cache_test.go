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

type cachedMatch struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "impactlink"), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got []cachedMatch
	hit, err := c.GetJSON(ctx, "matches:a", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := []cachedMatch{{Name: "Safe Homes", Score: 24.5}}
	require.NoError(t, c.SetJSON(ctx, "matches:a", want, time.Minute))
	assert.True(t, mr.Exists("impactlink:matches:a"))

	hit, err = c.GetJSON(ctx, "matches:a", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	hit, err = c.GetJSON(ctx, "matches:a", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCacheDeletePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	for _, k := range []string{"matches:a", "matches:b", "roles:a"} {
		require.NoError(t, c.SetJSON(ctx, k, true, time.Minute))
	}

	require.NoError(t, c.DeletePrefix(ctx, "matches:"))
	assert.False(t, mr.Exists("impactlink:matches:a"))
	assert.False(t, mr.Exists("impactlink:matches:b"))
	assert.True(t, mr.Exists("impactlink:roles:a"))

	require.NoError(t, c.Delete(ctx, "roles:a"))
	assert.False(t, mr.Exists("impactlink:roles:a"))
}

func TestRedisCacheCorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("impactlink:bad", "{not json"))

	var v cachedMatch
	_, err := c.GetJSON(context.Background(), "bad", &v)
	assert.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	var c Cache = NoopCache{}
	ctx := context.Background()
	require.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))

	var v int
	hit, err := c.GetJSON(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
