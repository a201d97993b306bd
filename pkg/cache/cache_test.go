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

func newTestCache(t *testing.T) (*TagCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client), mr
}

func TestSetGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}
	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "mohinga", N: 3}, time.Minute))

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "mohinga", got.Name)
	assert.Equal(t, 3, got.N)
}

func TestGetJSONMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got map[string]any
	hit, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInvalidateTag(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "menu:public", "a", time.Minute, "public-menu"))
	require.NoError(t, c.SetJSON(ctx, "menu:recommended", "b", time.Minute, "public-menu"))
	require.NoError(t, c.SetJSON(ctx, "other", "c", time.Minute))

	require.NoError(t, c.InvalidateTag(ctx, "public-menu"))

	var s string
	hit, err := c.GetJSON(ctx, "menu:public", &s)
	require.NoError(t, err)
	assert.False(t, hit)
	hit, err = c.GetJSON(ctx, "menu:recommended", &s)
	require.NoError(t, err)
	assert.False(t, hit)

	// untagged keys survive
	hit, err = c.GetJSON(ctx, "other", &s)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", 1, 60*time.Second))
	mr.FastForward(61 * time.Second)

	var n int
	hit, err := c.GetJSON(ctx, "k", &n)
	require.NoError(t, err)
	assert.False(t, hit)
}
