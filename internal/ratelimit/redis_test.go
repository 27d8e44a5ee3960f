package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiter_WindowKey(t *testing.T) {
	rl := NewRedisLimiter("127.0.0.1:0", 5, time.Minute)
	t.Cleanup(func() { _ = rl.Close() })

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	k1 := rl.windowKey("1.2.3.4", base)
	k2 := rl.windowKey("1.2.3.4", base.Add(59*time.Second))
	k3 := rl.windowKey("1.2.3.4", base.Add(time.Minute))

	assert.Equal(t, k1, k2, "same window")
	assert.NotEqual(t, k1, k3, "next window")
	assert.Contains(t, k1, "fedcalc:ratelimit:1.2.3.4:")
}

func TestRedisLimiter_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	rl := NewRedisLimiterWithClient(client, 5, time.Minute)
	t.Cleanup(func() { _ = rl.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ok, err := rl.Allow(ctx, "1.2.3.4")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "redis rate limit")
	assert.Error(t, rl.Ping(ctx))
}
