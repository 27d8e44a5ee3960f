package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter shared by every server instance
// pointing at the same Redis. Each key may make limit requests per window.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter connects lazily; the first Allow surfaces connection errors.
func NewRedisLimiter(addr string, limit int, window time.Duration) *RedisLimiter {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisLimiterWithClient(rdb, limit, window)
}

// NewRedisLimiterWithClient uses an existing client.
func NewRedisLimiterWithClient(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "fedcalc:ratelimit:",
	}
}

func (r *RedisLimiter) windowKey(key string, now time.Time) string {
	slot := now.UnixNano() / int64(r.window)
	return fmt.Sprintf("%s%s:%d", r.prefix, key, slot)
}

// Allow increments the counter for the current window and sets its expiry
// on first use.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.windowKey(key, time.Now())

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return incr.Val() <= r.limit, nil
}

// Ping checks connectivity.
func (r *RedisLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisLimiter) Close() error {
	return r.client.Close()
}
