package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "ratelimit:"

// RedisLimiter counts requests in Redis so every API instance shares the same budget.
type RedisLimiter struct {
	rdb    *redis.Client
	window time.Duration
}

// NewRedisLimiter connects to redisURL and verifies the connection.
func NewRedisLimiter(ctx context.Context, redisURL string, window time.Duration) (*RedisLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisLimiter{rdb: rdb, window: window}, nil
}

// Allow increments the key's counter. The first hit of a window sets the expiry.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (Decision, error) {
	k := keyPrefix + key

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit counter: %w", err)
	}

	count := incr.Val()
	remaining := ttl.Val()
	if count == 1 || remaining < 0 {
		if err := l.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("rate limit expiry: %w", err)
		}
		remaining = l.window
	}

	if count > int64(limit) {
		return Decision{Allowed: false, RetryAfter: remaining}, nil
	}
	return Decision{Allowed: true, Remaining: limit - int(count)}, nil
}

func (l *RedisLimiter) Close() error {
	return l.rdb.Close()
}
