package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryLimiter keeps one token bucket per key in process memory. It is the
// fallback when no Redis URL is configured and suits a single instance only.
type MemoryLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	buckets map[string]*rate.Limiter
}

func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{window: window, buckets: make(map[string]*rate.Limiter)}
}

// Allow takes one token from the key's bucket. A bucket refills limit tokens per window.
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: false, RetryAfter: l.window}, nil
	}
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok || bucket.Burst() != limit {
		bucket = rate.NewLimiter(rate.Every(l.window/time.Duration(limit)), limit)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	now := time.Now()
	reservation := bucket.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}
	return Decision{Allowed: true, Remaining: int(bucket.TokensAt(now))}, nil
}
