// Package ratelimit throttles requests per caller within a fixed window.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed bool
	// Remaining is the number of requests left in the current window.
	Remaining int
	// RetryAfter is set when the request was rejected.
	RetryAfter time.Duration
}

// Limiter admits at most limit requests per key in each window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) (Decision, error)
}

// Window is the throttling period used for both anonymous and authenticated callers.
const Window = time.Minute
