package ratelimit

import "context"

// RateLimiter throttles public endpoints per caller key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
