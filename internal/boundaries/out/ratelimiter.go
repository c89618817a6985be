package out

import "context"

// RateLimiter throttles mutating requests against the control surface.
type RateLimiter interface {
	// Allow reports whether a request identified by key may proceed.
	// Key is "ip:<address>" for per-client limits.
	Allow(ctx context.Context, key string) bool
}
