// Package cache implements short-lived state on Redis: rate limits, revoked
// tokens and the notification feed.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendxp/backend/internal/application/adapter"
)

const keyPrefix = "spendxp:"

// rateLimiter implements the adapter.RateLimiter interface with SET NX PX.
type rateLimiter struct {
	client *redis.Client
}

// NewRateLimiter creates a new Redis-backed rate limiter.
func NewRateLimiter(client *redis.Client) adapter.RateLimiter {
	return &rateLimiter{
		client: client,
	}
}

// Allow reports whether a request for key may proceed. The first request in a
// window claims the key; later ones are refused until it expires.
func (l *rateLimiter) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+"ratelimit:"+key, time.Now().UTC().Format(time.RFC3339Nano), window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return ok, nil
}
