package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendxp/backend/internal/application/adapter"
)

// tokenDenylist implements the adapter.TokenDenylist interface.
type tokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a new Redis-backed token deny-list.
func NewTokenDenylist(client *redis.Client) adapter.TokenDenylist {
	return &tokenDenylist{
		client: client,
	}
}

// Revoke marks a token ID as revoked until it would have expired.
func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, keyPrefix+"revoked:"+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks if a token ID has been revoked.
func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, keyPrefix+"revoked:"+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return true, nil
}
