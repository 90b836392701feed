// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenScope distinguishes the teen's own session from a parent session.
type TokenScope string

const (
	TokenScopeUser   TokenScope = "user"
	TokenScopeParent TokenScope = "parent"
)

// IssuedToken is a signed token with its identity and expiry.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	TokenID    string
	UserID     uuid.UUID
	AccountKey string
	Scope      TokenScope
	ExpiresAt  time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateToken issues a token of the given scope for the account.
	GenerateToken(ctx context.Context, userID uuid.UUID, accountKey string, scope TokenScope) (*IssuedToken, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenDenylist records tokens revoked before their expiry.
type TokenDenylist interface {
	// Revoke marks a token ID as revoked until it would have expired.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked checks if a token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
