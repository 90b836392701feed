// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID     string `json:"user_id"`
	AccountKey string `json:"account_key"`
	Scope      string `json:"scope"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret         []byte
	userDuration   time.Duration
	parentDuration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, userDuration, parentDuration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:         []byte(secret),
		userDuration:   userDuration,
		parentDuration: parentDuration,
	}
}

// GenerateToken issues a token of the given scope for the account.
func (s *tokenService) GenerateToken(ctx context.Context, userID uuid.UUID, accountKey string, scope adapter.TokenScope) (*adapter.IssuedToken, error) {
	duration := s.userDuration
	if scope == adapter.TokenScopeParent {
		duration = s.parentDuration
	}

	now := time.Now().UTC()
	tokenID := uuid.NewString()
	expiresAt := now.Add(duration)
	claims := CustomClaims{
		UserID:     userID.String(),
		AccountKey: accountKey,
		Scope:      string(scope),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "spendxp",
			Subject:   userID.String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.IssuedToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates a token and returns its claims.
func (s *tokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	scope := adapter.TokenScope(claims.Scope)
	if scope != adapter.TokenScopeUser && scope != adapter.TokenScopeParent {
		return nil, fmt.Errorf("%w: scope %q", domainerror.ErrInvalidToken, claims.Scope)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id: %v", domainerror.ErrInvalidToken, err)
	}

	return &adapter.TokenClaims{
		TokenID:    claims.ID,
		UserID:     userID,
		AccountKey: claims.AccountKey,
		Scope:      scope,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, domainerror.ErrExpiredToken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}
