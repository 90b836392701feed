package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

const testSecret = "test-jwt-secret-key-for-testing-purposes"

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, 15*time.Minute)
	userID := uuid.New()

	issued, err := svc.GenerateToken(context.Background(), userID, "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "teen@example.com", claims.AccountKey)
	assert.Equal(t, adapter.TokenScopeUser, claims.Scope)
	assert.Equal(t, issued.TokenID, claims.TokenID)
}

func TestTokenService_ParentScopeUsesShortExpiry(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, 15*time.Minute)

	issued, err := svc.GenerateToken(context.Background(), uuid.New(), "teen@example.com", adapter.TokenScopeParent)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(15*time.Minute), issued.ExpiresAt, 5*time.Second)
	claims, err := svc.ValidateToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, adapter.TokenScopeParent, claims.Scope)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute, time.Minute)

	issued, err := svc.GenerateToken(context.Background(), uuid.New(), "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), issued.Token)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("another-secret", time.Hour, time.Minute)
	svc := NewTokenService(testSecret, time.Hour, time.Minute)

	issued, err := issuer.GenerateToken(context.Background(), uuid.New(), "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), issued.Token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_UnknownScope(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, time.Minute)
	now := time.Now()

	claims := CustomClaims{
		UserID:     uuid.NewString(),
		AccountKey: "teen@example.com",
		Scope:      "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), signed)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, time.Minute)

	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}
