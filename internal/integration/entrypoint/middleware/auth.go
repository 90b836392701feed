// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// AccountKeyKey is the context key for the authenticated account's storage key.
	AccountKeyKey ContextKey = "account_key"
	// ScopeKey is the context key for the token scope.
	ScopeKey ContextKey = "token_scope"
	// TokenIDKey is the context key for the token's ID.
	TokenIDKey ContextKey = "token_id"
	// TokenExpiryKey is the context key for the token's expiry.
	TokenExpiryKey ContextKey = "token_expiry"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	denylist     adapter.TokenDenylist
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, denylist adapter.TokenDenylist) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		denylist:     denylist,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
// Both user and parent tokens are accepted.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abort(c, http.StatusUnauthorized, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateToken(c.Request.Context(), token)
		if errors.Is(err, domainerror.ErrExpiredToken) {
			abort(c, http.StatusUnauthorized, "Token has expired", domainerror.ErrCodeExpiredToken)
			return
		}
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		revoked, err := m.denylist.IsRevoked(c.Request.Context(), claims.TokenID)
		if err != nil {
			slog.Warn("token denylist unavailable", "error", err)
		}
		if revoked {
			abort(c, http.StatusUnauthorized, "Token has been revoked", domainerror.ErrCodeRevokedToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(AccountKeyKey), claims.AccountKey)
		c.Set(string(ScopeKey), claims.Scope)
		c.Set(string(TokenIDKey), claims.TokenID)
		c.Set(string(TokenExpiryKey), claims.ExpiresAt)

		c.Next()
	}
}

// RequireParent rejects requests that do not carry a parent-scoped token.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if scope, _ := c.Get(string(ScopeKey)); scope != adapter.TokenScopeParent {
			abort(c, http.StatusForbidden, "Parent access required", domainerror.ErrCodeParentScopeRequired)
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetAccountKeyFromContext extracts the account key from the Gin context.
func GetAccountKeyFromContext(c *gin.Context) (string, bool) {
	key, exists := c.Get(string(AccountKeyKey))
	if !exists {
		return "", false
	}
	keyStr, ok := key.(string)
	return keyStr, ok && keyStr != ""
}

// GetTokenFromContext extracts the presented token's ID and expiry.
func GetTokenFromContext(c *gin.Context) (string, time.Time) {
	id := c.GetString(string(TokenIDKey))
	expiry, _ := c.Get(string(TokenExpiryKey))
	expiresAt, _ := expiry.(time.Time)
	return id, expiresAt
}
