package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/adapters"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
	err     error
}

func (d *memoryDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = true
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revoked[tokenID], d.err
}

func setupAuth(t *testing.T) (adapter.TokenService, *memoryDenylist, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := adapters.NewTokenService("test-secret", time.Hour, time.Minute)
	denylist := &memoryDenylist{revoked: map[string]bool{}}
	auth := NewAuthMiddleware(tokens, denylist)

	r := gin.New()
	r.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		key, _ := GetAccountKeyFromContext(c)
		id, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"key": key, "id": id.String()})
	})
	r.GET("/parent", auth.Authenticate(), auth.RequireParent(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return tokens, denylist, r
}

func doRequest(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens, _, r := setupAuth(t)
	userID := uuid.New()
	issued, err := tokens.GenerateToken(context.Background(), userID, "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)

	w := doRequest(r, "/me", "Bearer "+issued.Token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "teen@example.com", body["key"])
	assert.Equal(t, userID.String(), body["id"])
}

func TestAuthenticate_Rejections(t *testing.T) {
	_, _, r := setupAuth(t)

	tests := []struct {
		name   string
		header string
		code   domainerror.AuthErrorCode
	}{
		{name: "missing header", header: "", code: domainerror.ErrCodeMissingToken},
		{name: "wrong scheme", header: "Basic abc", code: domainerror.ErrCodeInvalidToken},
		{name: "empty bearer", header: "Bearer ", code: domainerror.ErrCodeMissingToken},
		{name: "garbage token", header: "Bearer not-a-jwt", code: domainerror.ErrCodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "/me", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, string(tt.code), errorCode(t, w))
		})
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	tokens, denylist, r := setupAuth(t)
	issued, err := tokens.GenerateToken(context.Background(), uuid.New(), "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(context.Background(), issued.TokenID, issued.ExpiresAt))

	w := doRequest(r, "/me", "Bearer "+issued.Token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRevokedToken), errorCode(t, w))
}

func TestAuthenticate_DenylistDownAllows(t *testing.T) {
	tokens, denylist, r := setupAuth(t)
	denylist.err = errors.New("redis down")
	issued, err := tokens.GenerateToken(context.Background(), uuid.New(), "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)

	w := doRequest(r, "/me", "Bearer "+issued.Token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireParent(t *testing.T) {
	tokens, _, r := setupAuth(t)
	ctx := context.Background()
	userID := uuid.New()

	user, err := tokens.GenerateToken(ctx, userID, "teen@example.com", adapter.TokenScopeUser)
	require.NoError(t, err)
	w := doRequest(r, "/parent", "Bearer "+user.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeParentScopeRequired), errorCode(t, w))

	parent, err := tokens.GenerateToken(ctx, userID, "teen@example.com", adapter.TokenScopeParent)
	require.NoError(t, err)
	w = doRequest(r, "/parent", "Bearer "+parent.Token)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
