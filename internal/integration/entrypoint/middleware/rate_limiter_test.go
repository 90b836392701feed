package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pinRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/auth/parent", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func post(r *gin.Engine, path string) int {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	r := pinRouter(NewRateLimiterWithConfig(3, time.Minute))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post(r, "/auth/login"))
	}
	assert.Equal(t, http.StatusTooManyRequests, post(r, "/auth/login"))

	// Limits are tracked per route.
	assert.Equal(t, http.StatusOK, post(r, "/auth/parent"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.now = func() time.Time { return now }
	r := pinRouter(rl)

	assert.Equal(t, http.StatusOK, post(r, "/auth/login"))
	assert.Equal(t, http.StatusTooManyRequests, post(r, "/auth/login"))

	now = now.Add(time.Minute)
	rl.Cleanup()
	assert.Empty(t, rl.windows)
	assert.Equal(t, http.StatusOK, post(r, "/auth/login"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.Disable()
	r := pinRouter(rl)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, post(r, "/auth/login"))
	}
}
