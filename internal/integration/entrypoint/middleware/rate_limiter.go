// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

const (
	// DefaultPinAttempts is the number of PIN attempts allowed per window.
	DefaultPinAttempts = 5
	// DefaultPinWindow is the fixed window PIN attempts are counted in.
	DefaultPinWindow = time.Minute
)

type attemptWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter caps PIN attempts per client IP and route in fixed windows.
// State is per process.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
	disabled    bool
	now         func() time.Time
}

// NewRateLimiter creates a limiter with the default PIN attempt policy.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(DefaultPinAttempts, DefaultPinWindow)
}

// NewRateLimiterWithConfig creates a limiter allowing maxAttempts per window.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Disable turns the limiter into a pass-through.
func (rl *RateLimiter) Disable() {
	rl.mu.Lock()
	rl.disabled = true
	rl.mu.Unlock()
}

// Middleware rejects the request with 429 once the caller has used up its
// attempts on this route.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.FullPath() + "|" + clientIP) {
			slog.Warn("PIN attempts rate limited", "path", c.FullPath(), "client_ip", clientIP)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.disabled {
		return true
	}

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &attemptWindow{count: 1, resetAt: now.Add(rl.window)}
		return true
	}
	if w.count >= rl.maxAttempts {
		return false
	}
	w.count++
	return true
}

// Reset forgets all recorded attempts.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*attemptWindow)
}

// Cleanup drops windows that have already closed.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}

// RunCleanup calls Cleanup once per window until ctx is done.
func (rl *RateLimiter) RunCleanup(ctx context.Context) error {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
