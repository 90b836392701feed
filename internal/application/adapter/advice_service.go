// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// AdviceService defines the interface for the AI money coach.
// Responses are opaque text.
type AdviceService interface {
	// Ask answers a free-form question in the coach persona.
	Ask(ctx context.Context, prompt string) (string, error)

	// Analyze returns a short analysis of an investment subject.
	Analyze(ctx context.Context, subject string) (string, error)

	// IsAvailable checks if the advice service is properly configured.
	IsAvailable() bool
}

// RateLimiter admits at most one request per key within a window.
type RateLimiter interface {
	// Allow reports whether a request for key may proceed, starting a new window if so.
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}
