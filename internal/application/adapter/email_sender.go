// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput is one rendered email to a single recipient.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's message ID.
type SendEmailResult struct {
	MessageID string
}

// EmailSender delivers parent-facing emails through an external provider.
type EmailSender interface {
	// Send delivers the email. Failures are returned as AccountError with
	// ErrNotificationDeliveryFailed.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
