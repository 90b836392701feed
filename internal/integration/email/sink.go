// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/integration/email/templates"
)

// ParentAlertSink delivers parent-facing notifications by email.
type ParentAlertSink struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
}

// NewParentAlertSink creates a new parent alert sink.
func NewParentAlertSink(sender adapter.EmailSender, renderer *templates.Renderer) *ParentAlertSink {
	return &ParentAlertSink{
		sender:   sender,
		renderer: renderer,
	}
}

// Name identifies the sink in logs.
func (s *ParentAlertSink) Name() string {
	return "email"
}

// Deliver emails the parent when the notification is addressed to them and a
// parent email is configured. Other notifications are ignored.
func (s *ParentAlertSink) Deliver(ctx context.Context, n *entity.Notification) error {
	if !n.Kind.ForParent() || n.ParentEmail == "" {
		return nil
	}

	logger := slog.With(
		"account", n.AccountKey,
		"kind", n.Kind,
		"recipient", n.ParentEmail,
	)

	title, lines := splitMessage(n.Message)
	body, err := s.renderer.Render(templates.ParentAlertTemplate, templates.ParentAlertData{
		AccountEmail: n.AccountKey,
		Title:        title,
		Lines:        lines,
		SentAt:       n.CreatedAt.Format("Jan 2, 2006 15:04"),
	})
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		return err
	}

	result, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      n.ParentEmail,
		Subject: "SpendXP: " + title,
		HTML:    body.HTML,
		Text:    body.Text,
	})
	if err != nil {
		return err
	}

	logger.Info("Email sent successfully", "message_id", result.MessageID)
	return nil
}

// splitMessage separates the heading line of a notification from its body.
func splitMessage(message string) (string, []string) {
	parts := strings.Split(message, "\n")
	title := strings.TrimSuffix(strings.TrimSpace(parts[0]), ":")
	return title, parts[1:]
}
