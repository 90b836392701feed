// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// Notifier is the fire-and-forget notification sink. Notify never blocks on
// delivery and gives no ordering guarantee between notifications.
type Notifier interface {
	// Notify schedules delivery of a notification.
	Notify(ctx context.Context, notification *entity.Notification)
}

// NotificationSink is one delivery channel used by the dispatcher.
type NotificationSink interface {
	// Name identifies the sink in logs.
	Name() string

	// Deliver sends the notification through this channel.
	Deliver(ctx context.Context, notification *entity.Notification) error
}

// NotificationFeed stores delivered notifications so the user can read them.
type NotificationFeed interface {
	NotificationSink

	// List returns up to limit notifications for the account, newest first.
	List(ctx context.Context, accountKey string, limit int) ([]*entity.Notification, error)
}

// Clock provides the current time in the application's local time zone.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}
