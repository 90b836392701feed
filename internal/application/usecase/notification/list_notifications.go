// Package notification contains the notification feed use case.
package notification

import (
	"context"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
)

// DefaultLimit is the number of notifications returned when none is requested.
const DefaultLimit = 20

// ListNotificationsInput represents the input for reading the feed.
type ListNotificationsInput struct {
	AccountKey string
	Limit      int
}

// ListNotificationsOutput represents the delivered notifications, newest first.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
}

// ListNotificationsUseCase reads the account's notification feed.
type ListNotificationsUseCase struct {
	feed adapter.NotificationFeed
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(feed adapter.NotificationFeed) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		feed: feed,
	}
}

// Execute performs the read.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	notifications, err := uc.feed.List(ctx, input.AccountKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
	}, nil
}
