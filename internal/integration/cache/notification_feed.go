package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
)

// maxFeedLength bounds the number of notifications kept per account.
const maxFeedLength = 100

type feedEntry struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// notificationFeed implements the adapter.NotificationFeed interface as a
// capped Redis list per account, newest first.
type notificationFeed struct {
	client *redis.Client
}

// NewNotificationFeed creates a new Redis-backed notification feed.
func NewNotificationFeed(client *redis.Client) adapter.NotificationFeed {
	return &notificationFeed{
		client: client,
	}
}

// Name identifies the sink in logs.
func (f *notificationFeed) Name() string {
	return "feed"
}

// Deliver pushes the notification onto the account's feed.
func (f *notificationFeed) Deliver(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(feedEntry{
		Kind:      string(n.Kind),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	key := feedKey(n.AccountKey)
	_, err = f.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, maxFeedLength-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	return nil
}

// List returns up to limit notifications for the account, newest first.
func (f *notificationFeed) List(ctx context.Context, accountKey string, limit int) ([]*entity.Notification, error) {
	if limit <= 0 || limit > maxFeedLength {
		limit = maxFeedLength
	}

	raw, err := f.client.LRange(ctx, feedKey(accountKey), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*entity.Notification, 0, len(raw))
	for _, item := range raw {
		var e feedEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		out = append(out, entity.NewNotification(accountKey, entity.NotificationKind(e.Kind), e.Message, e.CreatedAt))
	}
	return out, nil
}

func feedKey(accountKey string) string {
	return keyPrefix + "notifications:" + accountKey
}
