package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateLimiter_Allow(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "analysis:teen@example.com", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "analysis:teen@example.com", 5*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "analysis:other@example.com", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(6 * time.Second)

	ok, err = limiter.Allow(ctx, "analysis:teen@example.com", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "analysis:teen@example.com", time.Second)

	assert.Error(t, err)
}

func TestTokenDenylist(t *testing.T) {
	mr, client := newTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylist_ExpiredTokenIsNotStored(t *testing.T) {
	mr, client := newTestRedis(t)
	denylist := NewTokenDenylist(client)

	require.NoError(t, denylist.Revoke(context.Background(), "jti-old", time.Now().Add(-time.Minute)))

	assert.False(t, mr.Exists(keyPrefix+"revoked:jti-old"))
}

func TestNotificationFeed(t *testing.T) {
	_, client := newTestRedis(t)
	feed := NewNotificationFeed(client)
	ctx := context.Background()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, feed.Deliver(ctx, entity.NewNotification("teen@example.com", entity.NotificationKindBudgetAlert, "first", now)))
	require.NoError(t, feed.Deliver(ctx, entity.NewNotification("teen@example.com", entity.NotificationKindParentalAlert, "second", now.Add(time.Minute))))
	require.NoError(t, feed.Deliver(ctx, entity.NewNotification("other@example.com", entity.NotificationKindBudgetAlert, "elsewhere", now)))

	items, err := feed.List(ctx, "teen@example.com", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Message)
	assert.Equal(t, entity.NotificationKindParentalAlert, items[0].Kind)
	assert.Equal(t, "teen@example.com", items[0].AccountKey)
	assert.True(t, now.Equal(items[1].CreatedAt))

	items, err = feed.List(ctx, "teen@example.com", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = feed.List(ctx, "nobody@example.com", 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNotificationFeed_IsCapped(t *testing.T) {
	_, client := newTestRedis(t)
	feed := NewNotificationFeed(client)
	ctx := context.Background()

	for i := 0; i < maxFeedLength+5; i++ {
		n := entity.NewNotification("teen@example.com", entity.NotificationKindBudgetAlert, fmt.Sprintf("n%d", i), time.Now())
		require.NoError(t, feed.Deliver(ctx, n))
	}

	items, err := feed.List(ctx, "teen@example.com", 0)
	require.NoError(t, err)
	assert.Len(t, items, maxFeedLength)
	assert.Equal(t, fmt.Sprintf("n%d", maxFeedLength+4), items[0].Message)
}
