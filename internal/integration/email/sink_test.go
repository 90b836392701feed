package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/email/templates"
)

func newTestSink(t *testing.T) (*ParentAlertSink, *MockEmailSender) {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	sender := NewMockEmailSender()
	return NewParentAlertSink(sender, renderer), sender
}

func TestParentAlertSink_SendsParentNotifications(t *testing.T) {
	sink, sender := newTestSink(t)
	n := entity.NewNotification("teen@example.com", entity.NotificationKindParentalAlert,
		"Parental Alert:\nA transaction of $25.00 for \"Game\" was just logged.",
		time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	n.ParentEmail = "parent@example.com"

	require.NoError(t, sink.Deliver(context.Background(), n))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "parent@example.com", sent[0].To)
	assert.Equal(t, "SpendXP: Parental Alert", sent[0].Subject)
	assert.Contains(t, sent[0].Text, "$25.00")
	assert.Contains(t, sent[0].Text, "teen@example.com")
	assert.Contains(t, sent[0].HTML, "Parental Alert")
}

func TestParentAlertSink_SkipsOtherNotifications(t *testing.T) {
	sink, sender := newTestSink(t)

	budget := entity.NewNotification("teen@example.com", entity.NotificationKindBudgetAlert, "Budget Alert ⚠️\nOver budget", time.Now())
	budget.ParentEmail = "parent@example.com"
	require.NoError(t, sink.Deliver(context.Background(), budget))

	noRecipient := entity.NewNotification("teen@example.com", entity.NotificationKindBudgetChange, "Parent Notification:\nChanged", time.Now())
	require.NoError(t, sink.Deliver(context.Background(), noRecipient))

	assert.Empty(t, sender.Sent())
}

func TestParentAlertSink_PropagatesSendFailure(t *testing.T) {
	sink, sender := newTestSink(t)
	sender.SetFailure(errors.New("smtp down"))

	n := entity.NewNotification("teen@example.com", entity.NotificationKindBudgetChange, "Parent Notification:\nChanged", time.Now())
	n.ParentEmail = "parent@example.com"

	err := sink.Deliver(context.Background(), n)

	var accountErr *domainerror.AccountError
	require.True(t, errors.As(err, &accountErr))
	assert.Equal(t, domainerror.ErrCodeNotificationDelivery, accountErr.Code)
}

func TestSplitMessage(t *testing.T) {
	title, lines := splitMessage("Parent Notification:\nline one\nline two")

	assert.Equal(t, "Parent Notification", title)
	assert.Equal(t, []string{"line one", "line two"}, lines)
}
