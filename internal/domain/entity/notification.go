package entity

import "time"

// NotificationKind identifies what triggered a notification.
type NotificationKind string

const (
	NotificationKindParentalAlert NotificationKind = "parental_alert"
	NotificationKindBudgetAlert   NotificationKind = "budget_alert"
	NotificationKindBudgetChange  NotificationKind = "budget_change"
)

// ForParent reports whether the notification is addressed to the parent.
func (k NotificationKind) ForParent() bool {
	return k == NotificationKindParentalAlert || k == NotificationKindBudgetChange
}

// Notification is a user-visible message emitted after a committed state change.
type Notification struct {
	AccountKey  string
	Kind        NotificationKind
	Message     string
	ParentEmail string // Recipient for parent-facing kinds; may be empty
	CreatedAt   time.Time
}

// NewNotification creates a notification for the account.
func NewNotification(accountKey string, kind NotificationKind, message string, now time.Time) *Notification {
	return &Notification{
		AccountKey: accountKey,
		Kind:       kind,
		Message:    message,
		CreatedAt:  now,
	}
}
