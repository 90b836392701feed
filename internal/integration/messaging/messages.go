package messaging

import (
	"encoding/json"
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// NotificationMessage is the wire format of a published notification.
type NotificationMessage struct {
	AccountKey  string    `json:"accountKey"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	ParentEmail string    `json:"parentEmail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewNotificationMessage creates a message from a notification.
func NewNotificationMessage(n *entity.Notification) *NotificationMessage {
	return &NotificationMessage{
		AccountKey:  n.AccountKey,
		Kind:        string(n.Kind),
		Message:     n.Message,
		ParentEmail: n.ParentEmail,
		Timestamp:   n.CreatedAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
