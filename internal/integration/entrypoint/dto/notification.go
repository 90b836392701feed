package dto

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// NotificationResponse represents a delivered notification.
type NotificationResponse struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the notification feed.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts notifications to their DTOs.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, NotificationResponse{
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	return NotificationListResponse{Notifications: responses}
}
