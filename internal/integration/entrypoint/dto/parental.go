package dto

import (
	"github.com/spendxp/backend/internal/application/usecase/parental"
	"github.com/spendxp/backend/internal/domain/entity"
)

// ParentSessionRequest carries the parent PIN.
type ParentSessionRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// ParentSessionResponse carries the parent-scoped token.
type ParentSessionResponse struct {
	TokenResponse
	PinCreated bool `json:"pin_created"`
}

// UpdateControlsRequest is a partial update of the parental controls.
type UpdateControlsRequest struct {
	SpendingLimitEnabled  *bool    `json:"spending_limit_enabled,omitempty"`
	SpendingLimitAmount   *float64 `json:"spending_limit_amount,omitempty"`
	SpendingLimitPeriod   *string  `json:"spending_limit_period,omitempty"`
	NotificationsEnabled  *bool    `json:"notifications_enabled,omitempty"`
	NotificationThreshold *float64 `json:"notification_threshold,omitempty"`
	ParentEmail           *string  `json:"parent_email,omitempty"`
}

// ControlsResponse represents the parental controls.
type ControlsResponse struct {
	SpendingLimitEnabled  bool     `json:"spending_limit_enabled"`
	SpendingLimitAmount   *float64 `json:"spending_limit_amount"`
	SpendingLimitPeriod   string   `json:"spending_limit_period"`
	NotificationsEnabled  bool     `json:"notifications_enabled"`
	NotificationThreshold *float64 `json:"notification_threshold"`
	ParentEmail           string   `json:"parent_email,omitempty"`
}

// OverviewResponse represents the parent dashboard.
type OverviewResponse struct {
	Name               string                `json:"name"`
	Currency           string                `json:"currency"`
	Progression        ProgressionResponse   `json:"progression"`
	TotalSpent         float64               `json:"total_spent"`
	SpentInLimitPeriod float64               `json:"spent_in_limit_period"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	Controls           ControlsResponse      `json:"controls"`
}

// ToControlsResponse converts the parental controls to their DTO.
func ToControlsResponse(c entity.ParentalControls) ControlsResponse {
	return ControlsResponse{
		SpendingLimitEnabled:  c.SpendingLimitEnabled,
		SpendingLimitAmount:   c.SpendingLimitAmount,
		SpendingLimitPeriod:   string(c.SpendingLimitPeriod.OrDefault()),
		NotificationsEnabled:  c.NotificationsEnabled,
		NotificationThreshold: c.NotificationThreshold,
		ParentEmail:           c.ParentEmail,
	}
}

// ToOverviewResponse converts the overview use case output.
func ToOverviewResponse(o *parental.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Name:               o.Name,
		Currency:           string(o.Currency),
		Progression:        ToProgressionResponse(o.Progression),
		TotalSpent:         o.TotalSpent,
		SpentInLimitPeriod: o.SpentInLimitPeriod,
		RecentTransactions: ToTransactionResponses(o.RecentTransactions),
		Controls:           ToControlsResponse(o.Controls),
	}
}
