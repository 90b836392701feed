package parental

import (
	"context"
	"strings"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// UpdateControlsInput is a partial update: nil fields are left unchanged.
type UpdateControlsInput struct {
	AccountKey            string
	SpendingLimitEnabled  *bool
	SpendingLimitAmount   *float64
	SpendingLimitPeriod   *string
	NotificationsEnabled  *bool
	NotificationThreshold *float64
	ParentEmail           *string
}

// UpdateControlsOutput represents the stored controls.
type UpdateControlsOutput struct {
	Controls entity.ParentalControls
}

// UpdateControlsUseCase changes the parental controls read by the spending gate.
type UpdateControlsUseCase struct {
	sessions *session.Manager
}

// NewUpdateControlsUseCase creates a new UpdateControlsUseCase instance.
func NewUpdateControlsUseCase(sessions *session.Manager) *UpdateControlsUseCase {
	return &UpdateControlsUseCase{
		sessions: sessions,
	}
}

// Execute validates and applies the update.
func (uc *UpdateControlsUseCase) Execute(ctx context.Context, input UpdateControlsInput) (*UpdateControlsOutput, error) {
	if input.SpendingLimitAmount != nil && *input.SpendingLimitAmount <= 0 {
		return nil, domainerror.NewParentalError(
			domainerror.ErrCodeInvalidSpendingLimit,
			"spending limit must be greater than zero",
			domainerror.ErrInvalidSpendingLimit,
		)
	}
	if input.NotificationThreshold != nil && *input.NotificationThreshold < 0 {
		return nil, domainerror.NewParentalError(
			domainerror.ErrCodeInvalidNotificationThreshold,
			"notification threshold must not be negative",
			domainerror.ErrInvalidNotificationThreshold,
		)
	}
	var period valueobject.SpendingPeriod
	if input.SpendingLimitPeriod != nil {
		period = valueobject.SpendingPeriod(strings.ToLower(strings.TrimSpace(*input.SpendingLimitPeriod)))
		if !period.IsValid() {
			return nil, domainerror.NewParentalError(
				domainerror.ErrCodeInvalidSpendingPeriod,
				"period must be daily, weekly or monthly",
				domainerror.ErrInvalidSpendingPeriod,
			)
		}
	}
	var parentEmail string
	if input.ParentEmail != nil {
		parentEmail = entity.NormalizeEmail(*input.ParentEmail)
		if parentEmail != "" && !strings.Contains(parentEmail, "@") {
			return nil, domainerror.NewParentalError(
				domainerror.ErrCodeInvalidParentEmail,
				"invalid parent email",
				domainerror.ErrInvalidEmail,
			)
		}
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	controls := &s.Account.User.ParentalControls
	if input.SpendingLimitEnabled != nil {
		controls.SpendingLimitEnabled = *input.SpendingLimitEnabled
	}
	if input.SpendingLimitAmount != nil {
		amount := *input.SpendingLimitAmount
		controls.SpendingLimitAmount = &amount
	}
	if input.SpendingLimitPeriod != nil {
		controls.SpendingLimitPeriod = period
	}
	if input.NotificationsEnabled != nil {
		controls.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.NotificationThreshold != nil {
		threshold := *input.NotificationThreshold
		controls.NotificationThreshold = &threshold
	}
	if input.ParentEmail != nil {
		controls.ParentEmail = parentEmail
	}
	uc.sessions.Commit(ctx, s)

	return &UpdateControlsOutput{
		Controls: *controls,
	}, nil
}
