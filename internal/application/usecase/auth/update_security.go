package auth

import (
	"context"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// UpdateSecurityInput represents the input for changing login security.
type UpdateSecurityInput struct {
	AccountKey       string
	TwoFactorEnabled bool
	NewPin           string // Empty keeps the current PIN
}

// UpdateSecurityOutput represents the output of a security update.
type UpdateSecurityOutput struct {
	TwoFactorEnabled bool
	HasPin           bool
}

// UpdateSecurityUseCase toggles two-factor login and optionally sets a new PIN.
type UpdateSecurityUseCase struct {
	sessions   *session.Manager
	pinService adapter.PinService
}

// NewUpdateSecurityUseCase creates a new UpdateSecurityUseCase instance.
func NewUpdateSecurityUseCase(sessions *session.Manager, pinService adapter.PinService) *UpdateSecurityUseCase {
	return &UpdateSecurityUseCase{
		sessions:   sessions,
		pinService: pinService,
	}
}

// Execute performs the security update.
func (uc *UpdateSecurityUseCase) Execute(ctx context.Context, input UpdateSecurityInput) (*UpdateSecurityOutput, error) {
	var pinHash string
	if input.NewPin != "" {
		if err := uc.pinService.ValidatePinFormat(input.NewPin); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPinFormat,
				"PIN must be 4 to 8 digits",
				domainerror.ErrInvalidPinFormat,
			)
		}
		hash, err := uc.pinService.HashPin(input.NewPin)
		if err != nil {
			return nil, fmt.Errorf("failed to hash pin: %w", err)
		}
		pinHash = hash
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	security := &s.Account.User.Security
	security.TwoFactorEnabled = input.TwoFactorEnabled
	if pinHash != "" {
		security.PinHash = pinHash
	}
	uc.sessions.Commit(ctx, s)

	return &UpdateSecurityOutput{
		TwoFactorEnabled: security.TwoFactorEnabled,
		HasPin:           security.HasPin(),
	}, nil
}
