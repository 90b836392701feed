package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// ResetPinInput represents the input for a PIN reset.
type ResetPinInput struct {
	Email  string
	NewPin string
}

// ResetPinOutput represents the output of a PIN reset. The user is logged in
// afterwards.
type ResetPinOutput struct {
	Token *adapter.IssuedToken
	User  entity.User
}

// ResetPinUseCase replaces the personal PIN of an account.
type ResetPinUseCase struct {
	sessions     *session.Manager
	pinService   adapter.PinService
	tokenService adapter.TokenService
}

// NewResetPinUseCase creates a new ResetPinUseCase instance.
func NewResetPinUseCase(
	sessions *session.Manager,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
) *ResetPinUseCase {
	return &ResetPinUseCase{
		sessions:     sessions,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the PIN reset.
func (uc *ResetPinUseCase) Execute(ctx context.Context, input ResetPinInput) (*ResetPinOutput, error) {
	if err := uc.pinService.ValidatePinFormat(input.NewPin); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPinFormat,
			"PIN must be 4 to 8 digits",
			domainerror.ErrInvalidPinFormat,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, domainerror.ErrAccountNotFound) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"no account found",
			domainerror.ErrUserNotFound,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	defer release()

	pinHash, err := uc.pinService.HashPin(input.NewPin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	user := s.Account.User
	user.Security.PinHash = pinHash
	uc.sessions.Commit(ctx, s)

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.AccountKey(), adapter.TokenScopeUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &ResetPinOutput{
		Token: token,
		User:  *user,
	}, nil
}
