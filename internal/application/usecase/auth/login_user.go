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

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email string
	Pin   string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token *adapter.IssuedToken
	User  entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	sessions     *session.Manager
	pinService   adapter.PinService
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	sessions *session.Manager,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		sessions:     sessions,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the user login. The account is loaded (and migrated) into
// its session as part of logging in.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, domainerror.ErrAccountNotFound) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"no account found with that email",
			domainerror.ErrUserNotFound,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	defer release()

	user := s.Account.User
	if user.RequiresPin() {
		if input.Pin == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodePinRequired,
				"PIN required",
				domainerror.ErrPinRequired,
			)
		}
		if err := uc.pinService.VerifyPin(user.Security.PinHash, input.Pin); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"incorrect PIN",
				domainerror.ErrInvalidCredentials,
			)
		}
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.AccountKey(), adapter.TokenScopeUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		Token: token,
		User:  *user,
	}, nil
}
