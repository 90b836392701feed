// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Currency string
	Pin      string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Token *adapter.IssuedToken
	User  entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	accounts     adapter.AccountRepository
	sessions     *session.Manager
	pinService   adapter.PinService
	tokenService adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	accounts adapter.AccountRepository,
	sessions *session.Manager,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		accounts:     accounts,
		sessions:     sessions,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name is required",
			domainerror.ErrNameRequired,
		)
	}

	if err := uc.pinService.ValidatePinFormat(input.Pin); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPinFormat,
			"PIN must be 4 to 8 digits",
			domainerror.ErrInvalidPinFormat,
		)
	}

	exists, err := uc.accounts.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"an account with that email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	pinHash, err := uc.pinService.HashPin(input.Pin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	currency := valueobject.ParseCurrency(strings.ToUpper(strings.TrimSpace(input.Currency)))
	user := entity.NewUser(email, input.Name, currency, pinHash)
	account := entity.NewAccount(user)

	if err := uc.sessions.Open(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.AccountKey(), adapter.TokenScopeUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{
		Token: token,
		User:  *user,
	}, nil
}

// isValidEmail performs a minimal shape check on a normalized email.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
