package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// CheckUserInput represents the input for the pre-login lookup.
type CheckUserInput struct {
	Email string
}

// CheckUserOutput tells the client which login step comes next.
type CheckUserOutput struct {
	Exists           bool
	HasPin           bool
	TwoFactorEnabled bool
}

// CheckUserUseCase reports whether an account exists and whether it needs a PIN.
type CheckUserUseCase struct {
	accounts adapter.AccountRepository
}

// NewCheckUserUseCase creates a new CheckUserUseCase instance.
func NewCheckUserUseCase(accounts adapter.AccountRepository) *CheckUserUseCase {
	return &CheckUserUseCase{
		accounts: accounts,
	}
}

// Execute performs the lookup.
func (uc *CheckUserUseCase) Execute(ctx context.Context, input CheckUserInput) (*CheckUserOutput, error) {
	account, err := uc.accounts.Load(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, domainerror.ErrAccountNotFound) {
		return &CheckUserOutput{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	return &CheckUserOutput{
		Exists:           true,
		HasPin:           account.User.Security.HasPin(),
		TwoFactorEnabled: account.User.Security.TwoFactorEnabled,
	}, nil
}
