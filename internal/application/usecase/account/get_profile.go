// Package account contains use cases over the account holder's own profile.
package account

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	AccountKey string
}

// GetProfileOutput carries a copy of the user and a few derived counters.
type GetProfileOutput struct {
	User             entity.User
	TransactionCount int
	CompletedModules int
	ClaimedQuests    int
}

// GetProfileUseCase returns the user's profile and progression.
type GetProfileUseCase struct {
	sessions *session.Manager
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(sessions *session.Manager) *GetProfileUseCase {
	return &GetProfileUseCase{
		sessions: sessions,
	}
}

// Execute performs the lookup.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	user := *s.Account.User
	user.LinkedAccounts = append([]*entity.LinkedAccount(nil), s.Account.User.LinkedAccounts...)

	return &GetProfileOutput{
		User:             user,
		TransactionCount: len(s.Account.Ledger),
		CompletedModules: len(s.Account.CompletedModules),
		ClaimedQuests:    len(s.Account.ClaimedQuests),
	}, nil
}
