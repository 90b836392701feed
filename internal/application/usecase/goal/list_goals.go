package goal

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	AccountKey string
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []entity.SavingsGoal
}

// ListGoalsUseCase lists the account's savings goals.
type ListGoalsUseCase struct {
	sessions *session.Manager
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(sessions *session.Manager) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		sessions: sessions,
	}
}

// Execute performs the listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	goals := make([]entity.SavingsGoal, 0, len(s.Account.Goals))
	for _, g := range s.Account.Goals {
		goals = append(goals, *g)
	}

	return &ListGoalsOutput{
		Goals: goals,
	}, nil
}
