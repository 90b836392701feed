package category

import (
	"context"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting or clearing a budget.
type SetBudgetInput struct {
	AccountKey string
	CategoryID string
	Budget     *float64 // nil clears the budget
}

// SetBudgetOutput represents the output of a budget change.
type SetBudgetOutput struct {
	Category entity.Category
}

// SetBudgetUseCase sets, changes or removes a category's monthly budget.
type SetBudgetUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
	notifier adapter.Notifier
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(sessions *session.Manager, clock adapter.Clock, notifier adapter.Notifier) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		sessions: sessions,
		clock:    clock,
		notifier: notifier,
	}
}

// Execute performs the budget change. The parent is notified after the change
// has been committed.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Budget != nil && *input.Budget < 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidBudget,
			"budget must not be negative",
			domainerror.ErrInvalidBudget,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	category, notifications, err := engine.SetBudget(s.Account, input.CategoryID, input.Budget, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	uc.sessions.Commit(ctx, s)

	for _, n := range notifications {
		uc.notifier.Notify(ctx, n)
	}

	return &SetBudgetOutput{
		Category: *category,
	}, nil
}
