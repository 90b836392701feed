package goal

import (
	"context"
	"log/slog"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	AccountKey string
	GoalID     string
	Amount     float64
}

// ContributeToGoalOutput represents the output of a goal contribution.
type ContributeToGoalOutput struct {
	Goal        entity.SavingsGoal
	Ignored     bool
	Completed   bool
	BonusXP     float64
	Progression valueobject.Progression
}

// ContributeToGoalUseCase adds money to a savings goal.
type ContributeToGoalUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
	notifier adapter.Notifier
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(sessions *session.Manager, clock adapter.Clock, notifier adapter.Notifier) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		sessions: sessions,
		clock:    clock,
		notifier: notifier,
	}
}

// Execute performs the contribution. A failure to log the matching Savings
// transaction is logged and does not undo the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution must be greater than zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	contribution, err := engine.Contribute(s.Account, input.GoalID, input.Amount, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if contribution.ShadowErr != nil {
		slog.Warn("contribution transaction not logged",
			"account", s.Account.Key(),
			"goal", input.GoalID,
			"error", contribution.ShadowErr,
		)
	}

	if !contribution.Ignored {
		uc.sessions.Commit(ctx, s)
		for _, n := range contribution.Notifications {
			uc.notifier.Notify(ctx, n)
		}
	}

	return &ContributeToGoalOutput{
		Goal:        *contribution.Goal,
		Ignored:     contribution.Ignored,
		Completed:   contribution.Completed,
		BonusXP:     contribution.BonusXP,
		Progression: s.Account.User.Progression,
	}, nil
}
