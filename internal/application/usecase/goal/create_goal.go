// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"strings"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	AccountKey   string
	Name         string
	TargetAmount float64
	VideoURL     string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal entity.SavingsGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	sessions *session.Manager
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(sessions *session.Manager) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		sessions: sessions,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			domainerror.ErrGoalNameRequired,
		)
	}
	if input.TargetAmount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	goal := entity.NewSavingsGoal(name, input.TargetAmount, input.VideoURL)
	s.Account.Goals = append(s.Account.Goals, goal)
	uc.sessions.Commit(ctx, s)

	return &CreateGoalOutput{
		Goal: *goal,
	}, nil
}
