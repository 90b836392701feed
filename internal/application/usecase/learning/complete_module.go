package learning

import (
	"context"

	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// CompleteModuleInput represents a quiz answer for a learning module.
type CompleteModuleInput struct {
	AccountKey string
	ModuleID   string
	Answer     int
}

// CompleteModuleOutput represents the output of completing a module.
type CompleteModuleOutput struct {
	XPAwarded   float64
	Progression valueobject.Progression
}

// CompleteModuleUseCase awards a module's XP on a correct quiz answer.
type CompleteModuleUseCase struct {
	sessions *session.Manager
}

// NewCompleteModuleUseCase creates a new CompleteModuleUseCase instance.
func NewCompleteModuleUseCase(sessions *session.Manager) *CompleteModuleUseCase {
	return &CompleteModuleUseCase{
		sessions: sessions,
	}
}

// Execute performs the completion.
func (uc *CompleteModuleUseCase) Execute(ctx context.Context, input CompleteModuleInput) (*CompleteModuleOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	xp, err := engine.CompleteModule(s.Account, input.ModuleID, input.Answer)
	if err != nil {
		return nil, err
	}
	if xp > 0 {
		uc.sessions.Commit(ctx, s)
	}

	return &CompleteModuleOutput{
		XPAwarded:   xp,
		Progression: s.Account.User.Progression,
	}, nil
}
