// Package quest contains quest use cases.
package quest

import (
	"context"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
)

// ListQuestsInput represents the input for listing quests.
type ListQuestsInput struct {
	AccountKey string
}

// ListQuestsOutput carries every quest with its freshly evaluated status.
type ListQuestsOutput struct {
	Quests []engine.QuestStatus
}

// ListQuestsUseCase evaluates the quest catalogue for an account.
type ListQuestsUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
}

// NewListQuestsUseCase creates a new ListQuestsUseCase instance.
func NewListQuestsUseCase(sessions *session.Manager, clock adapter.Clock) *ListQuestsUseCase {
	return &ListQuestsUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute performs the evaluation.
func (uc *ListQuestsUseCase) Execute(ctx context.Context, input ListQuestsInput) (*ListQuestsOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	return &ListQuestsOutput{
		Quests: engine.EvaluateQuests(s.Account, s.QuizPassed(), uc.clock.Now()),
	}, nil
}
