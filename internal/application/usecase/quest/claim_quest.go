package quest

import (
	"context"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// ClaimQuestInput represents the input for claiming a quest reward.
type ClaimQuestInput struct {
	AccountKey string
	QuestID    string
}

// ClaimQuestOutput represents the output of a claim. XPAwarded is 0 when the
// quest had already been claimed.
type ClaimQuestOutput struct {
	XPAwarded   float64
	Progression valueobject.Progression
}

// ClaimQuestUseCase awards the XP of a completed quest.
type ClaimQuestUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
}

// NewClaimQuestUseCase creates a new ClaimQuestUseCase instance.
func NewClaimQuestUseCase(sessions *session.Manager, clock adapter.Clock) *ClaimQuestUseCase {
	return &ClaimQuestUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute performs the claim.
func (uc *ClaimQuestUseCase) Execute(ctx context.Context, input ClaimQuestInput) (*ClaimQuestOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	xp, err := engine.ClaimQuest(s.Account, input.QuestID, s.QuizPassed(), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if xp > 0 {
		uc.sessions.Commit(ctx, s)
	}

	return &ClaimQuestOutput{
		XPAwarded:   xp,
		Progression: s.Account.User.Progression,
	}, nil
}
