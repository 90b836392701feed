package quest

import (
	"context"

	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
)

// AnswerQuizInput represents an answer to a quiz quest.
type AnswerQuizInput struct {
	AccountKey string
	QuestID    string
	Answer     int
}

// AnswerQuizOutput reports whether the answer was correct.
type AnswerQuizOutput struct {
	Correct bool
}

// AnswerQuizUseCase checks a quiz answer. A correct answer completes the quiz
// quest for the rest of the session only; nothing is persisted.
type AnswerQuizUseCase struct {
	sessions *session.Manager
}

// NewAnswerQuizUseCase creates a new AnswerQuizUseCase instance.
func NewAnswerQuizUseCase(sessions *session.Manager) *AnswerQuizUseCase {
	return &AnswerQuizUseCase{
		sessions: sessions,
	}
}

// Execute performs the check.
func (uc *AnswerQuizUseCase) Execute(ctx context.Context, input AnswerQuizInput) (*AnswerQuizOutput, error) {
	correct, err := engine.AnswerQuiz(input.QuestID, input.Answer)
	if err != nil {
		return nil, err
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	if correct {
		s.MarkQuizPassed(input.QuestID)
	}

	return &AnswerQuizOutput{
		Correct: correct,
	}, nil
}
