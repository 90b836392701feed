package investment

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// DeleteInvestmentInput represents the input for removing an investment.
type DeleteInvestmentInput struct {
	AccountKey   string
	InvestmentID string
}

// DeleteInvestmentUseCase removes an investment.
type DeleteInvestmentUseCase struct {
	sessions *session.Manager
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(sessions *session.Manager) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		sessions: sessions,
	}
}

// Execute performs the deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return err
	}
	defer release()

	remaining, ok := s.Account.Investments.Remove(input.InvestmentID)
	if !ok {
		return domainerror.NewAdviceError(
			domainerror.ErrCodeInvestmentNotFound,
			"investment not found",
			domainerror.ErrInvestmentNotFound,
		)
	}
	s.Account.Investments = remaining
	uc.sessions.Commit(ctx, s)
	return nil
}
