// Package investment contains investment tracking and analysis use cases.
package investment

import (
	"context"
	"strings"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// CreateInvestmentInput represents the input for recording an investment.
type CreateInvestmentInput struct {
	AccountKey      string
	AccountName     string
	Ticker          string
	Type            entity.InvestmentType
	CurrentValue    float64
	ProjectedGrowth float64
}

// CreateInvestmentOutput represents the output of recording an investment.
type CreateInvestmentOutput struct {
	Investment entity.Investment
}

// CreateInvestmentUseCase records an investment holding.
type CreateInvestmentUseCase struct {
	sessions *session.Manager
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(sessions *session.Manager) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		sessions: sessions,
	}
}

// Execute performs the creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if strings.TrimSpace(input.AccountName) == "" || !input.Type.IsValid() || input.CurrentValue < 0 {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeInvalidInvestment,
			"account name, a valid type and a non-negative value are required",
			domainerror.ErrInvalidInvestment,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	investment := entity.NewInvestment(input.AccountName, input.Ticker, input.Type, input.CurrentValue, input.ProjectedGrowth)
	s.Account.Investments = append(s.Account.Investments, investment)
	uc.sessions.Commit(ctx, s)

	return &CreateInvestmentOutput{
		Investment: *investment,
	}, nil
}
