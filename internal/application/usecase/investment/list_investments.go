package investment

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	AccountKey string
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []entity.Investment
	TotalValue  float64
}

// ListInvestmentsUseCase lists the account's investments.
type ListInvestmentsUseCase struct {
	sessions *session.Manager
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(sessions *session.Manager) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		sessions: sessions,
	}
}

// Execute performs the listing.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	output := &ListInvestmentsOutput{
		Investments: make([]entity.Investment, 0, len(s.Account.Investments)),
	}
	for _, inv := range s.Account.Investments {
		output.Investments = append(output.Investments, *inv)
		output.TotalValue += inv.CurrentValue
	}
	return output, nil
}
