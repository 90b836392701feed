package parental

import (
	"context"
	"time"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// RecentTransactionCount is the number of transactions shown to the parent.
const RecentTransactionCount = 5

// GetOverviewInput represents the input for the parent overview.
type GetOverviewInput struct {
	AccountKey string
}

// GetOverviewOutput summarizes the teen's spending for the parent.
type GetOverviewOutput struct {
	Name               string
	Currency           valueobject.Currency
	Progression        valueobject.Progression
	TotalSpent         float64
	SpentInLimitPeriod float64
	RecentTransactions []entity.Transaction
	Controls           entity.ParentalControls
}

// GetOverviewUseCase builds the parent dashboard.
type GetOverviewUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(sessions *session.Manager, clock adapter.Clock) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute performs the lookup.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	acct := s.Account
	spending := entity.SpendingFilter(acct.Categories)
	controls := acct.User.ParentalControls
	periodStart := controls.SpendingLimitPeriod.OrDefault().Start(uc.clock.Now())

	recent := acct.Ledger.Recent(RecentTransactionCount)
	transactions := make([]entity.Transaction, 0, len(recent))
	for _, tx := range recent {
		transactions = append(transactions, *tx)
	}

	return &GetOverviewOutput{
		Name:               acct.User.Name,
		Currency:           acct.User.Currency,
		Progression:        acct.User.Progression,
		TotalSpent:         acct.Ledger.SumInPeriod(spending, time.Time{}, nil),
		SpentInLimitPeriod: acct.Ledger.SumInPeriod(spending, periodStart, nil),
		RecentTransactions: transactions,
		Controls:           controls,
	}, nil
}
