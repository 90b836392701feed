package transaction

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// DefaultListLimit is the page size used when none is given.
const DefaultListLimit = 50

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	AccountKey string
	CategoryID string // Optional filter
	Limit      int
	Offset     int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
	Total        int
}

// ListTransactionsUseCase lists the ledger in storage order, newest first.
type ListTransactionsUseCase struct {
	sessions *session.Manager
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(sessions *session.Manager) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		sessions: sessions,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := max(input.Offset, 0)

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	matched := make([]entity.Transaction, 0, len(s.Account.Ledger))
	for _, tx := range s.Account.Ledger {
		if input.CategoryID != "" && tx.CategoryID != input.CategoryID {
			continue
		}
		matched = append(matched, *tx)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	return &ListTransactionsOutput{
		Transactions: matched[offset:end],
		Total:        total,
	}, nil
}
