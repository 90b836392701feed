package category

import (
	"context"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	AccountKey string
}

// CategoryOutput is a category with its month-to-date spend.
type CategoryOutput struct {
	Category entity.Category
	Spent    float64
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []CategoryOutput
}

// ListCategoriesUseCase lists the account's categories in display order.
type ListCategoriesUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(sessions *session.Manager, clock adapter.Clock) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute performs the listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	monthStart := valueobject.StartOfMonth(uc.clock.Now())
	categories := make([]CategoryOutput, 0, len(s.Account.Categories))
	for _, c := range s.Account.Categories {
		categories = append(categories, CategoryOutput{
			Category: *c,
			Spent:    s.Account.Ledger.SumInPeriod(entity.CategoryIDFilter(c.ID), monthStart, nil),
		})
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
