package entity

import (
	"time"

	"github.com/spendxp/backend/internal/domain/valueobject"
)

// Ledger is the ordered transaction history of an account, newest first by
// insertion. Insertion order, not Date, is the recency contract: linked or
// backfilled entries may carry dates older than entries stored after them, and
// MostRecentExpense deliberately returns the first match in storage order.
type Ledger []*Transaction

// CategoryFilter selects transactions by category ID.
type CategoryFilter func(categoryID string) bool

// Append prepends tx and returns the updated ledger. It performs no validation.
func (l Ledger) Append(tx *Transaction) Ledger {
	out := make(Ledger, 0, len(l)+1)
	out = append(out, tx)
	return append(out, l...)
}

// SumInPeriod sums amounts of transactions matching filter whose date is in
// [start, end). A nil end leaves the window open.
func (l Ledger) SumInPeriod(filter CategoryFilter, start time.Time, end *time.Time) float64 {
	var total float64
	for _, tx := range l {
		if tx.Date.Before(start) {
			continue
		}
		if end != nil && !tx.Date.Before(*end) {
			continue
		}
		if filter != nil && !filter(tx.CategoryID) {
			continue
		}
		total += tx.Amount
	}
	return total
}

// MostRecentExpense returns the first transaction in storage order whose
// category is not income, or nil.
func (l Ledger) MostRecentExpense(categories Categories) *Transaction {
	for _, tx := range l {
		if categories.RoleOf(tx.CategoryID) != CategoryRoleIncome {
			return tx
		}
	}
	return nil
}

// CountOnDay counts transactions matching filter dated on day's local calendar date.
func (l Ledger) CountOnDay(filter CategoryFilter, day time.Time) int {
	count := 0
	for _, tx := range l {
		if filter != nil && !filter(tx.CategoryID) {
			continue
		}
		if valueobject.SameDay(tx.Date, day, day.Location()) {
			count++
		}
	}
	return count
}

// Recent returns up to n of the most recently inserted transactions.
func (l Ledger) Recent(n int) Ledger {
	if n >= len(l) {
		return l
	}
	return l[:n]
}

// SpendingFilter matches categories that count as spending (neither income nor savings).
func SpendingFilter(categories Categories) CategoryFilter {
	return func(categoryID string) bool {
		return categories.RoleOf(categoryID).IsSpending()
	}
}

// NotIncomeFilter matches every category except income.
func NotIncomeFilter(categories Categories) CategoryFilter {
	return func(categoryID string) bool {
		return categories.RoleOf(categoryID) != CategoryRoleIncome
	}
}

// CategoryIDFilter matches exactly one category.
func CategoryIDFilter(id string) CategoryFilter {
	return func(categoryID string) bool {
		return categoryID == id
	}
}
