package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id string, amount float64, categoryID string, date time.Time) *Transaction {
	return &Transaction{ID: id, Amount: amount, CategoryID: categoryID, Description: id, Date: date, Source: TransactionSourceManual}
}

func TestLedger_AppendPrepends(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	var l Ledger
	l = l.Append(tx("a", 1, "cat-food", now))
	l = l.Append(tx("b", 2, "cat-food", now))

	require.Len(t, l, 2)
	assert.Equal(t, "b", l[0].ID)
	assert.Equal(t, "a", l[1].ID)
}

func TestLedger_SumInPeriod(t *testing.T) {
	cats := DefaultCategories()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	l := Ledger{
		tx("1", 10, "cat-food", start),
		tx("2", 20, "cat-income", start.Add(time.Hour)),
		tx("3", 5, "cat-savings", start.Add(2*time.Hour)),
		tx("4", 7, "cat-gaming", start.Add(-time.Second)),
		tx("5", 3, "custom-removed", start.Add(3*time.Hour)),
	}

	t.Run("start is inclusive", func(t *testing.T) {
		assert.Equal(t, 38.0, l.SumInPeriod(nil, start, nil))
	})

	t.Run("end is exclusive", func(t *testing.T) {
		end := start.Add(2 * time.Hour)
		assert.Equal(t, 30.0, l.SumInPeriod(nil, start, &end))
	})

	t.Run("spending excludes income and savings", func(t *testing.T) {
		assert.Equal(t, 13.0, l.SumInPeriod(SpendingFilter(cats), start, nil))
	})

	t.Run("not income keeps savings", func(t *testing.T) {
		assert.Equal(t, 18.0, l.SumInPeriod(NotIncomeFilter(cats), start, nil))
	})

	t.Run("single category", func(t *testing.T) {
		assert.Equal(t, 10.0, l.SumInPeriod(CategoryIDFilter("cat-food"), start, nil))
	})
}

func TestLedger_MostRecentExpenseUsesStorageOrder(t *testing.T) {
	cats := DefaultCategories()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	l := Ledger{
		tx("income", 50, "cat-income", now),
		tx("older-date", 10, "cat-food", now.Add(-48*time.Hour)),
		tx("newer-date", 10, "cat-food", now),
	}

	got := l.MostRecentExpense(cats)
	require.NotNil(t, got)
	assert.Equal(t, "older-date", got.ID)

	assert.Nil(t, Ledger{tx("only-income", 1, "cat-income", now)}.MostRecentExpense(cats))
}

func TestLedger_CountOnDay(t *testing.T) {
	cats := DefaultCategories()
	day := time.Date(2024, 5, 15, 18, 0, 0, 0, time.UTC)
	l := Ledger{
		tx("1", 1, "cat-food", day.Add(-17*time.Hour)),
		tx("2", 1, "cat-savings", day),
		tx("3", 1, "cat-income", day),
		tx("4", 1, "cat-food", day.Add(-24*time.Hour)),
	}

	assert.Equal(t, 2, l.CountOnDay(NotIncomeFilter(cats), day))
}

func TestLedger_Recent(t *testing.T) {
	now := time.Now()
	l := Ledger{tx("1", 1, "c", now), tx("2", 1, "c", now), tx("3", 1, "c", now)}

	assert.Len(t, l.Recent(2), 2)
	assert.Len(t, l.Recent(10), 3)
	assert.Equal(t, "1", l.Recent(1)[0].ID)
}
