package engine

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// Submission is the outcome of logging one transaction.
type Submission struct {
	Transaction   *entity.Transaction
	XPAwarded     float64
	LeveledUp     bool
	Notifications []*entity.Notification
}

// Submit runs a transaction through the spending gate, appends it to the
// ledger and applies its XP and streak effects. On a LimitExceededError the
// snapshot is left untouched.
//
// Amount and category are expected to have been validated by the caller.
func Submit(acct *entity.Account, amount float64, categoryID, description string, now time.Time) (*Submission, error) {
	role := acct.Categories.RoleOf(categoryID)

	if err := checkSpendingLimit(acct, role, amount, now); err != nil {
		return nil, err
	}

	// The streak looks at the ledger as it was before this transaction.
	var lastExpenseAt *time.Time
	if last := acct.Ledger.MostRecentExpense(acct.Categories); last != nil {
		lastExpenseAt = &last.Date
	}

	tx := entity.NewTransaction(amount, categoryID, description, now)
	acct.Ledger = acct.Ledger.Append(tx)

	notifications := postTransactionAlerts(acct, tx, role, now)

	isIncome := role == entity.CategoryRoleIncome
	xp := valueobject.TransactionXP(amount, isIncome)
	before := acct.User.Progression.Level
	progression := acct.User.Progression.ApplyXP(xp)
	if !isIncome {
		progression = progression.WithStreak(valueobject.NextStreak(progression.Streak, lastExpenseAt, now))
	}
	acct.User.Progression = progression

	return &Submission{
		Transaction:   tx,
		XPAwarded:     xp,
		LeveledUp:     progression.Level > before,
		Notifications: notifications,
	}, nil
}

// AwardXP applies a flat XP reward and reports whether the level changed.
func AwardXP(acct *entity.Account, xp float64) bool {
	before := acct.User.Progression.Level
	acct.User.Progression = acct.User.Progression.ApplyXP(xp)
	return acct.User.Progression.Level > before
}
