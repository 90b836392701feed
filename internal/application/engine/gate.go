// Package engine implements the ledger and progression rules applied to an
// account snapshot. Functions here mutate the snapshot in memory and return
// the notifications to emit once the snapshot has been committed. They never
// perform I/O.
package engine

import (
	"fmt"
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// checkSpendingLimit rejects a spending transaction that would push the
// current period's spending over the parental limit.
func checkSpendingLimit(acct *entity.Account, role entity.CategoryRole, amount float64, now time.Time) error {
	controls := acct.User.ParentalControls
	if !role.IsSpending() || !controls.LimitApplies() {
		return nil
	}

	period := controls.SpendingLimitPeriod.OrDefault()
	spent := acct.Ledger.SumInPeriod(entity.SpendingFilter(acct.Categories), period.Start(now), nil)
	if spent+amount > *controls.SpendingLimitAmount {
		return domainerror.NewLimitExceededError(period)
	}
	return nil
}

// postTransactionAlerts returns the parental and budget alerts raised by a
// transaction that has just been appended to the ledger.
func postTransactionAlerts(acct *entity.Account, tx *entity.Transaction, role entity.CategoryRole, now time.Time) []*entity.Notification {
	if !role.IsSpending() {
		return nil
	}

	user := acct.User
	var alerts []*entity.Notification

	if user.ParentalControls.NotificationsEnabled && tx.Amount >= user.ParentalControls.Threshold() {
		n := entity.NewNotification(acct.Key(), entity.NotificationKindParentalAlert,
			fmt.Sprintf("Parental Alert:\nA transaction of %s for \"%s\" was just logged.", user.Currency.Format(tx.Amount), tx.Description),
			now)
		n.ParentEmail = user.ParentalControls.ParentEmail
		alerts = append(alerts, n)
	}

	category := acct.Categories.ByID(tx.CategoryID)
	if user.Preferences.Notifications && category != nil && category.HasBudget() {
		monthToDate := acct.Ledger.SumInPeriod(entity.CategoryIDFilter(category.ID), valueobject.StartOfMonth(now), nil)
		if monthToDate > *category.Budget {
			alerts = append(alerts, entity.NewNotification(acct.Key(), entity.NotificationKindBudgetAlert,
				fmt.Sprintf("Budget Alert ⚠️\nYou've exceeded your monthly budget for %s!", category.Name),
				now))
		}
	}

	return alerts
}
