package engine

import (
	"fmt"
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// SetBudget sets or clears (nil) a category budget. When parent notifications
// are on and the budget actually changed, the parent is told.
func SetBudget(acct *entity.Account, categoryID string, budget *float64, now time.Time) (*entity.Category, []*entity.Notification, error) {
	previous, ok := acct.Categories.SetBudget(categoryID, budget)
	if !ok {
		return nil, nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "category not found", domainerror.ErrCategoryNotFound)
	}
	category := acct.Categories.ByID(categoryID)

	controls := acct.User.ParentalControls
	if !controls.NotificationsEnabled || sameBudget(previous, budget) {
		return category, nil, nil
	}

	format := acct.User.Currency.Format
	var message string
	switch {
	case previous == nil && budget != nil:
		message = fmt.Sprintf("Parent Notification:\nA new budget for \"%s\" was set to %s.", category.Name, format(*budget))
	case previous != nil && budget != nil:
		message = fmt.Sprintf("Parent Notification:\nThe budget for \"%s\" was changed from %s to %s.", category.Name, format(*previous), format(*budget))
	default:
		message = fmt.Sprintf("Parent Notification:\nThe budget for \"%s\" (%s) was removed.", category.Name, format(*previous))
	}

	n := entity.NewNotification(acct.Key(), entity.NotificationKindBudgetChange, message, now)
	n.ParentEmail = controls.ParentEmail
	return category, []*entity.Notification{n}, nil
}

func sameBudget(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
