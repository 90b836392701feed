package engine

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// Contribution is the outcome of adding money to a savings goal.
type Contribution struct {
	Goal      *entity.SavingsGoal
	Ignored   bool // The goal was already complete
	Completed bool
	BonusXP   float64
	// ShadowTransaction is the Savings transaction logged for the contribution, nil when it failed.
	ShadowTransaction *entity.Transaction
	// ShadowErr is the reason the shadow transaction was not logged. The
	// contribution stands regardless.
	ShadowErr     error
	Notifications []*entity.Notification
}

// Contribute adds amount to a goal, clamped at its target. The full requested
// amount is also logged as a Savings transaction through Submit. Completing
// the goal awards the completion bonus once.
func Contribute(acct *entity.Account, goalID string, amount float64, now time.Time) (*Contribution, error) {
	goal := acct.Goals.ByID(goalID)
	if goal == nil {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	}

	alreadyComplete, completed := goal.Contribute(amount)
	if alreadyComplete {
		return &Contribution{Goal: goal, Ignored: true}, nil
	}

	result := &Contribution{Goal: goal, Completed: completed}

	savings := acct.Categories.ByRole(entity.CategoryRoleSavings)
	if savings == nil {
		result.ShadowErr = domainerror.ErrCategoryNotFoundForTransaction
	} else {
		sub, err := Submit(acct, amount, savings.ID, "Contribution to \""+goal.Name+"\"", now)
		if err != nil {
			result.ShadowErr = err
		} else {
			result.ShadowTransaction = sub.Transaction
			result.Notifications = sub.Notifications
		}
	}

	if completed {
		result.BonusXP = valueobject.GoalCompletionBonus
		AwardXP(acct, valueobject.GoalCompletionBonus)
	}

	return result, nil
}
