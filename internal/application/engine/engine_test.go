package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestAccount(t *testing.T) *entity.Account {
	t.Helper()
	user := entity.NewUser("teen@example.com", "Teen", "USD", "")
	return entity.NewAccount(user)
}

func seed(acct *entity.Account, amount float64, categoryID string, date time.Time) {
	acct.Ledger = acct.Ledger.Append(&entity.Transaction{
		ID:          date.Format(time.RFC3339Nano) + categoryID,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: "seed",
		Date:        date,
		Source:      entity.TransactionSourceManual,
	})
}

func ptr(v float64) *float64 {
	return &v
}

func TestSubmit_Expense(t *testing.T) {
	acct := newTestAccount(t)

	sub, err := Submit(acct, 25, "cat-food", "Pizza", testNow)

	require.NoError(t, err)
	assert.Equal(t, 23.0, sub.XPAwarded)
	assert.False(t, sub.LeveledUp)
	assert.Empty(t, sub.Notifications)
	require.Len(t, acct.Ledger, 1)
	assert.Equal(t, "Pizza", acct.Ledger[0].Description)
	assert.Equal(t, valueobject.Progression{Level: 1, XP: 23, XPToNextLevel: 100, Streak: 1}, acct.User.Progression)
}

func TestSubmit_SameInstantGetsDistinctIDs(t *testing.T) {
	acct := newTestAccount(t)

	first, err := Submit(acct, 5, "cat-food", "one", testNow)
	require.NoError(t, err)
	second, err := Submit(acct, 5, "cat-food", "two", testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, first.Transaction.ID)
	assert.NotEqual(t, first.Transaction.ID, second.Transaction.ID)
}

func TestSubmit_IncomeLeavesStreak(t *testing.T) {
	acct := newTestAccount(t)
	acct.User.Progression.Streak = 4

	sub, err := Submit(acct, 100, "cat-income", "Allowance", testNow)

	require.NoError(t, err)
	assert.Equal(t, 30.0, sub.XPAwarded)
	assert.Equal(t, 4, acct.User.Progression.Streak)
}

func TestSubmit_LevelUp(t *testing.T) {
	acct := newTestAccount(t)
	acct.User.Progression.XP = 90

	sub, err := Submit(acct, 20, "cat-gaming", "Game", testNow)

	require.NoError(t, err)
	assert.True(t, sub.LeveledUp)
	assert.Equal(t, 2, acct.User.Progression.Level)
	assert.Equal(t, 10.0, acct.User.Progression.XP)
	assert.Equal(t, 150.0, acct.User.Progression.XPToNextLevel)
}

func TestSubmit_StreakExtendsFromYesterday(t *testing.T) {
	acct := newTestAccount(t)
	seed(acct, 5, "cat-food", testNow.Add(-24*time.Hour))
	acct.User.Progression.Streak = 2

	_, err := Submit(acct, 5, "cat-transport", "Bus", testNow)

	require.NoError(t, err)
	assert.Equal(t, 3, acct.User.Progression.Streak)
}

func TestSubmit_SpendingLimit(t *testing.T) {
	setup := func(t *testing.T) *entity.Account {
		acct := newTestAccount(t)
		acct.User.ParentalControls.SpendingLimitEnabled = true
		acct.User.ParentalControls.SpendingLimitAmount = ptr(50)
		acct.User.ParentalControls.SpendingLimitPeriod = valueobject.SpendingPeriodMonthly
		seed(acct, 45, "cat-food", testNow.Add(-24*time.Hour))
		return acct
	}

	t.Run("rejects and leaves snapshot untouched", func(t *testing.T) {
		acct := setup(t)
		before := acct.User.Progression

		sub, err := Submit(acct, 10, "cat-shopping", "Shoes", testNow)

		assert.Nil(t, sub)
		var limitErr *domainerror.LimitExceededError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, valueobject.SpendingPeriodMonthly, limitErr.Period)
		assert.ErrorIs(t, err, domainerror.ErrLimitExceeded)
		assert.Equal(t, "This transaction exceeds the monthly spending limit.", err.Error())
		assert.Len(t, acct.Ledger, 1)
		assert.Equal(t, before, acct.User.Progression)
	})

	t.Run("exactly reaching the limit is allowed", func(t *testing.T) {
		acct := setup(t)
		_, err := Submit(acct, 5, "cat-food", "Snack", testNow)
		assert.NoError(t, err)
	})

	t.Run("savings and income bypass the gate", func(t *testing.T) {
		acct := setup(t)
		_, err := Submit(acct, 100, "cat-savings", "Stash", testNow)
		assert.NoError(t, err)
		_, err = Submit(acct, 100, "cat-income", "Paycheck", testNow)
		assert.NoError(t, err)
	})

	t.Run("spending from a previous period is ignored", func(t *testing.T) {
		acct := setup(t)
		acct.User.ParentalControls.SpendingLimitPeriod = valueobject.SpendingPeriodDaily
		_, err := Submit(acct, 10, "cat-food", "Lunch", testNow)
		assert.NoError(t, err)
	})

	t.Run("zero limit disables the gate", func(t *testing.T) {
		acct := setup(t)
		acct.User.ParentalControls.SpendingLimitAmount = ptr(0)
		_, err := Submit(acct, 1000, "cat-food", "Feast", testNow)
		assert.NoError(t, err)
	})
}

func TestSubmit_BudgetAlert(t *testing.T) {
	setup := func(t *testing.T) *entity.Account {
		acct := newTestAccount(t)
		acct.Categories.SetBudget("cat-food", ptr(100))
		seed(acct, 90, "cat-food", testNow.Add(-time.Hour))
		return acct
	}

	t.Run("staying under budget raises nothing", func(t *testing.T) {
		acct := setup(t)
		sub, err := Submit(acct, 5, "cat-food", "Snack", testNow)
		require.NoError(t, err)
		assert.Empty(t, sub.Notifications)
	})

	t.Run("exceeding budget raises an alert", func(t *testing.T) {
		acct := setup(t)
		sub, err := Submit(acct, 15, "cat-food", "Dinner", testNow)
		require.NoError(t, err)
		require.Len(t, sub.Notifications, 1)
		assert.Equal(t, entity.NotificationKindBudgetAlert, sub.Notifications[0].Kind)
		assert.Contains(t, sub.Notifications[0].Message, "Food")
	})

	t.Run("muted preferences raise nothing", func(t *testing.T) {
		acct := setup(t)
		acct.User.Preferences.Notifications = false
		sub, err := Submit(acct, 15, "cat-food", "Dinner", testNow)
		require.NoError(t, err)
		assert.Empty(t, sub.Notifications)
	})
}

func TestSubmit_ParentalAlert(t *testing.T) {
	acct := newTestAccount(t)
	acct.User.ParentalControls.NotificationsEnabled = true
	acct.User.ParentalControls.NotificationThreshold = ptr(20)
	acct.User.ParentalControls.ParentEmail = "parent@example.com"

	sub, err := Submit(acct, 10, "cat-food", "Snack", testNow)
	require.NoError(t, err)
	assert.Empty(t, sub.Notifications)

	sub, err = Submit(acct, 25, "cat-gaming", "New game", testNow)
	require.NoError(t, err)
	require.Len(t, sub.Notifications, 1)
	n := sub.Notifications[0]
	assert.Equal(t, entity.NotificationKindParentalAlert, n.Kind)
	assert.Equal(t, "parent@example.com", n.ParentEmail)
	assert.Contains(t, n.Message, "$25.00")
	assert.Contains(t, n.Message, "New game")

	sub, err = Submit(acct, 500, "cat-income", "Gift", testNow)
	require.NoError(t, err)
	assert.Empty(t, sub.Notifications)
}

func TestContribute(t *testing.T) {
	acct := newTestAccount(t)
	goal := entity.NewSavingsGoal("Bike", 100, "")
	acct.Goals = append(acct.Goals, goal)

	first, err := Contribute(acct, goal.ID, 90, testNow)
	require.NoError(t, err)
	assert.False(t, first.Completed)
	assert.Zero(t, first.BonusXP)
	require.NotNil(t, first.ShadowTransaction)
	assert.Equal(t, "cat-savings", first.ShadowTransaction.CategoryID)
	assert.Equal(t, `Contribution to "Bike"`, first.ShadowTransaction.Description)

	second, err := Contribute(acct, goal.ID, 30, testNow)
	require.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Equal(t, 50.0, second.BonusXP)
	assert.Equal(t, 100.0, goal.CurrentAmount)
	assert.Equal(t, 30.0, second.ShadowTransaction.Amount)

	ledgerLen := len(acct.Ledger)
	progression := acct.User.Progression

	third, err := Contribute(acct, goal.ID, 10, testNow)
	require.NoError(t, err)
	assert.True(t, third.Ignored)
	assert.Nil(t, third.ShadowTransaction)
	assert.Len(t, acct.Ledger, ledgerLen)
	assert.Equal(t, progression, acct.User.Progression)
}

func TestContribute_GoalNotFound(t *testing.T) {
	acct := newTestAccount(t)

	_, err := Contribute(acct, "missing", 10, testNow)

	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr))
	assert.Equal(t, domainerror.ErrCodeGoalNotFound, goalErr.Code)
}

func TestContribute_WithoutSavingsCategory(t *testing.T) {
	acct := newTestAccount(t)
	acct.Categories = entity.Categories{acct.Categories.ByID("cat-food")}
	goal := entity.NewSavingsGoal("Bike", 100, "")
	acct.Goals = append(acct.Goals, goal)

	result, err := Contribute(acct, goal.ID, 40, testNow)

	require.NoError(t, err)
	assert.ErrorIs(t, result.ShadowErr, domainerror.ErrCategoryNotFoundForTransaction)
	assert.Equal(t, 40.0, goal.CurrentAmount)
	assert.Empty(t, acct.Ledger)
}

func TestSetBudget(t *testing.T) {
	acct := newTestAccount(t)
	acct.User.ParentalControls.NotificationsEnabled = true
	acct.User.ParentalControls.ParentEmail = "parent@example.com"

	category, notes, err := SetBudget(acct, "cat-gaming", ptr(50), testNow)
	require.NoError(t, err)
	assert.Equal(t, 50.0, *category.Budget)
	require.Len(t, notes, 1)
	assert.Equal(t, entity.NotificationKindBudgetChange, notes[0].Kind)
	assert.Contains(t, notes[0].Message, "A new budget for \"Gaming\" was set to $50.00.")

	_, notes, err = SetBudget(acct, "cat-gaming", ptr(50), testNow)
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, notes, err = SetBudget(acct, "cat-gaming", ptr(75), testNow)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "changed from $50.00 to $75.00")

	_, notes, err = SetBudget(acct, "cat-gaming", nil, testNow)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "($75.00) was removed")

	_, _, err = SetBudget(acct, "missing", ptr(1), testNow)
	var catErr *domainerror.CategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, domainerror.ErrCodeCategoryNotFound, catErr.Code)
}

func TestSetBudget_SilentWithoutParentNotifications(t *testing.T) {
	acct := newTestAccount(t)

	_, notes, err := SetBudget(acct, "cat-food", ptr(20), testNow)

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestEvaluateQuests(t *testing.T) {
	acct := newTestAccount(t)

	t.Run("log transactions counts non-income entries today", func(t *testing.T) {
		seed(acct, 1, "cat-food", testNow)
		seed(acct, 1, "cat-savings", testNow)
		seed(acct, 1, "cat-income", testNow)

		status := EvaluateQuest(acct, entity.QuestByID("q2"), entity.NewIDSet(), testNow)
		assert.Equal(t, 2.0, status.Progress)
		assert.False(t, status.Complete)

		seed(acct, 1, "cat-food", testNow)
		status = EvaluateQuest(acct, entity.QuestByID("q2"), entity.NewIDSet(), testNow)
		assert.True(t, status.Complete)
	})

	t.Run("save to goal target follows currency", func(t *testing.T) {
		inr := newTestAccount(t)
		inr.User.Currency = "INR"
		status := EvaluateQuest(inr, entity.QuestByID("q3"), entity.NewIDSet(), testNow)
		assert.Equal(t, 1660.0, status.Target)
		assert.False(t, status.Complete)
	})

	t.Run("stay under budget needs a budget", func(t *testing.T) {
		fresh := newTestAccount(t)
		assert.False(t, EvaluateQuest(fresh, entity.QuestByID("q4"), entity.NewIDSet(), testNow).Complete)

		fresh.Categories.SetBudget("cat-gaming", ptr(50))
		assert.True(t, EvaluateQuest(fresh, entity.QuestByID("q4"), entity.NewIDSet(), testNow).Complete)

		seed(fresh, 60, "cat-gaming", testNow)
		assert.False(t, EvaluateQuest(fresh, entity.QuestByID("q4"), entity.NewIDSet(), testNow).Complete)
	})

	t.Run("quiz follows session flag", func(t *testing.T) {
		assert.False(t, EvaluateQuest(acct, entity.QuestByID("q1"), entity.NewIDSet(), testNow).Complete)
		assert.True(t, EvaluateQuest(acct, entity.QuestByID("q1"), entity.NewIDSet("q1"), testNow).Complete)
	})

	assert.Len(t, EvaluateQuests(acct, entity.NewIDSet(), testNow), len(entity.Quests()))
}

func TestClaimQuest(t *testing.T) {
	acct := newTestAccount(t)
	quizPassed := entity.NewIDSet()

	_, err := ClaimQuest(acct, "q1", quizPassed, testNow)
	var questErr *domainerror.QuestError
	require.True(t, errors.As(err, &questErr))
	assert.Equal(t, domainerror.ErrCodeQuestNotComplete, questErr.Code)

	quizPassed.Add("q1")
	xp, err := ClaimQuest(acct, "q1", quizPassed, testNow)
	require.NoError(t, err)
	assert.Equal(t, 30.0, xp)
	assert.Equal(t, 30.0, acct.User.Progression.XP)

	xp, err = ClaimQuest(acct, "q1", quizPassed, testNow)
	require.NoError(t, err)
	assert.Zero(t, xp)
	assert.Equal(t, 30.0, acct.User.Progression.XP)

	_, err = ClaimQuest(acct, "nope", quizPassed, testNow)
	require.True(t, errors.As(err, &questErr))
	assert.Equal(t, domainerror.ErrCodeQuestNotFound, questErr.Code)
}

func TestAnswerQuiz(t *testing.T) {
	correct, err := AnswerQuiz("q1", 1)
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = AnswerQuiz("q1", 0)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = AnswerQuiz("q2", 0)
	assert.ErrorIs(t, err, domainerror.ErrQuestHasNoQuiz)
}

func TestCompleteModule(t *testing.T) {
	acct := newTestAccount(t)

	_, err := CompleteModule(acct, "m1", 0)
	assert.ErrorIs(t, err, domainerror.ErrIncorrectAnswer)
	assert.False(t, acct.CompletedModules.Has("m1"))

	xp, err := CompleteModule(acct, "m1", 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, xp)
	assert.Equal(t, 2, acct.User.Progression.Level)
	assert.True(t, acct.CompletedModules.Has("m1"))

	xp, err = CompleteModule(acct, "m1", 1)
	require.NoError(t, err)
	assert.Zero(t, xp)

	_, err = CompleteModule(acct, "m9", 1)
	assert.ErrorIs(t, err, domainerror.ErrModuleNotFound)
}

func TestLinkAccount(t *testing.T) {
	acct := newTestAccount(t)
	seed(acct, 5, "cat-food", testNow.Add(-time.Hour))
	progression := acct.User.Progression

	linked := LinkAccount(acct, "Chase", entity.LinkedAccountTypeBank, testNow)

	assert.Equal(t, "Chase", linked.Provider)
	assert.Contains(t, linked.Mask, "Checking ...")
	require.Len(t, acct.User.LinkedAccounts, 1)
	require.Len(t, acct.Ledger, 3)
	assert.Equal(t, entity.TransactionSourceLinked, acct.Ledger[0].Source)
	assert.Equal(t, entity.TransactionSourceLinked, acct.Ledger[1].Source)
	assert.Equal(t, "seed", acct.Ledger[2].Description)
	assert.Equal(t, progression, acct.User.Progression)

	again := LinkAccount(acct, "Chase", entity.LinkedAccountTypeBank, testNow)
	assert.NotEqual(t, linked.ID, again.ID)
	ids := map[string]bool{}
	for _, tx := range acct.Ledger {
		assert.False(t, ids[tx.ID], "duplicate transaction id %s", tx.ID)
		ids[tx.ID] = true
	}
}
