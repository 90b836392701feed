package engine

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// QuestStatus is the evaluated state of one quest for an account.
type QuestStatus struct {
	Quest    *entity.Quest
	Progress float64
	Target   float64
	Complete bool
	Claimed  bool
}

// EvaluateQuest computes the completion predicate of a quest. It is
// recomputed on every call, so a quest may stop being complete before it is
// claimed. quizPassed holds the quiz quests answered correctly this session.
func EvaluateQuest(acct *entity.Account, quest *entity.Quest, quizPassed entity.IDSet, now time.Time) QuestStatus {
	status := QuestStatus{Quest: quest, Claimed: acct.ClaimedQuests.Has(quest.ID)}

	switch quest.Type {
	case entity.QuestTypeLogTransactions:
		status.Target = float64(quest.TargetCount)
		status.Progress = float64(acct.Ledger.CountOnDay(entity.NotIncomeFilter(acct.Categories), now))
		status.Complete = status.Progress >= status.Target

	case entity.QuestTypeSaveToGoal:
		status.Target = acct.User.Currency.ConvertBase(quest.TargetAmount)
		if savings := acct.Categories.ByRole(entity.CategoryRoleSavings); savings != nil {
			status.Progress = acct.Ledger.SumInPeriod(entity.CategoryIDFilter(savings.ID), now.AddDate(0, 0, -7), nil)
		}
		status.Complete = status.Progress >= status.Target

	case entity.QuestTypeStayUnderBudget:
		category := acct.Categories.ByID(quest.TargetCategoryID)
		if category == nil || category.Budget == nil {
			return status
		}
		status.Target = *category.Budget
		status.Progress = acct.Ledger.SumInPeriod(entity.CategoryIDFilter(category.ID), valueobject.StartOfMonth(now), nil)
		status.Complete = status.Progress <= status.Target

	case entity.QuestTypeQuiz:
		status.Target = float64(quest.TargetCount)
		if quizPassed.Has(quest.ID) {
			status.Progress = status.Target
			status.Complete = true
		}
	}

	return status
}

// EvaluateQuests evaluates the whole catalogue.
func EvaluateQuests(acct *entity.Account, quizPassed entity.IDSet, now time.Time) []QuestStatus {
	quests := entity.Quests()
	statuses := make([]QuestStatus, 0, len(quests))
	for _, q := range quests {
		statuses = append(statuses, EvaluateQuest(acct, q, quizPassed, now))
	}
	return statuses
}

// ClaimQuest awards a completed quest's XP and records it as claimed. Claiming
// an already claimed quest does nothing and awards 0.
func ClaimQuest(acct *entity.Account, questID string, quizPassed entity.IDSet, now time.Time) (float64, error) {
	quest := entity.QuestByID(questID)
	if quest == nil {
		return 0, domainerror.NewQuestError(domainerror.ErrCodeQuestNotFound, "quest not found", domainerror.ErrQuestNotFound)
	}
	if acct.ClaimedQuests.Has(quest.ID) {
		return 0, nil
	}
	if !EvaluateQuest(acct, quest, quizPassed, now).Complete {
		return 0, domainerror.NewQuestError(domainerror.ErrCodeQuestNotComplete, "quest is not complete yet", domainerror.ErrQuestNotComplete)
	}

	AwardXP(acct, quest.XPReward)
	acct.ClaimedQuests.Add(quest.ID)
	return quest.XPReward, nil
}

// AnswerQuiz checks a quiz answer for a quest and returns whether it was correct.
func AnswerQuiz(questID string, answer int) (bool, error) {
	quest := entity.QuestByID(questID)
	if quest == nil {
		return false, domainerror.NewQuestError(domainerror.ErrCodeQuestNotFound, "quest not found", domainerror.ErrQuestNotFound)
	}
	if quest.Quiz == nil {
		return false, domainerror.NewQuestError(domainerror.ErrCodeQuestHasNoQuiz, "quest has no quiz", domainerror.ErrQuestHasNoQuiz)
	}
	return quest.Quiz.IsCorrect(answer), nil
}
