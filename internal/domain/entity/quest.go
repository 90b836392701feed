package entity

import "sort"

// QuestType selects the completion predicate of a quest.
type QuestType string

const (
	QuestTypeLogTransactions QuestType = "logTransactions"
	QuestTypeSaveToGoal      QuestType = "saveToGoal"
	QuestTypeStayUnderBudget QuestType = "stayUnderBudget"
	QuestTypeQuiz            QuestType = "quiz"
)

// QuestCategory groups quests by cadence.
type QuestCategory string

const (
	QuestCategoryDaily   QuestCategory = "daily"
	QuestCategoryWeekly  QuestCategory = "weekly"
	QuestCategorySpecial QuestCategory = "special"
)

// Quiz is a single multiple-choice question.
type Quiz struct {
	Question      string
	Options       []string
	CorrectAnswer int // Index into Options
}

// IsCorrect reports whether answer is the index of the correct option.
func (q Quiz) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}

// Quest is a static task definition with a one-time claimable XP reward.
// Only one of TargetCount, TargetAmount and TargetCategoryID is meaningful,
// depending on Type.
type Quest struct {
	ID               string
	Type             QuestType
	Category         QuestCategory
	Title            string
	Description      string
	XPReward         float64
	TargetCount      int
	TargetAmount     float64 // Base USD amount, converted to the user's currency
	TargetCategoryID string
	Quiz             *Quiz
}

var questCatalogue = []*Quest{
	{
		ID:          "q1",
		Type:        QuestTypeQuiz,
		Category:    QuestCategorySpecial,
		Title:       "Finance 101 Quiz",
		Description: "What's the best way to grow your money over time?",
		XPReward:    30,
		TargetCount: 1,
		Quiz: &Quiz{
			Question:      "What's the best way to grow your money over time?",
			Options:       []string{"Hiding it under a mattress", "A high-yield savings account", "Spending it all immediately"},
			CorrectAnswer: 1,
		},
	},
	{
		ID:          "q2",
		Type:        QuestTypeLogTransactions,
		Category:    QuestCategoryDaily,
		Title:       "Tracker Titan",
		Description: "Log 3 expenses in a single day to build a habit.",
		XPReward:    40,
		TargetCount: 3,
	},
	{
		ID:           "q3",
		Type:         QuestTypeSaveToGoal,
		Category:     QuestCategoryWeekly,
		Title:        "Goal Getter",
		Description:  "Contribute at least {amount} to any goal this week.",
		XPReward:     50,
		TargetAmount: 20,
	},
	{
		ID:               "q4",
		Type:             QuestTypeStayUnderBudget,
		Category:         QuestCategoryWeekly,
		Title:            "Budget Boss",
		Description:      "Keep your Gaming spending under budget for the month.",
		XPReward:         75,
		TargetCategoryID: "cat-gaming",
	},
}

// Quests returns the static quest catalogue.
func Quests() []*Quest {
	return questCatalogue
}

// QuestByID returns the catalogue quest with the given ID, or nil.
func QuestByID(id string) *Quest {
	for _, q := range questCatalogue {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// IDSet is a durable set of IDs, used for claimed quests and completed modules.
// Membership is permanent: IDs are never removed.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id and reports whether it was newly added.
func (s IDSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Sorted returns the members in lexical order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
