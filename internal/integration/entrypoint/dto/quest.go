package dto

import (
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/domain/entity"
)

// AnswerRequest carries a quiz answer as an option index.
type AnswerRequest struct {
	Answer *int `json:"answer" binding:"required"`
}

// QuizResponse represents a quiz without its answer.
type QuizResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuestResponse represents a quest with its evaluated status.
type QuestResponse struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Category    string        `json:"category"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	XPReward    float64       `json:"xp_reward"`
	Progress    float64       `json:"progress"`
	Target      float64       `json:"target"`
	Complete    bool          `json:"complete"`
	Claimed     bool          `json:"claimed"`
	Quiz        *QuizResponse `json:"quiz,omitempty"`
}

// QuestListResponse represents the quest board.
type QuestListResponse struct {
	Quests []QuestResponse `json:"quests"`
}

// ClaimResponse represents an XP award.
type ClaimResponse struct {
	XPAwarded   float64             `json:"xp_awarded"`
	Progression ProgressionResponse `json:"progression"`
}

// AnswerResponse reports whether a quiz answer was correct.
type AnswerResponse struct {
	Correct bool `json:"correct"`
}

// ToQuizResponse hides the correct answer of a quiz.
func ToQuizResponse(q *entity.Quiz) *QuizResponse {
	if q == nil {
		return nil
	}
	return &QuizResponse{
		Question: q.Question,
		Options:  q.Options,
	}
}

// ToQuestResponse converts an evaluated quest to its DTO.
func ToQuestResponse(s engine.QuestStatus) QuestResponse {
	return QuestResponse{
		ID:          s.Quest.ID,
		Type:        string(s.Quest.Type),
		Category:    string(s.Quest.Category),
		Title:       s.Quest.Title,
		Description: s.Quest.Description,
		XPReward:    s.Quest.XPReward,
		Progress:    s.Progress,
		Target:      s.Target,
		Complete:    s.Complete,
		Claimed:     s.Claimed,
		Quiz:        ToQuizResponse(s.Quest.Quiz),
	}
}
