package dto

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount"`
	VideoURL     string  `json:"video_url,omitempty"`
}

// ContributeRequest represents the request body for a goal contribution.
type ContributeRequest struct {
	Amount float64 `json:"amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Emoji         string    `json:"emoji"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Progress      float64   `json:"progress"`
	Complete      bool      `json:"complete"`
	VideoURL      string    `json:"video_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributeResponse represents the result of a contribution.
type ContributeResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Ignored     bool                `json:"ignored"`
	Completed   bool                `json:"completed"`
	BonusXP     float64             `json:"bonus_xp"`
	Progression ProgressionResponse `json:"progression"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Emoji:         g.Emoji,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		Complete:      g.IsComplete(),
		VideoURL:      g.VideoURL,
		CreatedAt:     g.CreatedAt,
	}
}
