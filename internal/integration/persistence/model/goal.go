package model

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// GoalDocument is the stored JSON shape of a savings goal.
type GoalDocument struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Emoji         string    `json:"emoji"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToEntity converts a GoalDocument to a domain SavingsGoal entity.
func (d *GoalDocument) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:            d.ID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: min(d.CurrentAmount, d.TargetAmount),
		Emoji:         d.Emoji,
		VideoURL:      d.VideoURL,
		CreatedAt:     d.CreatedAt,
	}
}

// GoalDocumentFromEntity creates a GoalDocument from a domain SavingsGoal entity.
func GoalDocumentFromEntity(g *entity.SavingsGoal) GoalDocument {
	return GoalDocument{
		ID:            g.ID,
		Name:          g.Name,
		Emoji:         g.Emoji,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		VideoURL:      g.VideoURL,
		CreatedAt:     g.CreatedAt,
	}
}
