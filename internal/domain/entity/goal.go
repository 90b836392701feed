package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultGoalEmoji is the emoji assigned to new savings goals.
const DefaultGoalEmoji = "🎯"

// SavingsGoal is a target amount the user saves toward.
// CurrentAmount never exceeds TargetAmount.
type SavingsGoal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Emoji         string
	VideoURL      string // Optional motivational video; empty when absent
	CreatedAt     time.Time
}

// NewSavingsGoal creates a new goal with nothing saved yet.
func NewSavingsGoal(name string, targetAmount float64, videoURL string) *SavingsGoal {
	return &SavingsGoal{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		TargetAmount: targetAmount,
		Emoji:        DefaultGoalEmoji,
		VideoURL:     strings.TrimSpace(videoURL),
		CreatedAt:    time.Now().UTC(),
	}
}

// IsComplete reports whether the goal has reached its target.
func (g *SavingsGoal) IsComplete() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Progress returns the saved fraction in [0, 1].
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// Contribute adds amount, clamped at the target. It reports whether the goal
// was already complete (and therefore left untouched) and whether this call
// completed it.
func (g *SavingsGoal) Contribute(amount float64) (alreadyComplete, completed bool) {
	if g.IsComplete() {
		return true, false
	}
	g.CurrentAmount = min(g.CurrentAmount+amount, g.TargetAmount)
	return false, g.IsComplete()
}

// Goals is the ordered goal collection of an account.
type Goals []*SavingsGoal

// ByID returns the goal with the given ID, or nil.
func (gs Goals) ByID(id string) *SavingsGoal {
	for _, g := range gs {
		if g.ID == id {
			return g
		}
	}
	return nil
}
