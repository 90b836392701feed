package valueobject

import (
	"math"
	"time"
)

const (
	// InitialXPToNextLevel is the level-1 threshold for new accounts.
	InitialXPToNextLevel = 100
	// LevelThresholdGrowth multiplies the threshold after every level-up.
	LevelThresholdGrowth = 1.5
	// GoalCompletionBonus is awarded once when a contribution completes a goal.
	GoalCompletionBonus = 50
)

// Progression is the gamified state of a user.
// After any update XP < XPToNextLevel holds.
type Progression struct {
	Level         int
	XP            float64
	XPToNextLevel float64
	Streak        int // Consecutive calendar days with at least one expense
}

// NewProgression returns the starting state of a new account.
func NewProgression() Progression {
	return Progression{
		Level:         1,
		XP:            0,
		XPToNextLevel: InitialXPToNextLevel,
		Streak:        0,
	}
}

// ApplyXP adds delta and performs the level-up cascade. Thresholds grow by
// round(threshold*1.5) on each level, so they depend on history and must be
// carried as state rather than derived from the level.
func (p Progression) ApplyXP(delta float64) Progression {
	p.XP += delta
	for p.XPToNextLevel > 0 && p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = RoundHalfUp(p.XPToNextLevel * LevelThresholdGrowth)
	}
	return p
}

// WithStreak returns p with the streak replaced.
func (p Progression) WithStreak(streak int) Progression {
	p.Streak = streak
	return p
}

// TransactionXP is the reward for logging a transaction.
// Savings transactions use the expense formula.
func TransactionXP(amount float64, isIncome bool) float64 {
	if isIncome {
		return RoundHalfUp(amount/4) + 5
	}
	return RoundHalfUp(amount/2) + 10
}

// NextStreak computes the streak after logging a non-income transaction at now,
// given the date of the most recent prior expense (nil when there is none).
func NextStreak(current int, lastExpense *time.Time, now time.Time) int {
	if lastExpense == nil {
		return 1
	}

	switch CalendarDaysBetween(*lastExpense, now) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// CalendarDaysBetween returns round((midnight(to) - midnight(from)) / 24h),
// evaluated in to's location.
func CalendarDaysBetween(from, to time.Time) int {
	today := StartOfDay(to)
	last := StartOfDay(from.In(to.Location()))
	return int(RoundHalfUp(float64(today.Sub(last)) / float64(24*time.Hour)))
}

// RoundHalfUp rounds x to the nearest integer with halves rounded toward +Inf.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
