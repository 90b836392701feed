package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavingsGoal_Contribute(t *testing.T) {
	g := NewSavingsGoal("  New Bike ", 100, "")
	assert.Equal(t, "New Bike", g.Name)
	assert.Equal(t, DefaultGoalEmoji, g.Emoji)

	alreadyComplete, completed := g.Contribute(90)
	assert.False(t, alreadyComplete)
	assert.False(t, completed)
	assert.Equal(t, 0.9, g.Progress())

	alreadyComplete, completed = g.Contribute(30)
	assert.False(t, alreadyComplete)
	assert.True(t, completed)
	assert.Equal(t, 100.0, g.CurrentAmount)

	alreadyComplete, completed = g.Contribute(10)
	assert.True(t, alreadyComplete)
	assert.False(t, completed)
	assert.Equal(t, 100.0, g.CurrentAmount)
}

func TestIDSet(t *testing.T) {
	s := NewIDSet("q2", "q1")

	assert.True(t, s.Has("q1"))
	assert.False(t, s.Add("q1"))
	assert.True(t, s.Add("q3"))
	assert.Equal(t, []string{"q1", "q2", "q3"}, s.Sorted())
}

func TestInvestments_Remove(t *testing.T) {
	a := NewInvestment("Roth IRA", "", InvestmentTypeSavings, 100, 7)
	b := NewInvestment("Brokerage", "aapl", InvestmentTypeStocks, 50, 10)
	is := Investments{a, b}

	assert.Equal(t, "AAPL", b.Ticker)
	assert.Equal(t, "$AAPL", b.Subject())
	assert.Equal(t, "Roth IRA", a.Subject())

	out, found := is.Remove(a.ID)
	assert.True(t, found)
	assert.Len(t, out, 1)

	_, found = out.Remove("missing")
	assert.False(t, found)
}
