package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpendingPeriod_Start(t *testing.T) {
	// Wednesday
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), SpendingPeriodDaily.Start(now))
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), SpendingPeriodWeekly.Start(now))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), SpendingPeriodMonthly.Start(now))
}

func TestSpendingPeriod_StartWeekCrossesMonth(t *testing.T) {
	// Friday, May 3rd; week began Sunday April 28th
	now := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC), SpendingPeriodWeekly.Start(now))
}

func TestSpendingPeriod_StartUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 5, 15, 1, 0, 0, 0, loc)

	start := SpendingPeriodDaily.Start(now)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestSpendingPeriod_OrDefault(t *testing.T) {
	assert.Equal(t, SpendingPeriodWeekly, SpendingPeriodWeekly.OrDefault())
	assert.Equal(t, SpendingPeriodMonthly, SpendingPeriod("").OrDefault())
	assert.Equal(t, SpendingPeriodMonthly, SpendingPeriod("yearly").OrDefault())
	assert.False(t, SpendingPeriod("yearly").IsValid())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 15, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 16, 1, 0, 0, 0, time.UTC)

	assert.False(t, SameDay(a, b, time.UTC))
	assert.True(t, SameDay(a, b, time.FixedZone("UTC-3", -3*60*60)))
}
