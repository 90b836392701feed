package valueobject

import "time"

// SpendingPeriod is the recurring window a parental spending limit applies to.
type SpendingPeriod string

const (
	SpendingPeriodDaily   SpendingPeriod = "daily"
	SpendingPeriodWeekly  SpendingPeriod = "weekly"
	SpendingPeriodMonthly SpendingPeriod = "monthly"
)

// IsValid reports whether p is one of the known periods.
func (p SpendingPeriod) IsValid() bool {
	return p == SpendingPeriodDaily || p == SpendingPeriodWeekly || p == SpendingPeriodMonthly
}

// OrDefault returns p, or monthly when p is unset or unknown.
func (p SpendingPeriod) OrDefault() SpendingPeriod {
	if p.IsValid() {
		return p
	}
	return SpendingPeriodMonthly
}

// Start returns the local-midnight start of the period containing now.
// Weeks start on Sunday (weekday 0). Calendar math happens in now's location.
func (p SpendingPeriod) Start(now time.Time) time.Time {
	switch p.OrDefault() {
	case SpendingPeriodDaily:
		return StartOfDay(now)
	case SpendingPeriodWeekly:
		return time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	default:
		return StartOfMonth(now)
	}
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
