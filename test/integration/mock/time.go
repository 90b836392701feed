package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. After SetCurrentTime it keeps ticking from the
// given instant at wall-clock speed.
type Time struct {
	mu       sync.Mutex
	location *time.Location
	offset   time.Duration
}

func NewTime(location *time.Location) *Time {
	if location == nil {
		location = time.Local
	}
	return &Time{location: location}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = time.Until(currentTime)
}

func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset += d
}

func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = 0
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Now().Add(t.offset).In(t.location)
}
