package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock for scenarios that depend on the current
// date, such as budget period windows and ban expiry checks. Until
// SetCurrentTime is called it follows the real clock.
type Time struct {
	mu     sync.Mutex
	fixed  time.Time
	frozen bool
}

func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime freezes the clock at the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fixed = currentTime
	t.frozen = true
}

// Reset returns the clock to real time.
func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = false
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return t.fixed
	}
	return time.Now()
}
