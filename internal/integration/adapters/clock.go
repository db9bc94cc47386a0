package adapters

import (
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
