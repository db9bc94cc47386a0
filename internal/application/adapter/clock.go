package adapter

import "time"

// Clock provides the current time. Usecases depend on this interface so
// period windows and expiry checks can be tested deterministically.
type Clock interface {
	Now() time.Time
}
