package core

import (
	"time"
)

// TimeProvider abstracts the clock so timestamps can be fixed in tests.
// Implementations must return UTC times.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
