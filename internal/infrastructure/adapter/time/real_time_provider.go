package time

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock.
// Times are UTC and truncated to microseconds so they survive a round trip
// through either storage engine unchanged.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// FixedTimeProvider always reports the same instant until moved.
// It is used by tests and by the CLI --now flag.
type FixedTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedTimeProvider creates a clock stopped at t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: t.UTC()}
}

// Now returns the fixed time
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the duration between t and the fixed time
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// Advance moves the clock forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}
