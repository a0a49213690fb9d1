package clock

import (
	"sync"
	"time"
)

// Clock is an interface for reading the current time. The cache store and
// rate limiter depend on this abstraction rather than time.Now directly,
// enabling deterministic expiry and window tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System is a Clock backed by the wall clock.
type System struct{}

// Now returns time.Now. Implements Clock.
func (System) Now() time.Time { return time.Now() }

// Manual is a Clock whose time only moves when told to. Intended for tests.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual constructs a Manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current instant. Implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// SetTime jumps the clock to the given instant.
func (m *Manual) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
