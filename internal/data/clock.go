package data

import (
	"sync"
	"time"
)

// Clock provides the current time and can be swapped for a fixed
// implementation in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a settable time for testing.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a FixedClock pinned to t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the pinned time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
