package tetris

import (
	"sync"
	"time"
)

// Clock is the source of timestamps gravity is measured against. Readings
// are expected to be non-decreasing; a reading earlier than the previous one
// counts as no time elapsed.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, which carries a monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Tests and the
// headless runner use it to simulate elapsed time without sleeping.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock returns a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the reading to t, which may be earlier than the current one.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the reading forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
