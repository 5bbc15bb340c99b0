// Package testfixtures provides deterministic collaborators for service tests.
package testfixtures

import (
	"sync"
	"time"
)

// ReferenceTime is the default "now" of fixture clocks
var ReferenceTime = time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)

// Clock is a controllable time source. With a non-zero step every read
// advances it, giving stored documents a strict creation order.
type Clock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewClock returns a clock at start, or ReferenceTime when start is zero
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime
	}
	return &Clock{current: start}
}

// NewSteppingClock returns a clock that moves forward by step after each read
func NewSteppingClock(start time.Time, step time.Duration) *Clock {
	c := NewClock(start)
	c.step = step
	return c
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}
