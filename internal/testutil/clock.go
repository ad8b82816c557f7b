package testutil

import (
	"sync"

	"cloud.google.com/go/civil"
)

// FixedClock returns the same reference date until it is moved.
//
// Implements engine.Clock. Tests use it so every relative-time rule sees a
// known "now" regardless of the wall clock.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu    sync.Mutex
	today civil.Date
}

// NewFixedClock creates a clock pinned to the given YYYY-MM-DD date.
// Panics on a malformed date (test misconfiguration).
func NewFixedClock(day string) *FixedClock {
	return &FixedClock{today: Day(day)}
}

// Today returns the pinned date.
func (c *FixedClock) Today() civil.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Advance moves the clock forward by days (backward when negative).
func (c *FixedClock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDays(days)
}
