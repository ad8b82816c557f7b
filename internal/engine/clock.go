package engine

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock supplies the reference date for relative-time rules.
//
// The engine itself never calls a Clock: callers ask it once at the edge and
// pass the date into Evaluate. Tests use testutil.FixedClock.
type Clock interface {
	Today() civil.Date
}

// SystemClock reads the wall clock in a fixed location.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct {
	// Location is the time zone "today" is computed in. Nil means UTC.
	Location *time.Location
}

// Today returns the current calendar date in the clock's location.
func (c SystemClock) Today() civil.Date {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(time.Now().In(loc))
}

// StaticClock always returns the same date. Used for --now overrides.
type StaticClock civil.Date

// Today returns the static date.
func (c StaticClock) Today() civil.Date {
	return civil.Date(c)
}
