// Package temporal provides the date predicates shared by every rule.
//
// All functions take optional dates. A nil date means "unknown": comparisons
// return false and measurements return ok=false. Nothing here reads the wall
// clock; the reference date is always an argument.
package temporal

import (
	"time"

	"cloud.google.com/go/civil"
)

// IsStrictlyAfter reports whether a is after b. False if either is nil.
func IsStrictlyAfter(a, b *civil.Date) bool {
	if a == nil || b == nil {
		return false
	}
	return a.After(*b)
}

// IsStrictlyBefore reports whether a is before b. False if either is nil.
func IsStrictlyBefore(a, b *civil.Date) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Before(*b)
}

// YearsBetween returns the number of whole calendar years between a and b,
// regardless of argument order. An anniversary that has not been reached
// does not count.
func YearsBetween(a, b *civil.Date) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	lo, hi := *a, *b
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	years := hi.Year - lo.Year
	if hi.Month < lo.Month || (hi.Month == lo.Month && hi.Day < lo.Day) {
		years--
	}
	return years, true
}

// DaysBetween returns the number of days between a and b, regardless of order.
func DaysBetween(a, b *civil.Date) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	days := b.DaysSince(*a)
	if days < 0 {
		days = -days
	}
	return days, true
}

// DaysSince returns the signed number of days from a to now.
// Positive when a is in the past relative to now.
func DaysSince(a *civil.Date, now civil.Date) (int, bool) {
	if a == nil {
		return 0, false
	}
	return now.DaysSince(*a), true
}

// Within reports whether a falls in the window [now-days, now].
func Within(a *civil.Date, now civil.Date, days int) bool {
	since, ok := DaysSince(a, now)
	return ok && since >= 0 && since <= days
}

// Later returns the later of two present dates, or nil if either is missing.
func Later(a, b *civil.Date) *civil.Date {
	if a == nil || b == nil {
		return nil
	}
	if b.After(*a) {
		return b
	}
	return a
}

// Anniversary returns the date years after d. February 29 rolls to March 1
// in non-leap years.
func Anniversary(d civil.Date, years int) civil.Date {
	return civil.DateOf(d.In(time.UTC).AddDate(years, 0, 0))
}

// OlderThan reports whether now is strictly after the years-th anniversary
// of birth. On the anniversary itself the person is exactly that age, not older.
func OlderThan(birth *civil.Date, now civil.Date, years int) bool {
	if birth == nil {
		return false
	}
	return now.After(Anniversary(*birth, years))
}

// Format renders a date as YYYY-MM-DD, or "unknown" for nil.
func Format(d *civil.Date) string {
	if d == nil {
		return "unknown"
	}
	return d.String()
}
