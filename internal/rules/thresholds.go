package rules

import "fmt"

// Thresholds holds the numeric limits the rules are evaluated against.
type Thresholds struct {
	// MinMarriageAge is the age in years past which a never-married person is reported.
	MinMarriageAge int `json:"min_marriage_age"`

	// AdultAge is the age in years below which a child of two dead parents is an orphan.
	AdultAge int `json:"adult_age"`

	// Recent*Days are the look-back windows, inclusive, in days.
	RecentDeathDays    int `json:"recent_death_days"`
	RecentBirthDays    int `json:"recent_birth_days"`
	RecentMarriageDays int `json:"recent_marriage_days"`
}

// DefaultThresholds returns the project defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinMarriageAge:     30,
		AdultAge:           18,
		RecentDeathDays:    30,
		RecentBirthDays:    30,
		RecentMarriageDays: 30,
	}
}

// Validate rejects negative thresholds.
func (t Thresholds) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"min_marriage_age", t.MinMarriageAge},
		{"adult_age", t.AdultAge},
		{"recent_death_days", t.RecentDeathDays},
		{"recent_birth_days", t.RecentBirthDays},
		{"recent_marriage_days", t.RecentMarriageDays},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("threshold %s must be non-negative, got %d", f.name, f.value)
		}
	}
	return nil
}
