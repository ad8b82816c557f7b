package temporal

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) *civil.Date {
	v, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &v
}

func TestStrictOrdering(t *testing.T) {
	tests := []struct {
		name          string
		a, b          *civil.Date
		after, before bool
	}{
		{"a later", d("2020-01-02"), d("2020-01-01"), true, false},
		{"a earlier", d("2019-12-31"), d("2020-01-01"), false, true},
		{"equal", d("2020-01-01"), d("2020-01-01"), false, false},
		{"a missing", nil, d("2020-01-01"), false, false},
		{"b missing", d("2020-01-01"), nil, false, false},
		{"both missing", nil, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.after, IsStrictlyAfter(tt.a, tt.b))
			assert.Equal(t, tt.before, IsStrictlyBefore(tt.a, tt.b))
		})
	}
}

func TestYearsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"day before anniversary", "1990-06-15", "2020-06-14", 29},
		{"on anniversary", "1990-06-15", "2020-06-15", 30},
		{"day after anniversary", "1990-06-15", "2020-06-16", 30},
		{"reversed arguments", "2020-06-16", "1990-06-15", 30},
		{"earlier month", "1990-06-15", "2020-05-30", 29},
		{"same day", "2000-01-01", "2000-01-01", 0},
		{"leap day birth", "2000-02-29", "2001-02-28", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := YearsBetween(d(tt.a), d(tt.b))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := YearsBetween(nil, d("2000-01-01"))
	assert.False(t, ok)
}

func TestDaysBetween(t *testing.T) {
	got, ok := DaysBetween(d("2020-01-01"), d("2020-03-01"))
	require.True(t, ok)
	assert.Equal(t, 60, got)

	got, ok = DaysBetween(d("2020-03-01"), d("2020-01-01"))
	require.True(t, ok)
	assert.Equal(t, 60, got, "magnitude is non-negative")

	_, ok = DaysBetween(d("2020-03-01"), nil)
	assert.False(t, ok)
}

func TestDaysSinceIsSigned(t *testing.T) {
	now := *d("2024-05-31")

	since, ok := DaysSince(d("2024-05-01"), now)
	require.True(t, ok)
	assert.Equal(t, 30, since)

	since, ok = DaysSince(d("2024-06-10"), now)
	require.True(t, ok)
	assert.Equal(t, -10, since)

	_, ok = DaysSince(nil, now)
	assert.False(t, ok)
}

func TestWithinBoundaries(t *testing.T) {
	now := *d("2024-05-31")

	assert.True(t, Within(d("2024-05-31"), now, 30), "today")
	assert.True(t, Within(d("2024-05-01"), now, 30), "exactly 30 days ago")
	assert.False(t, Within(d("2024-04-30"), now, 30), "31 days ago")
	assert.False(t, Within(d("2024-06-01"), now, 30), "future")
	assert.False(t, Within(nil, now, 30))
}

func TestLater(t *testing.T) {
	assert.Equal(t, d("2010-01-01"), Later(d("2000-01-01"), d("2010-01-01")))
	assert.Equal(t, d("2010-01-01"), Later(d("2010-01-01"), d("2000-01-01")))
	assert.Nil(t, Later(nil, d("2010-01-01")))
	assert.Nil(t, Later(d("2010-01-01"), nil))
}

func TestOlderThan(t *testing.T) {
	birth := d("1990-06-15")

	assert.False(t, OlderThan(birth, *d("2020-06-14"), 30))
	assert.False(t, OlderThan(birth, *d("2020-06-15"), 30), "exactly 30")
	assert.True(t, OlderThan(birth, *d("2020-06-16"), 30), "one day past 30")
	assert.False(t, OlderThan(nil, *d("2020-06-16"), 30))
}

func TestAnniversaryLeapDay(t *testing.T) {
	assert.Equal(t, *d("2001-03-01"), Anniversary(*d("2000-02-29"), 1))
	assert.Equal(t, *d("2004-02-29"), Anniversary(*d("2000-02-29"), 4))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2020-01-02", Format(d("2020-01-02")))
	assert.Equal(t, "unknown", Format(nil))
}
