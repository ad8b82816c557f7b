package loader

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// gedcomLayout is the GEDCOM exact date form. Month names match
// case-insensitively, so "2 JAN 2006" parses.
const gedcomLayout = "2 Jan 2006"

// ParseDate parses an optional calendar date.
// The empty string is an unknown date and yields nil.
func ParseDate(s string) (*civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if d, err := civil.ParseDate(s); err == nil {
		return &d, nil
	}
	t, err := time.Parse(gedcomLayout, strings.Join(strings.Fields(s), " "))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD or D MON YYYY", s)
	}
	d := civil.DateOf(t)
	return &d, nil
}
