package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/gedcheck/internal/report"
	"github.com/roach88/gedcheck/internal/rules"
)

// AssertionError is returned when an assertion fails.
// It includes the rule's findings to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Findings []string // Messages of the rule under test
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Findings) > 0 {
		fmt.Fprintf(&buf, "\nFindings:\n")
		for i, msg := range e.Findings {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, msg)
		}
	}

	return buf.String()
}

func checkAssertion(rep *report.Report, a Assertion) error {
	switch a.Type {
	case AssertFindingCount:
		return assertFindingCount(rep, a)
	case AssertFindingContains:
		return assertFindingContains(rep, a)
	case AssertNoFindings:
		return assertNoFindings(rep, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// ruleEntries returns the findings reported for a rule.
// A rule that was not evaluated has none.
func ruleEntries(rep *report.Report, rule string) []report.Entry {
	id := rules.ParseID(rule)
	for _, rr := range rep.Rules {
		if rr.ID == id {
			return rr.Findings
		}
	}
	return nil
}

func messages(entries []report.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// assertFindingCount checks the rule reports exactly the expected number of findings.
func assertFindingCount(rep *report.Report, a Assertion) error {
	entries := ruleEntries(rep, a.Rule)
	if len(entries) != a.Count {
		return &AssertionError{
			Type:     AssertFindingCount,
			Expected: fmt.Sprintf("%d findings for %s", a.Count, rules.ParseID(a.Rule)),
			Actual:   fmt.Sprintf("%d findings", len(entries)),
			Findings: messages(entries),
		}
	}
	return nil
}

// assertFindingContains checks some finding of the rule matches every given filter.
func assertFindingContains(rep *report.Report, a Assertion) error {
	entries := ruleEntries(rep, a.Rule)
	for _, e := range entries {
		if a.Person != "" && !slices.Contains(e.PersonIDs(), a.Person) {
			continue
		}
		if a.Family != "" && e.FamilyID != a.Family {
			continue
		}
		if a.Text != "" && !strings.Contains(e.Message, a.Text) {
			continue
		}
		return nil
	}

	var want []string
	if a.Person != "" {
		want = append(want, "person "+a.Person)
	}
	if a.Family != "" {
		want = append(want, "family "+a.Family)
	}
	if a.Text != "" {
		want = append(want, fmt.Sprintf("text %q", a.Text))
	}
	return &AssertionError{
		Type:     AssertFindingContains,
		Expected: fmt.Sprintf("a %s finding with %s", rules.ParseID(a.Rule), strings.Join(want, ", ")),
		Actual:   "no matching finding",
		Findings: messages(entries),
	}
}

// assertNoFindings checks the rule, or every evaluated rule, reports nothing.
func assertNoFindings(rep *report.Report, a Assertion) error {
	if a.Rule != "" {
		entries := ruleEntries(rep, a.Rule)
		if len(entries) > 0 {
			return &AssertionError{
				Type:     AssertNoFindings,
				Expected: fmt.Sprintf("no findings for %s", rules.ParseID(a.Rule)),
				Actual:   fmt.Sprintf("%d findings", len(entries)),
				Findings: messages(entries),
			}
		}
		return nil
	}

	if rep.Total() > 0 {
		var all []report.Entry
		for _, rr := range rep.Rules {
			all = append(all, rr.Findings...)
		}
		return &AssertionError{
			Type:     AssertNoFindings,
			Expected: "no findings for any rule",
			Actual:   fmt.Sprintf("%d findings", rep.Total()),
			Findings: messages(all),
		}
	}
	return nil
}
