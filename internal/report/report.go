package report

import (
	"fmt"
	"io"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/rules"
)

// Report is the outcome of one evaluation run.
type Report struct {
	RunID         string
	ReferenceDate civil.Date
	Rules         []RuleResult
}

// RuleResult holds one rule's findings, sorted by message.
type RuleResult struct {
	ID          rules.ID
	Description string
	Findings    []Entry
}

// Entry is a finding with its fingerprint.
type Entry struct {
	rules.Finding
	Fingerprint string
}

// Build assembles a report from per-rule results.
//
// Rules appear in catalog order; identifiers the catalog does not know
// follow in lexical order with an empty description.
func Build(catalog *rules.Catalog, results map[rules.ID]*rules.Set, now civil.Date, gen RunIDGenerator) (*Report, error) {
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	r := &Report{RunID: gen.Generate(), ReferenceDate: now}

	var unknown []rules.ID
	for id := range results {
		if _, ok := catalog.Lookup(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	order := make([]rules.ID, 0, len(results))
	for _, id := range catalog.IDs() {
		if _, ok := results[id]; ok {
			order = append(order, id)
		}
	}
	order = append(order, unknown...)

	for _, id := range order {
		rr := RuleResult{ID: id}
		if rule, ok := catalog.Lookup(id); ok {
			rr.Description = rule.Description
		}
		for _, f := range results[id].Sorted() {
			fp, err := Fingerprint(f)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", id, err)
			}
			rr.Findings = append(rr.Findings, Entry{Finding: f, Fingerprint: fp})
		}
		r.Rules = append(r.Rules, rr)
	}
	return r, nil
}

// Total returns the number of findings across all rules.
func (r *Report) Total() int {
	n := 0
	for _, rr := range r.Rules {
		n += len(rr.Findings)
	}
	return n
}

// MarshalCanonical renders the report as canonical JSON.
func (r *Report) MarshalCanonical() ([]byte, error) {
	ruleList := make([]any, 0, len(r.Rules))
	for _, rr := range r.Rules {
		findings := make([]any, 0, len(rr.Findings))
		for _, e := range rr.Findings {
			obj := findingObject(e.Finding)
			obj["fingerprint"] = e.Fingerprint
			findings = append(findings, obj)
		}
		ruleList = append(ruleList, object{
			"id":          string(rr.ID),
			"description": rr.Description,
			"findings":    findings,
		})
	}

	data, err := marshalCanonical(object{
		"run_id":         r.RunID,
		"reference_date": r.ReferenceDate.String(),
		"total":          r.Total(),
		"rules":          ruleList,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// WriteText renders the report for people. Rules without findings are
// listed with "no findings" unless onlyFindings is set.
func (r *Report) WriteText(w io.Writer, onlyFindings bool) error {
	ew := &errWriter{w: w}
	ew.printf("Run %s, reference date %s\n", r.RunID, r.ReferenceDate)
	for _, rr := range r.Rules {
		if len(rr.Findings) == 0 {
			if !onlyFindings {
				ew.printf("\n%s: no findings\n", rr.title())
			}
			continue
		}
		ew.printf("\n%s: %d %s\n", rr.title(), len(rr.Findings), plural(len(rr.Findings), "finding"))
		for _, e := range rr.Findings {
			ew.printf("  %s\n", e.Message)
		}
	}
	ew.printf("\nTotal: %d %s\n", r.Total(), plural(r.Total(), "finding"))
	return ew.err
}

func (rr RuleResult) title() string {
	if rr.Description == "" {
		return string(rr.ID)
	}
	return string(rr.ID) + " " + rr.Description
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
