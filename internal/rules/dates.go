package rules

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/temporal"
)

// checkDatesBeforeNow reports any birth, death, marriage or divorce date
// after the reference date.
func checkDatesBeforeNow(store *record.Store, now civil.Date, _ Thresholds, out *Set) {
	for _, p := range store.Persons() {
		for _, ev := range []struct {
			label string
			date  *civil.Date
		}{{"birth", p.Birth}, {"death", p.Death}} {
			if !temporal.IsStrictlyAfter(ev.date, &now) {
				continue
			}
			out.Add(Finding{
				Rule:     DatesBeforeNow,
				Subjects: []Subject{subject(p)},
				Dates:    []Stamp{{ev.label, *ev.date}, {"now", now}},
				Message: fmt.Sprintf("%s: Individual %s %s date %s is after the current date %s",
					DatesBeforeNow, label(p), ev.label, ev.date, now),
			})
		}
	}

	for _, f := range store.Families() {
		for _, ev := range []struct {
			label string
			date  *civil.Date
		}{{"marriage", f.Married}, {"divorce", f.Divorced}} {
			if !temporal.IsStrictlyAfter(ev.date, &now) {
				continue
			}
			out.Add(Finding{
				Rule:     DatesBeforeNow,
				FamilyID: f.ID,
				Subjects: spouseSubjects(f),
				Dates:    []Stamp{{ev.label, *ev.date}, {"now", now}},
				Message: fmt.Sprintf("%s: Family %s %s date %s is after the current date %s",
					DatesBeforeNow, f.ID, ev.label, ev.date, now),
			})
		}
	}
}

// checkBirthBeforeMarriage reports each spouse born after the family's marriage.
func checkBirthBeforeMarriage(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		if f.Married == nil {
			continue
		}
		for _, spouse := range f.Spouses() {
			if !temporal.IsStrictlyAfter(spouse.Birth, f.Married) {
				continue
			}
			out.Add(Finding{
				Rule:     BirthBeforeMarriage,
				FamilyID: f.ID,
				Subjects: []Subject{subject(spouse)},
				Dates:    []Stamp{{"birth", *spouse.Birth}, {"marriage", *f.Married}},
				Message: fmt.Sprintf("%s: Family %s %s %s born %s after marriage on %s",
					BirthBeforeMarriage, f.ID, role(f, spouse), label(spouse), spouse.Birth, f.Married),
			})
		}
	}
}

// checkBirthBeforeDeath reports individuals whose death precedes their birth.
func checkBirthBeforeDeath(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, p := range store.Persons() {
		if !temporal.IsStrictlyBefore(p.Death, p.Birth) {
			continue
		}
		out.Add(Finding{
			Rule:     BirthBeforeDeath,
			Subjects: []Subject{subject(p)},
			Dates:    []Stamp{{"birth", *p.Birth}, {"death", *p.Death}},
			Message: fmt.Sprintf("%s: Individual %s died %s before birth on %s",
				BirthBeforeDeath, label(p), p.Death, p.Birth),
		})
	}
}

// checkMarriageBeforeDivorce reports families divorced before they married.
// Equal dates are not a violation.
func checkMarriageBeforeDivorce(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		if f.Married == nil || f.Divorced == nil {
			continue
		}
		if !temporal.IsStrictlyBefore(f.Divorced, f.Married) {
			continue
		}
		out.Add(Finding{
			Rule:     MarriageBeforeDivorce,
			FamilyID: f.ID,
			Subjects: spouseSubjects(f),
			Dates:    []Stamp{{"marriage", *f.Married}, {"divorce", *f.Divorced}},
			Message: fmt.Sprintf("%s: Family %s divorced %s before marriage on %s",
				MarriageBeforeDivorce, f.ID, f.Divorced, f.Married),
		})
	}
}

// checkMarriageBeforeDeath reports spouses who died before the marriage.
// Only evaluated when both spouses have a recorded death.
func checkMarriageBeforeDeath(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		if f.Married == nil || !bothDead(f) {
			continue
		}
		for _, spouse := range f.Spouses() {
			if !temporal.IsStrictlyBefore(spouse.Death, f.Married) {
				continue
			}
			out.Add(Finding{
				Rule:     MarriageBeforeDeath,
				FamilyID: f.ID,
				Subjects: []Subject{subject(spouse)},
				Dates:    []Stamp{{"death", *spouse.Death}, {"marriage", *f.Married}},
				Message: fmt.Sprintf("%s: Family %s %s %s died %s before marriage on %s",
					MarriageBeforeDeath, f.ID, role(f, spouse), label(spouse), spouse.Death, f.Married),
			})
		}
	}
}

// checkDivorceBeforeDeath reports spouses who died before the divorce.
// Only evaluated when both spouses have a recorded death.
func checkDivorceBeforeDeath(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		if f.Divorced == nil || !bothDead(f) {
			continue
		}
		for _, spouse := range f.Spouses() {
			if !temporal.IsStrictlyBefore(spouse.Death, f.Divorced) {
				continue
			}
			out.Add(Finding{
				Rule:     DivorceBeforeDeath,
				FamilyID: f.ID,
				Subjects: []Subject{subject(spouse)},
				Dates:    []Stamp{{"death", *spouse.Death}, {"divorce", *f.Divorced}},
				Message: fmt.Sprintf("%s: Family %s %s %s died %s before divorce on %s",
					DivorceBeforeDeath, f.ID, role(f, spouse), label(spouse), spouse.Death, f.Divorced),
			})
		}
	}
}

// bothDead reports whether both spouses are known and have a death date.
func bothDead(f *record.Family) bool {
	return f.Father != nil && f.Mother != nil && f.Father.Death != nil && f.Mother.Death != nil
}

func spouseSubjects(f *record.Family) []Subject {
	spouses := f.Spouses()
	if len(spouses) == 0 {
		return nil
	}
	subjects := make([]Subject, len(spouses))
	for i, s := range spouses {
		subjects[i] = subject(s)
	}
	return subjects
}
