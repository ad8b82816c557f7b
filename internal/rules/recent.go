package rules

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/temporal"
)

// listRecentDeaths reports fathers, mothers, children and any other person
// who died within the recent window.
func listRecentDeaths(store *record.Store, now civil.Date, th Thresholds, out *Set) {
	forEachPerson(store, func(p *record.Person, familyID string) {
		if !temporal.Within(p.Death, now, th.RecentDeathDays) {
			return
		}
		days, _ := temporal.DaysSince(p.Death, now)
		out.Add(Finding{
			Rule:      ListRecentDeaths,
			FamilyID:  familyID,
			Subjects:  []Subject{subject(p)},
			Dates:     []Stamp{{"death", *p.Death}, {"now", now}},
			Magnitude: &Magnitude{Value: days, Unit: "days"},
			Message: fmt.Sprintf("%s: Individual %s died %s, %d days before %s",
				ListRecentDeaths, label(p), p.Death, days, now),
		})
	})
}

// listRecentBirths reports anyone born within the recent window.
func listRecentBirths(store *record.Store, now civil.Date, th Thresholds, out *Set) {
	forEachPerson(store, func(p *record.Person, familyID string) {
		if !temporal.Within(p.Birth, now, th.RecentBirthDays) {
			return
		}
		days, _ := temporal.DaysSince(p.Birth, now)
		out.Add(Finding{
			Rule:      ListRecentBirths,
			FamilyID:  familyID,
			Subjects:  []Subject{subject(p)},
			Dates:     []Stamp{{"birth", *p.Birth}, {"now", now}},
			Magnitude: &Magnitude{Value: days, Unit: "days"},
			Message: fmt.Sprintf("%s: Individual %s born %s, %d days before %s",
				ListRecentBirths, label(p), p.Birth, days, now),
		})
	})
}

// listRecentMarriages reports marriages within the recent window where no
// known spouse has died.
func listRecentMarriages(store *record.Store, now civil.Date, th Thresholds, out *Set) {
	for _, f := range store.Families() {
		if anySpouseDead(f) || !temporal.Within(f.Married, now, th.RecentMarriageDays) {
			continue
		}
		days, _ := temporal.DaysSince(f.Married, now)
		out.Add(Finding{
			Rule:      ListRecentMarriages,
			FamilyID:  f.ID,
			Subjects:  spouseSubjects(f),
			Dates:     []Stamp{{"marriage", *f.Married}, {"now", now}},
			Magnitude: &Magnitude{Value: days, Unit: "days"},
			Message: fmt.Sprintf("%s: Family %s married %s, %d days before %s",
				ListRecentMarriages, f.ID, f.Married, days, now),
		})
	}
}

// forEachPerson visits every family member (spouses, then children) with the
// family as context, then every person in the store without one. A person
// reached on both paths produces the same message and collapses in the Set.
func forEachPerson(store *record.Store, visit func(p *record.Person, familyID string)) {
	for _, f := range store.Families() {
		for _, p := range f.Members() {
			visit(p, f.ID)
		}
	}
	for _, p := range store.Persons() {
		visit(p, "")
	}
}

func anySpouseDead(f *record.Family) bool {
	for _, spouse := range f.Spouses() {
		if !spouse.Alive() {
			return true
		}
	}
	return false
}
