package rules

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/temporal"
)

// listDeceased reports every spouse or child with a death date.
// The message names the person only, so a person reached through several
// families is reported once; the first family by identifier is kept as context.
func listDeceased(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		for _, p := range f.Members() {
			if p.Death == nil {
				continue
			}
			out.Add(Finding{
				Rule:     ListDeceased,
				FamilyID: f.ID,
				Subjects: []Subject{subject(p)},
				Dates:    []Stamp{{"death", *p.Death}},
				Message:  fmt.Sprintf("%s: Individual %s died on %s", ListDeceased, label(p), p.Death),
			})
		}
	}
}

// listLivingMarried reports married families where both spouses are known and alive.
func listLivingMarried(store *record.Store, _ civil.Date, _ Thresholds, out *Set) {
	for _, f := range store.Families() {
		if f.Married == nil || f.Father == nil || f.Mother == nil {
			continue
		}
		if !f.Father.Alive() || !f.Mother.Alive() {
			continue
		}
		out.Add(Finding{
			Rule:     ListLivingMarried,
			FamilyID: f.ID,
			Subjects: spouseSubjects(f),
			Dates:    []Stamp{{"marriage", *f.Married}},
			Message: fmt.Sprintf("%s: Family %s father %s and mother %s living married since %s",
				ListLivingMarried, f.ID, label(f.Father), label(f.Mother), f.Married),
		})
	}
}

// listLivingSingle reports people who appear as a child in some family, never
// appear as a father or mother in any family, and are older than the minimum
// marriage age. Spouses and candidates are collected in the same pass.
func listLivingSingle(store *record.Store, now civil.Date, th Thresholds, out *Set) {
	married := make(map[string]bool)
	seen := make(map[string]bool)
	var candidates []*record.Person

	for _, f := range store.Families() {
		for _, spouse := range f.Spouses() {
			married[spouse.ID] = true
		}
		for _, child := range f.Children {
			if child == nil || seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			candidates = append(candidates, child)
		}
	}

	for _, p := range candidates {
		if married[p.ID] || !temporal.OlderThan(p.Birth, now, th.MinMarriageAge) {
			continue
		}
		age, _ := temporal.YearsBetween(p.Birth, &now)
		out.Add(Finding{
			Rule:      ListLivingSingle,
			Subjects:  []Subject{subject(p)},
			Dates:     []Stamp{{"birth", *p.Birth}, {"now", now}},
			Magnitude: &Magnitude{Value: age, Unit: "years"},
			Message: fmt.Sprintf("%s: Individual %s is %d years old and has never married",
				ListLivingSingle, label(p), age),
		})
	}
}

// listOrphans reports children younger than the adulthood age when the later
// of their parents died.
func listOrphans(store *record.Store, _ civil.Date, th Thresholds, out *Set) {
	for _, f := range store.Families() {
		if !bothDead(f) {
			continue
		}
		orphaned := temporal.Later(f.Father.Death, f.Mother.Death)

		for _, child := range f.Children {
			if child == nil || child.Birth == nil {
				continue
			}
			age, _ := temporal.YearsBetween(child.Birth, orphaned)
			if age >= th.AdultAge {
				continue
			}
			out.Add(Finding{
				Rule:     ListOrphans,
				FamilyID: f.ID,
				Subjects: []Subject{subject(child), subject(f.Father), subject(f.Mother)},
				Dates: []Stamp{
					{"birth", *child.Birth},
					{"father_death", *f.Father.Death},
					{"mother_death", *f.Mother.Death},
				},
				Magnitude: &Magnitude{Value: age, Unit: "years"},
				Message: fmt.Sprintf("%s: Individual %s orphaned at age %d: father %s died %s, mother %s died %s",
					ListOrphans, label(child), age, label(f.Father), f.Father.Death, label(f.Mother), f.Mother.Death),
			})
		}
	}
}
