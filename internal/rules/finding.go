package rules

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
)

// Subject is a person a finding refers to.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Stamp is a labelled date carried by a finding ("birth", "marriage", "now", ...).
type Stamp struct {
	Label string     `json:"label"`
	Date  civil.Date `json:"date"`
}

// Magnitude is a computed quantity such as an age or a day count.
type Magnitude struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"` // "years" | "days"
}

// Finding is one reported rule violation.
type Finding struct {
	Rule      ID         `json:"rule"`
	FamilyID  string     `json:"family_id,omitempty"`
	Subjects  []Subject  `json:"subjects,omitempty"`
	Dates     []Stamp    `json:"dates,omitempty"`
	Magnitude *Magnitude `json:"magnitude,omitempty"`
	Message   string     `json:"message"`
}

// PersonIDs returns the identifiers of the finding's subjects.
func (f Finding) PersonIDs() []string {
	ids := make([]string, len(f.Subjects))
	for i, s := range f.Subjects {
		ids[i] = s.ID
	}
	return ids
}

// Set collects findings keyed by message text.
// The zero value is not usable; use NewSet.
type Set struct {
	byMessage map[string]Finding
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{byMessage: make(map[string]Finding)}
}

// Add inserts f unless a finding with the same message is already present.
// Reports whether f was added. The first finding for a message wins.
func (s *Set) Add(f Finding) bool {
	if _, ok := s.byMessage[f.Message]; ok {
		return false
	}
	s.byMessage[f.Message] = f
	return true
}

// Merge adds every finding of other.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, f := range other.byMessage {
		s.Add(f)
	}
}

// Len returns the number of distinct findings.
func (s *Set) Len() int {
	return len(s.byMessage)
}

// Contains reports whether a finding with this exact message is present.
func (s *Set) Contains(message string) bool {
	_, ok := s.byMessage[message]
	return ok
}

// Sorted returns the findings ordered by message text.
func (s *Set) Sorted() []Finding {
	out := make([]Finding, 0, len(s.byMessage))
	for _, f := range s.byMessage {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Message < out[j].Message })
	return out
}

// Messages returns the sorted message texts.
func (s *Set) Messages() []string {
	msgs := make([]string, 0, len(s.byMessage))
	for m := range s.byMessage {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return msgs
}

// subject builds a Subject, leaving Name empty when the record has none.
func subject(p *record.Person) Subject {
	return Subject{ID: p.ID, Name: p.Name}
}

// label renders "I1 (John /Smith/)", or just "I1" when the name is unknown.
func label(p *record.Person) string {
	if p.Name == "" {
		return p.ID
	}
	return fmt.Sprintf("%s (%s)", p.ID, p.Name)
}

// role names a spouse by position in the family.
func role(f *record.Family, p *record.Person) string {
	if p == f.Father {
		return "father"
	}
	return "mother"
}
