package record

import (
	"sort"
)

// Store is the read-only collection of persons and families for one run.
type Store struct {
	persons  []*Person
	families []*Family

	personByID map[string]*Person
	familyByID map[string]*Family
}

// NewStore builds a Store ordered by identifier.
//
// Every record is kept, including ones with colliding identifiers, so the
// engine can report malformed input instead of silently dropping records.
// Nil records are discarded.
func NewStore(persons []*Person, families []*Family) *Store {
	s := &Store{
		persons:    make([]*Person, 0, len(persons)),
		families:   make([]*Family, 0, len(families)),
		personByID: make(map[string]*Person, len(persons)),
		familyByID: make(map[string]*Family, len(families)),
	}

	for _, p := range persons {
		if p != nil {
			s.persons = append(s.persons, p)
		}
	}
	for _, f := range families {
		if f != nil {
			s.families = append(s.families, f)
		}
	}

	sort.SliceStable(s.persons, func(i, j int) bool { return s.persons[i].ID < s.persons[j].ID })
	sort.SliceStable(s.families, func(i, j int) bool { return s.families[i].ID < s.families[j].ID })

	for _, p := range s.persons {
		if _, ok := s.personByID[p.ID]; !ok {
			s.personByID[p.ID] = p
		}
	}
	for _, f := range s.families {
		if _, ok := s.familyByID[f.ID]; !ok {
			s.familyByID[f.ID] = f
		}
	}

	return s
}

// Persons returns all persons ordered by identifier.
// Callers must not modify the returned slice.
func (s *Store) Persons() []*Person {
	return s.persons
}

// Families returns all families ordered by identifier.
// Callers must not modify the returned slice.
func (s *Store) Families() []*Family {
	return s.families
}

// Person returns the first person with the given identifier.
func (s *Store) Person(id string) (*Person, bool) {
	p, ok := s.personByID[id]
	return p, ok
}

// Family returns the first family with the given identifier.
func (s *Store) Family(id string) (*Family, bool) {
	f, ok := s.familyByID[id]
	return f, ok
}

// Spouses returns the identifiers of every person who appears as father or
// mother in any family.
func (s *Store) Spouses() map[string]bool {
	married := make(map[string]bool)
	for _, f := range s.families {
		for _, spouse := range f.Spouses() {
			married[spouse.ID] = true
		}
	}
	return married
}

// DuplicatePersonIDs returns person identifiers that occur more than once, sorted.
func (s *Store) DuplicatePersonIDs() []string {
	ids := make([]string, len(s.persons))
	for i, p := range s.persons {
		ids[i] = p.ID
	}
	return duplicates(ids)
}

// DuplicateFamilyIDs returns family identifiers that occur more than once, sorted.
func (s *Store) DuplicateFamilyIDs() []string {
	ids := make([]string, len(s.families))
	for i, f := range s.families {
		ids[i] = f.ID
	}
	return duplicates(ids)
}

// duplicates expects sorted input.
func duplicates(sorted []string) []string {
	var dups []string
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			continue
		}
		if len(dups) == 0 || dups[len(dups)-1] != sorted[i] {
			dups = append(dups, sorted[i])
		}
	}
	return dups
}
