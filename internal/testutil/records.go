package testutil

import (
	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/record"
)

// Day parses a YYYY-MM-DD date, panicking on malformed input.
func Day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic("testutil: " + err.Error())
	}
	return d
}

// Date is Day returning a pointer; the empty string yields nil (unknown date).
func Date(s string) *civil.Date {
	if s == "" {
		return nil
	}
	d := Day(s)
	return &d
}

// Person builds a person. Empty birth or death means unknown.
func Person(id, name, birth, death string) *record.Person {
	return &record.Person{ID: id, Name: name, Birth: Date(birth), Death: Date(death)}
}

// Family builds a family. Empty married or divorced means unknown.
func Family(id string, father, mother *record.Person, married, divorced string, children ...*record.Person) *record.Family {
	return &record.Family{
		ID:       id,
		Father:   father,
		Mother:   mother,
		Children: children,
		Married:  Date(married),
		Divorced: Date(divorced),
	}
}

// Store builds a record.Store from the families and every person they
// reference, plus any extra persons.
func Store(families []*record.Family, extra ...*record.Person) *record.Store {
	seen := make(map[*record.Person]bool)
	var persons []*record.Person
	add := func(p *record.Person) {
		if p != nil && !seen[p] {
			seen[p] = true
			persons = append(persons, p)
		}
	}
	for _, f := range families {
		add(f.Father)
		add(f.Mother)
		for _, c := range f.Children {
			add(c)
		}
	}
	for _, p := range extra {
		add(p)
	}
	return record.NewStore(persons, families)
}
