package record

import "cloud.google.com/go/civil"

// Person is one individual record.
type Person struct {
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
	Birth *civil.Date `json:"birth,omitempty"`
	Death *civil.Date `json:"death,omitempty"`
}

// Family links spouses and children.
// Father, Mother and entries of Children may be nil (unknown or unresolved).
type Family struct {
	ID       string      `json:"id"`
	Father   *Person     `json:"-"`
	Mother   *Person     `json:"-"`
	Children []*Person   `json:"-"`
	Married  *civil.Date `json:"married,omitempty"`
	Divorced *civil.Date `json:"divorced,omitempty"`
}

// Spouses returns the known spouses, father first.
func (f *Family) Spouses() []*Person {
	spouses := make([]*Person, 0, 2)
	if f.Father != nil {
		spouses = append(spouses, f.Father)
	}
	if f.Mother != nil {
		spouses = append(spouses, f.Mother)
	}
	return spouses
}

// Members returns the known spouses followed by the non-nil children in source order.
func (f *Family) Members() []*Person {
	members := f.Spouses()
	for _, child := range f.Children {
		if child != nil {
			members = append(members, child)
		}
	}
	return members
}

// Alive reports whether the person has no recorded death date.
func (p *Person) Alive() bool {
	return p.Death == nil
}
