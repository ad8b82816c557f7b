package loader

import (
	"github.com/roach88/gedcheck/internal/record"
)

// Build resolves a Document into a record.Store.
//
// Person references resolve to the first person carrying the identifier;
// unknown or empty references resolve to nil. Duplicate identifiers are
// kept so evaluation can report them.
func Build(doc *Document) (*record.Store, error) {
	if doc == nil {
		return record.NewStore(nil, nil), nil
	}

	persons := make([]*record.Person, 0, len(doc.Persons))
	byID := make(map[string]*record.Person, len(doc.Persons))
	for _, pd := range doc.Persons {
		p := &record.Person{ID: pd.ID, Name: pd.Name}
		var err error
		if p.Birth, err = ParseDate(pd.Birth); err != nil {
			return nil, &LoadError{Record: pd.ID, Field: "birth", Err: err}
		}
		if p.Death, err = ParseDate(pd.Death); err != nil {
			return nil, &LoadError{Record: pd.ID, Field: "death", Err: err}
		}
		persons = append(persons, p)
		if _, seen := byID[p.ID]; !seen && p.ID != "" {
			byID[p.ID] = p
		}
	}

	families := make([]*record.Family, 0, len(doc.Families))
	for _, fd := range doc.Families {
		f := &record.Family{
			ID:     fd.ID,
			Father: byID[fd.Husband],
			Mother: byID[fd.Wife],
		}
		var err error
		if f.Married, err = ParseDate(fd.Married); err != nil {
			return nil, &LoadError{Record: fd.ID, Field: "married", Err: err}
		}
		if f.Divorced, err = ParseDate(fd.Divorced); err != nil {
			return nil, &LoadError{Record: fd.ID, Field: "divorced", Err: err}
		}
		for _, id := range fd.Children {
			f.Children = append(f.Children, byID[id])
		}
		families = append(families, f)
	}

	return record.NewStore(persons, families), nil
}
