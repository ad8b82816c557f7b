package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/gedcheck/internal/record"
)

// Load reads every individual and family into a record.Store.
// Results are ordered deterministically: ORDER BY id COLLATE BINARY ASC,
// children by position.
//
// References to individuals that do not exist load as nil.
func (s *Store) Load(ctx context.Context) (*record.Store, error) {
	persons, err := s.readIndividuals(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*record.Person, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}

	families, err := s.readFamilies(ctx, byID)
	if err != nil {
		return nil, err
	}

	if err := s.readChildren(ctx, families, byID); err != nil {
		return nil, err
	}

	list := make([]*record.Family, 0, len(families))
	for _, f := range families {
		list = append(list, f)
	}
	return record.NewStore(persons, list), nil
}

func (s *Store) readIndividuals(ctx context.Context) ([]*record.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, birth, death
		FROM individuals
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query individuals: %w", err)
	}
	defer rows.Close()

	var persons []*record.Person
	for rows.Next() {
		var (
			p            record.Person
			birth, death sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &birth, &death); err != nil {
			return nil, fmt.Errorf("scan individual: %w", err)
		}
		if p.Birth, err = unmarshalDate("birth", birth); err != nil {
			return nil, fmt.Errorf("individual %s: %w", p.ID, err)
		}
		if p.Death, err = unmarshalDate("death", death); err != nil {
			return nil, fmt.Errorf("individual %s: %w", p.ID, err)
		}
		persons = append(persons, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate individuals: %w", err)
	}
	return persons, nil
}

// readFamilies returns families keyed by id. Map order is irrelevant:
// record.NewStore sorts by id.
func (s *Store) readFamilies(ctx context.Context, byID map[string]*record.Person) (map[string]*record.Family, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, husband_id, wife_id, married, divorced
		FROM families
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query families: %w", err)
	}
	defer rows.Close()

	families := make(map[string]*record.Family)
	for rows.Next() {
		var (
			f                 record.Family
			husband, wife     sql.NullString
			married, divorced sql.NullString
		)
		if err := rows.Scan(&f.ID, &husband, &wife, &married, &divorced); err != nil {
			return nil, fmt.Errorf("scan family: %w", err)
		}
		if f.Married, err = unmarshalDate("married", married); err != nil {
			return nil, fmt.Errorf("family %s: %w", f.ID, err)
		}
		if f.Divorced, err = unmarshalDate("divorced", divorced); err != nil {
			return nil, fmt.Errorf("family %s: %w", f.ID, err)
		}
		f.Father = byID[husband.String]
		f.Mother = byID[wife.String]
		families[f.ID] = &f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate families: %w", err)
	}
	return families, nil
}

func (s *Store) readChildren(ctx context.Context, families map[string]*record.Family, byID map[string]*record.Person) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT family_id, person_id
		FROM family_children
		ORDER BY family_id COLLATE BINARY ASC, position ASC
	`)
	if err != nil {
		return fmt.Errorf("query family children: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var familyID, personID string
		if err := rows.Scan(&familyID, &personID); err != nil {
			return fmt.Errorf("scan family child: %w", err)
		}
		f, ok := families[familyID]
		if !ok {
			continue
		}
		// A missing child stays in place as nil; rules skip nil children.
		f.Children = append(f.Children, byID[personID])
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate family children: %w", err)
	}
	return nil
}
