package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/gedcheck/internal/record"
)

// Import replaces the database contents with the records in rs.
// Runs in one transaction: on error the database is unchanged.
//
// Duplicate identifiers violate the primary keys and fail the import.
func (s *Store) Import(ctx context.Context, rs *record.Store) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import: begin: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, table := range []string{"family_children", "families", "individuals"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("import: clear %s: %w", table, err)
		}
	}

	for _, p := range rs.Persons() {
		if err := writeIndividual(ctx, tx, p); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}
	for _, f := range rs.Families() {
		if err := writeFamily(ctx, tx, f); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: commit: %w", err)
	}
	return nil
}

func writeIndividual(ctx context.Context, tx *sql.Tx, p *record.Person) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO individuals (id, name, birth, death)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Name, marshalDate(p.Birth), marshalDate(p.Death))
	if err != nil {
		return fmt.Errorf("write individual %s: %w", p.ID, err)
	}
	return nil
}

// writeFamily inserts the family row and its children in order.
// Nil children are not stored.
func writeFamily(ctx context.Context, tx *sql.Tx, f *record.Family) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO families (id, husband_id, wife_id, married, divorced)
		VALUES (?, ?, ?, ?, ?)
	`, f.ID, personRef(idOf(f.Father)), personRef(idOf(f.Mother)), marshalDate(f.Married), marshalDate(f.Divorced))
	if err != nil {
		return fmt.Errorf("write family %s: %w", f.ID, err)
	}

	position := 0
	for _, c := range f.Children {
		if c == nil {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO family_children (family_id, position, person_id)
			VALUES (?, ?, ?)
		`, f.ID, position, c.ID)
		if err != nil {
			return fmt.Errorf("write family %s child %s: %w", f.ID, c.ID, err)
		}
		position++
	}
	return nil
}

func idOf(p *record.Person) string {
	if p == nil {
		return ""
	}
	return p.ID
}
