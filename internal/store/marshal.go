package store

import (
	"database/sql"
	"fmt"

	"cloud.google.com/go/civil"
)

// marshalDate converts an optional date to a nullable TEXT column value.
func marshalDate(d *civil.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

// unmarshalDate parses a nullable TEXT column. NULL and '' are unknown dates.
func unmarshalDate(column string, v sql.NullString) (*civil.Date, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(v.String)
	if err != nil {
		return nil, fmt.Errorf("column %s: invalid date %q: %w", column, v.String, err)
	}
	return &d, nil
}

// personRef stores an empty person identifier as NULL.
func personRef(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}
