// Package loader builds a record.Store from a record file.
//
// Supported inputs:
//   - .yaml / .yml: a record Document (persons and families), decoded strictly
//   - .db / .sqlite / .sqlite3: a record database (see internal/store)
//
// Dates are accepted as ISO-8601 (2006-01-02) or GEDCOM day-month-year
// (2 JAN 2006). An empty date is unknown. References to person identifiers
// that no person carries resolve to nil.
package loader
