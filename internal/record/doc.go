// Package record holds the parsed genealogy records an evaluation runs over.
//
// This package contains the data model only. The rule packages import record;
// record imports nothing internal. A Store is built once per input and is
// read-only for the lifetime of an evaluation run.
//
// Key constraints:
//   - Dates are *civil.Date; nil means unknown, never a default date
//   - Family spouses may be nil, and child lists may contain nil entries
//   - Records are ordered by identifier (byte-wise) for deterministic output
package record
