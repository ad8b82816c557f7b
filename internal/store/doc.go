// Package store provides a SQLite-backed record source for gedcheck.
//
// A record database holds three tables:
//   - individuals: id, name, birth, death
//   - families: id, husband_id, wife_id, married, divorced
//   - family_children: ordered child references per family
//
// # Critical Patterns
//
// Deterministic Load
//   - All queries include ORDER BY ... COLLATE BINARY
//   - Children keep their stored position order
//
// Unknown References
//   - husband_id, wife_id and person_id are plain TEXT, not foreign keys
//   - A reference to a missing individual loads as a nil *record.Person,
//     which every rule treats as unknown
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Child rows are removed with their family
//
// Dates are stored as ISO-8601 TEXT and decoded with civil.ParseDate.
package store
