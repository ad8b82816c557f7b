// Package rules implements the catalog of genealogy consistency rules.
//
// Each rule is a pure Evaluator over a read-only record.Store and an explicit
// reference date. Evaluators never read the wall clock and never mutate the
// store. Their findings are collected into a Set keyed by message text, so
// two evaluation paths that produce the same message collapse into one
// finding.
//
// Rule identifiers are the user story codes of the project (US01, US02, ...).
// The Catalog maps each identifier to its evaluator and binds the numeric
// thresholds (minimum marriage age, adulthood age, "recent" windows).
package rules
