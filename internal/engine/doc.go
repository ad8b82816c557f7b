// Package engine implements the evaluation driver for the rule catalog.
//
// The engine receives a read-only record.Store and a reference date, looks up
// the requested rules in a rules.Catalog, runs them and returns their finding
// sets. It is the only entry point callers use to evaluate records.
//
// ARCHITECTURE:
//
// Input check, then pure evaluation:
// 1. checkInput() rejects a malformed store (nil, empty or duplicate ids)
// 2. Evaluate() dispatches one rule id through the catalog
// 3. EvaluateAll() runs every catalog rule in registration order
// 4. Results are returned as rules.Set values; the engine never prints
//
// A malformed store aborts the run with an *InputError before any rule runs,
// so callers never see partially-correct findings.
//
// CRITICAL PATTERNS:
//
// Explicit reference date
// Every evaluation takes "now" as an argument. The engine never reads the
// wall clock; Clock is used only at the edge (CLI) to obtain a date.
//
// Unknown rule ids
// An id missing from the catalog is a silent no-op that yields an empty set.
// Rules are rolled out incrementally and an unimplemented id is not an error.
//
// Read-only evaluation
// Evaluators never mutate the store, so EvaluateAllParallel runs one
// goroutine per rule without locking.
package engine
