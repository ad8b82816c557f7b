package engine

import (
	"context"
	"io"
	"log/slog"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/rules"
)

// Observer is notified after each rule evaluation.
// Implementations must be safe for concurrent use (see EvaluateAllParallel).
type Observer interface {
	ObserveRule(id rules.ID, findings int)
}

// Engine dispatches rule identifiers to catalog evaluators.
//
// Thread-safety model:
//   - Engine holds no mutable state after New; all methods are safe from any goroutine
//   - The record.Store must not be mutated while an evaluation runs
type Engine struct {
	catalog  *rules.Catalog
	logger   *slog.Logger
	observer Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for dispatch diagnostics.
// Default: a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers an observer called after every rule evaluation.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// New creates an Engine over the given catalog.
func New(catalog *rules.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine dispatches to.
func (e *Engine) Catalog() *rules.Catalog {
	return e.catalog
}

// Evaluate runs one rule against store with now as the reference date.
//
// Returns an *InputError if the store is malformed. An id that is not in the
// catalog yields an empty set and no error.
func (e *Engine) Evaluate(store *record.Store, id rules.ID, now civil.Date) (*rules.Set, error) {
	if err := checkInput(store); err != nil {
		return nil, err
	}
	return e.evaluate(store, id, now), nil
}

// EvaluateAll runs every catalog rule in registration order.
// The result holds one entry per rule, empty sets included.
func (e *Engine) EvaluateAll(store *record.Store, now civil.Date) (map[rules.ID]*rules.Set, error) {
	return e.EvaluateRules(store, e.catalog.IDs(), now)
}

// EvaluateRules runs the given rules in order. Unknown ids map to empty sets.
func (e *Engine) EvaluateRules(store *record.Store, ids []rules.ID, now civil.Date) (map[rules.ID]*rules.Set, error) {
	if err := checkInput(store); err != nil {
		return nil, err
	}
	results := make(map[rules.ID]*rules.Set, len(ids))
	for _, id := range ids {
		if _, done := results[id]; done {
			continue
		}
		results[id] = e.evaluate(store, id, now)
	}
	return results, nil
}

// EvaluateAllParallel computes the same result as EvaluateAll with one
// goroutine per rule. Cancelling ctx abandons rules that have not started.
func (e *Engine) EvaluateAllParallel(ctx context.Context, store *record.Store, now civil.Date) (map[rules.ID]*rules.Set, error) {
	if err := checkInput(store); err != nil {
		return nil, err
	}

	ids := e.catalog.IDs()
	sets := make([]*rules.Set, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sets[i] = e.evaluate(store, id, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make(map[rules.ID]*rules.Set, len(ids))
	for i, id := range ids {
		results[id] = sets[i]
	}
	return results, nil
}

func (e *Engine) evaluate(store *record.Store, id rules.ID, now civil.Date) *rules.Set {
	set, ok := e.catalog.Evaluate(id, store, now)
	if !ok {
		e.logger.Debug("rule not in catalog, skipping", "rule", id)
		return set
	}
	e.logger.Debug("rule evaluated", "rule", id, "findings", set.Len(), "now", now.String())
	if e.observer != nil {
		e.observer.ObserveRule(id, set.Len())
	}
	return set
}

// checkInput rejects a store that cannot be evaluated reliably.
func checkInput(store *record.Store) error {
	if store == nil {
		return &InputError{Code: ErrCodeNilStore, Message: "record store is nil"}
	}

	var empty []string
	for _, p := range store.Persons() {
		if p.ID == "" {
			empty = append(empty, "person:"+p.Name)
		}
	}
	for _, f := range store.Families() {
		if f.ID == "" {
			empty = append(empty, "family")
		}
	}
	if len(empty) > 0 {
		return &InputError{Code: ErrCodeEmptyID, Message: "record without identifier", RecordIDs: empty}
	}

	if dups := store.DuplicatePersonIDs(); len(dups) > 0 {
		return &InputError{Code: ErrCodeDuplicatePersonID, Message: "person identifier used more than once", RecordIDs: dups}
	}
	if dups := store.DuplicateFamilyIDs(); len(dups) > 0 {
		return &InputError{Code: ErrCodeDuplicateFamilyID, Message: "family identifier used more than once", RecordIDs: dups}
	}
	return nil
}
