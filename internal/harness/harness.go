package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/roach88/gedcheck/internal/engine"
	"github.com/roach88/gedcheck/internal/loader"
	"github.com/roach88/gedcheck/internal/report"
	"github.com/roach88/gedcheck/internal/rules"
	"github.com/roach88/gedcheck/internal/testutil"
)

// Run executes a test scenario and returns the result.
//
// Execution flow:
//  1. Build the record store from the scenario's document
//  2. Build a catalog with the scenario's thresholds
//  3. Evaluate the selected rules at the scenario's reference date
//  4. Assemble a report with a fixed run identifier
//  5. Check every assertion against the report
//
// A failing assertion fails the Result; malformed scenarios and invalid
// record stores return an error.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with engine diagnostics sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	now, err := civil.ParseDate(scenario.Now)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: now: %w", scenario.Name, err)
	}

	store, err := loader.Build(&scenario.Records)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	th := scenario.Thresholds.Apply(rules.DefaultThresholds())
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: thresholds: %w", scenario.Name, err)
	}
	catalog := rules.NewCatalog(th)
	eng := engine.New(catalog, engine.WithLogger(logger))

	ids := catalog.IDs()
	if len(scenario.Rules) > 0 {
		ids = make([]rules.ID, 0, len(scenario.Rules))
		for _, r := range scenario.Rules {
			ids = append(ids, rules.ParseID(r))
		}
	}

	results, err := eng.EvaluateRules(store, ids, now)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	rep, err := report.Build(catalog, results, now, testutil.NewFixedRunIDGenerator(scenario.RunID))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Report = rep
	for i, a := range scenario.Assertions {
		if err := checkAssertion(rep, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	logger.LogAttrs(context.Background(), slog.LevelDebug, "scenario evaluated",
		slog.String("scenario", scenario.Name),
		slog.Int("findings", rep.Total()),
		slog.Bool("pass", result.Pass),
	)
	return result, nil
}
