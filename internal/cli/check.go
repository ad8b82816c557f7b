package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/roach88/gedcheck/internal/config"
	"github.com/roach88/gedcheck/internal/engine"
	"github.com/roach88/gedcheck/internal/loader"
	"github.com/roach88/gedcheck/internal/metrics"
	"github.com/roach88/gedcheck/internal/report"
	"github.com/roach88/gedcheck/internal/rules"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Rules        []string // rule identifiers; empty means all
	Now          string   // reference date override, YYYY-MM-DD
	ConfigPath   string   // optional CUE configuration file
	Parallel     bool     // evaluate all rules concurrently
	MetricsFile  string   // optional Prometheus textfile output
	OnlyFindings bool     // hide rules without findings in text output

	// Clock supplies today's date when --now is not given. Nil uses the
	// system clock in the configured timezone.
	Clock engine.Clock

	// RunIDs generates the report run identifier. Nil uses UUIDv7.
	RunIDs report.RunIDGenerator
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <records>",
		Short: "Evaluate rules against a record file",
		Long: `Load a record file and evaluate rules against it.

The record file is a YAML record document (.yaml, .yml) or a SQLite
record database (.db, .sqlite, .sqlite3).

Exit codes:
  0 - No findings
  1 - One or more findings reported
  2 - Command error (missing file, bad config, invalid records)

Examples:
  gedcheck check family.yaml
  gedcheck check family.yaml --rule US02 --rule US33
  gedcheck check family.db --now 2024-05-31 --format json
  gedcheck check family.yaml --config gedcheck.cue --metrics-file /var/lib/node_exporter/gedcheck.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Rules, "rule", "r", nil, "rule to evaluate (repeatable; default all)")
	cmd.Flags().StringVar(&opts.Now, "now", "", "reference date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "CUE configuration file")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "evaluate all rules concurrently (ignored with --rule)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&opts.OnlyFindings, "only-findings", false, "omit rules without findings from text output")

	return cmd
}

func runCheck(opts *CheckOptions, path string, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)
	logger := out.Logger()
	ctx := cmd.Context()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		out.Error("E_CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	now, err := referenceDate(opts, cfg)
	if err != nil {
		out.Error("E_NOW", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid reference date", err)
	}

	logger.Debug("loading records", "path", path)
	store, err := loader.Load(ctx, path)
	if err != nil {
		out.Error("E_LOAD", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}
	logger.Info("records loaded", "persons", len(store.Persons()), "families", len(store.Families()))

	catalog := rules.NewCatalog(cfg.Thresholds)
	engOpts := []engine.Option{engine.WithLogger(logger)}
	var recorder *metrics.Recorder
	if opts.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		engOpts = append(engOpts, engine.WithObserver(recorder))
	}
	eng := engine.New(catalog, engOpts...)

	var results map[rules.ID]*rules.Set
	switch {
	case len(opts.Rules) > 0:
		ids := make([]rules.ID, 0, len(opts.Rules))
		for _, r := range opts.Rules {
			ids = append(ids, rules.ParseID(r))
		}
		results, err = eng.EvaluateRules(store, ids, now)
	case opts.Parallel:
		results, err = eng.EvaluateAllParallel(ctx, store, now)
	default:
		results, err = eng.EvaluateAll(store, now)
	}
	if err != nil {
		if engine.IsInvalidInput(err) {
			out.Error("E_INVALID_INPUT", err.Error(), nil)
			return WrapExitError(ExitCommandError, "invalid records", err)
		}
		out.Error("E_EVALUATE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "evaluation failed", err)
	}

	rep, err := report.Build(catalog, results, now, opts.RunIDs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build report", err)
	}
	logger.Info("evaluation complete", "run_id", rep.RunID, "rules", len(rep.Rules), "findings", rep.Total())

	if recorder != nil {
		recorder.MarkRun()
		if err := recorder.WriteTextfile(opts.MetricsFile); err != nil {
			out.Error("E_METRICS", err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to write metrics", err)
		}
	}

	if err := writeReport(out, rep, opts.OnlyFindings); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}

	if n := rep.Total(); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d %s reported", n, plural(n, "finding")))
	}
	return nil
}

// referenceDate resolves --now, falling back to today in the configured timezone.
func referenceDate(opts *CheckOptions, cfg config.Config) (civil.Date, error) {
	if opts.Now != "" {
		return civil.ParseDate(strings.TrimSpace(opts.Now))
	}
	if opts.Clock != nil {
		return opts.Clock.Today(), nil
	}
	loc, err := cfg.Location()
	if err != nil {
		return civil.Date{}, err
	}
	return engine.SystemClock{Location: loc}.Today(), nil
}

func writeReport(out *OutputFormatter, rep *report.Report, onlyFindings bool) error {
	if out.Format == "json" {
		data, err := rep.MarshalCanonical()
		if err != nil {
			return err
		}
		return json.NewEncoder(out.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   json.RawMessage(data),
			RunID:  rep.RunID,
		})
	}
	return rep.WriteText(out.Writer, onlyFindings)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
