package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gedcheck/internal/loader"
	"github.com/roach88/gedcheck/internal/store"
)

// ImportSummary describes a completed import.
type ImportSummary struct {
	Database string `json:"database"`
	Persons  int    `json:"persons"`
	Families int    `json:"families"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <records.yaml> <database>",
		Short: "Import a YAML record document into a SQLite record database",
		Long: `Import a YAML record document into a SQLite record database.

The database is created if missing. Existing records are replaced in a
single transaction, so a failed import leaves the previous contents intact.

Examples:
  gedcheck import family.yaml family.db
  gedcheck check family.db`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runImport(opts *RootOptions, docPath, dbPath string, cmd *cobra.Command) error {
	out := formatter(opts, cmd)
	logger := out.Logger()
	ctx := cmd.Context()

	doc, err := loader.ReadDocument(docPath)
	if err != nil {
		out.Error("E_LOAD", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read records", err)
	}
	records, err := loader.Build(doc)
	if err != nil {
		out.Error("E_LOAD", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to build records", err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		out.Error("E_STORE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer db.Close()

	if err := db.Import(ctx, records); err != nil {
		out.Error("E_STORE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	summary := ImportSummary{
		Database: dbPath,
		Persons:  len(records.Persons()),
		Families: len(records.Families()),
	}
	logger.Info("records imported", "database", dbPath, "persons", summary.Persons, "families", summary.Families)

	if out.Format == "json" {
		return out.Success(summary)
	}
	fmt.Fprintf(out.Writer, "Imported %d persons and %d families into %s\n", summary.Persons, summary.Families, dbPath)
	return nil
}
