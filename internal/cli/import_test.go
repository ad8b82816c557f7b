package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_ThenCheck(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "family.db")

	stdout, _, err := executeCommand(t, "import", "testdata/records/family.yaml", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 3 persons and 2 families")

	stdout, _, err = executeCommand(t, "check", dbPath, "--now", "2024-06-01", "--rule", "US29")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "died on 2010-07-01")
	assert.Contains(t, stdout, "Total: 1 finding\n")
}

func TestImportCommand_ReplacesContents(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "family.db")

	_, _, err := executeCommand(t, "import", "testdata/records/family.yaml", dbPath)
	require.NoError(t, err)
	_, _, err = executeCommand(t, "import", "testdata/records/clean.yaml", dbPath)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "check", dbPath, "--now", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total: 0 findings")
}

func TestImportCommand_JSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "family.db")

	stdout, _, err := executeCommand(t, "--format", "json", "import", "testdata/records/family.yaml", dbPath)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   ImportSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ImportSummary{Database: dbPath, Persons: 3, Families: 2}, resp.Data)
}

func TestImportCommand_Errors(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "family.db")

	t.Run("missing document", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "import", "testdata/records/absent.yaml", dbPath)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, stdout, "Error [E_LOAD]")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "import", "testdata/records/duplicate.yaml", dbPath)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, stdout, "Error [E_STORE]")
	})
}
