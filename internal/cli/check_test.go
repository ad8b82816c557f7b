package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gedcheck/internal/engine"
	"github.com/roach88/gedcheck/internal/testutil"
)

func TestCheckCommand_NoFindings(t *testing.T) {
	stdout, _, err := executeCommand(t, "check", "testdata/records/clean.yaml", "--now", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))
	assert.Contains(t, stdout, "reference date 2024-06-01")
	assert.Contains(t, stdout, "US01 Dates (birth, death, marriage, divorce) must not be after the current date: no findings")
	assert.Contains(t, stdout, "Total: 0 findings")
}

func TestCheckCommand_FindingsExitFailure(t *testing.T) {
	stdout, _, err := executeCommand(t, "check", "testdata/records/future.yaml", "--now", "2024-06-01", "--rule", "US01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 finding reported")
	assert.Contains(t, stdout, "birth date 2030-01-01 is after the current date 2024-06-01")
	assert.Contains(t, stdout, "Total: 1 finding\n")
	assert.NotContains(t, stdout, "US02", "only the selected rule is reported")
}

func TestCheckCommand_OnlyFindings(t *testing.T) {
	stdout, _, err := executeCommand(t, "check", "testdata/records/future.yaml",
		"--now", "2024-06-01", "--only-findings")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.NotContains(t, stdout, "no findings")
	assert.Contains(t, stdout, "US01 ")
}

func TestCheckCommand_Parallel(t *testing.T) {
	stdout, _, err := executeCommand(t, "check", "testdata/records/family.yaml", "--now", "2024-06-01", "--parallel")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "US29 List deceased family members: 1 finding")
	assert.Contains(t, stdout, "died on 2010-07-01")
}

func TestCheckCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "check", "testdata/records/future.yaml",
		"--now", "2024-06-01", "--rule", "US01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string          `json:"status"`
		RunID  string          `json:"run_id"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunID)

	var data struct {
		ReferenceDate string `json:"reference_date"`
		RunID         string `json:"run_id"`
		Total         int    `json:"total"`
		Rules         []struct {
			ID       string `json:"id"`
			Findings []struct {
				Fingerprint string `json:"fingerprint"`
			} `json:"findings"`
		} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "2024-06-01", data.ReferenceDate)
	assert.Equal(t, resp.RunID, data.RunID)
	assert.Equal(t, 1, data.Total)
	require.Len(t, data.Rules, 1)
	assert.Equal(t, "US01", data.Rules[0].ID)
	require.Len(t, data.Rules[0].Findings, 1)
	assert.Len(t, data.Rules[0].Findings[0].Fingerprint, 64)
}

func TestCheckCommand_UnknownRule(t *testing.T) {
	stdout, _, err := executeCommand(t, "check", "testdata/records/future.yaml", "--now", "2024-06-01", "--rule", "US77")
	require.NoError(t, err)
	assert.Contains(t, stdout, "US77: no findings")
}

func TestCheckCommand_CommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing file", []string{"check", "testdata/records/absent.yaml"}, "E_LOAD"},
		{"unsupported format", []string{"check", "testdata/records/family.ged"}, "E_LOAD"},
		{"duplicate ids", []string{"check", "testdata/records/duplicate.yaml", "--now", "2024-06-01"}, "E_INVALID_INPUT"},
		{"bad now", []string{"check", "testdata/records/clean.yaml", "--now", "June 2024"}, "E_NOW"},
		{"missing config", []string{"check", "testdata/records/clean.yaml", "--config", "testdata/absent.cue"}, "E_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.code+"]")
		})
	}
}

func TestCheckCommand_RequiresOneArg(t *testing.T) {
	_, _, err := executeCommand(t, "check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommand_ConfigThresholds(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gedcheck.cue")
	require.NoError(t, os.WriteFile(cfgPath, []byte("thresholds: recent_death_days: 6000\n"), 0644))

	stdout, _, err := executeCommand(t, "check", "testdata/records/family.yaml",
		"--now", "2024-06-01", "--rule", "US36", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "US36 List deaths within the recent window: 1 finding")
}

func TestCheckCommand_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gedcheck.prom")

	_, _, err := executeCommand(t, "check", "testdata/records/future.yaml",
		"--now", "2024-06-01", "--rule", "US01", "--rule", "US29", "--metrics-file", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gedcheck_rule_findings{rule="US01"} 1`)
	assert.Contains(t, string(data), `gedcheck_rule_findings{rule="US29"} 0`)
	assert.Contains(t, string(data), "gedcheck_last_run_timestamp_seconds")
}

func TestRunCheck_InjectedClockAndRunID(t *testing.T) {
	opts := &CheckOptions{
		RootOptions: &RootOptions{Format: "text"},
		Rules:       []string{"US01"},
		Clock:       engine.StaticClock(civil.Date{Year: 2024, Month: 6, Day: 1}),
		RunIDs:      testutil.NewFixedRunIDGenerator("run-7"),
	}

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())

	err := runCheck(opts, "testdata/records/future.yaml", cmd)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Run run-7, reference date 2024-06-01\n", firstLine(out.String()))
}

func firstLine(s string) string {
	i := bytes.IndexByte([]byte(s), '\n')
	if i < 0 {
		return s
	}
	return s[:i+1]
}
