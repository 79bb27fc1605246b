package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/commands"
	"github.com/tally-dev/tally/internal/entries"
	"github.com/tally-dev/tally/internal/model"
)

var tallyEnv = []string{"TALLY_CONFIG", "TALLY_DATA_DIR", "TALLY_LOG_LEVEL", "TALLY_NOW"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range tallyEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// runTally runs the CLI in-process against dir with now fixed to
// 25 February 2024.
func runTally(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data-dir", dir, "--now", "2024-02-25"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runTally(t, dir, args...)
	require.NoError(t, err, "tally %s", strings.Join(args, " "))
	return out
}

func newLedger(t *testing.T, balance string) string {
	t.Helper()
	clearEnv(t)
	dir := t.TempDir()
	mustRun(t, dir, "init", "--name", "Camille", "--balance", balance)
	return dir
}

func readEntries(t *testing.T, dir string) []model.Entry {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, "entries.csv"))
	require.NoError(t, err)
	defer f.Close()
	list, err := entries.ReadEntries(f)
	require.NoError(t, err)
	return list
}

func writeEntries(t *testing.T, dir string, list []model.Entry) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, "entries.csv"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, entries.WriteEntries(f, list))
}
