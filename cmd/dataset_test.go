package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		flagDatasetDB, flagDatasetFile, flagDatasetName, flagLogLevel = "", "", "", ""
		flagInitFrom, flagInitName = "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvDatasetDB, "")
	t.Setenv(config.EnvDatasetFile, "")
	t.Setenv(config.EnvLogLevel, "")
	return dir
}

func TestDatasetInitListShowDelete(t *testing.T) {
	dir := isolateConfig(t)
	db := filepath.Join(dir, "datasets.db")

	out, err := execute(t, "--dataset-db", db, "dataset", "init", "--name", "q3")
	require.NoError(t, err)
	assert.Contains(t, out, `Stored "q3" (6 records)`)

	out, err = execute(t, "--dataset-db", db, "dataset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "q3")

	out, err = execute(t, "--dataset-db", db, "dataset", "show", "q3")
	require.NoError(t, err)
	assert.Contains(t, out, `name = "q3"`)
	assert.Contains(t, out, "[[record]]")
	assert.Contains(t, out, `month = "Jan"`)
	assert.Contains(t, out, "[summary]")

	out, err = execute(t, "--dataset-db", db, "dataset", "delete", "q3")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "q3"`)

	_, err = execute(t, "--dataset-db", db, "dataset", "show", "q3")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDatasetInitFromFile(t *testing.T) {
	dir := isolateConfig(t)
	db := filepath.Join(dir, "datasets.db")

	d := portfolio.Sample()
	d.Name = "imported"
	d.Summary.AvgRiskScore = 702
	src := filepath.Join(dir, "imported.toml")
	require.NoError(t, portfolio.WriteFile(src, d))

	_, err := execute(t, "--dataset-db", db, "dataset", "init", "--from", src)
	require.NoError(t, err)

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.LoadDataset("imported")
	require.NoError(t, err)
	assert.Equal(t, 702, got.Summary.AvgRiskScore)
	assert.Len(t, got.Records, len(d.Records))
}

func TestDatasetListEmpty(t *testing.T) {
	dir := isolateConfig(t)

	out, err := execute(t, "--dataset-db", filepath.Join(dir, "empty.db"), "dataset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No datasets stored")
}
