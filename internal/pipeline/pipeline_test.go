package pipeline

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/risk"
	"github.com/theirongolddev/riskdash/internal/store"
)

func TestLoadDataset_DefaultsToSample(t *testing.T) {
	res := LoadDataset(DatasetOptions{})

	assert.Equal(t, SourceSample, res.Source)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, portfolio.Sample(), res.Dataset)
}

func TestLoadDataset_FileFallsBackToSample(t *testing.T) {
	res := LoadDataset(DatasetOptions{File: filepath.Join(t.TempDir(), "missing.toml")})

	assert.Equal(t, SourceSample, res.Source)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "reading dataset")
}

func TestLoadDataset_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q3.toml")
	d := portfolio.Sample()
	d.Name = "q3"
	d.Summary.AvgRiskScore = 702
	require.NoError(t, portfolio.WriteFile(path, d))

	res := LoadDataset(DatasetOptions{File: path})

	assert.Equal(t, SourceFile, res.Source)
	assert.Equal(t, path, res.Location)
	assert.Equal(t, 702, res.Dataset.Summary.AvgRiskScore)
}

func TestLoadDataset_StoreFirst(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "datasets.db")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	d := portfolio.Sample()
	d.Name = "stress"
	d.Summary.DefaultRate = 6.4
	require.NoError(t, s.SaveDataset(d))
	require.NoError(t, s.Close())

	filePath := filepath.Join(dir, "file.toml")
	require.NoError(t, portfolio.WriteFile(filePath, portfolio.Sample()))

	res := LoadDataset(DatasetOptions{DBPath: dbPath, Name: "stress", File: filePath})
	assert.Equal(t, SourceStore, res.Source)
	assert.Equal(t, 6.4, res.Dataset.Summary.DefaultRate)
	assert.Empty(t, res.Warnings)

	// Unknown name falls through to the file.
	res = LoadDataset(DatasetOptions{DBPath: dbPath, Name: "nope", File: filePath})
	assert.Equal(t, SourceFile, res.Source)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "dataset not found")
}

func TestScoreBatch_PreservesOrder(t *testing.T) {
	var entries []Entry
	for i := 0; i < 50; i++ {
		in := risk.NewInput("650", "40000", "2", "0.5", "50000", "1")
		if i%5 == 0 {
			in = in.With(risk.Income, "n/a")
		}
		entries = append(entries, Entry{Name: string(rune('A' + i%26)), Input: in})
	}

	var mu sync.Mutex
	var calls, lastTotal int
	scored := ScoreBatch(entries, func(current, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		lastTotal = total
	})

	require.Len(t, scored, len(entries))
	assert.Equal(t, len(entries), calls)
	assert.Equal(t, len(entries), lastTotal)

	for i, sc := range scored {
		assert.Equal(t, entries[i].Input, sc.Input)
		if i%5 == 0 {
			assert.False(t, sc.Result.Score.IsSet(), "entry %d should be unset", i)
			continue
		}
		v, ok := sc.Result.Score.Value()
		require.True(t, ok)
		assert.Equal(t, 809, v)
	}

	sum := Summarize(scored)
	assert.Equal(t, 50, sum.Total)
	assert.Equal(t, 10, sum.Levels[risk.NotCalculated])
	assert.Equal(t, 40, sum.Levels[risk.LowRisk])
}

func TestScoreBatch_Empty(t *testing.T) {
	assert.Nil(t, ScoreBatch(nil, nil))
}

func TestParseApplicants(t *testing.T) {
	src := `
[[applicant]]
name = "alice"
credit_score = 650
income = 40000
employment_years = 2
debt_to_income = 0.5
asset_value = 50000.0
payment_history = "1"

[[applicant]]
credit_score = 700
`
	entries, err := ParseApplicants([]byte(src))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice", entries[0].Name)
	assert.Equal(t, risk.NewInput("650", "40000", "2", "0.5", "50000", "1"), entries[0].Input)

	assert.Equal(t, "#2", entries[1].Name)
	assert.Equal(t, "700", entries[1].Input.Value(risk.CreditScore))
	assert.Empty(t, entries[1].Input.Value(risk.Income))
	assert.False(t, risk.Calculate(entries[1].Input).IsSet())
}

func TestParseApplicants_UnknownField(t *testing.T) {
	_, err := ParseApplicants([]byte("[[applicant]]\nsalary = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "salary"`)
}

func TestLoadApplicants_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applicants.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[applicant]]\ncredit_score = 800\n"), 0o600))

	entries, err := LoadApplicants(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "800", entries[0].Input.Value(risk.CreditScore))

	_, err = LoadApplicants(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
