package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	want := &SessionSummary{
		Version: "1",
		RunID:   "abc",
		Runs: []RunSummary{{
			Algorithm: "merge",
			Dataset:   "data/random100.txt",
			N:         100,
			TimesMS:   []float64{0.5, 0.25},
			MeanMS:    0.375,
			StdDevMS:  0.17677669529663687,
			Sorted:    true,
		}},
	}
	require.NoError(t, SaveSummary(path, want))

	got, err := LoadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSummaryErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSummary(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadSummary(bad)
	assert.Error(t, err)
}
