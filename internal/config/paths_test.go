package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/base")

	assert.Equal(t, "/base", p.BaseDir)
	assert.Equal(t, filepath.Join("/base", "data", "raw"), p.RawDir)
	assert.Equal(t, filepath.Join("/base", "data", "processed"), p.ProcessedDir)
	assert.Equal(t, filepath.Join("/base", "outputs", "results"), p.ResultsDir)
	assert.Equal(t, filepath.Join("/base", "outputs", "figures"), p.FiguresDir)

	assert.Equal(t, filepath.Join(p.RawDir, "Earthquakes_USGS.csv"), p.RawCSV)
	assert.Equal(t, filepath.Join(p.ProcessedDir, "earthquakes_clean.csv"), p.CleanCSV)
	assert.Equal(t, filepath.Join(p.ResultsDir, "cleaning_report.txt"), p.CleaningReportTXT)
	assert.Equal(t, filepath.Join(p.FiguresDir, "earthquake_charts.xlsx"), p.ChartsWorkbook)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := NewPaths(base)

	require.NoError(t, p.EnsureDirectories())

	for _, dir := range []string{p.DataDir, p.RawDir, p.ProcessedDir, p.ResultsDir, p.FiguresDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "directory %s", dir)
		assert.True(t, info.IsDir())
	}
}

func TestGetLogPath(t *testing.T) {
	p := NewPaths("/base")
	assert.Equal(t, filepath.Join("/base", "logs", "cleaner.log"), p.GetLogPath("cleaner.log"))
}

func TestGetResultPath(t *testing.T) {
	p := NewPaths("/base")
	assert.Equal(t, filepath.Join("/base", "outputs", "results", "x.txt"), p.GetResultPath("x.txt"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
	assert.False(t, FileExists(dir), "directories do not count")
}
