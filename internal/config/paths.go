package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	BaseDir      string
	DataDir      string
	RawDir       string
	ProcessedDir string
	ResultsDir   string
	FiguresDir   string
	LogsDir      string

	// Well-known files
	RawCSV            string
	CleanCSV          string
	CleaningReportTXT string
	CleaningReportPDF string
	AnalysisReportTXT string
	ModelReportTXT    string
	ChartsWorkbook    string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are always relative to the executable directory, never the
// current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at the given base directory
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	resultsDir := filepath.Join(baseDir, "outputs", "results")
	figuresDir := filepath.Join(baseDir, "outputs", "figures")

	p := &Paths{
		BaseDir:      baseDir,
		DataDir:      dataDir,
		RawDir:       filepath.Join(dataDir, "raw"),
		ProcessedDir: filepath.Join(dataDir, "processed"),
		ResultsDir:   resultsDir,
		FiguresDir:   figuresDir,
		LogsDir:      filepath.Join(baseDir, "logs"),
	}

	p.RawCSV = filepath.Join(p.RawDir, "Earthquakes_USGS.csv")
	p.CleanCSV = filepath.Join(p.ProcessedDir, "earthquakes_clean.csv")
	p.CleaningReportTXT = filepath.Join(p.ResultsDir, "cleaning_report.txt")
	p.CleaningReportPDF = filepath.Join(p.ResultsDir, "cleaning_report.pdf")
	p.AnalysisReportTXT = filepath.Join(p.ResultsDir, "descriptive_analysis_report.txt")
	p.ModelReportTXT = filepath.Join(p.ResultsDir, "analytical_models_report.txt")
	p.ChartsWorkbook = filepath.Join(p.FiguresDir, "earthquake_charts.xlsx")

	return p
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.RawDir,
		p.ProcessedDir,
		p.ResultsDir,
		p.FiguresDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetResultPath returns the full path for a results file
func (p *Paths) GetResultPath(filename string) string {
	return filepath.Join(p.ResultsDir, filename)
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
