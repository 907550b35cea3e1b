package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileValidator provides input and output checks shared by all executables
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateCatalogFile checks that the given path points to a readable,
// non-empty CSV catalog before the expensive load starts.
func (v *FileValidator) ValidateCatalogFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Catalog file does not exist",
			slog.String("path", path))
		return fmt.Errorf("catalog file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat catalog file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Catalog path is a directory",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, expected a CSV file", path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		v.logger.Warn("Catalog file has unexpected extension",
			slog.String("path", path),
			slog.String("extension", ext))
	}

	if info.Size() == 0 {
		v.logger.Error("Catalog file is empty",
			slog.String("path", path))
		return fmt.Errorf("catalog file %s is empty", path)
	}

	v.logger.Info("Catalog file validated",
		slog.String("path", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists or can be
// created, and that it is writable.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	f.Close()
	os.Remove(probe)

	return nil
}
