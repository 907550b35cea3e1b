package cleaning

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WritePDFReport renders a one-page PDF version of the cleaning summary.
func WritePDFReport(path string, summary *Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Data Cleaning Report - USGS Earthquake Catalog")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Original records: %d", summary.OriginalCount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Final records: %d", summary.FinalCount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Retention: %.2f%%", summary.RetentionPercent()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Temporal range: %d - %d", summary.MinYear, summary.MaxYear))
	pdf.Ln(8)

	// Stage removal table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Stage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Removed", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	rows := []struct {
		stage   string
		removed int
	}{
		{"Deduplication", summary.Dedup.Removed()},
		{"Completeness filter", summary.Completeness.Removed()},
		{"Range: magnitude", summary.Ranges.RemovedMag},
		{"Range: depth", summary.Ranges.RemovedDepth},
		{"Range: coordinates", summary.Ranges.RemovedCoords},
	}
	for _, row := range rows {
		pdf.CellFormat(80, 6, row.stage, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", row.removed), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Decade", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Events", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, decade := range sortedDecades(summary.DecadeCounts) {
		pdf.CellFormat(80, 6, fmt.Sprintf("%ds", decade), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", summary.DecadeCounts[decade]), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write PDF report: %w", err)
	}
	return nil
}
