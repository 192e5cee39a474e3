// Package report writes the run report of a conversion: which files were
// converted or skipped, with their amounts and the decimal total.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/validation"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Sheet names of the XLSX report.
const (
	SheetSummary = "Summary"
	SheetFiles   = "Files"
)

// NewRunID returns a fresh identifier for a conversion run.
func NewRunID() string {
	return uuid.New().String()
}

// Generator renders run reports in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// Generate renders summary in format (yaml, csv, xlsx or json).
func (g *Generator) Generate(summary models.RunSummary, format string) ([]byte, error) {
	switch format {
	case validation.ReportFormatYAML:
		return g.generateYAML(summary)
	case validation.ReportFormatJSON:
		return g.generateJSON(summary)
	case validation.ReportFormatCSV:
		return g.generateCSV(summary)
	case validation.ReportFormatXLSX:
		return g.generateXLSX(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteFile renders summary to path and returns the absolute path written.
// The format comes from the extension of path, or fallback when the
// extension names no supported format.
func (g *Generator) WriteFile(path string, summary models.RunSummary, fallback string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve report path: %w", err)
	}

	format := validation.ReportFormatForPath(path, fallback)
	data, err := g.Generate(summary, format)
	if err != nil {
		return "", err
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(absPath)); err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, data, models.PermissionReportFile); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	g.logger.Info("Wrote run report",
		logging.F(logging.FieldReportFile, absPath),
		logging.F(logging.FieldRunID, summary.RunID),
		logging.F("format", format))

	return absPath, nil
}

func (g *Generator) generateYAML(summary models.RunSummary) ([]byte, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateJSON(summary models.RunSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

// generateCSV writes one row per file outcome.
func (g *Generator) generateCSV(summary models.RunSummary) ([]byte, error) {
	files := summary.Files
	if files == nil {
		files = []models.FileOutcome{}
	}

	var buf bytes.Buffer
	if err := gocsv.MarshalCSV(files, gocsv.NewSafeCSVWriter(csv.NewWriter(&buf))); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

// generateXLSX writes a key/value summary sheet and a sheet of file outcomes.
func (g *Generator) generateXLSX(summary models.RunSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"run_id", summary.RunID},
		{"output_file", summary.OutputFile},
		{"budget_year", summary.BudgetYear},
		{"cumulative_reason_code", summary.ReasonCode},
		{"converted", summary.Converted},
		{"skipped", summary.Skipped},
		{"total", summary.Total.Amount.String()},
		{"currency", summary.Total.Currency},
	}
	for _, a := range summary.UnparsedSums {
		summaryRows = append(summaryRows, []interface{}{"unparsed_amount", a})
	}
	if err := setRows(f, SheetSummary, summaryRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetFiles); err != nil {
		return nil, fmt.Errorf("failed to create files sheet: %w", err)
	}
	fileRows := [][]interface{}{{
		"ordinal", "file_path", "status", "invoice_number", "external_id",
		"amount", "contract_number", "reason",
	}}
	for _, o := range summary.Files {
		fileRows = append(fileRows, []interface{}{
			o.Ordinal, o.FilePath, o.Status, o.InvoiceNumber, o.ExternalID,
			o.Amount, o.ContractNumber, o.Reason,
		})
	}
	if err := setRows(f, SheetFiles, fileRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		g.logger.WithError(err).Error("Failed to write XLSX report")
		return nil, fmt.Errorf("failed to write XLSX report: %w", err)
	}
	return buf.Bytes(), nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
