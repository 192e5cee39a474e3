// Package validation checks operator-supplied paths and settings before a
// run starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported run report formats.
const (
	ReportFormatYAML = "yaml"
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
	ReportFormatJSON = "json"
)

// MaxIndent is the largest accepted output indentation.
const MaxIndent = 8

// ReportFormats lists the supported run report formats.
func ReportFormats() []string {
	return []string{ReportFormatYAML, ReportFormatCSV, ReportFormatXLSX, ReportFormatJSON}
}

// IsValidInputPath checks that path exists and is a regular file or a
// directory.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidOutputPath checks that path can name an output file: it is not
// empty and not an existing directory.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path is empty")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	return nil
}

// IsValidReportFormat checks if the given run report format is supported.
func IsValidReportFormat(format string) error {
	for _, f := range ReportFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported report format: %s. Supported formats are %s",
		format, strings.Join(ReportFormats(), ", "))
}

// ReportFormatForPath picks the report format from the extension of path,
// falling back to fallback when the extension names no supported format.
func ReportFormatForPath(path, fallback string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		ext = ReportFormatYAML
	}
	if IsValidReportFormat(ext) == nil {
		return ext
	}
	return fallback
}

// IsValidIndent checks the output indentation width.
func IsValidIndent(indent int) error {
	if indent < 0 || indent > MaxIndent {
		return fmt.Errorf("output.indent must be between 0 and %d, got: %d", MaxIndent, indent)
	}
	return nil
}
