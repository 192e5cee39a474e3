package spiri

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"

	"github.com/beevik/etree"
)

// Writer serializes commitments documents.
type Writer struct {
	indent int
	logger logging.Logger
}

// NewWriter creates a Writer. indent is the number of spaces per nesting
// level; zero writes the document on a single line.
func NewWriter(indent int, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if indent < 0 {
		indent = 0
	}
	return &Writer{indent: indent, logger: logger}
}

// Write renders c to out.
func (w *Writer) Write(out io.Writer, c models.Commitments) error {
	doc := w.render(c)
	if _, err := doc.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write SPIRI document: %w", err)
	}
	return nil
}

// WriteFile renders c to path and returns the absolute path written. The
// document is rendered fully before the file is created.
func (w *Writer) WriteFile(path string, c models.Commitments) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	data, err := w.render(c).WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("failed to render SPIRI document: %w", err)
	}

	file, err := fileutils.CreateFile(absPath)
	if err != nil {
		return "", err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to write SPIRI document: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	w.logger.Info("Wrote SPIRI document",
		logging.F(logging.FieldOutputFile, absPath),
		logging.F(logging.FieldCount, c.Len()),
		logging.F(logging.FieldBudgetYear, c.BudgetYear))

	return absPath, nil
}

func (w *Writer) render(c models.Commitments) *etree.Document {
	doc := Render(c)
	if w.indent > 0 {
		doc.IndentWithSettings(&etree.IndentSettings{
			Spaces:                 w.indent,
			PreserveLeafWhitespace: true,
		})
	}
	return doc
}
