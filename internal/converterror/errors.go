// Package converterror defines the errors raised while converting SEF invoices
// into a SPIRI commitments document.
package converterror

import (
	"errors"
	"fmt"
)

// ErrNoFilesSelected is returned when the file selection is empty.
var ErrNoFilesSelected = errors.New("no files selected")

// ErrCancelled is returned when the operator cancels a prompt.
var ErrCancelled = errors.New("cancelled by user")

// DateFormatError represents an expected payment date from which no budget
// year can be derived.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid expected payment date '%s': expected YYYY-MM-DD", e.Value)
}

// FileReadError represents a source file that could not be opened or parsed.
type FileReadError struct {
	FilePath string
	Err      error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read '%s': %v", e.FilePath, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// RequiredFieldMissingError represents a source document lacking a mandatory
// element.
type RequiredFieldMissingError struct {
	FilePath string
	Field    string
	Path     string
}

func (e *RequiredFieldMissingError) Error() string {
	return fmt.Sprintf("required field %s (%s) missing in '%s'", e.Field, e.Path, e.FilePath)
}

// ClassificationRequiredError is returned when no economic classification code
// was entered for an invoice. It aborts the whole run.
type ClassificationRequiredError struct {
	FilePath      string
	InvoiceNumber string
	Ordinal       int
}

func (e *ClassificationRequiredError) Error() string {
	return fmt.Sprintf("economic classification code required for invoice %s (file %d: '%s')",
		e.InvoiceNumber, e.Ordinal, e.FilePath)
}

// InvalidFormatError represents an input file that is not a SEF invoice.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// IsFileScoped reports whether err only affects a single file, in which case
// the batch goes on without it.
func IsFileScoped(err error) bool {
	var readErr *FileReadError
	var missingErr *RequiredFieldMissingError
	return errors.As(err, &readErr) || errors.As(err, &missingErr)
}
