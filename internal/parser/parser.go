package parser

import (
	"fjacquet/sef-spiri/internal/models"
)

// FileParser reads one invoice document from disk.
type FileParser interface {
	ParseFile(filePath string) (models.InvoiceRecord, error)
}

// Validator checks whether a file looks like a document the parser handles.
type Validator interface {
	// CheckFormat returns nil for a supported file, an InvalidFormatError
	// describing the mismatch, or a FileReadError when the file cannot be read.
	CheckFormat(filePath string) error
	// InspectFormat runs CheckFormat and describes a file that passes it.
	InspectFormat(filePath string) (models.FormatInfo, error)
}

// Describer lists the field lookups a parser performs.
type Describer interface {
	Describe() [][2]string
}

// FullParser combines every parser capability.
type FullParser interface {
	FileParser
	Validator
	Describer
}
