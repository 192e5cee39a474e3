// Package sefparser extracts invoice fields from SEF (UBL 2.1) e-invoice XML
// documents, with or without the MinFin envelope.
package sefparser

import (
	"fmt"
	"io"
	"os"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/parser"
	"fjacquet/sef-spiri/internal/xmlutils"

	"github.com/beevik/etree"
)

// Field names used in RequiredFieldMissingError.
const (
	FieldInvoiceNumber  = "InvoiceNumber"
	FieldAccountNumber  = "PayeeAccount"
	FieldRecipient      = "Recipient"
	FieldRecipientPlace = "RecipientPlace"
	FieldAmount         = "PayableAmount"
	FieldIssueDate      = "IssueDate"
	FieldDueDate        = "DueDate"
	FieldContractNumber = "ContractNumber"
)

type fieldSpec struct {
	name     string
	path     xmlutils.NamespacedPath
	required bool
	assign   func(r *models.InvoiceRecord, v string)
}

// Parser extracts models.InvoiceRecord values from SEF documents.
type Parser struct {
	parser.BaseParser
	fields []fieldSpec
}

// New creates a Parser using the default SEF paths.
func New(logger logging.Logger) *Parser {
	return NewWithPaths(logger, xmlutils.DefaultSEFPaths())
}

// NewWithPaths creates a Parser for a custom path table. It panics when a path
// does not compile, as paths are fixed at build time.
func NewWithPaths(logger logging.Logger, paths xmlutils.SEFInvoice) *Parser {
	ns := xmlutils.SEFNamespaces()
	compile := func(expr string) xmlutils.NamespacedPath {
		return xmlutils.MustCompileNamespacedPath(expr, ns)
	}

	// Lookup order matters: the first missing required field is reported.
	fields := []fieldSpec{
		{FieldInvoiceNumber, compile(paths.Header.InvoiceNumber), true,
			func(r *models.InvoiceRecord, v string) { r.InvoiceNumber = v }},
		{FieldAccountNumber, compile(paths.Payee.Account), false,
			func(r *models.InvoiceRecord, v string) { r.AccountNumber = v }},
		{FieldRecipient, compile(paths.Payee.Name), true,
			func(r *models.InvoiceRecord, v string) { r.Recipient = v }},
		{FieldRecipientPlace, compile(paths.Payee.City), true,
			func(r *models.InvoiceRecord, v string) { r.RecipientPlace = v }},
		{FieldAmount, compile(paths.Totals.PayableAmount), true,
			func(r *models.InvoiceRecord, v string) { r.Amount = v }},
		{FieldIssueDate, compile(paths.Header.IssueDate), true,
			func(r *models.InvoiceRecord, v string) { r.IssueDate = v }},
		{FieldDueDate, compile(paths.Header.DueDate), true,
			func(r *models.InvoiceRecord, v string) { r.DueDate = v }},
		{FieldContractNumber, compile(paths.Header.ContractNumber), false,
			func(r *models.InvoiceRecord, v string) { r.ContractNumber = v }},
	}

	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		fields:     fields,
	}
}

// NewAdapter returns the parser behind the segregated parser interfaces, as
// the container and commands consume it.
func NewAdapter(logger logging.Logger) parser.FullParser {
	return New(logger)
}

// ParseFile opens and parses the SEF document at filePath.
func (p *Parser) ParseFile(filePath string) (models.InvoiceRecord, error) {
	file, err := os.Open(filePath) // #nosec G304 -- path chosen by the operator
	if err != nil {
		return models.InvoiceRecord{}, &converterror.FileReadError{FilePath: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to close file",
				logging.F(logging.FieldFile, filePath))
		}
	}()

	return p.Parse(file, filePath)
}

// Parse reads a SEF document from r and extracts its invoice record.
func (p *Parser) Parse(r io.Reader, filePath string) (models.InvoiceRecord, error) {
	doc, err := xmlutils.LoadDocument(r)
	if err != nil {
		return models.InvoiceRecord{}, &converterror.FileReadError{FilePath: filePath, Err: err}
	}
	return p.Extract(doc.Root(), filePath)
}

// Extract reads every field from root. Optional fields fall back to their
// defaults. The first missing required field aborts extraction.
func (p *Parser) Extract(root *etree.Element, filePath string) (models.InvoiceRecord, error) {
	record := models.InvoiceRecord{
		FilePath:       filePath,
		ContractNumber: models.ContractNotFound,
	}

	for _, f := range p.fields {
		value, found := xmlutils.FindText(root, f.path)
		switch {
		case found && f.name == FieldAccountNumber && value == "":
			// an empty account element counts as no account
			continue
		case found:
			f.assign(&record, value)
		case f.required:
			return models.InvoiceRecord{}, &converterror.RequiredFieldMissingError{
				FilePath: filePath,
				Field:    f.name,
				Path:     f.path.String(),
			}
		}
	}

	p.GetLogger().Debug("Extracted invoice fields",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldInvoiceNumber, record.InvoiceNumber))

	return record, nil
}

// Describe returns the field name and prefixed path of every extracted field
// in lookup order.
func (p *Parser) Describe() [][2]string {
	out := make([][2]string, 0, len(p.fields))
	for _, f := range p.fields {
		out = append(out, [2]string{f.name, f.path.String()})
	}
	return out
}

func (p *Parser) String() string {
	return fmt.Sprintf("SEF parser (%d fields)", len(p.fields))
}
