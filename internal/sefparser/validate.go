package sefparser

import (
	"fmt"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/xmlutils"
)

// ExpectedFormat names the input format in validation errors.
const ExpectedFormat = "SEF UBL Invoice"

// CheckFormat checks that filePath holds a SEF invoice: an Invoice element
// carrying a PayableAmount. A file that fails gets an InvalidFormatError
// naming the problem, even when it is not XML at all. Only IO failures give a
// FileReadError.
func (p *Parser) CheckFormat(filePath string) error {
	reason, err := p.formatProblem(filePath)
	if err != nil {
		return &converterror.FileReadError{FilePath: filePath, Err: err}
	}
	if reason != "" {
		return &converterror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: ExpectedFormat,
			Msg:            reason,
		}
	}
	return nil
}

// InspectFormat checks filePath like CheckFormat and, for a valid file,
// reports whether it is wrapped in the MinFin envelope and its invoice ID.
func (p *Parser) InspectFormat(filePath string) (models.FormatInfo, error) {
	if err := p.CheckFormat(filePath); err != nil {
		return models.FormatInfo{}, err
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return models.FormatInfo{}, &converterror.FileReadError{FilePath: filePath, Err: err}
	}
	enveloped, err := xmlutils.Exists(root, xmlutils.XPathEnvelope)
	if err != nil {
		return models.FormatInfo{}, err
	}
	ids, err := xmlutils.ExtractFromXML(root, xmlutils.XPathInvoiceID)
	if err != nil {
		return models.FormatInfo{}, err
	}

	return models.FormatInfo{
		Enveloped:     enveloped,
		InvoiceNumber: xmlutils.GetOrEmpty(ids, 0),
	}, nil
}

func (p *Parser) formatProblem(filePath string) (string, error) {
	log := p.GetLogger().WithField(logging.FieldFile, filePath)
	log.Debug("Validating SEF format")

	if !fileutils.FileExists(filePath) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		log.Debug("File is not a valid XML")
		return "not a well-formed XML document", nil
	}

	hasInvoice, err := xmlutils.Exists(root, xmlutils.XPathInvoiceRoot)
	if err != nil {
		return "", err
	}
	if !hasInvoice {
		log.Debug("File has no Invoice element")
		return "no Invoice element", nil
	}

	hasAmount, err := xmlutils.Exists(root, xmlutils.XPathPayableAmount)
	if err != nil {
		return "", err
	}
	if !hasAmount {
		log.Debug("Invoice has no PayableAmount")
		return "Invoice has no PayableAmount", nil
	}

	log.Debug("File is a valid SEF invoice")
	return "", nil
}
