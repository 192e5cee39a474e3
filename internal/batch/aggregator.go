// Package batch runs a selection of SEF files through extraction,
// classification and mapping to produce one commitments document.
package batch

import (
	"context"
	"path/filepath"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/parser"
	"fjacquet/sef-spiri/internal/spiri"
)

// ParseFunc adapts a plain function to parser.FileParser.
type ParseFunc func(filePath string) (models.InvoiceRecord, error)

// ParseFile calls f(filePath).
func (f ParseFunc) ParseFile(filePath string) (models.InvoiceRecord, error) {
	return f(filePath)
}

// CheckFunc reports why a file should not be parsed, or nil.
type CheckFunc func(filePath string) error

// ClassifyFunc returns the economic classification code for one record. It
// is called synchronously, once per record, in batch order.
type ClassifyFunc func(ctx context.Context, record models.InvoiceRecord) (string, error)

// Extraction is the outcome of the extraction phase.
type Extraction struct {
	Records  []models.InvoiceRecord
	Outcomes []models.FileOutcome
}

// Skipped returns the outcomes of files left out of the batch.
func (e Extraction) Skipped() []models.FileOutcome {
	var skipped []models.FileOutcome
	for _, o := range e.Outcomes {
		if o.Skipped() {
			skipped = append(skipped, o)
		}
	}
	return skipped
}

// Result is a converted batch, ready to be written.
type Result struct {
	Document models.Commitments
	Invoices []models.ClassifiedInvoice
	Outcomes []models.FileOutcome
}

// Aggregator handles the conversion of a batch of SEF files
type Aggregator struct {
	logger logging.Logger
	source parser.FileParser
	check  CheckFunc
	onSkip func(models.FileOutcome)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithFormatCheck runs check on every file before parsing it. A failing
// check skips the file.
func WithFormatCheck(check CheckFunc) Option {
	return func(a *Aggregator) {
		a.check = check
	}
}

// WithSkipHandler calls onSkip for every skipped file as soon as it is
// skipped, before classification starts.
func WithSkipHandler(onSkip func(models.FileOutcome)) Option {
	return func(a *Aggregator) {
		a.onSkip = onSkip
	}
}

// NewAggregator creates a new Aggregator reading invoices through source.
func NewAggregator(logger logging.Logger, source parser.FileParser, opts ...Option) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	a := &Aggregator{
		logger: logger,
		source: source,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Extract parses every file in order. Each file gets its 1-based position as
// ordinal, skipped files included. Read and extraction failures skip the
// file; the batch continues.
func (a *Aggregator) Extract(ctx context.Context, files []string) (Extraction, error) {
	if len(files) == 0 {
		return Extraction{}, converterror.ErrNoFilesSelected
	}

	var result Extraction
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return Extraction{}, err
		}

		ordinal := i + 1
		log := a.logger.WithFields(
			logging.F(logging.FieldFile, filepath.Base(file)),
			logging.F(logging.FieldOrdinal, ordinal))

		record, err := a.extractOne(file)
		if err != nil {
			log.WithError(err).Warn("Skipping file", logging.F(logging.FieldStatus, models.StatusSkipped))
			outcome := models.FileOutcome{
				Ordinal:  ordinal,
				FilePath: file,
				Status:   models.StatusSkipped,
				Reason:   err.Error(),
				Err:      err,
			}
			result.Outcomes = append(result.Outcomes, outcome)
			if a.onSkip != nil {
				a.onSkip(outcome)
			}
			continue
		}

		record.FilePath = file
		record.Ordinal = ordinal
		externalID := spiri.ExternalID(record.InvoiceNumber, ordinal)
		log.Debug("Extracted invoice",
			logging.F(logging.FieldInvoiceNumber, record.InvoiceNumber),
			logging.F(logging.FieldExternalID, externalID))

		result.Records = append(result.Records, record)
		result.Outcomes = append(result.Outcomes, models.FileOutcome{
			Ordinal:        ordinal,
			FilePath:       file,
			Status:         models.StatusConverted,
			InvoiceNumber:  record.InvoiceNumber,
			ExternalID:     externalID,
			Amount:         record.Amount,
			ContractNumber: record.ContractNumber,
		})
	}

	a.logger.Info("Extraction finished",
		logging.F(logging.FieldCount, len(result.Records)),
		logging.F(logging.FieldSkipped, len(files)-len(result.Records)))

	return result, nil
}

func (a *Aggregator) extractOne(file string) (models.InvoiceRecord, error) {
	if a.check != nil {
		if err := a.check(file); err != nil {
			if !converterror.IsFileScoped(err) {
				err = &converterror.FileReadError{FilePath: file, Err: err}
			}
			return models.InvoiceRecord{}, err
		}
	}

	record, err := a.source.ParseFile(file)
	if err != nil {
		if !converterror.IsFileScoped(err) {
			err = &converterror.FileReadError{FilePath: file, Err: err}
		}
		return models.InvoiceRecord{}, err
	}
	return record, nil
}

// Classify asks classify for a code for every record, in order. An empty
// code stops the batch with a ClassificationRequiredError and nothing is
// returned.
func (a *Aggregator) Classify(ctx context.Context, records []models.InvoiceRecord, classify ClassifyFunc) ([]models.ClassifiedInvoice, error) {
	classified := make([]models.ClassifiedInvoice, 0, len(records))
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := classify(ctx, record)
		if err != nil {
			return nil, err
		}
		if code == "" {
			err := &converterror.ClassificationRequiredError{
				FilePath:      record.FilePath,
				InvoiceNumber: record.InvoiceNumber,
				Ordinal:       record.Ordinal,
			}
			a.logger.WithError(err).Error("Classification missing, aborting run",
				logging.F(logging.FieldInvoiceNumber, record.InvoiceNumber))
			return nil, err
		}

		classified = append(classified, models.ClassifiedInvoice{
			InvoiceRecord:              record,
			EconomicClassificationCode: code,
		})
	}
	return classified, nil
}

// Convert runs the whole batch: budget year check, extraction,
// classification and mapping. Any run-fatal error leaves no result.
func (a *Aggregator) Convert(ctx context.Context, params models.SessionParameters, files []string, classify ClassifyFunc) (Result, error) {
	if _, err := spiri.BudgetYear(params.ExpectedPaymentDate); err != nil {
		return Result{}, err
	}

	extraction, err := a.Extract(ctx, files)
	if err != nil {
		return Result{}, err
	}

	invoices, err := a.Classify(ctx, extraction.Records, classify)
	if err != nil {
		return Result{}, err
	}

	doc, err := spiri.Build(params, invoices)
	if err != nil {
		return Result{}, err
	}

	a.logger.Info("Built commitments document",
		logging.F(logging.FieldCount, doc.Len()),
		logging.F(logging.FieldBudgetYear, doc.BudgetYear),
		logging.F(logging.FieldReasonCode, doc.CumulativeReasonCode))

	return Result{
		Document: doc,
		Invoices: invoices,
		Outcomes: extraction.Outcomes,
	}, nil
}

// Summary describes the result for the run report.
func (r Result) Summary(runID, outputFile string) models.RunSummary {
	amounts := make([]string, 0, len(r.Invoices))
	for _, inv := range r.Invoices {
		amounts = append(amounts, inv.Amount)
	}
	total, unparsed := models.SumAmounts(amounts, r.Document.CurrencyCode)

	skipped := 0
	for _, o := range r.Outcomes {
		if o.Skipped() {
			skipped++
		}
	}

	return models.RunSummary{
		RunID:        runID,
		OutputFile:   outputFile,
		BudgetYear:   r.Document.BudgetYear,
		ReasonCode:   r.Document.CumulativeReasonCode,
		Converted:    len(r.Invoices),
		Skipped:      skipped,
		Total:        total,
		UnparsedSums: unparsed,
		Files:        r.Outcomes,
	}
}
