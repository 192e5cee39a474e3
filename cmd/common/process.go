// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fjacquet/sef-spiri/internal/batch"
	"fjacquet/sef-spiri/internal/container"
	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/report"
	"fjacquet/sef-spiri/internal/spiri"
	"fjacquet/sef-spiri/internal/validation"
)

// Operator messages.
const (
	MessageInvalidDate     = "Nevažeći format datuma očekivanog plaćanja: %v"
	MessageNoFiles         = "Niste izabrali nijedan fajl!"
	MessageReadError       = "Došlo je do greške prilikom čitanja fajla %s: %v"
	MessageFileProblem     = "Problem sa fajlom %s: %v"
	MessageClassification  = "Ekonomska klasifikacija je obavezna za fakturu %s!"
	MessageSaved           = "SPIRI XML fajl je uspešno sačuvan u:\n%s"
	MessageSaveFailed      = "Greška pri čuvanju fajla %s: %v"
	MessageReportSaved     = "Izveštaj je sačuvan u:\n%s"
	MessageReportFailed    = "Greška pri čuvanju izveštaja %s: %v"
	MessageSaveCancelled   = "Čuvanje je otkazano, fajl nije sačuvan."
	MessageOutputPathError = "Neispravna putanja za čuvanje: %v"
)

// ConvertOptions control one interactive conversion run.
type ConvertOptions struct {
	// Files are used instead of asking for a selection when not empty.
	Files []string
	// Validate checks every file's format before extraction.
	Validate bool
	// ReportPath, when set, receives the run report after a successful save.
	ReportPath string
	// RunID identifies the run in logs and report. A new one is made when empty.
	RunID string
}

// ConvertOutcome describes a finished conversion run.
type ConvertOutcome struct {
	OutputFile string
	ReportFile string
	Cancelled  bool
	Summary    models.RunSummary
}

// RunConversion runs the interactive conversion: session form, file
// selection, extraction, classification, save. Prompts and notifications go
// to out and answers are read from in. A run-fatal error is notified and
// returned with nothing written. A cancelled save is not an error.
func RunConversion(ctx context.Context, c *container.Container, in io.Reader, out io.Writer, opts ConvertOptions) (ConvertOutcome, error) {
	runID := opts.RunID
	if runID == "" {
		runID = report.NewRunID()
	}
	log := c.GetLogger().WithField(logging.FieldRunID, runID)

	col := c.NewCollector(in, out)
	notifier := col.Notifier()

	params, err := col.Collect(ctx)
	if err != nil {
		return ConvertOutcome{}, err
	}

	if _, err := spiri.BudgetYear(params.ExpectedPaymentDate); err != nil {
		notifier.Error(fmt.Sprintf(MessageInvalidDate, err))
		log.WithError(err).Error("Invalid expected payment date")
		return ConvertOutcome{}, err
	}

	files, err := col.SelectFiles(ctx, opts.Files)
	if err != nil {
		if errors.Is(err, converterror.ErrNoFilesSelected) {
			notifier.Warn(MessageNoFiles)
		}
		return ConvertOutcome{}, err
	}
	log.Info("Files selected", logging.F(logging.FieldCount, len(files)))

	agg := c.NewAggregator(opts.Validate, batch.WithSkipHandler(func(o models.FileOutcome) {
		notifier.Error(SkipMessage(o))
	}))
	result, err := agg.Convert(ctx, params, files, col.Classify)
	if err != nil {
		var classErr *converterror.ClassificationRequiredError
		if errors.As(err, &classErr) {
			notifier.Error(fmt.Sprintf(MessageClassification, classErr.InvoiceNumber))
		}
		return ConvertOutcome{}, err
	}

	path, err := col.SaveAs(ctx)
	if errors.Is(err, converterror.ErrCancelled) {
		notifier.Warn(MessageSaveCancelled)
		log.Info("Save cancelled, nothing written")
		return ConvertOutcome{Cancelled: true}, nil
	}
	if err != nil {
		return ConvertOutcome{}, err
	}
	if err := validation.IsValidOutputPath(path); err != nil {
		notifier.Error(fmt.Sprintf(MessageOutputPathError, err))
		return ConvertOutcome{}, err
	}

	outputFile, err := c.GetWriter().WriteFile(path, result.Document)
	if err != nil {
		notifier.Error(fmt.Sprintf(MessageSaveFailed, path, err))
		return ConvertOutcome{}, err
	}
	notifier.Success(fmt.Sprintf(MessageSaved, outputFile))

	outcome := ConvertOutcome{
		OutputFile: outputFile,
		Summary:    result.Summary(runID, outputFile),
	}

	if opts.ReportPath != "" {
		reportFile, err := c.GetReportGenerator().WriteFile(opts.ReportPath, outcome.Summary, c.GetConfig().Report.Format)
		if err != nil {
			notifier.Error(fmt.Sprintf(MessageReportFailed, opts.ReportPath, err))
			return outcome, fmt.Errorf("writing run report: %w", err)
		}
		outcome.ReportFile = reportFile
		notifier.Success(fmt.Sprintf(MessageReportSaved, reportFile))
	}

	log.Info("Conversion completed",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldCount, outcome.Summary.Converted),
		logging.F(logging.FieldSkipped, outcome.Summary.Skipped))

	return outcome, nil
}

// SkipMessage is the operator message for a skipped file.
func SkipMessage(o models.FileOutcome) string {
	var readErr *converterror.FileReadError
	if errors.As(o.Err, &readErr) {
		return fmt.Sprintf(MessageReadError, o.FilePath, readErr.Err)
	}
	if o.Err != nil {
		return fmt.Sprintf(MessageFileProblem, o.FilePath, o.Err)
	}
	return fmt.Sprintf(MessageFileProblem, o.FilePath, o.Reason)
}
