package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/models"
)

// Prompt labels.
const (
	SelectFilesLabel = "Izaberite SEF XML fajlove (putanje razdvojene razmakom)"
	SaveAsLabel      = "Sačuvajte SPIRI XML fajl"
)

// Options configure a Collector.
type Options struct {
	// Defaults prefill session answers by field key.
	Defaults map[string]string
	// RequestPayment is the default answer of the request payment question.
	RequestPayment bool
	// DefaultOutput is offered by SaveAs when non-empty.
	DefaultOutput string
}

// Collector drives the interactive part of a conversion run.
type Collector struct {
	prompter *Prompter
	notifier *Notifier
	form     *Form
	opts     Options
}

// New creates a Collector reading answers from in and writing prompts and
// notifications to out.
func New(in io.Reader, out io.Writer, opts Options) *Collector {
	prompter := NewPrompter(in, out)
	return &Collector{
		prompter: prompter,
		notifier: NewNotifier(out),
		form:     NewForm(prompter, opts.Defaults, opts.RequestPayment),
		opts:     opts,
	}
}

// Notifier returns the collector's notifier.
func (c *Collector) Notifier() *Notifier {
	return c.notifier
}

// Collect gathers the session parameters.
func (c *Collector) Collect(ctx context.Context) (models.SessionParameters, error) {
	return c.form.Collect(ctx)
}

// SelectFiles returns the XML files to convert. args are used when given,
// otherwise the operator is asked. Directories expand to their XML files.
func (c *Collector) SelectFiles(ctx context.Context, args []string) ([]string, error) {
	selection := args
	if len(selection) == 0 {
		answer, err := c.prompter.Ask(ctx, SelectFilesLabel, "")
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		selection = SplitPaths(answer)
	}

	files, err := fileutils.ExpandSelection(selection)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, converterror.ErrNoFilesSelected
	}
	return files, nil
}

// Classify asks for the economic classification code of record. It matches
// batch.ClassifyFunc. Ending the input counts as an empty answer.
func (c *Collector) Classify(ctx context.Context, record models.InvoiceRecord) (string, error) {
	label := fmt.Sprintf("Unesite ekonomsku klasifikaciju za fakturu %s", record.InvoiceNumber)
	answer, err := c.prompter.Ask(ctx, label, "")
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return answer, err
}

// SaveAs asks for the output path, appending .xml when no extension is
// given. An empty answer without default, or the end of input, returns
// converterror.ErrCancelled.
func (c *Collector) SaveAs(ctx context.Context) (string, error) {
	answer, err := c.prompter.Ask(ctx, SaveAsLabel, c.opts.DefaultOutput)
	if errors.Is(err, io.EOF) {
		return "", converterror.ErrCancelled
	}
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", converterror.ErrCancelled
	}
	return fileutils.EnsureExtension(answer, fileutils.XMLExtension), nil
}

// SplitPaths splits a line of space-separated paths. Double or single quotes
// group a path containing spaces.
func SplitPaths(line string) []string {
	var (
		paths   []string
		current strings.Builder
		quote   rune
		started bool
	)
	flush := func() {
		if started {
			paths = append(paths, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range line {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			started = true
		case r == quote:
			quote = 0
		case quote == 0 && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	return paths
}
