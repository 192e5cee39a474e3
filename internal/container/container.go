// Package container provides dependency injection for the sef-spiri application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/sef-spiri/internal/batch"
	"fjacquet/sef-spiri/internal/collector"
	"fjacquet/sef-spiri/internal/config"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/parser"
	"fjacquet/sef-spiri/internal/report"
	"fjacquet/sef-spiri/internal/sefparser"
	"fjacquet/sef-spiri/internal/spiri"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	parser   parser.FullParser
	writer   *spiri.Writer
	reporter *report.Generator
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	c := &Container{
		logger:   logger,
		config:   cfg,
		parser:   sefparser.NewAdapter(logger),
		writer:   spiri.NewWriter(cfg.Output.Indent, logger),
		reporter: report.NewGenerator(logger),
	}

	logger.Debug("Container initialized successfully",
		logging.F("indent", cfg.Output.Indent),
		logging.F("report_format", cfg.Report.Format))

	return c, nil
}

// NewAggregator returns a batch aggregator reading SEF files with the
// container's parser. With checkFormat, files are checked before extraction.
func (c *Container) NewAggregator(checkFormat bool, opts ...batch.Option) *batch.Aggregator {
	if checkFormat {
		opts = append(opts, batch.WithFormatCheck(c.parser.CheckFormat))
	}
	return batch.NewAggregator(c.logger, c.parser, opts...)
}

// NewCollector returns an interactive collector on in and out, prefilled
// from the configured form defaults.
func (c *Container) NewCollector(in io.Reader, out io.Writer) *collector.Collector {
	defaults := make(map[string]string, len(c.config.Form.Defaults))
	for k, v := range c.config.Form.Defaults {
		defaults[k] = v
	}
	return collector.New(in, out, collector.Options{
		Defaults:       defaults,
		RequestPayment: c.config.Form.RequestPayment,
		DefaultOutput:  c.config.Output.DefaultFile,
	})
}

// GetParser returns the SEF invoice parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// GetWriter returns the SPIRI document writer.
func (c *Container) GetWriter() *spiri.Writer {
	return c.writer
}

// GetReportGenerator returns the run report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reporter
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
