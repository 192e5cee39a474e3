// Package validate checks SEF files without converting them
package validate

import (
	"fmt"
	"io"

	"fjacquet/sef-spiri/cmd/root"
	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/parser"
	"fjacquet/sef-spiri/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate <files or directories...>",
	Short: "Check that files are SEF invoices",
	Long: `Check that each file is a well-formed SEF (UBL) invoice carrying a
PayableAmount, without converting anything.`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return ValidateFiles(c.GetParser(), args, cmd.OutOrStdout(), c.GetLogger())
}

// ValidateFiles checks every file in the selection and prints one line per
// file. It returns an error when any file fails.
func ValidateFiles(p parser.Validator, selection []string, out io.Writer, log logging.Logger) error {
	for _, path := range selection {
		if err := validation.IsValidInputPath(path); err != nil {
			return err
		}
	}

	files, err := fileutils.ExpandSelection(selection)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files in selection", fileutils.XMLExtension)
	}

	failed := 0
	for _, file := range files {
		info, err := p.InspectFormat(file)
		if err != nil {
			failed++
			log.WithError(err).Warn("Validation failed", logging.F(logging.FieldFile, file))
			fmt.Fprintf(out, "INVALID %s: %v\n", file, err)
			continue
		}
		layout := "plain"
		if info.Enveloped {
			layout = "envelope"
		}
		fmt.Fprintf(out, "OK      %s (%s, %s)\n", file, info.InvoiceNumber, layout)
	}

	log.Info("Validation finished",
		logging.F(logging.FieldOperation, "validate"),
		logging.F(logging.FieldCount, len(files)),
		logging.F(logging.FieldSkipped, failed))

	if failed > 0 {
		return fmt.Errorf("%d of %d files are not valid SEF invoices", failed, len(files))
	}
	return nil
}
