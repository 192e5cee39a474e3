// Package inspect prints the invoice fields extracted from SEF files
package inspect

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/sef-spiri/cmd/root"
	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/fileutils"
	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/models"
	"fjacquet/sef-spiri/internal/parser"
	"fjacquet/sef-spiri/internal/spiri"
	"fjacquet/sef-spiri/internal/validation"

	"github.com/spf13/cobra"
)

// ShowPaths also prints the lookup path of every field.
var ShowPaths bool

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect <files or directories...>",
	Short: "Show the invoice fields read from SEF files",
	Long: `Show the invoice fields read from each SEF file, including the contract
number and the normalized account, without writing any SPIRI output. Useful
to find out why a file is skipped during conversion.`,
	Args: cobra.MinimumNArgs(1),
	RunE: inspectFunc,
}

func init() {
	Cmd.Flags().BoolVar(&ShowPaths, "paths", false, "Print the lookup path of every field")
}

func inspectFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return InspectFiles(c.GetParser(), args, cmd.OutOrStdout(), c.GetLogger())
}

// InspectFiles prints the record of every file in the selection. Files that
// cannot be read are reported and do not stop the listing.
func InspectFiles(p parser.FullParser, selection []string, out io.Writer, log logging.Logger) error {
	for _, path := range selection {
		if err := validation.IsValidInputPath(path); err != nil {
			return err
		}
	}

	files, err := fileutils.ExpandSelection(selection)
	if err != nil {
		return err
	}

	if ShowPaths {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, d := range p.Describe() {
			fmt.Fprintf(w, "%s\t%s\n", d[0], d[1])
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	for i, file := range files {
		record, err := p.ParseFile(file)
		if err != nil {
			log.WithError(err).Warn("Cannot read invoice", logging.F(logging.FieldFile, file))
			fmt.Fprintf(out, "%d. %s\n   %s\n\n", i+1, file, describeError(err))
			continue
		}
		if err := printRecord(out, i+1, record); err != nil {
			return err
		}
	}
	return nil
}

func describeError(err error) string {
	var missing *converterror.RequiredFieldMissingError
	if errors.As(err, &missing) {
		return fmt.Sprintf("missing %s (%s)", missing.Field, missing.Path)
	}
	return err.Error()
}

func printRecord(out io.Writer, ordinal int, r models.InvoiceRecord) error {
	fmt.Fprintf(out, "%d. %s\n", ordinal, r.FilePath)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	account := spiri.NormalizeAccountNumber(r.AccountNumber)
	if !r.HasAccount() {
		account += " (no account in source)"
	}
	rows := [][2]string{
		{"invoice_number", r.InvoiceNumber},
		{"external_id", spiri.ExternalID(r.InvoiceNumber, ordinal)},
		{"account_number", account},
		{"recipient", r.Recipient},
		{"recipient_place", r.RecipientPlace},
		{"amount", r.Amount},
		{"invoice_date", r.IssueDate},
		{"due_date", r.DueDate},
		{"contract_number", r.ContractNumber},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "   %s\t%s\n", row[0], row[1])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
