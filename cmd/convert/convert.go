// Package convert handles the interactive SEF to SPIRI conversion command
package convert

import (
	"context"

	"fjacquet/sef-spiri/cmd/common"
	"fjacquet/sef-spiri/cmd/root"

	"github.com/spf13/cobra"
)

// ReportPath is the optional run report destination.
var ReportPath string

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert [files or directories...]",
	Short: "Convert SEF invoices into one SPIRI commitments file",
	Long: `Convert SEF e-invoice XML files into a single SPIRI commitments XML file.

The session parameters are asked first. Files given as arguments are used as
the selection; without arguments the paths are asked. Directories contribute
their .xml files. Each invoice then needs an economic classification code.`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&ReportPath, "report", "r", "", "Write a run report (yaml, csv, xlsx or json by extension)")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = common.RunConversion(ctx, c, cmd.InOrStdin(), cmd.OutOrStdout(), common.ConvertOptions{
		Files:      args,
		Validate:   root.SharedFlags.Validate,
		ReportPath: ReportPath,
	})
	return err
}
