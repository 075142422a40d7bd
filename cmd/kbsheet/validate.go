package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/kbsheet/internal/app"
	"github.com/ternarybob/kbsheet/internal/services/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Convert in memory and report validation findings",
	Long:  `Runs the conversion without writing JSON and prints the validation report. Exits non-zero when errors were found.`,
	RunE:  runValidate,
}

var (
	validateInput  string
	validateReport string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input workbook (.xlsx) or directory of .csv sheets")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Also write the report to this path (.md or .html)")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	application := app.New(config, logger)
	outcome, err := application.Convert(cmd.Context(), app.ConvertOptions{
		Input:      validateInput,
		Validate:   true,
		ReportPath: validateReport,
		DryRun:     true,
	})
	if outcome != nil && outcome.Report != nil {
		fmt.Fprint(cmd.OutOrStdout(), validation.Markdown(outcome.Report))
	}
	return err
}
