package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/kbsheet/internal/app"
	"github.com/ternarybob/kbsheet/internal/common"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a workbook to knowledge-base and FAQ JSON",
	Long: `Converts the question/answer, synonym and FAQ sheets of a workbook into JSON.

Examples:
  kbsheet convert -i data.xlsx -o output.json
  kbsheet convert -i data.xlsx -o output.json --validate`,
	RunE: runConvert,
}

var (
	convertInput     string
	convertOutput    string
	convertFaqOutput string
	convertValidate  bool
	convertPretty    bool
	convertReport    string
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input workbook (.xlsx) or directory of .csv sheets")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output JSON path (knowledge base)")
	convertCmd.Flags().StringVar(&convertFaqOutput, "faq-output", "", "FAQ JSON output path (default: <output>-faq.json)")
	convertCmd.Flags().BoolVarP(&convertValidate, "validate", "v", false, "Validate items before writing")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent JSON output (always on)")
	convertCmd.Flags().StringVar(&convertReport, "report", "", "Write the validation report to this path (.md or .html)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	common.PrintBanner(common.GetVersion())
	applyConvertFlags(cmd, config)
	logger.Debug().Bool("pretty", config.Output.Pretty).Msg("JSON output is always indented")

	application := app.New(config, logger)
	outcome, err := application.Convert(cmd.Context(), app.ConvertOptions{
		Input:      convertInput,
		Output:     convertOutput,
		FaqOutput:  convertFaqOutput,
		Validate:   convertValidate,
		ReportPath: convertReport,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nItems: %d, synonyms: %d", len(outcome.Result.Knowledge.Items), outcome.Result.Knowledge.Synonyms.Len())
	if outcome.Result.FAQ != nil {
		fmt.Fprintf(out, ", FAQ items: %d", len(outcome.Result.FAQ.Items))
	}
	fmt.Fprintln(out)
	for _, path := range outcome.Written {
		fmt.Fprintf(out, "Saved %s\n", path)
	}
	return nil
}

// applyConvertFlags copies explicitly set convert flags into config
func applyConvertFlags(cmd *cobra.Command, cfg *common.Config) {
	if cmd.Flags().Changed("pretty") {
		cfg.Output.Pretty = convertPretty
	}
}
