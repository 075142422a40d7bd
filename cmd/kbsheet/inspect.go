package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/kbsheet/internal/models"
	"github.com/ternarybob/kbsheet/internal/services/sheets"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show sheets, their roles and row counts",
	Long:  `Loads the workbook and prints how each sheet would be used by convert, as YAML.`,
	RunE:  runInspect,
}

var inspectInput string

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "Input workbook (.xlsx) or directory of .csv sheets")
	inspectCmd.MarkFlagRequired("input")
}

type sheetSummary struct {
	Name    string   `yaml:"name"`
	Role    string   `yaml:"role"`
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns"`
}

type inspection struct {
	Workbook  string                `yaml:"workbook"`
	Selection models.SheetSelection `yaml:"selection"`
	Sheets    []sheetSummary        `yaml:"sheets"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	workbook, err := sheets.NewLoader(logger).Load(cmd.Context(), inspectInput)
	if err != nil {
		return err
	}

	matcher := sheets.NewMatcher(config.Sheets)
	report := inspection{
		Workbook:  workbook.Path,
		Selection: matcher.Select(workbook.SheetNames()),
	}
	for _, sheet := range workbook.Sheets {
		report.Sheets = append(report.Sheets, sheetSummary{
			Name:    sheet.Name,
			Role:    matcher.MatchRole(sheet.Name).String(),
			Rows:    len(sheet.Rows),
			Columns: sheet.Columns,
		})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(report)
}
