package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/interfaces"
	"github.com/ternarybob/kbsheet/internal/models"
	"github.com/ternarybob/kbsheet/internal/services/output"
	"github.com/ternarybob/kbsheet/internal/services/sheets"
	"github.com/ternarybob/kbsheet/internal/services/transform"
	"github.com/ternarybob/kbsheet/internal/services/validation"
)

// App wires the conversion pipeline: load -> select/convert -> validate -> write
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Loader            interfaces.WorkbookLoader
	TransformService  interfaces.TransformService
	ValidationService interfaces.ValidationService
	Writer            interfaces.DocumentWriter
}

// ConvertOptions are the per-run inputs of a conversion
type ConvertOptions struct {
	Input      string
	Output     string // knowledge-base JSON path
	FaqOutput  string // optional, derived from Output when empty
	Validate   bool
	ReportPath string // optional validation report (.md or .html)
	DryRun     bool   // convert and validate without writing documents
}

// Outcome summarises a finished run
type Outcome struct {
	Result    *models.ConversionResult
	Report    *models.ValidationReport // nil unless validation ran
	Written   []string
	FaqOutput string
}

// New creates the application with its services
func New(config *common.Config, logger arbor.ILogger) *App {
	return &App{
		Config:            config,
		Logger:            logger,
		Loader:            sheets.NewLoader(logger),
		TransformService:  transform.NewService(config, logger),
		ValidationService: validation.NewService(config.Validation, logger),
		Writer:            output.NewWriter(logger),
	}
}

// Convert runs the pipeline once. Nothing is written when loading, converting
// or requested validation fails.
func (a *App) Convert(ctx context.Context, opts ConvertOptions) (*Outcome, error) {
	a.Logger.Info().Str("input", opts.Input).Msg("Loading workbook")
	workbook, err := a.Loader.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}

	result, err := a.TransformService.Convert(ctx, workbook)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	outcome := &Outcome{Result: result}
	a.Logger.Info().
		Int("items", len(result.Knowledge.Items)).
		Int("synonyms", result.Knowledge.Synonyms.Len()).
		Bool("faq", result.FAQ != nil).
		Msg("Conversion complete")

	if opts.Validate || opts.ReportPath != "" {
		outcome.Report = a.ValidationService.Validate(result.Knowledge.Items)
		if opts.ReportPath != "" {
			if err := writeReport(opts.ReportPath, outcome.Report); err != nil {
				return outcome, err
			}
			a.Logger.Info().Str("path", opts.ReportPath).Msg("Validation report saved")
		}
		if opts.Validate && !outcome.Report.OK() {
			return outcome, fmt.Errorf("%w: %d error(s)", models.ErrValidationFailed, len(outcome.Report.Errors))
		}
	}

	if opts.DryRun || opts.Output == "" {
		return outcome, nil
	}

	plan := []models.OutputFile{{Path: opts.Output, Document: result.Knowledge}}
	if result.FAQ != nil {
		outcome.FaqOutput = output.FaqPath(opts.Output, opts.FaqOutput, a.Config.Output.FaqSuffix)
		plan = append(plan, models.OutputFile{Path: outcome.FaqOutput, Document: result.FAQ})
	}
	if err := a.Writer.WriteAll(plan); err != nil {
		return outcome, err
	}
	for _, file := range plan {
		outcome.Written = append(outcome.Written, file.Path)
	}

	return outcome, nil
}

func writeReport(path string, report *models.ValidationReport) error {
	markdown := validation.Markdown(report)
	data := []byte(markdown)
	if isHTML(path) {
		html, err := validation.RenderHTML(markdown)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", models.ErrWriteOutput, path, err)
		}
		data = html
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrWriteOutput, path, err)
	}
	return nil
}

func isHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}
