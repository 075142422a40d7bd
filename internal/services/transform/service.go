package transform

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
	"github.com/ternarybob/kbsheet/internal/services/sheets"
)

// Service converts workbooks into knowledge-base and FAQ documents
type Service struct {
	config  *common.Config
	matcher *sheets.Matcher
	logger  arbor.ILogger
	now     func() time.Time
}

// NewService creates a new transform service
func NewService(config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		config:  config,
		matcher: sheets.NewMatcher(config.Sheets),
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for metadata dates
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Convert runs sheet selection and the row converters over workbook
func (s *Service) Convert(ctx context.Context, workbook *models.Workbook) (*models.ConversionResult, error) {
	if workbook == nil || len(workbook.Sheets) == 0 {
		return nil, models.ErrNoSheets
	}

	selection := s.matcher.Select(workbook.SheetNames())
	builder := NewBuilder(s.config, s.logger)

	if selection.MainFallback {
		s.logger.Warn().
			Str("sheet", selection.Main).
			Msg("No question sheet found, using the first sheet")
	}
	main, ok := workbook.Sheet(selection.Main)
	if !ok {
		return nil, fmt.Errorf("question sheet %q not found: %w", selection.Main, models.ErrNoSheets)
	}
	converted, skipped := 0, 0
	for _, row := range main.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := builder.AddKnowledgeRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", main.Name, err)
		}
		if ok {
			converted++
		} else {
			skipped++
		}
	}
	s.logger.Info().
		Str("sheet", main.Name).
		Int("items", converted).
		Int("skipped", skipped).
		Msg("Question sheet converted")

	if sheet, ok := workbook.Sheet(selection.Synonym); ok {
		for _, row := range sheet.Rows {
			builder.AddSynonymRow(row)
		}
		s.logger.Info().
			Str("sheet", sheet.Name).
			Int("synonyms", builder.Synonyms().Len()).
			Msg("Synonym sheet converted")
	} else {
		s.logger.Warn().Msg("No synonym sheet found, skipping")
	}

	now := s.now()
	result := &models.ConversionResult{
		Selection: selection,
		Knowledge: builder.KnowledgeDocument(now),
	}

	if sheet, ok := workbook.Sheet(selection.FAQ); ok {
		for _, row := range sheet.Rows {
			builder.AddFaqRow(row)
		}
		result.FAQ = builder.FaqDocument(now)
		s.logger.Info().
			Str("sheet", sheet.Name).
			Int("items", len(result.FAQ.Items)).
			Strs("categories", result.FAQ.Categories).
			Msg("FAQ sheet converted")
	} else {
		s.logger.Warn().Msg("No FAQ sheet found, skipping")
	}

	return result, nil
}
