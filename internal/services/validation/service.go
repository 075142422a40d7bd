// -----------------------------------------------------------------------
// Package validation checks converted knowledge items before they are written
// -----------------------------------------------------------------------

package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

// Service validates knowledge items. Errors block output, warnings never do.
type Service struct {
	config   common.ValidationConfig
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewService creates a new validation service
func NewService(config common.ValidationConfig, logger arbor.ILogger) *Service {
	return &Service{
		config:   config,
		validate: validator.New(),
		logger:   logger,
	}
}

// Validate checks duplicate ids first, then every item in order
func (s *Service) Validate(items []models.KnowledgeItem) *models.ValidationReport {
	report := &models.ValidationReport{
		Items:    len(items),
		Errors:   []models.ValidationIssue{},
		Warnings: []models.ValidationIssue{},
	}

	for _, dup := range duplicateIDs(items) {
		report.Add(models.ValidationIssue{
			ItemID:   dup.id,
			Field:    "id",
			Severity: models.SeverityError,
			Message:  fmt.Sprintf("duplicate id %s (%d items)", dup.id, dup.count),
		})
	}

	priorityRule := fmt.Sprintf("min=%d,max=%d", s.config.PriorityMin, s.config.PriorityMax)
	lengthRule := fmt.Sprintf("min=%d", s.config.MinResponseLength)

	for _, item := range items {
		id := item.ID
		if id == "" {
			id = "UNKNOWN"
		}

		if err := s.validate.Struct(item); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				report.Add(issue(id, "item", models.SeverityError, err.Error()))
			}
			for _, fe := range fieldErrs {
				report.Add(fieldIssue(id, fe))
			}
		}
		if s.validate.Var(item.Keywords, "required,min=1") != nil {
			report.Add(issue(id, "keywords", models.SeverityWarning, "keywords are missing"))
		}
		if item.Responses.IsEmpty() {
			report.Add(issue(id, "responses", models.SeverityError, "responses are missing"))
		}
		if s.validate.Var(item.Priority, priorityRule) != nil {
			report.Add(issue(id, "priority", models.SeverityWarning,
				fmt.Sprintf("priority %d is outside %d-%d", item.Priority, s.config.PriorityMin, s.config.PriorityMax)))
		}
		for _, entry := range item.Responses.Entries() {
			if s.validate.Var(entry.Text, lengthRule) != nil {
				report.Add(issue(id, "responses."+string(entry.Tone), models.SeverityWarning,
					fmt.Sprintf("%s response is too short (%d characters)", entry.Tone, utf8.RuneCountInString(entry.Text))))
			}
		}
	}

	s.logReport(report)
	return report
}

func (s *Service) logReport(report *models.ValidationReport) {
	for _, e := range report.Errors {
		s.logger.Error().Str("id", e.ItemID).Str("field", e.Field).Msg(e.Message)
	}
	for _, w := range report.Warnings {
		s.logger.Warn().Str("id", w.ItemID).Str("field", w.Field).Msg(w.Message)
	}

	if report.OK() {
		s.logger.Info().
			Int("items", report.Items).
			Int("warnings", len(report.Warnings)).
			Msg("Validation passed")
	} else {
		s.logger.Error().
			Int("items", report.Items).
			Int("errors", len(report.Errors)).
			Int("warnings", len(report.Warnings)).
			Msg("Validation failed")
	}
}

type duplicate struct {
	id    string
	count int
}

// duplicateIDs returns ids used more than once, in order of first appearance
func duplicateIDs(items []models.KnowledgeItem) []duplicate {
	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		if counts[item.ID] == 0 {
			order = append(order, item.ID)
		}
		counts[item.ID]++
	}

	var out []duplicate
	for _, id := range order {
		if counts[id] > 1 {
			out = append(out, duplicate{id: id, count: counts[id]})
		}
	}
	return out
}

// fieldIssue turns a struct tag failure on KnowledgeItem into an error
func fieldIssue(id string, fe validator.FieldError) models.ValidationIssue {
	switch fe.Field() {
	case "ID":
		return issue(id, "id", models.SeverityError, "id is missing")
	case "Title":
		return issue(id, "title", models.SeverityError, "title is missing")
	case "Type":
		return issue(id, "type", models.SeverityError,
			fmt.Sprintf("type %q is not one of intent, knowledge, case", fmt.Sprint(fe.Value())))
	default:
		return issue(id, strings.ToLower(fe.Field()), models.SeverityError, fe.Error())
	}
}

func issue(id, field string, severity models.Severity, message string) models.ValidationIssue {
	return models.ValidationIssue{ItemID: id, Field: field, Severity: severity, Message: message}
}
