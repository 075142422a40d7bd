package transform

import (
	"fmt"
	"strings"

	"github.com/ternarybob/kbsheet/internal/models"
)

var toneColumns = []struct {
	tone   models.Tone
	column string
}{
	{models.ToneFormal, colFormalAnswer},
	{models.ToneCasual, colCasualAnswer},
	{models.TonePlain, colPlainAnswer},
}

// AddKnowledgeRow converts one main-sheet row. Rows without an ID or question
// are skipped and report false. An error is returned only for a non-numeric
// priority under strict_priority.
func (b *Builder) AddKnowledgeRow(row models.Row) (bool, error) {
	if !row.Cell(colID).Has() || !row.Cell(colQuestion).Has() {
		return false, nil
	}

	item := models.KnowledgeItem{
		ID:       row.String(colID),
		Type:     b.mapType(row.String(colType)),
		Category: row.String(colCategory),
		Title:    row.String(colQuestion),
		Keywords: SplitList(row.String(colKeywords)),
	}

	priority, err := row.Int(colPriority, b.config.Mapping.DefaultPriority)
	if err != nil {
		if b.config.Mapping.StrictPriority {
			return false, fmt.Errorf("item %s: %w", item.ID, err)
		}
		b.logger.Warn().
			Str("id", item.ID).
			Str("value", row.String(colPriority)).
			Int("default", b.config.Mapping.DefaultPriority).
			Msg("Priority is not a number, using default")
	}
	item.Priority = priority

	if description, ok := row.OptionalString(colDescription); ok {
		item.Description = description
	}
	if row.Cell(colNegativeKeywords).IsPresent() {
		item.NegativeKeywords = SplitList(row.String(colNegativeKeywords))
	}
	if b.truthy[strings.ToUpper(row.String(colDateTemplate))] {
		item.DateTemplate = true
	}

	responses := &models.Responses{}
	for _, tc := range toneColumns {
		if row.Cell(tc.column).Has() {
			responses.Set(tc.tone, row.String(tc.column))
		}
	}
	if responses.IsEmpty() {
		b.logger.Warn().Str("id", item.ID).Msg("Item has no responses")
	} else {
		item.Responses = responses
	}

	if row.Cell(colRelatedGuides).IsPresent() {
		item.RelatedGuides = ParseGuides(row.String(colRelatedGuides), b.config.Mapping.DefaultIcon)
	}
	if row.Cell(colRelatedQuestions).IsPresent() {
		item.RelatedQuestions = SplitList(row.String(colRelatedQuestions))
	}
	if row.Cell(colFollowUpQuestions).IsPresent() {
		item.FollowUpQuestions = SplitList(row.String(colFollowUpQuestions))
	}

	b.items = append(b.items, item)
	b.logger.Info().
		Str("id", item.ID).
		Str("title", truncate(item.Title, 30)).
		Msg("Item converted")

	return true, nil
}

// mapType resolves a 구분 code to an item type; unknown codes are knowledge
func (b *Builder) mapType(code string) models.ItemType {
	if mapped, ok := b.config.Mapping.Types[strings.TrimSpace(code)]; ok {
		switch t := models.ItemType(mapped); t {
		case models.ItemTypeIntent, models.ItemTypeKnowledge, models.ItemTypeCase:
			return t
		}
	}
	return models.ItemTypeKnowledge
}

