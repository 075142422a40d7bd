package transform

import (
	"fmt"
	"strings"

	"github.com/ternarybob/kbsheet/internal/models"
)

// AddFaqRow converts one FAQ-sheet row. Rows without an ID or question are
// skipped and report false.
func (b *Builder) AddFaqRow(row models.Row) bool {
	if !row.Cell(colID).Has() || !row.Cell(colQuestion).Has() {
		return false
	}

	item := models.FaqItem{
		ID:       row.String(colID),
		Question: row.String(colQuestion),
		Category: b.config.Mapping.DefaultCategory,
	}
	if row.Cell(colFaqCategory).Has() {
		item.Category = row.String(colFaqCategory)
	}
	if item.Category != "" {
		b.categories[item.Category] = struct{}{}
	}

	position := row.Index + 1
	order, err := row.Int(colFaqOrder, position)
	if err != nil {
		b.logger.Debug().
			Str("id", item.ID).
			Str("value", row.String(colFaqOrder)).
			Int("order", position).
			Msg("Display order is not a number, using row position")
		order = position
	}
	item.Order = order

	var answer string
	if row.Cell(colFaqAnswer).Has() {
		answer = row.String(colFaqAnswer)
	}

	switch {
	case row.Cell(colFaqContent).IsPresent() && answer != "":
		item.Content = []models.ContentBlock{models.NewTextBlock(answer)}
		item.Content = b.appendImages(item.Content, row.Cell(colFaqContent).Raw)
	case row.Cell(colFaqContent).IsPresent():
		item.Content = []models.ContentBlock{models.NewTextBlock(row.String(colFaqContent))}
	case answer != "":
		item.Answer = answer
	}

	if row.Cell(colRelatedGuides).IsPresent() {
		item.RelatedGuides = ParseGuides(row.String(colRelatedGuides), b.config.Mapping.DefaultIcon)
	}
	if link, ok := row.OptionalString(colFaqKnowledgeLink); ok {
		item.RelatedKnowledgeID = link
	}

	b.faqItems = append(b.faqItems, item)
	b.logger.Info().
		Str("id", item.ID).
		Str("question", truncate(item.Question, 30)).
		Msg("FAQ item converted")

	return true
}

// appendImages adds an image block for every content line that names an image.
// The alt text numbers the image by the block count at insertion time.
func (b *Builder) appendImages(blocks []models.ContentBlock, content string) []models.ContentBlock {
	for _, line := range strings.Split(content, "\n") {
		path, ok := imagePath(line)
		if !ok {
			continue
		}
		src := resolveImageSrc(path, b.config.Output.ImageBasePath)
		alt := fmt.Sprintf("FAQ 이미지 %d", len(blocks))
		blocks = append(blocks, models.NewImageBlock(src, alt))
	}
	return blocks
}
