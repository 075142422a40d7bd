package transform

import (
	"sort"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

const dateLayout = "2006-01-02"

// Builder accumulates the output of one conversion pass. It is not safe for
// concurrent use; rows must be added in sheet order.
type Builder struct {
	config common.Config
	logger arbor.ILogger

	truthy     map[string]bool
	items      []models.KnowledgeItem
	synonyms   *models.SynonymSet
	faqItems   []models.FaqItem
	categories map[string]struct{}
}

// NewBuilder creates an empty builder
func NewBuilder(config *common.Config, logger arbor.ILogger) *Builder {
	truthy := make(map[string]bool, len(config.Mapping.TruthyTokens))
	for _, token := range config.Mapping.TruthyTokens {
		truthy[strings.ToUpper(strings.TrimSpace(token))] = true
	}

	return &Builder{
		config:     *config,
		logger:     logger,
		truthy:     truthy,
		items:      []models.KnowledgeItem{},
		synonyms:   models.NewSynonymSet(),
		faqItems:   []models.FaqItem{},
		categories: make(map[string]struct{}),
	}
}

// Items returns the knowledge items converted so far
func (b *Builder) Items() []models.KnowledgeItem {
	return b.items
}

// Synonyms returns the synonym set converted so far
func (b *Builder) Synonyms() *models.SynonymSet {
	return b.synonyms
}

// FaqItems returns the FAQ items converted so far
func (b *Builder) FaqItems() []models.FaqItem {
	return b.faqItems
}

// Categories returns the distinct FAQ categories, sorted
func (b *Builder) Categories() []string {
	out := make([]string, 0, len(b.categories))
	for c := range b.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// KnowledgeDocument assembles the knowledge-base document stamped with now
func (b *Builder) KnowledgeDocument(now time.Time) *models.KnowledgeDocument {
	meta := b.config.Metadata
	return &models.KnowledgeDocument{
		Metadata: models.KnowledgeMetadata{
			Version:     meta.KnowledgeVersion,
			UpdatedAt:   now.Format(dateLayout),
			Description: meta.KnowledgeDescription,
			TotalItems:  len(b.items),
			GeneratedBy: meta.GeneratedBy,
		},
		Synonyms: b.synonyms,
		Items:    b.items,
	}
}

// FaqDocument assembles the FAQ document stamped with now
func (b *Builder) FaqDocument(now time.Time) *models.FaqDocument {
	meta := b.config.Metadata
	return &models.FaqDocument{
		Metadata: models.FaqMetadata{
			Version:     meta.FaqVersion,
			UpdatedAt:   now.Format(dateLayout),
			Description: meta.FaqDescription,
			GeneratedBy: meta.GeneratedBy,
		},
		Categories: b.Categories(),
		Items:      b.faqItems,
	}
}
