package transform

import (
	"fmt"

	"github.com/ternarybob/kbsheet/internal/models"
)

// AddSynonymRow converts one synonym-sheet row. Rows without a representative
// word, or without any synonym, add nothing and report false.
func (b *Builder) AddSynonymRow(row models.Row) bool {
	if !row.Cell(colRepresentative).Has() {
		return false
	}

	word := row.String(colRepresentative)
	var synonyms []string
	for i := 1; i <= maxSynonymColumns; i++ {
		if synonym, ok := row.OptionalString(fmt.Sprintf("%s%d", colSynonymPrefix, i)); ok {
			synonyms = append(synonyms, synonym)
		}
	}
	if len(synonyms) == 0 {
		return false
	}

	b.synonyms.Put(word, synonyms)
	b.logger.Info().
		Str("word", word).
		Int("synonyms", len(synonyms)).
		Msg("Synonym registered")

	return true
}
