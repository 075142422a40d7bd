package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

func newTestMatcher() *Matcher {
	return NewMatcher(common.NewDefaultConfig().Sheets)
}

func TestMatcher_MatchRole(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name string
		want models.SheetRole
	}{
		{"질문답변", models.SheetRoleMain},
		{"Main Data", models.SheetRoleMain},
		{"MAIN", models.SheetRoleMain},
		{"동의어사전", models.SheetRoleSynonym},
		{"FAQ", models.SheetRoleFAQ},
		{"faq-2024", models.SheetRoleFAQ},
		{"자주묻는질문", models.SheetRoleFAQ},
		{"Sheet1", models.SheetRoleUnmatched},
		{"", models.SheetRoleUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchRole(tt.name))
		})
	}
}

func TestMatcher_Select(t *testing.T) {
	m := newTestMatcher()

	t.Run("first match wins per role", func(t *testing.T) {
		sel := m.Select([]string{"안내", "질문답변", "FAQ", "동의어", "질문답변(구)", "faq old"})

		assert.Equal(t, "질문답변", sel.Main)
		assert.False(t, sel.MainFallback)
		assert.Equal(t, "동의어", sel.Synonym)
		assert.Equal(t, "FAQ", sel.FAQ)
		assert.Equal(t, []string{"안내"}, sel.Unmatched)
	})

	t.Run("falls back to first sheet", func(t *testing.T) {
		sel := m.Select([]string{"Sheet1", "Sheet2"})

		assert.Equal(t, "Sheet1", sel.Main)
		assert.True(t, sel.MainFallback)
		assert.Empty(t, sel.Synonym)
		assert.Empty(t, sel.FAQ)
	})

	t.Run("no sheets", func(t *testing.T) {
		sel := m.Select(nil)
		assert.Empty(t, sel.Main)
		assert.False(t, sel.MainFallback)
	})
}

func TestMatcher_CustomMarkers(t *testing.T) {
	m := NewMatcher(common.SheetsConfig{
		MainMarkers:    []string{"QnA"},
		SynonymMarkers: []string{"Synonyms"},
		FaqMarkers:     []string{"Help"},
	})

	assert.Equal(t, models.SheetRoleMain, m.MatchRole("qna-2025"))
	assert.Equal(t, models.SheetRoleSynonym, m.MatchRole("SYNONYMS"))
	assert.Equal(t, models.SheetRoleFAQ, m.MatchRole("help center"))
	assert.Equal(t, models.SheetRoleUnmatched, m.MatchRole("질문답변"))
}
