package sheets

import (
	"strings"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

// Matcher assigns sheet roles by case-insensitive substring search over sheet names
type Matcher struct {
	mainMarkers    []string
	synonymMarkers []string
	faqMarkers     []string
}

// NewMatcher creates a matcher from the configured markers
func NewMatcher(config common.SheetsConfig) *Matcher {
	return &Matcher{
		mainMarkers:    lowerAll(config.MainMarkers),
		synonymMarkers: lowerAll(config.SynonymMarkers),
		faqMarkers:     lowerAll(config.FaqMarkers),
	}
}

// MatchRole returns the role of a single sheet name. FAQ markers are checked
// first because "자주묻는질문" also contains the main marker "질문".
func (m *Matcher) MatchRole(name string) models.SheetRole {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, m.faqMarkers):
		return models.SheetRoleFAQ
	case containsAny(lower, m.synonymMarkers):
		return models.SheetRoleSynonym
	case containsAny(lower, m.mainMarkers):
		return models.SheetRoleMain
	default:
		return models.SheetRoleUnmatched
	}
}

// Select resolves one sheet per role from names in workbook order; the first
// match wins. Without a main match the first sheet is used and MainFallback is set.
func (m *Matcher) Select(names []string) models.SheetSelection {
	var sel models.SheetSelection
	for _, name := range names {
		switch m.MatchRole(name) {
		case models.SheetRoleMain:
			if sel.Main == "" {
				sel.Main = name
			}
		case models.SheetRoleSynonym:
			if sel.Synonym == "" {
				sel.Synonym = name
			}
		case models.SheetRoleFAQ:
			if sel.FAQ == "" {
				sel.FAQ = name
			}
		default:
			sel.Unmatched = append(sel.Unmatched, name)
		}
	}

	if sel.Main == "" && len(names) > 0 {
		sel.Main = names[0]
		sel.MainFallback = true
	}
	return sel
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
