package models

// SheetRole is the part a worksheet plays in the conversion
type SheetRole int

const (
	SheetRoleUnmatched SheetRole = iota
	SheetRoleMain
	SheetRoleSynonym
	SheetRoleFAQ
)

func (r SheetRole) String() string {
	switch r {
	case SheetRoleMain:
		return "main"
	case SheetRoleSynonym:
		return "synonym"
	case SheetRoleFAQ:
		return "faq"
	default:
		return "unmatched"
	}
}

// SheetSelection is the resolved sheet name per role. Empty names mean the
// role has no sheet and its stage is skipped.
type SheetSelection struct {
	Main         string   `json:"main" yaml:"main"`
	MainFallback bool     `json:"main_fallback" yaml:"main_fallback"` // no sheet matched, first sheet used
	Synonym      string   `json:"synonym,omitempty" yaml:"synonym,omitempty"`
	FAQ          string   `json:"faq,omitempty" yaml:"faq,omitempty"`
	Unmatched    []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}
