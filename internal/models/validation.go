package models

// Severity grades a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one finding about one or more knowledge items
type ValidationIssue struct {
	ItemID   string   `json:"item_id,omitempty"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationReport collects findings over the whole item list
type ValidationReport struct {
	Items    int               `json:"items"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// OK reports whether the items may be written: no errors, warnings allowed
func (r *ValidationReport) OK() bool {
	return len(r.Errors) == 0
}

// Add files issue under its severity
func (r *ValidationReport) Add(issue ValidationIssue) {
	if issue.Severity == SeverityError {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}
