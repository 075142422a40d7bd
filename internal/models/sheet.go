package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PlaceholderToken marks a cell that was intentionally left empty by the content author
const PlaceholderToken = "-"

// CellState distinguishes a missing column from a blank cell and from the "-" placeholder
type CellState int

const (
	CellAbsent      CellState = iota // column not present in the sheet
	CellBlank                        // column present, cell empty or whitespace only
	CellPlaceholder                  // trimmed text is "-"
	CellValue                        // real content
)

func (s CellState) String() string {
	switch s {
	case CellAbsent:
		return "absent"
	case CellBlank:
		return "blank"
	case CellPlaceholder:
		return "placeholder"
	case CellValue:
		return "value"
	default:
		return "unknown"
	}
}

// Cell is a single column value read from a row
type Cell struct {
	State CellState
	Raw   string // untrimmed text as loaded
}

// Text returns the trimmed cell text, or "" when the cell is absent or blank
func (c Cell) Text() string {
	if c.State == CellAbsent || c.State == CellBlank {
		return ""
	}
	return strings.TrimSpace(c.Raw)
}

// IsPresent reports whether the cell carries real content (not blank, not placeholder)
func (c Cell) IsPresent() bool {
	return c.State == CellValue
}

// Has reports whether the cell holds any text at all, placeholder included
func (c Cell) Has() bool {
	return c.State == CellValue || c.State == CellPlaceholder
}

// Row is one data row of a sheet. Index is the zero-based position of the row
// below the header, counting rows that converters later skip.
type Row struct {
	Index  int
	values map[string]string
}

// NewRow builds a row from column name to raw cell text. Columns missing from
// the map are reported as CellAbsent.
func NewRow(index int, values map[string]string) Row {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[strings.TrimSpace(k)] = v
	}
	return Row{Index: index, values: copied}
}

// Cell classifies the value stored under column
func (r Row) Cell(column string) Cell {
	raw, ok := r.values[column]
	if !ok {
		return Cell{State: CellAbsent}
	}
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "" || isNaN(trimmed):
		return Cell{State: CellBlank, Raw: raw}
	case trimmed == PlaceholderToken:
		return Cell{State: CellPlaceholder, Raw: raw}
	default:
		return Cell{State: CellValue, Raw: raw}
	}
}

// String returns the trimmed text of column, placeholder included
func (r Row) String(column string) string {
	return r.Cell(column).Text()
}

// OptionalString returns the trimmed text of column when it holds real content
func (r Row) OptionalString(column string) (string, bool) {
	c := r.Cell(column)
	if !c.IsPresent() {
		return "", false
	}
	return c.Text(), true
}

// Int parses column as an integer. Absent and blank cells return def.
// Spreadsheet-rendered floats such as "5.0" are truncated toward zero.
func (r Row) Int(column string, def int) (int, error) {
	c := r.Cell(column)
	if c.State == CellAbsent || c.State == CellBlank {
		return def, nil
	}
	text := c.Text()
	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return def, fmt.Errorf("row %d column %q value %q: %w", r.Index+1, column, text, ErrNotInteger)
	}
	return int(f), nil
}

func isNaN(s string) bool {
	return strings.EqualFold(s, "nan")
}

// Sheet is one named worksheet with its header and data rows in source order
type Sheet struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"-" yaml:"-"`
}

// Workbook holds sheets in workbook order
type Workbook struct {
	Path   string
	Sheets []Sheet
}

// SheetNames returns sheet names in load order
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Sheet looks up a sheet by exact name; an empty name never matches
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	if name == "" {
		return nil, false
	}
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
