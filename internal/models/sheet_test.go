package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_CellStates(t *testing.T) {
	row := NewRow(0, map[string]string{
		"value":       "  hello ",
		"blank":       "   ",
		"empty":       "",
		"placeholder": " - ",
		"nan":         "NaN",
	})

	tests := []struct {
		column string
		state  CellState
		text   string
	}{
		{"value", CellValue, "hello"},
		{"blank", CellBlank, ""},
		{"empty", CellBlank, ""},
		{"placeholder", CellPlaceholder, "-"},
		{"nan", CellBlank, ""},
		{"missing", CellAbsent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			cell := row.Cell(tt.column)
			assert.Equal(t, tt.state, cell.State)
			assert.Equal(t, tt.text, cell.Text())
		})
	}
}

func TestRow_OptionalString(t *testing.T) {
	row := NewRow(0, map[string]string{"a": " text ", "b": "-", "c": ""})

	v, ok := row.OptionalString("a")
	assert.True(t, ok)
	assert.Equal(t, "text", v)

	_, ok = row.OptionalString("b")
	assert.False(t, ok, "placeholder is not a value")

	_, ok = row.OptionalString("c")
	assert.False(t, ok)

	_, ok = row.OptionalString("missing")
	assert.False(t, ok)
}

func TestRow_Int(t *testing.T) {
	row := NewRow(3, map[string]string{
		"int":   "7",
		"float": "8.0",
		"blank": "",
		"text":  "high",
	})

	n, err := row.Int("int", 5)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = row.Int("float", 5)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = row.Int("blank", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = row.Int("missing", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = row.Int("text", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInteger))
	assert.Equal(t, 5, n)
	assert.Contains(t, err.Error(), "row 4")
}

func TestRow_IntOutOfRange(t *testing.T) {
	row := NewRow(0, map[string]string{"huge": "1e30", "negative": "-3e12", "inf": "Inf"})

	for _, col := range []string{"huge", "negative", "inf"} {
		n, err := row.Int(col, 5)
		assert.True(t, errors.Is(err, ErrNotInteger), col)
		assert.Equal(t, 5, n, col)
	}
}

func TestWorkbook_Sheet(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{{Name: "질문답변"}, {Name: "FAQ"}}}

	assert.Equal(t, []string{"질문답변", "FAQ"}, wb.SheetNames())

	s, ok := wb.Sheet("FAQ")
	require.True(t, ok)
	assert.Equal(t, "FAQ", s.Name)

	_, ok = wb.Sheet("")
	assert.False(t, ok)
	_, ok = wb.Sheet("동의어")
	assert.False(t, ok)
}
