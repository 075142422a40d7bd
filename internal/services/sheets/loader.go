package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/xuri/excelize/v2"

	"github.com/ternarybob/kbsheet/internal/models"
)

// Loader reads a workbook from an .xlsx file, or from a directory holding one
// .csv file per sheet.
type Loader struct {
	logger arbor.ILogger
}

// NewLoader creates a workbook loader
func NewLoader(logger arbor.ILogger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every sheet of the workbook at path in workbook order
func (l *Loader) Load(ctx context.Context, path string) (*models.Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrLoadWorkbook, path, err)
	}

	var workbook *models.Workbook
	if info.IsDir() {
		workbook, err = l.loadCSVDir(ctx, path)
	} else {
		workbook, err = l.loadExcel(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if len(workbook.Sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrLoadWorkbook, path, models.ErrNoSheets)
	}
	return workbook, nil
}

func (l *Loader) loadExcel(ctx context.Context, path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrLoadWorkbook, path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.logger.Warn().Err(err).Str("path", path).Msg("Failed to close workbook")
		}
	}()

	workbook := &models.Workbook{Path: path}
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s: %v", models.ErrLoadWorkbook, name, err)
		}

		sheet := buildSheet(name, records)
		workbook.Sheets = append(workbook.Sheets, sheet)

		l.logger.Info().
			Str("sheet", name).
			Int("rows", len(sheet.Rows)).
			Msg("Sheet loaded")
	}
	return workbook, nil
}

func (l *Loader) loadCSVDir(ctx context.Context, dir string) (*models.Workbook, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrLoadWorkbook, dir, err)
	}
	sort.Strings(matches)

	workbook := &models.Workbook{Path: dir}
	for _, file := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := strings.TrimSpace(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		if name == "" {
			l.logger.Warn().Str("file", file).Msg("CSV file has no sheet name, skipping")
			continue
		}

		records, err := readCSV(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", models.ErrLoadWorkbook, file, err)
		}

		sheet := buildSheet(name, records)
		workbook.Sheets = append(workbook.Sheets, sheet)

		l.logger.Info().
			Str("sheet", name).
			Int("rows", len(sheet.Rows)).
			Msg("Sheet loaded")
	}
	return workbook, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

// buildSheet turns raw records into a sheet. The first record is the header;
// cells past the end of a short record are blank.
func buildSheet(name string, records [][]string) models.Sheet {
	sheet := models.Sheet{Name: name}
	if len(records) == 0 {
		return sheet
	}

	sheet.Columns = headerNames(records[0])
	for i, record := range records[1:] {
		values := make(map[string]string, len(sheet.Columns))
		for col, header := range sheet.Columns {
			if col < len(record) {
				values[header] = record[col]
			} else {
				values[header] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, models.NewRow(i, values))
	}
	return sheet
}

// headerNames trims header cells, names blank ones "Unnamed: N" and suffixes
// repeats with ".1", ".2" so every column stays addressable.
func headerNames(header []string) []string {
	seen := make(map[string]int, len(header))
	names := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}
