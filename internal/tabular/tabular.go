// Package tabular decodes uploaded employee rosters into a uniform table
// shape. Column headers are trimmed and upper-cased so lookups are
// case-insensitive across CSV and spreadsheet sources.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedType is returned for file extensions other than
// .csv/.xls/.xlsx.
var ErrUnsupportedType = errors.New("unsupported file type")

type Row map[string]string

func (r Row) Get(column string) string {
	return r[strings.ToUpper(strings.TrimSpace(column))]
}

// GetInt parses a cell as an integer, returning defaultVal for missing or
// non-numeric cells.
func (r Row) GetInt(column string, defaultVal int) int {
	raw := strings.TrimSpace(r.Get(column))
	if raw == "" {
		return defaultVal
	}
	// Spreadsheet numeric cells often hydrate as floats ("80.0").
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return defaultVal
}

type Table struct {
	Columns []string
	Rows    []Row
}

func (t *Table) HasColumn(name string) bool {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range t.Columns {
		if c == want {
			return true
		}
	}
	return false
}

// Decode picks a decoder from the uploaded filename's extension.
func Decode(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(r)
	case ".xls", ".xlsx":
		return DecodeSpreadsheet(r)
	default:
		return nil, ErrUnsupportedType
	}
}

func DecodeCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Failed to read csv: %w", err)
	}
	return fromRecords(records), nil
}

// DecodeSpreadsheet reads the first sheet of an xlsx workbook.
func DecodeSpreadsheet(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("Failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("Failed to read sheet %q: %w", sheets[0], err)
	}
	return fromRecords(records), nil
}

func fromRecords(records [][]string) *Table {
	table := &Table{}
	if len(records) == 0 {
		return table
	}
	for _, header := range records[0] {
		table.Columns = append(table.Columns, strings.ToUpper(strings.TrimSpace(header)))
	}
	for _, record := range records[1:] {
		row := Row{}
		empty := true
		for i, cell := range record {
			if i >= len(table.Columns) {
				break
			}
			value := strings.TrimSpace(cell)
			if value != "" {
				empty = false
			}
			row[table.Columns[i]] = value
		}
		if !empty {
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}
