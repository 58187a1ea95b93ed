// Package parser provides the read view of a workbook and the helpers that
// tie it to the write view.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/models"
)

// Workbook is the read view of an xlsx file: sheet names in stored order and
// typed cell grids per sheet.
type Workbook struct {
	file *xlsx.File
}

// OpenWorkbook parses the workbook at path. The file handle is released
// before OpenWorkbook returns. Malformed cell data that makes the parser
// panic is reported as an error.
func OpenWorkbook(path string) (wb *Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("malformed workbook: %v", r)
		}
	}()

	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{file: f}, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.file.Sheets))
	for _, sheet := range w.file.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}

// Grid returns the typed value grid of the named sheet.
func (w *Workbook) Grid(sheetName string) (*models.Grid, error) {
	for _, sheet := range w.file.Sheets {
		if sheet.Name == sheetName {
			return ExtractGrid(sheet), nil
		}
	}
	return nil, fmt.Errorf("sheet %q not found", sheetName)
}

// ExtractGrid converts a sheet into an A1-anchored grid. Rows and columns
// past the last cell holding a value are dropped.
func ExtractGrid(sheet *xlsx.Sheet) *models.Grid {
	rows := make([][]models.Value, len(sheet.Rows))
	for rowIdx, row := range sheet.Rows {
		if row == nil {
			continue
		}
		values := make([]models.Value, len(row.Cells))
		for colIdx, cell := range row.Cells {
			values[colIdx] = cellValue(cell)
		}
		rows[rowIdx] = values
	}

	maxRow, maxCol := findDataBounds(rows)
	return models.GridFromRows(trimToBounds(rows, maxRow, maxCol))
}

// cellValue maps a parsed cell onto the Value variants.
func cellValue(cell *xlsx.Cell) models.Value {
	if cell == nil || cell.Value == "" {
		return models.Empty{}
	}

	switch cell.Type() {
	case xlsx.CellTypeBool:
		return models.Bool(cell.Value == "1" || strings.EqualFold(cell.Value, "true"))
	case xlsx.CellTypeError:
		if code, ok := models.ParseErrorCode(cell.Value); ok {
			return models.CellError(code)
		}
		return models.Text(cell.Value)
	case xlsx.CellTypeDate:
		return models.DateTimeISO(cell.Value)
	case xlsx.CellTypeNumeric:
		return numericValue(cell.Value, cell.IsTime())
	default:
		return models.Text(cell.Value)
	}
}

// numericValue classifies a raw numeric cell. Date-formatted numbers keep
// their serial value as DateTime.
func numericValue(raw string, isTime bool) models.Value {
	if isTime {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.DateTime(f)
		}
	}

	switch v := parseValue(raw).(type) {
	case int64:
		return models.Int(v)
	case float64:
		return models.Float(v)
	default:
		return models.Text(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
