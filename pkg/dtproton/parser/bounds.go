package parser

import "github.com/ukaji3/dtproton-go/pkg/dtproton/models"

// findDataBounds finds the last row and column holding a value.
// Both are -1 when every cell is empty.
func findDataBounds(rows [][]models.Value) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if models.IsEmpty(v) {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// trimToBounds cuts rows and columns past the given bounds.
func trimToBounds(rows [][]models.Value, maxRow, maxCol int) [][]models.Value {
	if maxRow < 0 {
		return nil
	}
	rows = rows[:maxRow+1]
	for i, row := range rows {
		if len(row) > maxCol+1 {
			rows[i] = row[:maxCol+1]
		}
	}
	return rows
}
