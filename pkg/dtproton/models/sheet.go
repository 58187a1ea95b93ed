package models

// Grid is a rectangular block of typed cell values anchored at A1.
// Row and column indices are 0-based.
type Grid struct {
	// Height is the number of rows (last used row + 1).
	Height int
	// Width is the number of columns (last used column + 1).
	Width int
	// Rows holds the values row by row. Rows may be shorter than Width;
	// missing trailing cells are Empty.
	Rows [][]Value
}

// GridFromRows builds a Grid whose width is the longest row.
func GridFromRows(rows [][]Value) *Grid {
	g := &Grid{Height: len(rows), Rows: rows}
	for _, row := range rows {
		if len(row) > g.Width {
			g.Width = len(row)
		}
	}
	return g
}

// At returns the value at (row, col), or Empty when the position lies
// outside the stored cells.
func (g *Grid) At(row, col int) Value {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return Empty{}
	}
	if v := g.Rows[row][col]; v != nil {
		return v
	}
	return Empty{}
}
