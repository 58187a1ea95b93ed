package parser

import "strconv"

// ColumnToLetters converts a 1-based column number to its letter name:
// 1 -> A, 26 -> Z, 27 -> AA, 702 -> ZZ.
func ColumnToLetters(col int) string {
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		i--
		buf[i] = byte('A' + (col-1)%26)
		col = (col - 1) / 26
	}
	return string(buf[i:])
}

// CellReference builds an A1-style reference from 1-based coordinates.
func CellReference(col, row int) string {
	return ColumnToLetters(col) + strconv.Itoa(row)
}
