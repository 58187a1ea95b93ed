// Package writer holds the write view of a workbook: it clears cells on the
// active sheet and saves the result under a derived name.
package writer

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// OutputPrefix is prepended to the input file name to form the output name.
const OutputPrefix = "processed_"

// DefaultBaseName replaces the input file name when the input path has none.
const DefaultBaseName = "output.xlsx"

// Book is a mutable workbook loaded for rewriting.
type Book struct {
	file *excelize.File
}

// OpenBook loads the workbook at path.
func OpenBook(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Book{file: f}, nil
}

// Close releases temporary resources held by the workbook.
func (b *Book) Close() error {
	return b.file.Close()
}

// ActiveTab returns the 0-based active tab index from the workbook view.
func (b *Book) ActiveTab() int {
	return b.file.GetActiveSheetIndex()
}

// ActiveSheet returns the name of the active sheet.
func (b *Book) ActiveSheet() string {
	return b.file.GetSheetName(b.ActiveTab())
}

// Clear sets every addressed cell of the active sheet to the empty string.
func (b *Book) Clear(addrs []string) error {
	sheet := b.ActiveSheet()
	for _, addr := range addrs {
		if err := b.file.SetCellStr(sheet, addr, ""); err != nil {
			return fmt.Errorf("clear %s!%s: %w", sheet, addr, err)
		}
	}
	return nil
}

// SaveAs writes the whole workbook to path.
func (b *Book) SaveAs(path string) error {
	return b.file.SaveAs(path)
}

// OutputPath derives the output file path for input inside dir.
// An empty dir yields a path relative to the working directory.
func OutputPath(dir, input string) string {
	return filepath.Join(dir, OutputPrefix+baseName(input))
}

// baseName returns the last element of the cleaned path, so "dir/." yields
// "dir" while "", "/" and "dir/.." have no file name.
func baseName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	switch base {
	case ".", "..", string(filepath.Separator):
		return DefaultBaseName
	}
	return base
}
