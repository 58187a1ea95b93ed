package parser

import "errors"

// ErrNoWorksheets indicates the read view lists no sheets.
var ErrNoWorksheets = errors.New("workbook has no worksheets")

// ActiveTabber exposes the 0-based active tab index from a workbook's view
// settings.
type ActiveTabber interface {
	ActiveTab() int
}

// SheetLister exposes sheet names in stored order.
type SheetLister interface {
	SheetNames() []string
}

// ResolveActiveSheet picks the sheet name the two workbook views agree on.
// The write view decides which tab is active; the read view supplies the
// name at that index, or its first sheet when the index is out of range.
func ResolveActiveSheet(view ActiveTabber, book SheetLister) (string, error) {
	names := book.SheetNames()
	if len(names) == 0 {
		return "", ErrNoWorksheets
	}
	if idx := view.ActiveTab(); idx >= 0 && idx < len(names) {
		return names[idx], nil
	}
	return names[0], nil
}
