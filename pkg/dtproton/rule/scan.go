// Package rule decides whether an ion chromatography sheet needs cleanup
// and which cells to clear.
package rule

import (
	"regexp"
	"strings"

	"github.com/ukaji3/dtproton-go/pkg/dtproton/models"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/parser"
)

// Marker is the text the marker cell (A3) must hold for the rule to apply.
const Marker = "离子色谱"

const (
	markerRow    = 2 // A3
	markerCol    = 0
	firstScanRow = 5 // row 6
)

// ClearPattern matches reference-material "(RM)" and check-standard "(C)"
// tags inside a cell.
var ClearPattern = regexp.MustCompile(`\((RM|C)\)`)

// Plan is the result of scanning one sheet.
type Plan struct {
	// Applicable is true when the marker matched and the sheet reaches the
	// scanned rows.
	Applicable bool
	// Reason is set when Applicable is false.
	Reason models.SkipReason
	// Clear lists A1-style addresses in row-major scan order. It may be
	// empty even when Applicable is true.
	Clear []string
}

// Scanner applies the marker check and collects cells matching its pattern.
type Scanner struct {
	pattern *regexp.Regexp
}

// NewScanner returns a Scanner matching cells against pattern.
func NewScanner(pattern *regexp.Regexp) *Scanner {
	return &Scanner{pattern: pattern}
}

// DefaultScanner returns a Scanner using ClearPattern.
func DefaultScanner() *Scanner {
	return NewScanner(ClearPattern)
}

// Scan checks the marker cell and, when it matches, lists every cell from
// row 6 downwards whose text matches the pattern.
func (s *Scanner) Scan(grid *models.Grid) Plan {
	marker := strings.TrimSpace(models.Normalize(grid.At(markerRow, markerCol)))
	if marker != Marker {
		return Plan{Reason: models.SkipMarkerMismatch}
	}
	if grid.Height <= firstScanRow {
		return Plan{Reason: models.SkipTooFewRows}
	}

	plan := Plan{Applicable: true, Clear: []string{}}
	for row := firstScanRow; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			text := models.Normalize(grid.At(row, col))
			if text != "" && s.pattern.MatchString(text) {
				plan.Clear = append(plan.Clear, parser.CellReference(col+1, row+1))
			}
		}
	}
	return plan
}
