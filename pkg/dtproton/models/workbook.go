package models

// SkipReason explains why the cleanup rule did not apply to a workbook.
type SkipReason string

const (
	// SkipNone means the rule applied.
	SkipNone SkipReason = ""
	// SkipMarkerMismatch means the marker cell did not hold the marker text.
	SkipMarkerMismatch SkipReason = "marker_mismatch"
	// SkipTooFewRows means the sheet ends before the first scanned row.
	SkipTooFewRows SkipReason = "too_few_rows"
)

// Outcome reports what a run did with one workbook.
type Outcome struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheet is the resolved active sheet name.
	Sheet string
	// Applicable is true when the marker matched and the sheet was scanned.
	Applicable bool
	// Skipped holds the reason when Applicable is false.
	Skipped SkipReason
	// Cleared lists the addresses that were emptied, in scan order.
	Cleared []string
	// Output is the path of the written workbook, empty when nothing was written.
	Output string
}
