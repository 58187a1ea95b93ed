package dtproton

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/models"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/parser"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/rule"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/writer"
)

var scanner = rule.DefaultScanner()

// Process inspects the workbook at path and, when its active sheet carries
// the ion chromatography marker, writes a copy with the matched result cells
// emptied. The returned Outcome has an empty Output when the rule did not
// apply; that case is not an error.
func Process(path string, opts Options) (*models.Outcome, error) {
	log := opts.logger().WithField("file", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, newProcessError(path, OpOpen, ErrFileNotFound)
	}

	// The write view is the source of truth for which tab is active.
	book, err := writer.OpenBook(path)
	if err != nil {
		return nil, newProcessError(path, OpLoad, err)
	}
	defer book.Close()

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, newProcessError(path, OpOpen, err)
	}

	sheet, err := parser.ResolveActiveSheet(book, wb)
	if err != nil {
		return nil, newProcessError(path, OpResolve, err)
	}
	log = log.WithFields(logrus.Fields{"sheet": sheet, "active_tab": book.ActiveTab()})

	grid, err := wb.Grid(sheet)
	if err != nil {
		return nil, newProcessError(path, OpReadSheet, err)
	}
	log.WithFields(logrus.Fields{"height": grid.Height, "width": grid.Width}).Debug("Read active sheet")

	plan := scanner.Scan(grid)
	outcome := &models.Outcome{
		BookName:   filepath.Base(path),
		Sheet:      sheet,
		Applicable: plan.Applicable,
		Skipped:    plan.Reason,
	}
	if !plan.Applicable {
		log.WithField("reason", plan.Reason).Debug("Cleanup rule does not apply")
		return outcome, nil
	}

	if err := book.Clear(plan.Clear); err != nil {
		return nil, newProcessError(path, OpClear, err)
	}

	output := writer.OutputPath(opts.OutputDir, path)
	if err := book.SaveAs(output); err != nil {
		return nil, newProcessError(output, OpSave, err)
	}
	log.WithFields(logrus.Fields{"cells": len(plan.Clear), "output": output}).Debug("Saved processed workbook")

	outcome.Cleared = plan.Clear
	outcome.Output = output
	return outcome, nil
}
