package dtproton

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a single-sheet workbook with the given cells under dir.
func writeWorkbook(t *testing.T, dir, name string, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func testOptions(t *testing.T) (Options, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return Options{OutputDir: t.TempDir(), Logger: logger}, hook
}

func scenarioCells(marker string) map[string]interface{} {
	return map[string]interface{}{
		"A1": "样品",
		"A3": marker,
		"A6": "F",
		"B6": "Cl(RM)",
		"C6": 0.25,
		"A7": "NO3",
		"B7": 3,
		"C7": "SO4(C)",
	}
}

func TestProcessClearsMatchedCells(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "45vocs2.xlsx", scenarioCells("离子色谱 "))
	opts, _ := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.True(t, outcome.Applicable)
	assert.Equal(t, "45vocs2.xlsx", outcome.BookName)
	assert.Equal(t, "Sheet1", outcome.Sheet)
	assert.Equal(t, []string{"B6", "C7"}, outcome.Cleared)
	assert.Equal(t, filepath.Join(opts.OutputDir, "processed_45vocs2.xlsx"), outcome.Output)

	saved, err := excelize.OpenFile(outcome.Output)
	require.NoError(t, err)
	defer saved.Close()

	for cell, expected := range map[string]string{
		"A1": "样品",
		"A3": "离子色谱 ",
		"A6": "F",
		"B6": "",
		"C6": "0.25",
		"A7": "NO3",
		"B7": "3",
		"C7": "",
	} {
		value, err := saved.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, value, "cell %s", cell)
	}

	// The input is left untouched.
	original, err := excelize.OpenFile(input)
	require.NoError(t, err)
	defer original.Close()
	value, err := original.GetCellValue("Sheet1", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Cl(RM)", value)
}

func TestProcessMarkerMismatchWritesNothing(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "other.xlsx", scenarioCells("其他"))
	opts, hook := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.False(t, outcome.Applicable)
	assert.Equal(t, models.SkipMarkerMismatch, outcome.Skipped)
	assert.Empty(t, outcome.Output)
	assert.NoFileExists(t, filepath.Join(opts.OutputDir, "processed_other.xlsx"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, models.SkipMarkerMismatch, entry.Data["reason"])
}

func TestProcessLeadingEmptyRowsKeepAbsolutePositions(t *testing.T) {
	// Nothing in rows 1 and 2: A3 is still the marker cell and row 6 is
	// still the first scanned row.
	input := writeWorkbook(t, t.TempDir(), "sparse.xlsx", map[string]interface{}{
		"A3": "离子色谱",
		"B5": "F(RM)",
		"B6": "Cl(RM)",
		"C8": "SO4(C)",
	})
	opts, _ := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.True(t, outcome.Applicable)
	assert.Equal(t, []string{"B6", "C8"}, outcome.Cleared)

	saved, err := excelize.OpenFile(outcome.Output)
	require.NoError(t, err)
	defer saved.Close()

	for cell, expected := range map[string]string{
		"B5": "F(RM)",
		"B6": "",
		"C8": "",
	} {
		value, err := saved.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, value, "cell %s", cell)
	}
}

func TestProcessTooFewRows(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "short.xlsx", map[string]interface{}{
		"A3": "离子色谱",
		"B5": "Cl(RM)",
	})
	opts, _ := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.False(t, outcome.Applicable)
	assert.Equal(t, models.SkipTooFewRows, outcome.Skipped)
	assert.NoFileExists(t, filepath.Join(opts.OutputDir, "processed_short.xlsx"))
}

func TestProcessWritesOutputWithoutMatches(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "clean.xlsx", map[string]interface{}{
		"A3": "离子色谱",
		"A6": "Cl",
		"B6": 1.5,
	})
	opts, _ := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.True(t, outcome.Applicable)
	assert.Empty(t, outcome.Cleared)
	assert.FileExists(t, outcome.Output)
}

func TestProcessUsesActiveSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet("IC")
	require.NoError(t, err)
	f.SetActiveSheet(idx)
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "离子色谱"))
	require.NoError(t, f.SetCellValue("Sheet1", "A6", "Cl(RM)"))
	require.NoError(t, f.SetCellValue("IC", "A3", "离子色谱"))
	require.NoError(t, f.SetCellValue("IC", "B6", "Br(C)"))

	input := filepath.Join(t.TempDir(), "two.xlsx")
	require.NoError(t, f.SaveAs(input))
	opts, _ := testOptions(t)

	outcome, err := Process(input, opts)
	require.NoError(t, err)

	assert.Equal(t, "IC", outcome.Sheet)
	assert.Equal(t, []string{"B6"}, outcome.Cleared)

	saved, err := excelize.OpenFile(outcome.Output)
	require.NoError(t, err)
	defer saved.Close()

	value, err := saved.GetCellValue("Sheet1", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Cl(RM)", value)
}

func TestProcessRerunOnOutputIsStable(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "rerun.xlsx", scenarioCells("离子色谱"))
	opts, _ := testOptions(t)

	first, err := Process(input, opts)
	require.NoError(t, err)

	second, err := Process(first.Output, Options{OutputDir: t.TempDir(), Logger: opts.Logger})
	require.NoError(t, err)

	assert.True(t, second.Applicable)
	assert.Empty(t, second.Cleared)

	saved, err := excelize.OpenFile(second.Output)
	require.NoError(t, err)
	defer saved.Close()
	for _, cell := range []string{"B6", "C7"} {
		value, err := saved.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		assert.Empty(t, value)
	}
}

func TestProcessMissingFile(t *testing.T) {
	opts, _ := testOptions(t)
	_, err := Process(filepath.Join(t.TempDir(), "missing.xlsx"), opts)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var perr *ProcessError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, OpOpen, perr.Op)
}

func TestProcessInvalidWorkbook(t *testing.T) {
	input := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("not a zip archive"), 0644))
	opts, _ := testOptions(t)

	_, err := Process(input, opts)

	var perr *ProcessError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, OpLoad, perr.Op)
	assert.Equal(t, input, perr.Path)
}

func TestProcessUnwritableOutput(t *testing.T) {
	input := writeWorkbook(t, t.TempDir(), "in.xlsx", scenarioCells("离子色谱"))
	opts, _ := testOptions(t)
	opts.OutputDir = filepath.Join(opts.OutputDir, "does-not-exist")

	_, err := Process(input, opts)

	var perr *ProcessError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, OpSave, perr.Op)
	assert.Equal(t, filepath.Join(opts.OutputDir, "processed_in.xlsx"), perr.Path)
}

func TestProcessErrorMessage(t *testing.T) {
	err := &ProcessError{Path: "a.xlsx", Op: OpSave, Err: errors.New("disk full")}
	assert.Equal(t, "save a.xlsx: disk full", err.Error())
	assert.ErrorIs(t, newProcessError("a.xlsx", OpResolve, ErrNoWorksheets), ErrNoWorksheets)
}
