package dtproton

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dtproton-go/pkg/dtproton/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoWorksheets indicates the workbook contains no sheets.
var ErrNoWorksheets = parser.ErrNoWorksheets

// Operations reported by ProcessError.
const (
	OpOpen      = "open"
	OpLoad      = "load"
	OpResolve   = "resolve sheet"
	OpReadSheet = "read sheet"
	OpClear     = "clear cells"
	OpSave      = "save"
)

// ProcessError represents a failure while processing one workbook.
type ProcessError struct {
	Path string
	Op   string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func newProcessError(path, op string, err error) *ProcessError {
	return &ProcessError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
