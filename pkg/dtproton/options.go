// Package dtproton clears reference-material and check-standard results
// from ion chromatography workbooks.
package dtproton

import "github.com/sirupsen/logrus"

// Options configures a run.
type Options struct {
	// OutputDir receives the processed workbook. Empty means the working
	// directory.
	OutputDir string
	// Logger receives debug and progress entries. If nil, the logrus
	// standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns options writing to the working directory.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
