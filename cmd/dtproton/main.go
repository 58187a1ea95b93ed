// Package main provides the CLI entry point for dtproton.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/dtproton-go/pkg/dtproton"
	"github.com/ukaji3/dtproton-go/pkg/dtproton/models"
)

const (
	usageHint        = "请提供文件名作为参数，例如：dtproton 45vocs2.xlsx"
	markerMismatch   = "A3 单元格不是“离子色谱”，无需处理。"
	tooFewRows       = "表格行数不足6行，无需处理第6行及以后的数据。"
	savedMessage     = "文件已处理并保存为: %s\n"
	failurePrefix    = "处理 Excel 文件时出错"
	defaultOutputDir = "."
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s: %v\n", failurePrefix, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outputDir string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "dtproton [input.xlsx]",
		Short: "Clear (RM) and (C) results from ion chromatography workbooks",
		Long: `dtproton checks that cell A3 of the active sheet reads "离子色谱" and, if so,
empties every cell from row 6 onwards containing "(RM)" or "(C)". The result
is saved as processed_<input name>; the input file is never modified.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := dtproton.Options{
				OutputDir: outputDir,
				Logger:    newLogger(cmd.ErrOrStderr(), verbose),
			}
			return run(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", defaultOutputDir, "Directory for the processed workbook")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func run(out io.Writer, args []string, opts dtproton.Options) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usageHint)
		return nil
	}

	outcome, err := dtproton.Process(args[0], opts)
	if err != nil {
		return err
	}

	switch outcome.Skipped {
	case models.SkipMarkerMismatch:
		fmt.Fprintln(out, markerMismatch)
	case models.SkipTooFewRows:
		fmt.Fprintln(out, tooFewRows)
	}
	if outcome.Output != "" {
		fmt.Fprintf(out, savedMessage, outcome.Output)
	}
	return nil
}
