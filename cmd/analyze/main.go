// Package main provides the CLI entry point for analyze.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/analyze-go/internal/logging"
	"github.com/ukaji3/analyze-go/pkg/analyze"
)

const usage = "Usage: analyze <filename>"

type cliFlags struct {
	sheet     string
	format    string
	logLevel  string
	logFormat string
	seqURL    string
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the command and returns the process exit code.
func run(stdout, stderr io.Writer, args []string) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *analyze.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stdout, usageErr.Usage)
		return 1
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	rootCmd := &cobra.Command{
		Use:   "analyze <filename>",
		Short: "Load a tabular file and write it back out as CSV",
		Long: `analyze reads a CSV (or Excel) file into a table and writes it
unchanged to <filename>.processed.csv.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &analyze.UsageError{Usage: usage, Got: len(args)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return process(cmd.ErrOrStderr(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.sheet, "sheet", "", "Sheet to read from an Excel workbook (default: first sheet)")
	rootCmd.Flags().StringVar(&flags.format, "format", "auto", "Input format: auto, csv, xlsx")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "Log format: text, json")
	rootCmd.Flags().StringVar(&flags.seqURL, "seq-url", "", "Seq server URL to ship logs to (default: disabled)")

	return rootCmd
}

func process(logW, stdout io.Writer, inputPath string, flags cliFlags) error {
	logger, closeFn, err := logging.New(logging.Config{
		Level:  flags.logLevel,
		Format: flags.logFormat,
		SeqURL: flags.seqURL,
	}, logW)
	if err != nil {
		return err
	}
	defer closeFn()
	slog.SetDefault(logger)

	format, err := analyze.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	opts := analyze.DefaultOptions()
	opts.Format = format
	opts.Sheet = flags.sheet

	res, err := analyze.Process(inputPath, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Processed %s and saved as %s\n", res.InputPath, res.OutputPath)
	return nil
}
