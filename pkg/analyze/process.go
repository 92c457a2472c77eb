package analyze

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ukaji3/analyze-go/pkg/analyze/models"
	"github.com/ukaji3/analyze-go/pkg/analyze/output"
	"github.com/ukaji3/analyze-go/pkg/analyze/parser"
)

// Result describes a completed pass-through.
type Result struct {
	InputPath  string
	OutputPath string
	Rows       int
	Columns    int
}

// Load reads the tabular file at path.
func Load(path string, opts Options) (*models.Table, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &IOError{Op: "load", Path: path, Err: ErrFileNotFound}
	}
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &IOError{Op: "load", Path: path, Err: fmt.Errorf("is a directory")}
	}

	format := opts.ResolveFormat(path)

	var table *models.Table
	switch format {
	case FormatXLSX:
		table, err = parser.LoadXLSX(path, opts.Sheet)
	default:
		params := parser.DefaultCSVParams()
		if opts.Delimiter != 0 {
			params.Delimiter = opts.Delimiter
		}
		table, err = parser.LoadCSV(path, params)
	}
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) && !errors.Is(err, parser.ErrNoColumns) {
			return nil, &IOError{Op: "load", Path: path, Err: err}
		}
		return nil, NewParseError(path, err)
	}

	slog.Debug("table loaded",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumColumns()),
	)
	return table, nil
}

// Save writes t as CSV to path.
func Save(t *models.Table, path string) error {
	if err := output.WriteFile(t, path); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Process loads path and saves it unchanged to OutputPath(path).
// Nothing is written when loading fails.
func Process(path string, opts Options) (*Result, error) {
	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	outPath := OutputPath(path)
	if err := Save(table, outPath); err != nil {
		return nil, err
	}

	slog.Info("processed",
		slog.String("input", path),
		slog.String("output", outPath),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumColumns()),
	)

	return &Result{
		InputPath:  path,
		OutputPath: outPath,
		Rows:       table.NumRows(),
		Columns:    table.NumColumns(),
	}, nil
}
