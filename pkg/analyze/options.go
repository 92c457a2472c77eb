// Package analyze loads tabular files and writes them back out as CSV.
package analyze

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX reads an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// ProcessedSuffix is appended to the input path to name the output file.
const ProcessedSuffix = ".processed.csv"

// Options configures loading behavior.
type Options struct {
	// Format specifies the input format (auto, csv, xlsx).
	Format Format
	// Delimiter separates CSV fields. Zero means comma.
	Delimiter rune
	// Sheet names the workbook sheet to read. Empty selects the first sheet.
	Sheet string
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Format:    FormatAuto,
		Delimiter: ',',
	}
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatCSV, FormatXLSX:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be auto, csv, or xlsx)", s)
	}
}

// ResolveFormat returns the concrete format to read path with.
// Workbook extensions select xlsx under FormatAuto; anything else is csv.
func (o Options) ResolveFormat(path string) Format {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// OutputPath returns the path the processed copy of input is written to.
func OutputPath(input string) string {
	return input + ProcessedSuffix
}
