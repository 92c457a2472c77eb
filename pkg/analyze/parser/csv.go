// Package parser reads CSV and XLSX files into tables.
package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/analyze-go/pkg/analyze/models"
)

// ErrNoColumns indicates the input has no header line.
var ErrNoColumns = errors.New("no columns to parse from file")

// ErrTooManyFields indicates a data row is wider than the header.
var ErrTooManyFields = errors.New("too many fields")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParams holds parameters for CSV reading.
type CSVParams struct {
	// Delimiter separates fields.
	Delimiter rune
}

// DefaultCSVParams returns comma-separated reading parameters.
func DefaultCSVParams() CSVParams {
	return CSVParams{Delimiter: ','}
}

// LoadCSV reads the file at path into a table.
func LoadCSV(path string, params CSVParams) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, filepath.Base(path), params)
}

// ReadCSV reads delimited text from r. The first record is the header.
// Blank lines are skipped and short rows are padded with missing values.
// Syntax errors are returned as *csv.ParseError.
func ReadCSV(r io.Reader, name string, params CSVParams) (*models.Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	if params.Delimiter != 0 {
		cr.Comma = params.Delimiter
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, err
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			line, col := cr.FieldPos(len(header))
			return nil, &csv.ParseError{StartLine: line, Line: line, Column: col, Err: ErrTooManyFields}
		}
		records = append(records, padRecord(rec, len(header)))
	}

	return buildTable(name, header, records), nil
}
