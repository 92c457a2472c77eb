package analyze

import (
	"encoding/csv"
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrParse indicates the input is not valid tabular data.
var ErrParse = errors.New("invalid tabular data")

// ErrWrite indicates the output file could not be written.
var ErrWrite = errors.New("write failed")

// UsageError reports a wrong number of command-line arguments.
type UsageError struct {
	Usage string
	Got   int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 1 argument, got %d", e.Got)
}

// ParseError represents a failure to read the input as a table.
type ParseError struct {
	Path string
	Line int // 1-based, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError, taking the line from a
// *csv.ParseError when err carries one.
func NewParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	var cerr *csv.ParseError
	if errors.As(err, &cerr) {
		pe.Line = cerr.Line
	}
	return pe
}

// IOError represents a filesystem failure while loading or saving.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes save failures match ErrWrite.
func (e *IOError) Is(target error) bool {
	return target == ErrWrite && e.Op == "save"
}
