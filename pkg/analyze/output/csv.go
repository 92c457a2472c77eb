// Package output serializes tables to delimited text.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/analyze-go/pkg/analyze/models"
)

// ToCSV serializes t as comma-separated text with a header row and no
// row index. The result depends only on t.
func ToCSV(t *models.Table) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot serialize nil table")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := writeRecord(w, &buf, t.Columns); err != nil {
		return nil, err
	}

	record := make([]string, len(t.Columns))
	for i := range t.Rows {
		for j, v := range t.Values(i) {
			record[j] = FormatValue(v)
		}
		if err := writeRecord(w, &buf, record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeRecord writes one record. A lone empty field is quoted so the line
// is not read back as blank.
func writeRecord(w *csv.Writer, buf *bytes.Buffer, record []string) error {
	if len(record) == 1 && record[0] == "" {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		buf.WriteString("\"\"\n")
		return nil
	}
	return w.Write(record)
}

// WriteFile writes t as CSV to path. The data goes to a temp sibling first
// and is renamed into place, so path is either absent or complete.
func WriteFile(t *models.Table, path string) error {
	data, err := ToCSV(t)
	if err != nil {
		return fmt.Errorf("failed to serialize table %s: %w", t.Name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}

	// Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	slog.Debug("table written",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// FormatValue renders a cell value as CSV field text.
// nil becomes an empty field.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat prints the shortest round-trip form. Integral values keep a
// trailing ".0"; exponents below -4 or from 16 up use scientific notation.
func formatFloat(f float64) string {
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if idx := strings.IndexByte(sci, 'e'); idx >= 0 && f != 0 {
		exp, err := strconv.Atoi(sci[idx+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
