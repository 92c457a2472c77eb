package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/analyze-go/pkg/analyze/models"
)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Only plain decimal notation is considered numeric; "inf", "nan" and hex
// literals stay text.
func parseValue(s string) interface{} {
	if !isDecimal(s) {
		return s
	}
	// Try integer first
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i
	}
	// Integers wider than int64 stay text rather than lose digits
	if errors.Is(err, strconv.ErrRange) && !strings.ContainsAny(s, ".eE") {
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case strings.ContainsRune("+-.eE", r):
		default:
			return false
		}
	}
	return digits
}

// inferColumnType picks the narrowest type that holds every cell of a column.
func inferColumnType(cells []string) models.ColumnType {
	allInt, hasEmpty := true, false
	for _, cell := range cells {
		if cell == "" {
			hasEmpty = true
			continue
		}
		switch parseValue(cell).(type) {
		case int64:
		case float64:
			allInt = false
		default:
			return models.ColumnString
		}
	}
	if allInt && !hasEmpty {
		return models.ColumnInt
	}
	return models.ColumnFloat
}

// convertCell turns raw cell text into a value of the column's type.
func convertCell(cell string, typ models.ColumnType) interface{} {
	if cell == "" {
		return nil
	}
	switch typ {
	case models.ColumnInt:
		i, _ := strconv.ParseInt(cell, 10, 64)
		return i
	case models.ColumnFloat:
		f, _ := strconv.ParseFloat(cell, 64)
		return f
	default:
		return cell
	}
}

// normalizeHeader names blank columns and disambiguates duplicates by
// suffixing ".1", ".2", ... to later occurrences.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))

	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		col := name
		for used[col] {
			counts[name]++
			col = fmt.Sprintf("%s.%d", name, counts[name])
		}
		used[col] = true
		columns[i] = col
	}
	return columns
}

// buildTable types each column and assembles the rows. Every record must
// already be exactly as wide as header.
func buildTable(name string, header []string, records [][]string) *models.Table {
	columns := normalizeHeader(header)
	types := make([]models.ColumnType, len(columns))

	cells := make([]string, len(records))
	for j := range columns {
		for i, rec := range records {
			cells[i] = rec[j]
		}
		types[j] = inferColumnType(cells)
	}

	rows := make([]models.Row, len(records))
	for i, rec := range records {
		row := make(models.Row, len(columns))
		for j, col := range columns {
			row[col] = convertCell(rec[j], types[j])
		}
		rows[i] = row
	}

	return &models.Table{
		Name:    name,
		Columns: columns,
		Types:   types,
		Rows:    rows,
	}
}

// padRecord extends rec with empty cells up to width.
func padRecord(rec []string, width int) []string {
	if len(rec) >= width {
		return rec
	}
	padded := make([]string, width)
	copy(padded, rec)
	return padded
}
