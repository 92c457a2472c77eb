package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/analyze-go/pkg/analyze/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{"", ""},
		{"nan", "nan"},
		{"inf", "inf"},
		{"0x1F", "0x1F"},
		{"1_000", "1_000"},
		{"1-2", "1-2"},
		{"12345678901234567890123", "12345678901234567890123"},
		{"-99999999999999999999", "-99999999999999999999"},
		{"9223372036854775807", int64(9223372036854775807)},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestInferColumnType(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  models.ColumnType
	}{
		{"integers", []string{"1", "2", "-3"}, models.ColumnInt},
		{"mixed numeric", []string{"1", "2.5"}, models.ColumnFloat},
		{"integers with gap", []string{"1", "", "3"}, models.ColumnFloat},
		{"all empty", []string{"", ""}, models.ColumnFloat},
		{"text", []string{"1", "a"}, models.ColumnString},
		{"text with gap", []string{"", "a"}, models.ColumnString},
		{"wider than int64", []string{"1", "12345678901234567890123"}, models.ColumnString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferColumnType(tt.cells); got != tt.want {
				t.Errorf("inferColumnType(%q) = %s, want %s", tt.cells, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	got := normalizeHeader([]string{"a", "a", "", "b", "a.1", "a"})
	want := []string{"a", "a.1", "Unnamed: 2", "b", "a.1.1", "a.2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("normalizeHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable(t *testing.T) {
	table := buildTable("t.csv", []string{"id", "score", "name"}, [][]string{
		{"1", "1.5", "ann"},
		{"2", "", ""},
	})

	want := &models.Table{
		Name:    "t.csv",
		Columns: []string{"id", "score", "name"},
		Types:   []models.ColumnType{models.ColumnInt, models.ColumnFloat, models.ColumnString},
		Rows: []models.Row{
			{"id": int64(1), "score": 1.5, "name": "ann"},
			{"id": int64(2), "score": nil, "name": nil},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("buildTable mismatch (-want +got):\n%s", diff)
	}
}
