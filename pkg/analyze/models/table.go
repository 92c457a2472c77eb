// Package models defines data structures for tabular pass-through.
package models

// ColumnType is the value type inferred for a column at load time.
type ColumnType string

const (
	// ColumnInt holds int64 values only, with no missing cells.
	ColumnInt ColumnType = "int"
	// ColumnFloat holds float64 values; missing cells are nil.
	ColumnFloat ColumnType = "float"
	// ColumnString holds raw text; missing cells are nil.
	ColumnString ColumnType = "string"
)

// Row maps column name to cell value (int64, float64, string or nil).
type Row map[string]interface{}

// Table is an ordered sequence of rows sharing a fixed column set.
type Table struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Columns is the header in source order.
	Columns []string `json:"columns"`
	// Types is parallel to Columns.
	Types []ColumnType `json:"types"`
	// Rows holds one entry per data line.
	Rows []Row `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Values returns row i in column order.
func (t *Table) Values(i int) []interface{} {
	row := t.Rows[i]
	values := make([]interface{}, len(t.Columns))
	for j, col := range t.Columns {
		values[j] = row[col]
	}
	return values
}
