package parser

// dataRegion is the bounding box of non-empty cells in a sheet, 0-based
// and inclusive. A negative MinRow means the sheet is empty.
type dataRegion struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Width returns the number of columns spanned by the region.
func (d dataRegion) Width() int {
	return d.MaxCol - d.MinCol + 1
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) dataRegion {
	d := dataRegion{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if d.MinRow < 0 || rowIdx < d.MinRow {
				d.MinRow = rowIdx
			}
			if rowIdx > d.MaxRow {
				d.MaxRow = rowIdx
			}
			if d.MinCol < 0 || colIdx < d.MinCol {
				d.MinCol = colIdx
			}
			if colIdx > d.MaxCol {
				d.MaxCol = colIdx
			}
		}
	}

	return d
}

// sliceRegion cuts row down to the region's columns, padding with empty
// cells where the row is shorter.
func sliceRegion(row []string, d dataRegion) []string {
	out := make([]string, d.Width())
	for colIdx := d.MinCol; colIdx <= d.MaxCol && colIdx < len(row); colIdx++ {
		out[colIdx-d.MinCol] = row[colIdx]
	}
	return out
}

// isBlank reports whether every cell in row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
