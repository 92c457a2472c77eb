package parser

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/analyze-go/pkg/analyze/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadXLSX reads one sheet of the workbook at path into a table.
// An empty sheetName selects the first sheet. The header is the first
// non-empty row of the sheet's data region.
func LoadXLSX(path, sheetName string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoColumns
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	// Raw values so number formats like "#,##0.00" do not leak into the text
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	return sheetTable(filepath.Base(path), rows)
}

// sheetTable converts raw sheet rows into a table anchored at the data region.
func sheetTable(name string, rows [][]string) (*models.Table, error) {
	region := findDataBounds(rows)
	if region.MinRow < 0 {
		return nil, ErrNoColumns
	}

	header := sliceRegion(rows[region.MinRow], region)

	var records [][]string
	for rowIdx := region.MinRow + 1; rowIdx <= region.MaxRow; rowIdx++ {
		rec := sliceRegion(rows[rowIdx], region)
		if isBlank(rec) {
			continue
		}
		records = append(records, rec)
	}

	return buildTable(name, header, records), nil
}
