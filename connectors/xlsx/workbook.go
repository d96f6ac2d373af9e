// Package xlsx writes the metric tables into a single Excel workbook.
package xlsx

import (
	"fmt"

	"ev-metrics/domain/metrics"

	"github.com/xuri/excelize/v2"
)

const columnWidth = 18

// SheetName shortens a table name to Excel's 31 character sheet limit.
func SheetName(table string) string {
	if len(table) > 31 {
		return table[:31]
	}
	return table
}

// WriteWorkbook writes one sheet per table, header in the first row.
// Undefined cells are left blank.
func WriteWorkbook(path string, tables []metrics.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		sheet := SheetName(t.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, t); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, t metrics.Table) error {
	for i, header := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
