package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// ============================================================================
// WORKBOOK EXPORT — one sheet per generated table
// ============================================================================
// Values only: cell styling, fonts, and charts are applied downstream by the
// reporting templates.
// ============================================================================

// WriteWorkbook writes every table to its own sheet, named by the table's
// fixed vocabulary name, in generation order.
func WriteWorkbook(w io.Writer, tables map[string]engine.Table) error {
	names := orderedNames(tables)

	f := excelize.NewFile()
	defer f.Close()

	for si, name := range names {
		if si == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}

		if err := writeSheet(f, name, tables[name]); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t engine.Table) error {
	header := tableHeader(t)
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := setRow(f, sheet, 1, cells); err != nil {
		return err
	}

	for ri, row := range t.Rows {
		cells := make([]interface{}, 0, len(t.Columns)+2)
		if row.Summary {
			cells = append(cells, "", row.Symbol)
		} else {
			cells = append(cells, row.Z, row.Symbol)
		}
		for _, c := range row.Cells {
			if c.Valid {
				cells = append(cells, c.Value)
			} else {
				cells = append(cells, "") // missing, not zero
			}
		}
		if err := setRow(f, sheet, ri+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
