package transfer

import (
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/xuri/excelize/v2"

	"github.com/codetrack/codetrack/internal/progress"
)

const defaultSheet = "Sheet1"

// ExportXLSX writes a workbook with one sheet per list.
func ExportXLSX(w io.Writer, s progress.Store, lists []string, today civil.Date) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F46E5"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	dueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "B45309"},
	})
	if err != nil {
		return fmt.Errorf("create due style: %w", err)
	}

	cols := header(false)
	lastCol, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}

	for i, list := range lists {
		rows, err := tableRows(s, list, today)
		if err != nil {
			return err
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, list); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(list); err != nil {
			return fmt.Errorf("create sheet %q: %w", list, err)
		}

		if err := f.SetSheetRow(list, "A1", &cols); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(list, "A1", lastCol+"1", headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}

		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(list, cell, &row); err != nil {
				return fmt.Errorf("write row %d: %w", r+2, err)
			}
			if row[len(row)-1] == "yes" {
				dueCell, _ := excelize.CoordinatesToCellName(len(row), r+2)
				if err := f.SetCellStyle(list, dueCell, dueCell, dueStyle); err != nil {
					return fmt.Errorf("style row %d: %w", r+2, err)
				}
			}
		}

		if err := f.SetColWidth(list, "A", "A", 32); err != nil {
			return err
		}
		if err := f.SetColWidth(list, "B", "B", 44); err != nil {
			return err
		}
		if err := f.SetColWidth(list, "D", "D", 30); err != nil {
			return err
		}
		if err := f.SetPanes(list, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("freeze header: %w", err)
		}
	}

	if len(lists) > 0 {
		f.SetActiveSheet(0)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
