package transfer

import (
	"encoding/csv"
	"fmt"
	"io"

	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/progress"
)

// ExportCSV writes a flat table of every problem in lists, with a leading List
// column.
func ExportCSV(w io.Writer, s progress.Store, lists []string, today civil.Date) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(true)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, list := range lists {
		rows, err := tableRows(s, list, today)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write(append([]string{list}, row...)); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
