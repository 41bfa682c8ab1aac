package transfer

import (
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatXLSX, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, xlsx or csv)", s)
	}
}

// Export writes s to w in the given format. lists selects the catalog lists
// included in tabular formats; JSON always carries the whole store.
func Export(w io.Writer, f Format, s progress.Store, lists []string, today civil.Date) error {
	switch f {
	case FormatJSON:
		return ExportJSON(w, s)
	case FormatXLSX:
		return ExportXLSX(w, s, lists, today)
	case FormatCSV:
		return ExportCSV(w, s, lists, today)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// header returns the tabular column names, optionally led by a List column.
func header(withList bool) []string {
	cols := []string{"ID", "Title", "Difficulty", "Topics", "Solved", "Solved Date"}
	for i := 0; i < progress.ReviewCount; i++ {
		cols = append(cols,
			fmt.Sprintf("R%d Target", i+1),
			fmt.Sprintf("R%d Done", i+1),
		)
	}
	cols = append(cols, "Next Review", "Due")
	if withList {
		cols = append([]string{"List"}, cols...)
	}
	return cols
}

// tableRows returns one row per catalog problem of list, in catalog order.
func tableRows(s progress.Store, list string, today civil.Date) ([][]string, error) {
	problems := catalog.Problems(list)
	if problems == nil {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownList, list)
	}

	rows := make([][]string, 0, len(problems))
	for _, pr := range problems {
		pp := s.Get(list, pr.ID)
		row := []string{
			pr.ID,
			pr.Title,
			string(pr.Difficulty),
			strings.Join(pr.Topics, ", "),
			yesNo(pp.Solved),
			dateCell(pp.SolvedDate),
		}
		targets := progress.ScheduleReviews(pp.SolvedDate)
		for i, e := range pp.Entries() {
			target := ""
			if pp.Solved && i < len(targets) {
				target = targets[i].String()
			}
			done := ""
			if e.Completed {
				done = dateCell(e.CompletedDate)
				if done == "" {
					done = "yes"
				}
			}
			row = append(row, target, done)
		}
		next := ""
		if _, d, ok := progress.NextReview(pp); ok {
			next = d.String()
		}
		row = append(row, next, yesNo(progress.IsDue(pp, today)))
		rows = append(rows, row)
	}
	return rows, nil
}

func dateCell(d civil.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
