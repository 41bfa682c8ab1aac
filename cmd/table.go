package cmd

import (
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/codetrack/codetrack/internal/ui/theme"
)

// printTable renders rows under headers. Colors are dropped when w is not a
// terminal.
func printTable(w io.Writer, headers []string, rows [][]string) error {
	headerStyle := theme.Title.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := lipgloss.Fprintln(w, t)
	return err
}

// listFlag returns the list selected by --list or the configured default.
func listFlag() string {
	return cfg.DefaultList
}
