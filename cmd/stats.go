package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/ui/components"
	"github.com/codetrack/codetrack/internal/ui/theme"
)

const statsBarWidth = 60

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solved and review statistics for a list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		list := listFlag()
		st := sess.tracker.Stats(list)
		totals := progress.DifficultyTotals(catalog.Problems(list))
		out := cmd.OutOrStdout()

		lipgloss.Fprintln(out, theme.Title.Render(list))
		overall := components.NewProgressBar("Overall", st.Solved, st.Total, statsBarWidth)
		overall.LabelWidth = 8
		lipgloss.Fprintln(out, overall.View())
		for _, d := range catalog.AllDifficulties() {
			bar := components.NewProgressBar(string(d), st.SolvedBy(d), totals[d], statsBarWidth)
			bar.LabelWidth = 8
			bar.Color = theme.DifficultyColor(d)
			lipgloss.Fprintln(out, bar.View())
		}
		fmt.Fprintf(out, "\nDue today: %d\n", st.DueToday)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
