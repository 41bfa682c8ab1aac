package cmd

import (
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the problems of a list with their progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f progress.Filter
		f.Category, _ = cmd.Flags().GetString("category")
		f.DueOnly, _ = cmd.Flags().GetBool("due")
		f.Search, _ = cmd.Flags().GetString("search")
		if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
			diff, err := catalog.ParseDifficulty(d)
			if err != nil {
				return err
			}
			f.Difficulty = diff
		}

		list := listFlag()
		categories := catalog.Categories(catalog.Problems(list))
		if f.Category != "" && f.Category != progress.FilterAll && !slices.Contains(categories, f.Category) {
			return fmt.Errorf("unknown category %q in %s (want one of: %s)",
				f.Category, list, strings.Join(categories, ", "))
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		today := sess.tracker.Today()
		var rows [][]string
		for _, pr := range sess.tracker.Problems(list, f) {
			pp := sess.tracker.Progress(list, pr.ID)
			rows = append(rows, []string{
				pr.ID,
				pr.Title,
				string(pr.Difficulty),
				reviewMarks(pp),
				nextReview(pp, today),
			})
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No problems match.")
			return nil
		}
		if err := printTable(cmd.OutOrStdout(), []string{"ID", "Title", "Level", "Progress", "Next"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d problems\n", len(rows))
		return nil
	},
}

func init() {
	problemsCmd.Flags().String("category", "", "Only problems tagged with this topic")
	problemsCmd.Flags().String("difficulty", "", "Only Easy, Medium or Hard problems")
	problemsCmd.Flags().Bool("due", false, "Only problems with a review due today")
	problemsCmd.Flags().String("search", "", "Case-insensitive match on title or slug")

	rootCmd.AddCommand(problemsCmd)
}

// reviewMarks renders solved state and the five review slots, e.g. "✓ ●●○○○".
func reviewMarks(pp progress.ProblemProgress) string {
	if !pp.Solved {
		return "-"
	}
	var b strings.Builder
	b.WriteString("✓ ")
	for _, done := range pp.Reviews {
		if done {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

// nextReview describes the next outstanding review relative to today.
func nextReview(pp progress.ProblemProgress, today civil.Date) string {
	if progress.Completed(pp) {
		return "done"
	}
	slot, date, ok := progress.NextReview(pp)
	if !ok {
		return ""
	}
	switch days := date.DaysSince(today); {
	case days < 0:
		return fmt.Sprintf("R%d due (%dd late)", slot+1, -days)
	case days == 0:
		return fmt.Sprintf("R%d due today", slot+1)
	default:
		return fmt.Sprintf("R%d on %s", slot+1, date)
	}
}
