package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/tracker"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem-id>",
	Short: "Toggle a problem solved and schedule its reviews",
	Long: `Toggle a problem solved. Marking it solved records today's date and
schedules reviews 1, 3, 7, 14 and 30 days out. Running it again clears the
problem, including its reviews.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := listFlag()
		pr, err := catalog.Lookup(list, args[0])
		if err != nil {
			return err
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		pp, err := sess.tracker.ToggleSolved(cmd.Context(), list, pr.ID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !pp.Solved {
			fmt.Fprintf(out, "%s marked unsolved.\n", pr.Title)
			return nil
		}
		fmt.Fprintf(out, "%s solved on %s. Reviews:\n", pr.Title, pp.SolvedDate)
		for i, d := range progress.ScheduleReviews(pp.SolvedDate) {
			fmt.Fprintf(out, "  R%d  %s\n", i+1, d)
		}
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review <problem-id> <1-5>",
	Short: "Toggle a review of a solved problem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := listFlag()
		pr, err := catalog.Lookup(list, args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > progress.ReviewCount {
			return fmt.Errorf("review number must be 1-%d, got %q", progress.ReviewCount, args[1])
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		pp, err := sess.tracker.ToggleReview(cmd.Context(), list, pr.ID, n-1)
		if errors.Is(err, tracker.ErrNotSolved) {
			return fmt.Errorf("%s is not solved yet; run `codetrack solve %s` first", pr.Title, pr.ID)
		}
		if err != nil {
			return err
		}
		if pp.Reviews[n-1] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s R%d done on %s.\n", pr.Title, n, pp.Dates[progress.ReviewLabel(n-1)])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s R%d cleared.\n", pr.Title, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(reviewCmd)
}
