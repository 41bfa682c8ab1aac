package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/screens/history"
	"github.com/codetrack/codetrack/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent progress changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 1 {
			return fmt.Errorf("--limit must be positive, got %d", limit)
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		opts := store.QueryOpts{Limit: limit}
		if cmd.Flags().Changed("list") {
			opts.List = listFlag()
		}
		events, err := sess.store.EventRepo().QueryProgressEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing recorded yet.")
			return nil
		}

		rows := make([][]string, 0, len(events))
		for _, e := range events {
			rows = append(rows, []string{
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Action,
				history.Describe(e.ProgressEventData),
			})
		}
		return printTable(cmd.OutOrStdout(), []string{"When", "Action", "What"}, rows)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of events to show")

	rootCmd.AddCommand(historyCmd)
}
