package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/tracker"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all progress (a backup is kept)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("reset clears every list; pass --yes to confirm")
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		sess.tracker.Clear(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. Run `codetrack restore` to undo.")
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-id]",
	Short: "Restore the most recent backup, or the one given",
	Long: `Restore the progress saved before the last import, reset or restore,
or the backup with the given id (see "codetrack backups").
The progress being replaced is backed up too, so running restore twice
returns to where you started.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		var snap *store.Snapshot
		if len(args) == 1 {
			snap, err = sess.tracker.RestoreBackup(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no backup with id %q; run `codetrack backups` to list them", args[0])
			}
		} else {
			snap, err = sess.tracker.Restore(cmd.Context())
		}
		if errors.Is(err, tracker.ErrNoSnapshot) {
			return fmt.Errorf("nothing to restore: no backups yet")
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s (taken before %s).\n",
			snap.Timestamp.Local().Format("2006-01-02 15:04"), snap.Reason)
		return nil
	},
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List the backups restore can bring back",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		snaps, err := sess.tracker.Backups(cmd.Context(), 0)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups yet.")
			return nil
		}
		rows := make([][]string, 0, len(snaps))
		for _, snap := range snaps {
			rows = append(rows, []string{
				snap.ID,
				snap.Timestamp.Local().Format("2006-01-02 15:04"),
				snap.Reason,
				strconv.FormatInt(snap.Sequence, 10),
			})
		}
		return printTable(cmd.OutOrStdout(), []string{"ID", "Taken", "Before", "After event"}, rows)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm clearing all progress")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(backupsCmd)
}
