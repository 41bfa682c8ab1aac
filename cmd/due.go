package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/remind"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show reviews due today across all lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		d := remind.BuildDigest(sess.tracker)
		if cmd.Flags().Changed("list") {
			d = d.Only(listFlag())
		}
		fmt.Fprint(cmd.OutOrStdout(), d.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
