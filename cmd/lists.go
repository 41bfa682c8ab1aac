package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show every list with solved and due counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		var rows [][]string
		for _, name := range catalog.Names() {
			st := sess.tracker.Stats(name)
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%d/%d (%.0f%%)", st.Solved, st.Total, st.SolvedPercent()*100),
				strconv.Itoa(st.Easy),
				strconv.Itoa(st.Medium),
				strconv.Itoa(st.Hard),
				strconv.Itoa(st.DueToday),
			})
		}
		return printTable(cmd.OutOrStdout(),
			[]string{"List", "Solved", "Easy", "Medium", "Hard", "Due"}, rows)
	},
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Print the study roadmap URL of the list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := catalog.Roadmap(listFlag())
		if url == "" {
			return fmt.Errorf("no roadmap for %q", listFlag())
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(roadmapCmd)
}
