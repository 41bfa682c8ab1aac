package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/transfer"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as JSON, XLSX or CSV",
	Long: `Export progress. JSON carries the whole store and can be imported
again. XLSX (one sheet per list) and CSV are reports with the review
schedule of every problem; --list limits them to one list.

The format defaults to the extension of --output, then json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = strings.TrimPrefix(filepath.Ext(output), ".")
		}
		if formatName == "" {
			formatName = string(transfer.FormatJSON)
		}
		format, err := transfer.ParseFormat(formatName)
		if err != nil {
			return err
		}

		lists := catalog.Names()
		if cmd.Flags().Changed("list") {
			lists = []string{listFlag()}
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		var w io.Writer = cmd.OutOrStdout()
		if output != "" && output != "-" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}
		if err := transfer.Export(w, format, sess.tracker.Snapshot(), lists, sess.tracker.Today()); err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		if output != "" && output != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s export to %s\n", format, output)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace progress with a JSON export (use - for stdin)",
	Long: `Replace all progress with a JSON document written by "codetrack export".
The current progress is backed up first; "codetrack restore" undoes the import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}
		s, err := transfer.ImportJSON(r)
		if err != nil {
			return err
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		sess.tracker.Replace(cmd.Context(), s)
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries across %d lists. Run `codetrack restore` to undo.\n",
			s.Len(), len(s.Lists()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "Export format: json, xlsx or csv")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
