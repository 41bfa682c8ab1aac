package cmd

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/app"
	"github.com/codetrack/codetrack/internal/store"
)

// runApp opens the store, redirects logging to a file and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logPath := cfg.LogFile
	if logPath == "" {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		logPath = filepath.Join(filepath.Dir(dbPath), "codetrack.log")
	}
	if err := store.EnsureDir(logPath); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFileWith(logPath, "codetrack:", logger)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	sess, err := openSession(cmd, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	return app.Run(cmd.Context(), app.Options{
		Tracker:  sess.tracker,
		Events:   sess.store.EventRepo(),
		List:     cfg.DefaultList,
		OpenList: cmd.Flags().Changed("list"),
	})
}
