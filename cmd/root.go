package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/config"
	"github.com/codetrack/codetrack/internal/store"
)

var (
	// cfg is loaded before any command runs.
	cfg = config.DefaultConfig()

	logger = log.New(os.Stderr, "codetrack: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "codetrack",
	Short: "Track LeetCode list progress with spaced-repetition reviews",
	Long: `codetrack tracks your progress through the Blind 75, LeetCode 75 and
NeetCode 150 lists. Mark a problem solved and it schedules five reviews
1, 3, 7, 14 and 30 days later.

Run without a subcommand to open the terminal UI.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODETRACK_DB env var)")
	rootCmd.PersistentFlags().StringP("list", "l", "", fmt.Sprintf("Problem list (%s)", strings.Join(catalog.Names(), ", ")))
}

// loadConfig reads .env files and CODETRACK_* variables, then applies flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if list, _ := cmd.Flags().GetString("list"); list != "" {
		loaded.DefaultList = list
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODETRACK_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
