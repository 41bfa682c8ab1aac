// Package config loads codetrack settings from .env files and CODETRACK_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/remind"
	"github.com/codetrack/codetrack/internal/tracker"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath overrides the database location. Empty means the XDG default.
	DBPath string

	// DefaultList is the list used when --list is not given.
	DefaultList string

	// ReminderAt is the local "HH:MM" time of the daily review digest.
	ReminderAt string

	// Telegram delivery of the digest. Both must be set to enable it.
	TelegramToken  string
	TelegramChatID int64

	// SnapshotKeep is how many progress backups to retain.
	SnapshotKeep int

	// LogFile receives log output while the TUI owns the terminal.
	// Empty means codetrack.log next to the database.
	LogFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultList:  catalog.Blind75,
		ReminderAt:   "09:00",
		SnapshotKeep: tracker.DefaultSnapshotKeep,
	}
}

// DefaultEnvFiles returns the .env files Load reads, in priority order:
// ./.env, then $XDG_CONFIG_HOME/codetrack/.env (~/.config/codetrack/.env).
func DefaultEnvFiles() []string {
	files := []string{".env"}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		files = append(files, filepath.Join(configHome, "codetrack", ".env"))
	}
	return files
}

// Load reads the given .env files (DefaultEnvFiles when none are given) into
// the environment, then builds the Config from it. Missing files are skipped
// and variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles()
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CODETRACK_LIST"); v != "" {
		cfg.DefaultList = v
	}
	if v := os.Getenv("CODETRACK_REMIND_AT"); v != "" {
		cfg.ReminderAt = v
	}
	if v := os.Getenv("CODETRACK_TELEGRAM_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("CODETRACK_TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CODETRACK_TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if v := os.Getenv("CODETRACK_SNAPSHOT_KEEP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("CODETRACK_SNAPSHOT_KEEP: %w", err)
		}
		cfg.SnapshotKeep = n
	}
	if v := os.Getenv("CODETRACK_LOG"); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// TelegramEnabled reports whether Telegram delivery is configured.
func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Validate checks the configuration for values the program cannot use.
func (c Config) Validate() error {
	if !catalog.Has(c.DefaultList) {
		return fmt.Errorf("unknown default list %q (want one of %v)", c.DefaultList, catalog.Names())
	}
	if _, err := remind.ParseClock(c.ReminderAt); err != nil {
		return err
	}
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("CODETRACK_SNAPSHOT_KEEP must be at least 1, got %d", c.SnapshotKeep)
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		return fmt.Errorf("CODETRACK_TELEGRAM_TOKEN and CODETRACK_TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}
