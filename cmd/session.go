package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/tracker"
)

// session is an open database with a tracker loaded from it.
type session struct {
	store   *store.Store
	tracker *tracker.Tracker
}

// openSession opens the store and loads the tracker. Callers must Close it.
func openSession(cmd *cobra.Command, l *log.Logger) (*session, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	t := tracker.New(cmd.Context(), tracker.Options{
		Storage:      st.LocalStorage(),
		Snapshots:    st.SnapshotRepo(),
		Events:       st.EventRepo(),
		Sequencer:    st,
		Logger:       l,
		SnapshotKeep: cfg.SnapshotKeep,
	})
	return &session{store: st, tracker: t}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
