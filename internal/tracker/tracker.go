// Package tracker owns the live progress store. It is the single mutation
// entry point: every change produces a new immutable snapshot which is then
// persisted and recorded in the activity log.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/store"
)

// ErrNotSolved is returned when reviewing a problem that is not solved.
var ErrNotSolved = errors.New("problem is not solved")

// ErrNoSnapshot is returned by Restore when there is no backup to restore.
var ErrNoSnapshot = errors.New("no snapshot to restore")

// DefaultSnapshotKeep is the number of backups kept when Options.SnapshotKeep is 0.
const DefaultSnapshotKeep = 10

// Options configures a Tracker. Every repo is optional; a nil repo turns the
// corresponding side effect off.
type Options struct {
	Storage      store.LocalStorage
	Snapshots    store.SnapshotRepo
	Events       store.EventRepo
	Sequencer    store.Sequencer // stamps backups with the last event sequence
	Logger       *log.Logger
	Now          func() time.Time
	Lists        []string // list names always present; defaults to catalog.Names()
	SnapshotKeep int
}

// Tracker holds the current progress snapshot. Readers take mu; writers
// also hold writeMu until the change is persisted, so the stored copy never
// lags behind an older snapshot.
type Tracker struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	state   progress.Store

	storage   store.LocalStorage
	snapshots store.SnapshotRepo
	events    store.EventRepo
	seq       store.Sequencer
	logger    *log.Logger
	now       func() time.Time
	lists     []string
	keep      int
}

// New creates a tracker and loads persisted progress. Load failures never
// propagate: they are logged and the tracker starts from an empty store.
func New(ctx context.Context, opts Options) *Tracker {
	t := &Tracker{
		storage:   opts.Storage,
		snapshots: opts.Snapshots,
		events:    opts.Events,
		seq:       opts.Sequencer,
		logger:    opts.Logger,
		now:       opts.Now,
		lists:     opts.Lists,
		keep:      opts.SnapshotKeep,
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard, "", 0)
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.lists == nil {
		t.lists = catalog.Names()
	}
	if t.keep <= 0 {
		t.keep = DefaultSnapshotKeep
	}
	t.state = t.load(ctx)
	return t
}

func (t *Tracker) load(ctx context.Context) progress.Store {
	empty := progress.DefaultStore(t.lists)
	if t.storage == nil {
		return empty
	}

	raw, err := t.storage.GetItem(ctx, progress.StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return empty
	}
	if err != nil {
		t.logger.Printf("warning: failed to load progress: %v", err)
		return empty
	}

	s, skipped, err := progress.DecodeStore([]byte(raw))
	if err != nil {
		t.logger.Printf("warning: stored progress is corrupt, starting empty: %v", err)
		return empty
	}
	for _, key := range skipped {
		t.logger.Printf("warning: reset malformed progress entry %s", key)
	}
	return s.WithLists(t.lists)
}

// Today returns the current local calendar date.
func (t *Tracker) Today() civil.Date {
	return progress.Today(t.now())
}

// Snapshot returns the current immutable store.
func (t *Tracker) Snapshot() progress.Store {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Progress returns the progress of one problem.
func (t *Tracker) Progress(list, id string) progress.ProblemProgress {
	return t.Snapshot().Get(list, id)
}

// ToggleSolved flips the solved flag of a catalog problem and returns its new
// progress.
func (t *Tracker) ToggleSolved(ctx context.Context, list, id string) (progress.ProblemProgress, error) {
	if _, err := catalog.Lookup(list, id); err != nil {
		return progress.ProblemProgress{}, err
	}
	today := t.Today()

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	t.mu.Lock()
	t.state = progress.ToggleSolved(t.state, list, id, today)
	next := t.state
	t.mu.Unlock()

	pp := next.Get(list, id)
	action := store.ActionSolve
	if !pp.Solved {
		action = store.ActionUnsolve
	}
	t.commit(ctx, next, store.ProgressEventData{
		Action:      action,
		List:        list,
		ProblemID:   id,
		ReviewIndex: -1,
		Date:        today.String(),
	})
	return pp, nil
}

// ToggleReview flips review slot idx (0-based) of a solved catalog problem.
func (t *Tracker) ToggleReview(ctx context.Context, list, id string, idx int) (progress.ProblemProgress, error) {
	if _, err := catalog.Lookup(list, id); err != nil {
		return progress.ProblemProgress{}, err
	}
	today := t.Today()

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	t.mu.Lock()
	if !t.state.Get(list, id).Solved {
		t.mu.Unlock()
		return progress.ProblemProgress{}, fmt.Errorf("review %s: %w", id, ErrNotSolved)
	}
	next, err := progress.ToggleReview(t.state, list, id, idx, today)
	if err != nil {
		t.mu.Unlock()
		return progress.ProblemProgress{}, err
	}
	t.state = next
	t.mu.Unlock()

	pp := next.Get(list, id)
	action := store.ActionReview
	if !pp.Reviews[idx] {
		action = store.ActionUnreview
	}
	t.commit(ctx, next, store.ProgressEventData{
		Action:      action,
		List:        list,
		ProblemID:   id,
		ReviewIndex: idx,
		Date:        today.String(),
	})
	return pp, nil
}

// Replace swaps in an imported store. The previous store is backed up first.
func (t *Tracker) Replace(ctx context.Context, s progress.Store) {
	t.bulk(ctx, s.WithLists(t.lists), store.ActionImport,
		fmt.Sprintf("%d lists, %d entries", len(s.Lists()), s.Len()))
}

// Clear resets all progress. The previous store is backed up first.
func (t *Tracker) Clear(ctx context.Context) {
	t.bulk(ctx, progress.DefaultStore(t.lists), store.ActionClear, "")
}

// Backups lists stored backups newest first, without their data. A limit of
// 0 lists all of them.
func (t *Tracker) Backups(ctx context.Context, limit int) ([]store.Snapshot, error) {
	if t.snapshots == nil {
		return nil, nil
	}
	snaps, err := t.snapshots.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	return snaps, nil
}

// Restore brings back the most recent backup. The store being replaced is
// itself backed up, so a restore can be undone by restoring again.
func (t *Tracker) Restore(ctx context.Context) (*store.Snapshot, error) {
	if t.snapshots == nil {
		return nil, ErrNoSnapshot
	}
	snap, err := t.snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return t.restore(ctx, snap)
}

// RestoreBackup brings back the backup with the given id. Unknown ids return
// an error wrapping store.ErrNotFound.
func (t *Tracker) RestoreBackup(ctx context.Context, id string) (*store.Snapshot, error) {
	if t.snapshots == nil {
		return nil, ErrNoSnapshot
	}
	snap, err := t.snapshots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return t.restore(ctx, snap)
}

func (t *Tracker) restore(ctx context.Context, snap *store.Snapshot) (*store.Snapshot, error) {
	s, skipped, err := progress.DecodeStore(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	for _, key := range skipped {
		t.logger.Printf("warning: reset malformed progress entry %s", key)
	}
	t.bulk(ctx, s.WithLists(t.lists), store.ActionRestore, snap.ID)
	return snap, nil
}

func (t *Tracker) bulk(ctx context.Context, next progress.Store, action, detail string) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	t.mu.Lock()
	prev := t.state
	t.state = next
	t.mu.Unlock()

	t.backup(ctx, prev, action)
	t.commit(ctx, next, store.ProgressEventData{
		Action:      action,
		ReviewIndex: -1,
		Date:        t.Today().String(),
		Detail:      detail,
	})
}

func (t *Tracker) backup(ctx context.Context, s progress.Store, reason string) {
	if t.snapshots == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.logger.Printf("warning: failed to encode backup: %v", err)
		return
	}
	snap := &store.Snapshot{Reason: reason, Data: data}
	if t.seq != nil {
		if n, err := t.seq.Sequence(ctx); err != nil {
			t.logger.Printf("warning: failed to read event sequence: %v", err)
		} else {
			snap.Sequence = n
		}
	}
	if err := t.snapshots.Save(ctx, snap); err != nil {
		t.logger.Printf("warning: failed to save backup: %v", err)
		return
	}
	if err := t.snapshots.Prune(ctx, t.keep); err != nil {
		t.logger.Printf("warning: failed to prune backups: %v", err)
	}
}

// commit persists s and records the event. Failures are logged and not
// retried; the in-memory store stays authoritative.
func (t *Tracker) commit(ctx context.Context, s progress.Store, ev store.ProgressEventData) {
	if t.storage != nil {
		data, err := json.Marshal(s)
		if err != nil {
			t.logger.Printf("warning: failed to encode progress: %v", err)
		} else if err := t.storage.SetItem(ctx, progress.StorageKey, string(data)); err != nil {
			t.logger.Printf("warning: failed to save progress: %v", err)
		}
	}
	if t.events != nil {
		if err := t.events.AppendProgressEvent(ctx, ev); err != nil {
			t.logger.Printf("warning: failed to record %s event: %v", ev.Action, err)
		}
	}
}
