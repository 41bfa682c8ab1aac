package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/store"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func newClock() *clock {
	return &clock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)}
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTracker(t *testing.T, st *store.Store, c *clock) (*Tracker, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	tr := New(context.Background(), Options{
		Storage:   st.LocalStorage(),
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Sequencer: st,
		Logger:    log.New(&buf, "", 0),
		Now:       c.Now,
	})
	return tr, &buf
}

// failingStorage fails every call.
type failingStorage struct{ value string }

func (f *failingStorage) GetItem(context.Context, string) (string, error) {
	if f.value != "" {
		return f.value, nil
	}
	return "", errors.New("disk on fire")
}

func (f *failingStorage) SetItem(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestNew_EmptyStorage(t *testing.T) {
	tr, logs := newTracker(t, openStore(t), newClock())
	assert.Equal(t, []string{catalog.Blind75, catalog.LeetCode75, catalog.NeetCode150}, tr.Snapshot().Lists())
	assert.Zero(t, tr.Snapshot().Len())
	assert.Empty(t, logs.String())
}

func TestNew_ReadFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	tr := New(context.Background(), Options{Storage: &failingStorage{}, Logger: log.New(&buf, "", 0)})
	assert.Equal(t, 3, len(tr.Snapshot().Lists()))
	assert.Contains(t, buf.String(), "warning: failed to load progress")
}

func TestNew_CorruptDataFallsBack(t *testing.T) {
	var buf bytes.Buffer
	tr := New(context.Background(), Options{Storage: &failingStorage{value: "{not json"}, Logger: log.New(&buf, "", 0)})
	assert.Zero(t, tr.Snapshot().Len())
	assert.Contains(t, buf.String(), "corrupt")
}

func TestToggleSolved_PersistsAndReloads(t *testing.T) {
	st := openStore(t)
	c := newClock()
	tr, _ := newTracker(t, st, c)
	ctx := context.Background()

	pp, err := tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)
	assert.True(t, pp.Solved)
	assert.Equal(t, "2024-01-01", pp.SolvedDate.String())

	raw, err := st.LocalStorage().GetItem(ctx, progress.StorageKey)
	require.NoError(t, err)
	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Contains(t, doc[catalog.Blind75], "two-sum")

	reloaded, _ := newTracker(t, st, c)
	assert.True(t, reloaded.Progress(catalog.Blind75, "two-sum").Solved)
}

func TestToggleSolved_UnknownProblem(t *testing.T) {
	tr, _ := newTracker(t, openStore(t), newClock())
	_, err := tr.ToggleSolved(context.Background(), catalog.Blind75, "not-a-problem")
	assert.ErrorIs(t, err, catalog.ErrUnknownProblem)
	_, err = tr.ToggleSolved(context.Background(), "Nope", "two-sum")
	assert.ErrorIs(t, err, catalog.ErrUnknownList)
}

func TestToggleReview(t *testing.T) {
	c := newClock()
	tr, _ := newTracker(t, openStore(t), c)
	ctx := context.Background()

	_, err := tr.ToggleReview(ctx, catalog.Blind75, "two-sum", 0)
	assert.ErrorIs(t, err, ErrNotSolved)

	_, err = tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)
	c.advance(1)

	pp, err := tr.ToggleReview(ctx, catalog.Blind75, "two-sum", 0)
	require.NoError(t, err)
	assert.True(t, pp.Reviews[0])
	assert.Equal(t, "2024-01-02", pp.Dates["review1"].String())

	_, err = tr.ToggleReview(ctx, catalog.Blind75, "two-sum", 5)
	assert.ErrorIs(t, err, progress.ErrReviewIndex)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	var buf bytes.Buffer
	tr := New(context.Background(), Options{
		Storage: &failingStorage{value: "{}"},
		Logger:  log.New(&buf, "", 0),
		Now:     newClock().Now,
	})

	_, err := tr.ToggleSolved(context.Background(), catalog.NeetCode150, "trapping-rain-water")
	require.NoError(t, err)
	assert.True(t, tr.Progress(catalog.NeetCode150, "trapping-rain-water").Solved)
	assert.Contains(t, buf.String(), "warning: failed to save progress")
}

func TestEventsRecorded(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	_, err := tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)
	_, err = tr.ToggleReview(ctx, catalog.Blind75, "two-sum", 2)
	require.NoError(t, err)
	_, err = tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)

	events, err := st.EventRepo().QueryProgressEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, store.ActionUnsolve, events[0].Action)
	assert.Equal(t, store.ActionReview, events[1].Action)
	assert.Equal(t, 2, events[1].ReviewIndex)
	assert.Equal(t, store.ActionSolve, events[2].Action)
	assert.Equal(t, "2024-01-01", events[2].Date)
}

func TestClearAndRestore(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	_, err := tr.Restore(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)

	tr.Clear(ctx)
	assert.False(t, tr.Progress(catalog.Blind75, "two-sum").Solved)

	snap, err := tr.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.ActionClear, snap.Reason)
	assert.True(t, tr.Progress(catalog.Blind75, "two-sum").Solved)

	// Restoring again undoes the restore.
	_, err = tr.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, tr.Progress(catalog.Blind75, "two-sum").Solved)
}

func TestBackupsCarrySequence(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	_, err := tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)
	tr.Clear(ctx)

	backups, err := tr.Backups(ctx, 0)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, int64(1), backups[0].Sequence, "taken after the solve event")
	assert.Nil(t, backups[0].Data)

	seq, err := st.Sequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq, "clear event follows the backup")
}

func TestRestoreBackupByID(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	_, err := tr.ToggleSolved(ctx, catalog.Blind75, "two-sum")
	require.NoError(t, err)
	tr.Clear(ctx) // backup A: two-sum solved
	_, err = tr.ToggleSolved(ctx, catalog.Blind75, "3sum")
	require.NoError(t, err)
	tr.Clear(ctx) // backup B: 3sum solved

	backups, err := tr.Backups(ctx, 0)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	older := backups[1]

	snap, err := tr.RestoreBackup(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.ID, snap.ID)
	assert.True(t, tr.Progress(catalog.Blind75, "two-sum").Solved)
	assert.False(t, tr.Progress(catalog.Blind75, "3sum").Solved)

	_, err = tr.RestoreBackup(ctx, "no-such-backup")
	assert.ErrorIs(t, err, store.ErrNotFound)

	noRepo := New(ctx, Options{Now: newClock().Now})
	_, err = noRepo.RestoreBackup(ctx, older.ID)
	assert.ErrorIs(t, err, ErrNoSnapshot)
	none, err := noRepo.Backups(ctx, 0)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestConcurrentWritesPersistLatest(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	ids := []string{"two-sum", "3sum", "valid-anagram", "group-anagrams", "top-k-frequent-elements", "merge-k-sorted-lists"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := tr.ToggleSolved(ctx, catalog.Blind75, id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	want, err := json.Marshal(tr.Snapshot())
	require.NoError(t, err)
	got, err := st.LocalStorage().GetItem(ctx, progress.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), got)
	assert.Equal(t, len(ids), tr.Stats(catalog.Blind75).Solved)
}

func TestReplaceKeepsUnknownLists(t *testing.T) {
	st := openStore(t)
	tr, _ := newTracker(t, st, newClock())
	ctx := context.Background()

	imported, _, err := progress.DecodeStore([]byte(`{"Custom": {"x": {"solved": true, "solvedDate": "2023-12-01", "reviews": [false,false,false,false,false], "dates": {"initial": "2023-12-01"}}}}`))
	require.NoError(t, err)
	tr.Replace(ctx, imported)

	snap := tr.Snapshot()
	assert.True(t, snap.Get("Custom", "x").Solved)
	assert.Contains(t, snap.Lists(), catalog.Blind75)

	backups, err := st.SnapshotRepo().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, store.ActionImport, backups[0].Reason)

	reloaded, _ := newTracker(t, st, newClock())
	assert.True(t, reloaded.Progress("Custom", "x").Solved)
}

func TestSnapshotIsImmutable(t *testing.T) {
	tr, _ := newTracker(t, openStore(t), newClock())
	before := tr.Snapshot()
	_, err := tr.ToggleSolved(context.Background(), catalog.Blind75, "two-sum")
	require.NoError(t, err)
	assert.NotContains(t, before.List(catalog.Blind75), "two-sum")
}

func TestStatsAndDue(t *testing.T) {
	c := newClock()
	tr, _ := newTracker(t, openStore(t), c)
	ctx := context.Background()

	for _, id := range []string{"two-sum", "3sum", "merge-k-sorted-lists"} {
		_, err := tr.ToggleSolved(ctx, catalog.Blind75, id)
		require.NoError(t, err, id)
	}
	c.advance(3)
	_, err := tr.ToggleSolved(ctx, catalog.Blind75, "valid-anagram")
	require.NoError(t, err)
	c.advance(5) // 2024-01-09

	st := tr.Stats(catalog.Blind75)
	assert.Equal(t, 75, st.Total)
	assert.Equal(t, 4, st.Solved)
	assert.Equal(t, 2, st.Easy)
	assert.Equal(t, 1, st.Medium)
	assert.Equal(t, 1, st.Hard)
	assert.Equal(t, 4, st.DueToday)

	due := tr.DueProblems(catalog.Blind75)
	require.Len(t, due, 4)
	assert.Equal(t, "two-sum", due[0].Problem.ID)
	assert.Equal(t, []int{0, 1, 2}, due[0].Slots)
	assert.Equal(t, 7, due[0].Overdue)
	assert.Equal(t, "valid-anagram", due[3].Problem.ID)
	assert.Equal(t, 4, due[3].Overdue)

	dueOnly := tr.Problems(catalog.Blind75, progress.Filter{DueOnly: true, Difficulty: catalog.Easy})
	require.Len(t, dueOnly, 2)
}
