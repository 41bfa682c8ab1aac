package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/transfer"
)

// resetFlags restores every flag to its default so commands can run more than
// once per process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type env struct {
	t  *testing.T
	db string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"CODETRACK_DB", "CODETRACK_LIST", "CODETRACK_REMIND_AT",
		"CODETRACK_TELEGRAM_TOKEN", "CODETRACK_TELEGRAM_CHAT_ID", "CODETRACK_SNAPSHOT_KEEP", "CODETRACK_LOG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return &env{t: t, db: filepath.Join(dir, "data", "codetrack.db")}
}

func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--db", e.db}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	assert.Contains(t, e.mustRun("version"), "codetrack (devel)")
}

func TestRoadmap(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, "https://neetcode.io/roadmap\n", e.mustRun("--list", "NeetCode 150", "roadmap"))

	_, err := e.run("--list", "Grind 169", "roadmap")
	assert.ErrorContains(t, err, "unknown default list")
}

func TestSolveAndReview(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun("solve", "two-sum")
	assert.Contains(t, out, "Two Sum solved on")
	assert.Contains(t, out, "R5")

	out = e.mustRun("review", "two-sum", "1")
	assert.Contains(t, out, "Two Sum R1 done on")

	out = e.mustRun("problems", "--search", "two sum")
	assert.Contains(t, out, "two-sum")
	assert.Contains(t, out, "✓ ●○○○○")
	assert.Contains(t, out, "1 problems")

	out = e.mustRun("lists")
	assert.Contains(t, out, "1/75 (1%)")
	assert.Contains(t, out, "0/150 (0%)")

	out = e.mustRun("solve", "two-sum")
	assert.Contains(t, out, "Two Sum marked unsolved.")
}

func TestReview_Errors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("review", "two-sum", "1")
	assert.ErrorContains(t, err, "not solved yet")

	_, err = e.run("review", "two-sum", "6")
	assert.ErrorContains(t, err, "review number must be 1-5")

	_, err = e.run("solve", "trapping-rain-water")
	assert.ErrorContains(t, err, "unknown problem")

	// trapping-rain-water is part of NeetCode 150.
	e.mustRun("--list", "NeetCode 150", "solve", "trapping-rain-water")
}

func TestProblems_Filters(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun("problems", "--difficulty", "hard", "--category", "Heap")
	assert.Contains(t, out, "merge-k-sorted-lists")
	assert.NotContains(t, out, "two-sum")

	out = e.mustRun("problems", "--due")
	assert.Equal(t, "No problems match.\n", out)

	assert.Contains(t, e.mustRun("problems"), "75 problems")
	assert.Contains(t, e.mustRun("problems", "--category", "All"), "75 problems")

	_, err := e.run("problems", "--category", "Astrology")
	assert.ErrorContains(t, err, "unknown category")

	_, err = e.run("problems", "--difficulty", "brutal")
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestDueAndStats(t *testing.T) {
	e := newEnv(t)
	e.mustRun("solve", "two-sum")

	// The first review is tomorrow.
	assert.Contains(t, e.mustRun("due"), "no reviews due")
	assert.Contains(t, e.mustRun("remind", "--once"), "no reviews due")

	out := e.mustRun("stats")
	assert.Contains(t, out, "Blind 75")
	assert.Contains(t, out, "1/75")
	assert.Contains(t, out, "Due today: 0")
}

func TestExportImportRoundTrip(t *testing.T) {
	e := newEnv(t)
	e.mustRun("solve", "two-sum")
	e.mustRun("--list", "LeetCode 75", "solve", "merge-strings-alternately")

	path := filepath.Join(t.TempDir(), "progress.json")
	e.mustRun("export", "-o", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	exported, err := transfer.ImportJSON(f)
	f.Close()
	require.NoError(t, err)
	assert.True(t, exported.Get("Blind 75", "two-sum").Solved)

	e.mustRun("reset", "--yes")
	assert.Contains(t, e.mustRun("lists"), "0/75")

	out := e.mustRun("import", path)
	assert.Contains(t, out, "Imported 2 entries")
	assert.Contains(t, e.mustRun("lists"), "1/75")
}

func TestExport_Formats(t *testing.T) {
	e := newEnv(t)
	e.mustRun("solve", "two-sum")

	out := e.mustRun("export", "--format", "csv", "--list", "Blind 75")
	assert.Contains(t, out, "List,ID,Title")
	assert.Contains(t, out, "Blind 75,two-sum,Two Sum")

	xlsx := filepath.Join(t.TempDir(), "progress.xlsx")
	e.mustRun("export", "-o", xlsx)
	info, err := os.Stat(xlsx)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = e.run("export", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestImport_InvalidShape(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Blind 75": {"two-sum": {"solved": "yes"}}}`), 0o644))

	_, err := e.run("import", path)
	assert.ErrorIs(t, err, transfer.ErrInvalidShape)
}

func TestResetAndRestore(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("restore")
	assert.ErrorContains(t, err, "nothing to restore")

	e.mustRun("solve", "two-sum")

	_, err = e.run("reset")
	assert.ErrorContains(t, err, "--yes")

	e.mustRun("reset", "--yes")
	assert.Contains(t, e.mustRun("lists"), "0/75")

	out := e.mustRun("restore")
	assert.Contains(t, out, "taken before clear")
	assert.Contains(t, e.mustRun("lists"), "1/75")
}

func TestBackupsAndRestoreByID(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, "No backups yet.\n", e.mustRun("backups"))

	e.mustRun("solve", "two-sum")
	e.mustRun("reset", "--yes")
	e.mustRun("solve", "3sum")
	e.mustRun("reset", "--yes")

	st, err := store.Open(e.db)
	require.NoError(t, err)
	snaps, err := st.SnapshotRepo().List(context.Background(), 0)
	st.Close()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	older := snaps[1]
	assert.Equal(t, int64(1), older.Sequence)

	out := e.mustRun("backups")
	assert.Contains(t, out, older.ID)
	assert.Contains(t, out, "clear")

	out = e.mustRun("restore", older.ID)
	assert.Contains(t, out, "taken before clear")
	out = e.mustRun("problems", "--search", "sum")
	assert.Contains(t, out, "✓")
	assert.NotContains(t, e.mustRun("problems", "--search", "3sum"), "✓")

	_, err = e.run("restore", "no-such-backup")
	assert.ErrorContains(t, err, "no backup with id")
}

func TestHistory(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, "Nothing recorded yet.\n", e.mustRun("history"))

	e.mustRun("solve", "two-sum")
	e.mustRun("review", "two-sum", "2")

	out := e.mustRun("history", "--limit", "5")
	assert.Contains(t, out, "Blind 75 · Two Sum · R2")
	assert.Contains(t, out, "solve")

	_, err := e.run("history", "--limit", "0")
	assert.Error(t, err)
}

func TestReviewMarksAndNext(t *testing.T) {
	assert.Equal(t, "-", reviewMarks(progress.DefaultProgress()))
	assert.Equal(t, "", nextReview(progress.DefaultProgress(), civilDate(t, "2024-01-01")))

	pp := progress.ProblemProgress{Solved: true, SolvedDate: civilDate(t, "2024-01-01")}
	pp.Reviews[0] = true
	assert.Equal(t, "✓ ●○○○○", reviewMarks(pp))
	assert.Equal(t, "R2 on 2024-01-04", nextReview(pp, civilDate(t, "2024-01-02")))
	assert.Equal(t, "R2 due today", nextReview(pp, civilDate(t, "2024-01-04")))
	assert.Equal(t, "R2 due (2d late)", nextReview(pp, civilDate(t, "2024-01-06")))

	pp.Reviews = [progress.ReviewCount]bool{true, true, true, true, true}
	assert.Equal(t, "done", nextReview(pp, civilDate(t, "2024-03-01")))
}

func civilDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}
