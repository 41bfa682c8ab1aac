package problems

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/router"
	"github.com/codetrack/codetrack/internal/screens/stats"
	"github.com/codetrack/codetrack/internal/tracker"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newScreen(t *testing.T) (*ProblemsScreen, *fixedClock) {
	t.Helper()
	c := &fixedClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)}
	tr := tracker.New(context.Background(), tracker.Options{Now: c.Now})
	return New(tr, catalog.Blind75), c
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *ProblemsScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestNew_ShowsWholeList(t *testing.T) {
	s, _ := newScreen(t)
	assert.Len(t, s.rows, 75)
	pr, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "two-sum", pr.ID)
	assert.Equal(t, catalog.Blind75, s.Title())
}

func TestSpaceTogglesSolved(t *testing.T) {
	s, _ := newScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	pp := s.tracker.Progress(catalog.Blind75, "two-sum")
	assert.True(t, pp.Solved)
	assert.Equal(t, "2024-01-01", pp.SolvedDate.String())
	assert.Contains(t, s.status, "First review 2024-01-02")
	assert.False(t, s.statusErr)

	s.Update(keyPress('x'))
	assert.False(t, s.tracker.Progress(catalog.Blind75, "two-sum").Solved)
	assert.Contains(t, s.status, "unsolved")
}

func TestReviewKeys(t *testing.T) {
	s, c := newScreen(t)

	s.Update(keyPress('2'))
	assert.True(t, s.statusErr)
	assert.Contains(t, s.status, "solve Two Sum before logging reviews")

	s.Update(keyPress('x'))
	c.t = c.t.AddDate(0, 0, 3)
	s.Update(keyPress('2'))
	pp := s.tracker.Progress(catalog.Blind75, "two-sum")
	assert.True(t, pp.Reviews[1])
	assert.Equal(t, "2024-01-04", pp.Dates["review2"].String())
	assert.Equal(t, "Two Sum R2 done.", s.status)

	s.Update(keyPress('2'))
	assert.False(t, s.tracker.Progress(catalog.Blind75, "two-sum").Reviews[1])
	assert.Equal(t, "Two Sum R2 cleared.", s.status)
}

func TestNavigation(t *testing.T) {
	s, _ := newScreen(t)
	s.View(120, 30)

	s.Update(keyPress('j'))
	pr, _ := s.Selected()
	assert.Equal(t, "best-time-to-buy-and-sell-stock", pr.ID)

	s.Update(keyPress('k'))
	s.Update(keyPress('k'))
	assert.Equal(t, 0, s.cursor)

	s.Update(keyPress('G'))
	assert.Equal(t, 74, s.cursor)
	assert.GreaterOrEqual(t, s.cursor, s.offset)
	assert.Less(t, s.cursor, s.offset+s.height)

	s.Update(keyPress('g'))
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, 0, s.offset)
}

func TestDifficultyFilterCycles(t *testing.T) {
	s, _ := newScreen(t)

	s.Update(keyPress('d'))
	assert.Equal(t, catalog.Easy, s.filter.Difficulty)
	require.NotEmpty(t, s.rows)
	for _, pr := range s.rows {
		assert.Equal(t, catalog.Easy, pr.Difficulty)
	}

	s.Update(keyPress('d'))
	s.Update(keyPress('d'))
	s.Update(keyPress('d'))
	assert.Equal(t, catalog.Difficulty("All"), s.filter.Difficulty)
	assert.Len(t, s.rows, 75)
}

func TestCategoryFilter(t *testing.T) {
	s, _ := newScreen(t)
	s.Update(keyPress('c'))
	assert.Equal(t, "Array", s.filter.Category)
	for _, pr := range s.rows {
		assert.True(t, pr.HasTopic("Array"), pr.ID)
	}

	s.Update(keyPress('r'))
	assert.Equal(t, "All", s.filter.Category)
	assert.Len(t, s.rows, 75)
}

func TestDueOnlyFilter(t *testing.T) {
	s, c := newScreen(t)
	s.Update(keyPress('x'))
	c.t = c.t.AddDate(0, 0, 1)

	s.Update(keyPress('u'))
	require.Len(t, s.rows, 1)
	assert.Equal(t, "two-sum", s.rows[0].ID)

	// Completing the due review drops the row.
	s.Update(keyPress('1'))
	assert.Empty(t, s.rows)
	assert.Contains(t, ansi.Strip(s.View(120, 30)), "No problems match")
}

func TestSearch(t *testing.T) {
	s, _ := newScreen(t)

	s.Update(keyPress('/'))
	assert.True(t, s.CapturingInput())
	typeText(s, "two sum")
	require.Len(t, s.rows, 1)
	assert.Equal(t, "two-sum", s.rows[0].ID)

	// Keys go to the input while searching.
	s.Update(keyPress('x'))
	assert.False(t, s.tracker.Progress(catalog.Blind75, "two-sum").Solved)

	s.Update(specialKey(tea.KeyEnter))
	assert.False(t, s.CapturingInput())
	assert.Empty(t, s.rows)

	s.Update(keyPress('/'))
	s.Update(specialKey(tea.KeyEscape))
	assert.False(t, s.CapturingInput())
	assert.Equal(t, "", s.filter.Search)
	assert.Len(t, s.rows, 75)
}

func TestListAndStatsNavigation(t *testing.T) {
	s, _ := newScreen(t)

	_, cmd := s.Update(keyPress('l'))
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, catalog.LeetCode75, replace.Screen.Title())

	_, cmd = s.Update(keyPress('s'))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &stats.StatsScreen{}, push.Screen)
}

func TestView(t *testing.T) {
	s, c := newScreen(t)
	s.Update(keyPress('x'))
	c.t = c.t.AddDate(0, 0, 2)

	view := ansi.Strip(s.View(120, 40))
	assert.Contains(t, view, "Two Sum")
	assert.Contains(t, view, "1/75 solved")
	assert.Contains(t, view, "1 due")
	assert.Contains(t, view, "R1 1d late")
	assert.Contains(t, view, "https://leetcode.com/problems/two-sum/")
	assert.Contains(t, view, "Solved 2024-01-01")
	assert.Contains(t, view, "Reviews  Next")
	assert.NotContains(t, view, "(r to reset)")
}

func TestFilterBarShowsReset(t *testing.T) {
	s, _ := newScreen(t)
	s.Update(keyPress('d'))
	view := ansi.Strip(s.View(120, 30))
	assert.Contains(t, view, "Difficulty: Easy")
	assert.Contains(t, view, "(r to reset)")

	s.Update(keyPress('r'))
	assert.NotContains(t, ansi.Strip(s.View(120, 30)), "(r to reset)")
}
