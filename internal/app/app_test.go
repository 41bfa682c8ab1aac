package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/router"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/screens/stats"
	"github.com/codetrack/codetrack/internal/tracker"
)

func newTestModel(openList bool) AppModel {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	tr := tracker.New(context.Background(), tracker.Options{Now: func() time.Time { return now }})
	return newAppModel(Options{Tracker: tr, List: catalog.Blind75, OpenList: openList})
}

func TestOpenListStartsOnProblems(t *testing.T) {
	m := newTestModel(true)
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != catalog.Blind75 {
		t.Errorf("expected active %q, got %q", catalog.Blind75, got)
	}
}

func TestQuitAtRoot(t *testing.T) {
	m := newTestModel(false)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEscPops(t *testing.T) {
	m := newTestModel(true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg")
	}
}

func TestCapturingScreenGetsEsc(t *testing.T) {
	m := newTestModel(true)
	m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	capturer := m.router.Active().(screen.InputCapturer)
	if !capturer.CapturingInput() {
		t.Fatal("expected search to capture input")
	}

	// q is typed into the search box.
	m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if m.router.Depth() != 2 || !capturer.CapturingInput() {
		t.Fatal("q should not leave the search box")
	}

	// esc clears the search instead of popping.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command from esc while searching")
	}
	if capturer.CapturingInput() {
		t.Error("expected esc to leave the search box")
	}
	if m.router.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", m.router.Depth())
	}
}

func TestViewRendersHeader(t *testing.T) {
	m := newTestModel(false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

func TestShiftHReturnsToLists(t *testing.T) {
	m := newTestModel(true)
	m.router.Push(stats.New(m.tracker, catalog.Blind75))

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'H', Text: "H"})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatal("expected PopToRootMsg")
	}
	if got := m.router.Breadcrumb(" › "); got != "Lists › Blind 75 › Blind 75 Stats" {
		t.Errorf("unexpected breadcrumb %q", got)
	}
}
