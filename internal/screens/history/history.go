package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/ui/layout"
	"github.com/codetrack/codetrack/internal/ui/theme"
)

// Limit is how many recent events the screen loads.
const Limit = 200

type historyLoadedMsg struct {
	Events []store.ProgressEventRecord
	Err    error
}

// HistoryScreen lists recent progress changes, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.ProgressEventRecord
	selected  int
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.QueryProgressEvents(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
			s.selected = min(s.selected, max(0, len(s.events)-1))
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet. Solve a problem!")
	}

	rows := max(1, height-1)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}

	var b strings.Builder
	b.WriteString("\n")
	end := min(len(s.events), s.offset+rows)
	for i := s.offset; i < end; i++ {
		e := s.events[i]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(actionColor(e.Action))
		if i == s.selected {
			prefix = "> "
			style = style.Bold(true)
		}
		line := fmt.Sprintf("%s%s  %-9s %s",
			prefix, e.Timestamp.Local().Format("Jan 02 15:04"), e.Action, Describe(e.ProgressEventData))
		b.WriteString(style.Render(layout.Truncate(line, width-2)))
		b.WriteString("\n")
	}
	return b.String()
}

// Describe renders the subject of an event: the problem and slot for toggles,
// the detail for bulk changes.
func Describe(e store.ProgressEventData) string {
	if e.ProblemID == "" {
		return e.Detail
	}
	title := e.ProblemID
	if pr, err := catalog.Lookup(e.List, e.ProblemID); err == nil {
		title = pr.Title
	}
	out := fmt.Sprintf("%s · %s", e.List, title)
	if e.ReviewIndex >= 0 {
		out += fmt.Sprintf(" · R%d", e.ReviewIndex+1)
	}
	return out
}

func actionColor(action string) color.Color {
	switch action {
	case store.ActionSolve, store.ActionReview:
		return theme.Success
	case store.ActionUnsolve, store.ActionUnreview:
		return theme.TextDim
	case store.ActionClear:
		return theme.Error
	default:
		return theme.Accent
	}
}
