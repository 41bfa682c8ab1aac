package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/router"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/screens/home"
	"github.com/codetrack/codetrack/internal/screens/problems"
	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/tracker"
	"github.com/codetrack/codetrack/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Tracker *tracker.Tracker
	Events  store.EventRepo // optional; enables the history screen

	// List is preselected on the home screen.
	List string
	// OpenList starts on List's problem table instead of the home screen.
	OpenList bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *tracker.Tracker
	width   int
	height  int
}

// newAppModel creates the model with the home screen at the bottom of the
// stack.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Tracker, opts.Events, opts.List))
	if opts.OpenList && catalog.Has(opts.List) {
		r.Push(problems.New(opts.Tracker, opts.List))
	}
	return AppModel{
		router:  r,
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
			break
		}
		switch msg.String() {
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "q":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, tea.Quit
		case "H":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// headerInfo sums the due problems of every list for the header.
func (m AppModel) headerInfo() layout.HeaderInfo {
	info := layout.HeaderInfo{Today: m.tracker.Today().String()}
	for _, list := range m.tracker.Lists() {
		info.Due += m.tracker.Stats(list).DueToday
	}
	return info
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := m.router.Breadcrumb(" › ")
	if lipgloss.Width(title) > m.width/2 && active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerInfo(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Tracker == nil {
		return fmt.Errorf("app: tracker is required")
	}
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
