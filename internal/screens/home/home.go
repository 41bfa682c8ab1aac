package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/router"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/screens/history"
	"github.com/codetrack/codetrack/internal/screens/problems"
	"github.com/codetrack/codetrack/internal/store"
	"github.com/codetrack/codetrack/internal/tracker"
	"github.com/codetrack/codetrack/internal/ui/components"
	"github.com/codetrack/codetrack/internal/ui/layout"
	"github.com/codetrack/codetrack/internal/ui/theme"
)

// dueShown caps the due preview under the menu.
const dueShown = 5

// HomeScreen picks a list and previews what is due.
type HomeScreen struct {
	tracker   *tracker.Tracker
	eventRepo store.EventRepo
	lists     []string
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen with selected preselected when it is a list.
func New(t *tracker.Tracker, eventRepo store.EventRepo, selected string) *HomeScreen {
	h := &HomeScreen{tracker: t, eventRepo: eventRepo}
	for _, name := range t.Lists() {
		if catalog.Has(name) {
			h.lists = append(h.lists, name)
		}
	}
	h.buildMenu()
	for i, name := range h.lists {
		if name == selected {
			h.menu.Selected = i
		}
	}
	return h
}

// buildMenu refreshes the per-list badges, keeping the selection.
func (h *HomeScreen) buildMenu() {
	var items []components.MenuItem
	for _, name := range h.lists {
		st := h.tracker.Stats(name)
		detail := fmt.Sprintf("%d/%d solved", st.Solved, st.Total)
		if st.DueToday > 0 {
			detail += fmt.Sprintf(" · %d due", st.DueToday)
		}
		items = append(items, components.MenuItem{
			Label:  name,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: problems.New(h.tracker, name)}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "History",
			Disabled: h.eventRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(h.eventRepo)}
				}
			},
		},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		h.menu.Selected = selected
	}
}

// SelectedList returns the list under the cursor, or "" on other items.
func (h *HomeScreen) SelectedList() string {
	if h.menu.Selected < len(h.lists) {
		return h.lists[h.menu.Selected]
	}
	return ""
}

func (h *HomeScreen) Init() tea.Cmd {
	h.buildMenu()
	return nil
}

func (h *HomeScreen) Title() string {
	return "Lists"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 80)

	var sections []string
	sections = append(sections, theme.Title.Render("Pick a list"), h.menu.View())

	if list := h.SelectedList(); list != "" {
		sections = append(sections, h.renderListPreview(list, cw))
	}

	block := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (h *HomeScreen) renderListPreview(list string, cw int) string {
	st := h.tracker.Stats(list)
	var lines []string
	lines = append(lines, components.NewProgressBar("Solved", st.Solved, st.Total, cw-4).View())
	if url := catalog.Roadmap(list); url != "" {
		lines = append(lines, theme.Subtitle.Render("Roadmap ")+theme.Link.Render(url))
	}

	due := h.tracker.DueProblems(list)
	if len(due) == 0 {
		lines = append(lines, "", theme.Hint.Render("No reviews due today."))
	} else {
		lines = append(lines, "", theme.Due.Render(fmt.Sprintf("Due today (%d)", len(due))))
		for i, item := range due {
			if i == dueShown {
				lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("  … and %d more", len(due)-dueShown)))
				break
			}
			line := fmt.Sprintf("  %s  %s", layout.Truncate(item.Problem.Title, cw-28), theme.Difficulty(item.Problem.Difficulty))
			if item.Overdue > 0 {
				line += theme.Subtitle.Render(fmt.Sprintf("  %dd late", item.Overdue))
			}
			lines = append(lines, line)
		}
	}
	return theme.Card.Width(cw).Render(strings.Join(lines, "\n"))
}
