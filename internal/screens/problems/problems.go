// Package problems is the per-list problem table: filtering, search and the
// solved/review toggles.
package problems

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/router"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/screens/stats"
	"github.com/codetrack/codetrack/internal/tracker"
	"github.com/codetrack/codetrack/internal/ui/components"
	"github.com/codetrack/codetrack/internal/ui/layout"
	"github.com/codetrack/codetrack/internal/ui/theme"
)

// Rows taken by everything but the table.
const (
	chromeRows = 5 // summary, filter bar, blank, column header, status
	detailRows = 6
)

// ProblemsScreen lists one catalog list with its progress.
type ProblemsScreen struct {
	tracker *tracker.Tracker
	list    string

	filter       progress.Filter
	categories   []string
	difficulties []string

	rows   []catalog.Problem
	cursor int
	offset int
	height int // table rows shown in the last View

	search    components.TextInput
	status    string
	statusErr bool
}

var _ screen.Screen = (*ProblemsScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemsScreen)(nil)
var _ screen.InputCapturer = (*ProblemsScreen)(nil)

// New creates the table for list.
func New(t *tracker.Tracker, list string) *ProblemsScreen {
	difficulties := []string{progress.FilterAll}
	for _, d := range catalog.AllDifficulties() {
		difficulties = append(difficulties, string(d))
	}
	s := &ProblemsScreen{
		tracker:      t,
		list:         list,
		filter:       progress.Filter{Category: progress.FilterAll, Difficulty: progress.FilterAll},
		categories:   append([]string{progress.FilterAll}, catalog.Categories(catalog.Problems(list))...),
		difficulties: difficulties,
		search:       components.NewTextInput("search title or slug", 40),
	}
	s.reload()
	return s
}

func (s *ProblemsScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *ProblemsScreen) Title() string {
	return s.list
}

func (s *ProblemsScreen) CapturingInput() bool {
	return s.search.Focused()
}

func (s *ProblemsScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Keep"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Solved"},
		{Key: "1-5", Description: "Review"},
		{Key: "c/d/u", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "r", Description: "Reset"},
		{Key: "l", Description: "List"},
		{Key: "s", Description: "Stats"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the problem under the cursor.
func (s *ProblemsScreen) Selected() (catalog.Problem, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return catalog.Problem{}, false
	}
	return s.rows[s.cursor], true
}

// reload re-applies the filter, keeping the cursor on the same problem when
// it is still visible.
func (s *ProblemsScreen) reload() {
	prev, hadPrev := s.Selected()
	s.rows = s.tracker.Problems(s.list, s.filter)
	if hadPrev {
		if i := slices.IndexFunc(s.rows, func(p catalog.Problem) bool { return p.ID == prev.ID }); i >= 0 {
			s.cursor = i
		}
	}
	s.cursor = max(0, min(s.cursor, len(s.rows)-1))
	s.adjustScroll()
}

func (s *ProblemsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.search.Focused() {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.search.Focused() {
		return s.updateSearch(kmsg)
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "pgup":
		s.move(-max(1, s.height))
	case "pgdown":
		s.move(max(1, s.height))
	case "home", "g":
		s.move(-len(s.rows))
	case "end", "G":
		s.move(len(s.rows))
	case "space", " ", "x":
		s.toggleSolved()
	case "1", "2", "3", "4", "5":
		s.toggleReview(int(key[0] - '1'))
	case "c":
		s.filter.Category = cycle(s.categories, s.filter.Category)
		s.reload()
	case "d":
		s.filter.Difficulty = catalog.Difficulty(cycle(s.difficulties, string(s.filter.Difficulty)))
		s.reload()
	case "u":
		s.filter.DueOnly = !s.filter.DueOnly
		s.reload()
	case "r":
		s.filter = progress.Filter{Category: progress.FilterAll, Difficulty: progress.FilterAll}
		s.search.SetValue("")
		s.reload()
	case "/":
		return s, s.search.Focus()
	case "l":
		next := cycle(s.tracker.Lists(), s.list)
		if !catalog.Has(next) {
			return s, nil
		}
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: New(s.tracker, next)} }
	case "s":
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: stats.New(s.tracker, s.list)} }
	}
	return s, nil
}

func (s *ProblemsScreen) updateSearch(kmsg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		s.search.Blur()
		return s, nil
	case "esc":
		s.search.Blur()
		s.search.SetValue("")
		s.filter.Search = ""
		s.reload()
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(kmsg)
	if s.search.Value() != s.filter.Search {
		s.filter.Search = s.search.Value()
		s.reload()
	}
	return s, cmd
}

func (s *ProblemsScreen) move(delta int) {
	if len(s.rows) == 0 {
		return
	}
	s.cursor = max(0, min(s.cursor+delta, len(s.rows)-1))
	s.adjustScroll()
}

// adjustScroll keeps the cursor inside the visible window.
func (s *ProblemsScreen) adjustScroll() {
	if s.height <= 0 {
		return
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	s.offset = max(0, min(s.offset, len(s.rows)-s.height))
}

func (s *ProblemsScreen) toggleSolved() {
	pr, ok := s.Selected()
	if !ok {
		return
	}
	pp, err := s.tracker.ToggleSolved(context.Background(), s.list, pr.ID)
	if err != nil {
		s.setError(err)
		return
	}
	if pp.Solved {
		s.setStatus(fmt.Sprintf("%s solved on %s. First review %s.", pr.Title, pp.SolvedDate, progress.ScheduleReviews(pp.SolvedDate)[0]))
	} else {
		s.setStatus(fmt.Sprintf("%s marked unsolved.", pr.Title))
	}
	s.reload()
}

func (s *ProblemsScreen) toggleReview(idx int) {
	pr, ok := s.Selected()
	if !ok {
		return
	}
	pp, err := s.tracker.ToggleReview(context.Background(), s.list, pr.ID, idx)
	switch {
	case errors.Is(err, tracker.ErrNotSolved):
		s.setError(fmt.Errorf("solve %s before logging reviews", pr.Title))
		return
	case err != nil:
		s.setError(err)
		return
	}
	if pp.Reviews[idx] {
		s.setStatus(fmt.Sprintf("%s R%d done.", pr.Title, idx+1))
	} else {
		s.setStatus(fmt.Sprintf("%s R%d cleared.", pr.Title, idx+1))
	}
	s.reload()
}

func (s *ProblemsScreen) setStatus(msg string) {
	s.status = msg
	s.statusErr = false
}

func (s *ProblemsScreen) setError(err error) {
	s.status = err.Error()
	s.statusErr = true
}

func (s *ProblemsScreen) View(width, height int) string {
	showDetail := !layout.IsCompactHeight(height + 8)
	tableHeight := height - chromeRows
	if showDetail {
		tableHeight -= detailRows
	}
	s.height = max(1, tableHeight)
	s.adjustScroll()

	today := s.tracker.Today()
	entries := s.tracker.Snapshot().List(s.list)
	showTopics := !layout.IsCompactWidth(width)

	var b strings.Builder
	b.WriteString(s.renderSummary(width))
	b.WriteString("\n")
	b.WriteString(s.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(s.renderColumns(width, showTopics)))
	b.WriteString("\n")

	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("  No problems match the current filters. Press r to reset."))
		b.WriteString("\n")
	}
	end := min(len(s.rows), s.offset+s.height)
	for i := s.offset; i < end; i++ {
		pr := s.rows[i]
		b.WriteString(s.renderRow(pr, entries[pr.ID], today, i == s.cursor, width, showTopics))
		b.WriteString("\n")
	}
	for i := end - s.offset; i < s.height; i++ {
		b.WriteString("\n")
	}

	if showDetail {
		if pr, ok := s.Selected(); ok {
			b.WriteString(renderDetail(pr, s.tracker.Progress(s.list, pr.ID), today, width))
		}
	}

	b.WriteString("\n")
	if s.status != "" {
		style := theme.Subtitle
		if s.statusErr {
			style = theme.Failure
		}
		b.WriteString(style.Render("  " + s.status))
	}
	return b.String()
}

func (s *ProblemsScreen) renderSummary(width int) string {
	st := s.tracker.Stats(s.list)
	summary := theme.Title.Render("  "+s.list) +
		theme.Subtitle.Render(fmt.Sprintf("   %d/%d solved", st.Solved, st.Total))
	if st.DueToday > 0 {
		summary += theme.Due.Render(fmt.Sprintf("   %d due", st.DueToday))
	}
	if url := catalog.Roadmap(s.list); url != "" {
		gap := width - lipgloss.Width(summary) - lipgloss.Width(url) - 2
		if gap > 2 {
			summary += strings.Repeat(" ", gap) + theme.Link.Render(url)
		}
	}
	return summary
}

func (s *ProblemsScreen) renderFilterBar() string {
	label := func(name, value string, active bool) string {
		v := theme.Subtitle.Render(value)
		if active {
			v = theme.Selected.Render(value)
		}
		return theme.Subtitle.Render(name+": ") + v
	}
	due := "off"
	if s.filter.DueOnly {
		due = "on"
	}
	parts := []string{
		label("Category", s.filter.Category, s.filter.Category != progress.FilterAll),
		label("Difficulty", string(s.filter.Difficulty), s.filter.Difficulty != progress.FilterAll),
		label("Due only", due, s.filter.DueOnly),
	}
	if s.filter.Active() {
		parts = append(parts, theme.Due.Render(fmt.Sprintf("%d shown", len(s.rows)))+theme.Hint.Render(" (r to reset)"))
	} else {
		parts = append(parts, theme.Subtitle.Render(fmt.Sprintf("%d shown", len(s.rows))))
	}
	bar := "  " + strings.Join(parts, "   ")
	if v := s.search.View(); v != "" {
		bar += "   " + v
	}
	return bar
}

// Column widths.
const (
	checkWidth = 6 // cursor + "[✓] "
	diffWidth  = 8
	dotsWidth  = 9 // "Reviews" plus a gap
	nextWidth  = 16
)

func (s *ProblemsScreen) titleWidth(width int, showTopics bool) int {
	w := width - checkWidth - diffWidth - dotsWidth - nextWidth - 4
	if showTopics {
		w -= w / 3
	}
	return max(10, w)
}

func (s *ProblemsScreen) renderColumns(width int, showTopics bool) string {
	tw := s.titleWidth(width, showTopics)
	line := strings.Repeat(" ", checkWidth) + layout.Pad("Problem", tw) + layout.Pad("Level", diffWidth) +
		layout.Pad("Reviews", dotsWidth) + layout.Pad("Next", nextWidth)
	if showTopics {
		line += "Topics"
	}
	return line
}

func (s *ProblemsScreen) renderRow(pr catalog.Problem, pp progress.ProblemProgress, today civil.Date, selected bool, width int, showTopics bool) string {
	tw := s.titleWidth(width, showTopics)

	cursor := "  "
	if selected {
		cursor = theme.Selected.Render("▸ ")
	}
	check := "[ ] "
	if pp.Solved {
		check = theme.Solved.Render("[✓]") + " "
	}

	titleStyle := theme.Unselected
	if selected {
		titleStyle = theme.Selected
	}
	title := titleStyle.Render(layout.Pad(layout.Truncate(pr.Title, tw-1), tw))
	diff := lipgloss.NewStyle().Foreground(theme.DifficultyColor(pr.Difficulty)).Render(layout.Pad(string(pr.Difficulty), diffWidth))

	row := cursor + check + title + diff + layout.Pad(reviewDots(pp, today), dotsWidth) + layout.Pad(nextLabel(pp, today), nextWidth)
	if showTopics {
		topicsWidth := width - lipgloss.Width(row) - 1
		row += theme.Subtitle.Render(layout.Truncate(strings.Join(pr.Topics, ", "), topicsWidth))
	}
	return row
}

// reviewDots renders the five review slots: done, due and pending.
func reviewDots(pp progress.ProblemProgress, today civil.Date) string {
	if !pp.Solved {
		return theme.Subtitle.Render("·····")
	}
	due := progress.DueSlots(pp, today)
	var b strings.Builder
	for i, done := range pp.Reviews {
		switch {
		case done:
			b.WriteString(theme.Solved.Render("●"))
		case slices.Contains(due, i):
			b.WriteString(theme.Due.Render("●"))
		default:
			b.WriteString(theme.Subtitle.Render("○"))
		}
	}
	return b.String()
}

// nextLabel describes the next outstanding review.
func nextLabel(pp progress.ProblemProgress, today civil.Date) string {
	if !pp.Solved {
		return ""
	}
	if progress.Completed(pp) {
		return theme.Solved.Render("mastered")
	}
	slot, date, ok := progress.NextReview(pp)
	if !ok {
		return ""
	}
	switch days := date.DaysSince(today); {
	case days < 0:
		return theme.Due.Render(fmt.Sprintf("R%d %dd late", slot+1, -days))
	case days == 0:
		return theme.Due.Render(fmt.Sprintf("R%d today", slot+1))
	default:
		return theme.Subtitle.Render(fmt.Sprintf("R%d in %dd", slot+1, days))
	}
}

func renderDetail(pr catalog.Problem, pp progress.ProblemProgress, today civil.Date, width int) string {
	var lines []string
	lines = append(lines, theme.Body.Bold(true).Render(pr.Title)+"  "+theme.Difficulty(pr.Difficulty)+"  "+theme.Link.Render(pr.URL()))

	if !pp.Solved {
		lines = append(lines, theme.Hint.Render("Not solved yet. Press space once you have an accepted submission."))
	} else {
		lines = append(lines, theme.Subtitle.Render("Solved "+pp.SolvedDate.String()))
		var slots []string
		for i, target := range progress.ScheduleReviews(pp.SolvedDate) {
			slot := fmt.Sprintf("R%d %s", i+1, target.String()[5:])
			switch {
			case pp.Reviews[i]:
				done := pp.Dates[progress.ReviewLabel(i)]
				if !done.IsZero() {
					slot = fmt.Sprintf("R%d ✓ %s", i+1, done.String()[5:])
				}
				slots = append(slots, theme.Solved.Render(slot))
			case !today.Before(target):
				slots = append(slots, theme.Due.Render(slot))
			default:
				slots = append(slots, theme.Subtitle.Render(slot))
			}
		}
		lines = append(lines, strings.Join(slots, "  "))
	}
	lines = append(lines, theme.Subtitle.Render(strings.Join(pr.Topics, " · ")))

	return theme.Card.Width(width).Render(strings.Join(lines, "\n")) + "\n"
}

func cycle(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}
