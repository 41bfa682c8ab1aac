package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/catalog"
	"github.com/codetrack/codetrack/internal/progress"
	"github.com/codetrack/codetrack/internal/screen"
	"github.com/codetrack/codetrack/internal/tracker"
	"github.com/codetrack/codetrack/internal/ui/components"
	"github.com/codetrack/codetrack/internal/ui/layout"
	"github.com/codetrack/codetrack/internal/ui/theme"
)

// CategoryStats is the solved count of one topic.
type CategoryStats struct {
	Category string
	Stats    progress.Stats
}

// StatsScreen shows the progress breakdown of one list.
type StatsScreen struct {
	tracker *tracker.Tracker
	list    string

	overall    progress.Stats
	totals     map[catalog.Difficulty]int
	categories []CategoryStats
	mastered   int
	offset     int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen for list.
func New(t *tracker.Tracker, list string) *StatsScreen {
	s := &StatsScreen{tracker: t, list: list}
	s.load()
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	s.load()
	return nil
}

func (s *StatsScreen) load() {
	problems := catalog.Problems(s.list)
	entries := s.tracker.Snapshot().List(s.list)
	today := s.tracker.Today()

	s.overall = progress.Aggregate(problems, entries, today)
	s.totals = progress.DifficultyTotals(problems)
	s.categories = s.categories[:0]
	for _, c := range catalog.Categories(problems) {
		f := progress.Filter{Category: c}
		s.categories = append(s.categories, CategoryStats{
			Category: c,
			Stats:    progress.Aggregate(f.Apply(problems, entries, today), entries, today),
		})
	}
	s.mastered = 0
	for _, pp := range entries {
		if progress.Completed(pp) {
			s.mastered++
		}
	}
}

func (s *StatsScreen) Title() string {
	return s.list + " Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
		{Key: "H", Description: "Lists"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.offset = max(0, s.offset-1)
		case "down", "j":
			s.offset = min(s.offset+1, max(0, len(s.categories)-1))
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := min(width-4, 90)
	var lines []string

	lines = append(lines, "", theme.Title.Render(s.list))
	overall := components.NewProgressBar("Overall", s.overall.Solved, s.overall.Total, cw)
	overall.LabelWidth = 8
	lines = append(lines, overall.View(), "")

	for _, d := range catalog.AllDifficulties() {
		bar := components.NewProgressBar(string(d), s.overall.SolvedBy(d), s.totals[d], cw)
		bar.LabelWidth = 8
		bar.Color = theme.DifficultyColor(d)
		lines = append(lines, bar.View())
	}

	due := theme.Subtitle.Render("Nothing due today.")
	if s.overall.DueToday > 0 {
		due = theme.Due.Render(fmt.Sprintf("%d %s due for review today.", s.overall.DueToday, plural(s.overall.DueToday, "problem", "problems")))
	}
	lines = append(lines, "", due+theme.Subtitle.Render(fmt.Sprintf("   %d fully reviewed.", s.mastered)), "")
	lines = append(lines, theme.Body.Bold(true).Render("By category"))

	labelWidth := 0
	for _, c := range s.categories {
		labelWidth = max(labelWidth, lipgloss.Width(c.Category))
	}
	room := height - len(lines)
	for i := s.offset; i < len(s.categories) && room > 0; i++ {
		c := s.categories[i]
		bar := components.NewProgressBar(c.Category, c.Stats.Solved, c.Stats.Total, cw)
		bar.LabelWidth = labelWidth
		lines = append(lines, bar.View())
		room--
	}

	block := lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
