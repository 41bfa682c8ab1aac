package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/catalog"
)

// Palette. Difficulty colors follow LeetCode's own.
var (
	Primary   = lipgloss.Color("#FFA116") // LeetCode orange
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#8B5CF6") // Purple
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	EasyColor   = lipgloss.Color("#00B8A3")
	MediumColor = lipgloss.Color("#FFC01E")
	HardColor   = lipgloss.Color("#FF375F")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Link = lipgloss.NewStyle().
		Foreground(Secondary).
		Underline(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Solved = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Due = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// DifficultyColor returns the display color of d.
func DifficultyColor(d catalog.Difficulty) color.Color {
	switch d {
	case catalog.Easy:
		return EasyColor
	case catalog.Medium:
		return MediumColor
	case catalog.Hard:
		return HardColor
	default:
		return Text
	}
}

// Difficulty renders d in its color.
func Difficulty(d catalog.Difficulty) string {
	return lipgloss.NewStyle().Foreground(DifficultyColor(d)).Render(string(d))
}
