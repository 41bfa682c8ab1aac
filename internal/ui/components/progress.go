package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/codetrack/codetrack/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a "done/total" count.
type ProgressBar struct {
	Label      string
	LabelWidth int // pads Label so stacked bars line up
	Done       int
	Total      int
	Width      int
	Color      color.Color // filled color; theme.Secondary when nil
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Done:  done,
		Total: total,
		Width: width,
	}
}

// Percent returns Done/Total in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(1, max(0, float64(p.Done)/float64(p.Total)))
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if w := lipgloss.Width(label); w < p.LabelWidth {
			label += strings.Repeat(" ", p.LabelWidth-w)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	count := fmt.Sprintf("  %d/%d  %3d%%", p.Done, p.Total, int(p.Percent()*100))

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += theme.Subtitle.Render(count)

	return result
}
