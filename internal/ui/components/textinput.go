package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/codetrack/codetrack/internal/ui/theme"
)

// TextInput wraps bubbles/textinput as a one-line search box.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates an unfocused search input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti}
}

// Focus starts capturing keys.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops capturing keys.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input captures keys.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, dimmed while unfocused.
func (t TextInput) View() string {
	if !t.Focused() {
		if t.Value() == "" {
			return ""
		}
		return theme.Subtitle.Render("/ " + t.Value())
	}
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}
