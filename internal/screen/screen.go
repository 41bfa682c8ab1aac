package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/codetrack/codetrack/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command. It runs when the screen is pushed and
	// again when a screen above it is popped.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with a text field. While
// CapturingInput is true the app forwards Esc and q to the screen instead of
// navigating.
type InputCapturer interface {
	CapturingInput() bool
}
