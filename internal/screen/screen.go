package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/irab/internal/ui/layout"
)

// Screen is one page of the terminal UI.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
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

// BackHandler is implemented by screens that must tear down state before
// leaving. The app forwards Esc to them instead of popping the screen; the
// screen pops itself when done.
type BackHandler interface {
	HandlesBack() bool
}
