package components

import (
	"github.com/abhisek/irab/internal/ui/theme"
)

// Button is a styled control label with its key binding.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
