package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/irab/internal/ui/theme"
)

// OptionMark is the verdict shown next to an option.
type OptionMark int

const (
	OptionPlain OptionMark = iota
	OptionCorrect
	OptionWrong
)

// OptionList renders numbered answer options. Marks are sticky per
// option, so several options can carry a verdict at once.
type OptionList struct {
	Options []string
	Marks   []OptionMark
	Cursor  int
}

// MoveCursor moves the cursor by delta, clamped to the list.
func (o *OptionList) MoveCursor(delta int) {
	o.Cursor += delta
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	if o.Cursor > len(o.Options)-1 {
		o.Cursor = len(o.Options) - 1
	}
}

func (o OptionList) mark(i int) OptionMark {
	if i < len(o.Marks) {
		return o.Marks[i]
	}
	return OptionPlain
}

// View renders the options one per line.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch o.mark(i) {
		case OptionCorrect:
			style = theme.Correct
			line += "  ✓"
		case OptionWrong:
			style = theme.Incorrect
			line += "  ✗"
		default:
			if i == o.Cursor {
				style = theme.Selected
			} else {
				style = theme.Unselected
			}
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
