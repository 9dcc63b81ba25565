package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/irab/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. Percent may exceed 1;
// the fill is clamped but the caption shows the real value.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// RightToLeft fills from the right edge.
	RightToLeft bool
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	caption := ""
	if p.ShowPercent {
		caption = fmt.Sprintf("  %d%%", int(p.Percent*100+0.5))
	}

	barWidth := p.Width - lipgloss.Width(result) - len(caption)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	filledStr := theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.RightToLeft {
		result += emptyStr + filledStr
	} else {
		result += filledStr + emptyStr
	}

	if caption != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption)
	}
	return result
}
