package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/irab/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical action menu. Disabled items are shown but skipped
// by navigation.
type Menu struct {
	Items    []MenuItem
	Selected int
	Focused  bool
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.nextEnabled(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

func (m Menu) nextEnabled(from, step int) int {
	for i := from + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

// SetItem replaces the label and enabled state of item i.
func (m *Menu) SetItem(i int, label string, disabled bool) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	m.Items[i].Label = label
	m.Items[i].Disabled = disabled
	if disabled && m.Selected == i {
		if next := m.nextEnabled(i, 1); next >= 0 {
			m.Selected = next
		} else if prev := m.nextEnabled(i, -1); prev >= 0 {
			m.Selected = prev
		}
	}
}

// Update handles keyboard navigation. It ignores keys while unfocused.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	if !m.Focused {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if i := m.nextEnabled(m.Selected, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.nextEnabled(m.Selected, 1); i >= 0 {
			m.Selected = i
		}
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString("    " + theme.Disabled.Render(item.Label))
		case i == m.Selected && m.Focused:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Unselected.Render("  › " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
