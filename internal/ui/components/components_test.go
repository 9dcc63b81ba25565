package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func items(labels ...string) []MenuItem {
	out := make([]MenuItem, len(labels))
	for i, l := range labels {
		out[i] = MenuItem{Label: l}
	}
	return out
}

func TestNewMenu_SkipsDisabledHead(t *testing.T) {
	its := items("a", "b", "c")
	its[0].Disabled = true

	m := NewMenu(its)
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_NavigationSkipsDisabled(t *testing.T) {
	its := items("a", "b", "c")
	its[1].Disabled = true
	m := NewMenu(its)
	m.Focused = true

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("after down Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down at the end moved to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("after up Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_IgnoresKeysWhenUnfocused(t *testing.T) {
	m := NewMenu(items("a", "b"))

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("unfocused menu moved to %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	its := items("a")
	its[0].Action = func() tea.Cmd {
		ran = true
		return nil
	}
	m := NewMenu(its)
	m.Focused = true

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter did not run the action")
	}
}

func TestMenu_SetItemDisablingSelectedMovesSelection(t *testing.T) {
	m := NewMenu(items("a", "b", "c"))
	m.Selected = 2

	m.SetItem(2, "C", true)
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if m.Items[2].Label != "C" || !m.Items[2].Disabled {
		t.Errorf("item not updated: %+v", m.Items[2])
	}

	m.SetItem(9, "x", true)
}

func TestOptionList_ViewMarksAndNumbers(t *testing.T) {
	o := OptionList{
		Options: []string{"فاعل", "مفعول به", "مبتدأ"},
		Marks:   []OptionMark{OptionPlain, OptionWrong, OptionCorrect},
	}

	lines := strings.Split(strings.TrimRight(o.View(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "1)  فاعل") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "✗") {
		t.Errorf("wrong option not marked: %q", lines[1])
	}
	if !strings.Contains(lines[2], "✓") {
		t.Errorf("correct option not marked: %q", lines[2])
	}
}

func TestOptionList_MoveCursorClamps(t *testing.T) {
	o := OptionList{Options: []string{"a", "b"}}

	o.MoveCursor(-1)
	if o.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", o.Cursor)
	}
	o.MoveCursor(5)
	if o.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", o.Cursor)
	}
}

func TestProgressBar_CaptionShowsUnclampedPercent(t *testing.T) {
	p := NewProgressBar("", 1.2, true, 30)

	if !strings.Contains(p.View(), "120%") {
		t.Errorf("caption missing 120%%: %q", p.View())
	}
}

func TestButton_ViewIncludesKey(t *testing.T) {
	got := Button{Label: "التالي", Key: "N"}.View()
	if !strings.Contains(got, "[N] التالي") {
		t.Errorf("View() = %q", got)
	}
}

func TestTextInput_SetValue(t *testing.T) {
	in := NewTextInput("", 0)
	if !in.Focused() {
		t.Error("new input should be focused")
	}
	in.SetValue("جملة")
	if in.Value() != "جملة" {
		t.Errorf("Value() = %q", in.Value())
	}
	in.Blur()
	if in.Focused() {
		t.Error("still focused after Blur")
	}
}
