package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/irab/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	back     bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesBack() bool    { return s.back }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNotifiesScreenBelow(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Push(&stubScreen{title: "second"})

	r.Pop()

	if len(s1.received) != 1 {
		t.Fatalf("expected 1 message, got %d", len(s1.received))
	}
	popped, ok := s1.received[0].(ScreenPoppedMsg)
	if !ok {
		t.Fatalf("expected ScreenPoppedMsg, got %T", s1.received[0])
	}
	if popped.Title != "second" {
		t.Errorf("expected popped title 'second', got %q", popped.Title)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if len(s1.received) != 0 {
		t.Error("expected no notification when nothing was popped")
	}
}

func TestNavigationMsgs(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via PushScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(s2.received) != 1 {
		t.Errorf("expected active screen to receive 1 message, got %d", len(s2.received))
	}
	if len(s1.received) != 0 {
		t.Errorf("expected inactive screen to receive nothing, got %d", len(s1.received))
	}
}

func TestHandlesBack(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	if r.HandlesBack() {
		t.Error("expected plain screen not to handle back")
	}

	r.Push(&stubScreen{title: "quiz", back: true})
	if !r.HandlesBack() {
		t.Error("expected back-handling screen to be reported")
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	if got := r.View(80, 24); got != "first" {
		t.Errorf("expected view 'first', got %q", got)
	}
}
