package workbench

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/irab/internal/analysis"
	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
	"github.com/abhisek/irab/internal/history"
	"github.com/abhisek/irab/internal/logger"
	qz "github.com/abhisek/irab/internal/quiz"
	"github.com/abhisek/irab/internal/router"
	"github.com/abhisek/irab/internal/screen"
	quizscreen "github.com/abhisek/irab/internal/screens/quiz"
	"github.com/abhisek/irab/internal/toggle"
	"github.com/abhisek/irab/internal/ui/components"
	"github.com/abhisek/irab/internal/ui/layout"
	"github.com/abhisek/irab/internal/voice"
)

// Deps are the collaborators of the workbench.
type Deps struct {
	Client  gateway.Client
	History *history.Store
	Engine  *qz.Engine
	Voice   *voice.Adapter
	Player  audio.Player
	Log     *logger.Logger
}

// Menu item positions.
const (
	itemAnalyze = iota
	itemRandom
	itemVoice
	itemQuiz
	itemHistory
	itemHelp
	itemExit
)

type focusArea int

const (
	focusInput focusArea = iota
	focusMenu
)

// WorkbenchScreen is the main page: sentence input, analysis result,
// random sentences, voice input, panels and the quiz entry point.
type WorkbenchScreen struct {
	deps     Deps
	log      *logger.Logger
	workflow *analysis.Workflow
	toggles  *toggle.Set

	input components.TextInput
	menu  components.Menu
	focus focusArea
}

var _ screen.Screen = (*WorkbenchScreen)(nil)

// New creates the workbench.
func New(deps Deps) *WorkbenchScreen {
	s := &WorkbenchScreen{
		deps:     deps,
		log:      deps.Log.With("component", "workbench"),
		workflow: analysis.NewWorkflow(deps.History, deps.Log),
		toggles:  toggle.NewSet(),
		input:    components.NewTextInput("اكتب جملة عربية...", 500),
	}

	s.menu = components.NewMenu([]components.MenuItem{
		itemAnalyze: {Action: s.submit},
		itemRandom:  {Action: s.fetchRandom},
		itemVoice:   {Action: s.listen},
		itemQuiz:    {Action: s.startQuiz},
		itemHistory: {Action: func() tea.Cmd { s.toggles.Toggle(toggle.History); return nil }},
		itemHelp:    {Action: func() tea.Cmd { s.toggles.Toggle(toggle.Help); return nil }},
		itemExit:    {Action: func() tea.Cmd { return tea.Quit }},
	})
	s.refreshMenu()
	return s
}

// refreshMenu derives item labels from the current state.
func (s *WorkbenchScreen) refreshMenu() {
	s.menu.SetItem(itemAnalyze, "حلّل الجملة", false)
	s.menu.SetItem(itemRandom, "جملة عشوائية", false)
	s.menu.SetItem(itemVoice, s.deps.Voice.Label(), !s.deps.Voice.Available())
	s.menu.SetItem(itemQuiz, "ابدأ الاختبار", !s.deps.Engine.Visibility().Start)

	if s.toggles.Visible(toggle.History) {
		s.menu.SetItem(itemHistory, "إخفاء السجل", false)
	} else {
		s.menu.SetItem(itemHistory, "إظهار السجل", false)
	}
	if s.toggles.Visible(toggle.Help) {
		s.menu.SetItem(itemHelp, "إخفاء المساعدة", false)
	} else {
		s.menu.SetItem(itemHelp, "المساعدة", false)
	}
	s.menu.SetItem(itemExit, "خروج", false)
}

func (s *WorkbenchScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *WorkbenchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case analysisDoneMsg:
		s.handleAnalysis(msg)

	case randomSentenceMsg:
		if sentence, ok := s.workflow.ApplyRandom(msg.Sentence, msg.Err); ok {
			s.input.SetValue(sentence)
		}

	case voiceResultMsg:
		s.handleVoice(msg)

	case router.ScreenPoppedMsg:
		if s.focus == focusInput {
			cmd = s.input.Focus()
		}

	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)

	default:
		s.input, cmd = s.input.Update(msg)
	}

	s.refreshMenu()
	return s, cmd
}

func (s *WorkbenchScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		return s.switchFocus()
	case "ctrl+r":
		return s.fetchRandom()
	}

	if s.focus == focusMenu {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return cmd
	}

	if msg.String() == "enter" {
		return s.submit()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *WorkbenchScreen) switchFocus() tea.Cmd {
	if s.focus == focusInput {
		s.focus = focusMenu
		s.input.Blur()
		s.menu.Focused = true
		return nil
	}
	s.focus = focusInput
	s.menu.Focused = false
	return s.input.Focus()
}

func (s *WorkbenchScreen) submit() tea.Cmd {
	sentence := s.input.Value()
	ticket := s.workflow.Submit(sentence)

	client := s.deps.Client
	return func() tea.Msg {
		res, err := client.SubmitSentence(context.Background(), sentence)
		return analysisDoneMsg{Ticket: ticket, Result: res, Err: err}
	}
}

func (s *WorkbenchScreen) handleAnalysis(msg analysisDoneMsg) {
	cue, applied := s.workflow.Complete(msg.Ticket, msg.Result, msg.Err)
	if !applied {
		s.log.Debug("stale analysis discarded")
		return
	}
	if cue != audio.CueNone {
		s.deps.Player.Play(cue)
	}
}

func (s *WorkbenchScreen) fetchRandom() tea.Cmd {
	client := s.deps.Client
	return func() tea.Msg {
		sentence, err := client.FetchRandomSentence(context.Background())
		return randomSentenceMsg{Sentence: sentence, Err: err}
	}
}

func (s *WorkbenchScreen) listen() tea.Cmd {
	v := s.deps.Voice
	if !v.Available() || v.Busy() {
		return nil
	}
	s.workflow.SetStatus(voice.StatusListening)
	return func() tea.Msg {
		text, err := v.Recognize(context.Background())
		return voiceResultMsg{Text: text, Err: err}
	}
}

func (s *WorkbenchScreen) handleVoice(msg voiceResultMsg) {
	switch {
	case errors.Is(msg.Err, voice.ErrBusy):
	case msg.Err != nil:
		s.workflow.SetStatus(voice.StatusFor(msg.Err))
	default:
		s.input.SetValue(msg.Text)
		s.workflow.SetStatus(voice.StatusRecognized)
	}
}

func (s *WorkbenchScreen) startQuiz() tea.Cmd {
	if !s.deps.Engine.Visibility().Start {
		return nil
	}
	qs := quizscreen.New(s.deps.Engine, s.deps.Client, s.deps.Player, s.deps.Log)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}

func (s *WorkbenchScreen) Title() string {
	return "محلل الإعراب"
}

func (s *WorkbenchScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "تبديل التركيز"}}
	if s.focus == focusInput {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "حلّل"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "تنقل"},
			layout.KeyHint{Key: "Enter", Description: "تنفيذ"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+R", Description: "جملة عشوائية"},
		layout.KeyHint{Key: "Ctrl+C", Description: "خروج"},
	)
}
