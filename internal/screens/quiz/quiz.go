package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
	"github.com/abhisek/irab/internal/logger"
	qz "github.com/abhisek/irab/internal/quiz"
	"github.com/abhisek/irab/internal/router"
	"github.com/abhisek/irab/internal/screen"
	"github.com/abhisek/irab/internal/ui/components"
	"github.com/abhisek/irab/internal/ui/layout"
)

var errEmptyQuestion = errors.New("empty question")

// QuizScreen drives one quiz session from open to close.
type QuizScreen struct {
	engine *qz.Engine
	client gateway.Client
	player audio.Player
	log    *logger.Logger

	options components.OptionList
	cancel  context.CancelFunc
}

var (
	_ screen.Screen      = (*QuizScreen)(nil)
	_ screen.BackHandler = (*QuizScreen)(nil)
)

// New creates a QuizScreen. The session opens when the screen is pushed.
func New(engine *qz.Engine, client gateway.Client, player audio.Player, log *logger.Logger) *QuizScreen {
	return &QuizScreen{
		engine: engine,
		client: client,
		player: player,
		log:    log.With("component", "quiz"),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	ticket, err := s.engine.Open()
	if err != nil {
		s.log.Warn("quiz not opened", "error", err)
		return nil
	}
	s.log = s.log.With("session", s.engine.SessionID())
	s.log.Info("quiz opened")
	return s.load(ticket)
}

// load fetches a question for t, cancelling any fetch still in flight.
func (s *QuizScreen) load(t qz.Ticket) tea.Cmd {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	client := s.client
	return func() tea.Msg {
		q, err := client.FetchNextQuestion(ctx)
		return questionLoadedMsg{Ticket: t, Question: q, Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionLoadedMsg:
		s.handleLoaded(msg)
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg questionLoadedMsg) {
	err := msg.Err
	if err == nil && msg.Question == nil {
		err = errEmptyQuestion
	}

	if err != nil {
		if s.engine.Fail(msg.Ticket) {
			s.options = components.OptionList{}
			s.log.Warn("question load failed", "error", err)
		} else {
			s.log.Debug("stale question failure ignored", "error", err)
		}
		return
	}

	if !s.engine.Deliver(msg.Ticket, msg.Question) {
		s.log.Debug("stale question discarded")
		return
	}
	s.options = components.OptionList{
		Options: msg.Question.Options,
		Marks:   make([]components.OptionMark, len(msg.Question.Options)),
	}
	s.log.Debug("question delivered", "progress", s.engine.Progress())
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "esc", "c":
		return s.close()
	case "up", "k":
		s.options.MoveCursor(-1)
	case "down", "j":
		s.options.MoveCursor(1)
	case "n":
		return s.next()
	case "enter", "space":
		if s.engine.Question() != nil && !s.engine.Loading() {
			s.pick(s.options.Cursor)
			return nil
		}
		return s.next()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			s.pick(int(key[0] - '1'))
		}
	}
	return nil
}

func (s *QuizScreen) pick(i int) {
	out, err := s.engine.SelectIndex(i)
	if err != nil {
		s.log.Debug("pick rejected", "index", i, "error", err)
		return
	}
	s.options.Cursor = out.Index
	s.syncMarks()
	s.player.Play(out.Cue)
	s.log.Info("answer", "index", out.Index, "correct", out.Correct)
}

func (s *QuizScreen) syncMarks() {
	for i := range s.options.Marks {
		switch s.engine.Mark(i) {
		case qz.MarkCorrect:
			s.options.Marks[i] = components.OptionCorrect
		case qz.MarkWrong:
			s.options.Marks[i] = components.OptionWrong
		default:
			s.options.Marks[i] = components.OptionPlain
		}
	}
}

func (s *QuizScreen) next() tea.Cmd {
	ticket, err := s.engine.Next()
	if err != nil {
		return nil
	}
	return s.load(ticket)
}

func (s *QuizScreen) close() tea.Cmd {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.log.Info("quiz closed", "progress", s.engine.Progress())
	s.engine.Close()
	s.options = components.OptionList{}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) HandlesBack() bool {
	return true
}

func (s *QuizScreen) Title() string {
	return "اختبار الإعراب"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	vis := s.engine.Visibility()
	hints := []layout.KeyHint{
		{Key: "1-9", Description: "اختر"},
		{Key: "↑↓ Enter", Description: "تنقل واختيار"},
	}
	if vis.Next {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "السؤال التالي"})
	}
	if vis.Close {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "إغلاق الاختبار"})
	}
	return hints
}
