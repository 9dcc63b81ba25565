package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
	"github.com/abhisek/irab/internal/history"
	"github.com/abhisek/irab/internal/logger"
	qz "github.com/abhisek/irab/internal/quiz"
	"github.com/abhisek/irab/internal/router"
	"github.com/abhisek/irab/internal/screen"
	"github.com/abhisek/irab/internal/screens/workbench"
	"github.com/abhisek/irab/internal/ui/layout"
	"github.com/abhisek/irab/internal/voice"
)

// Options are the dependencies wired by the CLI.
type Options struct {
	Client          gateway.Client
	Player          audio.Player
	Recognizer      voice.Recognizer
	LockAfterAnswer bool
	Log             *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	history *history.Store
	engine  *qz.Engine
	width   int
	height  int
}

func newAppModel(opts Options) (AppModel, *voice.Adapter) {
	hist := history.NewStore()
	engine := qz.NewEngine(qz.Options{LockAfterAnswer: opts.LockAfterAnswer})
	adapter := voice.NewAdapter(opts.Recognizer, opts.Log)

	home := workbench.New(workbench.Deps{
		Client:  opts.Client,
		History: hist,
		Engine:  engine,
		Voice:   adapter,
		Player:  opts.Player,
		Log:     opts.Log,
	})
	return AppModel{
		router:  router.New(home),
		history: hist,
		engine:  engine,
	}, adapter
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		History:  m.history.Len(),
		Progress: m.engine.Progress(),
		InQuiz:   m.engine.Visibility().Container,
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "رجوع"},
		{Key: "Ctrl+C", Description: "خروج"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, adapter := newAppModel(opts)
	defer func() {
		if err := adapter.Close(); err != nil {
			opts.Log.Warn("voice shutdown", "error", err)
		}
	}()

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
