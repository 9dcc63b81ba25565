package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
)

// Feedback texts shown under the options.
const (
	FeedbackCorrect    = "إجابتك ترفع الراس!"
	FeedbackWrong      = "واك واك، حاول مرة ثانيه."
	FeedbackLoadFailed = "تعذر تحميل السؤال، حاول مرة ثانية."
)

var (
	// ErrInvalidTransition is returned when a trigger is not valid in the
	// current state.
	ErrInvalidTransition = errors.New("quiz: invalid transition")

	// ErrNoQuestion is returned by Select while no question is live, or
	// while the next one is still loading.
	ErrNoQuestion = errors.New("quiz: no live question")

	// ErrAlreadyAnswered is returned by Select after the first answer when
	// LockAfterAnswer is set.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")

	// ErrUnknownOption is returned when the choice is not one of the options.
	ErrUnknownOption = errors.New("quiz: unknown option")
)

// State is the quiz session state.
type State int

const (
	StateClosed State = iota
	StateAwaitingAnswer
	StateAnswered
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateAnswered:
		return "answered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Mark is the visual marking of one option.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// Ticket identifies one question load. A ticket goes stale when a later
// load starts or the quiz closes.
type Ticket struct {
	generation uint64
}

// Options configures an Engine.
type Options struct {
	// LockAfterAnswer rejects picks after the first answer to a question.
	// Off by default: re-picking re-fires feedback and the cue.
	LockAfterAnswer bool
}

// Outcome is the result of picking an option.
type Outcome struct {
	Index    int
	Correct  bool
	Feedback string
	Cue      audio.Cue
}

// Visibility is the show/hide projection of the quiz controls.
type Visibility struct {
	Start     bool
	Close     bool
	Container bool
	Next      bool
}

// Engine is the quiz state machine. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Engine struct {
	opts Options

	state      State
	sessionID  string
	question   *gateway.Question
	marks      []Mark
	progress   int
	generation uint64
	feedback   string
	showNext   bool
	loading    bool
	loadFailed bool
}

// NewEngine creates a closed Engine.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Open starts a quiz session and begins loading the first question.
func (e *Engine) Open() (Ticket, error) {
	if e.state != StateClosed {
		return Ticket{}, fmt.Errorf("open from %s: %w", e.state, ErrInvalidTransition)
	}
	e.state = StateAwaitingAnswer
	e.sessionID = uuid.NewString()
	return e.beginLoad(), nil
}

// Next advances to a fresh question. It is valid once the live question
// has been answered, or to retry after a failed load.
func (e *Engine) Next() (Ticket, error) {
	switch {
	case e.state == StateAnswered:
	case e.state == StateAwaitingAnswer && e.loadFailed:
	default:
		return Ticket{}, fmt.Errorf("next from %s: %w", e.state, ErrInvalidTransition)
	}
	e.state = StateAwaitingAnswer
	return e.beginLoad(), nil
}

func (e *Engine) beginLoad() Ticket {
	e.generation++
	e.loading = true
	e.loadFailed = false
	return Ticket{generation: e.generation}
}

// Deliver installs a loaded question. It reports false and changes nothing
// when the ticket is stale.
func (e *Engine) Deliver(t Ticket, q *gateway.Question) bool {
	if !e.current(t) {
		return false
	}
	e.question = q
	e.marks = make([]Mark, len(q.Options))
	e.feedback = ""
	e.showNext = false
	e.loading = false
	e.progress++
	e.state = StateAwaitingAnswer
	return true
}

// Fail records a failed load. The failure is surfaced as feedback and the
// "next" control is offered as a retry. The previous question is dropped
// so it cannot be answered again. Stale tickets are ignored.
func (e *Engine) Fail(t Ticket) bool {
	if !e.current(t) {
		return false
	}
	e.question = nil
	e.marks = nil
	e.loading = false
	e.loadFailed = true
	e.feedback = FeedbackLoadFailed
	e.showNext = true
	return true
}

func (e *Engine) current(t Ticket) bool {
	return e.state != StateClosed && t.generation == e.generation && e.loading
}

// Select picks the option whose text is choice.
func (e *Engine) Select(choice string) (Outcome, error) {
	if e.state == StateClosed {
		return Outcome{}, fmt.Errorf("select from %s: %w", e.state, ErrInvalidTransition)
	}
	if e.question == nil || e.loading || e.loadFailed {
		return Outcome{}, ErrNoQuestion
	}
	if e.state == StateAnswered && e.opts.LockAfterAnswer {
		return Outcome{}, ErrAlreadyAnswered
	}

	idx := slices.Index(e.question.Options, choice)
	if idx < 0 {
		return Outcome{}, fmt.Errorf("%q: %w", choice, ErrUnknownOption)
	}

	out := Outcome{Index: idx}
	if choice == e.question.Correct {
		e.marks[idx] = MarkCorrect
		out.Correct = true
		out.Feedback = FeedbackCorrect
		out.Cue = audio.CueCorrect
	} else {
		e.marks[idx] = MarkWrong
		out.Feedback = FeedbackWrong
		out.Cue = audio.CueWrong
	}
	e.feedback = out.Feedback
	e.showNext = true
	e.state = StateAnswered
	return out, nil
}

// SelectIndex picks the option at position i.
func (e *Engine) SelectIndex(i int) (Outcome, error) {
	if e.question == nil || e.loading || e.loadFailed {
		if e.state == StateClosed {
			return Outcome{}, fmt.Errorf("select from %s: %w", e.state, ErrInvalidTransition)
		}
		return Outcome{}, ErrNoQuestion
	}
	if i < 0 || i >= len(e.question.Options) {
		return Outcome{}, fmt.Errorf("index %d: %w", i, ErrUnknownOption)
	}
	return e.Select(e.question.Options[i])
}

// Close ends the session from any state, zeroes progress and invalidates
// any load in flight.
func (e *Engine) Close() {
	e.state = StateClosed
	e.question = nil
	e.marks = nil
	e.progress = 0
	e.generation++
	e.feedback = ""
	e.showNext = false
	e.loading = false
	e.loadFailed = false
}

func (e *Engine) State() State                { return e.state }
func (e *Engine) SessionID() string           { return e.sessionID }
func (e *Engine) Question() *gateway.Question { return e.question }
func (e *Engine) Progress() int               { return e.progress }
func (e *Engine) Feedback() string            { return e.feedback }
func (e *Engine) Loading() bool               { return e.loading }

// ProgressWidth is the progress bar width as a CSS-style percentage. It
// is not capped at 100%.
func (e *Engine) ProgressWidth() string {
	return fmt.Sprintf("%d%%", e.progress)
}

// Mark returns the marking of option i.
func (e *Engine) Mark(i int) Mark {
	if i < 0 || i >= len(e.marks) {
		return MarkNone
	}
	return e.marks[i]
}

// Visibility projects the control visibility for the current state.
func (e *Engine) Visibility() Visibility {
	open := e.state != StateClosed
	return Visibility{
		Start:     !open,
		Close:     open,
		Container: open,
		Next:      open && e.showNext,
	}
}
