package analysis

import (
	"fmt"
	"time"

	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
	"github.com/abhisek/irab/internal/history"
	"github.com/abhisek/irab/internal/logger"
)

// User-facing texts.
const (
	ResultPrefix       = "النتيجة:"
	MessageBadInput    = "الحقييقققهه، الجملة قصيرة بزيادة أو فيها رموز غير مفهومة."
	MessageTransport   = "فيه مشكلة حصلت، حاول ثاني."
	StatusRandomLoaded = "خذ جملة تسرح فيها!"
	StatusRandomFailed = "ما قدرنا نجيب جملة، حاول ثاني."
)

// State is the result area state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateShown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateShown:
		return "shown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Kind is the styling of a shown result.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindError
)

// Ticket identifies one submission.
type Ticket struct {
	generation uint64
	sentence   string
}

// Workflow owns the submit, loading and result cycle of the sentence form.
// Like the quiz engine it is driven from the UI loop only.
type Workflow struct {
	history *history.Store
	log     *logger.Logger
	now     func() time.Time

	state      State
	kind       Kind
	message    string
	status     string
	generation uint64
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock overrides the clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		w.now = now
	}
}

// NewWorkflow creates an idle Workflow appending successes to h.
func NewWorkflow(h *history.Store, log *logger.Logger, opts ...Option) *Workflow {
	w := &Workflow{
		history: h,
		log:     log.With("component", "analysis"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit hides the previous result and starts loading. The sentence is
// sent as typed, empty or not.
func (w *Workflow) Submit(sentence string) Ticket {
	w.generation++
	w.state = StateLoading
	w.kind = KindNone
	w.message = ""
	return Ticket{generation: w.generation, sentence: sentence}
}

// Complete applies the gateway answer for t. It returns the cue to play
// and whether the answer was applied; answers for superseded submissions
// are dropped.
func (w *Workflow) Complete(t Ticket, res *gateway.AnalysisResult, err error) (audio.Cue, bool) {
	if t.generation != w.generation || w.state != StateLoading {
		return audio.CueNone, false
	}
	w.state = StateShown

	switch {
	case err != nil || res == nil:
		w.kind = KindError
		w.message = MessageTransport
		w.log.Error("analysis failed", "sentence", t.sentence, "error", err)
		return audio.CueNone, true

	case res.Error:
		w.kind = KindError
		w.message = MessageBadInput
		return audio.CueWrong, true

	default:
		w.kind = KindSuccess
		w.message = ResultPrefix + "\n" + res.Result
		w.history.Append(history.NewEntry(t.sentence, res.Result, w.now()))
		return audio.CueCorrect, true
	}
}

// ApplyRandom handles a random sentence fetch. On success the sentence is
// returned for the input field.
func (w *Workflow) ApplyRandom(sentence string, err error) (string, bool) {
	if err != nil {
		w.status = StatusRandomFailed
		w.log.Warn("random sentence unavailable", "error", err)
		return "", false
	}
	w.status = StatusRandomLoaded
	return sentence, true
}

// SetStatus replaces the status line shared with voice input.
func (w *Workflow) SetStatus(s string) {
	w.status = s
}

func (w *Workflow) State() State    { return w.state }
func (w *Workflow) Kind() Kind      { return w.kind }
func (w *Workflow) Message() string { return w.message }
func (w *Workflow) Status() string  { return w.status }
