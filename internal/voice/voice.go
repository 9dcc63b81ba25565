package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/abhisek/irab/internal/logger"
)

// User-facing texts.
const (
	LabelAvailable   = "إدخال صوتي"
	LabelUnavailable = "التعرف على الصوت غير متاح"
	StatusListening  = "وش ذا الصوت الزين؟"
	StatusRecognized = "ما شاء الله، نطقك زي العسل!"
	statusErrorFmt   = "خطأ في التعرف على الصوت: %s"
)

// Raw error codes reported by recognizers.
const (
	CodeNoSpeech     = "no-speech"
	CodeAudioCapture = "audio-capture"
	CodeAborted      = "aborted"
)

var (
	// ErrUnavailable is returned when no recognizer was detected at startup.
	ErrUnavailable = errors.New("voice: recognition unavailable")

	// ErrBusy is returned when an attempt is already running.
	ErrBusy = errors.New("voice: recognition already in progress")
)

// RecognitionError carries the raw code of a failed attempt.
type RecognitionError struct {
	Code string
	Err  error
}

func (e *RecognitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recognition %s: %v", e.Code, e.Err)
	}
	return "recognition " + e.Code
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// Recognizer runs one recognition attempt and returns the transcript of the
// first alternative of the first result.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// StatusFor renders the status line for a failed attempt.
func StatusFor(err error) string {
	var re *RecognitionError
	if errors.As(err, &re) {
		return fmt.Sprintf(statusErrorFmt, re.Code)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Sprintf(statusErrorFmt, CodeAborted)
	}
	return fmt.Sprintf(statusErrorFmt, err)
}

// Adapter gates recognition on the capability detected at startup and
// allows a single attempt at a time.
type Adapter struct {
	rec    Recognizer
	log    *logger.Logger
	active atomic.Bool
}

// NewAdapter wraps rec. A nil rec yields an adapter that is permanently
// unavailable.
func NewAdapter(rec Recognizer, log *logger.Logger) *Adapter {
	return &Adapter{rec: rec, log: log.With("component", "voice")}
}

func (a *Adapter) Available() bool {
	return a.rec != nil
}

// Label is the trigger control text.
func (a *Adapter) Label() string {
	if a.Available() {
		return LabelAvailable
	}
	return LabelUnavailable
}

// Recognize starts one attempt. Errors other than ErrUnavailable and
// ErrBusy are *RecognitionError.
func (a *Adapter) Recognize(ctx context.Context) (string, error) {
	if a.rec == nil {
		return "", ErrUnavailable
	}
	if !a.active.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer a.active.Store(false)

	text, err := a.rec.Recognize(ctx)
	if err != nil {
		var re *RecognitionError
		if !errors.As(err, &re) {
			code := CodeAborted
			if !errors.Is(err, context.Canceled) {
				code = "unknown"
			}
			err = &RecognitionError{Code: code, Err: err}
		}
		a.log.Warn("recognition failed", "error", err)
		return "", err
	}
	a.log.Debug("recognition ok", "chars", len([]rune(text)))
	return text, nil
}

// Busy reports whether an attempt is running.
func (a *Adapter) Busy() bool {
	return a.active.Load()
}

// Close releases the recognizer if it holds resources.
func (a *Adapter) Close() error {
	if c, ok := a.rec.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
