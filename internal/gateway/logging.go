package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/irab/internal/logger"
)

// LoggingClient is a decorator that records every backend call on the
// operator log. Learners never see these entries.
type LoggingClient struct {
	inner Client
	log   *logger.Logger
}

// WithLogging wraps a Client with operator logging.
func WithLogging(c Client, log *logger.Logger) Client {
	return &LoggingClient{inner: c, log: log.With("component", "gateway")}
}

func (l *LoggingClient) SubmitSentence(ctx context.Context, sentence string) (*AnalysisResult, error) {
	start := time.Now()
	res, err := l.inner.SubmitSentence(ctx, sentence)
	latency := time.Since(start).Milliseconds()

	switch {
	case err != nil:
		l.log.Error("backend call failed", "op", opAnalyze, "latency_ms", latency, "error", err)
	case res.Error:
		l.log.Info("backend rejected input", "op", opAnalyze, "latency_ms", latency, "message", res.Message)
	default:
		l.log.Debug("backend call ok", "op", opAnalyze, "latency_ms", latency)
	}
	return res, err
}

func (l *LoggingClient) FetchRandomSentence(ctx context.Context) (string, error) {
	start := time.Now()
	s, err := l.inner.FetchRandomSentence(ctx)
	l.record(opRandom, start, err)
	return s, err
}

func (l *LoggingClient) FetchNextQuestion(ctx context.Context) (*Question, error) {
	start := time.Now()
	q, err := l.inner.FetchNextQuestion(ctx)
	l.record(opQuestion, start, err)
	return q, err
}

func (l *LoggingClient) record(op string, start time.Time, err error) {
	latency := time.Since(start).Milliseconds()
	if err != nil {
		// Superseded requests are cancelled on purpose.
		if errors.Is(err, context.Canceled) {
			l.log.Debug("backend call cancelled", "op", op, "latency_ms", latency)
			return
		}
		l.log.Error("backend call failed", "op", op, "latency_ms", latency, "error", err)
		return
	}
	l.log.Debug("backend call ok", "op", op, "latency_ms", latency)
}
