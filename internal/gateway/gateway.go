package gateway

import "context"

// Client is the typed contract for the analyzer backend.
// Transport-level failures surface as *TransportError; a backend-declared
// semantic error is a successful call with AnalysisResult.Error set.
type Client interface {
	// SubmitSentence sends a sentence for grammatical analysis. The
	// sentence is not validated locally; empty input goes to the backend.
	SubmitSentence(ctx context.Context, sentence string) (*AnalysisResult, error)

	// FetchRandomSentence returns a sentence to prefill the input with.
	FetchRandomSentence(ctx context.Context) (string, error)

	// FetchNextQuestion returns the next quiz question.
	FetchNextQuestion(ctx context.Context) (*Question, error)
}

// AnalysisResult is the outcome of one analyze call.
type AnalysisResult struct {
	Sentence string
	Result   string

	// Error is true when the backend declared the input unusable.
	Error bool

	// Message is the backend's error text when it sent one. It is meant
	// for the operator log, not the learner.
	Message string
}

// Question is one multiple-choice quiz question. Correct is trusted to be
// one of Options.
type Question struct {
	Instruction string   `json:"instruction"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
}
