package workbench

import (
	"github.com/abhisek/irab/internal/analysis"
	"github.com/abhisek/irab/internal/gateway"
)

// analysisDoneMsg carries the gateway answer for one submission.
type analysisDoneMsg struct {
	Ticket analysis.Ticket
	Result *gateway.AnalysisResult
	Err    error
}

// randomSentenceMsg carries a fetched random sentence.
type randomSentenceMsg struct {
	Sentence string
	Err      error
}

// voiceResultMsg carries the outcome of one recognition attempt.
type voiceResultMsg struct {
	Text string
	Err  error
}
