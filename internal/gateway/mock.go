package gateway

import (
	"context"
	"errors"
	"sync"
)

// ErrNoResponse is returned by MockClient when its queue for a call is empty.
var ErrNoResponse = errors.New("mock: no canned response")

// MockClient is a deterministic Client for tests. Each operation returns
// canned responses in FIFO order and records its inputs.
type MockClient struct {
	mu        sync.Mutex
	analyses  []MockAnalysis
	sentences []MockSentence
	questions []MockQuestion

	Submitted []string
	Calls     int
}

// MockAnalysis is a canned SubmitSentence outcome.
type MockAnalysis struct {
	Result *AnalysisResult
	Err    error
}

// MockSentence is a canned FetchRandomSentence outcome.
type MockSentence struct {
	Sentence string
	Err      error
}

// MockQuestion is a canned FetchNextQuestion outcome.
type MockQuestion struct {
	Question *Question
	Err      error
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) AddAnalysis(a MockAnalysis) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, a)
	return m
}

func (m *MockClient) AddSentence(s MockSentence) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentences = append(m.sentences, s)
	return m
}

func (m *MockClient) AddQuestion(q MockQuestion) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = append(m.questions, q)
	return m
}

func (m *MockClient) SubmitSentence(_ context.Context, sentence string) (*AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.Submitted = append(m.Submitted, sentence)

	if len(m.analyses) == 0 {
		return nil, &TransportError{Op: opAnalyze, Err: ErrNoResponse}
	}
	a := m.analyses[0]
	m.analyses = m.analyses[1:]
	if a.Err != nil {
		return nil, a.Err
	}
	res := *a.Result
	res.Sentence = sentence
	return &res, nil
}

func (m *MockClient) FetchRandomSentence(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if len(m.sentences) == 0 {
		return "", &TransportError{Op: opRandom, Err: ErrNoResponse}
	}
	s := m.sentences[0]
	m.sentences = m.sentences[1:]
	return s.Sentence, s.Err
}

func (m *MockClient) FetchNextQuestion(context.Context) (*Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if len(m.questions) == 0 {
		return nil, &TransportError{Op: opQuestion, Err: ErrNoResponse}
	}
	q := m.questions[0]
	m.questions = m.questions[1:]
	return q.Question, q.Err
}

// CallCount returns the number of calls made across all operations.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
