package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	opAnalyze  = "analyze"
	opRandom   = "random-sentence"
	opQuestion = "next-question"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTPClient talks to the analyzer backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.http.Timeout = d }
}

// NewHTTPClient creates a client for the backend rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type analyzeRequest struct {
	Sentence string `json:"sentence"`
}

type analyzeResponse struct {
	Result string          `json:"result"`
	Error  json.RawMessage `json:"error"`
}

func (h *HTTPClient) SubmitSentence(ctx context.Context, sentence string) (*AnalysisResult, error) {
	body, err := json.Marshal(analyzeRequest{Sentence: sentence})
	if err != nil {
		return nil, &TransportError{Op: opAnalyze, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: opAnalyze, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, data, err := h.do(req)
	if err != nil {
		return nil, &TransportError{Op: opAnalyze, Err: err}
	}

	var resp analyzeResponse
	decodeErr := json.Unmarshal(data, &resp)

	// The backend reports bad input as 400 with an error body; that is a
	// semantic answer, not a transport failure.
	if decodeErr == nil && truthy(resp.Error) {
		return &AnalysisResult{
			Sentence: sentence,
			Error:    true,
			Message:  errorText(resp.Error),
		}, nil
	}
	if status < 200 || status > 299 {
		return nil, &TransportError{Op: opAnalyze, StatusCode: status, Err: fmt.Errorf("unexpected status %s", http.StatusText(status))}
	}
	if decodeErr != nil {
		return nil, &TransportError{Op: opAnalyze, StatusCode: status, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}

	return &AnalysisResult{Sentence: sentence, Result: resp.Result}, nil
}

func (h *HTTPClient) FetchRandomSentence(ctx context.Context) (string, error) {
	var resp struct {
		Sentence string `json:"sentence"`
	}
	if err := h.getJSON(ctx, opRandom, "/random-sentence", &resp); err != nil {
		return "", err
	}
	return resp.Sentence, nil
}

func (h *HTTPClient) FetchNextQuestion(ctx context.Context) (*Question, error) {
	var q Question
	if err := h.getJSON(ctx, opQuestion, "/get-quiz-question", &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (h *HTTPClient) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	status, data, err := h.do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if status < 200 || status > 299 {
		return &TransportError{Op: op, StatusCode: status, Err: fmt.Errorf("unexpected status %s", http.StatusText(status))}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (h *HTTPClient) do(req *http.Request) (int, []byte, error) {
	resp, err := h.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, data, nil
}

// truthy mirrors JavaScript truthiness for a raw JSON value.
func truthy(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	switch s {
	case "", "null", "false", "0", "-0", `""`:
		return false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f != 0
	}
	return true
}

// errorText returns the error value as text when it is a JSON string.
func errorText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
