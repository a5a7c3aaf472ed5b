package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/pharmamesh/core"
)

// Request captures the normalized model input: a per-role instruction
// context followed by the ordered conversation history.
type Request struct {
	Instructions string         `json:"instructions"`
	Messages     []core.Message `json:"messages"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the single completion returned by a generation call. Text may
// be empty for a valid but contentless completion; providers signal real
// failures through the error return of Generate.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal synchronous interface required to drive generation.
// A call blocks until the provider returns one complete message or fails.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses resolve in order of precedence: a forced error, the FIFO queue,
// a canned response keyed by the last message content, then a generic echo.
type MockModel struct {
	info      Info
	responses map[string]string
	queue     []string
	err       error
	calls     int
}

// NewMockModel constructs an empty MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a last-message
// content value.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// QueueResponse appends a completion to the FIFO queue. Queued completions
// take precedence over canned ones.
func (m *MockModel) QueueResponse(response string) { m.queue = append(m.queue, response) }

// FailWith forces every subsequent Generate call to return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Calls reports how many times Generate has been invoked.
func (m *MockModel) Calls() int { return m.calls }

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		text := m.queue[0]
		m.queue = m.queue[1:]
		return &Response{Text: text, FinishReason: "stop"}, nil
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	last := req.Messages[len(req.Messages)-1]
	if text, ok := m.responses[last.Content]; ok {
		return &Response{Text: text, FinishReason: "stop"}, nil
	}
	return &Response{Text: fmt.Sprintf("Mock response to: %s", last.Content), FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
