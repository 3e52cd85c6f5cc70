// Package testutil provides the scripted model shared by integration tests
// and the interactive CLI.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// ScriptedModel is an llms.Model that replays canned responses in order.
// It keeps integration tests hermetic: the extraction pipeline runs against
// exactly the output shapes a live provider would produce, without network
// access or keys.
//
//	model := testutil.NewScriptedModel().
//	    AddTextResponse("I'll look that up.\n\nsearchResources(query: \"weather\")").
//	    AddToolCallResponse("readResource", `{"path": "notes.md"}`)
type ScriptedModel struct {
	mu        sync.Mutex
	responses []*llms.ContentResponse
	calls     int
	chunkSize int
}

// NewScriptedModel creates an empty ScriptedModel.
func NewScriptedModel() *ScriptedModel {
	return &ScriptedModel{chunkSize: 7}
}

// WithChunkSize sets how many bytes each streamed chunk carries when a
// caller passes llms.WithStreamingFunc. Small sizes exercise mid-token
// payload splits.
func (m *ScriptedModel) WithChunkSize(n int) *ScriptedModel {
	if n > 0 {
		m.chunkSize = n
	}
	return m
}

// AddTextResponse queues a plain text completion.
func (m *ScriptedModel) AddTextResponse(text string) *ScriptedModel {
	return m.AddChoice(&llms.ContentChoice{
		Content:    text,
		StopReason: "stop",
	})
}

// AddToolCallResponse queues a completion carrying one native tool call,
// the shape providers with structured tool support return.
func (m *ScriptedModel) AddToolCallResponse(name, arguments string) *ScriptedModel {
	return m.AddChoice(&llms.ContentChoice{
		StopReason: "tool_calls",
		ToolCalls: []llms.ToolCall{{
			ID:   fmt.Sprintf("call_%d", len(m.responses)+1),
			Type: "function",
			FunctionCall: &llms.FunctionCall{
				Name:      name,
				Arguments: arguments,
			},
		}},
	})
}

// AddChoice queues a completion with full control over the choice.
func (m *ScriptedModel) AddChoice(choice *llms.ContentChoice) *ScriptedModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, &llms.ContentResponse{
		Choices: []*llms.ContentChoice{choice},
	})
	return m
}

// Calls returns how many completions have been served.
func (m *ScriptedModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// GenerateContent serves the next scripted response. When the caller
// passes llms.WithStreamingFunc, the choice's content is delivered through
// it in chunks first, the way streaming providers do.
func (m *ScriptedModel) GenerateContent(
	ctx context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*llms.ContentResponse, error) {
	m.mu.Lock()
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, errors.New("scripted model: no responses left")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	m.calls++
	chunk := m.chunkSize
	m.mu.Unlock()

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.StreamingFunc != nil && len(resp.Choices) > 0 {
		content := resp.Choices[0].Content
		for start := 0; start < len(content); start += chunk {
			end := start + chunk
			if end > len(content) {
				end = len(content)
			}
			if err := opts.StreamingFunc(ctx, []byte(content[start:end])); err != nil {
				return nil, err
			}
		}
	}
	return resp, nil
}

// Call implements the deprecated llms.Model text path.
func (m *ScriptedModel) Call(
	ctx context.Context,
	prompt string,
	options ...llms.CallOption,
) (string, error) {
	resp, err := m.GenerateContent(
		ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		options...,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("scripted model: response has no choices")
	}
	return resp.Choices[0].Content, nil
}

// Compile-time check that ScriptedModel implements llms.Model.
var _ llms.Model = (*ScriptedModel)(nil)
