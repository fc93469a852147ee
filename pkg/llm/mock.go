package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockProvider is an in-process backend for tests and `generate --mock`
// dry runs. With no script it echoes a canned response per call; with a
// script it replays outcomes in order, repeating the last one.
type MockProvider struct {
	mu     sync.Mutex
	calls  int
	script []MockOutcome
}

// MockOutcome is one scripted attempt result.
type MockOutcome struct {
	Text string
	Err  *CallError
}

// NewMockProvider returns an unscripted mock.
func NewMockProvider() *MockProvider { return &MockProvider{} }

// NewScriptedMock returns a mock that replays outcomes in order.
func NewScriptedMock(script ...MockOutcome) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Name() string { return "mock" }

// Calls reports how many times Invoke ran.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockProvider) Invoke(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if len(m.script) > 0 {
		idx := m.calls - 1
		if idx >= len(m.script) {
			idx = len(m.script) - 1
		}
		out := m.script[idx]
		if out.Err != nil {
			return "", out.Err
		}
		return out.Text, nil
	}

	// Unscripted: echo a short preview of the prompt so template wiring is
	// visible in dry runs.
	firstLine := req.Prompt
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	return fmt.Sprintf("[mock %s] %s", req.Model, strings.TrimSpace(firstLine)), nil
}
