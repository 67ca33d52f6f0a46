package engine

import (
	"context"
	"sync"

	"github.com/Veraticus/budgetbuddy/internal/llm"
)

// MockLLM is a scripted llm.Client for tests. It returns its queued
// responses in order, repeating the last one, and records every prompt it
// receives.
type MockLLM struct {
	err       error
	responses []string
	prompts   []string
	mu        sync.Mutex
}

// NewMockLLM creates a mock client that replies with the given responses.
func NewMockLLM(responses ...string) *MockLLM {
	return &MockLLM{responses: responses}
}

// NewFailingLLM creates a mock client whose invocations always fail.
func NewFailingLLM(err error) *MockLLM {
	return &MockLLM{err: err}
}

// Invoke returns the next scripted response.
func (m *MockLLM) Invoke(_ context.Context, prompt string, _ llm.InvokeOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "", nil
	}

	response := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return response, nil
}

// Prompts returns a copy of the prompts received so far.
func (m *MockLLM) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
