package generation

import (
	"context"
	"encoding/json"
)

// MockGenerator is a deterministic Generator for tests. It records the last
// system instruction and prompt it received.
type MockGenerator struct {
	Response   json.RawMessage
	Err        error
	LastSystem string
	LastPrompt string
	Calls      int
}

// NewMockGenerator returns a mock that always yields the given raw JSON.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: json.RawMessage(response)}
}

// NewMockGeneratorWithError returns a mock that always fails.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// GenerateJSON returns the configured response or error.
func (m *MockGenerator) GenerateJSON(_ context.Context, system, prompt string) (json.RawMessage, error) {
	m.Calls++
	m.LastSystem = system
	m.LastPrompt = prompt
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}
