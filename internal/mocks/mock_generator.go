package mocks

import (
	"context"

	"github.com/balamt/bagmytrip/domain"
)

// MockGenerator implements domain.Generator interface for testing
type MockGenerator struct {
	GenerateFunc   func(ctx context.Context, prompt string) (string, error)
	ConfiguredFunc func() bool

	// Prompts records every prompt passed to Generate
	Prompts []string
}

// NewMockGenerator creates a new MockGenerator with default behaviors
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate produces text for a prompt
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return `{"itinerary": []}`, nil
}

// Configured reports whether the capability is available
func (m *MockGenerator) Configured() bool {
	if m.ConfiguredFunc != nil {
		return m.ConfiguredFunc()
	}
	return true
}

// Compile-time interface compliance verification
var _ domain.Generator = (*MockGenerator)(nil)
