package mocks

import (
	"context"

	"github.com/balamt/bagmytrip/domain"
)

// MockInsightCache implements domain.InsightCache interface for testing
type MockInsightCache struct {
	GetFunc func(ctx context.Context, destination string) (string, error)
	SetFunc func(ctx context.Context, destination, insights string) error

	// Stored records every Set call
	Stored map[string]string
}

// NewMockInsightCache creates a new MockInsightCache with default behaviors
func NewMockInsightCache() *MockInsightCache {
	return &MockInsightCache{Stored: map[string]string{}}
}

// Get looks up cached insights
func (m *MockInsightCache) Get(ctx context.Context, destination string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, destination)
	}
	if m.Stored != nil {
		if v, ok := m.Stored[destination]; ok {
			return v, nil
		}
	}
	return "", domain.ErrCacheMiss
}

// Set stores insights
func (m *MockInsightCache) Set(ctx context.Context, destination, insights string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, destination, insights)
	}
	if m.Stored == nil {
		m.Stored = map[string]string{}
	}
	m.Stored[destination] = insights
	return nil
}

// Compile-time interface compliance verification
var _ domain.InsightCache = (*MockInsightCache)(nil)
