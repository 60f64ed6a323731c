package mocks

import (
	"context"

	"github.com/balamt/bagmytrip/domain"
)

// MockPlannerService implements domain.PlannerService interface for testing
type MockPlannerService struct {
	GenerateTripPlanFunc func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error)
	ChatFunc             func(ctx context.Context, message string, chatContext map[string]any) (string, error)
	InsightsFunc         func(ctx context.Context, destination string) (string, error)
}

// NewMockPlannerService creates a new MockPlannerService with default behaviors
func NewMockPlannerService() *MockPlannerService {
	return &MockPlannerService{}
}

// GenerateTripPlan produces a structured trip plan
func (m *MockPlannerService) GenerateTripPlan(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
	if m.GenerateTripPlanFunc != nil {
		return m.GenerateTripPlanFunc(ctx, req)
	}
	return map[string]any{"itinerary": []any{}}, nil
}

// Chat produces a free-form assistant reply
func (m *MockPlannerService) Chat(ctx context.Context, message string, chatContext map[string]any) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message, chatContext)
	}
	return "Happy to help plan your trip!", nil
}

// Insights produces destination insights
func (m *MockPlannerService) Insights(ctx context.Context, destination string) (string, error) {
	if m.InsightsFunc != nil {
		return m.InsightsFunc(ctx, destination)
	}
	return "Travel insights for " + destination, nil
}

// Compile-time interface compliance verification
var _ domain.PlannerService = (*MockPlannerService)(nil)
