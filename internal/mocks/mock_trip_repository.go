package mocks

import (
	"context"

	"github.com/balamt/bagmytrip/domain"
)

// MockTripRepository implements domain.TripRepository interface for testing
type MockTripRepository struct {
	CreateFunc      func(ctx context.Context, trip *domain.Trip) error
	FindByOwnerFunc func(ctx context.Context, ownerID uint) ([]domain.Trip, error)
	FindByIDFunc    func(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error)
	UpdateFunc      func(ctx context.Context, trip *domain.Trip) error
	DeleteFunc      func(ctx context.Context, ownerID, tripID uint) error
}

// NewMockTripRepository creates a new MockTripRepository with default behaviors
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

// Create stores a trip
func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, trip)
	}
	// Default behavior: assign an id as the database would
	trip.ID = 1
	return nil
}

// FindByOwner lists trips for an owner
func (m *MockTripRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Trip, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return []domain.Trip{}, nil
}

// FindByID looks up a trip scoped by owner
func (m *MockTripRepository) FindByID(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ownerID, tripID)
	}
	return nil, domain.ErrTripNotFound
}

// Update persists trip changes
func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, trip)
	}
	return nil
}

// Delete removes a trip scoped by owner
func (m *MockTripRepository) Delete(ctx context.Context, ownerID, tripID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, tripID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.TripRepository = (*MockTripRepository)(nil)
