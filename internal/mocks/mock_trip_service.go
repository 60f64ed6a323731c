package mocks

import (
	"context"

	"github.com/balamt/bagmytrip/domain"
)

// MockTripService implements domain.TripService interface for testing
type MockTripService struct {
	CreateFunc              func(ctx context.Context, ownerID uint, input domain.TripInput) (*domain.Trip, error)
	ListFunc                func(ctx context.Context, ownerID uint) ([]domain.Trip, error)
	GetFunc                 func(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error)
	UpdateFunc              func(ctx context.Context, ownerID, tripID uint, patch domain.TripPatch) (*domain.Trip, error)
	DeleteFunc              func(ctx context.Context, ownerID, tripID uint) error
	AddItineraryItemFunc    func(ctx context.Context, ownerID, tripID uint, input domain.ItineraryItemInput) (*domain.ItineraryItem, *domain.Trip, error)
	UpdateItineraryItemFunc func(ctx context.Context, ownerID, tripID uint, itemID int64, patch domain.ItineraryItemPatch) (*domain.ItineraryItem, *domain.Trip, error)
}

// NewMockTripService creates a new MockTripService with default behaviors
func NewMockTripService() *MockTripService {
	return &MockTripService{}
}

// Create creates a trip
func (m *MockTripService) Create(ctx context.Context, ownerID uint, input domain.TripInput) (*domain.Trip, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, input)
	}
	return &domain.Trip{ID: 1, OwnerID: ownerID, Destination: input.Destination, Status: "planning"}, nil
}

// List lists an owner's trips
func (m *MockTripService) List(ctx context.Context, ownerID uint) ([]domain.Trip, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return []domain.Trip{}, nil
}

// Get fetches a trip scoped by owner
func (m *MockTripService) Get(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID, tripID)
	}
	return nil, domain.ErrTripNotFound
}

// Update applies a partial trip update
func (m *MockTripService) Update(ctx context.Context, ownerID, tripID uint, patch domain.TripPatch) (*domain.Trip, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ownerID, tripID, patch)
	}
	return nil, domain.ErrTripNotFound
}

// Delete removes a trip
func (m *MockTripService) Delete(ctx context.Context, ownerID, tripID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, tripID)
	}
	return domain.ErrTripNotFound
}

// AddItineraryItem appends an item to a trip's itinerary
func (m *MockTripService) AddItineraryItem(ctx context.Context, ownerID, tripID uint, input domain.ItineraryItemInput) (*domain.ItineraryItem, *domain.Trip, error) {
	if m.AddItineraryItemFunc != nil {
		return m.AddItineraryItemFunc(ctx, ownerID, tripID, input)
	}
	return nil, nil, domain.ErrTripNotFound
}

// UpdateItineraryItem applies a partial item update
func (m *MockTripService) UpdateItineraryItem(ctx context.Context, ownerID, tripID uint, itemID int64, patch domain.ItineraryItemPatch) (*domain.ItineraryItem, *domain.Trip, error) {
	if m.UpdateItineraryItemFunc != nil {
		return m.UpdateItineraryItemFunc(ctx, ownerID, tripID, itemID, patch)
	}
	return nil, nil, domain.ErrTripNotFound
}

// Compile-time interface compliance verification
var _ domain.TripService = (*MockTripService)(nil)
