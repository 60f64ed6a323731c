package services

import (
	"context"
	"fmt"
	"time"

	"github.com/balamt/bagmytrip/domain"
)

// TripServiceImpl implements domain.TripService. Ownership is enforced
// by the repository: every lookup is scoped by the caller's user id, so
// this layer never sees another user's trips.
type TripServiceImpl struct {
	tripRepo domain.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(tripRepo domain.TripRepository) domain.TripService {
	return &TripServiceImpl{tripRepo: tripRepo}
}

// Create implements domain.TripService
func (s *TripServiceImpl) Create(ctx context.Context, ownerID uint, input domain.TripInput) (*domain.Trip, error) {
	if input.Destination == "" {
		return nil, domain.ErrDestinationRequired
	}

	trip := &domain.Trip{
		OwnerID:     ownerID,
		Destination: input.Destination,
		Budget:      defaultString(input.Budget, "moderate"),
		Duration:    defaultString(input.Duration, "short"),
		Interests:   input.Interests,
		TravelStyle: defaultString(input.TravelStyle, "comfortable"),
		GroupSize:   defaultString(input.GroupSize, "solo"),
		Preferences: input.Preferences,
		Status:      "planning",
		Itinerary:   []domain.ItineraryItem{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if trip.Interests == nil {
		trip.Interests = []string{}
	}
	if trip.Preferences == nil {
		trip.Preferences = map[string]any{}
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return trip, nil
}

// List implements domain.TripService
func (s *TripServiceImpl) List(ctx context.Context, ownerID uint) ([]domain.Trip, error) {
	return s.tripRepo.FindByOwner(ctx, ownerID)
}

// Get implements domain.TripService
func (s *TripServiceImpl) Get(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error) {
	return s.tripRepo.FindByID(ctx, ownerID, tripID)
}

// Update implements domain.TripService. The patch is merged shallowly;
// id and owner are taken from the stored trip, never from the payload.
func (s *TripServiceImpl) Update(ctx context.Context, ownerID, tripID uint, patch domain.TripPatch) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, err
	}

	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.Budget != nil {
		trip.Budget = *patch.Budget
	}
	if patch.Duration != nil {
		trip.Duration = *patch.Duration
	}
	if patch.Interests != nil {
		trip.Interests = patch.Interests
	}
	if patch.TravelStyle != nil {
		trip.TravelStyle = *patch.TravelStyle
	}
	if patch.GroupSize != nil {
		trip.GroupSize = *patch.GroupSize
	}
	if patch.Preferences != nil {
		trip.Preferences = patch.Preferences
	}
	if patch.Status != nil {
		trip.Status = *patch.Status
	}
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete implements domain.TripService
func (s *TripServiceImpl) Delete(ctx context.Context, ownerID, tripID uint) error {
	return s.tripRepo.Delete(ctx, ownerID, tripID)
}

// AddItineraryItem implements domain.TripService
func (s *TripServiceImpl) AddItineraryItem(ctx context.Context, ownerID, tripID uint, input domain.ItineraryItemInput) (*domain.ItineraryItem, *domain.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, nil, err
	}

	item := domain.ItineraryItem{
		ID:          nextItemID(trip.Itinerary),
		Day:         input.Day,
		Time:        defaultString(input.Time, "09:00"),
		Activity:    input.Activity,
		Location:    input.Location,
		Description: input.Description,
		Cost:        input.Cost,
		Type:        defaultString(input.Type, "activity"),
		CreatedAt:   time.Now(),
	}

	trip.Itinerary = append(trip.Itinerary, item)
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, nil, err
	}
	return &trip.Itinerary[len(trip.Itinerary)-1], trip, nil
}

// UpdateItineraryItem implements domain.TripService. The item id is
// re-pinned against payload tampering the same way trip ids are.
func (s *TripServiceImpl) UpdateItineraryItem(ctx context.Context, ownerID, tripID uint, itemID int64, patch domain.ItineraryItemPatch) (*domain.ItineraryItem, *domain.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i := range trip.Itinerary {
		if trip.Itinerary[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, domain.ErrItineraryItemNotFound
	}

	item := &trip.Itinerary[idx]
	if patch.Day != nil {
		item.Day = *patch.Day
	}
	if patch.Time != nil {
		item.Time = *patch.Time
	}
	if patch.Activity != nil {
		item.Activity = *patch.Activity
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Cost != nil {
		item.Cost = *patch.Cost
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	now := time.Now()
	item.UpdatedAt = &now
	trip.UpdatedAt = now

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, nil, err
	}
	return item, trip, nil
}

// nextItemID derives an item id from the current time in milliseconds,
// bumping past ids already present in the itinerary so two items added
// within the same millisecond stay distinct.
func nextItemID(items []domain.ItineraryItem) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for i := range items {
			if items[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
