package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/balamt/bagmytrip/domain"
)

// TripRepositoryImpl implements domain.TripRepository using GORM.
// Every query is filtered by owner_id, so a trip owned by someone else
// and a trip that does not exist look identical to the caller.
type TripRepositoryImpl struct {
	db *gorm.DB
}

// DBTrip represents the database model for Trip. List- and map-valued
// fields are serialized to JSON text columns; the itinerary lives
// inside its trip row, which keeps item ordering and makes ownership
// checks a single lookup.
type DBTrip struct {
	ID          uint   `gorm:"primaryKey"`
	OwnerID     uint   `gorm:"index;column:owner_id"`
	Destination string `gorm:"size:255"`
	Budget      string `gorm:"size:64"`
	Duration    string `gorm:"size:64"`
	Interests   string `gorm:"type:text"`
	TravelStyle string `gorm:"size:64"`
	GroupSize   string `gorm:"size:64"`
	Preferences string `gorm:"type:text"`
	Status      string `gorm:"size:32;index"`
	Itinerary   string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBTrip) TableName() string {
	return "trips"
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) domain.TripRepository {
	return &TripRepositoryImpl{db: db}
}

// Create implements domain.TripRepository
func (r *TripRepositoryImpl) Create(ctx context.Context, trip *domain.Trip) error {
	dbTrip := r.domainToDB(trip)
	if err := r.db.WithContext(ctx).Create(dbTrip).Error; err != nil {
		return err
	}
	trip.ID = dbTrip.ID
	trip.CreatedAt = dbTrip.CreatedAt
	trip.UpdatedAt = dbTrip.UpdatedAt
	return nil
}

// FindByOwner implements domain.TripRepository
func (r *TripRepositoryImpl) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Trip, error) {
	var dbTrips []DBTrip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&dbTrips).Error
	if err != nil {
		return nil, err
	}

	trips := make([]domain.Trip, 0, len(dbTrips))
	for i := range dbTrips {
		trips = append(trips, *r.dbToDomain(&dbTrips[i]))
	}
	return trips, nil
}

// FindByID implements domain.TripRepository
func (r *TripRepositoryImpl) FindByID(ctx context.Context, ownerID, tripID uint) (*domain.Trip, error) {
	var dbTrip DBTrip
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", tripID, ownerID).
		First(&dbTrip).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTrip), nil
}

// Update implements domain.TripRepository
func (r *TripRepositoryImpl) Update(ctx context.Context, trip *domain.Trip) error {
	dbTrip := r.domainToDB(trip)
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", trip.ID, trip.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(dbTrip)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTripNotFound
	}
	trip.UpdatedAt = dbTrip.UpdatedAt
	return nil
}

// Delete implements domain.TripRepository. Hard delete, no tombstone.
func (r *TripRepositoryImpl) Delete(ctx context.Context, ownerID, tripID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", tripID, ownerID).
		Delete(&DBTrip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

// domainToDB converts domain trip to database trip
func (r *TripRepositoryImpl) domainToDB(trip *domain.Trip) *DBTrip {
	interests, _ := json.Marshal(trip.Interests)
	prefs, _ := json.Marshal(trip.Preferences)
	itinerary, _ := json.Marshal(trip.Itinerary)
	return &DBTrip{
		ID:          trip.ID,
		OwnerID:     trip.OwnerID,
		Destination: trip.Destination,
		Budget:      trip.Budget,
		Duration:    trip.Duration,
		Interests:   string(interests),
		TravelStyle: trip.TravelStyle,
		GroupSize:   trip.GroupSize,
		Preferences: string(prefs),
		Status:      trip.Status,
		Itinerary:   string(itinerary),
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
}

// dbToDomain converts database trip to domain trip
func (r *TripRepositoryImpl) dbToDomain(dbTrip *DBTrip) *domain.Trip {
	interests := []string{}
	if dbTrip.Interests != "" {
		_ = json.Unmarshal([]byte(dbTrip.Interests), &interests)
	}
	prefs := map[string]any{}
	if dbTrip.Preferences != "" {
		_ = json.Unmarshal([]byte(dbTrip.Preferences), &prefs)
	}
	itinerary := []domain.ItineraryItem{}
	if dbTrip.Itinerary != "" {
		_ = json.Unmarshal([]byte(dbTrip.Itinerary), &itinerary)
	}
	return &domain.Trip{
		ID:          dbTrip.ID,
		OwnerID:     dbTrip.OwnerID,
		Destination: dbTrip.Destination,
		Budget:      dbTrip.Budget,
		Duration:    dbTrip.Duration,
		Interests:   interests,
		TravelStyle: dbTrip.TravelStyle,
		GroupSize:   dbTrip.GroupSize,
		Preferences: prefs,
		Status:      dbTrip.Status,
		Itinerary:   itinerary,
		CreatedAt:   dbTrip.CreatedAt,
		UpdatedAt:   dbTrip.UpdatedAt,
	}
}
