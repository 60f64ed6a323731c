package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// TripRepository defines trip data access operations. Every lookup and
// mutation is scoped by the owning user's id.
type TripRepository interface {
	Create(ctx context.Context, trip *Trip) error
	FindByOwner(ctx context.Context, ownerID uint) ([]Trip, error)
	FindByID(ctx context.Context, ownerID, tripID uint) (*Trip, error)
	Update(ctx context.Context, trip *Trip) error
	Delete(ctx context.Context, ownerID, tripID uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string, preferences map[string]any) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdatePreferences(ctx context.Context, userID uint, preferences map[string]any) (*User, error)
}

// TripService defines ownership-scoped trip business logic
type TripService interface {
	Create(ctx context.Context, ownerID uint, input TripInput) (*Trip, error)
	List(ctx context.Context, ownerID uint) ([]Trip, error)
	Get(ctx context.Context, ownerID, tripID uint) (*Trip, error)
	Update(ctx context.Context, ownerID, tripID uint, patch TripPatch) (*Trip, error)
	Delete(ctx context.Context, ownerID, tripID uint) error
	AddItineraryItem(ctx context.Context, ownerID, tripID uint, input ItineraryItemInput) (*ItineraryItem, *Trip, error)
	UpdateItineraryItem(ctx context.Context, ownerID, tripID uint, itemID int64, patch ItineraryItemPatch) (*ItineraryItem, *Trip, error)
}

// PlannerService turns structured travel-planning requests into prompts
// and recovers structured results from free-form model output.
type PlannerService interface {
	GenerateTripPlan(ctx context.Context, req TripPlanRequest) (map[string]any, error)
	Chat(ctx context.Context, message string, chatContext map[string]any) (string, error)
	Insights(ctx context.Context, destination string) (string, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Generator is the opaque text-generation capability
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// InsightCache caches generated destination insights
type InsightCache interface {
	Get(ctx context.Context, destination string) (string, error)
	Set(ctx context.Context, destination, insights string) error
}
