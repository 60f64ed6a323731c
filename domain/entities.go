package domain

import "time"

// User represents a registered traveller
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Preferences  map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// Trip represents a planned trip owned by exactly one user
type Trip struct {
	ID          uint            `json:"id"`
	OwnerID     uint            `json:"userId"`
	Destination string          `json:"destination"`
	Budget      string          `json:"budget"`
	Duration    string          `json:"duration"`
	Interests   []string        `json:"interests"`
	TravelStyle string          `json:"travelStyle"`
	GroupSize   string          `json:"groupSize"`
	Preferences map[string]any  `json:"preferences"`
	Status      string          `json:"status"`
	Itinerary   []ItineraryItem `json:"itinerary"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ItineraryItem is a single scheduled entry inside a trip's itinerary.
// Items keep insertion order and are only reachable through their trip.
type ItineraryItem struct {
	ID          int64      `json:"id"`
	Day         int        `json:"day"`
	Time        string     `json:"time"`
	Activity    string     `json:"activity"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost"`
	Type        string     `json:"type"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TripInput carries the caller-supplied fields for trip creation
type TripInput struct {
	Destination string
	Budget      string
	Duration    string
	Interests   []string
	TravelStyle string
	GroupSize   string
	Preferences map[string]any
}

// ItineraryItemInput carries the caller-supplied fields for a new itinerary item
type ItineraryItemInput struct {
	Day         int
	Time        string
	Activity    string
	Location    string
	Description string
	Cost        float64
	Type        string
}

// TripPatch carries a partial trip update. Nil pointers mean "leave as is".
type TripPatch struct {
	Destination *string
	Budget      *string
	Duration    *string
	Interests   []string
	TravelStyle *string
	GroupSize   *string
	Preferences map[string]any
	Status      *string
}

// ItineraryItemPatch carries a partial itinerary item update
type ItineraryItemPatch struct {
	Day         *int
	Time        *string
	Activity    *string
	Location    *string
	Description *string
	Cost        *float64
	Type        *string
}

// TripPlanRequest describes a structured generation request
type TripPlanRequest struct {
	Destination            string
	Budget                 string
	Duration               string
	Interests              []string
	TravelStyle            string
	GroupSize              string
	AdditionalRequirements string
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
