package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Resource errors. A trip owned by another user and a trip that never
// existed surface the same error, so probing foreign ids cannot be
// told apart from probing nonexistent ones.
var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrItineraryItemNotFound = errors.New("itinerary item not found")
)

// Generation errors
var (
	ErrGenAINotConfigured  = errors.New("generative AI service not configured")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrDestinationRequired = errors.New("destination is required")
	ErrMessageRequired     = errors.New("message is required")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("cache miss")
)
