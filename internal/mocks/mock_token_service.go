package mocks

import (
	"fmt"
	"time"

	"github.com/balamt/bagmytrip/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a token for the user
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_user_%d", userID), nil
}

// Validate validates a token and returns claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: return valid claims for non-empty tokens
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	now := time.Now().Unix()
	return &domain.TokenClaims{
		UserID:    1,
		IssuedAt:  now,
		ExpiresAt: now + int64((24 * time.Hour).Seconds()),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
