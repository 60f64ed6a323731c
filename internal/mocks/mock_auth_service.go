package mocks

import (
	"context"
	"time"

	"github.com/balamt/bagmytrip/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc          func(ctx context.Context, name, email, password string, preferences map[string]any) (*domain.AuthResult, error)
	LoginFunc             func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetProfileFunc        func(ctx context.Context, userID uint) (*domain.User, error)
	UpdatePreferencesFunc func(ctx context.Context, userID uint, preferences map[string]any) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func defaultUser() *domain.User {
	return &domain.User{
		ID:          1,
		Name:        "Demo User",
		Email:       "demo@bagmytrip.com",
		Preferences: map[string]any{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string, preferences map[string]any) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, preferences)
	}
	user := defaultUser()
	user.Name = name
	user.Email = email
	return &domain.AuthResult{User: user, Token: "token_user_1", ExpiresIn: 86400}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{User: defaultUser(), Token: "token_user_1", ExpiresIn: 86400}, nil
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return defaultUser(), nil
}

// UpdatePreferences merges preference changes
func (m *MockAuthService) UpdatePreferences(ctx context.Context, userID uint, preferences map[string]any) (*domain.User, error) {
	if m.UpdatePreferencesFunc != nil {
		return m.UpdatePreferencesFunc(ctx, userID, preferences)
	}
	user := defaultUser()
	user.Preferences = preferences
	return user, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
