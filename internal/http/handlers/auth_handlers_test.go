package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/balamt/bagmytrip/domain"
	"github.com/balamt/bagmytrip/internal/http/middleware"
	"github.com/balamt/bagmytrip/internal/mocks"
)

// asUser builds a gin engine that pretends the gate already ran
func asUser(userID uint, method, path string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	}, handler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("decode response body %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    map[string]any
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]any)
	}{
		{
			name: "successful registration",
			requestBody: map[string]any{
				"name":     "Asha",
				"email":    "asha@example.com",
				"password": "secret123",
			},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]any) {
				if body["message"] != "User registered successfully" {
					t.Errorf("unexpected message: %v", body["message"])
				}
				if body["token"] != "token_user_1" {
					t.Errorf("unexpected token: %v", body["token"])
				}
				user, ok := body["user"].(map[string]any)
				if !ok {
					t.Fatalf("expected user object, got %T", body["user"])
				}
				if user["email"] != "asha@example.com" {
					t.Errorf("unexpected email: %v", user["email"])
				}
				if _, leaked := user["password"]; leaked {
					t.Error("password must never appear in responses")
				}
				if _, leaked := user["passwordHash"]; leaked {
					t.Error("password hash must never appear in responses")
				}
			},
		},
		{
			name: "password shorter than six characters",
			requestBody: map[string]any{
				"name":     "Asha",
				"email":    "asha@example.com",
				"password": "short",
			},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			requestBody: map[string]any{
				"email":    "asha@example.com",
				"password": "secret123",
			},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			requestBody: map[string]any{
				"name":     "Asha",
				"email":    "taken@example.com",
				"password": "secret123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, name, email, password string, preferences map[string]any) (*domain.AuthResult, error) {
					return nil, domain.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
			validateBody: func(t *testing.T, body map[string]any) {
				if body["error"] != "User already exists with this email" {
					t.Errorf("unexpected error: %v", body["error"])
				}
			},
		},
		{
			name: "store failure",
			requestBody: map[string]any{
				"name":     "Asha",
				"email":    "asha@example.com",
				"password": "secret123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, name, email, password string, preferences map[string]any) (*domain.AuthResult, error) {
					return nil, errors.New("db down")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)

			r := gin.New()
			r.POST("/auth/register", NewAuthHandlers(authSvc).Register)

			w, body := doJSON(t, r, http.MethodPost, "/auth/register", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    map[string]any
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful login",
			requestBody:    map[string]any{"email": "demo@bagmytrip.com", "password": "demo123"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown email",
			requestBody: map[string]any{"email": "nobody@example.com", "password": "demo123"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:        "wrong password reports the same error as unknown email",
			requestBody: map[string]any{"email": "demo@bagmytrip.com", "password": "wrong"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:           "missing password",
			requestBody:    map[string]any{"email": "demo@bagmytrip.com"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)

			r := gin.New()
			r.POST("/auth/login", NewAuthHandlers(authSvc).Login)

			w, body := doJSON(t, r, http.MethodPost, "/auth/login", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedError != "" && body["error"] != tt.expectedError {
				t.Errorf("expected error %q, got %v", tt.expectedError, body["error"])
			}
			if tt.expectedStatus == http.StatusOK {
				if body["message"] != "Login successful" {
					t.Errorf("unexpected message: %v", body["message"])
				}
				if body["token"] == "" || body["token"] == nil {
					t.Error("expected a token in the response")
				}
			}
		})
	}
}

func TestAuthHandlers_Profile(t *testing.T) {
	t.Run("returns profile of the authenticated user", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		var requestedID uint
		authSvc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
			requestedID = userID
			return &domain.User{ID: userID, Name: "Demo User", Email: "demo@bagmytrip.com"}, nil
		}

		r := asUser(42, http.MethodGet, "/auth/profile", NewAuthHandlers(authSvc).Profile)
		w, body := doJSON(t, r, http.MethodGet, "/auth/profile", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if requestedID != 42 {
			t.Errorf("profile fetched for user %d, want 42", requestedID)
		}
		user := body["user"].(map[string]any)
		if user["id"] != float64(42) {
			t.Errorf("unexpected user id: %v", user["id"])
		}
	})

	t.Run("user not found", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		}

		r := asUser(42, http.MethodGet, "/auth/profile", NewAuthHandlers(authSvc).Profile)
		w, _ := doJSON(t, r, http.MethodGet, "/auth/profile", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAuthHandlers_UpdatePreferences(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	var gotPrefs map[string]any
	authSvc.UpdatePreferencesFunc = func(ctx context.Context, userID uint, preferences map[string]any) (*domain.User, error) {
		gotPrefs = preferences
		return &domain.User{ID: userID, Preferences: preferences}, nil
	}

	r := asUser(7, http.MethodPut, "/auth/preferences", NewAuthHandlers(authSvc).UpdatePreferences)
	w, body := doJSON(t, r, http.MethodPut, "/auth/preferences", map[string]any{"budget": "luxury"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if gotPrefs["budget"] != "luxury" {
		t.Errorf("preferences not forwarded: %v", gotPrefs)
	}
	if body["message"] != "Preferences updated successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
