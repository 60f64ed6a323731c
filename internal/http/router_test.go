package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/internal/http/handlers"
	"github.com/balamt/bagmytrip/internal/http/middleware"
	"github.com/balamt/bagmytrip/internal/mocks"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return BuildRouter(
		handlers.NewAuthHandlers(mocks.NewMockAuthService()),
		handlers.NewTripHandlers(mocks.NewMockTripService()),
		handlers.NewAIHandlers(mocks.NewMockPlannerService(), false),
		middleware.NewAuthMW(mocks.NewMockTokenService()),
		middleware.NewRateLimiter(100, 100),
		zap.NewNop(),
	)
}

func TestRouter_TripCreatePaths(t *testing.T) {
	r := testRouter()

	// Both the dedicated create path and the collection POST accept
	// trip creation.
	for _, path := range []string{"/trips/create", "/trips"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"destination":"Goa"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer good")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 on %s, got %d (body %s)", path, w.Code, w.Body.String())
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["message"] != "Trip created successfully" {
				t.Errorf("unexpected message: %v", body["message"])
			}
		})
	}
}

func TestRouter_GateCoverage(t *testing.T) {
	r := testRouter()

	// Every route past the gate rejects anonymous callers.
	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/profile"},
		{http.MethodPut, "/auth/preferences"},
		{http.MethodPost, "/trips/create"},
		{http.MethodGet, "/trips"},
		{http.MethodPost, "/ai/generate-trip"},
	}
	for _, route := range gated {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without a token: expected 401, got %d", route.method, route.path, w.Code)
		}
	}

	// Health and the auth entry points stay open.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected open /health, got %d", w.Code)
	}
}
