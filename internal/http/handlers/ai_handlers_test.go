package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balamt/bagmytrip/domain"
	"github.com/balamt/bagmytrip/internal/mocks"
)

func aiRouter(plannerSvc domain.PlannerService, devMode bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAIHandlers(plannerSvc, devMode)
	r := gin.New()
	r.POST("/ai/generate-trip", h.GenerateTrip)
	r.POST("/ai/chat", h.Chat)
	r.POST("/ai/insights", h.Insights)
	return r
}

func TestAIHandlers_GenerateTrip(t *testing.T) {
	t.Run("returns plan with generation timestamp", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		var gotReq domain.TripPlanRequest
		plannerSvc.GenerateTripPlanFunc = func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
			gotReq = req
			return map[string]any{"itinerary": []any{map[string]any{"day": 1}}}, nil
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/generate-trip", map[string]any{
			"destination": "Goa",
			"budget":      "luxury",
			"interests":   []string{"beaches"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}
		if gotReq.Destination != "Goa" || gotReq.Budget != "luxury" {
			t.Errorf("request not forwarded: %+v", gotReq)
		}
		if body["success"] != true {
			t.Errorf("expected success=true, got %v", body["success"])
		}
		if _, ok := body["data"].(map[string]any); !ok {
			t.Fatalf("expected data object, got %T", body["data"])
		}
		if _, err := time.Parse(time.RFC3339, body["generatedAt"].(string)); err != nil {
			t.Errorf("generatedAt is not RFC3339: %v", body["generatedAt"])
		}
	})

	t.Run("degraded plan is still a 200", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		plannerSvc.GenerateTripPlanFunc = func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
			return map[string]any{
				"itinerary":   []any{},
				"rawResponse": "just prose",
				"error":       "Could not parse structured response",
			}, nil
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/generate-trip", map[string]any{
			"destination": "Goa",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("degraded output must not fail the request, got %d", w.Code)
		}
		data := body["data"].(map[string]any)
		if data["rawResponse"] != "just prose" {
			t.Errorf("raw response not preserved: %v", data)
		}
	})

	t.Run("missing destination", func(t *testing.T) {
		w, _ := doJSON(t, aiRouter(mocks.NewMockPlannerService(), false), http.MethodPost, "/ai/generate-trip", map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("capability not configured", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		plannerSvc.GenerateTripPlanFunc = func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
			return nil, domain.ErrGenAINotConfigured
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/generate-trip", map[string]any{
			"destination": "Goa",
		})
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if body["error"] != "AI service not configured" {
			t.Errorf("unexpected error: %v", body["error"])
		}
	})

	t.Run("upstream failure hides details in production", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		plannerSvc.GenerateTripPlanFunc = func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
			return nil, errors.New("google: quota exceeded")
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/generate-trip", map[string]any{
			"destination": "Goa",
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if _, leaked := body["details"]; leaked {
			t.Error("upstream error details must not leak outside dev mode")
		}
	})

	t.Run("upstream failure surfaces details in dev mode", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		plannerSvc.GenerateTripPlanFunc = func(ctx context.Context, req domain.TripPlanRequest) (map[string]any, error) {
			return nil, errors.New("google: quota exceeded")
		}

		w, body := doJSON(t, aiRouter(plannerSvc, true), http.MethodPost, "/ai/generate-trip", map[string]any{
			"destination": "Goa",
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body["details"] != "google: quota exceeded" {
			t.Errorf("expected details in dev mode, got %v", body["details"])
		}
	})
}

func TestAIHandlers_Chat(t *testing.T) {
	t.Run("forwards message and context", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		var gotMessage string
		var gotContext map[string]any
		plannerSvc.ChatFunc = func(ctx context.Context, message string, chatContext map[string]any) (string, error) {
			gotMessage = message
			gotContext = chatContext
			return "Carry light cottons.", nil
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/chat", map[string]any{
			"message": "what should I pack?",
			"context": map[string]any{"destination": "Goa"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotMessage != "what should I pack?" {
			t.Errorf("message not forwarded: %q", gotMessage)
		}
		if gotContext["destination"] != "Goa" {
			t.Errorf("context not forwarded: %v", gotContext)
		}
		if body["response"] != "Carry light cottons." {
			t.Errorf("unexpected response: %v", body["response"])
		}
		if _, err := time.Parse(time.RFC3339, body["timestamp"].(string)); err != nil {
			t.Errorf("timestamp is not RFC3339: %v", body["timestamp"])
		}
	})

	t.Run("missing message", func(t *testing.T) {
		w, body := doJSON(t, aiRouter(mocks.NewMockPlannerService(), false), http.MethodPost, "/ai/chat", map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body["error"] != "Message is required" {
			t.Errorf("unexpected error: %v", body["error"])
		}
	})
}

func TestAIHandlers_Insights(t *testing.T) {
	t.Run("echoes destination alongside insights", func(t *testing.T) {
		plannerSvc := mocks.NewMockPlannerService()
		plannerSvc.InsightsFunc = func(ctx context.Context, destination string) (string, error) {
			return "Visit between November and February.", nil
		}

		w, body := doJSON(t, aiRouter(plannerSvc, false), http.MethodPost, "/ai/insights", map[string]any{
			"destination": "Goa",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["destination"] != "Goa" {
			t.Errorf("unexpected destination: %v", body["destination"])
		}
		if body["insights"] != "Visit between November and February." {
			t.Errorf("unexpected insights: %v", body["insights"])
		}
	})

	t.Run("missing destination", func(t *testing.T) {
		w, _ := doJSON(t, aiRouter(mocks.NewMockPlannerService(), false), http.MethodPost, "/ai/insights", map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
