package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balamt/bagmytrip/domain"
)

// AIHandlers handles AI generation HTTP requests
type AIHandlers struct {
	plannerSvc domain.PlannerService
	devMode    bool
}

// NewAIHandlers creates new AI handlers. In dev mode upstream error
// details are echoed to the client; in production they are not.
func NewAIHandlers(plannerSvc domain.PlannerService, devMode bool) *AIHandlers {
	return &AIHandlers{plannerSvc: plannerSvc, devMode: devMode}
}

// GenerateTripRequest represents a structured plan generation request
type GenerateTripRequest struct {
	Destination            string   `json:"destination" binding:"required"`
	Budget                 string   `json:"budget"`
	Duration               string   `json:"duration"`
	Interests              []string `json:"interests"`
	TravelStyle            string   `json:"travelStyle"`
	GroupSize              string   `json:"groupSize"`
	AdditionalRequirements string   `json:"additionalRequirements"`
}

// ChatRequest represents a free-form travel chat request
type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	Context map[string]any `json:"context"`
}

// InsightsRequest represents a destination insights request
type InsightsRequest struct {
	Destination string `json:"destination" binding:"required"`
}

func (h *AIHandlers) generationError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrDestinationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
	case errors.Is(err, domain.ErrMessageRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
	case errors.Is(err, domain.ErrGenAINotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "AI service not configured",
			"message": "Please set GOOGLE_AI_API_KEY in environment variables",
		})
	default:
		body := gin.H{"error": "Failed to " + action, "message": "AI service temporarily unavailable"}
		if h.devMode {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// GenerateTrip handles structured trip plan generation
func (h *AIHandlers) GenerateTrip(c *gin.Context) {
	var req GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
		return
	}

	plan, err := h.plannerSvc.GenerateTripPlan(c.Request.Context(), domain.TripPlanRequest{
		Destination:            req.Destination,
		Budget:                 req.Budget,
		Duration:               req.Duration,
		Interests:              req.Interests,
		TravelStyle:            req.TravelStyle,
		GroupSize:              req.GroupSize,
		AdditionalRequirements: req.AdditionalRequirements,
	})
	if err != nil {
		h.generationError(c, err, "generate trip plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        plan,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// Chat handles free-form travel questions
func (h *AIHandlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.plannerSvc.Chat(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		h.generationError(c, err, "process chat message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Insights handles destination insights requests
func (h *AIHandlers) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
		return
	}

	insights, err := h.plannerSvc.Insights(c.Request.Context(), req.Destination)
	if err != nil {
		h.generationError(c, err, "get travel insights")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"destination": req.Destination,
		"insights":    insights,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
