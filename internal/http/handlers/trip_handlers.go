package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/balamt/bagmytrip/domain"
	"github.com/balamt/bagmytrip/internal/http/middleware"
)

// TripHandlers handles trip HTTP requests
type TripHandlers struct {
	tripSvc domain.TripService
}

// NewTripHandlers creates new trip handlers
func NewTripHandlers(tripSvc domain.TripService) *TripHandlers {
	return &TripHandlers{tripSvc: tripSvc}
}

// CreateTripRequest represents trip creation request
type CreateTripRequest struct {
	Destination string         `json:"destination" binding:"required"`
	Budget      string         `json:"budget"`
	Duration    string         `json:"duration"`
	Interests   []string       `json:"interests"`
	TravelStyle string         `json:"travelStyle"`
	GroupSize   string         `json:"groupSize"`
	Preferences map[string]any `json:"preferences"`
}

// UpdateTripRequest represents a partial trip update. Absent fields are
// left untouched; id and userId can never be changed through this body.
type UpdateTripRequest struct {
	Destination *string        `json:"destination"`
	Budget      *string        `json:"budget"`
	Duration    *string        `json:"duration"`
	Interests   []string       `json:"interests"`
	TravelStyle *string        `json:"travelStyle"`
	GroupSize   *string        `json:"groupSize"`
	Preferences map[string]any `json:"preferences"`
	Status      *string        `json:"status"`
}

// AddItineraryItemRequest represents a new itinerary entry
type AddItineraryItemRequest struct {
	Day         int     `json:"day" binding:"required"`
	Time        string  `json:"time"`
	Activity    string  `json:"activity" binding:"required"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Type        string  `json:"type"`
}

// UpdateItineraryItemRequest represents a partial itinerary item update
type UpdateItineraryItemRequest struct {
	Day         *int     `json:"day"`
	Time        *string  `json:"time"`
	Activity    *string  `json:"activity"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Cost        *float64 `json:"cost"`
	Type        *string  `json:"type"`
}

// tripID parses the :id route parameter. Unparseable ids behave like
// ids that do not exist.
func tripID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return 0, false
	}
	return uint(id), true
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary item not found"})
		return 0, false
	}
	return id, true
}

// Create handles trip creation
func (h *TripHandlers) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
		return
	}

	trip, err := h.tripSvc.Create(c.Request.Context(), userID, domain.TripInput{
		Destination: req.Destination,
		Budget:      req.Budget,
		Duration:    req.Duration,
		Interests:   req.Interests,
		TravelStyle: req.TravelStyle,
		GroupSize:   req.GroupSize,
		Preferences: req.Preferences,
	})
	if err != nil {
		if err == domain.ErrDestinationRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// List handles listing the caller's trips
func (h *TripHandlers) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	trips, err := h.tripSvc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// Get handles fetching a single trip
func (h *TripHandlers) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}
	id, ok := tripID(c)
	if !ok {
		return
	}

	trip, err := h.tripSvc.Get(c.Request.Context(), userID, id)
	if err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// Update handles partial trip updates
func (h *TripHandlers) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}
	id, ok := tripID(c)
	if !ok {
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip payload"})
		return
	}

	trip, err := h.tripSvc.Update(c.Request.Context(), userID, id, domain.TripPatch{
		Destination: req.Destination,
		Budget:      req.Budget,
		Duration:    req.Duration,
		Interests:   req.Interests,
		TravelStyle: req.TravelStyle,
		GroupSize:   req.GroupSize,
		Preferences: req.Preferences,
		Status:      req.Status,
	})
	if err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trip updated successfully",
		"trip":    trip,
	})
}

// Delete handles trip deletion
func (h *TripHandlers) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}
	id, ok := tripID(c)
	if !ok {
		return
	}

	if err := h.tripSvc.Delete(c.Request.Context(), userID, id); err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// AddItineraryItem handles appending an itinerary entry to a trip
func (h *TripHandlers) AddItineraryItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}
	id, ok := tripID(c)
	if !ok {
		return
	}

	var req AddItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day and activity are required"})
		return
	}

	item, trip, err := h.tripSvc.AddItineraryItem(c.Request.Context(), userID, id, domain.ItineraryItemInput{
		Day:         req.Day,
		Time:        req.Time,
		Activity:    req.Activity,
		Location:    req.Location,
		Description: req.Description,
		Cost:        req.Cost,
		Type:        req.Type,
	})
	if err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add itinerary item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Itinerary item added successfully",
		"item":    item,
		"trip":    trip,
	})
}

// UpdateItineraryItem handles partial updates to one itinerary entry
func (h *TripHandlers) UpdateItineraryItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}
	id, ok := tripID(c)
	if !ok {
		return
	}
	itmID, ok := itemID(c)
	if !ok {
		return
	}

	var req UpdateItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid itinerary item payload"})
		return
	}

	item, trip, err := h.tripSvc.UpdateItineraryItem(c.Request.Context(), userID, id, itmID, domain.ItineraryItemPatch{
		Day:         req.Day,
		Time:        req.Time,
		Activity:    req.Activity,
		Location:    req.Location,
		Description: req.Description,
		Cost:        req.Cost,
		Type:        req.Type,
	})
	if err != nil {
		switch err {
		case domain.ErrTripNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		case domain.ErrItineraryItemNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update itinerary item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Itinerary item updated successfully",
		"item":    item,
		"trip":    trip,
	})
}
