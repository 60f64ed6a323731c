package httpx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/internal/http/handlers"
	"github.com/balamt/bagmytrip/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, th *handlers.TripHandlers, aih *handlers.AIHandlers, authmw *middleware.AuthMW, rl *middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	// Everything below goes through the one bearer-token gate.
	v := r.Group("/").Use(authmw.WithAuth())
	v.GET("/auth/profile", ah.Profile)
	v.PUT("/auth/preferences", ah.UpdatePreferences)

	// /trips/create is the path the clients were built against; the
	// plain collection POST stays as an alias.
	v.POST("/trips/create", th.Create)
	v.POST("/trips", th.Create)
	v.GET("/trips", th.List)
	v.GET("/trips/:id", th.Get)
	v.PUT("/trips/:id", th.Update)
	v.DELETE("/trips/:id", th.Delete)
	v.POST("/trips/:id/itinerary", th.AddItineraryItem)
	v.PUT("/trips/:id/itinerary/:itemId", th.UpdateItineraryItem)

	ai := r.Group("/ai").Use(authmw.WithAuth(), rl.Limit())
	ai.POST("/generate-trip", aih.GenerateTrip)
	ai.POST("/chat", aih.Chat)
	ai.POST("/insights", aih.Insights)

	return r
}
