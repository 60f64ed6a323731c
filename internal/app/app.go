package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/internal/config"
	httpx "github.com/balamt/bagmytrip/internal/http"
	"github.com/balamt/bagmytrip/internal/http/handlers"
	"github.com/balamt/bagmytrip/internal/http/middleware"
	"github.com/balamt/bagmytrip/internal/services"
)

func Run(cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	if cfg.SeedDemo {
		if err := services.SeedDemoUser(context.Background(), c.UserRepo, c.PasswordSvc, logger); err != nil {
			return err
		}
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	tripH := handlers.NewTripHandlers(c.TripSvc)
	aiH := handlers.NewAIHandlers(c.PlannerSvc, cfg.DevMode())

	authMW := middleware.NewAuthMW(c.TokenSvc)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := httpx.BuildRouter(authH, tripH, aiH, authMW, rateLimiter, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.DevMode() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
