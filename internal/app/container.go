package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balamt/bagmytrip/domain"
	"github.com/balamt/bagmytrip/internal/config"
	"github.com/balamt/bagmytrip/internal/infrastructure/auth"
	"github.com/balamt/bagmytrip/internal/infrastructure/database"
	"github.com/balamt/bagmytrip/internal/infrastructure/genai"
	"github.com/balamt/bagmytrip/internal/infrastructure/repositories"
	"github.com/balamt/bagmytrip/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo     domain.UserRepository
	TripRepo     domain.TripRepository
	InsightCache domain.InsightCache

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Generator   domain.Generator
	AuthSvc     domain.AuthService
	TripSvc     domain.TripService
	PlannerSvc  domain.PlannerService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(
		c.Config.RedisAddr,
		c.Config.RedisPassword,
		c.Config.RedisDB,
	).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TripRepo = repositories.NewTripRepository(c.DB)
	c.InsightCache = repositories.NewInsightCache(c.RedisClient, c.Config.InsightsTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.TokenTTL,
	)
	c.Generator = genai.NewGeminiClient(
		c.Config.GenAIKey,
		c.Config.GenAIModel,
		c.Config.GenAIBaseURL,
		c.Config.GenAITimeout,
		c.Logger,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Config.TokenTTL)
	c.TripSvc = services.NewTripService(c.TripRepo)
	c.PlannerSvc = services.NewPlannerService(c.Generator, c.InsightCache, c.Config.GenAITimeout, c.Logger)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
