package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	Env     string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type GenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type CacheConfig struct {
	InsightsTTL string `yaml:"insights_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	GenAI     GenAIConfig     `yaml:"genai"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	SeedDemo  bool            `yaml:"seed_demo"`
}

type Config struct {
	Port           string
	GinMode        string
	Env            string
	DSN            string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	JWTIssuer      string
	TokenTTL       time.Duration
	GenAIKey       string
	GenAIModel     string
	GenAIBaseURL   string
	GenAITimeout   time.Duration
	InsightsTTL    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	SeedDemo       bool
}

// DevMode reports whether upstream error details may be echoed to clients
func (c *Config) DevMode() bool {
	return c.Env == "development"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	genTimeout, err := time.ParseDuration(configFile.GenAI.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid genai timeout: %w", err)
	}

	insightsTTL, err := time.ParseDuration(configFile.Cache.InsightsTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid insights cache TTL: %w", err)
	}

	return &Config{
		Port:          env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:       configFile.App.GinMode,
		Env:           env("APP_ENV", configFile.App.Env),
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,
		// Secrets come from the environment in deployment; the file
		// values are development defaults.
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      configFile.JWT.Issuer,
		TokenTTL:       tokenTTL,
		GenAIKey:       env("GOOGLE_AI_API_KEY", configFile.GenAI.APIKey),
		GenAIModel:     configFile.GenAI.Model,
		GenAIBaseURL:   configFile.GenAI.BaseURL,
		GenAITimeout:   genTimeout,
		InsightsTTL:    insightsTTL,
		RateLimitRPS:   configFile.RateLimit.RPS,
		RateLimitBurst: configFile.RateLimit.Burst,
		SeedDemo:       env("SEED_DEMO_USER", "") == "true" || configFile.SeedDemo,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
