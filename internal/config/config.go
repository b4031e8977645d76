package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	internal "github.com/KirkDiggler/rpg-content-admin/internal"
)

// Config holds all configuration for the application
type Config struct {
	API     APIConfig
	Redis   RedisConfig
	Logging LoggingConfig
	DevAPI  DevAPIConfig
}

// APIConfig holds settings for the remote content API
type APIConfig struct {
	BaseURL string        `env:"CONTENT_API_URL"`
	Token   string        `env:"CONTENT_API_TOKEN"`
	Timeout time.Duration `env:"CONTENT_API_TIMEOUT" envDefault:"30s"`
}

// RedisConfig holds Redis-specific configuration. Drafts are kept in memory when URL is empty.
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
}

// LoggingConfig mirrors the zap settings exposed through the environment
type LoggingConfig struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info"`
	Encoding     string `env:"LOG_ENCODING" envDefault:"console"`
	Development  bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
	EnableCaller bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"rpg-content-admin"`
}

// DevAPIConfig configures the in-memory content API used for local development
type DevAPIConfig struct {
	Addr  string `env:"DEVAPI_ADDR" envDefault:":8080"`
	Token string `env:"DEVAPI_TOKEN"`
}

// Load loads configuration from environment variables and requires the content API URL
func Load() (*Config, error) {
	cfg, err := LoadDevAPI()
	if err != nil {
		return nil, err
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("CONTENT_API_URL is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDevAPI loads configuration without requiring a remote API
func LoadDevAPI() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks values that parsed but cannot be used
func (c *Config) Validate() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return internal.NewInvalidConfigError("CONTENT_API_URL", "must be an absolute URL")
		}
	}
	if c.API.Timeout <= 0 {
		return internal.NewInvalidConfigError("CONTENT_API_TIMEOUT", "must be positive")
	}
	if c.Redis.DraftTTL < 0 {
		return internal.NewInvalidConfigError("DRAFT_TTL", "cannot be negative")
	}
	switch strings.ToLower(c.Logging.Encoding) {
	case "", "console", "json":
	default:
		return internal.NewInvalidConfigError("LOG_ENCODING", "must be console or json")
	}

	return nil
}
