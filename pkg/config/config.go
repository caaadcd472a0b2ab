package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Cache backends accepted in CACHE_BACKEND
const (
	CacheDisabled = "disabled"
	CacheMemory   = "memory"
	CacheRedis    = "redis"
)

// Config holds the server settings read from the environment
type Config struct {
	Host      string `env:"HOST" envDefault:"0.0.0.0" validate:"required"`
	Port      string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	APIPrefix string `env:"API_PREFIX" validate:"omitempty,startswith=/"`

	// DataDir points at a directory with creatures.yml, abilities.yml and locale/.
	// When empty the bundled data is served.
	DataDir         string `env:"DATA_DIR"`
	PreloadCatalog  bool   `env:"PRELOAD_CATALOG" envDefault:"false"`
	LoadConcurrency int    `env:"LOAD_CONCURRENCY" envDefault:"4" validate:"min=1,max=64"`

	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"disabled" validate:"oneof=disabled memory redis"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"1h" validate:"min=0"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379" validate:"required,url"`

	ServiceName     string        `env:"SERVICE_NAME" envDefault:"oldenera-wiki"`
	EnableTelemetry bool          `env:"ENABLE_TELEMETRY" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s" validate:"min=0"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
