package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all broker daemon configuration.
type Config struct {
	GRPC      GRPCConfig
	Admin     AdminConfig
	Liveness  LivenessConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// GRPCConfig holds the broker gRPC listener configuration.
type GRPCConfig struct {
	Address string `envconfig:"GRPC_ADDR" default:"0.0.0.0:50051"`
}

// AdminConfig holds the HTTP admin surface configuration (health and
// metrics endpoints).
type AdminConfig struct {
	Port    string `envconfig:"ADMIN_PORT" default:"8000"`
	Host    string `envconfig:"ADMIN_HOST" default:"0.0.0.0"`
	Enabled bool   `envconfig:"ADMIN_ENABLED" default:"true"`
}

// LivenessConfig holds client liveness tracking configuration.
type LivenessConfig struct {
	Timeout       time.Duration `envconfig:"LIVENESS_TIMEOUT" default:"5s"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds admin endpoint rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		GRPC: GRPCConfig{
			Address: "0.0.0.0:50051",
		},
		Admin: AdminConfig{
			Port:    "8000",
			Host:    "0.0.0.0",
			Enabled: true,
		},
		Liveness: LivenessConfig{
			Timeout:       5 * time.Second,
			SweepInterval: time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
