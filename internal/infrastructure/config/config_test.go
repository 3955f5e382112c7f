package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0:50051", cfg.GRPC.Address)

	assert.Equal(t, "8000", cfg.Admin.Port)
	assert.Equal(t, "0.0.0.0", cfg.Admin.Host)
	assert.True(t, cfg.Admin.Enabled)

	assert.Equal(t, 5*time.Second, cfg.Liveness.Timeout)
	assert.Equal(t, time.Second, cfg.Liveness.SweepInterval)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "0.0.0.0:50051", cfg.GRPC.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"GRPC_ADDR":          "broker:50055",
		"ADMIN_PORT":         "9000",
		"ADMIN_HOST":         "127.0.0.1",
		"ADMIN_ENABLED":      "false",
		"LIVENESS_TIMEOUT":   "10s",
		"SWEEP_INTERVAL":     "500ms",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "500",
		"RATE_LIMIT_BURST":   "1000",
		"RATE_LIMIT_ENABLED": "false",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "broker:50055", cfg.GRPC.Address)

	assert.Equal(t, "9000", cfg.Admin.Port)
	assert.Equal(t, "127.0.0.1", cfg.Admin.Host)
	assert.False(t, cfg.Admin.Enabled)

	assert.Equal(t, 10*time.Second, cfg.Liveness.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Liveness.SweepInterval)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	err := os.Setenv("ADMIN_PORT", "3000")
	require.NoError(t, err)
	defer os.Unsetenv("ADMIN_PORT")

	err = os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Admin.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Admin.Host)
	assert.Equal(t, "0.0.0.0:50051", cfg.GRPC.Address)
	assert.Equal(t, 5*time.Second, cfg.Liveness.Timeout)
}

func TestLivenessConfig(t *testing.T) {
	tests := []struct {
		name         string
		timeout      string
		interval     string
		wantTimeout  time.Duration
		wantInterval time.Duration
	}{
		{
			name:         "default values",
			wantTimeout:  5 * time.Second,
			wantInterval: time.Second,
		},
		{
			name:         "custom timeout",
			timeout:      "30s",
			wantTimeout:  30 * time.Second,
			wantInterval: time.Second,
		},
		{
			name:         "tight sweeping",
			timeout:      "1s",
			interval:     "100ms",
			wantTimeout:  time.Second,
			wantInterval: 100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("LIVENESS_TIMEOUT")
			os.Unsetenv("SWEEP_INTERVAL")

			if tt.timeout != "" {
				err := os.Setenv("LIVENESS_TIMEOUT", tt.timeout)
				require.NoError(t, err)
				defer os.Unsetenv("LIVENESS_TIMEOUT")
			}
			if tt.interval != "" {
				err := os.Setenv("SWEEP_INTERVAL", tt.interval)
				require.NoError(t, err)
				defer os.Unsetenv("SWEEP_INTERVAL")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantTimeout, cfg.Liveness.Timeout)
			assert.Equal(t, tt.wantInterval, cfg.Liveness.SweepInterval)
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "default values",
			wantLevel: "info",
		},
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: "debug",
		},
		{
			name:      "development mode",
			dev:       "true",
			wantLevel: "info",
			wantDev:   true,
		},
		{
			name:      "error level production",
			level:     "error",
			dev:       "false",
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("LOG_DEV")

			if tt.level != "" {
				err := os.Setenv("LOG_LEVEL", tt.level)
				require.NoError(t, err)
				defer os.Unsetenv("LOG_LEVEL")
			}
			if tt.dev != "" {
				err := os.Setenv("LOG_DEV", tt.dev)
				require.NoError(t, err)
				defer os.Unsetenv("LOG_DEV")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}

func TestRateLimitConfig(t *testing.T) {
	tests := []struct {
		name        string
		rps         string
		burst       string
		enabled     string
		wantRPS     int
		wantBurst   int
		wantEnabled bool
	}{
		{
			name:        "default values",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: true,
		},
		{
			name:        "high limits",
			rps:         "1000",
			burst:       "2000",
			wantRPS:     1000,
			wantBurst:   2000,
			wantEnabled: true,
		},
		{
			name:        "disabled",
			enabled:     "false",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("RATE_LIMIT_RPS")
			os.Unsetenv("RATE_LIMIT_BURST")
			os.Unsetenv("RATE_LIMIT_ENABLED")

			if tt.rps != "" {
				err := os.Setenv("RATE_LIMIT_RPS", tt.rps)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_RPS")
			}
			if tt.burst != "" {
				err := os.Setenv("RATE_LIMIT_BURST", tt.burst)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_BURST")
			}
			if tt.enabled != "" {
				err := os.Setenv("RATE_LIMIT_ENABLED", tt.enabled)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_ENABLED")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantRPS, cfg.RateLimit.RequestsPerSecond)
			assert.Equal(t, tt.wantBurst, cfg.RateLimit.Burst)
			assert.Equal(t, tt.wantEnabled, cfg.RateLimit.Enabled)
		})
	}
}
