// Package config provides 12-factor configuration management for the
// broker daemon.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - GRPC: broker gRPC listener settings
//   - Admin: HTTP admin surface settings (health, metrics)
//   - Liveness: client liveness timeout and sweep interval
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting for the admin surface
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Broker listening on %s\n", cfg.GRPC.Address)
//
// Environment Variables:
//   - GRPC_ADDR, ADMIN_PORT, ADMIN_HOST
//   - LIVENESS_TIMEOUT, SWEEP_INTERVAL
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST
package config
