// Package main is the entry point for the hailort broker daemon.
//
// The broker is the single process that owns accelerator hardware.
// Client processes talk to it over gRPC: they claim virtual devices,
// configure compiled networks, and move frames through vstreams. The
// broker tracks which process owns which handle and reclaims everything
// a client held when its keep-alive goes silent.
//
// Architecture:
//
//	Client process → gRPC → Broker → Accelerator devices
//
// The daemon provides:
//   - The broker gRPC service (resource handles, vstream transfers)
//   - Client liveness tracking with automatic reclamation
//   - An HTTP admin surface (health, Prometheus metrics)
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./broker -grpc 0.0.0.0:50051 -admin-port 8000
//
//	# Development mode (colored logs, debug level)
//	./broker -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
