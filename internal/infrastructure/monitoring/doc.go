/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the broker
daemon, tracking RPC calls, client liveness, resource handles, and
activation activity.

# Features

- RPC metrics (latency, throughput, status)
- Client liveness metrics (active clients, reclaimed clients)
- Resource handle gauges per kind
- Activation and abort counters
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add the interceptor to the gRPC server
	grpc.NewServer(grpc.UnaryInterceptor(monitoring.UnaryInterceptor(metrics, log)))

	// Add middleware to the admin Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetClientsActive(5)
	metrics.IncAborts()

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
