/*
Package tracing provides distributed tracing for debugging production issues.

# Overview

This package implements lightweight distributed tracing to track requests
through the broker. It follows OpenTelemetry concepts but with a minimal
implementation tailored to the daemon's needs.

# Features

- Trace context propagation via HTTP headers and gRPC metadata
- Span creation and management with parent-child relationships
- Automatic trace ID generation
- HTTP and gRPC middleware for automatic instrumentation
- Structured logging integration
- Low overhead with buffered span collection

# Usage

	// Create tracer
	tracer := tracing.New("broker", logger)

	// HTTP middleware for the admin surface
	router.Use(tracing.HTTPMiddleware(tracer))

	// gRPC server interceptor
	server := grpc.NewServer(
		grpc.UnaryInterceptor(tracing.GRPCUnaryInterceptor(tracer)),
	)

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

	span.SetTag("key", "value")

# Trace Format

Traces use standard HTTP headers for propagation:
- X-Trace-ID: Unique identifier for entire request flow
- X-Span-ID: Identifier for current operation

# Performance

The tracing system is designed for minimal overhead:
- Buffered span collection (1000 spans)
- Async span processing
- Structured logging integration
- No external dependencies
*/
package tracing
