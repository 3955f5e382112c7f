// Package broker provides generated Protocol Buffer types and the gRPC
// client for the resource broker.
//
// Generated from: proto/broker.proto
//
// This package contains:
//   - BrokerServiceClient: gRPC client for broker operations
//   - Device create/configure/release types
//   - Network-group query and scheduler types
//   - VStream create, data-movement and lifecycle types
//   - Keep-alive and service-version types
//
// Services:
//   - DeviceCreate/DeviceConfigure: acquire and program a device
//   - InputVStreamsCreate/OutputVStreamsCreate: open data channels
//   - ClientKeepAlive: client liveness heartbeat
//
// Usage:
//
//	This package is typically wrapped by internal/client for the
//	host-side API and implemented by internal/broker on the service side.
//
// Note: This is generated code. Do not edit manually.
// Regenerate with: make proto
package broker
