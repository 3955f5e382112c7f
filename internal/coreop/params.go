package coreop

import (
	"time"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
)

const (
	// AutoBatchSize is the sentinel meaning "let the scheduler choose";
	// it never takes part in batch-size resolution.
	AutoBatchSize uint16 = 0
	// DefaultActualBatchSize applies when every network is left at
	// AutoBatchSize.
	DefaultActualBatchSize uint16 = 1

	// maxActiveTransfersScale sizes the detection-decoding queue relative
	// to the resolved batch size.
	maxActiveTransfersScale = 2
)

// SchedulingAlgorithm selects how core-ops gain hardware time.
type SchedulingAlgorithm uint32

const (
	// SchedulingNone leaves activation to explicit Activate calls.
	SchedulingNone SchedulingAlgorithm = iota
	// SchedulingRoundRobin hands the device to the runtime scheduler.
	// Manual activation is an INVALID_OPERATION in this mode.
	SchedulingRoundRobin
)

// NetworkParams configures one network inside a core-op.
type NetworkParams struct {
	BatchSize uint16
}

// StreamParams configures one hardware stream.
type StreamParams struct {
	Direction device.Direction
	Transport device.Transport
	// Async requests asynchronous transfers: the stream then runs in
	// caller-supplied-buffer mode with zero extra copies.
	Async bool
}

// ConfigureParams is the full configuration of one core-op.
type ConfigureParams struct {
	StreamParamsByName   map[string]StreamParams
	NetworkParamsByName  map[string]NetworkParams
	Scheduling           SchedulingAlgorithm
	LatencyMeasurement   bool
	LatencyClearAfterGet bool
}

// DefaultConfigureParams derives a configuration from the compiled
// metadata: every layer gets a stream on the device's default transport,
// every network stays at the automatic batch size.
func DefaultConfigureParams(metadata *hef.Metadata, dev *device.Device) ConfigureParams {
	streams := make(map[string]StreamParams, len(metadata.Layers))
	networks := make(map[string]NetworkParams)
	for _, layer := range metadata.Layers {
		streams[layer.Name] = StreamParams{
			Direction: layer.Direction,
			Transport: dev.DefaultTransport(),
		}
		networks[layer.NetworkName] = NetworkParams{BatchSize: AutoBatchSize}
	}
	return ConfigureParams{
		StreamParamsByName:  streams,
		NetworkParamsByName: networks,
		Scheduling:          SchedulingRoundRobin,
	}
}

// SmallestConfiguredBatchSize resolves the effective batch size: the
// minimum over explicitly configured networks, AutoBatchSize excluded.
// All-automatic groups fall back to DefaultActualBatchSize.
func SmallestConfiguredBatchSize(params ConfigureParams) uint16 {
	min := uint16(^uint16(0))
	for _, np := range params.NetworkParamsByName {
		if np.BatchSize != AutoBatchSize && np.BatchSize < min {
			min = np.BatchSize
		}
	}
	if min == ^uint16(0) {
		return DefaultActualBatchSize
	}
	return min
}

// VStreamParams configures one user-facing channel.
type VStreamParams struct {
	FormatType device.FormatType
	Timeout    time.Duration
	QueueSize  uint32
}

// DefaultVStreamParams returns the standard vstream configuration.
func DefaultVStreamParams() VStreamParams {
	return VStreamParams{
		FormatType: device.FormatTypeAuto,
		Timeout:    10 * time.Second,
		QueueSize:  2,
	}
}
