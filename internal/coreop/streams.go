package coreop

import (
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
	"github.com/wenjunnutter/hailort/internal/stream"
)

// createStreams builds the hardware stream topology from the configure
// params. Transport dispatch mirrors the configured params, not the layer
// metadata; unknown transports are NOT_IMPLEMENTED. Detection-list
// outputs are wrapped with the decoding adapter.
func (c *CoreOp) createStreams() error {
	for name, sp := range c.params.StreamParamsByName {
		layer, err := c.metadata.LayerByStreamName(name)
		if err != nil {
			return err
		}

		switch sp.Direction {
		case device.HostToDevice:
			in, err := c.createInputStream(layer, sp)
			if err != nil {
				return err
			}
			c.inputs[name] = in
		case device.DeviceToHost:
			out, err := c.createOutputStream(layer, sp)
			if err != nil {
				return err
			}
			c.outputs[name] = out
		default:
			return status.Errorf(status.InvalidArgument,
				"stream %s has invalid direction %d", name, sp.Direction)
		}
	}
	return nil
}

func (c *CoreOp) createInputStream(layer hef.LayerInfo, sp StreamParams) (stream.Input, error) {
	var in stream.Input
	var err error
	switch sp.Transport {
	case device.TransportDMA:
		in, err = stream.NewDmaInput(c.dev, layer, c.streamBatchSize(layer), c.meterFor(layer))
	case device.TransportSocket:
		in, err = stream.NewSocketInput(c.dev, layer)
	case device.TransportCamera:
		in, err = stream.NewCameraInput(c.dev, layer)
	default:
		return nil, status.Errorf(status.NotImplemented,
			"stream %s requested an unsupported transport", layer.Name)
	}
	if err != nil {
		return nil, err
	}
	if sp.Async {
		if err := in.SetBufferMode(stream.BufferModeNotOwning); err != nil {
			_ = in.Close()
			return nil, err
		}
	}
	return in, nil
}

func (c *CoreOp) createOutputStream(layer hef.LayerInfo, sp StreamParams) (stream.Output, error) {
	var out stream.Output
	var err error
	switch sp.Transport {
	case device.TransportDMA:
		out, err = stream.NewDmaOutput(c.dev, layer, c.streamBatchSize(layer), c.meterFor(layer))
	case device.TransportSocket:
		out, err = stream.NewSocketOutput(c.dev, layer)
	case device.TransportCamera:
		// The camera bus has no host-visible output side.
		return nil, status.Errorf(status.NotImplemented,
			"stream %s: camera transport has no output direction", layer.Name)
	default:
		return nil, status.Errorf(status.NotImplemented,
			"stream %s requested an unsupported transport", layer.Name)
	}
	if err != nil {
		return nil, err
	}
	if sp.Async {
		if err := out.SetBufferMode(stream.BufferModeNotOwning); err != nil {
			_ = out.Close()
			return nil, err
		}
	}
	if layer.Format.Order == device.FormatOrderDetections {
		queueSize := int(c.minBatchSize) * maxActiveTransfersScale
		out, err = stream.WrapNmsOutput(out, layer, queueSize, nil)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// streamBatchSize resolves the ring depth of one stream: the batch size
// configured for the layer's network, falling back to the group minimum
// when the network is left automatic.
func (c *CoreOp) streamBatchSize(layer hef.LayerInfo) uint16 {
	if np, ok := c.params.NetworkParamsByName[layer.NetworkName]; ok && np.BatchSize != AutoBatchSize {
		return np.BatchSize
	}
	return c.minBatchSize
}

// meterFor returns the latency meter of the layer's network, nil when
// latency measurement is off.
func (c *CoreOp) meterFor(layer hef.LayerInfo) *stream.LatencyMeter {
	return c.latencyMeters[layer.NetworkName]
}
