package coreop

import (
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
	"github.com/wenjunnutter/hailort/internal/stream"
)

// InputVStream is the user-facing write side of one network input. A
// multi-planar input fans out over one hardware stream per plane.
type InputVStream struct {
	info    hef.VStreamInfo
	layer   hef.LayerInfo
	format  device.Format
	streams []stream.Input
}

// OutputVStream is the user-facing read side of one network output.
type OutputVStream struct {
	info   hef.VStreamInfo
	format device.Format
	out    stream.Output
}

// CreateInputVStreams builds the write-side channels named in params from
// the core-op's stream topology.
func CreateInputVStreams(c *CoreOp, params map[string]VStreamParams) ([]*InputVStream, error) {
	vstreams := make([]*InputVStream, 0, len(params))
	for name, p := range params {
		streamNames, err := c.Metadata().StreamNamesFromVStreamName(name)
		if err != nil {
			return nil, err
		}
		if len(streamNames) == 0 {
			return nil, status.Errorf(status.InvalidArgument,
				"vstream %s has no underlying streams", name)
		}
		layer, err := c.Metadata().LayerByStreamName(streamNames[0])
		if err != nil {
			return nil, err
		}
		if layer.Direction != device.HostToDevice {
			return nil, status.Errorf(status.InvalidArgument,
				"vstream %s is not an input", name)
		}

		inputs := make([]stream.Input, 0, len(streamNames))
		for _, streamName := range streamNames {
			in, err := c.InputStream(streamName)
			if err != nil {
				return nil, err
			}
			in.SetTimeout(p.Timeout)
			inputs = append(inputs, in)
		}

		format := layer.Format
		if p.FormatType != device.FormatTypeAuto {
			format.Type = p.FormatType
		}
		vstreams = append(vstreams, &InputVStream{
			info: hef.VStreamInfo{
				Name:        name,
				NetworkName: layer.NetworkName,
				Direction:   layer.Direction,
				FrameSize:   layer.FrameSize,
				Format:      layer.Format,
			},
			layer:   layer,
			format:  format,
			streams: inputs,
		})
	}
	return vstreams, nil
}

// CreateOutputVStreams builds the read-side channels named in params from
// the core-op's stream topology.
func CreateOutputVStreams(c *CoreOp, params map[string]VStreamParams) ([]*OutputVStream, error) {
	vstreams := make([]*OutputVStream, 0, len(params))
	for name, p := range params {
		streamNames, err := c.Metadata().StreamNamesFromVStreamName(name)
		if err != nil {
			return nil, err
		}
		if len(streamNames) != 1 {
			return nil, status.Errorf(status.InvalidArgument,
				"output vstream %s must map to exactly one stream", name)
		}
		layer, err := c.Metadata().LayerByStreamName(streamNames[0])
		if err != nil {
			return nil, err
		}
		if layer.Direction != device.DeviceToHost {
			return nil, status.Errorf(status.InvalidArgument,
				"vstream %s is not an output", name)
		}
		out, err := c.OutputStream(streamNames[0])
		if err != nil {
			return nil, err
		}
		out.SetTimeout(p.Timeout)

		format := layer.Format
		if p.FormatType != device.FormatTypeAuto {
			format.Type = p.FormatType
		}
		vstreams = append(vstreams, &OutputVStream{
			info: hef.VStreamInfo{
				Name:        name,
				NetworkName: layer.NetworkName,
				Direction:   layer.Direction,
				FrameSize:   layer.FrameSize,
				Format:      layer.Format,
			},
			format: format,
			out:    out,
		})
	}
	return vstreams, nil
}

// Name returns the vstream name.
func (v *InputVStream) Name() string { return v.info.Name }

// NetworkName returns the owning network.
func (v *InputVStream) NetworkName() string { return v.info.NetworkName }

// Info describes the vstream.
func (v *InputVStream) Info() hef.VStreamInfo { return v.info }

// FrameSize returns the byte size of one frame.
func (v *InputVStream) FrameSize() int { return v.info.FrameSize }

// UserBufferFormat returns the format of caller-visible frames.
func (v *InputVStream) UserBufferFormat() device.Format { return v.format }

// IsMultiPlanar reports whether frames arrive as separate planes.
func (v *InputVStream) IsMultiPlanar() bool { return v.layer.IsMultiPlanar }

// Write sends one contiguous frame. Multi-planar inputs take their frames
// through WritePix instead.
func (v *InputVStream) Write(p []byte) error {
	if len(v.streams) != 1 {
		return status.Errorf(status.InvalidOperation,
			"vstream %s is multi-planar, contiguous writes are not supported", v.info.Name)
	}
	return v.streams[0].Write(p)
}

// WritePix sends one frame given as separate planes, one per underlying
// stream. Single-planar inputs reject it.
func (v *InputVStream) WritePix(planes [][]byte) error {
	if !v.layer.IsMultiPlanar {
		return status.Errorf(status.InvalidOperation,
			"vstream %s is not multi-planar", v.info.Name)
	}
	if len(planes) != len(v.streams) {
		return status.Errorf(status.InvalidArgument,
			"vstream %s expects %d planes, got %d", v.info.Name, len(v.streams), len(planes))
	}
	for i, plane := range planes {
		if err := v.streams[i].Write(plane); err != nil {
			return err
		}
	}
	return nil
}

// Flush waits for written frames to drain.
func (v *InputVStream) Flush() error {
	for _, in := range v.streams {
		if err := in.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Abort unblocks writers stuck on this vstream.
func (v *InputVStream) Abort() error {
	var firstErr error
	for _, in := range v.streams {
		if err := in.Abort(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Resume re-arms an aborted vstream.
func (v *InputVStream) Resume() error {
	for _, in := range v.streams {
		if err := in.Resume(); err != nil {
			return err
		}
	}
	return nil
}

// IsAborted reports whether any underlying stream is aborted.
func (v *InputVStream) IsAborted() bool {
	for _, in := range v.streams {
		if in.IsAborted() {
			return true
		}
	}
	return false
}

// StopAndClear aborts the vstream and drops staged frames, used before
// switching the activated core-op.
func (v *InputVStream) StopAndClear() error {
	return v.Abort()
}

// StartVStream resumes the vstream after a StopAndClear.
func (v *InputVStream) StartVStream() error {
	return v.Resume()
}

// Name returns the vstream name.
func (v *OutputVStream) Name() string { return v.info.Name }

// NetworkName returns the owning network.
func (v *OutputVStream) NetworkName() string { return v.info.NetworkName }

// Info describes the vstream.
func (v *OutputVStream) Info() hef.VStreamInfo { return v.info }

// FrameSize returns the byte size of one frame.
func (v *OutputVStream) FrameSize() int { return v.info.FrameSize }

// UserBufferFormat returns the format of caller-visible frames.
func (v *OutputVStream) UserBufferFormat() device.Format { return v.format }

// Read receives one frame.
func (v *OutputVStream) Read(p []byte) error {
	return v.out.Read(p)
}

// Abort unblocks readers stuck on this vstream.
func (v *OutputVStream) Abort() error { return v.out.Abort() }

// Resume re-arms an aborted vstream.
func (v *OutputVStream) Resume() error { return v.out.Resume() }

// IsAborted reports whether the vstream is aborted.
func (v *OutputVStream) IsAborted() bool { return v.out.IsAborted() }

// StopAndClear aborts the vstream and drops queued frames.
func (v *OutputVStream) StopAndClear() error { return v.Abort() }

// StartVStream resumes the vstream after a StopAndClear.
func (v *OutputVStream) StartVStream() error { return v.Resume() }

// SetNmsScoreThreshold tunes detection decoding. Streams whose layout is
// not a detection list reject it.
func (v *OutputVStream) SetNmsScoreThreshold(threshold float32) error {
	cfg, ok := v.out.(stream.NmsConfig)
	if !ok {
		return status.Errorf(status.InvalidOperation,
			"vstream %s does not carry detection output", v.info.Name)
	}
	return cfg.SetScoreThreshold(threshold)
}

// SetNmsIouThreshold tunes detection decoding.
func (v *OutputVStream) SetNmsIouThreshold(threshold float32) error {
	cfg, ok := v.out.(stream.NmsConfig)
	if !ok {
		return status.Errorf(status.InvalidOperation,
			"vstream %s does not carry detection output", v.info.Name)
	}
	return cfg.SetIouThreshold(threshold)
}

// SetNmsMaxProposalsPerClass tunes detection decoding.
func (v *OutputVStream) SetNmsMaxProposalsPerClass(max uint32) error {
	cfg, ok := v.out.(stream.NmsConfig)
	if !ok {
		return status.Errorf(status.InvalidOperation,
			"vstream %s does not carry detection output", v.info.Name)
	}
	return cfg.SetMaxProposalsPerClass(max)
}
