package stream

import (
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

// cameraInput feeds frames arriving on the camera bus straight into the
// device. The camera bus has no host-visible output side.
type cameraInput struct {
	base
}

// NewCameraInput builds a camera-bus input stream.
func NewCameraInput(dev *device.Device, layer hef.LayerInfo) (Input, error) {
	channel, err := dev.OpenChannel(layer.Name, device.HostToDevice, device.TransportCamera)
	if err != nil {
		return nil, err
	}
	info := Info{
		Name:        layer.Name,
		NetworkName: layer.NetworkName,
		Direction:   device.HostToDevice,
		Transport:   device.TransportCamera,
		FrameSize:   layer.FrameSize,
		Format:      layer.Format,
	}
	return &cameraInput{base: newBase(info, channel)}, nil
}

func (s *cameraInput) Write(p []byte) error {
	if len(p) != s.info.FrameSize {
		return status.Errorf(status.InvalidArgument,
			"stream %s expects %d byte frames, got %d", s.info.Name, s.info.FrameSize, len(p))
	}
	return s.transfer(p)
}

func (s *cameraInput) Flush() error {
	if s.IsAborted() {
		return status.Errorf(status.AbortedByUser, "stream %s is aborted", s.info.Name)
	}
	return nil
}

func (s *cameraInput) Close() error { return s.closeChannel() }
