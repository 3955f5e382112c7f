package stream

import (
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

// socketStream moves frames over the network-socket transport. There is no
// DMA ring; transfers run directly against the socket channel, so the
// stream behaves identically in both buffer modes.
type socketStream struct {
	base
}

func newSocketStream(dev *device.Device, layer hef.LayerInfo, dir device.Direction) (*socketStream, error) {
	channel, err := dev.OpenChannel(layer.Name, dir, device.TransportSocket)
	if err != nil {
		return nil, err
	}
	info := Info{
		Name:        layer.Name,
		NetworkName: layer.NetworkName,
		Direction:   dir,
		Transport:   device.TransportSocket,
		FrameSize:   layer.FrameSize,
		Format:      layer.Format,
	}
	return &socketStream{base: newBase(info, channel)}, nil
}

// NewSocketInput builds a network-socket input stream.
func NewSocketInput(dev *device.Device, layer hef.LayerInfo) (Input, error) {
	s, err := newSocketStream(dev, layer, device.HostToDevice)
	if err != nil {
		return nil, err
	}
	return &socketInput{s}, nil
}

// NewSocketOutput builds a network-socket output stream.
func NewSocketOutput(dev *device.Device, layer hef.LayerInfo) (Output, error) {
	s, err := newSocketStream(dev, layer, device.DeviceToHost)
	if err != nil {
		return nil, err
	}
	return &socketOutput{s}, nil
}

func (s *socketStream) checkFrame(p []byte) error {
	if len(p) != s.info.FrameSize {
		return status.Errorf(status.InvalidArgument,
			"stream %s expects %d byte frames, got %d", s.info.Name, s.info.FrameSize, len(p))
	}
	return nil
}

type socketInput struct {
	*socketStream
}

func (s *socketInput) Write(p []byte) error {
	if err := s.checkFrame(p); err != nil {
		return err
	}
	return s.transfer(p)
}

func (s *socketInput) Flush() error {
	if s.IsAborted() {
		return status.Errorf(status.AbortedByUser, "stream %s is aborted", s.info.Name)
	}
	return nil
}

func (s *socketInput) Close() error { return s.closeChannel() }

type socketOutput struct {
	*socketStream
}

func (s *socketOutput) Read(p []byte) error {
	if err := s.checkFrame(p); err != nil {
		return err
	}
	return s.transfer(p)
}

func (s *socketOutput) Close() error { return s.closeChannel() }
