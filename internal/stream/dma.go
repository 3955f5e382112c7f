package stream

import (
	"sync"
	"time"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/dma"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

// dmaStream is a bus-mapped stream. It owns a ring of DMA-able buffers
// sized by the resolved batch size; in owning mode frames are staged
// through the ring, in not-owning mode transfers run directly on the
// caller's memory.
type dmaStream struct {
	base
	ringMu sync.Mutex
	ring   []*dma.Buffer
	next   int
	meter  *LatencyMeter
}

func newDmaStream(dev *device.Device, layer hef.LayerInfo, dir device.Direction,
	queueDepth uint16, meter *LatencyMeter) (*dmaStream, error) {

	channel, err := dev.OpenChannel(layer.Name, dir, device.TransportDMA)
	if err != nil {
		return nil, err
	}

	if queueDepth == 0 {
		queueDepth = 1
	}
	ring := make([]*dma.Buffer, 0, queueDepth)
	for i := uint16(0); i < queueDepth; i++ {
		buf, err := dma.Allocate(dev.Driver(), layer.FrameSize)
		if err != nil {
			for _, allocated := range ring {
				_ = allocated.Release()
			}
			_ = channel.Close()
			return nil, err
		}
		ring = append(ring, buf)
	}

	info := Info{
		Name:        layer.Name,
		NetworkName: layer.NetworkName,
		Direction:   dir,
		Transport:   device.TransportDMA,
		FrameSize:   layer.FrameSize,
		Format:      layer.Format,
	}
	return &dmaStream{
		base:  newBase(info, channel),
		ring:  ring,
		meter: meter,
	}, nil
}

// NewDmaInput builds a bus-mapped input stream.
func NewDmaInput(dev *device.Device, layer hef.LayerInfo, queueDepth uint16,
	meter *LatencyMeter) (Input, error) {

	s, err := newDmaStream(dev, layer, device.HostToDevice, queueDepth, meter)
	if err != nil {
		return nil, err
	}
	return &dmaInput{s}, nil
}

// NewDmaOutput builds a bus-mapped output stream.
func NewDmaOutput(dev *device.Device, layer hef.LayerInfo, queueDepth uint16,
	meter *LatencyMeter) (Output, error) {

	s, err := newDmaStream(dev, layer, device.DeviceToHost, queueDepth, meter)
	if err != nil {
		return nil, err
	}
	return &dmaOutput{s}, nil
}

func (s *dmaStream) checkFrame(p []byte) error {
	if len(p) != s.info.FrameSize {
		return status.Errorf(status.InvalidArgument,
			"stream %s expects %d byte frames, got %d", s.info.Name, s.info.FrameSize, len(p))
	}
	return nil
}

// nextSlot claims one ring slot. The index advances under the lock so
// concurrent transfers on a shared handle stage into distinct slots.
func (s *dmaStream) nextSlot() *dma.Buffer {
	s.ringMu.Lock()
	defer s.ringMu.Unlock()
	slot := s.ring[s.next]
	s.next = (s.next + 1) % len(s.ring)
	return slot
}

// stage returns the transfer buffer for one frame: a ring slot in owning
// mode, the caller's memory otherwise.
func (s *dmaStream) stage(p []byte) []byte {
	if s.bufferMode() == BufferModeNotOwning {
		return p
	}
	slot := s.nextSlot()
	copy(slot.Bytes(), p)
	return slot.Bytes()
}

func (s *dmaStream) timedTransfer(p []byte) error {
	start := time.Now()
	if err := s.transfer(p); err != nil {
		return err
	}
	if s.meter != nil {
		s.meter.Add(time.Since(start))
	}
	return nil
}

func (s *dmaStream) release() error {
	err := s.closeChannel()
	s.ringMu.Lock()
	ring := s.ring
	s.ring = nil
	s.ringMu.Unlock()
	for _, buf := range ring {
		if releaseErr := buf.Release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}
	return err
}

type dmaInput struct {
	*dmaStream
}

func (s *dmaInput) Write(p []byte) error {
	if err := s.checkFrame(p); err != nil {
		return err
	}
	return s.timedTransfer(s.stage(p))
}

// Flush waits for in-flight frames to drain. Transfers here are
// synchronous, so an un-aborted stream has nothing pending.
func (s *dmaInput) Flush() error {
	if s.IsAborted() {
		return status.Errorf(status.AbortedByUser, "stream %s is aborted", s.info.Name)
	}
	return nil
}

func (s *dmaInput) Close() error { return s.release() }

type dmaOutput struct {
	*dmaStream
}

func (s *dmaOutput) Read(p []byte) error {
	if err := s.checkFrame(p); err != nil {
		return err
	}
	if s.bufferMode() == BufferModeNotOwning {
		return s.timedTransfer(p)
	}
	slot := s.nextSlot()
	if err := s.timedTransfer(slot.Bytes()); err != nil {
		return err
	}
	copy(p, slot.Bytes())
	return nil
}

func (s *dmaOutput) Close() error { return s.release() }
