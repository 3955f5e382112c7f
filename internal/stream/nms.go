package stream

import (
	"sync"
	"time"

	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

// FrameDecoder converts one raw detection burst into a fixed-size frame.
// The decoding arithmetic lives behind this boundary.
type FrameDecoder interface {
	DecodeBurst(dst, burst []byte) (int, error)
}

// NmsConfig is implemented by output streams whose detection decoding can
// be tuned after construction.
type NmsConfig interface {
	SetScoreThreshold(threshold float32) error
	SetIouThreshold(threshold float32) error
	SetMaxProposalsPerClass(max uint32) error
}

// nmsOutput wraps a base output stream whose native layout is a detection
// list. It reads raw bursts from the inner stream and exposes fixed-size
// frames, forwarding every other capability to the inner stream.
type nmsOutput struct {
	inner   Output
	decoder FrameDecoder
	bursts  chan []byte

	mu                   sync.Mutex
	scoreThreshold       float32
	iouThreshold         float32
	maxProposalsPerClass uint32
}

// WrapNmsOutput composes the decoding adapter over a detection-list output
// stream. maxQueueSize bounds the burst buffers in flight; it is the
// resolved batch size times a fixed scale factor.
func WrapNmsOutput(inner Output, layer hef.LayerInfo, maxQueueSize int, decoder FrameDecoder) (Output, error) {
	if maxQueueSize <= 0 {
		return nil, status.Errorf(status.InvalidArgument, "invalid nms queue size %d", maxQueueSize)
	}
	if decoder == nil {
		decoder = passthroughDecoder{}
	}
	bursts := make(chan []byte, maxQueueSize)
	for i := 0; i < maxQueueSize; i++ {
		bursts <- make([]byte, layer.FrameSize)
	}
	return &nmsOutput{
		inner:   inner,
		decoder: decoder,
		bursts:  bursts,
	}, nil
}

func (s *nmsOutput) Read(p []byte) error {
	burst := <-s.bursts
	defer func() { s.bursts <- burst }()

	if err := s.inner.Read(burst); err != nil {
		return err
	}
	n, err := s.decoder.DecodeBurst(p, burst)
	if err != nil {
		return status.Errorf(status.InternalFailure, "decoding %s burst: %v", s.Name(), err)
	}
	// Pad short detection lists up to the fixed frame size.
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return nil
}

func (s *nmsOutput) Info() Info                         { return s.inner.Info() }
func (s *nmsOutput) Name() string                       { return s.inner.Name() }
func (s *nmsOutput) Activate() error                    { return s.inner.Activate() }
func (s *nmsOutput) Deactivate() error                  { return s.inner.Deactivate() }
func (s *nmsOutput) Abort() error                       { return s.inner.Abort() }
func (s *nmsOutput) Resume() error                      { return s.inner.Resume() }
func (s *nmsOutput) IsAborted() bool                    { return s.inner.IsAborted() }
func (s *nmsOutput) SetBufferMode(mode BufferMode) error { return s.inner.SetBufferMode(mode) }
func (s *nmsOutput) SetTimeout(timeout time.Duration)    { s.inner.SetTimeout(timeout) }
func (s *nmsOutput) Close() error                        { return s.inner.Close() }

func (s *nmsOutput) SetScoreThreshold(threshold float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoreThreshold = threshold
	return nil
}

func (s *nmsOutput) SetIouThreshold(threshold float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iouThreshold = threshold
	return nil
}

func (s *nmsOutput) SetMaxProposalsPerClass(max uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxProposalsPerClass = max
	return nil
}

// passthroughDecoder copies the burst verbatim. Real decoders translate
// detection records; this one stands in when none is registered.
type passthroughDecoder struct{}

func (passthroughDecoder) DecodeBurst(dst, burst []byte) (int, error) {
	n := copy(dst, burst)
	return n, nil
}
