// Package stream implements the transport-specific data channels between
// host memory and the accelerator: bus-mapped DMA, network socket, and
// camera-bus streams, plus the detection-decoding adapter that converts
// raw detection bursts into fixed-size frames.
package stream

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
)

// DefaultTransferTimeout bounds a single blocking transfer.
const DefaultTransferTimeout = 10 * time.Second

// BufferMode selects who owns transfer buffers.
type BufferMode int

const (
	// BufferModeOwning means the stream manages its own buffer lifetime,
	// copying caller data in and out.
	BufferModeOwning BufferMode = iota
	// BufferModeNotOwning means transfers run on caller-supplied buffers
	// with no extra copy; the caller buffer must outlive the transfer.
	BufferModeNotOwning
)

// Info describes one stream.
type Info struct {
	Name        string
	NetworkName string
	Direction   device.Direction
	Transport   device.Transport
	FrameSize   int
	Format      device.Format
}

// Stream is the capability surface shared by every transport.
type Stream interface {
	Info() Info
	Name() string
	Activate() error
	Deactivate() error
	Abort() error
	Resume() error
	IsAborted() bool
	SetBufferMode(mode BufferMode) error
	SetTimeout(timeout time.Duration)
	Close() error
}

// Input is a host-to-device stream.
type Input interface {
	Stream
	Write(p []byte) error
	Flush() error
}

// Output is a device-to-host stream.
type Output interface {
	Stream
	Read(p []byte) error
}

// base carries the abort, timeout and lifecycle machinery every transport
// shares. Abort cancels in-flight transfers with ABORTED_BY_USER and is
// idempotent; Resume re-arms the stream.
type base struct {
	info    Info
	channel device.Channel
	timeout time.Duration

	mu          sync.Mutex
	mode        BufferMode
	active      bool
	abortCtx    context.Context
	abortCancel context.CancelFunc
}

func newBase(info Info, channel device.Channel) base {
	ctx, cancel := context.WithCancel(context.Background())
	return base{
		info:        info,
		channel:     channel,
		timeout:     DefaultTransferTimeout,
		abortCtx:    ctx,
		abortCancel: cancel,
	}
}

func (b *base) Info() Info   { return b.info }
func (b *base) Name() string { return b.info.Name }

// SetBufferMode selects the transfer ownership mode. It must be called
// before the stream is activated.
func (b *base) SetBufferMode(mode BufferMode) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		return status.New(status.InvalidOperation, "cannot change buffer mode while active")
	}
	b.mode = mode
	return nil
}

// SetTimeout bounds each subsequent blocking transfer.
func (b *base) SetTimeout(timeout time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if timeout > 0 {
		b.timeout = timeout
	}
}

func (b *base) bufferMode() BufferMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Activate arms the stream. Activation of an aborted stream reports
// ABORTED_BY_USER so the caller can tell cancellation from a fault.
func (b *base) Activate() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abortCtx.Err() != nil {
		return status.Errorf(status.AbortedByUser, "stream %s is aborted", b.info.Name)
	}
	b.active = true
	return nil
}

// Deactivate disarms the stream.
func (b *base) Deactivate() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = false
	return nil
}

// Abort unblocks any caller waiting in a transfer. Idempotent. The cancel
// runs under the lock so it always lands on the context a concurrent
// Resume swapped in, never on a stale one.
func (b *base) Abort() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abortCancel()
	return nil
}

// Resume re-arms an aborted stream.
func (b *base) Resume() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abortCtx.Err() == nil {
		return nil
	}
	b.abortCtx, b.abortCancel = context.WithCancel(context.Background())
	return nil
}

// IsAborted reports whether the stream is in the aborted state.
func (b *base) IsAborted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.abortCtx.Err() != nil
}

// transfer runs one blocking exchange against the channel, bounded by the
// stream timeout and interruptible by Abort.
func (b *base) transfer(p []byte) error {
	b.mu.Lock()
	abortCtx := b.abortCtx
	timeout := b.timeout
	b.mu.Unlock()

	if abortCtx.Err() != nil {
		return status.Errorf(status.AbortedByUser, "stream %s is aborted", b.info.Name)
	}

	ctx, cancel := context.WithTimeout(abortCtx, timeout)
	defer cancel()

	err := b.channel.Transfer(ctx, p)
	if err == nil {
		return nil
	}
	// Channels may surface raw context errors; fold them into the taxonomy.
	if errors.Is(err, context.Canceled) || abortCtx.Err() != nil {
		return status.Errorf(status.AbortedByUser, "stream %s transfer aborted", b.info.Name)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Errorf(status.Timeout, "stream %s transfer timed out", b.info.Name)
	}
	return err
}

func (b *base) closeChannel() error {
	b.mu.Lock()
	b.abortCancel()
	b.mu.Unlock()
	return b.channel.Close()
}
