package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

func testLayer(name string, dir device.Direction, frameSize int) hef.LayerInfo {
	return hef.LayerInfo{
		Name:        name,
		NetworkName: "net0",
		Direction:   dir,
		FrameSize:   frameSize,
		Format:      device.Format{Type: device.FormatTypeUint8, Order: device.FormatOrderNHWC},
	}
}

// blockingChannel parks every transfer until the context is done.
type blockingChannel struct {
	entered chan struct{}
}

func (c *blockingChannel) Transfer(ctx context.Context, _ []byte) error {
	select {
	case c.entered <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func (c *blockingChannel) Close() error { return nil }

func blockingDevice(ch device.Channel) *device.Device {
	return device.New("test-dev",
		[]device.Transport{device.TransportDMA, device.TransportSocket, device.TransportCamera},
		device.TransportDMA, nil,
		func(string, device.Direction, device.Transport) (device.Channel, error) {
			return ch, nil
		})
}

func TestEvent_EdgeAndStickySemantics(t *testing.T) {
	e := NewEvent()
	assert.False(t, e.IsSignaled())

	woke := make(chan error, 1)
	go func() { woke <- e.Wait(time.Second) }()

	time.Sleep(10 * time.Millisecond)
	e.Signal()

	select {
	case err := <-woke:
		require.NoError(t, err, "waiter blocked before Signal must wake")
	case <-time.After(time.Second):
		t.Fatal("waiter did not wake")
	}

	// Sticky: late observers see the signalled state until Reset.
	assert.True(t, e.IsSignaled())
	require.NoError(t, e.Wait(time.Millisecond))

	e.Reset()
	assert.False(t, e.IsSignaled())
	err := e.Wait(10 * time.Millisecond)
	assert.Equal(t, status.Timeout, status.CodeOf(err))

	// Double signal is a no-op, not a panic.
	e.Signal()
	e.Signal()
	assert.True(t, e.IsSignaled())
}

func TestLatencyMeter(t *testing.T) {
	m := NewLatencyMeter()

	_, err := m.Latency(false)
	assert.Equal(t, status.NotAvailable, status.CodeOf(err))

	m.Add(10 * time.Millisecond)
	m.Add(20 * time.Millisecond)

	avg, err := m.Latency(false)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Millisecond, avg)

	// Clear-on-read zeroes the accumulated samples.
	_, err = m.Latency(true)
	require.NoError(t, err)
	_, err = m.Latency(false)
	assert.Equal(t, status.NotAvailable, status.CodeOf(err))
}

func TestDmaInput_WriteRoundTrip(t *testing.T) {
	dev := device.Emulated()
	in, err := NewDmaInput(dev, testLayer("input0", device.HostToDevice, 64), 2, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	require.NoError(t, in.Activate())
	require.NoError(t, in.Write(make([]byte, 64)))
	require.NoError(t, in.Flush())

	err = in.Write(make([]byte, 63))
	assert.Equal(t, status.InvalidArgument, status.CodeOf(err))
}

func TestDmaOutput_FeedsLatencyMeter(t *testing.T) {
	dev := device.Emulated()
	meter := NewLatencyMeter()
	out, err := NewDmaOutput(dev, testLayer("output0", device.DeviceToHost, 32), 1, meter)
	require.NoError(t, err)
	defer func() { _ = out.Close() }()

	require.NoError(t, out.Activate())
	require.NoError(t, out.Read(make([]byte, 32)))

	_, err = meter.Latency(false)
	assert.NoError(t, err, "completed transfer should produce a sample")
}

func TestAbort_UnblocksBlockedTransfer(t *testing.T) {
	ch := &blockingChannel{entered: make(chan struct{}, 1)}
	in, err := NewDmaInput(blockingDevice(ch), testLayer("input0", device.HostToDevice, 16), 1, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()
	require.NoError(t, in.Activate())

	result := make(chan error, 1)
	go func() { result <- in.Write(make([]byte, 16)) }()

	<-ch.entered
	require.NoError(t, in.Abort())

	select {
	case err := <-result:
		assert.Equal(t, status.AbortedByUser, status.CodeOf(err),
			"blocked write must return ABORTED_BY_USER")
	case <-time.After(2 * time.Second):
		t.Fatal("abort did not unblock the write")
	}

	// Idempotent: a second abort is harmless.
	require.NoError(t, in.Abort())
	assert.True(t, in.IsAborted())

	// A write on an aborted stream fails fast with the same status.
	err = in.Write(make([]byte, 16))
	assert.Equal(t, status.AbortedByUser, status.CodeOf(err))

	// Activation of an aborted stream reports the cancellation, not a fault.
	err = in.Activate()
	assert.Equal(t, status.AbortedByUser, status.CodeOf(err))
}

func TestAbortResume_ConcurrentChurn(t *testing.T) {
	dev := device.Emulated()
	in, err := NewDmaInput(dev, testLayer("input0", device.HostToDevice, 8), 1, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = in.Abort()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = in.Resume()
			}
		}()
	}
	wg.Wait()

	// An abort with no following resume must stick: it has to land on the
	// live context, not one a racing resume already replaced.
	require.NoError(t, in.Abort())
	assert.True(t, in.IsAborted())
	err = in.Write(make([]byte, 8))
	assert.Equal(t, status.AbortedByUser, status.CodeOf(err))
}

func TestDmaInput_ConcurrentWritesOnSharedStream(t *testing.T) {
	dev := device.Emulated()
	in, err := NewDmaInput(dev, testLayer("input0", device.HostToDevice, 16), 4, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()
	require.NoError(t, in.Activate())

	// Two processes sharing one duplicated handle produce concurrent
	// writes on the same stream inside the broker.
	errs := make(chan error, 4)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame := make([]byte, 16)
			for j := 0; j < 100; j++ {
				if err := in.Write(frame); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestResume_RearmsAbortedStream(t *testing.T) {
	dev := device.Emulated()
	in, err := NewDmaInput(dev, testLayer("input0", device.HostToDevice, 8), 1, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	require.NoError(t, in.Abort())
	assert.True(t, in.IsAborted())

	require.NoError(t, in.Resume())
	assert.False(t, in.IsAborted())
	require.NoError(t, in.Activate())
	require.NoError(t, in.Write(make([]byte, 8)))
}

func TestBufferMode_LockedWhileActive(t *testing.T) {
	dev := device.Emulated()
	in, err := NewDmaInput(dev, testLayer("input0", device.HostToDevice, 8), 1, nil)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	require.NoError(t, in.SetBufferMode(BufferModeNotOwning))
	require.NoError(t, in.Activate())

	err = in.SetBufferMode(BufferModeOwning)
	assert.Equal(t, status.InvalidOperation, status.CodeOf(err))
}

func TestSocketAndCameraStreams(t *testing.T) {
	dev := device.Emulated()

	in, err := NewSocketInput(dev, testLayer("eth_in", device.HostToDevice, 8))
	require.NoError(t, err)
	require.NoError(t, in.Activate())
	require.NoError(t, in.Write(make([]byte, 8)))
	require.NoError(t, in.Close())

	out, err := NewSocketOutput(dev, testLayer("eth_out", device.DeviceToHost, 8))
	require.NoError(t, err)
	require.NoError(t, out.Activate())
	require.NoError(t, out.Read(make([]byte, 8)))
	require.NoError(t, out.Close())

	cam, err := NewCameraInput(dev, testLayer("cam_in", device.HostToDevice, 8))
	require.NoError(t, err)
	require.NoError(t, cam.Activate())
	require.NoError(t, cam.Write(make([]byte, 8)))
	require.NoError(t, cam.Close())

	// The camera bus has no output side.
	_, err = dev.OpenChannel("cam_out", device.DeviceToHost, device.TransportCamera)
	assert.Equal(t, status.NotImplemented, status.CodeOf(err))
}

// shrinkDecoder keeps only the first half of every burst, standing in for a
// decoder that emits fewer detections than the frame holds.
type shrinkDecoder struct{}

func (shrinkDecoder) DecodeBurst(dst, burst []byte) (int, error) {
	n := copy(dst, burst[:len(burst)/2])
	return n, nil
}

func TestNmsAdapter_DecodesToFixedFrames(t *testing.T) {
	dev := device.Emulated()
	layer := testLayer("nms_out", device.DeviceToHost, 16)
	layer.Format.Order = device.FormatOrderDetections

	inner, err := NewDmaOutput(dev, layer, 1, nil)
	require.NoError(t, err)

	wrapped, err := WrapNmsOutput(inner, layer, 4, shrinkDecoder{})
	require.NoError(t, err)
	defer func() { _ = wrapped.Close() }()

	require.NoError(t, wrapped.Activate())

	frame := make([]byte, 16)
	for i := range frame {
		frame[i] = 0xFF
	}
	require.NoError(t, wrapped.Read(frame))
	for i := 8; i < 16; i++ {
		assert.Zero(t, frame[i], "tail past the decoded detections must be padded")
	}

	// The adapter exposes the same capability surface as the base stream.
	assert.Equal(t, "nms_out", wrapped.Name())
	require.NoError(t, wrapped.Abort())
	assert.True(t, wrapped.IsAborted())

	cfg, ok := wrapped.(NmsConfig)
	require.True(t, ok, "detection-list streams must accept nms tuning")
	require.NoError(t, cfg.SetScoreThreshold(0.4))
	require.NoError(t, cfg.SetIouThreshold(0.6))
	require.NoError(t, cfg.SetMaxProposalsPerClass(50))
}
