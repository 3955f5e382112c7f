package coreop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

const testFrameSize = 16

func testMetadata() *hef.Metadata {
	return &hef.Metadata{
		CoreOpName: "core_op0",
		Networks:   []hef.NetworkInfo{{Name: "net0"}},
		Layers: []hef.LayerInfo{
			{
				Name:        "input0",
				NetworkName: "net0",
				Direction:   device.HostToDevice,
				FrameSize:   testFrameSize,
				Format:      device.Format{Type: device.FormatTypeUint8, Order: device.FormatOrderNHWC},
			},
			{
				Name:        "output0",
				NetworkName: "net0",
				Direction:   device.DeviceToHost,
				FrameSize:   testFrameSize,
				Format:      device.Format{Type: device.FormatTypeUint8, Order: device.FormatOrderNHWC},
			},
		},
		SortedOutputNames: []string{"output0"},
		VStreamToStreams: map[string][]string{
			"in_v":  {"input0"},
			"out_v": {"output0"},
		},
		StreamToVStreams: map[string][]string{
			"input0":  {"in_v"},
			"output0": {"out_v"},
		},
	}
}

func testParams(metadata *hef.Metadata) ConfigureParams {
	streams := make(map[string]StreamParams)
	for _, layer := range metadata.Layers {
		streams[layer.Name] = StreamParams{
			Direction: layer.Direction,
			Transport: device.TransportDMA,
		}
	}
	return ConfigureParams{
		StreamParamsByName:  streams,
		NetworkParamsByName: map[string]NetworkParams{"net0": {BatchSize: 2}},
		Scheduling:          SchedulingNone,
	}
}

func newTestCoreOp(t *testing.T, params ConfigureParams) (*CoreOp, *Holder) {
	t.Helper()
	holder := NewHolder()
	c, err := New(testMetadata(), params, holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, holder
}

func TestSmallestConfiguredBatchSize(t *testing.T) {
	tests := []struct {
		name    string
		batches map[string]uint16
		want    uint16
	}{
		{"mixed", map[string]uint16{"a": 4, "b": AutoBatchSize, "c": 2}, 2},
		{"all auto", map[string]uint16{"a": AutoBatchSize, "b": AutoBatchSize}, DefaultActualBatchSize},
		{"empty", map[string]uint16{}, DefaultActualBatchSize},
		{"single", map[string]uint16{"a": 8}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ConfigureParams{NetworkParamsByName: make(map[string]NetworkParams)}
			for name, batch := range tt.batches {
				params.NetworkParamsByName[name] = NetworkParams{BatchSize: batch}
			}
			assert.Equal(t, tt.want, SmallestConfiguredBatchSize(params))
		})
	}
}

func TestActivateDeactivateRoundTrip(t *testing.T) {
	c, holder := newTestCoreOp(t, testParams(testMetadata()))

	require.NoError(t, c.Activate(AutoBatchSize))
	assert.Equal(t, StateActivated, c.State())
	assert.Same(t, c, holder.Current())
	assert.NoError(t, c.WaitForActivation(time.Second))
	assert.EqualValues(t, 1, c.ActivationTimeAccumulator().Count())

	require.NoError(t, c.Deactivate())
	assert.Equal(t, StateIdle, c.State())
	assert.False(t, holder.IsAnyActive())
	assert.EqualValues(t, 1, c.DeactivationTimeAccumulator().Count())
}

// recordingObserver captures activation timing callbacks.
type recordingObserver struct {
	activations   int
	deactivations int
}

func (o *recordingObserver) RecordActivation(time.Duration)   { o.activations++ }
func (o *recordingObserver) RecordDeactivation(time.Duration) { o.deactivations++ }

func TestObserverReceivesActivationTimes(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))
	observer := &recordingObserver{}
	c.SetObserver(observer)

	require.NoError(t, c.Activate(AutoBatchSize))
	require.NoError(t, c.Deactivate())

	assert.Equal(t, 1, observer.activations)
	assert.Equal(t, 1, observer.deactivations)

	// A failed activation reports nothing.
	in, err := c.InputStream("input0")
	require.NoError(t, err)
	require.NoError(t, in.Abort())
	require.Error(t, c.Activate(AutoBatchSize))
	assert.Equal(t, 1, observer.activations)
}

func TestActivateMutualExclusion(t *testing.T) {
	holder := NewHolder()
	metadata := testMetadata()
	first, err := New(metadata, testParams(metadata), holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer first.Close()
	second, err := New(metadata, testParams(metadata), holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Activate(AutoBatchSize))
	err = second.Activate(AutoBatchSize)
	assert.True(t, status.Is(err, status.InvalidOperation))

	require.NoError(t, first.Deactivate())
	assert.NoError(t, second.Activate(AutoBatchSize))
	assert.NoError(t, second.Deactivate())
}

func TestActivateUnderSchedulerRejected(t *testing.T) {
	params := testParams(testMetadata())
	params.Scheduling = SchedulingRoundRobin
	c, _ := newTestCoreOp(t, params)

	err := c.Activate(AutoBatchSize)
	assert.True(t, status.Is(err, status.InvalidOperation))
}

func TestDeactivateWhenNotHolder(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	err := c.Deactivate()
	assert.True(t, status.Is(err, status.InternalFailure))
}

func TestDeactivateByWrongCoreOp(t *testing.T) {
	holder := NewHolder()
	metadata := testMetadata()
	first, err := New(metadata, testParams(metadata), holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer first.Close()
	second, err := New(metadata, testParams(metadata), holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Activate(AutoBatchSize))
	err = second.Deactivate()
	assert.True(t, status.Is(err, status.InternalFailure))
	assert.Same(t, first, holder.Current())
	require.NoError(t, first.Deactivate())
}

func TestActivationEventResetOnDeactivate(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	require.NoError(t, c.Activate(AutoBatchSize))
	require.NoError(t, c.Deactivate())

	err := c.WaitForActivation(10 * time.Millisecond)
	assert.True(t, status.Is(err, status.Timeout))
}

func TestActivateAbortedStreamPassesThrough(t *testing.T) {
	c, holder := newTestCoreOp(t, testParams(testMetadata()))

	in, err := c.InputStream("input0")
	require.NoError(t, err)
	require.NoError(t, in.Abort())

	err = c.Activate(AutoBatchSize)
	assert.True(t, status.Is(err, status.AbortedByUser))
	assert.False(t, holder.IsAnyActive())
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, in.Resume())
	out, err := c.OutputStream("output0")
	require.NoError(t, err)
	require.NoError(t, out.Resume())
	assert.NoError(t, c.Activate(AutoBatchSize))
	assert.NoError(t, c.Deactivate())
}

func TestLatencyMeasurementDisabled(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	_, err := c.GetLatencyMeasurement("")
	assert.True(t, status.Is(err, status.NotAvailable))

	_, err = c.GetLatencyMeasurement("net0")
	assert.True(t, status.Is(err, status.NotFound))
}

func TestLatencyMeasurement(t *testing.T) {
	params := testParams(testMetadata())
	params.LatencyMeasurement = true
	params.LatencyClearAfterGet = true
	c, _ := newTestCoreOp(t, params)

	// No frames moved yet.
	_, err := c.GetLatencyMeasurement("net0")
	assert.True(t, status.Is(err, status.NotAvailable))

	require.NoError(t, c.Activate(AutoBatchSize))
	in, err := c.InputStream("input0")
	require.NoError(t, err)
	require.NoError(t, in.Write(make([]byte, testFrameSize)))

	latency, err := c.GetLatencyMeasurement("net0")
	require.NoError(t, err)
	assert.Greater(t, latency, time.Duration(0))

	// Clear-after-get drained the meter.
	_, err = c.GetLatencyMeasurement("net0")
	assert.True(t, status.Is(err, status.NotAvailable))

	_, err = c.GetLatencyMeasurement("missing")
	assert.True(t, status.Is(err, status.NotFound))

	require.NoError(t, c.Deactivate())
}

func TestAggregateLatencySingleInputOnly(t *testing.T) {
	metadata := testMetadata()
	metadata.Layers = append(metadata.Layers, hef.LayerInfo{
		Name:        "input1",
		NetworkName: "net0",
		Direction:   device.HostToDevice,
		FrameSize:   testFrameSize,
		Format:      device.Format{Type: device.FormatTypeUint8, Order: device.FormatOrderNHWC},
	})
	params := testParams(metadata)
	params.LatencyMeasurement = true
	holder := NewHolder()
	c, err := New(metadata, params, holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetLatencyMeasurement("")
	assert.True(t, status.Is(err, status.NotAvailable))
}

func TestStreamInfos(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	infos := c.StreamInfos()
	require.Len(t, infos, 2)
	names := []string{infos[0].Name, infos[1].Name}
	assert.ElementsMatch(t, []string{"input0", "output0"}, names)
}

func TestSchedulerSettersRequireScheduledMode(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	assert.True(t, status.Is(c.SetSchedulerTimeout(time.Second), status.InvalidOperation))
	assert.True(t, status.Is(c.SetSchedulerThreshold(4), status.InvalidOperation))
	assert.True(t, status.Is(c.SetSchedulerPriority(10), status.InvalidOperation))

	params := testParams(testMetadata())
	params.Scheduling = SchedulingRoundRobin
	scheduled, _ := newTestCoreOp(t, params)
	assert.NoError(t, scheduled.SetSchedulerTimeout(time.Second))
	assert.NoError(t, scheduled.SetSchedulerThreshold(4))
	assert.NoError(t, scheduled.SetSchedulerPriority(10))
}

func TestUnknownStreamLookup(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	_, err := c.InputStream("missing")
	assert.True(t, status.Is(err, status.NotFound))
	_, err = c.OutputStream("missing")
	assert.True(t, status.Is(err, status.NotFound))
}
