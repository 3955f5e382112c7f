// Package coreop implements the activation engine for one compiled
// network: it enforces hardware mutual exclusion over the Activated slot
// and builds the per-network stream topology bound to the device
// transport.
package coreop

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
	"github.com/wenjunnutter/hailort/internal/stream"
)

// State is the activation lifecycle position of a core-op.
type State int

const (
	StateIdle State = iota
	StateActivating
	StateActivated
	StateDeactivating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActivating:
		return "activating"
	case StateActivated:
		return "activated"
	case StateDeactivating:
		return "deactivating"
	default:
		return "unknown"
	}
}

// ActivationObserver receives activation and deactivation wall times,
// letting the daemon export them without the engine knowing about the
// metrics backend.
type ActivationObserver interface {
	RecordActivation(duration time.Duration)
	RecordDeactivation(duration time.Duration)
}

// CoreOp is one configured compiled network bound to a device.
type CoreOp struct {
	metadata *hef.Metadata
	params   ConfigureParams
	holder   *Holder
	dev      *device.Device
	log      *zap.Logger
	observer ActivationObserver

	minBatchSize   uint16
	activatedEvent *stream.Event

	activationTime   *Accumulator
	deactivationTime *Accumulator
	latencyMeters    map[string]*stream.LatencyMeter

	mu      sync.Mutex
	state   State
	inputs  map[string]stream.Input
	outputs map[string]stream.Output

	schedulerTimeout   time.Duration
	schedulerThreshold uint32
	schedulerPriority  uint8
}

// New configures a core-op on the device and constructs its stream
// topology from the configure params.
func New(metadata *hef.Metadata, params ConfigureParams, holder *Holder,
	dev *device.Device, log *zap.Logger) (*CoreOp, error) {

	if log == nil {
		log = zap.NewNop()
	}

	meters := make(map[string]*stream.LatencyMeter)
	if params.LatencyMeasurement {
		for _, network := range metadata.Networks {
			meters[network.Name] = stream.NewLatencyMeter()
		}
	}

	c := &CoreOp{
		metadata:         metadata,
		params:           params,
		holder:           holder,
		dev:              dev,
		log:              log,
		minBatchSize:     SmallestConfiguredBatchSize(params),
		activatedEvent:   stream.NewEvent(),
		activationTime:   NewAccumulator("activation_time"),
		deactivationTime: NewAccumulator("deactivation_time"),
		latencyMeters:    meters,
		inputs:           make(map[string]stream.Input),
		outputs:          make(map[string]stream.Output),
	}

	if err := c.createStreams(); err != nil {
		c.closeStreams()
		return nil, err
	}
	return c, nil
}

// Name returns the core-op name.
func (c *CoreOp) Name() string { return c.metadata.CoreOpName }

// Metadata returns the compiled description backing this core-op.
func (c *CoreOp) Metadata() *hef.Metadata { return c.metadata }

// ConfigParams returns the configuration the core-op was built with.
func (c *CoreOp) ConfigParams() ConfigureParams { return c.params }

// Device returns the device the core-op is configured on.
func (c *CoreOp) Device() *device.Device { return c.dev }

// IsMultiContext reports whether the compiled network spans multiple
// hardware contexts.
func (c *CoreOp) IsMultiContext() bool { return c.metadata.MultiContext }

// IsScheduled reports whether the runtime scheduler owns activation.
func (c *CoreOp) IsScheduled() bool { return c.params.Scheduling != SchedulingNone }

// MinBatchSize returns the resolved batch size for the group.
func (c *CoreOp) MinBatchSize() uint16 { return c.minBatchSize }

// State returns the current lifecycle state.
func (c *CoreOp) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ActivationTimeAccumulator returns the activation wall-time statistics.
func (c *CoreOp) ActivationTimeAccumulator() *Accumulator { return c.activationTime }

// DeactivationTimeAccumulator returns the deactivation wall-time
// statistics.
func (c *CoreOp) DeactivationTimeAccumulator() *Accumulator { return c.deactivationTime }

// SetObserver installs the activation timing observer. Must be called
// before the core-op is handed out.
func (c *CoreOp) SetObserver(observer ActivationObserver) { c.observer = observer }

// Activate claims the device-wide Activated slot and brings every stream
// up. Manual activation is illegal under the scheduler and while another
// core-op holds the slot. A hardware-level ABORTED_BY_USER is passed
// through as-is so callers can tell deliberate cancellation from a fault.
func (c *CoreOp) Activate(batchSize uint16) error {
	start := time.Now()

	if c.IsScheduled() {
		return status.New(status.InvalidOperation,
			"manual activation is not allowed while the scheduler owns the device")
	}
	if !c.holder.TryClaim(c) {
		return status.New(status.InvalidOperation,
			"cannot activate: another core-op is already activated")
	}
	c.setState(StateActivating)

	if batchSize == AutoBatchSize {
		batchSize = c.minBatchSize
	}

	if err := c.activateStreams(); err != nil {
		if deactivateErr := c.deactivateStreams(); deactivateErr != nil {
			c.log.Error("best-effort deactivation after failed activation",
				zap.String("core_op", c.Name()), zap.Error(deactivateErr))
		}
		c.holder.Release(c)
		c.setState(StateIdle)
		if status.Is(err, status.AbortedByUser) {
			return err
		}
		return status.Errorf(status.CodeOf(err), "activating %s: %v", c.Name(), err)
	}

	c.activatedEvent.Signal()
	c.setState(StateActivated)

	elapsed := time.Since(start)
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	c.activationTime.Add(elapsedMs)
	if c.observer != nil {
		c.observer.RecordActivation(elapsed)
	}
	c.log.Info("core-op activated",
		zap.String("core_op", c.Name()),
		zap.Uint16("batch_size", batchSize),
		zap.Float64("elapsed_ms", elapsedMs))
	return nil
}

// Deactivate releases the Activated slot and tears every stream down
// best-effort: each failure is logged, iteration continues, and the first
// non-success status is returned after all streams were attempted.
func (c *CoreOp) Deactivate() error {
	start := time.Now()

	if c.IsScheduled() {
		return status.New(status.InvalidOperation,
			"manual deactivation is not allowed while the scheduler owns the device")
	}
	current := c.holder.Current()
	if current == nil {
		return status.New(status.InternalFailure,
			"trying to deactivate while no core-op is activated")
	}
	if current != c {
		return status.New(status.InternalFailure,
			"trying to deactivate a core-op that is not the activated one")
	}
	c.holder.Release(c)
	c.setState(StateDeactivating)

	c.activatedEvent.Reset()

	err := c.deactivateStreams()
	if err != nil {
		c.log.Error("core-op deactivation finished with failures",
			zap.String("core_op", c.Name()), zap.Error(err))
	}
	c.setState(StateIdle)

	elapsed := time.Since(start)
	c.deactivationTime.Add(float64(elapsed) / float64(time.Millisecond))
	if c.observer != nil {
		c.observer.RecordDeactivation(elapsed)
	}
	return err
}

// WaitForActivation blocks until the activation event is signalled.
func (c *CoreOp) WaitForActivation(timeout time.Duration) error {
	return c.activatedEvent.Wait(timeout)
}

// ActivatedEvent exposes the activation event to stream consumers.
func (c *CoreOp) ActivatedEvent() *stream.Event { return c.activatedEvent }

func (c *CoreOp) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// activateStreams brings every stream up. ABORTED_BY_USER stops the walk
// and propagates unescalated; any other failure is a hard error.
func (c *CoreOp) activateStreams() error {
	for name, in := range c.inputs {
		if err := in.Activate(); err != nil {
			if status.Is(err, status.AbortedByUser) {
				c.log.Info("input stream activation aborted by user", zap.String("stream", name))
				return err
			}
			return status.Errorf(status.CodeOf(err), "activating input stream %s: %v", name, err)
		}
	}
	for name, out := range c.outputs {
		if err := out.Activate(); err != nil {
			if status.Is(err, status.AbortedByUser) {
				c.log.Info("output stream activation aborted by user", zap.String("stream", name))
				return err
			}
			return status.Errorf(status.CodeOf(err), "activating output stream %s: %v", name, err)
		}
	}
	return nil
}

// deactivateStreams tears every stream down, attempting all of them and
// reporting only the first failure.
func (c *CoreOp) deactivateStreams() error {
	var firstErr error
	for name, in := range c.inputs {
		if err := in.Deactivate(); err != nil {
			c.log.Error("failed to deactivate input stream", zap.String("stream", name), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	for name, out := range c.outputs {
		if err := out.Deactivate(); err != nil {
			c.log.Error("failed to deactivate output stream", zap.String("stream", name), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Close aborts and releases every stream. Individual failures do not stop
// the teardown; the first one is reported.
func (c *CoreOp) Close() error {
	c.AbortStreams()
	return c.closeStreams()
}

// AbortStreams unblocks every caller stuck in a transfer on this core-op.
func (c *CoreOp) AbortStreams() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, in := range c.inputs {
		_ = in.Abort()
	}
	for _, out := range c.outputs {
		_ = out.Abort()
	}
}

func (c *CoreOp) closeStreams() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for name, in := range c.inputs {
		if err := in.Close(); err != nil && firstErr == nil {
			firstErr = status.Errorf(status.CodeOf(err), "closing input stream %s: %v", name, err)
		}
	}
	for name, out := range c.outputs {
		if err := out.Close(); err != nil && firstErr == nil {
			firstErr = status.Errorf(status.CodeOf(err), "closing output stream %s: %v", name, err)
		}
	}
	c.inputs = make(map[string]stream.Input)
	c.outputs = make(map[string]stream.Output)
	return firstErr
}

// InputStream finds an input stream by hardware stream name.
func (c *CoreOp) InputStream(name string) (stream.Input, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	in, ok := c.inputs[name]
	if !ok {
		return nil, status.Errorf(status.NotFound, "input stream %s not found", name)
	}
	return in, nil
}

// OutputStream finds an output stream by hardware stream name.
func (c *CoreOp) OutputStream(name string) (stream.Output, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.outputs[name]
	if !ok {
		return nil, status.Errorf(status.NotFound, "output stream %s not found", name)
	}
	return out, nil
}

// StreamInfos lists every constructed stream.
func (c *CoreOp) StreamInfos() []stream.Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	infos := make([]stream.Info, 0, len(c.inputs)+len(c.outputs))
	for _, in := range c.inputs {
		infos = append(infos, in.Info())
	}
	for _, out := range c.outputs {
		infos = append(infos, out.Info())
	}
	return infos
}

// GetLatencyMeasurement reads the hardware latency meters. An empty
// network name aggregates every reporting meter; zero reporting meters is
// NOT_AVAILABLE, while a named network without a meter is NOT_FOUND.
func (c *CoreOp) GetLatencyMeasurement(networkName string) (time.Duration, error) {
	clear := c.params.LatencyClearAfterGet

	if networkName == "" {
		// Aggregation across networks is only meaningful when a single
		// input stream feeds the whole group.
		c.mu.Lock()
		inputCount := len(c.inputs)
		c.mu.Unlock()
		if inputCount != 1 {
			return 0, status.New(status.NotAvailable,
				"aggregate latency is only available for single-input groups")
		}
		var sum time.Duration
		var reported uint32
		for _, meter := range c.latencyMeters {
			latency, err := meter.Latency(clear)
			if status.Is(err, status.NotAvailable) {
				continue
			}
			if err != nil {
				return 0, err
			}
			sum += latency
			reported++
		}
		if reported == 0 {
			return 0, status.New(status.NotAvailable, "no latency measurements were found")
		}
		return sum / time.Duration(reported), nil
	}

	meter, ok := c.latencyMeters[networkName]
	if !ok {
		return 0, status.Errorf(status.NotFound,
			"no latency meter for network %s", networkName)
	}
	return meter.Latency(clear)
}

// SetSchedulerTimeout updates the scheduler idle timeout for the group.
func (c *CoreOp) SetSchedulerTimeout(timeout time.Duration) error {
	if !c.IsScheduled() {
		return status.New(status.InvalidOperation, "core-op is not under scheduler control")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedulerTimeout = timeout
	return nil
}

// SetSchedulerThreshold updates the scheduler batch threshold.
func (c *CoreOp) SetSchedulerThreshold(threshold uint32) error {
	if !c.IsScheduled() {
		return status.New(status.InvalidOperation, "core-op is not under scheduler control")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedulerThreshold = threshold
	return nil
}

// SetSchedulerPriority updates the scheduler priority.
func (c *CoreOp) SetSchedulerPriority(priority uint8) error {
	if !c.IsScheduled() {
		return status.New(status.InvalidOperation, "core-op is not under scheduler control")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedulerPriority = priority
	return nil
}
