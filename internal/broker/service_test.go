package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
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

func testHef(t *testing.T) []byte {
	t.Helper()
	data, err := hef.FromMetadata(testMetadata()).Serialize()
	require.NoError(t, err)
	return data
}

func testConfigureParams() []*pb.NamedConfigureParams {
	metadata := testMetadata()
	params := coreop.ConfigureParams{
		StreamParamsByName:  make(map[string]coreop.StreamParams),
		NetworkParamsByName: map[string]coreop.NetworkParams{"net0": {BatchSize: 2}},
		Scheduling:          coreop.SchedulingNone,
	}
	for _, layer := range metadata.Layers {
		params.StreamParamsByName[layer.Name] = coreop.StreamParams{
			Direction: layer.Direction,
			Transport: device.TransportDMA,
		}
	}
	return []*pb.NamedConfigureParams{{
		Name:   metadata.CoreOpName,
		Params: configureParamsToProto(params),
	}}
}

func newTestService() *Service {
	return NewService(Config{
		LivenessTimeout: 50 * time.Millisecond,
		SweepInterval:   10 * time.Millisecond,
	}, nil, zap.NewNop())
}

// configureTestGroup walks the create/configure path and returns the
// device and network-group handles.
func configureTestGroup(t *testing.T, s *Service, pid uint32) (uint32, uint32) {
	t.Helper()
	ctx := context.Background()

	created, err := s.DeviceCreate(ctx, &pb.DeviceCreateRequest{
		Pid:    pid,
		Params: &pb.DeviceParams{DeviceCount: 1},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, created.Status)

	configured, err := s.DeviceConfigure(ctx, &pb.DeviceConfigureRequest{
		Identifier:      &pb.DeviceIdentifier{Handle: created.Handle},
		Pid:             pid,
		Hef:             testHef(t),
		ConfigureParams: testConfigureParams(),
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, configured.Status)
	require.Len(t, configured.NetworkGroupHandles, 1)

	return created.Handle, configured.NetworkGroupHandles[0]
}

func TestGetServiceVersion(t *testing.T) {
	s := newTestService()
	reply, err := s.GetServiceVersion(context.Background(), &pb.GetServiceVersionRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, reply.Status)
	assert.EqualValues(t, VersionMajor, reply.Version.Major)
}

func TestDeviceCreateConfigureRelease(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	deviceHandle, groupHandle := configureTestGroup(t, s, 100)

	name, err := s.NetworkGroupName(ctx, &pb.NetworkGroupNameRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, name.Status)
	assert.Equal(t, "core_op0", name.Name)

	released, err := s.NetworkGroupRelease(ctx, &pb.NetworkGroupReleaseRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
		Pid:        100,
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, released.Status)

	// The handle is gone after the round trip.
	name, err = s.NetworkGroupName(ctx, &pb.NetworkGroupNameRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.NotFound, name.Status)

	devReleased, err := s.DeviceRelease(ctx, &pb.DeviceReleaseRequest{
		Identifier: &pb.DeviceIdentifier{Handle: deviceHandle},
		Pid:        100,
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, devReleased.Status)
}

func TestVStreamWriteReadThroughService(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	_, groupHandle := configureTestGroup(t, s, 100)
	identifier := &pb.NetworkGroupIdentifier{Handle: groupHandle}

	inputs, err := s.InputVStreamsCreate(ctx, &pb.CreateVStreamsRequest{
		Identifier: identifier,
		Pid:        100,
		Params:     map[string]*pb.VStreamParams{"in_v": {TimeoutMs: 1000}},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, inputs.Status)
	require.Len(t, inputs.Handles, 1)

	outputs, err := s.OutputVStreamsCreate(ctx, &pb.CreateVStreamsRequest{
		Identifier: identifier,
		Pid:        100,
		Params:     map[string]*pb.VStreamParams{"out_v": {TimeoutMs: 1000}},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, outputs.Status)

	inID := &pb.VStreamIdentifier{NetworkGroupHandle: groupHandle, Handle: inputs.Handles[0]}
	outID := &pb.VStreamIdentifier{NetworkGroupHandle: groupHandle, Handle: outputs.Handles[0]}

	frameSize, err := s.InputVStreamGetFrameSize(ctx, &pb.VStreamIdentifierRequest{Identifier: inID})
	require.NoError(t, err)
	assert.EqualValues(t, testFrameSize, frameSize.FrameSize)

	written, err := s.InputVStreamWrite(ctx, &pb.InputVStreamWriteRequest{
		Identifier: inID,
		Data:       make([]byte, testFrameSize),
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, written.Status)

	read, err := s.OutputVStreamRead(ctx, &pb.OutputVStreamReadRequest{Identifier: outID})
	require.NoError(t, err)
	assert.EqualValues(t, status.Success, read.Status)
	assert.Len(t, read.Data, testFrameSize)

	// Frame size mismatch is rejected before any transfer.
	written, err = s.InputVStreamWrite(ctx, &pb.InputVStreamWriteRequest{
		Identifier: inID,
		Data:       make([]byte, testFrameSize/2),
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.InvalidArgument, written.Status)
}

func TestSweepReclaimsDeadClient(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	_, groupHandle := configureTestGroup(t, s, 100)

	inputs, err := s.InputVStreamsCreate(ctx, &pb.CreateVStreamsRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
		Pid:        100,
		Params:     map[string]*pb.VStreamParams{"in_v": {}},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, inputs.Status)

	s.mu.Lock()
	s.clients[100] = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	s.sweep(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, 0, s.devices.Len())
	assert.Equal(t, 0, s.groups.Len())
	assert.Equal(t, 0, s.inputs.Len())
	assert.NotContains(t, s.clients, uint32(100))
}

// stuckChannel parks every transfer until its context is cancelled,
// standing in for hardware that never completes.
type stuckChannel struct {
	entered chan struct{}
}

func (c *stuckChannel) Transfer(ctx context.Context, _ []byte) error {
	select {
	case c.entered <- struct{}{}:
	default:
	}
	<-ctx.Done()
	if ctx.Err() == context.DeadlineExceeded {
		return status.New(status.Timeout, "transfer timed out")
	}
	return status.New(status.AbortedByUser, "transfer aborted")
}

func (c *stuckChannel) Close() error { return nil }

func TestSweepAbortsBlockedWrite(t *testing.T) {
	ch := &stuckChannel{entered: make(chan struct{}, 1)}
	restore := scanDevices
	scanDevices = func(int) []*device.Device {
		return []*device.Device{device.New("stuck-dev",
			[]device.Transport{device.TransportDMA},
			device.TransportDMA, nil,
			func(string, device.Direction, device.Transport) (device.Channel, error) {
				return ch, nil
			})}
	}
	defer func() { scanDevices = restore }()

	s := newTestService()
	ctx := context.Background()
	_, groupHandle := configureTestGroup(t, s, 100)

	inputs, err := s.InputVStreamsCreate(ctx, &pb.CreateVStreamsRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
		Pid:        100,
		Params:     map[string]*pb.VStreamParams{"in_v": {TimeoutMs: 10000}},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, inputs.Status)

	result := make(chan uint32, 1)
	go func() {
		written, err := s.InputVStreamWrite(ctx, &pb.InputVStreamWriteRequest{
			Identifier: &pb.VStreamIdentifier{NetworkGroupHandle: groupHandle, Handle: inputs.Handles[0]},
			Data:       make([]byte, testFrameSize),
		})
		if err != nil {
			result <- uint32(status.InternalFailure)
			return
		}
		result <- written.Status
	}()

	<-ch.entered

	s.mu.Lock()
	s.clients[100] = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	s.sweep(time.Now())

	// The sweep's abort must release the writer blocked inside the broker.
	select {
	case got := <-result:
		assert.EqualValues(t, status.AbortedByUser, got)
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not unblock the write")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, 0, s.inputs.Len())
	assert.NotContains(t, s.clients, uint32(100))
}

func TestMakeVStreamParamsDefaults(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	_, groupHandle := configureTestGroup(t, s, 100)
	identifier := &pb.NetworkGroupIdentifier{Handle: groupHandle}

	reply, err := s.NetworkGroupMakeInputVStreamParams(ctx, &pb.MakeVStreamParamsRequest{
		Identifier: identifier,
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, reply.Status)
	p := reply.Params["in_v"]
	require.NotNil(t, p)
	assert.EqualValues(t, 10000, p.TimeoutMs)
	assert.EqualValues(t, 2, p.QueueSize)

	reply, err = s.NetworkGroupMakeInputVStreamParams(ctx, &pb.MakeVStreamParamsRequest{
		Identifier: identifier,
		TimeoutMs:  500,
		QueueSize:  8,
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, reply.Status)
	p = reply.Params["in_v"]
	require.NotNil(t, p)
	assert.EqualValues(t, 500, p.TimeoutMs)
	assert.EqualValues(t, 8, p.QueueSize)
}

func TestSweepSparesSharedHandles(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	_, groupHandle := configureTestGroup(t, s, 100)

	dup, err := s.NetworkGroupDupHandle(ctx, &pb.NetworkGroupDupHandleRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
		Pid:        200,
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, dup.Status)
	assert.Equal(t, groupHandle, dup.Handle)

	s.mu.Lock()
	s.clients[100] = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	s.sweep(time.Now())

	// The surviving owner keeps the group; the dead client's device is
	// reclaimed.
	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, 1, s.groups.Len())
	assert.Equal(t, 0, s.devices.Len())
	assert.Contains(t, s.clients, uint32(200))
}

func TestSweepSparesLiveClients(t *testing.T) {
	s := newTestService()
	configureTestGroup(t, s, 100)

	s.sweep(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, 1, s.devices.Len())
	assert.Equal(t, 1, s.groups.Len())
}

func TestStaleDeviceHandle(t *testing.T) {
	s := newTestService()
	reply, err := s.DeviceGetPhysicalDevicesIds(context.Background(), &pb.DeviceGetPhysicalDevicesIdsRequest{
		Identifier: &pb.DeviceIdentifier{Handle: 42},
	})
	require.NoError(t, err)
	assert.EqualValues(t, status.NotFound, reply.Status)
}

func TestOutputVStreamGroups(t *testing.T) {
	s := newTestService()
	_, groupHandle := configureTestGroup(t, s, 100)

	reply, err := s.NetworkGroupGetOutputVStreamGroups(context.Background(), &pb.NetworkGroupIdentifierRequest{
		Identifier: &pb.NetworkGroupIdentifier{Handle: groupHandle},
	})
	require.NoError(t, err)
	require.EqualValues(t, status.Success, reply.Status)
	require.Len(t, reply.Groups, 1)
	assert.Equal(t, []string{"out_v"}, reply.Groups[0].VstreamNames)
}
