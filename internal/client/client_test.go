package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/wenjunnutter/hailort/internal/broker"
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

func testConfigureParams() map[string]*pb.ConfigureParams {
	metadata := testMetadata()
	params := &pb.ConfigureParams{
		StreamParams:  make(map[string]*pb.StreamParams),
		NetworkParams: map[string]*pb.NetworkParams{"net0": {BatchSize: 2}},
	}
	for _, layer := range metadata.Layers {
		params.StreamParams[layer.Name] = &pb.StreamParams{
			Direction:       uint32(layer.Direction),
			StreamInterface: uint32(device.TransportDMA),
		}
	}
	return map[string]*pb.ConfigureParams{metadata.CoreOpName: params}
}

// localBroker satisfies the generated client interface by invoking the
// service directly, so client logic is exercised without a listener.
type localBroker struct {
	s *broker.Service
}

func (l localBroker) ClientKeepAlive(ctx context.Context, req *pb.KeepAliveRequest, _ ...grpc.CallOption) (*pb.KeepAliveReply, error) {
	return l.s.ClientKeepAlive(ctx, req)
}

func (l localBroker) GetServiceVersion(ctx context.Context, req *pb.GetServiceVersionRequest, _ ...grpc.CallOption) (*pb.GetServiceVersionReply, error) {
	return l.s.GetServiceVersion(ctx, req)
}

func (l localBroker) DeviceCreate(ctx context.Context, req *pb.DeviceCreateRequest, _ ...grpc.CallOption) (*pb.DeviceCreateReply, error) {
	return l.s.DeviceCreate(ctx, req)
}

func (l localBroker) DeviceRelease(ctx context.Context, req *pb.DeviceReleaseRequest, _ ...grpc.CallOption) (*pb.ReleaseReply, error) {
	return l.s.DeviceRelease(ctx, req)
}

func (l localBroker) DeviceConfigure(ctx context.Context, req *pb.DeviceConfigureRequest, _ ...grpc.CallOption) (*pb.DeviceConfigureReply, error) {
	return l.s.DeviceConfigure(ctx, req)
}

func (l localBroker) DeviceGetPhysicalDevicesIds(ctx context.Context, req *pb.DeviceGetPhysicalDevicesIdsRequest, _ ...grpc.CallOption) (*pb.DeviceGetPhysicalDevicesIdsReply, error) {
	return l.s.DeviceGetPhysicalDevicesIds(ctx, req)
}

func (l localBroker) DeviceGetDefaultStreamsInterface(ctx context.Context, req *pb.DeviceGetDefaultStreamsInterfaceRequest, _ ...grpc.CallOption) (*pb.StreamInterfaceReply, error) {
	return l.s.DeviceGetDefaultStreamsInterface(ctx, req)
}

func (l localBroker) NetworkGroupDupHandle(ctx context.Context, req *pb.NetworkGroupDupHandleRequest, _ ...grpc.CallOption) (*pb.DupHandleReply, error) {
	return l.s.NetworkGroupDupHandle(ctx, req)
}

func (l localBroker) NetworkGroupRelease(ctx context.Context, req *pb.NetworkGroupReleaseRequest, _ ...grpc.CallOption) (*pb.ReleaseReply, error) {
	return l.s.NetworkGroupRelease(ctx, req)
}

func (l localBroker) NetworkGroupName(ctx context.Context, req *pb.NetworkGroupNameRequest, _ ...grpc.CallOption) (*pb.NetworkGroupNameReply, error) {
	return l.s.NetworkGroupName(ctx, req)
}

func (l localBroker) NetworkGroupGetNetworkInfos(ctx context.Context, req *pb.NetworkGroupGetNetworkInfosRequest, _ ...grpc.CallOption) (*pb.NetworkGroupGetNetworkInfosReply, error) {
	return l.s.NetworkGroupGetNetworkInfos(ctx, req)
}

func (l localBroker) NetworkGroupGetAllStreamInfos(ctx context.Context, req *pb.NetworkGroupGetAllStreamInfosRequest, _ ...grpc.CallOption) (*pb.NetworkGroupGetAllStreamInfosReply, error) {
	return l.s.NetworkGroupGetAllStreamInfos(ctx, req)
}

func (l localBroker) NetworkGroupGetDefaultStreamInterface(ctx context.Context, req *pb.NetworkGroupGetDefaultStreamInterfaceRequest, _ ...grpc.CallOption) (*pb.StreamInterfaceReply, error) {
	return l.s.NetworkGroupGetDefaultStreamInterface(ctx, req)
}

func (l localBroker) NetworkGroupMakeInputVStreamParams(ctx context.Context, req *pb.MakeVStreamParamsRequest, _ ...grpc.CallOption) (*pb.VStreamParamsMapReply, error) {
	return l.s.NetworkGroupMakeInputVStreamParams(ctx, req)
}

func (l localBroker) NetworkGroupMakeOutputVStreamParams(ctx context.Context, req *pb.MakeVStreamParamsRequest, _ ...grpc.CallOption) (*pb.VStreamParamsMapReply, error) {
	return l.s.NetworkGroupMakeOutputVStreamParams(ctx, req)
}

func (l localBroker) NetworkGroupMakeOutputVStreamParamsGroups(ctx context.Context, req *pb.MakeVStreamParamsRequest, _ ...grpc.CallOption) (*pb.VStreamParamsGroupsReply, error) {
	return l.s.NetworkGroupMakeOutputVStreamParamsGroups(ctx, req)
}

func (l localBroker) NetworkGroupGetOutputVStreamGroups(ctx context.Context, req *pb.NetworkGroupIdentifierRequest, _ ...grpc.CallOption) (*pb.OutputVStreamGroupsReply, error) {
	return l.s.NetworkGroupGetOutputVStreamGroups(ctx, req)
}

func (l localBroker) NetworkGroupGetInputVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest, _ ...grpc.CallOption) (*pb.VStreamInfosReply, error) {
	return l.s.NetworkGroupGetInputVStreamInfos(ctx, req)
}

func (l localBroker) NetworkGroupGetOutputVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest, _ ...grpc.CallOption) (*pb.VStreamInfosReply, error) {
	return l.s.NetworkGroupGetOutputVStreamInfos(ctx, req)
}

func (l localBroker) NetworkGroupGetAllVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest, _ ...grpc.CallOption) (*pb.VStreamInfosReply, error) {
	return l.s.NetworkGroupGetAllVStreamInfos(ctx, req)
}

func (l localBroker) NetworkGroupIsScheduled(ctx context.Context, req *pb.NetworkGroupIdentifierRequest, _ ...grpc.CallOption) (*pb.BoolReply, error) {
	return l.s.NetworkGroupIsScheduled(ctx, req)
}

func (l localBroker) NetworkGroupSetSchedulerTimeout(ctx context.Context, req *pb.SetSchedulerTimeoutRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.NetworkGroupSetSchedulerTimeout(ctx, req)
}

func (l localBroker) NetworkGroupSetSchedulerThreshold(ctx context.Context, req *pb.SetSchedulerThresholdRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.NetworkGroupSetSchedulerThreshold(ctx, req)
}

func (l localBroker) NetworkGroupSetSchedulerPriority(ctx context.Context, req *pb.SetSchedulerPriorityRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.NetworkGroupSetSchedulerPriority(ctx, req)
}

func (l localBroker) NetworkGroupGetLatencyMeasurement(ctx context.Context, req *pb.GetLatencyMeasurementRequest, _ ...grpc.CallOption) (*pb.GetLatencyMeasurementReply, error) {
	return l.s.NetworkGroupGetLatencyMeasurement(ctx, req)
}

func (l localBroker) NetworkGroupIsMultiContext(ctx context.Context, req *pb.NetworkGroupIdentifierRequest, _ ...grpc.CallOption) (*pb.BoolReply, error) {
	return l.s.NetworkGroupIsMultiContext(ctx, req)
}

func (l localBroker) NetworkGroupGetConfigParams(ctx context.Context, req *pb.NetworkGroupIdentifierRequest, _ ...grpc.CallOption) (*pb.GetConfigParamsReply, error) {
	return l.s.NetworkGroupGetConfigParams(ctx, req)
}

func (l localBroker) NetworkGroupGetSortedOutputNames(ctx context.Context, req *pb.NetworkGroupIdentifierRequest, _ ...grpc.CallOption) (*pb.NamesReply, error) {
	return l.s.NetworkGroupGetSortedOutputNames(ctx, req)
}

func (l localBroker) NetworkGroupGetStreamNamesFromVstreamName(ctx context.Context, req *pb.GetStreamNamesFromVstreamNameRequest, _ ...grpc.CallOption) (*pb.NamesReply, error) {
	return l.s.NetworkGroupGetStreamNamesFromVstreamName(ctx, req)
}

func (l localBroker) NetworkGroupGetVstreamNamesFromStreamName(ctx context.Context, req *pb.GetVstreamNamesFromStreamNameRequest, _ ...grpc.CallOption) (*pb.NamesReply, error) {
	return l.s.NetworkGroupGetVstreamNamesFromStreamName(ctx, req)
}

func (l localBroker) InputVStreamsCreate(ctx context.Context, req *pb.CreateVStreamsRequest, _ ...grpc.CallOption) (*pb.CreateVStreamsReply, error) {
	return l.s.InputVStreamsCreate(ctx, req)
}

func (l localBroker) OutputVStreamsCreate(ctx context.Context, req *pb.CreateVStreamsRequest, _ ...grpc.CallOption) (*pb.CreateVStreamsReply, error) {
	return l.s.OutputVStreamsCreate(ctx, req)
}

func (l localBroker) InputVStreamDupHandle(ctx context.Context, req *pb.VStreamDupHandleRequest, _ ...grpc.CallOption) (*pb.DupHandleReply, error) {
	return l.s.InputVStreamDupHandle(ctx, req)
}

func (l localBroker) InputVStreamRelease(ctx context.Context, req *pb.VStreamReleaseRequest, _ ...grpc.CallOption) (*pb.ReleaseReply, error) {
	return l.s.InputVStreamRelease(ctx, req)
}

func (l localBroker) InputVStreamWrite(ctx context.Context, req *pb.InputVStreamWriteRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamWrite(ctx, req)
}

func (l localBroker) InputVStreamWritePix(ctx context.Context, req *pb.InputVStreamWritePixRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamWritePix(ctx, req)
}

func (l localBroker) InputVStreamGetFrameSize(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.FrameSizeReply, error) {
	return l.s.InputVStreamGetFrameSize(ctx, req)
}

func (l localBroker) InputVStreamFlush(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamFlush(ctx, req)
}

func (l localBroker) InputVStreamName(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.NameReply, error) {
	return l.s.InputVStreamName(ctx, req)
}

func (l localBroker) InputVStreamNetworkName(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.NameReply, error) {
	return l.s.InputVStreamNetworkName(ctx, req)
}

func (l localBroker) InputVStreamAbort(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamAbort(ctx, req)
}

func (l localBroker) InputVStreamResume(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamResume(ctx, req)
}

func (l localBroker) InputVStreamStopAndClear(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamStopAndClear(ctx, req)
}

func (l localBroker) InputVStreamStart(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.InputVStreamStart(ctx, req)
}

func (l localBroker) InputVStreamGetUserBufferFormat(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.FormatReply, error) {
	return l.s.InputVStreamGetUserBufferFormat(ctx, req)
}

func (l localBroker) InputVStreamGetInfo(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.VStreamInfoReply, error) {
	return l.s.InputVStreamGetInfo(ctx, req)
}

func (l localBroker) InputVStreamIsAborted(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.BoolReply, error) {
	return l.s.InputVStreamIsAborted(ctx, req)
}

func (l localBroker) InputVStreamIsMultiPlanar(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.BoolReply, error) {
	return l.s.InputVStreamIsMultiPlanar(ctx, req)
}

func (l localBroker) OutputVStreamDupHandle(ctx context.Context, req *pb.VStreamDupHandleRequest, _ ...grpc.CallOption) (*pb.DupHandleReply, error) {
	return l.s.OutputVStreamDupHandle(ctx, req)
}

func (l localBroker) OutputVStreamRelease(ctx context.Context, req *pb.VStreamReleaseRequest, _ ...grpc.CallOption) (*pb.ReleaseReply, error) {
	return l.s.OutputVStreamRelease(ctx, req)
}

func (l localBroker) OutputVStreamRead(ctx context.Context, req *pb.OutputVStreamReadRequest, _ ...grpc.CallOption) (*pb.OutputVStreamReadReply, error) {
	return l.s.OutputVStreamRead(ctx, req)
}

func (l localBroker) OutputVStreamGetFrameSize(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.FrameSizeReply, error) {
	return l.s.OutputVStreamGetFrameSize(ctx, req)
}

func (l localBroker) OutputVStreamName(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.NameReply, error) {
	return l.s.OutputVStreamName(ctx, req)
}

func (l localBroker) OutputVStreamNetworkName(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.NameReply, error) {
	return l.s.OutputVStreamNetworkName(ctx, req)
}

func (l localBroker) OutputVStreamAbort(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamAbort(ctx, req)
}

func (l localBroker) OutputVStreamResume(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamResume(ctx, req)
}

func (l localBroker) OutputVStreamStopAndClear(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamStopAndClear(ctx, req)
}

func (l localBroker) OutputVStreamStart(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamStart(ctx, req)
}

func (l localBroker) OutputVStreamGetUserBufferFormat(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.FormatReply, error) {
	return l.s.OutputVStreamGetUserBufferFormat(ctx, req)
}

func (l localBroker) OutputVStreamGetInfo(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.VStreamInfoReply, error) {
	return l.s.OutputVStreamGetInfo(ctx, req)
}

func (l localBroker) OutputVStreamIsAborted(ctx context.Context, req *pb.VStreamIdentifierRequest, _ ...grpc.CallOption) (*pb.BoolReply, error) {
	return l.s.OutputVStreamIsAborted(ctx, req)
}

func (l localBroker) OutputVStreamSetNmsScoreThreshold(ctx context.Context, req *pb.SetNmsScoreThresholdRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamSetNmsScoreThreshold(ctx, req)
}

func (l localBroker) OutputVStreamSetNmsIouThreshold(ctx context.Context, req *pb.SetNmsIouThresholdRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamSetNmsIouThreshold(ctx, req)
}

func (l localBroker) OutputVStreamSetNmsMaxProposalsPerClass(ctx context.Context, req *pb.SetNmsMaxProposalsRequest, _ ...grpc.CallOption) (*pb.StatusReply, error) {
	return l.s.OutputVStreamSetNmsMaxProposalsPerClass(ctx, req)
}

// newTestClient wires a client straight into an in-process service.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	s := broker.NewService(broker.Config{}, nil, zap.NewNop())
	return &Client{
		addr:    "in-process",
		pid:     100,
		log:     zap.NewNop(),
		rpc:     localBroker{s: s},
		breaker: newBreaker(),
	}
}

func configuredGroup(t *testing.T, c *Client) (*DeviceClient, *NetworkGroupClient) {
	t.Helper()
	dev, err := CreateDevice(c, broker.DeviceParams{DeviceCount: 1})
	require.NoError(t, err)
	groups, err := dev.Configure(testHef(t), testConfigureParams())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	return dev, groups[0]
}

func TestServiceVersionThroughClient(t *testing.T) {
	c := newTestClient(t)
	major, _, _, err := c.ServiceVersion()
	require.NoError(t, err)
	assert.EqualValues(t, broker.VersionMajor, major)
}

func TestConfigureAndQueryGroup(t *testing.T) {
	c := newTestClient(t)
	dev, group := configuredGroup(t, c)

	name, err := group.Name()
	require.NoError(t, err)
	assert.Equal(t, "core_op0", name)

	networks, err := group.NetworkNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"net0"}, networks)

	sorted, err := group.SortedOutputNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"output0"}, sorted)

	streams, err := group.StreamNamesFromVStreamName("in_v")
	require.NoError(t, err)
	assert.Equal(t, []string{"input0"}, streams)

	scheduled, err := group.IsScheduled()
	require.NoError(t, err)
	assert.False(t, scheduled)

	require.NoError(t, group.Release())
	require.NoError(t, dev.Release())
}

func TestVStreamRoundTripThroughClient(t *testing.T) {
	c := newTestClient(t)
	_, group := configuredGroup(t, c)

	inParams, err := group.MakeInputVStreamParams("")
	require.NoError(t, err)
	require.Contains(t, inParams, "in_v")
	outParams, err := group.MakeOutputVStreamParams("")
	require.NoError(t, err)

	inputs, err := group.CreateInputVStreams(inParams)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	outputs, err := group.CreateOutputVStreams(outParams)
	require.NoError(t, err)
	require.Len(t, outputs, 1)

	size, err := inputs[0].FrameSize()
	require.NoError(t, err)
	assert.Equal(t, testFrameSize, size)

	require.NoError(t, inputs[0].Write(make([]byte, testFrameSize)))
	require.NoError(t, inputs[0].Flush())

	data, err := outputs[0].Read(0)
	require.NoError(t, err)
	assert.Len(t, data, testFrameSize)

	name, err := inputs[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "in_v", name)

	require.NoError(t, inputs[0].Release())
	require.NoError(t, outputs[0].Release())
}

func TestVStreamAbortResumeThroughClient(t *testing.T) {
	c := newTestClient(t)
	_, group := configuredGroup(t, c)

	inputs, err := group.CreateInputVStreams(map[string]*pb.VStreamParams{"in_v": {TimeoutMs: 1000}})
	require.NoError(t, err)

	require.NoError(t, inputs[0].StopAndClear())
	aborted, err := inputs[0].IsAborted()
	require.NoError(t, err)
	assert.True(t, aborted)

	err = inputs[0].Write(make([]byte, testFrameSize))
	assert.Equal(t, status.AbortedByUser, status.CodeOf(err))

	require.NoError(t, inputs[0].Start())
	require.NoError(t, inputs[0].Write(make([]byte, testFrameSize)))
}

func TestActivationBlockedThroughBroker(t *testing.T) {
	// These fail before any wire traffic; no connection exists.
	group := &NetworkGroupClient{c: New("", nil), handle: 1}

	assert.Equal(t, status.InvalidOperation, status.CodeOf(group.Activate()))
	assert.Equal(t, status.InvalidOperation, status.CodeOf(group.WaitForActivation(time.Second)))
	assert.Equal(t, status.InvalidOperation, status.CodeOf(group.InputStream("input0")))
	assert.Equal(t, status.InvalidOperation, status.CodeOf(group.OutputStream("output0")))
}

func TestDuplicateAfterFork(t *testing.T) {
	c := newTestClient(t)
	_, group := configuredGroup(t, c)

	// A forked child rebinds its pid, then re-registers its inherited
	// handles.
	c.AfterForkInChild()
	dup, err := group.Duplicate()
	require.NoError(t, err)
	assert.Equal(t, group.Handle(), dup.Handle())

	require.NoError(t, dup.Release())
	// The original owner still holds the group.
	_, err = group.Name()
	require.NoError(t, err)
}

func TestStaleHandleSurfacesNotFound(t *testing.T) {
	c := newTestClient(t)
	group := &NetworkGroupClient{c: c, handle: 999}
	_, err := group.Name()
	assert.Equal(t, status.NotFound, status.CodeOf(err))
}

// failingBroker errors on every call it implements.
type failingBroker struct {
	pb.BrokerServiceClient
}

func (failingBroker) GetServiceVersion(context.Context, *pb.GetServiceVersionRequest, ...grpc.CallOption) (*pb.GetServiceVersionReply, error) {
	return nil, errors.New("connection refused")
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	c := &Client{
		addr:    "in-process",
		pid:     100,
		log:     zap.NewNop(),
		rpc:     failingBroker{},
		breaker: newBreaker(),
	}

	for i := 0; i < 5; i++ {
		_, _, _, err := c.ServiceVersion()
		require.Error(t, err)
	}

	_, _, _, err := c.ServiceVersion()
	assert.Equal(t, status.NotAvailable, status.CodeOf(err))
}
