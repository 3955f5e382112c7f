package client

import (
	"context"
	"time"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// NetworkGroupClient is the typed facade over one broker-side network
// group.
type NetworkGroupClient struct {
	c            *Client
	deviceHandle uint32
	handle       uint32
}

// Handle returns the broker-side group handle.
func (g *NetworkGroupClient) Handle() uint32 { return g.handle }

func (g *NetworkGroupClient) identifier() *pb.NetworkGroupIdentifier {
	return &pb.NetworkGroupIdentifier{DeviceHandle: g.deviceHandle, Handle: g.handle}
}

// Activate is not available through the broker: activation is owned by
// the broker-side scheduler. The call fails without touching the wire.
func (g *NetworkGroupClient) Activate() error {
	return status.New(status.InvalidOperation,
		"activation is not allowed through the broker, the scheduler owns the device")
}

// WaitForActivation is not available through the broker; see Activate.
func (g *NetworkGroupClient) WaitForActivation(timeout time.Duration) error {
	return status.New(status.InvalidOperation,
		"waiting for activation is not allowed through the broker")
}

// InputStream is not available through the broker: raw hardware streams
// never cross the process boundary, only vstreams do.
func (g *NetworkGroupClient) InputStream(name string) error {
	return status.New(status.InvalidOperation,
		"raw stream access is not allowed through the broker")
}

// OutputStream is not available through the broker; see InputStream.
func (g *NetworkGroupClient) OutputStream(name string) error {
	return status.New(status.InvalidOperation,
		"raw stream access is not allowed through the broker")
}

// Duplicate registers this process as another owner of the group and
// returns an independent client for it. Used after fork.
func (g *NetworkGroupClient) Duplicate() (*NetworkGroupClient, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupDupHandleRequest) (*pb.DupHandleReply, error) {
		return rpc.NetworkGroupDupHandle(ctx, req)
	}, &pb.NetworkGroupDupHandleRequest{Identifier: g.identifier(), Pid: g.c.Pid()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return &NetworkGroupClient{c: g.c, deviceHandle: g.deviceHandle, handle: reply.GetHandle()}, nil
}

// Release drops this process's ownership of the group.
func (g *NetworkGroupClient) Release() error {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupReleaseRequest) (*pb.ReleaseReply, error) {
		return rpc.NetworkGroupRelease(ctx, req)
	}, &pb.NetworkGroupReleaseRequest{Identifier: g.identifier(), Pid: g.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Name returns the group's core-op name.
func (g *NetworkGroupClient) Name() (string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupNameRequest) (*pb.NetworkGroupNameReply, error) {
		return rpc.NetworkGroupName(ctx, req)
	}, &pb.NetworkGroupNameRequest{Identifier: g.identifier()})
	if err != nil {
		return "", err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return "", err
	}
	return reply.GetName(), nil
}

// NetworkNames lists the networks inside the group.
func (g *NetworkGroupClient) NetworkNames() ([]string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupGetNetworkInfosRequest) (*pb.NetworkGroupGetNetworkInfosReply, error) {
		return rpc.NetworkGroupGetNetworkInfos(ctx, req)
	}, &pb.NetworkGroupGetNetworkInfosRequest{Identifier: g.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	names := make([]string, len(reply.GetInfos()))
	for i, info := range reply.GetInfos() {
		names[i] = info.GetName()
	}
	return names, nil
}

// StreamInfos lists the hardware streams, optionally filtered by network.
func (g *NetworkGroupClient) StreamInfos(networkName string) ([]*pb.StreamInfo, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupGetAllStreamInfosRequest) (*pb.NetworkGroupGetAllStreamInfosReply, error) {
		return rpc.NetworkGroupGetAllStreamInfos(ctx, req)
	}, &pb.NetworkGroupGetAllStreamInfosRequest{Identifier: g.identifier(), NetworkName: networkName})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetInfos(), nil
}

// DefaultStreamInterface reports the group's device default transport.
func (g *NetworkGroupClient) DefaultStreamInterface() (device.Transport, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupGetDefaultStreamInterfaceRequest) (*pb.StreamInterfaceReply, error) {
		return rpc.NetworkGroupGetDefaultStreamInterface(ctx, req)
	}, &pb.NetworkGroupGetDefaultStreamInterfaceRequest{Identifier: g.identifier()})
	if err != nil {
		return 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, err
	}
	return device.Transport(reply.GetStreamInterface()), nil
}

func (g *NetworkGroupClient) makeVStreamParams(networkName string, input bool) (map[string]*pb.VStreamParams, error) {
	req := &pb.MakeVStreamParamsRequest{Identifier: g.identifier(), NetworkName: networkName}
	fn := func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.MakeVStreamParamsRequest) (*pb.VStreamParamsMapReply, error) {
		if input {
			return rpc.NetworkGroupMakeInputVStreamParams(ctx, req)
		}
		return rpc.NetworkGroupMakeOutputVStreamParams(ctx, req)
	}
	reply, err := call(g.c, fn, req)
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetParams(), nil
}

// MakeInputVStreamParams builds default-filled params for every input
// vstream.
func (g *NetworkGroupClient) MakeInputVStreamParams(networkName string) (map[string]*pb.VStreamParams, error) {
	return g.makeVStreamParams(networkName, true)
}

// MakeOutputVStreamParams builds default-filled params for every output
// vstream.
func (g *NetworkGroupClient) MakeOutputVStreamParams(networkName string) (map[string]*pb.VStreamParams, error) {
	return g.makeVStreamParams(networkName, false)
}

// MakeOutputVStreamParamsGroups builds params split into output groups.
func (g *NetworkGroupClient) MakeOutputVStreamParamsGroups() ([]map[string]*pb.VStreamParams, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.MakeVStreamParamsRequest) (*pb.VStreamParamsGroupsReply, error) {
		return rpc.NetworkGroupMakeOutputVStreamParamsGroups(ctx, req)
	}, &pb.MakeVStreamParamsRequest{Identifier: g.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	groups := make([]map[string]*pb.VStreamParams, len(reply.GetGroups()))
	for i, group := range reply.GetGroups() {
		groups[i] = group.GetParams()
	}
	return groups, nil
}

// OutputVStreamGroups lists output vstream names grouped by hardware
// stream.
func (g *NetworkGroupClient) OutputVStreamGroups() ([][]string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.OutputVStreamGroupsReply, error) {
		return rpc.NetworkGroupGetOutputVStreamGroups(ctx, req)
	}, &pb.NetworkGroupIdentifierRequest{Identifier: g.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	groups := make([][]string, len(reply.GetGroups()))
	for i, group := range reply.GetGroups() {
		groups[i] = group.GetVstreamNames()
	}
	return groups, nil
}

func (g *NetworkGroupClient) vstreamInfos(networkName string, fn func(pb.BrokerServiceClient, context.Context, *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error)) ([]*pb.VStreamInfo, error) {
	reply, err := call(g.c, fn, &pb.VStreamInfosRequest{Identifier: g.identifier(), NetworkName: networkName})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetInfos(), nil
}

// InputVStreamInfos lists input vstream descriptions.
func (g *NetworkGroupClient) InputVStreamInfos(networkName string) ([]*pb.VStreamInfo, error) {
	return g.vstreamInfos(networkName, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
		return rpc.NetworkGroupGetInputVStreamInfos(ctx, req)
	})
}

// OutputVStreamInfos lists output vstream descriptions.
func (g *NetworkGroupClient) OutputVStreamInfos(networkName string) ([]*pb.VStreamInfo, error) {
	return g.vstreamInfos(networkName, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
		return rpc.NetworkGroupGetOutputVStreamInfos(ctx, req)
	})
}

// AllVStreamInfos lists every vstream description.
func (g *NetworkGroupClient) AllVStreamInfos() ([]*pb.VStreamInfo, error) {
	return g.vstreamInfos("", func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
		return rpc.NetworkGroupGetAllVStreamInfos(ctx, req)
	})
}

// IsScheduled reports whether the scheduler owns activation.
func (g *NetworkGroupClient) IsScheduled() (bool, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.BoolReply, error) {
		return rpc.NetworkGroupIsScheduled(ctx, req)
	}, &pb.NetworkGroupIdentifierRequest{Identifier: g.identifier()})
	if err != nil {
		return false, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return false, err
	}
	return reply.GetValue(), nil
}

// SetSchedulerTimeout updates the scheduler idle timeout.
func (g *NetworkGroupClient) SetSchedulerTimeout(timeout time.Duration, networkName string) error {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetSchedulerTimeoutRequest) (*pb.StatusReply, error) {
		return rpc.NetworkGroupSetSchedulerTimeout(ctx, req)
	}, &pb.SetSchedulerTimeoutRequest{
		Identifier:  g.identifier(),
		TimeoutMs:   uint32(timeout / time.Millisecond),
		NetworkName: networkName,
	})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// SetSchedulerThreshold updates the scheduler batch threshold.
func (g *NetworkGroupClient) SetSchedulerThreshold(threshold uint32, networkName string) error {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetSchedulerThresholdRequest) (*pb.StatusReply, error) {
		return rpc.NetworkGroupSetSchedulerThreshold(ctx, req)
	}, &pb.SetSchedulerThresholdRequest{
		Identifier:  g.identifier(),
		Threshold:   threshold,
		NetworkName: networkName,
	})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// SetSchedulerPriority updates the scheduler priority.
func (g *NetworkGroupClient) SetSchedulerPriority(priority uint8, networkName string) error {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetSchedulerPriorityRequest) (*pb.StatusReply, error) {
		return rpc.NetworkGroupSetSchedulerPriority(ctx, req)
	}, &pb.SetSchedulerPriorityRequest{
		Identifier:  g.identifier(),
		Priority:    uint32(priority),
		NetworkName: networkName,
	})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// LatencyMeasurement reads the hardware latency meters.
func (g *NetworkGroupClient) LatencyMeasurement(networkName string) (time.Duration, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.GetLatencyMeasurementRequest) (*pb.GetLatencyMeasurementReply, error) {
		return rpc.NetworkGroupGetLatencyMeasurement(ctx, req)
	}, &pb.GetLatencyMeasurementRequest{Identifier: g.identifier(), NetworkName: networkName})
	if err != nil {
		return 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, err
	}
	return time.Duration(reply.GetAvgHwLatencyNs()), nil
}

// IsMultiContext reports whether the compiled network spans multiple
// hardware contexts.
func (g *NetworkGroupClient) IsMultiContext() (bool, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.BoolReply, error) {
		return rpc.NetworkGroupIsMultiContext(ctx, req)
	}, &pb.NetworkGroupIdentifierRequest{Identifier: g.identifier()})
	if err != nil {
		return false, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return false, err
	}
	return reply.GetValue(), nil
}

// ConfigParams returns the configuration the group was built with.
func (g *NetworkGroupClient) ConfigParams() (*pb.ConfigureParams, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.GetConfigParamsReply, error) {
		return rpc.NetworkGroupGetConfigParams(ctx, req)
	}, &pb.NetworkGroupIdentifierRequest{Identifier: g.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetParams(), nil
}

// SortedOutputNames returns output names in compiled order.
func (g *NetworkGroupClient) SortedOutputNames() ([]string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.NamesReply, error) {
		return rpc.NetworkGroupGetSortedOutputNames(ctx, req)
	}, &pb.NetworkGroupIdentifierRequest{Identifier: g.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetNames(), nil
}

// StreamNamesFromVStreamName resolves the hardware streams feeding one
// vstream.
func (g *NetworkGroupClient) StreamNamesFromVStreamName(vstreamName string) ([]string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.GetStreamNamesFromVstreamNameRequest) (*pb.NamesReply, error) {
		return rpc.NetworkGroupGetStreamNamesFromVstreamName(ctx, req)
	}, &pb.GetStreamNamesFromVstreamNameRequest{Identifier: g.identifier(), VstreamName: vstreamName})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetNames(), nil
}

// VStreamNamesFromStreamName resolves the vstreams fed by one hardware
// stream.
func (g *NetworkGroupClient) VStreamNamesFromStreamName(streamName string) ([]string, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.GetVstreamNamesFromStreamNameRequest) (*pb.NamesReply, error) {
		return rpc.NetworkGroupGetVstreamNamesFromStreamName(ctx, req)
	}, &pb.GetVstreamNamesFromStreamNameRequest{Identifier: g.identifier(), StreamName: streamName})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetNames(), nil
}

// CreateInputVStreams opens the requested write-side channels.
func (g *NetworkGroupClient) CreateInputVStreams(params map[string]*pb.VStreamParams) ([]*InputVStreamClient, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.CreateVStreamsRequest) (*pb.CreateVStreamsReply, error) {
		return rpc.InputVStreamsCreate(ctx, req)
	}, &pb.CreateVStreamsRequest{Identifier: g.identifier(), Pid: g.c.Pid(), Params: params})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	vstreams := make([]*InputVStreamClient, len(reply.GetHandles()))
	for i, handle := range reply.GetHandles() {
		vstreams[i] = &InputVStreamClient{c: g.c, groupHandle: g.handle, handle: handle}
	}
	return vstreams, nil
}

// CreateOutputVStreams opens the requested read-side channels.
func (g *NetworkGroupClient) CreateOutputVStreams(params map[string]*pb.VStreamParams) ([]*OutputVStreamClient, error) {
	reply, err := call(g.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.CreateVStreamsRequest) (*pb.CreateVStreamsReply, error) {
		return rpc.OutputVStreamsCreate(ctx, req)
	}, &pb.CreateVStreamsRequest{Identifier: g.identifier(), Pid: g.c.Pid(), Params: params})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	vstreams := make([]*OutputVStreamClient, len(reply.GetHandles()))
	for i, handle := range reply.GetHandles() {
		vstreams[i] = &OutputVStreamClient{c: g.c, groupHandle: g.handle, handle: handle}
	}
	return vstreams, nil
}
