package client

import (
	"context"

	"github.com/wenjunnutter/hailort/internal/broker"
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// DeviceClient is the typed facade over one broker-side virtual device.
type DeviceClient struct {
	c      *Client
	handle uint32
}

// CreateDevice claims a virtual device on the broker.
func CreateDevice(c *Client, params broker.DeviceParams) (*DeviceClient, error) {
	reply, err := call(c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.DeviceCreateRequest) (*pb.DeviceCreateReply, error) {
		return rpc.DeviceCreate(ctx, req)
	}, &pb.DeviceCreateRequest{
		Pid: c.Pid(),
		Params: &pb.DeviceParams{
			DeviceCount:         params.DeviceCount,
			DeviceIds:           params.DeviceIDs,
			SchedulingAlgorithm: uint32(params.Scheduling),
			GroupId:             params.GroupID,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return &DeviceClient{c: c, handle: reply.GetHandle()}, nil
}

// Handle returns the broker-side device handle.
func (d *DeviceClient) Handle() uint32 { return d.handle }

func (d *DeviceClient) identifier() *pb.DeviceIdentifier {
	return &pb.DeviceIdentifier{Handle: d.handle}
}

// Release drops this process's ownership of the device.
func (d *DeviceClient) Release() error {
	reply, err := call(d.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.DeviceReleaseRequest) (*pb.ReleaseReply, error) {
		return rpc.DeviceRelease(ctx, req)
	}, &pb.DeviceReleaseRequest{Identifier: d.identifier(), Pid: d.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Configure programs a compiled network onto the device and returns one
// network-group client per core-op.
func (d *DeviceClient) Configure(hefData []byte, params map[string]*pb.ConfigureParams) ([]*NetworkGroupClient, error) {
	named := make([]*pb.NamedConfigureParams, 0, len(params))
	for name, p := range params {
		named = append(named, &pb.NamedConfigureParams{Name: name, Params: p})
	}
	reply, err := call(d.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.DeviceConfigureRequest) (*pb.DeviceConfigureReply, error) {
		return rpc.DeviceConfigure(ctx, req)
	}, &pb.DeviceConfigureRequest{
		Identifier:      d.identifier(),
		Pid:             d.c.Pid(),
		Hef:             hefData,
		ConfigureParams: named,
	})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	groups := make([]*NetworkGroupClient, len(reply.GetNetworkGroupHandles()))
	for i, handle := range reply.GetNetworkGroupHandles() {
		groups[i] = &NetworkGroupClient{c: d.c, deviceHandle: d.handle, handle: handle}
	}
	return groups, nil
}

// PhysicalDeviceIDs lists the physical devices behind the handle.
func (d *DeviceClient) PhysicalDeviceIDs() ([]string, error) {
	reply, err := call(d.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.DeviceGetPhysicalDevicesIdsRequest) (*pb.DeviceGetPhysicalDevicesIdsReply, error) {
		return rpc.DeviceGetPhysicalDevicesIds(ctx, req)
	}, &pb.DeviceGetPhysicalDevicesIdsRequest{Identifier: d.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetDeviceIds(), nil
}

// DefaultStreamsInterface reports the transport new streams use.
func (d *DeviceClient) DefaultStreamsInterface() (device.Transport, error) {
	reply, err := call(d.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.DeviceGetDefaultStreamsInterfaceRequest) (*pb.StreamInterfaceReply, error) {
		return rpc.DeviceGetDefaultStreamsInterface(ctx, req)
	}, &pb.DeviceGetDefaultStreamsInterfaceRequest{Identifier: d.identifier()})
	if err != nil {
		return 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, err
	}
	return device.Transport(reply.GetStreamInterface()), nil
}
