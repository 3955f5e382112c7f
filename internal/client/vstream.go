package client

import (
	"context"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// InputVStreamClient is the typed facade over one broker-side input
// vstream.
type InputVStreamClient struct {
	c           *Client
	groupHandle uint32
	handle      uint32
}

// OutputVStreamClient is the typed facade over one broker-side output
// vstream.
type OutputVStreamClient struct {
	c           *Client
	groupHandle uint32
	handle      uint32
}

func (v *InputVStreamClient) identifier() *pb.VStreamIdentifier {
	return &pb.VStreamIdentifier{NetworkGroupHandle: v.groupHandle, Handle: v.handle}
}

func (v *OutputVStreamClient) identifier() *pb.VStreamIdentifier {
	return &pb.VStreamIdentifier{NetworkGroupHandle: v.groupHandle, Handle: v.handle}
}

// statusOnly runs an RPC whose reply carries nothing but a status.
func statusOnly(c *Client, fn func(pb.BrokerServiceClient, context.Context, *pb.VStreamIdentifierRequest) (*pb.StatusReply, error), identifier *pb.VStreamIdentifier) error {
	reply, err := call(c, fn, &pb.VStreamIdentifierRequest{Identifier: identifier})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

func name(c *Client, fn func(pb.BrokerServiceClient, context.Context, *pb.VStreamIdentifierRequest) (*pb.NameReply, error), identifier *pb.VStreamIdentifier) (string, error) {
	reply, err := call(c, fn, &pb.VStreamIdentifierRequest{Identifier: identifier})
	if err != nil {
		return "", err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return "", err
	}
	return reply.GetName(), nil
}

func boolValue(c *Client, fn func(pb.BrokerServiceClient, context.Context, *pb.VStreamIdentifierRequest) (*pb.BoolReply, error), identifier *pb.VStreamIdentifier) (bool, error) {
	reply, err := call(c, fn, &pb.VStreamIdentifierRequest{Identifier: identifier})
	if err != nil {
		return false, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return false, err
	}
	return reply.GetValue(), nil
}

// DupHandle adds this process to the vstream's owner set.
func (v *InputVStreamClient) DupHandle() error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamDupHandleRequest) (*pb.DupHandleReply, error) {
		return rpc.InputVStreamDupHandle(ctx, req)
	}, &pb.VStreamDupHandleRequest{Identifier: v.identifier(), Pid: v.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Release drops this process's ownership of the vstream.
func (v *InputVStreamClient) Release() error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamReleaseRequest) (*pb.ReleaseReply, error) {
		return rpc.InputVStreamRelease(ctx, req)
	}, &pb.VStreamReleaseRequest{Identifier: v.identifier(), Pid: v.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Write sends one frame.
func (v *InputVStreamClient) Write(data []byte) error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.InputVStreamWriteRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamWrite(ctx, req)
	}, &pb.InputVStreamWriteRequest{Identifier: v.identifier(), Data: data})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// WritePix sends one frame given as separate planes.
func (v *InputVStreamClient) WritePix(planes [][]byte) error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.InputVStreamWritePixRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamWritePix(ctx, req)
	}, &pb.InputVStreamWritePixRequest{Identifier: v.identifier(), Planes: planes})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// FrameSize returns the byte size of one frame.
func (v *InputVStreamClient) FrameSize() (int, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FrameSizeReply, error) {
		return rpc.InputVStreamGetFrameSize(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, err
	}
	return int(reply.GetFrameSize()), nil
}

// Flush waits for written frames to drain.
func (v *InputVStreamClient) Flush() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamFlush(ctx, req)
	}, v.identifier())
}

// Name returns the vstream name.
func (v *InputVStreamClient) Name() (string, error) {
	return name(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
		return rpc.InputVStreamName(ctx, req)
	}, v.identifier())
}

// NetworkName returns the owning network.
func (v *InputVStreamClient) NetworkName() (string, error) {
	return name(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
		return rpc.InputVStreamNetworkName(ctx, req)
	}, v.identifier())
}

// Abort unblocks writers stuck on the vstream.
func (v *InputVStreamClient) Abort() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamAbort(ctx, req)
	}, v.identifier())
}

// Resume re-arms an aborted vstream.
func (v *InputVStreamClient) Resume() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamResume(ctx, req)
	}, v.identifier())
}

// StopAndClear aborts the vstream and drops staged frames.
func (v *InputVStreamClient) StopAndClear() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamStopAndClear(ctx, req)
	}, v.identifier())
}

// Start resumes a stopped vstream.
func (v *InputVStreamClient) Start() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.InputVStreamStart(ctx, req)
	}, v.identifier())
}

// UserBufferFormat returns the caller-visible frame format.
func (v *InputVStreamClient) UserBufferFormat() (device.Format, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FormatReply, error) {
		return rpc.InputVStreamGetUserBufferFormat(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return device.Format{}, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return device.Format{}, err
	}
	return device.Format{
		Type:  device.FormatType(reply.GetFormat().GetType()),
		Order: device.FormatOrder(reply.GetFormat().GetOrder()),
	}, nil
}

// Info describes the vstream.
func (v *InputVStreamClient) Info() (*pb.VStreamInfo, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.VStreamInfoReply, error) {
		return rpc.InputVStreamGetInfo(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetInfo(), nil
}

// IsAborted reports whether the vstream is aborted.
func (v *InputVStreamClient) IsAborted() (bool, error) {
	return boolValue(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
		return rpc.InputVStreamIsAborted(ctx, req)
	}, v.identifier())
}

// IsMultiPlanar reports whether frames arrive as separate planes.
func (v *InputVStreamClient) IsMultiPlanar() (bool, error) {
	return boolValue(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
		return rpc.InputVStreamIsMultiPlanar(ctx, req)
	}, v.identifier())
}

// DupHandle adds this process to the vstream's owner set.
func (v *OutputVStreamClient) DupHandle() error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamDupHandleRequest) (*pb.DupHandleReply, error) {
		return rpc.OutputVStreamDupHandle(ctx, req)
	}, &pb.VStreamDupHandleRequest{Identifier: v.identifier(), Pid: v.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Release drops this process's ownership of the vstream.
func (v *OutputVStreamClient) Release() error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamReleaseRequest) (*pb.ReleaseReply, error) {
		return rpc.OutputVStreamRelease(ctx, req)
	}, &pb.VStreamReleaseRequest{Identifier: v.identifier(), Pid: v.c.Pid()})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// Read receives one frame.
func (v *OutputVStreamClient) Read(size int) ([]byte, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.OutputVStreamReadRequest) (*pb.OutputVStreamReadReply, error) {
		return rpc.OutputVStreamRead(ctx, req)
	}, &pb.OutputVStreamReadRequest{Identifier: v.identifier(), Size: uint64(size)})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetData(), nil
}

// FrameSize returns the byte size of one frame.
func (v *OutputVStreamClient) FrameSize() (int, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FrameSizeReply, error) {
		return rpc.OutputVStreamGetFrameSize(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, err
	}
	return int(reply.GetFrameSize()), nil
}

// Name returns the vstream name.
func (v *OutputVStreamClient) Name() (string, error) {
	return name(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
		return rpc.OutputVStreamName(ctx, req)
	}, v.identifier())
}

// NetworkName returns the owning network.
func (v *OutputVStreamClient) NetworkName() (string, error) {
	return name(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
		return rpc.OutputVStreamNetworkName(ctx, req)
	}, v.identifier())
}

// Abort unblocks readers stuck on the vstream.
func (v *OutputVStreamClient) Abort() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamAbort(ctx, req)
	}, v.identifier())
}

// Resume re-arms an aborted vstream.
func (v *OutputVStreamClient) Resume() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamResume(ctx, req)
	}, v.identifier())
}

// StopAndClear aborts the vstream and drops queued frames.
func (v *OutputVStreamClient) StopAndClear() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamStopAndClear(ctx, req)
	}, v.identifier())
}

// Start resumes a stopped vstream.
func (v *OutputVStreamClient) Start() error {
	return statusOnly(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamStart(ctx, req)
	}, v.identifier())
}

// UserBufferFormat returns the caller-visible frame format.
func (v *OutputVStreamClient) UserBufferFormat() (device.Format, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FormatReply, error) {
		return rpc.OutputVStreamGetUserBufferFormat(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return device.Format{}, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return device.Format{}, err
	}
	return device.Format{
		Type:  device.FormatType(reply.GetFormat().GetType()),
		Order: device.FormatOrder(reply.GetFormat().GetOrder()),
	}, nil
}

// Info describes the vstream.
func (v *OutputVStreamClient) Info() (*pb.VStreamInfo, error) {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.VStreamInfoReply, error) {
		return rpc.OutputVStreamGetInfo(ctx, req)
	}, &pb.VStreamIdentifierRequest{Identifier: v.identifier()})
	if err != nil {
		return nil, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return nil, err
	}
	return reply.GetInfo(), nil
}

// IsAborted reports whether the vstream is aborted.
func (v *OutputVStreamClient) IsAborted() (bool, error) {
	return boolValue(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
		return rpc.OutputVStreamIsAborted(ctx, req)
	}, v.identifier())
}

// SetNmsScoreThreshold tunes detection decoding.
func (v *OutputVStreamClient) SetNmsScoreThreshold(threshold float32) error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetNmsScoreThresholdRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamSetNmsScoreThreshold(ctx, req)
	}, &pb.SetNmsScoreThresholdRequest{Identifier: v.identifier(), Threshold: threshold})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// SetNmsIouThreshold tunes detection decoding.
func (v *OutputVStreamClient) SetNmsIouThreshold(threshold float32) error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetNmsIouThresholdRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamSetNmsIouThreshold(ctx, req)
	}, &pb.SetNmsIouThresholdRequest{Identifier: v.identifier(), Threshold: threshold})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}

// SetNmsMaxProposalsPerClass tunes detection decoding.
func (v *OutputVStreamClient) SetNmsMaxProposalsPerClass(max uint32) error {
	reply, err := call(v.c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.SetNmsMaxProposalsRequest) (*pb.StatusReply, error) {
		return rpc.OutputVStreamSetNmsMaxProposalsPerClass(ctx, req)
	}, &pb.SetNmsMaxProposalsRequest{Identifier: v.identifier(), MaxProposalsPerClass: max})
	if err != nil {
		return err
	}
	return status.Err(status.Code(reply.GetStatus()))
}
