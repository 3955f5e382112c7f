package broker

import (
	"context"

	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// InputVStreamsCreate opens the requested write-side channels and hands
// back one handle per vstream.
func (s *Service) InputVStreamsCreate(ctx context.Context, req *pb.CreateVStreamsRequest) (*pb.CreateVStreamsReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.CreateVStreamsReply{Status: uint32(status.CodeOf(err))}, nil
	}

	vstreams, err := coreop.CreateInputVStreams(group, vstreamParamsFromProto(req.GetParams()))
	if err != nil {
		return &pb.CreateVStreamsReply{Status: uint32(status.CodeOf(err))}, nil
	}

	s.mu.Lock()
	s.touch(req.GetPid())
	handles := make([]uint32, len(vstreams))
	names := make([]string, len(vstreams))
	for i, v := range vstreams {
		handles[i] = s.inputs.Insert(v, req.GetPid())
		names[i] = v.Name()
	}
	s.updateGauges()
	s.mu.Unlock()

	s.log.Info("input vstreams created",
		zap.Uint32("pid", req.GetPid()), zap.Strings("names", names))
	return &pb.CreateVStreamsReply{
		Status:  uint32(status.Success),
		Handles: handles,
		Names:   names,
	}, nil
}

// OutputVStreamsCreate opens the requested read-side channels and hands
// back one handle per vstream.
func (s *Service) OutputVStreamsCreate(ctx context.Context, req *pb.CreateVStreamsRequest) (*pb.CreateVStreamsReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.CreateVStreamsReply{Status: uint32(status.CodeOf(err))}, nil
	}

	vstreams, err := coreop.CreateOutputVStreams(group, vstreamParamsFromProto(req.GetParams()))
	if err != nil {
		return &pb.CreateVStreamsReply{Status: uint32(status.CodeOf(err))}, nil
	}

	s.mu.Lock()
	s.touch(req.GetPid())
	handles := make([]uint32, len(vstreams))
	names := make([]string, len(vstreams))
	for i, v := range vstreams {
		handles[i] = s.outputs.Insert(v, req.GetPid())
		names[i] = v.Name()
	}
	s.updateGauges()
	s.mu.Unlock()

	s.log.Info("output vstreams created",
		zap.Uint32("pid", req.GetPid()), zap.Strings("names", names))
	return &pb.CreateVStreamsReply{
		Status:  uint32(status.Success),
		Handles: handles,
		Names:   names,
	}, nil
}

// InputVStreamDupHandle adds the caller to an input vstream's owner set.
func (s *Service) InputVStreamDupHandle(ctx context.Context, req *pb.VStreamDupHandleRequest) (*pb.DupHandleReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	err := s.inputs.Dup(req.GetIdentifier().GetHandle(), req.GetPid())
	s.mu.Unlock()
	if err != nil {
		return &pb.DupHandleReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.DupHandleReply{
		Status: uint32(status.Success),
		Handle: req.GetIdentifier().GetHandle(),
	}, nil
}

// InputVStreamRelease drops the caller's ownership of an input vstream.
func (s *Service) InputVStreamRelease(ctx context.Context, req *pb.VStreamReleaseRequest) (*pb.ReleaseReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	v, last, err := s.inputs.Release(req.GetIdentifier().GetHandle(), req.GetPid())
	s.updateGauges()
	s.mu.Unlock()

	if err != nil {
		return &pb.ReleaseReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if last {
		_ = v.Abort()
	}
	return &pb.ReleaseReply{Status: uint32(status.Success)}, nil
}

// InputVStreamWrite sends one frame.
func (s *Service) InputVStreamWrite(ctx context.Context, req *pb.InputVStreamWriteRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Write(req.GetData())))}, nil
}

// InputVStreamWritePix sends one frame given as separate planes.
func (s *Service) InputVStreamWritePix(ctx context.Context, req *pb.InputVStreamWritePixRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.WritePix(req.GetPlanes())))}, nil
}

// InputVStreamGetFrameSize returns the byte size of one frame.
func (s *Service) InputVStreamGetFrameSize(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FrameSizeReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.FrameSizeReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.FrameSizeReply{
		Status:    uint32(status.Success),
		FrameSize: uint64(v.FrameSize()),
	}, nil
}

// InputVStreamFlush waits for written frames to drain.
func (s *Service) InputVStreamFlush(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Flush()))}, nil
}

// InputVStreamName returns the vstream name.
func (s *Service) InputVStreamName(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.NameReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NameReply{Status: uint32(status.Success), Name: v.Name()}, nil
}

// InputVStreamNetworkName returns the owning network.
func (s *Service) InputVStreamNetworkName(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.NameReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NameReply{Status: uint32(status.Success), Name: v.NetworkName()}, nil
}

// InputVStreamAbort unblocks writers stuck on the vstream.
func (s *Service) InputVStreamAbort(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if s.metrics != nil {
		s.metrics.IncAborts()
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Abort()))}, nil
}

// InputVStreamResume re-arms an aborted vstream.
func (s *Service) InputVStreamResume(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Resume()))}, nil
}

// InputVStreamStopAndClear aborts the vstream and drops staged frames.
func (s *Service) InputVStreamStopAndClear(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.StopAndClear()))}, nil
}

// InputVStreamStart resumes a stopped vstream.
func (s *Service) InputVStreamStart(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.StartVStream()))}, nil
}

// InputVStreamGetUserBufferFormat returns the caller-visible frame
// format.
func (s *Service) InputVStreamGetUserBufferFormat(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FormatReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.FormatReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.FormatReply{
		Status: uint32(status.Success),
		Format: formatToProto(v.UserBufferFormat()),
	}, nil
}

// InputVStreamGetInfo describes the vstream.
func (s *Service) InputVStreamGetInfo(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.VStreamInfoReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.VStreamInfoReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.VStreamInfoReply{
		Status: uint32(status.Success),
		Info:   vstreamInfoToProto(v.Info()),
	}, nil
}

// InputVStreamIsAborted reports whether the vstream is aborted.
func (s *Service) InputVStreamIsAborted(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.BoolReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.BoolReply{Status: uint32(status.Success), Value: v.IsAborted()}, nil
}

// InputVStreamIsMultiPlanar reports whether frames arrive as separate
// planes.
func (s *Service) InputVStreamIsMultiPlanar(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
	v, err := s.inputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.BoolReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.BoolReply{Status: uint32(status.Success), Value: v.IsMultiPlanar()}, nil
}

// OutputVStreamDupHandle adds the caller to an output vstream's owner
// set.
func (s *Service) OutputVStreamDupHandle(ctx context.Context, req *pb.VStreamDupHandleRequest) (*pb.DupHandleReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	err := s.outputs.Dup(req.GetIdentifier().GetHandle(), req.GetPid())
	s.mu.Unlock()
	if err != nil {
		return &pb.DupHandleReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.DupHandleReply{
		Status: uint32(status.Success),
		Handle: req.GetIdentifier().GetHandle(),
	}, nil
}

// OutputVStreamRelease drops the caller's ownership of an output vstream.
func (s *Service) OutputVStreamRelease(ctx context.Context, req *pb.VStreamReleaseRequest) (*pb.ReleaseReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	v, last, err := s.outputs.Release(req.GetIdentifier().GetHandle(), req.GetPid())
	s.updateGauges()
	s.mu.Unlock()

	if err != nil {
		return &pb.ReleaseReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if last {
		_ = v.Abort()
	}
	return &pb.ReleaseReply{Status: uint32(status.Success)}, nil
}

// OutputVStreamRead receives one frame.
func (s *Service) OutputVStreamRead(ctx context.Context, req *pb.OutputVStreamReadRequest) (*pb.OutputVStreamReadReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.OutputVStreamReadReply{Status: uint32(status.CodeOf(err))}, nil
	}
	size := int(req.GetSize())
	if size == 0 {
		size = v.FrameSize()
	}
	data := make([]byte, size)
	if err := v.Read(data); err != nil {
		return &pb.OutputVStreamReadReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.OutputVStreamReadReply{Status: uint32(status.Success), Data: data}, nil
}

// OutputVStreamGetFrameSize returns the byte size of one frame.
func (s *Service) OutputVStreamGetFrameSize(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FrameSizeReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.FrameSizeReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.FrameSizeReply{
		Status:    uint32(status.Success),
		FrameSize: uint64(v.FrameSize()),
	}, nil
}

// OutputVStreamName returns the vstream name.
func (s *Service) OutputVStreamName(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.NameReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NameReply{Status: uint32(status.Success), Name: v.Name()}, nil
}

// OutputVStreamNetworkName returns the owning network.
func (s *Service) OutputVStreamNetworkName(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.NameReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.NameReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NameReply{Status: uint32(status.Success), Name: v.NetworkName()}, nil
}

// OutputVStreamAbort unblocks readers stuck on the vstream.
func (s *Service) OutputVStreamAbort(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if s.metrics != nil {
		s.metrics.IncAborts()
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Abort()))}, nil
}

// OutputVStreamResume re-arms an aborted vstream.
func (s *Service) OutputVStreamResume(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.Resume()))}, nil
}

// OutputVStreamStopAndClear aborts the vstream and drops queued frames.
func (s *Service) OutputVStreamStopAndClear(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.StopAndClear()))}, nil
}

// OutputVStreamStart resumes a stopped vstream.
func (s *Service) OutputVStreamStart(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.StartVStream()))}, nil
}

// OutputVStreamGetUserBufferFormat returns the caller-visible frame
// format.
func (s *Service) OutputVStreamGetUserBufferFormat(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.FormatReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.FormatReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.FormatReply{
		Status: uint32(status.Success),
		Format: formatToProto(v.UserBufferFormat()),
	}, nil
}

// OutputVStreamGetInfo describes the vstream.
func (s *Service) OutputVStreamGetInfo(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.VStreamInfoReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.VStreamInfoReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.VStreamInfoReply{
		Status: uint32(status.Success),
		Info:   vstreamInfoToProto(v.Info()),
	}, nil
}

// OutputVStreamIsAborted reports whether the vstream is aborted.
func (s *Service) OutputVStreamIsAborted(ctx context.Context, req *pb.VStreamIdentifierRequest) (*pb.BoolReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.BoolReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.BoolReply{Status: uint32(status.Success), Value: v.IsAborted()}, nil
}

// OutputVStreamSetNmsScoreThreshold tunes detection decoding.
func (s *Service) OutputVStreamSetNmsScoreThreshold(ctx context.Context, req *pb.SetNmsScoreThresholdRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.SetNmsScoreThreshold(req.GetThreshold())))}, nil
}

// OutputVStreamSetNmsIouThreshold tunes detection decoding.
func (s *Service) OutputVStreamSetNmsIouThreshold(ctx context.Context, req *pb.SetNmsIouThresholdRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.SetNmsIouThreshold(req.GetThreshold())))}, nil
}

// OutputVStreamSetNmsMaxProposalsPerClass tunes detection decoding.
func (s *Service) OutputVStreamSetNmsMaxProposalsPerClass(ctx context.Context, req *pb.SetNmsMaxProposalsRequest) (*pb.StatusReply, error) {
	v, err := s.outputVStream(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StatusReply{Status: uint32(status.CodeOf(v.SetNmsMaxProposalsPerClass(req.GetMaxProposalsPerClass())))}, nil
}
