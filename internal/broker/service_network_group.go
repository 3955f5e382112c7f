package broker

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// NetworkGroupDupHandle adds the caller to an existing group handle's
// owner set, used by forked children to inherit resources.
func (s *Service) NetworkGroupDupHandle(ctx context.Context, req *pb.NetworkGroupDupHandleRequest) (*pb.DupHandleReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	err := s.groups.Dup(req.GetIdentifier().GetHandle(), req.GetPid())
	s.mu.Unlock()
	if err != nil {
		return &pb.DupHandleReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.DupHandleReply{
		Status: uint32(status.Success),
		Handle: req.GetIdentifier().GetHandle(),
	}, nil
}

// NetworkGroupRelease drops the caller's ownership; the last owner's
// release closes the group.
func (s *Service) NetworkGroupRelease(ctx context.Context, req *pb.NetworkGroupReleaseRequest) (*pb.ReleaseReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	group, last, err := s.groups.Release(req.GetIdentifier().GetHandle(), req.GetPid())
	s.updateGauges()
	s.mu.Unlock()

	if err != nil {
		return &pb.ReleaseReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if last {
		if closeErr := group.Close(); closeErr != nil {
			s.log.Error("closing network group",
				zap.String("name", group.Name()), zap.Error(closeErr))
		}
	}
	return &pb.ReleaseReply{Status: uint32(status.Success)}, nil
}

// NetworkGroupName returns the group's core-op name.
func (s *Service) NetworkGroupName(ctx context.Context, req *pb.NetworkGroupNameRequest) (*pb.NetworkGroupNameReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NetworkGroupNameReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NetworkGroupNameReply{Status: uint32(status.Success), Name: group.Name()}, nil
}

// NetworkGroupGetNetworkInfos lists the networks inside the group.
func (s *Service) NetworkGroupGetNetworkInfos(ctx context.Context, req *pb.NetworkGroupGetNetworkInfosRequest) (*pb.NetworkGroupGetNetworkInfosReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NetworkGroupGetNetworkInfosReply{Status: uint32(status.CodeOf(err))}, nil
	}
	infos := make([]*pb.NetworkInfo, 0, len(group.Metadata().Networks))
	for _, network := range group.Metadata().Networks {
		infos = append(infos, &pb.NetworkInfo{Name: network.Name})
	}
	return &pb.NetworkGroupGetNetworkInfosReply{Status: uint32(status.Success), Infos: infos}, nil
}

// NetworkGroupGetAllStreamInfos lists the hardware streams, optionally
// filtered by network.
func (s *Service) NetworkGroupGetAllStreamInfos(ctx context.Context, req *pb.NetworkGroupGetAllStreamInfosRequest) (*pb.NetworkGroupGetAllStreamInfosReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NetworkGroupGetAllStreamInfosReply{Status: uint32(status.CodeOf(err))}, nil
	}
	var infos []*pb.StreamInfo
	for _, info := range group.StreamInfos() {
		if req.GetNetworkName() != "" && info.NetworkName != req.GetNetworkName() {
			continue
		}
		infos = append(infos, streamInfoToProto(info))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return &pb.NetworkGroupGetAllStreamInfosReply{Status: uint32(status.Success), Infos: infos}, nil
}

// NetworkGroupGetDefaultStreamInterface reports the group's device
// default transport.
func (s *Service) NetworkGroupGetDefaultStreamInterface(ctx context.Context, req *pb.NetworkGroupGetDefaultStreamInterfaceRequest) (*pb.StreamInterfaceReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.StreamInterfaceReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StreamInterfaceReply{
		Status:          uint32(status.Success),
		StreamInterface: uint32(group.Device().DefaultTransport()),
	}, nil
}

func (s *Service) makeVStreamParams(req *pb.MakeVStreamParamsRequest, dir device.Direction) (*pb.VStreamParamsMapReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.VStreamParamsMapReply{Status: uint32(status.CodeOf(err))}, nil
	}
	defaults := coreop.DefaultVStreamParams()
	defaults.FormatType = device.FormatType(req.GetFormatType())
	if req.GetTimeoutMs() > 0 {
		defaults.Timeout = time.Duration(req.GetTimeoutMs()) * time.Millisecond
	}
	if req.GetQueueSize() > 0 {
		defaults.QueueSize = req.GetQueueSize()
	}
	params := make(map[string]*pb.VStreamParams)
	for _, info := range group.Metadata().VStreamInfos(dir, req.GetNetworkName()) {
		params[info.Name] = vstreamParamsToProto(defaults)
	}
	return &pb.VStreamParamsMapReply{Status: uint32(status.Success), Params: params}, nil
}

// NetworkGroupMakeInputVStreamParams builds default-filled params for
// every input vstream.
func (s *Service) NetworkGroupMakeInputVStreamParams(ctx context.Context, req *pb.MakeVStreamParamsRequest) (*pb.VStreamParamsMapReply, error) {
	return s.makeVStreamParams(req, device.HostToDevice)
}

// NetworkGroupMakeOutputVStreamParams builds default-filled params for
// every output vstream.
func (s *Service) NetworkGroupMakeOutputVStreamParams(ctx context.Context, req *pb.MakeVStreamParamsRequest) (*pb.VStreamParamsMapReply, error) {
	return s.makeVStreamParams(req, device.DeviceToHost)
}

// NetworkGroupMakeOutputVStreamParamsGroups builds params split into
// output groups, one group per hardware output stream.
func (s *Service) NetworkGroupMakeOutputVStreamParamsGroups(ctx context.Context, req *pb.MakeVStreamParamsRequest) (*pb.VStreamParamsGroupsReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.VStreamParamsGroupsReply{Status: uint32(status.CodeOf(err))}, nil
	}
	flat, err := s.makeVStreamParams(req, device.DeviceToHost)
	if err != nil || flat.Status != uint32(status.Success) {
		return &pb.VStreamParamsGroupsReply{Status: flat.GetStatus()}, nil
	}

	var groups []*pb.VStreamParamsMap
	for _, names := range outputVStreamGroups(group.Metadata()) {
		entry := &pb.VStreamParamsMap{Params: make(map[string]*pb.VStreamParams)}
		for _, name := range names {
			if p, ok := flat.Params[name]; ok {
				entry.Params[name] = p
			}
		}
		if len(entry.Params) > 0 {
			groups = append(groups, entry)
		}
	}
	return &pb.VStreamParamsGroupsReply{Status: uint32(status.Success), Groups: groups}, nil
}

// NetworkGroupGetOutputVStreamGroups lists output vstream names grouped
// by the hardware stream feeding them.
func (s *Service) NetworkGroupGetOutputVStreamGroups(ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.OutputVStreamGroupsReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.OutputVStreamGroupsReply{Status: uint32(status.CodeOf(err))}, nil
	}
	var groups []*pb.OutputVStreamGroup
	for _, names := range outputVStreamGroups(group.Metadata()) {
		groups = append(groups, &pb.OutputVStreamGroup{VstreamNames: names})
	}
	return &pb.OutputVStreamGroupsReply{Status: uint32(status.Success), Groups: groups}, nil
}

func (s *Service) vstreamInfos(req *pb.VStreamInfosRequest, dirs ...device.Direction) (*pb.VStreamInfosReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.VStreamInfosReply{Status: uint32(status.CodeOf(err))}, nil
	}
	var infos []*pb.VStreamInfo
	for _, dir := range dirs {
		for _, info := range group.Metadata().VStreamInfos(dir, req.GetNetworkName()) {
			infos = append(infos, vstreamInfoToProto(info))
		}
	}
	return &pb.VStreamInfosReply{Status: uint32(status.Success), Infos: infos}, nil
}

// NetworkGroupGetInputVStreamInfos lists input vstream descriptions.
func (s *Service) NetworkGroupGetInputVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
	return s.vstreamInfos(req, device.HostToDevice)
}

// NetworkGroupGetOutputVStreamInfos lists output vstream descriptions.
func (s *Service) NetworkGroupGetOutputVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
	return s.vstreamInfos(req, device.DeviceToHost)
}

// NetworkGroupGetAllVStreamInfos lists every vstream description.
func (s *Service) NetworkGroupGetAllVStreamInfos(ctx context.Context, req *pb.VStreamInfosRequest) (*pb.VStreamInfosReply, error) {
	return s.vstreamInfos(req, device.HostToDevice, device.DeviceToHost)
}

// NetworkGroupIsScheduled reports whether the scheduler owns activation.
func (s *Service) NetworkGroupIsScheduled(ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.BoolReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.BoolReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.BoolReply{Status: uint32(status.Success), Value: group.IsScheduled()}, nil
}

// NetworkGroupSetSchedulerTimeout updates the scheduler idle timeout.
func (s *Service) NetworkGroupSetSchedulerTimeout(ctx context.Context, req *pb.SetSchedulerTimeoutRequest) (*pb.StatusReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	err = group.SetSchedulerTimeout(time.Duration(req.GetTimeoutMs()) * time.Millisecond)
	return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
}

// NetworkGroupSetSchedulerThreshold updates the scheduler batch threshold.
func (s *Service) NetworkGroupSetSchedulerThreshold(ctx context.Context, req *pb.SetSchedulerThresholdRequest) (*pb.StatusReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	err = group.SetSchedulerThreshold(req.GetThreshold())
	return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
}

// NetworkGroupSetSchedulerPriority updates the scheduler priority.
func (s *Service) NetworkGroupSetSchedulerPriority(ctx context.Context, req *pb.SetSchedulerPriorityRequest) (*pb.StatusReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
	}
	err = group.SetSchedulerPriority(uint8(req.GetPriority()))
	return &pb.StatusReply{Status: uint32(status.CodeOf(err))}, nil
}

// NetworkGroupGetLatencyMeasurement reads the hardware latency meters.
func (s *Service) NetworkGroupGetLatencyMeasurement(ctx context.Context, req *pb.GetLatencyMeasurementRequest) (*pb.GetLatencyMeasurementReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.GetLatencyMeasurementReply{Status: uint32(status.CodeOf(err))}, nil
	}
	latency, err := group.GetLatencyMeasurement(req.GetNetworkName())
	if err != nil {
		return &pb.GetLatencyMeasurementReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.GetLatencyMeasurementReply{
		Status:         uint32(status.Success),
		AvgHwLatencyNs: uint64(latency.Nanoseconds()),
	}, nil
}

// NetworkGroupIsMultiContext reports whether the compiled network spans
// multiple hardware contexts.
func (s *Service) NetworkGroupIsMultiContext(ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.BoolReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.BoolReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.BoolReply{Status: uint32(status.Success), Value: group.IsMultiContext()}, nil
}

// NetworkGroupGetConfigParams returns the configuration the group was
// built with.
func (s *Service) NetworkGroupGetConfigParams(ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.GetConfigParamsReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.GetConfigParamsReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.GetConfigParamsReply{
		Status: uint32(status.Success),
		Params: configureParamsToProto(group.ConfigParams()),
	}, nil
}

// NetworkGroupGetSortedOutputNames returns output names in compiled
// order.
func (s *Service) NetworkGroupGetSortedOutputNames(ctx context.Context, req *pb.NetworkGroupIdentifierRequest) (*pb.NamesReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NamesReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NamesReply{
		Status: uint32(status.Success),
		Names:  group.Metadata().SortedOutputNames,
	}, nil
}

// NetworkGroupGetStreamNamesFromVstreamName resolves the hardware streams
// feeding one vstream.
func (s *Service) NetworkGroupGetStreamNamesFromVstreamName(ctx context.Context, req *pb.GetStreamNamesFromVstreamNameRequest) (*pb.NamesReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NamesReply{Status: uint32(status.CodeOf(err))}, nil
	}
	names, err := group.Metadata().StreamNamesFromVStreamName(req.GetVstreamName())
	if err != nil {
		return &pb.NamesReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NamesReply{Status: uint32(status.Success), Names: names}, nil
}

// NetworkGroupGetVstreamNamesFromStreamName resolves the vstreams fed by
// one hardware stream.
func (s *Service) NetworkGroupGetVstreamNamesFromStreamName(ctx context.Context, req *pb.GetVstreamNamesFromStreamNameRequest) (*pb.NamesReply, error) {
	group, err := s.group(req.GetIdentifier())
	if err != nil {
		return &pb.NamesReply{Status: uint32(status.CodeOf(err))}, nil
	}
	names, err := group.Metadata().VStreamNamesFromStreamName(req.GetStreamName())
	if err != nil {
		return &pb.NamesReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.NamesReply{Status: uint32(status.Success), Names: names}, nil
}

// outputVStreamGroups groups output vstream names by the hardware stream
// feeding them, in sorted stream order.
func outputVStreamGroups(m *hef.Metadata) [][]string {
	streams := make([]string, 0, len(m.StreamToVStreams))
	for name := range m.StreamToVStreams {
		streams = append(streams, name)
	}
	sort.Strings(streams)

	var groups [][]string
	for _, streamName := range streams {
		layer, err := m.LayerByStreamName(streamName)
		if err != nil || layer.Direction != device.DeviceToHost {
			continue
		}
		groups = append(groups, m.StreamToVStreams[streamName])
	}
	return groups
}
