package broker

import (
	"time"

	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/stream"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// Statuses and enums travel as uint32 on the wire; these helpers are the
// single place the numeric representation is produced and consumed.

func formatFromProto(f *pb.Format) device.Format {
	if f == nil {
		return device.Format{}
	}
	return device.Format{
		Type:  device.FormatType(f.Type),
		Order: device.FormatOrder(f.Order),
	}
}

func formatToProto(f device.Format) *pb.Format {
	return &pb.Format{
		Type:  uint32(f.Type),
		Order: uint32(f.Order),
	}
}

func streamInfoToProto(info stream.Info) *pb.StreamInfo {
	return &pb.StreamInfo{
		Name:            info.Name,
		NetworkName:     info.NetworkName,
		Direction:       uint32(info.Direction),
		StreamInterface: uint32(info.Transport),
		FrameSize:       uint64(info.FrameSize),
		Format:          formatToProto(info.Format),
	}
}

func vstreamInfoToProto(info hef.VStreamInfo) *pb.VStreamInfo {
	return &pb.VStreamInfo{
		Name:        info.Name,
		NetworkName: info.NetworkName,
		Direction:   uint32(info.Direction),
		FrameSize:   uint64(info.FrameSize),
		Format:      formatToProto(info.Format),
	}
}

func configureParamsFromProto(p *pb.ConfigureParams) coreop.ConfigureParams {
	out := coreop.ConfigureParams{
		StreamParamsByName:   make(map[string]coreop.StreamParams),
		NetworkParamsByName:  make(map[string]coreop.NetworkParams),
		Scheduling:           coreop.SchedulingAlgorithm(p.GetSchedulingAlgorithm()),
		LatencyMeasurement:   p.GetLatencyMeasurement(),
		LatencyClearAfterGet: p.GetLatencyClearAfterGet(),
	}
	for name, sp := range p.GetStreamParams() {
		out.StreamParamsByName[name] = coreop.StreamParams{
			Direction: device.Direction(sp.GetDirection()),
			Transport: device.Transport(sp.GetStreamInterface()),
			Async:     sp.GetAsync(),
		}
	}
	for name, np := range p.GetNetworkParams() {
		out.NetworkParamsByName[name] = coreop.NetworkParams{
			BatchSize: uint16(np.GetBatchSize()),
		}
	}
	return out
}

func configureParamsToProto(p coreop.ConfigureParams) *pb.ConfigureParams {
	out := &pb.ConfigureParams{
		StreamParams:         make(map[string]*pb.StreamParams),
		NetworkParams:        make(map[string]*pb.NetworkParams),
		SchedulingAlgorithm:  uint32(p.Scheduling),
		LatencyMeasurement:   p.LatencyMeasurement,
		LatencyClearAfterGet: p.LatencyClearAfterGet,
	}
	for name, sp := range p.StreamParamsByName {
		out.StreamParams[name] = &pb.StreamParams{
			Direction:       uint32(sp.Direction),
			StreamInterface: uint32(sp.Transport),
			Async:           sp.Async,
		}
	}
	for name, np := range p.NetworkParamsByName {
		out.NetworkParams[name] = &pb.NetworkParams{
			BatchSize: uint32(np.BatchSize),
		}
	}
	return out
}

func vstreamParamsFromProto(params map[string]*pb.VStreamParams) map[string]coreop.VStreamParams {
	out := make(map[string]coreop.VStreamParams, len(params))
	for name, p := range params {
		vp := coreop.DefaultVStreamParams()
		if p != nil {
			vp.FormatType = device.FormatType(p.FormatType)
			if p.TimeoutMs > 0 {
				vp.Timeout = time.Duration(p.TimeoutMs) * time.Millisecond
			}
			if p.QueueSize > 0 {
				vp.QueueSize = p.QueueSize
			}
		}
		out[name] = vp
	}
	return out
}

func vstreamParamsToProto(p coreop.VStreamParams) *pb.VStreamParams {
	return &pb.VStreamParams{
		FormatType: uint32(p.FormatType),
		TimeoutMs:  uint32(p.Timeout / time.Millisecond),
		QueueSize:  p.QueueSize,
	}
}

func deviceParamsFromProto(p *pb.DeviceParams) DeviceParams {
	return DeviceParams{
		DeviceCount: p.GetDeviceCount(),
		DeviceIDs:   p.GetDeviceIds(),
		Scheduling:  coreop.SchedulingAlgorithm(p.GetSchedulingAlgorithm()),
		GroupID:     p.GetGroupId(),
	}
}
