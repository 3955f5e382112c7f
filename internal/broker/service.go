package broker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/infrastructure/monitoring"
	"github.com/wenjunnutter/hailort/internal/status"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// Config tunes the broker service.
type Config struct {
	// LivenessTimeout is how long a client may go without a keep-alive
	// before its resources are reclaimed.
	LivenessTimeout time.Duration
	// SweepInterval is how often the liveness sweeper runs.
	SweepInterval time.Duration
}

// DefaultConfig returns the standard broker tuning.
func DefaultConfig() Config {
	return Config{
		LivenessTimeout: 5 * time.Second,
		SweepInterval:   time.Second,
	}
}

// Service is the broker: it owns every registry and serializes access
// with a single mutex. The mutex is never held across blocking hardware
// or transport work; teardown closures collected under the lock run
// after it is dropped.
type Service struct {
	pb.UnimplementedBrokerServiceServer

	cfg     Config
	log     *zap.Logger
	metrics *monitoring.Metrics

	mu      sync.Mutex
	devices *Registry[*VDevice]
	groups  *Registry[*coreop.CoreOp]
	inputs  *Registry[*coreop.InputVStream]
	outputs *Registry[*coreop.OutputVStream]
	clients map[uint32]time.Time

	stop chan struct{}
	done chan struct{}
}

// NewService creates a broker service. metrics may be nil.
func NewService(cfg Config, metrics *monitoring.Metrics, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.LivenessTimeout <= 0 {
		cfg.LivenessTimeout = DefaultConfig().LivenessTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultConfig().SweepInterval
	}
	return &Service{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		devices: NewRegistry[*VDevice](),
		groups:  NewRegistry[*coreop.CoreOp](),
		inputs:  NewRegistry[*coreop.InputVStream](),
		outputs: NewRegistry[*coreop.OutputVStream](),
		clients: make(map[uint32]time.Time),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the liveness sweeper.
func (s *Service) Start() {
	go s.runSweeper()
}

// Stop halts the sweeper and waits for it to exit.
func (s *Service) Stop() {
	close(s.stop)
	<-s.done
}

// touch records a liveness signal from pid. Caller holds the lock.
func (s *Service) touch(pid uint32) {
	s.clients[pid] = time.Now()
}

// updateGauges refreshes the handle and client gauges. Caller holds the
// lock.
func (s *Service) updateGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetClientsActive(len(s.clients))
	s.metrics.SetHandlesActive("devices", s.devices.Len())
	s.metrics.SetHandlesActive("network_groups", s.groups.Len())
	s.metrics.SetHandlesActive("input_vstreams", s.inputs.Len())
	s.metrics.SetHandlesActive("output_vstreams", s.outputs.Len())
}

func (s *Service) runSweeper() {
	defer close(s.done)
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

// sweep reclaims resources of clients whose keep-alive expired. Vstreams
// exclusively owned by dead clients are aborted before any handle is
// released, so writers blocked inside the broker unblock instead of
// pinning resources.
func (s *Service) sweep(now time.Time) {
	s.mu.Lock()

	dead := make(map[uint32]struct{})
	for pid, last := range s.clients {
		if now.Sub(last) > s.cfg.LivenessTimeout {
			dead[pid] = struct{}{}
		}
	}
	if len(dead) == 0 {
		s.mu.Unlock()
		return
	}

	var aborts []func()
	for _, handle := range s.inputs.ExclusivelyOwnedBy(dead) {
		if v, err := s.inputs.Get(handle); err == nil {
			aborts = append(aborts, func() { _ = v.Abort() })
		}
	}
	for _, handle := range s.outputs.ExclusivelyOwnedBy(dead) {
		if v, err := s.outputs.Get(handle); err == nil {
			aborts = append(aborts, func() { _ = v.Abort() })
		}
	}

	var teardowns []func()
	for pid := range dead {
		teardowns = append(teardowns, s.releaseAllLocked(pid)...)
		delete(s.clients, pid)
		s.log.Warn("reclaimed dead client", zap.Uint32("pid", pid))
		if s.metrics != nil {
			s.metrics.IncClientsReclaimed()
		}
	}
	s.updateGauges()
	s.mu.Unlock()

	for _, abort := range aborts {
		abort()
	}
	for _, teardown := range teardowns {
		teardown()
	}
}

// releaseAllLocked drops every handle pid owns and returns the due
// teardowns. Caller holds the lock.
func (s *Service) releaseAllLocked(pid uint32) []func() {
	var teardowns []func()
	for _, handle := range s.inputs.OwnedBy(pid) {
		if v, last, err := s.inputs.Release(handle, pid); err == nil && last {
			vstream := v
			teardowns = append(teardowns, func() { _ = vstream.Abort() })
		}
	}
	for _, handle := range s.outputs.OwnedBy(pid) {
		if v, last, err := s.outputs.Release(handle, pid); err == nil && last {
			vstream := v
			teardowns = append(teardowns, func() { _ = vstream.Abort() })
		}
	}
	for _, handle := range s.groups.OwnedBy(pid) {
		if c, last, err := s.groups.Release(handle, pid); err == nil && last {
			group := c
			teardowns = append(teardowns, func() { _ = group.Close() })
		}
	}
	for _, handle := range s.devices.OwnedBy(pid) {
		_, _, _ = s.devices.Release(handle, pid)
	}
	return teardowns
}

// Stats is a point-in-time snapshot of broker occupancy.
type Stats struct {
	Clients        int `json:"clients"`
	Devices        int `json:"devices"`
	NetworkGroups  int `json:"network_groups"`
	InputVStreams  int `json:"input_vstreams"`
	OutputVStreams int `json:"output_vstreams"`
}

// Snapshot reports current broker occupancy.
func (s *Service) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Clients:        len(s.clients),
		Devices:        s.devices.Len(),
		NetworkGroups:  s.groups.Len(),
		InputVStreams:  s.inputs.Len(),
		OutputVStreams: s.outputs.Len(),
	}
}

// ClientKeepAlive refreshes the caller's liveness window.
func (s *Service) ClientKeepAlive(ctx context.Context, req *pb.KeepAliveRequest) (*pb.KeepAliveReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	s.updateGauges()
	s.mu.Unlock()
	return &pb.KeepAliveReply{Status: uint32(status.Success)}, nil
}

// GetServiceVersion reports the broker version.
func (s *Service) GetServiceVersion(ctx context.Context, req *pb.GetServiceVersionRequest) (*pb.GetServiceVersionReply, error) {
	return &pb.GetServiceVersionReply{
		Status: uint32(status.Success),
		Version: &pb.ServiceVersion{
			Major:    VersionMajor,
			Minor:    VersionMinor,
			Revision: VersionRevision,
		},
	}, nil
}

// DeviceCreate claims a virtual device for the caller.
func (s *Service) DeviceCreate(ctx context.Context, req *pb.DeviceCreateRequest) (*pb.DeviceCreateReply, error) {
	vdev, err := NewVDevice(deviceParamsFromProto(req.GetParams()))
	if err != nil {
		return &pb.DeviceCreateReply{Status: uint32(status.CodeOf(err))}, nil
	}

	s.mu.Lock()
	s.touch(req.GetPid())
	handle := s.devices.Insert(vdev, req.GetPid())
	s.updateGauges()
	s.mu.Unlock()

	s.log.Info("device created",
		zap.Uint32("handle", handle),
		zap.Uint32("pid", req.GetPid()),
		zap.Strings("physical_ids", vdev.PhysicalDeviceIDs()))
	return &pb.DeviceCreateReply{Status: uint32(status.Success), Handle: handle}, nil
}

// DeviceRelease drops the caller's ownership of a device handle.
func (s *Service) DeviceRelease(ctx context.Context, req *pb.DeviceReleaseRequest) (*pb.ReleaseReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	_, last, err := s.devices.Release(req.GetIdentifier().GetHandle(), req.GetPid())
	s.updateGauges()
	s.mu.Unlock()

	if err != nil {
		return &pb.ReleaseReply{Status: uint32(status.CodeOf(err))}, nil
	}
	if last {
		s.log.Info("device released", zap.Uint32("handle", req.GetIdentifier().GetHandle()))
	}
	return &pb.ReleaseReply{Status: uint32(status.Success)}, nil
}

// DeviceConfigure programs a compiled network onto the device and returns
// one network-group handle per core-op.
func (s *Service) DeviceConfigure(ctx context.Context, req *pb.DeviceConfigureRequest) (*pb.DeviceConfigureReply, error) {
	s.mu.Lock()
	s.touch(req.GetPid())
	vdev, err := s.devices.Get(req.GetIdentifier().GetHandle())
	s.mu.Unlock()
	if err != nil {
		return &pb.DeviceConfigureReply{Status: uint32(status.CodeOf(err))}, nil
	}

	parsed, err := hef.Parse(req.GetHef())
	if err != nil {
		return &pb.DeviceConfigureReply{Status: uint32(status.CodeOf(err))}, nil
	}

	byName := make(map[string]*pb.ConfigureParams, len(req.GetConfigureParams()))
	for _, named := range req.GetConfigureParams() {
		byName[named.GetName()] = named.GetParams()
	}

	// Stream construction allocates DMA rings and opens channels; keep it
	// outside the critical section.
	var groups []*coreop.CoreOp
	for _, metadata := range parsed.CoreOps() {
		var params coreop.ConfigureParams
		if p, ok := byName[metadata.CoreOpName]; ok {
			params = configureParamsFromProto(p)
		} else {
			params = coreop.DefaultConfigureParams(metadata, vdev.Primary())
		}
		group, err := coreop.New(metadata, params, vdev.Holder(), vdev.Primary(), s.log)
		if err != nil {
			for _, built := range groups {
				_ = built.Close()
			}
			return &pb.DeviceConfigureReply{Status: uint32(status.CodeOf(err))}, nil
		}
		if s.metrics != nil {
			group.SetObserver(s.metrics)
		}
		groups = append(groups, group)
	}

	s.mu.Lock()
	handles := make([]uint32, len(groups))
	for i, group := range groups {
		handles[i] = s.groups.Insert(group, req.GetPid())
		vdev.AddGroupHandle(handles[i])
	}
	s.updateGauges()
	s.mu.Unlock()

	s.log.Info("device configured",
		zap.Uint32("device_handle", req.GetIdentifier().GetHandle()),
		zap.Int("network_groups", len(handles)))
	return &pb.DeviceConfigureReply{
		Status:              uint32(status.Success),
		NetworkGroupHandles: handles,
	}, nil
}

// DeviceGetPhysicalDevicesIds lists the physical devices behind a handle.
func (s *Service) DeviceGetPhysicalDevicesIds(ctx context.Context, req *pb.DeviceGetPhysicalDevicesIdsRequest) (*pb.DeviceGetPhysicalDevicesIdsReply, error) {
	s.mu.Lock()
	vdev, err := s.devices.Get(req.GetIdentifier().GetHandle())
	s.mu.Unlock()
	if err != nil {
		return &pb.DeviceGetPhysicalDevicesIdsReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.DeviceGetPhysicalDevicesIdsReply{
		Status:    uint32(status.Success),
		DeviceIds: vdev.PhysicalDeviceIDs(),
	}, nil
}

// DeviceGetDefaultStreamsInterface reports the transport new streams use.
func (s *Service) DeviceGetDefaultStreamsInterface(ctx context.Context, req *pb.DeviceGetDefaultStreamsInterfaceRequest) (*pb.StreamInterfaceReply, error) {
	s.mu.Lock()
	vdev, err := s.devices.Get(req.GetIdentifier().GetHandle())
	s.mu.Unlock()
	if err != nil {
		return &pb.StreamInterfaceReply{Status: uint32(status.CodeOf(err))}, nil
	}
	return &pb.StreamInterfaceReply{
		Status:          uint32(status.Success),
		StreamInterface: uint32(vdev.DefaultTransport()),
	}, nil
}

// group resolves a network-group identifier.
func (s *Service) group(identifier *pb.NetworkGroupIdentifier) (*coreop.CoreOp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups.Get(identifier.GetHandle())
}

// inputVStream resolves an input-vstream identifier.
func (s *Service) inputVStream(identifier *pb.VStreamIdentifier) (*coreop.InputVStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs.Get(identifier.GetHandle())
}

// outputVStream resolves an output-vstream identifier.
func (s *Service) outputVStream(identifier *pb.VStreamIdentifier) (*coreop.OutputVStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputs.Get(identifier.GetHandle())
}
