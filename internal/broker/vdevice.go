package broker

import (
	"github.com/wenjunnutter/hailort/internal/coreop"
	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
)

// DeviceParams selects the physical devices behind one virtual device.
type DeviceParams struct {
	DeviceCount uint32
	DeviceIDs   []string
	Scheduling  coreop.SchedulingAlgorithm
	GroupID     string
}

// VDevice is one virtual device: a set of physical devices sharing a
// single Activated slot, plus the network groups configured on it.
type VDevice struct {
	devices []*device.Device
	holder  *coreop.Holder
	params  DeviceParams

	groupHandles []uint32
}

// scanDevices is swapped by tests to supply synthetic hardware.
var scanDevices = device.Scan

// NewVDevice enumerates and claims the requested physical devices.
func NewVDevice(params DeviceParams) (*VDevice, error) {
	count := int(params.DeviceCount)
	if count == 0 && len(params.DeviceIDs) > 0 {
		count = len(params.DeviceIDs)
	}
	devices := scanDevices(count)
	if len(devices) == 0 {
		return nil, status.New(status.NotFound, "no devices found")
	}
	return &VDevice{
		devices: devices,
		holder:  coreop.NewHolder(),
		params:  params,
	}, nil
}

// PhysicalDeviceIDs lists the identifiers of the claimed devices.
func (v *VDevice) PhysicalDeviceIDs() []string {
	ids := make([]string, len(v.devices))
	for i, d := range v.devices {
		ids[i] = d.ID()
	}
	return ids
}

// Primary returns the device network groups are configured on.
func (v *VDevice) Primary() *device.Device { return v.devices[0] }

// Holder returns the device-wide Activated slot.
func (v *VDevice) Holder() *coreop.Holder { return v.holder }

// Params returns the creation parameters.
func (v *VDevice) Params() DeviceParams { return v.params }

// DefaultTransport returns the transport new streams default to.
func (v *VDevice) DefaultTransport() device.Transport {
	return v.devices[0].DefaultTransport()
}

// AddGroupHandle records a network group configured on this device.
func (v *VDevice) AddGroupHandle(handle uint32) {
	v.groupHandles = append(v.groupHandles, handle)
}

// GroupHandles lists the network groups configured on this device.
func (v *VDevice) GroupHandles() []uint32 {
	return v.groupHandles
}
