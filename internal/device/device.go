// Package device models the accelerator device as seen by the runtime: a
// closed set of transport capabilities, the low-level transfer channels
// bound to them, and device enumeration.
//
// The bus/DMA-engine protocol itself is out of scope; it hides behind the
// Channel interface.
package device

import (
	"context"

	"github.com/google/uuid"

	"github.com/wenjunnutter/hailort/internal/dma"
	"github.com/wenjunnutter/hailort/internal/status"
)

// Direction tells which way a stream moves data.
type Direction int

const (
	// HostToDevice marks an input stream.
	HostToDevice Direction = iota
	// DeviceToHost marks an output stream.
	DeviceToHost
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case HostToDevice:
		return "host-to-device"
	case DeviceToHost:
		return "device-to-host"
	default:
		return "unknown"
	}
}

// Transport is one member of the closed set of stream transports. Each
// variant declares which operations it supports, replacing per-device-type
// downcasts with tagged dispatch.
type Transport int

const (
	// TransportDMA is the bus-mapped DMA transport.
	TransportDMA Transport = iota
	// TransportSocket is the network-socket transport.
	TransportSocket
	// TransportCamera is the camera-bus transport. Input only.
	TransportCamera
)

// String returns the transport name.
func (t Transport) String() string {
	switch t {
	case TransportDMA:
		return "dma"
	case TransportSocket:
		return "socket"
	case TransportCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// SupportsDirection reports whether streams of the given direction can be
// built on this transport.
func (t Transport) SupportsDirection(dir Direction) bool {
	switch t {
	case TransportDMA, TransportSocket:
		return true
	case TransportCamera:
		return dir == HostToDevice
	default:
		return false
	}
}

// Channel is one bound transfer engine endpoint. Transfer blocks until the
// engine completes the exchange or ctx is done.
type Channel interface {
	Transfer(ctx context.Context, p []byte) error
	Close() error
}

// ChannelOpener binds a transfer channel for one named stream.
type ChannelOpener func(streamName string, dir Direction, transport Transport) (Channel, error)

// Device is one logical accelerator device.
type Device struct {
	id               string
	transports       map[Transport]bool
	defaultTransport Transport
	driver           dma.Driver
	opener           ChannelOpener
}

// New creates a device with an explicit transport set and channel opener.
func New(id string, transports []Transport, defaultTransport Transport, driver dma.Driver, opener ChannelOpener) *Device {
	set := make(map[Transport]bool, len(transports))
	for _, t := range transports {
		set[t] = true
	}
	return &Device{
		id:               id,
		transports:       set,
		defaultTransport: defaultTransport,
		driver:           driver,
		opener:           opener,
	}
}

// Emulated creates a software device that completes every transfer in
// process. Used when no physical accelerator is present, and by tests.
func Emulated() *Device {
	return New(
		uuid.NewString(),
		[]Transport{TransportDMA, TransportSocket, TransportCamera},
		TransportDMA,
		nil,
		openLoopback,
	)
}

// ID returns the physical device identifier.
func (d *Device) ID() string { return d.id }

// Driver returns the platform driver handle, nil for emulated devices.
func (d *Device) Driver() dma.Driver { return d.driver }

// DefaultTransport returns the transport new streams use unless configured
// otherwise.
func (d *Device) DefaultTransport() Transport { return d.defaultTransport }

// SupportsTransport reports whether the device carries the transport.
func (d *Device) SupportsTransport(t Transport) bool { return d.transports[t] }

// OpenChannel binds a transfer channel for the named stream.
func (d *Device) OpenChannel(streamName string, dir Direction, transport Transport) (Channel, error) {
	if !d.transports[transport] {
		return nil, status.Errorf(status.InvalidOperation,
			"device %s does not support %s streams", d.id, transport)
	}
	if !transport.SupportsDirection(dir) {
		return nil, status.Errorf(status.NotImplemented,
			"%s transport does not support %s streams", transport, dir)
	}
	return d.opener(streamName, dir, transport)
}

// Scan enumerates devices. Real enumeration is a platform concern; the
// runtime falls back to emulated devices when none are found.
func Scan(count int) []*Device {
	if count <= 0 {
		count = 1
	}
	devices := make([]*Device, count)
	for i := range devices {
		devices[i] = Emulated()
	}
	return devices
}
