// Package hef holds the parsed description of a compiled network: layer
// metadata, network lists, and the name mappings the runtime needs to build
// stream topologies.
//
// The compiled-network container format itself is a black box; Parse is the
// only boundary to it.
package hef

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/status"
)

// Plane is one plane of a multi-planar layer.
type Plane struct {
	Name      string `json:"name"`
	FrameSize int    `json:"frame_size"`
}

// LayerInfo describes one hardware boundary layer (one stream).
type LayerInfo struct {
	Name          string           `json:"name"`
	NetworkName   string           `json:"network_name"`
	Direction     device.Direction `json:"direction"`
	FrameSize     int              `json:"frame_size"`
	Format        device.Format    `json:"format"`
	IsMultiPlanar bool             `json:"is_multi_planar,omitempty"`
	Planes        []Plane          `json:"planes,omitempty"`
}

// NetworkInfo names one network inside a core-op.
type NetworkInfo struct {
	Name string `json:"name"`
}

// Metadata is the compiled description of one core-op.
type Metadata struct {
	CoreOpName        string              `json:"core_op_name"`
	Networks          []NetworkInfo       `json:"networks"`
	Layers            []LayerInfo         `json:"layers"`
	SortedOutputNames []string            `json:"sorted_output_names"`
	MultiContext      bool                `json:"multi_context"`
	VStreamToStreams  map[string][]string `json:"vstream_to_streams"`
	StreamToVStreams  map[string][]string `json:"stream_to_vstreams"`
}

// InputLayerInfos returns the host-to-device layers.
func (m *Metadata) InputLayerInfos() []LayerInfo {
	return m.layersByDirection(device.HostToDevice)
}

// OutputLayerInfos returns the device-to-host layers.
func (m *Metadata) OutputLayerInfos() []LayerInfo {
	return m.layersByDirection(device.DeviceToHost)
}

func (m *Metadata) layersByDirection(dir device.Direction) []LayerInfo {
	var out []LayerInfo
	for _, layer := range m.Layers {
		if layer.Direction == dir {
			out = append(out, layer)
		}
	}
	return out
}

// LayerByStreamName finds the layer owning the stream, looking through
// multi-planar planes as well.
func (m *Metadata) LayerByStreamName(streamName string) (LayerInfo, error) {
	for _, layer := range m.Layers {
		if layer.IsMultiPlanar {
			for _, plane := range layer.Planes {
				if plane.Name == streamName {
					return layer, nil
				}
			}
		}
		if layer.Name == streamName {
			return layer, nil
		}
	}
	return LayerInfo{}, status.Errorf(status.NotFound, "layer %s not found", streamName)
}

// IsNms reports whether any output layer is in detection-list form.
func (m *Metadata) IsNms() bool {
	for _, layer := range m.OutputLayerInfos() {
		if layer.Format.Order == device.FormatOrderDetections {
			return true
		}
	}
	return false
}

// StreamNamesFromVStreamName resolves the hardware streams feeding one
// vstream.
func (m *Metadata) StreamNamesFromVStreamName(vstreamName string) ([]string, error) {
	names, ok := m.VStreamToStreams[vstreamName]
	if !ok {
		return nil, status.Errorf(status.NotFound, "vstream %s not found", vstreamName)
	}
	return names, nil
}

// VStreamNamesFromStreamName resolves the vstreams fed by one hardware
// stream.
func (m *Metadata) VStreamNamesFromStreamName(streamName string) ([]string, error) {
	names, ok := m.StreamToVStreams[streamName]
	if !ok {
		return nil, status.Errorf(status.NotFound, "stream %s not found", streamName)
	}
	return names, nil
}

// VStreamInfo describes one user-facing channel derived from the layer
// metadata.
type VStreamInfo struct {
	Name        string
	NetworkName string
	Direction   device.Direction
	FrameSize   int
	Format      device.Format
}

// VStreamInfos lists the vstreams of the given direction, optionally
// filtered by network name. Results are sorted by vstream name.
func (m *Metadata) VStreamInfos(dir device.Direction, networkName string) []VStreamInfo {
	names := make([]string, 0, len(m.VStreamToStreams))
	for name := range m.VStreamToStreams {
		names = append(names, name)
	}
	sort.Strings(names)

	var infos []VStreamInfo
	for _, name := range names {
		streams := m.VStreamToStreams[name]
		if len(streams) == 0 {
			continue
		}
		layer, err := m.LayerByStreamName(streams[0])
		if err != nil {
			continue
		}
		if layer.Direction != dir {
			continue
		}
		if networkName != "" && layer.NetworkName != networkName {
			continue
		}
		infos = append(infos, VStreamInfo{
			Name:        name,
			NetworkName: layer.NetworkName,
			Direction:   layer.Direction,
			FrameSize:   layer.FrameSize,
			Format:      layer.Format,
		})
	}
	return infos
}

// Hef is one parsed compiled-network file.
type Hef struct {
	coreOps []*Metadata
}

// FromMetadata builds a Hef from already-parsed core-op descriptions.
func FromMetadata(coreOps ...*Metadata) *Hef {
	return &Hef{coreOps: coreOps}
}

// Parse decodes a compiled-network container.
func Parse(data []byte) (*Hef, error) {
	var manifest struct {
		CoreOps []*Metadata `json:"core_ops"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid compiled network: %w", err)
	}
	if len(manifest.CoreOps) == 0 {
		return nil, status.New(status.InvalidArgument, "compiled network contains no core-ops")
	}
	return &Hef{coreOps: manifest.CoreOps}, nil
}

// Serialize encodes the Hef back into its container form, used to move
// compiled networks across the process boundary.
func (h *Hef) Serialize() ([]byte, error) {
	return json.Marshal(struct {
		CoreOps []*Metadata `json:"core_ops"`
	}{CoreOps: h.coreOps})
}

// CoreOps returns the core-op descriptions in file order.
func (h *Hef) CoreOps() []*Metadata {
	return h.coreOps
}
