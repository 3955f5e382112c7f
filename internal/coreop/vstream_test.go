package coreop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wenjunnutter/hailort/internal/device"
	"github.com/wenjunnutter/hailort/internal/hef"
	"github.com/wenjunnutter/hailort/internal/status"
)

func vstreamTestParams() map[string]VStreamParams {
	p := DefaultVStreamParams()
	p.Timeout = time.Second
	return map[string]VStreamParams{"in_v": p, "out_v": p}
}

func TestCreateVStreamsRoundTrip(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))
	require.NoError(t, c.Activate(AutoBatchSize))
	defer c.Deactivate()

	inputs, err := CreateInputVStreams(c, map[string]VStreamParams{"in_v": DefaultVStreamParams()})
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	outputs, err := CreateOutputVStreams(c, map[string]VStreamParams{"out_v": DefaultVStreamParams()})
	require.NoError(t, err)
	require.Len(t, outputs, 1)

	in, out := inputs[0], outputs[0]
	assert.Equal(t, "in_v", in.Name())
	assert.Equal(t, "net0", in.NetworkName())
	assert.Equal(t, testFrameSize, in.FrameSize())
	assert.Equal(t, "out_v", out.Name())
	assert.Equal(t, testFrameSize, out.FrameSize())

	frame := make([]byte, testFrameSize)
	require.NoError(t, in.Write(frame))
	require.NoError(t, in.Flush())
	require.NoError(t, out.Read(frame))
}

func TestCreateVStreamsUnknownName(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	_, err := CreateInputVStreams(c, map[string]VStreamParams{"missing": DefaultVStreamParams()})
	assert.True(t, status.Is(err, status.NotFound))
	_, err = CreateOutputVStreams(c, map[string]VStreamParams{"missing": DefaultVStreamParams()})
	assert.True(t, status.Is(err, status.NotFound))
}

func TestCreateVStreamsDirectionMismatch(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	_, err := CreateInputVStreams(c, map[string]VStreamParams{"out_v": DefaultVStreamParams()})
	assert.True(t, status.Is(err, status.InvalidArgument))
	_, err = CreateOutputVStreams(c, map[string]VStreamParams{"in_v": DefaultVStreamParams()})
	assert.True(t, status.Is(err, status.InvalidArgument))
}

func TestWritePixMultiPlanar(t *testing.T) {
	metadata := testMetadata()
	metadata.Layers = append(metadata.Layers, hef.LayerInfo{
		Name:          "input_mp",
		NetworkName:   "net0",
		Direction:     device.HostToDevice,
		FrameSize:     testFrameSize,
		Format:        device.Format{Type: device.FormatTypeUint8, Order: device.FormatOrderNHWC},
		IsMultiPlanar: true,
		Planes: []hef.Plane{
			{Name: "plane_y", FrameSize: testFrameSize},
			{Name: "plane_uv", FrameSize: testFrameSize},
		},
	})
	metadata.VStreamToStreams["mp_v"] = []string{"plane_y", "plane_uv"}
	metadata.StreamToVStreams["plane_y"] = []string{"mp_v"}
	metadata.StreamToVStreams["plane_uv"] = []string{"mp_v"}

	params := testParams(metadata)
	params.StreamParamsByName["plane_y"] = StreamParams{Direction: device.HostToDevice, Transport: device.TransportDMA}
	params.StreamParamsByName["plane_uv"] = StreamParams{Direction: device.HostToDevice, Transport: device.TransportDMA}

	holder := NewHolder()
	c, err := New(metadata, params, holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	inputs, err := CreateInputVStreams(c, map[string]VStreamParams{"mp_v": DefaultVStreamParams()})
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	mp := inputs[0]

	// Contiguous writes are for single-planar inputs only.
	err = mp.Write(make([]byte, testFrameSize))
	assert.True(t, status.Is(err, status.InvalidOperation))

	err = mp.WritePix([][]byte{make([]byte, testFrameSize)})
	assert.True(t, status.Is(err, status.InvalidArgument))

	planes := [][]byte{make([]byte, testFrameSize), make([]byte, testFrameSize)}
	assert.NoError(t, mp.WritePix(planes))
}

func TestWritePixOnSinglePlanar(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	inputs, err := CreateInputVStreams(c, map[string]VStreamParams{"in_v": DefaultVStreamParams()})
	require.NoError(t, err)

	err = inputs[0].WritePix([][]byte{make([]byte, testFrameSize)})
	assert.True(t, status.Is(err, status.InvalidOperation))
}

func TestVStreamAbortResume(t *testing.T) {
	c, _ := newTestCoreOp(t, testParams(testMetadata()))

	inputs, err := CreateInputVStreams(c, map[string]VStreamParams{"in_v": DefaultVStreamParams()})
	require.NoError(t, err)
	in := inputs[0]

	require.NoError(t, in.StopAndClear())
	assert.True(t, in.IsAborted())
	err = in.Write(make([]byte, testFrameSize))
	assert.True(t, status.Is(err, status.AbortedByUser))

	require.NoError(t, in.StartVStream())
	assert.False(t, in.IsAborted())
	assert.NoError(t, in.Write(make([]byte, testFrameSize)))
}

func TestNmsSettersRequireDetectionOutput(t *testing.T) {
	metadata := testMetadata()
	metadata.Layers = append(metadata.Layers, hef.LayerInfo{
		Name:        "nms_out",
		NetworkName: "net0",
		Direction:   device.DeviceToHost,
		FrameSize:   testFrameSize,
		Format:      device.Format{Type: device.FormatTypeFloat32, Order: device.FormatOrderDetections},
	})
	metadata.VStreamToStreams["nms_v"] = []string{"nms_out"}
	metadata.StreamToVStreams["nms_out"] = []string{"nms_v"}

	params := testParams(metadata)
	params.StreamParamsByName["nms_out"] = StreamParams{Direction: device.DeviceToHost, Transport: device.TransportDMA}

	holder := NewHolder()
	c, err := New(metadata, params, holder, device.Emulated(), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	outputs, err := CreateOutputVStreams(c, map[string]VStreamParams{
		"nms_v": DefaultVStreamParams(),
		"out_v": DefaultVStreamParams(),
	})
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	byName := make(map[string]*OutputVStream)
	for _, out := range outputs {
		byName[out.Name()] = out
	}

	assert.NoError(t, byName["nms_v"].SetNmsScoreThreshold(0.5))
	assert.NoError(t, byName["nms_v"].SetNmsIouThreshold(0.4))
	assert.NoError(t, byName["nms_v"].SetNmsMaxProposalsPerClass(50))

	err = byName["out_v"].SetNmsScoreThreshold(0.5)
	assert.True(t, status.Is(err, status.InvalidOperation))
}
