package device

// FormatType is the element type of a stream's user-facing buffer.
type FormatType uint32

const (
	FormatTypeAuto FormatType = iota
	FormatTypeUint8
	FormatTypeUint16
	FormatTypeFloat32
)

// String returns the format type name.
func (t FormatType) String() string {
	switch t {
	case FormatTypeAuto:
		return "auto"
	case FormatTypeUint8:
		return "uint8"
	case FormatTypeUint16:
		return "uint16"
	case FormatTypeFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// FormatOrder is the native layout of a stream's frames.
type FormatOrder uint32

const (
	FormatOrderNHWC FormatOrder = iota
	FormatOrderNCHW
	// FormatOrderDetections marks a detection-list (NMS) output whose
	// native form is a burst of detections rather than a dense tensor.
	// Streams with this order are wrapped by the decoding adapter.
	FormatOrderDetections
)

// String returns the format order name.
func (o FormatOrder) String() string {
	switch o {
	case FormatOrderNHWC:
		return "nhwc"
	case FormatOrderNCHW:
		return "nchw"
	case FormatOrderDetections:
		return "detections"
	default:
		return "unknown"
	}
}

// Format describes a stream's user buffer format.
type Format struct {
	Type  FormatType
	Order FormatOrder
}
