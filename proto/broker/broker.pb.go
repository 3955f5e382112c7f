// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: broker.proto

package broker

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DeviceIdentifier struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Handle        uint32                 `protobuf:"varint,1,opt,name=handle,proto3" json:"handle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceIdentifier) Reset() {
	*x = DeviceIdentifier{}
	mi := &file_broker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceIdentifier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceIdentifier) ProtoMessage() {}

func (x *DeviceIdentifier) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceIdentifier.ProtoReflect.Descriptor instead.
func (*DeviceIdentifier) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{0}
}

func (x *DeviceIdentifier) GetHandle() uint32 {
	if x != nil {
		return x.Handle
	}
	return 0
}

type NetworkGroupIdentifier struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceHandle  uint32                 `protobuf:"varint,1,opt,name=device_handle,json=deviceHandle,proto3" json:"device_handle,omitempty"`
	Handle        uint32                 `protobuf:"varint,2,opt,name=handle,proto3" json:"handle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupIdentifier) Reset() {
	*x = NetworkGroupIdentifier{}
	mi := &file_broker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupIdentifier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupIdentifier) ProtoMessage() {}

func (x *NetworkGroupIdentifier) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupIdentifier.ProtoReflect.Descriptor instead.
func (*NetworkGroupIdentifier) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{1}
}

func (x *NetworkGroupIdentifier) GetDeviceHandle() uint32 {
	if x != nil {
		return x.DeviceHandle
	}
	return 0
}

func (x *NetworkGroupIdentifier) GetHandle() uint32 {
	if x != nil {
		return x.Handle
	}
	return 0
}

type VStreamIdentifier struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	NetworkGroupHandle uint32                 `protobuf:"varint,1,opt,name=network_group_handle,json=networkGroupHandle,proto3" json:"network_group_handle,omitempty"`
	Handle             uint32                 `protobuf:"varint,2,opt,name=handle,proto3" json:"handle,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *VStreamIdentifier) Reset() {
	*x = VStreamIdentifier{}
	mi := &file_broker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamIdentifier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamIdentifier) ProtoMessage() {}

func (x *VStreamIdentifier) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamIdentifier.ProtoReflect.Descriptor instead.
func (*VStreamIdentifier) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{2}
}

func (x *VStreamIdentifier) GetNetworkGroupHandle() uint32 {
	if x != nil {
		return x.NetworkGroupHandle
	}
	return 0
}

func (x *VStreamIdentifier) GetHandle() uint32 {
	if x != nil {
		return x.Handle
	}
	return 0
}

type StatusReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusReply) Reset() {
	*x = StatusReply{}
	mi := &file_broker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusReply) ProtoMessage() {}

func (x *StatusReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusReply.ProtoReflect.Descriptor instead.
func (*StatusReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{3}
}

func (x *StatusReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

type ReleaseReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseReply) Reset() {
	*x = ReleaseReply{}
	mi := &file_broker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseReply) ProtoMessage() {}

func (x *ReleaseReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseReply.ProtoReflect.Descriptor instead.
func (*ReleaseReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{4}
}

func (x *ReleaseReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

type DupHandleReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Handle        uint32                 `protobuf:"varint,2,opt,name=handle,proto3" json:"handle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DupHandleReply) Reset() {
	*x = DupHandleReply{}
	mi := &file_broker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DupHandleReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DupHandleReply) ProtoMessage() {}

func (x *DupHandleReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DupHandleReply.ProtoReflect.Descriptor instead.
func (*DupHandleReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{5}
}

func (x *DupHandleReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *DupHandleReply) GetHandle() uint32 {
	if x != nil {
		return x.Handle
	}
	return 0
}

type BoolReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Value         bool                   `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoolReply) Reset() {
	*x = BoolReply{}
	mi := &file_broker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoolReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoolReply) ProtoMessage() {}

func (x *BoolReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoolReply.ProtoReflect.Descriptor instead.
func (*BoolReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{6}
}

func (x *BoolReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *BoolReply) GetValue() bool {
	if x != nil {
		return x.Value
	}
	return false
}

type NameReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NameReply) Reset() {
	*x = NameReply{}
	mi := &file_broker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NameReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NameReply) ProtoMessage() {}

func (x *NameReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NameReply.ProtoReflect.Descriptor instead.
func (*NameReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{7}
}

func (x *NameReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *NameReply) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type NamesReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Names         []string               `protobuf:"bytes,2,rep,name=names,proto3" json:"names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NamesReply) Reset() {
	*x = NamesReply{}
	mi := &file_broker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NamesReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NamesReply) ProtoMessage() {}

func (x *NamesReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NamesReply.ProtoReflect.Descriptor instead.
func (*NamesReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{8}
}

func (x *NamesReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *NamesReply) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

type FrameSizeReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	FrameSize     uint64                 `protobuf:"varint,2,opt,name=frame_size,json=frameSize,proto3" json:"frame_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FrameSizeReply) Reset() {
	*x = FrameSizeReply{}
	mi := &file_broker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FrameSizeReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FrameSizeReply) ProtoMessage() {}

func (x *FrameSizeReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FrameSizeReply.ProtoReflect.Descriptor instead.
func (*FrameSizeReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{9}
}

func (x *FrameSizeReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *FrameSizeReply) GetFrameSize() uint64 {
	if x != nil {
		return x.FrameSize
	}
	return 0
}

type FormatReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Format        *Format                `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FormatReply) Reset() {
	*x = FormatReply{}
	mi := &file_broker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FormatReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FormatReply) ProtoMessage() {}

func (x *FormatReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FormatReply.ProtoReflect.Descriptor instead.
func (*FormatReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{10}
}

func (x *FormatReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *FormatReply) GetFormat() *Format {
	if x != nil {
		return x.Format
	}
	return nil
}

type StreamInterfaceReply struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Status          uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	StreamInterface uint32                 `protobuf:"varint,2,opt,name=stream_interface,json=streamInterface,proto3" json:"stream_interface,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *StreamInterfaceReply) Reset() {
	*x = StreamInterfaceReply{}
	mi := &file_broker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamInterfaceReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamInterfaceReply) ProtoMessage() {}

func (x *StreamInterfaceReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamInterfaceReply.ProtoReflect.Descriptor instead.
func (*StreamInterfaceReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{11}
}

func (x *StreamInterfaceReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *StreamInterfaceReply) GetStreamInterface() uint32 {
	if x != nil {
		return x.StreamInterface
	}
	return 0
}

type KeepAliveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pid           uint32                 `protobuf:"varint,1,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeepAliveRequest) Reset() {
	*x = KeepAliveRequest{}
	mi := &file_broker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeepAliveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeepAliveRequest) ProtoMessage() {}

func (x *KeepAliveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeepAliveRequest.ProtoReflect.Descriptor instead.
func (*KeepAliveRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{12}
}

func (x *KeepAliveRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type KeepAliveReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeepAliveReply) Reset() {
	*x = KeepAliveReply{}
	mi := &file_broker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeepAliveReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeepAliveReply) ProtoMessage() {}

func (x *KeepAliveReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeepAliveReply.ProtoReflect.Descriptor instead.
func (*KeepAliveReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{13}
}

func (x *KeepAliveReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

type GetServiceVersionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetServiceVersionRequest) Reset() {
	*x = GetServiceVersionRequest{}
	mi := &file_broker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetServiceVersionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetServiceVersionRequest) ProtoMessage() {}

func (x *GetServiceVersionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetServiceVersionRequest.ProtoReflect.Descriptor instead.
func (*GetServiceVersionRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{14}
}

type ServiceVersion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Major         uint32                 `protobuf:"varint,1,opt,name=major,proto3" json:"major,omitempty"`
	Minor         uint32                 `protobuf:"varint,2,opt,name=minor,proto3" json:"minor,omitempty"`
	Revision      uint32                 `protobuf:"varint,3,opt,name=revision,proto3" json:"revision,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServiceVersion) Reset() {
	*x = ServiceVersion{}
	mi := &file_broker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServiceVersion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServiceVersion) ProtoMessage() {}

func (x *ServiceVersion) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServiceVersion.ProtoReflect.Descriptor instead.
func (*ServiceVersion) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{15}
}

func (x *ServiceVersion) GetMajor() uint32 {
	if x != nil {
		return x.Major
	}
	return 0
}

func (x *ServiceVersion) GetMinor() uint32 {
	if x != nil {
		return x.Minor
	}
	return 0
}

func (x *ServiceVersion) GetRevision() uint32 {
	if x != nil {
		return x.Revision
	}
	return 0
}

type GetServiceVersionReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Version       *ServiceVersion        `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetServiceVersionReply) Reset() {
	*x = GetServiceVersionReply{}
	mi := &file_broker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetServiceVersionReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetServiceVersionReply) ProtoMessage() {}

func (x *GetServiceVersionReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetServiceVersionReply.ProtoReflect.Descriptor instead.
func (*GetServiceVersionReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{16}
}

func (x *GetServiceVersionReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *GetServiceVersionReply) GetVersion() *ServiceVersion {
	if x != nil {
		return x.Version
	}
	return nil
}

type Format struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          uint32                 `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Order         uint32                 `protobuf:"varint,2,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Format) Reset() {
	*x = Format{}
	mi := &file_broker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Format) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Format) ProtoMessage() {}

func (x *Format) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Format.ProtoReflect.Descriptor instead.
func (*Format) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{17}
}

func (x *Format) GetType() uint32 {
	if x != nil {
		return x.Type
	}
	return 0
}

func (x *Format) GetOrder() uint32 {
	if x != nil {
		return x.Order
	}
	return 0
}

type StreamInfo struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	NetworkName     string                 `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	Direction       uint32                 `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	StreamInterface uint32                 `protobuf:"varint,4,opt,name=stream_interface,json=streamInterface,proto3" json:"stream_interface,omitempty"`
	FrameSize       uint64                 `protobuf:"varint,5,opt,name=frame_size,json=frameSize,proto3" json:"frame_size,omitempty"`
	Format          *Format                `protobuf:"bytes,6,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *StreamInfo) Reset() {
	*x = StreamInfo{}
	mi := &file_broker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamInfo) ProtoMessage() {}

func (x *StreamInfo) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamInfo.ProtoReflect.Descriptor instead.
func (*StreamInfo) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{18}
}

func (x *StreamInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StreamInfo) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

func (x *StreamInfo) GetDirection() uint32 {
	if x != nil {
		return x.Direction
	}
	return 0
}

func (x *StreamInfo) GetStreamInterface() uint32 {
	if x != nil {
		return x.StreamInterface
	}
	return 0
}

func (x *StreamInfo) GetFrameSize() uint64 {
	if x != nil {
		return x.FrameSize
	}
	return 0
}

func (x *StreamInfo) GetFormat() *Format {
	if x != nil {
		return x.Format
	}
	return nil
}

type VStreamInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	NetworkName   string                 `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	Direction     uint32                 `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	FrameSize     uint64                 `protobuf:"varint,4,opt,name=frame_size,json=frameSize,proto3" json:"frame_size,omitempty"`
	Format        *Format                `protobuf:"bytes,5,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamInfo) Reset() {
	*x = VStreamInfo{}
	mi := &file_broker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamInfo) ProtoMessage() {}

func (x *VStreamInfo) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamInfo.ProtoReflect.Descriptor instead.
func (*VStreamInfo) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{19}
}

func (x *VStreamInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *VStreamInfo) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

func (x *VStreamInfo) GetDirection() uint32 {
	if x != nil {
		return x.Direction
	}
	return 0
}

func (x *VStreamInfo) GetFrameSize() uint64 {
	if x != nil {
		return x.FrameSize
	}
	return 0
}

func (x *VStreamInfo) GetFormat() *Format {
	if x != nil {
		return x.Format
	}
	return nil
}

type NetworkInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkInfo) Reset() {
	*x = NetworkInfo{}
	mi := &file_broker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkInfo) ProtoMessage() {}

func (x *NetworkInfo) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkInfo.ProtoReflect.Descriptor instead.
func (*NetworkInfo) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{20}
}

func (x *NetworkInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type StreamParams struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Direction       uint32                 `protobuf:"varint,1,opt,name=direction,proto3" json:"direction,omitempty"`
	StreamInterface uint32                 `protobuf:"varint,2,opt,name=stream_interface,json=streamInterface,proto3" json:"stream_interface,omitempty"`
	Async           bool                   `protobuf:"varint,3,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *StreamParams) Reset() {
	*x = StreamParams{}
	mi := &file_broker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamParams) ProtoMessage() {}

func (x *StreamParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamParams.ProtoReflect.Descriptor instead.
func (*StreamParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{21}
}

func (x *StreamParams) GetDirection() uint32 {
	if x != nil {
		return x.Direction
	}
	return 0
}

func (x *StreamParams) GetStreamInterface() uint32 {
	if x != nil {
		return x.StreamInterface
	}
	return 0
}

func (x *StreamParams) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type NetworkParams struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchSize     uint32                 `protobuf:"varint,1,opt,name=batch_size,json=batchSize,proto3" json:"batch_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkParams) Reset() {
	*x = NetworkParams{}
	mi := &file_broker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkParams) ProtoMessage() {}

func (x *NetworkParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkParams.ProtoReflect.Descriptor instead.
func (*NetworkParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{22}
}

func (x *NetworkParams) GetBatchSize() uint32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

type ConfigureParams struct {
	state                protoimpl.MessageState    `protogen:"open.v1"`
	StreamParams         map[string]*StreamParams  `protobuf:"bytes,1,rep,name=stream_params,json=streamParams,proto3" json:"stream_params,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	NetworkParams        map[string]*NetworkParams `protobuf:"bytes,2,rep,name=network_params,json=networkParams,proto3" json:"network_params,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	SchedulingAlgorithm  uint32                    `protobuf:"varint,3,opt,name=scheduling_algorithm,json=schedulingAlgorithm,proto3" json:"scheduling_algorithm,omitempty"`
	LatencyMeasurement   bool                      `protobuf:"varint,4,opt,name=latency_measurement,json=latencyMeasurement,proto3" json:"latency_measurement,omitempty"`
	LatencyClearAfterGet bool                      `protobuf:"varint,5,opt,name=latency_clear_after_get,json=latencyClearAfterGet,proto3" json:"latency_clear_after_get,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ConfigureParams) Reset() {
	*x = ConfigureParams{}
	mi := &file_broker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfigureParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfigureParams) ProtoMessage() {}

func (x *ConfigureParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfigureParams.ProtoReflect.Descriptor instead.
func (*ConfigureParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{23}
}

func (x *ConfigureParams) GetStreamParams() map[string]*StreamParams {
	if x != nil {
		return x.StreamParams
	}
	return nil
}

func (x *ConfigureParams) GetNetworkParams() map[string]*NetworkParams {
	if x != nil {
		return x.NetworkParams
	}
	return nil
}

func (x *ConfigureParams) GetSchedulingAlgorithm() uint32 {
	if x != nil {
		return x.SchedulingAlgorithm
	}
	return 0
}

func (x *ConfigureParams) GetLatencyMeasurement() bool {
	if x != nil {
		return x.LatencyMeasurement
	}
	return false
}

func (x *ConfigureParams) GetLatencyClearAfterGet() bool {
	if x != nil {
		return x.LatencyClearAfterGet
	}
	return false
}

type NamedConfigureParams struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Params        *ConfigureParams       `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NamedConfigureParams) Reset() {
	*x = NamedConfigureParams{}
	mi := &file_broker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NamedConfigureParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NamedConfigureParams) ProtoMessage() {}

func (x *NamedConfigureParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NamedConfigureParams.ProtoReflect.Descriptor instead.
func (*NamedConfigureParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{24}
}

func (x *NamedConfigureParams) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *NamedConfigureParams) GetParams() *ConfigureParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type VStreamParams struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormatType    uint32                 `protobuf:"varint,1,opt,name=format_type,json=formatType,proto3" json:"format_type,omitempty"`
	TimeoutMs     uint32                 `protobuf:"varint,2,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	QueueSize     uint32                 `protobuf:"varint,3,opt,name=queue_size,json=queueSize,proto3" json:"queue_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamParams) Reset() {
	*x = VStreamParams{}
	mi := &file_broker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamParams) ProtoMessage() {}

func (x *VStreamParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamParams.ProtoReflect.Descriptor instead.
func (*VStreamParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{25}
}

func (x *VStreamParams) GetFormatType() uint32 {
	if x != nil {
		return x.FormatType
	}
	return 0
}

func (x *VStreamParams) GetTimeoutMs() uint32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

func (x *VStreamParams) GetQueueSize() uint32 {
	if x != nil {
		return x.QueueSize
	}
	return 0
}

type DeviceParams struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	DeviceCount         uint32                 `protobuf:"varint,1,opt,name=device_count,json=deviceCount,proto3" json:"device_count,omitempty"`
	DeviceIds           []string               `protobuf:"bytes,2,rep,name=device_ids,json=deviceIds,proto3" json:"device_ids,omitempty"`
	SchedulingAlgorithm uint32                 `protobuf:"varint,3,opt,name=scheduling_algorithm,json=schedulingAlgorithm,proto3" json:"scheduling_algorithm,omitempty"`
	GroupId             string                 `protobuf:"bytes,4,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *DeviceParams) Reset() {
	*x = DeviceParams{}
	mi := &file_broker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceParams) ProtoMessage() {}

func (x *DeviceParams) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceParams.ProtoReflect.Descriptor instead.
func (*DeviceParams) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{26}
}

func (x *DeviceParams) GetDeviceCount() uint32 {
	if x != nil {
		return x.DeviceCount
	}
	return 0
}

func (x *DeviceParams) GetDeviceIds() []string {
	if x != nil {
		return x.DeviceIds
	}
	return nil
}

func (x *DeviceParams) GetSchedulingAlgorithm() uint32 {
	if x != nil {
		return x.SchedulingAlgorithm
	}
	return 0
}

func (x *DeviceParams) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type DeviceCreateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pid           uint32                 `protobuf:"varint,1,opt,name=pid,proto3" json:"pid,omitempty"`
	Params        *DeviceParams          `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceCreateRequest) Reset() {
	*x = DeviceCreateRequest{}
	mi := &file_broker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceCreateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceCreateRequest) ProtoMessage() {}

func (x *DeviceCreateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceCreateRequest.ProtoReflect.Descriptor instead.
func (*DeviceCreateRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{27}
}

func (x *DeviceCreateRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *DeviceCreateRequest) GetParams() *DeviceParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type DeviceCreateReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Handle        uint32                 `protobuf:"varint,2,opt,name=handle,proto3" json:"handle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceCreateReply) Reset() {
	*x = DeviceCreateReply{}
	mi := &file_broker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceCreateReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceCreateReply) ProtoMessage() {}

func (x *DeviceCreateReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceCreateReply.ProtoReflect.Descriptor instead.
func (*DeviceCreateReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{28}
}

func (x *DeviceCreateReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *DeviceCreateReply) GetHandle() uint32 {
	if x != nil {
		return x.Handle
	}
	return 0
}

type DeviceReleaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *DeviceIdentifier      `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                 `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceReleaseRequest) Reset() {
	*x = DeviceReleaseRequest{}
	mi := &file_broker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceReleaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceReleaseRequest) ProtoMessage() {}

func (x *DeviceReleaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceReleaseRequest.ProtoReflect.Descriptor instead.
func (*DeviceReleaseRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{29}
}

func (x *DeviceReleaseRequest) GetIdentifier() *DeviceIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *DeviceReleaseRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type DeviceConfigureRequest struct {
	state           protoimpl.MessageState  `protogen:"open.v1"`
	Identifier      *DeviceIdentifier       `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid             uint32                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	Hef             []byte                  `protobuf:"bytes,3,opt,name=hef,proto3" json:"hef,omitempty"`
	ConfigureParams []*NamedConfigureParams `protobuf:"bytes,4,rep,name=configure_params,json=configureParams,proto3" json:"configure_params,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DeviceConfigureRequest) Reset() {
	*x = DeviceConfigureRequest{}
	mi := &file_broker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceConfigureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceConfigureRequest) ProtoMessage() {}

func (x *DeviceConfigureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceConfigureRequest.ProtoReflect.Descriptor instead.
func (*DeviceConfigureRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{30}
}

func (x *DeviceConfigureRequest) GetIdentifier() *DeviceIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *DeviceConfigureRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *DeviceConfigureRequest) GetHef() []byte {
	if x != nil {
		return x.Hef
	}
	return nil
}

func (x *DeviceConfigureRequest) GetConfigureParams() []*NamedConfigureParams {
	if x != nil {
		return x.ConfigureParams
	}
	return nil
}

type DeviceConfigureReply struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Status              uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	NetworkGroupHandles []uint32               `protobuf:"varint,2,rep,packed,name=network_group_handles,json=networkGroupHandles,proto3" json:"network_group_handles,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *DeviceConfigureReply) Reset() {
	*x = DeviceConfigureReply{}
	mi := &file_broker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceConfigureReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceConfigureReply) ProtoMessage() {}

func (x *DeviceConfigureReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceConfigureReply.ProtoReflect.Descriptor instead.
func (*DeviceConfigureReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{31}
}

func (x *DeviceConfigureReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *DeviceConfigureReply) GetNetworkGroupHandles() []uint32 {
	if x != nil {
		return x.NetworkGroupHandles
	}
	return nil
}

type DeviceGetPhysicalDevicesIdsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *DeviceIdentifier      `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceGetPhysicalDevicesIdsRequest) Reset() {
	*x = DeviceGetPhysicalDevicesIdsRequest{}
	mi := &file_broker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceGetPhysicalDevicesIdsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceGetPhysicalDevicesIdsRequest) ProtoMessage() {}

func (x *DeviceGetPhysicalDevicesIdsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceGetPhysicalDevicesIdsRequest.ProtoReflect.Descriptor instead.
func (*DeviceGetPhysicalDevicesIdsRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{32}
}

func (x *DeviceGetPhysicalDevicesIdsRequest) GetIdentifier() *DeviceIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type DeviceGetPhysicalDevicesIdsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	DeviceIds     []string               `protobuf:"bytes,2,rep,name=device_ids,json=deviceIds,proto3" json:"device_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceGetPhysicalDevicesIdsReply) Reset() {
	*x = DeviceGetPhysicalDevicesIdsReply{}
	mi := &file_broker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceGetPhysicalDevicesIdsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceGetPhysicalDevicesIdsReply) ProtoMessage() {}

func (x *DeviceGetPhysicalDevicesIdsReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceGetPhysicalDevicesIdsReply.ProtoReflect.Descriptor instead.
func (*DeviceGetPhysicalDevicesIdsReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{33}
}

func (x *DeviceGetPhysicalDevicesIdsReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *DeviceGetPhysicalDevicesIdsReply) GetDeviceIds() []string {
	if x != nil {
		return x.DeviceIds
	}
	return nil
}

type DeviceGetDefaultStreamsInterfaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *DeviceIdentifier      `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceGetDefaultStreamsInterfaceRequest) Reset() {
	*x = DeviceGetDefaultStreamsInterfaceRequest{}
	mi := &file_broker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceGetDefaultStreamsInterfaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceGetDefaultStreamsInterfaceRequest) ProtoMessage() {}

func (x *DeviceGetDefaultStreamsInterfaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceGetDefaultStreamsInterfaceRequest.ProtoReflect.Descriptor instead.
func (*DeviceGetDefaultStreamsInterfaceRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{34}
}

func (x *DeviceGetDefaultStreamsInterfaceRequest) GetIdentifier() *DeviceIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type NetworkGroupIdentifierRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupIdentifierRequest) Reset() {
	*x = NetworkGroupIdentifierRequest{}
	mi := &file_broker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupIdentifierRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupIdentifierRequest) ProtoMessage() {}

func (x *NetworkGroupIdentifierRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupIdentifierRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupIdentifierRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{35}
}

func (x *NetworkGroupIdentifierRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type NetworkGroupDupHandleRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupDupHandleRequest) Reset() {
	*x = NetworkGroupDupHandleRequest{}
	mi := &file_broker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupDupHandleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupDupHandleRequest) ProtoMessage() {}

func (x *NetworkGroupDupHandleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupDupHandleRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupDupHandleRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{36}
}

func (x *NetworkGroupDupHandleRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *NetworkGroupDupHandleRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type NetworkGroupReleaseRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupReleaseRequest) Reset() {
	*x = NetworkGroupReleaseRequest{}
	mi := &file_broker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupReleaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupReleaseRequest) ProtoMessage() {}

func (x *NetworkGroupReleaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupReleaseRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupReleaseRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{37}
}

func (x *NetworkGroupReleaseRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *NetworkGroupReleaseRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type NetworkGroupNameRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupNameRequest) Reset() {
	*x = NetworkGroupNameRequest{}
	mi := &file_broker_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupNameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupNameRequest) ProtoMessage() {}

func (x *NetworkGroupNameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupNameRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupNameRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{38}
}

func (x *NetworkGroupNameRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type NetworkGroupNameReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupNameReply) Reset() {
	*x = NetworkGroupNameReply{}
	mi := &file_broker_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupNameReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupNameReply) ProtoMessage() {}

func (x *NetworkGroupNameReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupNameReply.ProtoReflect.Descriptor instead.
func (*NetworkGroupNameReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{39}
}

func (x *NetworkGroupNameReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *NetworkGroupNameReply) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type NetworkGroupGetNetworkInfosRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupGetNetworkInfosRequest) Reset() {
	*x = NetworkGroupGetNetworkInfosRequest{}
	mi := &file_broker_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupGetNetworkInfosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupGetNetworkInfosRequest) ProtoMessage() {}

func (x *NetworkGroupGetNetworkInfosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupGetNetworkInfosRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupGetNetworkInfosRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{40}
}

func (x *NetworkGroupGetNetworkInfosRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type NetworkGroupGetNetworkInfosReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Infos         []*NetworkInfo         `protobuf:"bytes,2,rep,name=infos,proto3" json:"infos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupGetNetworkInfosReply) Reset() {
	*x = NetworkGroupGetNetworkInfosReply{}
	mi := &file_broker_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupGetNetworkInfosReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupGetNetworkInfosReply) ProtoMessage() {}

func (x *NetworkGroupGetNetworkInfosReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupGetNetworkInfosReply.ProtoReflect.Descriptor instead.
func (*NetworkGroupGetNetworkInfosReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{41}
}

func (x *NetworkGroupGetNetworkInfosReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *NetworkGroupGetNetworkInfosReply) GetInfos() []*NetworkInfo {
	if x != nil {
		return x.Infos
	}
	return nil
}

type NetworkGroupGetAllStreamInfosRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	NetworkName   string                  `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupGetAllStreamInfosRequest) Reset() {
	*x = NetworkGroupGetAllStreamInfosRequest{}
	mi := &file_broker_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupGetAllStreamInfosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupGetAllStreamInfosRequest) ProtoMessage() {}

func (x *NetworkGroupGetAllStreamInfosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupGetAllStreamInfosRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupGetAllStreamInfosRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{42}
}

func (x *NetworkGroupGetAllStreamInfosRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *NetworkGroupGetAllStreamInfosRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type NetworkGroupGetAllStreamInfosReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Infos         []*StreamInfo          `protobuf:"bytes,2,rep,name=infos,proto3" json:"infos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupGetAllStreamInfosReply) Reset() {
	*x = NetworkGroupGetAllStreamInfosReply{}
	mi := &file_broker_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupGetAllStreamInfosReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupGetAllStreamInfosReply) ProtoMessage() {}

func (x *NetworkGroupGetAllStreamInfosReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupGetAllStreamInfosReply.ProtoReflect.Descriptor instead.
func (*NetworkGroupGetAllStreamInfosReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{43}
}

func (x *NetworkGroupGetAllStreamInfosReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *NetworkGroupGetAllStreamInfosReply) GetInfos() []*StreamInfo {
	if x != nil {
		return x.Infos
	}
	return nil
}

type NetworkGroupGetDefaultStreamInterfaceRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NetworkGroupGetDefaultStreamInterfaceRequest) Reset() {
	*x = NetworkGroupGetDefaultStreamInterfaceRequest{}
	mi := &file_broker_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NetworkGroupGetDefaultStreamInterfaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NetworkGroupGetDefaultStreamInterfaceRequest) ProtoMessage() {}

func (x *NetworkGroupGetDefaultStreamInterfaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NetworkGroupGetDefaultStreamInterfaceRequest.ProtoReflect.Descriptor instead.
func (*NetworkGroupGetDefaultStreamInterfaceRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{44}
}

func (x *NetworkGroupGetDefaultStreamInterfaceRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type MakeVStreamParamsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	NetworkName   string                  `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	FormatType    uint32                  `protobuf:"varint,3,opt,name=format_type,json=formatType,proto3" json:"format_type,omitempty"`
	TimeoutMs     uint32                  `protobuf:"varint,4,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	QueueSize     uint32                  `protobuf:"varint,5,opt,name=queue_size,json=queueSize,proto3" json:"queue_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MakeVStreamParamsRequest) Reset() {
	*x = MakeVStreamParamsRequest{}
	mi := &file_broker_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MakeVStreamParamsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MakeVStreamParamsRequest) ProtoMessage() {}

func (x *MakeVStreamParamsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MakeVStreamParamsRequest.ProtoReflect.Descriptor instead.
func (*MakeVStreamParamsRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{45}
}

func (x *MakeVStreamParamsRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *MakeVStreamParamsRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

func (x *MakeVStreamParamsRequest) GetFormatType() uint32 {
	if x != nil {
		return x.FormatType
	}
	return 0
}

func (x *MakeVStreamParamsRequest) GetTimeoutMs() uint32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

func (x *MakeVStreamParamsRequest) GetQueueSize() uint32 {
	if x != nil {
		return x.QueueSize
	}
	return 0
}

type VStreamParamsMap struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Params        map[string]*VStreamParams `protobuf:"bytes,1,rep,name=params,proto3" json:"params,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamParamsMap) Reset() {
	*x = VStreamParamsMap{}
	mi := &file_broker_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamParamsMap) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamParamsMap) ProtoMessage() {}

func (x *VStreamParamsMap) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamParamsMap.ProtoReflect.Descriptor instead.
func (*VStreamParamsMap) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{46}
}

func (x *VStreamParamsMap) GetParams() map[string]*VStreamParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type VStreamParamsMapReply struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Status        uint32                    `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Params        map[string]*VStreamParams `protobuf:"bytes,2,rep,name=params,proto3" json:"params,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamParamsMapReply) Reset() {
	*x = VStreamParamsMapReply{}
	mi := &file_broker_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamParamsMapReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamParamsMapReply) ProtoMessage() {}

func (x *VStreamParamsMapReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamParamsMapReply.ProtoReflect.Descriptor instead.
func (*VStreamParamsMapReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{47}
}

func (x *VStreamParamsMapReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *VStreamParamsMapReply) GetParams() map[string]*VStreamParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type VStreamParamsGroupsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Groups        []*VStreamParamsMap    `protobuf:"bytes,2,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamParamsGroupsReply) Reset() {
	*x = VStreamParamsGroupsReply{}
	mi := &file_broker_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamParamsGroupsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamParamsGroupsReply) ProtoMessage() {}

func (x *VStreamParamsGroupsReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamParamsGroupsReply.ProtoReflect.Descriptor instead.
func (*VStreamParamsGroupsReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{48}
}

func (x *VStreamParamsGroupsReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *VStreamParamsGroupsReply) GetGroups() []*VStreamParamsMap {
	if x != nil {
		return x.Groups
	}
	return nil
}

type OutputVStreamGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VstreamNames  []string               `protobuf:"bytes,1,rep,name=vstream_names,json=vstreamNames,proto3" json:"vstream_names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutputVStreamGroup) Reset() {
	*x = OutputVStreamGroup{}
	mi := &file_broker_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutputVStreamGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutputVStreamGroup) ProtoMessage() {}

func (x *OutputVStreamGroup) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutputVStreamGroup.ProtoReflect.Descriptor instead.
func (*OutputVStreamGroup) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{49}
}

func (x *OutputVStreamGroup) GetVstreamNames() []string {
	if x != nil {
		return x.VstreamNames
	}
	return nil
}

type OutputVStreamGroupsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Groups        []*OutputVStreamGroup  `protobuf:"bytes,2,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutputVStreamGroupsReply) Reset() {
	*x = OutputVStreamGroupsReply{}
	mi := &file_broker_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutputVStreamGroupsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutputVStreamGroupsReply) ProtoMessage() {}

func (x *OutputVStreamGroupsReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutputVStreamGroupsReply.ProtoReflect.Descriptor instead.
func (*OutputVStreamGroupsReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{50}
}

func (x *OutputVStreamGroupsReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *OutputVStreamGroupsReply) GetGroups() []*OutputVStreamGroup {
	if x != nil {
		return x.Groups
	}
	return nil
}

type VStreamInfosRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	NetworkName   string                  `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamInfosRequest) Reset() {
	*x = VStreamInfosRequest{}
	mi := &file_broker_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamInfosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamInfosRequest) ProtoMessage() {}

func (x *VStreamInfosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamInfosRequest.ProtoReflect.Descriptor instead.
func (*VStreamInfosRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{51}
}

func (x *VStreamInfosRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *VStreamInfosRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type VStreamInfosReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Infos         []*VStreamInfo         `protobuf:"bytes,2,rep,name=infos,proto3" json:"infos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamInfosReply) Reset() {
	*x = VStreamInfosReply{}
	mi := &file_broker_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamInfosReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamInfosReply) ProtoMessage() {}

func (x *VStreamInfosReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamInfosReply.ProtoReflect.Descriptor instead.
func (*VStreamInfosReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{52}
}

func (x *VStreamInfosReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *VStreamInfosReply) GetInfos() []*VStreamInfo {
	if x != nil {
		return x.Infos
	}
	return nil
}

type SetSchedulerTimeoutRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	TimeoutMs     uint32                  `protobuf:"varint,2,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	NetworkName   string                  `protobuf:"bytes,3,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSchedulerTimeoutRequest) Reset() {
	*x = SetSchedulerTimeoutRequest{}
	mi := &file_broker_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSchedulerTimeoutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSchedulerTimeoutRequest) ProtoMessage() {}

func (x *SetSchedulerTimeoutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSchedulerTimeoutRequest.ProtoReflect.Descriptor instead.
func (*SetSchedulerTimeoutRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{53}
}

func (x *SetSchedulerTimeoutRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetSchedulerTimeoutRequest) GetTimeoutMs() uint32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

func (x *SetSchedulerTimeoutRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type SetSchedulerThresholdRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Threshold     uint32                  `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	NetworkName   string                  `protobuf:"bytes,3,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSchedulerThresholdRequest) Reset() {
	*x = SetSchedulerThresholdRequest{}
	mi := &file_broker_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSchedulerThresholdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSchedulerThresholdRequest) ProtoMessage() {}

func (x *SetSchedulerThresholdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSchedulerThresholdRequest.ProtoReflect.Descriptor instead.
func (*SetSchedulerThresholdRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{54}
}

func (x *SetSchedulerThresholdRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetSchedulerThresholdRequest) GetThreshold() uint32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

func (x *SetSchedulerThresholdRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type SetSchedulerPriorityRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Priority      uint32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	NetworkName   string                  `protobuf:"bytes,3,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSchedulerPriorityRequest) Reset() {
	*x = SetSchedulerPriorityRequest{}
	mi := &file_broker_proto_msgTypes[55]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSchedulerPriorityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSchedulerPriorityRequest) ProtoMessage() {}

func (x *SetSchedulerPriorityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[55]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSchedulerPriorityRequest.ProtoReflect.Descriptor instead.
func (*SetSchedulerPriorityRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{55}
}

func (x *SetSchedulerPriorityRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetSchedulerPriorityRequest) GetPriority() uint32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *SetSchedulerPriorityRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type GetLatencyMeasurementRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	NetworkName   string                  `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3" json:"network_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatencyMeasurementRequest) Reset() {
	*x = GetLatencyMeasurementRequest{}
	mi := &file_broker_proto_msgTypes[56]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatencyMeasurementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatencyMeasurementRequest) ProtoMessage() {}

func (x *GetLatencyMeasurementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[56]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatencyMeasurementRequest.ProtoReflect.Descriptor instead.
func (*GetLatencyMeasurementRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{56}
}

func (x *GetLatencyMeasurementRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *GetLatencyMeasurementRequest) GetNetworkName() string {
	if x != nil {
		return x.NetworkName
	}
	return ""
}

type GetLatencyMeasurementReply struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Status         uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	AvgHwLatencyNs uint64                 `protobuf:"varint,2,opt,name=avg_hw_latency_ns,json=avgHwLatencyNs,proto3" json:"avg_hw_latency_ns,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetLatencyMeasurementReply) Reset() {
	*x = GetLatencyMeasurementReply{}
	mi := &file_broker_proto_msgTypes[57]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatencyMeasurementReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatencyMeasurementReply) ProtoMessage() {}

func (x *GetLatencyMeasurementReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[57]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatencyMeasurementReply.ProtoReflect.Descriptor instead.
func (*GetLatencyMeasurementReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{57}
}

func (x *GetLatencyMeasurementReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *GetLatencyMeasurementReply) GetAvgHwLatencyNs() uint64 {
	if x != nil {
		return x.AvgHwLatencyNs
	}
	return 0
}

type GetConfigParamsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Params        *ConfigureParams       `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetConfigParamsReply) Reset() {
	*x = GetConfigParamsReply{}
	mi := &file_broker_proto_msgTypes[58]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetConfigParamsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetConfigParamsReply) ProtoMessage() {}

func (x *GetConfigParamsReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[58]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetConfigParamsReply.ProtoReflect.Descriptor instead.
func (*GetConfigParamsReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{58}
}

func (x *GetConfigParamsReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *GetConfigParamsReply) GetParams() *ConfigureParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type GetStreamNamesFromVstreamNameRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	VstreamName   string                  `protobuf:"bytes,2,opt,name=vstream_name,json=vstreamName,proto3" json:"vstream_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStreamNamesFromVstreamNameRequest) Reset() {
	*x = GetStreamNamesFromVstreamNameRequest{}
	mi := &file_broker_proto_msgTypes[59]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStreamNamesFromVstreamNameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStreamNamesFromVstreamNameRequest) ProtoMessage() {}

func (x *GetStreamNamesFromVstreamNameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[59]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStreamNamesFromVstreamNameRequest.ProtoReflect.Descriptor instead.
func (*GetStreamNamesFromVstreamNameRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{59}
}

func (x *GetStreamNamesFromVstreamNameRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *GetStreamNamesFromVstreamNameRequest) GetVstreamName() string {
	if x != nil {
		return x.VstreamName
	}
	return ""
}

type GetVstreamNamesFromStreamNameRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	StreamName    string                  `protobuf:"bytes,2,opt,name=stream_name,json=streamName,proto3" json:"stream_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVstreamNamesFromStreamNameRequest) Reset() {
	*x = GetVstreamNamesFromStreamNameRequest{}
	mi := &file_broker_proto_msgTypes[60]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVstreamNamesFromStreamNameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVstreamNamesFromStreamNameRequest) ProtoMessage() {}

func (x *GetVstreamNamesFromStreamNameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[60]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVstreamNamesFromStreamNameRequest.ProtoReflect.Descriptor instead.
func (*GetVstreamNamesFromStreamNameRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{60}
}

func (x *GetVstreamNamesFromStreamNameRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *GetVstreamNamesFromStreamNameRequest) GetStreamName() string {
	if x != nil {
		return x.StreamName
	}
	return ""
}

type CreateVStreamsRequest struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Identifier    *NetworkGroupIdentifier   `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                    `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	Params        map[string]*VStreamParams `protobuf:"bytes,3,rep,name=params,proto3" json:"params,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVStreamsRequest) Reset() {
	*x = CreateVStreamsRequest{}
	mi := &file_broker_proto_msgTypes[61]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVStreamsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVStreamsRequest) ProtoMessage() {}

func (x *CreateVStreamsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[61]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVStreamsRequest.ProtoReflect.Descriptor instead.
func (*CreateVStreamsRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{61}
}

func (x *CreateVStreamsRequest) GetIdentifier() *NetworkGroupIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *CreateVStreamsRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *CreateVStreamsRequest) GetParams() map[string]*VStreamParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type CreateVStreamsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Handles       []uint32               `protobuf:"varint,2,rep,packed,name=handles,proto3" json:"handles,omitempty"`
	Names         []string               `protobuf:"bytes,3,rep,name=names,proto3" json:"names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVStreamsReply) Reset() {
	*x = CreateVStreamsReply{}
	mi := &file_broker_proto_msgTypes[62]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVStreamsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVStreamsReply) ProtoMessage() {}

func (x *CreateVStreamsReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[62]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVStreamsReply.ProtoReflect.Descriptor instead.
func (*CreateVStreamsReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{62}
}

func (x *CreateVStreamsReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *CreateVStreamsReply) GetHandles() []uint32 {
	if x != nil {
		return x.Handles
	}
	return nil
}

func (x *CreateVStreamsReply) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

type VStreamDupHandleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                 `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamDupHandleRequest) Reset() {
	*x = VStreamDupHandleRequest{}
	mi := &file_broker_proto_msgTypes[63]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamDupHandleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamDupHandleRequest) ProtoMessage() {}

func (x *VStreamDupHandleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[63]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamDupHandleRequest.ProtoReflect.Descriptor instead.
func (*VStreamDupHandleRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{63}
}

func (x *VStreamDupHandleRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *VStreamDupHandleRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type VStreamReleaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Pid           uint32                 `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamReleaseRequest) Reset() {
	*x = VStreamReleaseRequest{}
	mi := &file_broker_proto_msgTypes[64]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamReleaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamReleaseRequest) ProtoMessage() {}

func (x *VStreamReleaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[64]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamReleaseRequest.ProtoReflect.Descriptor instead.
func (*VStreamReleaseRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{64}
}

func (x *VStreamReleaseRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *VStreamReleaseRequest) GetPid() uint32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

type VStreamIdentifierRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamIdentifierRequest) Reset() {
	*x = VStreamIdentifierRequest{}
	mi := &file_broker_proto_msgTypes[65]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamIdentifierRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamIdentifierRequest) ProtoMessage() {}

func (x *VStreamIdentifierRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[65]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamIdentifierRequest.ProtoReflect.Descriptor instead.
func (*VStreamIdentifierRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{65}
}

func (x *VStreamIdentifierRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

type InputVStreamWriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InputVStreamWriteRequest) Reset() {
	*x = InputVStreamWriteRequest{}
	mi := &file_broker_proto_msgTypes[66]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InputVStreamWriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InputVStreamWriteRequest) ProtoMessage() {}

func (x *InputVStreamWriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[66]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InputVStreamWriteRequest.ProtoReflect.Descriptor instead.
func (*InputVStreamWriteRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{66}
}

func (x *InputVStreamWriteRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *InputVStreamWriteRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type InputVStreamWritePixRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Planes        [][]byte               `protobuf:"bytes,2,rep,name=planes,proto3" json:"planes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InputVStreamWritePixRequest) Reset() {
	*x = InputVStreamWritePixRequest{}
	mi := &file_broker_proto_msgTypes[67]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InputVStreamWritePixRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InputVStreamWritePixRequest) ProtoMessage() {}

func (x *InputVStreamWritePixRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[67]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InputVStreamWritePixRequest.ProtoReflect.Descriptor instead.
func (*InputVStreamWritePixRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{67}
}

func (x *InputVStreamWritePixRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *InputVStreamWritePixRequest) GetPlanes() [][]byte {
	if x != nil {
		return x.Planes
	}
	return nil
}

type OutputVStreamReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Size          uint64                 `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutputVStreamReadRequest) Reset() {
	*x = OutputVStreamReadRequest{}
	mi := &file_broker_proto_msgTypes[68]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutputVStreamReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutputVStreamReadRequest) ProtoMessage() {}

func (x *OutputVStreamReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[68]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutputVStreamReadRequest.ProtoReflect.Descriptor instead.
func (*OutputVStreamReadRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{68}
}

func (x *OutputVStreamReadRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *OutputVStreamReadRequest) GetSize() uint64 {
	if x != nil {
		return x.Size
	}
	return 0
}

type OutputVStreamReadReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutputVStreamReadReply) Reset() {
	*x = OutputVStreamReadReply{}
	mi := &file_broker_proto_msgTypes[69]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutputVStreamReadReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutputVStreamReadReply) ProtoMessage() {}

func (x *OutputVStreamReadReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[69]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutputVStreamReadReply.ProtoReflect.Descriptor instead.
func (*OutputVStreamReadReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{69}
}

func (x *OutputVStreamReadReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *OutputVStreamReadReply) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type VStreamInfoReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        uint32                 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Info          *VStreamInfo           `protobuf:"bytes,2,opt,name=info,proto3" json:"info,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VStreamInfoReply) Reset() {
	*x = VStreamInfoReply{}
	mi := &file_broker_proto_msgTypes[70]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VStreamInfoReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VStreamInfoReply) ProtoMessage() {}

func (x *VStreamInfoReply) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[70]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VStreamInfoReply.ProtoReflect.Descriptor instead.
func (*VStreamInfoReply) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{70}
}

func (x *VStreamInfoReply) GetStatus() uint32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *VStreamInfoReply) GetInfo() *VStreamInfo {
	if x != nil {
		return x.Info
	}
	return nil
}

type SetNmsScoreThresholdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Threshold     float32                `protobuf:"fixed32,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetNmsScoreThresholdRequest) Reset() {
	*x = SetNmsScoreThresholdRequest{}
	mi := &file_broker_proto_msgTypes[71]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetNmsScoreThresholdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetNmsScoreThresholdRequest) ProtoMessage() {}

func (x *SetNmsScoreThresholdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[71]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetNmsScoreThresholdRequest.ProtoReflect.Descriptor instead.
func (*SetNmsScoreThresholdRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{71}
}

func (x *SetNmsScoreThresholdRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetNmsScoreThresholdRequest) GetThreshold() float32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

type SetNmsIouThresholdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Threshold     float32                `protobuf:"fixed32,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetNmsIouThresholdRequest) Reset() {
	*x = SetNmsIouThresholdRequest{}
	mi := &file_broker_proto_msgTypes[72]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetNmsIouThresholdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetNmsIouThresholdRequest) ProtoMessage() {}

func (x *SetNmsIouThresholdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[72]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetNmsIouThresholdRequest.ProtoReflect.Descriptor instead.
func (*SetNmsIouThresholdRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{72}
}

func (x *SetNmsIouThresholdRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetNmsIouThresholdRequest) GetThreshold() float32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

type SetNmsMaxProposalsRequest struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Identifier           *VStreamIdentifier     `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	MaxProposalsPerClass uint32                 `protobuf:"varint,2,opt,name=max_proposals_per_class,json=maxProposalsPerClass,proto3" json:"max_proposals_per_class,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *SetNmsMaxProposalsRequest) Reset() {
	*x = SetNmsMaxProposalsRequest{}
	mi := &file_broker_proto_msgTypes[73]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetNmsMaxProposalsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetNmsMaxProposalsRequest) ProtoMessage() {}

func (x *SetNmsMaxProposalsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_broker_proto_msgTypes[73]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetNmsMaxProposalsRequest.ProtoReflect.Descriptor instead.
func (*SetNmsMaxProposalsRequest) Descriptor() ([]byte, []int) {
	return file_broker_proto_rawDescGZIP(), []int{73}
}

func (x *SetNmsMaxProposalsRequest) GetIdentifier() *VStreamIdentifier {
	if x != nil {
		return x.Identifier
	}
	return nil
}

func (x *SetNmsMaxProposalsRequest) GetMaxProposalsPerClass() uint32 {
	if x != nil {
		return x.MaxProposalsPerClass
	}
	return 0
}

var File_broker_proto protoreflect.FileDescriptor

const file_broker_proto_rawDesc = "" +
	"\n" +
	"\fbroker.proto\x12\fhailo.broker\"*\n" +
	"\x10DeviceIdentifier\x12\x16\n" +
	"\x06handle\x18\x01 \x01(\rR\x06handle\"U\n" +
	"\x16NetworkGroupIdentifier\x12#\n" +
	"\rdevice_handle\x18\x01 \x01(\rR\fdeviceHandle\x12\x16\n" +
	"\x06handle\x18\x02 \x01(\rR\x06handle\"]\n" +
	"\x11VStreamIdentifier\x120\n" +
	"\x14network_group_handle\x18\x01 \x01(\rR\x12networkGroupHandle\x12\x16\n" +
	"\x06handle\x18\x02 \x01(\rR\x06handle\"%\n" +
	"\vStatusReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\"&\n" +
	"\fReleaseReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\"@\n" +
	"\x0eDupHandleReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x16\n" +
	"\x06handle\x18\x02 \x01(\rR\x06handle\"9\n" +
	"\tBoolReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x14\n" +
	"\x05value\x18\x02 \x01(\bR\x05value\"7\n" +
	"\tNameReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\":\n" +
	"\n" +
	"NamesReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x14\n" +
	"\x05names\x18\x02 \x03(\tR\x05names\"G\n" +
	"\x0eFrameSizeReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x1d\n" +
	"\n" +
	"frame_size\x18\x02 \x01(\x04R\tframeSize\"S\n" +
	"\vFormatReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12,\n" +
	"\x06format\x18\x02 \x01(\v2\x14.hailo.broker.FormatR\x06format\"Y\n" +
	"\x14StreamInterfaceReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12)\n" +
	"\x10stream_interface\x18\x02 \x01(\rR\x0fstreamInterface\"$\n" +
	"\x10KeepAliveRequest\x12\x10\n" +
	"\x03pid\x18\x01 \x01(\rR\x03pid\"(\n" +
	"\x0eKeepAliveReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\"\x1a\n" +
	"\x18GetServiceVersionRequest\"X\n" +
	"\x0eServiceVersion\x12\x14\n" +
	"\x05major\x18\x01 \x01(\rR\x05major\x12\x14\n" +
	"\x05minor\x18\x02 \x01(\rR\x05minor\x12\x1a\n" +
	"\brevision\x18\x03 \x01(\rR\brevision\"h\n" +
	"\x16GetServiceVersionReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x126\n" +
	"\aversion\x18\x02 \x01(\v2\x1c.hailo.broker.ServiceVersionR\aversion\"2\n" +
	"\x06Format\x12\x12\n" +
	"\x04type\x18\x01 \x01(\rR\x04type\x12\x14\n" +
	"\x05order\x18\x02 \x01(\rR\x05order\"\xd9\x01\n" +
	"\n" +
	"StreamInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\x12\x1c\n" +
	"\tdirection\x18\x03 \x01(\rR\tdirection\x12)\n" +
	"\x10stream_interface\x18\x04 \x01(\rR\x0fstreamInterface\x12\x1d\n" +
	"\n" +
	"frame_size\x18\x05 \x01(\x04R\tframeSize\x12,\n" +
	"\x06format\x18\x06 \x01(\v2\x14.hailo.broker.FormatR\x06format\"\xaf\x01\n" +
	"\vVStreamInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\x12\x1c\n" +
	"\tdirection\x18\x03 \x01(\rR\tdirection\x12\x1d\n" +
	"\n" +
	"frame_size\x18\x04 \x01(\x04R\tframeSize\x12,\n" +
	"\x06format\x18\x05 \x01(\v2\x14.hailo.broker.FormatR\x06format\"!\n" +
	"\vNetworkInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"m\n" +
	"\fStreamParams\x12\x1c\n" +
	"\tdirection\x18\x01 \x01(\rR\tdirection\x12)\n" +
	"\x10stream_interface\x18\x02 \x01(\rR\x0fstreamInterface\x12\x14\n" +
	"\x05async\x18\x03 \x01(\bR\x05async\".\n" +
	"\rNetworkParams\x12\x1d\n" +
	"\n" +
	"batch_size\x18\x01 \x01(\rR\tbatchSize\"\x97\x04\n" +
	"\x0fConfigureParams\x12T\n" +
	"\rstream_params\x18\x01 \x03(\v2/.hailo.broker.ConfigureParams.StreamParamsEntryR\fstreamParams\x12W\n" +
	"\x0enetwork_params\x18\x02 \x03(\v20.hailo.broker.ConfigureParams.NetworkParamsEntryR\rnetworkParams\x121\n" +
	"\x14scheduling_algorithm\x18\x03 \x01(\rR\x13schedulingAlgorithm\x12/\n" +
	"\x13latency_measurement\x18\x04 \x01(\bR\x12latencyMeasurement\x125\n" +
	"\x17latency_clear_after_get\x18\x05 \x01(\bR\x14latencyClearAfterGet\x1a[\n" +
	"\x11StreamParamsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x120\n" +
	"\x05value\x18\x02 \x01(\v2\x1a.hailo.broker.StreamParamsR\x05value:\x028\x01\x1a]\n" +
	"\x12NetworkParamsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x121\n" +
	"\x05value\x18\x02 \x01(\v2\x1b.hailo.broker.NetworkParamsR\x05value:\x028\x01\"a\n" +
	"\x14NamedConfigureParams\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x125\n" +
	"\x06params\x18\x02 \x01(\v2\x1d.hailo.broker.ConfigureParamsR\x06params\"n\n" +
	"\rVStreamParams\x12\x1f\n" +
	"\vformat_type\x18\x01 \x01(\rR\n" +
	"formatType\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x02 \x01(\rR\ttimeoutMs\x12\x1d\n" +
	"\n" +
	"queue_size\x18\x03 \x01(\rR\tqueueSize\"\x9e\x01\n" +
	"\fDeviceParams\x12!\n" +
	"\fdevice_count\x18\x01 \x01(\rR\vdeviceCount\x12\x1d\n" +
	"\n" +
	"device_ids\x18\x02 \x03(\tR\tdeviceIds\x121\n" +
	"\x14scheduling_algorithm\x18\x03 \x01(\rR\x13schedulingAlgorithm\x12\x19\n" +
	"\bgroup_id\x18\x04 \x01(\tR\agroupId\"[\n" +
	"\x13DeviceCreateRequest\x12\x10\n" +
	"\x03pid\x18\x01 \x01(\rR\x03pid\x122\n" +
	"\x06params\x18\x02 \x01(\v2\x1a.hailo.broker.DeviceParamsR\x06params\"C\n" +
	"\x11DeviceCreateReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x16\n" +
	"\x06handle\x18\x02 \x01(\rR\x06handle\"h\n" +
	"\x14DeviceReleaseRequest\x12>\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1e.hailo.broker.DeviceIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\"\xcb\x01\n" +
	"\x16DeviceConfigureRequest\x12>\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1e.hailo.broker.DeviceIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\x12\x10\n" +
	"\x03hef\x18\x03 \x01(\fR\x03hef\x12M\n" +
	"\x10configure_params\x18\x04 \x03(\v2\".hailo.broker.NamedConfigureParamsR\x0fconfigureParams\"b\n" +
	"\x14DeviceConfigureReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x122\n" +
	"\x15network_group_handles\x18\x02 \x03(\rR\x13networkGroupHandles\"d\n" +
	"\"DeviceGetPhysicalDevicesIdsRequest\x12>\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1e.hailo.broker.DeviceIdentifierR\n" +
	"identifier\"Y\n" +
	" DeviceGetPhysicalDevicesIdsReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x1d\n" +
	"\n" +
	"device_ids\x18\x02 \x03(\tR\tdeviceIds\"i\n" +
	"'DeviceGetDefaultStreamsInterfaceRequest\x12>\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1e.hailo.broker.DeviceIdentifierR\n" +
	"identifier\"e\n" +
	"\x1dNetworkGroupIdentifierRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\"v\n" +
	"\x1cNetworkGroupDupHandleRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\"t\n" +
	"\x1aNetworkGroupReleaseRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\"_\n" +
	"\x17NetworkGroupNameRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\"C\n" +
	"\x15NetworkGroupNameReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"j\n" +
	"\"NetworkGroupGetNetworkInfosRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\"k\n" +
	" NetworkGroupGetNetworkInfosReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12/\n" +
	"\x05infos\x18\x02 \x03(\v2\x19.hailo.broker.NetworkInfoR\x05infos\"\x8f\x01\n" +
	"$NetworkGroupGetAllStreamInfosRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\"l\n" +
	"\"NetworkGroupGetAllStreamInfosReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12.\n" +
	"\x05infos\x18\x02 \x03(\v2\x18.hailo.broker.StreamInfoR\x05infos\"t\n" +
	",NetworkGroupGetDefaultStreamInterfaceRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\"\xe2\x01\n" +
	"\x18MakeVStreamParamsRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\x12\x1f\n" +
	"\vformat_type\x18\x03 \x01(\rR\n" +
	"formatType\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x04 \x01(\rR\ttimeoutMs\x12\x1d\n" +
	"\n" +
	"queue_size\x18\x05 \x01(\rR\tqueueSize\"\xae\x01\n" +
	"\x10VStreamParamsMap\x12B\n" +
	"\x06params\x18\x01 \x03(\v2*.hailo.broker.VStreamParamsMap.ParamsEntryR\x06params\x1aV\n" +
	"\vParamsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x121\n" +
	"\x05value\x18\x02 \x01(\v2\x1b.hailo.broker.VStreamParamsR\x05value:\x028\x01\"\xd0\x01\n" +
	"\x15VStreamParamsMapReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12G\n" +
	"\x06params\x18\x02 \x03(\v2/.hailo.broker.VStreamParamsMapReply.ParamsEntryR\x06params\x1aV\n" +
	"\vParamsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x121\n" +
	"\x05value\x18\x02 \x01(\v2\x1b.hailo.broker.VStreamParamsR\x05value:\x028\x01\"j\n" +
	"\x18VStreamParamsGroupsReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x126\n" +
	"\x06groups\x18\x02 \x03(\v2\x1e.hailo.broker.VStreamParamsMapR\x06groups\"9\n" +
	"\x12OutputVStreamGroup\x12#\n" +
	"\rvstream_names\x18\x01 \x03(\tR\fvstreamNames\"l\n" +
	"\x18OutputVStreamGroupsReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x128\n" +
	"\x06groups\x18\x02 \x03(\v2 .hailo.broker.OutputVStreamGroupR\x06groups\"~\n" +
	"\x13VStreamInfosRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\"\\\n" +
	"\x11VStreamInfosReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12/\n" +
	"\x05infos\x18\x02 \x03(\v2\x19.hailo.broker.VStreamInfoR\x05infos\"\xa4\x01\n" +
	"\x1aSetSchedulerTimeoutRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x02 \x01(\rR\ttimeoutMs\x12!\n" +
	"\fnetwork_name\x18\x03 \x01(\tR\vnetworkName\"\xa5\x01\n" +
	"\x1cSetSchedulerThresholdRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\rR\tthreshold\x12!\n" +
	"\fnetwork_name\x18\x03 \x01(\tR\vnetworkName\"\xa2\x01\n" +
	"\x1bSetSchedulerPriorityRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\rR\bpriority\x12!\n" +
	"\fnetwork_name\x18\x03 \x01(\tR\vnetworkName\"\x87\x01\n" +
	"\x1cGetLatencyMeasurementRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12!\n" +
	"\fnetwork_name\x18\x02 \x01(\tR\vnetworkName\"_\n" +
	"\x1aGetLatencyMeasurementReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12)\n" +
	"\x11avg_hw_latency_ns\x18\x02 \x01(\x04R\x0eavgHwLatencyNs\"e\n" +
	"\x14GetConfigParamsReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x125\n" +
	"\x06params\x18\x02 \x01(\v2\x1d.hailo.broker.ConfigureParamsR\x06params\"\x8f\x01\n" +
	"$GetStreamNamesFromVstreamNameRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12!\n" +
	"\fvstream_name\x18\x02 \x01(\tR\vvstreamName\"\x8d\x01\n" +
	"$GetVstreamNamesFromStreamNameRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x1f\n" +
	"\vstream_name\x18\x02 \x01(\tR\n" +
	"streamName\"\x90\x02\n" +
	"\x15CreateVStreamsRequest\x12D\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2$.hailo.broker.NetworkGroupIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\x12G\n" +
	"\x06params\x18\x03 \x03(\v2/.hailo.broker.CreateVStreamsRequest.ParamsEntryR\x06params\x1aV\n" +
	"\vParamsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x121\n" +
	"\x05value\x18\x02 \x01(\v2\x1b.hailo.broker.VStreamParamsR\x05value:\x028\x01\"]\n" +
	"\x13CreateVStreamsReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x18\n" +
	"\ahandles\x18\x02 \x03(\rR\ahandles\x12\x14\n" +
	"\x05names\x18\x03 \x03(\tR\x05names\"l\n" +
	"\x17VStreamDupHandleRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\"j\n" +
	"\x15VStreamReleaseRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\rR\x03pid\"[\n" +
	"\x18VStreamIdentifierRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\"o\n" +
	"\x18InputVStreamWriteRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\"v\n" +
	"\x1bInputVStreamWritePixRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x16\n" +
	"\x06planes\x18\x02 \x03(\fR\x06planes\"o\n" +
	"\x18OutputVStreamReadRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x12\n" +
	"\x04size\x18\x02 \x01(\x04R\x04size\"D\n" +
	"\x16OutputVStreamReadReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\"Y\n" +
	"\x10VStreamInfoReply\x12\x16\n" +
	"\x06status\x18\x01 \x01(\rR\x06status\x12-\n" +
	"\x04info\x18\x02 \x01(\v2\x19.hailo.broker.VStreamInfoR\x04info\"|\n" +
	"\x1bSetNmsScoreThresholdRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\x02R\tthreshold\"z\n" +
	"\x19SetNmsIouThresholdRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\x02R\tthreshold\"\x93\x01\n" +
	"\x19SetNmsMaxProposalsRequest\x12?\n" +
	"\n" +
	"identifier\x18\x01 \x01(\v2\x1f.hailo.broker.VStreamIdentifierR\n" +
	"identifier\x125\n" +
	"\x17max_proposals_per_class\x18\x02 \x01(\rR\x14maxProposalsPerClass2\xd82\n" +
	"\rBrokerService\x12O\n" +
	"\x0fClientKeepAlive\x12\x1e.hailo.broker.KeepAliveRequest\x1a\x1c.hailo.broker.KeepAliveReply\x12a\n" +
	"\x11GetServiceVersion\x12&.hailo.broker.GetServiceVersionRequest\x1a$.hailo.broker.GetServiceVersionReply\x12R\n" +
	"\fDeviceCreate\x12!.hailo.broker.DeviceCreateRequest\x1a\x1f.hailo.broker.DeviceCreateReply\x12O\n" +
	"\rDeviceRelease\x12\".hailo.broker.DeviceReleaseRequest\x1a\x1a.hailo.broker.ReleaseReply\x12[\n" +
	"\x0fDeviceConfigure\x12$.hailo.broker.DeviceConfigureRequest\x1a\".hailo.broker.DeviceConfigureReply\x12\x7f\n" +
	"\x1bDeviceGetPhysicalDevicesIds\x120.hailo.broker.DeviceGetPhysicalDevicesIdsRequest\x1a..hailo.broker.DeviceGetPhysicalDevicesIdsReply\x12}\n" +
	" DeviceGetDefaultStreamsInterface\x125.hailo.broker.DeviceGetDefaultStreamsInterfaceRequest\x1a\".hailo.broker.StreamInterfaceReply\x12a\n" +
	"\x15NetworkGroupDupHandle\x12*.hailo.broker.NetworkGroupDupHandleRequest\x1a\x1c.hailo.broker.DupHandleReply\x12[\n" +
	"\x13NetworkGroupRelease\x12(.hailo.broker.NetworkGroupReleaseRequest\x1a\x1a.hailo.broker.ReleaseReply\x12^\n" +
	"\x10NetworkGroupName\x12%.hailo.broker.NetworkGroupNameRequest\x1a#.hailo.broker.NetworkGroupNameReply\x12\x7f\n" +
	"\x1bNetworkGroupGetNetworkInfos\x120.hailo.broker.NetworkGroupGetNetworkInfosRequest\x1a..hailo.broker.NetworkGroupGetNetworkInfosReply\x12\x85\x01\n" +
	"\x1dNetworkGroupGetAllStreamInfos\x122.hailo.broker.NetworkGroupGetAllStreamInfosRequest\x1a0.hailo.broker.NetworkGroupGetAllStreamInfosReply\x12\x87\x01\n" +
	"%NetworkGroupGetDefaultStreamInterface\x12:.hailo.broker.NetworkGroupGetDefaultStreamInterfaceRequest\x1a\".hailo.broker.StreamInterfaceReply\x12q\n" +
	"\"NetworkGroupMakeInputVStreamParams\x12&.hailo.broker.MakeVStreamParamsRequest\x1a#.hailo.broker.VStreamParamsMapReply\x12r\n" +
	"#NetworkGroupMakeOutputVStreamParams\x12&.hailo.broker.MakeVStreamParamsRequest\x1a#.hailo.broker.VStreamParamsMapReply\x12{\n" +
	")NetworkGroupMakeOutputVStreamParamsGroups\x12&.hailo.broker.MakeVStreamParamsRequest\x1a&.hailo.broker.VStreamParamsGroupsReply\x12y\n" +
	"\"NetworkGroupGetOutputVStreamGroups\x12+.hailo.broker.NetworkGroupIdentifierRequest\x1a&.hailo.broker.OutputVStreamGroupsReply\x12f\n" +
	" NetworkGroupGetInputVStreamInfos\x12!.hailo.broker.VStreamInfosRequest\x1a\x1f.hailo.broker.VStreamInfosReply\x12g\n" +
	"!NetworkGroupGetOutputVStreamInfos\x12!.hailo.broker.VStreamInfosRequest\x1a\x1f.hailo.broker.VStreamInfosReply\x12d\n" +
	"\x1eNetworkGroupGetAllVStreamInfos\x12!.hailo.broker.VStreamInfosRequest\x1a\x1f.hailo.broker.VStreamInfosReply\x12_\n" +
	"\x17NetworkGroupIsScheduled\x12+.hailo.broker.NetworkGroupIdentifierRequest\x1a\x17.hailo.broker.BoolReply\x12f\n" +
	"\x1fNetworkGroupSetSchedulerTimeout\x12(.hailo.broker.SetSchedulerTimeoutRequest\x1a\x19.hailo.broker.StatusReply\x12j\n" +
	"!NetworkGroupSetSchedulerThreshold\x12*.hailo.broker.SetSchedulerThresholdRequest\x1a\x19.hailo.broker.StatusReply\x12h\n" +
	" NetworkGroupSetSchedulerPriority\x12).hailo.broker.SetSchedulerPriorityRequest\x1a\x19.hailo.broker.StatusReply\x12y\n" +
	"!NetworkGroupGetLatencyMeasurement\x12*.hailo.broker.GetLatencyMeasurementRequest\x1a(.hailo.broker.GetLatencyMeasurementReply\x12b\n" +
	"\x1aNetworkGroupIsMultiContext\x12+.hailo.broker.NetworkGroupIdentifierRequest\x1a\x17.hailo.broker.BoolReply\x12n\n" +
	"\x1bNetworkGroupGetConfigParams\x12+.hailo.broker.NetworkGroupIdentifierRequest\x1a\".hailo.broker.GetConfigParamsReply\x12i\n" +
	" NetworkGroupGetSortedOutputNames\x12+.hailo.broker.NetworkGroupIdentifierRequest\x1a\x18.hailo.broker.NamesReply\x12y\n" +
	")NetworkGroupGetStreamNamesFromVstreamName\x122.hailo.broker.GetStreamNamesFromVstreamNameRequest\x1a\x18.hailo.broker.NamesReply\x12y\n" +
	")NetworkGroupGetVstreamNamesFromStreamName\x122.hailo.broker.GetVstreamNamesFromStreamNameRequest\x1a\x18.hailo.broker.NamesReply\x12]\n" +
	"\x13InputVStreamsCreate\x12#.hailo.broker.CreateVStreamsRequest\x1a!.hailo.broker.CreateVStreamsReply\x12^\n" +
	"\x14OutputVStreamsCreate\x12#.hailo.broker.CreateVStreamsRequest\x1a!.hailo.broker.CreateVStreamsReply\x12\\\n" +
	"\x15InputVStreamDupHandle\x12%.hailo.broker.VStreamDupHandleRequest\x1a\x1c.hailo.broker.DupHandleReply\x12V\n" +
	"\x13InputVStreamRelease\x12#.hailo.broker.VStreamReleaseRequest\x1a\x1a.hailo.broker.ReleaseReply\x12V\n" +
	"\x11InputVStreamWrite\x12&.hailo.broker.InputVStreamWriteRequest\x1a\x19.hailo.broker.StatusReply\x12\\\n" +
	"\x14InputVStreamWritePix\x12).hailo.broker.InputVStreamWritePixRequest\x1a\x19.hailo.broker.StatusReply\x12`\n" +
	"\x18InputVStreamGetFrameSize\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x1c.hailo.broker.FrameSizeReply\x12V\n" +
	"\x11InputVStreamFlush\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12S\n" +
	"\x10InputVStreamName\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.NameReply\x12Z\n" +
	"\x17InputVStreamNetworkName\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.NameReply\x12V\n" +
	"\x11InputVStreamAbort\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12W\n" +
	"\x12InputVStreamResume\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12]\n" +
	"\x18InputVStreamStopAndClear\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12V\n" +
	"\x11InputVStreamStart\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12d\n" +
	"\x1fInputVStreamGetUserBufferFormat\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.FormatReply\x12]\n" +
	"\x13InputVStreamGetInfo\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x1e.hailo.broker.VStreamInfoReply\x12X\n" +
	"\x15InputVStreamIsAborted\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.BoolReply\x12\\\n" +
	"\x19InputVStreamIsMultiPlanar\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.BoolReply\x12]\n" +
	"\x16OutputVStreamDupHandle\x12%.hailo.broker.VStreamDupHandleRequest\x1a\x1c.hailo.broker.DupHandleReply\x12W\n" +
	"\x14OutputVStreamRelease\x12#.hailo.broker.VStreamReleaseRequest\x1a\x1a.hailo.broker.ReleaseReply\x12a\n" +
	"\x11OutputVStreamRead\x12&.hailo.broker.OutputVStreamReadRequest\x1a$.hailo.broker.OutputVStreamReadReply\x12a\n" +
	"\x19OutputVStreamGetFrameSize\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x1c.hailo.broker.FrameSizeReply\x12T\n" +
	"\x11OutputVStreamName\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.NameReply\x12[\n" +
	"\x18OutputVStreamNetworkName\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.NameReply\x12W\n" +
	"\x12OutputVStreamAbort\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12X\n" +
	"\x13OutputVStreamResume\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12^\n" +
	"\x19OutputVStreamStopAndClear\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12W\n" +
	"\x12OutputVStreamStart\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.StatusReply\x12e\n" +
	" OutputVStreamGetUserBufferFormat\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x19.hailo.broker.FormatReply\x12^\n" +
	"\x14OutputVStreamGetInfo\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x1e.hailo.broker.VStreamInfoReply\x12Y\n" +
	"\x16OutputVStreamIsAborted\x12&.hailo.broker.VStreamIdentifierRequest\x1a\x17.hailo.broker.BoolReply\x12i\n" +
	"!OutputVStreamSetNmsScoreThreshold\x12).hailo.broker.SetNmsScoreThresholdRequest\x1a\x19.hailo.broker.StatusReply\x12e\n" +
	"\x1fOutputVStreamSetNmsIouThreshold\x12'.hailo.broker.SetNmsIouThresholdRequest\x1a\x19.hailo.broker.StatusReply\x12m\n" +
	"'OutputVStreamSetNmsMaxProposalsPerClass\x12'.hailo.broker.SetNmsMaxProposalsRequest\x1a\x19.hailo.broker.StatusReplyB5Z3github.com/wenjunnutter/hailort/proto/broker;brokerb\x06proto3"

var (
	file_broker_proto_rawDescOnce sync.Once
	file_broker_proto_rawDescData []byte
)

func file_broker_proto_rawDescGZIP() []byte {
	file_broker_proto_rawDescOnce.Do(func() {
		file_broker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_broker_proto_rawDesc), len(file_broker_proto_rawDesc)))
	})
	return file_broker_proto_rawDescData
}

var file_broker_proto_msgTypes = make([]protoimpl.MessageInfo, 79)
var file_broker_proto_goTypes = []any{
	(*DeviceIdentifier)(nil),                             // 0: hailo.broker.DeviceIdentifier
	(*NetworkGroupIdentifier)(nil),                       // 1: hailo.broker.NetworkGroupIdentifier
	(*VStreamIdentifier)(nil),                            // 2: hailo.broker.VStreamIdentifier
	(*StatusReply)(nil),                                  // 3: hailo.broker.StatusReply
	(*ReleaseReply)(nil),                                 // 4: hailo.broker.ReleaseReply
	(*DupHandleReply)(nil),                               // 5: hailo.broker.DupHandleReply
	(*BoolReply)(nil),                                    // 6: hailo.broker.BoolReply
	(*NameReply)(nil),                                    // 7: hailo.broker.NameReply
	(*NamesReply)(nil),                                   // 8: hailo.broker.NamesReply
	(*FrameSizeReply)(nil),                               // 9: hailo.broker.FrameSizeReply
	(*FormatReply)(nil),                                  // 10: hailo.broker.FormatReply
	(*StreamInterfaceReply)(nil),                         // 11: hailo.broker.StreamInterfaceReply
	(*KeepAliveRequest)(nil),                             // 12: hailo.broker.KeepAliveRequest
	(*KeepAliveReply)(nil),                               // 13: hailo.broker.KeepAliveReply
	(*GetServiceVersionRequest)(nil),                     // 14: hailo.broker.GetServiceVersionRequest
	(*ServiceVersion)(nil),                               // 15: hailo.broker.ServiceVersion
	(*GetServiceVersionReply)(nil),                       // 16: hailo.broker.GetServiceVersionReply
	(*Format)(nil),                                       // 17: hailo.broker.Format
	(*StreamInfo)(nil),                                   // 18: hailo.broker.StreamInfo
	(*VStreamInfo)(nil),                                  // 19: hailo.broker.VStreamInfo
	(*NetworkInfo)(nil),                                  // 20: hailo.broker.NetworkInfo
	(*StreamParams)(nil),                                 // 21: hailo.broker.StreamParams
	(*NetworkParams)(nil),                                // 22: hailo.broker.NetworkParams
	(*ConfigureParams)(nil),                              // 23: hailo.broker.ConfigureParams
	(*NamedConfigureParams)(nil),                         // 24: hailo.broker.NamedConfigureParams
	(*VStreamParams)(nil),                                // 25: hailo.broker.VStreamParams
	(*DeviceParams)(nil),                                 // 26: hailo.broker.DeviceParams
	(*DeviceCreateRequest)(nil),                          // 27: hailo.broker.DeviceCreateRequest
	(*DeviceCreateReply)(nil),                            // 28: hailo.broker.DeviceCreateReply
	(*DeviceReleaseRequest)(nil),                         // 29: hailo.broker.DeviceReleaseRequest
	(*DeviceConfigureRequest)(nil),                       // 30: hailo.broker.DeviceConfigureRequest
	(*DeviceConfigureReply)(nil),                         // 31: hailo.broker.DeviceConfigureReply
	(*DeviceGetPhysicalDevicesIdsRequest)(nil),           // 32: hailo.broker.DeviceGetPhysicalDevicesIdsRequest
	(*DeviceGetPhysicalDevicesIdsReply)(nil),             // 33: hailo.broker.DeviceGetPhysicalDevicesIdsReply
	(*DeviceGetDefaultStreamsInterfaceRequest)(nil),      // 34: hailo.broker.DeviceGetDefaultStreamsInterfaceRequest
	(*NetworkGroupIdentifierRequest)(nil),                // 35: hailo.broker.NetworkGroupIdentifierRequest
	(*NetworkGroupDupHandleRequest)(nil),                 // 36: hailo.broker.NetworkGroupDupHandleRequest
	(*NetworkGroupReleaseRequest)(nil),                   // 37: hailo.broker.NetworkGroupReleaseRequest
	(*NetworkGroupNameRequest)(nil),                      // 38: hailo.broker.NetworkGroupNameRequest
	(*NetworkGroupNameReply)(nil),                        // 39: hailo.broker.NetworkGroupNameReply
	(*NetworkGroupGetNetworkInfosRequest)(nil),           // 40: hailo.broker.NetworkGroupGetNetworkInfosRequest
	(*NetworkGroupGetNetworkInfosReply)(nil),             // 41: hailo.broker.NetworkGroupGetNetworkInfosReply
	(*NetworkGroupGetAllStreamInfosRequest)(nil),         // 42: hailo.broker.NetworkGroupGetAllStreamInfosRequest
	(*NetworkGroupGetAllStreamInfosReply)(nil),           // 43: hailo.broker.NetworkGroupGetAllStreamInfosReply
	(*NetworkGroupGetDefaultStreamInterfaceRequest)(nil), // 44: hailo.broker.NetworkGroupGetDefaultStreamInterfaceRequest
	(*MakeVStreamParamsRequest)(nil),                     // 45: hailo.broker.MakeVStreamParamsRequest
	(*VStreamParamsMap)(nil),                             // 46: hailo.broker.VStreamParamsMap
	(*VStreamParamsMapReply)(nil),                        // 47: hailo.broker.VStreamParamsMapReply
	(*VStreamParamsGroupsReply)(nil),                     // 48: hailo.broker.VStreamParamsGroupsReply
	(*OutputVStreamGroup)(nil),                           // 49: hailo.broker.OutputVStreamGroup
	(*OutputVStreamGroupsReply)(nil),                     // 50: hailo.broker.OutputVStreamGroupsReply
	(*VStreamInfosRequest)(nil),                          // 51: hailo.broker.VStreamInfosRequest
	(*VStreamInfosReply)(nil),                            // 52: hailo.broker.VStreamInfosReply
	(*SetSchedulerTimeoutRequest)(nil),                   // 53: hailo.broker.SetSchedulerTimeoutRequest
	(*SetSchedulerThresholdRequest)(nil),                 // 54: hailo.broker.SetSchedulerThresholdRequest
	(*SetSchedulerPriorityRequest)(nil),                  // 55: hailo.broker.SetSchedulerPriorityRequest
	(*GetLatencyMeasurementRequest)(nil),                 // 56: hailo.broker.GetLatencyMeasurementRequest
	(*GetLatencyMeasurementReply)(nil),                   // 57: hailo.broker.GetLatencyMeasurementReply
	(*GetConfigParamsReply)(nil),                         // 58: hailo.broker.GetConfigParamsReply
	(*GetStreamNamesFromVstreamNameRequest)(nil),         // 59: hailo.broker.GetStreamNamesFromVstreamNameRequest
	(*GetVstreamNamesFromStreamNameRequest)(nil),         // 60: hailo.broker.GetVstreamNamesFromStreamNameRequest
	(*CreateVStreamsRequest)(nil),                        // 61: hailo.broker.CreateVStreamsRequest
	(*CreateVStreamsReply)(nil),                          // 62: hailo.broker.CreateVStreamsReply
	(*VStreamDupHandleRequest)(nil),                      // 63: hailo.broker.VStreamDupHandleRequest
	(*VStreamReleaseRequest)(nil),                        // 64: hailo.broker.VStreamReleaseRequest
	(*VStreamIdentifierRequest)(nil),                     // 65: hailo.broker.VStreamIdentifierRequest
	(*InputVStreamWriteRequest)(nil),                     // 66: hailo.broker.InputVStreamWriteRequest
	(*InputVStreamWritePixRequest)(nil),                  // 67: hailo.broker.InputVStreamWritePixRequest
	(*OutputVStreamReadRequest)(nil),                     // 68: hailo.broker.OutputVStreamReadRequest
	(*OutputVStreamReadReply)(nil),                       // 69: hailo.broker.OutputVStreamReadReply
	(*VStreamInfoReply)(nil),                             // 70: hailo.broker.VStreamInfoReply
	(*SetNmsScoreThresholdRequest)(nil),                  // 71: hailo.broker.SetNmsScoreThresholdRequest
	(*SetNmsIouThresholdRequest)(nil),                    // 72: hailo.broker.SetNmsIouThresholdRequest
	(*SetNmsMaxProposalsRequest)(nil),                    // 73: hailo.broker.SetNmsMaxProposalsRequest
	nil,                                                  // 74: hailo.broker.ConfigureParams.StreamParamsEntry
	nil,                                                  // 75: hailo.broker.ConfigureParams.NetworkParamsEntry
	nil,                                                  // 76: hailo.broker.VStreamParamsMap.ParamsEntry
	nil,                                                  // 77: hailo.broker.VStreamParamsMapReply.ParamsEntry
	nil,                                                  // 78: hailo.broker.CreateVStreamsRequest.ParamsEntry
}
var file_broker_proto_depIdxs = []int32{
	17,  // 0: hailo.broker.FormatReply.format:type_name -> hailo.broker.Format
	15,  // 1: hailo.broker.GetServiceVersionReply.version:type_name -> hailo.broker.ServiceVersion
	17,  // 2: hailo.broker.StreamInfo.format:type_name -> hailo.broker.Format
	17,  // 3: hailo.broker.VStreamInfo.format:type_name -> hailo.broker.Format
	74,  // 4: hailo.broker.ConfigureParams.stream_params:type_name -> hailo.broker.ConfigureParams.StreamParamsEntry
	75,  // 5: hailo.broker.ConfigureParams.network_params:type_name -> hailo.broker.ConfigureParams.NetworkParamsEntry
	23,  // 6: hailo.broker.NamedConfigureParams.params:type_name -> hailo.broker.ConfigureParams
	26,  // 7: hailo.broker.DeviceCreateRequest.params:type_name -> hailo.broker.DeviceParams
	0,   // 8: hailo.broker.DeviceReleaseRequest.identifier:type_name -> hailo.broker.DeviceIdentifier
	0,   // 9: hailo.broker.DeviceConfigureRequest.identifier:type_name -> hailo.broker.DeviceIdentifier
	24,  // 10: hailo.broker.DeviceConfigureRequest.configure_params:type_name -> hailo.broker.NamedConfigureParams
	0,   // 11: hailo.broker.DeviceGetPhysicalDevicesIdsRequest.identifier:type_name -> hailo.broker.DeviceIdentifier
	0,   // 12: hailo.broker.DeviceGetDefaultStreamsInterfaceRequest.identifier:type_name -> hailo.broker.DeviceIdentifier
	1,   // 13: hailo.broker.NetworkGroupIdentifierRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 14: hailo.broker.NetworkGroupDupHandleRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 15: hailo.broker.NetworkGroupReleaseRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 16: hailo.broker.NetworkGroupNameRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 17: hailo.broker.NetworkGroupGetNetworkInfosRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	20,  // 18: hailo.broker.NetworkGroupGetNetworkInfosReply.infos:type_name -> hailo.broker.NetworkInfo
	1,   // 19: hailo.broker.NetworkGroupGetAllStreamInfosRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	18,  // 20: hailo.broker.NetworkGroupGetAllStreamInfosReply.infos:type_name -> hailo.broker.StreamInfo
	1,   // 21: hailo.broker.NetworkGroupGetDefaultStreamInterfaceRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 22: hailo.broker.MakeVStreamParamsRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	76,  // 23: hailo.broker.VStreamParamsMap.params:type_name -> hailo.broker.VStreamParamsMap.ParamsEntry
	77,  // 24: hailo.broker.VStreamParamsMapReply.params:type_name -> hailo.broker.VStreamParamsMapReply.ParamsEntry
	46,  // 25: hailo.broker.VStreamParamsGroupsReply.groups:type_name -> hailo.broker.VStreamParamsMap
	49,  // 26: hailo.broker.OutputVStreamGroupsReply.groups:type_name -> hailo.broker.OutputVStreamGroup
	1,   // 27: hailo.broker.VStreamInfosRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	19,  // 28: hailo.broker.VStreamInfosReply.infos:type_name -> hailo.broker.VStreamInfo
	1,   // 29: hailo.broker.SetSchedulerTimeoutRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 30: hailo.broker.SetSchedulerThresholdRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 31: hailo.broker.SetSchedulerPriorityRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 32: hailo.broker.GetLatencyMeasurementRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	23,  // 33: hailo.broker.GetConfigParamsReply.params:type_name -> hailo.broker.ConfigureParams
	1,   // 34: hailo.broker.GetStreamNamesFromVstreamNameRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 35: hailo.broker.GetVstreamNamesFromStreamNameRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	1,   // 36: hailo.broker.CreateVStreamsRequest.identifier:type_name -> hailo.broker.NetworkGroupIdentifier
	78,  // 37: hailo.broker.CreateVStreamsRequest.params:type_name -> hailo.broker.CreateVStreamsRequest.ParamsEntry
	2,   // 38: hailo.broker.VStreamDupHandleRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 39: hailo.broker.VStreamReleaseRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 40: hailo.broker.VStreamIdentifierRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 41: hailo.broker.InputVStreamWriteRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 42: hailo.broker.InputVStreamWritePixRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 43: hailo.broker.OutputVStreamReadRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	19,  // 44: hailo.broker.VStreamInfoReply.info:type_name -> hailo.broker.VStreamInfo
	2,   // 45: hailo.broker.SetNmsScoreThresholdRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 46: hailo.broker.SetNmsIouThresholdRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	2,   // 47: hailo.broker.SetNmsMaxProposalsRequest.identifier:type_name -> hailo.broker.VStreamIdentifier
	21,  // 48: hailo.broker.ConfigureParams.StreamParamsEntry.value:type_name -> hailo.broker.StreamParams
	22,  // 49: hailo.broker.ConfigureParams.NetworkParamsEntry.value:type_name -> hailo.broker.NetworkParams
	25,  // 50: hailo.broker.VStreamParamsMap.ParamsEntry.value:type_name -> hailo.broker.VStreamParams
	25,  // 51: hailo.broker.VStreamParamsMapReply.ParamsEntry.value:type_name -> hailo.broker.VStreamParams
	25,  // 52: hailo.broker.CreateVStreamsRequest.ParamsEntry.value:type_name -> hailo.broker.VStreamParams
	12,  // 53: hailo.broker.BrokerService.ClientKeepAlive:input_type -> hailo.broker.KeepAliveRequest
	14,  // 54: hailo.broker.BrokerService.GetServiceVersion:input_type -> hailo.broker.GetServiceVersionRequest
	27,  // 55: hailo.broker.BrokerService.DeviceCreate:input_type -> hailo.broker.DeviceCreateRequest
	29,  // 56: hailo.broker.BrokerService.DeviceRelease:input_type -> hailo.broker.DeviceReleaseRequest
	30,  // 57: hailo.broker.BrokerService.DeviceConfigure:input_type -> hailo.broker.DeviceConfigureRequest
	32,  // 58: hailo.broker.BrokerService.DeviceGetPhysicalDevicesIds:input_type -> hailo.broker.DeviceGetPhysicalDevicesIdsRequest
	34,  // 59: hailo.broker.BrokerService.DeviceGetDefaultStreamsInterface:input_type -> hailo.broker.DeviceGetDefaultStreamsInterfaceRequest
	36,  // 60: hailo.broker.BrokerService.NetworkGroupDupHandle:input_type -> hailo.broker.NetworkGroupDupHandleRequest
	37,  // 61: hailo.broker.BrokerService.NetworkGroupRelease:input_type -> hailo.broker.NetworkGroupReleaseRequest
	38,  // 62: hailo.broker.BrokerService.NetworkGroupName:input_type -> hailo.broker.NetworkGroupNameRequest
	40,  // 63: hailo.broker.BrokerService.NetworkGroupGetNetworkInfos:input_type -> hailo.broker.NetworkGroupGetNetworkInfosRequest
	42,  // 64: hailo.broker.BrokerService.NetworkGroupGetAllStreamInfos:input_type -> hailo.broker.NetworkGroupGetAllStreamInfosRequest
	44,  // 65: hailo.broker.BrokerService.NetworkGroupGetDefaultStreamInterface:input_type -> hailo.broker.NetworkGroupGetDefaultStreamInterfaceRequest
	45,  // 66: hailo.broker.BrokerService.NetworkGroupMakeInputVStreamParams:input_type -> hailo.broker.MakeVStreamParamsRequest
	45,  // 67: hailo.broker.BrokerService.NetworkGroupMakeOutputVStreamParams:input_type -> hailo.broker.MakeVStreamParamsRequest
	45,  // 68: hailo.broker.BrokerService.NetworkGroupMakeOutputVStreamParamsGroups:input_type -> hailo.broker.MakeVStreamParamsRequest
	35,  // 69: hailo.broker.BrokerService.NetworkGroupGetOutputVStreamGroups:input_type -> hailo.broker.NetworkGroupIdentifierRequest
	51,  // 70: hailo.broker.BrokerService.NetworkGroupGetInputVStreamInfos:input_type -> hailo.broker.VStreamInfosRequest
	51,  // 71: hailo.broker.BrokerService.NetworkGroupGetOutputVStreamInfos:input_type -> hailo.broker.VStreamInfosRequest
	51,  // 72: hailo.broker.BrokerService.NetworkGroupGetAllVStreamInfos:input_type -> hailo.broker.VStreamInfosRequest
	35,  // 73: hailo.broker.BrokerService.NetworkGroupIsScheduled:input_type -> hailo.broker.NetworkGroupIdentifierRequest
	53,  // 74: hailo.broker.BrokerService.NetworkGroupSetSchedulerTimeout:input_type -> hailo.broker.SetSchedulerTimeoutRequest
	54,  // 75: hailo.broker.BrokerService.NetworkGroupSetSchedulerThreshold:input_type -> hailo.broker.SetSchedulerThresholdRequest
	55,  // 76: hailo.broker.BrokerService.NetworkGroupSetSchedulerPriority:input_type -> hailo.broker.SetSchedulerPriorityRequest
	56,  // 77: hailo.broker.BrokerService.NetworkGroupGetLatencyMeasurement:input_type -> hailo.broker.GetLatencyMeasurementRequest
	35,  // 78: hailo.broker.BrokerService.NetworkGroupIsMultiContext:input_type -> hailo.broker.NetworkGroupIdentifierRequest
	35,  // 79: hailo.broker.BrokerService.NetworkGroupGetConfigParams:input_type -> hailo.broker.NetworkGroupIdentifierRequest
	35,  // 80: hailo.broker.BrokerService.NetworkGroupGetSortedOutputNames:input_type -> hailo.broker.NetworkGroupIdentifierRequest
	59,  // 81: hailo.broker.BrokerService.NetworkGroupGetStreamNamesFromVstreamName:input_type -> hailo.broker.GetStreamNamesFromVstreamNameRequest
	60,  // 82: hailo.broker.BrokerService.NetworkGroupGetVstreamNamesFromStreamName:input_type -> hailo.broker.GetVstreamNamesFromStreamNameRequest
	61,  // 83: hailo.broker.BrokerService.InputVStreamsCreate:input_type -> hailo.broker.CreateVStreamsRequest
	61,  // 84: hailo.broker.BrokerService.OutputVStreamsCreate:input_type -> hailo.broker.CreateVStreamsRequest
	63,  // 85: hailo.broker.BrokerService.InputVStreamDupHandle:input_type -> hailo.broker.VStreamDupHandleRequest
	64,  // 86: hailo.broker.BrokerService.InputVStreamRelease:input_type -> hailo.broker.VStreamReleaseRequest
	66,  // 87: hailo.broker.BrokerService.InputVStreamWrite:input_type -> hailo.broker.InputVStreamWriteRequest
	67,  // 88: hailo.broker.BrokerService.InputVStreamWritePix:input_type -> hailo.broker.InputVStreamWritePixRequest
	65,  // 89: hailo.broker.BrokerService.InputVStreamGetFrameSize:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 90: hailo.broker.BrokerService.InputVStreamFlush:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 91: hailo.broker.BrokerService.InputVStreamName:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 92: hailo.broker.BrokerService.InputVStreamNetworkName:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 93: hailo.broker.BrokerService.InputVStreamAbort:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 94: hailo.broker.BrokerService.InputVStreamResume:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 95: hailo.broker.BrokerService.InputVStreamStopAndClear:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 96: hailo.broker.BrokerService.InputVStreamStart:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 97: hailo.broker.BrokerService.InputVStreamGetUserBufferFormat:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 98: hailo.broker.BrokerService.InputVStreamGetInfo:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 99: hailo.broker.BrokerService.InputVStreamIsAborted:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 100: hailo.broker.BrokerService.InputVStreamIsMultiPlanar:input_type -> hailo.broker.VStreamIdentifierRequest
	63,  // 101: hailo.broker.BrokerService.OutputVStreamDupHandle:input_type -> hailo.broker.VStreamDupHandleRequest
	64,  // 102: hailo.broker.BrokerService.OutputVStreamRelease:input_type -> hailo.broker.VStreamReleaseRequest
	68,  // 103: hailo.broker.BrokerService.OutputVStreamRead:input_type -> hailo.broker.OutputVStreamReadRequest
	65,  // 104: hailo.broker.BrokerService.OutputVStreamGetFrameSize:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 105: hailo.broker.BrokerService.OutputVStreamName:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 106: hailo.broker.BrokerService.OutputVStreamNetworkName:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 107: hailo.broker.BrokerService.OutputVStreamAbort:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 108: hailo.broker.BrokerService.OutputVStreamResume:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 109: hailo.broker.BrokerService.OutputVStreamStopAndClear:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 110: hailo.broker.BrokerService.OutputVStreamStart:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 111: hailo.broker.BrokerService.OutputVStreamGetUserBufferFormat:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 112: hailo.broker.BrokerService.OutputVStreamGetInfo:input_type -> hailo.broker.VStreamIdentifierRequest
	65,  // 113: hailo.broker.BrokerService.OutputVStreamIsAborted:input_type -> hailo.broker.VStreamIdentifierRequest
	71,  // 114: hailo.broker.BrokerService.OutputVStreamSetNmsScoreThreshold:input_type -> hailo.broker.SetNmsScoreThresholdRequest
	72,  // 115: hailo.broker.BrokerService.OutputVStreamSetNmsIouThreshold:input_type -> hailo.broker.SetNmsIouThresholdRequest
	73,  // 116: hailo.broker.BrokerService.OutputVStreamSetNmsMaxProposalsPerClass:input_type -> hailo.broker.SetNmsMaxProposalsRequest
	13,  // 117: hailo.broker.BrokerService.ClientKeepAlive:output_type -> hailo.broker.KeepAliveReply
	16,  // 118: hailo.broker.BrokerService.GetServiceVersion:output_type -> hailo.broker.GetServiceVersionReply
	28,  // 119: hailo.broker.BrokerService.DeviceCreate:output_type -> hailo.broker.DeviceCreateReply
	4,   // 120: hailo.broker.BrokerService.DeviceRelease:output_type -> hailo.broker.ReleaseReply
	31,  // 121: hailo.broker.BrokerService.DeviceConfigure:output_type -> hailo.broker.DeviceConfigureReply
	33,  // 122: hailo.broker.BrokerService.DeviceGetPhysicalDevicesIds:output_type -> hailo.broker.DeviceGetPhysicalDevicesIdsReply
	11,  // 123: hailo.broker.BrokerService.DeviceGetDefaultStreamsInterface:output_type -> hailo.broker.StreamInterfaceReply
	5,   // 124: hailo.broker.BrokerService.NetworkGroupDupHandle:output_type -> hailo.broker.DupHandleReply
	4,   // 125: hailo.broker.BrokerService.NetworkGroupRelease:output_type -> hailo.broker.ReleaseReply
	39,  // 126: hailo.broker.BrokerService.NetworkGroupName:output_type -> hailo.broker.NetworkGroupNameReply
	41,  // 127: hailo.broker.BrokerService.NetworkGroupGetNetworkInfos:output_type -> hailo.broker.NetworkGroupGetNetworkInfosReply
	43,  // 128: hailo.broker.BrokerService.NetworkGroupGetAllStreamInfos:output_type -> hailo.broker.NetworkGroupGetAllStreamInfosReply
	11,  // 129: hailo.broker.BrokerService.NetworkGroupGetDefaultStreamInterface:output_type -> hailo.broker.StreamInterfaceReply
	47,  // 130: hailo.broker.BrokerService.NetworkGroupMakeInputVStreamParams:output_type -> hailo.broker.VStreamParamsMapReply
	47,  // 131: hailo.broker.BrokerService.NetworkGroupMakeOutputVStreamParams:output_type -> hailo.broker.VStreamParamsMapReply
	48,  // 132: hailo.broker.BrokerService.NetworkGroupMakeOutputVStreamParamsGroups:output_type -> hailo.broker.VStreamParamsGroupsReply
	50,  // 133: hailo.broker.BrokerService.NetworkGroupGetOutputVStreamGroups:output_type -> hailo.broker.OutputVStreamGroupsReply
	52,  // 134: hailo.broker.BrokerService.NetworkGroupGetInputVStreamInfos:output_type -> hailo.broker.VStreamInfosReply
	52,  // 135: hailo.broker.BrokerService.NetworkGroupGetOutputVStreamInfos:output_type -> hailo.broker.VStreamInfosReply
	52,  // 136: hailo.broker.BrokerService.NetworkGroupGetAllVStreamInfos:output_type -> hailo.broker.VStreamInfosReply
	6,   // 137: hailo.broker.BrokerService.NetworkGroupIsScheduled:output_type -> hailo.broker.BoolReply
	3,   // 138: hailo.broker.BrokerService.NetworkGroupSetSchedulerTimeout:output_type -> hailo.broker.StatusReply
	3,   // 139: hailo.broker.BrokerService.NetworkGroupSetSchedulerThreshold:output_type -> hailo.broker.StatusReply
	3,   // 140: hailo.broker.BrokerService.NetworkGroupSetSchedulerPriority:output_type -> hailo.broker.StatusReply
	57,  // 141: hailo.broker.BrokerService.NetworkGroupGetLatencyMeasurement:output_type -> hailo.broker.GetLatencyMeasurementReply
	6,   // 142: hailo.broker.BrokerService.NetworkGroupIsMultiContext:output_type -> hailo.broker.BoolReply
	58,  // 143: hailo.broker.BrokerService.NetworkGroupGetConfigParams:output_type -> hailo.broker.GetConfigParamsReply
	8,   // 144: hailo.broker.BrokerService.NetworkGroupGetSortedOutputNames:output_type -> hailo.broker.NamesReply
	8,   // 145: hailo.broker.BrokerService.NetworkGroupGetStreamNamesFromVstreamName:output_type -> hailo.broker.NamesReply
	8,   // 146: hailo.broker.BrokerService.NetworkGroupGetVstreamNamesFromStreamName:output_type -> hailo.broker.NamesReply
	62,  // 147: hailo.broker.BrokerService.InputVStreamsCreate:output_type -> hailo.broker.CreateVStreamsReply
	62,  // 148: hailo.broker.BrokerService.OutputVStreamsCreate:output_type -> hailo.broker.CreateVStreamsReply
	5,   // 149: hailo.broker.BrokerService.InputVStreamDupHandle:output_type -> hailo.broker.DupHandleReply
	4,   // 150: hailo.broker.BrokerService.InputVStreamRelease:output_type -> hailo.broker.ReleaseReply
	3,   // 151: hailo.broker.BrokerService.InputVStreamWrite:output_type -> hailo.broker.StatusReply
	3,   // 152: hailo.broker.BrokerService.InputVStreamWritePix:output_type -> hailo.broker.StatusReply
	9,   // 153: hailo.broker.BrokerService.InputVStreamGetFrameSize:output_type -> hailo.broker.FrameSizeReply
	3,   // 154: hailo.broker.BrokerService.InputVStreamFlush:output_type -> hailo.broker.StatusReply
	7,   // 155: hailo.broker.BrokerService.InputVStreamName:output_type -> hailo.broker.NameReply
	7,   // 156: hailo.broker.BrokerService.InputVStreamNetworkName:output_type -> hailo.broker.NameReply
	3,   // 157: hailo.broker.BrokerService.InputVStreamAbort:output_type -> hailo.broker.StatusReply
	3,   // 158: hailo.broker.BrokerService.InputVStreamResume:output_type -> hailo.broker.StatusReply
	3,   // 159: hailo.broker.BrokerService.InputVStreamStopAndClear:output_type -> hailo.broker.StatusReply
	3,   // 160: hailo.broker.BrokerService.InputVStreamStart:output_type -> hailo.broker.StatusReply
	10,  // 161: hailo.broker.BrokerService.InputVStreamGetUserBufferFormat:output_type -> hailo.broker.FormatReply
	70,  // 162: hailo.broker.BrokerService.InputVStreamGetInfo:output_type -> hailo.broker.VStreamInfoReply
	6,   // 163: hailo.broker.BrokerService.InputVStreamIsAborted:output_type -> hailo.broker.BoolReply
	6,   // 164: hailo.broker.BrokerService.InputVStreamIsMultiPlanar:output_type -> hailo.broker.BoolReply
	5,   // 165: hailo.broker.BrokerService.OutputVStreamDupHandle:output_type -> hailo.broker.DupHandleReply
	4,   // 166: hailo.broker.BrokerService.OutputVStreamRelease:output_type -> hailo.broker.ReleaseReply
	69,  // 167: hailo.broker.BrokerService.OutputVStreamRead:output_type -> hailo.broker.OutputVStreamReadReply
	9,   // 168: hailo.broker.BrokerService.OutputVStreamGetFrameSize:output_type -> hailo.broker.FrameSizeReply
	7,   // 169: hailo.broker.BrokerService.OutputVStreamName:output_type -> hailo.broker.NameReply
	7,   // 170: hailo.broker.BrokerService.OutputVStreamNetworkName:output_type -> hailo.broker.NameReply
	3,   // 171: hailo.broker.BrokerService.OutputVStreamAbort:output_type -> hailo.broker.StatusReply
	3,   // 172: hailo.broker.BrokerService.OutputVStreamResume:output_type -> hailo.broker.StatusReply
	3,   // 173: hailo.broker.BrokerService.OutputVStreamStopAndClear:output_type -> hailo.broker.StatusReply
	3,   // 174: hailo.broker.BrokerService.OutputVStreamStart:output_type -> hailo.broker.StatusReply
	10,  // 175: hailo.broker.BrokerService.OutputVStreamGetUserBufferFormat:output_type -> hailo.broker.FormatReply
	70,  // 176: hailo.broker.BrokerService.OutputVStreamGetInfo:output_type -> hailo.broker.VStreamInfoReply
	6,   // 177: hailo.broker.BrokerService.OutputVStreamIsAborted:output_type -> hailo.broker.BoolReply
	3,   // 178: hailo.broker.BrokerService.OutputVStreamSetNmsScoreThreshold:output_type -> hailo.broker.StatusReply
	3,   // 179: hailo.broker.BrokerService.OutputVStreamSetNmsIouThreshold:output_type -> hailo.broker.StatusReply
	3,   // 180: hailo.broker.BrokerService.OutputVStreamSetNmsMaxProposalsPerClass:output_type -> hailo.broker.StatusReply
	117, // [117:181] is the sub-list for method output_type
	53,  // [53:117] is the sub-list for method input_type
	53,  // [53:53] is the sub-list for extension type_name
	53,  // [53:53] is the sub-list for extension extendee
	0,   // [0:53] is the sub-list for field type_name
}

func init() { file_broker_proto_init() }
func file_broker_proto_init() {
	if File_broker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_broker_proto_rawDesc), len(file_broker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   79,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_broker_proto_goTypes,
		DependencyIndexes: file_broker_proto_depIdxs,
		MessageInfos:      file_broker_proto_msgTypes,
	}.Build()
	File_broker_proto = out.File
	file_broker_proto_goTypes = nil
	file_broker_proto_depIdxs = nil
}
