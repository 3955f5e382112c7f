// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: broker.proto

package broker

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BrokerService_ClientKeepAlive_FullMethodName                           = "/hailo.broker.BrokerService/ClientKeepAlive"
	BrokerService_GetServiceVersion_FullMethodName                         = "/hailo.broker.BrokerService/GetServiceVersion"
	BrokerService_DeviceCreate_FullMethodName                              = "/hailo.broker.BrokerService/DeviceCreate"
	BrokerService_DeviceRelease_FullMethodName                             = "/hailo.broker.BrokerService/DeviceRelease"
	BrokerService_DeviceConfigure_FullMethodName                           = "/hailo.broker.BrokerService/DeviceConfigure"
	BrokerService_DeviceGetPhysicalDevicesIds_FullMethodName               = "/hailo.broker.BrokerService/DeviceGetPhysicalDevicesIds"
	BrokerService_DeviceGetDefaultStreamsInterface_FullMethodName          = "/hailo.broker.BrokerService/DeviceGetDefaultStreamsInterface"
	BrokerService_NetworkGroupDupHandle_FullMethodName                     = "/hailo.broker.BrokerService/NetworkGroupDupHandle"
	BrokerService_NetworkGroupRelease_FullMethodName                       = "/hailo.broker.BrokerService/NetworkGroupRelease"
	BrokerService_NetworkGroupName_FullMethodName                          = "/hailo.broker.BrokerService/NetworkGroupName"
	BrokerService_NetworkGroupGetNetworkInfos_FullMethodName               = "/hailo.broker.BrokerService/NetworkGroupGetNetworkInfos"
	BrokerService_NetworkGroupGetAllStreamInfos_FullMethodName             = "/hailo.broker.BrokerService/NetworkGroupGetAllStreamInfos"
	BrokerService_NetworkGroupGetDefaultStreamInterface_FullMethodName     = "/hailo.broker.BrokerService/NetworkGroupGetDefaultStreamInterface"
	BrokerService_NetworkGroupMakeInputVStreamParams_FullMethodName        = "/hailo.broker.BrokerService/NetworkGroupMakeInputVStreamParams"
	BrokerService_NetworkGroupMakeOutputVStreamParams_FullMethodName       = "/hailo.broker.BrokerService/NetworkGroupMakeOutputVStreamParams"
	BrokerService_NetworkGroupMakeOutputVStreamParamsGroups_FullMethodName = "/hailo.broker.BrokerService/NetworkGroupMakeOutputVStreamParamsGroups"
	BrokerService_NetworkGroupGetOutputVStreamGroups_FullMethodName        = "/hailo.broker.BrokerService/NetworkGroupGetOutputVStreamGroups"
	BrokerService_NetworkGroupGetInputVStreamInfos_FullMethodName          = "/hailo.broker.BrokerService/NetworkGroupGetInputVStreamInfos"
	BrokerService_NetworkGroupGetOutputVStreamInfos_FullMethodName         = "/hailo.broker.BrokerService/NetworkGroupGetOutputVStreamInfos"
	BrokerService_NetworkGroupGetAllVStreamInfos_FullMethodName            = "/hailo.broker.BrokerService/NetworkGroupGetAllVStreamInfos"
	BrokerService_NetworkGroupIsScheduled_FullMethodName                   = "/hailo.broker.BrokerService/NetworkGroupIsScheduled"
	BrokerService_NetworkGroupSetSchedulerTimeout_FullMethodName           = "/hailo.broker.BrokerService/NetworkGroupSetSchedulerTimeout"
	BrokerService_NetworkGroupSetSchedulerThreshold_FullMethodName         = "/hailo.broker.BrokerService/NetworkGroupSetSchedulerThreshold"
	BrokerService_NetworkGroupSetSchedulerPriority_FullMethodName          = "/hailo.broker.BrokerService/NetworkGroupSetSchedulerPriority"
	BrokerService_NetworkGroupGetLatencyMeasurement_FullMethodName         = "/hailo.broker.BrokerService/NetworkGroupGetLatencyMeasurement"
	BrokerService_NetworkGroupIsMultiContext_FullMethodName                = "/hailo.broker.BrokerService/NetworkGroupIsMultiContext"
	BrokerService_NetworkGroupGetConfigParams_FullMethodName               = "/hailo.broker.BrokerService/NetworkGroupGetConfigParams"
	BrokerService_NetworkGroupGetSortedOutputNames_FullMethodName          = "/hailo.broker.BrokerService/NetworkGroupGetSortedOutputNames"
	BrokerService_NetworkGroupGetStreamNamesFromVstreamName_FullMethodName = "/hailo.broker.BrokerService/NetworkGroupGetStreamNamesFromVstreamName"
	BrokerService_NetworkGroupGetVstreamNamesFromStreamName_FullMethodName = "/hailo.broker.BrokerService/NetworkGroupGetVstreamNamesFromStreamName"
	BrokerService_InputVStreamsCreate_FullMethodName                       = "/hailo.broker.BrokerService/InputVStreamsCreate"
	BrokerService_OutputVStreamsCreate_FullMethodName                      = "/hailo.broker.BrokerService/OutputVStreamsCreate"
	BrokerService_InputVStreamDupHandle_FullMethodName                     = "/hailo.broker.BrokerService/InputVStreamDupHandle"
	BrokerService_InputVStreamRelease_FullMethodName                       = "/hailo.broker.BrokerService/InputVStreamRelease"
	BrokerService_InputVStreamWrite_FullMethodName                         = "/hailo.broker.BrokerService/InputVStreamWrite"
	BrokerService_InputVStreamWritePix_FullMethodName                      = "/hailo.broker.BrokerService/InputVStreamWritePix"
	BrokerService_InputVStreamGetFrameSize_FullMethodName                  = "/hailo.broker.BrokerService/InputVStreamGetFrameSize"
	BrokerService_InputVStreamFlush_FullMethodName                         = "/hailo.broker.BrokerService/InputVStreamFlush"
	BrokerService_InputVStreamName_FullMethodName                          = "/hailo.broker.BrokerService/InputVStreamName"
	BrokerService_InputVStreamNetworkName_FullMethodName                   = "/hailo.broker.BrokerService/InputVStreamNetworkName"
	BrokerService_InputVStreamAbort_FullMethodName                         = "/hailo.broker.BrokerService/InputVStreamAbort"
	BrokerService_InputVStreamResume_FullMethodName                        = "/hailo.broker.BrokerService/InputVStreamResume"
	BrokerService_InputVStreamStopAndClear_FullMethodName                  = "/hailo.broker.BrokerService/InputVStreamStopAndClear"
	BrokerService_InputVStreamStart_FullMethodName                         = "/hailo.broker.BrokerService/InputVStreamStart"
	BrokerService_InputVStreamGetUserBufferFormat_FullMethodName           = "/hailo.broker.BrokerService/InputVStreamGetUserBufferFormat"
	BrokerService_InputVStreamGetInfo_FullMethodName                       = "/hailo.broker.BrokerService/InputVStreamGetInfo"
	BrokerService_InputVStreamIsAborted_FullMethodName                     = "/hailo.broker.BrokerService/InputVStreamIsAborted"
	BrokerService_InputVStreamIsMultiPlanar_FullMethodName                 = "/hailo.broker.BrokerService/InputVStreamIsMultiPlanar"
	BrokerService_OutputVStreamDupHandle_FullMethodName                    = "/hailo.broker.BrokerService/OutputVStreamDupHandle"
	BrokerService_OutputVStreamRelease_FullMethodName                      = "/hailo.broker.BrokerService/OutputVStreamRelease"
	BrokerService_OutputVStreamRead_FullMethodName                         = "/hailo.broker.BrokerService/OutputVStreamRead"
	BrokerService_OutputVStreamGetFrameSize_FullMethodName                 = "/hailo.broker.BrokerService/OutputVStreamGetFrameSize"
	BrokerService_OutputVStreamName_FullMethodName                         = "/hailo.broker.BrokerService/OutputVStreamName"
	BrokerService_OutputVStreamNetworkName_FullMethodName                  = "/hailo.broker.BrokerService/OutputVStreamNetworkName"
	BrokerService_OutputVStreamAbort_FullMethodName                        = "/hailo.broker.BrokerService/OutputVStreamAbort"
	BrokerService_OutputVStreamResume_FullMethodName                       = "/hailo.broker.BrokerService/OutputVStreamResume"
	BrokerService_OutputVStreamStopAndClear_FullMethodName                 = "/hailo.broker.BrokerService/OutputVStreamStopAndClear"
	BrokerService_OutputVStreamStart_FullMethodName                        = "/hailo.broker.BrokerService/OutputVStreamStart"
	BrokerService_OutputVStreamGetUserBufferFormat_FullMethodName          = "/hailo.broker.BrokerService/OutputVStreamGetUserBufferFormat"
	BrokerService_OutputVStreamGetInfo_FullMethodName                      = "/hailo.broker.BrokerService/OutputVStreamGetInfo"
	BrokerService_OutputVStreamIsAborted_FullMethodName                    = "/hailo.broker.BrokerService/OutputVStreamIsAborted"
	BrokerService_OutputVStreamSetNmsScoreThreshold_FullMethodName         = "/hailo.broker.BrokerService/OutputVStreamSetNmsScoreThreshold"
	BrokerService_OutputVStreamSetNmsIouThreshold_FullMethodName           = "/hailo.broker.BrokerService/OutputVStreamSetNmsIouThreshold"
	BrokerService_OutputVStreamSetNmsMaxProposalsPerClass_FullMethodName   = "/hailo.broker.BrokerService/OutputVStreamSetNmsMaxProposalsPerClass"
)

// BrokerServiceClient is the client API for BrokerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BrokerService is the cross-process resource broker: device ownership,
// network-group configuration, and vstream data movement. Every reply
// carries a runtime status code; failures never travel as transport
// errors. Mutating calls carry the caller pid for liveness accounting.
type BrokerServiceClient interface {
	ClientKeepAlive(ctx context.Context, in *KeepAliveRequest, opts ...grpc.CallOption) (*KeepAliveReply, error)
	GetServiceVersion(ctx context.Context, in *GetServiceVersionRequest, opts ...grpc.CallOption) (*GetServiceVersionReply, error)
	DeviceCreate(ctx context.Context, in *DeviceCreateRequest, opts ...grpc.CallOption) (*DeviceCreateReply, error)
	DeviceRelease(ctx context.Context, in *DeviceReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error)
	DeviceConfigure(ctx context.Context, in *DeviceConfigureRequest, opts ...grpc.CallOption) (*DeviceConfigureReply, error)
	DeviceGetPhysicalDevicesIds(ctx context.Context, in *DeviceGetPhysicalDevicesIdsRequest, opts ...grpc.CallOption) (*DeviceGetPhysicalDevicesIdsReply, error)
	DeviceGetDefaultStreamsInterface(ctx context.Context, in *DeviceGetDefaultStreamsInterfaceRequest, opts ...grpc.CallOption) (*StreamInterfaceReply, error)
	NetworkGroupDupHandle(ctx context.Context, in *NetworkGroupDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error)
	NetworkGroupRelease(ctx context.Context, in *NetworkGroupReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error)
	NetworkGroupName(ctx context.Context, in *NetworkGroupNameRequest, opts ...grpc.CallOption) (*NetworkGroupNameReply, error)
	NetworkGroupGetNetworkInfos(ctx context.Context, in *NetworkGroupGetNetworkInfosRequest, opts ...grpc.CallOption) (*NetworkGroupGetNetworkInfosReply, error)
	NetworkGroupGetAllStreamInfos(ctx context.Context, in *NetworkGroupGetAllStreamInfosRequest, opts ...grpc.CallOption) (*NetworkGroupGetAllStreamInfosReply, error)
	NetworkGroupGetDefaultStreamInterface(ctx context.Context, in *NetworkGroupGetDefaultStreamInterfaceRequest, opts ...grpc.CallOption) (*StreamInterfaceReply, error)
	NetworkGroupMakeInputVStreamParams(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsMapReply, error)
	NetworkGroupMakeOutputVStreamParams(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsMapReply, error)
	NetworkGroupMakeOutputVStreamParamsGroups(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsGroupsReply, error)
	NetworkGroupGetOutputVStreamGroups(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*OutputVStreamGroupsReply, error)
	NetworkGroupGetInputVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error)
	NetworkGroupGetOutputVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error)
	NetworkGroupGetAllVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error)
	NetworkGroupIsScheduled(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error)
	NetworkGroupSetSchedulerTimeout(ctx context.Context, in *SetSchedulerTimeoutRequest, opts ...grpc.CallOption) (*StatusReply, error)
	NetworkGroupSetSchedulerThreshold(ctx context.Context, in *SetSchedulerThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error)
	NetworkGroupSetSchedulerPriority(ctx context.Context, in *SetSchedulerPriorityRequest, opts ...grpc.CallOption) (*StatusReply, error)
	NetworkGroupGetLatencyMeasurement(ctx context.Context, in *GetLatencyMeasurementRequest, opts ...grpc.CallOption) (*GetLatencyMeasurementReply, error)
	NetworkGroupIsMultiContext(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error)
	NetworkGroupGetConfigParams(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*GetConfigParamsReply, error)
	NetworkGroupGetSortedOutputNames(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*NamesReply, error)
	NetworkGroupGetStreamNamesFromVstreamName(ctx context.Context, in *GetStreamNamesFromVstreamNameRequest, opts ...grpc.CallOption) (*NamesReply, error)
	NetworkGroupGetVstreamNamesFromStreamName(ctx context.Context, in *GetVstreamNamesFromStreamNameRequest, opts ...grpc.CallOption) (*NamesReply, error)
	InputVStreamsCreate(ctx context.Context, in *CreateVStreamsRequest, opts ...grpc.CallOption) (*CreateVStreamsReply, error)
	OutputVStreamsCreate(ctx context.Context, in *CreateVStreamsRequest, opts ...grpc.CallOption) (*CreateVStreamsReply, error)
	InputVStreamDupHandle(ctx context.Context, in *VStreamDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error)
	InputVStreamRelease(ctx context.Context, in *VStreamReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error)
	InputVStreamWrite(ctx context.Context, in *InputVStreamWriteRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamWritePix(ctx context.Context, in *InputVStreamWritePixRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamGetFrameSize(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FrameSizeReply, error)
	InputVStreamFlush(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error)
	InputVStreamNetworkName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error)
	InputVStreamAbort(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamResume(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamStopAndClear(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamStart(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	InputVStreamGetUserBufferFormat(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FormatReply, error)
	InputVStreamGetInfo(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*VStreamInfoReply, error)
	InputVStreamIsAborted(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error)
	InputVStreamIsMultiPlanar(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error)
	OutputVStreamDupHandle(ctx context.Context, in *VStreamDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error)
	OutputVStreamRelease(ctx context.Context, in *VStreamReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error)
	OutputVStreamRead(ctx context.Context, in *OutputVStreamReadRequest, opts ...grpc.CallOption) (*OutputVStreamReadReply, error)
	OutputVStreamGetFrameSize(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FrameSizeReply, error)
	OutputVStreamName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error)
	OutputVStreamNetworkName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error)
	OutputVStreamAbort(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamResume(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamStopAndClear(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamStart(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamGetUserBufferFormat(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FormatReply, error)
	OutputVStreamGetInfo(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*VStreamInfoReply, error)
	OutputVStreamIsAborted(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error)
	OutputVStreamSetNmsScoreThreshold(ctx context.Context, in *SetNmsScoreThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamSetNmsIouThreshold(ctx context.Context, in *SetNmsIouThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error)
	OutputVStreamSetNmsMaxProposalsPerClass(ctx context.Context, in *SetNmsMaxProposalsRequest, opts ...grpc.CallOption) (*StatusReply, error)
}

type brokerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBrokerServiceClient(cc grpc.ClientConnInterface) BrokerServiceClient {
	return &brokerServiceClient{cc}
}

func (c *brokerServiceClient) ClientKeepAlive(ctx context.Context, in *KeepAliveRequest, opts ...grpc.CallOption) (*KeepAliveReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(KeepAliveReply)
	err := c.cc.Invoke(ctx, BrokerService_ClientKeepAlive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) GetServiceVersion(ctx context.Context, in *GetServiceVersionRequest, opts ...grpc.CallOption) (*GetServiceVersionReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetServiceVersionReply)
	err := c.cc.Invoke(ctx, BrokerService_GetServiceVersion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) DeviceCreate(ctx context.Context, in *DeviceCreateRequest, opts ...grpc.CallOption) (*DeviceCreateReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeviceCreateReply)
	err := c.cc.Invoke(ctx, BrokerService_DeviceCreate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) DeviceRelease(ctx context.Context, in *DeviceReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseReply)
	err := c.cc.Invoke(ctx, BrokerService_DeviceRelease_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) DeviceConfigure(ctx context.Context, in *DeviceConfigureRequest, opts ...grpc.CallOption) (*DeviceConfigureReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeviceConfigureReply)
	err := c.cc.Invoke(ctx, BrokerService_DeviceConfigure_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) DeviceGetPhysicalDevicesIds(ctx context.Context, in *DeviceGetPhysicalDevicesIdsRequest, opts ...grpc.CallOption) (*DeviceGetPhysicalDevicesIdsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeviceGetPhysicalDevicesIdsReply)
	err := c.cc.Invoke(ctx, BrokerService_DeviceGetPhysicalDevicesIds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) DeviceGetDefaultStreamsInterface(ctx context.Context, in *DeviceGetDefaultStreamsInterfaceRequest, opts ...grpc.CallOption) (*StreamInterfaceReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StreamInterfaceReply)
	err := c.cc.Invoke(ctx, BrokerService_DeviceGetDefaultStreamsInterface_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupDupHandle(ctx context.Context, in *NetworkGroupDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DupHandleReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupDupHandle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupRelease(ctx context.Context, in *NetworkGroupReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupRelease_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupName(ctx context.Context, in *NetworkGroupNameRequest, opts ...grpc.CallOption) (*NetworkGroupNameReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NetworkGroupNameReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetNetworkInfos(ctx context.Context, in *NetworkGroupGetNetworkInfosRequest, opts ...grpc.CallOption) (*NetworkGroupGetNetworkInfosReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NetworkGroupGetNetworkInfosReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetNetworkInfos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetAllStreamInfos(ctx context.Context, in *NetworkGroupGetAllStreamInfosRequest, opts ...grpc.CallOption) (*NetworkGroupGetAllStreamInfosReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NetworkGroupGetAllStreamInfosReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetAllStreamInfos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetDefaultStreamInterface(ctx context.Context, in *NetworkGroupGetDefaultStreamInterfaceRequest, opts ...grpc.CallOption) (*StreamInterfaceReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StreamInterfaceReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetDefaultStreamInterface_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupMakeInputVStreamParams(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsMapReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamParamsMapReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupMakeInputVStreamParams_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupMakeOutputVStreamParams(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsMapReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamParamsMapReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupMakeOutputVStreamParams_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupMakeOutputVStreamParamsGroups(ctx context.Context, in *MakeVStreamParamsRequest, opts ...grpc.CallOption) (*VStreamParamsGroupsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamParamsGroupsReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupMakeOutputVStreamParamsGroups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetOutputVStreamGroups(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*OutputVStreamGroupsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OutputVStreamGroupsReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetOutputVStreamGroups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetInputVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamInfosReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetInputVStreamInfos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetOutputVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamInfosReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetOutputVStreamInfos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetAllVStreamInfos(ctx context.Context, in *VStreamInfosRequest, opts ...grpc.CallOption) (*VStreamInfosReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamInfosReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetAllVStreamInfos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupIsScheduled(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupIsScheduled_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupSetSchedulerTimeout(ctx context.Context, in *SetSchedulerTimeoutRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupSetSchedulerTimeout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupSetSchedulerThreshold(ctx context.Context, in *SetSchedulerThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupSetSchedulerThreshold_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupSetSchedulerPriority(ctx context.Context, in *SetSchedulerPriorityRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupSetSchedulerPriority_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetLatencyMeasurement(ctx context.Context, in *GetLatencyMeasurementRequest, opts ...grpc.CallOption) (*GetLatencyMeasurementReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatencyMeasurementReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetLatencyMeasurement_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupIsMultiContext(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupIsMultiContext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetConfigParams(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*GetConfigParamsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetConfigParamsReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetConfigParams_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetSortedOutputNames(ctx context.Context, in *NetworkGroupIdentifierRequest, opts ...grpc.CallOption) (*NamesReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NamesReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetSortedOutputNames_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetStreamNamesFromVstreamName(ctx context.Context, in *GetStreamNamesFromVstreamNameRequest, opts ...grpc.CallOption) (*NamesReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NamesReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetStreamNamesFromVstreamName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) NetworkGroupGetVstreamNamesFromStreamName(ctx context.Context, in *GetVstreamNamesFromStreamNameRequest, opts ...grpc.CallOption) (*NamesReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NamesReply)
	err := c.cc.Invoke(ctx, BrokerService_NetworkGroupGetVstreamNamesFromStreamName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamsCreate(ctx context.Context, in *CreateVStreamsRequest, opts ...grpc.CallOption) (*CreateVStreamsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateVStreamsReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamsCreate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamsCreate(ctx context.Context, in *CreateVStreamsRequest, opts ...grpc.CallOption) (*CreateVStreamsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateVStreamsReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamsCreate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamDupHandle(ctx context.Context, in *VStreamDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DupHandleReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamDupHandle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamRelease(ctx context.Context, in *VStreamReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamRelease_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamWrite(ctx context.Context, in *InputVStreamWriteRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamWrite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamWritePix(ctx context.Context, in *InputVStreamWritePixRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamWritePix_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamGetFrameSize(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FrameSizeReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FrameSizeReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamGetFrameSize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamFlush(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamFlush_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NameReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamNetworkName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NameReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamNetworkName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamAbort(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamAbort_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamResume(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamStopAndClear(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamStopAndClear_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamStart(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamStart_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamGetUserBufferFormat(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FormatReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FormatReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamGetUserBufferFormat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamGetInfo(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*VStreamInfoReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamInfoReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamGetInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamIsAborted(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamIsAborted_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) InputVStreamIsMultiPlanar(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, BrokerService_InputVStreamIsMultiPlanar_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamDupHandle(ctx context.Context, in *VStreamDupHandleRequest, opts ...grpc.CallOption) (*DupHandleReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DupHandleReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamDupHandle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamRelease(ctx context.Context, in *VStreamReleaseRequest, opts ...grpc.CallOption) (*ReleaseReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamRelease_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamRead(ctx context.Context, in *OutputVStreamReadRequest, opts ...grpc.CallOption) (*OutputVStreamReadReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OutputVStreamReadReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamRead_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamGetFrameSize(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FrameSizeReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FrameSizeReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamGetFrameSize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NameReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamNetworkName(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*NameReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NameReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamNetworkName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamAbort(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamAbort_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamResume(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamStopAndClear(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamStopAndClear_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamStart(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamStart_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamGetUserBufferFormat(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*FormatReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FormatReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamGetUserBufferFormat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamGetInfo(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*VStreamInfoReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VStreamInfoReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamGetInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamIsAborted(ctx context.Context, in *VStreamIdentifierRequest, opts ...grpc.CallOption) (*BoolReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamIsAborted_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamSetNmsScoreThreshold(ctx context.Context, in *SetNmsScoreThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamSetNmsScoreThreshold_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamSetNmsIouThreshold(ctx context.Context, in *SetNmsIouThresholdRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamSetNmsIouThreshold_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *brokerServiceClient) OutputVStreamSetNmsMaxProposalsPerClass(ctx context.Context, in *SetNmsMaxProposalsRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusReply)
	err := c.cc.Invoke(ctx, BrokerService_OutputVStreamSetNmsMaxProposalsPerClass_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BrokerServiceServer is the server API for BrokerService service.
// All implementations must embed UnimplementedBrokerServiceServer
// for forward compatibility.
//
// BrokerService is the cross-process resource broker: device ownership,
// network-group configuration, and vstream data movement. Every reply
// carries a runtime status code; failures never travel as transport
// errors. Mutating calls carry the caller pid for liveness accounting.
type BrokerServiceServer interface {
	ClientKeepAlive(context.Context, *KeepAliveRequest) (*KeepAliveReply, error)
	GetServiceVersion(context.Context, *GetServiceVersionRequest) (*GetServiceVersionReply, error)
	DeviceCreate(context.Context, *DeviceCreateRequest) (*DeviceCreateReply, error)
	DeviceRelease(context.Context, *DeviceReleaseRequest) (*ReleaseReply, error)
	DeviceConfigure(context.Context, *DeviceConfigureRequest) (*DeviceConfigureReply, error)
	DeviceGetPhysicalDevicesIds(context.Context, *DeviceGetPhysicalDevicesIdsRequest) (*DeviceGetPhysicalDevicesIdsReply, error)
	DeviceGetDefaultStreamsInterface(context.Context, *DeviceGetDefaultStreamsInterfaceRequest) (*StreamInterfaceReply, error)
	NetworkGroupDupHandle(context.Context, *NetworkGroupDupHandleRequest) (*DupHandleReply, error)
	NetworkGroupRelease(context.Context, *NetworkGroupReleaseRequest) (*ReleaseReply, error)
	NetworkGroupName(context.Context, *NetworkGroupNameRequest) (*NetworkGroupNameReply, error)
	NetworkGroupGetNetworkInfos(context.Context, *NetworkGroupGetNetworkInfosRequest) (*NetworkGroupGetNetworkInfosReply, error)
	NetworkGroupGetAllStreamInfos(context.Context, *NetworkGroupGetAllStreamInfosRequest) (*NetworkGroupGetAllStreamInfosReply, error)
	NetworkGroupGetDefaultStreamInterface(context.Context, *NetworkGroupGetDefaultStreamInterfaceRequest) (*StreamInterfaceReply, error)
	NetworkGroupMakeInputVStreamParams(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsMapReply, error)
	NetworkGroupMakeOutputVStreamParams(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsMapReply, error)
	NetworkGroupMakeOutputVStreamParamsGroups(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsGroupsReply, error)
	NetworkGroupGetOutputVStreamGroups(context.Context, *NetworkGroupIdentifierRequest) (*OutputVStreamGroupsReply, error)
	NetworkGroupGetInputVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error)
	NetworkGroupGetOutputVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error)
	NetworkGroupGetAllVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error)
	NetworkGroupIsScheduled(context.Context, *NetworkGroupIdentifierRequest) (*BoolReply, error)
	NetworkGroupSetSchedulerTimeout(context.Context, *SetSchedulerTimeoutRequest) (*StatusReply, error)
	NetworkGroupSetSchedulerThreshold(context.Context, *SetSchedulerThresholdRequest) (*StatusReply, error)
	NetworkGroupSetSchedulerPriority(context.Context, *SetSchedulerPriorityRequest) (*StatusReply, error)
	NetworkGroupGetLatencyMeasurement(context.Context, *GetLatencyMeasurementRequest) (*GetLatencyMeasurementReply, error)
	NetworkGroupIsMultiContext(context.Context, *NetworkGroupIdentifierRequest) (*BoolReply, error)
	NetworkGroupGetConfigParams(context.Context, *NetworkGroupIdentifierRequest) (*GetConfigParamsReply, error)
	NetworkGroupGetSortedOutputNames(context.Context, *NetworkGroupIdentifierRequest) (*NamesReply, error)
	NetworkGroupGetStreamNamesFromVstreamName(context.Context, *GetStreamNamesFromVstreamNameRequest) (*NamesReply, error)
	NetworkGroupGetVstreamNamesFromStreamName(context.Context, *GetVstreamNamesFromStreamNameRequest) (*NamesReply, error)
	InputVStreamsCreate(context.Context, *CreateVStreamsRequest) (*CreateVStreamsReply, error)
	OutputVStreamsCreate(context.Context, *CreateVStreamsRequest) (*CreateVStreamsReply, error)
	InputVStreamDupHandle(context.Context, *VStreamDupHandleRequest) (*DupHandleReply, error)
	InputVStreamRelease(context.Context, *VStreamReleaseRequest) (*ReleaseReply, error)
	InputVStreamWrite(context.Context, *InputVStreamWriteRequest) (*StatusReply, error)
	InputVStreamWritePix(context.Context, *InputVStreamWritePixRequest) (*StatusReply, error)
	InputVStreamGetFrameSize(context.Context, *VStreamIdentifierRequest) (*FrameSizeReply, error)
	InputVStreamFlush(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	InputVStreamName(context.Context, *VStreamIdentifierRequest) (*NameReply, error)
	InputVStreamNetworkName(context.Context, *VStreamIdentifierRequest) (*NameReply, error)
	InputVStreamAbort(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	InputVStreamResume(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	InputVStreamStopAndClear(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	InputVStreamStart(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	InputVStreamGetUserBufferFormat(context.Context, *VStreamIdentifierRequest) (*FormatReply, error)
	InputVStreamGetInfo(context.Context, *VStreamIdentifierRequest) (*VStreamInfoReply, error)
	InputVStreamIsAborted(context.Context, *VStreamIdentifierRequest) (*BoolReply, error)
	InputVStreamIsMultiPlanar(context.Context, *VStreamIdentifierRequest) (*BoolReply, error)
	OutputVStreamDupHandle(context.Context, *VStreamDupHandleRequest) (*DupHandleReply, error)
	OutputVStreamRelease(context.Context, *VStreamReleaseRequest) (*ReleaseReply, error)
	OutputVStreamRead(context.Context, *OutputVStreamReadRequest) (*OutputVStreamReadReply, error)
	OutputVStreamGetFrameSize(context.Context, *VStreamIdentifierRequest) (*FrameSizeReply, error)
	OutputVStreamName(context.Context, *VStreamIdentifierRequest) (*NameReply, error)
	OutputVStreamNetworkName(context.Context, *VStreamIdentifierRequest) (*NameReply, error)
	OutputVStreamAbort(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	OutputVStreamResume(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	OutputVStreamStopAndClear(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	OutputVStreamStart(context.Context, *VStreamIdentifierRequest) (*StatusReply, error)
	OutputVStreamGetUserBufferFormat(context.Context, *VStreamIdentifierRequest) (*FormatReply, error)
	OutputVStreamGetInfo(context.Context, *VStreamIdentifierRequest) (*VStreamInfoReply, error)
	OutputVStreamIsAborted(context.Context, *VStreamIdentifierRequest) (*BoolReply, error)
	OutputVStreamSetNmsScoreThreshold(context.Context, *SetNmsScoreThresholdRequest) (*StatusReply, error)
	OutputVStreamSetNmsIouThreshold(context.Context, *SetNmsIouThresholdRequest) (*StatusReply, error)
	OutputVStreamSetNmsMaxProposalsPerClass(context.Context, *SetNmsMaxProposalsRequest) (*StatusReply, error)
	mustEmbedUnimplementedBrokerServiceServer()
}

// UnimplementedBrokerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBrokerServiceServer struct{}

func (UnimplementedBrokerServiceServer) ClientKeepAlive(context.Context, *KeepAliveRequest) (*KeepAliveReply, error) {
	return nil, status.Error(codes.Unimplemented, "method ClientKeepAlive not implemented")
}
func (UnimplementedBrokerServiceServer) GetServiceVersion(context.Context, *GetServiceVersionRequest) (*GetServiceVersionReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetServiceVersion not implemented")
}
func (UnimplementedBrokerServiceServer) DeviceCreate(context.Context, *DeviceCreateRequest) (*DeviceCreateReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DeviceCreate not implemented")
}
func (UnimplementedBrokerServiceServer) DeviceRelease(context.Context, *DeviceReleaseRequest) (*ReleaseReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DeviceRelease not implemented")
}
func (UnimplementedBrokerServiceServer) DeviceConfigure(context.Context, *DeviceConfigureRequest) (*DeviceConfigureReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DeviceConfigure not implemented")
}
func (UnimplementedBrokerServiceServer) DeviceGetPhysicalDevicesIds(context.Context, *DeviceGetPhysicalDevicesIdsRequest) (*DeviceGetPhysicalDevicesIdsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DeviceGetPhysicalDevicesIds not implemented")
}
func (UnimplementedBrokerServiceServer) DeviceGetDefaultStreamsInterface(context.Context, *DeviceGetDefaultStreamsInterfaceRequest) (*StreamInterfaceReply, error) {
	return nil, status.Error(codes.Unimplemented, "method DeviceGetDefaultStreamsInterface not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupDupHandle(context.Context, *NetworkGroupDupHandleRequest) (*DupHandleReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupDupHandle not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupRelease(context.Context, *NetworkGroupReleaseRequest) (*ReleaseReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupRelease not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupName(context.Context, *NetworkGroupNameRequest) (*NetworkGroupNameReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupName not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetNetworkInfos(context.Context, *NetworkGroupGetNetworkInfosRequest) (*NetworkGroupGetNetworkInfosReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetNetworkInfos not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetAllStreamInfos(context.Context, *NetworkGroupGetAllStreamInfosRequest) (*NetworkGroupGetAllStreamInfosReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetAllStreamInfos not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetDefaultStreamInterface(context.Context, *NetworkGroupGetDefaultStreamInterfaceRequest) (*StreamInterfaceReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetDefaultStreamInterface not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupMakeInputVStreamParams(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsMapReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupMakeInputVStreamParams not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupMakeOutputVStreamParams(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsMapReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupMakeOutputVStreamParams not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupMakeOutputVStreamParamsGroups(context.Context, *MakeVStreamParamsRequest) (*VStreamParamsGroupsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupMakeOutputVStreamParamsGroups not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetOutputVStreamGroups(context.Context, *NetworkGroupIdentifierRequest) (*OutputVStreamGroupsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetOutputVStreamGroups not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetInputVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetInputVStreamInfos not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetOutputVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetOutputVStreamInfos not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetAllVStreamInfos(context.Context, *VStreamInfosRequest) (*VStreamInfosReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetAllVStreamInfos not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupIsScheduled(context.Context, *NetworkGroupIdentifierRequest) (*BoolReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupIsScheduled not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupSetSchedulerTimeout(context.Context, *SetSchedulerTimeoutRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupSetSchedulerTimeout not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupSetSchedulerThreshold(context.Context, *SetSchedulerThresholdRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupSetSchedulerThreshold not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupSetSchedulerPriority(context.Context, *SetSchedulerPriorityRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupSetSchedulerPriority not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetLatencyMeasurement(context.Context, *GetLatencyMeasurementRequest) (*GetLatencyMeasurementReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetLatencyMeasurement not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupIsMultiContext(context.Context, *NetworkGroupIdentifierRequest) (*BoolReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupIsMultiContext not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetConfigParams(context.Context, *NetworkGroupIdentifierRequest) (*GetConfigParamsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetConfigParams not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetSortedOutputNames(context.Context, *NetworkGroupIdentifierRequest) (*NamesReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetSortedOutputNames not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetStreamNamesFromVstreamName(context.Context, *GetStreamNamesFromVstreamNameRequest) (*NamesReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetStreamNamesFromVstreamName not implemented")
}
func (UnimplementedBrokerServiceServer) NetworkGroupGetVstreamNamesFromStreamName(context.Context, *GetVstreamNamesFromStreamNameRequest) (*NamesReply, error) {
	return nil, status.Error(codes.Unimplemented, "method NetworkGroupGetVstreamNamesFromStreamName not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamsCreate(context.Context, *CreateVStreamsRequest) (*CreateVStreamsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamsCreate not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamsCreate(context.Context, *CreateVStreamsRequest) (*CreateVStreamsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamsCreate not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamDupHandle(context.Context, *VStreamDupHandleRequest) (*DupHandleReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamDupHandle not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamRelease(context.Context, *VStreamReleaseRequest) (*ReleaseReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamRelease not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamWrite(context.Context, *InputVStreamWriteRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamWrite not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamWritePix(context.Context, *InputVStreamWritePixRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamWritePix not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamGetFrameSize(context.Context, *VStreamIdentifierRequest) (*FrameSizeReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamGetFrameSize not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamFlush(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamFlush not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamName(context.Context, *VStreamIdentifierRequest) (*NameReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamName not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamNetworkName(context.Context, *VStreamIdentifierRequest) (*NameReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamNetworkName not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamAbort(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamAbort not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamResume(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamResume not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamStopAndClear(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamStopAndClear not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamStart(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamStart not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamGetUserBufferFormat(context.Context, *VStreamIdentifierRequest) (*FormatReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamGetUserBufferFormat not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamGetInfo(context.Context, *VStreamIdentifierRequest) (*VStreamInfoReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamGetInfo not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamIsAborted(context.Context, *VStreamIdentifierRequest) (*BoolReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamIsAborted not implemented")
}
func (UnimplementedBrokerServiceServer) InputVStreamIsMultiPlanar(context.Context, *VStreamIdentifierRequest) (*BoolReply, error) {
	return nil, status.Error(codes.Unimplemented, "method InputVStreamIsMultiPlanar not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamDupHandle(context.Context, *VStreamDupHandleRequest) (*DupHandleReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamDupHandle not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamRelease(context.Context, *VStreamReleaseRequest) (*ReleaseReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamRelease not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamRead(context.Context, *OutputVStreamReadRequest) (*OutputVStreamReadReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamRead not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamGetFrameSize(context.Context, *VStreamIdentifierRequest) (*FrameSizeReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamGetFrameSize not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamName(context.Context, *VStreamIdentifierRequest) (*NameReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamName not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamNetworkName(context.Context, *VStreamIdentifierRequest) (*NameReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamNetworkName not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamAbort(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamAbort not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamResume(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamResume not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamStopAndClear(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamStopAndClear not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamStart(context.Context, *VStreamIdentifierRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamStart not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamGetUserBufferFormat(context.Context, *VStreamIdentifierRequest) (*FormatReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamGetUserBufferFormat not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamGetInfo(context.Context, *VStreamIdentifierRequest) (*VStreamInfoReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamGetInfo not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamIsAborted(context.Context, *VStreamIdentifierRequest) (*BoolReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamIsAborted not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamSetNmsScoreThreshold(context.Context, *SetNmsScoreThresholdRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamSetNmsScoreThreshold not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamSetNmsIouThreshold(context.Context, *SetNmsIouThresholdRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamSetNmsIouThreshold not implemented")
}
func (UnimplementedBrokerServiceServer) OutputVStreamSetNmsMaxProposalsPerClass(context.Context, *SetNmsMaxProposalsRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method OutputVStreamSetNmsMaxProposalsPerClass not implemented")
}
func (UnimplementedBrokerServiceServer) mustEmbedUnimplementedBrokerServiceServer() {}
func (UnimplementedBrokerServiceServer) testEmbeddedByValue()                       {}

// UnsafeBrokerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BrokerServiceServer will
// result in compilation errors.
type UnsafeBrokerServiceServer interface {
	mustEmbedUnimplementedBrokerServiceServer()
}

func RegisterBrokerServiceServer(s grpc.ServiceRegistrar, srv BrokerServiceServer) {
	// If the following call panics, it indicates UnimplementedBrokerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BrokerService_ServiceDesc, srv)
}

func _BrokerService_ClientKeepAlive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KeepAliveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).ClientKeepAlive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_ClientKeepAlive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).ClientKeepAlive(ctx, req.(*KeepAliveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_GetServiceVersion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetServiceVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).GetServiceVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_GetServiceVersion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).GetServiceVersion(ctx, req.(*GetServiceVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_DeviceCreate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceCreateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).DeviceCreate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_DeviceCreate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).DeviceCreate(ctx, req.(*DeviceCreateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_DeviceRelease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceReleaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).DeviceRelease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_DeviceRelease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).DeviceRelease(ctx, req.(*DeviceReleaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_DeviceConfigure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceConfigureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).DeviceConfigure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_DeviceConfigure_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).DeviceConfigure(ctx, req.(*DeviceConfigureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_DeviceGetPhysicalDevicesIds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceGetPhysicalDevicesIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).DeviceGetPhysicalDevicesIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_DeviceGetPhysicalDevicesIds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).DeviceGetPhysicalDevicesIds(ctx, req.(*DeviceGetPhysicalDevicesIdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_DeviceGetDefaultStreamsInterface_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceGetDefaultStreamsInterfaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).DeviceGetDefaultStreamsInterface(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_DeviceGetDefaultStreamsInterface_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).DeviceGetDefaultStreamsInterface(ctx, req.(*DeviceGetDefaultStreamsInterfaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupDupHandle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupDupHandleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupDupHandle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupDupHandle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupDupHandle(ctx, req.(*NetworkGroupDupHandleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupRelease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupReleaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupRelease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupRelease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupRelease(ctx, req.(*NetworkGroupReleaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupName(ctx, req.(*NetworkGroupNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetNetworkInfos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupGetNetworkInfosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetNetworkInfos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetNetworkInfos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetNetworkInfos(ctx, req.(*NetworkGroupGetNetworkInfosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetAllStreamInfos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupGetAllStreamInfosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetAllStreamInfos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetAllStreamInfos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetAllStreamInfos(ctx, req.(*NetworkGroupGetAllStreamInfosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetDefaultStreamInterface_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupGetDefaultStreamInterfaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetDefaultStreamInterface(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetDefaultStreamInterface_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetDefaultStreamInterface(ctx, req.(*NetworkGroupGetDefaultStreamInterfaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupMakeInputVStreamParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeVStreamParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupMakeInputVStreamParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupMakeInputVStreamParams_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupMakeInputVStreamParams(ctx, req.(*MakeVStreamParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupMakeOutputVStreamParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeVStreamParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupMakeOutputVStreamParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupMakeOutputVStreamParams_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupMakeOutputVStreamParams(ctx, req.(*MakeVStreamParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupMakeOutputVStreamParamsGroups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeVStreamParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupMakeOutputVStreamParamsGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupMakeOutputVStreamParamsGroups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupMakeOutputVStreamParamsGroups(ctx, req.(*MakeVStreamParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetOutputVStreamGroups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetOutputVStreamGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetOutputVStreamGroups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetOutputVStreamGroups(ctx, req.(*NetworkGroupIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetInputVStreamInfos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamInfosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetInputVStreamInfos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetInputVStreamInfos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetInputVStreamInfos(ctx, req.(*VStreamInfosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetOutputVStreamInfos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamInfosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetOutputVStreamInfos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetOutputVStreamInfos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetOutputVStreamInfos(ctx, req.(*VStreamInfosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetAllVStreamInfos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamInfosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetAllVStreamInfos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetAllVStreamInfos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetAllVStreamInfos(ctx, req.(*VStreamInfosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupIsScheduled_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupIsScheduled(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupIsScheduled_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupIsScheduled(ctx, req.(*NetworkGroupIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupSetSchedulerTimeout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSchedulerTimeoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerTimeout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupSetSchedulerTimeout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerTimeout(ctx, req.(*SetSchedulerTimeoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupSetSchedulerThreshold_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSchedulerThresholdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerThreshold(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupSetSchedulerThreshold_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerThreshold(ctx, req.(*SetSchedulerThresholdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupSetSchedulerPriority_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSchedulerPriorityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerPriority(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupSetSchedulerPriority_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupSetSchedulerPriority(ctx, req.(*SetSchedulerPriorityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetLatencyMeasurement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatencyMeasurementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetLatencyMeasurement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetLatencyMeasurement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetLatencyMeasurement(ctx, req.(*GetLatencyMeasurementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupIsMultiContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupIsMultiContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupIsMultiContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupIsMultiContext(ctx, req.(*NetworkGroupIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetConfigParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetConfigParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetConfigParams_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetConfigParams(ctx, req.(*NetworkGroupIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetSortedOutputNames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NetworkGroupIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetSortedOutputNames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetSortedOutputNames_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetSortedOutputNames(ctx, req.(*NetworkGroupIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetStreamNamesFromVstreamName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStreamNamesFromVstreamNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetStreamNamesFromVstreamName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetStreamNamesFromVstreamName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetStreamNamesFromVstreamName(ctx, req.(*GetStreamNamesFromVstreamNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_NetworkGroupGetVstreamNamesFromStreamName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVstreamNamesFromStreamNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).NetworkGroupGetVstreamNamesFromStreamName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_NetworkGroupGetVstreamNamesFromStreamName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).NetworkGroupGetVstreamNamesFromStreamName(ctx, req.(*GetVstreamNamesFromStreamNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamsCreate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVStreamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamsCreate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamsCreate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamsCreate(ctx, req.(*CreateVStreamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamsCreate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVStreamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamsCreate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamsCreate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamsCreate(ctx, req.(*CreateVStreamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamDupHandle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamDupHandleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamDupHandle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamDupHandle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamDupHandle(ctx, req.(*VStreamDupHandleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamRelease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamReleaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamRelease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamRelease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamRelease(ctx, req.(*VStreamReleaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamWrite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InputVStreamWriteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamWrite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamWrite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamWrite(ctx, req.(*InputVStreamWriteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamWritePix_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InputVStreamWritePixRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamWritePix(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamWritePix_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamWritePix(ctx, req.(*InputVStreamWritePixRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamGetFrameSize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamGetFrameSize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamGetFrameSize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamGetFrameSize(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamFlush_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamFlush(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamFlush_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamFlush(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamName(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamNetworkName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamNetworkName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamNetworkName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamNetworkName(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamAbort_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamAbort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamAbort_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamAbort(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamResume(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamStopAndClear_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamStopAndClear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamStopAndClear_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamStopAndClear(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamStart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamStart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamStart_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamStart(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamGetUserBufferFormat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamGetUserBufferFormat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamGetUserBufferFormat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamGetUserBufferFormat(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamGetInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamGetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamGetInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamGetInfo(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamIsAborted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamIsAborted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamIsAborted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamIsAborted(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_InputVStreamIsMultiPlanar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).InputVStreamIsMultiPlanar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_InputVStreamIsMultiPlanar_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).InputVStreamIsMultiPlanar(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamDupHandle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamDupHandleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamDupHandle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamDupHandle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamDupHandle(ctx, req.(*VStreamDupHandleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamRelease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamReleaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamRelease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamRelease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamRelease(ctx, req.(*VStreamReleaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OutputVStreamReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamRead_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamRead(ctx, req.(*OutputVStreamReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamGetFrameSize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamGetFrameSize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamGetFrameSize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamGetFrameSize(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamName(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamNetworkName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamNetworkName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamNetworkName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamNetworkName(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamAbort_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamAbort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamAbort_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamAbort(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamResume(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamStopAndClear_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamStopAndClear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamStopAndClear_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamStopAndClear(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamStart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamStart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamStart_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamStart(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamGetUserBufferFormat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamGetUserBufferFormat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamGetUserBufferFormat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamGetUserBufferFormat(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamGetInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamGetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamGetInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamGetInfo(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamIsAborted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VStreamIdentifierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamIsAborted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamIsAborted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamIsAborted(ctx, req.(*VStreamIdentifierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamSetNmsScoreThreshold_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetNmsScoreThresholdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsScoreThreshold(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamSetNmsScoreThreshold_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsScoreThreshold(ctx, req.(*SetNmsScoreThresholdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamSetNmsIouThreshold_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetNmsIouThresholdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsIouThreshold(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamSetNmsIouThreshold_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsIouThreshold(ctx, req.(*SetNmsIouThresholdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrokerService_OutputVStreamSetNmsMaxProposalsPerClass_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetNmsMaxProposalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsMaxProposalsPerClass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrokerService_OutputVStreamSetNmsMaxProposalsPerClass_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrokerServiceServer).OutputVStreamSetNmsMaxProposalsPerClass(ctx, req.(*SetNmsMaxProposalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BrokerService_ServiceDesc is the grpc.ServiceDesc for BrokerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BrokerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hailo.broker.BrokerService",
	HandlerType: (*BrokerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ClientKeepAlive",
			Handler:    _BrokerService_ClientKeepAlive_Handler,
		},
		{
			MethodName: "GetServiceVersion",
			Handler:    _BrokerService_GetServiceVersion_Handler,
		},
		{
			MethodName: "DeviceCreate",
			Handler:    _BrokerService_DeviceCreate_Handler,
		},
		{
			MethodName: "DeviceRelease",
			Handler:    _BrokerService_DeviceRelease_Handler,
		},
		{
			MethodName: "DeviceConfigure",
			Handler:    _BrokerService_DeviceConfigure_Handler,
		},
		{
			MethodName: "DeviceGetPhysicalDevicesIds",
			Handler:    _BrokerService_DeviceGetPhysicalDevicesIds_Handler,
		},
		{
			MethodName: "DeviceGetDefaultStreamsInterface",
			Handler:    _BrokerService_DeviceGetDefaultStreamsInterface_Handler,
		},
		{
			MethodName: "NetworkGroupDupHandle",
			Handler:    _BrokerService_NetworkGroupDupHandle_Handler,
		},
		{
			MethodName: "NetworkGroupRelease",
			Handler:    _BrokerService_NetworkGroupRelease_Handler,
		},
		{
			MethodName: "NetworkGroupName",
			Handler:    _BrokerService_NetworkGroupName_Handler,
		},
		{
			MethodName: "NetworkGroupGetNetworkInfos",
			Handler:    _BrokerService_NetworkGroupGetNetworkInfos_Handler,
		},
		{
			MethodName: "NetworkGroupGetAllStreamInfos",
			Handler:    _BrokerService_NetworkGroupGetAllStreamInfos_Handler,
		},
		{
			MethodName: "NetworkGroupGetDefaultStreamInterface",
			Handler:    _BrokerService_NetworkGroupGetDefaultStreamInterface_Handler,
		},
		{
			MethodName: "NetworkGroupMakeInputVStreamParams",
			Handler:    _BrokerService_NetworkGroupMakeInputVStreamParams_Handler,
		},
		{
			MethodName: "NetworkGroupMakeOutputVStreamParams",
			Handler:    _BrokerService_NetworkGroupMakeOutputVStreamParams_Handler,
		},
		{
			MethodName: "NetworkGroupMakeOutputVStreamParamsGroups",
			Handler:    _BrokerService_NetworkGroupMakeOutputVStreamParamsGroups_Handler,
		},
		{
			MethodName: "NetworkGroupGetOutputVStreamGroups",
			Handler:    _BrokerService_NetworkGroupGetOutputVStreamGroups_Handler,
		},
		{
			MethodName: "NetworkGroupGetInputVStreamInfos",
			Handler:    _BrokerService_NetworkGroupGetInputVStreamInfos_Handler,
		},
		{
			MethodName: "NetworkGroupGetOutputVStreamInfos",
			Handler:    _BrokerService_NetworkGroupGetOutputVStreamInfos_Handler,
		},
		{
			MethodName: "NetworkGroupGetAllVStreamInfos",
			Handler:    _BrokerService_NetworkGroupGetAllVStreamInfos_Handler,
		},
		{
			MethodName: "NetworkGroupIsScheduled",
			Handler:    _BrokerService_NetworkGroupIsScheduled_Handler,
		},
		{
			MethodName: "NetworkGroupSetSchedulerTimeout",
			Handler:    _BrokerService_NetworkGroupSetSchedulerTimeout_Handler,
		},
		{
			MethodName: "NetworkGroupSetSchedulerThreshold",
			Handler:    _BrokerService_NetworkGroupSetSchedulerThreshold_Handler,
		},
		{
			MethodName: "NetworkGroupSetSchedulerPriority",
			Handler:    _BrokerService_NetworkGroupSetSchedulerPriority_Handler,
		},
		{
			MethodName: "NetworkGroupGetLatencyMeasurement",
			Handler:    _BrokerService_NetworkGroupGetLatencyMeasurement_Handler,
		},
		{
			MethodName: "NetworkGroupIsMultiContext",
			Handler:    _BrokerService_NetworkGroupIsMultiContext_Handler,
		},
		{
			MethodName: "NetworkGroupGetConfigParams",
			Handler:    _BrokerService_NetworkGroupGetConfigParams_Handler,
		},
		{
			MethodName: "NetworkGroupGetSortedOutputNames",
			Handler:    _BrokerService_NetworkGroupGetSortedOutputNames_Handler,
		},
		{
			MethodName: "NetworkGroupGetStreamNamesFromVstreamName",
			Handler:    _BrokerService_NetworkGroupGetStreamNamesFromVstreamName_Handler,
		},
		{
			MethodName: "NetworkGroupGetVstreamNamesFromStreamName",
			Handler:    _BrokerService_NetworkGroupGetVstreamNamesFromStreamName_Handler,
		},
		{
			MethodName: "InputVStreamsCreate",
			Handler:    _BrokerService_InputVStreamsCreate_Handler,
		},
		{
			MethodName: "OutputVStreamsCreate",
			Handler:    _BrokerService_OutputVStreamsCreate_Handler,
		},
		{
			MethodName: "InputVStreamDupHandle",
			Handler:    _BrokerService_InputVStreamDupHandle_Handler,
		},
		{
			MethodName: "InputVStreamRelease",
			Handler:    _BrokerService_InputVStreamRelease_Handler,
		},
		{
			MethodName: "InputVStreamWrite",
			Handler:    _BrokerService_InputVStreamWrite_Handler,
		},
		{
			MethodName: "InputVStreamWritePix",
			Handler:    _BrokerService_InputVStreamWritePix_Handler,
		},
		{
			MethodName: "InputVStreamGetFrameSize",
			Handler:    _BrokerService_InputVStreamGetFrameSize_Handler,
		},
		{
			MethodName: "InputVStreamFlush",
			Handler:    _BrokerService_InputVStreamFlush_Handler,
		},
		{
			MethodName: "InputVStreamName",
			Handler:    _BrokerService_InputVStreamName_Handler,
		},
		{
			MethodName: "InputVStreamNetworkName",
			Handler:    _BrokerService_InputVStreamNetworkName_Handler,
		},
		{
			MethodName: "InputVStreamAbort",
			Handler:    _BrokerService_InputVStreamAbort_Handler,
		},
		{
			MethodName: "InputVStreamResume",
			Handler:    _BrokerService_InputVStreamResume_Handler,
		},
		{
			MethodName: "InputVStreamStopAndClear",
			Handler:    _BrokerService_InputVStreamStopAndClear_Handler,
		},
		{
			MethodName: "InputVStreamStart",
			Handler:    _BrokerService_InputVStreamStart_Handler,
		},
		{
			MethodName: "InputVStreamGetUserBufferFormat",
			Handler:    _BrokerService_InputVStreamGetUserBufferFormat_Handler,
		},
		{
			MethodName: "InputVStreamGetInfo",
			Handler:    _BrokerService_InputVStreamGetInfo_Handler,
		},
		{
			MethodName: "InputVStreamIsAborted",
			Handler:    _BrokerService_InputVStreamIsAborted_Handler,
		},
		{
			MethodName: "InputVStreamIsMultiPlanar",
			Handler:    _BrokerService_InputVStreamIsMultiPlanar_Handler,
		},
		{
			MethodName: "OutputVStreamDupHandle",
			Handler:    _BrokerService_OutputVStreamDupHandle_Handler,
		},
		{
			MethodName: "OutputVStreamRelease",
			Handler:    _BrokerService_OutputVStreamRelease_Handler,
		},
		{
			MethodName: "OutputVStreamRead",
			Handler:    _BrokerService_OutputVStreamRead_Handler,
		},
		{
			MethodName: "OutputVStreamGetFrameSize",
			Handler:    _BrokerService_OutputVStreamGetFrameSize_Handler,
		},
		{
			MethodName: "OutputVStreamName",
			Handler:    _BrokerService_OutputVStreamName_Handler,
		},
		{
			MethodName: "OutputVStreamNetworkName",
			Handler:    _BrokerService_OutputVStreamNetworkName_Handler,
		},
		{
			MethodName: "OutputVStreamAbort",
			Handler:    _BrokerService_OutputVStreamAbort_Handler,
		},
		{
			MethodName: "OutputVStreamResume",
			Handler:    _BrokerService_OutputVStreamResume_Handler,
		},
		{
			MethodName: "OutputVStreamStopAndClear",
			Handler:    _BrokerService_OutputVStreamStopAndClear_Handler,
		},
		{
			MethodName: "OutputVStreamStart",
			Handler:    _BrokerService_OutputVStreamStart_Handler,
		},
		{
			MethodName: "OutputVStreamGetUserBufferFormat",
			Handler:    _BrokerService_OutputVStreamGetUserBufferFormat_Handler,
		},
		{
			MethodName: "OutputVStreamGetInfo",
			Handler:    _BrokerService_OutputVStreamGetInfo_Handler,
		},
		{
			MethodName: "OutputVStreamIsAborted",
			Handler:    _BrokerService_OutputVStreamIsAborted_Handler,
		},
		{
			MethodName: "OutputVStreamSetNmsScoreThreshold",
			Handler:    _BrokerService_OutputVStreamSetNmsScoreThreshold_Handler,
		},
		{
			MethodName: "OutputVStreamSetNmsIouThreshold",
			Handler:    _BrokerService_OutputVStreamSetNmsIouThreshold_Handler,
		},
		{
			MethodName: "OutputVStreamSetNmsMaxProposalsPerClass",
			Handler:    _BrokerService_OutputVStreamSetNmsMaxProposalsPerClass_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "broker.proto",
}
