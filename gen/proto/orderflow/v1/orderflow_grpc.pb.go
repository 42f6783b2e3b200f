// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: orderflow/v1/orderflow.proto

package orderflowpb

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
	WorkflowsService_CreateWorkflow_FullMethodName  = "/orderflow.v1.WorkflowsService/CreateWorkflow"
	WorkflowsService_GetWorkflow_FullMethodName     = "/orderflow.v1.WorkflowsService/GetWorkflow"
	WorkflowsService_ListWorkflows_FullMethodName   = "/orderflow.v1.WorkflowsService/ListWorkflows"
	WorkflowsService_CancelWorkflow_FullMethodName  = "/orderflow.v1.WorkflowsService/CancelWorkflow"
	WorkflowsService_RetryWorkflow_FullMethodName   = "/orderflow.v1.WorkflowsService/RetryWorkflow"
	WorkflowsService_ApproveWorkflow_FullMethodName = "/orderflow.v1.WorkflowsService/ApproveWorkflow"
)

// WorkflowsServiceClient is the client API for WorkflowsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// WorkflowsService is the operator surface over workflow executions.
type WorkflowsServiceClient interface {
	CreateWorkflow(ctx context.Context, in *CreateWorkflowRequest, opts ...grpc.CallOption) (*CreateWorkflowResponse, error)
	GetWorkflow(ctx context.Context, in *GetWorkflowRequest, opts ...grpc.CallOption) (*GetWorkflowResponse, error)
	ListWorkflows(ctx context.Context, in *ListWorkflowsRequest, opts ...grpc.CallOption) (*ListWorkflowsResponse, error)
	CancelWorkflow(ctx context.Context, in *CancelWorkflowRequest, opts ...grpc.CallOption) (*CancelWorkflowResponse, error)
	RetryWorkflow(ctx context.Context, in *RetryWorkflowRequest, opts ...grpc.CallOption) (*RetryWorkflowResponse, error)
	ApproveWorkflow(ctx context.Context, in *ApproveWorkflowRequest, opts ...grpc.CallOption) (*ApproveWorkflowResponse, error)
}

type workflowsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkflowsServiceClient(cc grpc.ClientConnInterface) WorkflowsServiceClient {
	return &workflowsServiceClient{cc}
}

func (c *workflowsServiceClient) CreateWorkflow(ctx context.Context, in *CreateWorkflowRequest, opts ...grpc.CallOption) (*CreateWorkflowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateWorkflowResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_CreateWorkflow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowsServiceClient) GetWorkflow(ctx context.Context, in *GetWorkflowRequest, opts ...grpc.CallOption) (*GetWorkflowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWorkflowResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_GetWorkflow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowsServiceClient) ListWorkflows(ctx context.Context, in *ListWorkflowsRequest, opts ...grpc.CallOption) (*ListWorkflowsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWorkflowsResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_ListWorkflows_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowsServiceClient) CancelWorkflow(ctx context.Context, in *CancelWorkflowRequest, opts ...grpc.CallOption) (*CancelWorkflowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelWorkflowResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_CancelWorkflow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowsServiceClient) RetryWorkflow(ctx context.Context, in *RetryWorkflowRequest, opts ...grpc.CallOption) (*RetryWorkflowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryWorkflowResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_RetryWorkflow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowsServiceClient) ApproveWorkflow(ctx context.Context, in *ApproveWorkflowRequest, opts ...grpc.CallOption) (*ApproveWorkflowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveWorkflowResponse)
	err := c.cc.Invoke(ctx, WorkflowsService_ApproveWorkflow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WorkflowsServiceServer is the server API for WorkflowsService service.
// All implementations must embed UnimplementedWorkflowsServiceServer
// for forward compatibility.
//
// WorkflowsService is the operator surface over workflow executions.
type WorkflowsServiceServer interface {
	CreateWorkflow(context.Context, *CreateWorkflowRequest) (*CreateWorkflowResponse, error)
	GetWorkflow(context.Context, *GetWorkflowRequest) (*GetWorkflowResponse, error)
	ListWorkflows(context.Context, *ListWorkflowsRequest) (*ListWorkflowsResponse, error)
	CancelWorkflow(context.Context, *CancelWorkflowRequest) (*CancelWorkflowResponse, error)
	RetryWorkflow(context.Context, *RetryWorkflowRequest) (*RetryWorkflowResponse, error)
	ApproveWorkflow(context.Context, *ApproveWorkflowRequest) (*ApproveWorkflowResponse, error)
	mustEmbedUnimplementedWorkflowsServiceServer()
}

// UnimplementedWorkflowsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedWorkflowsServiceServer struct{}

func (UnimplementedWorkflowsServiceServer) CreateWorkflow(context.Context, *CreateWorkflowRequest) (*CreateWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateWorkflow not implemented")
}
func (UnimplementedWorkflowsServiceServer) GetWorkflow(context.Context, *GetWorkflowRequest) (*GetWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWorkflow not implemented")
}
func (UnimplementedWorkflowsServiceServer) ListWorkflows(context.Context, *ListWorkflowsRequest) (*ListWorkflowsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWorkflows not implemented")
}
func (UnimplementedWorkflowsServiceServer) CancelWorkflow(context.Context, *CancelWorkflowRequest) (*CancelWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelWorkflow not implemented")
}
func (UnimplementedWorkflowsServiceServer) RetryWorkflow(context.Context, *RetryWorkflowRequest) (*RetryWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetryWorkflow not implemented")
}
func (UnimplementedWorkflowsServiceServer) ApproveWorkflow(context.Context, *ApproveWorkflowRequest) (*ApproveWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveWorkflow not implemented")
}
func (UnimplementedWorkflowsServiceServer) mustEmbedUnimplementedWorkflowsServiceServer() {}
func (UnimplementedWorkflowsServiceServer) testEmbeddedByValue()                          {}

// UnsafeWorkflowsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to WorkflowsServiceServer will
// result in compilation errors.
type UnsafeWorkflowsServiceServer interface {
	mustEmbedUnimplementedWorkflowsServiceServer()
}

func RegisterWorkflowsServiceServer(s grpc.ServiceRegistrar, srv WorkflowsServiceServer) {
	// If the following call pancis, it indicates UnimplementedWorkflowsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&WorkflowsService_ServiceDesc, srv)
}

func _WorkflowsService_CreateWorkflow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateWorkflowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).CreateWorkflow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_CreateWorkflow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).CreateWorkflow(ctx, req.(*CreateWorkflowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowsService_GetWorkflow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWorkflowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).GetWorkflow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_GetWorkflow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).GetWorkflow(ctx, req.(*GetWorkflowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowsService_ListWorkflows_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWorkflowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).ListWorkflows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_ListWorkflows_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).ListWorkflows(ctx, req.(*ListWorkflowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowsService_CancelWorkflow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelWorkflowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).CancelWorkflow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_CancelWorkflow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).CancelWorkflow(ctx, req.(*CancelWorkflowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowsService_RetryWorkflow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryWorkflowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).RetryWorkflow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_RetryWorkflow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).RetryWorkflow(ctx, req.(*RetryWorkflowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowsService_ApproveWorkflow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveWorkflowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowsServiceServer).ApproveWorkflow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowsService_ApproveWorkflow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowsServiceServer).ApproveWorkflow(ctx, req.(*ApproveWorkflowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WorkflowsService_ServiceDesc is the grpc.ServiceDesc for WorkflowsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var WorkflowsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orderflow.v1.WorkflowsService",
	HandlerType: (*WorkflowsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWorkflow",
			Handler:    _WorkflowsService_CreateWorkflow_Handler,
		},
		{
			MethodName: "GetWorkflow",
			Handler:    _WorkflowsService_GetWorkflow_Handler,
		},
		{
			MethodName: "ListWorkflows",
			Handler:    _WorkflowsService_ListWorkflows_Handler,
		},
		{
			MethodName: "CancelWorkflow",
			Handler:    _WorkflowsService_CancelWorkflow_Handler,
		},
		{
			MethodName: "RetryWorkflow",
			Handler:    _WorkflowsService_RetryWorkflow_Handler,
		},
		{
			MethodName: "ApproveWorkflow",
			Handler:    _WorkflowsService_ApproveWorkflow_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orderflow/v1/orderflow.proto",
}

const (
	DeadLettersService_ListDeadLetters_FullMethodName          = "/orderflow.v1.DeadLettersService/ListDeadLetters"
	DeadLettersService_GetDeadLetter_FullMethodName            = "/orderflow.v1.DeadLettersService/GetDeadLetter"
	DeadLettersService_AnnotateDeadLetter_FullMethodName       = "/orderflow.v1.DeadLettersService/AnnotateDeadLetter"
	DeadLettersService_DiscardDeadLetter_FullMethodName        = "/orderflow.v1.DeadLettersService/DiscardDeadLetter"
	DeadLettersService_ReprocessDeadLetter_FullMethodName      = "/orderflow.v1.DeadLettersService/ReprocessDeadLetter"
	DeadLettersService_ReprocessDeadLettersBulk_FullMethodName = "/orderflow.v1.DeadLettersService/ReprocessDeadLettersBulk"
	DeadLettersService_ExportDeadLetters_FullMethodName        = "/orderflow.v1.DeadLettersService/ExportDeadLetters"
)

// DeadLettersServiceClient is the client API for DeadLettersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DeadLettersService reviews and resolves dead letter entries.
type DeadLettersServiceClient interface {
	ListDeadLetters(ctx context.Context, in *ListDeadLettersRequest, opts ...grpc.CallOption) (*ListDeadLettersResponse, error)
	GetDeadLetter(ctx context.Context, in *GetDeadLetterRequest, opts ...grpc.CallOption) (*GetDeadLetterResponse, error)
	AnnotateDeadLetter(ctx context.Context, in *AnnotateDeadLetterRequest, opts ...grpc.CallOption) (*AnnotateDeadLetterResponse, error)
	DiscardDeadLetter(ctx context.Context, in *DiscardDeadLetterRequest, opts ...grpc.CallOption) (*DiscardDeadLetterResponse, error)
	ReprocessDeadLetter(ctx context.Context, in *ReprocessDeadLetterRequest, opts ...grpc.CallOption) (*ReprocessDeadLetterResponse, error)
	ReprocessDeadLettersBulk(ctx context.Context, in *ReprocessDeadLettersBulkRequest, opts ...grpc.CallOption) (*ReprocessDeadLettersBulkResponse, error)
	ExportDeadLetters(ctx context.Context, in *ExportDeadLettersRequest, opts ...grpc.CallOption) (*ExportDeadLettersResponse, error)
}

type deadLettersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDeadLettersServiceClient(cc grpc.ClientConnInterface) DeadLettersServiceClient {
	return &deadLettersServiceClient{cc}
}

func (c *deadLettersServiceClient) ListDeadLetters(ctx context.Context, in *ListDeadLettersRequest, opts ...grpc.CallOption) (*ListDeadLettersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDeadLettersResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_ListDeadLetters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) GetDeadLetter(ctx context.Context, in *GetDeadLetterRequest, opts ...grpc.CallOption) (*GetDeadLetterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDeadLetterResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_GetDeadLetter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) AnnotateDeadLetter(ctx context.Context, in *AnnotateDeadLetterRequest, opts ...grpc.CallOption) (*AnnotateDeadLetterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnnotateDeadLetterResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_AnnotateDeadLetter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) DiscardDeadLetter(ctx context.Context, in *DiscardDeadLetterRequest, opts ...grpc.CallOption) (*DiscardDeadLetterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscardDeadLetterResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_DiscardDeadLetter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) ReprocessDeadLetter(ctx context.Context, in *ReprocessDeadLetterRequest, opts ...grpc.CallOption) (*ReprocessDeadLetterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessDeadLetterResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_ReprocessDeadLetter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) ReprocessDeadLettersBulk(ctx context.Context, in *ReprocessDeadLettersBulkRequest, opts ...grpc.CallOption) (*ReprocessDeadLettersBulkResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessDeadLettersBulkResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_ReprocessDeadLettersBulk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadLettersServiceClient) ExportDeadLetters(ctx context.Context, in *ExportDeadLettersRequest, opts ...grpc.CallOption) (*ExportDeadLettersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDeadLettersResponse)
	err := c.cc.Invoke(ctx, DeadLettersService_ExportDeadLetters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeadLettersServiceServer is the server API for DeadLettersService service.
// All implementations must embed UnimplementedDeadLettersServiceServer
// for forward compatibility.
//
// DeadLettersService reviews and resolves dead letter entries.
type DeadLettersServiceServer interface {
	ListDeadLetters(context.Context, *ListDeadLettersRequest) (*ListDeadLettersResponse, error)
	GetDeadLetter(context.Context, *GetDeadLetterRequest) (*GetDeadLetterResponse, error)
	AnnotateDeadLetter(context.Context, *AnnotateDeadLetterRequest) (*AnnotateDeadLetterResponse, error)
	DiscardDeadLetter(context.Context, *DiscardDeadLetterRequest) (*DiscardDeadLetterResponse, error)
	ReprocessDeadLetter(context.Context, *ReprocessDeadLetterRequest) (*ReprocessDeadLetterResponse, error)
	ReprocessDeadLettersBulk(context.Context, *ReprocessDeadLettersBulkRequest) (*ReprocessDeadLettersBulkResponse, error)
	ExportDeadLetters(context.Context, *ExportDeadLettersRequest) (*ExportDeadLettersResponse, error)
	mustEmbedUnimplementedDeadLettersServiceServer()
}

// UnimplementedDeadLettersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDeadLettersServiceServer struct{}

func (UnimplementedDeadLettersServiceServer) ListDeadLetters(context.Context, *ListDeadLettersRequest) (*ListDeadLettersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDeadLetters not implemented")
}
func (UnimplementedDeadLettersServiceServer) GetDeadLetter(context.Context, *GetDeadLetterRequest) (*GetDeadLetterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDeadLetter not implemented")
}
func (UnimplementedDeadLettersServiceServer) AnnotateDeadLetter(context.Context, *AnnotateDeadLetterRequest) (*AnnotateDeadLetterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnnotateDeadLetter not implemented")
}
func (UnimplementedDeadLettersServiceServer) DiscardDeadLetter(context.Context, *DiscardDeadLetterRequest) (*DiscardDeadLetterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DiscardDeadLetter not implemented")
}
func (UnimplementedDeadLettersServiceServer) ReprocessDeadLetter(context.Context, *ReprocessDeadLetterRequest) (*ReprocessDeadLetterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReprocessDeadLetter not implemented")
}
func (UnimplementedDeadLettersServiceServer) ReprocessDeadLettersBulk(context.Context, *ReprocessDeadLettersBulkRequest) (*ReprocessDeadLettersBulkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReprocessDeadLettersBulk not implemented")
}
func (UnimplementedDeadLettersServiceServer) ExportDeadLetters(context.Context, *ExportDeadLettersRequest) (*ExportDeadLettersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDeadLetters not implemented")
}
func (UnimplementedDeadLettersServiceServer) mustEmbedUnimplementedDeadLettersServiceServer() {}
func (UnimplementedDeadLettersServiceServer) testEmbeddedByValue()                            {}

// UnsafeDeadLettersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DeadLettersServiceServer will
// result in compilation errors.
type UnsafeDeadLettersServiceServer interface {
	mustEmbedUnimplementedDeadLettersServiceServer()
}

func RegisterDeadLettersServiceServer(s grpc.ServiceRegistrar, srv DeadLettersServiceServer) {
	// If the following call pancis, it indicates UnimplementedDeadLettersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DeadLettersService_ServiceDesc, srv)
}

func _DeadLettersService_ListDeadLetters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDeadLettersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).ListDeadLetters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_ListDeadLetters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).ListDeadLetters(ctx, req.(*ListDeadLettersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_GetDeadLetter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDeadLetterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).GetDeadLetter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_GetDeadLetter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).GetDeadLetter(ctx, req.(*GetDeadLetterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_AnnotateDeadLetter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnnotateDeadLetterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).AnnotateDeadLetter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_AnnotateDeadLetter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).AnnotateDeadLetter(ctx, req.(*AnnotateDeadLetterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_DiscardDeadLetter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DiscardDeadLetterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).DiscardDeadLetter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_DiscardDeadLetter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).DiscardDeadLetter(ctx, req.(*DiscardDeadLetterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_ReprocessDeadLetter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessDeadLetterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).ReprocessDeadLetter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_ReprocessDeadLetter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).ReprocessDeadLetter(ctx, req.(*ReprocessDeadLetterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_ReprocessDeadLettersBulk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessDeadLettersBulkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).ReprocessDeadLettersBulk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_ReprocessDeadLettersBulk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).ReprocessDeadLettersBulk(ctx, req.(*ReprocessDeadLettersBulkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadLettersService_ExportDeadLetters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDeadLettersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadLettersServiceServer).ExportDeadLetters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadLettersService_ExportDeadLetters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadLettersServiceServer).ExportDeadLetters(ctx, req.(*ExportDeadLettersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DeadLettersService_ServiceDesc is the grpc.ServiceDesc for DeadLettersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DeadLettersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orderflow.v1.DeadLettersService",
	HandlerType: (*DeadLettersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListDeadLetters",
			Handler:    _DeadLettersService_ListDeadLetters_Handler,
		},
		{
			MethodName: "GetDeadLetter",
			Handler:    _DeadLettersService_GetDeadLetter_Handler,
		},
		{
			MethodName: "AnnotateDeadLetter",
			Handler:    _DeadLettersService_AnnotateDeadLetter_Handler,
		},
		{
			MethodName: "DiscardDeadLetter",
			Handler:    _DeadLettersService_DiscardDeadLetter_Handler,
		},
		{
			MethodName: "ReprocessDeadLetter",
			Handler:    _DeadLettersService_ReprocessDeadLetter_Handler,
		},
		{
			MethodName: "ReprocessDeadLettersBulk",
			Handler:    _DeadLettersService_ReprocessDeadLettersBulk_Handler,
		},
		{
			MethodName: "ExportDeadLetters",
			Handler:    _DeadLettersService_ExportDeadLetters_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orderflow/v1/orderflow.proto",
}

const (
	AdminService_GetHealth_FullMethodName    = "/orderflow.v1.AdminService/GetHealth"
	AdminService_ListQueues_FullMethodName   = "/orderflow.v1.AdminService/ListQueues"
	AdminService_ListJobs_FullMethodName     = "/orderflow.v1.AdminService/ListJobs"
	AdminService_PauseQueue_FullMethodName   = "/orderflow.v1.AdminService/PauseQueue"
	AdminService_ResumeQueue_FullMethodName  = "/orderflow.v1.AdminService/ResumeQueue"
	AdminService_CleanQueue_FullMethodName   = "/orderflow.v1.AdminService/CleanQueue"
	AdminService_ForceRequeue_FullMethodName = "/orderflow.v1.AdminService/ForceRequeue"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService covers queue maintenance and system health.
type AdminServiceClient interface {
	GetHealth(ctx context.Context, in *GetHealthRequest, opts ...grpc.CallOption) (*GetHealthResponse, error)
	ListQueues(ctx context.Context, in *ListQueuesRequest, opts ...grpc.CallOption) (*ListQueuesResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	PauseQueue(ctx context.Context, in *PauseQueueRequest, opts ...grpc.CallOption) (*PauseQueueResponse, error)
	ResumeQueue(ctx context.Context, in *ResumeQueueRequest, opts ...grpc.CallOption) (*ResumeQueueResponse, error)
	CleanQueue(ctx context.Context, in *CleanQueueRequest, opts ...grpc.CallOption) (*CleanQueueResponse, error)
	ForceRequeue(ctx context.Context, in *ForceRequeueRequest, opts ...grpc.CallOption) (*ForceRequeueResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) GetHealth(ctx context.Context, in *GetHealthRequest, opts ...grpc.CallOption) (*GetHealthResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetHealthResponse)
	err := c.cc.Invoke(ctx, AdminService_GetHealth_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListQueues(ctx context.Context, in *ListQueuesRequest, opts ...grpc.CallOption) (*ListQueuesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListQueuesResponse)
	err := c.cc.Invoke(ctx, AdminService_ListQueues_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, AdminService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) PauseQueue(ctx context.Context, in *PauseQueueRequest, opts ...grpc.CallOption) (*PauseQueueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PauseQueueResponse)
	err := c.cc.Invoke(ctx, AdminService_PauseQueue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ResumeQueue(ctx context.Context, in *ResumeQueueRequest, opts ...grpc.CallOption) (*ResumeQueueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeQueueResponse)
	err := c.cc.Invoke(ctx, AdminService_ResumeQueue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) CleanQueue(ctx context.Context, in *CleanQueueRequest, opts ...grpc.CallOption) (*CleanQueueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CleanQueueResponse)
	err := c.cc.Invoke(ctx, AdminService_CleanQueue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ForceRequeue(ctx context.Context, in *ForceRequeueRequest, opts ...grpc.CallOption) (*ForceRequeueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ForceRequeueResponse)
	err := c.cc.Invoke(ctx, AdminService_ForceRequeue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService covers queue maintenance and system health.
type AdminServiceServer interface {
	GetHealth(context.Context, *GetHealthRequest) (*GetHealthResponse, error)
	ListQueues(context.Context, *ListQueuesRequest) (*ListQueuesResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	PauseQueue(context.Context, *PauseQueueRequest) (*PauseQueueResponse, error)
	ResumeQueue(context.Context, *ResumeQueueRequest) (*ResumeQueueResponse, error)
	CleanQueue(context.Context, *CleanQueueRequest) (*CleanQueueResponse, error)
	ForceRequeue(context.Context, *ForceRequeueRequest) (*ForceRequeueResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) GetHealth(context.Context, *GetHealthRequest) (*GetHealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHealth not implemented")
}
func (UnimplementedAdminServiceServer) ListQueues(context.Context, *ListQueuesRequest) (*ListQueuesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListQueues not implemented")
}
func (UnimplementedAdminServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedAdminServiceServer) PauseQueue(context.Context, *PauseQueueRequest) (*PauseQueueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PauseQueue not implemented")
}
func (UnimplementedAdminServiceServer) ResumeQueue(context.Context, *ResumeQueueRequest) (*ResumeQueueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeQueue not implemented")
}
func (UnimplementedAdminServiceServer) CleanQueue(context.Context, *CleanQueueRequest) (*CleanQueueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CleanQueue not implemented")
}
func (UnimplementedAdminServiceServer) ForceRequeue(context.Context, *ForceRequeueRequest) (*ForceRequeueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForceRequeue not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call pancis, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_GetHealth_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).GetHealth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_GetHealth_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).GetHealth(ctx, req.(*GetHealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListQueues_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListQueuesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListQueues(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListQueues_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListQueues(ctx, req.(*ListQueuesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_PauseQueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseQueueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).PauseQueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_PauseQueue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).PauseQueue(ctx, req.(*PauseQueueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ResumeQueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeQueueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ResumeQueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ResumeQueue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ResumeQueue(ctx, req.(*ResumeQueueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_CleanQueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CleanQueueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CleanQueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CleanQueue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CleanQueue(ctx, req.(*CleanQueueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ForceRequeue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForceRequeueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ForceRequeue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ForceRequeue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ForceRequeue(ctx, req.(*ForceRequeueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orderflow.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetHealth",
			Handler:    _AdminService_GetHealth_Handler,
		},
		{
			MethodName: "ListQueues",
			Handler:    _AdminService_ListQueues_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _AdminService_ListJobs_Handler,
		},
		{
			MethodName: "PauseQueue",
			Handler:    _AdminService_PauseQueue_Handler,
		},
		{
			MethodName: "ResumeQueue",
			Handler:    _AdminService_ResumeQueue_Handler,
		},
		{
			MethodName: "CleanQueue",
			Handler:    _AdminService_CleanQueue_Handler,
		},
		{
			MethodName: "ForceRequeue",
			Handler:    _AdminService_ForceRequeue_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orderflow/v1/orderflow.proto",
}
