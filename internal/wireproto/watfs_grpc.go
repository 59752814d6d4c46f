package wireproto

import (
	"context"

	"google.golang.org/grpc"
)

// WatFSServer is the server-side contract for the WatFS RPC service, in
// the shape protoc-gen-go-grpc would generate from a watfs.proto file.
type WatFSServer interface {
	Null(context.Context, *NullRequest) (*NullReply, error)
	GetAttr(context.Context, *GetAttrRequest) (*GetAttrReply, error)
	Lookup(context.Context, *LookupRequest) (*LookupReply, error)
	Read(*ReadRequest, WatFS_ReadServer) error
	Write(WatFS_WriteServer) error
	Truncate(context.Context, *TruncateRequest) (*TruncateReply, error)
	Readdir(*ReaddirRequest, WatFS_ReaddirServer) error
	Mknod(context.Context, *MknodRequest) (*MknodReply, error)
	Unlink(context.Context, *UnlinkRequest) (*UnlinkReply, error)
	Rename(context.Context, *RenameRequest) (*RenameReply, error)
	Mkdir(context.Context, *MkdirRequest) (*MkdirReply, error)
	Rmdir(context.Context, *RmdirRequest) (*RmdirReply, error)
	Utimens(context.Context, *UtimensRequest) (*UtimensReply, error)
	Commit(context.Context, *CommitRequest) (*CommitReply, error)
}

// WatFS_ReadServer is the server side of the Read server-streaming RPC.
type WatFS_ReadServer interface {
	Send(*ReadReply) error
	grpc.ServerStream
}

type watFSReadServer struct{ grpc.ServerStream }

func (x *watFSReadServer) Send(m *ReadReply) error { return x.ServerStream.SendMsg(m) }

// WatFS_ReaddirServer is the server side of the Readdir server-streaming RPC.
type WatFS_ReaddirServer interface {
	Send(*ReaddirReply) error
	grpc.ServerStream
}

type watFSReaddirServer struct{ grpc.ServerStream }

func (x *watFSReaddirServer) Send(m *ReaddirReply) error { return x.ServerStream.SendMsg(m) }

// WatFS_WriteServer is the server side of the Write client-streaming RPC.
type WatFS_WriteServer interface {
	Recv() (*WriteRequest, error)
	SendAndClose(*WriteReply) error
	grpc.ServerStream
}

type watFSWriteServer struct{ grpc.ServerStream }

func (x *watFSWriteServer) Recv() (*WriteRequest, error) {
	m := new(WriteRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (x *watFSWriteServer) SendAndClose(m *WriteReply) error {
	return x.ServerStream.SendMsg(m)
}

func _WatFS_Null_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NullRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Null(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Null"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Null(ctx, req.(*NullRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_GetAttr_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAttrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).GetAttr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/GetAttr"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).GetAttr(ctx, req.(*GetAttrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Lookup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Lookup"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Truncate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TruncateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Truncate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Truncate"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Truncate(ctx, req.(*TruncateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Mknod_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MknodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Mknod(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Mknod"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Mknod(ctx, req.(*MknodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Unlink_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UnlinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Unlink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Unlink"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Unlink(ctx, req.(*UnlinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Rename_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RenameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Rename(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Rename"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Rename(ctx, req.(*RenameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Mkdir_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MkdirRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Mkdir(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Mkdir"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Mkdir(ctx, req.(*MkdirRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Rmdir_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RmdirRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Rmdir(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Rmdir"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Rmdir(ctx, req.(*RmdirRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Utimens_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UtimensRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Utimens(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Utimens"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Utimens(ctx, req.(*UtimensRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Commit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CommitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WatFSServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/watfs.WatFS/Commit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WatFSServer).Commit(ctx, req.(*CommitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WatFS_Read_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ReadRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(WatFSServer).Read(m, &watFSReadServer{stream})
}

func _WatFS_Write_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(WatFSServer).Write(&watFSWriteServer{stream})
}

func _WatFS_Readdir_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ReaddirRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(WatFSServer).Readdir(m, &watFSReaddirServer{stream})
}

// WatFS_ServiceDesc is the grpc.ServiceDesc for the WatFS service, laid
// out exactly as protoc-gen-go-grpc would emit it.
var WatFS_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "watfs.WatFS",
	HandlerType: (*WatFSServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Null", Handler: _WatFS_Null_Handler},
		{MethodName: "GetAttr", Handler: _WatFS_GetAttr_Handler},
		{MethodName: "Lookup", Handler: _WatFS_Lookup_Handler},
		{MethodName: "Truncate", Handler: _WatFS_Truncate_Handler},
		{MethodName: "Mknod", Handler: _WatFS_Mknod_Handler},
		{MethodName: "Unlink", Handler: _WatFS_Unlink_Handler},
		{MethodName: "Rename", Handler: _WatFS_Rename_Handler},
		{MethodName: "Mkdir", Handler: _WatFS_Mkdir_Handler},
		{MethodName: "Rmdir", Handler: _WatFS_Rmdir_Handler},
		{MethodName: "Utimens", Handler: _WatFS_Utimens_Handler},
		{MethodName: "Commit", Handler: _WatFS_Commit_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Read", Handler: _WatFS_Read_Handler, ServerStreams: true},
		{StreamName: "Write", Handler: _WatFS_Write_Handler, ClientStreams: true},
		{StreamName: "Readdir", Handler: _WatFS_Readdir_Handler, ServerStreams: true},
	},
	Metadata: "watfs.proto",
}

// RegisterWatFSServer registers srv to handle the WatFS service on s, the
// way protoc-gen-go-grpc's generated RegisterXxxServer function does.
func RegisterWatFSServer(s grpc.ServiceRegistrar, srv WatFSServer) {
	s.RegisterService(&WatFS_ServiceDesc, srv)
}

// WatFSClient is the client-side contract for the WatFS RPC service.
type WatFSClient interface {
	Null(ctx context.Context, in *NullRequest, opts ...grpc.CallOption) (*NullReply, error)
	GetAttr(ctx context.Context, in *GetAttrRequest, opts ...grpc.CallOption) (*GetAttrReply, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupReply, error)
	Read(ctx context.Context, in *ReadRequest, opts ...grpc.CallOption) (WatFS_ReadClient, error)
	Write(ctx context.Context, opts ...grpc.CallOption) (WatFS_WriteClient, error)
	Truncate(ctx context.Context, in *TruncateRequest, opts ...grpc.CallOption) (*TruncateReply, error)
	Readdir(ctx context.Context, in *ReaddirRequest, opts ...grpc.CallOption) (WatFS_ReaddirClient, error)
	Mknod(ctx context.Context, in *MknodRequest, opts ...grpc.CallOption) (*MknodReply, error)
	Unlink(ctx context.Context, in *UnlinkRequest, opts ...grpc.CallOption) (*UnlinkReply, error)
	Rename(ctx context.Context, in *RenameRequest, opts ...grpc.CallOption) (*RenameReply, error)
	Mkdir(ctx context.Context, in *MkdirRequest, opts ...grpc.CallOption) (*MkdirReply, error)
	Rmdir(ctx context.Context, in *RmdirRequest, opts ...grpc.CallOption) (*RmdirReply, error)
	Utimens(ctx context.Context, in *UtimensRequest, opts ...grpc.CallOption) (*UtimensReply, error)
	Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitReply, error)
}

type watFSClient struct {
	cc grpc.ClientConnInterface
}

// NewWatFSClient wraps a *grpc.ClientConn (or any grpc.ClientConnInterface,
// such as a bufconn connection used in tests) in a WatFSClient.
func NewWatFSClient(cc grpc.ClientConnInterface) WatFSClient {
	return &watFSClient{cc}
}

func (c *watFSClient) Null(ctx context.Context, in *NullRequest, opts ...grpc.CallOption) (*NullReply, error) {
	out := new(NullReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Null", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) GetAttr(ctx context.Context, in *GetAttrRequest, opts ...grpc.CallOption) (*GetAttrReply, error) {
	out := new(GetAttrReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/GetAttr", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupReply, error) {
	out := new(LookupReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Lookup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Truncate(ctx context.Context, in *TruncateRequest, opts ...grpc.CallOption) (*TruncateReply, error) {
	out := new(TruncateReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Truncate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Mknod(ctx context.Context, in *MknodRequest, opts ...grpc.CallOption) (*MknodReply, error) {
	out := new(MknodReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Mknod", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Unlink(ctx context.Context, in *UnlinkRequest, opts ...grpc.CallOption) (*UnlinkReply, error) {
	out := new(UnlinkReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Unlink", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Rename(ctx context.Context, in *RenameRequest, opts ...grpc.CallOption) (*RenameReply, error) {
	out := new(RenameReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Rename", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Mkdir(ctx context.Context, in *MkdirRequest, opts ...grpc.CallOption) (*MkdirReply, error) {
	out := new(MkdirReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Mkdir", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Rmdir(ctx context.Context, in *RmdirRequest, opts ...grpc.CallOption) (*RmdirReply, error) {
	out := new(RmdirReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Rmdir", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Utimens(ctx context.Context, in *UtimensRequest, opts ...grpc.CallOption) (*UtimensReply, error) {
	out := new(UtimensReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Utimens", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *watFSClient) Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitReply, error) {
	out := new(CommitReply)
	if err := c.cc.Invoke(ctx, "/watfs.WatFS/Commit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WatFS_ReadClient is the client side of the Read server-streaming RPC.
type WatFS_ReadClient interface {
	Recv() (*ReadReply, error)
	grpc.ClientStream
}

type watFSReadClient struct{ grpc.ClientStream }

func (x *watFSReadClient) Recv() (*ReadReply, error) {
	m := new(ReadReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *watFSClient) Read(ctx context.Context, in *ReadRequest, opts ...grpc.CallOption) (WatFS_ReadClient, error) {
	stream, err := c.cc.NewStream(ctx, &WatFS_ServiceDesc.Streams[0], "/watfs.WatFS/Read", opts...)
	if err != nil {
		return nil, err
	}
	x := &watFSReadClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// WatFS_WriteClient is the client side of the Write client-streaming RPC.
type WatFS_WriteClient interface {
	Send(*WriteRequest) error
	CloseAndRecv() (*WriteReply, error)
	grpc.ClientStream
}

type watFSWriteClient struct{ grpc.ClientStream }

func (x *watFSWriteClient) Send(m *WriteRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *watFSWriteClient) CloseAndRecv() (*WriteReply, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(WriteReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *watFSClient) Write(ctx context.Context, opts ...grpc.CallOption) (WatFS_WriteClient, error) {
	stream, err := c.cc.NewStream(ctx, &WatFS_ServiceDesc.Streams[1], "/watfs.WatFS/Write", opts...)
	if err != nil {
		return nil, err
	}
	return &watFSWriteClient{stream}, nil
}

// WatFS_ReaddirClient is the client side of the Readdir server-streaming RPC.
type WatFS_ReaddirClient interface {
	Recv() (*ReaddirReply, error)
	grpc.ClientStream
}

type watFSReaddirClient struct{ grpc.ClientStream }

func (x *watFSReaddirClient) Recv() (*ReaddirReply, error) {
	m := new(ReaddirReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *watFSClient) Readdir(ctx context.Context, in *ReaddirRequest, opts ...grpc.CallOption) (WatFS_ReaddirClient, error) {
	stream, err := c.cc.NewStream(ctx, &WatFS_ServiceDesc.Streams[2], "/watfs.WatFS/Readdir", opts...)
	if err != nil {
		return nil, err
	}
	x := &watFSReaddirClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
