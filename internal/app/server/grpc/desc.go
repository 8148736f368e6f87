package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "links.LinkService"

// LinkServiceServer is the server API of links.LinkService. Messages are
// protobuf well-known types.
type LinkServiceServer interface {
	GetLink(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListLinks(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetLoading(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	SetLoading(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CreateLink(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateLinks(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
	GetUserLinks(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	DeleteLinks(context.Context, *structpb.ListValue) (*emptypb.Empty, error)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req, Resp proto.Message](name string, newReq func() Req, call func(LinkServiceServer, context.Context, Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(LinkServiceServer), ctx, req.(Req))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes links.LinkService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LinkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetLink", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, LinkServiceServer.GetLink),
		unary("ListLinks", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, LinkServiceServer.ListLinks),
		unary("GetLoading", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, LinkServiceServer.GetLoading),
		unary("SetLoading", func() *structpb.Struct { return new(structpb.Struct) }, LinkServiceServer.SetLoading),
		unary("GetStats", func() *emptypb.Empty { return new(emptypb.Empty) }, LinkServiceServer.GetStats),
		unary("CreateLink", func() *structpb.Struct { return new(structpb.Struct) }, LinkServiceServer.CreateLink),
		unary("CreateLinks", func() *structpb.ListValue { return new(structpb.ListValue) }, LinkServiceServer.CreateLinks),
		unary("GetUserLinks", func() *emptypb.Empty { return new(emptypb.Empty) }, LinkServiceServer.GetUserLinks),
		unary("DeleteLinks", func() *structpb.ListValue { return new(structpb.ListValue) }, LinkServiceServer.DeleteLinks),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "links.proto",
}

// Client calls links.LinkService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) GetLink(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("GetLink"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListLinks(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, fullMethod("ListLinks"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLoading(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, fullMethod("GetLoading"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetLoading(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, fullMethod("SetLoading"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("GetStats"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLink(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("CreateLink"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLinks(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, fullMethod("CreateLinks"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUserLinks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, fullMethod("GetUserLinks"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteLinks(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, fullMethod("DeleteLinks"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
