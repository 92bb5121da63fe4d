package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "assetly.v1.AssetService"

// AssetServiceServer is the server API for the asset service.
// Messages are protobuf well-known types; asset and settings payloads travel
// as google.protobuf.Struct with the same field names as the JSON API.
type AssetServiceServer interface {
	AddAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteAsset(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetAsset(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListAssets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetSettings(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterAssetServiceServer registers srv on s
func RegisterAssetServiceServer(s grpc.ServiceRegistrar, srv AssetServiceServer) {
	s.RegisterService(&AssetServiceDesc, srv)
}

// FullMethod returns the path of method, e.g. "/assetly.v1.AssetService/AddAsset"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func newStruct() *structpb.Struct             { return new(structpb.Struct) }
func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newEmpty() *emptypb.Empty                { return new(emptypb.Empty) }

// AssetServiceDesc describes the asset service for grpc.Server.RegisterService
var AssetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AssetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddAsset",
			Handler: unaryHandler("AddAsset", newStruct, func(s AssetServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.AddAsset(ctx, in)
			}),
		},
		{
			MethodName: "UpdateAsset",
			Handler: unaryHandler("UpdateAsset", newStruct, func(s AssetServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.UpdateAsset(ctx, in)
			}),
		},
		{
			MethodName: "DeleteAsset",
			Handler: unaryHandler("DeleteAsset", newStringValue, func(s AssetServiceServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.DeleteAsset(ctx, in)
			}),
		},
		{
			MethodName: "GetAsset",
			Handler: unaryHandler("GetAsset", newStringValue, func(s AssetServiceServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.GetAsset(ctx, in)
			}),
		},
		{
			MethodName: "ListAssets",
			Handler: unaryHandler("ListAssets", newStruct, func(s AssetServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.ListAssets(ctx, in)
			}),
		},
		{
			MethodName: "GetSummary",
			Handler: unaryHandler("GetSummary", newEmpty, func(s AssetServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.GetSummary(ctx, in)
			}),
		},
		{
			MethodName: "GetSettings",
			Handler: unaryHandler("GetSettings", newEmpty, func(s AssetServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.GetSettings(ctx, in)
			}),
		},
		{
			MethodName: "UpdateSettings",
			Handler: unaryHandler("UpdateSettings", newStruct, func(s AssetServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.UpdateSettings(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "assetly/v1/asset_service.proto",
}

// unaryHandler decodes the request into a fresh Req and runs call through the interceptor chain
func unaryHandler[Req proto.Message](
	method string,
	newReq func() Req,
	call func(AssetServiceServer, context.Context, Req) (proto.Message, error),
) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AssetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(AssetServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AssetServiceClient is a thin client for the asset service
type AssetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAssetServiceClient creates a client over cc
func NewAssetServiceClient(cc grpc.ClientConnInterface) *AssetServiceClient {
	return &AssetServiceClient{cc: cc}
}

// AddAsset calls AssetService.AddAsset
func (c *AssetServiceClient) AddAsset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("AddAsset"), in, out, opts...)
}

// UpdateAsset calls AssetService.UpdateAsset
func (c *AssetServiceClient) UpdateAsset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("UpdateAsset"), in, out, opts...)
}

// DeleteAsset calls AssetService.DeleteAsset
func (c *AssetServiceClient) DeleteAsset(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	return out, c.cc.Invoke(ctx, FullMethod("DeleteAsset"), in, out, opts...)
}

// GetAsset calls AssetService.GetAsset
func (c *AssetServiceClient) GetAsset(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("GetAsset"), in, out, opts...)
}

// ListAssets calls AssetService.ListAssets
func (c *AssetServiceClient) ListAssets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("ListAssets"), in, out, opts...)
}

// GetSummary calls AssetService.GetSummary
func (c *AssetServiceClient) GetSummary(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("GetSummary"), in, out, opts...)
}

// GetSettings calls AssetService.GetSettings
func (c *AssetServiceClient) GetSettings(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("GetSettings"), in, out, opts...)
}

// UpdateSettings calls AssetService.UpdateSettings
func (c *AssetServiceClient) UpdateSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.cc.Invoke(ctx, FullMethod("UpdateSettings"), in, out, opts...)
}
