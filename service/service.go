// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package service exposes named binary search trees over gRPC.  The messages
// are protobuf well-known types: a tree is addressed by a StringValue holding
// its name, and requests with more than one argument are Structs (see
// messages.go).
package service

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified name of the Tree service.
const ServiceName = "bintree.Tree"

// TreeClient is the client API for Tree service.
type TreeClient interface {
	// Insert inserts a record into a tree, returning false if the tree already
	// holds an equal record.
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	// Retrieve returns the stored record equal to the given one.
	Retrieve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	// Height returns the height of the subtree rooted at the given record.
	Height(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	IsEmpty(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Clear(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*empty.Empty, error)
	// Copy replaces a tree with a deep copy of another.
	Copy(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error)
	// Equal tests two trees for structural equality.
	Equal(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	// Flatten moves all records out of a tree in ascending order.
	Flatten(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	// Build rebuilds a tree of minimal height from sorted records.
	Build(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error)
	// Balance rebuilds a tree of minimal height from its own records.
	Balance(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	List(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Sideways(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Draw(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type treeClient struct {
	cc grpc.ClientConnInterface
}

// NewTreeClient creates a new client for Tree service.
func NewTreeClient(cc grpc.ClientConnInterface) TreeClient {
	return &treeClient{cc}
}

// invoke sends a unary request for the given method of Tree service.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, "Insert", in, opts...)
}

func (c *treeClient) Retrieve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Retrieve", in, opts...)
}

func (c *treeClient) Height(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, "Height", in, opts...)
}

func (c *treeClient) IsEmpty(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, "IsEmpty", in, opts...)
}

func (c *treeClient) Clear(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Clear", in, opts...)
}

func (c *treeClient) Copy(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Copy", in, opts...)
}

func (c *treeClient) Equal(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, "Equal", in, opts...)
}

func (c *treeClient) Flatten(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, "Flatten", in, opts...)
}

func (c *treeClient) Build(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Build", in, opts...)
}

func (c *treeClient) Balance(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, "Balance", in, opts...)
}

func (c *treeClient) List(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, "List", in, opts...)
}

func (c *treeClient) Sideways(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, "Sideways", in, opts...)
}

func (c *treeClient) Draw(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Draw", in, opts...)
}

// TreeServer is the server API for Tree service.
// All implementations must embed UnimplementedTreeServer
// for forward compatibility
type TreeServer interface {
	Insert(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Retrieve(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Height(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	IsEmpty(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Clear(context.Context, *wrapperspb.StringValue) (*empty.Empty, error)
	Copy(context.Context, *structpb.Struct) (*empty.Empty, error)
	Equal(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Flatten(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	Build(context.Context, *structpb.Struct) (*empty.Empty, error)
	Balance(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	List(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	Sideways(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	Draw(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	mustEmbedUnimplementedTreeServer()
}

// UnimplementedTreeServer must be embedded to have forward compatible implementations.
type UnimplementedTreeServer struct {
}

func (UnimplementedTreeServer) Insert(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedTreeServer) Retrieve(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Retrieve not implemented")
}
func (UnimplementedTreeServer) Height(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Height not implemented")
}
func (UnimplementedTreeServer) IsEmpty(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsEmpty not implemented")
}
func (UnimplementedTreeServer) Clear(context.Context, *wrapperspb.StringValue) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedTreeServer) Copy(context.Context, *structpb.Struct) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Copy not implemented")
}
func (UnimplementedTreeServer) Equal(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Equal not implemented")
}
func (UnimplementedTreeServer) Flatten(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Flatten not implemented")
}
func (UnimplementedTreeServer) Build(context.Context, *structpb.Struct) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Build not implemented")
}
func (UnimplementedTreeServer) Balance(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Balance not implemented")
}
func (UnimplementedTreeServer) List(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedTreeServer) Sideways(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Sideways not implemented")
}
func (UnimplementedTreeServer) Draw(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Draw not implemented")
}
func (UnimplementedTreeServer) mustEmbedUnimplementedTreeServer() {}

// RegisterTreeServer registers the given implementation of Tree service.
func RegisterTreeServer(s grpc.ServiceRegistrar, srv TreeServer) {
	s.RegisterService(&Tree_ServiceDesc, srv)
}

// unary describes a unary method of Tree service whose handler decodes the
// request and dispatches it to call through the interceptor chain.
func unary[Req, Resp any](method string, call func(TreeServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TreeServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TreeServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Tree_ServiceDesc is the grpc.ServiceDesc for Tree service.
var Tree_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TreeServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Insert", TreeServer.Insert),
		unary("Retrieve", TreeServer.Retrieve),
		unary("Height", TreeServer.Height),
		unary("IsEmpty", TreeServer.IsEmpty),
		unary("Clear", TreeServer.Clear),
		unary("Copy", TreeServer.Copy),
		unary("Equal", TreeServer.Equal),
		unary("Flatten", TreeServer.Flatten),
		unary("Build", TreeServer.Build),
		unary("Balance", TreeServer.Balance),
		unary("List", TreeServer.List),
		unary("Sideways", TreeServer.Sideways),
		unary("Draw", TreeServer.Draw),
	},
	Streams: []grpc.StreamDesc{},
}
