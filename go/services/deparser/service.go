// Copyright 2025 Supabase, Inc.
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

package deparser

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "pgdeparse.Deparser"

	deparseMethod   = "/" + ServiceName + "/Deparse"
	normalizeMethod = "/" + ServiceName + "/Normalize"
)

// DeparserServer is the server API of the pgdeparse.Deparser service.
type DeparserServer interface {
	// Deparse renders a libpg_query JSON parse tree as SQL.
	Deparse(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// Normalize parses SQL and renders it back in canonical form.
	Normalize(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// DeparserClient is the client API of the pgdeparse.Deparser service.
type DeparserClient interface {
	Deparse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Normalize(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type deparserClient struct {
	cc grpc.ClientConnInterface
}

// NewDeparserClient returns a client for the service served on cc.
func NewDeparserClient(cc grpc.ClientConnInterface) DeparserClient {
	return &deparserClient{cc: cc}
}

func (c *deparserClient) Deparse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, deparseMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deparserClient) Normalize(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, normalizeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterDeparserServer registers srv on s.
func RegisterDeparserServer(s grpc.ServiceRegistrar, srv DeparserServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DeparserServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deparse", Handler: deparseHandler},
		{MethodName: "Normalize", Handler: normalizeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pgdeparse/deparser.proto",
}

func deparseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeparserServer).Deparse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deparseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DeparserServer).Deparse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func normalizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeparserServer).Normalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: normalizeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DeparserServer).Normalize(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
