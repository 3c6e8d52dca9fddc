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

// Package deparser serves the SQL renderer over gRPC.
package deparser

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
	"github.com/multigres/pgdeparse/go/mterrors"
)

// Server implements DeparserServer.
type Server struct {
	// logger for structured logging
	logger *slog.Logger

	// workers returns how many statements of one request render in parallel.
	workers func() int
}

var _ DeparserServer = (*Server)(nil)

// NewServer creates a Server. workers is consulted on every request, so a
// dynamic config value can be passed directly.
func NewServer(logger *slog.Logger, workers func() int) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if workers == nil {
		workers = func() int { return 1 }
	}
	return &Server{logger: logger, workers: workers}
}

// RegisterWithGRPCServer registers the Deparser service with the provided gRPC server.
func (s *Server) RegisterWithGRPCServer(grpcServer *grpc.Server) {
	RegisterDeparserServer(grpcServer, s)
	s.logger.Info("Deparser service registered with gRPC server")
}

// Deparse decodes a libpg_query JSON parse tree and renders it.
func (s *Server) Deparse(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	nodes, err := jsontree.Decode([]byte(in.GetValue()))
	if err != nil {
		return nil, mterrors.ToGRPC(err)
	}
	return s.render(ctx, nodes)
}

// Normalize parses SQL text and renders it in canonical form.
func (s *Server) Normalize(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	nodes, err := jsontree.ParseSQL(in.GetValue())
	if err != nil {
		return nil, mterrors.ToGRPC(err)
	}
	return s.render(ctx, nodes)
}

func (s *Server) render(ctx context.Context, nodes []ast.Node) (*wrapperspb.StringValue, error) {
	sql, err := deparse.RenderParallel(ctx, nodes, s.workers())
	if err != nil {
		s.logger.DebugContext(ctx, "render failed", "statements", len(nodes), "err", err)
		return nil, mterrors.ToGRPC(err)
	}
	return wrapperspb.String(sql), nil
}
