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

package servenv

import (
	"context"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
)

// Run creates the gRPC server, lets register add services to it and serves
// until ctx is cancelled or the process receives SIGTERM or SIGINT. After the
// signal it waits out the lameduck period before stopping gracefully.
func (sv *ServEnv) Run(ctx context.Context, grpcServer *GrpcServer, register func(s *grpc.Server)) error {
	lis, err := grpcServer.Listen()
	if err != nil {
		return err
	}
	return sv.RunOnListener(ctx, grpcServer, lis, register)
}

// RunOnListener is Run with a caller-provided listener.
func (sv *ServEnv) RunOnListener(ctx context.Context, grpcServer *GrpcServer, lis net.Listener, register func(s *grpc.Server)) error {
	logger := sv.logger.GetLogger()
	if err := sv.writePidFile(); err != nil {
		_ = lis.Close()
		return err
	}

	grpcServer.Create(logger)
	if register != nil {
		register(grpcServer.Server)
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	serveCtx, cancelServe := context.WithCancel(context.Background())
	done := make(chan struct{})
	defer func() {
		cancelServe()
		<-done
	}()
	go func() {
		defer close(done)
		select {
		case <-serveCtx.Done():
			return
		case <-sigCtx.Done():
		}
		if ctx.Err() == nil {
			period := sv.lameduckPeriod.Get()
			logger.Info("entering lameduck mode", "period", period)
			time.Sleep(period)
		}
		cancelServe()
	}()

	logger.Info("service successfully started", "address", lis.Addr().String())
	err := grpcServer.Serve(serveCtx, lis)
	slog.Info("shutting down gracefully")
	return err
}
