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
	"net"

	"github.com/spf13/pflag"

	"github.com/multigres/pgdeparse/go/servenv"
	"github.com/multigres/pgdeparse/go/viperutil"
)

// Deparser is the serving process: the environment, the gRPC server
// configuration and the service they host.
type Deparser struct {
	// senv is the serving environment
	senv *servenv.ServEnv

	// grpcServer is the grpc server
	grpcServer *servenv.GrpcServer

	workers func() int
}

// NewDeparser registers the gRPC server values in reg. senv must have been
// built from the same registry.
func NewDeparser(reg *viperutil.Registry, senv *servenv.ServEnv, workers func() int) *Deparser {
	return &Deparser{
		senv:       senv,
		grpcServer: servenv.NewGrpcServer(reg),
		workers:    workers,
	}
}

// RegisterFlags registers flags specific to the service.
func (d *Deparser) RegisterFlags(fs *pflag.FlagSet) {
	d.grpcServer.RegisterFlags(fs)
}

// Run serves the Deparser service on the configured address until ctx is
// cancelled or the process is signalled.
func (d *Deparser) Run(ctx context.Context) error {
	lis, err := d.grpcServer.Listen()
	if err != nil {
		return err
	}
	return d.RunOnListener(ctx, lis)
}

// RunOnListener is Run with a caller-provided listener.
func (d *Deparser) RunOnListener(ctx context.Context, lis net.Listener) error {
	server := NewServer(d.senv.Logger().GetLogger(), d.workers)
	return d.senv.RunOnListener(ctx, d.grpcServer, lis, server.RegisterWithGRPCServer)
}
