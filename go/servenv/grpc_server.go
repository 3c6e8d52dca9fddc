/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.

Modifications Copyright 2025 Supabase, Inc.
*/

package servenv

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net"
	"strconv"
	"time"

	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/multigres/pgdeparse/go/viperutil"

	"github.com/spf13/pflag"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// DefaultMaxMessageSize is the default gRPC send and receive limit.
const DefaultMaxMessageSize = 16 * 1024 * 1024

// GrpcServer holds all gRPC server configuration and the server instance.
// Services register themselves on Server between Create and Serve.
type GrpcServer struct {
	// port is the port to listen on for gRPC. If zero, the OS picks one.
	port viperutil.Value[int]

	// bindAddress is the address to bind to for gRPC. If empty, bind to all addresses.
	bindAddress viperutil.Value[string]

	// maxMessageSize caps both received and sent messages.
	maxMessageSize viperutil.Value[int]

	// maxConnectionAge is the maximum age of a client connection, before GoAway is sent.
	maxConnectionAge viperutil.Value[time.Duration]

	// maxConnectionAgeGrace is an additional grace period after maxConnectionAge
	maxConnectionAgeGrace viperutil.Value[time.Duration]

	// keepAliveEnforcementPolicyMinTime sets the keepalive enforcement policy on the server.
	keepAliveEnforcementPolicyMinTime viperutil.Value[time.Duration]

	// keepAliveEnforcementPolicyPermitWithoutStream allows keepalive pings even when there are no active streams
	keepAliveEnforcementPolicyPermitWithoutStream viperutil.Value[bool]

	// keepaliveTime is the time after which the server pings the client if no activity is seen
	keepaliveTime viperutil.Value[time.Duration]

	// keepaliveTimeout is the wait time after keepalive ping before closing the connection
	keepaliveTimeout viperutil.Value[time.Duration]

	// Server is the actual gRPC server instance
	Server *grpc.Server

	// Health reports SERVING for every registered service while Serve runs.
	Health *health.Server

	logger *slog.Logger
}

// NewGrpcServer creates and initializes a new GrpcServer with viperutil values
func NewGrpcServer(reg *viperutil.Registry) *GrpcServer {
	return &GrpcServer{
		port: viperutil.Configure(reg, "grpc-port", viperutil.Options[int]{
			Default:  15432,
			FlagName: "grpc-port",
			EnvVars:  []string{viperutil.EnvPrefix + "GRPC_PORT"},
		}),
		bindAddress: viperutil.Configure(reg, "grpc-bind-address", viperutil.Options[string]{
			Default:  "",
			FlagName: "grpc-bind-address",
		}),
		maxMessageSize: viperutil.Configure(reg, "grpc-max-message-size", viperutil.Options[int]{
			Default:  DefaultMaxMessageSize,
			FlagName: "grpc-max-message-size",
			EnvVars:  []string{viperutil.EnvPrefix + "GRPC_MAX_MESSAGE_SIZE"},
		}),
		maxConnectionAge: viperutil.Configure(reg, "grpc-max-connection-age", viperutil.Options[time.Duration]{
			Default:  time.Duration(math.MaxInt64),
			FlagName: "grpc-max-connection-age",
		}),
		maxConnectionAgeGrace: viperutil.Configure(reg, "grpc-max-connection-age-grace", viperutil.Options[time.Duration]{
			Default:  time.Duration(math.MaxInt64),
			FlagName: "grpc-max-connection-age-grace",
		}),
		keepAliveEnforcementPolicyMinTime: viperutil.Configure(reg, "grpc-server-keepalive-enforcement-policy-min-time", viperutil.Options[time.Duration]{
			Default:  10 * time.Second,
			FlagName: "grpc-server-keepalive-enforcement-policy-min-time",
		}),
		keepAliveEnforcementPolicyPermitWithoutStream: viperutil.Configure(reg, "grpc-server-keepalive-enforcement-policy-permit-without-stream", viperutil.Options[bool]{
			Default:  false,
			FlagName: "grpc-server-keepalive-enforcement-policy-permit-without-stream",
		}),
		keepaliveTime: viperutil.Configure(reg, "grpc-server-keepalive-time", viperutil.Options[time.Duration]{
			Default:  10 * time.Second,
			FlagName: "grpc-server-keepalive-time",
		}),
		keepaliveTimeout: viperutil.Configure(reg, "grpc-server-keepalive-timeout", viperutil.Options[time.Duration]{
			Default:  10 * time.Second,
			FlagName: "grpc-server-keepalive-timeout",
		}),
	}
}

// RegisterFlags registers all gRPC server flags with the given FlagSet
func (g *GrpcServer) RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("grpc-port", g.port.Default(), "Port to listen on for gRPC calls. If zero, an ephemeral port is used.")
	fs.String("grpc-bind-address", g.bindAddress.Default(), "Bind address for gRPC calls. If empty, listen on all addresses.")
	fs.Int("grpc-max-message-size", g.maxMessageSize.Default(), "Maximum size in bytes of a gRPC message, sent or received.")
	fs.Duration("grpc-max-connection-age", g.maxConnectionAge.Default(), "Maximum age of a client connection before GoAway is sent.")
	fs.Duration("grpc-max-connection-age-grace", g.maxConnectionAgeGrace.Default(), "Additional grace period after grpc-max-connection-age, after which connections are forcibly closed.")
	fs.Duration("grpc-server-keepalive-enforcement-policy-min-time", g.keepAliveEnforcementPolicyMinTime.Default(), "gRPC server minimum keepalive time")
	fs.Bool("grpc-server-keepalive-enforcement-policy-permit-without-stream", g.keepAliveEnforcementPolicyPermitWithoutStream.Default(), "gRPC server permit client keepalive pings even when there are no active streams (RPCs)")
	fs.Duration("grpc-server-keepalive-time", g.keepaliveTime.Default(), "After a duration of this time, if the server doesn't see any activity, it pings the client to see if the transport is still alive.")
	fs.Duration("grpc-server-keepalive-timeout", g.keepaliveTimeout.Default(), "After having pinged for keepalive check, the server waits for a duration of Timeout and if no activity is seen even after that the connection is closed.")

	viperutil.BindFlags(fs,
		g.port,
		g.bindAddress,
		g.maxMessageSize,
		g.maxConnectionAge,
		g.maxConnectionAgeGrace,
		g.keepAliveEnforcementPolicyMinTime,
		g.keepAliveEnforcementPolicyPermitWithoutStream,
		g.keepaliveTime,
		g.keepaliveTimeout,
	)
}

// Port returns the gRPC port
func (g *GrpcServer) Port() int {
	return g.port.Get()
}

// BindAddress returns the bind address
func (g *GrpcServer) BindAddress() string {
	return g.bindAddress.Get()
}

// MaxMessageSize returns the configured message size limit.
func (g *GrpcServer) MaxMessageSize() int {
	return g.maxMessageSize.Get()
}

// Create creates the gRPC server instance.
// It has to be called after flags are parsed, but before services register themselves.
func (g *GrpcServer) Create(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	g.logger = logger

	var opts []grpc.ServerOption
	// Override the default max message size for both send and receive
	// (which is 4 MiB in gRPC). Large parse trees serialize to big JSON
	// documents well past that limit.
	msgSize := g.maxMessageSize.Get()
	logger.Info("Setting grpc max message size", "msgSize", msgSize)
	opts = append(opts, grpc.MaxRecvMsgSize(msgSize))
	opts = append(opts, grpc.MaxSendMsgSize(msgSize))

	ep := keepalive.EnforcementPolicy{
		MinTime:             g.keepAliveEnforcementPolicyMinTime.Get(),
		PermitWithoutStream: g.keepAliveEnforcementPolicyPermitWithoutStream.Get(),
	}
	opts = append(opts, grpc.KeepaliveEnforcementPolicy(ep))

	ka := keepalive.ServerParameters{
		MaxConnectionAge:      g.maxConnectionAge.Get(),
		MaxConnectionAgeGrace: g.maxConnectionAgeGrace.Get(),
		Time:                  g.keepaliveTime.Get(),
		Timeout:               g.keepaliveTimeout.Get(),
	}
	opts = append(opts, grpc.KeepaliveParams(ka))

	opts = append(opts, g.interceptors()...)

	g.Server = grpc.NewServer(opts...)
}

// interceptors builds the list of interceptors for the gRPC server
func (g *GrpcServer) interceptors() []grpc.ServerOption {
	interceptors := &serverInterceptorBuilder{logger: g.logger}
	interceptors.Add(StreamLoggingInterceptor(g.logger), UnaryLoggingInterceptor(g.logger))
	interceptors.Add(StreamRecoveryInterceptor(g.logger), UnaryRecoveryInterceptor(g.logger))
	return interceptors.Build()
}

// Listen opens the TCP listener on the configured bind address and port.
func (g *GrpcServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", net.JoinHostPort(g.bindAddress.Get(), strconv.Itoa(g.port.Get())))
}

// Serve registers the health and reflection services and serves on lis
// until ctx is cancelled, then stops gracefully.
func (g *GrpcServer) Serve(ctx context.Context, lis net.Listener) error {
	if g.Server == nil {
		return errors.New("grpc server not created")
	}

	// register reflection to support list calls :)
	reflection.Register(g.Server)

	// register health service to support health checks
	g.Health = health.NewServer()
	healthpb.RegisterHealthServer(g.Server, g.Health)

	for service := range g.Server.GetServiceInfo() {
		g.Health.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
	}
	g.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g.logger.Info("Listening for gRPC calls", "address", lis.Addr().String())

	// NOTE: Before we call Serve(), all services must have registered themselves
	//       with the Server. Registering after Serve crashes the binary with
	//       the error "grpc: Server.RegisterService after Server.Serve".
	errCh := make(chan error, 1)
	go func() {
		errCh <- g.Server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		g.logger.Info("Initiated graceful stop of gRPC server")
		g.Health.Shutdown()
		g.Server.GracefulStop()
		g.logger.Info("gRPC server stopped")
		if err := <-errCh; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	}
}

// serverInterceptorBuilder chains together multiple ServerInterceptors
type serverInterceptorBuilder struct {
	logger             *slog.Logger
	streamInterceptors []grpc.StreamServerInterceptor
	unaryInterceptors  []grpc.UnaryServerInterceptor
}

// Add adds interceptors to the builder
func (collector *serverInterceptorBuilder) Add(s grpc.StreamServerInterceptor, u grpc.UnaryServerInterceptor) {
	collector.streamInterceptors = append(collector.streamInterceptors, s)
	collector.unaryInterceptors = append(collector.unaryInterceptors, u)
}

// Build returns ServerOptions to add to the grpc.NewServer call
func (collector *serverInterceptorBuilder) Build() []grpc.ServerOption {
	collector.logger.Debug("Building interceptors", "unary", len(collector.unaryInterceptors), "stream", len(collector.streamInterceptors))
	switch len(collector.unaryInterceptors) + len(collector.streamInterceptors) {
	case 0:
		return []grpc.ServerOption{}
	default:
		return []grpc.ServerOption{
			grpc.UnaryInterceptor(grpcmiddleware.ChainUnaryServer(collector.unaryInterceptors...)),
			grpc.StreamInterceptor(grpcmiddleware.ChainStreamServer(collector.streamInterceptors...)),
		}
	}
}
