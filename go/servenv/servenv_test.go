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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/multigres/pgdeparse/go/viperutil"
)

func newTestEnv(t *testing.T, args ...string) (*ServEnv, *GrpcServer) {
	t.Helper()
	reg := viperutil.NewRegistry()
	sv := NewServEnv(reg)
	gs := NewGrpcServer(reg)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	sv.RegisterFlags(fs)
	gs.RegisterFlags(fs)
	require.NoError(t, fs.Parse(append([]string{"--config-file-not-found-handling=ignore"}, args...)))
	return sv, gs
}

func TestInitLoadsConfigFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	file := filepath.Join(dir, "pgdeparse.yaml")
	logFile := filepath.Join(dir, "out.log")
	require.NoError(t, os.WriteFile(file, []byte("log-level: debug\nlog-output: "+logFile+"\ngrpc-port: 7001\n"), 0o644))

	sv, gs := newTestEnv(t, "--config-file="+file)
	require.NoError(t, sv.Init(context.Background()))
	require.NoError(t, sv.Init(context.Background()))
	defer func() { require.NoError(t, sv.Close()) }()

	assert.Equal(t, file, sv.Registry().ConfigFileUsed())
	assert.Equal(t, "debug", sv.Logger().GetLogLevel())
	assert.Equal(t, logFile, sv.Logger().GetLogOutput())
	assert.Equal(t, 7001, gs.Port())
	assert.Equal(t, DefaultMaxMessageSize, gs.MaxMessageSize())
}

func TestOnCloseRunsInReverseOrder(t *testing.T) {
	sv, _ := newTestEnv(t)
	var order []int
	sv.OnClose(func() { order = append(order, 1) })
	sv.OnClose(func() { order = append(order, 2) })
	require.NoError(t, sv.Close())
	assert.Equal(t, []int{2, 1}, order)

	require.NoError(t, sv.Close())
	assert.Equal(t, []int{2, 1}, order)
}

func TestRunOnListener(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pgdeparse.pid")
	sv, gs := newTestEnv(t, "--pid-file="+pidFile, "--lameduck-period=0s")

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- sv.RunOnListener(ctx, gs, lis, nil)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	require.NoError(t, sv.Close())
	_, err = os.Stat(pidFile)
	assert.True(t, os.IsNotExist(err))
}

func TestPidFileExists(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pgdeparse.pid")
	require.NoError(t, os.WriteFile(pidFile, []byte("1\n"), 0o644))
	sv, gs := newTestEnv(t, "--pid-file="+pidFile)

	err := sv.RunOnListener(context.Background(), gs, bufconn.Listen(1024), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to create pid file")
}
