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
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/multigres/pgdeparse/go/mterrors"
	"github.com/multigres/pgdeparse/go/servenv"
	"github.com/multigres/pgdeparse/go/viperutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const selectTree = `{"version":170004,"stmts":[{"stmt":{"SelectStmt":{
	"targetList":[{"ResTarget":{"val":{"A_Const":{"ival":{"ival":1},"location":7}},"location":7}}],
	"limitOption":"LIMIT_OPTION_DEFAULT","op":"SETOP_NONE"}},"stmt_len":8}]}`

// startService runs a Deparser on an in-memory listener and returns a
// connected client. The service stops when the test ends.
func startService(t *testing.T) (DeparserClient, *grpc.ClientConn) {
	t.Helper()
	reg := viperutil.NewRegistry()
	senv := servenv.NewServEnv(reg)
	d := NewDeparser(reg, senv, func() int { return 2 })

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	senv.RegisterFlags(fs)
	d.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--lameduck-period=0s", "--grpc-max-message-size=1048576"}))

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- d.RunOnListener(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("service did not stop")
		}
		assert.NoError(t, senv.Close())
	})

	health := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		resp, err := health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 10*time.Millisecond)

	return NewDeparserClient(conn), conn
}

func TestDeparse(t *testing.T) {
	client, _ := startService(t)

	resp, err := client.Deparse(context.Background(), wrapperspb.String(selectTree))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", resp.GetValue())
}

func TestNormalize(t *testing.T) {
	client, _ := startService(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower case keywords", "select a from t where b = 1", "SELECT a FROM t WHERE b = 1"},
		{"multiple statements", "begin; select 1; commit", "BEGIN; SELECT 1; COMMIT"},
		{"quoted identifiers", `select "User" from "t"`, `SELECT "User" FROM t`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Normalize(context.Background(), wrapperspb.String(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.GetValue())
		})
	}
}

func TestErrors(t *testing.T) {
	client, _ := startService(t)

	tests := []struct {
		name   string
		call   func() error
		code   codes.Code
		errID  string
		substr string
	}{
		{
			name: "invalid sql",
			call: func() error {
				_, err := client.Normalize(context.Background(), wrapperspb.String("SELEC 1"))
				return err
			},
			code:  codes.InvalidArgument,
			errID: "DP02001",
		},
		{
			name: "invalid tree",
			call: func() error {
				_, err := client.Deparse(context.Background(), wrapperspb.String(`{"stmts":[{"stmt":{"Bogus":{}}}]}`))
				return err
			},
			code:  codes.InvalidArgument,
			errID: "DP02002",
		},
		{
			name: "missing field",
			call: func() error {
				_, err := client.Deparse(context.Background(), wrapperspb.String(`{"stmts":[{"stmt":{"UpdateStmt":{}}}]}`))
				return err
			},
			code:   codes.InvalidArgument,
			errID:  "DP01001",
			substr: "relation",
		},
		{
			name: "unsupported node",
			call: func() error {
				_, err := client.Deparse(context.Background(), wrapperspb.String(`{"stmts":[{"stmt":{"Var":{"varno":1}}}]}`))
				return err
			},
			code:  codes.Unimplemented,
			errID: "DP01004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.errID, mterrors.ID(mterrors.FromGRPC(err)))
			if tt.substr != "" {
				assert.Contains(t, err.Error(), tt.substr)
			}
		})
	}
}

func TestMaxMessageSize(t *testing.T) {
	client, _ := startService(t)

	big := make([]byte, 2<<20)
	for i := range big {
		big[i] = ' '
	}
	_, err := client.Normalize(context.Background(), wrapperspb.String("SELECT 1"+string(big)))
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestServerDirect(t *testing.T) {
	s := NewServer(nil, nil)
	resp, err := s.Normalize(context.Background(), wrapperspb.String("select 1"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", resp.GetValue())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Normalize(ctx, wrapperspb.String("select 1"))
	require.Error(t, err)
	assert.Equal(t, codes.Canceled, status.Code(err))
}
