// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package servenv

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/multigres/pgdeparse/go/mterrors"
)

func TestUnaryRecoveryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	info := &grpc.UnaryServerInfo{FullMethod: "/pgdeparse.Deparser/Deparse"}

	_, err := UnaryRecoveryInterceptor(logger)(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "DP01005", mterrors.ID(mterrors.FromGRPC(err)))
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	info := &grpc.UnaryServerInfo{FullMethod: "/pgdeparse.Deparser/Normalize"}
	interceptor := UnaryLoggingInterceptor(logger)

	resp, err := interceptor(context.Background(), "req", info, func(_ context.Context, req any) (any, error) {
		return req, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req", resp)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "code=OK")

	buf.Reset()
	_, err = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad tree")
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "code=InvalidArgument")

	buf.Reset()
	_, err = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, errors.New("plain")
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "code=Unknown")
}
