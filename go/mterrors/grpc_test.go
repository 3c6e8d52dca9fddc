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

package mterrors

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToGRPCNil(t *testing.T) {
	got := ToGRPC(nil)
	assert.Nil(t, got)
}

func TestToGRPCRegularError(t *testing.T) {
	err := New(codes.InvalidArgument, "invalid query")
	grpcErr := ToGRPC(err)
	require.NotNil(t, grpcErr)

	st, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "invalid query", st.Message())
	assert.Empty(t, st.Details())
}

func TestToGRPCCodedError(t *testing.T) {
	grpcErr := ToGRPC(DP01004("row compare"))
	st, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, codes.Unimplemented, st.Code())
	assert.Equal(t, "DP01004: Unsupported feature: row compare", st.Message())

	details := st.Details()
	require.Len(t, details, 1)
	info, ok := details[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "DP01004", info.Reason)
	assert.Equal(t, ErrorDomain, info.Domain)
	assert.NotEmpty(t, info.Metadata["description"])
}

func TestToGRPCTruncates(t *testing.T) {
	long := strings.Repeat("x", 10*1024)
	st, ok := status.FromError(ToGRPC(New(codes.Internal, long)))
	require.True(t, ok)
	assert.Less(t, len(st.Message()), len(long))
	assert.True(t, strings.HasSuffix(st.Message(), "[remainder of the error is truncated because gRPC has a size limit on errors.]"))
}

func TestFromGRPCNil(t *testing.T) {
	assert.Nil(t, FromGRPC(nil))
}

func TestFromGRPCEOF(t *testing.T) {
	assert.Equal(t, io.EOF, FromGRPC(io.EOF))
}

func TestFromGRPCNonStatus(t *testing.T) {
	err := FromGRPC(errors.New("boom"))
	assert.Equal(t, codes.Unknown, Code(err))
	assert.Equal(t, "boom", err.Error())
}

func TestFromGRPCRoundTrip(t *testing.T) {
	orig := DP02002("unknown node kind Foo")
	back := FromGRPC(ToGRPC(orig))

	var mtErr *MultigresError
	require.ErrorAs(t, back, &mtErr)
	assert.Equal(t, "DP02002", mtErr.ID)
	assert.Equal(t, codes.InvalidArgument, Code(back))
	assert.Equal(t, orig.Error(), back.Error())
	assert.Equal(t, orig.Description, mtErr.Description)
}

func TestFromGRPCPlainStatus(t *testing.T) {
	back := FromGRPC(status.Error(codes.NotFound, "missing"))
	assert.Equal(t, codes.NotFound, Code(back))
	assert.Equal(t, "", ID(back))
}
