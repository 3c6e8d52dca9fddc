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

package deparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/mterrors"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		message  string
		id       string
		grpcCode codes.Code
	}{
		{errMissing("relation"), "Missing field: relation", "DP01001", codes.InvalidArgument},
		{errUnexpectedNode(ast.NewInteger(1)), "Unexpected node type: Integer", "DP01002", codes.InvalidArgument},
		{errUnexpectedNode(nil), "Unexpected node type: <nil>", "DP01002", codes.InvalidArgument},
		{errUnexpectedObject(ast.OBJECT_ACCESS_METHOD), "Unexpected object type: OBJECT_ACCESS_METHOD", "DP01003", codes.InvalidArgument},
		{errUnsupported("frame option 0x%x", 0x40), "Unsupported feature: frame option 0x40", "DP01004", codes.Unimplemented},
		{errUnreachable(), "Unreachable", "DP01005", codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.message)
			assert.Equal(t, tt.id, mterrors.ID(tt.err))
			assert.Equal(t, tt.grpcCode, mterrors.Code(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("statement 2: %w", errMissing("relname"))
	assert.True(t, IsKind(wrapped, Missing))
	assert.False(t, IsKind(wrapped, Unsupported))
	assert.False(t, IsKind(fmt.Errorf("plain"), Missing))
	assert.False(t, IsKind(nil, Missing))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "Missing", Missing.String())
	assert.Equal(t, "UnexpectedObjectType", UnexpectedObjectType.String())
	assert.Equal(t, "Unknown", ErrorKind(42).String())
}
