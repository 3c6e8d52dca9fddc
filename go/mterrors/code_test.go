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
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

type idError struct {
	id  string
	msg string
}

func (e *idError) Error() string   { return e.msg }
func (e *idError) ErrorID() string { return e.id }

func TestErrorsRegistered(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Errors {
		err := f("x")
		require.NotEmpty(t, err.ID)
		assert.False(t, seen[err.ID], "duplicate error id %s", err.ID)
		seen[err.ID] = true

		code, description, ok := Describe(err.ID)
		require.True(t, ok, err.ID)
		assert.Equal(t, code, err.Code)
		assert.Equal(t, description, err.Description)
		assert.NotEmpty(t, description)
	}
	assert.Len(t, seen, 8)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *MultigresError
		msg  string
		code codes.Code
	}{
		{"missing", DP01001("relation"), "DP01001: Missing field: relation", codes.InvalidArgument},
		{"node type", DP01002("A_Star"), "DP01002: Unexpected node type: A_Star", codes.InvalidArgument},
		{"object type", DP01003("OBJECT_ACCESS_METHOD"), "DP01003: Unexpected object type: OBJECT_ACCESS_METHOD", codes.InvalidArgument},
		{"unsupported", DP01004("row compare"), "DP01004: Unsupported feature: row compare", codes.Unimplemented},
		{"unreachable", DP01005(), "DP01005: Unreachable", codes.Internal},
		{"parse", DP02001("syntax error"), "DP02001: failed to parse SQL: syntax error", codes.InvalidArgument},
		{"io", DP03001("closed"), "DP03001: I/O failure: closed", codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.Equal(t, tt.code, Code(tt.err))
			assert.Equal(t, tt.err.ID, ID(tt.err))
			assert.True(t, IsError(tt.err, tt.err.ID))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, codes.OK, Code(nil))
	assert.Equal(t, codes.Unknown, Code(errors.New("plain")))
	assert.Equal(t, codes.Canceled, Code(fmt.Errorf("stopped: %w", context.Canceled)))
	assert.Equal(t, codes.DeadlineExceeded, Code(context.DeadlineExceeded))
	assert.Equal(t, codes.NotFound, Code(New(codes.NotFound, "gone")))
	assert.Equal(t, codes.Unimplemented, Code(fmt.Errorf("render: %w", &idError{id: "DP01004", msg: "Unsupported feature: x"})))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, Wrap(plain))

	src := &idError{id: "DP01001", msg: "Missing field: relation"}
	wrapped := Wrap(fmt.Errorf("statement 1: %w", src))
	var mtErr *MultigresError
	require.ErrorAs(t, wrapped, &mtErr)
	assert.Equal(t, "DP01001", mtErr.ID)
	assert.Equal(t, codes.InvalidArgument, mtErr.Code)
	assert.Equal(t, "DP01001: statement 1: Missing field: relation", wrapped.Error())
	assert.ErrorIs(t, wrapped, src)

	again := DP01004("x")
	assert.Same(t, again, Wrap(again))

	assert.False(t, IsError(nil, "DP01001"))
}
