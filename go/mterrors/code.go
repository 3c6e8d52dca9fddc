// Copyright 2022 The Vitess Authors.
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
// Modifications Copyright 2025 Supabase, Inc.

package mterrors

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// Errors added to the list of variables below must be added to the Errors slice a little below in this same file.
// This will enable the auto-documentation of error codes.

var (
	// DP01001 Missing Field
	DP01001 = errorWithCode("DP01001", codes.InvalidArgument, "Missing field: %s", "A node lacks a field that the grammar requires for the construct to be written out.")
	// DP01002 Unexpected Node Type
	DP01002 = errorWithCode("DP01002", codes.InvalidArgument, "Unexpected node type: %s", "A field holds a node of a kind that cannot appear in that position.")
	// DP01003 Unexpected Object Type
	DP01003 = errorWithCode("DP01003", codes.InvalidArgument, "Unexpected object type: %s", "A statement names an object type it has no syntax for.")
	// DP01004 Unsupported Feature
	DP01004 = errorWithCode("DP01004", codes.Unimplemented, "Unsupported feature: %s", "The tree describes a construct with no canonical SQL rendering, or a combination the grammar disallows.")
	// DP01005 Unreachable
	DP01005 = errorWithCode("DP01005", codes.Internal, "Unreachable", "This error should not happen and is a bug. Please file an issue.")

	// DP02001 Parse Failure
	DP02001 = errorWithCode("DP02001", codes.InvalidArgument, "failed to parse SQL: %s", "The SQL text could not be parsed by the PostgreSQL parser.")
	// DP02002 Decode Failure
	DP02002 = errorWithCode("DP02002", codes.InvalidArgument, "failed to decode parse tree: %s", "The JSON or YAML document is not a valid libpg_query parse tree.")

	// DP03001 IO Failure
	DP03001 = errorWithCode("DP03001", codes.Unavailable, "I/O failure: %s", "Reading input or writing output failed.")

	// Errors is a list of errors that must match all the variables
	// defined above to enable auto-documentation of error codes.
	Errors = []func(args ...any) *MultigresError{
		DP01001,
		DP01002,
		DP01003,
		DP01004,
		DP01005,
		DP02001,
		DP02002,
		DP03001,
	}
)

// errorInfo is the registered metadata of an error ID.
type errorInfo struct {
	code        codes.Code
	description string
}

var registry = map[string]errorInfo{}

// MultigresError is an error carrying a documented error ID and a gRPC code.
type MultigresError struct {
	Err         error
	Description string
	ID          string
	Code        codes.Code
}

func (o *MultigresError) Error() string {
	return o.Err.Error()
}

func (o *MultigresError) Cause() error {
	return o.Err
}

func (o *MultigresError) Unwrap() error {
	return o.Err
}

// ErrorID returns the documented ID of the error.
func (o *MultigresError) ErrorID() string {
	return o.ID
}

var _ error = (*MultigresError)(nil)

// errorWithCode registers id and returns a constructor for errors with a
// fixed gRPC code.
func errorWithCode(id string, code codes.Code, short, long string) func(args ...any) *MultigresError {
	registry[id] = errorInfo{code: code, description: long}
	return func(args ...any) *MultigresError {
		s := short
		if len(args) != 0 {
			s = fmt.Sprintf(s, args...)
		}

		return &MultigresError{
			Err:         New(code, id+": "+s),
			Description: long,
			ID:          id,
			Code:        code,
		}
	}
}

// Describe returns the gRPC code and description registered for id.
func Describe(id string) (codes.Code, string, bool) {
	info, ok := registry[id]
	return info.code, info.description, ok
}

// IsError reports whether err carries the given error ID.
func IsError(err error, id string) bool {
	if err == nil {
		return false
	}
	if ID(err) == id {
		return true
	}
	return strings.Contains(err.Error(), id)
}
