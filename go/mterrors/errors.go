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

// Package mterrors provides coded errors that keep their error ID and gRPC
// code across package and process boundaries.
package mterrors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

// Coded is implemented by errors that carry a documented error ID.
// Packages that cannot import mterrors' constructors, such as the deparser
// core, implement it on their own error types.
type Coded interface {
	error
	ErrorID() string
}

type codedError struct {
	code codes.Code
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

// New returns an error with the given gRPC code and message.
func New(code codes.Code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Errorf returns an error with the given gRPC code and a formatted message.
func Errorf(code codes.Code, format string, args ...any) error {
	return &codedError{code: code, msg: fmt.Sprintf(format, args...)}
}

// Code returns the gRPC code of err. Wrapped errors are unwrapped; errors
// with no code report codes.Unknown.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	var mtErr *MultigresError
	if errors.As(err, &mtErr) {
		return mtErr.Code
	}
	var coded Coded
	if errors.As(err, &coded) {
		if code, _, ok := Describe(coded.ErrorID()); ok {
			return code
		}
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}

// ID returns the error ID carried by err, or "".
func ID(err error) string {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorID()
	}
	return ""
}

// Wrap converts a coded error into a *MultigresError whose message is
// prefixed with the error ID. Errors that are already a *MultigresError, or
// carry no registered ID, are returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var mtErr *MultigresError
	if errors.As(err, &mtErr) {
		return err
	}
	id := ID(err)
	code, description, ok := Describe(id)
	if !ok {
		return err
	}
	return &MultigresError{
		Err:         fmt.Errorf("%s: %w", id, err),
		Description: description,
		ID:          id,
		Code:        code,
	}
}
