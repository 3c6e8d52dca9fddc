// Copyright 2019 The Vitess Authors.
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
	"io"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This file contains functions to convert errors to and from gRPC codes.
// Use these methods to return an error through gRPC and still
// retain its code and error ID.

// ErrorDomain is the domain of the ErrorInfo detail attached to gRPC errors.
const ErrorDomain = "pgdeparse"

// truncateError shortens errors because gRPC has a size restriction on them.
func truncateError(err error) string {
	// For more details see: https://github.com/grpc/grpc-go/issues/443
	// The gRPC spec says "Clients may limit the size of Response-Headers,
	// Trailers, and Trailers-Only, with a default of 8 KiB each suggested."
	// Therefore, we assume 8 KiB minus some headroom.
	GRPCErrorLimit := 8*1024 - 512
	if len(err.Error()) <= GRPCErrorLimit {
		return err.Error()
	}
	truncateInfo := "[...] [remainder of the error is truncated because gRPC has a size limit on errors.]"
	truncatedErr := err.Error()[:GRPCErrorLimit]
	return fmt.Sprintf("%v %v", truncatedErr, truncateInfo)
}

// ToGRPC returns an error as a gRPC error, with the appropriate error code.
// If the error carries an error ID, an ErrorInfo detail with the ID as its
// reason is attached to the status.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}

	st := status.New(Code(err), truncateError(err))
	id := ID(err)
	if id == "" {
		return st.Err()
	}

	info := &errdetails.ErrorInfo{
		Reason: id,
		Domain: ErrorDomain,
	}
	if _, description, ok := Describe(id); ok {
		info.Metadata = map[string]string{"description": description}
	}
	withDetails, detailErr := st.WithDetails(info)
	if detailErr != nil {
		slog.Warn("failed to attach error info to gRPC status; error ID will be lost",
			slog.String("error", detailErr.Error()),
			slog.String("id", id),
		)
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPC returns a gRPC error as a mterrors error, translating between error codes.
// If the status carries an ErrorInfo detail from ToGRPC, the result is a
// *MultigresError with the original error ID.
// However, there are a few errors which are not translated and passed as they
// are. For example, io.EOF since our code base checks for this error to find
// out that a stream has finished.
func FromGRPC(err error) error {
	if err == nil {
		return nil
	}
	if err == io.EOF {
		// Do not wrap io.EOF because we compare against it for finished streams.
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return New(codes.Unknown, err.Error())
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		_, description, _ := Describe(info.GetReason())
		return &MultigresError{
			Err:         New(st.Code(), st.Message()),
			Description: description,
			ID:          info.GetReason(),
			Code:        st.Code(),
		}
	}

	return New(st.Code(), st.Message())
}
