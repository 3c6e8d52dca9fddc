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
	"errors"
	"fmt"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// ErrorKind classifies a rendering failure. Every kind is structural: it
// describes the shape of the input tree, so retrying never helps.
type ErrorKind int

const (
	// Missing means a field the grammar requires is absent.
	Missing ErrorKind = iota
	// UnexpectedNodeType means a field holds a node kind that cannot appear
	// in that position.
	UnexpectedNodeType
	// UnexpectedObjectType means a statement names an object type it has no
	// syntax for.
	UnexpectedObjectType
	// Unsupported means the construct has no canonical rendering or is a
	// combination the grammar disallows.
	Unsupported
	// Unreachable means a branch that the node model rules out was taken.
	Unreachable
)

var errorKindNames = [...]string{
	Missing:              "Missing",
	UnexpectedNodeType:   "UnexpectedNodeType",
	UnexpectedObjectType: "UnexpectedObjectType",
	Unsupported:          "Unsupported",
	Unreachable:          "Unreachable",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "Unknown"
	}
	return errorKindNames[k]
}

// errorIDs maps each kind to its documented error ID in mterrors.
var errorIDs = [...]string{
	Missing:              "DP01001",
	UnexpectedNodeType:   "DP01002",
	UnexpectedObjectType: "DP01003",
	Unsupported:          "DP01004",
	Unreachable:          "DP01005",
}

// Error is the error returned by every builder.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case Missing:
		return "Missing field: " + e.Detail
	case UnexpectedNodeType:
		return "Unexpected node type: " + e.Detail
	case UnexpectedObjectType:
		return "Unexpected object type: " + e.Detail
	case Unsupported:
		return "Unsupported feature: " + e.Detail
	default:
		return "Unreachable"
	}
}

// ErrorID returns the error ID documented in mterrors for the error's kind.
func (e *Error) ErrorID() string {
	if e.Kind < 0 || int(e.Kind) >= len(errorIDs) {
		return errorIDs[Unreachable]
	}
	return errorIDs[e.Kind]
}

// IsKind reports whether err is, or wraps, a rendering error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func errMissing(field string) error {
	return &Error{Kind: Missing, Detail: field}
}

func errUnexpectedNode(n ast.Node) error {
	if isNilNode(n) {
		return &Error{Kind: UnexpectedNodeType, Detail: "<nil>"}
	}
	return &Error{Kind: UnexpectedNodeType, Detail: n.NodeTag().String()}
}

func errUnexpectedObject(t ast.ObjectType) error {
	return &Error{Kind: UnexpectedObjectType, Detail: t.String()}
}

func errUnsupported(format string, args ...any) error {
	return &Error{Kind: Unsupported, Detail: fmt.Sprintf(format, args...)}
}

func errUnreachable() error {
	return &Error{Kind: Unreachable}
}
