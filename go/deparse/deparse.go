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

// Package deparse renders PostgreSQL parse trees back into SQL text.
//
// The input is the node model of package ast, which mirrors the libpg_query
// parse tree. Rendering is the inverse of parsing: re-parsing the output
// yields a tree with the same fingerprint as the input. Output is canonical
// and single-line; whitespace, comments and casing of the original text are
// not preserved.
package deparse

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// StatementSeparator joins the statements of one Render call.
const StatementSeparator = "; "

// Render renders each statement and joins them with StatementSeparator.
// A RawStmt is unwrapped to its statement. The first failure is returned
// and no partial output is produced.
func Render(nodes []ast.Node) (string, error) {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		s, err := renderOne(n)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, StatementSeparator), nil
}

// RenderParallel is Render with statements rendered concurrently by at most
// workers goroutines. Output order follows input order. The first failure
// cancels the remaining work.
func RenderParallel(ctx context.Context, nodes []ast.Node, workers int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if workers <= 1 || len(nodes) <= 1 {
		return Render(nodes)
	}

	parts := make([]string, len(nodes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range nodes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := renderOne(n)
			if err != nil {
				return err
			}
			parts[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(parts, StatementSeparator), nil
}

// String renders a single node, returning "" when it cannot be rendered.
func String(n ast.Node) string {
	s, err := renderOne(n)
	if err != nil {
		slog.Debug("failed to render node", "node", nodeName(n), "err", err)
		return ""
	}
	return s
}

func renderOne(n ast.Node) (string, error) {
	var b buffer
	if err := buildNode(&b, n, ContextNone); err != nil {
		return "", err
	}
	return b.String(), nil
}

func nodeName(n ast.Node) string {
	if isNilNode(n) {
		return "<nil>"
	}
	return n.NodeTag().String()
}
