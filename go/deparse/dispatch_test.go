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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

func selectOf(targets ...ast.Node) *ast.SelectStmt {
	sel := ast.NewSelectStmt()
	sel.TargetList = ast.NewNodeList()
	for _, t := range targets {
		sel.TargetList.Append(ast.NewResTarget("", t))
	}
	return sel
}

func TestRenderScenarios(t *testing.T) {
	// UPDATE t SET (a, b) = (1, 2)
	row := &ast.RowExpr{Args: ast.NewNodeList(intConst(1), intConst(2)), RowFormat: ast.COERCE_IMPLICIT_CAST}
	update := &ast.UpdateStmt{
		Relation: ast.NewRangeVar("", "t"),
		TargetList: ast.NewNodeList(
			ast.NewResTarget("a", &ast.MultiAssignRef{Source: row, Colno: 1, Ncolumns: 2}),
			ast.NewResTarget("b", &ast.MultiAssignRef{Source: row, Colno: 2, Ncolumns: 2}),
		),
	}

	// SELECT b FROM t WHERE a LIKE ANY (SELECT c FROM u)
	sub := selectOf(colRef("c"))
	sub.FromClause = ast.NewNodeList(ast.NewRangeVar("", "u"))
	like := selectOf(colRef("b"))
	like.FromClause = ast.NewNodeList(ast.NewRangeVar("", "t"))
	like.WhereClause = &ast.SubLink{
		SubLinkType: ast.ANY_SUBLINK,
		Testexpr:    colRef("a"),
		OperName:    nameList("~~"),
		Subselect:   sub,
	}

	mixed := selectOf(colRef("MixedCase"), colRef("user"), colRef("name"))

	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{"select constant", selectOf(intConst(1)), "SELECT 1"},
		{"raw statement", ast.NewRawStmt(selectOf(intConst(1))), "SELECT 1"},
		{"multi assignment", update, "UPDATE t SET (a, b) = (1, 2)"},
		{"empty table", &ast.CreateStmt{Relation: ast.NewRangeVar("", "t")}, "CREATE TABLE t ()"},
		{"like any subquery", like, "SELECT b FROM t WHERE a LIKE ANY (SELECT c FROM u)"},
		{
			"drop policy",
			&ast.DropStmt{RemoveType: ast.OBJECT_POLICY, Objects: ast.NewNodeList(nameList("schema", "table", "name"))},
			`DROP POLICY name ON schema."table"`,
		},
		{"quoting", mixed, `SELECT "MixedCase", "user", name`},
		{"checkpoint", &ast.CheckPointStmt{}, "CHECKPOINT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render([]ast.Node{tt.node})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderJoinsStatements(t *testing.T) {
	out, err := Render([]ast.Node{
		ast.NewRawStmt(selectOf(intConst(1))),
		ast.NewRawStmt(selectOf(intConst(2))),
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1; SELECT 2", out)

	out, err = Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderDiscardsPartialOutput(t *testing.T) {
	out, err := Render([]ast.Node{
		selectOf(intConst(1)),
		&ast.UpdateStmt{},
	})
	assert.Equal(t, "", out)
	assert.True(t, IsKind(err, Missing))
	assert.EqualError(t, err, "Missing field: relation")
}

func TestRenderTypedNil(t *testing.T) {
	tests := []ast.Node{
		(*ast.SelectStmt)(nil),
		(*ast.RawStmt)(nil),
		&ast.RawStmt{Stmt: (*ast.InsertStmt)(nil)},
	}
	for _, n := range tests {
		out, err := Render([]ast.Node{n})
		assert.Equal(t, "", out)
		assert.True(t, IsKind(err, Missing))
		assert.EqualError(t, err, "Missing field: node")
	}
	assert.Equal(t, "", String((*ast.DeleteStmt)(nil)))
}

func TestStringCollapsesErrors(t *testing.T) {
	assert.Equal(t, "SELECT 1", String(selectOf(intConst(1))))
	assert.Equal(t, "", String(&ast.DeleteStmt{}))
	assert.Equal(t, "", String(nil))
}

func TestUnsupportedKinds(t *testing.T) {
	tests := []ast.NodeTag{ast.T_Var, ast.T_Query, ast.T_OpExpr, ast.T_TargetEntry}
	for _, tag := range tests {
		t.Run(tag.String(), func(t *testing.T) {
			_, err := Render([]ast.Node{ast.NewNode(tag)})
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, Unsupported, e.Kind)
			assert.Equal(t, tag.String(), e.Detail)
		})
	}
}

// TestEveryNodeKind feeds an empty node of every kind through dispatch. Each
// one must either render or fail with a rendering error, never panic.
func TestEveryNodeKind(t *testing.T) {
	for _, tag := range ast.AllNodeTags() {
		t.Run(tag.String(), func(t *testing.T) {
			n := ast.NewNode(tag)
			require.Equal(t, tag, n.NodeTag())

			var err error
			require.NotPanics(t, func() {
				_, err = Render([]ast.Node{n})
			})
			if err != nil {
				var e *Error
				assert.True(t, errors.As(err, &e), "%s: unexpected error type %T", tag, err)
			}
		})
	}
}
