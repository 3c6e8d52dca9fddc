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

package jsontree_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
	"github.com/multigres/pgdeparse/go/mterrors"
)

type goldenCase struct {
	Name     string `yaml:"name"`
	Expected string `yaml:"expected"`
	Tree     any    `yaml:"tree"`
}

func TestGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/golden.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			tree, err := yaml.Marshal(tc.Tree)
			require.NoError(t, err)

			nodes, err := jsontree.DecodeYAML(tree)
			require.NoError(t, err)

			got, err := deparse.Render(nodes)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	input := `{"version":170004,"stmts":[{"stmt":{"SelectStmt":{
		"targetList":[{"ResTarget":{"val":{"ColumnRef":{"fields":[{"String":{"sval":"a"}}],"location":7}},"location":7}}],
		"fromClause":[{"RangeVar":{"relname":"t","inh":true,"relpersistence":"p","location":14}}],
		"limitOption":"LIMIT_OPTION_DEFAULT","op":"SETOP_NONE"}},"stmt_len":15}]}`

	nodes, err := jsontree.Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	raw, ok := nodes[0].(*ast.RawStmt)
	require.True(t, ok)
	assert.Equal(t, 15, raw.StmtLen)

	sel, ok := raw.Stmt.(*ast.SelectStmt)
	require.True(t, ok)
	require.Equal(t, 1, sel.FromClause.Len())

	rv, ok := sel.FromClause.Items[0].(*ast.RangeVar)
	require.True(t, ok)
	assert.Equal(t, "t", rv.Relname)
	assert.True(t, rv.Inh)
	assert.Equal(t, byte('p'), rv.Relpersistence)
	assert.Equal(t, 14, rv.Location())

	target, ok := sel.TargetList.Items[0].(*ast.ResTarget)
	require.True(t, ok)
	col, ok := target.Val.(*ast.ColumnRef)
	require.True(t, ok)
	assert.Equal(t, 7, col.Location())

	got, err := deparse.Render(nodes)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t", got)
}

func TestDecodeNode(t *testing.T) {
	t.Run("empty object is nil", func(t *testing.T) {
		n, err := jsontree.DecodeNode(map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("constants", func(t *testing.T) {
		tests := []struct {
			input map[string]any
			want  ast.Node
		}{
			{map[string]any{"ival": map[string]any{"ival": 42}}, ast.NewInteger(42)},
			{map[string]any{"ival": map[string]any{}}, ast.NewInteger(0)},
			{map[string]any{"sval": map[string]any{"sval": "x"}}, ast.NewString("x")},
			{map[string]any{"fval": map[string]any{"fval": "1.5"}}, ast.NewFloat("1.5")},
		}
		for _, tt := range tests {
			n, err := jsontree.DecodeNode(map[string]any{"A_Const": tt.input})
			require.NoError(t, err)
			c, ok := n.(*ast.A_Const)
			require.True(t, ok)
			assert.Equal(t, tt.want.NodeTag(), c.Val.NodeTag())
			assert.Equal(t, tt.want.String(), c.Val.String())
		}

		n, err := jsontree.DecodeNode(map[string]any{"A_Const": map[string]any{"isnull": true, "location": 3}})
		require.NoError(t, err)
		c := n.(*ast.A_Const)
		assert.True(t, c.Isnull)
		assert.Nil(t, c.Val)
		assert.Equal(t, 3, c.Location())
	})

	t.Run("string location field", func(t *testing.T) {
		n, err := jsontree.DecodeNode(map[string]any{"CreateTableSpaceStmt": map[string]any{
			"tablespacename": "ts",
			"location":       "/data",
		}})
		require.NoError(t, err)
		ts := n.(*ast.CreateTableSpaceStmt)
		assert.Equal(t, "ts", ts.Tablespacename)
		assert.Equal(t, "/data", ts.LocationDir)
		assert.Equal(t, -1, ts.Location())

		stmts, err := jsontree.ParseSQL("CREATE TABLESPACE ts LOCATION '/data'")
		require.NoError(t, err)
		out, err := deparse.Render(stmts)
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLESPACE ts LOCATION '/data'", out)
	})

	t.Run("enums and chars", func(t *testing.T) {
		n, err := jsontree.DecodeNode(map[string]any{"PartitionBoundSpec": map[string]any{
			"strategy":    "r",
			"is_default":  false,
			"lowerdatums": []any{map[string]any{"A_Const": map[string]any{"ival": map[string]any{"ival": 1}}}},
			"upperdatums": []any{map[string]any{"A_Const": map[string]any{"ival": map[string]any{"ival": 10}}}},
		}})
		require.NoError(t, err)
		bound := n.(*ast.PartitionBoundSpec)
		assert.Equal(t, byte('r'), bound.Strategy)
		assert.Equal(t, 1, bound.Lowerdatums.Len())

		n, err = jsontree.DecodeNode(map[string]any{"SortBy": map[string]any{
			"node":         map[string]any{"ColumnRef": map[string]any{"fields": []any{map[string]any{"String": map[string]any{"sval": "a"}}}}},
			"sortby_dir":   "SORTBY_DESC",
			"sortby_nulls": "SORTBY_NULLS_LAST",
		}})
		require.NoError(t, err)
		sb := n.(*ast.SortBy)
		assert.Equal(t, ast.SORTBY_DESC, sb.SortbyDir)
		assert.Equal(t, ast.SORTBY_NULLS_LAST, sb.SortbyNulls)
	})

	t.Run("kinds without a struct decode raw", func(t *testing.T) {
		n, err := jsontree.DecodeNode(map[string]any{"Var": map[string]any{"varno": 1, "location": 5}})
		require.NoError(t, err)
		raw, ok := n.(*ast.RawNode)
		require.True(t, ok)
		assert.Equal(t, ast.T_Var, raw.NodeTag())
		assert.Equal(t, 5, raw.Location())

		_, err = deparse.Render([]ast.Node{n})
		assert.True(t, deparse.IsKind(err, deparse.Unsupported))
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{`},
		{"not an object", `[1, 2]`},
		{"unknown kind", `{"stmts":[{"stmt":{"NoSuchStmt":{}}}]}`},
		{"two keys", `{"stmts":[{"stmt":{"SelectStmt":{},"InsertStmt":{}}}]}`},
		{"unknown enum", `{"stmts":[{"stmt":{"SelectStmt":{"op":"SETOP_BOGUS"}}}]}`},
		{"bad char", `{"stmts":[{"stmt":{"CreateStmt":{"relation":{"relname":"t","relpersistence":"xyz"}}}}]}`},
		{"const without value", `{"stmts":[{"stmt":{"SelectStmt":{"targetList":[{"ResTarget":{"val":{"A_Const":{"location":1}}}}]}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsontree.Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, "DP02002", mterrors.ID(err))
		})
	}

	_, err := jsontree.DecodeYAML([]byte("a: [b"))
	require.Error(t, err)
	assert.Equal(t, "DP02002", mterrors.ID(err))
}

func TestParseSQL(t *testing.T) {
	nodes, err := jsontree.ParseSQL("SELECT 1; SELECT 2")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, ast.T_RawStmt, nodes[0].NodeTag())

	_, err = jsontree.ParseSQL("SELEC 1")
	require.Error(t, err)
	assert.Equal(t, "DP02001", mterrors.ID(err))
}

func TestFingerprint(t *testing.T) {
	a, err := jsontree.Fingerprint("SELECT a FROM t WHERE b = 1")
	require.NoError(t, err)
	b, err := jsontree.Fingerprint("select a from t where b = 2")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = jsontree.Fingerprint("SELEC 1")
	assert.Equal(t, "DP02001", mterrors.ID(err))
}
