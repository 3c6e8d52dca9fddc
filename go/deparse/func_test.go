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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

func colRef(names ...string) *ast.ColumnRef {
	fields := make([]ast.Node, 0, len(names))
	for _, n := range names {
		fields = append(fields, ast.NewString(n))
	}
	return ast.NewColumnRef(fields...)
}

func nameList(names ...string) *ast.NodeList {
	list := ast.NewNodeList()
	for _, n := range names {
		list.Append(ast.NewString(n))
	}
	return list
}

func TestWindowFrameString(t *testing.T) {
	const base = ast.FRAMEOPTION_NONDEFAULT
	tests := []struct {
		name     string
		window   *ast.WindowDef
		expected string
	}{
		{
			"default frame",
			&ast.WindowDef{FrameOptions: ast.FRAMEOPTION_DEFAULTS},
			"",
		},
		{
			"rows between unbounded preceding and current row",
			&ast.WindowDef{FrameOptions: base | ast.FRAMEOPTION_ROWS | ast.FRAMEOPTION_BETWEEN |
				ast.FRAMEOPTION_START_UNBOUNDED_PRECEDING | ast.FRAMEOPTION_END_CURRENT_ROW},
			"ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW",
		},
		{
			"range current row",
			&ast.WindowDef{FrameOptions: base | ast.FRAMEOPTION_RANGE | ast.FRAMEOPTION_START_CURRENT_ROW},
			"RANGE CURRENT ROW",
		},
		{
			"groups offsets",
			&ast.WindowDef{
				FrameOptions: base | ast.FRAMEOPTION_GROUPS | ast.FRAMEOPTION_BETWEEN |
					ast.FRAMEOPTION_START_OFFSET_PRECEDING | ast.FRAMEOPTION_END_OFFSET_FOLLOWING,
				StartOffset: intConst(2),
				EndOffset:   intConst(3),
			},
			"GROUPS BETWEEN 2 PRECEDING AND 3 FOLLOWING",
		},
		{
			"exclude ties",
			&ast.WindowDef{FrameOptions: base | ast.FRAMEOPTION_ROWS | ast.FRAMEOPTION_BETWEEN |
				ast.FRAMEOPTION_START_CURRENT_ROW | ast.FRAMEOPTION_END_UNBOUNDED_FOLLOWING |
				ast.FRAMEOPTION_EXCLUDE_TIES},
			"ROWS BETWEEN CURRENT ROW AND UNBOUNDED FOLLOWING EXCLUDE TIES",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := WindowFrameString(tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestWindowFrameErrors(t *testing.T) {
	const base = ast.FRAMEOPTION_NONDEFAULT | ast.FRAMEOPTION_ROWS | ast.FRAMEOPTION_BETWEEN

	_, err := WindowFrameString(&ast.WindowDef{
		FrameOptions: base | ast.FRAMEOPTION_START_CURRENT_ROW | ast.FRAMEOPTION_END_UNBOUNDED_PRECEDING,
	})
	assert.True(t, IsKind(err, Unsupported))

	_, err = WindowFrameString(&ast.WindowDef{
		FrameOptions: base | ast.FRAMEOPTION_START_UNBOUNDED_FOLLOWING | ast.FRAMEOPTION_END_CURRENT_ROW,
	})
	assert.True(t, IsKind(err, Unsupported))

	_, err = WindowFrameString(&ast.WindowDef{
		FrameOptions: base | ast.FRAMEOPTION_START_OFFSET_PRECEDING | ast.FRAMEOPTION_END_CURRENT_ROW,
	})
	assert.True(t, IsKind(err, Missing))
}

func TestWindowDef(t *testing.T) {
	w := &ast.WindowDef{
		PartitionClause: ast.NewNodeList(colRef("a")),
		OrderClause:     ast.NewNodeList(&ast.SortBy{Node: colRef("b"), SortbyDir: ast.SORTBY_DESC}),
		FrameOptions: ast.FRAMEOPTION_NONDEFAULT | ast.FRAMEOPTION_ROWS | ast.FRAMEOPTION_BETWEEN |
			ast.FRAMEOPTION_START_OFFSET_PRECEDING | ast.FRAMEOPTION_END_CURRENT_ROW,
		StartOffset: intConst(1),
	}
	var b buffer
	require.NoError(t, writeWindowDef(&b, w))
	assert.Equal(t, "(PARTITION BY a ORDER BY b DESC ROWS BETWEEN 1 PRECEDING AND CURRENT ROW)", b.String())
}

func TestFuncCall(t *testing.T) {
	star := ast.NewFuncCall(nameList("count"))
	star.AggStar = true

	distinct := ast.NewFuncCall(nameList("count"), colRef("a"))
	distinct.AggDistinct = true

	filtered := ast.NewFuncCall(nameList("sum"), colRef("x"))
	filtered.AggFilter = ast.NewA_Expr(ast.AEXPR_OP, nameList(">"), colRef("x"), intConst(0))

	windowed := ast.NewFuncCall(nameList("row_number"))
	windowed.Over = &ast.WindowDef{Name: "w"}

	variadic := ast.NewFuncCall(nameList("public", "concat_all"), colRef("a"), colRef("b"))
	variadic.FuncVariadic = true

	tests := []struct {
		name     string
		call     *ast.FuncCall
		expected string
	}{
		{"star", star, "count(*)"},
		{"distinct", distinct, "count(DISTINCT a)"},
		{"filter", filtered, "sum(x) FILTER (WHERE x > 0)"},
		{"named window", windowed, "row_number() OVER w"},
		{"variadic", variadic, "public.concat_all(a, VARIADIC b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b buffer
			require.NoError(t, writeFuncCall(&b, tt.call))
			assert.Equal(t, tt.expected, b.String())
		})
	}
}
