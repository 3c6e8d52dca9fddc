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

func intConst(v int) *ast.A_Const {
	return ast.NewA_Const(ast.NewInteger(v))
}

func catalogType(name string, typmods ...ast.Node) *ast.TypeName {
	t := ast.NewTypeName("pg_catalog", name)
	if len(typmods) > 0 {
		t.Typmods = ast.NewNodeList(typmods...)
	}
	return t
}

func TestIntervalFieldsString(t *testing.T) {
	tests := []struct {
		mask     int
		expected string
	}{
		{ast.INTERVAL_MASK_YEAR, "year"},
		{ast.INTERVAL_MASK_MONTH, "month"},
		{ast.INTERVAL_MASK_YEAR | ast.INTERVAL_MASK_MONTH, "year to month"},
		{ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR, "day to hour"},
		{ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND, "day to second"},
		{ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND, "minute to second"},
		{ast.INTERVAL_FULL_RANGE, ""},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			s, err := IntervalFieldsString(tt.mask)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	_, err := IntervalFieldsString(ast.INTERVAL_MASK_YEAR | ast.INTERVAL_MASK_DAY)
	assert.True(t, IsKind(err, Unsupported))
}

func TestTypeName(t *testing.T) {
	ym := ast.INTERVAL_MASK_YEAR | ast.INTERVAL_MASK_MONTH
	dts := ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND

	arrayOf := func(tn *ast.TypeName, bounds ...int) *ast.TypeName {
		tn.ArrayBounds = ast.NewNodeList()
		for _, b := range bounds {
			tn.ArrayBounds.Append(ast.NewInteger(b))
		}
		return tn
	}
	setof := ast.NewTypeName("record")
	setof.Setof = true
	pct := ast.NewTypeName("t", "c")
	pct.PctType = true

	tests := []struct {
		name     string
		typ      *ast.TypeName
		expected string
	}{
		{"int", catalogType("int4"), "int"},
		{"bigint", catalogType("int8"), "bigint"},
		{"boolean", catalogType("bool"), "boolean"},
		{"double", catalogType("float8"), "double precision"},
		{"char", catalogType("bpchar", intConst(3)), "char(3)"},
		{"varchar", catalogType("varchar", intConst(20)), "varchar(20)"},
		{"numeric", catalogType("numeric", intConst(10), intConst(2)), "numeric(10, 2)"},
		{"timestamptz", catalogType("timestamptz", intConst(3)), "timestamp(3) with time zone"},
		{"timetz", catalogType("timetz"), "time with time zone"},
		{"interval", catalogType("interval"), "interval"},
		{"interval year to month", catalogType("interval", intConst(ym)), "interval year to month"},
		{"interval full range", catalogType("interval", intConst(ast.INTERVAL_FULL_RANGE)), "interval"},
		{"interval precision", catalogType("interval", intConst(ast.INTERVAL_FULL_RANGE), intConst(3)), "interval(3)"},
		{"interval day to second precision", catalogType("interval", intConst(dts), intConst(6)), "interval day to second(6)"},
		{"other catalog type", catalogType("json"), `pg_catalog."json"`},
		{"user type", ast.NewTypeName("public", "MyType"), `public."MyType"`},
		{"array", arrayOf(ast.NewTypeName("text"), -1), "text[]"},
		{"sized array", arrayOf(catalogType("int4"), 3, -1), "int[3][]"},
		{"setof", setof, "SETOF record"},
		{"pct type", pct, "t.c%TYPE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b buffer
			require.NoError(t, writeTypeName(&b, tt.typ))
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestTypeNameErrors(t *testing.T) {
	var b buffer
	err := writeTypeName(&b, catalogType("interval", intConst(ast.INTERVAL_MASK_YEAR|ast.INTERVAL_MASK_HOUR)))
	assert.True(t, IsKind(err, Unsupported))

	err = writeTypeName(&b, catalogType("interval", intConst(ast.INTERVAL_MASK_DAY), intConst(ast.INTERVAL_FULL_PRECISION)))
	assert.True(t, IsKind(err, Unsupported))

	err = writeTypeName(&b, &ast.TypeName{})
	assert.True(t, IsKind(err, Missing))

	err = writeTypeName(&b, nil)
	assert.True(t, IsKind(err, Missing))
}

func TestTypeCast(t *testing.T) {
	col := ast.NewColumnRef(ast.NewString("a"))
	tests := []struct {
		name     string
		cast     *ast.TypeCast
		expected string
	}{
		{"column", &ast.TypeCast{Arg: col, TypeName: ast.NewTypeName("text")}, "a::text"},
		{"float", &ast.TypeCast{Arg: ast.NewA_Const(ast.NewFloat("1.5")), TypeName: catalogType("int4")}, "(1.5)::int"},
		{"negative", &ast.TypeCast{Arg: intConst(-1), TypeName: catalogType("int8")}, "(-1)::bigint"},
		{"bool true", &ast.TypeCast{Arg: ast.NewA_Const(ast.NewString("t")), TypeName: catalogType("bool")}, "true"},
		{"char literal", &ast.TypeCast{Arg: ast.NewA_Const(ast.NewString("x")), TypeName: catalogType("bpchar")}, "char 'x'"},
		{
			"operator",
			&ast.TypeCast{
				Arg:      ast.NewA_Expr(ast.AEXPR_OP, ast.NewNodeList(ast.NewString("+")), col, intConst(1)),
				TypeName: ast.NewTypeName("text"),
			},
			"CAST(a + 1 AS text)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b buffer
			require.NoError(t, writeTypeCast(&b, tt.cast))
			assert.Equal(t, tt.expected, b.String())
		})
	}
}
