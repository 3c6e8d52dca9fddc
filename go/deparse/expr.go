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
	"strconv"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// buildExpr writes a value expression. Only node kinds that can appear as
// an a_expr in the grammar are accepted.
func buildExpr(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case nil:
		return errMissing("expr")
	case *ast.FuncCall:
		return writeFuncCall(b, v)
	case *ast.XmlExpr:
		return writeXmlExpr(b, v)
	case *ast.TypeCast:
		return writeTypeCast(b, v)
	case *ast.A_Const:
		return writeAConst(b, v)
	case *ast.ColumnRef:
		return writeColumnRef(b, v)
	case *ast.A_Expr:
		return writeAExpr(b, v, ContextNone)
	case *ast.CaseExpr:
		return writeCaseExpr(b, v)
	case *ast.A_ArrayExpr:
		return writeAArrayExpr(b, v)
	case *ast.NullTest:
		return writeNullTest(b, v)
	case *ast.XmlSerialize:
		return writeXmlSerialize(b, v)
	case *ast.ParamRef:
		return writeParamRef(b, v)
	case *ast.BoolExpr:
		return writeBoolExpr(b, v)
	case *ast.SubLink:
		return writeSubLink(b, v)
	case *ast.RowExpr:
		return writeRowExpr(b, v)
	case *ast.CoalesceExpr:
		return writeCoalesceExpr(b, v)
	case *ast.SetToDefault:
		b.write("DEFAULT")
		return nil
	case *ast.A_Indirection:
		return writeAIndirection(b, v)
	case *ast.CollateClause:
		return writeCollateClause(b, v)
	case *ast.CurrentOfExpr:
		return writeCurrentOfExpr(b, v)
	case *ast.SQLValueFunction:
		return writeSQLValueFunction(b, v)
	case *ast.MinMaxExpr:
		return writeMinMaxExpr(b, v)
	case *ast.BooleanTest:
		return writeBooleanTest(b, v)
	case *ast.GroupingFunc:
		return writeGroupingFunc(b, v)
	default:
		return errUnexpectedNode(n)
	}
}

// ============================================================================
// Operators
// ============================================================================

// writeOperand writes an operand of an operator expression. Boolean
// expressions, null tests and boolean tests are parenthesized, and nested
// operator expressions parenthesize themselves under ContextAExpr.
func writeOperand(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case *ast.A_Expr:
		if v.Kind == ast.AEXPR_OP {
			return writeAExpr(b, v, ContextAExpr)
		}
	case *ast.BoolExpr, *ast.NullTest, *ast.BooleanTest:
	default:
		return buildExpr(b, n)
	}
	b.writeByte('(')
	if err := buildExpr(b, n); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// operatorName returns the single unqualified operator of an A_Expr.
func operatorName(n *ast.A_Expr) (string, error) {
	if n.Name.Len() == 0 {
		return "", errMissing("name")
	}
	if n.Name.Len() != 1 {
		return "", errUnsupported("qualified operator in %s", n.Kind)
	}
	return strVal(n.Name.Items[0], "name")
}

var likeOperators = map[ast.A_Expr_Kind]map[string]string{
	ast.AEXPR_LIKE: {
		"~~":  " LIKE ",
		"!~~": " NOT LIKE ",
	},
	ast.AEXPR_ILIKE: {
		"~~*":  " ILIKE ",
		"!~~*": " NOT ILIKE ",
	},
	ast.AEXPR_SIMILAR: {
		"~":  " SIMILAR TO ",
		"!~": " NOT SIMILAR TO ",
	},
}

var betweenKeywords = map[ast.A_Expr_Kind]string{
	ast.AEXPR_BETWEEN:         " BETWEEN ",
	ast.AEXPR_NOT_BETWEEN:     " NOT BETWEEN ",
	ast.AEXPR_BETWEEN_SYM:     " BETWEEN SYMMETRIC ",
	ast.AEXPR_NOT_BETWEEN_SYM: " NOT BETWEEN SYMMETRIC ",
}

// writeAExpr writes an operator expression. Plain operators are wrapped in
// parentheses when written as the operand of another operator.
func writeAExpr(b *buffer, n *ast.A_Expr, ctx Context) error {
	if n.Kind != ast.AEXPR_OP && n.Kind != ast.AEXPR_PAREN {
		if n.Lexpr == nil {
			return errMissing("lexpr")
		}
		if n.Rexpr == nil {
			return errMissing("rexpr")
		}
	}

	switch n.Kind {
	case ast.AEXPR_OP:
		if ctx == ContextAExpr {
			b.writeByte('(')
		}
		if n.Lexpr != nil {
			if err := writeOperand(b, n.Lexpr); err != nil {
				return err
			}
			b.writeByte(' ')
		}
		if err := writeQualifiedOperator(b, n.Name); err != nil {
			return err
		}
		if n.Rexpr != nil {
			b.writeByte(' ')
			if err := writeOperand(b, n.Rexpr); err != nil {
				return err
			}
		}
		if ctx == ContextAExpr {
			b.writeByte(')')
		}
		return nil

	case ast.AEXPR_OP_ANY, ast.AEXPR_OP_ALL:
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		b.writeByte(' ')
		if err := writeSubqueryOperator(b, n.Name); err != nil {
			return err
		}
		if n.Kind == ast.AEXPR_OP_ALL {
			b.write(" ALL(")
		} else {
			b.write(" ANY(")
		}
		if err := buildExpr(b, n.Rexpr); err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case ast.AEXPR_DISTINCT, ast.AEXPR_NOT_DISTINCT:
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		if n.Kind == ast.AEXPR_DISTINCT {
			b.write(" IS DISTINCT FROM ")
		} else {
			b.write(" IS NOT DISTINCT FROM ")
		}
		return writeOperand(b, n.Rexpr)

	case ast.AEXPR_NULLIF:
		op, err := operatorName(n)
		if err != nil {
			return err
		}
		if op != "=" {
			return errUnsupported("NULLIF operator %s", op)
		}
		b.write("NULLIF(")
		if err := buildExpr(b, n.Lexpr); err != nil {
			return err
		}
		b.write(", ")
		if err := buildExpr(b, n.Rexpr); err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case ast.AEXPR_OF:
		op, err := operatorName(n)
		if err != nil {
			return err
		}
		types, err := nodeAs[*ast.NodeList](n.Rexpr, "rexpr")
		if err != nil {
			return err
		}
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		switch op {
		case "=":
			b.write(" IS OF (")
		case "<>":
			b.write(" IS NOT OF (")
		default:
			return errUnsupported("IS OF operator %s", op)
		}
		if err := writeTypeList(b, types); err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case ast.AEXPR_IN:
		op, err := operatorName(n)
		if err != nil {
			return err
		}
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		switch op {
		case "=":
			b.write(" IN (")
		case "<>":
			b.write(" NOT IN (")
		default:
			return errUnsupported("IN operator %s", op)
		}
		switch right := n.Rexpr.(type) {
		case *ast.NodeList:
			err = writeExprList(b, right)
		case *ast.SubLink:
			err = writeSubLink(b, right)
		default:
			err = errUnexpectedNode(n.Rexpr)
		}
		if err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case ast.AEXPR_LIKE, ast.AEXPR_ILIKE, ast.AEXPR_SIMILAR:
		op, err := operatorName(n)
		if err != nil {
			return err
		}
		kw, ok := likeOperators[n.Kind][op]
		if !ok {
			return errUnsupported("%s operator %s", n.Kind, op)
		}
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		b.write(kw)
		return writePattern(b, n)

	case ast.AEXPR_BETWEEN, ast.AEXPR_NOT_BETWEEN, ast.AEXPR_BETWEEN_SYM, ast.AEXPR_NOT_BETWEEN_SYM:
		bounds, err := nodeAs[*ast.NodeList](n.Rexpr, "rexpr")
		if err != nil {
			return err
		}
		if bounds.Len() != 2 {
			return errUnsupported("BETWEEN with %d bounds", bounds.Len())
		}
		if err := writeOperand(b, n.Lexpr); err != nil {
			return err
		}
		b.write(betweenKeywords[n.Kind])
		if err := writeOperand(b, bounds.Items[0]); err != nil {
			return err
		}
		b.write(" AND ")
		return writeOperand(b, bounds.Items[1])

	case ast.AEXPR_PAREN:
		return errUnsupported("AEXPR_PAREN")
	}
	return errUnreachable()
}

// writePattern writes the right side of LIKE, ILIKE and SIMILAR TO. The
// parser wraps patterns with an escape clause in like_escape, and every
// SIMILAR TO pattern in similar_to_escape.
func writePattern(b *buffer, n *ast.A_Expr) error {
	escapeFunc := "like_escape"
	if n.Kind == ast.AEXPR_SIMILAR {
		escapeFunc = "similar_to_escape"
	}
	fc, ok := n.Rexpr.(*ast.FuncCall)
	if !ok || !isCatalogFunc(fc, escapeFunc) {
		if n.Kind == ast.AEXPR_SIMILAR {
			return errUnexpectedNode(n.Rexpr)
		}
		return writeOperand(b, n.Rexpr)
	}
	if fc.Args.Len() < 1 || fc.Args.Len() > 2 {
		return errUnsupported("%s with %d arguments", escapeFunc, fc.Args.Len())
	}
	if err := writeOperand(b, fc.Args.Items[0]); err != nil {
		return err
	}
	if fc.Args.Len() == 2 {
		b.write(" ESCAPE ")
		return writeOperand(b, fc.Args.Items[1])
	}
	return nil
}

func writeBoolExpr(b *buffer, n *ast.BoolExpr) error {
	if n.Args.Len() == 0 {
		return errMissing("args")
	}
	switch n.Boolop {
	case ast.AND_EXPR, ast.OR_EXPR:
		sep := " AND "
		if n.Boolop == ast.OR_EXPR {
			sep = " OR "
		}
		return b.join(n.Args, sep, func(arg ast.Node) error {
			return writeBoolArg(b, arg)
		})
	case ast.NOT_EXPR:
		if n.Args.Len() != 1 {
			return errUnsupported("NOT with %d arguments", n.Args.Len())
		}
		b.write("NOT ")
		return writeBoolArg(b, n.Args.Items[0])
	}
	return errUnreachable()
}

// writeBoolArg parenthesizes nested AND and OR expressions.
func writeBoolArg(b *buffer, arg ast.Node) error {
	if be, ok := arg.(*ast.BoolExpr); ok && be.Boolop != ast.NOT_EXPR {
		b.writeByte('(')
		if err := writeBoolExpr(b, be); err != nil {
			return err
		}
		b.writeByte(')')
		return nil
	}
	return buildExpr(b, arg)
}

var booleanTests = map[ast.BoolTestType]string{
	ast.IS_TRUE:        " IS TRUE",
	ast.IS_NOT_TRUE:    " IS NOT TRUE",
	ast.IS_FALSE:       " IS FALSE",
	ast.IS_NOT_FALSE:   " IS NOT FALSE",
	ast.IS_UNKNOWN:     " IS UNKNOWN",
	ast.IS_NOT_UNKNOWN: " IS NOT UNKNOWN",
}

func writeBooleanTest(b *buffer, n *ast.BooleanTest) error {
	test, ok := booleanTests[n.Booltesttype]
	if !ok {
		return errUnreachable()
	}
	if err := writeOperand(b, n.Arg); err != nil {
		return err
	}
	b.write(test)
	return nil
}

func writeNullTest(b *buffer, n *ast.NullTest) error {
	if err := writeOperand(b, n.Arg); err != nil {
		return err
	}
	switch n.Nulltesttype {
	case ast.IS_NULL:
		b.write(" IS NULL")
	case ast.IS_NOT_NULL:
		b.write(" IS NOT NULL")
	default:
		return errUnreachable()
	}
	return nil
}

// ============================================================================
// Conditionals and constructors
// ============================================================================

func writeCaseExpr(b *buffer, n *ast.CaseExpr) error {
	b.write("CASE ")
	if n.Arg != nil {
		if err := buildExpr(b, n.Arg); err != nil {
			return err
		}
		b.writeByte(' ')
	}
	if n.Args.Len() == 0 {
		return errMissing("args")
	}
	if err := eachAs(n.Args, func(_ int, w *ast.CaseWhen) error {
		if err := writeCaseWhen(b, w); err != nil {
			return err
		}
		b.writeByte(' ')
		return nil
	}); err != nil {
		return err
	}
	if n.Defresult != nil {
		b.write("ELSE ")
		if err := buildExpr(b, n.Defresult); err != nil {
			return err
		}
		b.writeByte(' ')
	}
	b.write("END")
	return nil
}

func writeCaseWhen(b *buffer, n *ast.CaseWhen) error {
	if n.Expr == nil {
		return errMissing("expr")
	}
	if n.Result == nil {
		return errMissing("result")
	}
	b.write("WHEN ")
	if err := buildExpr(b, n.Expr); err != nil {
		return err
	}
	b.write(" THEN ")
	return buildExpr(b, n.Result)
}

func writeCoalesceExpr(b *buffer, n *ast.CoalesceExpr) error {
	if n.Args.Len() == 0 {
		return errMissing("args")
	}
	b.write("COALESCE(")
	if err := writeExprList(b, n.Args); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeMinMaxExpr(b *buffer, n *ast.MinMaxExpr) error {
	switch n.Op {
	case ast.IS_GREATEST:
		b.write("GREATEST(")
	case ast.IS_LEAST:
		b.write("LEAST(")
	default:
		return errUnreachable()
	}
	if err := writeExprList(b, n.Args); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeGroupingFunc(b *buffer, n *ast.GroupingFunc) error {
	b.write("GROUPING(")
	if err := writeExprList(b, n.Args); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeAArrayExpr(b *buffer, n *ast.A_ArrayExpr) error {
	b.write("ARRAY[")
	err := b.join(n.Elements, ", ", func(e ast.Node) error {
		// Nested array literals drop the ARRAY keyword.
		if inner, ok := e.(*ast.A_ArrayExpr); ok {
			b.writeByte('[')
			if err := writeExprList(b, inner.Elements); err != nil {
				return err
			}
			b.writeByte(']')
			return nil
		}
		return buildExpr(b, e)
	})
	if err != nil {
		return err
	}
	b.writeByte(']')
	return nil
}

func writeRowExpr(b *buffer, n *ast.RowExpr) error {
	switch n.RowFormat {
	case ast.COERCE_EXPLICIT_CALL:
		b.write("ROW")
	case ast.COERCE_IMPLICIT_CAST:
		if n.Args.Len() < 2 {
			return errUnsupported("implicit row with %d columns", n.Args.Len())
		}
	default:
		return errUnsupported("row format %s", n.RowFormat)
	}
	b.writeByte('(')
	if err := writeExprList(b, n.Args); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// ============================================================================
// References
// ============================================================================

func writeColumnRef(b *buffer, n *ast.ColumnRef) error {
	if n.Fields.Len() == 0 {
		return errMissing("fields")
	}
	switch first := n.Fields.Items[0].(type) {
	case *ast.A_Star:
		b.writeByte('*')
	case *ast.String:
		b.ident(first.Sval)
	default:
		return errUnexpectedNode(first)
	}
	return writeIndirection(b, n.Fields.Items[1:])
}

func writeParamRef(b *buffer, n *ast.ParamRef) error {
	if n.Number == 0 {
		b.writeByte('?')
		return nil
	}
	b.write("$", strconv.Itoa(n.Number))
	return nil
}

func writeAIndices(b *buffer, n *ast.A_Indices) error {
	b.writeByte('[')
	if n.Lidx != nil {
		if err := buildExpr(b, n.Lidx); err != nil {
			return err
		}
	}
	if n.IsSlice {
		b.writeByte(':')
	}
	if n.Uidx != nil {
		if err := buildExpr(b, n.Uidx); err != nil {
			return err
		}
	}
	b.writeByte(']')
	return nil
}

// writeAIndirection writes arg followed by subscripts or field selections.
// The argument is parenthesized unless the grammar accepts the indirection
// directly after it.
func writeAIndirection(b *buffer, n *ast.A_Indirection) error {
	if n.Arg == nil {
		return errMissing("arg")
	}
	items := listItems(n.Indirection)
	paren := false
	switch arg := n.Arg.(type) {
	case *ast.A_Indirection, *ast.FuncCall, *ast.A_Expr, *ast.TypeCast, *ast.RowExpr,
		*ast.CollateClause, *ast.BoolExpr, *ast.NullTest, *ast.BooleanTest:
		paren = true
	case *ast.A_ArrayExpr:
		paren = true
	case *ast.SubLink:
		paren = arg.SubLinkType != ast.EXPR_SUBLINK
	case *ast.ColumnRef:
		_, subscript := firstOf(items).(*ast.A_Indices)
		paren = !subscript
	}
	if paren {
		b.writeByte('(')
	}
	if err := buildExpr(b, n.Arg); err != nil {
		return err
	}
	if paren {
		b.writeByte(')')
	}
	return writeIndirection(b, items)
}

func firstOf(items []ast.Node) ast.Node {
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

func writeCollateClause(b *buffer, n *ast.CollateClause) error {
	if n.Arg != nil {
		if err := writeOperand(b, n.Arg); err != nil {
			return err
		}
		b.writeByte(' ')
	}
	b.write("COLLATE ")
	return writeQualifiedName(b, n.Collname, "collname")
}

func writeCurrentOfExpr(b *buffer, n *ast.CurrentOfExpr) error {
	if n.CursorName == "" {
		return errMissing("cursor_name")
	}
	b.write("CURRENT OF ")
	b.ident(n.CursorName)
	return nil
}

var sqlValueFunctions = map[ast.SQLValueFunctionOp]string{
	ast.SVFOP_CURRENT_DATE:        "current_date",
	ast.SVFOP_CURRENT_TIME:        "current_time",
	ast.SVFOP_CURRENT_TIME_N:      "current_time",
	ast.SVFOP_CURRENT_TIMESTAMP:   "current_timestamp",
	ast.SVFOP_CURRENT_TIMESTAMP_N: "current_timestamp",
	ast.SVFOP_LOCALTIME:           "localtime",
	ast.SVFOP_LOCALTIME_N:         "localtime",
	ast.SVFOP_LOCALTIMESTAMP:      "localtimestamp",
	ast.SVFOP_LOCALTIMESTAMP_N:    "localtimestamp",
	ast.SVFOP_CURRENT_ROLE:        "current_role",
	ast.SVFOP_CURRENT_USER:        "current_user",
	ast.SVFOP_USER:                "user",
	ast.SVFOP_SESSION_USER:        "session_user",
	ast.SVFOP_CURRENT_CATALOG:     "current_catalog",
	ast.SVFOP_CURRENT_SCHEMA:      "current_schema",
}

// writeSQLValueFunction writes a keyword function. Only the _N variants
// carry a precision.
func writeSQLValueFunction(b *buffer, n *ast.SQLValueFunction) error {
	name, ok := sqlValueFunctions[n.Op]
	if !ok {
		return errUnreachable()
	}
	b.write(name)
	switch n.Op {
	case ast.SVFOP_CURRENT_TIME_N, ast.SVFOP_CURRENT_TIMESTAMP_N, ast.SVFOP_LOCALTIME_N, ast.SVFOP_LOCALTIMESTAMP_N:
		if n.Typmod >= 0 {
			b.write("(", strconv.Itoa(n.Typmod), ")")
		}
	}
	return nil
}

// ============================================================================
// Subqueries
// ============================================================================

// writeSubquery writes the SELECT of a sublink or derived table.
func writeSubquery(b *buffer, n ast.Node) error {
	stmt, err := nodeAs[*ast.SelectStmt](n, "subselect")
	if err != nil {
		return err
	}
	return writeSelectStmt(b, stmt)
}

func writeSubLink(b *buffer, n *ast.SubLink) error {
	switch n.SubLinkType {
	case ast.EXISTS_SUBLINK:
		b.write("EXISTS (")
	case ast.ALL_SUBLINK, ast.ANY_SUBLINK:
		if n.Testexpr == nil {
			return errMissing("testexpr")
		}
		if err := writeOperand(b, n.Testexpr); err != nil {
			return err
		}
		switch {
		case n.SubLinkType == ast.ALL_SUBLINK:
			if n.OperName.Len() == 0 {
				return errMissing("operName")
			}
			b.writeByte(' ')
			if err := writeSubqueryOperator(b, n.OperName); err != nil {
				return err
			}
			b.write(" ALL (")
		case n.OperName.Len() > 0:
			b.writeByte(' ')
			if err := writeSubqueryOperator(b, n.OperName); err != nil {
				return err
			}
			b.write(" ANY (")
		default:
			b.write(" IN (")
		}
	case ast.EXPR_SUBLINK:
		b.writeByte('(')
	case ast.ARRAY_SUBLINK:
		b.write("ARRAY(")
	case ast.ROWCOMPARE_SUBLINK, ast.MULTIEXPR_SUBLINK, ast.CTE_SUBLINK:
		return errUnsupported("%s", n.SubLinkType)
	default:
		return errUnreachable()
	}
	if err := writeSubquery(b, n.Subselect); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// ============================================================================
// Ordering and grouping
// ============================================================================

func writeSortBy(b *buffer, n *ast.SortBy) error {
	if err := buildExpr(b, n.Node); err != nil {
		return err
	}
	switch n.SortbyDir {
	case ast.SORTBY_DEFAULT:
	case ast.SORTBY_ASC:
		b.write(" ASC")
	case ast.SORTBY_DESC:
		b.write(" DESC")
	case ast.SORTBY_USING:
		b.write(" USING ")
		if err := writeQualifiedOperator(b, n.UseOp); err != nil {
			return err
		}
	default:
		return errUnreachable()
	}
	switch n.SortbyNulls {
	case ast.SORTBY_NULLS_DEFAULT:
	case ast.SORTBY_NULLS_FIRST:
		b.write(" NULLS FIRST")
	case ast.SORTBY_NULLS_LAST:
		b.write(" NULLS LAST")
	default:
		return errUnreachable()
	}
	return nil
}

func writeGroupingSet(b *buffer, n *ast.GroupingSet) error {
	switch n.Kind {
	case ast.GROUPING_SET_EMPTY:
		b.write("()")
		return nil
	case ast.GROUPING_SET_SIMPLE:
		return errUnsupported("%s", n.Kind)
	case ast.GROUPING_SET_ROLLUP:
		b.write("ROLLUP (")
		if err := writeExprList(b, n.Content); err != nil {
			return err
		}
	case ast.GROUPING_SET_CUBE:
		b.write("CUBE (")
		if err := writeExprList(b, n.Content); err != nil {
			return err
		}
	case ast.GROUPING_SET_SETS:
		b.write("GROUPING SETS (")
		if err := writeGroupByList(b, n.Content); err != nil {
			return err
		}
	default:
		return errUnreachable()
	}
	b.writeByte(')')
	return nil
}
