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
	"strings"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

func isCatalogFunc(fc *ast.FuncCall, name string) bool {
	if fc.Funcname.Len() != 2 {
		return false
	}
	schema, _ := ast.StrVal(fc.Funcname.Items[0])
	fn, _ := ast.StrVal(fc.Funcname.Items[1])
	return schema == "pg_catalog" && fn == name
}

// writeFuncCall writes a function call with its aggregate and window
// decorations.
func writeFuncCall(b *buffer, n *ast.FuncCall) error {
	if n.Funcname.Len() == 0 {
		return errMissing("funcname")
	}
	if ok, err := writeSQLSyntaxFunc(b, n); ok || err != nil {
		return err
	}

	if err := writeAnyName(b, n.Funcname.Items); err != nil {
		return err
	}
	b.writeByte('(')
	if n.AggDistinct {
		b.write("DISTINCT ")
	}
	if n.AggStar {
		b.writeByte('*')
	} else if n.Args != nil {
		last := n.Args.Len() - 1
		for i, arg := range n.Args.Items {
			if i > 0 {
				b.write(", ")
			}
			if n.FuncVariadic && i == last {
				b.write("VARIADIC ")
			}
			if err := writeFuncArg(b, arg); err != nil {
				return err
			}
		}
	}
	if n.AggOrder.Len() > 0 && !n.AggWithinGroup {
		if err := writeSortClause(b, n.AggOrder); err != nil {
			return err
		}
	}
	b.writeByte(')')

	if n.AggOrder.Len() > 0 && n.AggWithinGroup {
		b.write(" WITHIN GROUP (")
		if err := writeSortClause(b, n.AggOrder); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.AggFilter != nil {
		b.write(" FILTER (WHERE ")
		if err := buildExpr(b, n.AggFilter); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.Over != nil {
		b.write(" OVER ")
		if n.Over.Name != "" {
			b.ident(n.Over.Name)
		} else if err := writeWindowDef(b, n.Over); err != nil {
			return err
		}
	}
	return nil
}

func writeFuncArg(b *buffer, n ast.Node) error {
	if named, ok := n.(*ast.NamedArgExpr); ok {
		return writeNamedArgExpr(b, named)
	}
	return buildExpr(b, n)
}

func writeNamedArgExpr(b *buffer, n *ast.NamedArgExpr) error {
	if n.Name == "" {
		return errMissing("name")
	}
	b.ident(n.Name)
	b.write(" => ")
	return buildExpr(b, n.Arg)
}

// writeCExpr writes an operand where the grammar only takes a c_expr,
// parenthesizing anything that is not a simple term.
func writeCExpr(b *buffer, n ast.Node) error {
	switch n.(type) {
	case *ast.ColumnRef, *ast.A_Const, *ast.ParamRef, *ast.FuncCall, *ast.CaseExpr,
		*ast.SubLink, *ast.A_ArrayExpr, *ast.RowExpr, *ast.CoalesceExpr, *ast.MinMaxExpr,
		*ast.SQLValueFunction, *ast.GroupingFunc, *ast.XmlExpr, *ast.XmlSerialize:
		return buildExpr(b, n)
	}
	b.writeByte('(')
	if err := buildExpr(b, n); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// sqlKeywordArg writes the unquoted word argument of EXTRACT and NORMALIZE.
func sqlKeywordArg(b *buffer, n ast.Node) error {
	c, err := nodeAs[*ast.A_Const](n, "args")
	if err != nil {
		return err
	}
	s, ok := c.Val.(*ast.String)
	if !ok {
		return errUnexpectedNode(c.Val)
	}
	if isSafeIdentifier(s.Sval) || isSafeIdentifier(strings.ToLower(s.Sval)) {
		b.write(s.Sval)
	} else {
		b.literal(s.Sval)
	}
	return nil
}

var trimKeywords = map[string]string{
	"btrim": "BOTH",
	"ltrim": "LEADING",
	"rtrim": "TRAILING",
}

// writeSQLSyntaxFunc writes the functions the grammar spells with SQL
// standard syntax, such as EXTRACT(field FROM source). It reports whether
// the call was handled.
func writeSQLSyntaxFunc(b *buffer, n *ast.FuncCall) (bool, error) {
	if n.Funcname.Len() != 2 {
		return false, nil
	}
	argc := n.Args.Len()
	if isCatalogFunc(n, "overlay") && argc == 4 && n.Funcformat != ast.COERCE_SQL_SYNTAX {
		return true, writeOverlay(b, n.Args.Items)
	}
	if n.Funcformat != ast.COERCE_SQL_SYNTAX {
		return false, nil
	}
	args := listItems(n.Args)
	name, _ := ast.StrVal(n.Funcname.Items[1])
	if !isCatalogFunc(n, name) {
		return false, nil
	}

	var steps []func() error
	lit := func(s string) func() error { return func() error { b.write(s); return nil } }
	expr := func(i int) func() error { return func() error { return buildExpr(b, args[i]) } }
	operand := func(i int) func() error { return func() error { return writeOperand(b, args[i]) } }

	switch {
	case name == "overlay" && (argc == 3 || argc == 4):
		return true, writeOverlay(b, args)
	case name == "extract" && argc == 2:
		steps = append(steps, lit("EXTRACT("), func() error { return sqlKeywordArg(b, args[0]) },
			lit(" FROM "), expr(1), lit(")"))
	case name == "position" && argc == 2:
		steps = append(steps, lit("POSITION("), operand(1), lit(" IN "), operand(0), lit(")"))
	case name == "substring" && (argc == 2 || argc == 3):
		steps = append(steps, lit("SUBSTRING("), expr(0), lit(" FROM "), expr(1))
		if argc == 3 {
			steps = append(steps, lit(" FOR "), expr(2))
		}
		steps = append(steps, lit(")"))
	case trimKeywords[name] != "" && (argc == 1 || argc == 2):
		steps = append(steps, lit("TRIM("+trimKeywords[name]+" "))
		if argc == 2 {
			steps = append(steps, expr(1), lit(" FROM "))
		}
		steps = append(steps, expr(0), lit(")"))
	case name == "timezone" && argc == 2:
		steps = append(steps, lit("("), operand(1), lit(" AT TIME ZONE "), operand(0), lit(")"))
	case name == "timezone" && argc == 1:
		steps = append(steps, lit("("), operand(0), lit(" AT LOCAL)"))
	case name == "overlaps" && argc == 4:
		steps = append(steps, lit("(("), expr(0), lit(", "), expr(1), lit(") OVERLAPS ("),
			expr(2), lit(", "), expr(3), lit("))"))
	case name == "pg_collation_for" && argc == 1:
		steps = append(steps, lit("COLLATION FOR ("), expr(0), lit(")"))
	case name == "xmlexists" && argc == 2:
		steps = append(steps, lit("xmlexists("),
			func() error { return writeCExpr(b, args[0]) }, lit(" PASSING "),
			func() error { return writeCExpr(b, args[1]) }, lit(")"))
	case name == "normalize" && (argc == 1 || argc == 2):
		steps = append(steps, lit("normalize("), expr(0))
		if argc == 2 {
			steps = append(steps, lit(", "), func() error { return sqlKeywordArg(b, args[1]) })
		}
		steps = append(steps, lit(")"))
	case name == "is_normalized" && (argc == 1 || argc == 2):
		steps = append(steps, lit("("), operand(0), lit(" IS "))
		if argc == 2 {
			steps = append(steps, func() error { return sqlKeywordArg(b, args[1]) }, lit(" "))
		}
		steps = append(steps, lit("NORMALIZED)"))
	case name == "system_user" && argc == 0:
		steps = append(steps, lit("SYSTEM_USER"))
	default:
		return false, nil
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return true, err
		}
	}
	return true, nil
}

func writeOverlay(b *buffer, args []ast.Node) error {
	b.write("OVERLAY(")
	for i, kw := range []string{"", " PLACING ", " FROM ", " FOR "} {
		if i >= len(args) {
			break
		}
		b.write(kw)
		if err := buildExpr(b, args[i]); err != nil {
			return err
		}
	}
	b.writeByte(')')
	return nil
}

// writeFuncExprWindowless writes the expressions allowed as a function in
// FROM or as an index expression without parentheses.
func writeFuncExprWindowless(b *buffer, n ast.Node) error {
	switch n.(type) {
	case *ast.FuncCall, *ast.SQLValueFunction, *ast.TypeCast, *ast.CoalesceExpr,
		*ast.MinMaxExpr, *ast.XmlExpr, *ast.XmlSerialize:
		return buildExpr(b, n)
	case nil:
		return errMissing("function")
	}
	return errUnexpectedNode(n)
}

// ============================================================================
// Window definitions
// ============================================================================

type frameBound struct {
	bit    int
	text   string
	offset bool
}

var frameStartBounds = []frameBound{
	{ast.FRAMEOPTION_START_UNBOUNDED_PRECEDING, "UNBOUNDED PRECEDING", false},
	{ast.FRAMEOPTION_START_UNBOUNDED_FOLLOWING, "", false},
	{ast.FRAMEOPTION_START_CURRENT_ROW, "CURRENT ROW", false},
	{ast.FRAMEOPTION_START_OFFSET_PRECEDING, "PRECEDING", true},
	{ast.FRAMEOPTION_START_OFFSET_FOLLOWING, "FOLLOWING", true},
}

var frameEndBounds = []frameBound{
	{ast.FRAMEOPTION_END_UNBOUNDED_PRECEDING, "", false},
	{ast.FRAMEOPTION_END_UNBOUNDED_FOLLOWING, "UNBOUNDED FOLLOWING", false},
	{ast.FRAMEOPTION_END_CURRENT_ROW, "CURRENT ROW", false},
	{ast.FRAMEOPTION_END_OFFSET_PRECEDING, "PRECEDING", true},
	{ast.FRAMEOPTION_END_OFFSET_FOLLOWING, "FOLLOWING", true},
}

var frameExclusions = []struct {
	bit  int
	text string
}{
	{ast.FRAMEOPTION_EXCLUDE_CURRENT_ROW, "EXCLUDE CURRENT ROW"},
	{ast.FRAMEOPTION_EXCLUDE_GROUP, "EXCLUDE GROUP"},
	{ast.FRAMEOPTION_EXCLUDE_TIES, "EXCLUDE TIES"},
}

// writeWindowDef writes the parenthesized body of a window definition.
// The caller writes the window name.
func writeWindowDef(b *buffer, w *ast.WindowDef) error {
	b.writeByte('(')
	if w.Refname != "" {
		b.ident(w.Refname)
	}
	if w.PartitionClause.Len() > 0 {
		b.keyword("PARTITION BY ")
		if err := writeExprList(b, w.PartitionClause); err != nil {
			return err
		}
	}
	if err := writeSortClause(b, w.OrderClause); err != nil {
		return err
	}
	if err := writeFrameOptions(b, w); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// WindowFrameString renders the frame clause of a window definition, such
// as "ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW".
func WindowFrameString(w *ast.WindowDef) (string, error) {
	var b buffer
	if err := writeFrameOptions(&b, w); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeFrameOptions(b *buffer, w *ast.WindowDef) error {
	opts := w.FrameOptions
	if opts&ast.FRAMEOPTION_NONDEFAULT == 0 {
		return nil
	}
	switch {
	case opts&ast.FRAMEOPTION_RANGE != 0:
		b.keyword("RANGE")
	case opts&ast.FRAMEOPTION_ROWS != 0:
		b.keyword("ROWS")
	case opts&ast.FRAMEOPTION_GROUPS != 0:
		b.keyword("GROUPS")
	}

	between := opts&ast.FRAMEOPTION_BETWEEN != 0
	if between {
		b.keyword("BETWEEN")
	}
	if err := writeFrameBound(b, opts, frameStartBounds, w.StartOffset, "startOffset"); err != nil {
		return err
	}
	if between {
		b.keyword("AND")
		if err := writeFrameBound(b, opts, frameEndBounds, w.EndOffset, "endOffset"); err != nil {
			return err
		}
	}
	for _, ex := range frameExclusions {
		if opts&ex.bit != 0 {
			b.keyword(ex.text)
			break
		}
	}
	return nil
}

func writeFrameBound(b *buffer, opts int, bounds []frameBound, offset ast.Node, field string) error {
	for _, fb := range bounds {
		if opts&fb.bit == 0 {
			continue
		}
		if fb.text == "" {
			return errUnsupported("frame option 0x%x", fb.bit)
		}
		if fb.offset {
			if offset == nil {
				return errMissing(field)
			}
			b.space()
			if err := buildExpr(b, offset); err != nil {
				return err
			}
		}
		b.keyword(fb.text)
		return nil
	}
	return nil
}
