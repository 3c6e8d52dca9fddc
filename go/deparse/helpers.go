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
	"strings"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// nodeAs returns n as a T. An absent node is reported as a missing field and
// a node of another kind as an unexpected node type.
func nodeAs[T ast.Node](n ast.Node, field string) (T, error) {
	var zero T
	if isNilNode(n) {
		return zero, errMissing(field)
	}
	t, ok := n.(T)
	if !ok {
		return zero, errUnexpectedNode(n)
	}
	return t, nil
}

// eachAs calls fn for every item of list, which must all be of kind T.
func eachAs[T ast.Node](list *ast.NodeList, fn func(i int, item T) error) error {
	if list == nil {
		return nil
	}
	for i, item := range list.Items {
		t, ok := item.(T)
		if !ok {
			return errUnexpectedNode(item)
		}
		if err := fn(i, t); err != nil {
			return err
		}
	}
	return nil
}

// joinAs writes every item of list, which must all be of kind T, separated by sep.
func joinAs[T ast.Node](b *buffer, list *ast.NodeList, sep string, fn func(item T) error) error {
	return eachAs(list, func(i int, item T) error {
		if i > 0 {
			b.write(sep)
		}
		return fn(item)
	})
}

func strVal(n ast.Node, field string) (string, error) {
	s, err := nodeAs[*ast.String](n, field)
	if err != nil {
		return "", err
	}
	return s.Sval, nil
}

func intVal(n ast.Node, field string) (int, error) {
	if c, ok := n.(*ast.A_Const); ok {
		n = c.Val
	}
	i, err := nodeAs[*ast.Integer](n, field)
	if err != nil {
		return 0, err
	}
	return i.Ival, nil
}

// flagVal reads an option flag, which is an Integer 0/1 in older trees and
// a Boolean in newer ones.
func flagVal(n ast.Node, field string) (bool, error) {
	if c, ok := n.(*ast.A_Const); ok {
		n = c.Val
	}
	switch v := n.(type) {
	case nil:
		return false, errMissing(field)
	case *ast.Boolean:
		return v.Boolval, nil
	case *ast.Integer:
		switch v.Ival {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, errUnsupported("%s value %d", field, v.Ival)
	default:
		return false, errUnexpectedNode(n)
	}
}

// writeValue writes a leaf value. Strings are written as literals under
// ContextConstant, as identifiers under ContextIdentifier and raw otherwise.
func writeValue(b *buffer, n ast.Node, ctx Context) error {
	switch v := n.(type) {
	case *ast.Integer:
		b.write(strconv.Itoa(v.Ival))
	case *ast.Float:
		b.write(v.Fval)
	case *ast.Boolean:
		if v.Boolval {
			b.write("true")
		} else {
			b.write("false")
		}
	case *ast.String:
		switch ctx {
		case ContextIdentifier:
			b.ident(v.Sval)
		case ContextConstant:
			b.literal(v.Sval)
		default:
			b.write(v.Sval)
		}
	case *ast.BitString:
		s, err := bitStringLiteral(v.Bsval)
		if err != nil {
			return err
		}
		b.write(s)
	case *ast.Null:
		b.write("NULL")
	case nil:
		return errMissing("val")
	default:
		return errUnexpectedNode(n)
	}
	return nil
}

func writeAConst(b *buffer, n *ast.A_Const) error {
	if n.Isnull {
		b.write("NULL")
		return nil
	}
	return writeValue(b, n.Val, ContextConstant)
}

// writeAnyName writes a dotted, quoted name from String items.
func writeAnyName(b *buffer, items []ast.Node) error {
	for i, item := range items {
		if i > 0 {
			b.writeByte('.')
		}
		s, err := strVal(item, "name")
		if err != nil {
			return err
		}
		b.ident(s)
	}
	return nil
}

func writeQualifiedName(b *buffer, list *ast.NodeList, field string) error {
	if list.Len() == 0 {
		return errMissing(field)
	}
	return writeAnyName(b, list.Items)
}

// writeAnyNameList writes a comma separated list of dotted names.
func writeAnyNameList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(name *ast.NodeList) error {
		return writeAnyName(b, name.Items)
	})
}

// writeColumnList writes a comma separated list of quoted names.
func writeColumnList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(s *ast.String) error {
		b.ident(s.Sval)
		return nil
	})
}

func writeParenColumnList(b *buffer, list *ast.NodeList) error {
	if list.Len() == 0 {
		return nil
	}
	b.space()
	b.writeByte('(')
	if err := writeColumnList(b, list); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeExprList(b *buffer, list *ast.NodeList) error {
	return b.join(list, ", ", func(n ast.Node) error {
		return buildExpr(b, n)
	})
}

func writeTypeList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(t *ast.TypeName) error {
		return writeTypeName(b, t)
	})
}

// writeRelationList writes a comma separated list of RangeVar nodes.
func writeRelationList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(rv *ast.RangeVar) error {
		return writeRangeVar(b, rv, ContextNone)
	})
}

func writeRoleList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(r *ast.RoleSpec) error {
		return writeRoleSpec(b, r)
	})
}

func writeNumericOnly(b *buffer, n ast.Node) error {
	if c, ok := n.(*ast.A_Const); ok {
		n = c.Val
	}
	switch v := n.(type) {
	case *ast.Integer:
		b.write(strconv.Itoa(v.Ival))
	case *ast.Float:
		b.write(v.Fval)
	case nil:
		return errMissing("arg")
	default:
		return errUnexpectedNode(n)
	}
	return nil
}

func writeNumericOnlyList(b *buffer, list *ast.NodeList) error {
	return b.join(list, ", ", func(n ast.Node) error {
		return writeNumericOnly(b, n)
	})
}

func writeSignedIConst(b *buffer, n ast.Node) error {
	v, err := intVal(n, "typmod")
	if err != nil {
		return err
	}
	b.write(strconv.Itoa(v))
	return nil
}

// writeIndirection writes field selections, '*' and subscripts.
func writeIndirection(b *buffer, items []ast.Node) error {
	for _, item := range items {
		switch v := item.(type) {
		case *ast.String:
			b.writeByte('.')
			b.ident(v.Sval)
		case *ast.A_Star:
			b.write(".*")
		case *ast.A_Indices:
			if err := writeAIndices(b, v); err != nil {
				return err
			}
		default:
			return errUnexpectedNode(item)
		}
	}
	return nil
}

func listItems(list *ast.NodeList) []ast.Node {
	if list == nil {
		return nil
	}
	return list.Items
}

// writeRelOptions writes (name=value, ...) storage parameter lists.
func writeRelOptions(b *buffer, list *ast.NodeList) error {
	b.writeByte('(')
	err := joinAs(b, list, ", ", func(d *ast.DefElem) error {
		if d.Defnamespace != "" {
			b.ident(d.Defnamespace)
			b.writeByte('.')
		}
		b.ident(d.Defname)
		if d.Arg == nil {
			return nil
		}
		b.writeByte('=')
		return writeDefArg(b, d.Arg, false)
	})
	if err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// writeOptWith writes WITH (options) when options are present.
func writeOptWith(b *buffer, list *ast.NodeList) error {
	if list.Len() == 0 {
		return nil
	}
	b.keyword("WITH ")
	return writeRelOptions(b, list)
}

// writeDefArg writes the value of a definition element. Under
// keepNone the word none is written as a literal instead of NONE.
func writeDefArg(b *buffer, n ast.Node, keepNone bool) error {
	switch v := n.(type) {
	case *ast.TypeName:
		return writeTypeName(b, v)
	case *ast.NodeList:
		switch v.Len() {
		case 1:
			s, err := strVal(v.Items[0], "arg")
			if err != nil {
				return err
			}
			b.write(s)
		case 2:
			b.write("OPERATOR(")
			if err := writeAnyOperator(b, v.Items); err != nil {
				return err
			}
			b.writeByte(')')
		default:
			return errUnsupported("definition argument with %d names", v.Len())
		}
	case *ast.Integer, *ast.Float, *ast.Boolean:
		return writeValue(b, n, ContextNone)
	case *ast.A_Const:
		return writeDefArg(b, v.Val, keepNone)
	case *ast.String:
		switch {
		case !keepNone && v.Sval == "none":
			b.write("NONE")
		case isKeywordWord(v.Sval):
			b.write(v.Sval)
		default:
			b.literal(v.Sval)
		}
	case nil:
		return errMissing("arg")
	default:
		return errUnexpectedNode(n)
	}
	return nil
}

// isKeywordWord reports whether s is a keyword the grammar takes bare in
// definition lists, such as true or default.
func isKeywordWord(s string) bool {
	return s != "" && strings.ToLower(s) == s && QuoteIdentifier(s) != s
}

// writeDefinition writes (name = value, ...) as used by CREATE AGGREGATE,
// CREATE OPERATOR and friends.
func writeDefinition(b *buffer, list *ast.NodeList) error {
	b.writeByte('(')
	err := joinAs(b, list, ", ", func(d *ast.DefElem) error {
		b.ident(d.Defname)
		if d.Arg == nil {
			return nil
		}
		b.write(" = ")
		return writeDefArg(b, d.Arg, false)
	})
	if err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// writeCreateGenericOptions writes OPTIONS (name 'value', ...).
func writeCreateGenericOptions(b *buffer, list *ast.NodeList) error {
	b.write("OPTIONS (")
	err := joinAs(b, list, ", ", func(d *ast.DefElem) error {
		arg, err := strVal(d.Arg, "arg")
		if err != nil {
			return err
		}
		b.ident(d.Defname)
		b.writeByte(' ')
		b.literal(arg)
		return nil
	})
	if err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

var defElemActionKeywords = map[ast.DefElemAction]string{
	ast.DEFELEM_UNSPEC: "",
	ast.DEFELEM_SET:    "SET ",
	ast.DEFELEM_ADD:    "ADD ",
	ast.DEFELEM_DROP:   "DROP ",
}

// writeAlterGenericOptions writes OPTIONS ([ADD|SET|DROP] name 'value', ...).
func writeAlterGenericOptions(b *buffer, list *ast.NodeList) error {
	b.write("OPTIONS (")
	err := joinAs(b, list, ", ", func(d *ast.DefElem) error {
		kw, ok := defElemActionKeywords[d.Defaction]
		if !ok {
			return errUnreachable()
		}
		b.write(kw)
		b.ident(d.Defname)
		if d.Defaction == ast.DEFELEM_DROP {
			return nil
		}
		arg, err := strVal(d.Arg, "arg")
		if err != nil {
			return err
		}
		b.writeByte(' ')
		b.literal(arg)
		return nil
	})
	if err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeOptDropBehavior(b *buffer, behavior ast.DropBehavior) {
	if behavior == ast.DROP_CASCADE {
		b.write(" CASCADE")
	}
}

// writeFunctionWithArgTypes writes name(argtypes), or just the name when
// the arguments were not given.
func writeFunctionWithArgTypes(b *buffer, o *ast.ObjectWithArgs) error {
	if err := writeQualifiedName(b, o.Objname, "objname"); err != nil {
		return err
	}
	if o.ArgsUnspecified {
		return nil
	}
	b.writeByte('(')
	err := b.join(o.Objargs, ", ", func(n ast.Node) error {
		switch v := n.(type) {
		case *ast.TypeName:
			return writeTypeName(b, v)
		case *ast.FunctionParameter:
			return writeFunctionParameter(b, v)
		default:
			return errUnexpectedNode(n)
		}
	})
	if err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeFunctionWithArgTypesList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(o *ast.ObjectWithArgs) error {
		return writeFunctionWithArgTypes(b, o)
	})
}

// writeAggregateWithArgTypes writes name(argtypes), with (*) for an
// aggregate taking no arguments.
func writeAggregateWithArgTypes(b *buffer, o *ast.ObjectWithArgs) error {
	if err := writeQualifiedName(b, o.Objname, "objname"); err != nil {
		return err
	}
	b.writeByte('(')
	if o.Objargs.Len() == 0 {
		b.writeByte('*')
	} else if err := writeTypeList(b, o.Objargs); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// writeOperatorWithArgTypes writes op(left, right) with NONE for the
// missing side of a prefix operator.
func writeOperatorWithArgTypes(b *buffer, o *ast.ObjectWithArgs) error {
	if o.Objname.Len() == 0 {
		return errMissing("objname")
	}
	if err := writeAnyOperator(b, o.Objname.Items); err != nil {
		return err
	}
	if o.Objargs.Len() != 2 {
		return errUnsupported("operator with %d argument types", o.Objargs.Len())
	}
	b.writeByte('(')
	for i, arg := range o.Objargs.Items {
		if i > 0 {
			b.write(", ")
		}
		if t, ok := arg.(*ast.TypeName); ok {
			if err := writeTypeName(b, t); err != nil {
				return err
			}
		} else {
			b.write("NONE")
		}
	}
	b.writeByte(')')
	return nil
}

// writeAnyOperator writes [schema.]op.
func writeAnyOperator(b *buffer, items []ast.Node) error {
	switch len(items) {
	case 0:
		return errMissing("operator")
	case 1, 2:
	default:
		return errUnsupported("operator name with %d parts", len(items))
	}
	if len(items) == 2 {
		schema, err := strVal(items[0], "schema")
		if err != nil {
			return err
		}
		b.ident(schema)
		b.writeByte('.')
	}
	op, err := strVal(items[len(items)-1], "operator")
	if err != nil {
		return err
	}
	b.write(op)
	return nil
}

// writeQualifiedOperator writes a bare operator, or OPERATOR(schema.op).
func writeQualifiedOperator(b *buffer, list *ast.NodeList) error {
	if list.Len() == 1 {
		if op, ok := ast.StrVal(list.Items[0]); ok && isOperator(op) {
			b.write(op)
			return nil
		}
	}
	if list.Len() == 0 {
		return errMissing("name")
	}
	b.write("OPERATOR(")
	if err := writeAnyOperator(b, list.Items); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

var subqueryOperatorWords = map[string]string{
	"~~":   "LIKE",
	"!~~":  "NOT LIKE",
	"~~*":  "ILIKE",
	"!~~*": "NOT ILIKE",
}

// writeSubqueryOperator writes the operator of op ANY/ALL (...), where the
// pattern matching operators take their keyword spelling.
func writeSubqueryOperator(b *buffer, list *ast.NodeList) error {
	if list.Len() == 1 {
		if op, ok := ast.StrVal(list.Items[0]); ok {
			if word, ok := subqueryOperatorWords[op]; ok {
				b.write(word)
				return nil
			}
		}
	}
	return writeQualifiedOperator(b, list)
}

// writeTargetList writes the projection of a SELECT or RETURNING.
func writeTargetList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(t *ast.ResTarget) error {
		if err := buildExpr(b, t.Val); err != nil {
			return err
		}
		if t.Name != "" {
			b.write(" AS ")
			b.ident(t.Name)
		}
		return nil
	})
}

// writeInsertColumnList writes the target columns of INSERT.
func writeInsertColumnList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(t *ast.ResTarget) error {
		return writeSetTarget(b, t)
	})
}

func writeSetTarget(b *buffer, t *ast.ResTarget) error {
	if t.Name == "" {
		return errMissing("name")
	}
	b.ident(t.Name)
	return writeIndirection(b, listItems(t.Indirection))
}

// writeSetClauseList writes the assignments of UPDATE and ON CONFLICT DO
// UPDATE. A multi-assignment (a, b) = source is stored as ncolumns
// consecutive targets sharing one source, so the loop writes the group
// once and skips the rest of it.
func writeSetClauseList(b *buffer, list *ast.NodeList) error {
	if list.Len() == 0 {
		return errUnsupported("empty SET clause")
	}
	targets := make([]*ast.ResTarget, 0, list.Len())
	if err := eachAs(list, func(_ int, t *ast.ResTarget) error {
		targets = append(targets, t)
		return nil
	}); err != nil {
		return err
	}

	skip := 0
	for i, t := range targets {
		if skip > 0 {
			skip--
			continue
		}
		if i > 0 {
			b.write(", ")
		}
		if t.Val == nil {
			return errMissing("val")
		}
		mar, ok := t.Val.(*ast.MultiAssignRef)
		if !ok {
			if err := writeSetTarget(b, t); err != nil {
				return err
			}
			b.write(" = ")
			if err := buildExpr(b, t.Val); err != nil {
				return err
			}
			continue
		}

		if mar.Ncolumns < 1 || i+mar.Ncolumns > len(targets) {
			return errUnsupported("multi-assignment of %d columns", mar.Ncolumns)
		}
		b.writeByte('(')
		for j := 0; j < mar.Ncolumns; j++ {
			if j > 0 {
				b.write(", ")
			}
			if err := writeSetTarget(b, targets[i+j]); err != nil {
				return err
			}
		}
		b.write(") = ")
		if err := buildExpr(b, mar.Source); err != nil {
			return err
		}
		skip = mar.Ncolumns - 1
	}
	return nil
}

// writeSortClause writes ORDER BY items; an empty list writes nothing.
func writeSortClause(b *buffer, list *ast.NodeList) error {
	if list.Len() == 0 {
		return nil
	}
	b.keyword("ORDER BY ")
	return joinAs(b, list, ", ", func(s *ast.SortBy) error {
		return writeSortBy(b, s)
	})
}

func writeGroupByList(b *buffer, list *ast.NodeList) error {
	return b.join(list, ", ", func(n ast.Node) error {
		if g, ok := n.(*ast.GroupingSet); ok {
			return writeGroupingSet(b, g)
		}
		return buildExpr(b, n)
	})
}

// writeFromList writes the comma separated table references of FROM or USING.
func writeFromList(b *buffer, list *ast.NodeList) error {
	return b.join(list, ", ", func(n ast.Node) error {
		return writeTableRef(b, n)
	})
}

func writeTableRef(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case *ast.RangeVar:
		return writeRangeVar(b, v, ContextNone)
	case *ast.RangeTableSample:
		return writeRangeTableSample(b, v)
	case *ast.RangeFunction:
		return writeRangeFunction(b, v)
	case *ast.RangeTableFunc:
		return writeRangeTableFunc(b, v)
	case *ast.RangeSubselect:
		return writeRangeSubselect(b, v)
	case *ast.JoinExpr:
		return writeJoinExpr(b, v)
	case nil:
		return errMissing("table")
	default:
		return errUnexpectedNode(n)
	}
}

func writeWhereClause(b *buffer, n ast.Node) error {
	if n == nil {
		return nil
	}
	b.keyword("WHERE ")
	return buildExpr(b, n)
}

// writeVarList writes the values of SET name TO ....
func writeVarList(b *buffer, list *ast.NodeList) error {
	return b.join(list, ", ", func(n ast.Node) error {
		switch v := n.(type) {
		case *ast.ParamRef:
			return writeParamRef(b, v)
		case *ast.A_Const:
			switch val := v.Val.(type) {
			case *ast.Integer:
				b.write(strconv.Itoa(val.Ival))
			case *ast.Float:
				b.write(val.Fval)
			case *ast.String:
				b.write(booleanOrString(val.Sval))
			case *ast.Boolean:
				if val.Boolval {
					b.write("TRUE")
				} else {
					b.write("FALSE")
				}
			default:
				return errUnexpectedNode(v.Val)
			}
			return nil
		case *ast.TypeCast:
			// SET TIME ZONE INTERVAL '...' HOUR TO MINUTE
			return writeTypeCast(b, v)
		default:
			return errUnexpectedNode(n)
		}
	})
}

func booleanOrString(s string) string {
	switch s {
	case "true", "false", "on", "off":
		return strings.ToUpper(s)
	}
	return nonReservedWordOrSconst(s)
}

// writeGenericDefElemName writes an option name as an upper case word.
// Names that are not plain words are quoted.
func writeGenericDefElemName(b *buffer, name string) {
	if !isSafeIdentifier(name) {
		b.ident(name)
		return
	}
	b.write(strings.ToUpper(name))
}
