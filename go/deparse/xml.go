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
	"github.com/multigres/pgdeparse/go/deparse/ast"
)

func writeXmlOption(b *buffer, opt ast.XmlOptionType) error {
	switch opt {
	case ast.XMLOPTION_DOCUMENT:
		b.write("document ")
	case ast.XMLOPTION_CONTENT:
		b.write("content ")
	default:
		return errUnreachable()
	}
	return nil
}

// isTrueConst reports whether n is the constant true in either of the
// forms the parser uses for boolean flags.
func isTrueConst(n ast.Node) bool {
	if tc, ok := n.(*ast.TypeCast); ok {
		n = tc.Arg
	}
	c, ok := n.(*ast.A_Const)
	if !ok {
		return false
	}
	switch v := c.Val.(type) {
	case *ast.Boolean:
		return v.Boolval
	case *ast.String:
		return v.Sval == "t" || v.Sval == "true"
	}
	return false
}

func writeXmlExpr(b *buffer, n *ast.XmlExpr) error {
	switch n.Op {
	case ast.IS_XMLCONCAT:
		b.write("xmlconcat(")
		if err := writeExprList(b, n.Args); err != nil {
			return err
		}

	case ast.IS_XMLELEMENT:
		if n.Name == "" {
			return errMissing("name")
		}
		b.write("xmlelement(name ")
		b.ident(n.Name)
		if n.NamedArgs.Len() > 0 {
			b.write(", xmlattributes(")
			if err := writeXmlAttributeList(b, n.NamedArgs); err != nil {
				return err
			}
			b.writeByte(')')
		}
		if n.Args.Len() > 0 {
			b.write(", ")
			if err := writeExprList(b, n.Args); err != nil {
				return err
			}
		}

	case ast.IS_XMLFOREST:
		b.write("xmlforest(")
		if err := writeXmlAttributeList(b, n.NamedArgs); err != nil {
			return err
		}

	case ast.IS_XMLPARSE:
		if n.Args.Len() != 2 {
			return errUnsupported("xmlparse with %d arguments", n.Args.Len())
		}
		b.write("xmlparse(")
		if err := writeXmlOption(b, n.Xmloption); err != nil {
			return err
		}
		if err := buildExpr(b, n.Args.Items[0]); err != nil {
			return err
		}
		if isTrueConst(n.Args.Items[1]) {
			b.write(" PRESERVE WHITESPACE")
		}

	case ast.IS_XMLPI:
		if n.Name == "" {
			return errMissing("name")
		}
		b.write("xmlpi(name ")
		b.ident(n.Name)
		if n.Args.Len() > 0 {
			b.write(", ")
			if err := buildExpr(b, n.Args.Items[0]); err != nil {
				return err
			}
		}

	case ast.IS_XMLROOT:
		if err := writeXmlRoot(b, n); err != nil {
			return err
		}

	case ast.IS_XMLSERIALIZE:
		return errUnsupported("%s outside XmlSerialize", n.Op)

	case ast.IS_DOCUMENT:
		if n.Args.Len() != 1 {
			return errUnsupported("IS DOCUMENT with %d arguments", n.Args.Len())
		}
		if err := writeOperand(b, n.Args.Items[0]); err != nil {
			return err
		}
		b.write(" IS DOCUMENT")
		return nil

	default:
		return errUnreachable()
	}
	b.writeByte(')')
	return nil
}

var xmlStandalone = map[int]string{
	ast.XML_STANDALONE_YES:      ", STANDALONE YES",
	ast.XML_STANDALONE_NO:       ", STANDALONE NO",
	ast.XML_STANDALONE_NO_VALUE: ", STANDALONE NO VALUE",
	ast.XML_STANDALONE_OMITTED:  "",
}

// writeXmlRoot writes xmlroot(doc, version v[, standalone]) without the
// closing parenthesis.
func writeXmlRoot(b *buffer, n *ast.XmlExpr) error {
	if n.Args.Len() != 3 {
		return errMissing("args")
	}
	b.write("xmlroot(")
	if err := buildExpr(b, n.Args.Items[0]); err != nil {
		return err
	}
	b.write(", version ")
	version := n.Args.Items[1]
	if c, ok := version.(*ast.A_Const); ok && (c.Isnull || isNullValue(c.Val)) {
		b.write("NO VALUE")
	} else if err := buildExpr(b, version); err != nil {
		return err
	}
	standalone, err := intVal(n.Args.Items[2], "args")
	if err != nil {
		return err
	}
	text, ok := xmlStandalone[standalone]
	if !ok {
		return errUnsupported("xmlroot standalone %d", standalone)
	}
	b.write(text)
	return nil
}

func isNullValue(n ast.Node) bool {
	_, ok := n.(*ast.Null)
	return ok
}

func writeXmlSerialize(b *buffer, n *ast.XmlSerialize) error {
	if n.Expr == nil {
		return errMissing("expr")
	}
	b.write("xmlserialize(")
	if err := writeXmlOption(b, n.Xmloption); err != nil {
		return err
	}
	if err := buildExpr(b, n.Expr); err != nil {
		return err
	}
	b.write(" AS ")
	if err := writeTypeName(b, n.TypeName); err != nil {
		return err
	}
	if n.Indent {
		b.write(" INDENT")
	}
	b.writeByte(')')
	return nil
}

func writeXmlAttributeList(b *buffer, list *ast.NodeList) error {
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

func writeXmlNamespaceList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(t *ast.ResTarget) error {
		if t.Name == "" {
			b.write("DEFAULT ")
		}
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

// writeRangeTableFunc writes an XMLTABLE table reference.
func writeRangeTableFunc(b *buffer, n *ast.RangeTableFunc) error {
	if n.Rowexpr == nil {
		return errMissing("rowexpr")
	}
	if n.Docexpr == nil {
		return errMissing("docexpr")
	}
	if n.Columns.Len() == 0 {
		return errMissing("columns")
	}
	if n.Lateral {
		b.write("LATERAL ")
	}
	b.write("xmltable(")
	if n.Namespaces.Len() > 0 {
		b.write("xmlnamespaces(")
		if err := writeXmlNamespaceList(b, n.Namespaces); err != nil {
			return err
		}
		b.write("), ")
	}
	if err := writeCExpr(b, n.Rowexpr); err != nil {
		return err
	}
	b.write(" PASSING ")
	if err := writeCExpr(b, n.Docexpr); err != nil {
		return err
	}
	b.write(" COLUMNS ")
	if err := joinAs(b, n.Columns, ", ", func(col *ast.RangeTableFuncCol) error {
		return writeRangeTableFuncCol(b, col)
	}); err != nil {
		return err
	}
	b.writeByte(')')
	if n.Alias != nil {
		b.write(" AS ")
		return writeAlias(b, n.Alias)
	}
	return nil
}

func writeRangeTableFuncCol(b *buffer, n *ast.RangeTableFuncCol) error {
	if n.Colname == "" {
		return errMissing("colname")
	}
	b.ident(n.Colname)
	if n.ForOrdinality {
		b.write(" FOR ORDINALITY")
		return nil
	}
	b.writeByte(' ')
	if err := writeTypeName(b, n.TypeName); err != nil {
		return err
	}
	if n.Colexpr != nil {
		b.write(" PATH ")
		if err := writeOperand(b, n.Colexpr); err != nil {
			return err
		}
	}
	if n.Coldefexpr != nil {
		b.write(" DEFAULT ")
		if err := writeOperand(b, n.Coldefexpr); err != nil {
			return err
		}
	}
	if n.IsNotNull {
		b.write(" NOT NULL")
	}
	return nil
}
