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

func writeReturning(b *buffer, list *ast.NodeList) error {
	if list.Len() == 0 {
		return nil
	}
	b.keyword("RETURNING ")
	return writeTargetList(b, list)
}

func writeInsertStmt(b *buffer, n *ast.InsertStmt) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	if n.WithClause != nil {
		if err := writeWithClause(b, n.WithClause); err != nil {
			return err
		}
	}

	b.keyword("INSERT INTO ")
	if err := writeRangeVar(b, n.Relation, ContextInsertRelation); err != nil {
		return err
	}
	if n.Cols.Len() > 0 {
		b.write(" (")
		if err := writeInsertColumnList(b, n.Cols); err != nil {
			return err
		}
		b.writeByte(')')
	}

	switch n.Override {
	case ast.OVERRIDING_NOT_SET:
	case ast.OVERRIDING_USER_VALUE:
		b.write(" OVERRIDING USER VALUE")
	case ast.OVERRIDING_SYSTEM_VALUE:
		b.write(" OVERRIDING SYSTEM VALUE")
	default:
		return errUnreachable()
	}

	if n.SelectStmt != nil {
		sel, err := nodeAs[*ast.SelectStmt](n.SelectStmt, "selectStmt")
		if err != nil {
			return err
		}
		b.writeByte(' ')
		if err := writeSelectStmt(b, sel); err != nil {
			return err
		}
	} else {
		b.write(" DEFAULT VALUES")
	}

	if n.OnConflictClause != nil {
		if err := writeOnConflictClause(b, n.OnConflictClause); err != nil {
			return err
		}
	}
	return writeReturning(b, n.ReturningList)
}

func writeOnConflictClause(b *buffer, n *ast.OnConflictClause) error {
	b.keyword("ON CONFLICT")
	if n.Infer != nil {
		if err := writeInferClause(b, n.Infer); err != nil {
			return err
		}
	}
	switch n.Action {
	case ast.ONCONFLICT_NOTHING:
		b.write(" DO NOTHING")
	case ast.ONCONFLICT_UPDATE:
		b.write(" DO UPDATE SET ")
		if err := writeSetClauseList(b, n.TargetList); err != nil {
			return err
		}
		return writeWhereClause(b, n.WhereClause)
	default:
		return errUnsupported("ON CONFLICT action %s", n.Action)
	}
	return nil
}

func writeInferClause(b *buffer, n *ast.InferClause) error {
	if n.IndexElems.Len() > 0 {
		b.write(" (")
		if err := joinAs(b, n.IndexElems, ", ", func(e *ast.IndexElem) error {
			return writeIndexElem(b, e)
		}); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.Conname != "" {
		b.write(" ON CONSTRAINT ")
		b.ident(n.Conname)
	}
	return writeWhereClause(b, n.WhereClause)
}

func writeUpdateStmt(b *buffer, n *ast.UpdateStmt) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	if n.WithClause != nil {
		if err := writeWithClause(b, n.WithClause); err != nil {
			return err
		}
	}
	b.keyword("UPDATE ")
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	b.write(" SET ")
	if err := writeSetClauseList(b, n.TargetList); err != nil {
		return err
	}
	if n.FromClause.Len() > 0 {
		b.keyword("FROM ")
		if err := writeFromList(b, n.FromClause); err != nil {
			return err
		}
	}
	if err := writeWhereClause(b, n.WhereClause); err != nil {
		return err
	}
	return writeReturning(b, n.ReturningList)
}

func writeDeleteStmt(b *buffer, n *ast.DeleteStmt) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	if n.WithClause != nil {
		if err := writeWithClause(b, n.WithClause); err != nil {
			return err
		}
	}
	b.keyword("DELETE FROM ")
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	if n.UsingClause.Len() > 0 {
		b.keyword("USING ")
		if err := writeFromList(b, n.UsingClause); err != nil {
			return err
		}
	}
	if err := writeWhereClause(b, n.WhereClause); err != nil {
		return err
	}
	return writeReturning(b, n.ReturningList)
}

// ============================================================================
// COPY
// ============================================================================

func writeCopyStmt(b *buffer, n *ast.CopyStmt) error {
	b.write("COPY")
	switch {
	case n.Relation != nil:
		b.writeByte(' ')
		if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
			return err
		}
		if err := writeParenColumnList(b, n.Attlist); err != nil {
			return err
		}
	case n.Query != nil:
		b.write(" (")
		if err := writePreparableStmt(b, n.Query); err != nil {
			return err
		}
		b.writeByte(')')
	default:
		return errMissing("relation")
	}

	if n.IsFrom {
		b.write(" FROM")
	} else {
		b.write(" TO")
	}
	if n.IsProgram {
		b.write(" PROGRAM")
	}
	switch {
	case n.Filename != "":
		b.writeByte(' ')
		b.literal(n.Filename)
	case n.IsFrom:
		b.write(" STDIN")
	default:
		b.write(" STDOUT")
	}

	if n.Options.Len() > 0 {
		b.write(" WITH (")
		if err := joinAs(b, n.Options, ", ", func(d *ast.DefElem) error {
			return writeCopyOption(b, d)
		}); err != nil {
			return err
		}
		b.writeByte(')')
	}
	return writeWhereClause(b, n.WhereClause)
}

// writeCopyOption writes one generic COPY option as NAME value.
func writeCopyOption(b *buffer, d *ast.DefElem) error {
	if d.Defname == "" {
		return errMissing("defname")
	}
	b.write(strings.ToUpper(d.Defname))
	if d.Arg == nil {
		return nil
	}
	b.writeByte(' ')
	switch v := d.Arg.(type) {
	case *ast.String:
		if d.Defname == "format" {
			b.write(strings.ToUpper(v.Sval))
		} else {
			b.literal(v.Sval)
		}
	case *ast.Boolean:
		if v.Boolval {
			b.write("TRUE")
		} else {
			b.write("FALSE")
		}
	case *ast.Integer:
		b.write(strconv.Itoa(v.Ival))
	case *ast.Float:
		b.write(v.Fval)
	case *ast.A_Star:
		b.writeByte('*')
	case *ast.NodeList:
		b.writeByte('(')
		if err := writeColumnList(b, v); err != nil {
			return err
		}
		b.writeByte(')')
	default:
		return errUnexpectedNode(d.Arg)
	}
	return nil
}
