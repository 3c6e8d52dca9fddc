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

// ============================================================================
// SELECT
// ============================================================================

var setOperations = map[ast.SetOperation]string{
	ast.SETOP_UNION:     " UNION ",
	ast.SETOP_INTERSECT: " INTERSECT ",
	ast.SETOP_EXCEPT:    " EXCEPT ",
}

func writeSelectStmt(b *buffer, n *ast.SelectStmt) error {
	if n.WithClause != nil {
		if err := writeWithClause(b, n.WithClause); err != nil {
			return err
		}
	}

	switch {
	case n.Op == ast.SETOP_NONE && n.ValuesLists != nil:
		if err := writeValuesLists(b, n.ValuesLists); err != nil {
			return err
		}
	case n.Op == ast.SETOP_NONE:
		if err := writeSimpleSelect(b, n); err != nil {
			return err
		}
	default:
		if err := writeSetOperation(b, n); err != nil {
			return err
		}
	}

	if err := writeSortClause(b, n.SortClause); err != nil {
		return err
	}
	if err := writeLimit(b, n); err != nil {
		return err
	}
	return eachAs(n.LockingClause, func(_ int, lc *ast.LockingClause) error {
		return writeLockingClause(b, lc)
	})
}

func writeValuesLists(b *buffer, lists *ast.NodeList) error {
	b.keyword("VALUES ")
	return joinAs(b, lists, ", ", func(row *ast.NodeList) error {
		b.writeByte('(')
		if err := writeExprList(b, row); err != nil {
			return err
		}
		b.writeByte(')')
		return nil
	})
}

// isPlainDistinct reports whether a distinct clause is the single empty
// entry the parser uses for DISTINCT without ON.
func isPlainDistinct(list *ast.NodeList) bool {
	return list.Len() == 0 || (list.Len() == 1 && list.Items[0] == nil)
}

func writeSimpleSelect(b *buffer, n *ast.SelectStmt) error {
	b.keyword("SELECT")
	if n.DistinctClause != nil {
		b.write(" DISTINCT")
		if !isPlainDistinct(n.DistinctClause) {
			b.write(" ON (")
			if err := writeExprList(b, n.DistinctClause); err != nil {
				return err
			}
			b.writeByte(')')
		}
	}
	if n.TargetList.Len() > 0 {
		b.writeByte(' ')
		if err := writeTargetList(b, n.TargetList); err != nil {
			return err
		}
	}

	if n.IntoClause != nil {
		b.keyword("INTO ")
		if n.IntoClause.Rel != nil {
			if p := persistenceKeyword(n.IntoClause.Rel.Relpersistence); p != "" {
				b.write(p, " ")
			}
		}
		if err := writeIntoClause(b, n.IntoClause); err != nil {
			return err
		}
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

	if n.GroupClause.Len() > 0 {
		b.keyword("GROUP BY ")
		if n.GroupDistinct {
			b.write("DISTINCT ")
		}
		if err := writeGroupByList(b, n.GroupClause); err != nil {
			return err
		}
	}
	if n.HavingClause != nil {
		b.keyword("HAVING ")
		if err := buildExpr(b, n.HavingClause); err != nil {
			return err
		}
	}

	if n.WindowClause.Len() > 0 {
		b.keyword("WINDOW ")
		if err := joinAs(b, n.WindowClause, ", ", func(w *ast.WindowDef) error {
			if w.Name == "" {
				return errMissing("name")
			}
			b.ident(w.Name)
			b.write(" AS ")
			return writeWindowDef(b, w)
		}); err != nil {
			return err
		}
	}
	return nil
}

// setOpBranchNeedsParens reports whether a set operation branch must be
// parenthesized to keep its own clauses and grouping.
func setOpBranchNeedsParens(branch *ast.SelectStmt) bool {
	return branch.Op != ast.SETOP_NONE || branch.SortClause.Len() > 0 ||
		branch.LimitCount != nil || branch.LimitOffset != nil ||
		branch.LockingClause.Len() > 0 || branch.WithClause != nil
}

func writeSetOperation(b *buffer, n *ast.SelectStmt) error {
	if n.Larg == nil {
		return errMissing("larg")
	}
	if n.Rarg == nil {
		return errMissing("rarg")
	}
	op, ok := setOperations[n.Op]
	if !ok {
		return errUnreachable()
	}

	b.space()
	if err := writeSetOpBranch(b, n.Larg); err != nil {
		return err
	}
	b.write(op)
	if n.All {
		b.write("ALL ")
	}
	return writeSetOpBranch(b, n.Rarg)
}

func writeSetOpBranch(b *buffer, branch *ast.SelectStmt) error {
	if !setOpBranchNeedsParens(branch) {
		return writeSelectStmt(b, branch)
	}
	b.writeByte('(')
	if err := writeSelectStmt(b, branch); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func isLimitAll(n ast.Node) bool {
	c, ok := n.(*ast.A_Const)
	return ok && (c.Isnull || isNullValue(c.Val))
}

func writeLimit(b *buffer, n *ast.SelectStmt) error {
	if n.LimitCount != nil {
		switch n.LimitOption {
		case ast.LIMIT_OPTION_WITH_TIES:
			b.keyword("FETCH FIRST ")
			if err := writeCExpr(b, n.LimitCount); err != nil {
				return err
			}
			b.write(" ROWS WITH TIES")
		default:
			b.keyword("LIMIT ")
			if isLimitAll(n.LimitCount) {
				b.write("ALL")
			} else if err := writeOperand(b, n.LimitCount); err != nil {
				return err
			}
		}
	}
	if n.LimitOffset != nil {
		b.keyword("OFFSET ")
		if err := writeOperand(b, n.LimitOffset); err != nil {
			return err
		}
	}
	return nil
}

var lockStrengths = map[ast.LockClauseStrength]string{
	ast.LCS_NONE:           "",
	ast.LCS_FORKEYSHARE:    "FOR KEY SHARE",
	ast.LCS_FORSHARE:       "FOR SHARE",
	ast.LCS_FORNOKEYUPDATE: "FOR NO KEY UPDATE",
	ast.LCS_FORUPDATE:      "FOR UPDATE",
}

func writeLockingClause(b *buffer, n *ast.LockingClause) error {
	strength, ok := lockStrengths[n.Strength]
	if !ok {
		return errUnreachable()
	}
	if strength != "" {
		b.keyword(strength)
	}
	if n.LockedRels.Len() > 0 {
		b.keyword("OF ")
		if err := writeRelationList(b, n.LockedRels); err != nil {
			return err
		}
	}
	switch n.WaitPolicy {
	case ast.LockWaitBlock:
	case ast.LockWaitSkip:
		b.keyword("SKIP LOCKED")
	case ast.LockWaitError:
		b.keyword("NOWAIT")
	default:
		return errUnreachable()
	}
	return nil
}

// ============================================================================
// WITH
// ============================================================================

func writeWithClause(b *buffer, n *ast.WithClause) error {
	if n.Ctes.Len() == 0 {
		return errMissing("ctes")
	}
	b.keyword("WITH ")
	if n.Recursive {
		b.write("RECURSIVE ")
	}
	if err := joinAs(b, n.Ctes, ", ", func(cte *ast.CommonTableExpr) error {
		return writeCommonTableExpr(b, cte)
	}); err != nil {
		return err
	}
	b.writeByte(' ')
	return nil
}

func writeCommonTableExpr(b *buffer, n *ast.CommonTableExpr) error {
	if n.Ctename == "" {
		return errMissing("ctename")
	}
	if n.SearchClause != nil {
		return errUnsupported("SEARCH clause in WITH")
	}
	if n.CycleClause != nil {
		return errUnsupported("CYCLE clause in WITH")
	}
	b.ident(n.Ctename)
	if n.Aliascolnames.Len() > 0 {
		b.writeByte('(')
		if err := writeColumnList(b, n.Aliascolnames); err != nil {
			return err
		}
		b.writeByte(')')
	}
	b.write(" AS ")
	switch n.Ctematerialized {
	case ast.CTEMaterializeDefault:
	case ast.CTEMaterializeAlways:
		b.write("MATERIALIZED ")
	case ast.CTEMaterializeNever:
		b.write("NOT MATERIALIZED ")
	default:
		return errUnreachable()
	}
	b.writeByte('(')
	if err := writePreparableStmt(b, n.Ctequery); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

// writePreparableStmt writes a statement that may appear in WITH, PREPARE,
// EXPLAIN and COPY.
func writePreparableStmt(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case *ast.SelectStmt:
		return writeSelectStmt(b, v)
	case *ast.InsertStmt:
		return writeInsertStmt(b, v)
	case *ast.UpdateStmt:
		return writeUpdateStmt(b, v)
	case *ast.DeleteStmt:
		return writeDeleteStmt(b, v)
	case nil:
		return errMissing("query")
	}
	return errUnexpectedNode(n)
}

// ============================================================================
// INTO
// ============================================================================

func persistenceKeyword(code byte) string {
	switch code {
	case ast.RELPERSISTENCE_TEMP:
		return "TEMPORARY"
	case ast.RELPERSISTENCE_UNLOGGED:
		return "UNLOGGED"
	}
	return ""
}

var onCommitActions = map[ast.OnCommitAction]string{
	ast.ONCOMMIT_NOOP:          "",
	ast.ONCOMMIT_PRESERVE_ROWS: " ON COMMIT PRESERVE ROWS",
	ast.ONCOMMIT_DELETE_ROWS:   " ON COMMIT DELETE ROWS",
	ast.ONCOMMIT_DROP:          " ON COMMIT DROP",
}

func writeOnCommit(b *buffer, action ast.OnCommitAction) error {
	text, ok := onCommitActions[action]
	if !ok {
		return errUnreachable()
	}
	b.write(text)
	return nil
}

func writeIntoClause(b *buffer, n *ast.IntoClause) error {
	if n.Rel == nil {
		return errMissing("rel")
	}
	if err := writeRangeVar(b, n.Rel, ContextNone); err != nil {
		return err
	}
	if n.ColNames.Len() > 0 {
		b.writeByte('(')
		if err := writeColumnList(b, n.ColNames); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.AccessMethod != "" {
		b.write(" USING ")
		b.ident(n.AccessMethod)
	}
	if err := writeOptWith(b, n.Options); err != nil {
		return err
	}
	if err := writeOnCommit(b, n.OnCommit); err != nil {
		return err
	}
	if n.TableSpaceName != "" {
		b.write(" TABLESPACE ")
		b.ident(n.TableSpaceName)
	}
	return nil
}

// ============================================================================
// FROM
// ============================================================================

func writeAlias(b *buffer, a *ast.Alias) error {
	if a.Aliasname == "" {
		return errMissing("aliasname")
	}
	b.ident(a.Aliasname)
	if a.Colnames.Len() > 0 {
		b.writeByte('(')
		if err := writeColumnList(b, a.Colnames); err != nil {
			return err
		}
		b.writeByte(')')
	}
	return nil
}

// writeRangeVar writes a relation reference. ONLY is omitted for type
// names, and the alias takes AS in INSERT targets.
func writeRangeVar(b *buffer, n *ast.RangeVar, ctx Context) error {
	if n.Relname == "" {
		return errMissing("relname")
	}
	if !n.Inh && ctx != ContextCreateType && ctx != ContextAlterType {
		b.write("ONLY ")
	}
	if n.Catalogname != "" {
		b.ident(n.Catalogname)
		b.writeByte('.')
	}
	if n.Schemaname != "" {
		b.ident(n.Schemaname)
		b.writeByte('.')
	}
	b.ident(n.Relname)

	if n.Alias != nil {
		if ctx == ContextInsertRelation {
			b.write(" AS ")
		} else {
			b.writeByte(' ')
		}
		return writeAlias(b, n.Alias)
	}
	return nil
}

var joinKeywords = map[ast.JoinType]string{
	ast.JOIN_LEFT:  "LEFT JOIN ",
	ast.JOIN_FULL:  "FULL JOIN ",
	ast.JOIN_RIGHT: "RIGHT JOIN ",
}

func writeJoinExpr(b *buffer, n *ast.JoinExpr) error {
	if n.Larg == nil {
		return errMissing("larg")
	}
	if n.Rarg == nil {
		return errMissing("rarg")
	}
	if n.Alias != nil {
		b.writeByte('(')
	}
	if err := writeTableRef(b, n.Larg); err != nil {
		return err
	}
	b.writeByte(' ')
	if n.IsNatural {
		b.write("NATURAL ")
	}

	switch n.Jointype {
	case ast.JOIN_INNER:
		if !n.IsNatural && n.Quals == nil && n.UsingClause.Len() == 0 {
			b.write("CROSS JOIN ")
		} else {
			b.write("INNER JOIN ")
		}
	case ast.JOIN_LEFT, ast.JOIN_FULL, ast.JOIN_RIGHT:
		b.write(joinKeywords[n.Jointype])
	default:
		return errUnsupported("join type %s", n.Jointype)
	}

	inner, nested := n.Rarg.(*ast.JoinExpr)
	nested = nested && inner.Alias == nil
	if nested {
		b.writeByte('(')
	}
	if err := writeTableRef(b, n.Rarg); err != nil {
		return err
	}
	if nested {
		b.writeByte(')')
	}

	if n.Quals != nil {
		b.write(" ON ")
		if err := buildExpr(b, n.Quals); err != nil {
			return err
		}
	}
	if n.UsingClause.Len() > 0 {
		b.write(" USING (")
		if err := writeColumnList(b, n.UsingClause); err != nil {
			return err
		}
		b.writeByte(')')
		if n.JoinUsingAlias != nil {
			b.write(" AS ")
			if err := writeAlias(b, n.JoinUsingAlias); err != nil {
				return err
			}
		}
	}

	if n.Alias != nil {
		b.write(") ")
		return writeAlias(b, n.Alias)
	}
	return nil
}

func writeRangeSubselect(b *buffer, n *ast.RangeSubselect) error {
	if n.Subquery == nil {
		return errMissing("subquery")
	}
	if n.Lateral {
		b.write("LATERAL ")
	}
	b.writeByte('(')
	if err := writeSubquery(b, n.Subquery); err != nil {
		return err
	}
	b.writeByte(')')
	if n.Alias != nil {
		b.writeByte(' ')
		return writeAlias(b, n.Alias)
	}
	return nil
}

// writeRangeFunction writes a function in FROM. Each entry of Functions is
// a two element list of the call and its column definitions.
func writeRangeFunction(b *buffer, n *ast.RangeFunction) error {
	if n.Functions.Len() == 0 {
		return errMissing("functions")
	}
	if n.Lateral {
		b.write("LATERAL ")
	}

	if n.IsRowsfrom {
		b.write("ROWS FROM (")
		if err := joinAs(b, n.Functions, ", ", func(pair *ast.NodeList) error {
			if pair.Len() != 2 {
				return errUnsupported("ROWS FROM entry with %d items", pair.Len())
			}
			if err := writeFuncExprWindowless(b, pair.Items[0]); err != nil {
				return err
			}
			coldefs, _ := pair.Items[1].(*ast.NodeList)
			if coldefs.Len() == 0 {
				return nil
			}
			b.write(" AS (")
			if err := writeColumnDefList(b, coldefs); err != nil {
				return err
			}
			b.writeByte(')')
			return nil
		}); err != nil {
			return err
		}
		b.writeByte(')')
	} else {
		pair, err := nodeAs[*ast.NodeList](n.Functions.Items[0], "functions")
		if err != nil {
			return err
		}
		if pair.Len() == 0 {
			return errMissing("functions")
		}
		if err := writeFuncExprWindowless(b, pair.Items[0]); err != nil {
			return err
		}
	}

	if n.Ordinality {
		b.write(" WITH ORDINALITY")
	}
	if n.Alias != nil {
		b.writeByte(' ')
		if err := writeAlias(b, n.Alias); err != nil {
			return err
		}
	}
	if n.Coldeflist.Len() > 0 {
		if n.Alias == nil {
			b.write(" AS")
		}
		b.write(" (")
		if err := writeColumnDefList(b, n.Coldeflist); err != nil {
			return err
		}
		b.writeByte(')')
	}
	return nil
}

func writeColumnDefList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(col *ast.ColumnDef) error {
		return writeColumnDef(b, col)
	})
}

func writeRangeTableSample(b *buffer, n *ast.RangeTableSample) error {
	rel, err := nodeAs[*ast.RangeVar](n.Relation, "relation")
	if err != nil {
		return err
	}
	if err := writeRangeVar(b, rel, ContextNone); err != nil {
		return err
	}
	b.write(" TABLESAMPLE ")
	if err := writeQualifiedName(b, n.Method, "method"); err != nil {
		return err
	}
	b.writeByte('(')
	if err := writeExprList(b, n.Args); err != nil {
		return err
	}
	b.writeByte(')')
	if n.Repeatable != nil {
		b.write(" REPEATABLE (")
		if err := buildExpr(b, n.Repeatable); err != nil {
			return err
		}
		b.writeByte(')')
	}
	return nil
}
