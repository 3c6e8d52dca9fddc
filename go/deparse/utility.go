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

// ============================================================================
// Transactions
// ============================================================================

var transactionKeywords = map[ast.TransactionStmtKind]string{
	ast.TRANS_STMT_BEGIN:             "BEGIN",
	ast.TRANS_STMT_START:             "START TRANSACTION",
	ast.TRANS_STMT_COMMIT:            "COMMIT",
	ast.TRANS_STMT_ROLLBACK:          "ROLLBACK",
	ast.TRANS_STMT_SAVEPOINT:         "SAVEPOINT",
	ast.TRANS_STMT_RELEASE:           "RELEASE",
	ast.TRANS_STMT_ROLLBACK_TO:       "ROLLBACK TO SAVEPOINT",
	ast.TRANS_STMT_PREPARE:           "PREPARE TRANSACTION",
	ast.TRANS_STMT_COMMIT_PREPARED:   "COMMIT PREPARED",
	ast.TRANS_STMT_ROLLBACK_PREPARED: "ROLLBACK PREPARED",
}

func writeTransactionStmt(b *buffer, n *ast.TransactionStmt) error {
	kw, ok := transactionKeywords[n.Kind]
	if !ok {
		return errUnreachable()
	}
	b.write(kw)
	switch n.Kind {
	case ast.TRANS_STMT_BEGIN, ast.TRANS_STMT_START:
		if n.Options.Len() > 0 {
			b.writeByte(' ')
			return writeTransactionModeList(b, n.Options)
		}
	case ast.TRANS_STMT_COMMIT, ast.TRANS_STMT_ROLLBACK:
		if n.Chain {
			b.write(" AND CHAIN")
		}
	case ast.TRANS_STMT_SAVEPOINT, ast.TRANS_STMT_RELEASE, ast.TRANS_STMT_ROLLBACK_TO:
		if n.SavepointName == "" {
			return errMissing("savepoint_name")
		}
		b.writeByte(' ')
		b.ident(n.SavepointName)
	default:
		if n.Gid == "" {
			return errMissing("gid")
		}
		b.writeByte(' ')
		b.literal(n.Gid)
	}
	return nil
}

var isolationLevels = map[string]string{
	"read uncommitted": "READ UNCOMMITTED",
	"read committed":   "READ COMMITTED",
	"repeatable read":  "REPEATABLE READ",
	"serializable":     "SERIALIZABLE",
}

func writeTransactionModeList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(d *ast.DefElem) error {
		switch d.Defname {
		case "transaction_isolation":
			c, err := nodeAs[*ast.A_Const](d.Arg, "transaction_isolation")
			if err != nil {
				return err
			}
			level, err := strVal(c.Val, "transaction_isolation")
			if err != nil {
				return err
			}
			text, ok := isolationLevels[level]
			if !ok {
				return errUnsupported("isolation level %s", level)
			}
			b.write("ISOLATION LEVEL ", text)
			return nil
		case "transaction_read_only":
			return writeFlagOption(b, d, "READ ONLY", "READ WRITE")
		case "transaction_deferrable":
			return writeFlagOption(b, d, "DEFERRABLE", "NOT DEFERRABLE")
		}
		return errUnsupported("transaction mode %s", d.Defname)
	})
}

// ============================================================================
// SET, SHOW and RESET
// ============================================================================

// writeVarName writes a possibly dotted configuration parameter name.
func writeVarName(b *buffer, name string) {
	for i, part := range strings.Split(name, ".") {
		if i > 0 {
			b.writeByte('.')
		}
		b.ident(part)
	}
}

func writeVariableSetStmt(b *buffer, n *ast.VariableSetStmt) error {
	switch n.Kind {
	case ast.VAR_RESET:
		if n.Name == "" {
			return errMissing("name")
		}
		b.write("RESET ")
		writeVarName(b, n.Name)
		return nil
	case ast.VAR_RESET_ALL:
		b.write("RESET ALL")
		return nil
	}

	b.write("SET ")
	if n.IsLocal {
		b.write("LOCAL ")
	}
	switch n.Kind {
	case ast.VAR_SET_VALUE:
		if n.Args.Len() == 0 {
			return errMissing("args")
		}
		// Interval time zones are only accepted by SET TIME ZONE.
		if n.Name == "timezone" {
			b.write("TIME ZONE ")
		} else {
			writeVarName(b, n.Name)
			b.write(" TO ")
		}
		return writeVarList(b, n.Args)
	case ast.VAR_SET_DEFAULT:
		writeVarName(b, n.Name)
		b.write(" TO DEFAULT")
	case ast.VAR_SET_CURRENT:
		writeVarName(b, n.Name)
		b.write(" FROM CURRENT")
	case ast.VAR_SET_MULTI:
		switch n.Name {
		case "TRANSACTION":
			b.write("TRANSACTION ")
			return writeTransactionModeList(b, n.Args)
		case "SESSION CHARACTERISTICS":
			b.write("SESSION CHARACTERISTICS AS TRANSACTION ")
			return writeTransactionModeList(b, n.Args)
		case "TRANSACTION SNAPSHOT":
			if n.Args.Len() != 1 {
				return errMissing("args")
			}
			c, err := nodeAs[*ast.A_Const](n.Args.Items[0], "args")
			if err != nil {
				return err
			}
			snapshot, err := strVal(c.Val, "args")
			if err != nil {
				return err
			}
			b.write("TRANSACTION SNAPSHOT ")
			b.literal(snapshot)
			return nil
		}
		return errUnsupported("SET %s", n.Name)
	default:
		return errUnreachable()
	}
	return nil
}

func writeVariableShowStmt(b *buffer, n *ast.VariableShowStmt) error {
	if n.Name == "" {
		return errMissing("name")
	}
	b.write("SHOW ")
	if n.Name == "all" {
		b.write("ALL")
		return nil
	}
	writeVarName(b, n.Name)
	return nil
}

func writeAlterSystemStmt(b *buffer, n *ast.AlterSystemStmt) error {
	if n.Setstmt == nil {
		return errMissing("setstmt")
	}
	b.write("ALTER SYSTEM ")
	return writeVariableSetStmt(b, n.Setstmt)
}

// ============================================================================
// Maintenance
// ============================================================================

// writeUtilityOptionList writes the parenthesized NAME value options of
// VACUUM, ANALYZE and EXPLAIN.
func writeUtilityOptionList(b *buffer, list *ast.NodeList) error {
	b.writeByte('(')
	if err := joinAs(b, list, ", ", func(d *ast.DefElem) error {
		writeGenericDefElemName(b, d.Defname)
		switch v := d.Arg.(type) {
		case nil:
		case *ast.String:
			b.write(" ", booleanOrString(v.Sval))
		case *ast.Boolean:
			if v.Boolval {
				b.write(" TRUE")
			} else {
				b.write(" FALSE")
			}
		default:
			b.writeByte(' ')
			return writeNumericOnly(b, v)
		}
		return nil
	}); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeVacuumStmt(b *buffer, n *ast.VacuumStmt) error {
	if n.IsVacuumcmd {
		b.write("VACUUM")
	} else {
		b.write("ANALYZE")
	}
	if n.Options.Len() > 0 {
		b.writeByte(' ')
		if err := writeUtilityOptionList(b, n.Options); err != nil {
			return err
		}
	}
	if n.Rels.Len() == 0 {
		return nil
	}
	b.writeByte(' ')
	return joinAs(b, n.Rels, ", ", func(rel *ast.VacuumRelation) error {
		if rel.Relation == nil {
			return errMissing("relation")
		}
		if err := writeRangeVar(b, rel.Relation, ContextNone); err != nil {
			return err
		}
		return writeParenColumnList(b, rel.VaCols)
	})
}

func writeExplainStmt(b *buffer, n *ast.ExplainStmt) error {
	b.write("EXPLAIN ")
	if n.Options.Len() > 0 {
		if err := writeUtilityOptionList(b, n.Options); err != nil {
			return err
		}
		b.writeByte(' ')
	}
	switch n.Query.(type) {
	case *ast.SelectStmt, *ast.InsertStmt, *ast.UpdateStmt, *ast.DeleteStmt,
		*ast.CreateTableAsStmt, *ast.RefreshMatViewStmt, *ast.ExecuteStmt:
		return buildNode(b, n.Query, ContextNone)
	case nil:
		return errMissing("query")
	}
	return errUnexpectedNode(n.Query)
}

func writeTruncateStmt(b *buffer, n *ast.TruncateStmt) error {
	if n.Relations.Len() == 0 {
		return errMissing("relations")
	}
	b.write("TRUNCATE ")
	if err := writeRelationList(b, n.Relations); err != nil {
		return err
	}
	if n.RestartSeqs {
		b.write(" RESTART IDENTITY")
	}
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

var lockModes = map[int]string{
	ast.AccessShareLock:          "ACCESS SHARE",
	ast.RowShareLock:             "ROW SHARE",
	ast.RowExclusiveLock:         "ROW EXCLUSIVE",
	ast.ShareUpdateExclusiveLock: "SHARE UPDATE EXCLUSIVE",
	ast.ShareLock:                "SHARE",
	ast.ShareRowExclusiveLock:    "SHARE ROW EXCLUSIVE",
	ast.ExclusiveLock:            "EXCLUSIVE",
}

func writeLockStmt(b *buffer, n *ast.LockStmt) error {
	if n.Relations.Len() == 0 {
		return errMissing("relations")
	}
	b.write("LOCK TABLE ")
	if err := writeRelationList(b, n.Relations); err != nil {
		return err
	}
	if n.Mode != ast.AccessExclusiveLock {
		mode, ok := lockModes[n.Mode]
		if !ok {
			return errUnsupported("lock mode %d", n.Mode)
		}
		b.write(" IN ", mode, " MODE")
	}
	if n.Nowait {
		b.write(" NOWAIT")
	}
	return nil
}

func writeDropdbStmt(b *buffer, n *ast.DropdbStmt) error {
	if n.Dbname == "" {
		return errMissing("dbname")
	}
	b.write("DROP DATABASE ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	b.ident(n.Dbname)
	if n.Options.Len() == 0 {
		return nil
	}
	b.write(" WITH ")
	return writeUtilityOptionList(b, n.Options)
}

// ============================================================================
// Prepared statements and sessions
// ============================================================================

func writePrepareStmt(b *buffer, n *ast.PrepareStmt) error {
	if n.Name == "" {
		return errMissing("name")
	}
	b.write("PREPARE ")
	b.ident(n.Name)
	if n.Argtypes.Len() > 0 {
		b.writeByte('(')
		if err := writeTypeList(b, n.Argtypes); err != nil {
			return err
		}
		b.writeByte(')')
	}
	b.write(" AS ")
	return writePreparableStmt(b, n.Query)
}

func writeExecuteStmt(b *buffer, n *ast.ExecuteStmt) error {
	if n.Name == "" {
		return errMissing("name")
	}
	b.write("EXECUTE ")
	b.ident(n.Name)
	if n.Params.Len() > 0 {
		b.writeByte('(')
		if err := writeExprList(b, n.Params); err != nil {
			return err
		}
		b.writeByte(')')
	}
	return nil
}

func writeDeallocateStmt(b *buffer, n *ast.DeallocateStmt) error {
	if n.Isall || n.Name == "" {
		b.write("DEALLOCATE ALL")
		return nil
	}
	b.write("DEALLOCATE ")
	b.ident(n.Name)
	return nil
}

var discardTargets = map[ast.DiscardMode]string{
	ast.DISCARD_ALL:       "ALL",
	ast.DISCARD_PLANS:     "PLANS",
	ast.DISCARD_SEQUENCES: "SEQUENCES",
	ast.DISCARD_TEMP:      "TEMP",
}

func writeDiscardStmt(b *buffer, n *ast.DiscardStmt) error {
	target, ok := discardTargets[n.Target]
	if !ok {
		return errUnreachable()
	}
	b.write("DISCARD ", target)
	return nil
}

func writeDoStmt(b *buffer, n *ast.DoStmt) error {
	var body, lang string
	hasBody := false
	if err := eachAs(n.Args, func(_ int, d *ast.DefElem) error {
		v, err := strVal(d.Arg, d.Defname)
		if err != nil {
			return err
		}
		switch d.Defname {
		case "as":
			body, hasBody = v, true
		case "language":
			lang = v
		default:
			return errUnsupported("DO option %s", d.Defname)
		}
		return nil
	}); err != nil {
		return err
	}
	if !hasBody {
		return errMissing("as")
	}
	b.write("DO ")
	if lang != "" {
		b.write("LANGUAGE ", nonReservedWordOrSconst(lang), " ")
	}
	b.write(dollarQuote(body))
	return nil
}

func writeCallStmt(b *buffer, n *ast.CallStmt) error {
	if n.Funccall == nil {
		return errMissing("funccall")
	}
	b.write("CALL ")
	return writeFuncCall(b, n.Funccall)
}

func writeLoadStmt(b *buffer, n *ast.LoadStmt) error {
	b.write("LOAD ")
	b.literal(n.Filename)
	return nil
}

func writeClosePortalStmt(b *buffer, n *ast.ClosePortalStmt) error {
	if n.Portalname == "" {
		b.write("CLOSE ALL")
		return nil
	}
	b.write("CLOSE ")
	b.ident(n.Portalname)
	return nil
}

func writeListenStmt(b *buffer, n *ast.ListenStmt) error {
	if n.Conditionname == "" {
		return errMissing("conditionname")
	}
	b.write("LISTEN ")
	b.ident(n.Conditionname)
	return nil
}

func writeUnlistenStmt(b *buffer, n *ast.UnlistenStmt) error {
	if n.Conditionname == "" {
		b.write("UNLISTEN *")
		return nil
	}
	b.write("UNLISTEN ")
	b.ident(n.Conditionname)
	return nil
}

func writeNotifyStmt(b *buffer, n *ast.NotifyStmt) error {
	if n.Conditionname == "" {
		return errMissing("conditionname")
	}
	b.write("NOTIFY ")
	b.ident(n.Conditionname)
	if n.Payload != "" {
		b.write(", ")
		b.literal(n.Payload)
	}
	return nil
}
