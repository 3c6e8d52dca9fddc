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
	"reflect"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// buildNode writes any node that has a rendering of its own. Statements,
// clauses and expressions are routed to their builders; every other kind
// fails with Unsupported naming the kind.
func buildNode(b *buffer, n ast.Node, ctx Context) error {
	if isNilNode(n) {
		return errMissing("node")
	}
	switch v := n.(type) {
	case *ast.RawStmt:
		return buildNode(b, v.Stmt, ctx)

	// DML
	case *ast.SelectStmt:
		return writeSelectStmt(b, v)
	case *ast.InsertStmt:
		return writeInsertStmt(b, v)
	case *ast.UpdateStmt:
		return writeUpdateStmt(b, v)
	case *ast.DeleteStmt:
		return writeDeleteStmt(b, v)
	case *ast.CopyStmt:
		return writeCopyStmt(b, v)

	// DDL
	case *ast.CreateStmt:
		return writeCreateStmt(b, v, ctx)
	case *ast.CreateForeignTableStmt:
		return writeCreateForeignTableStmt(b, v)
	case *ast.AlterTableStmt:
		return writeAlterTableStmt(b, v)
	case *ast.AlterTableCmd:
		return writeAlterTableCmd(b, v, ctx)
	case *ast.IndexStmt:
		return writeIndexStmt(b, v)
	case *ast.ViewStmt:
		return writeViewStmt(b, v)
	case *ast.CreateTableAsStmt:
		return writeCreateTableAsStmt(b, v)
	case *ast.RefreshMatViewStmt:
		return writeRefreshMatViewStmt(b, v)
	case *ast.CreateSeqStmt:
		return writeCreateSeqStmt(b, v)
	case *ast.CreateSchemaStmt:
		return writeCreateSchemaStmt(b, v)
	case *ast.CreateFunctionStmt:
		return writeCreateFunctionStmt(b, v)
	case *ast.CreateTrigStmt:
		return writeCreateTrigStmt(b, v)
	case *ast.CreateDomainStmt:
		return writeCreateDomainStmt(b, v)
	case *ast.CreateEnumStmt:
		return writeCreateEnumStmt(b, v)
	case *ast.CreateRangeStmt:
		return writeCreateRangeStmt(b, v)
	case *ast.CompositeTypeStmt:
		return writeCompositeTypeStmt(b, v)
	case *ast.CreateExtensionStmt:
		return writeCreateExtensionStmt(b, v)
	case *ast.AlterExtensionStmt:
		return writeAlterExtensionStmt(b, v)
	case *ast.AlterExtensionContentsStmt:
		return writeAlterExtensionContentsStmt(b, v)
	case *ast.CreatedbStmt:
		return writeCreatedbStmt(b, v)
	case *ast.AlterDatabaseStmt:
		return writeAlterDatabaseStmt(b, v)
	case *ast.AlterDatabaseSetStmt:
		return writeAlterDatabaseSetStmt(b, v)
	case *ast.DropdbStmt:
		return writeDropdbStmt(b, v)
	case *ast.CreateTableSpaceStmt:
		return writeCreateTableSpaceStmt(b, v)
	case *ast.DropTableSpaceStmt:
		return writeDropTableSpaceStmt(b, v)
	case *ast.AlterTableSpaceOptionsStmt:
		return writeAlterTableSpaceOptionsStmt(b, v)
	case *ast.CreateCastStmt:
		return writeCreateCastStmt(b, v)
	case *ast.DefineStmt:
		return writeDefineStmt(b, v)
	case *ast.DropStmt:
		return writeDropStmt(b, v)
	case *ast.DropRoleStmt:
		return writeDropRoleStmt(b, v)
	case *ast.DropSubscriptionStmt:
		return writeDropSubscriptionStmt(b, v)
	case *ast.GrantStmt:
		return writeGrantStmt(b, v)
	case *ast.GrantRoleStmt:
		return writeGrantRoleStmt(b, v)
	case *ast.RenameStmt:
		return writeRenameStmt(b, v)
	case *ast.AlterObjectSchemaStmt:
		return writeAlterObjectSchemaStmt(b, v)
	case *ast.AlterObjectDependsStmt:
		return writeAlterObjectDependsStmt(b, v)
	case *ast.CommentStmt:
		return writeCommentStmt(b, v)
	case *ast.ReplicaIdentityStmt:
		return writeReplicaIdentityStmt(b, v)

	// Utility
	case *ast.DoStmt:
		return writeDoStmt(b, v)
	case *ast.DiscardStmt:
		return writeDiscardStmt(b, v)
	case *ast.ExecuteStmt:
		return writeExecuteStmt(b, v)
	case *ast.PrepareStmt:
		return writePrepareStmt(b, v)
	case *ast.DeallocateStmt:
		return writeDeallocateStmt(b, v)
	case *ast.ExplainStmt:
		return writeExplainStmt(b, v)
	case *ast.LoadStmt:
		return writeLoadStmt(b, v)
	case *ast.LockStmt:
		return writeLockStmt(b, v)
	case *ast.TransactionStmt:
		return writeTransactionStmt(b, v)
	case *ast.VacuumStmt:
		return writeVacuumStmt(b, v)
	case *ast.VariableSetStmt:
		return writeVariableSetStmt(b, v)
	case *ast.VariableShowStmt:
		return writeVariableShowStmt(b, v)
	case *ast.AlterSystemStmt:
		return writeAlterSystemStmt(b, v)
	case *ast.TruncateStmt:
		return writeTruncateStmt(b, v)
	case *ast.ListenStmt:
		return writeListenStmt(b, v)
	case *ast.UnlistenStmt:
		return writeUnlistenStmt(b, v)
	case *ast.NotifyStmt:
		return writeNotifyStmt(b, v)
	case *ast.CheckPointStmt:
		b.write("CHECKPOINT")
		return nil
	case *ast.ClosePortalStmt:
		return writeClosePortalStmt(b, v)
	case *ast.CallStmt:
		return writeCallStmt(b, v)

	// Clauses
	case *ast.Alias:
		return writeAlias(b, v)
	case *ast.RangeVar:
		return writeRangeVar(b, v, ctx)
	case *ast.JoinExpr:
		return writeJoinExpr(b, v)
	case *ast.RangeFunction:
		return writeRangeFunction(b, v)
	case *ast.RangeSubselect:
		return writeRangeSubselect(b, v)
	case *ast.RangeTableFunc:
		return writeRangeTableFunc(b, v)
	case *ast.RangeTableFuncCol:
		return writeRangeTableFuncCol(b, v)
	case *ast.RangeTableSample:
		return writeRangeTableSample(b, v)
	case *ast.ResTarget:
		return writeTargetList(b, ast.NewNodeList(v))
	case *ast.SortBy:
		return writeSortBy(b, v)
	case *ast.GroupingSet:
		return writeGroupingSet(b, v)
	case *ast.WindowDef:
		return writeWindowDef(b, v)
	case *ast.WithClause:
		return writeWithClause(b, v)
	case *ast.CommonTableExpr:
		return writeCommonTableExpr(b, v)
	case *ast.IntoClause:
		return writeIntoClause(b, v)
	case *ast.LockingClause:
		return writeLockingClause(b, v)
	case *ast.OnConflictClause:
		return writeOnConflictClause(b, v)
	case *ast.InferClause:
		return writeInferClause(b, v)
	case *ast.CaseWhen:
		return writeCaseWhen(b, v)
	case *ast.A_Indices:
		return writeAIndices(b, v)
	case *ast.A_Star:
		b.write("*")
		return nil
	case *ast.NamedArgExpr:
		return writeNamedArgExpr(b, v)
	case *ast.TypeName:
		return writeTypeName(b, v)
	case *ast.ColumnDef:
		return writeColumnDef(b, v)
	case *ast.Constraint:
		return writeConstraint(b, v)
	case *ast.TableLikeClause:
		return writeTableLikeClause(b, v)
	case *ast.IndexElem:
		return writeIndexElem(b, v)
	case *ast.PartitionSpec:
		return writePartitionSpec(b, v)
	case *ast.PartitionElem:
		return writePartitionElem(b, v)
	case *ast.PartitionBoundSpec:
		return writePartitionBoundSpec(b, v)
	case *ast.PartitionCmd:
		return writePartitionCmd(b, v)
	case *ast.FunctionParameter:
		return writeFunctionParameter(b, v)
	case *ast.TriggerTransition:
		return writeTriggerTransition(b, v)
	case *ast.RoleSpec:
		return writeRoleSpec(b, v)
	case *ast.AccessPriv:
		return writeAccessPriv(b, v)

	// Values
	case *ast.Integer, *ast.Float, *ast.Boolean, *ast.String, *ast.BitString, *ast.Null:
		return writeValue(b, v, ctx)
	case *ast.A_Expr:
		return writeAExpr(b, v, ctx)

	// Expressions
	case *ast.A_Const, *ast.FuncCall, *ast.XmlExpr, *ast.TypeCast, *ast.ColumnRef,
		*ast.CaseExpr, *ast.A_ArrayExpr, *ast.NullTest, *ast.XmlSerialize,
		*ast.ParamRef, *ast.BoolExpr, *ast.SubLink, *ast.RowExpr,
		*ast.CoalesceExpr, *ast.SetToDefault, *ast.A_Indirection,
		*ast.CollateClause, *ast.CurrentOfExpr, *ast.SQLValueFunction,
		*ast.MinMaxExpr, *ast.BooleanTest, *ast.GroupingFunc:
		return buildExpr(b, v)
	default:
		return errUnsupported("%s", n.NodeTag())
	}
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
