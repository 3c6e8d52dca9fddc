// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

func newBase(tag NodeTag) BaseNode {
	return BaseNode{Tag: tag, Loc: -1}
}

func (n *BaseNode) base() *BaseNode {
	return n
}

type baseNode interface {
	base() *BaseNode
}

// nodeFactories holds a constructor for every kind with a dedicated struct.
var nodeFactories = map[NodeTag]func() Node{
	T_A_ArrayExpr:                func() Node { return &A_ArrayExpr{} },
	T_A_Const:                    func() Node { return &A_Const{} },
	T_A_Expr:                     func() Node { return &A_Expr{} },
	T_A_Indices:                  func() Node { return &A_Indices{} },
	T_A_Indirection:              func() Node { return &A_Indirection{} },
	T_A_Star:                     func() Node { return &A_Star{} },
	T_AccessPriv:                 func() Node { return &AccessPriv{} },
	T_Alias:                      func() Node { return &Alias{} },
	T_AlterDatabaseSetStmt:       func() Node { return &AlterDatabaseSetStmt{} },
	T_AlterDatabaseStmt:          func() Node { return &AlterDatabaseStmt{} },
	T_AlterExtensionContentsStmt: func() Node { return &AlterExtensionContentsStmt{} },
	T_AlterExtensionStmt:         func() Node { return &AlterExtensionStmt{} },
	T_AlterObjectDependsStmt:     func() Node { return &AlterObjectDependsStmt{} },
	T_AlterObjectSchemaStmt:      func() Node { return &AlterObjectSchemaStmt{} },
	T_AlterSystemStmt:            func() Node { return &AlterSystemStmt{} },
	T_AlterTableCmd:              func() Node { return &AlterTableCmd{} },
	T_AlterTableSpaceOptionsStmt: func() Node { return &AlterTableSpaceOptionsStmt{} },
	T_AlterTableStmt:             func() Node { return &AlterTableStmt{} },
	T_BitString:                  func() Node { return &BitString{} },
	T_BoolExpr:                   func() Node { return &BoolExpr{} },
	T_Boolean:                    func() Node { return &Boolean{} },
	T_BooleanTest:                func() Node { return &BooleanTest{} },
	T_CallStmt:                   func() Node { return &CallStmt{} },
	T_CaseExpr:                   func() Node { return &CaseExpr{} },
	T_CaseWhen:                   func() Node { return &CaseWhen{} },
	T_CheckPointStmt:             func() Node { return &CheckPointStmt{} },
	T_ClosePortalStmt:            func() Node { return &ClosePortalStmt{} },
	T_CoalesceExpr:               func() Node { return &CoalesceExpr{} },
	T_CollateClause:              func() Node { return &CollateClause{} },
	T_ColumnDef:                  func() Node { return &ColumnDef{} },
	T_ColumnRef:                  func() Node { return &ColumnRef{} },
	T_CommentStmt:                func() Node { return &CommentStmt{} },
	T_CommonTableExpr:            func() Node { return &CommonTableExpr{} },
	T_CompositeTypeStmt:          func() Node { return &CompositeTypeStmt{} },
	T_Constraint:                 func() Node { return &Constraint{} },
	T_CopyStmt:                   func() Node { return &CopyStmt{} },
	T_CreateCastStmt:             func() Node { return &CreateCastStmt{} },
	T_CreateDomainStmt:           func() Node { return &CreateDomainStmt{} },
	T_CreateEnumStmt:             func() Node { return &CreateEnumStmt{} },
	T_CreateExtensionStmt:        func() Node { return &CreateExtensionStmt{} },
	T_CreateForeignTableStmt:     func() Node { return &CreateForeignTableStmt{} },
	T_CreateFunctionStmt:         func() Node { return &CreateFunctionStmt{} },
	T_CreateRangeStmt:            func() Node { return &CreateRangeStmt{} },
	T_CreateSchemaStmt:           func() Node { return &CreateSchemaStmt{} },
	T_CreateSeqStmt:              func() Node { return &CreateSeqStmt{} },
	T_CreateStmt:                 func() Node { return &CreateStmt{} },
	T_CreateTableAsStmt:          func() Node { return &CreateTableAsStmt{} },
	T_CreateTableSpaceStmt:       func() Node { return &CreateTableSpaceStmt{} },
	T_CreateTrigStmt:             func() Node { return &CreateTrigStmt{} },
	T_CreatedbStmt:               func() Node { return &CreatedbStmt{} },
	T_CurrentOfExpr:              func() Node { return &CurrentOfExpr{} },
	T_DeallocateStmt:             func() Node { return &DeallocateStmt{} },
	T_DefElem:                    func() Node { return &DefElem{} },
	T_DefineStmt:                 func() Node { return &DefineStmt{} },
	T_DeleteStmt:                 func() Node { return &DeleteStmt{} },
	T_DiscardStmt:                func() Node { return &DiscardStmt{} },
	T_DoStmt:                     func() Node { return &DoStmt{} },
	T_DropRoleStmt:               func() Node { return &DropRoleStmt{} },
	T_DropStmt:                   func() Node { return &DropStmt{} },
	T_DropSubscriptionStmt:       func() Node { return &DropSubscriptionStmt{} },
	T_DropTableSpaceStmt:         func() Node { return &DropTableSpaceStmt{} },
	T_DropdbStmt:                 func() Node { return &DropdbStmt{} },
	T_ExecuteStmt:                func() Node { return &ExecuteStmt{} },
	T_ExplainStmt:                func() Node { return &ExplainStmt{} },
	T_Float:                      func() Node { return &Float{} },
	T_FuncCall:                   func() Node { return &FuncCall{} },
	T_FunctionParameter:          func() Node { return &FunctionParameter{} },
	T_GrantRoleStmt:              func() Node { return &GrantRoleStmt{} },
	T_GrantStmt:                  func() Node { return &GrantStmt{} },
	T_GroupingFunc:               func() Node { return &GroupingFunc{} },
	T_GroupingSet:                func() Node { return &GroupingSet{} },
	T_IndexElem:                  func() Node { return &IndexElem{} },
	T_IndexStmt:                  func() Node { return &IndexStmt{} },
	T_InferClause:                func() Node { return &InferClause{} },
	T_InsertStmt:                 func() Node { return &InsertStmt{} },
	T_Integer:                    func() Node { return &Integer{} },
	T_IntoClause:                 func() Node { return &IntoClause{} },
	T_JoinExpr:                   func() Node { return &JoinExpr{} },
	T_ListenStmt:                 func() Node { return &ListenStmt{} },
	T_LoadStmt:                   func() Node { return &LoadStmt{} },
	T_LockStmt:                   func() Node { return &LockStmt{} },
	T_LockingClause:              func() Node { return &LockingClause{} },
	T_MinMaxExpr:                 func() Node { return &MinMaxExpr{} },
	T_MultiAssignRef:             func() Node { return &MultiAssignRef{} },
	T_NamedArgExpr:               func() Node { return &NamedArgExpr{} },
	T_List:                       func() Node { return &NodeList{} },
	T_NotifyStmt:                 func() Node { return &NotifyStmt{} },
	T_Null:                       func() Node { return &Null{} },
	T_NullTest:                   func() Node { return &NullTest{} },
	T_ObjectWithArgs:             func() Node { return &ObjectWithArgs{} },
	T_OnConflictClause:           func() Node { return &OnConflictClause{} },
	T_ParamRef:                   func() Node { return &ParamRef{} },
	T_PartitionBoundSpec:         func() Node { return &PartitionBoundSpec{} },
	T_PartitionCmd:               func() Node { return &PartitionCmd{} },
	T_PartitionElem:              func() Node { return &PartitionElem{} },
	T_PartitionSpec:              func() Node { return &PartitionSpec{} },
	T_PrepareStmt:                func() Node { return &PrepareStmt{} },
	T_RangeFunction:              func() Node { return &RangeFunction{} },
	T_RangeSubselect:             func() Node { return &RangeSubselect{} },
	T_RangeTableFunc:             func() Node { return &RangeTableFunc{} },
	T_RangeTableFuncCol:          func() Node { return &RangeTableFuncCol{} },
	T_RangeTableSample:           func() Node { return &RangeTableSample{} },
	T_RangeVar:                   func() Node { return &RangeVar{} },
	T_RawStmt:                    func() Node { return &RawStmt{} },
	T_RefreshMatViewStmt:         func() Node { return &RefreshMatViewStmt{} },
	T_RenameStmt:                 func() Node { return &RenameStmt{} },
	T_ReplicaIdentityStmt:        func() Node { return &ReplicaIdentityStmt{} },
	T_ResTarget:                  func() Node { return &ResTarget{} },
	T_RoleSpec:                   func() Node { return &RoleSpec{} },
	T_RowExpr:                    func() Node { return &RowExpr{} },
	T_SQLValueFunction:           func() Node { return &SQLValueFunction{} },
	T_SelectStmt:                 func() Node { return &SelectStmt{} },
	T_SetToDefault:               func() Node { return &SetToDefault{} },
	T_SortBy:                     func() Node { return &SortBy{} },
	T_String:                     func() Node { return &String{} },
	T_SubLink:                    func() Node { return &SubLink{} },
	T_TableLikeClause:            func() Node { return &TableLikeClause{} },
	T_TransactionStmt:            func() Node { return &TransactionStmt{} },
	T_TriggerTransition:          func() Node { return &TriggerTransition{} },
	T_TruncateStmt:               func() Node { return &TruncateStmt{} },
	T_TypeCast:                   func() Node { return &TypeCast{} },
	T_TypeName:                   func() Node { return &TypeName{} },
	T_UnlistenStmt:               func() Node { return &UnlistenStmt{} },
	T_UpdateStmt:                 func() Node { return &UpdateStmt{} },
	T_VacuumRelation:             func() Node { return &VacuumRelation{} },
	T_VacuumStmt:                 func() Node { return &VacuumStmt{} },
	T_VariableSetStmt:            func() Node { return &VariableSetStmt{} },
	T_VariableShowStmt:           func() Node { return &VariableShowStmt{} },
	T_ViewStmt:                   func() Node { return &ViewStmt{} },
	T_WindowDef:                  func() Node { return &WindowDef{} },
	T_WithClause:                 func() Node { return &WithClause{} },
	T_XmlExpr:                    func() Node { return &XmlExpr{} },
	T_XmlSerialize:               func() Node { return &XmlSerialize{} },
}

// NewNode returns an empty node of the given kind with its tag set. Kinds
// without a dedicated struct get a RawNode.
func NewNode(tag NodeTag) Node {
	factory, ok := nodeFactories[tag]
	if !ok {
		return NewRawNode(tag, nil)
	}
	n := factory()
	SetTag(n, tag)
	SetLocation(n, -1)
	return n
}

// HasStruct reports whether the kind has a dedicated struct.
func HasStruct(tag NodeTag) bool {
	_, ok := nodeFactories[tag]
	return ok
}

// SetTag sets the tag of a node built without a constructor.
func SetTag(n Node, tag NodeTag) {
	if b, ok := n.(baseNode); ok {
		b.base().Tag = tag
	}
}

// SetLocation sets the source offset of a node.
func SetLocation(n Node, loc int) {
	if b, ok := n.(baseNode); ok {
		b.base().Loc = loc
	}
}
