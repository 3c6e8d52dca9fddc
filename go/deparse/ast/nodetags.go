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

// NodeTag identifies the kind of a node.
// Ported from postgres/src/include/nodes/nodetags.h; the names match the
// libpg_query node names used in its JSON output.
type NodeTag int

// NodeTag constants, one per node kind.
const (
	T_Invalid NodeTag = iota
	T_A_ArrayExpr
	T_A_Const
	T_A_Expr
	T_A_Indices
	T_A_Indirection
	T_A_Star
	T_AccessPriv
	T_Aggref
	T_Alias
	T_AlterCollationStmt
	T_AlterDatabaseRefreshCollStmt
	T_AlterDatabaseSetStmt
	T_AlterDatabaseStmt
	T_AlterDefaultPrivilegesStmt
	T_AlterDomainStmt
	T_AlterEnumStmt
	T_AlterEventTrigStmt
	T_AlterExtensionContentsStmt
	T_AlterExtensionStmt
	T_AlterFdwStmt
	T_AlterForeignServerStmt
	T_AlterFunctionStmt
	T_AlterObjectDependsStmt
	T_AlterObjectSchemaStmt
	T_AlterOpFamilyStmt
	T_AlterOperatorStmt
	T_AlterOwnerStmt
	T_AlterPolicyStmt
	T_AlterPublicationStmt
	T_AlterRoleSetStmt
	T_AlterRoleStmt
	T_AlterSeqStmt
	T_AlterStatsStmt
	T_AlterSubscriptionStmt
	T_AlterSystemStmt
	T_AlterTSConfigurationStmt
	T_AlterTSDictionaryStmt
	T_AlterTableCmd
	T_AlterTableMoveAllStmt
	T_AlterTableSpaceOptionsStmt
	T_AlterTableStmt
	T_AlterTypeStmt
	T_AlterUserMappingStmt
	T_AlternativeSubPlan
	T_ArrayCoerceExpr
	T_ArrayExpr
	T_BitString
	T_BoolExpr
	T_Boolean
	T_BooleanTest
	T_CTECycleClause
	T_CTESearchClause
	T_CallContext
	T_CallStmt
	T_CaseExpr
	T_CaseTestExpr
	T_CaseWhen
	T_CheckPointStmt
	T_ClosePortalStmt
	T_ClusterStmt
	T_CoalesceExpr
	T_CoerceToDomain
	T_CoerceToDomainValue
	T_CoerceViaIO
	T_CollateClause
	T_CollateExpr
	T_ColumnDef
	T_ColumnRef
	T_CommentStmt
	T_CommonTableExpr
	T_CompositeTypeStmt
	T_Const
	T_Constraint
	T_ConstraintsSetStmt
	T_ConvertRowtypeExpr
	T_CopyStmt
	T_CreateAmStmt
	T_CreateCastStmt
	T_CreateConversionStmt
	T_CreateDomainStmt
	T_CreateEnumStmt
	T_CreateEventTrigStmt
	T_CreateExtensionStmt
	T_CreateFdwStmt
	T_CreateForeignServerStmt
	T_CreateForeignTableStmt
	T_CreateFunctionStmt
	T_CreateOpClassItem
	T_CreateOpClassStmt
	T_CreateOpFamilyStmt
	T_CreatePLangStmt
	T_CreatePolicyStmt
	T_CreatePublicationStmt
	T_CreateRangeStmt
	T_CreateRoleStmt
	T_CreateSchemaStmt
	T_CreateSeqStmt
	T_CreateStatsStmt
	T_CreateStmt
	T_CreateSubscriptionStmt
	T_CreateTableAsStmt
	T_CreateTableSpaceStmt
	T_CreateTransformStmt
	T_CreateTrigStmt
	T_CreateUserMappingStmt
	T_CreatedbStmt
	T_CurrentOfExpr
	T_DeallocateStmt
	T_DeclareCursorStmt
	T_DefElem
	T_DefineStmt
	T_DeleteStmt
	T_DiscardStmt
	T_DoStmt
	T_DropOwnedStmt
	T_DropRoleStmt
	T_DropStmt
	T_DropSubscriptionStmt
	T_DropTableSpaceStmt
	T_DropUserMappingStmt
	T_DropdbStmt
	T_ExecuteStmt
	T_ExplainStmt
	T_FetchStmt
	T_FieldSelect
	T_FieldStore
	T_Float
	T_FromExpr
	T_FuncCall
	T_FuncExpr
	T_FunctionParameter
	T_GrantRoleStmt
	T_GrantStmt
	T_GroupingFunc
	T_GroupingSet
	T_ImportForeignSchemaStmt
	T_IndexElem
	T_IndexStmt
	T_InferClause
	T_InferenceElem
	T_InlineCodeBlock
	T_InsertStmt
	T_Integer
	T_IntoClause
	T_JoinExpr
	T_JsonAggConstructor
	T_JsonArgument
	T_JsonArrayAgg
	T_JsonArrayConstructor
	T_JsonArrayQueryConstructor
	T_JsonBehavior
	T_JsonConstructorExpr
	T_JsonExpr
	T_JsonFormat
	T_JsonFuncExpr
	T_JsonIsPredicate
	T_JsonKeyValue
	T_JsonObjectAgg
	T_JsonObjectConstructor
	T_JsonOutput
	T_JsonParseExpr
	T_JsonReturning
	T_JsonScalarExpr
	T_JsonSerializeExpr
	T_JsonTable
	T_JsonTableColumn
	T_JsonTablePath
	T_JsonTablePathScan
	T_JsonTablePathSpec
	T_JsonTablePlan
	T_JsonTableSiblingJoin
	T_JsonValueExpr
	T_List
	T_ListenStmt
	T_LoadStmt
	T_LockStmt
	T_LockingClause
	T_MergeAction
	T_MergeStmt
	T_MergeSupportFunc
	T_MergeWhenClause
	T_MinMaxExpr
	T_MultiAssignRef
	T_NamedArgExpr
	T_NextValueExpr
	T_NotifyStmt
	T_Null
	T_NullTest
	T_ObjectWithArgs
	T_OnConflictClause
	T_OnConflictExpr
	T_OpExpr
	T_PLAssignStmt
	T_Param
	T_ParamRef
	T_PartitionBoundSpec
	T_PartitionCmd
	T_PartitionElem
	T_PartitionRangeDatum
	T_PartitionSpec
	T_PrepareStmt
	T_PublicationObjSpec
	T_PublicationTable
	T_Query
	T_RTEPermissionInfo
	T_RangeFunction
	T_RangeSubselect
	T_RangeTableFunc
	T_RangeTableFuncCol
	T_RangeTableSample
	T_RangeTblEntry
	T_RangeTblFunction
	T_RangeTblRef
	T_RangeVar
	T_RawStmt
	T_ReassignOwnedStmt
	T_RefreshMatViewStmt
	T_ReindexStmt
	T_RelabelType
	T_RenameStmt
	T_ReplicaIdentityStmt
	T_ResTarget
	T_ReturnStmt
	T_RoleSpec
	T_RowCompareExpr
	T_RowExpr
	T_RowMarkClause
	T_RuleStmt
	T_SQLValueFunction
	T_ScalarArrayOpExpr
	T_SecLabelStmt
	T_SelectStmt
	T_SetOperationStmt
	T_SetToDefault
	T_SinglePartitionSpec
	T_SortBy
	T_SortGroupClause
	T_StatsElem
	T_String
	T_SubLink
	T_SubPlan
	T_SubscriptingRef
	T_TableFunc
	T_TableLikeClause
	T_TableSampleClause
	T_TargetEntry
	T_TransactionStmt
	T_TriggerTransition
	T_TruncateStmt
	T_TypeCast
	T_TypeName
	T_UnlistenStmt
	T_UpdateStmt
	T_VacuumRelation
	T_VacuumStmt
	T_Var
	T_VariableSetStmt
	T_VariableShowStmt
	T_ViewStmt
	T_WindowClause
	T_WindowDef
	T_WindowFunc
	T_WindowFuncRunCondition
	T_WithCheckOption
	T_WithClause
	T_XmlExpr
	T_XmlSerialize

	numNodeTags
)

var nodeTagNames = [...]string{
	T_Invalid:                      "Invalid",
	T_A_ArrayExpr:                  "A_ArrayExpr",
	T_A_Const:                      "A_Const",
	T_A_Expr:                       "A_Expr",
	T_A_Indices:                    "A_Indices",
	T_A_Indirection:                "A_Indirection",
	T_A_Star:                       "A_Star",
	T_AccessPriv:                   "AccessPriv",
	T_Aggref:                       "Aggref",
	T_Alias:                        "Alias",
	T_AlterCollationStmt:           "AlterCollationStmt",
	T_AlterDatabaseRefreshCollStmt: "AlterDatabaseRefreshCollStmt",
	T_AlterDatabaseSetStmt:         "AlterDatabaseSetStmt",
	T_AlterDatabaseStmt:            "AlterDatabaseStmt",
	T_AlterDefaultPrivilegesStmt:   "AlterDefaultPrivilegesStmt",
	T_AlterDomainStmt:              "AlterDomainStmt",
	T_AlterEnumStmt:                "AlterEnumStmt",
	T_AlterEventTrigStmt:           "AlterEventTrigStmt",
	T_AlterExtensionContentsStmt:   "AlterExtensionContentsStmt",
	T_AlterExtensionStmt:           "AlterExtensionStmt",
	T_AlterFdwStmt:                 "AlterFdwStmt",
	T_AlterForeignServerStmt:       "AlterForeignServerStmt",
	T_AlterFunctionStmt:            "AlterFunctionStmt",
	T_AlterObjectDependsStmt:       "AlterObjectDependsStmt",
	T_AlterObjectSchemaStmt:        "AlterObjectSchemaStmt",
	T_AlterOpFamilyStmt:            "AlterOpFamilyStmt",
	T_AlterOperatorStmt:            "AlterOperatorStmt",
	T_AlterOwnerStmt:               "AlterOwnerStmt",
	T_AlterPolicyStmt:              "AlterPolicyStmt",
	T_AlterPublicationStmt:         "AlterPublicationStmt",
	T_AlterRoleSetStmt:             "AlterRoleSetStmt",
	T_AlterRoleStmt:                "AlterRoleStmt",
	T_AlterSeqStmt:                 "AlterSeqStmt",
	T_AlterStatsStmt:               "AlterStatsStmt",
	T_AlterSubscriptionStmt:        "AlterSubscriptionStmt",
	T_AlterSystemStmt:              "AlterSystemStmt",
	T_AlterTSConfigurationStmt:     "AlterTSConfigurationStmt",
	T_AlterTSDictionaryStmt:        "AlterTSDictionaryStmt",
	T_AlterTableCmd:                "AlterTableCmd",
	T_AlterTableMoveAllStmt:        "AlterTableMoveAllStmt",
	T_AlterTableSpaceOptionsStmt:   "AlterTableSpaceOptionsStmt",
	T_AlterTableStmt:               "AlterTableStmt",
	T_AlterTypeStmt:                "AlterTypeStmt",
	T_AlterUserMappingStmt:         "AlterUserMappingStmt",
	T_AlternativeSubPlan:           "AlternativeSubPlan",
	T_ArrayCoerceExpr:              "ArrayCoerceExpr",
	T_ArrayExpr:                    "ArrayExpr",
	T_BitString:                    "BitString",
	T_BoolExpr:                     "BoolExpr",
	T_Boolean:                      "Boolean",
	T_BooleanTest:                  "BooleanTest",
	T_CTECycleClause:               "CTECycleClause",
	T_CTESearchClause:              "CTESearchClause",
	T_CallContext:                  "CallContext",
	T_CallStmt:                     "CallStmt",
	T_CaseExpr:                     "CaseExpr",
	T_CaseTestExpr:                 "CaseTestExpr",
	T_CaseWhen:                     "CaseWhen",
	T_CheckPointStmt:               "CheckPointStmt",
	T_ClosePortalStmt:              "ClosePortalStmt",
	T_ClusterStmt:                  "ClusterStmt",
	T_CoalesceExpr:                 "CoalesceExpr",
	T_CoerceToDomain:               "CoerceToDomain",
	T_CoerceToDomainValue:          "CoerceToDomainValue",
	T_CoerceViaIO:                  "CoerceViaIO",
	T_CollateClause:                "CollateClause",
	T_CollateExpr:                  "CollateExpr",
	T_ColumnDef:                    "ColumnDef",
	T_ColumnRef:                    "ColumnRef",
	T_CommentStmt:                  "CommentStmt",
	T_CommonTableExpr:              "CommonTableExpr",
	T_CompositeTypeStmt:            "CompositeTypeStmt",
	T_Const:                        "Const",
	T_Constraint:                   "Constraint",
	T_ConstraintsSetStmt:           "ConstraintsSetStmt",
	T_ConvertRowtypeExpr:           "ConvertRowtypeExpr",
	T_CopyStmt:                     "CopyStmt",
	T_CreateAmStmt:                 "CreateAmStmt",
	T_CreateCastStmt:               "CreateCastStmt",
	T_CreateConversionStmt:         "CreateConversionStmt",
	T_CreateDomainStmt:             "CreateDomainStmt",
	T_CreateEnumStmt:               "CreateEnumStmt",
	T_CreateEventTrigStmt:          "CreateEventTrigStmt",
	T_CreateExtensionStmt:          "CreateExtensionStmt",
	T_CreateFdwStmt:                "CreateFdwStmt",
	T_CreateForeignServerStmt:      "CreateForeignServerStmt",
	T_CreateForeignTableStmt:       "CreateForeignTableStmt",
	T_CreateFunctionStmt:           "CreateFunctionStmt",
	T_CreateOpClassItem:            "CreateOpClassItem",
	T_CreateOpClassStmt:            "CreateOpClassStmt",
	T_CreateOpFamilyStmt:           "CreateOpFamilyStmt",
	T_CreatePLangStmt:              "CreatePLangStmt",
	T_CreatePolicyStmt:             "CreatePolicyStmt",
	T_CreatePublicationStmt:        "CreatePublicationStmt",
	T_CreateRangeStmt:              "CreateRangeStmt",
	T_CreateRoleStmt:               "CreateRoleStmt",
	T_CreateSchemaStmt:             "CreateSchemaStmt",
	T_CreateSeqStmt:                "CreateSeqStmt",
	T_CreateStatsStmt:              "CreateStatsStmt",
	T_CreateStmt:                   "CreateStmt",
	T_CreateSubscriptionStmt:       "CreateSubscriptionStmt",
	T_CreateTableAsStmt:            "CreateTableAsStmt",
	T_CreateTableSpaceStmt:         "CreateTableSpaceStmt",
	T_CreateTransformStmt:          "CreateTransformStmt",
	T_CreateTrigStmt:               "CreateTrigStmt",
	T_CreateUserMappingStmt:        "CreateUserMappingStmt",
	T_CreatedbStmt:                 "CreatedbStmt",
	T_CurrentOfExpr:                "CurrentOfExpr",
	T_DeallocateStmt:               "DeallocateStmt",
	T_DeclareCursorStmt:            "DeclareCursorStmt",
	T_DefElem:                      "DefElem",
	T_DefineStmt:                   "DefineStmt",
	T_DeleteStmt:                   "DeleteStmt",
	T_DiscardStmt:                  "DiscardStmt",
	T_DoStmt:                       "DoStmt",
	T_DropOwnedStmt:                "DropOwnedStmt",
	T_DropRoleStmt:                 "DropRoleStmt",
	T_DropStmt:                     "DropStmt",
	T_DropSubscriptionStmt:         "DropSubscriptionStmt",
	T_DropTableSpaceStmt:           "DropTableSpaceStmt",
	T_DropUserMappingStmt:          "DropUserMappingStmt",
	T_DropdbStmt:                   "DropdbStmt",
	T_ExecuteStmt:                  "ExecuteStmt",
	T_ExplainStmt:                  "ExplainStmt",
	T_FetchStmt:                    "FetchStmt",
	T_FieldSelect:                  "FieldSelect",
	T_FieldStore:                   "FieldStore",
	T_Float:                        "Float",
	T_FromExpr:                     "FromExpr",
	T_FuncCall:                     "FuncCall",
	T_FuncExpr:                     "FuncExpr",
	T_FunctionParameter:            "FunctionParameter",
	T_GrantRoleStmt:                "GrantRoleStmt",
	T_GrantStmt:                    "GrantStmt",
	T_GroupingFunc:                 "GroupingFunc",
	T_GroupingSet:                  "GroupingSet",
	T_ImportForeignSchemaStmt:      "ImportForeignSchemaStmt",
	T_IndexElem:                    "IndexElem",
	T_IndexStmt:                    "IndexStmt",
	T_InferClause:                  "InferClause",
	T_InferenceElem:                "InferenceElem",
	T_InlineCodeBlock:              "InlineCodeBlock",
	T_InsertStmt:                   "InsertStmt",
	T_Integer:                      "Integer",
	T_IntoClause:                   "IntoClause",
	T_JoinExpr:                     "JoinExpr",
	T_JsonAggConstructor:           "JsonAggConstructor",
	T_JsonArgument:                 "JsonArgument",
	T_JsonArrayAgg:                 "JsonArrayAgg",
	T_JsonArrayConstructor:         "JsonArrayConstructor",
	T_JsonArrayQueryConstructor:    "JsonArrayQueryConstructor",
	T_JsonBehavior:                 "JsonBehavior",
	T_JsonConstructorExpr:          "JsonConstructorExpr",
	T_JsonExpr:                     "JsonExpr",
	T_JsonFormat:                   "JsonFormat",
	T_JsonFuncExpr:                 "JsonFuncExpr",
	T_JsonIsPredicate:              "JsonIsPredicate",
	T_JsonKeyValue:                 "JsonKeyValue",
	T_JsonObjectAgg:                "JsonObjectAgg",
	T_JsonObjectConstructor:        "JsonObjectConstructor",
	T_JsonOutput:                   "JsonOutput",
	T_JsonParseExpr:                "JsonParseExpr",
	T_JsonReturning:                "JsonReturning",
	T_JsonScalarExpr:               "JsonScalarExpr",
	T_JsonSerializeExpr:            "JsonSerializeExpr",
	T_JsonTable:                    "JsonTable",
	T_JsonTableColumn:              "JsonTableColumn",
	T_JsonTablePath:                "JsonTablePath",
	T_JsonTablePathScan:            "JsonTablePathScan",
	T_JsonTablePathSpec:            "JsonTablePathSpec",
	T_JsonTablePlan:                "JsonTablePlan",
	T_JsonTableSiblingJoin:         "JsonTableSiblingJoin",
	T_JsonValueExpr:                "JsonValueExpr",
	T_List:                         "List",
	T_ListenStmt:                   "ListenStmt",
	T_LoadStmt:                     "LoadStmt",
	T_LockStmt:                     "LockStmt",
	T_LockingClause:                "LockingClause",
	T_MergeAction:                  "MergeAction",
	T_MergeStmt:                    "MergeStmt",
	T_MergeSupportFunc:             "MergeSupportFunc",
	T_MergeWhenClause:              "MergeWhenClause",
	T_MinMaxExpr:                   "MinMaxExpr",
	T_MultiAssignRef:               "MultiAssignRef",
	T_NamedArgExpr:                 "NamedArgExpr",
	T_NextValueExpr:                "NextValueExpr",
	T_NotifyStmt:                   "NotifyStmt",
	T_Null:                         "Null",
	T_NullTest:                     "NullTest",
	T_ObjectWithArgs:               "ObjectWithArgs",
	T_OnConflictClause:             "OnConflictClause",
	T_OnConflictExpr:               "OnConflictExpr",
	T_OpExpr:                       "OpExpr",
	T_PLAssignStmt:                 "PLAssignStmt",
	T_Param:                        "Param",
	T_ParamRef:                     "ParamRef",
	T_PartitionBoundSpec:           "PartitionBoundSpec",
	T_PartitionCmd:                 "PartitionCmd",
	T_PartitionElem:                "PartitionElem",
	T_PartitionRangeDatum:          "PartitionRangeDatum",
	T_PartitionSpec:                "PartitionSpec",
	T_PrepareStmt:                  "PrepareStmt",
	T_PublicationObjSpec:           "PublicationObjSpec",
	T_PublicationTable:             "PublicationTable",
	T_Query:                        "Query",
	T_RTEPermissionInfo:            "RTEPermissionInfo",
	T_RangeFunction:                "RangeFunction",
	T_RangeSubselect:               "RangeSubselect",
	T_RangeTableFunc:               "RangeTableFunc",
	T_RangeTableFuncCol:            "RangeTableFuncCol",
	T_RangeTableSample:             "RangeTableSample",
	T_RangeTblEntry:                "RangeTblEntry",
	T_RangeTblFunction:             "RangeTblFunction",
	T_RangeTblRef:                  "RangeTblRef",
	T_RangeVar:                     "RangeVar",
	T_RawStmt:                      "RawStmt",
	T_ReassignOwnedStmt:            "ReassignOwnedStmt",
	T_RefreshMatViewStmt:           "RefreshMatViewStmt",
	T_ReindexStmt:                  "ReindexStmt",
	T_RelabelType:                  "RelabelType",
	T_RenameStmt:                   "RenameStmt",
	T_ReplicaIdentityStmt:          "ReplicaIdentityStmt",
	T_ResTarget:                    "ResTarget",
	T_ReturnStmt:                   "ReturnStmt",
	T_RoleSpec:                     "RoleSpec",
	T_RowCompareExpr:               "RowCompareExpr",
	T_RowExpr:                      "RowExpr",
	T_RowMarkClause:                "RowMarkClause",
	T_RuleStmt:                     "RuleStmt",
	T_SQLValueFunction:             "SQLValueFunction",
	T_ScalarArrayOpExpr:            "ScalarArrayOpExpr",
	T_SecLabelStmt:                 "SecLabelStmt",
	T_SelectStmt:                   "SelectStmt",
	T_SetOperationStmt:             "SetOperationStmt",
	T_SetToDefault:                 "SetToDefault",
	T_SinglePartitionSpec:          "SinglePartitionSpec",
	T_SortBy:                       "SortBy",
	T_SortGroupClause:              "SortGroupClause",
	T_StatsElem:                    "StatsElem",
	T_String:                       "String",
	T_SubLink:                      "SubLink",
	T_SubPlan:                      "SubPlan",
	T_SubscriptingRef:              "SubscriptingRef",
	T_TableFunc:                    "TableFunc",
	T_TableLikeClause:              "TableLikeClause",
	T_TableSampleClause:            "TableSampleClause",
	T_TargetEntry:                  "TargetEntry",
	T_TransactionStmt:              "TransactionStmt",
	T_TriggerTransition:            "TriggerTransition",
	T_TruncateStmt:                 "TruncateStmt",
	T_TypeCast:                     "TypeCast",
	T_TypeName:                     "TypeName",
	T_UnlistenStmt:                 "UnlistenStmt",
	T_UpdateStmt:                   "UpdateStmt",
	T_VacuumRelation:               "VacuumRelation",
	T_VacuumStmt:                   "VacuumStmt",
	T_Var:                          "Var",
	T_VariableSetStmt:              "VariableSetStmt",
	T_VariableShowStmt:             "VariableShowStmt",
	T_ViewStmt:                     "ViewStmt",
	T_WindowClause:                 "WindowClause",
	T_WindowDef:                    "WindowDef",
	T_WindowFunc:                   "WindowFunc",
	T_WindowFuncRunCondition:       "WindowFuncRunCondition",
	T_WithCheckOption:              "WithCheckOption",
	T_WithClause:                   "WithClause",
	T_XmlExpr:                      "XmlExpr",
	T_XmlSerialize:                 "XmlSerialize",
}

var nodeTagsByName = func() map[string]NodeTag {
	m := make(map[string]NodeTag, len(nodeTagNames))
	for tag, name := range nodeTagNames {
		if tag != int(T_Invalid) {
			m[name] = NodeTag(tag)
		}
	}
	return m
}()

// String returns the node kind name, e.g. "SelectStmt".
func (t NodeTag) String() string {
	if t < 0 || t >= numNodeTags {
		return "Unknown"
	}
	return nodeTagNames[t]
}

// LookupNodeTag returns the tag for a libpg_query node name.
func LookupNodeTag(name string) (NodeTag, bool) {
	tag, ok := nodeTagsByName[name]
	return tag, ok
}

// AllNodeTags returns every valid node tag in declaration order.
func AllNodeTags() []NodeTag {
	tags := make([]NodeTag, 0, numNodeTags-1)
	for t := T_Invalid + 1; t < numNodeTags; t++ {
		tags = append(tags, t)
	}
	return tags
}
