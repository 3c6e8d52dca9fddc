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

import "strconv"

// enumTables maps an enum's Go type name to its symbolic value names, which
// are the names libpg_query writes in its JSON output.
var enumTables = map[string]map[string]int{}

func registerEnum(typeName string, names ...string) []string {
	byName := make(map[string]int, len(names))
	for i, n := range names {
		byName[n] = i
	}
	enumTables[typeName] = byName
	return names
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "Unknown(" + strconv.Itoa(v) + ")"
	}
	return names[v]
}

// LookupEnum resolves a symbolic enum value name for the enum type with the
// given Go type name.
func LookupEnum(typeName, name string) (int, bool) {
	table, ok := enumTables[typeName]
	if !ok {
		return 0, false
	}
	v, ok := table[name]
	return v, ok
}

// IsEnumType reports whether typeName names an enum registered in this package.
func IsEnumType(typeName string) bool {
	_, ok := enumTables[typeName]
	return ok
}

// SetOperation is ported from postgres/src/include/nodes/parsenodes.h:2045
type SetOperation int

const (
	SETOP_NONE SetOperation = iota
	SETOP_UNION
	SETOP_INTERSECT
	SETOP_EXCEPT
)

var setOperationNames = registerEnum("SetOperation",
	"SETOP_NONE",
	"SETOP_UNION",
	"SETOP_INTERSECT",
	"SETOP_EXCEPT",
)

func (s SetOperation) String() string {
	return enumName(setOperationNames, int(s))
}

// LimitOption is ported from postgres/src/include/nodes/nodes.h:428
type LimitOption int

const (
	LIMIT_OPTION_DEFAULT LimitOption = iota
	LIMIT_OPTION_COUNT
	LIMIT_OPTION_WITH_TIES
)

var limitOptionNames = registerEnum("LimitOption",
	"LIMIT_OPTION_DEFAULT",
	"LIMIT_OPTION_COUNT",
	"LIMIT_OPTION_WITH_TIES",
)

func (l LimitOption) String() string {
	return enumName(limitOptionNames, int(l))
}

// A_Expr_Kind is ported from postgres/src/include/nodes/parsenodes.h:312
type A_Expr_Kind int

const (
	AEXPR_OP A_Expr_Kind = iota
	AEXPR_OP_ANY
	AEXPR_OP_ALL
	AEXPR_DISTINCT
	AEXPR_NOT_DISTINCT
	AEXPR_NULLIF
	AEXPR_IN
	AEXPR_LIKE
	AEXPR_ILIKE
	AEXPR_SIMILAR
	AEXPR_BETWEEN
	AEXPR_NOT_BETWEEN
	AEXPR_BETWEEN_SYM
	AEXPR_NOT_BETWEEN_SYM
	AEXPR_OF
	AEXPR_PAREN
)

var aExprKindNames = registerEnum("A_Expr_Kind",
	"AEXPR_OP",
	"AEXPR_OP_ANY",
	"AEXPR_OP_ALL",
	"AEXPR_DISTINCT",
	"AEXPR_NOT_DISTINCT",
	"AEXPR_NULLIF",
	"AEXPR_IN",
	"AEXPR_LIKE",
	"AEXPR_ILIKE",
	"AEXPR_SIMILAR",
	"AEXPR_BETWEEN",
	"AEXPR_NOT_BETWEEN",
	"AEXPR_BETWEEN_SYM",
	"AEXPR_NOT_BETWEEN_SYM",
	"AEXPR_OF",
	"AEXPR_PAREN",
)

func (a A_Expr_Kind) String() string {
	return enumName(aExprKindNames, int(a))
}

// BoolExprType is ported from postgres/src/include/nodes/primnodes.h:926
type BoolExprType int

const (
	AND_EXPR BoolExprType = iota
	OR_EXPR
	NOT_EXPR
)

var boolExprTypeNames = registerEnum("BoolExprType",
	"AND_EXPR",
	"OR_EXPR",
	"NOT_EXPR",
)

func (b BoolExprType) String() string {
	return enumName(boolExprTypeNames, int(b))
}

// BoolTestType is ported from postgres/src/include/nodes/primnodes.h:1978
type BoolTestType int

const (
	IS_TRUE BoolTestType = iota
	IS_NOT_TRUE
	IS_FALSE
	IS_NOT_FALSE
	IS_UNKNOWN
	IS_NOT_UNKNOWN
)

var boolTestTypeNames = registerEnum("BoolTestType",
	"IS_TRUE",
	"IS_NOT_TRUE",
	"IS_FALSE",
	"IS_NOT_FALSE",
	"IS_UNKNOWN",
	"IS_NOT_UNKNOWN",
)

func (b BoolTestType) String() string {
	return enumName(boolTestTypeNames, int(b))
}

// NullTestType is ported from postgres/src/include/nodes/primnodes.h:1954
type NullTestType int

const (
	IS_NULL NullTestType = iota
	IS_NOT_NULL
)

var nullTestTypeNames = registerEnum("NullTestType",
	"IS_NULL",
	"IS_NOT_NULL",
)

func (n NullTestType) String() string {
	return enumName(nullTestTypeNames, int(n))
}

// SubLinkType is ported from postgres/src/include/nodes/primnodes.h:994
type SubLinkType int

const (
	EXISTS_SUBLINK SubLinkType = iota
	ALL_SUBLINK
	ANY_SUBLINK
	ROWCOMPARE_SUBLINK
	EXPR_SUBLINK
	MULTIEXPR_SUBLINK
	ARRAY_SUBLINK
	CTE_SUBLINK
)

var subLinkTypeNames = registerEnum("SubLinkType",
	"EXISTS_SUBLINK",
	"ALL_SUBLINK",
	"ANY_SUBLINK",
	"ROWCOMPARE_SUBLINK",
	"EXPR_SUBLINK",
	"MULTIEXPR_SUBLINK",
	"ARRAY_SUBLINK",
	"CTE_SUBLINK",
)

func (s SubLinkType) String() string {
	return enumName(subLinkTypeNames, int(s))
}

// CoercionForm is ported from postgres/src/include/nodes/primnodes.h:731
type CoercionForm int

const (
	COERCE_EXPLICIT_CALL CoercionForm = iota
	COERCE_EXPLICIT_CAST
	COERCE_IMPLICIT_CAST
	COERCE_SQL_SYNTAX
)

var coercionFormNames = registerEnum("CoercionForm",
	"COERCE_EXPLICIT_CALL",
	"COERCE_EXPLICIT_CAST",
	"COERCE_IMPLICIT_CAST",
	"COERCE_SQL_SYNTAX",
)

func (c CoercionForm) String() string {
	return enumName(coercionFormNames, int(c))
}

// CoercionContext is ported from postgres/src/include/nodes/primnodes.h:711
type CoercionContext int

const (
	COERCION_IMPLICIT CoercionContext = iota
	COERCION_ASSIGNMENT
	COERCION_PLPGSQL
	COERCION_EXPLICIT
)

var coercionContextNames = registerEnum("CoercionContext",
	"COERCION_IMPLICIT",
	"COERCION_ASSIGNMENT",
	"COERCION_PLPGSQL",
	"COERCION_EXPLICIT",
)

func (c CoercionContext) String() string {
	return enumName(coercionContextNames, int(c))
}

// SortByDir is ported from postgres/src/include/nodes/parsenodes.h:51
type SortByDir int

const (
	SORTBY_DEFAULT SortByDir = iota
	SORTBY_ASC
	SORTBY_DESC
	SORTBY_USING
)

var sortByDirNames = registerEnum("SortByDir",
	"SORTBY_DEFAULT",
	"SORTBY_ASC",
	"SORTBY_DESC",
	"SORTBY_USING",
)

func (s SortByDir) String() string {
	return enumName(sortByDirNames, int(s))
}

// SortByNulls is ported from postgres/src/include/nodes/parsenodes.h:59
type SortByNulls int

const (
	SORTBY_NULLS_DEFAULT SortByNulls = iota
	SORTBY_NULLS_FIRST
	SORTBY_NULLS_LAST
)

var sortByNullsNames = registerEnum("SortByNulls",
	"SORTBY_NULLS_DEFAULT",
	"SORTBY_NULLS_FIRST",
	"SORTBY_NULLS_LAST",
)

func (s SortByNulls) String() string {
	return enumName(sortByNullsNames, int(s))
}

// MinMaxOp is ported from postgres/src/include/nodes/primnodes.h:1483
type MinMaxOp int

const (
	IS_GREATEST MinMaxOp = iota
	IS_LEAST
)

var minMaxOpNames = registerEnum("MinMaxOp",
	"IS_GREATEST",
	"IS_LEAST",
)

func (m MinMaxOp) String() string {
	return enumName(minMaxOpNames, int(m))
}

// SQLValueFunctionOp is ported from postgres/src/include/nodes/primnodes.h:1521
type SQLValueFunctionOp int

const (
	SVFOP_CURRENT_DATE SQLValueFunctionOp = iota
	SVFOP_CURRENT_TIME
	SVFOP_CURRENT_TIME_N
	SVFOP_CURRENT_TIMESTAMP
	SVFOP_CURRENT_TIMESTAMP_N
	SVFOP_LOCALTIME
	SVFOP_LOCALTIME_N
	SVFOP_LOCALTIMESTAMP
	SVFOP_LOCALTIMESTAMP_N
	SVFOP_CURRENT_ROLE
	SVFOP_CURRENT_USER
	SVFOP_USER
	SVFOP_SESSION_USER
	SVFOP_CURRENT_CATALOG
	SVFOP_CURRENT_SCHEMA
)

var sQLValueFunctionOpNames = registerEnum("SQLValueFunctionOp",
	"SVFOP_CURRENT_DATE",
	"SVFOP_CURRENT_TIME",
	"SVFOP_CURRENT_TIME_N",
	"SVFOP_CURRENT_TIMESTAMP",
	"SVFOP_CURRENT_TIMESTAMP_N",
	"SVFOP_LOCALTIME",
	"SVFOP_LOCALTIME_N",
	"SVFOP_LOCALTIMESTAMP",
	"SVFOP_LOCALTIMESTAMP_N",
	"SVFOP_CURRENT_ROLE",
	"SVFOP_CURRENT_USER",
	"SVFOP_USER",
	"SVFOP_SESSION_USER",
	"SVFOP_CURRENT_CATALOG",
	"SVFOP_CURRENT_SCHEMA",
)

func (s SQLValueFunctionOp) String() string {
	return enumName(sQLValueFunctionOpNames, int(s))
}

// XmlExprOp is ported from postgres/src/include/nodes/primnodes.h:1575
type XmlExprOp int

const (
	IS_XMLCONCAT XmlExprOp = iota
	IS_XMLELEMENT
	IS_XMLFOREST
	IS_XMLPARSE
	IS_XMLPI
	IS_XMLROOT
	IS_XMLSERIALIZE
	IS_DOCUMENT
)

var xmlExprOpNames = registerEnum("XmlExprOp",
	"IS_XMLCONCAT",
	"IS_XMLELEMENT",
	"IS_XMLFOREST",
	"IS_XMLPARSE",
	"IS_XMLPI",
	"IS_XMLROOT",
	"IS_XMLSERIALIZE",
	"IS_DOCUMENT",
)

func (x XmlExprOp) String() string {
	return enumName(xmlExprOpNames, int(x))
}

// XmlOptionType is ported from postgres/src/include/nodes/primnodes.h:1587
type XmlOptionType int

const (
	XMLOPTION_DOCUMENT XmlOptionType = iota
	XMLOPTION_CONTENT
)

var xmlOptionTypeNames = registerEnum("XmlOptionType",
	"XMLOPTION_DOCUMENT",
	"XMLOPTION_CONTENT",
)

func (x XmlOptionType) String() string {
	return enumName(xmlOptionTypeNames, int(x))
}

// GroupingSetKind is ported from postgres/src/include/nodes/parsenodes.h:1494
type GroupingSetKind int

const (
	GROUPING_SET_EMPTY GroupingSetKind = iota
	GROUPING_SET_SIMPLE
	GROUPING_SET_ROLLUP
	GROUPING_SET_CUBE
	GROUPING_SET_SETS
)

var groupingSetKindNames = registerEnum("GroupingSetKind",
	"GROUPING_SET_EMPTY",
	"GROUPING_SET_SIMPLE",
	"GROUPING_SET_ROLLUP",
	"GROUPING_SET_CUBE",
	"GROUPING_SET_SETS",
)

func (g GroupingSetKind) String() string {
	return enumName(groupingSetKindNames, int(g))
}

// CTEMaterialize is ported from postgres/src/include/nodes/parsenodes.h:1623
type CTEMaterialize int

const (
	CTEMaterializeDefault CTEMaterialize = iota
	CTEMaterializeAlways
	CTEMaterializeNever
)

var cTEMaterializeNames = registerEnum("CTEMaterialize",
	"CTEMaterializeDefault",
	"CTEMaterializeAlways",
	"CTEMaterializeNever",
)

func (c CTEMaterialize) String() string {
	return enumName(cTEMaterializeNames, int(c))
}

// JoinType is ported from postgres/src/include/nodes/nodes.h:288
type JoinType int

const (
	JOIN_INNER JoinType = iota
	JOIN_LEFT
	JOIN_FULL
	JOIN_RIGHT
	JOIN_SEMI
	JOIN_ANTI
	JOIN_RIGHT_ANTI
	JOIN_UNIQUE_OUTER
	JOIN_UNIQUE_INNER
)

var joinTypeNames = registerEnum("JoinType",
	"JOIN_INNER",
	"JOIN_LEFT",
	"JOIN_FULL",
	"JOIN_RIGHT",
	"JOIN_SEMI",
	"JOIN_ANTI",
	"JOIN_RIGHT_ANTI",
	"JOIN_UNIQUE_OUTER",
	"JOIN_UNIQUE_INNER",
)

func (j JoinType) String() string {
	return enumName(joinTypeNames, int(j))
}

// OnCommitAction is ported from postgres/src/include/nodes/primnodes.h:56
type OnCommitAction int

const (
	ONCOMMIT_NOOP OnCommitAction = iota
	ONCOMMIT_PRESERVE_ROWS
	ONCOMMIT_DELETE_ROWS
	ONCOMMIT_DROP
)

var onCommitActionNames = registerEnum("OnCommitAction",
	"ONCOMMIT_NOOP",
	"ONCOMMIT_PRESERVE_ROWS",
	"ONCOMMIT_DELETE_ROWS",
	"ONCOMMIT_DROP",
)

func (o OnCommitAction) String() string {
	return enumName(onCommitActionNames, int(o))
}

// LockClauseStrength is ported from postgres/src/include/nodes/lockoptions.h:21
type LockClauseStrength int

const (
	LCS_NONE LockClauseStrength = iota
	LCS_FORKEYSHARE
	LCS_FORSHARE
	LCS_FORNOKEYUPDATE
	LCS_FORUPDATE
)

var lockClauseStrengthNames = registerEnum("LockClauseStrength",
	"LCS_NONE",
	"LCS_FORKEYSHARE",
	"LCS_FORSHARE",
	"LCS_FORNOKEYUPDATE",
	"LCS_FORUPDATE",
)

func (l LockClauseStrength) String() string {
	return enumName(lockClauseStrengthNames, int(l))
}

// LockWaitPolicy is ported from postgres/src/include/nodes/lockoptions.h:36
type LockWaitPolicy int

const (
	LockWaitBlock LockWaitPolicy = iota
	LockWaitSkip
	LockWaitError
)

var lockWaitPolicyNames = registerEnum("LockWaitPolicy",
	"LockWaitBlock",
	"LockWaitSkip",
	"LockWaitError",
)

func (l LockWaitPolicy) String() string {
	return enumName(lockWaitPolicyNames, int(l))
}

// OnConflictAction is ported from postgres/src/include/nodes/nodes.h:414
type OnConflictAction int

const (
	ONCONFLICT_NONE OnConflictAction = iota
	ONCONFLICT_NOTHING
	ONCONFLICT_UPDATE
)

var onConflictActionNames = registerEnum("OnConflictAction",
	"ONCONFLICT_NONE",
	"ONCONFLICT_NOTHING",
	"ONCONFLICT_UPDATE",
)

func (o OnConflictAction) String() string {
	return enumName(onConflictActionNames, int(o))
}

// OverridingKind is ported from postgres/src/include/nodes/primnodes.h:32
type OverridingKind int

const (
	OVERRIDING_NOT_SET OverridingKind = iota
	OVERRIDING_USER_VALUE
	OVERRIDING_SYSTEM_VALUE
)

var overridingKindNames = registerEnum("OverridingKind",
	"OVERRIDING_NOT_SET",
	"OVERRIDING_USER_VALUE",
	"OVERRIDING_SYSTEM_VALUE",
)

func (o OverridingKind) String() string {
	return enumName(overridingKindNames, int(o))
}

// DefElemAction is ported from postgres/src/include/nodes/parsenodes.h:803
type DefElemAction int

const (
	DEFELEM_UNSPEC DefElemAction = iota
	DEFELEM_SET
	DEFELEM_ADD
	DEFELEM_DROP
)

var defElemActionNames = registerEnum("DefElemAction",
	"DEFELEM_UNSPEC",
	"DEFELEM_SET",
	"DEFELEM_ADD",
	"DEFELEM_DROP",
)

func (d DefElemAction) String() string {
	return enumName(defElemActionNames, int(d))
}

// RoleSpecType is ported from postgres/src/include/nodes/parsenodes.h:395
type RoleSpecType int

const (
	ROLESPEC_CSTRING RoleSpecType = iota
	ROLESPEC_CURRENT_ROLE
	ROLESPEC_CURRENT_USER
	ROLESPEC_SESSION_USER
	ROLESPEC_PUBLIC
)

var roleSpecTypeNames = registerEnum("RoleSpecType",
	"ROLESPEC_CSTRING",
	"ROLESPEC_CURRENT_ROLE",
	"ROLESPEC_CURRENT_USER",
	"ROLESPEC_SESSION_USER",
	"ROLESPEC_PUBLIC",
)

func (r RoleSpecType) String() string {
	return enumName(roleSpecTypeNames, int(r))
}

// FunctionParameterMode is ported from postgres/src/include/nodes/parsenodes.h:3390
type FunctionParameterMode int

const (
	FUNC_PARAM_IN FunctionParameterMode = iota
	FUNC_PARAM_OUT
	FUNC_PARAM_INOUT
	FUNC_PARAM_VARIADIC
	FUNC_PARAM_TABLE
	FUNC_PARAM_DEFAULT
)

var functionParameterModeNames = registerEnum("FunctionParameterMode",
	"FUNC_PARAM_IN",
	"FUNC_PARAM_OUT",
	"FUNC_PARAM_INOUT",
	"FUNC_PARAM_VARIADIC",
	"FUNC_PARAM_TABLE",
	"FUNC_PARAM_DEFAULT",
)

func (f FunctionParameterMode) String() string {
	return enumName(functionParameterModeNames, int(f))
}

// PartitionStrategy is ported from postgres/src/include/nodes/parsenodes.h:872
type PartitionStrategy int

const (
	PARTITION_STRATEGY_LIST PartitionStrategy = iota
	PARTITION_STRATEGY_RANGE
	PARTITION_STRATEGY_HASH
)

var partitionStrategyNames = registerEnum("PartitionStrategy",
	"PARTITION_STRATEGY_LIST",
	"PARTITION_STRATEGY_RANGE",
	"PARTITION_STRATEGY_HASH",
)

func (p PartitionStrategy) String() string {
	return enumName(partitionStrategyNames, int(p))
}

// ConstrType is ported from postgres/src/include/nodes/parsenodes.h:2697
type ConstrType int

const (
	CONSTR_NULL ConstrType = iota
	CONSTR_NOTNULL
	CONSTR_DEFAULT
	CONSTR_IDENTITY
	CONSTR_GENERATED
	CONSTR_CHECK
	CONSTR_PRIMARY
	CONSTR_UNIQUE
	CONSTR_EXCLUSION
	CONSTR_FOREIGN
	CONSTR_ATTR_DEFERRABLE
	CONSTR_ATTR_NOT_DEFERRABLE
	CONSTR_ATTR_DEFERRED
	CONSTR_ATTR_IMMEDIATE
)

var constrTypeNames = registerEnum("ConstrType",
	"CONSTR_NULL",
	"CONSTR_NOTNULL",
	"CONSTR_DEFAULT",
	"CONSTR_IDENTITY",
	"CONSTR_GENERATED",
	"CONSTR_CHECK",
	"CONSTR_PRIMARY",
	"CONSTR_UNIQUE",
	"CONSTR_EXCLUSION",
	"CONSTR_FOREIGN",
	"CONSTR_ATTR_DEFERRABLE",
	"CONSTR_ATTR_NOT_DEFERRABLE",
	"CONSTR_ATTR_DEFERRED",
	"CONSTR_ATTR_IMMEDIATE",
)

func (c ConstrType) String() string {
	return enumName(constrTypeNames, int(c))
}

// ObjectType is ported from postgres/src/include/nodes/parsenodes.h:2256
type ObjectType int

const (
	OBJECT_ACCESS_METHOD ObjectType = iota
	OBJECT_AGGREGATE
	OBJECT_AMOP
	OBJECT_AMPROC
	OBJECT_ATTRIBUTE
	OBJECT_CAST
	OBJECT_COLUMN
	OBJECT_COLLATION
	OBJECT_CONVERSION
	OBJECT_DATABASE
	OBJECT_DEFAULT
	OBJECT_DEFACL
	OBJECT_DOMAIN
	OBJECT_DOMCONSTRAINT
	OBJECT_EVENT_TRIGGER
	OBJECT_EXTENSION
	OBJECT_FDW
	OBJECT_FOREIGN_SERVER
	OBJECT_FOREIGN_TABLE
	OBJECT_FUNCTION
	OBJECT_INDEX
	OBJECT_LANGUAGE
	OBJECT_LARGEOBJECT
	OBJECT_MATVIEW
	OBJECT_OPCLASS
	OBJECT_OPERATOR
	OBJECT_OPFAMILY
	OBJECT_PARAMETER_ACL
	OBJECT_POLICY
	OBJECT_PROCEDURE
	OBJECT_PUBLICATION
	OBJECT_PUBLICATION_NAMESPACE
	OBJECT_PUBLICATION_REL
	OBJECT_ROLE
	OBJECT_ROUTINE
	OBJECT_RULE
	OBJECT_SCHEMA
	OBJECT_SEQUENCE
	OBJECT_SUBSCRIPTION
	OBJECT_STATISTIC_EXT
	OBJECT_TABCONSTRAINT
	OBJECT_TABLE
	OBJECT_TABLESPACE
	OBJECT_TRANSFORM
	OBJECT_TRIGGER
	OBJECT_TSCONFIGURATION
	OBJECT_TSDICTIONARY
	OBJECT_TSPARSER
	OBJECT_TSTEMPLATE
	OBJECT_TYPE
	OBJECT_USER_MAPPING
	OBJECT_VIEW
)

var objectTypeNames = registerEnum("ObjectType",
	"OBJECT_ACCESS_METHOD",
	"OBJECT_AGGREGATE",
	"OBJECT_AMOP",
	"OBJECT_AMPROC",
	"OBJECT_ATTRIBUTE",
	"OBJECT_CAST",
	"OBJECT_COLUMN",
	"OBJECT_COLLATION",
	"OBJECT_CONVERSION",
	"OBJECT_DATABASE",
	"OBJECT_DEFAULT",
	"OBJECT_DEFACL",
	"OBJECT_DOMAIN",
	"OBJECT_DOMCONSTRAINT",
	"OBJECT_EVENT_TRIGGER",
	"OBJECT_EXTENSION",
	"OBJECT_FDW",
	"OBJECT_FOREIGN_SERVER",
	"OBJECT_FOREIGN_TABLE",
	"OBJECT_FUNCTION",
	"OBJECT_INDEX",
	"OBJECT_LANGUAGE",
	"OBJECT_LARGEOBJECT",
	"OBJECT_MATVIEW",
	"OBJECT_OPCLASS",
	"OBJECT_OPERATOR",
	"OBJECT_OPFAMILY",
	"OBJECT_PARAMETER_ACL",
	"OBJECT_POLICY",
	"OBJECT_PROCEDURE",
	"OBJECT_PUBLICATION",
	"OBJECT_PUBLICATION_NAMESPACE",
	"OBJECT_PUBLICATION_REL",
	"OBJECT_ROLE",
	"OBJECT_ROUTINE",
	"OBJECT_RULE",
	"OBJECT_SCHEMA",
	"OBJECT_SEQUENCE",
	"OBJECT_SUBSCRIPTION",
	"OBJECT_STATISTIC_EXT",
	"OBJECT_TABCONSTRAINT",
	"OBJECT_TABLE",
	"OBJECT_TABLESPACE",
	"OBJECT_TRANSFORM",
	"OBJECT_TRIGGER",
	"OBJECT_TSCONFIGURATION",
	"OBJECT_TSDICTIONARY",
	"OBJECT_TSPARSER",
	"OBJECT_TSTEMPLATE",
	"OBJECT_TYPE",
	"OBJECT_USER_MAPPING",
	"OBJECT_VIEW",
)

func (o ObjectType) String() string {
	return enumName(objectTypeNames, int(o))
}

// AlterTableType is ported from postgres/src/include/nodes/parsenodes.h:2362
type AlterTableType int

const (
	AT_AddColumn AlterTableType = iota
	AT_AddColumnToView
	AT_ColumnDefault
	AT_CookedColumnDefault
	AT_DropNotNull
	AT_SetNotNull
	AT_SetExpression
	AT_DropExpression
	AT_CheckNotNull
	AT_SetStatistics
	AT_SetOptions
	AT_ResetOptions
	AT_SetStorage
	AT_SetCompression
	AT_DropColumn
	AT_AddIndex
	AT_ReAddIndex
	AT_AddConstraint
	AT_ReAddConstraint
	AT_ReAddDomainConstraint
	AT_AlterConstraint
	AT_ValidateConstraint
	AT_AddIndexConstraint
	AT_DropConstraint
	AT_ReAddComment
	AT_AlterColumnType
	AT_AlterColumnGenericOptions
	AT_ChangeOwner
	AT_ClusterOn
	AT_DropCluster
	AT_SetLogged
	AT_SetUnLogged
	AT_DropOids
	AT_SetAccessMethod
	AT_SetTableSpace
	AT_SetRelOptions
	AT_ResetRelOptions
	AT_ReplaceRelOptions
	AT_EnableTrig
	AT_EnableAlwaysTrig
	AT_EnableReplicaTrig
	AT_DisableTrig
	AT_EnableTrigAll
	AT_DisableTrigAll
	AT_EnableTrigUser
	AT_DisableTrigUser
	AT_EnableRule
	AT_EnableAlwaysRule
	AT_EnableReplicaRule
	AT_DisableRule
	AT_AddInherit
	AT_DropInherit
	AT_AddOf
	AT_DropOf
	AT_ReplicaIdentity
	AT_EnableRowSecurity
	AT_DisableRowSecurity
	AT_ForceRowSecurity
	AT_NoForceRowSecurity
	AT_GenericOptions
	AT_AttachPartition
	AT_DetachPartition
	AT_DetachPartitionFinalize
	AT_AddIdentity
	AT_SetIdentity
	AT_DropIdentity
	AT_ReAddStatistics
)

var alterTableTypeNames = registerEnum("AlterTableType",
	"AT_AddColumn",
	"AT_AddColumnToView",
	"AT_ColumnDefault",
	"AT_CookedColumnDefault",
	"AT_DropNotNull",
	"AT_SetNotNull",
	"AT_SetExpression",
	"AT_DropExpression",
	"AT_CheckNotNull",
	"AT_SetStatistics",
	"AT_SetOptions",
	"AT_ResetOptions",
	"AT_SetStorage",
	"AT_SetCompression",
	"AT_DropColumn",
	"AT_AddIndex",
	"AT_ReAddIndex",
	"AT_AddConstraint",
	"AT_ReAddConstraint",
	"AT_ReAddDomainConstraint",
	"AT_AlterConstraint",
	"AT_ValidateConstraint",
	"AT_AddIndexConstraint",
	"AT_DropConstraint",
	"AT_ReAddComment",
	"AT_AlterColumnType",
	"AT_AlterColumnGenericOptions",
	"AT_ChangeOwner",
	"AT_ClusterOn",
	"AT_DropCluster",
	"AT_SetLogged",
	"AT_SetUnLogged",
	"AT_DropOids",
	"AT_SetAccessMethod",
	"AT_SetTableSpace",
	"AT_SetRelOptions",
	"AT_ResetRelOptions",
	"AT_ReplaceRelOptions",
	"AT_EnableTrig",
	"AT_EnableAlwaysTrig",
	"AT_EnableReplicaTrig",
	"AT_DisableTrig",
	"AT_EnableTrigAll",
	"AT_DisableTrigAll",
	"AT_EnableTrigUser",
	"AT_DisableTrigUser",
	"AT_EnableRule",
	"AT_EnableAlwaysRule",
	"AT_EnableReplicaRule",
	"AT_DisableRule",
	"AT_AddInherit",
	"AT_DropInherit",
	"AT_AddOf",
	"AT_DropOf",
	"AT_ReplicaIdentity",
	"AT_EnableRowSecurity",
	"AT_DisableRowSecurity",
	"AT_ForceRowSecurity",
	"AT_NoForceRowSecurity",
	"AT_GenericOptions",
	"AT_AttachPartition",
	"AT_DetachPartition",
	"AT_DetachPartitionFinalize",
	"AT_AddIdentity",
	"AT_SetIdentity",
	"AT_DropIdentity",
	"AT_ReAddStatistics",
)

func (a AlterTableType) String() string {
	return enumName(alterTableTypeNames, int(a))
}

// DropBehavior is ported from postgres/src/include/nodes/parsenodes.h:2347
type DropBehavior int

const (
	DROP_RESTRICT DropBehavior = iota
	DROP_CASCADE
)

var dropBehaviorNames = registerEnum("DropBehavior",
	"DROP_RESTRICT",
	"DROP_CASCADE",
)

func (d DropBehavior) String() string {
	return enumName(dropBehaviorNames, int(d))
}

// ViewCheckOption is ported from postgres/src/include/nodes/parsenodes.h:3737
type ViewCheckOption int

const (
	NO_CHECK_OPTION ViewCheckOption = iota
	LOCAL_CHECK_OPTION
	CASCADED_CHECK_OPTION
)

var viewCheckOptionNames = registerEnum("ViewCheckOption",
	"NO_CHECK_OPTION",
	"LOCAL_CHECK_OPTION",
	"CASCADED_CHECK_OPTION",
)

func (v ViewCheckOption) String() string {
	return enumName(viewCheckOptionNames, int(v))
}

// GrantTargetType is ported from postgres/src/include/nodes/parsenodes.h:2494
type GrantTargetType int

const (
	ACL_TARGET_OBJECT GrantTargetType = iota
	ACL_TARGET_ALL_IN_SCHEMA
	ACL_TARGET_DEFAULTS
)

var grantTargetTypeNames = registerEnum("GrantTargetType",
	"ACL_TARGET_OBJECT",
	"ACL_TARGET_ALL_IN_SCHEMA",
	"ACL_TARGET_DEFAULTS",
)

func (g GrantTargetType) String() string {
	return enumName(grantTargetTypeNames, int(g))
}

// DiscardMode is ported from postgres/src/include/nodes/parsenodes.h:3960
type DiscardMode int

const (
	DISCARD_ALL DiscardMode = iota
	DISCARD_PLANS
	DISCARD_SEQUENCES
	DISCARD_TEMP
)

var discardModeNames = registerEnum("DiscardMode",
	"DISCARD_ALL",
	"DISCARD_PLANS",
	"DISCARD_SEQUENCES",
	"DISCARD_TEMP",
)

func (d DiscardMode) String() string {
	return enumName(discardModeNames, int(d))
}

// TransactionStmtKind is ported from postgres/src/include/nodes/parsenodes.h:3637
type TransactionStmtKind int

const (
	TRANS_STMT_BEGIN TransactionStmtKind = iota
	TRANS_STMT_START
	TRANS_STMT_COMMIT
	TRANS_STMT_ROLLBACK
	TRANS_STMT_SAVEPOINT
	TRANS_STMT_RELEASE
	TRANS_STMT_ROLLBACK_TO
	TRANS_STMT_PREPARE
	TRANS_STMT_COMMIT_PREPARED
	TRANS_STMT_ROLLBACK_PREPARED
)

var transactionStmtKindNames = registerEnum("TransactionStmtKind",
	"TRANS_STMT_BEGIN",
	"TRANS_STMT_START",
	"TRANS_STMT_COMMIT",
	"TRANS_STMT_ROLLBACK",
	"TRANS_STMT_SAVEPOINT",
	"TRANS_STMT_RELEASE",
	"TRANS_STMT_ROLLBACK_TO",
	"TRANS_STMT_PREPARE",
	"TRANS_STMT_COMMIT_PREPARED",
	"TRANS_STMT_ROLLBACK_PREPARED",
)

func (t TransactionStmtKind) String() string {
	return enumName(transactionStmtKindNames, int(t))
}

// VariableSetKind is ported from postgres/src/include/nodes/parsenodes.h:2595
type VariableSetKind int

const (
	VAR_SET_VALUE VariableSetKind = iota
	VAR_SET_DEFAULT
	VAR_SET_CURRENT
	VAR_SET_MULTI
	VAR_RESET
	VAR_RESET_ALL
)

var variableSetKindNames = registerEnum("VariableSetKind",
	"VAR_SET_VALUE",
	"VAR_SET_DEFAULT",
	"VAR_SET_CURRENT",
	"VAR_SET_MULTI",
	"VAR_RESET",
	"VAR_RESET_ALL",
)

func (v VariableSetKind) String() string {
	return enumName(variableSetKindNames, int(v))
}
