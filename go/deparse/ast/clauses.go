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

// ==============================================================================
// CLAUSE AND SUPPORT NODES - postgres/src/include/nodes/parsenodes.h, primnodes.h
// ==============================================================================

// Alias is a table alias with optional column aliases.
// Ported from postgres/src/include/nodes/primnodes.h:47
type Alias struct {
	BaseNode
	Aliasname string    `json:"aliasname"`
	Colnames  *NodeList `json:"colnames"`
}

// NewAlias creates an alias.
func NewAlias(name string, colnames ...string) *Alias {
	a := &Alias{BaseNode: newBase(T_Alias), Aliasname: name}
	if len(colnames) > 0 {
		a.Colnames = NewNodeList()
		for _, c := range colnames {
			a.Colnames.Append(NewString(c))
		}
	}
	return a
}

// RangeVar is a relation name, possibly qualified, with its alias.
// Ported from postgres/src/include/nodes/primnodes.h:71
type RangeVar struct {
	BaseNode
	Catalogname    string `json:"catalogname"`
	Schemaname     string `json:"schemaname"`
	Relname        string `json:"relname"`
	Inh            bool   `json:"inh"`            // expand rel by inheritance?
	Relpersistence byte   `json:"relpersistence"` // see RELPERSISTENCE_*
	Alias          *Alias `json:"alias"`
}

// NewRangeVar creates a relation reference that includes inheritance children.
func NewRangeVar(schema, name string) *RangeVar {
	return &RangeVar{
		BaseNode:       newBase(T_RangeVar),
		Schemaname:     schema,
		Relname:        name,
		Inh:            true,
		Relpersistence: RELPERSISTENCE_PERMANENT,
	}
}

// ResTarget is a result target: a SELECT list item, an INSERT column or an
// UPDATE SET target.
// Ported from postgres/src/include/nodes/parsenodes.h:511
type ResTarget struct {
	BaseNode
	Name        string    `json:"name"`        // column name or empty
	Indirection *NodeList `json:"indirection"` // subscripts, field names, and '*', or nil
	Val         Node      `json:"val"`         // the value expression to compute or assign
}

// NewResTarget creates a result target.
func NewResTarget(name string, val Node) *ResTarget {
	return &ResTarget{BaseNode: newBase(T_ResTarget), Name: name, Val: val}
}

// JoinExpr is a JOIN between two FROM items.
// Ported from postgres/src/include/nodes/primnodes.h:2155
type JoinExpr struct {
	BaseNode
	Jointype       JoinType  `json:"jointype"`
	IsNatural      bool      `json:"isNatural"`
	Larg           Node      `json:"larg"`
	Rarg           Node      `json:"rarg"`
	UsingClause    *NodeList `json:"usingClause"`
	JoinUsingAlias *Alias    `json:"join_using_alias"`
	Quals          Node      `json:"quals"`
	Alias          *Alias    `json:"alias"`
	Rtindex        int       `json:"rtindex"`
}

// RangeSubselect is a subquery appearing in FROM.
// Ported from postgres/src/include/nodes/parsenodes.h:627
type RangeSubselect struct {
	BaseNode
	Lateral  bool   `json:"lateral"`
	Subquery Node   `json:"subquery"`
	Alias    *Alias `json:"alias"`
}

// RangeFunction is a function call appearing in FROM.
// Ported from postgres/src/include/nodes/parsenodes.h:649
type RangeFunction struct {
	BaseNode
	Lateral    bool      `json:"lateral"`
	Ordinality bool      `json:"ordinality"`
	IsRowsfrom bool      `json:"is_rowsfrom"`
	Functions  *NodeList `json:"functions"` // per-function lists of (FuncCall, column definitions)
	Alias      *Alias    `json:"alias"`
	Coldeflist *NodeList `json:"coldeflist"`
}

// RangeTableFunc is XMLTABLE appearing in FROM.
// Ported from postgres/src/include/nodes/parsenodes.h:667
type RangeTableFunc struct {
	BaseNode
	Lateral    bool      `json:"lateral"`
	Docexpr    Node      `json:"docexpr"`
	Rowexpr    Node      `json:"rowexpr"`
	Namespaces *NodeList `json:"namespaces"`
	Columns    *NodeList `json:"columns"`
	Alias      *Alias    `json:"alias"`
}

// RangeTableFuncCol is one column of an XMLTABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:685
type RangeTableFuncCol struct {
	BaseNode
	Colname       string    `json:"colname"`
	TypeName      *TypeName `json:"typeName"`
	ForOrdinality bool      `json:"for_ordinality"`
	IsNotNull     bool      `json:"is_not_null"`
	Colexpr       Node      `json:"colexpr"`
	Coldefexpr    Node      `json:"coldefexpr"`
}

// RangeTableSample is a TABLESAMPLE clause.
// Ported from postgres/src/include/nodes/parsenodes.h:705
type RangeTableSample struct {
	BaseNode
	Relation   Node      `json:"relation"`
	Method     *NodeList `json:"method"`
	Args       *NodeList `json:"args"`
	Repeatable Node      `json:"repeatable"`
}

// WithClause is a WITH clause.
// Ported from postgres/src/include/nodes/parsenodes.h:1596
type WithClause struct {
	BaseNode
	Ctes      *NodeList `json:"ctes"`
	Recursive bool      `json:"recursive"`
}

// CommonTableExpr is one WITH list element.
// Ported from postgres/src/include/nodes/parsenodes.h:1654
type CommonTableExpr struct {
	BaseNode
	Ctename         string         `json:"ctename"`
	Aliascolnames   *NodeList      `json:"aliascolnames"`
	Ctematerialized CTEMaterialize `json:"ctematerialized"`
	Ctequery        Node           `json:"ctequery"`
	SearchClause    Node           `json:"search_clause"`
	CycleClause     Node           `json:"cycle_clause"`
}

// IntoClause is the target of SELECT INTO or CREATE TABLE AS.
// Ported from postgres/src/include/nodes/primnodes.h:153
type IntoClause struct {
	BaseNode
	Rel            *RangeVar      `json:"rel"`
	ColNames       *NodeList      `json:"colNames"`
	AccessMethod   string         `json:"accessMethod"`
	Options        *NodeList      `json:"options"`
	OnCommit       OnCommitAction `json:"onCommit"`
	TableSpaceName string         `json:"tableSpaceName"`
	ViewQuery      Node           `json:"viewQuery"`
	SkipData       bool           `json:"skipData"`
}

// LockingClause is FOR UPDATE/SHARE in SELECT.
// Ported from postgres/src/include/nodes/parsenodes.h:831
type LockingClause struct {
	BaseNode
	LockedRels *NodeList          `json:"lockedRels"`
	Strength   LockClauseStrength `json:"strength"`
	WaitPolicy LockWaitPolicy     `json:"waitPolicy"`
}

// OnConflictClause is INSERT ... ON CONFLICT.
// Ported from postgres/src/include/nodes/parsenodes.h:1611
type OnConflictClause struct {
	BaseNode
	Action      OnConflictAction `json:"action"`
	Infer       *InferClause     `json:"infer"`
	TargetList  *NodeList        `json:"targetList"`
	WhereClause Node             `json:"whereClause"`
}

// InferClause is the conflict target of ON CONFLICT.
// Ported from postgres/src/include/nodes/parsenodes.h:1597
type InferClause struct {
	BaseNode
	IndexElems  *NodeList `json:"indexElems"`
	WhereClause Node      `json:"whereClause"`
	Conname     string    `json:"conname"`
}

// IndexElem is one index column or expression.
// Ported from postgres/src/include/nodes/parsenodes.h:782
type IndexElem struct {
	BaseNode
	Name          string      `json:"name"`
	Expr          Node        `json:"expr"`
	Indexcolname  string      `json:"indexcolname"`
	Collation     *NodeList   `json:"collation"`
	Opclass       *NodeList   `json:"opclass"`
	Opclassopts   *NodeList   `json:"opclassopts"`
	Ordering      SortByDir   `json:"ordering"`
	NullsOrdering SortByNulls `json:"nulls_ordering"`
}

// DefElem is a generic name/value option.
// Ported from postgres/src/include/nodes/parsenodes.h:811
type DefElem struct {
	BaseNode
	Defnamespace string        `json:"defnamespace"`
	Defname      string        `json:"defname"`
	Arg          Node          `json:"arg"`
	Defaction    DefElemAction `json:"defaction"`
}

// NewDefElem creates an option element.
func NewDefElem(name string, arg Node) *DefElem {
	return &DefElem{BaseNode: newBase(T_DefElem), Defname: name, Arg: arg}
}

// RoleSpec names a role or one of the special role keywords.
// Ported from postgres/src/include/nodes/parsenodes.h:403
type RoleSpec struct {
	BaseNode
	Roletype RoleSpecType `json:"roletype"`
	Rolename string       `json:"rolename"`
}

// AccessPriv is a privilege name with optional column list.
// Ported from postgres/src/include/nodes/parsenodes.h:2535
type AccessPriv struct {
	BaseNode
	PrivName string    `json:"priv_name"`
	Cols     *NodeList `json:"cols"`
}

// ObjectWithArgs names a function, aggregate or operator with its argument types.
// Ported from postgres/src/include/nodes/parsenodes.h:2519
type ObjectWithArgs struct {
	BaseNode
	Objname         *NodeList `json:"objname"`
	Objargs         *NodeList `json:"objargs"`
	Objfuncargs     *NodeList `json:"objfuncargs"`
	ArgsUnspecified bool      `json:"args_unspecified"`
}

// FunctionParameter is one parameter of CREATE FUNCTION.
// Ported from postgres/src/include/nodes/parsenodes.h:3398
type FunctionParameter struct {
	BaseNode
	Name    string                `json:"name"`
	ArgType *TypeName             `json:"argType"`
	Mode    FunctionParameterMode `json:"mode"`
	Defexpr Node                  `json:"defexpr"`
}

// TableLikeClause is LIKE in CREATE TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:744
type TableLikeClause struct {
	BaseNode
	Relation    *RangeVar `json:"relation"`
	Options     int       `json:"options"` // OR of CREATE_TABLE_LIKE_* bits
	RelationOid int       `json:"relationOid"`
}

// TriggerTransition is an OLD/NEW TABLE/ROW AS name clause.
// Ported from postgres/src/include/nodes/parsenodes.h:1696
type TriggerTransition struct {
	BaseNode
	Name    string `json:"name"`
	IsNew   bool   `json:"isNew"`
	IsTable bool   `json:"isTable"`
}

// PartitionSpec is PARTITION BY in CREATE TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:881
type PartitionSpec struct {
	BaseNode
	Strategy   PartitionStrategy `json:"strategy"`
	PartParams *NodeList         `json:"partParams"`
}

// PartitionElem is one partition key column or expression.
// Ported from postgres/src/include/nodes/parsenodes.h:862
type PartitionElem struct {
	BaseNode
	Name      string    `json:"name"`
	Expr      Node      `json:"expr"`
	Collation *NodeList `json:"collation"`
	Opclass   *NodeList `json:"opclass"`
}

// PartitionBoundSpec is FOR VALUES or DEFAULT of a partition.
// Ported from postgres/src/include/nodes/parsenodes.h:896
type PartitionBoundSpec struct {
	BaseNode
	Strategy    byte      `json:"strategy"` // see PARTITION_STRATEGY_CODE_*
	IsDefault   bool      `json:"is_default"`
	Modulus     int       `json:"modulus"`
	Remainder   int       `json:"remainder"`
	Listdatums  *NodeList `json:"listdatums"`
	Lowerdatums *NodeList `json:"lowerdatums"`
	Upperdatums *NodeList `json:"upperdatums"`
}

// PartitionCmd is ATTACH or DETACH PARTITION.
// Ported from postgres/src/include/nodes/parsenodes.h:945
type PartitionCmd struct {
	BaseNode
	Name       *RangeVar           `json:"name"`
	Bound      *PartitionBoundSpec `json:"bound"`
	Concurrent bool                `json:"concurrent"`
}

// ColumnDef is a column definition in CREATE TABLE and friends.
// Ported from postgres/src/include/nodes/parsenodes.h:723
type ColumnDef struct {
	BaseNode
	Colname          string         `json:"colname"`
	TypeName         *TypeName      `json:"typeName"`
	Compression      string         `json:"compression"`
	Inhcount         int            `json:"inhcount"`
	IsLocal          bool           `json:"is_local"`
	IsNotNull        bool           `json:"is_not_null"`
	IsFromType       bool           `json:"is_from_type"`
	Storage          byte           `json:"storage"`
	StorageName      string         `json:"storage_name"`
	RawDefault       Node           `json:"raw_default"`
	CookedDefault    Node           `json:"cooked_default"`
	Identity         byte           `json:"identity"`
	IdentitySequence *RangeVar      `json:"identitySequence"`
	Generated        byte           `json:"generated"`
	CollClause       *CollateClause `json:"collClause"`
	CollOid          int            `json:"collOid"`
	Constraints      *NodeList      `json:"constraints"`
	Fdwoptions       *NodeList      `json:"fdwoptions"`
}

// Constraint is a column or table constraint definition.
// Ported from postgres/src/include/nodes/parsenodes.h:2728
type Constraint struct {
	BaseNode
	Contype            ConstrType `json:"contype"`
	Conname            string     `json:"conname"`
	Deferrable         bool       `json:"deferrable"`
	Initdeferred       bool       `json:"initdeferred"`
	SkipValidation     bool       `json:"skip_validation"`
	InitiallyValid     bool       `json:"initially_valid"`
	IsNoInherit        bool       `json:"is_no_inherit"`
	RawExpr            Node       `json:"raw_expr"`
	CookedExpr         string     `json:"cooked_expr"`
	GeneratedWhen      byte       `json:"generated_when"`
	NullsNotDistinct   bool       `json:"nulls_not_distinct"`
	Keys               *NodeList  `json:"keys"`
	Including          *NodeList  `json:"including"`
	Exclusions         *NodeList  `json:"exclusions"`
	Options            *NodeList  `json:"options"`
	Indexname          string     `json:"indexname"`
	Indexspace         string     `json:"indexspace"`
	ResetDefaultTblspc bool       `json:"reset_default_tblspc"`
	AccessMethod       string     `json:"access_method"`
	WhereClause        Node       `json:"where_clause"`
	Pktable            *RangeVar  `json:"pktable"`
	FkAttrs            *NodeList  `json:"fk_attrs"`
	PkAttrs            *NodeList  `json:"pk_attrs"`
	FkMatchtype        byte       `json:"fk_matchtype"`
	FkUpdAction        byte       `json:"fk_upd_action"`
	FkDelAction        byte       `json:"fk_del_action"`
	FkDelSetCols       *NodeList  `json:"fk_del_set_cols"`
	OldConpfeqop       *NodeList  `json:"old_conpfeqop"`
}

// ReplicaIdentityStmt is REPLICA IDENTITY in ALTER TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:2437
type ReplicaIdentityStmt struct {
	BaseNode
	IdentityType byte   `json:"identity_type"` // see REPLICA_IDENTITY_*
	Name         string `json:"name"`
}

// VacuumRelation is one target of VACUUM or ANALYZE.
// Ported from postgres/src/include/nodes/parsenodes.h:3872
type VacuumRelation struct {
	BaseNode
	Relation *RangeVar `json:"relation"`
	Oid      int       `json:"oid"`
	VaCols   *NodeList `json:"va_cols"`
}
