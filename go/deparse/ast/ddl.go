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
// DDL STATEMENTS - postgres/src/include/nodes/parsenodes.h
// ==============================================================================

// CreateStmt is CREATE TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:2671
type CreateStmt struct {
	BaseNode
	Relation       *RangeVar           `json:"relation"`
	TableElts      *NodeList           `json:"tableElts"`    // column definitions and table constraints
	InhRelations   *NodeList           `json:"inhRelations"` // relations to inherit from
	Partbound      *PartitionBoundSpec `json:"partbound"`
	Partspec       *PartitionSpec      `json:"partspec"`
	OfTypename     *TypeName           `json:"ofTypename"`
	Constraints    *NodeList           `json:"constraints"`
	Options        *NodeList           `json:"options"`
	Oncommit       OnCommitAction      `json:"oncommit"`
	Tablespacename string              `json:"tablespacename"`
	AccessMethod   string              `json:"accessMethod"`
	IfNotExists    bool                `json:"if_not_exists"`
}

// CreateForeignTableStmt is CREATE FOREIGN TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:2880
type CreateForeignTableStmt struct {
	BaseNode
	Base       CreateStmt `json:"base"`
	Servername string     `json:"servername"`
	Options    *NodeList  `json:"options"`
}

// AlterTableStmt is ALTER TABLE and the ALTER variants sharing its commands.
// Ported from postgres/src/include/nodes/parsenodes.h:2340
type AlterTableStmt struct {
	BaseNode
	Relation  *RangeVar  `json:"relation"`
	Cmds      *NodeList  `json:"cmds"`
	Objtype   ObjectType `json:"objtype"`
	MissingOk bool       `json:"missing_ok"`
}

// AlterTableCmd is one subcommand of ALTER TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:2446
type AlterTableCmd struct {
	BaseNode
	Subtype   AlterTableType `json:"subtype"`
	Name      string         `json:"name"`     // column, constraint, or trigger to act on
	Num       int            `json:"num"`      // attribute number for columns referenced by number
	Newowner  *RoleSpec      `json:"newowner"` // owner for AT_ChangeOwner
	Def       Node           `json:"def"`      // definition of new column, index, constraint, or parent table
	Behavior  DropBehavior   `json:"behavior"`
	MissingOk bool           `json:"missing_ok"`
	Recurse   bool           `json:"recurse"`
}

// IndexStmt is CREATE INDEX.
// Ported from postgres/src/include/nodes/parsenodes.h:3316
type IndexStmt struct {
	BaseNode
	Idxname              string    `json:"idxname"`
	Relation             *RangeVar `json:"relation"`
	AccessMethod         string    `json:"accessMethod"`
	TableSpace           string    `json:"tableSpace"`
	IndexParams          *NodeList `json:"indexParams"`
	IndexIncludingParams *NodeList `json:"indexIncludingParams"`
	Options              *NodeList `json:"options"`
	WhereClause          Node      `json:"whereClause"`
	ExcludeOpNames       *NodeList `json:"excludeOpNames"`
	Idxcomment           string    `json:"idxcomment"`
	Unique               bool      `json:"unique"`
	NullsNotDistinct     bool      `json:"nulls_not_distinct"`
	Primary              bool      `json:"primary"`
	Isconstraint         bool      `json:"isconstraint"`
	Deferrable           bool      `json:"deferrable"`
	Initdeferred         bool      `json:"initdeferred"`
	Concurrent           bool      `json:"concurrent"`
	IfNotExists          bool      `json:"if_not_exists"`
}

// ViewStmt is CREATE VIEW.
// Ported from postgres/src/include/nodes/parsenodes.h:3743
type ViewStmt struct {
	BaseNode
	View            *RangeVar       `json:"view"`
	Aliases         *NodeList       `json:"aliases"`
	Query           Node            `json:"query"`
	Replace         bool            `json:"replace"`
	Options         *NodeList       `json:"options"`
	WithCheckOption ViewCheckOption `json:"withCheckOption"`
}

// CreateTableAsStmt is CREATE TABLE AS, SELECT INTO and CREATE MATERIALIZED VIEW.
// Ported from postgres/src/include/nodes/parsenodes.h:3912
type CreateTableAsStmt struct {
	BaseNode
	Query        Node        `json:"query"`
	Into         *IntoClause `json:"into"`
	Objtype      ObjectType  `json:"objtype"`
	IsSelectInto bool        `json:"is_select_into"`
	IfNotExists  bool        `json:"if_not_exists"`
}

// RefreshMatViewStmt is REFRESH MATERIALIZED VIEW.
// Ported from postgres/src/include/nodes/parsenodes.h:3926
type RefreshMatViewStmt struct {
	BaseNode
	Concurrent bool      `json:"concurrent"`
	SkipData   bool      `json:"skipData"`
	Relation   *RangeVar `json:"relation"`
}

// CreateSeqStmt is CREATE SEQUENCE.
// Ported from postgres/src/include/nodes/parsenodes.h:3060
type CreateSeqStmt struct {
	BaseNode
	Sequence    *RangeVar `json:"sequence"`
	Options     *NodeList `json:"options"`
	ForIdentity bool      `json:"for_identity"`
	IfNotExists bool      `json:"if_not_exists"`
}

// CreateSchemaStmt is CREATE SCHEMA.
// Ported from postgres/src/include/nodes/parsenodes.h:2326
type CreateSchemaStmt struct {
	BaseNode
	Schemaname  string    `json:"schemaname"`
	Authrole    *RoleSpec `json:"authrole"`
	SchemaElts  *NodeList `json:"schemaElts"`
	IfNotExists bool      `json:"if_not_exists"`
}

// CreateFunctionStmt is CREATE FUNCTION or CREATE PROCEDURE.
// Ported from postgres/src/include/nodes/parsenodes.h:3376
type CreateFunctionStmt struct {
	BaseNode
	IsProcedure bool      `json:"is_procedure"`
	Replace     bool      `json:"replace"`
	Funcname    *NodeList `json:"funcname"`
	Parameters  *NodeList `json:"parameters"` // a list of FunctionParameter
	ReturnType  *TypeName `json:"returnType"`
	Options     *NodeList `json:"options"` // a list of DefElem
	SQLBody     Node      `json:"sql_body"`
}

// CreateTrigStmt is CREATE TRIGGER.
// Ported from postgres/src/include/nodes/parsenodes.h:3007
type CreateTrigStmt struct {
	BaseNode
	Replace        bool      `json:"replace"`
	Isconstraint   bool      `json:"isconstraint"`
	Trigname       string    `json:"trigname"`
	Relation       *RangeVar `json:"relation"`
	Funcname       *NodeList `json:"funcname"`
	Args           *NodeList `json:"args"`
	Row            bool      `json:"row"`
	Timing         int       `json:"timing"` // BEFORE, AFTER, or INSTEAD, see TRIGGER_TYPE_*
	Events         int       `json:"events"` // "OR" of INSERT/UPDATE/DELETE/TRUNCATE
	Columns        *NodeList `json:"columns"`
	WhenClause     Node      `json:"whenClause"`
	TransitionRels *NodeList `json:"transitionRels"`
	Deferrable     bool      `json:"deferrable"`
	Initdeferred   bool      `json:"initdeferred"`
	Constrrel      *RangeVar `json:"constrrel"`
}

// CreateDomainStmt is CREATE DOMAIN.
// Ported from postgres/src/include/nodes/parsenodes.h:3122
type CreateDomainStmt struct {
	BaseNode
	Domainname  *NodeList      `json:"domainname"`
	TypeName    *TypeName      `json:"typeName"`
	CollClause  *CollateClause `json:"collClause"`
	Constraints *NodeList      `json:"constraints"`
}

// CreateEnumStmt is CREATE TYPE ... AS ENUM.
// Ported from postgres/src/include/nodes/parsenodes.h:3691
type CreateEnumStmt struct {
	BaseNode
	TypeName *NodeList `json:"typeName"`
	Vals     *NodeList `json:"vals"`
}

// CreateRangeStmt is CREATE TYPE ... AS RANGE.
// Ported from postgres/src/include/nodes/parsenodes.h:3702
type CreateRangeStmt struct {
	BaseNode
	TypeName *NodeList `json:"typeName"`
	Params   *NodeList `json:"params"`
}

// CompositeTypeStmt is CREATE TYPE ... AS (...).
// Ported from postgres/src/include/nodes/parsenodes.h:3680
type CompositeTypeStmt struct {
	BaseNode
	Typevar    *RangeVar `json:"typevar"`
	Coldeflist *NodeList `json:"coldeflist"`
}

// CreateExtensionStmt is CREATE EXTENSION.
// Ported from postgres/src/include/nodes/parsenodes.h:2771
type CreateExtensionStmt struct {
	BaseNode
	Extname     string    `json:"extname"`
	IfNotExists bool      `json:"if_not_exists"`
	Options     *NodeList `json:"options"`
}

// AlterExtensionStmt is ALTER EXTENSION ... UPDATE.
// Ported from postgres/src/include/nodes/parsenodes.h:2780
type AlterExtensionStmt struct {
	BaseNode
	Extname string    `json:"extname"`
	Options *NodeList `json:"options"`
}

// AlterExtensionContentsStmt is ALTER EXTENSION ... ADD/DROP.
// Ported from postgres/src/include/nodes/parsenodes.h:2787
type AlterExtensionContentsStmt struct {
	BaseNode
	Extname string     `json:"extname"`
	Action  int        `json:"action"` // +1 = add object, -1 = drop object
	Objtype ObjectType `json:"objtype"`
	Object  Node       `json:"object"`
}

// CreatedbStmt is CREATE DATABASE.
// Ported from postgres/src/include/nodes/parsenodes.h:3795
type CreatedbStmt struct {
	BaseNode
	Dbname  string    `json:"dbname"`
	Options *NodeList `json:"options"`
}

// AlterDatabaseStmt is ALTER DATABASE with options.
// Ported from postgres/src/include/nodes/parsenodes.h:3806
type AlterDatabaseStmt struct {
	BaseNode
	Dbname  string    `json:"dbname"`
	Options *NodeList `json:"options"`
}

// AlterDatabaseSetStmt is ALTER DATABASE ... SET/RESET.
// Ported from postgres/src/include/nodes/parsenodes.h:3819
type AlterDatabaseSetStmt struct {
	BaseNode
	Dbname  string           `json:"dbname"`
	Setstmt *VariableSetStmt `json:"setstmt"`
}

// DropdbStmt is DROP DATABASE.
// Ported from postgres/src/include/nodes/parsenodes.h:3830
type DropdbStmt struct {
	BaseNode
	Dbname    string    `json:"dbname"`
	MissingOk bool      `json:"missing_ok"`
	Options   *NodeList `json:"options"`
}

// AlterSystemStmt is ALTER SYSTEM.
// Ported from postgres/src/include/nodes/parsenodes.h:3840
type AlterSystemStmt struct {
	BaseNode
	Setstmt *VariableSetStmt `json:"setstmt"`
}

// CreateTableSpaceStmt is CREATE TABLESPACE.
// Ported from postgres/src/include/nodes/parsenodes.h:2734
type CreateTableSpaceStmt struct {
	BaseNode
	Tablespacename string    `json:"tablespacename"`
	Owner          *RoleSpec `json:"owner"`
	LocationDir    string    `json:"location"`
	Options        *NodeList `json:"options"`
}

// DropTableSpaceStmt is DROP TABLESPACE.
// Ported from postgres/src/include/nodes/parsenodes.h:2743
type DropTableSpaceStmt struct {
	BaseNode
	Tablespacename string `json:"tablespacename"`
	MissingOk      bool   `json:"missing_ok"`
}

// AlterTableSpaceOptionsStmt is ALTER TABLESPACE ... SET/RESET.
// Ported from postgres/src/include/nodes/parsenodes.h:2750
type AlterTableSpaceOptionsStmt struct {
	BaseNode
	Tablespacename string    `json:"tablespacename"`
	Options        *NodeList `json:"options"`
	IsReset        bool      `json:"isReset"`
}

// CreateCastStmt is CREATE CAST.
// Ported from postgres/src/include/nodes/parsenodes.h:3964
type CreateCastStmt struct {
	BaseNode
	Sourcetype *TypeName       `json:"sourcetype"`
	Targettype *TypeName       `json:"targettype"`
	Func       *ObjectWithArgs `json:"func"`
	Context    CoercionContext `json:"context"`
	Inout      bool            `json:"inout"`
}

// DefineStmt is CREATE AGGREGATE, OPERATOR, TYPE, TEXT SEARCH object or COLLATION.
// Ported from postgres/src/include/nodes/parsenodes.h:3104
type DefineStmt struct {
	BaseNode
	Kind        ObjectType `json:"kind"`
	Oldstyle    bool       `json:"oldstyle"`   // hack to signal old CREATE AGG syntax
	Defnames    *NodeList  `json:"defnames"`   // qualified name (list of String)
	Args        *NodeList  `json:"args"`       // a list of TypeName (if needed)
	Definition  *NodeList  `json:"definition"` // a list of DefElem
	IfNotExists bool       `json:"if_not_exists"`
	Replace     bool       `json:"replace"`
}

// DropStmt is DROP of any object type except roles, databases, tablespaces
// and subscriptions.
// Ported from postgres/src/include/nodes/parsenodes.h:3185
type DropStmt struct {
	BaseNode
	Objects    *NodeList    `json:"objects"`
	RemoveType ObjectType   `json:"removeType"`
	Behavior   DropBehavior `json:"behavior"`
	MissingOk  bool         `json:"missing_ok"`
	Concurrent bool         `json:"concurrent"`
}

// DropRoleStmt is DROP ROLE.
// Ported from postgres/src/include/nodes/parsenodes.h:3051
type DropRoleStmt struct {
	BaseNode
	Roles     *NodeList `json:"roles"`
	MissingOk bool      `json:"missing_ok"`
}

// DropSubscriptionStmt is DROP SUBSCRIPTION.
// Ported from postgres/src/include/nodes/parsenodes.h:4165
type DropSubscriptionStmt struct {
	BaseNode
	Subname   string       `json:"subname"`
	MissingOk bool         `json:"missing_ok"`
	Behavior  DropBehavior `json:"behavior"`
}

// GrantStmt is GRANT or REVOKE on objects.
// Ported from postgres/src/include/nodes/parsenodes.h:2501
type GrantStmt struct {
	BaseNode
	IsGrant     bool            `json:"is_grant"`
	Targtype    GrantTargetType `json:"targtype"`
	Objtype     ObjectType      `json:"objtype"`
	Objects     *NodeList       `json:"objects"`
	Privileges  *NodeList       `json:"privileges"` // nil means ALL PRIVILEGES
	Grantees    *NodeList       `json:"grantees"`
	GrantOption bool            `json:"grant_option"`
	Grantor     *RoleSpec       `json:"grantor"`
	Behavior    DropBehavior    `json:"behavior"`
}

// GrantRoleStmt is GRANT or REVOKE of role membership.
// Ported from postgres/src/include/nodes/parsenodes.h:2550
type GrantRoleStmt struct {
	BaseNode
	GrantedRoles *NodeList    `json:"granted_roles"`
	GranteeRoles *NodeList    `json:"grantee_roles"`
	IsGrant      bool         `json:"is_grant"`
	Opt          *NodeList    `json:"opt"` // options e.g. WITH GRANT OPTION
	Grantor      *RoleSpec    `json:"grantor"`
	Behavior     DropBehavior `json:"behavior"`
}

// RenameStmt is ALTER ... RENAME.
// Ported from postgres/src/include/nodes/parsenodes.h:3497
type RenameStmt struct {
	BaseNode
	RenameType   ObjectType   `json:"renameType"`
	RelationType ObjectType   `json:"relationType"` // if column name, associated relation type
	Relation     *RangeVar    `json:"relation"`
	Object       Node         `json:"object"`
	Subname      string       `json:"subname"`
	Newname      string       `json:"newname"`
	Behavior     DropBehavior `json:"behavior"`
	MissingOk    bool         `json:"missing_ok"`
}

// AlterObjectSchemaStmt is ALTER ... SET SCHEMA.
// Ported from postgres/src/include/nodes/parsenodes.h:3528
type AlterObjectSchemaStmt struct {
	BaseNode
	ObjectType ObjectType `json:"objectType"`
	Relation   *RangeVar  `json:"relation"`
	Object     Node       `json:"object"`
	Newschema  string     `json:"newschema"`
	MissingOk  bool       `json:"missing_ok"`
}

// AlterObjectDependsStmt is ALTER ... [NO] DEPENDS ON EXTENSION.
// Ported from postgres/src/include/nodes/parsenodes.h:3513
type AlterObjectDependsStmt struct {
	BaseNode
	ObjectType ObjectType `json:"objectType"`
	Relation   *RangeVar  `json:"relation"`
	Object     Node       `json:"object"`
	Extname    *String    `json:"extname"`
	Remove     bool       `json:"remove"`
}

// CommentStmt is COMMENT ON.
// Ported from postgres/src/include/nodes/parsenodes.h:3235
type CommentStmt struct {
	BaseNode
	Objtype ObjectType `json:"objtype"`
	Object  Node       `json:"object"`
	Comment string     `json:"comment"` // empty means IS NULL
}
