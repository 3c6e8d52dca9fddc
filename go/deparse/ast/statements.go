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
// DML AND QUERY STATEMENTS - postgres/src/include/nodes/parsenodes.h
// ==============================================================================

// RawStmt wraps one statement of a parse result with its source span.
// Ported from postgres/src/include/nodes/parsenodes.h:2017
type RawStmt struct {
	BaseNode
	Stmt         Node `json:"stmt"`
	StmtLocation int  `json:"stmt_location"`
	StmtLen      int  `json:"stmt_len"` // length in bytes; 0 means "rest of string"
}

// NewRawStmt wraps a statement.
func NewRawStmt(stmt Node) *RawStmt {
	return &RawStmt{BaseNode: newBase(T_RawStmt), Stmt: stmt}
}

// SelectStmt is a SELECT, VALUES or set-operation tree.
// Ported from postgres/src/include/nodes/parsenodes.h:2117
type SelectStmt struct {
	BaseNode

	// Fields used only in leaf nodes.
	DistinctClause *NodeList   `json:"distinctClause"` // nil, list of DISTINCT ON exprs, or a single nil item for DISTINCT
	IntoClause     *IntoClause `json:"intoClause"`
	TargetList     *NodeList   `json:"targetList"`
	FromClause     *NodeList   `json:"fromClause"`
	WhereClause    Node        `json:"whereClause"`
	GroupClause    *NodeList   `json:"groupClause"`
	GroupDistinct  bool        `json:"groupDistinct"`
	HavingClause   Node        `json:"havingClause"`
	WindowClause   *NodeList   `json:"windowClause"`
	ValuesLists    *NodeList   `json:"valuesLists"` // untransformed list of expression lists

	// Fields used in both leaf and upper-level nodes.
	SortClause    *NodeList   `json:"sortClause"`
	LimitOffset   Node        `json:"limitOffset"`
	LimitCount    Node        `json:"limitCount"`
	LimitOption   LimitOption `json:"limitOption"`
	LockingClause *NodeList   `json:"lockingClause"`
	WithClause    *WithClause `json:"withClause"`

	// Fields used only in upper-level set operation nodes.
	Op   SetOperation `json:"op"`
	All  bool         `json:"all"`
	Larg *SelectStmt  `json:"larg"`
	Rarg *SelectStmt  `json:"rarg"`
}

// NewSelectStmt creates an empty simple SELECT.
func NewSelectStmt() *SelectStmt {
	return &SelectStmt{BaseNode: newBase(T_SelectStmt)}
}

// InsertStmt is INSERT.
// Ported from postgres/src/include/nodes/parsenodes.h:2041
type InsertStmt struct {
	BaseNode
	Relation         *RangeVar         `json:"relation"`
	Cols             *NodeList         `json:"cols"`       // optional: names of the target columns
	SelectStmt       Node              `json:"selectStmt"` // the source SELECT/VALUES, or nil for DEFAULT VALUES
	OnConflictClause *OnConflictClause `json:"onConflictClause"`
	ReturningList    *NodeList         `json:"returningList"`
	WithClause       *WithClause       `json:"withClause"`
	Override         OverridingKind    `json:"override"`
}

// UpdateStmt is UPDATE.
// Ported from postgres/src/include/nodes/parsenodes.h:2071
type UpdateStmt struct {
	BaseNode
	Relation      *RangeVar   `json:"relation"`
	TargetList    *NodeList   `json:"targetList"`
	WhereClause   Node        `json:"whereClause"`
	FromClause    *NodeList   `json:"fromClause"`
	ReturningList *NodeList   `json:"returningList"`
	WithClause    *WithClause `json:"withClause"`
}

// DeleteStmt is DELETE.
// Ported from postgres/src/include/nodes/parsenodes.h:2057
type DeleteStmt struct {
	BaseNode
	Relation      *RangeVar   `json:"relation"`
	UsingClause   *NodeList   `json:"usingClause"`
	WhereClause   Node        `json:"whereClause"`
	ReturningList *NodeList   `json:"returningList"`
	WithClause    *WithClause `json:"withClause"`
}

// ==============================================================================
// UTILITY STATEMENTS
// ==============================================================================

// CopyStmt is COPY.
// Ported from postgres/src/include/nodes/parsenodes.h:2571
type CopyStmt struct {
	BaseNode
	Relation    *RangeVar `json:"relation"`
	Query       Node      `json:"query"`
	Attlist     *NodeList `json:"attlist"`
	IsFrom      bool      `json:"is_from"`
	IsProgram   bool      `json:"is_program"`
	Filename    string    `json:"filename"` // empty means STDIN/STDOUT
	Options     *NodeList `json:"options"`
	WhereClause Node      `json:"whereClause"`
}

// VariableSetStmt is SET, RESET and their variants.
// Ported from postgres/src/include/nodes/parsenodes.h:2605
type VariableSetStmt struct {
	BaseNode
	Kind    VariableSetKind `json:"kind"`
	Name    string          `json:"name"`
	Args    *NodeList       `json:"args"`
	IsLocal bool            `json:"is_local"`
}

// VariableShowStmt is SHOW.
// Ported from postgres/src/include/nodes/parsenodes.h:2618
type VariableShowStmt struct {
	BaseNode
	Name string `json:"name"`
}

// TransactionStmt is BEGIN, COMMIT, SAVEPOINT and the rest of the
// transaction control statements.
// Ported from postgres/src/include/nodes/parsenodes.h:3651
type TransactionStmt struct {
	BaseNode
	Kind          TransactionStmtKind `json:"kind"`
	Options       *NodeList           `json:"options"`
	SavepointName string              `json:"savepoint_name"`
	Gid           string              `json:"gid"`
	Chain         bool                `json:"chain"`
}

// VacuumStmt is VACUUM or ANALYZE.
// Ported from postgres/src/include/nodes/parsenodes.h:3857
type VacuumStmt struct {
	BaseNode
	Options     *NodeList `json:"options"`
	Rels        *NodeList `json:"rels"`
	IsVacuumcmd bool      `json:"is_vacuumcmd"`
}

// ExplainStmt is EXPLAIN.
// Ported from postgres/src/include/nodes/parsenodes.h:3886
type ExplainStmt struct {
	BaseNode
	Query   Node      `json:"query"`
	Options *NodeList `json:"options"`
}

// DoStmt is an anonymous code block.
// Ported from postgres/src/include/nodes/parsenodes.h:3436
type DoStmt struct {
	BaseNode
	Args *NodeList `json:"args"` // DefElem nodes: "as" body and optional "language"
}

// CallStmt is CALL.
// Ported from postgres/src/include/nodes/parsenodes.h:3460
type CallStmt struct {
	BaseNode
	Funccall *FuncCall `json:"funccall"`
}

// PrepareStmt is PREPARE.
// Ported from postgres/src/include/nodes/parsenodes.h:3998
type PrepareStmt struct {
	BaseNode
	Name     string    `json:"name"`
	Argtypes *NodeList `json:"argtypes"`
	Query    Node      `json:"query"`
}

// ExecuteStmt is EXECUTE.
// Ported from postgres/src/include/nodes/parsenodes.h:4012
type ExecuteStmt struct {
	BaseNode
	Name   string    `json:"name"`
	Params *NodeList `json:"params"`
}

// DeallocateStmt is DEALLOCATE.
// Ported from postgres/src/include/nodes/parsenodes.h:4023
type DeallocateStmt struct {
	BaseNode
	Name  string `json:"name"` // empty means ALL
	Isall bool   `json:"isall"`
}

// DiscardStmt is DISCARD.
// Ported from postgres/src/include/nodes/parsenodes.h:3968
type DiscardStmt struct {
	BaseNode
	Target DiscardMode `json:"target"`
}

// LoadStmt is LOAD.
// Ported from postgres/src/include/nodes/parsenodes.h:3754
type LoadStmt struct {
	BaseNode
	Filename string `json:"filename"`
}

// LockStmt is LOCK TABLE.
// Ported from postgres/src/include/nodes/parsenodes.h:3977
type LockStmt struct {
	BaseNode
	Relations *NodeList `json:"relations"`
	Mode      int       `json:"mode"` // see AccessShareLock and friends
	Nowait    bool      `json:"nowait"`
}

// CheckPointStmt is CHECKPOINT.
// Ported from postgres/src/include/nodes/parsenodes.h:3950
type CheckPointStmt struct {
	BaseNode
}

// ClosePortalStmt is CLOSE.
// Ported from postgres/src/include/nodes/parsenodes.h:3272
type ClosePortalStmt struct {
	BaseNode
	Portalname string `json:"portalname"` // empty means CLOSE ALL
}

// ListenStmt is LISTEN.
// Ported from postgres/src/include/nodes/parsenodes.h:3607
type ListenStmt struct {
	BaseNode
	Conditionname string `json:"conditionname"`
}

// UnlistenStmt is UNLISTEN.
// Ported from postgres/src/include/nodes/parsenodes.h:3617
type UnlistenStmt struct {
	BaseNode
	Conditionname string `json:"conditionname"` // empty means UNLISTEN *
}

// NotifyStmt is NOTIFY.
// Ported from postgres/src/include/nodes/parsenodes.h:3596
type NotifyStmt struct {
	BaseNode
	Conditionname string `json:"conditionname"`
	Payload       string `json:"payload"`
}

// TruncateStmt is TRUNCATE.
// Ported from postgres/src/include/nodes/parsenodes.h:3201
type TruncateStmt struct {
	BaseNode
	Relations   *NodeList    `json:"relations"`
	RestartSeqs bool         `json:"restart_seqs"`
	Behavior    DropBehavior `json:"behavior"`
}
