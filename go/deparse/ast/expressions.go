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
// EXPRESSION NODES - postgres/src/include/nodes/parsenodes.h, primnodes.h
// ==============================================================================

// A_Expr is an infix, prefix or postfix operator expression.
// Ported from postgres/src/include/nodes/parsenodes.h:329
type A_Expr struct {
	BaseNode
	Kind  A_Expr_Kind `json:"kind"`
	Name  *NodeList   `json:"name"`  // possibly-qualified name of operator
	Lexpr Node        `json:"lexpr"` // left argument, or nil if none
	Rexpr Node        `json:"rexpr"` // right argument, or nil if none
}

// NewA_Expr creates an operator expression.
func NewA_Expr(kind A_Expr_Kind, name *NodeList, lexpr, rexpr Node) *A_Expr {
	return &A_Expr{BaseNode: newBase(T_A_Expr), Kind: kind, Name: name, Lexpr: lexpr, Rexpr: rexpr}
}

// A_ArrayExpr is an ARRAY[] construct.
// Ported from postgres/src/include/nodes/parsenodes.h:477
type A_ArrayExpr struct {
	BaseNode
	Elements *NodeList `json:"elements"`
}

// A_Indices is an array subscript or slice bounds ([idx] or [lidx:uidx]).
// Ported from postgres/src/include/nodes/parsenodes.h:444
type A_Indices struct {
	BaseNode
	IsSlice bool `json:"is_slice"`
	Lidx    Node `json:"lidx"`
	Uidx    Node `json:"uidx"`
}

// A_Indirection selects a field and/or array element from an expression.
// Ported from postgres/src/include/nodes/parsenodes.h:466
type A_Indirection struct {
	BaseNode
	Arg         Node      `json:"arg"`
	Indirection *NodeList `json:"indirection"`
}

// A_Star is '*' in a column reference or target list.
// Ported from postgres/src/include/nodes/parsenodes.h:433
type A_Star struct {
	BaseNode
}

// NewA_Star creates a '*' node.
func NewA_Star() *A_Star {
	return &A_Star{BaseNode: newBase(T_A_Star)}
}

// BoolExpr is AND, OR or NOT over its arguments.
// Ported from postgres/src/include/nodes/primnodes.h:934
type BoolExpr struct {
	BaseNode
	Boolop BoolExprType `json:"boolop"`
	Args   *NodeList    `json:"args"`
}

// NewBoolExpr creates a boolean expression.
func NewBoolExpr(op BoolExprType, args ...Node) *BoolExpr {
	return &BoolExpr{BaseNode: newBase(T_BoolExpr), Boolop: op, Args: NewNodeList(args...)}
}

// BooleanTest is IS [NOT] TRUE/FALSE/UNKNOWN.
// Ported from postgres/src/include/nodes/primnodes.h:1986
type BooleanTest struct {
	BaseNode
	Arg          Node         `json:"arg"`
	Booltesttype BoolTestType `json:"booltesttype"`
}

// CaseExpr is a CASE expression.
// Ported from postgres/src/include/nodes/primnodes.h:1292
type CaseExpr struct {
	BaseNode
	Arg       Node      `json:"arg"`       // implicit equality comparison argument
	Args      *NodeList `json:"args"`      // the arguments (list of WHEN clauses)
	Defresult Node      `json:"defresult"` // the default result (ELSE clause)
}

// CaseWhen is one WHEN clause of a CASE expression.
// Ported from postgres/src/include/nodes/primnodes.h:1306
type CaseWhen struct {
	BaseNode
	Expr   Node `json:"expr"`
	Result Node `json:"result"`
}

// CoalesceExpr is a COALESCE expression.
// Ported from postgres/src/include/nodes/primnodes.h:1463
type CoalesceExpr struct {
	BaseNode
	Args *NodeList `json:"args"`
}

// CollateClause is a COLLATE applied to an expression.
// Ported from postgres/src/include/nodes/parsenodes.h:384
type CollateClause struct {
	BaseNode
	Arg      Node      `json:"arg"`
	Collname *NodeList `json:"collname"` // possibly-qualified collation name
}

// ColumnRef is a reference to a column, possibly qualified, or '*'.
// Ported from postgres/src/include/nodes/parsenodes.h:291
type ColumnRef struct {
	BaseNode
	Fields *NodeList `json:"fields"` // field names (String nodes) or A_Star
}

// NewColumnRef creates a column reference from its fields.
func NewColumnRef(fields ...Node) *ColumnRef {
	return &ColumnRef{BaseNode: newBase(T_ColumnRef), Fields: NewNodeList(fields...)}
}

// CurrentOfExpr is WHERE CURRENT OF cursor.
// Ported from postgres/src/include/nodes/primnodes.h:2049
type CurrentOfExpr struct {
	BaseNode
	CursorName string `json:"cursor_name"`
}

// FuncCall is a function or aggregate invocation.
// Ported from postgres/src/include/nodes/parsenodes.h:417
type FuncCall struct {
	BaseNode
	Funcname       *NodeList    `json:"funcname"`         // qualified name of function
	Args           *NodeList    `json:"args"`             // the arguments (list of exprs)
	AggOrder       *NodeList    `json:"agg_order"`        // ORDER BY (list of SortBy)
	AggFilter      Node         `json:"agg_filter"`       // FILTER clause, if any
	Over           *WindowDef   `json:"over"`             // OVER clause, if any
	AggWithinGroup bool         `json:"agg_within_group"` // ORDER BY appeared in WITHIN GROUP
	AggStar        bool         `json:"agg_star"`         // argument was really '*'
	AggDistinct    bool         `json:"agg_distinct"`     // arguments were labeled DISTINCT
	FuncVariadic   bool         `json:"func_variadic"`    // last argument was labeled VARIADIC
	Funcformat     CoercionForm `json:"funcformat"`       // how to display this node
}

// NewFuncCall creates a function call with explicit call syntax.
func NewFuncCall(funcname *NodeList, args ...Node) *FuncCall {
	fc := &FuncCall{BaseNode: newBase(T_FuncCall), Funcname: funcname}
	if len(args) > 0 {
		fc.Args = NewNodeList(args...)
	}
	return fc
}

// GroupingFunc is GROUPING(...).
// Ported from postgres/src/include/nodes/primnodes.h:537
type GroupingFunc struct {
	BaseNode
	Args *NodeList `json:"args"`
}

// GroupingSet is a ROLLUP, CUBE or GROUPING SETS clause.
// Ported from postgres/src/include/nodes/parsenodes.h:1503
type GroupingSet struct {
	BaseNode
	Kind    GroupingSetKind `json:"kind"`
	Content *NodeList       `json:"content"`
}

// MinMaxExpr is GREATEST or LEAST.
// Ported from postgres/src/include/nodes/primnodes.h:1489
type MinMaxExpr struct {
	BaseNode
	Op   MinMaxOp  `json:"op"`
	Args *NodeList `json:"args"`
}

// MultiAssignRef is one element of a row source in UPDATE SET (a, b) = row.
// Ported from postgres/src/include/nodes/parsenodes.h:529
type MultiAssignRef struct {
	BaseNode
	Source   Node `json:"source"`   // the row-valued expression
	Colno    int  `json:"colno"`    // column number for this target (1..n)
	Ncolumns int  `json:"ncolumns"` // number of targets in the construct
}

// NamedArgExpr is a named function argument (name => value).
// Ported from postgres/src/include/nodes/primnodes.h:788
type NamedArgExpr struct {
	BaseNode
	Arg       Node   `json:"arg"`
	Name      string `json:"name"`
	Argnumber int    `json:"argnumber"`
}

// NullTest is IS [NOT] NULL.
// Ported from postgres/src/include/nodes/primnodes.h:1962
type NullTest struct {
	BaseNode
	Arg          Node         `json:"arg"`
	Nulltesttype NullTestType `json:"nulltesttype"`
	Argisrow     bool         `json:"argisrow"`
}

// ParamRef is a positional parameter ($n).
// Ported from postgres/src/include/nodes/parsenodes.h:301
type ParamRef struct {
	BaseNode
	Number int `json:"number"`
}

// RowExpr is a ROW() constructor or implicit row.
// Ported from postgres/src/include/nodes/primnodes.h:1364
type RowExpr struct {
	BaseNode
	Args      *NodeList    `json:"args"`
	RowFormat CoercionForm `json:"row_format"`
	Colnames  *NodeList    `json:"colnames"`
}

// SQLValueFunction is a parameterless SQL-standard function such as CURRENT_DATE.
// Ported from postgres/src/include/nodes/primnodes.h:1539
type SQLValueFunction struct {
	BaseNode
	Op     SQLValueFunctionOp `json:"op"`
	Typmod int                `json:"typmod"`
}

// SetToDefault is the DEFAULT keyword used as a value.
// Ported from postgres/src/include/nodes/primnodes.h:2031
type SetToDefault struct {
	BaseNode
}

// SortBy is one ORDER BY item.
// Ported from postgres/src/include/nodes/parsenodes.h:543
type SortBy struct {
	BaseNode
	Node        Node        `json:"node"`
	SortbyDir   SortByDir   `json:"sortby_dir"`
	SortbyNulls SortByNulls `json:"sortby_nulls"`
	UseOp       *NodeList   `json:"useOp"` // name of op to use, if SORTBY_USING
}

// SubLink is a subselect appearing in an expression.
// Ported from postgres/src/include/nodes/primnodes.h:1004
type SubLink struct {
	BaseNode
	SubLinkType SubLinkType `json:"subLinkType"`
	SubLinkID   int         `json:"subLinkId"`
	Testexpr    Node        `json:"testexpr"` // outer-query test for ALL/ANY/ROWCOMPARE
	OperName    *NodeList   `json:"operName"` // originally specified operator name
	Subselect   Node        `json:"subselect"`
}

// TypeCast is a CAST expression or '::' cast.
// Ported from postgres/src/include/nodes/parsenodes.h:373
type TypeCast struct {
	BaseNode
	Arg      Node      `json:"arg"`
	TypeName *TypeName `json:"typeName"`
}

// TypeName is a type reference with its modifiers.
// Ported from postgres/src/include/nodes/parsenodes.h:265
type TypeName struct {
	BaseNode
	Names       *NodeList `json:"names"`       // qualified name (list of String nodes)
	TypeOid     int       `json:"typeOid"`     // type identified by OID
	Setof       bool      `json:"setof"`       // is a set?
	PctType     bool      `json:"pct_type"`    // %TYPE specified?
	Typmods     *NodeList `json:"typmods"`     // type modifier expression(s)
	Typemod     int       `json:"typemod"`     // prespecified type modifier
	ArrayBounds *NodeList `json:"arrayBounds"` // array bounds
}

// NewTypeName creates a type reference from name parts.
func NewTypeName(names ...string) *TypeName {
	list := NewNodeList()
	for _, n := range names {
		list.Append(NewString(n))
	}
	return &TypeName{BaseNode: newBase(T_TypeName), Names: list, Typemod: -1}
}

// WindowDef is a WINDOW clause entry or an OVER clause.
// Ported from postgres/src/include/nodes/parsenodes.h:561
type WindowDef struct {
	BaseNode
	Name            string    `json:"name"`            // window's own name
	Refname         string    `json:"refname"`         // referenced window name, if any
	PartitionClause *NodeList `json:"partitionClause"` // PARTITION BY expression list
	OrderClause     *NodeList `json:"orderClause"`     // ORDER BY (list of SortBy)
	FrameOptions    int       `json:"frameOptions"`    // frame_clause options, see FRAMEOPTION_*
	StartOffset     Node      `json:"startOffset"`     // expression for starting bound, if any
	EndOffset       Node      `json:"endOffset"`       // expression for ending bound, if any
}

// XmlExpr is an XML function call with special syntax.
// Ported from postgres/src/include/nodes/primnodes.h:1593
type XmlExpr struct {
	BaseNode
	Op        XmlExprOp     `json:"op"`
	Name      string        `json:"name"`       // name in xml(NAME foo ...) syntaxes
	NamedArgs *NodeList     `json:"named_args"` // non-XML expressions for xml_attributes
	ArgNames  *NodeList     `json:"arg_names"`  // parallel list of String values
	Args      *NodeList     `json:"args"`       // list of expressions
	Xmloption XmlOptionType `json:"xmloption"`  // DOCUMENT or CONTENT
	Indent    bool          `json:"indent"`     // INDENT option for XMLSERIALIZE
}

// XmlSerialize is XMLSERIALIZE(...).
// Ported from postgres/src/include/nodes/parsenodes.h:848
type XmlSerialize struct {
	BaseNode
	Xmloption XmlOptionType `json:"xmloption"`
	Expr      Node          `json:"expr"`
	TypeName  *TypeName     `json:"typeName"`
	Indent    bool          `json:"indent"`
}
