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

// Package ast provides PostgreSQL parse tree node definitions.
// Ported from postgres/src/include/nodes/parsenodes.h, primnodes.h and
// value.h, restricted to the fields that affect how a statement is written
// back out as SQL. Field names follow the PostgreSQL structs; json tags
// follow the libpg_query JSON output.
package ast

import (
	"fmt"
)

// Node is implemented by every parse tree node.
type Node interface {
	// NodeTag returns the node's kind.
	NodeTag() NodeTag
	// Location returns the byte offset in the source text, or -1.
	Location() int
	// String returns a short debug representation.
	String() string
}

// BaseNode carries the fields shared by every node.
// Ported from postgres/src/include/nodes/nodes.h:129 (Node)
type BaseNode struct {
	Tag NodeTag `json:"-"`
	Loc int     `json:"location"`
}

// NodeTag returns the node's kind.
func (n *BaseNode) NodeTag() NodeTag {
	return n.Tag
}

// Location returns the byte offset in the source text.
func (n *BaseNode) Location() int {
	return n.Loc
}

func (n *BaseNode) String() string {
	return fmt.Sprintf("%s@%d", n.Tag, n.Loc)
}

// NodeList is an ordered list of nodes.
// Ported from postgres/src/include/nodes/pg_list.h:53 (List)
type NodeList struct {
	BaseNode
	Items []Node `json:"items"`
}

// NewNodeList creates a list holding the given items.
func NewNodeList(items ...Node) *NodeList {
	return &NodeList{
		BaseNode: BaseNode{Tag: T_List, Loc: -1},
		Items:    items,
	}
}

// Append adds a node to the end of the list.
func (l *NodeList) Append(n Node) {
	l.Items = append(l.Items, n)
}

// Len returns the number of items; a nil list has length zero.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

func (l *NodeList) String() string {
	return fmt.Sprintf("List[%d]", l.Len())
}

// RawNode holds a node kind that has no dedicated struct. Its fields are
// kept as decoded so the node can still be identified and reported.
type RawNode struct {
	BaseNode
	Fields map[string]any `json:"-"`
}

// NewRawNode creates a placeholder node of the given kind.
func NewRawNode(tag NodeTag, fields map[string]any) *RawNode {
	return &RawNode{BaseNode: BaseNode{Tag: tag, Loc: -1}, Fields: fields}
}

// ==============================================================================
// VALUE NODES - postgres/src/include/nodes/value.h
// ==============================================================================

// Integer is an integer literal.
// Ported from postgres/src/include/nodes/value.h:28
type Integer struct {
	BaseNode
	Ival int `json:"ival"`
}

// NewInteger creates an Integer node.
func NewInteger(v int) *Integer {
	return &Integer{BaseNode: BaseNode{Tag: T_Integer, Loc: -1}, Ival: v}
}

func (i *Integer) String() string {
	return fmt.Sprintf("Integer(%d)", i.Ival)
}

// Float is a numeric literal kept as text to preserve precision.
// Ported from postgres/src/include/nodes/value.h:47
type Float struct {
	BaseNode
	Fval string `json:"fval"`
}

// NewFloat creates a Float node.
func NewFloat(v string) *Float {
	return &Float{BaseNode: BaseNode{Tag: T_Float, Loc: -1}, Fval: v}
}

func (f *Float) String() string {
	return fmt.Sprintf("Float(%s)", f.Fval)
}

// Boolean is a boolean literal.
// Ported from postgres/src/include/nodes/value.h:56
type Boolean struct {
	BaseNode
	Boolval bool `json:"boolval"`
}

// NewBoolean creates a Boolean node.
func NewBoolean(v bool) *Boolean {
	return &Boolean{BaseNode: BaseNode{Tag: T_Boolean, Loc: -1}, Boolval: v}
}

func (b *Boolean) String() string {
	return fmt.Sprintf("Boolean(%t)", b.Boolval)
}

// String is a string value, also used for identifiers in name lists.
// Ported from postgres/src/include/nodes/value.h:65
type String struct {
	BaseNode
	Sval string `json:"sval"`
}

// NewString creates a String node.
func NewString(v string) *String {
	return &String{BaseNode: BaseNode{Tag: T_String, Loc: -1}, Sval: v}
}

func (s *String) String() string {
	return fmt.Sprintf("String(%q)", s.Sval)
}

// BitString is a bit string literal; the first character is 'b' or 'x'.
// Ported from postgres/src/include/nodes/value.h:73
type BitString struct {
	BaseNode
	Bsval string `json:"bsval"`
}

// NewBitString creates a BitString node.
func NewBitString(v string) *BitString {
	return &BitString{BaseNode: BaseNode{Tag: T_BitString, Loc: -1}, Bsval: v}
}

func (b *BitString) String() string {
	return fmt.Sprintf("BitString(%s)", b.Bsval)
}

// Null is the SQL NULL literal.
type Null struct {
	BaseNode
}

// NewNull creates a Null node.
func NewNull() *Null {
	return &Null{BaseNode: BaseNode{Tag: T_Null, Loc: -1}}
}

// A_Const is a constant in an expression. Val holds one of Integer, Float,
// Boolean, String or BitString; Isnull marks the NULL constant.
// Ported from postgres/src/include/nodes/parsenodes.h:357
type A_Const struct {
	BaseNode
	Val    Node `json:"-"`
	Isnull bool `json:"isnull"`
}

// NewA_Const creates a constant wrapping a value node.
func NewA_Const(val Node) *A_Const {
	return &A_Const{BaseNode: BaseNode{Tag: T_A_Const, Loc: -1}, Val: val}
}

// NewNullConst creates the NULL constant.
func NewNullConst() *A_Const {
	return &A_Const{BaseNode: BaseNode{Tag: T_A_Const, Loc: -1}, Isnull: true}
}

func (a *A_Const) String() string {
	if a.Isnull {
		return "A_Const(NULL)"
	}
	return fmt.Sprintf("A_Const(%v)", a.Val)
}

// StrVal returns the string held by a String node, or "" and false.
func StrVal(n Node) (string, bool) {
	s, ok := n.(*String)
	if !ok || s == nil {
		return "", false
	}
	return s.Sval, true
}

// Strings returns the String values of a list, skipping other nodes.
func Strings(l *NodeList) []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if s, ok := StrVal(item); ok {
			out = append(out, s)
		}
	}
	return out
}
