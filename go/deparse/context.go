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

// Context is a rendering mode passed down the recursion. It changes keyword
// choice and quoting for the few builders that look at it and is never
// stored anywhere.
type Context int

const (
	// ContextNone is the default mode.
	ContextNone Context = iota
	// ContextInsertRelation renders a relation alias with AS, as INSERT INTO
	// requires.
	ContextInsertRelation
	// ContextAExpr marks an operand of an operator expression; nested
	// operator expressions wrap themselves in parentheses.
	ContextAExpr
	// ContextCreateType renders relations of CREATE TYPE ... AS without ONLY.
	ContextCreateType
	// ContextAlterType renders ALTER TYPE commands: ATTRIBUTE instead of
	// COLUMN, relations without ONLY.
	ContextAlterType
	// ContextIdentifier renders string values as quoted identifiers.
	ContextIdentifier
	// ContextConstant renders string values as string literals.
	ContextConstant
	// ContextForeignTable renders column options of a foreign table.
	ContextForeignTable
)

var contextNames = [...]string{
	ContextNone:           "None",
	ContextInsertRelation: "InsertRelation",
	ContextAExpr:          "AExpr",
	ContextCreateType:     "CreateType",
	ContextAlterType:      "AlterType",
	ContextIdentifier:     "Identifier",
	ContextConstant:       "Constant",
	ContextForeignTable:   "ForeignTable",
}

func (c Context) String() string {
	if c < 0 || int(c) >= len(contextNames) {
		return "Unknown"
	}
	return contextNames[c]
}
