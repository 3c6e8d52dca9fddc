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

// Package jsontree decodes the libpg_query JSON parse tree into the node
// model of package ast.
//
// The JSON layout follows pg_query_outfuncs_json: fields declared as a
// generic node hold a wrapped object whose single key names the node kind,
// fields declared as a specific node type hold the bare object, lists are
// arrays of wrapped nodes and enums are written by their symbolic names.
// YAML documents with the same shape are accepted too.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/mterrors"
)

type parseResult struct {
	Version int         `mapstructure:"version"`
	Stmts   []stmtEntry `mapstructure:"stmts"`
}

type stmtEntry struct {
	Stmt         any `mapstructure:"stmt"`
	StmtLocation int `mapstructure:"stmt_location"`
	StmtLen      int `mapstructure:"stmt_len"`
}

// Decode decodes a libpg_query JSON parse result into one RawStmt per
// statement.
func Decode(data []byte) ([]ast.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError("invalid JSON: %v", err)
	}
	return decodeResult(doc)
}

// DecodeYAML decodes a parse result written as YAML.
func DecodeYAML(data []byte) ([]ast.Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decodeError("invalid YAML: %v", err)
	}
	return decodeResult(doc)
}

func decodeResult(doc any) ([]ast.Node, error) {
	if _, ok := doc.(map[string]any); !ok {
		return nil, decodeError("parse result must be an object, got %T", doc)
	}
	var res parseResult
	if err := mapstructure.Decode(doc, &res); err != nil {
		return nil, decodeError("%v", err)
	}

	nodes := make([]ast.Node, 0, len(res.Stmts))
	for i, entry := range res.Stmts {
		stmt, err := DecodeNode(entry.Stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
		raw := ast.NewRawStmt(stmt)
		raw.StmtLocation = entry.StmtLocation
		raw.StmtLen = entry.StmtLen
		nodes = append(nodes, raw)
	}
	return nodes, nil
}

func decodeError(format string, args ...any) error {
	return mterrors.DP02002(fmt.Sprintf(format, args...))
}
