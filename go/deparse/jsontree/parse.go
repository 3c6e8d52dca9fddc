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

package jsontree

import (
	pg_query "github.com/pganalyze/pg_query_go/v6"

	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/mterrors"
)

// ParseSQL parses sql with the PostgreSQL parser and decodes the result.
func ParseSQL(sql string) ([]ast.Node, error) {
	tree, err := pg_query.ParseToJSON(sql)
	if err != nil {
		return nil, mterrors.DP02001(err.Error())
	}
	return Decode([]byte(tree))
}

// Fingerprint returns the libpg_query fingerprint of sql. Two statement
// lists with equal fingerprints have the same parse tree up to constants
// and formatting.
func Fingerprint(sql string) (string, error) {
	fp, err := pg_query.Fingerprint(sql)
	if err != nil {
		return "", mterrors.DP02001(err.Error())
	}
	return fp, nil
}
