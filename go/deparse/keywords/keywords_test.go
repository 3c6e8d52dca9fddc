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

package keywords

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKeywordLookup validates against postgres/src/include/parser/kwlist.h
func TestKeywordLookup(t *testing.T) {
	tests := []struct {
		name                 string
		keyword              string
		shouldExist          bool
		expectedCategory     KeywordCategory
		expectedCanBareLabel bool
	}{
		{"reserved_all", "all", true, ReservedKeyword, true},
		{"reserved_array", "array", true, ReservedKeyword, false},
		{"reserved_user", "user", true, ReservedKeyword, true},
		{"unreserved_abort", "abort", true, UnreservedKeyword, true},
		{"unreserved_alter", "alter", true, UnreservedKeyword, true},
		{"unreserved_year", "year", true, UnreservedKeyword, false},
		{"colname_between", "between", true, ColNameKeyword, true},
		{"colname_char", "char", true, ColNameKeyword, false},
		{"typefunc_authorization", "authorization", true, TypeFuncNameKeyword, true},
		{"typefunc_left", "left", true, TypeFuncNameKeyword, true},
		{"case_insensitive_upper", "SELECT", true, ReservedKeyword, true},
		{"case_insensitive_mixed", "Select", true, ReservedKeyword, true},
		{"non_keyword_random", "randomtext", false, UnreservedKeyword, false},
		{"non_keyword_empty", "", false, UnreservedKeyword, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw := LookupKeyword(tt.keyword)
			if !tt.shouldExist {
				assert.Nil(t, kw)
				return
			}
			require.NotNil(t, kw, "expected keyword %q to exist", tt.keyword)
			assert.Equal(t, tt.expectedCategory, kw.Category)
			assert.Equal(t, tt.expectedCanBareLabel, kw.CanBareLabel)
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		keyword  string
		expected bool
	}{
		{"user", true},
		{"between", true},
		{"left", true},
		{"name", false},
		{"action", false},
		{"widget", false},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, NeedsQuoting(tt.keyword))
		})
	}
}

func TestIsReservedKeyword(t *testing.T) {
	assert.True(t, IsReservedKeyword("case"))
	assert.True(t, IsReservedKeyword("Case"))
	assert.False(t, IsReservedKeyword("between"))
	assert.False(t, IsReservedKeyword("authorization"))
	assert.False(t, IsReservedKeyword("notakeyword"))
	assert.True(t, IsKeyword("All"))
	assert.False(t, IsKeyword(""))
}

func TestKeywordTableSorted(t *testing.T) {
	names := make([]string, len(Keywords))
	for i, kw := range Keywords {
		names[i] = kw.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "kwlist order must be preserved")
	assert.Equal(t, names, GetKeywordNames())

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate keyword %q", n)
		seen[n] = true
	}
}

func TestGetKeywordsByCategory(t *testing.T) {
	tests := []struct {
		category KeywordCategory
		contains []string
	}{
		{ReservedKeyword, []string{"all", "and", "case", "cast", "with"}},
		{UnreservedKeyword, []string{"abort", "action", "admin", "zone"}},
		{ColNameKeyword, []string{"between", "bigint", "xmltable"}},
		{TypeFuncNameKeyword, []string{"authorization", "verbose"}},
	}

	total := 0
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := GetKeywordsByCategory(tt.category)
			names := make([]string, len(got))
			for i, kw := range got {
				assert.Equal(t, tt.category, kw.Category)
				names[i] = kw.Name
			}
			for _, want := range tt.contains {
				assert.Contains(t, names, want)
			}
		})
		total += len(GetKeywordsByCategory(tt.category))
	}
	assert.Equal(t, len(Keywords), total)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("col_name_keyword")
	require.True(t, ok)
	assert.Equal(t, ColNameKeyword, c)

	_, ok = ParseCategory("bogus")
	assert.False(t, ok)
	assert.Equal(t, "UNKNOWN_KEYWORD_CATEGORY", KeywordCategory(42).String())
}
