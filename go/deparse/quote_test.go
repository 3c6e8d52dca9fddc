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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "name", "name"},
		{"underscore start", "_tmp1", "_tmp1"},
		{"reserved keyword", "user", `"user"`},
		{"column name keyword", "between", `"between"`},
		{"type func keyword", "left", `"left"`},
		{"unreserved keyword", "abort", "abort"},
		{"mixed case", "MixedCase", `"MixedCase"`},
		{"leading digit", "1abc", `"1abc"`},
		{"space", "two words", `"two words"`},
		{"embedded quote", `a"b`, `"a""b"`},
		{"empty", "", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input))
		})
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "abc", "'abc'"},
		{"empty", "", "''"},
		{"single quote", "it's", "'it''s'"},
		{"backslash", `a\b`, `E'a\\b'`},
		{"both", `a\'b`, `E'a\\''b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteLiteral(tt.input))
		})
	}
}

func TestBitStringLiteral(t *testing.T) {
	s, err := bitStringLiteral("x1F")
	require.NoError(t, err)
	assert.Equal(t, "x'1F'", s)

	s, err = bitStringLiteral("b0101")
	require.NoError(t, err)
	assert.Equal(t, "b'0101'", s)

	_, err = bitStringLiteral("z01")
	assert.True(t, IsKind(err, Unsupported))

	_, err = bitStringLiteral("")
	assert.True(t, IsKind(err, Unsupported))
}

func TestNonReservedWordOrSconst(t *testing.T) {
	long := ""
	for len(long) < nameDataLen {
		long += "a"
	}
	assert.Equal(t, "plpgsql", nonReservedWordOrSconst("plpgsql"))
	assert.Equal(t, `"C"`, nonReservedWordOrSconst("C"))
	assert.Equal(t, "''", nonReservedWordOrSconst(""))
	assert.Equal(t, "'"+long+"'", nonReservedWordOrSconst(long))
	assert.Equal(t, long[:nameDataLen-1], nonReservedWordOrSconst(long[:nameDataLen-1]))
}

func TestDollarQuote(t *testing.T) {
	assert.Equal(t, "$$SELECT 1$$", dollarQuote("SELECT 1"))
	assert.Equal(t, "$_$SELECT '$$'$_$", dollarQuote("SELECT '$$'"))
	assert.Equal(t, "$body$$$ $_$$body$", dollarQuote("$$ $_$"))

	body := "$$ $_$ $body$ $func$ $do$"
	assert.Equal(t, "$tagx$"+body+"$tagx$", dollarQuote(body))
}

func TestIsOperator(t *testing.T) {
	assert.True(t, isOperator("="))
	assert.True(t, isOperator("<->"))
	assert.True(t, isOperator("~~*"))
	assert.False(t, isOperator(""))
	assert.False(t, isOperator("abc"))
	assert.False(t, isOperator("=a"))
}
