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
	"strings"

	"github.com/lib/pq"

	"github.com/multigres/pgdeparse/go/deparse/keywords"
)

// nameDataLen is the identifier length limit (NAMEDATALEN). Longer values
// written where either a name or a string is accepted become strings.
const nameDataLen = 64

// QuoteIdentifier returns name as it must appear in SQL. Names that are
// lowercase, start with a letter or underscore and are not keywords that
// need quoting are returned unchanged; everything else is double quoted
// with embedded double quotes doubled. The empty name becomes "".
func QuoteIdentifier(name string) string {
	if isSafeIdentifier(name) && !keywords.NeedsQuoting(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isSafeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// QuoteLiteral returns s as a string constant. Single quotes and
// backslashes are doubled, and a value containing a backslash uses the
// E'' escape string syntax.
func QuoteLiteral(s string) string {
	// pq prefixes escape strings with a space.
	return strings.TrimPrefix(pq.QuoteLiteral(s), " ")
}

// quoteQualifiedName joins the quoted parts with dots.
func quoteQualifiedName(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		quoted = append(quoted, QuoteIdentifier(p))
	}
	return strings.Join(quoted, ".")
}

// bitStringLiteral renders a BitString value. The first character selects
// the hexadecimal or binary prefix.
func bitStringLiteral(v string) (string, error) {
	if v == "" {
		return "", errUnsupported("empty bit string")
	}
	switch v[0] {
	case 'x', 'b':
		return v[:1] + QuoteLiteral(v[1:]), nil
	default:
		return "", errUnsupported("bit string prefix %q", v[:1])
	}
}

// nonReservedWordOrSconst renders a value accepted by the grammar as
// either a name or a string constant.
func nonReservedWordOrSconst(v string) string {
	if v == "" {
		return "''"
	}
	if len(v) >= nameDataLen {
		return QuoteLiteral(v)
	}
	return QuoteIdentifier(v)
}

// dollarQuote wraps a function body or DO block in dollar quotes, picking a
// delimiter that does not occur in the body.
func dollarQuote(body string) string {
	delimiter := "$$"
	if strings.Contains(body, delimiter) {
		for _, alt := range []string{"$_$", "$body$", "$func$", "$do$"} {
			if !strings.Contains(body, alt) {
				return alt + body + alt
			}
		}
		for i := 1; ; i++ {
			delimiter = "$tag" + strings.Repeat("x", i) + "$"
			if !strings.Contains(body, delimiter) {
				break
			}
		}
	}
	return delimiter + body + delimiter
}

// isOperator reports whether op consists only of operator characters and
// can be written without OPERATOR().
func isOperator(op string) bool {
	if op == "" {
		return false
	}
	for i := 0; i < len(op); i++ {
		switch op[i] {
		case '~', '!', '@', '#', '^', '&', '|', '`', '?', '+', '-', '*', '/', '%', '<', '>', '=':
		default:
			return false
		}
	}
	return true
}
