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

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// buffer accumulates the text of one statement. It is owned by a single
// top-level render call and discarded on error.
type buffer struct {
	sb strings.Builder
}

func (b *buffer) write(parts ...string) {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
}

func (b *buffer) writeByte(c byte) {
	b.sb.WriteByte(c)
}

// space separates the next token from the previous one. Nothing is written
// at the start of the buffer, after a space or after an opening parenthesis.
func (b *buffer) space() {
	s := b.sb.String()
	if s == "" {
		return
	}
	switch s[len(s)-1] {
	case ' ', '(':
		return
	}
	b.sb.WriteByte(' ')
}

// keyword writes a keyword separated from what precedes it.
func (b *buffer) keyword(kw string) {
	b.space()
	b.sb.WriteString(kw)
}

func (b *buffer) ident(name string) {
	b.sb.WriteString(QuoteIdentifier(name))
}

func (b *buffer) literal(s string) {
	b.sb.WriteString(QuoteLiteral(s))
}

func (b *buffer) Len() int {
	return b.sb.Len()
}

func (b *buffer) String() string {
	return b.sb.String()
}

// join writes each item of list through fn, separated by sep.
func (b *buffer) join(list *ast.NodeList, sep string, fn func(ast.Node) error) error {
	if list == nil {
		return nil
	}
	for i, item := range list.Items {
		if i > 0 {
			b.write(sep)
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}
