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
	"maps"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

var (
	nodeType     = reflect.TypeOf((*ast.Node)(nil)).Elem()
	nodeListType = reflect.TypeOf((*ast.NodeList)(nil))
	astPkgPath   = reflect.TypeOf(ast.NodeTag(0)).PkgPath()

	// tagsByType maps each node struct pointer type to its kind, so bare
	// objects in typed fields get the right tag.
	tagsByType = func() map[reflect.Type]ast.NodeTag {
		m := make(map[reflect.Type]ast.NodeTag)
		for _, tag := range ast.AllNodeTags() {
			if !ast.HasStruct(tag) {
				continue
			}
			t := reflect.TypeOf(ast.NewNode(tag))
			if _, ok := m[t]; !ok {
				m[t] = tag
			}
		}
		return m
	}()
)

// constFields lists the A_Const payload keys and the leaf kind each holds.
var constFields = []struct {
	key string
	tag ast.NodeTag
}{
	{"ival", ast.T_Integer},
	{"fval", ast.T_Float},
	{"boolval", ast.T_Boolean},
	{"sval", ast.T_String},
	{"bsval", ast.T_BitString},
}

// charCodes resolves char fields that libpg_query writes by a symbolic name.
var charCodes = map[string]byte{
	"PARTITION_STRATEGY_LIST":  'l',
	"PARTITION_STRATEGY_RANGE": 'r',
	"PARTITION_STRATEGY_HASH":  'h',
}

// DecodeNode decodes one wrapped node, an object with a single key naming
// the node kind. An empty object is a NULL entry and decodes to nil.
func DecodeNode(v any) (ast.Node, error) {
	m, ok := v.(map[string]any)
	if ok && len(m) == 0 {
		return nil, nil
	}
	if !ok || len(m) != 1 {
		return nil, decodeError("expected an object with a single node kind key, got %T", v)
	}
	for kind, body := range m {
		return decodeKind(kind, body)
	}
	return nil, decodeError("empty node")
}

func decodeKind(kind string, body any) (ast.Node, error) {
	fields, err := objectFields(kind, body)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "List":
		items, _ := fields["items"].([]any)
		return decodeList(items)
	case "A_Const":
		return decodeAConst(fields)
	}

	tag, ok := ast.LookupNodeTag(kind)
	if !ok {
		return nil, decodeError("unknown node kind %q", kind)
	}
	if !ast.HasStruct(tag) {
		raw := ast.NewRawNode(tag, fields)
		if err := decodeLocation(raw, fields); err != nil {
			return nil, err
		}
		return raw, nil
	}
	n := ast.NewNode(tag)
	if err := decodeInto(n, fields); err != nil {
		return nil, err
	}
	return n, nil
}

func objectFields(kind string, body any) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}
	fields, ok := body.(map[string]any)
	if !ok {
		return nil, decodeError("%s: expected an object, got %T", kind, body)
	}
	return fields, nil
}

func decodeList(items []any) (*ast.NodeList, error) {
	list := ast.NewNodeList()
	for i, item := range items {
		n, err := DecodeNode(item)
		if err != nil {
			return nil, decodeError("list item %d: %v", i, err)
		}
		list.Append(n)
	}
	return list, nil
}

func decodeAConst(fields map[string]any) (ast.Node, error) {
	c := ast.NewNode(ast.T_A_Const).(*ast.A_Const)
	if err := decodeLocation(c, fields); err != nil {
		return nil, err
	}
	if isnull, ok := fields["isnull"].(bool); ok && isnull {
		c.Isnull = true
		return c, nil
	}
	for _, f := range constFields {
		body, ok := fields[f.key]
		if !ok {
			continue
		}
		val, err := decodeKind(f.tag.String(), body)
		if err != nil {
			return nil, err
		}
		c.Val = val
		return c, nil
	}
	return nil, decodeError("A_Const: no value")
}

func decodeLocation(n ast.Node, fields map[string]any) error {
	loc, ok := fields["location"]
	if !ok {
		return nil
	}
	var v int
	if err := mapstructure.Decode(loc, &v); err != nil {
		return decodeError("location: %v", err)
	}
	ast.SetLocation(n, v)
	return nil
}

// decodeInto fills the node struct n from its JSON fields. A string
// "location" is a node field (CREATE TABLESPACE ... LOCATION), not the source
// offset, and is decoded without the embedded BaseNode.
func decodeInto(n ast.Node, fields map[string]any) error {
	dir, isDir := fields["location"].(string)
	if isDir {
		fields = maps.Clone(fields)
		delete(fields, "location")
	}
	if err := decodeFields(n, fields, true); err != nil {
		return err
	}
	if isDir {
		return decodeFields(n, map[string]any{"location": dir}, false)
	}
	return nil
}

func decodeFields(n ast.Node, fields map[string]any, squash bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHook,
		Result:     n,
		TagName:    "json",
		Squash:     squash,
	})
	if err != nil {
		return decodeError("%v", err)
	}
	if err := dec.Decode(fields); err != nil {
		return decodeError("%s: %v", n.NodeTag(), err)
	}
	return nil
}

// decodeHook converts the JSON shapes that mapstructure cannot map by
// itself: wrapped nodes, node lists, bare typed nodes, enums and chars.
func decodeHook(_, to reflect.Type, data any) (any, error) {
	switch {
	case to == nodeType:
		return DecodeNode(data)
	case to == nodeListType:
		items, ok := data.([]any)
		if !ok {
			return data, nil
		}
		return decodeList(items)
	case to.Kind() == reflect.Ptr:
		fields, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}
		tag, ok := tagsByType[to]
		if !ok {
			return data, nil
		}
		n := ast.NewNode(tag)
		if err := decodeInto(n, fields); err != nil {
			return nil, err
		}
		return n, nil
	case to.Kind() == reflect.Int && to.PkgPath() == astPkgPath && ast.IsEnumType(to.Name()):
		name, ok := data.(string)
		if !ok {
			return data, nil
		}
		v, ok := ast.LookupEnum(to.Name(), name)
		if !ok {
			return nil, decodeError("unknown %s value %q", to.Name(), name)
		}
		return v, nil
	case to.Kind() == reflect.Uint8:
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		switch len(s) {
		case 0:
			return uint8(0), nil
		case 1:
			return s[0], nil
		}
		if c, ok := charCodes[s]; ok {
			return c, nil
		}
		return nil, decodeError("invalid char value %q", s)
	}
	return data, nil
}
