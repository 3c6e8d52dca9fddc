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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeEveryTag(t *testing.T) {
	for _, tag := range AllNodeTags() {
		n := NewNode(tag)
		require.NotNil(t, n, tag.String())
		assert.Equal(t, tag, n.NodeTag(), tag.String())
		assert.Equal(t, -1, n.Location(), tag.String())

		_, raw := n.(*RawNode)
		assert.Equal(t, HasStruct(tag), !raw, tag.String())
	}
}

func TestLookupNodeTag(t *testing.T) {
	for _, tag := range AllNodeTags() {
		got, ok := LookupNodeTag(tag.String())
		require.True(t, ok, tag.String())
		assert.Equal(t, tag, got)
	}

	_, ok := LookupNodeTag("NoSuchNode")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", NodeTag(-1).String())
}

func TestLookupEnum(t *testing.T) {
	v, ok := LookupEnum("SortByDir", "SORTBY_DESC")
	require.True(t, ok)
	assert.Equal(t, int(SORTBY_DESC), v)
	assert.Equal(t, "SORTBY_DESC", SortByDir(v).String())

	v, ok = LookupEnum("PartitionStrategy", "PARTITION_STRATEGY_HASH")
	require.True(t, ok)
	assert.Equal(t, PARTITION_STRATEGY_HASH, PartitionStrategy(v))

	_, ok = LookupEnum("SortByDir", "SORTBY_SIDEWAYS")
	assert.False(t, ok)
	_, ok = LookupEnum("NoSuchEnum", "X")
	assert.False(t, ok)

	assert.True(t, IsEnumType("SetOperation"))
	assert.False(t, IsEnumType("RangeVar"))
	assert.Equal(t, "Unknown(99)", SetOperation(99).String())
}

func TestConstructors(t *testing.T) {
	rv := NewRangeVar("s", "t")
	assert.Equal(t, T_RangeVar, rv.NodeTag())
	assert.True(t, rv.Inh)
	assert.Equal(t, "s", rv.Schemaname)

	a := NewAlias("u", "x", "y")
	assert.Equal(t, "u", a.Aliasname)
	assert.Equal(t, 2, a.Colnames.Len())

	var nilList *NodeList
	assert.Equal(t, 0, nilList.Len())

	l := NewNodeList()
	l.Append(rv)
	assert.Equal(t, 1, l.Len())

	SetLocation(rv, 7)
	assert.Equal(t, 7, rv.Location())
	assert.Equal(t, "RangeVar@7", rv.BaseNode.String())

	assert.Equal(t, 1<<YEAR, IntervalMask(YEAR))
}
