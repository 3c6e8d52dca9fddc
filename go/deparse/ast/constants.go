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

package ast

// Window frame option bits.
// Ported from postgres/src/include/nodes/parsenodes.h:588-611
const (
	FRAMEOPTION_NONDEFAULT                = 0x00001
	FRAMEOPTION_RANGE                     = 0x00002
	FRAMEOPTION_ROWS                      = 0x00004
	FRAMEOPTION_GROUPS                    = 0x00008
	FRAMEOPTION_BETWEEN                   = 0x00010
	FRAMEOPTION_START_UNBOUNDED_PRECEDING = 0x00020
	FRAMEOPTION_END_UNBOUNDED_PRECEDING   = 0x00040
	FRAMEOPTION_START_UNBOUNDED_FOLLOWING = 0x00080
	FRAMEOPTION_END_UNBOUNDED_FOLLOWING   = 0x00100
	FRAMEOPTION_START_CURRENT_ROW         = 0x00200
	FRAMEOPTION_END_CURRENT_ROW           = 0x00400
	FRAMEOPTION_START_OFFSET_PRECEDING    = 0x00800
	FRAMEOPTION_END_OFFSET_PRECEDING      = 0x01000
	FRAMEOPTION_START_OFFSET_FOLLOWING    = 0x02000
	FRAMEOPTION_END_OFFSET_FOLLOWING      = 0x04000
	FRAMEOPTION_EXCLUDE_CURRENT_ROW       = 0x08000
	FRAMEOPTION_EXCLUDE_GROUP             = 0x10000
	FRAMEOPTION_EXCLUDE_TIES              = 0x20000

	FRAMEOPTION_DEFAULTS = FRAMEOPTION_RANGE | FRAMEOPTION_START_UNBOUNDED_PRECEDING | FRAMEOPTION_END_CURRENT_ROW
)

// Trigger type bits.
// Ported from postgres/src/include/catalog/pg_trigger.h:94-100
const (
	TRIGGER_TYPE_ROW      = 1 << 0
	TRIGGER_TYPE_BEFORE   = 1 << 1
	TRIGGER_TYPE_INSERT   = 1 << 2
	TRIGGER_TYPE_DELETE   = 1 << 3
	TRIGGER_TYPE_UPDATE   = 1 << 4
	TRIGGER_TYPE_TRUNCATE = 1 << 5
	TRIGGER_TYPE_INSTEAD  = 1 << 6
)

// Interval field numbers.
// Ported from postgres/src/include/utils/datetime.h:91-102
const (
	MONTH  = 1
	YEAR   = 2
	DAY    = 3
	HOUR   = 10
	MINUTE = 11
	SECOND = 12
)

// IntervalMask returns the bit mask for an interval field.
// Ported from postgres/src/include/utils/timestamp.h:73
func IntervalMask(field int) int {
	return 1 << field
}

// Interval typmod masks.
// Ported from postgres/src/include/utils/timestamp.h:76-82
const (
	INTERVAL_FULL_RANGE     = 0x7FFF
	INTERVAL_FULL_PRECISION = 0xFFFF

	INTERVAL_MASK_MONTH  = 1 << MONTH
	INTERVAL_MASK_YEAR   = 1 << YEAR
	INTERVAL_MASK_DAY    = 1 << DAY
	INTERVAL_MASK_HOUR   = 1 << HOUR
	INTERVAL_MASK_MINUTE = 1 << MINUTE
	INTERVAL_MASK_SECOND = 1 << SECOND
)

// TableLikeOption bits for CREATE TABLE ... (LIKE ...).
// Ported from postgres/src/include/nodes/parsenodes.h:752-763
const (
	CREATE_TABLE_LIKE_COMMENTS    = 1 << 0
	CREATE_TABLE_LIKE_COMPRESSION = 1 << 1
	CREATE_TABLE_LIKE_CONSTRAINTS = 1 << 2
	CREATE_TABLE_LIKE_DEFAULTS    = 1 << 3
	CREATE_TABLE_LIKE_GENERATED   = 1 << 4
	CREATE_TABLE_LIKE_IDENTITY    = 1 << 5
	CREATE_TABLE_LIKE_INDEXES     = 1 << 6
	CREATE_TABLE_LIKE_STATISTICS  = 1 << 7
	CREATE_TABLE_LIKE_STORAGE     = 1 << 8
	CREATE_TABLE_LIKE_ALL         = 0x7FFFFFFF
)

// Lock modes accepted by LOCK TABLE.
// Ported from postgres/src/include/storage/lockdefs.h:36-48
const (
	NoLock                   = 0
	AccessShareLock          = 1
	RowShareLock             = 2
	RowExclusiveLock         = 3
	ShareUpdateExclusiveLock = 4
	ShareLock                = 5
	ShareRowExclusiveLock    = 6
	ExclusiveLock            = 7
	AccessExclusiveLock      = 8
)

// Relation persistence codes.
// Ported from postgres/src/include/catalog/pg_class.h:170-172
const (
	RELPERSISTENCE_PERMANENT byte = 'p'
	RELPERSISTENCE_UNLOGGED  byte = 'u'
	RELPERSISTENCE_TEMP      byte = 't'
)

// Identity generation codes.
// Ported from postgres/src/include/catalog/pg_attribute.h:233-234
const (
	ATTRIBUTE_IDENTITY_ALWAYS     byte = 'a'
	ATTRIBUTE_IDENTITY_BY_DEFAULT byte = 'd'
)

// Foreign key match types and referential actions.
// Ported from postgres/src/include/nodes/parsenodes.h:2665-2674
const (
	FKCONSTR_MATCH_FULL    byte = 'f'
	FKCONSTR_MATCH_PARTIAL byte = 'p'
	FKCONSTR_MATCH_SIMPLE  byte = 's'

	FKCONSTR_ACTION_NOACTION   byte = 'a'
	FKCONSTR_ACTION_RESTRICT   byte = 'r'
	FKCONSTR_ACTION_CASCADE    byte = 'c'
	FKCONSTR_ACTION_SETNULL    byte = 'n'
	FKCONSTR_ACTION_SETDEFAULT byte = 'd'
)

// Replica identity codes.
// Ported from postgres/src/include/catalog/pg_class.h:176-188
const (
	REPLICA_IDENTITY_DEFAULT byte = 'd'
	REPLICA_IDENTITY_NOTHING byte = 'n'
	REPLICA_IDENTITY_FULL    byte = 'f'
	REPLICA_IDENTITY_INDEX   byte = 'i'
)

// Partition bound strategy codes stored in PartitionBoundSpec.
// Ported from postgres/src/include/nodes/parsenodes.h:872-877
const (
	PARTITION_STRATEGY_CODE_LIST  byte = 'l'
	PARTITION_STRATEGY_CODE_RANGE byte = 'r'
	PARTITION_STRATEGY_CODE_HASH  byte = 'h'
)

// XML standalone values used by xmlroot().
// Ported from postgres/src/include/utils/xml.h:42-48
const (
	XML_STANDALONE_YES      = 0
	XML_STANDALONE_NO       = 1
	XML_STANDALONE_NO_VALUE = 2
	XML_STANDALONE_OMITTED  = 3
)
