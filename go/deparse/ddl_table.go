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
	"strconv"
	"strings"

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// ============================================================================
// CREATE TABLE
// ============================================================================

// writeCreateStmt writes CREATE TABLE. Under ContextForeignTable it writes
// the shared part of CREATE FOREIGN TABLE.
func writeCreateStmt(b *buffer, n *ast.CreateStmt, ctx Context) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	b.write("CREATE ")
	if ctx == ContextForeignTable {
		b.write("FOREIGN ")
	}
	if p := persistenceKeyword(n.Relation.Relpersistence); p != "" {
		b.write(p, " ")
	}
	b.write("TABLE ")
	if n.IfNotExists {
		b.write("IF NOT EXISTS ")
	}
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}

	if n.OfTypename != nil {
		b.write(" OF ")
		if err := writeTypeName(b, n.OfTypename); err != nil {
			return err
		}
	}
	if n.Partbound != nil {
		parent, err := nodeAs[*ast.RangeVar](firstOf(listItems(n.InhRelations)), "inhRelations")
		if err != nil {
			return err
		}
		b.write(" PARTITION OF ")
		if err := writeRangeVar(b, parent, ContextNone); err != nil {
			return err
		}
	}

	switch {
	case n.TableElts.Len() > 0:
		b.write(" (")
		if err := b.join(n.TableElts, ", ", func(elt ast.Node) error {
			return writeTableElement(b, elt)
		}); err != nil {
			return err
		}
		b.writeByte(')')
	case n.Partbound == nil && n.OfTypename == nil:
		b.write(" ()")
	}

	if n.Partbound != nil {
		b.writeByte(' ')
		if err := writePartitionBoundSpec(b, n.Partbound); err != nil {
			return err
		}
	} else if n.InhRelations.Len() > 0 {
		b.write(" INHERITS (")
		if err := writeRelationList(b, n.InhRelations); err != nil {
			return err
		}
		b.writeByte(')')
	}

	if n.Partspec != nil {
		b.writeByte(' ')
		if err := writePartitionSpec(b, n.Partspec); err != nil {
			return err
		}
	}
	if n.AccessMethod != "" {
		b.write(" USING ")
		b.ident(n.AccessMethod)
	}
	if err := writeOptWith(b, n.Options); err != nil {
		return err
	}
	if err := writeOnCommit(b, n.Oncommit); err != nil {
		return err
	}
	if n.Tablespacename != "" {
		b.write(" TABLESPACE ")
		b.ident(n.Tablespacename)
	}
	return nil
}

func writeCreateForeignTableStmt(b *buffer, n *ast.CreateForeignTableStmt) error {
	if err := writeCreateStmt(b, &n.Base, ContextForeignTable); err != nil {
		return err
	}
	if n.Servername == "" {
		return errMissing("servername")
	}
	b.write(" SERVER ")
	b.ident(n.Servername)
	if n.Options.Len() > 0 {
		b.writeByte(' ')
		return writeCreateGenericOptions(b, n.Options)
	}
	return nil
}

func writeTableElement(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case *ast.ColumnDef:
		return writeColumnDef(b, v)
	case *ast.Constraint:
		return writeConstraint(b, v)
	case *ast.TableLikeClause:
		return writeTableLikeClause(b, v)
	case nil:
		return errMissing("tableElts")
	}
	return errUnexpectedNode(n)
}

// writeColumnDef writes a column definition. The name is absent in ALTER
// COLUMN ... TYPE and the type is absent in typed and partition tables.
func writeColumnDef(b *buffer, n *ast.ColumnDef) error {
	if n.Colname != "" {
		b.ident(n.Colname)
	}
	if n.TypeName != nil {
		b.space()
		if err := writeTypeName(b, n.TypeName); err != nil {
			return err
		}
	}
	if n.StorageName != "" {
		b.write(" STORAGE ")
		b.ident(n.StorageName)
	}
	if n.Compression != "" {
		b.write(" COMPRESSION ")
		b.ident(n.Compression)
	}
	if n.Fdwoptions.Len() > 0 {
		b.writeByte(' ')
		if err := writeCreateGenericOptions(b, n.Fdwoptions); err != nil {
			return err
		}
	}
	if n.CollClause != nil {
		b.writeByte(' ')
		if err := writeCollateClause(b, n.CollClause); err != nil {
			return err
		}
	}
	if err := eachAs(n.Constraints, func(_ int, c *ast.Constraint) error {
		b.space()
		return writeConstraint(b, c)
	}); err != nil {
		return err
	}
	if n.RawDefault != nil {
		b.write(" USING ")
		return buildExpr(b, n.RawDefault)
	}
	return nil
}

// ============================================================================
// Constraints
// ============================================================================

var fkActions = map[byte]string{
	ast.FKCONSTR_ACTION_RESTRICT:   "RESTRICT",
	ast.FKCONSTR_ACTION_CASCADE:    "CASCADE",
	ast.FKCONSTR_ACTION_SETNULL:    "SET NULL",
	ast.FKCONSTR_ACTION_SETDEFAULT: "SET DEFAULT",
}

var constraintAttributes = map[ast.ConstrType]string{
	ast.CONSTR_ATTR_DEFERRABLE:     "DEFERRABLE",
	ast.CONSTR_ATTR_NOT_DEFERRABLE: "NOT DEFERRABLE",
	ast.CONSTR_ATTR_DEFERRED:       "INITIALLY DEFERRED",
	ast.CONSTR_ATTR_IMMEDIATE:      "INITIALLY IMMEDIATE",
}

func writeConstraint(b *buffer, n *ast.Constraint) error {
	if n.Conname != "" {
		b.write("CONSTRAINT ")
		b.ident(n.Conname)
		b.writeByte(' ')
	}

	if attr, ok := constraintAttributes[n.Contype]; ok {
		b.write(attr)
		return nil
	}

	switch n.Contype {
	case ast.CONSTR_NULL:
		b.write("NULL")
	case ast.CONSTR_NOTNULL:
		b.write("NOT NULL")
	case ast.CONSTR_DEFAULT:
		b.write("DEFAULT ")
		if err := writeBExpr(b, n.RawExpr); err != nil {
			return err
		}
	case ast.CONSTR_IDENTITY:
		switch n.GeneratedWhen {
		case ast.ATTRIBUTE_IDENTITY_ALWAYS:
			b.write("GENERATED ALWAYS AS IDENTITY")
		case ast.ATTRIBUTE_IDENTITY_BY_DEFAULT:
			b.write("GENERATED BY DEFAULT AS IDENTITY")
		default:
			return errUnsupported("identity generated_when %q", n.GeneratedWhen)
		}
		if n.Options.Len() > 0 {
			b.write(" (")
			if err := writeSeqOptList(b, n.Options); err != nil {
				return err
			}
			b.writeByte(')')
		}
	case ast.CONSTR_GENERATED:
		if n.GeneratedWhen != ast.ATTRIBUTE_IDENTITY_ALWAYS {
			return errUnsupported("generated column generated_when %q", n.GeneratedWhen)
		}
		b.write("GENERATED ALWAYS AS (")
		if err := buildExpr(b, n.RawExpr); err != nil {
			return err
		}
		b.write(") STORED")
	case ast.CONSTR_CHECK:
		b.write("CHECK (")
		if err := buildExpr(b, n.RawExpr); err != nil {
			return err
		}
		b.writeByte(')')
	case ast.CONSTR_PRIMARY:
		b.write("PRIMARY KEY")
		if err := writeParenColumnList(b, n.Keys); err != nil {
			return err
		}
	case ast.CONSTR_UNIQUE:
		b.write("UNIQUE")
		if n.NullsNotDistinct {
			b.write(" NULLS NOT DISTINCT")
		}
		if err := writeParenColumnList(b, n.Keys); err != nil {
			return err
		}
	case ast.CONSTR_EXCLUSION:
		b.write("EXCLUDE")
		if n.AccessMethod != "" && n.AccessMethod != "btree" {
			b.write(" USING ")
			b.ident(n.AccessMethod)
		}
		b.write(" (")
		if err := joinAs(b, n.Exclusions, ", ", func(pair *ast.NodeList) error {
			return writeExclusionElem(b, pair)
		}); err != nil {
			return err
		}
		b.writeByte(')')
	case ast.CONSTR_FOREIGN:
		if n.FkAttrs.Len() > 0 {
			b.write("FOREIGN KEY (")
			if err := writeColumnList(b, n.FkAttrs); err != nil {
				return err
			}
			b.write(") ")
		}
		if err := writeReferences(b, n); err != nil {
			return err
		}
	default:
		return errUnreachable()
	}

	if n.Including.Len() > 0 {
		b.write(" INCLUDE (")
		if err := writeColumnList(b, n.Including); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.Contype != ast.CONSTR_IDENTITY {
		if err := writeOptWith(b, n.Options); err != nil {
			return err
		}
	}
	if n.Indexname != "" {
		b.write(" USING INDEX ")
		b.ident(n.Indexname)
	}
	if n.Indexspace != "" {
		b.write(" USING INDEX TABLESPACE ")
		b.ident(n.Indexspace)
	}
	if n.Contype == ast.CONSTR_EXCLUSION && n.WhereClause != nil {
		b.write(" WHERE (")
		if err := buildExpr(b, n.WhereClause); err != nil {
			return err
		}
		b.writeByte(')')
	}

	if n.Deferrable {
		b.write(" DEFERRABLE")
	}
	if n.Initdeferred {
		b.write(" INITIALLY DEFERRED")
	}
	if n.IsNoInherit {
		b.write(" NO INHERIT")
	}
	if n.SkipValidation {
		b.write(" NOT VALID")
	}
	return nil
}

// writeBExpr writes an expression in a position that only takes a b_expr,
// such as a column default.
func writeBExpr(b *buffer, n ast.Node) error {
	switch v := n.(type) {
	case nil:
		return errMissing("raw_expr")
	case *ast.TypeCast:
		return buildExpr(b, n)
	case *ast.A_Expr:
		if v.Kind == ast.AEXPR_OP {
			return buildExpr(b, n)
		}
	}
	return writeCExpr(b, n)
}

// writeExclusionElem writes "elem WITH op" from an (IndexElem, operator) pair.
func writeExclusionElem(b *buffer, pair *ast.NodeList) error {
	if pair.Len() != 2 {
		return errUnsupported("exclusion element with %d items", pair.Len())
	}
	elem, err := nodeAs[*ast.IndexElem](pair.Items[0], "exclusions")
	if err != nil {
		return err
	}
	if err := writeIndexElem(b, elem); err != nil {
		return err
	}
	op, err := nodeAs[*ast.NodeList](pair.Items[1], "exclusions")
	if err != nil {
		return err
	}
	b.write(" WITH ")
	return writeAnyOperator(b, op.Items)
}

func writeReferences(b *buffer, n *ast.Constraint) error {
	if n.Pktable == nil {
		return errMissing("pktable")
	}
	b.write("REFERENCES ")
	if err := writeRangeVar(b, n.Pktable, ContextNone); err != nil {
		return err
	}
	if err := writeParenColumnList(b, n.PkAttrs); err != nil {
		return err
	}

	switch n.FkMatchtype {
	case 0, ast.FKCONSTR_MATCH_SIMPLE:
	case ast.FKCONSTR_MATCH_FULL:
		b.write(" MATCH FULL")
	case ast.FKCONSTR_MATCH_PARTIAL:
		return errUnsupported("MATCH PARTIAL")
	default:
		return errUnreachable()
	}

	if action, ok := fkActions[n.FkUpdAction]; ok {
		b.write(" ON UPDATE ", action)
	}
	if action, ok := fkActions[n.FkDelAction]; ok {
		b.write(" ON DELETE ", action)
		if err := writeParenColumnList(b, n.FkDelSetCols); err != nil {
			return err
		}
	}
	return nil
}

var tableLikeOptions = []struct {
	bit  int
	text string
}{
	{ast.CREATE_TABLE_LIKE_COMMENTS, "COMMENTS"},
	{ast.CREATE_TABLE_LIKE_COMPRESSION, "COMPRESSION"},
	{ast.CREATE_TABLE_LIKE_CONSTRAINTS, "CONSTRAINTS"},
	{ast.CREATE_TABLE_LIKE_DEFAULTS, "DEFAULTS"},
	{ast.CREATE_TABLE_LIKE_IDENTITY, "IDENTITY"},
	{ast.CREATE_TABLE_LIKE_GENERATED, "GENERATED"},
	{ast.CREATE_TABLE_LIKE_INDEXES, "INDEXES"},
	{ast.CREATE_TABLE_LIKE_STATISTICS, "STATISTICS"},
	{ast.CREATE_TABLE_LIKE_STORAGE, "STORAGE"},
}

func writeTableLikeClause(b *buffer, n *ast.TableLikeClause) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	b.write("LIKE ")
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	if n.Options == ast.CREATE_TABLE_LIKE_ALL {
		b.write(" INCLUDING ALL")
		return nil
	}
	for _, opt := range tableLikeOptions {
		if n.Options&opt.bit != 0 {
			b.write(" INCLUDING ", opt.text)
		}
	}
	return nil
}

// ============================================================================
// Sequence options
// ============================================================================

func writeSeqOptList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, " ", func(d *ast.DefElem) error {
		return writeSeqOptElem(b, d)
	})
}

func writeSeqOptElem(b *buffer, d *ast.DefElem) error {
	switch d.Defname {
	case "as":
		t, err := nodeAs[*ast.TypeName](d.Arg, "as")
		if err != nil {
			return err
		}
		b.write("AS ")
		return writeTypeName(b, t)
	case "cache":
		b.write("CACHE ")
		return writeNumericOnly(b, d.Arg)
	case "cycle":
		on, err := flagVal(d.Arg, "cycle")
		if err != nil {
			return err
		}
		if on {
			b.write("CYCLE")
		} else {
			b.write("NO CYCLE")
		}
	case "increment":
		b.write("INCREMENT BY ")
		return writeNumericOnly(b, d.Arg)
	case "maxvalue", "minvalue":
		if d.Arg == nil {
			b.write("NO ")
			b.write(strings.ToUpper(d.Defname))
			return nil
		}
		b.write(strings.ToUpper(d.Defname), " ")
		return writeNumericOnly(b, d.Arg)
	case "owned_by":
		name, err := nodeAs[*ast.NodeList](d.Arg, "owned_by")
		if err != nil {
			return err
		}
		b.write("OWNED BY ")
		return writeQualifiedName(b, name, "owned_by")
	case "sequence_name":
		name, err := nodeAs[*ast.NodeList](d.Arg, "sequence_name")
		if err != nil {
			return err
		}
		b.write("SEQUENCE NAME ")
		return writeQualifiedName(b, name, "sequence_name")
	case "start":
		b.write("START WITH ")
		return writeNumericOnly(b, d.Arg)
	case "restart":
		b.write("RESTART")
		if d.Arg != nil {
			b.write(" WITH ")
			return writeNumericOnly(b, d.Arg)
		}
	default:
		return errUnsupported("sequence option %s", d.Defname)
	}
	return nil
}

// writeIdentityOptList writes the options of ALTER COLUMN ... SET
// GENERATED / RESTART / SET sequence_option.
func writeIdentityOptList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, " ", func(d *ast.DefElem) error {
		switch d.Defname {
		case "restart":
			return writeSeqOptElem(b, d)
		case "generated":
			code, err := intVal(d.Arg, "generated")
			if err != nil {
				return err
			}
			switch byte(code) {
			case ast.ATTRIBUTE_IDENTITY_ALWAYS:
				b.write("SET GENERATED ALWAYS")
			case ast.ATTRIBUTE_IDENTITY_BY_DEFAULT:
				b.write("SET GENERATED BY DEFAULT")
			default:
				return errUnsupported("identity generated %d", code)
			}
			return nil
		}
		b.write("SET ")
		return writeSeqOptElem(b, d)
	})
}

// ============================================================================
// Indexes
// ============================================================================

// writeIndexElem writes an index column. Function-like expressions are
// written bare and anything else in parentheses.
func writeIndexElem(b *buffer, n *ast.IndexElem) error {
	switch {
	case n.Name != "":
		b.ident(n.Name)
	case n.Expr != nil:
		if err := writeIndexExpr(b, n.Expr); err != nil {
			return err
		}
	default:
		return errMissing("name")
	}

	if n.Collation.Len() > 0 {
		b.write(" COLLATE ")
		if err := writeAnyName(b, n.Collation.Items); err != nil {
			return err
		}
	}
	if n.Opclass.Len() > 0 {
		b.writeByte(' ')
		if err := writeAnyName(b, n.Opclass.Items); err != nil {
			return err
		}
		if n.Opclassopts.Len() > 0 {
			b.writeByte(' ')
			if err := writeRelOptions(b, n.Opclassopts); err != nil {
				return err
			}
		}
	}
	switch n.Ordering {
	case ast.SORTBY_DEFAULT:
	case ast.SORTBY_ASC:
		b.write(" ASC")
	case ast.SORTBY_DESC:
		b.write(" DESC")
	default:
		return errUnsupported("index ordering %s", n.Ordering)
	}
	switch n.NullsOrdering {
	case ast.SORTBY_NULLS_DEFAULT:
	case ast.SORTBY_NULLS_FIRST:
		b.write(" NULLS FIRST")
	case ast.SORTBY_NULLS_LAST:
		b.write(" NULLS LAST")
	default:
		return errUnreachable()
	}
	return nil
}

func writeIndexExpr(b *buffer, n ast.Node) error {
	switch n.(type) {
	case *ast.FuncCall, *ast.SQLValueFunction, *ast.CoalesceExpr, *ast.MinMaxExpr,
		*ast.XmlExpr, *ast.XmlSerialize:
		return buildExpr(b, n)
	}
	b.writeByte('(')
	if err := buildExpr(b, n); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeIndexStmt(b *buffer, n *ast.IndexStmt) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	b.write("CREATE ")
	if n.Unique {
		b.write("UNIQUE ")
	}
	b.write("INDEX ")
	if n.Concurrent {
		b.write("CONCURRENTLY ")
	}
	if n.IfNotExists {
		if n.Idxname == "" {
			return errMissing("idxname")
		}
		b.write("IF NOT EXISTS ")
	}
	if n.Idxname != "" {
		b.ident(n.Idxname)
		b.writeByte(' ')
	}
	b.write("ON ")
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	if n.AccessMethod != "" && n.AccessMethod != "btree" {
		b.write(" USING ")
		b.ident(n.AccessMethod)
	}
	b.write(" (")
	if err := joinAs(b, n.IndexParams, ", ", func(e *ast.IndexElem) error {
		return writeIndexElem(b, e)
	}); err != nil {
		return err
	}
	b.writeByte(')')

	if n.IndexIncludingParams.Len() > 0 {
		b.write(" INCLUDE (")
		if err := joinAs(b, n.IndexIncludingParams, ", ", func(e *ast.IndexElem) error {
			return writeIndexElem(b, e)
		}); err != nil {
			return err
		}
		b.writeByte(')')
	}
	if n.NullsNotDistinct {
		b.write(" NULLS NOT DISTINCT")
	}
	if err := writeOptWith(b, n.Options); err != nil {
		return err
	}
	if n.TableSpace != "" {
		b.write(" TABLESPACE ")
		b.ident(n.TableSpace)
	}
	return writeWhereClause(b, n.WhereClause)
}

// ============================================================================
// Partitioning
// ============================================================================

var partitionStrategies = map[ast.PartitionStrategy]string{
	ast.PARTITION_STRATEGY_LIST:  "LIST",
	ast.PARTITION_STRATEGY_RANGE: "RANGE",
	ast.PARTITION_STRATEGY_HASH:  "HASH",
}

func writePartitionSpec(b *buffer, n *ast.PartitionSpec) error {
	strategy, ok := partitionStrategies[n.Strategy]
	if !ok {
		return errUnreachable()
	}
	b.write("PARTITION BY ", strategy, " (")
	if err := joinAs(b, n.PartParams, ", ", func(e *ast.PartitionElem) error {
		return writePartitionElem(b, e)
	}); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writePartitionElem(b *buffer, n *ast.PartitionElem) error {
	switch {
	case n.Name != "":
		b.ident(n.Name)
	case n.Expr != nil:
		if err := writeIndexExpr(b, n.Expr); err != nil {
			return err
		}
	default:
		return errMissing("name")
	}
	if n.Collation.Len() > 0 {
		b.write(" COLLATE ")
		if err := writeAnyName(b, n.Collation.Items); err != nil {
			return err
		}
	}
	if n.Opclass.Len() > 0 {
		b.writeByte(' ')
		return writeAnyName(b, n.Opclass.Items)
	}
	return nil
}

func writePartitionBoundSpec(b *buffer, n *ast.PartitionBoundSpec) error {
	if n.IsDefault {
		b.write("DEFAULT")
		return nil
	}
	b.write("FOR VALUES ")
	switch n.Strategy {
	case ast.PARTITION_STRATEGY_CODE_HASH:
		b.write("WITH (MODULUS ", strconv.Itoa(n.Modulus), ", REMAINDER ", strconv.Itoa(n.Remainder), ")")
	case ast.PARTITION_STRATEGY_CODE_LIST:
		b.write("IN (")
		if err := writeExprList(b, n.Listdatums); err != nil {
			return err
		}
		b.writeByte(')')
	case ast.PARTITION_STRATEGY_CODE_RANGE:
		b.write("FROM (")
		if err := writeExprList(b, n.Lowerdatums); err != nil {
			return err
		}
		b.write(") TO (")
		if err := writeExprList(b, n.Upperdatums); err != nil {
			return err
		}
		b.writeByte(')')
	case 0:
		return errMissing("strategy")
	default:
		return errUnreachable()
	}
	return nil
}

func writePartitionCmd(b *buffer, n *ast.PartitionCmd) error {
	if n.Name == nil {
		return errMissing("name")
	}
	if err := writeRangeVar(b, n.Name, ContextNone); err != nil {
		return err
	}
	if n.Bound != nil {
		b.writeByte(' ')
		if err := writePartitionBoundSpec(b, n.Bound); err != nil {
			return err
		}
	}
	if n.Concurrent {
		b.write(" CONCURRENTLY")
	}
	return nil
}

// ============================================================================
// ALTER TABLE
// ============================================================================

var alterTableKinds = map[ast.ObjectType]string{
	ast.OBJECT_TABLE:         "TABLE",
	ast.OBJECT_FOREIGN_TABLE: "FOREIGN TABLE",
	ast.OBJECT_INDEX:         "INDEX",
	ast.OBJECT_SEQUENCE:      "SEQUENCE",
	ast.OBJECT_VIEW:          "VIEW",
	ast.OBJECT_MATVIEW:       "MATERIALIZED VIEW",
	ast.OBJECT_TYPE:          "TYPE",
}

func writeAlterTableStmt(b *buffer, n *ast.AlterTableStmt) error {
	kind, ok := alterTableKinds[n.Objtype]
	if !ok {
		return errUnexpectedObject(n.Objtype)
	}
	if n.Relation == nil {
		return errMissing("relation")
	}
	ctx := ContextNone
	if n.Objtype == ast.OBJECT_TYPE {
		ctx = ContextAlterType
	}
	b.write("ALTER ", kind, " ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	if err := writeRangeVar(b, n.Relation, ctx); err != nil {
		return err
	}
	if n.Cmds.Len() == 0 {
		return errMissing("cmds")
	}
	b.writeByte(' ')
	return joinAs(b, n.Cmds, ", ", func(cmd *ast.AlterTableCmd) error {
		return writeAlterTableCmd(b, cmd, ctx)
	})
}

// alterCmdForm is the fixed text of an ALTER TABLE subcommand around the
// target name. column adds COLUMN, or ATTRIBUTE for composite types.
type alterCmdForm struct {
	prefix string
	column bool
	suffix string
}

var alterCmdForms = map[ast.AlterTableType]alterCmdForm{
	ast.AT_AddColumn:                 {"ADD", true, ""},
	ast.AT_DropNotNull:               {"ALTER", true, "DROP NOT NULL"},
	ast.AT_SetNotNull:                {"ALTER", true, "SET NOT NULL"},
	ast.AT_SetExpression:             {"ALTER", true, "SET EXPRESSION AS"},
	ast.AT_DropExpression:            {"ALTER", true, "DROP EXPRESSION"},
	ast.AT_SetStatistics:             {"ALTER", true, "SET STATISTICS"},
	ast.AT_SetOptions:                {"ALTER", true, "SET"},
	ast.AT_ResetOptions:              {"ALTER", true, "RESET"},
	ast.AT_SetStorage:                {"ALTER", true, "SET STORAGE"},
	ast.AT_SetCompression:            {"ALTER", true, "SET COMPRESSION"},
	ast.AT_DropColumn:                {"DROP", true, ""},
	ast.AT_AddConstraint:             {"ADD", false, ""},
	ast.AT_ValidateConstraint:        {"VALIDATE CONSTRAINT", false, ""},
	ast.AT_DropConstraint:            {"DROP CONSTRAINT", false, ""},
	ast.AT_AlterColumnType:           {"ALTER", true, "TYPE"},
	ast.AT_AlterColumnGenericOptions: {"ALTER", true, ""},
	ast.AT_ChangeOwner:               {"OWNER TO", false, ""},
	ast.AT_ClusterOn:                 {"CLUSTER ON", false, ""},
	ast.AT_DropCluster:               {"SET WITHOUT CLUSTER", false, ""},
	ast.AT_SetLogged:                 {"SET LOGGED", false, ""},
	ast.AT_SetUnLogged:               {"SET UNLOGGED", false, ""},
	ast.AT_DropOids:                  {"SET WITHOUT OIDS", false, ""},
	ast.AT_SetAccessMethod:           {"SET ACCESS METHOD", false, ""},
	ast.AT_SetTableSpace:             {"SET TABLESPACE", false, ""},
	ast.AT_SetRelOptions:             {"SET", false, ""},
	ast.AT_ResetRelOptions:           {"RESET", false, ""},
	ast.AT_EnableTrig:                {"ENABLE TRIGGER", false, ""},
	ast.AT_EnableAlwaysTrig:          {"ENABLE ALWAYS TRIGGER", false, ""},
	ast.AT_EnableReplicaTrig:         {"ENABLE REPLICA TRIGGER", false, ""},
	ast.AT_DisableTrig:               {"DISABLE TRIGGER", false, ""},
	ast.AT_EnableTrigAll:             {"ENABLE TRIGGER ALL", false, ""},
	ast.AT_DisableTrigAll:            {"DISABLE TRIGGER ALL", false, ""},
	ast.AT_EnableTrigUser:            {"ENABLE TRIGGER USER", false, ""},
	ast.AT_DisableTrigUser:           {"DISABLE TRIGGER USER", false, ""},
	ast.AT_EnableRule:                {"ENABLE RULE", false, ""},
	ast.AT_EnableAlwaysRule:          {"ENABLE ALWAYS RULE", false, ""},
	ast.AT_EnableReplicaRule:         {"ENABLE REPLICA RULE", false, ""},
	ast.AT_DisableRule:               {"DISABLE RULE", false, ""},
	ast.AT_AddInherit:                {"INHERIT", false, ""},
	ast.AT_DropInherit:               {"NO INHERIT", false, ""},
	ast.AT_AddOf:                     {"OF", false, ""},
	ast.AT_DropOf:                    {"NOT OF", false, ""},
	ast.AT_ReplicaIdentity:           {"REPLICA IDENTITY", false, ""},
	ast.AT_EnableRowSecurity:         {"ENABLE ROW LEVEL SECURITY", false, ""},
	ast.AT_DisableRowSecurity:        {"DISABLE ROW LEVEL SECURITY", false, ""},
	ast.AT_ForceRowSecurity:          {"FORCE ROW LEVEL SECURITY", false, ""},
	ast.AT_NoForceRowSecurity:        {"NO FORCE ROW LEVEL SECURITY", false, ""},
	ast.AT_GenericOptions:            {"", false, ""},
	ast.AT_AttachPartition:           {"ATTACH PARTITION", false, ""},
	ast.AT_DetachPartition:           {"DETACH PARTITION", false, ""},
	ast.AT_DetachPartitionFinalize:   {"DETACH PARTITION", false, ""},
	ast.AT_AddIdentity:               {"ALTER", true, "ADD"},
	ast.AT_SetIdentity:               {"ALTER", true, ""},
	ast.AT_DropIdentity:              {"ALTER", true, "DROP IDENTITY"},
}

func writeAlterTableCmd(b *buffer, n *ast.AlterTableCmd, ctx Context) error {
	form, ok := alterCmdForms[n.Subtype]
	switch {
	case n.Subtype == ast.AT_ColumnDefault:
		form = alterCmdForm{"ALTER", true, "DROP DEFAULT"}
		if n.Def != nil {
			form.suffix = "SET DEFAULT"
		}
	case n.Subtype == ast.AT_AlterConstraint:
		return writeAlterConstraint(b, n)
	case !ok:
		return errUnsupported("ALTER TABLE subcommand %s", n.Subtype)
	}

	b.write(form.prefix)
	if form.column {
		if ctx == ContextAlterType {
			b.write(" ATTRIBUTE")
		} else {
			b.write(" COLUMN")
		}
	}

	// DROP EXPRESSION and DROP IDENTITY take IF EXISTS after the action.
	trailingIfExists := n.Subtype == ast.AT_DropExpression || n.Subtype == ast.AT_DropIdentity
	if n.MissingOk && !trailingIfExists {
		if n.Subtype == ast.AT_AddColumn {
			b.keyword("IF NOT EXISTS")
		} else {
			b.keyword("IF EXISTS")
		}
	}

	switch {
	case n.Subtype == ast.AT_ChangeOwner:
		if n.Newowner == nil {
			return errMissing("newowner")
		}
		b.space()
		if err := writeRoleSpec(b, n.Newowner); err != nil {
			return err
		}
	case n.Name != "":
		b.space()
		b.ident(n.Name)
	case n.Num > 0:
		b.space()
		b.write(strconv.Itoa(n.Num))
	}
	if form.suffix != "" {
		b.keyword(form.suffix)
	}
	if n.MissingOk && trailingIfExists {
		b.write(" IF EXISTS")
	}

	if err := writeAlterTableCmdDef(b, n, ctx); err != nil {
		return err
	}
	if n.Subtype == ast.AT_DetachPartitionFinalize {
		b.write(" FINALIZE")
	}
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

func writeAlterTableCmdDef(b *buffer, n *ast.AlterTableCmd, ctx Context) error {
	switch n.Subtype {
	case ast.AT_ColumnDefault:
		if n.Def == nil {
			return nil
		}
		b.space()
		return buildExpr(b, n.Def)
	case ast.AT_SetExpression:
		b.write(" (")
		if err := buildExpr(b, n.Def); err != nil {
			return err
		}
		b.writeByte(')')
		return nil
	case ast.AT_SetStatistics:
		b.space()
		if n.Def == nil {
			b.write("DEFAULT")
			return nil
		}
		return writeSignedIConst(b, n.Def)
	case ast.AT_SetOptions, ast.AT_ResetOptions, ast.AT_SetRelOptions, ast.AT_ResetRelOptions:
		opts, err := nodeAs[*ast.NodeList](n.Def, "def")
		if err != nil {
			return err
		}
		b.space()
		return writeRelOptions(b, opts)
	case ast.AT_SetIdentity:
		opts, err := nodeAs[*ast.NodeList](n.Def, "def")
		if err != nil {
			return err
		}
		b.space()
		return writeIdentityOptList(b, opts)
	case ast.AT_GenericOptions, ast.AT_AlterColumnGenericOptions:
		opts, err := nodeAs[*ast.NodeList](n.Def, "def")
		if err != nil {
			return err
		}
		b.space()
		return writeAlterGenericOptions(b, opts)
	}

	switch def := n.Def.(type) {
	case nil:
		return nil
	case *ast.ColumnDef:
		b.space()
		return writeColumnDef(b, def)
	case *ast.Constraint:
		b.space()
		return writeConstraint(b, def)
	case *ast.PartitionCmd:
		b.space()
		return writePartitionCmd(b, def)
	case *ast.RangeVar:
		b.space()
		return writeRangeVar(b, def, ctx)
	case *ast.TypeName:
		b.space()
		return writeTypeName(b, def)
	case *ast.ReplicaIdentityStmt:
		b.space()
		return writeReplicaIdentityStmt(b, def)
	case *ast.String:
		b.space()
		b.ident(def.Sval)
		return nil
	}
	return errUnsupported("ALTER TABLE %s definition %s", n.Subtype, n.Def.NodeTag())
}

// writeAlterConstraint writes ALTER CONSTRAINT name with its deferrability.
func writeAlterConstraint(b *buffer, n *ast.AlterTableCmd) error {
	c, err := nodeAs[*ast.Constraint](n.Def, "def")
	if err != nil {
		return err
	}
	if c.Conname == "" {
		return errMissing("conname")
	}
	b.write("ALTER CONSTRAINT ")
	b.ident(c.Conname)
	if c.Deferrable {
		b.write(" DEFERRABLE")
	} else {
		b.write(" NOT DEFERRABLE")
	}
	if c.Initdeferred {
		b.write(" INITIALLY DEFERRED")
	} else {
		b.write(" INITIALLY IMMEDIATE")
	}
	return nil
}

func writeReplicaIdentityStmt(b *buffer, n *ast.ReplicaIdentityStmt) error {
	switch n.IdentityType {
	case ast.REPLICA_IDENTITY_NOTHING:
		b.write("NOTHING")
	case ast.REPLICA_IDENTITY_FULL:
		b.write("FULL")
	case ast.REPLICA_IDENTITY_DEFAULT:
		b.write("DEFAULT")
	case ast.REPLICA_IDENTITY_INDEX:
		if n.Name == "" {
			return errMissing("name")
		}
		b.write("USING INDEX ")
		b.ident(n.Name)
	default:
		return errUnreachable()
	}
	return nil
}
