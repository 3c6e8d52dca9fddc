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

// ============================================================================
// Object names
// ============================================================================

// objectKeywords spells each object type the way DROP, COMMENT ON, ALTER
// ... RENAME and ALTER ... SET SCHEMA name it.
var objectKeywords = map[ast.ObjectType]string{
	ast.OBJECT_ACCESS_METHOD:   "ACCESS METHOD",
	ast.OBJECT_AGGREGATE:       "AGGREGATE",
	ast.OBJECT_CAST:            "CAST",
	ast.OBJECT_COLUMN:          "COLUMN",
	ast.OBJECT_COLLATION:       "COLLATION",
	ast.OBJECT_CONVERSION:      "CONVERSION",
	ast.OBJECT_DATABASE:        "DATABASE",
	ast.OBJECT_DOMAIN:          "DOMAIN",
	ast.OBJECT_DOMCONSTRAINT:   "CONSTRAINT",
	ast.OBJECT_EVENT_TRIGGER:   "EVENT TRIGGER",
	ast.OBJECT_EXTENSION:       "EXTENSION",
	ast.OBJECT_FDW:             "FOREIGN DATA WRAPPER",
	ast.OBJECT_FOREIGN_SERVER:  "SERVER",
	ast.OBJECT_FOREIGN_TABLE:   "FOREIGN TABLE",
	ast.OBJECT_FUNCTION:        "FUNCTION",
	ast.OBJECT_INDEX:           "INDEX",
	ast.OBJECT_LANGUAGE:        "LANGUAGE",
	ast.OBJECT_LARGEOBJECT:     "LARGE OBJECT",
	ast.OBJECT_MATVIEW:         "MATERIALIZED VIEW",
	ast.OBJECT_OPCLASS:         "OPERATOR CLASS",
	ast.OBJECT_OPERATOR:        "OPERATOR",
	ast.OBJECT_OPFAMILY:        "OPERATOR FAMILY",
	ast.OBJECT_POLICY:          "POLICY",
	ast.OBJECT_PROCEDURE:       "PROCEDURE",
	ast.OBJECT_PUBLICATION:     "PUBLICATION",
	ast.OBJECT_ROLE:            "ROLE",
	ast.OBJECT_ROUTINE:         "ROUTINE",
	ast.OBJECT_RULE:            "RULE",
	ast.OBJECT_SCHEMA:          "SCHEMA",
	ast.OBJECT_SEQUENCE:        "SEQUENCE",
	ast.OBJECT_SUBSCRIPTION:    "SUBSCRIPTION",
	ast.OBJECT_STATISTIC_EXT:   "STATISTICS",
	ast.OBJECT_TABCONSTRAINT:   "CONSTRAINT",
	ast.OBJECT_TABLE:           "TABLE",
	ast.OBJECT_TABLESPACE:      "TABLESPACE",
	ast.OBJECT_TRANSFORM:       "TRANSFORM",
	ast.OBJECT_TRIGGER:         "TRIGGER",
	ast.OBJECT_TSCONFIGURATION: "TEXT SEARCH CONFIGURATION",
	ast.OBJECT_TSDICTIONARY:    "TEXT SEARCH DICTIONARY",
	ast.OBJECT_TSPARSER:        "TEXT SEARCH PARSER",
	ast.OBJECT_TSTEMPLATE:      "TEXT SEARCH TEMPLATE",
	ast.OBJECT_TYPE:            "TYPE",
	ast.OBJECT_VIEW:            "VIEW",
}

func objectKeyword(t ast.ObjectType) (string, error) {
	kw, ok := objectKeywords[t]
	if !ok {
		return "", errUnexpectedObject(t)
	}
	return kw, nil
}

// writeObject writes the name of an object of type t in the form its
// statement takes after the object keyword.
func writeObject(b *buffer, t ast.ObjectType, n ast.Node) error {
	switch t {
	case ast.OBJECT_TABLE, ast.OBJECT_SEQUENCE, ast.OBJECT_VIEW, ast.OBJECT_MATVIEW,
		ast.OBJECT_INDEX, ast.OBJECT_FOREIGN_TABLE, ast.OBJECT_COLLATION, ast.OBJECT_CONVERSION,
		ast.OBJECT_STATISTIC_EXT, ast.OBJECT_TSPARSER, ast.OBJECT_TSDICTIONARY,
		ast.OBJECT_TSTEMPLATE, ast.OBJECT_TSCONFIGURATION, ast.OBJECT_COLUMN:
		name, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		return writeQualifiedName(b, name, "object")

	case ast.OBJECT_ACCESS_METHOD, ast.OBJECT_DATABASE, ast.OBJECT_EVENT_TRIGGER,
		ast.OBJECT_EXTENSION, ast.OBJECT_FDW, ast.OBJECT_FOREIGN_SERVER, ast.OBJECT_LANGUAGE,
		ast.OBJECT_PUBLICATION, ast.OBJECT_ROLE, ast.OBJECT_SCHEMA, ast.OBJECT_SUBSCRIPTION,
		ast.OBJECT_TABLESPACE:
		name, err := strVal(n, "object")
		if err != nil {
			return err
		}
		b.ident(name)
		return nil

	case ast.OBJECT_TYPE, ast.OBJECT_DOMAIN:
		switch v := n.(type) {
		case *ast.TypeName:
			return writeTypeName(b, v)
		case *ast.NodeList:
			return writeQualifiedName(b, v, "object")
		case nil:
			return errMissing("object")
		}
		return errUnexpectedNode(n)

	case ast.OBJECT_AGGREGATE:
		o, err := nodeAs[*ast.ObjectWithArgs](n, "object")
		if err != nil {
			return err
		}
		return writeAggregateWithArgTypes(b, o)

	case ast.OBJECT_FUNCTION, ast.OBJECT_PROCEDURE, ast.OBJECT_ROUTINE:
		o, err := nodeAs[*ast.ObjectWithArgs](n, "object")
		if err != nil {
			return err
		}
		return writeFunctionWithArgTypes(b, o)

	case ast.OBJECT_OPERATOR:
		o, err := nodeAs[*ast.ObjectWithArgs](n, "object")
		if err != nil {
			return err
		}
		return writeOperatorWithArgTypes(b, o)

	case ast.OBJECT_CAST:
		pair, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		if pair.Len() != 2 {
			return errMissing("object")
		}
		b.writeByte('(')
		if err := writeTypeItem(b, pair.Items[0]); err != nil {
			return err
		}
		b.write(" AS ")
		if err := writeTypeItem(b, pair.Items[1]); err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case ast.OBJECT_OPCLASS, ast.OBJECT_OPFAMILY:
		// The access method comes first.
		list, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		if list.Len() < 2 {
			return errMissing("object")
		}
		am, err := strVal(list.Items[0], "object")
		if err != nil {
			return err
		}
		if err := writeAnyName(b, list.Items[1:]); err != nil {
			return err
		}
		b.write(" USING ")
		b.ident(am)
		return nil

	case ast.OBJECT_TRANSFORM:
		pair, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		if pair.Len() != 2 {
			return errMissing("object")
		}
		b.write("FOR ")
		if err := writeTypeItem(b, pair.Items[0]); err != nil {
			return err
		}
		lang, err := strVal(pair.Items[1], "object")
		if err != nil {
			return err
		}
		b.write(" LANGUAGE ")
		b.ident(lang)
		return nil

	case ast.OBJECT_TABCONSTRAINT, ast.OBJECT_POLICY, ast.OBJECT_RULE, ast.OBJECT_TRIGGER:
		// The object's own name is last, after the name of its table.
		list, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		if list.Len() < 2 {
			return errMissing("object")
		}
		name, err := strVal(list.Items[list.Len()-1], "object")
		if err != nil {
			return err
		}
		b.ident(name)
		b.write(" ON ")
		return writeAnyName(b, list.Items[:list.Len()-1])

	case ast.OBJECT_DOMCONSTRAINT:
		pair, err := nodeAs[*ast.NodeList](n, "object")
		if err != nil {
			return err
		}
		if pair.Len() != 2 {
			return errMissing("object")
		}
		name, err := strVal(pair.Items[1], "object")
		if err != nil {
			return err
		}
		b.ident(name)
		b.write(" ON DOMAIN ")
		return writeTypeItem(b, pair.Items[0])

	case ast.OBJECT_LARGEOBJECT:
		return writeNumericOnly(b, n)
	}
	return errUnexpectedObject(t)
}

func writeTypeItem(b *buffer, n ast.Node) error {
	t, err := nodeAs[*ast.TypeName](n, "typeName")
	if err != nil {
		return err
	}
	return writeTypeName(b, t)
}

// ============================================================================
// Roles and privileges
// ============================================================================

func writeRoleSpec(b *buffer, r *ast.RoleSpec) error {
	switch r.Roletype {
	case ast.ROLESPEC_CSTRING:
		if r.Rolename == "" {
			return errMissing("rolename")
		}
		b.ident(r.Rolename)
	case ast.ROLESPEC_CURRENT_ROLE:
		b.write("CURRENT_ROLE")
	case ast.ROLESPEC_CURRENT_USER:
		b.write("CURRENT_USER")
	case ast.ROLESPEC_SESSION_USER:
		b.write("SESSION_USER")
	case ast.ROLESPEC_PUBLIC:
		b.write("PUBLIC")
	default:
		return errUnreachable()
	}
	return nil
}

var privilegeWords = map[string]bool{
	"select": true, "insert": true, "update": true, "delete": true, "truncate": true,
	"references": true, "trigger": true, "create": true, "connect": true,
	"temporary": true, "temp": true, "execute": true, "usage": true, "set": true,
	"alter system": true, "maintain": true,
}

func writeAccessPriv(b *buffer, p *ast.AccessPriv) error {
	switch {
	case p.PrivName == "":
		b.write("ALL")
	case privilegeWords[p.PrivName]:
		b.write(strings.ToUpper(p.PrivName))
	default:
		b.ident(p.PrivName)
	}
	return writeParenColumnList(b, p.Cols)
}

var grantObjectKeywords = map[ast.ObjectType]string{
	ast.OBJECT_TABLE:          "TABLE",
	ast.OBJECT_SEQUENCE:       "SEQUENCE",
	ast.OBJECT_FDW:            "FOREIGN DATA WRAPPER",
	ast.OBJECT_FOREIGN_SERVER: "FOREIGN SERVER",
	ast.OBJECT_FUNCTION:       "FUNCTION",
	ast.OBJECT_PROCEDURE:      "PROCEDURE",
	ast.OBJECT_ROUTINE:        "ROUTINE",
	ast.OBJECT_DATABASE:       "DATABASE",
	ast.OBJECT_DOMAIN:         "DOMAIN",
	ast.OBJECT_LANGUAGE:       "LANGUAGE",
	ast.OBJECT_LARGEOBJECT:    "LARGE OBJECT",
	ast.OBJECT_SCHEMA:         "SCHEMA",
	ast.OBJECT_TABLESPACE:     "TABLESPACE",
	ast.OBJECT_TYPE:           "TYPE",
	ast.OBJECT_PARAMETER_ACL:  "PARAMETER",
}

var grantPluralKeywords = map[ast.ObjectType]string{
	ast.OBJECT_TABLE:     "TABLES",
	ast.OBJECT_SEQUENCE:  "SEQUENCES",
	ast.OBJECT_FUNCTION:  "FUNCTIONS",
	ast.OBJECT_PROCEDURE: "PROCEDURES",
	ast.OBJECT_ROUTINE:   "ROUTINES",
	ast.OBJECT_TYPE:      "TYPES",
	ast.OBJECT_SCHEMA:    "SCHEMAS",
}

func writeGrantStmt(b *buffer, n *ast.GrantStmt) error {
	if n.IsGrant {
		b.write("GRANT ")
	} else {
		b.write("REVOKE ")
		if n.GrantOption {
			b.write("GRANT OPTION FOR ")
		}
	}
	if n.Privileges.Len() == 0 {
		b.write("ALL")
	} else if err := joinAs(b, n.Privileges, ", ", func(p *ast.AccessPriv) error {
		return writeAccessPriv(b, p)
	}); err != nil {
		return err
	}

	b.write(" ON ")
	switch n.Targtype {
	case ast.ACL_TARGET_OBJECT:
		kw, ok := grantObjectKeywords[n.Objtype]
		if !ok {
			return errUnexpectedObject(n.Objtype)
		}
		b.write(kw, " ")
		if err := writeGrantObjects(b, n.Objtype, n.Objects); err != nil {
			return err
		}
	case ast.ACL_TARGET_ALL_IN_SCHEMA:
		kw, ok := grantPluralKeywords[n.Objtype]
		if !ok {
			return errUnexpectedObject(n.Objtype)
		}
		b.write("ALL ", kw, " IN SCHEMA ")
		if err := writeNameList(b, n.Objects); err != nil {
			return err
		}
	case ast.ACL_TARGET_DEFAULTS:
		kw, ok := grantPluralKeywords[n.Objtype]
		if !ok {
			return errUnexpectedObject(n.Objtype)
		}
		b.write(kw)
	default:
		return errUnreachable()
	}

	if n.IsGrant {
		b.write(" TO ")
	} else {
		b.write(" FROM ")
	}
	if err := writeRoleList(b, n.Grantees); err != nil {
		return err
	}
	if n.IsGrant && n.GrantOption {
		b.write(" WITH GRANT OPTION")
	}
	if n.Grantor != nil {
		b.write(" GRANTED BY ")
		if err := writeRoleSpec(b, n.Grantor); err != nil {
			return err
		}
	}
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

func writeGrantObjects(b *buffer, t ast.ObjectType, list *ast.NodeList) error {
	if list.Len() == 0 {
		return errMissing("objects")
	}
	switch t {
	case ast.OBJECT_TABLE, ast.OBJECT_SEQUENCE:
		return writeRelationList(b, list)
	case ast.OBJECT_FUNCTION, ast.OBJECT_PROCEDURE, ast.OBJECT_ROUTINE:
		return writeFunctionWithArgTypesList(b, list)
	case ast.OBJECT_DOMAIN, ast.OBJECT_TYPE:
		return writeAnyNameList(b, list)
	case ast.OBJECT_LARGEOBJECT:
		return writeNumericOnlyList(b, list)
	}
	return writeNameList(b, list)
}

// writeNameList writes a comma separated list of quoted String names.
func writeNameList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, ", ", func(s *ast.String) error {
		b.ident(s.Sval)
		return nil
	})
}

func writeGrantRoleStmt(b *buffer, n *ast.GrantRoleStmt) error {
	if n.IsGrant {
		b.write("GRANT ")
	} else {
		b.write("REVOKE ")
		if err := eachAs(n.Opt, func(_ int, d *ast.DefElem) error {
			b.write(strings.ToUpper(d.Defname), " OPTION FOR ")
			return nil
		}); err != nil {
			return err
		}
	}
	if err := joinAs(b, n.GrantedRoles, ", ", func(p *ast.AccessPriv) error {
		return writeAccessPriv(b, p)
	}); err != nil {
		return err
	}
	if n.IsGrant {
		b.write(" TO ")
	} else {
		b.write(" FROM ")
	}
	if err := writeRoleList(b, n.GranteeRoles); err != nil {
		return err
	}

	if n.IsGrant && n.Opt.Len() > 0 {
		b.write(" WITH ")
		if err := joinAs(b, n.Opt, ", ", func(d *ast.DefElem) error {
			on, err := flagVal(d.Arg, d.Defname)
			if err != nil {
				return err
			}
			b.write(strings.ToUpper(d.Defname))
			switch {
			case d.Defname == "admin" && on:
				b.write(" OPTION")
			case on:
				b.write(" TRUE")
			default:
				b.write(" FALSE")
			}
			return nil
		}); err != nil {
			return err
		}
	}
	if n.Grantor != nil {
		b.write(" GRANTED BY ")
		if err := writeRoleSpec(b, n.Grantor); err != nil {
			return err
		}
	}
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

func writeDropRoleStmt(b *buffer, n *ast.DropRoleStmt) error {
	b.write("DROP ROLE ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	if n.Roles.Len() == 0 {
		return errMissing("roles")
	}
	return writeRoleList(b, n.Roles)
}

// ============================================================================
// DROP, COMMENT, RENAME and SET SCHEMA
// ============================================================================

func writeDropStmt(b *buffer, n *ast.DropStmt) error {
	kw, err := objectKeyword(n.RemoveType)
	if err != nil {
		return err
	}
	b.write("DROP ", kw)
	if n.Concurrent {
		b.write(" CONCURRENTLY")
	}
	if n.MissingOk {
		b.write(" IF EXISTS")
	}
	if n.Objects.Len() == 0 {
		return errMissing("objects")
	}
	b.writeByte(' ')
	if err := b.join(n.Objects, ", ", func(obj ast.Node) error {
		return writeObject(b, n.RemoveType, obj)
	}); err != nil {
		return err
	}
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

func writeCommentStmt(b *buffer, n *ast.CommentStmt) error {
	kw, err := objectKeyword(n.Objtype)
	if err != nil {
		return err
	}
	b.write("COMMENT ON ", kw, " ")
	if err := writeObject(b, n.Objtype, n.Object); err != nil {
		return err
	}
	b.write(" IS ")
	if n.Comment == "" {
		b.write("NULL")
	} else {
		b.literal(n.Comment)
	}
	return nil
}

// renameKeywordTypes maps rename targets that live inside another object
// to the object type named after ALTER.
var renameKeywordTypes = map[ast.ObjectType]ast.ObjectType{
	ast.OBJECT_ATTRIBUTE:     ast.OBJECT_TYPE,
	ast.OBJECT_TABCONSTRAINT: ast.OBJECT_TABLE,
	ast.OBJECT_DOMCONSTRAINT: ast.OBJECT_DOMAIN,
}

func writeRenameStmt(b *buffer, n *ast.RenameStmt) error {
	if n.Newname == "" {
		return errMissing("newname")
	}
	kwType := n.RenameType
	if t, ok := renameKeywordTypes[kwType]; ok {
		kwType = t
	} else if kwType == ast.OBJECT_COLUMN {
		kwType = n.RelationType
	}
	kw, err := objectKeyword(kwType)
	if err != nil {
		return err
	}
	b.write("ALTER ", kw, " ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}

	switch n.RenameType {
	case ast.OBJECT_TABLE, ast.OBJECT_SEQUENCE, ast.OBJECT_VIEW, ast.OBJECT_MATVIEW,
		ast.OBJECT_INDEX, ast.OBJECT_FOREIGN_TABLE, ast.OBJECT_COLUMN, ast.OBJECT_ATTRIBUTE,
		ast.OBJECT_TABCONSTRAINT:
		if n.Relation == nil {
			return errMissing("relation")
		}
		ctx := ContextNone
		if n.RenameType == ast.OBJECT_ATTRIBUTE {
			ctx = ContextAlterType
		}
		if err := writeRangeVar(b, n.Relation, ctx); err != nil {
			return err
		}
	case ast.OBJECT_TRIGGER, ast.OBJECT_POLICY, ast.OBJECT_RULE:
		if n.Subname == "" {
			return errMissing("subname")
		}
		if n.Relation == nil {
			return errMissing("relation")
		}
		b.ident(n.Subname)
		b.write(" ON ")
		if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
			return err
		}
	case ast.OBJECT_DATABASE, ast.OBJECT_ROLE, ast.OBJECT_SCHEMA, ast.OBJECT_TABLESPACE:
		if n.Subname == "" {
			return errMissing("subname")
		}
		b.ident(n.Subname)
	case ast.OBJECT_DOMCONSTRAINT:
		name, err := nodeAs[*ast.NodeList](n.Object, "object")
		if err != nil {
			return err
		}
		if err := writeQualifiedName(b, name, "object"); err != nil {
			return err
		}
	default:
		if err := writeObject(b, n.RenameType, n.Object); err != nil {
			return err
		}
	}

	b.write(" RENAME")
	switch n.RenameType {
	case ast.OBJECT_COLUMN:
		b.write(" COLUMN ")
		b.ident(n.Subname)
	case ast.OBJECT_ATTRIBUTE:
		b.write(" ATTRIBUTE ")
		b.ident(n.Subname)
	case ast.OBJECT_TABCONSTRAINT, ast.OBJECT_DOMCONSTRAINT:
		b.write(" CONSTRAINT ")
		b.ident(n.Subname)
	}
	b.write(" TO ")
	b.ident(n.Newname)
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

func writeAlterObjectSchemaStmt(b *buffer, n *ast.AlterObjectSchemaStmt) error {
	kw, err := objectKeyword(n.ObjectType)
	if err != nil {
		return err
	}
	b.write("ALTER ", kw, " ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	if n.Relation != nil {
		err = writeRangeVar(b, n.Relation, ContextNone)
	} else {
		err = writeObject(b, n.ObjectType, n.Object)
	}
	if err != nil {
		return err
	}
	if n.Newschema == "" {
		return errMissing("newschema")
	}
	b.write(" SET SCHEMA ")
	b.ident(n.Newschema)
	return nil
}

func writeAlterObjectDependsStmt(b *buffer, n *ast.AlterObjectDependsStmt) error {
	kw, err := objectKeyword(n.ObjectType)
	if err != nil {
		return err
	}
	b.write("ALTER ", kw, " ")
	switch n.ObjectType {
	case ast.OBJECT_FUNCTION, ast.OBJECT_PROCEDURE, ast.OBJECT_ROUTINE:
		if err := writeObject(b, n.ObjectType, n.Object); err != nil {
			return err
		}
	case ast.OBJECT_TRIGGER:
		name, err := nodeAs[*ast.NodeList](n.Object, "object")
		if err != nil {
			return err
		}
		if err := writeQualifiedName(b, name, "object"); err != nil {
			return err
		}
		if n.Relation == nil {
			return errMissing("relation")
		}
		b.write(" ON ")
		if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
			return err
		}
	case ast.OBJECT_MATVIEW, ast.OBJECT_INDEX:
		if n.Relation == nil {
			return errMissing("relation")
		}
		if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
			return err
		}
	default:
		return errUnexpectedObject(n.ObjectType)
	}
	if n.Remove {
		b.write(" NO")
	}
	if n.Extname == nil {
		return errMissing("extname")
	}
	b.write(" DEPENDS ON EXTENSION ")
	b.ident(n.Extname.Sval)
	return nil
}

// ============================================================================
// Extensions, databases and tablespaces
// ============================================================================

func writeCreateExtensionStmt(b *buffer, n *ast.CreateExtensionStmt) error {
	if n.Extname == "" {
		return errMissing("extname")
	}
	b.write("CREATE EXTENSION ")
	if n.IfNotExists {
		b.write("IF NOT EXISTS ")
	}
	b.ident(n.Extname)
	return eachAs(n.Options, func(_ int, d *ast.DefElem) error {
		switch d.Defname {
		case "schema":
			name, err := strVal(d.Arg, "schema")
			if err != nil {
				return err
			}
			b.write(" SCHEMA ")
			b.ident(name)
		case "new_version":
			v, err := strVal(d.Arg, "new_version")
			if err != nil {
				return err
			}
			b.write(" VERSION ", nonReservedWordOrSconst(v))
		case "cascade":
			b.write(" CASCADE")
		default:
			return errUnsupported("CREATE EXTENSION option %s", d.Defname)
		}
		return nil
	})
}

func writeAlterExtensionStmt(b *buffer, n *ast.AlterExtensionStmt) error {
	if n.Extname == "" {
		return errMissing("extname")
	}
	b.write("ALTER EXTENSION ")
	b.ident(n.Extname)
	b.write(" UPDATE")
	return eachAs(n.Options, func(_ int, d *ast.DefElem) error {
		if d.Defname != "new_version" {
			return errUnsupported("ALTER EXTENSION option %s", d.Defname)
		}
		v, err := strVal(d.Arg, "new_version")
		if err != nil {
			return err
		}
		b.write(" TO ", nonReservedWordOrSconst(v))
		return nil
	})
}

func writeAlterExtensionContentsStmt(b *buffer, n *ast.AlterExtensionContentsStmt) error {
	if n.Extname == "" {
		return errMissing("extname")
	}
	b.write("ALTER EXTENSION ")
	b.ident(n.Extname)
	switch n.Action {
	case 1:
		b.write(" ADD ")
	case -1:
		b.write(" DROP ")
	default:
		return errUnsupported("ALTER EXTENSION action %d", n.Action)
	}
	kw, err := objectKeyword(n.Objtype)
	if err != nil {
		return err
	}
	b.write(kw, " ")
	return writeObject(b, n.Objtype, n.Object)
}

var createdbOptionWords = map[string]string{
	"connection_limit": "CONNECTION LIMIT",
}

// writeCreatedbOptList writes the options of CREATE and ALTER DATABASE.
func writeCreatedbOptList(b *buffer, list *ast.NodeList) error {
	return joinAs(b, list, " ", func(d *ast.DefElem) error {
		if word, ok := createdbOptionWords[d.Defname]; ok {
			b.write(word)
		} else {
			writeGenericDefElemName(b, d.Defname)
		}
		b.writeByte(' ')
		switch v := d.Arg.(type) {
		case nil:
			b.write("DEFAULT")
		case *ast.String:
			b.write(booleanOrString(v.Sval))
		case *ast.Integer, *ast.Float:
			return writeNumericOnly(b, v)
		case *ast.Boolean:
			if v.Boolval {
				b.write("TRUE")
			} else {
				b.write("FALSE")
			}
		default:
			return errUnexpectedNode(d.Arg)
		}
		return nil
	})
}

func writeCreatedbStmt(b *buffer, n *ast.CreatedbStmt) error {
	if n.Dbname == "" {
		return errMissing("dbname")
	}
	b.write("CREATE DATABASE ")
	b.ident(n.Dbname)
	if n.Options.Len() > 0 {
		b.writeByte(' ')
		return writeCreatedbOptList(b, n.Options)
	}
	return nil
}

func writeAlterDatabaseStmt(b *buffer, n *ast.AlterDatabaseStmt) error {
	if n.Dbname == "" {
		return errMissing("dbname")
	}
	b.write("ALTER DATABASE ")
	b.ident(n.Dbname)
	if n.Options.Len() == 0 {
		return errMissing("options")
	}
	b.writeByte(' ')
	return writeCreatedbOptList(b, n.Options)
}

func writeAlterDatabaseSetStmt(b *buffer, n *ast.AlterDatabaseSetStmt) error {
	if n.Dbname == "" {
		return errMissing("dbname")
	}
	if n.Setstmt == nil {
		return errMissing("setstmt")
	}
	b.write("ALTER DATABASE ")
	b.ident(n.Dbname)
	b.writeByte(' ')
	return writeVariableSetStmt(b, n.Setstmt)
}

func writeCreateTableSpaceStmt(b *buffer, n *ast.CreateTableSpaceStmt) error {
	if n.Tablespacename == "" {
		return errMissing("tablespacename")
	}
	b.write("CREATE TABLESPACE ")
	b.ident(n.Tablespacename)
	if n.Owner != nil {
		b.write(" OWNER ")
		if err := writeRoleSpec(b, n.Owner); err != nil {
			return err
		}
	}
	b.write(" LOCATION ")
	b.literal(n.LocationDir)
	return writeOptWith(b, n.Options)
}

func writeDropTableSpaceStmt(b *buffer, n *ast.DropTableSpaceStmt) error {
	if n.Tablespacename == "" {
		return errMissing("tablespacename")
	}
	b.write("DROP TABLESPACE ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	b.ident(n.Tablespacename)
	return nil
}

func writeAlterTableSpaceOptionsStmt(b *buffer, n *ast.AlterTableSpaceOptionsStmt) error {
	if n.Tablespacename == "" {
		return errMissing("tablespacename")
	}
	b.write("ALTER TABLESPACE ")
	b.ident(n.Tablespacename)
	if n.IsReset {
		b.write(" RESET ")
	} else {
		b.write(" SET ")
	}
	return writeRelOptions(b, n.Options)
}

func writeDropSubscriptionStmt(b *buffer, n *ast.DropSubscriptionStmt) error {
	if n.Subname == "" {
		return errMissing("subname")
	}
	b.write("DROP SUBSCRIPTION ")
	if n.MissingOk {
		b.write("IF EXISTS ")
	}
	b.ident(n.Subname)
	writeOptDropBehavior(b, n.Behavior)
	return nil
}

// ============================================================================
// Functions and triggers
// ============================================================================

var functionParameterModes = map[ast.FunctionParameterMode]string{
	ast.FUNC_PARAM_IN:       "IN ",
	ast.FUNC_PARAM_OUT:      "OUT ",
	ast.FUNC_PARAM_INOUT:    "INOUT ",
	ast.FUNC_PARAM_VARIADIC: "VARIADIC ",
	ast.FUNC_PARAM_TABLE:    "",
	ast.FUNC_PARAM_DEFAULT:  "",
}

func writeFunctionParameter(b *buffer, p *ast.FunctionParameter) error {
	mode, ok := functionParameterModes[p.Mode]
	if !ok {
		return errUnreachable()
	}
	b.write(mode)
	if p.Name != "" {
		b.ident(p.Name)
		b.writeByte(' ')
	}
	if p.ArgType == nil {
		return errMissing("argType")
	}
	if err := writeTypeName(b, p.ArgType); err != nil {
		return err
	}
	if p.Defexpr != nil {
		b.write(" DEFAULT ")
		return buildExpr(b, p.Defexpr)
	}
	return nil
}

func writeCreateFunctionStmt(b *buffer, n *ast.CreateFunctionStmt) error {
	b.write("CREATE ")
	if n.Replace {
		b.write("OR REPLACE ")
	}
	if n.IsProcedure {
		b.write("PROCEDURE ")
	} else {
		b.write("FUNCTION ")
	}
	if err := writeQualifiedName(b, n.Funcname, "funcname"); err != nil {
		return err
	}

	var tableParams []*ast.FunctionParameter
	b.writeByte('(')
	first := true
	if err := eachAs(n.Parameters, func(_ int, p *ast.FunctionParameter) error {
		if p.Mode == ast.FUNC_PARAM_TABLE {
			tableParams = append(tableParams, p)
			return nil
		}
		if !first {
			b.write(", ")
		}
		first = false
		return writeFunctionParameter(b, p)
	}); err != nil {
		return err
	}
	b.writeByte(')')

	switch {
	case len(tableParams) > 0:
		b.write(" RETURNS TABLE (")
		for i, p := range tableParams {
			if i > 0 {
				b.write(", ")
			}
			if err := writeFunctionParameter(b, p); err != nil {
				return err
			}
		}
		b.writeByte(')')
	case n.ReturnType != nil:
		b.write(" RETURNS ")
		if err := writeTypeName(b, n.ReturnType); err != nil {
			return err
		}
	}

	if err := eachAs(n.Options, func(_ int, d *ast.DefElem) error {
		b.writeByte(' ')
		return writeFunctionOption(b, d)
	}); err != nil {
		return err
	}

	switch body := n.SQLBody.(type) {
	case nil:
	case *ast.NodeList:
		b.write(" BEGIN ATOMIC")
		for _, item := range body.Items {
			stmts, ok := item.(*ast.NodeList)
			if !ok {
				return errUnexpectedNode(item)
			}
			for _, stmt := range stmts.Items {
				b.writeByte(' ')
				if err := buildNode(b, stmt, ContextNone); err != nil {
					return err
				}
				b.writeByte(';')
			}
		}
		b.write(" END")
	default:
		return errUnsupported("function body %s", body.NodeTag())
	}
	return nil
}

// writeFunctionOption writes one createfunc_opt_item or common_func_opt_item.
func writeFunctionOption(b *buffer, d *ast.DefElem) error {
	switch d.Defname {
	case "as":
		body, err := nodeAs[*ast.NodeList](d.Arg, "as")
		if err != nil {
			return err
		}
		b.write("AS ")
		return joinAs(b, body, ", ", func(s *ast.String) error {
			if body.Len() == 1 {
				b.write(dollarQuote(s.Sval))
			} else {
				b.literal(s.Sval)
			}
			return nil
		})
	case "language":
		lang, err := strVal(d.Arg, "language")
		if err != nil {
			return err
		}
		b.write("LANGUAGE ", nonReservedWordOrSconst(lang))
	case "transform":
		types, err := nodeAs[*ast.NodeList](d.Arg, "transform")
		if err != nil {
			return err
		}
		b.write("TRANSFORM ")
		return joinAs(b, types, ", ", func(t *ast.TypeName) error {
			b.write("FOR TYPE ")
			return writeTypeName(b, t)
		})
	case "window":
		b.write("WINDOW")
	case "strict":
		return writeFlagOption(b, d, "STRICT", "CALLED ON NULL INPUT")
	case "security":
		return writeFlagOption(b, d, "SECURITY DEFINER", "SECURITY INVOKER")
	case "leakproof":
		return writeFlagOption(b, d, "LEAKPROOF", "NOT LEAKPROOF")
	case "volatility":
		v, err := strVal(d.Arg, "volatility")
		if err != nil {
			return err
		}
		switch v {
		case "immutable", "stable", "volatile":
			b.write(strings.ToUpper(v))
		default:
			return errUnsupported("volatility %s", v)
		}
	case "cost":
		b.write("COST ")
		return writeNumericOnly(b, d.Arg)
	case "rows":
		b.write("ROWS ")
		return writeNumericOnly(b, d.Arg)
	case "support":
		name, err := nodeAs[*ast.NodeList](d.Arg, "support")
		if err != nil {
			return err
		}
		b.write("SUPPORT ")
		return writeQualifiedName(b, name, "support")
	case "set":
		set, err := nodeAs[*ast.VariableSetStmt](d.Arg, "set")
		if err != nil {
			return err
		}
		return writeVariableSetStmt(b, set)
	case "parallel":
		v, err := strVal(d.Arg, "parallel")
		if err != nil {
			return err
		}
		b.write("PARALLEL ")
		b.ident(v)
	default:
		return errUnsupported("function option %s", d.Defname)
	}
	return nil
}

func writeFlagOption(b *buffer, d *ast.DefElem, on, off string) error {
	v, err := flagVal(d.Arg, d.Defname)
	if err != nil {
		return err
	}
	if v {
		b.write(on)
	} else {
		b.write(off)
	}
	return nil
}

var triggerEvents = []struct {
	bit  int
	text string
}{
	{ast.TRIGGER_TYPE_INSERT, "INSERT"},
	{ast.TRIGGER_TYPE_DELETE, "DELETE"},
	{ast.TRIGGER_TYPE_UPDATE, "UPDATE"},
	{ast.TRIGGER_TYPE_TRUNCATE, "TRUNCATE"},
}

func writeCreateTrigStmt(b *buffer, n *ast.CreateTrigStmt) error {
	if n.Trigname == "" {
		return errMissing("trigname")
	}
	if n.Relation == nil {
		return errMissing("relation")
	}
	b.write("CREATE ")
	if n.Replace {
		b.write("OR REPLACE ")
	}
	if n.Isconstraint {
		b.write("CONSTRAINT ")
	}
	b.write("TRIGGER ")
	b.ident(n.Trigname)

	switch {
	case n.Timing&ast.TRIGGER_TYPE_BEFORE != 0:
		b.write(" BEFORE ")
	case n.Timing&ast.TRIGGER_TYPE_INSTEAD != 0:
		b.write(" INSTEAD OF ")
	default:
		b.write(" AFTER ")
	}
	first := true
	for _, ev := range triggerEvents {
		if n.Events&ev.bit == 0 {
			continue
		}
		if !first {
			b.write(" OR ")
		}
		first = false
		b.write(ev.text)
		if ev.bit == ast.TRIGGER_TYPE_UPDATE && n.Columns.Len() > 0 {
			b.write(" OF ")
			if err := writeColumnList(b, n.Columns); err != nil {
				return err
			}
		}
	}
	if first {
		return errMissing("events")
	}

	b.write(" ON ")
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	if n.TransitionRels.Len() > 0 {
		b.write(" REFERENCING ")
		if err := joinAs(b, n.TransitionRels, " ", func(t *ast.TriggerTransition) error {
			return writeTriggerTransition(b, t)
		}); err != nil {
			return err
		}
	}
	if n.Constrrel != nil {
		b.write(" FROM ")
		if err := writeRangeVar(b, n.Constrrel, ContextNone); err != nil {
			return err
		}
	}
	if n.Deferrable {
		b.write(" DEFERRABLE")
	}
	if n.Initdeferred {
		b.write(" INITIALLY DEFERRED")
	}
	if n.Row {
		b.write(" FOR EACH ROW")
	}
	if n.WhenClause != nil {
		b.write(" WHEN (")
		if err := buildExpr(b, n.WhenClause); err != nil {
			return err
		}
		b.writeByte(')')
	}

	b.write(" EXECUTE FUNCTION ")
	if err := writeQualifiedName(b, n.Funcname, "funcname"); err != nil {
		return err
	}
	b.writeByte('(')
	if err := joinAs(b, n.Args, ", ", func(s *ast.String) error {
		b.literal(s.Sval)
		return nil
	}); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeTriggerTransition(b *buffer, t *ast.TriggerTransition) error {
	if t.Name == "" {
		return errMissing("name")
	}
	if t.IsNew {
		b.write("NEW ")
	} else {
		b.write("OLD ")
	}
	if t.IsTable {
		b.write("TABLE AS ")
	} else {
		b.write("ROW AS ")
	}
	b.ident(t.Name)
	return nil
}

// ============================================================================
// Types, domains, sequences and schemas
// ============================================================================

func writeCreateDomainStmt(b *buffer, n *ast.CreateDomainStmt) error {
	b.write("CREATE DOMAIN ")
	if err := writeQualifiedName(b, n.Domainname, "domainname"); err != nil {
		return err
	}
	if n.TypeName == nil {
		return errMissing("typeName")
	}
	b.write(" AS ")
	if err := writeTypeName(b, n.TypeName); err != nil {
		return err
	}
	if n.CollClause != nil {
		b.writeByte(' ')
		if err := writeCollateClause(b, n.CollClause); err != nil {
			return err
		}
	}
	return eachAs(n.Constraints, func(_ int, c *ast.Constraint) error {
		b.writeByte(' ')
		return writeConstraint(b, c)
	})
}

func writeCreateEnumStmt(b *buffer, n *ast.CreateEnumStmt) error {
	b.write("CREATE TYPE ")
	if err := writeQualifiedName(b, n.TypeName, "typeName"); err != nil {
		return err
	}
	b.write(" AS ENUM (")
	if err := joinAs(b, n.Vals, ", ", func(s *ast.String) error {
		b.literal(s.Sval)
		return nil
	}); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeCreateRangeStmt(b *buffer, n *ast.CreateRangeStmt) error {
	b.write("CREATE TYPE ")
	if err := writeQualifiedName(b, n.TypeName, "typeName"); err != nil {
		return err
	}
	b.write(" AS RANGE ")
	return writeDefinition(b, n.Params)
}

func writeCompositeTypeStmt(b *buffer, n *ast.CompositeTypeStmt) error {
	if n.Typevar == nil {
		return errMissing("typevar")
	}
	b.write("CREATE TYPE ")
	if err := writeRangeVar(b, n.Typevar, ContextCreateType); err != nil {
		return err
	}
	b.write(" AS (")
	if err := joinAs(b, n.Coldeflist, ", ", func(col *ast.ColumnDef) error {
		return writeColumnDef(b, col)
	}); err != nil {
		return err
	}
	b.writeByte(')')
	return nil
}

func writeCreateSeqStmt(b *buffer, n *ast.CreateSeqStmt) error {
	if n.Sequence == nil {
		return errMissing("sequence")
	}
	b.write("CREATE ")
	if p := persistenceKeyword(n.Sequence.Relpersistence); p != "" {
		b.write(p, " ")
	}
	b.write("SEQUENCE ")
	if n.IfNotExists {
		b.write("IF NOT EXISTS ")
	}
	if err := writeRangeVar(b, n.Sequence, ContextNone); err != nil {
		return err
	}
	if n.Options.Len() > 0 {
		b.writeByte(' ')
		return writeSeqOptList(b, n.Options)
	}
	return nil
}

func writeCreateSchemaStmt(b *buffer, n *ast.CreateSchemaStmt) error {
	b.write("CREATE SCHEMA")
	if n.IfNotExists {
		b.write(" IF NOT EXISTS")
	}
	if n.Schemaname != "" {
		b.writeByte(' ')
		b.ident(n.Schemaname)
	}
	if n.Authrole != nil {
		b.write(" AUTHORIZATION ")
		if err := writeRoleSpec(b, n.Authrole); err != nil {
			return err
		}
	} else if n.Schemaname == "" {
		return errMissing("schemaname")
	}
	return b.join(n.SchemaElts, "", func(elt ast.Node) error {
		switch elt.(type) {
		case *ast.CreateStmt, *ast.IndexStmt, *ast.CreateSeqStmt, *ast.CreateTrigStmt,
			*ast.GrantStmt, *ast.ViewStmt:
		default:
			return errUnexpectedNode(elt)
		}
		b.writeByte(' ')
		return buildNode(b, elt, ContextNone)
	})
}

func writeCreateCastStmt(b *buffer, n *ast.CreateCastStmt) error {
	if n.Sourcetype == nil {
		return errMissing("sourcetype")
	}
	if n.Targettype == nil {
		return errMissing("targettype")
	}
	b.write("CREATE CAST (")
	if err := writeTypeName(b, n.Sourcetype); err != nil {
		return err
	}
	b.write(" AS ")
	if err := writeTypeName(b, n.Targettype); err != nil {
		return err
	}
	b.writeByte(')')
	switch {
	case n.Func != nil:
		b.write(" WITH FUNCTION ")
		if err := writeFunctionWithArgTypes(b, n.Func); err != nil {
			return err
		}
	case n.Inout:
		b.write(" WITH INOUT")
	default:
		b.write(" WITHOUT FUNCTION")
	}
	switch n.Context {
	case ast.COERCION_IMPLICIT:
		b.write(" AS IMPLICIT")
	case ast.COERCION_ASSIGNMENT:
		b.write(" AS ASSIGNMENT")
	case ast.COERCION_EXPLICIT:
	default:
		return errUnsupported("cast context %s", n.Context)
	}
	return nil
}

var defineKinds = map[ast.ObjectType]string{
	ast.OBJECT_AGGREGATE:       "AGGREGATE",
	ast.OBJECT_OPERATOR:        "OPERATOR",
	ast.OBJECT_TYPE:            "TYPE",
	ast.OBJECT_TSPARSER:        "TEXT SEARCH PARSER",
	ast.OBJECT_TSDICTIONARY:    "TEXT SEARCH DICTIONARY",
	ast.OBJECT_TSTEMPLATE:      "TEXT SEARCH TEMPLATE",
	ast.OBJECT_TSCONFIGURATION: "TEXT SEARCH CONFIGURATION",
	ast.OBJECT_COLLATION:       "COLLATION",
}

func writeDefineStmt(b *buffer, n *ast.DefineStmt) error {
	kind, ok := defineKinds[n.Kind]
	if !ok {
		return errUnexpectedObject(n.Kind)
	}
	b.write("CREATE ")
	if n.Replace {
		b.write("OR REPLACE ")
	}
	b.write(kind, " ")
	if n.IfNotExists {
		b.write("IF NOT EXISTS ")
	}
	if n.Defnames.Len() == 0 {
		return errMissing("defnames")
	}
	if n.Kind == ast.OBJECT_OPERATOR {
		if err := writeAnyOperator(b, n.Defnames.Items); err != nil {
			return err
		}
	} else if err := writeAnyName(b, n.Defnames.Items); err != nil {
		return err
	}

	if n.Kind == ast.OBJECT_AGGREGATE && !n.Oldstyle {
		if err := writeAggrArgs(b, n.Args); err != nil {
			return err
		}
	}
	if n.Kind == ast.OBJECT_COLLATION && n.Definition.Len() == 1 {
		if d, ok := n.Definition.Items[0].(*ast.DefElem); ok && d.Defname == "from" {
			from, err := nodeAs[*ast.NodeList](d.Arg, "from")
			if err != nil {
				return err
			}
			b.write(" FROM ")
			return writeQualifiedName(b, from, "from")
		}
	}
	if n.Definition.Len() == 0 {
		return nil
	}
	b.writeByte(' ')
	return writeDefinition(b, n.Definition)
}

// writeAggrArgs writes the argument list of CREATE AGGREGATE. args holds
// the parameters and the count of direct arguments of an ordered-set
// aggregate, or -1 when there is no ORDER BY.
func writeAggrArgs(b *buffer, args *ast.NodeList) error {
	if args.Len() != 2 {
		return errMissing("args")
	}
	var params []ast.Node
	switch v := args.Items[0].(type) {
	case nil:
	case *ast.NodeList:
		params = v.Items
	default:
		return errUnexpectedNode(v)
	}
	pos, err := intVal(args.Items[1], "args")
	if err != nil {
		return err
	}

	direct, ordered := params, []ast.Node(nil)
	if pos >= 0 {
		if pos > len(params) {
			return errUnsupported("ordered-set position %d of %d arguments", pos, len(params))
		}
		direct, ordered = params[:pos], params[pos:]
		// A VARIADIC direct argument doubles as the ordered one.
		if len(ordered) == 0 && len(direct) > 0 {
			ordered = direct[len(direct)-1:]
		}
	}

	writeParams := func(list []ast.Node) error {
		for i, p := range list {
			if i > 0 {
				b.write(", ")
			}
			fp, err := nodeAs[*ast.FunctionParameter](p, "args")
			if err != nil {
				return err
			}
			if err := writeFunctionParameter(b, fp); err != nil {
				return err
			}
		}
		return nil
	}

	b.writeByte('(')
	if len(params) == 0 && pos < 0 {
		b.write("*)")
		return nil
	}
	if err := writeParams(direct); err != nil {
		return err
	}
	if pos >= 0 {
		if len(direct) > 0 {
			b.writeByte(' ')
		}
		b.write("ORDER BY ")
		if err := writeParams(ordered); err != nil {
			return err
		}
	}
	b.writeByte(')')
	return nil
}

// ============================================================================
// Views
// ============================================================================

func writeViewStmt(b *buffer, n *ast.ViewStmt) error {
	if n.View == nil {
		return errMissing("view")
	}
	b.write("CREATE ")
	if n.Replace {
		b.write("OR REPLACE ")
	}
	if p := persistenceKeyword(n.View.Relpersistence); p != "" {
		b.write(p, " ")
	}
	b.write("VIEW ")
	if err := writeRangeVar(b, n.View, ContextNone); err != nil {
		return err
	}
	if err := writeParenColumnList(b, n.Aliases); err != nil {
		return err
	}
	if err := writeOptWith(b, n.Options); err != nil {
		return err
	}
	query, err := nodeAs[*ast.SelectStmt](n.Query, "query")
	if err != nil {
		return err
	}
	b.write(" AS ")
	if err := writeSelectStmt(b, query); err != nil {
		return err
	}
	switch n.WithCheckOption {
	case ast.NO_CHECK_OPTION:
	case ast.LOCAL_CHECK_OPTION:
		b.write(" WITH LOCAL CHECK OPTION")
	case ast.CASCADED_CHECK_OPTION:
		b.write(" WITH CHECK OPTION")
	default:
		return errUnreachable()
	}
	return nil
}

func writeCreateTableAsStmt(b *buffer, n *ast.CreateTableAsStmt) error {
	if n.Into == nil || n.Into.Rel == nil {
		return errMissing("into")
	}
	b.write("CREATE ")
	if p := persistenceKeyword(n.Into.Rel.Relpersistence); p != "" {
		b.write(p, " ")
	}
	switch n.Objtype {
	case ast.OBJECT_TABLE:
		b.write("TABLE ")
	case ast.OBJECT_MATVIEW:
		b.write("MATERIALIZED VIEW ")
	default:
		return errUnexpectedObject(n.Objtype)
	}
	if n.IfNotExists {
		b.write("IF NOT EXISTS ")
	}
	if err := writeIntoClause(b, n.Into); err != nil {
		return err
	}
	b.write(" AS ")
	switch q := n.Query.(type) {
	case *ast.SelectStmt:
		if err := writeSelectStmt(b, q); err != nil {
			return err
		}
	case *ast.ExecuteStmt:
		if err := writeExecuteStmt(b, q); err != nil {
			return err
		}
	case nil:
		return errMissing("query")
	default:
		return errUnexpectedNode(q)
	}
	if n.Into.SkipData {
		b.write(" WITH NO DATA")
	}
	return nil
}

func writeRefreshMatViewStmt(b *buffer, n *ast.RefreshMatViewStmt) error {
	if n.Relation == nil {
		return errMissing("relation")
	}
	b.write("REFRESH MATERIALIZED VIEW ")
	if n.Concurrent {
		b.write("CONCURRENTLY ")
	}
	if err := writeRangeVar(b, n.Relation, ContextNone); err != nil {
		return err
	}
	if n.SkipData {
		b.write(" WITH NO DATA")
	}
	return nil
}
