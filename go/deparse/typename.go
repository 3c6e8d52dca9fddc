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

	"github.com/multigres/pgdeparse/go/deparse/ast"
)

// builtinTypeNames maps pg_catalog type names to the spelling the grammar
// accepts without schema qualification.
var builtinTypeNames = map[string]string{
	"bpchar":    "char",
	"varchar":   "varchar",
	"numeric":   "numeric",
	"bool":      "boolean",
	"int2":      "smallint",
	"int4":      "int",
	"int8":      "bigint",
	"real":      "real",
	"float4":    "real",
	"float8":    "double precision",
	"time":      "time",
	"timestamp": "timestamp",
}

// zonedTypeNames are written with their precision before WITH TIME ZONE.
var zonedTypeNames = map[string]string{
	"timetz":      "time",
	"timestamptz": "timestamp",
}

// intervalFields maps an interval typmod field mask to its SQL spelling.
var intervalFields = map[int]string{
	ast.INTERVAL_MASK_YEAR:   "year",
	ast.INTERVAL_MASK_MONTH:  "month",
	ast.INTERVAL_MASK_DAY:    "day",
	ast.INTERVAL_MASK_HOUR:   "hour",
	ast.INTERVAL_MASK_MINUTE: "minute",
	ast.INTERVAL_MASK_SECOND: "second",

	ast.INTERVAL_MASK_YEAR | ast.INTERVAL_MASK_MONTH:                                                     "year to month",
	ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR:                                                       "day to hour",
	ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE:                            "day to minute",
	ast.INTERVAL_MASK_DAY | ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND: "day to second",
	ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE:                                                    "hour to minute",
	ast.INTERVAL_MASK_HOUR | ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND:                         "hour to second",
	ast.INTERVAL_MASK_MINUTE | ast.INTERVAL_MASK_SECOND:                                                  "minute to second",
}

// IntervalFieldsString returns the field clause for an interval typmod
// mask, such as "day to second". The full range mask yields "".
func IntervalFieldsString(mask int) (string, error) {
	if mask == ast.INTERVAL_FULL_RANGE {
		return "", nil
	}
	s, ok := intervalFields[mask]
	if !ok {
		return "", errUnsupported("interval field mask %d", mask)
	}
	return s, nil
}

func typeNames(t *ast.TypeName) ([]string, error) {
	if t.Names.Len() == 0 {
		return nil, errMissing("names")
	}
	names := make([]string, 0, t.Names.Len())
	for _, n := range t.Names.Items {
		s, err := strVal(n, "names")
		if err != nil {
			return nil, err
		}
		names = append(names, s)
	}
	return names, nil
}

// catalogTypeName returns the unqualified name of a pg_catalog type.
func catalogTypeName(t *ast.TypeName) (string, bool) {
	if t == nil || t.Names.Len() != 2 {
		return "", false
	}
	schema, ok := ast.StrVal(t.Names.Items[0])
	if !ok || schema != "pg_catalog" {
		return "", false
	}
	return ast.StrVal(t.Names.Items[1])
}

// writeTypeName writes a type reference, canonicalizing pg_catalog names.
func writeTypeName(b *buffer, t *ast.TypeName) error {
	if t == nil {
		return errMissing("typeName")
	}
	names, err := typeNames(t)
	if err != nil {
		return err
	}

	if t.Setof {
		b.write("SETOF ")
	}

	typmods := t.Typmods
	suffix := ""
	if len(names) == 2 && names[0] == "pg_catalog" {
		name := names[1]
		switch {
		case builtinTypeNames[name] != "":
			b.write(builtinTypeNames[name])
		case zonedTypeNames[name] != "":
			b.write(zonedTypeNames[name])
			suffix = " with time zone"
		case name == "interval":
			b.write("interval")
			if err := writeIntervalTypmods(b, typmods); err != nil {
				return err
			}
			typmods = nil
		default:
			b.write("pg_catalog.")
			b.ident(name)
		}
	} else if err := writeAnyName(b, t.Names.Items); err != nil {
		return err
	}

	if typmods.Len() > 0 {
		b.writeByte('(')
		err := b.join(typmods, ", ", func(n ast.Node) error {
			switch v := n.(type) {
			case *ast.A_Const:
				return writeAConst(b, v)
			case *ast.ParamRef:
				return writeParamRef(b, v)
			case *ast.ColumnRef:
				return writeColumnRef(b, v)
			default:
				return errUnexpectedNode(n)
			}
		})
		if err != nil {
			return err
		}
		b.writeByte(')')
	}
	b.write(suffix)

	if err := eachAs(t.ArrayBounds, func(_ int, bound *ast.Integer) error {
		b.writeByte('[')
		if bound.Ival >= 0 {
			b.write(strconv.Itoa(bound.Ival))
		}
		b.writeByte(']')
		return nil
	}); err != nil {
		return err
	}

	if t.PctType {
		b.write("%TYPE")
	}
	return nil
}

// writeIntervalTypmods decodes the field mask and precision of an
// interval type.
func writeIntervalTypmods(b *buffer, typmods *ast.NodeList) error {
	if typmods.Len() == 0 {
		return nil
	}
	mask, err := intVal(typmods.Items[0], "typmods")
	if err != nil {
		return err
	}
	fields, err := IntervalFieldsString(mask)
	if err != nil {
		return err
	}
	if fields != "" {
		b.writeByte(' ')
		b.write(fields)
	}

	if typmods.Len() < 2 {
		return nil
	}
	precision, err := intVal(typmods.Items[1], "typmods")
	if err != nil {
		return err
	}
	if precision == ast.INTERVAL_FULL_PRECISION {
		if mask != ast.INTERVAL_FULL_RANGE {
			return errUnsupported("interval full precision with fields %q", fields)
		}
		return nil
	}
	b.write("(", strconv.Itoa(precision), ")")
	return nil
}

// writeTypeCast writes arg::type. Operator expressions use CAST(... AS ...)
// and a few constants take the typed literal form.
func writeTypeCast(b *buffer, n *ast.TypeCast) error {
	if n.Arg == nil {
		return errMissing("arg")
	}
	if n.TypeName == nil {
		return errMissing("typeName")
	}

	paren := false
	switch arg := n.Arg.(type) {
	case *ast.A_Expr:
		b.write("CAST(")
		if err := buildExpr(b, arg); err != nil {
			return err
		}
		b.write(" AS ")
		if err := writeTypeName(b, n.TypeName); err != nil {
			return err
		}
		b.writeByte(')')
		return nil

	case *ast.A_Const:
		switch name, _ := catalogTypeName(n.TypeName); name {
		case "bpchar":
			if n.TypeName.Typmods.Len() == 0 {
				b.write("char ")
				return writeAConst(b, arg)
			}
		case "bool":
			if s, ok := arg.Val.(*ast.String); ok {
				switch s.Sval {
				case "t":
					b.write("true")
					return nil
				case "f":
					b.write("false")
					return nil
				}
			}
		}
		switch v := arg.Val.(type) {
		case *ast.Float:
			paren = true
		case *ast.Integer:
			paren = v.Ival < 0
		}
	}

	if paren {
		b.writeByte('(')
	}
	if err := buildExpr(b, n.Arg); err != nil {
		return err
	}
	if paren {
		b.writeByte(')')
	}
	b.write("::")
	return writeTypeName(b, n.TypeName)
}
