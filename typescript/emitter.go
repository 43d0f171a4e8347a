// Package typescript converts the language-neutral type model into
// TypeScript type declarations. Emission is a pure function of the
// configuration and the model: no shared state, no I/O, safe to run
// concurrently across independent export calls.
package typescript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsbind/tsbind/ir"
)

// ExportDatatype converts a type definition to a TypeScript string with an
// export, e.g. `export type Foo = { demo: string }`. The definition's root
// must be an Object, Enum or Tuple with a valid name; anything else cannot
// become a named declaration.
func ExportDatatype(conf *ExportConfig, def *ir.TypeDef) (string, error) {
	body, err := Datatype(conf, def.Inner)
	if err != nil {
		return "", &ContextError{TypeName: def.Name, Err: err}
	}

	var declaration string
	switch t := def.Inner.(type) {
	case *ir.ObjectType:
		if t.Name == "" {
			return "", ErrAnonymousObject
		}
		if err := checkTypeName(t.Name); err != nil {
			return "", err
		}
		// A fieldless object renders as `null`; generic parameters would
		// be unused, so they are dropped.
		if len(t.Fields) == 0 {
			declaration = fmt.Sprintf("type %s = %s", t.Name, body)
		} else {
			declaration = fmt.Sprintf("type %s%s = %s", t.Name, genericParams(t.Generics), body)
		}

	case *ir.EnumType:
		if t.Name == "" {
			return "", ErrAnonymousEnum
		}
		if err := checkTypeName(t.Name); err != nil {
			return "", err
		}
		declaration = fmt.Sprintf("type %s%s = %s", t.Name, genericParams(t.Generics), body)

	case *ir.TupleType:
		if t.Name == "" {
			return "", &CannotExportError{Kind: ir.KindTuple}
		}
		if err := checkTypeName(t.Name); err != nil {
			return "", err
		}
		declaration = fmt.Sprintf("type %s%s = %s", t.Name, genericParams(t.Generics), body)

	default:
		return "", &CannotExportError{Kind: def.Inner.Kind()}
	}

	var comments string
	if conf.CommentExporter != nil {
		comments = conf.CommentExporter(def.Comments)
	}
	return comments + "export " + declaration, nil
}

// Datatype converts a model node to a TypeScript type expression, e.g.
// `{ demo: string }`. It is total over the model grammar except
// Placeholder, which always fails with an internal error.
func Datatype(conf *ExportConfig, typ ir.DataType) (string, error) {
	switch t := typ.(type) {
	case *ir.AnyType:
		return "any", nil

	case *ir.PrimitiveType:
		return primitiveToTS(conf, t)

	case *ir.LiteralType:
		return literalToTS(t), nil

	case *ir.NullableType:
		inner, err := Datatype(conf, t.Inner)
		if err != nil {
			return "", err
		}
		return inner + " | null", nil

	case *ir.RecordType:
		key, err := Datatype(conf, t.Key)
		if err != nil {
			return "", err
		}
		value, err := Datatype(conf, t.Value)
		if err != nil {
			return "", err
		}
		// An index signature instead of Record<K, V>: the mapped form
		// recurses forever when V is (transitively) self-referential.
		return fmt.Sprintf("{ [key: %s]: %s }", key, value), nil

	case *ir.ListType:
		// T[] instead of Array<T>, for the same self-reference reason.
		element, err := Datatype(conf, t.Element)
		if err != nil {
			return "", err
		}
		return element + "[]", nil

	case *ir.TupleType:
		return tupleToTS(conf, t)

	case *ir.ObjectType:
		return objectToTS(conf, t)

	case *ir.EnumType:
		return enumToTS(conf, t)

	case *ir.ReferenceType:
		if len(t.Generics) == 0 {
			return t.Name, nil
		}
		args := make([]string, 0, len(t.Generics))
		for _, g := range t.Generics {
			s, err := Datatype(conf, g)
			if err != nil {
				return "", err
			}
			args = append(args, s)
		}
		return fmt.Sprintf("%s<%s>", t.Name, strings.Join(args, ", ")), nil

	case *ir.GenericType:
		return t.Ident, nil

	case *ir.PlaceholderType:
		return "", &InternalError{Message: "attempted to export a placeholder"}

	default:
		return "", &InternalError{Message: fmt.Sprintf("unknown node kind %s", typ.Kind())}
	}
}

// primitiveToTS maps a scalar to its TypeScript spelling. Wide numerics go
// through the configured BigInt policy.
func primitiveToTS(conf *ExportConfig, p *ir.PrimitiveType) (string, error) {
	switch p.PrimitiveKind {
	case ir.PrimitiveBool:
		return "boolean", nil
	case ir.PrimitiveChar, ir.PrimitiveString:
		return "string", nil
	case ir.PrimitiveInt, ir.PrimitiveUint, ir.PrimitiveFloat:
		if !p.Wide() {
			return "number", nil
		}
		switch conf.BigInt {
		case BigIntString:
			return "string", nil
		case BigIntNumber:
			return "number", nil
		case BigIntLiteral:
			return "BigInt", nil
		default:
			if conf.BigIntFailReason != "" {
				return "", errors.New(conf.BigIntFailReason)
			}
			return "", ErrBigIntForbidden
		}
	default:
		return "", &InternalError{Message: fmt.Sprintf("unknown primitive kind %s", p.PrimitiveKind)}
	}
}

// literalToTS renders a literal in source syntax: numbers and booleans
// verbatim, text quoted, "no value" as the null literal.
func literalToTS(l *ir.LiteralType) string {
	switch v := l.Value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tupleToTS emits a tuple: empty collapses to null, a singleton unwraps to
// its element, anything longer becomes a bracketed list.
func tupleToTS(conf *ExportConfig, t *ir.TupleType) (string, error) {
	switch len(t.Elements) {
	case 0:
		return "null", nil
	case 1:
		return Datatype(conf, t.Elements[0])
	default:
		parts := make([]string, 0, len(t.Elements))
		for _, e := range t.Elements {
			s, err := Datatype(conf, e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	}
}

// objectToTS emits a struct-like shape. Flattened fields become their own
// parenthesized pieces; the remaining fields (plus the discriminant, when
// the shape carries one) form one object literal; all pieces join with an
// intersection.
func objectToTS(conf *ExportConfig, t *ir.ObjectType) (string, error) {
	if len(t.Fields) == 0 {
		return "null", nil
	}

	var sections []string
	for _, f := range t.Fields {
		if !f.Flatten {
			continue
		}
		s, err := Datatype(conf, f.Type)
		if err != nil {
			return "", withField(f.Name, err)
		}
		sections = append(sections, "("+s+")")
	}

	var unflattened []string
	for _, f := range t.Fields {
		if f.Flatten {
			continue
		}
		key, err := SanitiseName(t.Name, f.Name)
		if err != nil {
			return "", err
		}
		value, err := Datatype(conf, f.Type)
		if err != nil {
			return "", withField(f.Name, err)
		}
		// An optional key reads as "may be absent or null" on the
		// consumer side, so a `| null` is added unless the type already
		// carries one through a Nullable wrapper.
		if f.Optional {
			key += "?"
			if _, nullable := f.Type.(*ir.NullableType); !nullable {
				value += " | null"
			}
		}
		unflattened = append(unflattened, key+": "+value)
	}

	if t.Tag != "" {
		unflattened = append(unflattened, fmt.Sprintf("%s: %q", t.Tag, t.Name))
	}

	if len(unflattened) > 0 {
		sections = append(sections, "{ "+strings.Join(unflattened, "; ")+" }")
	}

	return strings.Join(sections, " & "), nil
}

// enumToTS emits a tagged union: each variant's shape depends on the
// representation kind, and the variants join with " | ". An empty variant
// set is uninhabited and emits never.
func enumToTS(conf *ExportConfig, t *ir.EnumType) (string, error) {
	if len(t.Variants) == 0 {
		return "never", nil
	}

	parts := make([]string, 0, len(t.Variants))
	for _, v := range t.Variants {
		name, err := SanitiseName(t.Name, v.VariantName())
		if err != nil {
			return "", err
		}
		s, err := variantToTS(conf, t, v, name)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " | "), nil
}

// variantToTS emits one enum case for the cross product of representation
// kind and variant shape.
func variantToTS(conf *ExportConfig, t *ir.EnumType, v ir.EnumVariant, sanitised string) (string, error) {
	repr := t.Repr

	switch repr.ReprKind {
	case ir.ReprInternal:
		switch v := v.(type) {
		case *ir.UnitVariant:
			return fmt.Sprintf("{ %s: %q }", repr.Tag, sanitised), nil

		case *ir.UnnamedVariant:
			payload, err := Datatype(conf, v.Payload())
			if err != nil {
				return "", withField(v.Name, err)
			}
			return fmt.Sprintf("({ %s: %q } & %s)", repr.Tag, sanitised, payload), nil

		case *ir.NamedVariant:
			fields := []string{fmt.Sprintf("%s: %q", repr.Tag, sanitised)}
			for _, f := range v.Fields {
				s, err := objectFieldToTS(conf, t.Name, f)
				if err != nil {
					return "", err
				}
				fields = append(fields, s)
			}
			return "{ " + strings.Join(fields, "; ") + " }", nil
		}

	case ir.ReprExternal:
		if _, unit := v.(*ir.UnitVariant); unit {
			return strconv.Quote(sanitised), nil
		}
		payload, err := Datatype(conf, v.Payload())
		if err != nil {
			return "", withField(v.VariantName(), err)
		}
		return fmt.Sprintf("{ %s: %s }", sanitised, payload), nil

	case ir.ReprUntagged:
		if _, unit := v.(*ir.UnitVariant); unit {
			return "null", nil
		}
		payload, err := Datatype(conf, v.Payload())
		if err != nil {
			return "", withField(v.VariantName(), err)
		}
		return payload, nil

	case ir.ReprAdjacent:
		if _, unit := v.(*ir.UnitVariant); unit {
			return fmt.Sprintf("{ %s: %q }", repr.Tag, sanitised), nil
		}
		payload, err := Datatype(conf, v.Payload())
		if err != nil {
			return "", withField(v.VariantName(), err)
		}
		return fmt.Sprintf("{ %s: %q; %s: %s }", repr.Tag, sanitised, repr.Content, payload), nil
	}

	return "", &InternalError{Message: fmt.Sprintf("unknown enum representation %s", repr.ReprKind)}
}

// objectFieldToTS emits one `key: type` pair for a named variant's field.
// An optional field's Nullable wrapper is unwrapped rather than merged,
// since the optional key already signals absence.
func objectFieldToTS(conf *ExportConfig, typeName string, f ir.ObjectField) (string, error) {
	key, err := SanitiseName(typeName, f.Name)
	if err != nil {
		return "", err
	}

	typ := f.Type
	if f.Optional {
		key += "?"
		if n, ok := typ.(*ir.NullableType); ok {
			typ = n.Inner
		}
	}

	value, err := Datatype(conf, typ)
	if err != nil {
		return "", err
	}
	return key + ": " + value, nil
}

// genericParams renders a declared type parameter list, or nothing.
func genericParams(generics []string) string {
	if len(generics) == 0 {
		return ""
	}
	return "<" + strings.Join(generics, ", ") + ">"
}
