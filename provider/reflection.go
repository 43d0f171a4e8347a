// Package provider implements the upstream collaborators that build the
// type model. The emission engine only consumes an already-built model;
// providers own all construction, whether from runtime values (reflection)
// or from Go source (go/packages).
package provider

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/tsbind/tsbind/ir"
)

// Reflection builds a type model from runtime values using reflect.
// It cannot see doc comments or const groups; use Source for those.
type Reflection struct{}

// ReflectionOptions configures reflection-based model building.
type ReflectionOptions struct {
	// RootTypes are the types to collect.
	RootTypes []reflect.Type
}

// TypesOf returns the reflect.Types of the given values, for use as
// ReflectionOptions.RootTypes. Pass zero values of the types you want
// collected.
func TypesOf(vals ...any) []reflect.Type {
	out := make([]reflect.Type, 0, len(vals))
	for _, v := range vals {
		out = append(out, reflect.TypeOf(v))
	}
	return out
}

// Build collects the root types and everything they reach into a Registry.
func (p *Reflection) Build(ctx context.Context, opts ReflectionOptions) (*ir.Registry, error) {
	if len(opts.RootTypes) == 0 {
		return nil, fmt.Errorf("no root types provided")
	}

	b := &reflectionBuilder{
		reg:        ir.NewRegistry(),
		processing: make(map[reflect.Type]bool),
	}
	for _, t := range opts.RootTypes {
		if err := b.collect(ctx, t); err != nil {
			return nil, err
		}
	}
	return b.reg, nil
}

type reflectionBuilder struct {
	reg        *ir.Registry
	processing map[reflect.Type]bool // guards against recursive re-entry
}

var timeType = reflect.TypeOf(time.Time{})

// collect registers a named struct type and recurses into everything its
// fields reach. Recursive shapes terminate because a type already being
// processed only ever contributes references, never a second definition.
func (b *reflectionBuilder) collect(ctx context.Context, t reflect.Type) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("nil root type")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" || t == timeType {
		return fmt.Errorf("root type %s is not a named struct", t)
	}
	if b.reg.Contains(t.Name()) || b.processing[t] {
		return nil
	}

	b.processing[t] = true
	defer delete(b.processing, t)

	obj, err := b.structOf(ctx, t)
	if err != nil {
		return fmt.Errorf("collecting %s: %w", t.Name(), err)
	}
	obj.Name = t.Name()
	b.reg.Add(&ir.TypeDef{Name: t.Name(), Inner: obj})
	return nil
}

// structOf converts a struct's fields. The returned object is anonymous;
// callers name it when registering a definition.
func (b *reflectionBuilder) structOf(ctx context.Context, t reflect.Type) (*ir.ObjectType, error) {
	obj := &ir.ObjectType{}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, opts := parseJSONTag(f.Tag.Get("json"))
		if name == "-" {
			continue
		}

		// An embedded struct without its own key flattens into the
		// parent's shape.
		if f.Anonymous && name == "" {
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft.Name() != "" && ft != timeType {
				if err := b.collect(ctx, ft); err != nil {
					return nil, err
				}
				obj.Fields = append(obj.Fields, ir.ObjectField{
					Name:    f.Name,
					Type:    ir.Ref(ft.Name()),
					Flatten: true,
				})
				continue
			}
		}

		if name == "" {
			name = f.Name
		}

		typ, err := b.exprOf(ctx, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		obj.Fields = append(obj.Fields, ir.ObjectField{
			Name:     name,
			Type:     typ,
			Optional: opts["omitempty"] || opts["omitzero"],
		})
	}
	return obj, nil
}

// exprOf converts a Go type used in expression position to a model node.
func (b *reflectionBuilder) exprOf(ctx context.Context, t reflect.Type) (ir.DataType, error) {
	switch t.Kind() {
	case reflect.Bool:
		return ir.Bool(), nil
	case reflect.String:
		return ir.String(), nil
	case reflect.Int:
		return ir.Int(0), nil
	case reflect.Int8:
		return ir.Int(8), nil
	case reflect.Int16:
		return ir.Int(16), nil
	case reflect.Int32:
		return ir.Int(32), nil
	case reflect.Int64:
		return ir.Int(64), nil
	case reflect.Uint:
		return ir.Uint(0), nil
	case reflect.Uint8:
		return ir.Uint(8), nil
	case reflect.Uint16:
		return ir.Uint(16), nil
	case reflect.Uint32:
		return ir.Uint(32), nil
	case reflect.Uint64, reflect.Uintptr:
		return ir.Uint(64), nil
	case reflect.Float32:
		return ir.Float(32), nil
	case reflect.Float64:
		return ir.Float(64), nil

	case reflect.Pointer:
		inner, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.NullableOf(inner), nil

	case reflect.Slice, reflect.Array:
		// []byte is base64 text on the wire.
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return ir.String(), nil
		}
		element, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.List(element), nil

	case reflect.Map:
		key, err := b.exprOf(ctx, t.Key())
		if err != nil {
			return nil, err
		}
		value, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Record(key, value), nil

	case reflect.Interface:
		return ir.Any(), nil

	case reflect.Struct:
		if t == timeType {
			// RFC 3339 text on the wire.
			return ir.String(), nil
		}
		if t.Name() != "" {
			if err := b.collect(ctx, t); err != nil {
				return nil, err
			}
			return ir.Ref(t.Name()), nil
		}
		return b.structOf(ctx, t)

	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// parseJSONTag splits a json struct tag into its name and option set.
func parseJSONTag(tag string) (string, map[string]bool) {
	opts := make(map[string]bool)
	if tag == "" {
		return "", opts
	}
	parts := strings.Split(tag, ",")
	for _, o := range parts[1:] {
		opts[o] = true
	}
	return parts[0], opts
}
