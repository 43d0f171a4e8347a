package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/tsbind/tsbind/ir"
)

// Source builds a type model from Go source via go/packages. Unlike
// Reflection it sees doc comments, const groups (emitted as literal
// unions) and generic type parameters.
type Source struct{}

// SourceOptions configures source-based model building.
type SourceOptions struct {
	// Packages are the Go package patterns to load.
	Packages []string

	// RootTypes restricts collection to the named types (and whatever
	// they reach). Empty collects every exported named type.
	RootTypes []string
}

const loadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax |
	packages.NeedDeps

// Build loads the packages and collects their types into a Registry.
func (p *Source) Build(ctx context.Context, opts SourceOptions) (*ir.Registry, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages provided")
	}

	cfg := &packages.Config{Mode: loadMode, Context: ctx}
	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("loading %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
	}

	roots := make(map[string]bool, len(opts.RootTypes))
	for _, name := range opts.RootTypes {
		roots[name] = true
	}

	b := &sourceBuilder{
		reg:        ir.NewRegistry(),
		processing: make(map[string]bool),
		docs:       make(map[string][]string),
	}
	for _, pkg := range pkgs {
		b.indexDocs(pkg)
	}
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() {
				continue
			}
			if len(roots) > 0 && !roots[obj.Name()] {
				continue
			}
			if err := b.collect(ctx, obj); err != nil {
				return nil, err
			}
		}
	}
	return b.reg, nil
}

type sourceBuilder struct {
	reg        *ir.Registry
	processing map[string]bool
	docs       map[string][]string // type name -> doc comment lines
}

// indexDocs records doc-comment lines per declared type name.
func (b *sourceBuilder) indexDocs(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if doc == nil {
					continue
				}
				var lines []string
				for _, c := range strings.Split(strings.TrimRight(doc.Text(), "\n"), "\n") {
					lines = append(lines, c)
				}
				b.docs[ts.Name.Name] = lines
			}
		}
	}
}

// collect registers a named type definition and recurses into what it
// reaches.
func (b *sourceBuilder) collect(ctx context.Context, obj *types.TypeName) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := obj.Name()
	if b.reg.Contains(name) || b.processing[name] {
		return nil
	}
	b.processing[name] = true
	defer delete(b.processing, name)

	inner, err := b.declOf(ctx, obj)
	if err != nil {
		return fmt.Errorf("collecting %s: %w", name, err)
	}
	if inner == nil {
		return nil // constraint interfaces and other non-data shapes
	}
	b.reg.Add(&ir.TypeDef{Name: name, Comments: b.docs[name], Inner: inner})
	return nil
}

// declOf converts a named type declaration to a declaration root node.
func (b *sourceBuilder) declOf(ctx context.Context, obj *types.TypeName) (ir.DataType, error) {
	name := obj.Name()
	named, _ := obj.Type().(*types.Named)

	var generics []string
	if named != nil {
		for i := 0; i < named.TypeParams().Len(); i++ {
			generics = append(generics, named.TypeParams().At(i).Obj().Name())
		}
	}

	switch u := obj.Type().Underlying().(type) {
	case *types.Struct:
		objType, err := b.structOf(ctx, u)
		if err != nil {
			return nil, err
		}
		objType.Name = name
		objType.Generics = generics
		return objType, nil

	case *types.Basic:
		// A named scalar with a const group becomes a literal union.
		if variants := b.constVariants(obj); len(variants) > 0 {
			return &ir.EnumType{Name: name, Repr: ir.Untagged(), Variants: variants}, nil
		}
		elem, err := b.exprOf(ctx, u)
		if err != nil {
			return nil, err
		}
		return &ir.TupleType{Name: name, Generics: generics, Elements: []ir.DataType{elem}}, nil

	case *types.Interface:
		// Interface declarations (constraints included) carry no data
		// shape to export.
		return nil, nil

	default:
		elem, err := b.exprOf(ctx, obj.Type().Underlying())
		if err != nil {
			return nil, err
		}
		return &ir.TupleType{Name: name, Generics: generics, Elements: []ir.DataType{elem}}, nil
	}
}

// constVariants finds package-level constants of the given named type and
// returns them as literal variants, in declaration order.
func (b *sourceBuilder) constVariants(obj *types.TypeName) []ir.EnumVariant {
	scope := obj.Pkg().Scope()
	var variants []ir.EnumVariant
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		lit := literalOf(c.Val())
		if lit == nil {
			continue
		}
		variants = append(variants, ir.Unnamed(c.Name(), lit))
	}
	return variants
}

// literalOf converts a constant value to a literal node.
func literalOf(v constant.Value) *ir.LiteralType {
	switch v.Kind() {
	case constant.String:
		return ir.LitString(constant.StringVal(v))
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return ir.LitInt(i)
		}
	case constant.Float:
		if f, ok := constant.Float64Val(v); ok {
			return ir.LitFloat(f)
		}
	case constant.Bool:
		return ir.LitBool(constant.BoolVal(v))
	}
	return nil
}

// structOf converts a struct's fields. The returned object is anonymous;
// declOf names it.
func (b *sourceBuilder) structOf(ctx context.Context, s *types.Struct) (*ir.ObjectType, error) {
	obj := &ir.ObjectType{}

	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if !f.Exported() {
			continue
		}

		name, opts := parseJSONTag(reflect.StructTag(s.Tag(i)).Get("json"))
		if name == "-" {
			continue
		}

		if f.Embedded() && name == "" {
			ft := f.Type()
			if ptr, ok := ft.(*types.Pointer); ok {
				ft = ptr.Elem()
			}
			if named, ok := ft.(*types.Named); ok {
				if _, isStruct := named.Underlying().(*types.Struct); isStruct {
					if err := b.collect(ctx, named.Obj()); err != nil {
						return nil, err
					}
					obj.Fields = append(obj.Fields, ir.ObjectField{
						Name:    f.Name(),
						Type:    ir.Ref(named.Obj().Name()),
						Flatten: true,
					})
					continue
				}
			}
		}

		if name == "" {
			name = f.Name()
		}

		typ, err := b.exprOf(ctx, f.Type())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name(), err)
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
func (b *sourceBuilder) exprOf(ctx context.Context, t types.Type) (ir.DataType, error) {
	switch t := t.(type) {
	case *types.Basic:
		return basicOf(t)

	case *types.Pointer:
		inner, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.NullableOf(inner), nil

	case *types.Slice:
		if basic, ok := t.Elem().(*types.Basic); ok && basic.Kind() == types.Byte {
			return ir.String(), nil
		}
		element, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.List(element), nil

	case *types.Array:
		element, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.List(element), nil

	case *types.Map:
		key, err := b.exprOf(ctx, t.Key())
		if err != nil {
			return nil, err
		}
		value, err := b.exprOf(ctx, t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Record(key, value), nil

	case *types.Interface:
		return ir.Any(), nil

	case *types.TypeParam:
		return ir.Generic(t.Obj().Name()), nil

	case *types.Alias:
		return b.exprOf(ctx, types.Unalias(t))

	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
			return ir.String(), nil
		}
		if err := b.collect(ctx, obj); err != nil {
			return nil, err
		}
		var generics []ir.DataType
		for i := 0; i < t.TypeArgs().Len(); i++ {
			arg, err := b.exprOf(ctx, t.TypeArgs().At(i))
			if err != nil {
				return nil, err
			}
			generics = append(generics, arg)
		}
		return &ir.ReferenceType{Name: obj.Name(), Generics: generics}, nil

	case *types.Struct:
		return b.structOf(ctx, t)

	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// basicOf maps go/types basic kinds to primitives.
func basicOf(t *types.Basic) (ir.DataType, error) {
	switch t.Kind() {
	case types.Bool, types.UntypedBool:
		return ir.Bool(), nil
	case types.String, types.UntypedString:
		return ir.String(), nil
	case types.Int, types.UntypedInt:
		return ir.Int(0), nil
	case types.Int8:
		return ir.Int(8), nil
	case types.Int16:
		return ir.Int(16), nil
	case types.Int32:
		return ir.Int(32), nil
	case types.Int64:
		return ir.Int(64), nil
	case types.Uint:
		return ir.Uint(0), nil
	case types.Uint8:
		return ir.Uint(8), nil
	case types.Uint16:
		return ir.Uint(16), nil
	case types.Uint32:
		return ir.Uint(32), nil
	case types.Uint64, types.Uintptr:
		return ir.Uint(64), nil
	case types.Float32:
		return ir.Float(32), nil
	case types.Float64, types.UntypedFloat:
		return ir.Float(64), nil
	default:
		return nil, fmt.Errorf("unsupported basic type %s", t)
	}
}
