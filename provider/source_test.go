package provider

import (
	"context"
	"go/constant"
	"go/token"
	"go/types"
	"testing"

	"github.com/tsbind/tsbind/ir"
)

func newSourceBuilder() *sourceBuilder {
	return &sourceBuilder{
		reg:        ir.NewRegistry(),
		processing: make(map[string]bool),
		docs:       make(map[string][]string),
	}
}

func TestBasicOf(t *testing.T) {
	tests := []struct {
		name string
		kind types.BasicKind
		want *ir.PrimitiveType
	}{
		{name: "bool", kind: types.Bool, want: ir.Bool()},
		{name: "string", kind: types.String, want: ir.String()},
		{name: "int", kind: types.Int, want: ir.Int(0)},
		{name: "int32", kind: types.Int32, want: ir.Int(32)},
		{name: "int64", kind: types.Int64, want: ir.Int(64)},
		{name: "uint64", kind: types.Uint64, want: ir.Uint(64)},
		{name: "uintptr", kind: types.Uintptr, want: ir.Uint(64)},
		{name: "float32", kind: types.Float32, want: ir.Float(32)},
		{name: "float64", kind: types.Float64, want: ir.Float(64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basicOf(types.Typ[tt.kind])
			if err != nil {
				t.Fatalf("basicOf() error = %v", err)
			}
			p := got.(*ir.PrimitiveType)
			if p.PrimitiveKind != tt.want.PrimitiveKind || p.BitSize != tt.want.BitSize {
				t.Errorf("basicOf() = %+v, want %+v", p, tt.want)
			}
		})
	}

	if _, err := basicOf(types.Typ[types.Complex128]); err == nil {
		t.Error("basicOf(complex128) succeeded")
	}
}

func TestLiteralOf(t *testing.T) {
	tests := []struct {
		name string
		val  constant.Value
		want any
	}{
		{name: "string", val: constant.MakeString("active"), want: "active"},
		{name: "int", val: constant.MakeInt64(3), want: int64(3)},
		{name: "float", val: constant.MakeFloat64(0.5), want: 0.5},
		{name: "bool", val: constant.MakeBool(true), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := literalOf(tt.val)
			if lit == nil {
				t.Fatal("literalOf() = nil")
			}
			if lit.Value != tt.want {
				t.Errorf("literalOf() = %v (%T), want %v (%T)", lit.Value, lit.Value, tt.want, tt.want)
			}
		})
	}
}

func TestSourceExprOf(t *testing.T) {
	b := newSourceBuilder()
	ctx := context.Background()

	str := types.Typ[types.String]

	t.Run("pointer", func(t *testing.T) {
		got, err := b.exprOf(ctx, types.NewPointer(str))
		if err != nil {
			t.Fatal(err)
		}
		if got.Kind() != ir.KindNullable {
			t.Errorf("pointer = %+v, want nullable", got)
		}
	})

	t.Run("byte slice", func(t *testing.T) {
		got, err := b.exprOf(ctx, types.NewSlice(types.Typ[types.Byte]))
		if err != nil {
			t.Fatal(err)
		}
		if p, ok := got.(*ir.PrimitiveType); !ok || p.PrimitiveKind != ir.PrimitiveString {
			t.Errorf("[]byte = %+v, want string", got)
		}
	})

	t.Run("slice", func(t *testing.T) {
		got, err := b.exprOf(ctx, types.NewSlice(str))
		if err != nil {
			t.Fatal(err)
		}
		if got.Kind() != ir.KindList {
			t.Errorf("slice = %+v, want list", got)
		}
	})

	t.Run("map", func(t *testing.T) {
		got, err := b.exprOf(ctx, types.NewMap(str, types.Typ[types.Int32]))
		if err != nil {
			t.Fatal(err)
		}
		rec, ok := got.(*ir.RecordType)
		if !ok {
			t.Fatalf("map = %+v, want record", got)
		}
		if rec.Key.Kind() != ir.KindPrimitive || rec.Value.Kind() != ir.KindPrimitive {
			t.Errorf("record = %+v", rec)
		}
	})

	t.Run("empty interface", func(t *testing.T) {
		got, err := b.exprOf(ctx, types.NewInterfaceType(nil, nil))
		if err != nil {
			t.Fatal(err)
		}
		if got.Kind() != ir.KindAny {
			t.Errorf("interface = %+v, want any", got)
		}
	})
}

func TestSourceStructOf(t *testing.T) {
	b := newSourceBuilder()
	pkg := types.NewPackage("example.com/app", "app")

	st := types.NewStruct(
		[]*types.Var{
			types.NewField(token.NoPos, pkg, "ID", types.Typ[types.Int32], false),
			types.NewField(token.NoPos, pkg, "Email", types.NewPointer(types.Typ[types.String]), false),
			types.NewField(token.NoPos, pkg, "Skipped", types.Typ[types.String], false),
			types.NewField(token.NoPos, pkg, "hidden", types.Typ[types.String], false),
		},
		[]string{`json:"id"`, `json:"email,omitempty"`, `json:"-"`, ""},
	)

	obj, err := b.structOf(context.Background(), st)
	if err != nil {
		t.Fatalf("structOf() error = %v", err)
	}

	if len(obj.Fields) != 2 {
		t.Fatalf("collected %d fields, want 2: %+v", len(obj.Fields), obj.Fields)
	}
	if obj.Fields[0].Name != "id" || obj.Fields[0].Optional {
		t.Errorf("fields[0] = %+v", obj.Fields[0])
	}
	if obj.Fields[1].Name != "email" || !obj.Fields[1].Optional {
		t.Errorf("fields[1] = %+v", obj.Fields[1])
	}
	if obj.Fields[1].Type.Kind() != ir.KindNullable {
		t.Errorf("email = %+v, want nullable", obj.Fields[1].Type)
	}
}

func TestSourceCollectNamedStruct(t *testing.T) {
	b := newSourceBuilder()
	pkg := types.NewPackage("example.com/app", "app")

	st := types.NewStruct(
		[]*types.Var{types.NewField(token.NoPos, pkg, "Name", types.Typ[types.String], false)},
		[]string{`json:"name"`},
	)
	obj := types.NewTypeName(token.NoPos, pkg, "User", nil)
	types.NewNamed(obj, st, nil)
	pkg.Scope().Insert(obj)

	if err := b.collect(context.Background(), obj); err != nil {
		t.Fatalf("collect() error = %v", err)
	}

	def := b.reg.Get("User")
	if def == nil {
		t.Fatal("User not registered")
	}
	inner, ok := def.Inner.(*ir.ObjectType)
	if !ok {
		t.Fatalf("inner is %T, want *ir.ObjectType", def.Inner)
	}
	if inner.Name != "User" || len(inner.Fields) != 1 {
		t.Errorf("inner = %+v", inner)
	}
}

func TestSourceConstGroupBecomesLiteralUnion(t *testing.T) {
	b := newSourceBuilder()
	pkg := types.NewPackage("example.com/app", "app")

	obj := types.NewTypeName(token.NoPos, pkg, "Status", nil)
	named := types.NewNamed(obj, types.Typ[types.String], nil)
	pkg.Scope().Insert(obj)
	for _, c := range []struct {
		name  string
		value string
	}{
		{name: "StatusActive", value: "active"},
		{name: "StatusDisabled", value: "disabled"},
	} {
		pkg.Scope().Insert(types.NewConst(token.NoPos, pkg, c.name, named, constant.MakeString(c.value)))
	}

	if err := b.collect(context.Background(), obj); err != nil {
		t.Fatalf("collect() error = %v", err)
	}

	def := b.reg.Get("Status")
	if def == nil {
		t.Fatal("Status not registered")
	}
	enum, ok := def.Inner.(*ir.EnumType)
	if !ok {
		t.Fatalf("inner is %T, want *ir.EnumType", def.Inner)
	}
	if enum.Repr.ReprKind != ir.ReprUntagged {
		t.Errorf("repr = %v, want untagged", enum.Repr.ReprKind)
	}
	if len(enum.Variants) != 2 {
		t.Fatalf("collected %d variants, want 2", len(enum.Variants))
	}

	values := make(map[any]bool, len(enum.Variants))
	for _, v := range enum.Variants {
		lit := v.(*ir.UnnamedVariant).Fields[0].(*ir.LiteralType)
		values[lit.Value] = true
	}
	if !values["active"] || !values["disabled"] {
		t.Errorf("variant values = %v", values)
	}
}

func TestSourceNamedScalarWithoutConsts(t *testing.T) {
	b := newSourceBuilder()
	pkg := types.NewPackage("example.com/app", "app")

	obj := types.NewTypeName(token.NoPos, pkg, "UserID", nil)
	types.NewNamed(obj, types.Typ[types.String], nil)
	pkg.Scope().Insert(obj)

	if err := b.collect(context.Background(), obj); err != nil {
		t.Fatalf("collect() error = %v", err)
	}

	def := b.reg.Get("UserID")
	if def == nil {
		t.Fatal("UserID not registered")
	}
	tuple, ok := def.Inner.(*ir.TupleType)
	if !ok || len(tuple.Elements) != 1 {
		t.Fatalf("inner = %+v, want single-element tuple", def.Inner)
	}
}

func TestSourceInterfaceDeclarationsSkipped(t *testing.T) {
	b := newSourceBuilder()
	pkg := types.NewPackage("example.com/app", "app")

	obj := types.NewTypeName(token.NoPos, pkg, "Doer", nil)
	types.NewNamed(obj, types.NewInterfaceType(nil, nil), nil)
	pkg.Scope().Insert(obj)

	if err := b.collect(context.Background(), obj); err != nil {
		t.Fatalf("collect() error = %v", err)
	}
	if b.reg.Len() != 0 {
		t.Errorf("interface declaration registered: %v", b.reg.Defs())
	}
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		tag      string
		wantName string
		wantOpts []string
	}{
		{tag: "", wantName: ""},
		{tag: "id", wantName: "id"},
		{tag: "id,omitempty", wantName: "id", wantOpts: []string{"omitempty"}},
		{tag: ",omitzero", wantName: "", wantOpts: []string{"omitzero"}},
		{tag: "-", wantName: "-"},
	}

	for _, tt := range tests {
		name, opts := parseJSONTag(tt.tag)
		if name != tt.wantName {
			t.Errorf("parseJSONTag(%q) name = %q, want %q", tt.tag, name, tt.wantName)
		}
		for _, o := range tt.wantOpts {
			if !opts[o] {
				t.Errorf("parseJSONTag(%q) missing option %q", tt.tag, o)
			}
		}
	}
}
