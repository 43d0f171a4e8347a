package ir

import json "github.com/goccy/go-json"

// JSON serialization support for the type model. All nodes include a "kind"
// field for discrimination, so a model dump can be inspected or diffed
// without knowing the Go types.

// MarshalJSON implements json.Marshaler for AnyType.
func (*AnyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{Kind: "any"})
}

// MarshalJSON implements json.Marshaler for PrimitiveType.
func (d *PrimitiveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
		BitSize       int    `json:"bitSize,omitempty"`
	}{
		Kind:          "primitive",
		PrimitiveKind: d.PrimitiveKind.String(),
		BitSize:       d.BitSize,
	})
}

// MarshalJSON implements json.Marshaler for LiteralType.
func (d *LiteralType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Value any    `json:"value"`
	}{Kind: "literal", Value: d.Value})
}

// MarshalJSON implements json.Marshaler for NullableType.
func (d *NullableType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string   `json:"kind"`
		Inner DataType `json:"inner"`
	}{Kind: "nullable", Inner: d.Inner})
}

// MarshalJSON implements json.Marshaler for RecordType.
func (d *RecordType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string   `json:"kind"`
		Key   DataType `json:"key"`
		Value DataType `json:"value"`
	}{Kind: "record", Key: d.Key, Value: d.Value})
}

// MarshalJSON implements json.Marshaler for ListType.
func (d *ListType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string   `json:"kind"`
		Element DataType `json:"element"`
	}{Kind: "list", Element: d.Element})
}

// MarshalJSON implements json.Marshaler for TupleType.
func (d *TupleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string     `json:"kind"`
		Name     string     `json:"name,omitempty"`
		Generics []string   `json:"generics,omitempty"`
		Elements []DataType `json:"elements"`
	}{Kind: "tuple", Name: d.Name, Generics: d.Generics, Elements: d.Elements})
}

// MarshalJSON implements json.Marshaler for ObjectType.
func (d *ObjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string        `json:"kind"`
		Name     string        `json:"name,omitempty"`
		Generics []string      `json:"generics,omitempty"`
		Fields   []ObjectField `json:"fields"`
		Tag      string        `json:"tag,omitempty"`
	}{Kind: "object", Name: d.Name, Generics: d.Generics, Fields: d.Fields, Tag: d.Tag})
}

// MarshalJSON implements json.Marshaler for ObjectField.
func (f ObjectField) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name     string   `json:"name"`
		Type     DataType `json:"type"`
		Optional bool     `json:"optional,omitempty"`
		Flatten  bool     `json:"flatten,omitempty"`
	}{Name: f.Name, Type: f.Type, Optional: f.Optional, Flatten: f.Flatten})
}

// MarshalJSON implements json.Marshaler for EnumType.
func (d *EnumType) MarshalJSON() ([]byte, error) {
	variants := make([]any, 0, len(d.Variants))
	for _, v := range d.Variants {
		variants = append(variants, marshalVariant(v))
	}
	return json.Marshal(&struct {
		Kind     string   `json:"kind"`
		Name     string   `json:"name,omitempty"`
		Generics []string `json:"generics,omitempty"`
		Repr     string   `json:"repr"`
		Tag      string   `json:"tag,omitempty"`
		Content  string   `json:"content,omitempty"`
		Variants []any    `json:"variants"`
	}{
		Kind:     "enum",
		Name:     d.Name,
		Generics: d.Generics,
		Repr:     d.Repr.ReprKind.String(),
		Tag:      d.Repr.Tag,
		Content:  d.Repr.Content,
		Variants: variants,
	})
}

func marshalVariant(v EnumVariant) any {
	switch v := v.(type) {
	case *UnitVariant:
		return struct {
			Shape string `json:"shape"`
			Name  string `json:"name"`
		}{Shape: "unit", Name: v.Name}
	case *UnnamedVariant:
		return struct {
			Shape  string     `json:"shape"`
			Name   string     `json:"name"`
			Fields []DataType `json:"fields"`
		}{Shape: "unnamed", Name: v.Name, Fields: v.Fields}
	case *NamedVariant:
		return struct {
			Shape  string        `json:"shape"`
			Name   string        `json:"name"`
			Fields []ObjectField `json:"fields"`
		}{Shape: "named", Name: v.Name, Fields: v.Fields}
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler for ReferenceType.
func (d *ReferenceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string     `json:"kind"`
		Name     string     `json:"name"`
		Generics []DataType `json:"generics,omitempty"`
	}{Kind: "reference", Name: d.Name, Generics: d.Generics})
}

// MarshalJSON implements json.Marshaler for GenericType.
func (d *GenericType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Ident string `json:"ident"`
	}{Kind: "generic", Ident: d.Ident})
}

// MarshalJSON implements json.Marshaler for PlaceholderType.
func (*PlaceholderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{Kind: "placeholder"})
}

// MarshalJSON implements json.Marshaler for TypeDef.
func (d *TypeDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name     string   `json:"name"`
		Comments []string `json:"comments,omitempty"`
		Export   *bool    `json:"export,omitempty"`
		Inner    DataType `json:"inner"`
	}{Name: d.Name, Comments: d.Comments, Export: d.Export, Inner: d.Inner})
}

// MarshalJSON implements json.Marshaler for Registry: an array of
// definitions in insertion order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Defs())
}
