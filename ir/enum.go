package ir

// EnumReprKind identifies the wire-tagging convention of an enum.
type EnumReprKind int

const (
	// ReprExternal wraps each variant's payload under a key named after
	// the variant; unit variants are the bare variant-name string.
	ReprExternal EnumReprKind = iota

	// ReprInternal embeds the discriminant as a field inside the
	// variant's own object shape.
	ReprInternal

	// ReprAdjacent places the discriminant and the payload as sibling
	// fields.
	ReprAdjacent

	// ReprUntagged carries no discriminant; variants must be
	// distinguishable by shape alone. The model does not enforce this;
	// it is the caller's responsibility.
	ReprUntagged
)

// String returns the string representation of the representation kind.
func (k EnumReprKind) String() string {
	switch k {
	case ReprExternal:
		return "External"
	case ReprInternal:
		return "Internal"
	case ReprAdjacent:
		return "Adjacent"
	case ReprUntagged:
		return "Untagged"
	default:
		return "Unknown"
	}
}

// EnumRepr describes how an enum's variants are tagged on the wire.
type EnumRepr struct {
	ReprKind EnumReprKind

	// Tag is the discriminant field name (Internal and Adjacent only).
	Tag string

	// Content is the payload field name (Adjacent only).
	Content string
}

// External returns the externally tagged representation.
func External() EnumRepr { return EnumRepr{ReprKind: ReprExternal} }

// Internal returns the internally tagged representation with the given
// discriminant field name.
func Internal(tag string) EnumRepr {
	return EnumRepr{ReprKind: ReprInternal, Tag: tag}
}

// Adjacent returns the adjacently tagged representation with the given
// discriminant and payload field names.
func Adjacent(tag, content string) EnumRepr {
	return EnumRepr{ReprKind: ReprAdjacent, Tag: tag, Content: content}
}

// Untagged returns the untagged representation.
func Untagged() EnumRepr { return EnumRepr{ReprKind: ReprUntagged} }

// EnumType represents a tagged union.
type EnumType struct {
	// Name is the type identifier. Empty only for truly anonymous shapes;
	// an anonymous enum at the top level of a declaration is rejected by
	// the emitter.
	Name string

	// Generics are the declared type parameter identifiers, in order.
	Generics []string

	// Repr is the wire-tagging convention.
	Repr EnumRepr

	// Variants are the union's cases, in declaration order.
	Variants []EnumVariant
}

// Kind returns KindEnum.
func (*EnumType) Kind() Kind { return KindEnum }

func (*EnumType) sealed() {}

// Enum returns an EnumType with the given name, representation and variants.
func Enum(name string, repr EnumRepr, variants ...EnumVariant) *EnumType {
	return &EnumType{Name: name, Repr: repr, Variants: variants}
}

// EnumVariant is one case of an EnumType: unit (no data), unnamed
// (tuple-shaped data) or named (struct-shaped data).
type EnumVariant interface {
	// VariantName returns the case's name.
	VariantName() string

	// Payload returns the variant's data as a synthetic anonymous
	// DataType for recursive emission, or nil for unit variants.
	Payload() DataType

	sealed()
}

// UnitVariant is a case carrying no data.
type UnitVariant struct {
	Name string
}

// VariantName returns the case's name.
func (v *UnitVariant) VariantName() string { return v.Name }

// Payload returns nil: unit variants carry no data.
func (v *UnitVariant) Payload() DataType { return nil }

func (*UnitVariant) sealed() {}

// Unit returns a UnitVariant.
func Unit(name string) *UnitVariant { return &UnitVariant{Name: name} }

// UnnamedVariant is a case carrying tuple-shaped data.
type UnnamedVariant struct {
	Name string

	// Fields are the ordered payload element types.
	Fields []DataType
}

// VariantName returns the case's name.
func (v *UnnamedVariant) VariantName() string { return v.Name }

// Payload returns the variant's data as an anonymous tuple.
func (v *UnnamedVariant) Payload() DataType {
	return &TupleType{Elements: v.Fields}
}

func (*UnnamedVariant) sealed() {}

// Unnamed returns an UnnamedVariant with the given payload elements.
func Unnamed(name string, fields ...DataType) *UnnamedVariant {
	return &UnnamedVariant{Name: name, Fields: fields}
}

// NamedVariant is a case carrying struct-shaped data.
type NamedVariant struct {
	Name string

	// Fields are the payload's fields, in declaration order.
	Fields []ObjectField
}

// VariantName returns the case's name.
func (v *NamedVariant) VariantName() string { return v.Name }

// Payload returns the variant's data as an anonymous object.
func (v *NamedVariant) Payload() DataType {
	return &ObjectType{Fields: v.Fields}
}

func (*NamedVariant) sealed() {}

// Named returns a NamedVariant with the given payload fields.
func Named(name string, fields ...ObjectField) *NamedVariant {
	return &NamedVariant{Name: name, Fields: fields}
}
