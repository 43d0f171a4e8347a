// Package ir defines the language-neutral type model ("IR") that emitters
// transform into target language type declarations. IR nodes are immutable:
// providers fully construct them before handing them to an emitter, and
// emitters only read them.
package ir

// Kind identifies the category of a data type node.
type Kind int

const (
	KindAny         Kind = iota // Unknown/opaque type
	KindPrimitive               // Built-in scalar type
	KindLiteral                 // A concrete constant value standing in for a type
	KindNullable                // Wrapper: T or the null value
	KindRecord                  // Homomorphic key -> value mapping
	KindList                    // Homogeneous ordered sequence
	KindTuple                   // Fixed-arity heterogeneous sequence
	KindObject                  // Struct-like named aggregate
	KindEnum                    // Tagged union
	KindReference               // Named use of a previously-defined type
	KindGeneric                 // Bound type parameter
	KindPlaceholder             // Unresolved IR slot; always an internal error when emitted
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindPrimitive:
		return "Primitive"
	case KindLiteral:
		return "Literal"
	case KindNullable:
		return "Nullable"
	case KindRecord:
		return "Record"
	case KindList:
		return "List"
	case KindTuple:
		return "Tuple"
	case KindObject:
		return "Object"
	case KindEnum:
		return "Enum"
	case KindReference:
		return "Reference"
	case KindGeneric:
		return "Generic"
	case KindPlaceholder:
		return "Placeholder"
	default:
		return "Unknown"
	}
}

// DataType is the closed sum type over all IR node shapes.
type DataType interface {
	// Kind returns the node kind for type switching.
	Kind() Kind

	// Ensure only types in this package can implement DataType.
	sealed()
}

// AnyType represents an unknown or opaque type.
type AnyType struct{}

// Kind returns KindAny.
func (*AnyType) Kind() Kind { return KindAny }

func (*AnyType) sealed() {}

// Any returns the AnyType node.
func Any() *AnyType { return &AnyType{} }

// NullableType wraps another type, meaning "T or the null value".
//
// A NullableType wrapper and an ObjectField's Optional flag are related but
// distinct: Optional means the key may be absent, Nullable means the key is
// present but the value may be null. Emitters reconcile both.
type NullableType struct {
	// Inner is the wrapped type.
	Inner DataType
}

// Kind returns KindNullable.
func (*NullableType) Kind() Kind { return KindNullable }

func (*NullableType) sealed() {}

// NullableOf wraps a type in a NullableType.
func NullableOf(inner DataType) *NullableType {
	return &NullableType{Inner: inner}
}

// RecordType represents a homomorphic key -> value mapping.
type RecordType struct {
	// Key is the mapping's key type.
	Key DataType

	// Value is the mapping's value type.
	Value DataType
}

// Kind returns KindRecord.
func (*RecordType) Kind() Kind { return KindRecord }

func (*RecordType) sealed() {}

// Record returns a RecordType for a key/value mapping.
func Record(key, value DataType) *RecordType {
	return &RecordType{Key: key, Value: value}
}

// ListType represents a homogeneous ordered sequence.
type ListType struct {
	// Element is the sequence's element type.
	Element DataType
}

// Kind returns KindList.
func (*ListType) Kind() Kind { return KindList }

func (*ListType) sealed() {}

// List returns a ListType with the given element type.
func List(element DataType) *ListType {
	return &ListType{Element: element}
}

// ReferenceType is a named, possibly-generic use of a previously-defined
// type. Recursive shapes are represented as references resolved against a
// Registry rather than inlined, so self-referential graphs never expand
// infinitely.
type ReferenceType struct {
	// Name is the referenced type's declared name.
	Name string

	// Generics are the positional generic arguments. They must align 1:1
	// with the referenced type's declared parameter list; this is assumed
	// upstream-correct and not validated here.
	Generics []DataType
}

// Kind returns KindReference.
func (*ReferenceType) Kind() Kind { return KindReference }

func (*ReferenceType) sealed() {}

// Ref returns a ReferenceType for a named type.
func Ref(name string, generics ...DataType) *ReferenceType {
	return &ReferenceType{Name: name, Generics: generics}
}

// GenericType is a bound type parameter, rendered as its own identifier.
type GenericType struct {
	// Ident is the parameter's identifier (e.g. "T").
	Ident string
}

// Kind returns KindGeneric.
func (*GenericType) Kind() Kind { return KindGeneric }

func (*GenericType) sealed() {}

// Generic returns a GenericType for a type parameter.
func Generic(ident string) *GenericType {
	return &GenericType{Ident: ident}
}

// PlaceholderType is a sentinel for an IR slot that was never resolved.
// Encountering one during emission signals a bug in the producing layer.
type PlaceholderType struct{}

// Kind returns KindPlaceholder.
func (*PlaceholderType) Kind() Kind { return KindPlaceholder }

func (*PlaceholderType) sealed() {}

// Placeholder returns the PlaceholderType node.
func Placeholder() *PlaceholderType { return &PlaceholderType{} }
