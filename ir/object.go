package ir

// ObjectType represents a struct-like named aggregate.
type ObjectType struct {
	// Name is the type identifier. Empty only for truly anonymous shapes;
	// an anonymous object at the top level of a declaration is rejected
	// by the emitter.
	Name string

	// Generics are the declared type parameter identifiers, in order.
	Generics []string

	// Fields are the object's fields, in declaration order.
	Fields []ObjectField

	// Tag, when non-empty, names a discriminant field carrying this
	// shape's own name as a string literal. Used for internally tagged
	// shapes; empty means no discriminant.
	Tag string
}

// Kind returns KindObject.
func (*ObjectType) Kind() Kind { return KindObject }

func (*ObjectType) sealed() {}

// Object returns an ObjectType with the given name and fields.
func Object(name string, fields ...ObjectField) *ObjectType {
	return &ObjectType{Name: name, Fields: fields}
}

// ObjectField is one field of an ObjectType.
type ObjectField struct {
	// Name is the serialized property name.
	Name string

	// Type is the field's type.
	Type DataType

	// Optional indicates the key may be absent from the payload.
	Optional bool

	// Flatten merges this field's own shape into the parent via an
	// intersection instead of nesting it under the key.
	Flatten bool
}

// Field returns a required, non-flattened ObjectField.
func Field(name string, typ DataType) ObjectField {
	return ObjectField{Name: name, Type: typ}
}

// OptionalField returns an ObjectField whose key may be absent.
func OptionalField(name string, typ DataType) ObjectField {
	return ObjectField{Name: name, Type: typ, Optional: true}
}

// FlattenField returns an ObjectField merged into its parent's shape.
func FlattenField(name string, typ DataType) ObjectField {
	return ObjectField{Name: name, Type: typ, Flatten: true}
}
