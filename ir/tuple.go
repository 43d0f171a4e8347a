package ir

// TupleType represents a fixed-arity heterogeneous sequence. It also
// stands in for unnamed ("tuple struct") declarations, in which case Name
// is the declaration's name.
type TupleType struct {
	// Name is the declaration name, or empty for an anonymous tuple.
	Name string

	// Generics are the declared type parameter identifiers, in order.
	Generics []string

	// Elements are the ordered element types.
	Elements []DataType
}

// Kind returns KindTuple.
func (*TupleType) Kind() Kind { return KindTuple }

func (*TupleType) sealed() {}

// Tuple returns an anonymous TupleType with the given elements.
func Tuple(elements ...DataType) *TupleType {
	return &TupleType{Elements: elements}
}
