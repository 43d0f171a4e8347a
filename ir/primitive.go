package ir

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool   PrimitiveKind = iota
	PrimitiveChar                 // Single character (serializes as a string)
	PrimitiveString               //
	PrimitiveInt                  // Signed integer (see BitSize)
	PrimitiveUint                 // Unsigned integer (see BitSize)
	PrimitiveFloat                // Floating point (see BitSize)
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveChar:
		return "Char"
	case PrimitiveString:
		return "String"
	case PrimitiveInt:
		return "Int"
	case PrimitiveUint:
		return "Uint"
	case PrimitiveFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// PrimitiveType represents a built-in scalar type.
type PrimitiveType struct {
	PrimitiveKind PrimitiveKind

	// BitSize specifies the size for numeric kinds (Int, Uint, Float).
	// Valid values:
	// - 0: platform-dependent size (size types)
	// - 8, 16, 32, 64, 128: explicit bit width
	//
	// Ignored for non-numeric primitive kinds.
	BitSize int
}

// Kind returns KindPrimitive.
func (*PrimitiveType) Kind() Kind { return KindPrimitive }

func (*PrimitiveType) sealed() {}

// Wide reports whether the primitive is a numeric type that may lose
// precision in a 64-bit float: 64-bit and 128-bit integers, plus the
// platform-size integers (BitSize 0). Emitters resolve wide numerics
// through a configured policy instead of mapping them to a plain number.
func (p *PrimitiveType) Wide() bool {
	switch p.PrimitiveKind {
	case PrimitiveInt, PrimitiveUint:
		return p.BitSize == 0 || p.BitSize >= 64
	default:
		return false
	}
}

// Convenience constructors for common primitives.

// Bool returns a PrimitiveType for bool.
func Bool() *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveBool}
}

// Char returns a PrimitiveType for a single character.
func Char() *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveChar}
}

// String returns a PrimitiveType for string.
func String() *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveString}
}

// Int returns a PrimitiveType for a signed integer with the given bit size.
// Use 0 for the platform-dependent size type.
func Int(bitSize int) *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveInt, BitSize: bitSize}
}

// Uint returns a PrimitiveType for an unsigned integer with the given bit
// size. Use 0 for the platform-dependent size type.
func Uint(bitSize int) *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveUint, BitSize: bitSize}
}

// Float returns a PrimitiveType for a float with the given bit size.
func Float(bitSize int) *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: PrimitiveFloat, BitSize: bitSize}
}

// I32 returns a PrimitiveType for a 32-bit signed integer.
func I32() *PrimitiveType { return Int(32) }

// I64 returns a PrimitiveType for a 64-bit signed integer.
func I64() *PrimitiveType { return Int(64) }

// U64 returns a PrimitiveType for a 64-bit unsigned integer.
func U64() *PrimitiveType { return Uint(64) }

// F64 returns a PrimitiveType for a 64-bit float.
func F64() *PrimitiveType { return Float(64) }
