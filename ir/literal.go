package ir

// LiteralType represents a concrete constant value standing in for a type,
// e.g. the literal 5, "foo" or true.
type LiteralType struct {
	// Value is the constant. Providers convert values to one of exactly
	// four types: string, int64, float64 or bool. A nil Value means
	// "no value" and renders as the null literal. Emitters can rely on
	// type assertions to these concrete types.
	Value any
}

// Kind returns KindLiteral.
func (*LiteralType) Kind() Kind { return KindLiteral }

func (*LiteralType) sealed() {}

// LitString returns a string literal type.
func LitString(v string) *LiteralType { return &LiteralType{Value: v} }

// LitInt returns an integer literal type.
func LitInt(v int64) *LiteralType { return &LiteralType{Value: v} }

// LitFloat returns a float literal type.
func LitFloat(v float64) *LiteralType { return &LiteralType{Value: v} }

// LitBool returns a boolean literal type.
func LitBool(v bool) *LiteralType { return &LiteralType{Value: v} }

// LitNone returns the "no value" literal type.
func LitNone() *LiteralType { return &LiteralType{} }
