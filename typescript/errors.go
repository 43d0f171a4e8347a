package typescript

import (
	"errors"
	"fmt"

	"github.com/tsbind/tsbind/ir"
)

// Sentinel errors for failure kinds carrying no payload.
var (
	// ErrBigIntForbidden is returned when a wide numeric type is
	// encountered under the default BigIntFail policy.
	ErrBigIntForbidden = errors.New("the export configuration forbids exporting wide integer types (64-bit and larger) because plain JSON numbers cannot represent them losslessly; configure a BigInt policy to change this")

	// ErrAnonymousObject is returned when a top-level declaration target
	// is an object with no name.
	ErrAnonymousObject = errors.New("cannot export anonymous object; give the type a name")

	// ErrAnonymousEnum is returned when a top-level declaration target is
	// an enum with no name.
	ErrAnonymousEnum = errors.New("cannot export anonymous enum; give the type a name")
)

// ContextError wraps another error with the enclosing type and/or field
// name, so a deeply nested failure surfaces as a breadcrumb trail back to
// the export root.
type ContextError struct {
	// TypeName is the enclosing declaration's name, if known.
	TypeName string

	// FieldName is the enclosing field or variant name, if known.
	FieldName string

	// Err is the wrapped cause. Never nil.
	Err error
}

// Error implements error.
func (e *ContextError) Error() string {
	return fmt.Sprintf("failed to export type %q on field %q: %v", e.TypeName, e.FieldName, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *ContextError) Unwrap() error { return e.Err }

// withField wraps err with the given field or variant name.
func withField(fieldName string, err error) error {
	return &ContextError{FieldName: fieldName, Err: err}
}

// ForbiddenTypeNameError reports a declaration name that collides with a
// reserved word of the target language.
type ForbiddenTypeNameError struct {
	// Name is the offending declaration name.
	Name string
}

// Error implements error.
func (e *ForbiddenTypeNameError) Error() string {
	return fmt.Sprintf("type name %q is reserved by the TypeScript exporter; rename the type", e.Name)
}

// ForbiddenFieldNameError reports a field or variant name that collides
// with a reserved word of the target language.
type ForbiddenFieldNameError struct {
	// TypeName is the owning type's name.
	TypeName string

	// Name is the offending field or variant name.
	Name string
}

// Error implements error.
func (e *ForbiddenFieldNameError) Error() string {
	return fmt.Sprintf("field %q on type %q has a name reserved by the TypeScript exporter; rename the field", e.Name, e.TypeName)
}

// CannotExportError reports a top-level node kind that can never become a
// named declaration (e.g. a bare primitive).
type CannotExportError struct {
	// Kind is the offending node's kind.
	Kind ir.Kind
}

// Error implements error.
func (e *CannotExportError) Error() string {
	return fmt.Sprintf("node of kind %s cannot be exported as a named declaration", e.Kind)
}

// InternalError reports a state that should be unreachable when upstream
// construction is correct, such as a placeholder node reaching emission.
// It signals a bug in the producing layer, not a user error.
type InternalError struct {
	Message string
}

// Error implements error.
func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

// IoError is a pass-through for filesystem failures raised by the caller's
// own output layer. The emission engine never produces one.
type IoError struct {
	Err error
}

// Error implements error.
func (e *IoError) Error() string {
	return "io error: " + e.Err.Error()
}

// Unwrap returns the wrapped filesystem error.
func (e *IoError) Unwrap() error { return e.Err }
