package typescript

import "strings"

// BigIntMode selects how wide numeric types (64-bit and larger integers,
// size types) are emitted. Plain JSON numbers cannot represent them
// losslessly, so the default is to fail until the caller opts in.
type BigIntMode int

const (
	// BigIntFail aborts the export with ErrBigIntForbidden (or with the
	// configured failure reason). This is the default because without
	// cooperation from the caller's serializer there is no lossless
	// representation to pick.
	BigIntFail BigIntMode = iota

	// BigIntString emits wide numerics as `string`. The caller's
	// serializer must encode them as strings.
	BigIntString

	// BigIntNumber emits wide numerics as `number`. JSON.parse truncates
	// values beyond 2^53; the caller accepts that risk.
	BigIntNumber

	// BigIntLiteral emits wide numerics as `BigInt`. The caller's
	// deserializer must produce BigInt values.
	BigIntLiteral
)

// CommentFormatter renders doc-comment lines into a comment block placed
// above a declaration. It must return the empty string when there are no
// lines.
type CommentFormatter func(lines []string) string

// JSDoc renders doc comments as a JSDoc block, so JSDoc attributes keep
// working in editors. It is the default comment formatter.
func JSDoc(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range lines {
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

// ExportConfig controls the behavior of the TypeScript exporter. Construct
// with NewExportConfig and chain setters; fields are independent and there
// is no cross-field validation.
type ExportConfig struct {
	// BigInt is the wide-numeric policy.
	BigInt BigIntMode

	// BigIntFailReason, when non-empty under BigIntFail, replaces the
	// generic forbidden error with a caller-supplied message.
	BigIntFailReason string

	// CommentExporter styles exported doc comments. nil disables comment
	// emission entirely.
	CommentExporter CommentFormatter

	// ExportByDefault controls whether types are exported unless they
	// opt out. It is a tri-state consumed by the discovery/orchestration
	// layer, not by the emission engine: nil (unset) exports everything
	// without an explicit override.
	ExportByDefault *bool
}

// NewExportConfig returns an ExportConfig with the default policies:
// wide numerics fail, comments render as JSDoc.
func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		BigInt:          BigIntFail,
		CommentExporter: JSDoc,
	}
}

// Bigint sets the wide-numeric policy.
func (c *ExportConfig) Bigint(mode BigIntMode) *ExportConfig {
	c.BigInt = mode
	return c
}

// BigintFailWithReason sets the BigIntFail policy with a caller-supplied
// message shown instead of the generic forbidden error.
func (c *ExportConfig) BigintFailWithReason(reason string) *ExportConfig {
	c.BigInt = BigIntFail
	c.BigIntFailReason = reason
	return c
}

// CommentStyle sets the comment formatter. Pass nil to disable comments.
func (c *ExportConfig) CommentStyle(f CommentFormatter) *ExportConfig {
	c.CommentExporter = f
	return c
}

// SetExportByDefault sets the tri-state export-by-default policy.
func (c *ExportConfig) SetExportByDefault(v bool) *ExportConfig {
	c.ExportByDefault = &v
	return c
}
