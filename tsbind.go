// Package tsbind generates TypeScript type declarations from Go types,
// via a language-neutral type model. The model is built by a provider
// (reflection or go/packages source analysis), then rendered by the
// typescript emission engine.
//
// Example:
//
//	err := tsbind.FromTypes(User{}, Post{}).
//	    Bigint(typescript.BigIntNumber).
//	    ToFile("./bindings.ts")
package tsbind

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tsbind/tsbind/ir"
	"github.com/tsbind/tsbind/provider"
	"github.com/tsbind/tsbind/sink"
	"github.com/tsbind/tsbind/typescript"
)

// Generator provides a fluent API for exporting declarations. Create with
// FromTypes or FromRegistry, configure with method chaining, and finish
// with Generate or ToFile. Each Generator owns its own configuration and
// registry, so independent exports can run concurrently.
type Generator struct {
	types       []any
	reg         *ir.Registry
	conf        *typescript.ExportConfig
	frontmatter string
}

// FromTypes creates a Generator for the given values' types, collected
// with the reflection provider. Pass zero values of the types you want
// exported.
func FromTypes(vals ...any) *Generator {
	return &Generator{types: vals, conf: typescript.NewExportConfig()}
}

// FromRegistry creates a Generator over an already-built type model.
func FromRegistry(reg *ir.Registry) *Generator {
	return &Generator{reg: reg, conf: typescript.NewExportConfig()}
}

// WithConfig replaces the export configuration wholesale.
func (g *Generator) WithConfig(conf *typescript.ExportConfig) *Generator {
	g.conf = conf
	return g
}

// Bigint sets the wide-numeric policy.
func (g *Generator) Bigint(mode typescript.BigIntMode) *Generator {
	g.conf.Bigint(mode)
	return g
}

// CommentStyle sets the comment formatter. Pass nil to disable comments.
func (g *Generator) CommentStyle(f typescript.CommentFormatter) *Generator {
	g.conf.CommentStyle(f)
	return g
}

// ExportByDefault sets whether types without an explicit override are
// exported.
func (g *Generator) ExportByDefault(v bool) *Generator {
	g.conf.SetExportByDefault(v)
	return g
}

// Frontmatter adds content to the top of the generated output, above the
// first declaration.
func (g *Generator) Frontmatter(content string) *Generator {
	g.frontmatter = content
	return g
}

// Registry returns the generator's type model, building it from the root
// types if needed.
func (g *Generator) Registry(ctx context.Context) (*ir.Registry, error) {
	if g.reg != nil {
		return g.reg, nil
	}
	p := &provider.Reflection{}
	reg, err := p.Build(ctx, provider.ReflectionOptions{
		RootTypes: provider.TypesOf(g.types...),
	})
	if err != nil {
		return nil, err
	}
	g.reg = reg
	return reg, nil
}

// Generate renders every eligible declaration, separated by blank lines.
// The first failing declaration aborts the export.
func (g *Generator) Generate() (string, error) {
	return g.generate(context.Background())
}

func (g *Generator) generate(ctx context.Context) (string, error) {
	reg, err := g.Registry(ctx)
	if err != nil {
		return "", err
	}

	var decls []string
	if g.frontmatter != "" {
		decls = append(decls, g.frontmatter)
	}
	for _, def := range reg.Defs() {
		if !g.eligible(def) {
			continue
		}
		decl, err := typescript.ExportDatatype(g.conf, def)
		if err != nil {
			return "", err
		}
		decls = append(decls, decl)
	}
	return strings.Join(decls, "\n\n") + "\n", nil
}

// eligible applies the per-type export override, falling back to the
// configuration's tri-state default. Unset exports everything.
func (g *Generator) eligible(def *ir.TypeDef) bool {
	if def.Export != nil {
		return *def.Export
	}
	if g.conf.ExportByDefault != nil {
		return *g.conf.ExportByDefault
	}
	return true
}

// ToFile generates the declarations and writes them to path atomically.
// Filesystem failures surface as *typescript.IoError.
func (g *Generator) ToFile(path string) error {
	return g.ToSink(context.Background(), sink.NewFilesystem(filepath.Dir(path)), filepath.Base(path))
}

// ToSink generates the declarations and writes them to the given sink.
func (g *Generator) ToSink(ctx context.Context, out sink.OutputSink, path string) error {
	content, err := g.generate(ctx)
	if err != nil {
		return err
	}
	if err := out.WriteFile(ctx, path, []byte(content)); err != nil {
		return &typescript.IoError{Err: err}
	}
	return nil
}
