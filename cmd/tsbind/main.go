// Command tsbind generates TypeScript type declarations from Go packages.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tsbind/tsbind"
	"github.com/tsbind/tsbind/ir"
	"github.com/tsbind/tsbind/provider"
	"github.com/tsbind/tsbind/sink"
	"github.com/tsbind/tsbind/typescript"
)

const version = "0.3.0"

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate a TypeScript bindings file."`
	Check   CheckCmd   `cmd:"" help:"Run the export pipeline without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}

// fileConfig is the YAML configuration file schema.
type fileConfig struct {
	// Packages are the Go package patterns to analyze.
	Packages []string `yaml:"packages"`

	// Types restricts export to the named types. Empty exports all
	// exported named types.
	Types []string `yaml:"types"`

	// Out is the bindings file path.
	Out string `yaml:"out"`

	// Bigint selects the wide-integer policy: fail, string, number or
	// bigint.
	Bigint string `yaml:"bigint"`

	// Frontmatter is placed above the first declaration.
	Frontmatter string `yaml:"frontmatter"`

	// ModelOut, when set, also writes the collected type model as JSON.
	ModelOut string `yaml:"modelOut"`
}

type GenCmd struct {
	Config   string   `help:"YAML config file." short:"c" default:"tsbind.yaml"`
	Packages []string `help:"Go package patterns to analyze (overrides config)." short:"p"`
	Types    []string `help:"Restrict export to these type names."`
	Out      string   `help:"Output file for the bindings (overrides config)." short:"o"`
	Bigint   string   `help:"Wide-integer policy: fail, string, number, bigint."`
	ModelOut string   `help:"Also write the collected type model as JSON."`
}

func (c *GenCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if cfg.Out == "" {
		return fmt.Errorf("no output file configured (use --out or the config file)")
	}

	ctx := context.Background()
	gen, reg, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	if err := gen.ToFile(cfg.Out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d types)\n", cfg.Out, reg.Len())

	if cfg.ModelOut != "" {
		model, err := json.MarshalIndent(reg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding model: %w", err)
		}
		out := sink.NewFilesystem(filepath.Dir(cfg.ModelOut))
		if err := out.WriteFile(ctx, filepath.Base(cfg.ModelOut), model); err != nil {
			return fmt.Errorf("writing model: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", cfg.ModelOut)
	}
	return nil
}

// load reads the config file (when present) and applies flag overrides.
func (c *GenCmd) load() (*fileConfig, error) {
	cfg := &fileConfig{}
	data, err := os.ReadFile(c.Config)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", c.Config, err)
		}
	case os.IsNotExist(err):
		// Flags alone are fine.
	default:
		return nil, err
	}

	if len(c.Packages) > 0 {
		cfg.Packages = c.Packages
	}
	if len(c.Types) > 0 {
		cfg.Types = c.Types
	}
	if c.Out != "" {
		cfg.Out = c.Out
	}
	if c.Bigint != "" {
		cfg.Bigint = c.Bigint
	}
	if c.ModelOut != "" {
		cfg.ModelOut = c.ModelOut
	}
	if len(cfg.Packages) == 0 {
		return nil, fmt.Errorf("no packages configured (use --packages or the config file)")
	}
	return cfg, nil
}

type CheckCmd struct {
	Config   string   `help:"YAML config file." short:"c" default:"tsbind.yaml"`
	Packages []string `help:"Go package patterns to analyze (overrides config)." short:"p"`
	Types    []string `help:"Restrict export to these type names."`
	Bigint   string   `help:"Wide-integer policy: fail, string, number, bigint."`
}

func (c *CheckCmd) Run() error {
	gen := &GenCmd{Config: c.Config, Packages: c.Packages, Types: c.Types, Bigint: c.Bigint, Out: "-"}
	cfg, err := gen.load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	g, reg, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if _, err := g.Generate(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "ok: %d types\n", reg.Len())
	return nil
}

// buildGenerator runs the source provider and configures a generator from
// the file config.
func buildGenerator(ctx context.Context, cfg *fileConfig) (*tsbind.Generator, *ir.Registry, error) {
	mode, err := bigintMode(cfg.Bigint)
	if err != nil {
		return nil, nil, err
	}

	p := &provider.Source{}
	reg, err := p.Build(ctx, provider.SourceOptions{
		Packages:  cfg.Packages,
		RootTypes: cfg.Types,
	})
	if err != nil {
		return nil, nil, err
	}

	gen := tsbind.FromRegistry(reg).Bigint(mode)
	if cfg.Frontmatter != "" {
		gen.Frontmatter(cfg.Frontmatter)
	}
	return gen, reg, nil
}

// bigintMode parses the config's wide-integer policy name.
func bigintMode(name string) (typescript.BigIntMode, error) {
	switch name {
	case "", "fail":
		return typescript.BigIntFail, nil
	case "string":
		return typescript.BigIntString, nil
	case "number":
		return typescript.BigIntNumber, nil
	case "bigint":
		return typescript.BigIntLiteral, nil
	default:
		return typescript.BigIntFail, fmt.Errorf("unknown bigint policy %q (expected fail, string, number or bigint)", name)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tsbind"),
		kong.Description("Generate TypeScript type declarations from Go packages."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
