package scaffold

import (
	"bytes"
	"fmt"
	"go/token"
	"path"
	"text/template"
	"time"

	"golang.org/x/tools/imports"

	"github.com/example/stubgen/internal/naming"
	"github.com/example/stubgen/internal/schema"
	scaffoldtmpl "github.com/example/stubgen/internal/templates/scaffold"
)

// DefaultRuntimeImport is the import path generated code uses for rowmap.
const DefaultRuntimeImport = "github.com/example/stubgen/rowmap"

// Options controls where and how files are generated.
type Options struct {
	Package       string // generated package name
	RuntimeImport string // import path of the rowmap runtime
	ModelsDir     string // directory of the entity files
	DocsDir       string // directory of mapping.md
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Package:       "models",
		RuntimeImport: DefaultRuntimeImport,
		ModelsDir:     "models",
		DocsDir:       "docs",
	}
}

// Generator renders entity files and documents from templates. Rendering
// is pure: the same input always yields the same bytes.
type Generator struct {
	opts  Options
	funcs template.FuncMap
}

// NewGenerator creates a new Generator. Empty options take their defaults.
func NewGenerator(opts Options) (*Generator, error) {
	def := DefaultOptions()
	if opts.Package == "" {
		opts.Package = def.Package
	}
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = def.RuntimeImport
	}
	if opts.ModelsDir == "" {
		opts.ModelsDir = def.ModelsDir
	}
	if opts.DocsDir == "" {
		opts.DocsDir = def.DocsDir
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}

	return &Generator{
		opts:  opts,
		funcs: scaffoldtmpl.TemplateFuncs(),
	}, nil
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// EntityPath returns the output path of an entity file.
func (g *Generator) EntityPath(name string) string {
	return path.Join(g.opts.ModelsDir, naming.ToSnakeCase(name)+".go")
}

// MappingPath returns the output path of the mapping document.
func (g *Generator) MappingPath() string {
	return path.Join(g.opts.DocsDir, "mapping.md")
}

// OverviewPath returns the output path of the overview document.
func (g *Generator) OverviewPath() string {
	return "README.md"
}

// GenerateEntity renders the Go source file of one entity.
func (g *Generator) GenerateEntity(e schema.Entity, rules schema.Rules) (GeneratedFile, error) {
	spec := g.buildEntitySpec(e, rules)
	filePath := g.EntityPath(e.Name)

	src, err := g.renderTemplate(scaffoldtmpl.GetEntityTemplate, "model.go", spec)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to render %s: %w", e.Name, err)
	}

	formatted, err := imports.Process(filePath, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting %s: %w", filePath, err)
	}

	return GeneratedFile{Path: filePath, Content: string(formatted)}, nil
}

// GenerateMapping renders the entity-to-table mapping document. It carries
// no timestamp, so equal registries produce equal documents.
func (g *Generator) GenerateMapping(reg *schema.Registry) (GeneratedFile, error) {
	content, err := g.renderTemplate(scaffoldtmpl.GetDocTemplate, "mapping.md", g.buildDocSpec(reg))
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to render mapping: %w", err)
	}
	return GeneratedFile{Path: g.MappingPath(), Content: string(content)}, nil
}

// GenerateOverview renders the README describing the generated package.
func (g *Generator) GenerateOverview(reg *schema.Registry, now time.Time) (GeneratedFile, error) {
	spec := g.buildDocSpec(reg)
	spec.Generated = now.UTC().Format(time.RFC3339)

	content, err := g.renderTemplate(scaffoldtmpl.GetDocTemplate, "readme.md", spec)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to render overview: %w", err)
	}
	return GeneratedFile{Path: g.OverviewPath(), Content: string(content)}, nil
}

// GenerateAll renders every entity in registry order, then the mapping
// document, then the overview.
func (g *Generator) GenerateAll(reg *schema.Registry, now time.Time) (*GeneratorResult, error) {
	result := &GeneratorResult{}

	for _, e := range reg.Entities() {
		file, err := g.GenerateEntity(e, reg.Rules(e.Name))
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, file)
	}

	mapping, err := g.GenerateMapping(reg)
	if err != nil {
		return nil, err
	}
	overview, err := g.GenerateOverview(reg, now)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, mapping, overview)

	result.NextSteps = []string{
		fmt.Sprintf("Import the %q package from %s/", g.opts.Package, g.opts.ModelsDir),
		"Replace the persistence placeholders with a real repository",
	}

	return result, nil
}

// renderTemplate renders one embedded template.
func (g *Generator) renderTemplate(load func(string) (string, error), name string, data any) ([]byte, error) {
	tmplContent, err := load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
