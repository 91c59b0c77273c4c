package gen

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"node-generator/internal/rule"
	"node-generator/internal/variant"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory comments.
	GenerateComments bool
	// Workers bounds the number of variants generated concurrently.
	// Zero or less means GOMAXPROCS.
	Workers int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "node",
		OutputDir:        "./generated",
		GenerateComments: true,
		Workers:          runtime.GOMAXPROCS(0),
	}
}

// Generator renders node variants into Go source files.
// It is safe for concurrent use.
type Generator struct {
	config  GeneratorConfig
	engine  *rule.Engine
	logger  zerolog.Logger
	metrics Metrics
}

// Option configures a Generator.
type Option func(*Generator)

// WithEngine replaces the default rule engine.
func WithEngine(e *rule.Engine) Option {
	return func(g *Generator) {
		g.engine = e
	}
}

// WithLogger sets the logger used for progress reports.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithMetrics reports generation outcomes to m.
func WithMetrics(m Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{
		config:  config,
		logger:  zerolog.Nop(),
		metrics: NoopMetrics{},
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.engine == nil {
		g.engine = rule.NewDefaultEngine()
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "psaw.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per variant, parents first, followed by the
// factory file. Variants are generated concurrently; the output order
// only depends on the input set. The first failure cancels the run.
func (g *Generator) Generate(ctx context.Context, configs []variant.Config) ([]GeneratedFile, error) {
	ordered, err := orderByHierarchy(configs)
	if err != nil {
		return nil, err
	}

	workers := g.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	files := make([]GeneratedFile, len(ordered))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, cfg := range ordered {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			start := time.Now()

			file, err := g.generateVariant(cfg)
			if err != nil {
				g.metrics.VariantFailed(cfg.Name())
				return fmt.Errorf("generating %s: %w", cfg.Name(), err)
			}

			files[i] = *file
			g.metrics.VariantGenerated(cfg.Name(), len(file.Content), time.Since(start))

			g.logger.Debug().Ctx(egCtx).
				Str("variant", cfg.Name()).
				Int("bytes", len(file.Content)).
				Msg("variant generated")

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	factory, err := g.generateFactory(ordered)
	if err != nil {
		return nil, fmt.Errorf("generating factory: %w", err)
	}

	files = append(files, *factory)

	g.logger.Info().Ctx(ctx).
		Int("variants", len(ordered)).
		Int("files", len(files)).
		Msg("generation finished")

	return files, nil
}

// generateVariant builds and renders a single variant.
func (g *Generator) generateVariant(cfg variant.Config) (*GeneratedFile, error) {
	art, err := g.engine.Generate(cfg)
	if err != nil {
		return nil, err
	}

	data, err := g.buildTemplateData(art)
	if err != nil {
		return nil, err
	}

	return g.render(nodeTemplate, data.Filename, data)
}

// render executes a template and formats the result.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := g.format(filename, buf.Bytes())
	if err != nil {
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, err
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// format gofmt-formats src and groups its imports. On failure the
// unformatted source is written next to the output as a debugging aid.
func (g *Generator) format(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			if werr := writeDebugUnformatted(g.config.OutputDir, filename, src); werr != nil {
				g.logger.Warn().Err(werr).Str("file", filename).Msg("writing unformatted source")
			}
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

// Template for a node file

var nodeTemplate = template.Must(template.New("node").Parse(`// Code generated by node-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Doc}}// {{.}}
{{end}}{{if .Directive}}//
//{{.Directive}}
{{end}}type {{.TypeName}}{{.TypeParams}} struct {
{{range .Embeds}}	{{.}}
{{end}}{{if and .Embeds .Fields}}
{{end}}{{range .Fields}}	{{.Name}} {{.Type}}{{if .Comment}} // {{.Comment}}{{end}}
{{end}}}
{{range .Methods}}
{{range .Comment}}// {{.}}
{{end}}func {{.Signature}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}`))
