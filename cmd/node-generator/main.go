// Package main provides the CLI entrypoint for node-generator.
//
// node-generator synthesizes the family of cache node types:
//   - Selects variants from a YAML manifest, or all of them
//   - Composes every variant from orthogonal rules
//   - Renders one gofmt-clean file per variant plus a factory
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"node-generator/internal/diagnostic"
	"node-generator/internal/gen"
	"node-generator/internal/log"
	"node-generator/internal/manifest"
	"node-generator/internal/metrics"
	"node-generator/internal/rule"
	"node-generator/internal/variant"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], env.ToMap(os.Environ()), os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, environ map[string]string, stderr io.Writer) int {
	cfg, err := loadConfig(args, environ, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 2
	}

	log.Init(cfg.Debug, stderr)
	logger := log.GetCtxLogger(log.WithScope(ctx, "main"))

	configs, pkg, ok := selectVariants(ctx, cfg)
	if !ok {
		return 1
	}

	if cfg.ExportManifest != "" {
		if err := manifest.WriteFile(manifest.FromConfigs(pkg, configs), cfg.ExportManifest); err != nil {
			logger.Error().Err(err).Msg("exporting manifest")
			return 1
		}

		logger.Info().Str("path", cfg.ExportManifest).Msg("manifest exported")
	}

	recorder := metrics.New()
	defer writeMetrics(cfg, recorder, logger)

	genCtx := log.WithScope(ctx, "gen")
	g := gen.NewGenerator(
		gen.GeneratorConfig{
			PackageName:      pkg,
			OutputDir:        cfg.Out,
			GenerateComments: cfg.Comments,
			Workers:          cfg.Workers,
		},
		gen.WithEngine(rule.NewDefaultEngine(rule.WithObserver(recorder))),
		gen.WithLogger(log.GetCtxLogger(genCtx)),
		gen.WithMetrics(recorder),
	)

	files, err := g.Generate(genCtx, configs)
	if err != nil {
		logger.Error().Err(err).Msg("generation failed")
		return 1
	}

	if err := gen.WriteFiles(files, cfg.Out); err != nil {
		logger.Error().Err(err).Msg("writing files")
		return 1
	}

	logger.Info().Str("out", cfg.Out).Int("files", len(files)).Msg("done")

	return 0
}

// selectVariants resolves the manifest, or every variant without one, and
// reports the diagnostics. ok is false when the selection is unusable.
func selectVariants(ctx context.Context, cfg *Config) ([]variant.Config, string, bool) {
	logger := log.GetCtxLogger(log.WithScope(ctx, "manifest"))

	if cfg.Manifest == "" {
		return variant.Enumerate(), cfg.Package, true
	}

	f, err := manifest.LoadFile(cfg.Manifest)
	if err != nil {
		logger.Error().Err(err).Msg("loading manifest")
		return nil, "", false
	}

	pkg := cfg.Package
	if f.Package != "" && !cfg.packageSet {
		pkg = f.Package
	}

	configs, diags := f.Resolve()
	report(logger, diags)

	if diags.HasErrors() {
		logger.Error().Int("errors", len(diags.Errors)).Msg("manifest is invalid")
		return nil, "", false
	}

	return configs, pkg, true
}

func report(logger zerolog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var e *zerolog.Event

		switch d.Severity {
		case diagnostic.DiagnosticError:
			e = logger.Error()
		case diagnostic.DiagnosticWarning:
			e = logger.Warn()
		default:
			e = logger.Debug()
		}

		e.Msg(d.String())
	}
}

func writeMetrics(cfg *Config, recorder *metrics.Recorder, logger zerolog.Logger) {
	if cfg.MetricsFile == "" {
		return
	}

	if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error().Err(err).Msg("writing metrics")
	}
}
