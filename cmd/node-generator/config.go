package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// Config holds the CLI settings. Environment variables provide the
// defaults, command-line flags override them.
type Config struct {
	Out            string `env:"NODEGEN_OUT" envDefault:"./generated"`
	Package        string `env:"NODEGEN_PACKAGE" envDefault:"node"`
	Manifest       string `env:"NODEGEN_MANIFEST"`
	Workers        int    `env:"NODEGEN_WORKERS" envDefault:"0"`
	Comments       bool   `env:"NODEGEN_COMMENTS" envDefault:"true"`
	MetricsFile    string `env:"NODEGEN_METRICS_FILE"`
	Debug          bool   `env:"NODEGEN_DEBUG"`
	ExportManifest string `env:"NODEGEN_EXPORT_MANIFEST"`

	// packageSet records an explicit -package flag, which takes
	// precedence over the manifest.
	packageSet bool
}

// loadConfig parses environ and then args.
func loadConfig(args []string, environ map[string]string, output io.Writer) (*Config, error) {
	cfg := new(Config)
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	fs := flag.NewFlagSet("node-generator", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory of the generated files")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "package name of the generated files")
	fs.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "YAML manifest selecting the variants; all variants when not given")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "variants generated concurrently; GOMAXPROCS when 0")
	fs.BoolVar(&cfg.Comments, "comments", cfg.Comments, "emit explanatory comments")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this textfile")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug output")
	fs.StringVar(&cfg.ExportManifest, "export-manifest", cfg.ExportManifest, "write the resolved selection as a manifest to this path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "package" {
			cfg.packageSet = true
		}
	})

	return cfg, nil
}
