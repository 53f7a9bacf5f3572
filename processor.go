// Package enumgen generates enumeration lookup code from declarative specs.
//
// Specs come from a config file and from @enum annotations in Go sources.
// Each spec is turned into a structural artifact, rendered by a backend,
// formatted and written to its own file by an isolated task.
package enumgen

import (
	"context"
	"fmt"

	"github.com/pablor21/enumgen/config"
	"github.com/pablor21/enumgen/dispatcher"
	"github.com/pablor21/enumgen/emitter"
	"github.com/pablor21/enumgen/formatter"
	"github.com/pablor21/enumgen/logger"
	"github.com/pablor21/enumgen/source"
	"github.com/pablor21/enumgen/types"
)

// Mode selects where rendered files go
type Mode int

const (
	// ModeWrite writes files under the output directory
	ModeWrite Mode = iota
	// ModeCheck compares against the output directory and reports drift
	ModeCheck
	// ModeDryRun renders everything in memory without touching the disk
	ModeDryRun
)

type processOptions struct {
	mode     Mode
	logger   logger.Logger
	registry *emitter.Registry
	sink     dispatcher.Sink
}

// ProcessOption customizes a run
type ProcessOption func(*processOptions)

func WithMode(m Mode) ProcessOption {
	return func(o *processOptions) { o.mode = m }
}

func WithLogger(l logger.Logger) ProcessOption {
	return func(o *processOptions) { o.logger = l }
}

// WithRegistry replaces the built-in backend registry
func WithRegistry(r *emitter.Registry) ProcessOption {
	return func(o *processOptions) { o.registry = r }
}

// WithSink overrides the sink chosen by the mode
func WithSink(s dispatcher.Sink) ProcessOption {
	return func(o *processOptions) { o.sink = s }
}

// Process generates the specs of the default configuration
func Process(ctx context.Context, opts ...ProcessOption) (*types.Report, error) {
	return ProcessWithConfig(ctx, config.NewDefaultConfig(), opts...)
}

// ProcessWithConfig generates every spec declared by cfg. Configuration
// problems are returned as an error before any task starts; per-spec
// failures are only recorded in the report.
func ProcessWithConfig(ctx context.Context, cfg *config.Config, opts ...ProcessOption) (*types.Report, error) {
	o := processOptions{mode: ModeWrite}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewDefaultLogger()
	}
	if o.registry == nil {
		o.registry = emitter.DefaultRegistry()
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	backend, err := o.registry.Get(cfg.Output.Backend)
	if err != nil {
		return nil, err
	}

	f, err := formatter.New(cfg.FormatterName(backend.Formatter()), cfg.Formatter.Command)
	if err != nil {
		return nil, err
	}

	specs, err := collectSpecs(cfg)
	if err != nil {
		return nil, err
	}

	sink := o.sink
	if sink == nil {
		sink = newSink(o.mode, cfg.Output.Dir)
	}

	o.logger.Debug("starting generation",
		"specs", len(specs), "backend", backend.Name(), "formatter", f.Name(),
		"workers", cfg.Workers, "dir", cfg.Output.Dir)

	d := dispatcher.New(backend, sink,
		dispatcher.WithWorkers(cfg.Workers),
		dispatcher.WithFormatter(f),
		dispatcher.WithRenderOptions(emitter.RenderOptions{
			Package: cfg.Output.Package,
			Header:  cfg.Output.Header,
		}),
		dispatcher.WithLogger(o.logger),
	)
	report := d.Run(ctx, specs)

	if !report.OK() {
		o.logger.Warn("generation finished with failures", "succeeded", len(report.Succeeded), "failed", len(report.Failed))
	}
	return report, nil
}

// collectSpecs returns the configured specs followed by the annotated ones
func collectSpecs(cfg *config.Config) ([]types.EnumSpec, error) {
	specs := append([]types.EnumSpec(nil), cfg.Specs...)
	if len(cfg.Sources) == 0 {
		return specs, nil
	}
	found, err := source.Scan(cfg.SourceDir(), cfg.Sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sources: %w", err)
	}
	return append(specs, found...), nil
}

func newSink(mode Mode, dir string) dispatcher.Sink {
	switch mode {
	case ModeCheck:
		return dispatcher.NewCheckSink(dir)
	case ModeDryRun:
		return dispatcher.NewMemorySink()
	default:
		return dispatcher.NewFileSink(dir)
	}
}
