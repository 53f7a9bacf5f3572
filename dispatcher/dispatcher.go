// Package dispatcher runs one generation task per spec on a bounded worker pool.
//
// Tasks are independent: each one owns its spec, its artifact and its
// destination file. A failing task records its error in the report and never
// cancels or blocks its siblings.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pablor21/enumgen/emitter"
	"github.com/pablor21/enumgen/engine"
	"github.com/pablor21/enumgen/formatter"
	"github.com/pablor21/enumgen/logger"
	"github.com/pablor21/enumgen/types"
)

// DefaultWorkers is the pool size used when none is configured
const DefaultWorkers = 8

// Dispatcher fans specs out to the engine and collects the results
type Dispatcher struct {
	workers   int
	backend   emitter.Backend
	formatter formatter.Formatter
	sink      Sink
	render    emitter.RenderOptions
	logger    logger.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithWorkers sets the maximum number of concurrent tasks. Values below 1 keep the default.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

func WithFormatter(f formatter.Formatter) Option {
	return func(d *Dispatcher) {
		if f != nil {
			d.formatter = f
		}
	}
}

func WithRenderOptions(opts emitter.RenderOptions) Option {
	return func(d *Dispatcher) { d.render = opts }
}

func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher that renders with backend and writes to sink
func New(backend emitter.Backend, sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		workers:   DefaultWorkers,
		backend:   backend,
		formatter: formatter.Noop{},
		sink:      sink,
		logger:    logger.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Workers returns the pool size
func (d *Dispatcher) Workers() int { return d.workers }

type taskResult struct {
	output  *types.Output
	failure *types.Failure
}

// Run generates every spec and returns once all tasks have finished.
// Results are reported in submission order. If ctx is done before a task
// is submitted, that task fails with types.ErrCancelled wrapping the context
// error; running tasks are not interrupted.
func (d *Dispatcher) Run(ctx context.Context, specs []types.EnumSpec) *types.Report {
	results := make([]taskResult, len(specs))
	owned := newClaims()
	declarer, _ := d.backend.(emitter.Declarer)

	g := new(errgroup.Group)
	g.SetLimit(d.workers)

	for i, spec := range specs {
		name := d.backend.FileName(spec.Name)

		// invalid specs fail inside their task; only valid ones claim a destination
		if engine.Validate(spec) == nil {
			var idents []string
			if declarer != nil {
				idents = declarer.Declarations(spec)
			}
			if err := owned.claim(spec.Name, name, idents); err != nil {
				results[i] = failed(spec, nil, types.NewSpecError(spec.Name, types.ErrInvalidSpec, err))
				continue
			}
		}

		if err := ctx.Err(); err != nil {
			results[i] = failed(spec, nil, types.NewSpecError(spec.Name, types.ErrCancelled, err))
			continue
		}

		g.Go(func() error {
			results[i] = d.runTask(ctx, spec, name)
			return nil
		})
	}
	_ = g.Wait()

	report := types.NewReport()
	for _, r := range results {
		if r.failure != nil {
			report.Failed = append(report.Failed, r.failure)
			continue
		}
		report.Succeeded = append(report.Succeeded, r.output)
	}
	return report
}

func (d *Dispatcher) runTask(ctx context.Context, spec types.EnumSpec, name string) taskResult {
	start := time.Now()

	a, err := engine.Generate(spec)
	if err != nil {
		d.logger.Warn("invalid enum spec", "enum", spec.Name, "error", err)
		return failed(spec, nil, err)
	}

	content, err := d.backend.Render(a, d.render)
	if err != nil {
		err = types.NewSpecError(spec.Name, types.ErrToolingFailure, fmt.Errorf("%s backend: %w", d.backend.Name(), err))
		d.logger.Error("render failed", "enum", spec.Name, "error", err)
		return failed(spec, a, err)
	}

	// A formatter failure still writes the unformatted text; the structural
	// content is complete without the style pass.
	var formatErr error
	formatted := false
	if _, noop := d.formatter.(formatter.Noop); !noop {
		out, err := d.formatter.Format(ctx, name, content)
		if err != nil {
			formatErr = types.NewSpecError(spec.Name, types.ErrToolingFailure, fmt.Errorf("%s formatter: %w", d.formatter.Name(), err))
		} else {
			content, formatted = out, true
		}
	}

	path, changed, err := d.sink.Write(ctx, name, content)
	if err != nil {
		kind := types.ErrWriteFailure
		if errors.Is(err, types.ErrOutOfDate) {
			kind = types.ErrOutOfDate
		}
		err = types.NewSpecError(spec.Name, kind, err)
		d.logger.Error("write failed", "enum", spec.Name, "path", path, "error", err)
		return failed(spec, a, errors.Join(err, formatErr))
	}
	if formatErr != nil {
		d.logger.Error("format failed", "enum", spec.Name, "path", path, "error", formatErr)
		return failed(spec, a, formatErr)
	}

	d.logger.Info("generated", "enum", spec.Name, "path", path, "bytes", len(content), "changed", changed, "duration", time.Since(start))
	return taskResult{output: &types.Output{
		Spec:      spec,
		Artifact:  a,
		Path:      path,
		Content:   content,
		Formatted: formatted,
		Changed:   changed,
	}}
}

// claims records which spec owns each destination file and each declared
// identifier. Files generated into one directory share one namespace.
type claims struct {
	files  map[string]string
	idents map[string]string
}

func newClaims() *claims {
	return &claims{files: make(map[string]string), idents: make(map[string]string)}
}

// claim takes file and idents for spec, or nothing if any of them is taken
func (c *claims) claim(spec, file string, idents []string) error {
	if owner, taken := c.files[file]; taken {
		return fmt.Errorf("destination %s is already generated from %s", file, owner)
	}
	for _, id := range idents {
		if owner, taken := c.idents[id]; taken {
			return fmt.Errorf("identifier %s is already declared by %s", id, owner)
		}
	}
	c.files[file] = spec
	for _, id := range idents {
		c.idents[id] = spec
	}
	return nil
}

func failed(spec types.EnumSpec, a *types.Artifact, err error) taskResult {
	return taskResult{failure: &types.Failure{Spec: spec, Artifact: a, Err: err}}
}
