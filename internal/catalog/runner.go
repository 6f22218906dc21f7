package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/sync/errgroup"
)

// Result labels for patterns_demo_runs_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the runner's collectors and the registry they live on.
type Metrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the runner collectors on reg.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		registry: reg,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patterns_demo_runs_total",
				Help: "Total number of pattern demos run.",
			},
			[]string{"pattern", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "patterns_demo_duration_seconds",
				Help:    "Time spent running a pattern demo.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"pattern"},
		),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("catalog: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(name string, d time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.runs.WithLabelValues(name, result).Inc()
	m.duration.WithLabelValues(name).Observe(d.Seconds())
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("catalog: gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("catalog: encode metrics: %w", err)
		}
	}
	return nil
}

// Failure is one failed run. Index is the position in the Run arguments, so
// a pattern requested twice can fail twice.
type Failure struct {
	Index int
	Name  string
	Err   error
}

// RunError is returned by Run when one or more demos fail. Output of the
// successful demos has already been written.
type RunError struct {
	Failed []Failure
}

func (e *RunError) Error() string {
	if len(e.Failed) == 1 {
		f := e.Failed[0]
		return fmt.Sprintf("catalog: pattern %q failed: %v", f.Name, f.Err)
	}
	return fmt.Sprintf("catalog: %d pattern runs failed", len(e.Failed))
}

// Err returns the first failure recorded for name, or nil.
func (e *RunError) Err(name string) error {
	for _, f := range e.Failed {
		if f.Name == name {
			return f.Err
		}
	}
	return nil
}

// Runner runs demos concurrently and writes their output in request order.
type Runner struct {
	parallelism int
	logger      *slog.Logger
	metrics     *Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithParallelism caps how many demos run at once; n < 1 means 1.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) { r.parallelism = max(n, 1) }
}

// WithLogger sets the logger used for per-demo records.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records each run on m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{parallelism: 1, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type outcome struct {
	buf bytes.Buffer
	err error
}

// Run executes patterns and writes each one's output to w under a
// "== <name> ==" header, in the order given. A failing demo does not stop the
// others; its partial output is still written and Run returns a *RunError.
// Cancelling ctx stops demos that have not started.
func (r *Runner) Run(ctx context.Context, w io.Writer, patterns ...Pattern) error {
	results := make([]outcome, len(patterns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, p := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			start := time.Now()
			err := p.Run(gctx, &results[i].buf)
			elapsed := time.Since(start)

			results[i].err = err
			if r.metrics != nil {
				r.metrics.observe(p.Name, elapsed, err)
			}
			if err != nil {
				r.logger.Error("demo failed", "pattern", p.Name, "err", err)
			} else {
				r.logger.Debug("demo finished", "pattern", p.Name, "elapsed", elapsed)
			}
			return nil
		})
	}
	_ = g.Wait()

	var failed []Failure
	for i, p := range patterns {
		if _, err := fmt.Fprintf(w, "== %s ==\n", p.Name); err != nil {
			return err
		}
		if _, err := results[i].buf.WriteTo(w); err != nil {
			return err
		}
		if err := results[i].err; err != nil {
			failed = append(failed, Failure{Index: i, Name: p.Name, Err: err})
		}
	}
	if failed != nil {
		return &RunError{Failed: failed}
	}
	return nil
}
