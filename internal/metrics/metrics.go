// Package metrics exports generation counters in the Prometheus format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"node-generator/internal/gen"
	"node-generator/internal/rule"
)

const (
	namespace = "nodegen"
	subsystem = "generator"
)

// Recorder implements rule.Observer and gen.Metrics on its own registry.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Recorder struct {
	registry *prometheus.Registry
	rules    *prometheus.CounterVec
	variants prometheus.Counter
	failures prometheus.Counter
	bytes    prometheus.Counter
	duration prometheus.Histogram
}

// New constructs a Recorder with a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rules: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rules_applied_total",
				Help:      "Rule applications by rule name",
			},
			[]string{"rule"},
		),
		variants: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "variants_generated_total",
			Help:      "Variant files rendered",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "variants_failed_total",
			Help:      "Variants that could not be generated",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "output_bytes_total",
			Help:      "Bytes of formatted source rendered",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "variant_duration_seconds",
			Help:      "Time to build and render one variant",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}
	r.registry.MustRegister(r.rules, r.variants, r.failures, r.bytes, r.duration)

	return r
}

// RuleApplied counts one rule application.
func (r *Recorder) RuleApplied(_, rule string) {
	r.rules.WithLabelValues(rule).Inc()
}

// VariantGenerated counts a rendered variant.
func (r *Recorder) VariantGenerated(_ string, size int, elapsed time.Duration) {
	r.variants.Inc()
	r.bytes.Add(float64(size))
	r.duration.Observe(elapsed.Seconds())
}

// VariantFailed counts a failed variant.
func (r *Recorder) VariantFailed(string) {
	r.failures.Inc()
}

// Registry returns the registry the metrics are registered with.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format,
// as read by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Compile-time checks.
var (
	_ rule.Observer = (*Recorder)(nil)
	_ gen.Metrics   = (*Recorder)(nil)
)
