package gen

import "time"

// Metrics receives generation outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// VariantGenerated reports a rendered variant file.
	VariantGenerated(variant string, size int, elapsed time.Duration)
	// VariantFailed reports a variant that could not be generated.
	VariantFailed(variant string)
}

// NoopMetrics is the default Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) VariantGenerated(string, int, time.Duration) {}
func (NoopMetrics) VariantFailed(string)                        {}

var _ Metrics = NoopMetrics{}
