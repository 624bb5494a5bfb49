// Package binomial provides the preconditioned binomial evaluator.
// This file contains concrete observer implementations for the Observer pattern.
package binomial

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// EvaluationObserver receives the final diagnostics of each evaluation.
// Observers replace the side-channel warnings of the original design:
// fallback and non-convergence events become observable values instead of
// log noise the caller cannot test.
type EvaluationObserver interface {
	// Observe is called once per evaluation with the final diagnostics.
	// Implementations must not block; evaluations are latency-sensitive.
	Observe(diag Diagnostics)
}

// ─────────────────────────────────────────────────────────────────────────────
// Channel Observer
// ─────────────────────────────────────────────────────────────────────────────

// ChannelObserver forwards diagnostics to a channel, bridging the Observer
// pattern to channel-based consumers such as the batch progress display.
type ChannelObserver struct {
	channel chan<- Diagnostics
}

// NewChannelObserver creates an observer that sends diagnostics to a channel.
// The channel should have sufficient buffer capacity to avoid drops.
//
// Parameters:
//   - ch: The channel to send diagnostics to. If nil, diagnostics are discarded.
//
// Returns:
//   - *ChannelObserver: A new observer that forwards to the channel.
func NewChannelObserver(ch chan<- Diagnostics) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Observe implements EvaluationObserver by sending to the channel.
// Uses non-blocking send to avoid stalling evaluations when the channel is full.
func (o *ChannelObserver) Observe(diag Diagnostics) {
	if o.channel == nil {
		return
	}
	select {
	case o.channel <- diag:
	default:
		// Channel full, drop (consumers catch up on the next evaluation)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs evaluation diagnostics using zerolog.
// Routine series evaluations are logged at debug level; fallbacks and
// non-converged series, being the events worth operator attention, at warn.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer that logs diagnostics.
//
// Parameters:
//   - logger: The zerolog logger to use.
//
// Returns:
//   - *LoggingObserver: A new observer that logs to zerolog.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Observe implements EvaluationObserver by logging the diagnostics.
func (o *LoggingObserver) Observe(diag Diagnostics) {
	event := o.logger.Debug()
	switch {
	case diag.UsedFallback:
		event = o.logger.Warn().Str("reason", "series ratio beyond convergence boundary")
	case diag.Path == PathSeries && !diag.Converged:
		event = o.logger.Warn().
			Str("reason", "series did not meet tolerance within term budget").
			Float64("last_term_abs", diag.LastTermAbs)
	}
	event.
		Str("path", string(diag.Path)).
		Int("terms_used", diag.TermsUsed).
		Bool("converged", diag.Converged).
		Msg("binomial evaluation")
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

var (
	// evaluationsTotal counts evaluations by the branch that produced the
	// result. Registered once globally to avoid duplicate registration errors.
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binomcalc_evaluations_total",
			Help: "Total number of binomial evaluations by evaluation path",
		},
		[]string{"path"},
	)
	// nonConvergedTotal counts series evaluations that exhausted their
	// term budget without meeting the tolerance.
	nonConvergedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "binomcalc_series_nonconverged_total",
		Help: "Total number of series evaluations that did not converge",
	})
	// seriesTerms tracks how many terms the series path needed.
	seriesTerms = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "binomcalc_series_terms",
		Help:    "Number of terms used by series evaluations",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

// MetricsObserver exports evaluation diagnostics to Prometheus.
type MetricsObserver struct {
	evaluations  *prometheus.CounterVec
	nonConverged prometheus.Counter
	terms        prometheus.Histogram
}

// NewMetricsObserver creates an observer that updates Prometheus metrics.
//
// Returns:
//   - *MetricsObserver: A new observer that exports to Prometheus.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		evaluations:  evaluationsTotal,
		nonConverged: nonConvergedTotal,
		terms:        seriesTerms,
	}
}

// Observe implements EvaluationObserver by updating the Prometheus metrics.
func (o *MetricsObserver) Observe(diag Diagnostics) {
	o.evaluations.WithLabelValues(string(diag.Path)).Inc()
	if diag.Path == PathSeries {
		o.terms.Observe(float64(diag.TermsUsed))
		if !diag.Converged {
			o.nonConverged.Inc()
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer (Null Object Pattern)
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver is a null object that discards all diagnostics.
// Useful for testing or when observation is not needed.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer that discards diagnostics.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Observe implements EvaluationObserver by doing nothing.
func (o *NoOpObserver) Observe(diag Diagnostics) {
	// Intentionally empty - Null Object pattern
}
