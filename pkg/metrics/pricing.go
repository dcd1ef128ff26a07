package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records combo pricing activity.
type PricingMetrics struct {
	duration *prometheus.HistogramVec
	quotes   *prometheus.CounterVec
	displays *prometheus.CounterVec
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "combo_pricing_duration_seconds",
		Help:    "Duration of combo pricing computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "combo_quotes_total",
		Help: "Draft quote computations by outcome.",
	}, []string{"outcome"})
	displays := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "combo_displays_total",
		Help: "Saved-combo display computations by activation state.",
	}, []string{"state"})
	reg.MustRegister(duration, quotes, displays)
	return &PricingMetrics{
		duration: duration,
		quotes:   quotes,
		displays: displays,
	}
}

// ObserveDuration records the duration for the named operation.
func (p *PricingMetrics) ObserveDuration(operation string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncQuote counts a draft quote computation with the given outcome.
func (p *PricingMetrics) IncQuote(outcome string) {
	if p == nil || p.quotes == nil {
		return
	}
	p.quotes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncDisplay counts a saved-combo display computation.
func (p *PricingMetrics) IncDisplay(state string) {
	if p == nil || p.displays == nil {
		return
	}
	p.displays.WithLabelValues(normalizeLabel(state)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
