// Package metrics collects in-process instrumentation: Prometheus counters
// and timings for report composition, plus runtime memory snapshots.
//
// The collectors register on a private registry so the package never touches
// Prometheus global state. There is no network listener; the registry is
// rendered on demand in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector aggregates the application's Prometheus metrics on a private
// registry.
type Collector struct {
	registry *prometheus.Registry

	reportsTotal    *prometheus.CounterVec
	reportErrors    *prometheus.CounterVec
	composeDuration *prometheus.HistogramVec
	exponentLast    prometheus.Gauge
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lhccalc_reports_total",
			Help: "Number of reports composed, by variant.",
		}, []string{"variant"}),
		reportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lhccalc_report_errors_total",
			Help: "Number of report compositions that failed, by variant.",
		}, []string{"variant"}),
		composeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lhccalc_compose_duration_seconds",
			Help:    "Wall-clock time spent composing a report.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"variant"}),
		exponentLast: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lhccalc_exponent_last",
			Help: "Exponent N of the most recent report.",
		}),
	}

	registry.MustRegister(c.reportsTotal, c.reportErrors, c.composeDuration, c.exponentLast)
	return c
}

// ObserveReport records one report composition: its variant, exponent,
// duration, and whether it failed.
func (c *Collector) ObserveReport(variant string, exponent int, elapsed time.Duration, err error) {
	c.exponentLast.Set(float64(exponent))
	c.composeDuration.WithLabelValues(variant).Observe(elapsed.Seconds())
	if err != nil {
		c.reportErrors.WithLabelValues(variant).Inc()
		return
	}
	c.reportsTotal.WithLabelValues(variant).Inc()
}

// Dump renders the registry in the Prometheus text exposition format.
//
// Parameters:
//   - w: The destination writer.
//
// Returns:
//   - error: A gather or encoding failure.
func (c *Collector) Dump(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("encoding metric family %q: %w", family.GetName(), err)
		}
	}
	return nil
}
