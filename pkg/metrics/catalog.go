package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records catalog read latency, failures and result sizes.
type CatalogMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
	items    *prometheus.HistogramVec
}

// NewCatalogMetrics registers the catalog metrics on reg. A nil reg yields a no-op recorder.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Duration of catalog reads including price derivation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_query_failures_total",
		Help: "Catalog reads that returned an error.",
	}, []string{"operation"})
	items := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_items_returned",
		Help:    "Number of items returned by catalog reads.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"operation"})
	reg.MustRegister(duration, failures, items)
	return &CatalogMetrics{duration: duration, failures: failures, items: items}
}

// Observe records one catalog read that started at started.
func (c *CatalogMetrics) Observe(operation string, started time.Time, items int, err error) {
	if c == nil || c.duration == nil {
		return
	}
	op := normalizeLabel(operation)
	c.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		c.failures.WithLabelValues(op).Inc()
		return
	}
	c.items.WithLabelValues(op).Observe(float64(items))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
