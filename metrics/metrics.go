// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/nooverlap/selection"
)

const (
	namespace = "nooverlap"
	subsystem = "selection"
)

// sizeBuckets cover candidate and selected counts up to the default
// engine.max_intervals.
var sizeBuckets = prometheus.ExponentialBuckets(1, 4, 7)

// Collector holds the selection series.
type Collector struct {
	// Total counts solved queries. Labels: strategy.
	Total *prometheus.CounterVec
	// Failures counts queries that degraded to an empty selection. Labels: reason.
	Failures *prometheus.CounterVec
	// Candidates is the number of intervals per query.
	Candidates prometheus.Histogram
	// Selected is the number of kept intervals per query.
	Selected prometheus.Histogram
	// Duration is solve latency. Labels: strategy.
	Duration *prometheus.HistogramVec
}

var _ selection.Observer = (*Collector)(nil)

// New registers the selection series on reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Total: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "total",
			Help:      "Solved selection queries by strategy",
		}, []string{"strategy"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "failures_total",
			Help:      "Selection queries that fell back to an empty result",
		}, []string{"reason"}),
		Candidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "candidates",
			Help:      "Intervals per selection query",
			Buckets:   sizeBuckets,
		}),
		Selected: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "selected",
			Help:      "Intervals kept per selection query",
			Buckets:   sizeBuckets,
		}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Selection solve latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"strategy"}),
	}
}

// ObserveSelection records one solved query.
func (c *Collector) ObserveSelection(strategy string, candidates, selected int, elapsed time.Duration) {
	c.Total.WithLabelValues(strategy).Inc()
	c.Candidates.Observe(float64(candidates))
	c.Selected.Observe(float64(selected))
	c.Duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveFailure records one degraded query.
func (c *Collector) ObserveFailure(reason string) {
	c.Failures.WithLabelValues(reason).Inc()
}
