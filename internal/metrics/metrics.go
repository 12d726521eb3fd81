package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level collectors. Registered once at init; safe for concurrent use.
var (
	// UnparseableSnapshots counts snapshots dropped from the breadth tally
	// because a price field did not parse as a number. The pipeline skips
	// them silently, so this counter is the only place that policy is visible.
	UnparseableSnapshots = NewCounter(prometheus.CounterOpts{
		Name: "breadth_unparseable_snapshots_total",
		Help: "Snapshots excluded from the advance/decline tally due to non-numeric prices.",
	})

	// BreadthRuns counts aggregation runs by outcome (ok, empty, error).
	BreadthRuns = NewCounterVec(prometheus.CounterOpts{
		Name: "breadth_runs_total",
		Help: "Breadth aggregation runs by outcome.",
	}, []string{"outcome"})
)

// NewCounter registers and returns a counter.
func NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	prometheus.MustRegister(c)
	return c
}

// NewCounterVec registers and returns a labeled counter.
func NewCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	prometheus.MustRegister(c)
	return c
}

// Handler adapts the prometheus scrape handler to gin for mounting at /metrics.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
