// Package prommetrics exports dynarray operational metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := prommetrics.NewCollector(reg)
//	if err != nil { ... }
//	a, _ := dynarray.New[float64](2, dynarray.WithMetricsCollector(c))
package prommetrics

import (
	"time"

	"github.com/hupe1980/dynarray"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dynarray"

// Compile time check to ensure Collector satisfies the MetricsCollector interface.
var _ dynarray.MetricsCollector = (*Collector)(nil)

// Collector is a dynarray.MetricsCollector backed by Prometheus metrics.
type Collector struct {
	opLatency     *prometheus.HistogramVec
	ops           *prometheus.CounterVec
	reallocs      prometheus.Counter
	reallocCells  prometheus.Counter
	insertedCells prometheus.Counter
	bufferCells   prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of array operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of array operations by kind and status.",
		}, []string{"op", "status"}),
		reallocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reallocations_total",
			Help:      "Number of backing buffer reallocations.",
		}),
		reallocCells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reallocated_cells_total",
			Help:      "Cells allocated by buffer reallocations.",
		}),
		insertedCells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserted_cells_total",
			Help:      "Cells written by successful hyperslab inserts.",
		}),
		bufferCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "buffer_cells",
			Help:      "Size in cells of the most recently allocated buffer.",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.opLatency, c.ops, c.reallocs, c.reallocCells, c.insertedCells, c.bufferCells,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordRealloc implements dynarray.MetricsCollector.
func (c *Collector) RecordRealloc(_, newCells int, d time.Duration) {
	c.reallocs.Inc()
	c.reallocCells.Add(float64(newCells))
	c.bufferCells.Set(float64(newCells))
	c.opLatency.WithLabelValues("realloc", "success").Observe(d.Seconds())
}

// RecordInsert implements dynarray.MetricsCollector.
func (c *Collector) RecordInsert(cells int, d time.Duration, err error) {
	s := status(err)
	c.ops.WithLabelValues("insert", s).Inc()
	c.opLatency.WithLabelValues("insert", s).Observe(d.Seconds())
	if err == nil {
		c.insertedCells.Add(float64(cells))
	}
}

// RecordResize implements dynarray.MetricsCollector.
func (c *Collector) RecordResize(d time.Duration, err error) {
	s := status(err)
	c.ops.WithLabelValues("resize", s).Inc()
	c.opLatency.WithLabelValues("resize", s).Observe(d.Seconds())
}

// RecordSet implements dynarray.MetricsCollector.
func (c *Collector) RecordSet(err error) {
	c.ops.WithLabelValues("set", status(err)).Inc()
}
