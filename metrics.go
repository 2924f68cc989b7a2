package dynarray

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prommetrics provides a Prometheus implementation.
//
// Collectors may be shared by several arrays, so implementations should be
// safe for concurrent use even though a single Array is not.
type MetricsCollector interface {
	// RecordRealloc is called after the backing buffer was replaced.
	// oldCells and newCells are the buffer sizes in elements.
	RecordRealloc(oldCells, newCells int, duration time.Duration)

	// RecordInsert is called after each Insert. cells is the number of
	// elements in the inserted hyperslab, err is nil if successful.
	RecordInsert(cells int, duration time.Duration, err error)

	// RecordResize is called after each Resize, ResizeDim, Extend or ExtendDim.
	RecordResize(duration time.Duration, err error)

	// RecordSet is called after each Set.
	RecordSet(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRealloc(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordInsert(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordResize(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSet(error)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReallocCount      atomic.Int64
	ReallocCells      atomic.Int64
	ReallocTotalNanos atomic.Int64
	InsertCount       atomic.Int64
	InsertCells       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	ResizeCount       atomic.Int64
	ResizeErrors      atomic.Int64
	SetCount          atomic.Int64
	SetErrors         atomic.Int64
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(oldCells, newCells int, duration time.Duration) {
	b.ReallocCount.Add(1)
	b.ReallocCells.Add(int64(newCells))
	b.ReallocTotalNanos.Add(duration.Nanoseconds())
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(cells int, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.InsertCells.Add(int64(cells))
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(duration time.Duration, err error) {
	b.ResizeCount.Add(1)
	if err != nil {
		b.ResizeErrors.Add(1)
	}
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(err error) {
	b.SetCount.Add(1)
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReallocCount:    b.ReallocCount.Load(),
		ReallocCells:    b.ReallocCells.Load(),
		ReallocAvgNanos: avg(b.ReallocTotalNanos.Load(), b.ReallocCount.Load()),
		InsertCount:     b.InsertCount.Load(),
		InsertCells:     b.InsertCells.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		ResizeCount:     b.ResizeCount.Load(),
		ResizeErrors:    b.ResizeErrors.Load(),
		SetCount:        b.SetCount.Load(),
		SetErrors:       b.SetErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	ReallocCount    int64
	ReallocCells    int64
	ReallocAvgNanos int64
	InsertCount     int64
	InsertCells     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	ResizeCount     int64
	ResizeErrors    int64
	SetCount        int64
	SetErrors       int64
}
