package dynarray

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordRealloc(16, 64, 2*time.Microsecond)
	m.RecordRealloc(64, 256, 4*time.Microsecond)
	m.RecordInsert(10, time.Microsecond, nil)
	m.RecordInsert(5, 3*time.Microsecond, errors.New("boom"))
	m.RecordResize(time.Microsecond, nil)
	m.RecordResize(time.Microsecond, errors.New("boom"))
	m.RecordSet(nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.ReallocCount)
	assert.Equal(t, int64(320), stats.ReallocCells)
	assert.Equal(t, int64(3000), stats.ReallocAvgNanos)
	assert.Equal(t, int64(2), stats.InsertCount)
	assert.Equal(t, int64(10), stats.InsertCells)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2000), stats.InsertAvgNanos)
	assert.Equal(t, int64(2), stats.ResizeCount)
	assert.Equal(t, int64(1), stats.ResizeErrors)
	assert.Equal(t, int64(1), stats.SetCount)
	assert.Equal(t, int64(0), stats.SetErrors)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	m := &BasicMetricsCollector{}

	// Arrays are single-writer; the collector is shared.
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			a, err := New[int](1, WithMetricsCollector(m))
			if err != nil {
				return err
			}
			for i := range 100 {
				if err := a.Set(i, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(800), m.GetStats().SetCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordRealloc(1, 2, time.Second)
		mc.RecordInsert(1, time.Second, nil)
		mc.RecordResize(time.Second, nil)
		mc.RecordSet(nil)
	})
}
