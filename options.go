package dynarray

import "log/slog"

const (
	// DefaultCapacity is the per-axis buffer capacity used when none is configured.
	DefaultCapacity = 16

	// MaxRank is the largest rank New accepts.
	MaxRank = 32
)

type options struct {
	capacities       []int
	defaultCapacity  int
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		defaultCapacity:  DefaultCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures an Array at construction time.
type Option func(*options)

// WithCapacities sets the initial buffer capacity of the leading axes.
// Axes without an entry use the default capacity (see WithDefaultCapacity).
//
// Example:
//
//	// 4x8 buffer for a rank-2 array.
//	a, _ := dynarray.New[float64](2, dynarray.WithCapacities(4, 8))
func WithCapacities(capacities ...int) Option {
	return func(o *options) {
		o.capacities = append([]int(nil), capacities...)
	}
}

// WithDefaultCapacity sets the capacity used for axes not covered by WithCapacities.
func WithDefaultCapacity(capacity int) Option {
	return func(o *options) {
		o.defaultCapacity = capacity
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dynarray.BasicMetricsCollector{}
//	a, _ := dynarray.New[int](2, dynarray.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Reallocations: %d\n", stats.ReallocCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dynarray.NewJSONLogger(slog.LevelDebug)
//	a, _ := dynarray.New[int](3, dynarray.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
