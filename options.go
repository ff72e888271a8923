package dynvec

import (
	"log/slog"
)

// MemoryAcquirer is the budget a Vector charges its storage against.
// *resource.Controller satisfies it.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

type options struct {
	acquirer         MemoryAcquirer
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Vector construction.
type Option func(*options)

// WithMemoryAcquirer charges every allocation of the vector's storage against
// the given budget. When the budget refuses a request the operation fails
// with ErrAllocationFailure and the vector is left unchanged.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, _ := dynvec.New[int64](0, dynvec.WithMemoryAcquirer(rc))
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dynvec.BasicMetricsCollector{}
//	v, _ := dynvec.New[int](0, dynvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pushes: %d, Grows: %d\n", stats.PushCount, stats.GrowCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dynvec.NewJSONLogger(slog.LevelDebug)
//	v, _ := dynvec.New[int](0, dynvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
