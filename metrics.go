package dynvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// prometheus subpackage provides a ready-made implementation.
//
// Implementations shared between vectors must be safe for concurrent use.
type MetricsCollector interface {
	// RecordPush is called after each push, including those made by Extend.
	RecordPush(err error)

	// RecordGet is called after each indexed read.
	RecordGet(err error)

	// RecordPop is called after each indexed removal.
	RecordPop(err error)

	// RecordRealloc is called after each attempt to change the backing
	// storage. oldCap and newCap are slot counts, duration covers allocation
	// and copy.
	RecordRealloc(oldCap, newCap int, duration time.Duration, err error)

	// RecordFree is called when backing storage of capacity slots is released.
	RecordFree(capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(error)                             {}
func (NoopMetricsCollector) RecordGet(error)                              {}
func (NoopMetricsCollector) RecordPop(error)                              {}
func (NoopMetricsCollector) RecordRealloc(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount         atomic.Int64
	PushErrors        atomic.Int64
	GetCount          atomic.Int64
	GetErrors         atomic.Int64
	PopCount          atomic.Int64
	PopErrors         atomic.Int64
	GrowCount         atomic.Int64
	ShrinkCount       atomic.Int64
	ReallocErrors     atomic.Int64
	ReallocTotalNanos atomic.Int64
	FreeCount         atomic.Int64
	FreedSlots        atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(err error) {
	b.PushCount.Add(1)
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(err error) {
	b.GetCount.Add(1)
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(err error) {
	b.PopCount.Add(1)
	if err != nil {
		b.PopErrors.Add(1)
	}
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(oldCap, newCap int, duration time.Duration, err error) {
	b.ReallocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReallocErrors.Add(1)
		return
	}
	if newCap >= oldCap {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(capacity int) {
	b.FreeCount.Add(1)
	b.FreedSlots.Add(int64(capacity))
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:       b.PushCount.Load(),
		PushErrors:      b.PushErrors.Load(),
		GetCount:        b.GetCount.Load(),
		GetErrors:       b.GetErrors.Load(),
		PopCount:        b.PopCount.Load(),
		PopErrors:       b.PopErrors.Load(),
		GrowCount:       b.GrowCount.Load(),
		ShrinkCount:     b.ShrinkCount.Load(),
		ReallocErrors:   b.ReallocErrors.Load(),
		ReallocAvgNanos: b.getAvgReallocNanos(),
		FreeCount:       b.FreeCount.Load(),
		FreedSlots:      b.FreedSlots.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReallocNanos() int64 {
	count := b.GrowCount.Load() + b.ShrinkCount.Load() + b.ReallocErrors.Load()
	if count == 0 {
		return 0
	}
	return b.ReallocTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount       int64
	PushErrors      int64
	GetCount        int64
	GetErrors       int64
	PopCount        int64
	PopErrors       int64
	GrowCount       int64
	ShrinkCount     int64
	ReallocErrors   int64
	ReallocAvgNanos int64
	FreeCount       int64
	FreedSlots      int64
}
