package dynvec

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	b := &BasicMetricsCollector{}
	boom := errors.New("boom")

	b.RecordPush(nil)
	b.RecordPush(boom)
	b.RecordGet(nil)
	b.RecordPop(boom)
	b.RecordRealloc(0, 2, 10*time.Nanosecond, nil)
	b.RecordRealloc(8, 5, 20*time.Nanosecond, nil)
	b.RecordRealloc(2, 4, 30*time.Nanosecond, boom)
	b.RecordFree(5)

	stats := b.GetStats()
	assert.Equal(t, int64(2), stats.PushCount)
	assert.Equal(t, int64(1), stats.PushErrors)
	assert.Equal(t, int64(1), stats.GetCount)
	assert.Equal(t, int64(0), stats.GetErrors)
	assert.Equal(t, int64(1), stats.PopCount)
	assert.Equal(t, int64(1), stats.PopErrors)
	assert.Equal(t, int64(1), stats.GrowCount)
	assert.Equal(t, int64(1), stats.ShrinkCount)
	assert.Equal(t, int64(1), stats.ReallocErrors)
	assert.Equal(t, int64(20), stats.ReallocAvgNanos)
	assert.Equal(t, int64(1), stats.FreeCount)
	assert.Equal(t, int64(5), stats.FreedSlots)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	b := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, b.GetStats())
}

func TestBasicMetricsCollector_SharedByVectors(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := New[int](0, WithMetricsCollector(metrics))
			if err != nil {
				return
			}
			for j := 0; j < 100; j++ {
				_ = v.Push(j)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), metrics.GetStats().PushCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordPush(nil)
		mc.RecordGet(nil)
		mc.RecordPop(nil)
		mc.RecordRealloc(0, 2, time.Millisecond, nil)
		mc.RecordFree(2)
	})
}
