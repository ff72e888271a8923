package prometheus

import (
	"errors"
	"testing"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/resource"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prom.NewRegistry()
	mc, err := NewCollector(reg)
	require.NoError(t, err)

	v, err := dynvec.New[int](0, dynvec.WithMetricsCollector(mc))
	require.NoError(t, err)

	require.NoError(t, v.Push(2))
	require.NoError(t, v.Extend(1, 2, 3, 4, 5, 6))
	_, err = v.Get(0)
	require.NoError(t, err)
	_, err = v.Get(42)
	require.Error(t, err)
	_, err = v.Pop(3)
	require.NoError(t, err)
	require.NoError(t, v.ShrinkToFit())
	v.Free()

	assert.Equal(t, 7.0, testutil.ToFloat64(mc.operations.WithLabelValues("push", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.operations.WithLabelValues("get", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.operations.WithLabelValues("get", statusIndexOutOfBounds)))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.operations.WithLabelValues("pop", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.operations.WithLabelValues("free", statusOK)))
	assert.Equal(t, 7.0, testutil.ToFloat64(mc.freedSlots))

	// grow/ok and shrink/ok
	assert.Equal(t, 2, testutil.CollectAndCount(mc.reallocations))
}

func TestCollector_AllocationFailure(t *testing.T) {
	reg := prom.NewRegistry()
	mc, err := NewCollector(reg, WithNamespace("test"))
	require.NoError(t, err)

	rc := resource.NewController(resource.Config{MemoryLimitBytes: 8})
	v, err := dynvec.New[int64](0, dynvec.WithMetricsCollector(mc), dynvec.WithMemoryAcquirer(rc))
	require.NoError(t, err)

	require.Error(t, v.Push(1))

	assert.Equal(t, 1.0, testutil.ToFloat64(mc.operations.WithLabelValues("push", statusAllocationFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(mc.reallocations, "test_reallocation_duration_seconds"))
}

func TestCollector_Registration(t *testing.T) {
	reg := prom.NewRegistry()

	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	var are prom.AlreadyRegisteredError
	assert.True(t, errors.As(err, &are))

	_, err = NewCollector(reg, WithConstLabels(prom.Labels{"vector": "other"}))
	assert.Error(t, err, "same fully-qualified name with different const labels is inconsistent")

	_, err = NewCollector(reg, WithNamespace("other"))
	assert.NoError(t, err)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, statusOK, status(nil))
	assert.Equal(t, statusIndexOutOfBounds, status(&dynvec.IndexError{Op: "get"}))
	assert.Equal(t, statusAllocationFailure, status(&dynvec.AllocationError{Op: "push"}))
	assert.Equal(t, statusError, status(errors.New("boom")))
}
