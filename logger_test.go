package dynvec

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/dynvec/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := New[int](0, WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, v.Push(1))
	_, err = v.Get(5)
	require.Error(t, err)
	v.Free()

	records := decodeRecords(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "reallocated", records[0]["msg"])
	assert.Equal(t, "push", records[0]["op"])
	assert.EqualValues(t, 0, records[0]["old_capacity"])
	assert.EqualValues(t, 2, records[0]["new_capacity"])

	assert.Equal(t, "index out of bounds", records[1]["msg"])
	assert.EqualValues(t, 5, records[1]["index"])

	assert.Equal(t, "storage released", records[2]["msg"])

	id := records[0]["vector_id"]
	assert.NotEmpty(t, id)
	for _, rec := range records {
		assert.Equal(t, id, rec["vector_id"])
	}
}

func TestLogger_DistinctVectors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := New[int](1, WithLogger(logger))
	require.NoError(t, err)
	b, err := New[int](1, WithLogger(logger))
	require.NoError(t, err)
	a.Free()
	b.Free()

	records := decodeRecords(t, &buf)
	require.Len(t, records, 4)
	assert.NotEqual(t, records[0]["vector_id"], records[1]["vector_id"])
}

func TestLogger_AllocationFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1})

	v, err := New[int64](0, WithLogger(logger), WithMemoryAcquirer(rc))
	require.NoError(t, err)
	require.Error(t, v.Push(1))

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "reallocation failed", records[0]["msg"])
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Contains(t, records[0]["error"], "memory limit exceeded")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotPanics(t, func() {
		logger.LogRealloc("push", 0, 2, 0, nil)
		logger.LogOutOfBounds("get", 1, 0)
		logger.LogFree(2)
	})
}
