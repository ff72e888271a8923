// Package resource implements a shared memory budget for vectors.
//
// A Controller tracks the bytes held by every vector configured with it and
// optionally enforces a hard limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB across all vectors
//	})
//
//	v, err := dynvec.New[int64](0, dynvec.WithMemoryAcquirer(rc))
//
// AcquireMemory never blocks. When the limit would be exceeded it returns
// ErrMemoryLimitExceeded immediately and the caller decides what to do.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
