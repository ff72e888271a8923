// Package dynvec provides a growable, contiguous vector with explicit error
// results.
//
// A Vector owns one backing buffer and two counters, length and capacity.
// Appends amortize reallocation by doubling the capacity; removal by index
// shifts later elements to keep their order. No operation panics or exits on
// bad input: out-of-range indices and failed allocations are returned as
// errors and leave the vector intact.
//
// # Quick Start
//
//	v, _ := dynvec.New[int](0)  // no allocation yet
//	_ = v.Push(2)               // first push allocates 2 slots
//	_ = v.Extend(1, 2, 3, 4, 5, 6)
//
//	x, _ := v.Get(0)            // 2
//	p, _ := v.Pop(3)            // 3, leaves [2, 1, 2, 4, 5, 6]
//	_ = v.ShrinkToFit()         // Cap() == Len()+1 == 7
//	fmt.Println(v)              // [2, 1, 2, 4, 5, 6]
//
//	v.Free()                    // releases storage, v is reusable
//
// # Growth Policy
//
// An unallocated vector allocates 2 slots on its first push. After that the
// capacity doubles whenever only one free slot is left, so a free slot always
// exists before the write. ShrinkToFit is the only way to reduce capacity and
// keeps one slot of headroom (capacity == length+1).
//
// # Errors
//
//	if _, err := v.Get(42); errors.Is(err, dynvec.ErrIndexOutOfBounds) { ... }
//	if err := v.Push(7); errors.Is(err, dynvec.ErrAllocationFailure) { ... }
//
// Use errors.As with *IndexError or *AllocationError for details.
//
// # Memory Budgets
//
// Storage can be charged against a shared budget. When the budget refuses a
// request the operation fails with ErrAllocationFailure:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	v, _ := dynvec.New[int64](0, dynvec.WithMemoryAcquirer(rc))
//
// # Observability
//
// WithLogger enables structured logging via log/slog, WithMetricsCollector
// receives per-operation callbacks (see the prometheus subpackage).
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole instance with a mutex.
package dynvec
