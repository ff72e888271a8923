// Package mem provides typed slot allocation.
//
// # Recoverable Allocation
//
// The Go runtime panics when a slice length cannot be represented and aborts
// the process when the heap is exhausted. Alloc converts the first case into
// an error. The second cannot be intercepted, so callers that need a hard
// ceiling pair Alloc with a memory budget (see the resource package).
package mem
