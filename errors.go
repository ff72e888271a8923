package dynvec

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailure is returned when a requested allocation or
	// reallocation cannot be satisfied.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrIndexOutOfBounds is returned when an index is not within [0, Len()).
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// IndexError reports an index outside the valid element range.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// AllocationError reports a failed allocation of Slots element slots.
//
// It matches ErrAllocationFailure via errors.Is. The underlying cause (for
// example resource.ErrMemoryLimitExceeded) can be matched the same way.
type AllocationError struct {
	Op    string
	Slots int
	Bytes int64
	cause error
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %v: %d slots", e.Op, ErrAllocationFailure, e.Slots)
	}
	return fmt.Sprintf("%s: %v: %d slots: %v", e.Op, ErrAllocationFailure, e.Slots, e.cause)
}

func (e *AllocationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAllocationFailure}
	}
	return []error{ErrAllocationFailure, e.cause}
}
