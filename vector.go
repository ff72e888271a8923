package dynvec

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/hupe1980/dynvec/internal/conv"
	"github.com/hupe1980/dynvec/internal/mem"
	"github.com/hupe1980/dynvec/resource"
)

// Compile time check to ensure Controller can back a Vector.
var _ MemoryAcquirer = (*resource.Controller)(nil)

// initialCapacity is the slot count of the first lazy allocation.
const initialCapacity = 2

var noopLogger = NoopLogger()

// Vector is a growable, contiguous sequence of T.
//
// The zero value is not usable; create vectors with New or FromSlice.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	storage  []T // len(storage) is the capacity
	length   int
	reserved int64 // bytes charged to acquirer
	elemSize uintptr

	acquirer MemoryAcquirer
	metrics  MetricsCollector
	logger   *Logger
}

// New creates an empty vector with room for capacity elements.
//
// A capacity of 0 defers allocation until the first Push.
func New[T any](capacity int, optFns ...Option) (*Vector[T], error) {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}

	var zero T
	v := &Vector[T]{
		elemSize: unsafe.Sizeof(zero),
		acquirer: o.acquirer,
		metrics:  o.metricsCollector,
		logger:   noopLogger,
	}
	if v.acquirer == nil {
		v.acquirer = (*resource.Controller)(nil) // nil Controller tracks nothing
	}
	if v.metrics == nil {
		v.metrics = NoopMetricsCollector{}
	}
	if o.logger != nil {
		v.logger = o.logger.WithVector(uuid.NewString())
	}

	if capacity == 0 {
		return v, nil
	}
	if err := v.resize("new", capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector sized to values and appends all of them.
func FromSlice[T any](values []T, optFns ...Option) (*Vector[T], error) {
	v, err := New[T](len(values), optFns...)
	if err != nil {
		return nil, err
	}
	if err := v.Extend(values...); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.storage) }

// Push appends value, growing the storage first if needed.
func (v *Vector[T]) Push(value T) error {
	err := v.push("push", value)
	v.metrics.RecordPush(err)
	return err
}

// Extend appends values in order. It stops at the first failing push;
// values appended before the failure stay in the vector.
func (v *Vector[T]) Extend(values ...T) error {
	for _, value := range values {
		err := v.push("extend", value)
		v.metrics.RecordPush(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	value, err := v.get("get", index)
	v.metrics.RecordGet(err)
	return value, err
}

// Pop removes the element at index and returns it. Later elements shift one
// slot towards the front, so removal costs O(Len()-index). Capacity is
// unchanged.
func (v *Vector[T]) Pop(index int) (T, error) {
	value, err := v.get("pop", index)
	if err == nil {
		copy(v.storage[index:v.length-1], v.storage[index+1:v.length])
		v.length--
	}
	v.metrics.RecordPop(err)
	return value, err
}

// ShrinkToFit reallocates the storage to exactly Len()+1 slots. The vector
// never shrinks on its own.
func (v *Vector[T]) ShrinkToFit() error {
	target := v.length + 1
	if len(v.storage) == target {
		return nil
	}
	return v.resize("shrink", target)
}

// Free releases the storage and empties the vector. The vector stays usable;
// the next Push allocates again. Calling Free on an unallocated vector is a
// no-op.
func (v *Vector[T]) Free() {
	capacity := len(v.storage)
	if capacity == 0 {
		return
	}

	v.acquirer.ReleaseMemory(v.reserved)
	v.storage = nil
	v.reserved = 0
	v.length = 0

	v.metrics.RecordFree(capacity)
	v.logger.LogFree(capacity)
}

// String renders the elements as "[a, b, c]", or "[]" when empty.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.length; i++ {
		value, err := v.get("print", i)
		if err != nil {
			break
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Print writes String() followed by a newline to w.
func (v *Vector[T]) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}

func (v *Vector[T]) push(op string, value T) error {
	if err := v.reserve(op); err != nil {
		return err
	}
	v.storage[v.length] = value
	v.length++
	return nil
}

func (v *Vector[T]) get(op string, index int) (T, error) {
	if index < 0 || index >= v.length {
		v.logger.LogOutOfBounds(op, index, v.length)
		var zero T
		return zero, &IndexError{Op: op, Index: index, Length: v.length}
	}
	return v.storage[index], nil
}

// reserve makes sure a free slot exists for the next append. Growth happens
// one slot early: at capacity == length+1 the capacity doubles.
func (v *Vector[T]) reserve(op string) error {
	switch capacity := len(v.storage); {
	case capacity == 0:
		return v.resize(op, initialCapacity)
	case capacity == v.length+1:
		return v.resize(op, capacity*2)
	}
	return nil
}

func (v *Vector[T]) resize(op string, n int) error {
	oldCap := len(v.storage)
	start := time.Now()
	err := v.realloc(op, n)
	v.metrics.RecordRealloc(oldCap, n, time.Since(start), err)
	v.logger.LogRealloc(op, oldCap, n, v.length, err)
	return err
}

// realloc replaces the storage with n slots holding the current elements.
// On error the vector is left exactly as it was.
func (v *Vector[T]) realloc(op string, n int) error {
	bytes, err := conv.SlotBytes(n, v.elemSize)
	if err != nil {
		return &AllocationError{Op: op, Slots: n, cause: err}
	}

	delta := bytes - v.reserved
	if delta > 0 {
		if err := v.acquirer.AcquireMemory(delta); err != nil {
			return &AllocationError{Op: op, Slots: n, Bytes: bytes, cause: err}
		}
	}

	buf, err := mem.Realloc(v.storage, n, v.length)
	if err != nil {
		if delta > 0 {
			v.acquirer.ReleaseMemory(delta)
		}
		return &AllocationError{Op: op, Slots: n, Bytes: bytes, cause: err}
	}
	if delta < 0 {
		v.acquirer.ReleaseMemory(-delta)
	}

	v.storage = buf
	v.reserved = bytes
	return nil
}
