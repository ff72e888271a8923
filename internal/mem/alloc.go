package mem

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidSize is returned for negative slot counts.
var ErrInvalidSize = errors.New("mem: invalid size")

// Alloc allocates a slice of n zeroed slots.
// A zero-sized request returns a nil slice.
func Alloc[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n == 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("mem: allocating %d slots: %w", n, re)
		}
	}()

	return make([]T, n), nil
}

// Realloc allocates n slots and copies the first keep elements of buf into
// them. buf itself is left untouched, so on error the caller still owns a
// valid buffer.
func Realloc[T any](buf []T, n, keep int) ([]T, error) {
	if keep > n || keep > len(buf) {
		return nil, fmt.Errorf("%w: keep %d of %d into %d", ErrInvalidSize, keep, len(buf), n)
	}
	out, err := Alloc[T](n)
	if err != nil {
		return nil, err
	}
	copy(out, buf[:keep])
	return out, nil
}
