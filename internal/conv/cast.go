package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// SlotBytes returns the number of bytes occupied by n slots of the given
// element size.
func SlotBytes(n int, size uintptr) (int64, error) {
	slots, err := IntToUint64(n)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(slots, uint64(size))
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d slots of %d bytes", n, size)
	}
	return Uint64ToInt64(lo)
}
