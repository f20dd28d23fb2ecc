package adt

import (
	"fmt"
	"math/bits"
)

// MinStringCapacity is the smallest buffer a String ever holds.
const MinStringCapacity = 16

// allocSlice returns a buffer of n elements of type T.
// A size the runtime refuses (negative or overflowing) is reported as
// AllocationFailure instead of crashing the caller.
func allocSlice[T any](op string, n int) (buf []T, err error) {
	if n < 0 {
		return nil, &Error{Kind: AllocationFailure, Op: op, Cause: fmt.Errorf("negative size %d", n)}
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &Error{Kind: AllocationFailure, Op: op, Cause: fmt.Errorf("%v", r)}
		}
	}()
	return make([]T, n), nil
}

// growSlice copies the first n elements of old into a new buffer of size capacity.
func growSlice[T any](op string, old []T, n, capacity int) ([]T, error) {
	buf, err := allocSlice[T](op, capacity)
	if err != nil {
		return nil, err
	}
	copy(buf, old[:n])
	return buf, nil
}

// doubledCapacity returns the capacity an array of capacity c grows to when full.
func doubledCapacity(c int) int {
	if c <= 0 {
		return DefaultCapacity
	}
	if c > maxInt/2 {
		return maxInt
	}
	return c * 2
}

// nextStringCapacity returns the smallest power of two >= MinStringCapacity
// that can hold n content bytes plus the terminator.
func nextStringCapacity(n int) int {
	if n > maxInt/2 {
		// no power of two fits in an int; let the allocator report it
		return -1
	}
	need := n + 1
	if need <= MinStringCapacity {
		return MinStringCapacity
	}
	return 1 << bits.Len(uint(need-1))
}

const maxInt = int(^uint(0) >> 1)
