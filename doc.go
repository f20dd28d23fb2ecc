// Package adt implements owned, growable containers for Go: a generic
// array and a NUL-terminated byte string, plus a small text layout layer
// for printing their contents.
//
// # Overview
//
// Both containers keep an explicit length next to an allocated capacity
// and never hand out slots past the length through a checked read:
//
//   - Array[T] grows by doubling when a Push finds it full
//   - String grows to the next power of two (at least 16 bytes) and keeps
//     a terminator byte after its content at all times
//
// # Basic Usage
//
//	a := adt.NewArray[int](0) // DefaultCapacity slots
//	for _, v := range []int{3, 4, 5, 7, 8, 10} {
//		_ = a.Push(v)
//	}
//	v, err := a.At(2)    // 5, nil
//	_, err = a.At(6)     // ErrIndexOutOfRange
//	last, err := a.Pop() // 10, nil
//
//	s := adt.Join(adt.StringOf("abc"), adt.StringOf("def"))
//	s.Equal(adt.StringOf("abcdef")) // true
//
// # Ownership
//
// A container owns its buffer exclusively. Clone and CopyFrom make deep
// copies; element types that implement Clone() T (such as *String) are
// cloned element by element. MoveFrom and Take transfer the buffer and leave
// the source empty but valid.
//
// # Index Bounds
//
// At and Set accept 0 <= i < Len(). ExtendAndGet accepts 0 <= i < Cap()
// and raises the length to i+1 as a side effect; the slots it skips over
// hold whatever they held before and must not be relied on.
//
// # Rendering
//
// A Layout describes columns per line, field width, separator and an
// optional index prefix. The built-in presets are:
//
//	small-int  5 columns, plain, ", "
//	wide-int   7 columns, width 10, "," also at line ends
//	long-int   4 columns, width 18, "," also at line ends
//	string     1 column, "<index>\t" prefix
//
//	lines := adt.RenderArray(adt.Presets[adt.LayoutSmallInt], a)
//	// "3, 4, 5, 7, 8"
//	// "10"
//
// # Errors
//
// Failures are returned as *Error values that unwrap to one of
// ErrInvalidArgument, ErrIndexOutOfRange, ErrEmptyContainer or
// ErrAllocationFailure, so callers test them with errors.Is.
//
// # Thread Safety
//
// Containers are not goroutine-safe. Share them between goroutines only
// with external synchronization, or hand them over with Take.
package adt
