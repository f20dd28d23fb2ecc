package adt

import (
	"cmp"
	"iter"
	"slices"
)

// DefaultCapacity is the capacity of an Array created without a usable hint.
const DefaultCapacity = 50

// Array is an owning, growable, random-access sequence.
// Slots [0, Len()) hold valid elements; slots [Len(), Cap()) are never
// returned by a bounds-checked read. Not goroutine-safe.
type Array[T any] struct {
	buf    []T // len(buf) is the capacity
	length int
}

// NewArray creates an empty Array with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewArray[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Array[T]{buf: make([]T, capacity)}
}

// ArrayOf creates an Array holding values, with capacity max(len(values), DefaultCapacity).
func ArrayOf[T any](values ...T) *Array[T] {
	a := NewArray[T](max(len(values), DefaultCapacity))
	a.length = copy(a.buf, values)
	return a
}

// Len returns the number of valid elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// IsFull reports whether Len() == Cap().
func (a *Array[T]) IsFull() bool { return a.length == len(a.buf) }

// At returns the element at i. It fails with ErrIndexOutOfRange unless 0 <= i < Len().
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, indexError("Array.At", i, a.length)
	}
	return a.buf[i], nil
}

// Set overwrites the element at i, with the same bound as At.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return indexError("Array.Set", i, a.length)
	}
	a.buf[i] = v
	return nil
}

// ExtendAndGet returns a pointer to slot i, which may lie beyond Len().
// If i >= Len(), the length becomes i+1 and the slots between the old length
// and i are left as they were; callers must not rely on their contents.
// It fails with ErrIndexOutOfRange unless 0 <= i < Cap().
// The pointer is valid only until the buffer next grows (Push on a full
// array, Expand, CopyFrom); later writes through it do not reach the array.
func (a *Array[T]) ExtendAndGet(i int) (*T, error) {
	if i < 0 || i >= len(a.buf) {
		return nil, indexError("Array.ExtendAndGet", i, len(a.buf))
	}
	if i >= a.length {
		a.length = i + 1
	}
	return &a.buf[i], nil
}

// Push appends v, doubling the capacity first when the array is full.
// The only failure is ErrAllocationFailure.
func (a *Array[T]) Push(v T) error {
	if a.IsFull() {
		if err := a.grow("Array.Push", doubledCapacity(len(a.buf))); err != nil {
			return err
		}
	}
	a.buf[a.length] = v
	a.length++
	return nil
}

// TryPush appends v only if there is a free slot. It never grows the buffer.
func (a *Array[T]) TryPush(v T) bool {
	if a.IsFull() {
		return false
	}
	a.buf[a.length] = v
	a.length++
	return true
}

// Pop removes and returns the last element.
// It fails with ErrEmptyContainer when the array is empty.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.length == 0 {
		return zero, emptyError("Array.Pop")
	}
	a.length--
	v := a.buf[a.length]
	a.buf[a.length] = zero // drop the reference held by the vacated slot
	return v, nil
}

// PopInto removes the last element and stores it in *dst.
// dst is left untouched on failure.
func (a *Array[T]) PopInto(dst *T) error {
	if dst == nil {
		return invalidArgument("Array.PopInto", nil)
	}
	v, err := a.Pop()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Expand grows the buffer to newCapacity, keeping all elements in order.
// It is a no-op when newCapacity <= Cap().
func (a *Array[T]) Expand(newCapacity int) error {
	if newCapacity <= len(a.buf) {
		return nil
	}
	return a.grow("Array.Expand", newCapacity)
}

// FillRemaining writes v into every slot from Len() to Cap() and sets Len() = Cap().
func (a *Array[T]) FillRemaining(v T) {
	for a.length < len(a.buf) {
		a.buf[a.length] = v
		a.length++
	}
}

// Sort sorts the valid elements in place using a three-way comparator
// (negative, zero or positive as x sorts before, with or after y).
func (a *Array[T]) Sort(compare func(x, y T) int) {
	slices.SortFunc(a.buf[:a.length], compare)
}

// SortOrdered sorts a in natural ascending order.
func SortOrdered[T cmp.Ordered](a *Array[T]) {
	slices.Sort(a.buf[:a.length])
}

// Items returns a copy of the valid elements.
func (a *Array[T]) Items() []T {
	items := make([]T, a.length)
	copy(items, a.buf[:a.length])
	return items
}

// All iterates over the valid elements with their indices.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of a with the same capacity.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{buf: make([]T, len(a.buf))}
	c.assign(a)
	return c
}

// CopyFrom replaces the contents of a with a deep copy of src.
// The existing buffer is reused when it can hold src.Len() elements;
// otherwise it is reallocated to src.Cap(). A nil src fails with ErrInvalidArgument.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if src == nil {
		return invalidArgument("Array.CopyFrom", errNilSource)
	}
	if a == src {
		return nil
	}
	if len(a.buf) < src.length {
		buf, err := allocSlice[T]("Array.CopyFrom", len(src.buf))
		if err != nil {
			return err
		}
		a.buf = buf
	}
	a.assign(src)
	return nil
}

// MoveFrom transfers ownership of src's buffer to a.
// Afterwards src is empty with zero capacity.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.buf, a.length = src.buf, src.length
	src.buf, src.length = nil, 0
}

// Take moves a's buffer into a new Array and leaves a empty with zero capacity.
func (a *Array[T]) Take() *Array[T] {
	t := &Array[T]{}
	t.MoveFrom(a)
	return t
}

// Release drops the buffer. The array stays usable: the next Push
// allocates DefaultCapacity slots. Calling Release more than once is safe.
func (a *Array[T]) Release() {
	a.buf = nil
	a.length = 0
}

// assign copies src's valid elements into a.buf, which must be large enough.
// Elements implementing Clone() T are cloned; stale slots past the new length are cleared.
func (a *Array[T]) assign(src *Array[T]) {
	for i := 0; i < src.length; i++ {
		a.buf[i] = cloneElem(src.buf[i])
	}
	var zero T
	for i := src.length; i < a.length && i < len(a.buf); i++ {
		a.buf[i] = zero
	}
	a.length = src.length
}

func (a *Array[T]) grow(op string, newCapacity int) error {
	buf, err := growSlice(op, a.buf, a.length, newCapacity)
	if err != nil {
		return err
	}
	a.buf = buf
	return nil
}

type cloner[T any] interface {
	Clone() T
}

func cloneElem[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}
