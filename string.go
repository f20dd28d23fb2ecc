package adt

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// numericReserve is the content capacity reserved by the numeric constructors.
const numericReserve = 30

var errLengthOverflow = errors.New("length overflows int")

// String is an owning, growable, NUL-terminated byte string.
// After every operation Cap() > Len() and the byte at Len() is the terminator.
// Capacities are powers of two, never below MinStringCapacity.
// The zero value is an empty string ready to use.
type String struct {
	buf    []byte // len(buf) is the capacity
	length int
}

// NewString returns an empty String.
func NewString() *String {
	s := &String{}
	s.reset()
	return s
}

// StringFromBytes returns a String holding a copy of p.
// A nil p fails with ErrInvalidArgument; an empty non-nil p gives the empty string.
func StringFromBytes(p []byte) (*String, error) {
	if p == nil {
		return nil, invalidArgument("StringFromBytes", errNilSource)
	}
	s := &String{}
	if err := s.setBytes("StringFromBytes", p); err != nil {
		return nil, err
	}
	return s, nil
}

// StringOf returns a String holding a copy of v.
func StringOf(v string) *String {
	s := &String{buf: make([]byte, nextStringCapacity(len(v)))}
	s.length = copy(s.buf, v)
	return s
}

// StringFromByte returns a one-byte String.
func StringFromByte(c byte) *String {
	s := &String{buf: make([]byte, nextStringCapacity(1))}
	s.buf[0] = c
	s.length = 1
	return s
}

// StringFromInt formats i in decimal.
func StringFromInt(i int) *String {
	return numericString(strconv.AppendInt(nil, int64(i), 10))
}

// StringFromInt64 formats i in decimal.
func StringFromInt64(i int64) *String {
	return numericString(strconv.AppendInt(nil, i, 10))
}

// StringFromFloat formats f like C's "%G": six significant digits,
// trailing zeros removed, exponent form for very large or small magnitudes.
// NaN and infinities are spelled NAN, INF and -INF.
func StringFromFloat(f float64) *String {
	switch {
	case math.IsNaN(f):
		return numericString([]byte("NAN"))
	case math.IsInf(f, 1):
		return numericString([]byte("INF"))
	case math.IsInf(f, -1):
		return numericString([]byte("-INF"))
	}
	return numericString(strconv.AppendFloat(nil, f, 'G', 6, 64))
}

func numericString(p []byte) *String {
	s := &String{buf: make([]byte, nextStringCapacity(max(len(p), numericReserve)))}
	s.length = copy(s.buf, p)
	return s
}

// Len returns the number of content bytes, excluding the terminator.
func (s *String) Len() int { return s.length }

// Cap returns the size of the buffer, including room for the terminator.
func (s *String) Cap() int { return len(s.buf) }

// Bytes returns the content. The slice aliases the buffer and is valid until the next mutation.
func (s *String) Bytes() []byte { return s.buf[:s.length:s.length] }

// CString returns the content followed by its terminator, aliasing the buffer.
func (s *String) CString() []byte {
	s.init()
	return s.buf[:s.length+1 : s.length+1]
}

// String returns a copy of the content as a Go string.
func (s *String) String() string { return string(s.buf[:s.length]) }

// Reserve makes room for n content bytes without further allocation.
func (s *String) Reserve(n int) error {
	return s.ensure("String.Reserve", n)
}

// At returns the byte at i. It fails with ErrIndexOutOfRange unless 0 <= i < Len().
func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= s.length {
		return 0, indexError("String.At", i, s.length)
	}
	return s.buf[i], nil
}

// Set overwrites the byte at i, with the same bound as At.
func (s *String) Set(i int, c byte) error {
	if i < 0 || i >= s.length {
		return indexError("String.Set", i, s.length)
	}
	s.buf[i] = c
	return nil
}

// Append adds one byte.
func (s *String) Append(c byte) error {
	if err := s.ensureExtra("String.Append", 1); err != nil {
		return err
	}
	s.buf[s.length] = c
	s.length++
	s.buf[s.length] = 0
	return nil
}

// AppendN adds c times times. A non-positive count is a no-op.
func (s *String) AppendN(c byte, times int) error {
	if times <= 0 {
		return nil
	}
	if err := s.ensureExtra("String.AppendN", times); err != nil {
		return err
	}
	end := s.length + times
	for i := s.length; i < end; i++ {
		s.buf[i] = c
	}
	s.length = end
	s.buf[s.length] = 0
	return nil
}

// Concat appends the content of o. o may be s itself.
// A nil o fails with ErrInvalidArgument.
func (s *String) Concat(o *String) error {
	if o == nil {
		return invalidArgument("String.Concat", errNilSource)
	}
	return s.appendBytes("String.Concat", o.buf[:o.length])
}

// ConcatBytes appends p. A nil p fails with ErrInvalidArgument.
func (s *String) ConcatBytes(p []byte) error {
	if p == nil {
		return invalidArgument("String.ConcatBytes", errNilSource)
	}
	return s.appendBytes("String.ConcatBytes", p)
}

// ConcatString appends v.
func (s *String) ConcatString(v string) error {
	if err := s.ensureExtra("String.ConcatString", len(v)); err != nil {
		return err
	}
	s.length += copy(s.buf[s.length:], v)
	s.buf[s.length] = 0
	return nil
}

// Join returns a new String holding a followed by b, sized for exactly their combined length.
// A nil operand counts as the empty string.
func Join(a, b *String) *String {
	if a == nil {
		a = &String{}
	}
	if b == nil {
		b = &String{}
	}
	n := a.length + b.length
	s := &String{buf: make([]byte, nextStringCapacity(n))}
	copy(s.buf, a.buf[:a.length])
	copy(s.buf[a.length:], b.buf[:b.length])
	s.length = n
	return s
}

// Assign replaces the content with a copy of p. A nil p fails with ErrInvalidArgument.
func (s *String) Assign(p []byte) error {
	if p == nil {
		return invalidArgument("String.Assign", errNilSource)
	}
	return s.setBytes("String.Assign", p)
}

// AssignString replaces the content with v.
func (s *String) AssignString(v string) error {
	if len(v) >= len(s.buf) {
		buf, err := allocSlice[byte]("String.AssignString", nextStringCapacity(len(v)))
		if err != nil {
			return err
		}
		s.buf = buf
	}
	s.length = copy(s.buf, v)
	s.buf[s.length] = 0
	return nil
}

// Compare returns a negative number, zero or a positive number as s sorts
// before, equal to or after o in byte-wise lexicographic order.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.buf[:s.length], o.buf[:o.length])
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool { return s.Compare(o) == 0 }

// NotEqual reports whether s and o differ.
func (s *String) NotEqual(o *String) bool { return s.Compare(o) != 0 }

// Less reports whether s sorts before o.
func (s *String) Less(o *String) bool { return s.Compare(o) < 0 }

// LessOrEqual reports whether s sorts before or equal to o.
func (s *String) LessOrEqual(o *String) bool { return s.Compare(o) <= 0 }

// Greater reports whether s sorts after o.
func (s *String) Greater(o *String) bool { return s.Compare(o) > 0 }

// GreaterOrEqual reports whether s sorts after or equal to o.
func (s *String) GreaterOrEqual(o *String) bool { return s.Compare(o) >= 0 }

// CompareStrings is a three-way comparator for sorting an Array[*String].
func CompareStrings(a, b *String) int { return a.Compare(b) }

// Clone returns a deep copy of s sized to its length. Clone of nil is nil.
func (s *String) Clone() *String {
	if s == nil {
		return nil
	}
	c := &String{buf: make([]byte, nextStringCapacity(s.length))}
	c.length = copy(c.buf, s.buf[:s.length])
	return c
}

// CopyFrom replaces the content of s with a copy of o.
// The buffer is reallocated only when it cannot hold o's content and terminator.
// A nil o fails with ErrInvalidArgument.
func (s *String) CopyFrom(o *String) error {
	if o == nil {
		return invalidArgument("String.CopyFrom", errNilSource)
	}
	if s == o {
		return nil
	}
	return s.setBytes("String.CopyFrom", o.buf[:o.length])
}

// MoveFrom takes over o's content. The larger of the two buffers is kept;
// o is left as a valid empty string.
func (s *String) MoveFrom(o *String) {
	if s == o {
		return
	}
	s.init()
	if len(o.buf) > len(s.buf) {
		s.buf, s.length = o.buf, o.length
	} else {
		s.length = copy(s.buf, o.buf[:o.length])
		s.buf[s.length] = 0
	}
	o.reset()
}

// Take moves s's buffer into a new String and leaves s as a valid empty string.
func (s *String) Take() *String {
	s.init()
	t := &String{buf: s.buf, length: s.length}
	s.reset()
	return t
}

// Release drops the buffer and leaves s as a valid empty string.
func (s *String) Release() {
	s.reset()
}

// Int64 parses the content as a base-10 integer.
func (s *String) Int64() (int64, error) {
	v, err := strconv.ParseInt(string(s.buf[:s.length]), 10, 64)
	if err != nil {
		return 0, invalidArgument("String.Int64", err)
	}
	return v, nil
}

// Float64 parses the content as a floating point number.
func (s *String) Float64() (float64, error) {
	v, err := strconv.ParseFloat(string(s.buf[:s.length]), 64)
	if err != nil {
		return 0, invalidArgument("String.Float64", err)
	}
	return v, nil
}

func (s *String) init() {
	if s.buf == nil {
		s.reset()
	}
}

func (s *String) reset() {
	s.buf = make([]byte, MinStringCapacity)
	s.length = 0
}

// ensure grows the buffer, if necessary, so it holds n content bytes plus the terminator.
// Existing content and terminator are preserved.
func (s *String) ensure(op string, n int) error {
	s.init()
	if n < len(s.buf) {
		return nil
	}
	buf, err := growSlice(op, s.buf, s.length+1, nextStringCapacity(n))
	if err != nil {
		return err
	}
	s.buf = buf
	return nil
}

// ensureExtra is ensure for extra bytes past the current length.
func (s *String) ensureExtra(op string, extra int) error {
	if extra > maxInt-s.length {
		return &Error{Kind: AllocationFailure, Op: op, Cause: errLengthOverflow}
	}
	return s.ensure(op, s.length+extra)
}

func (s *String) appendBytes(op string, p []byte) error {
	n := len(p)
	if err := s.ensureExtra(op, n); err != nil {
		return err
	}
	// p may alias s.buf; the grown buffer still holds a copy of it
	copy(s.buf[s.length:], p[:n])
	s.length += n
	s.buf[s.length] = 0
	return nil
}

func (s *String) setBytes(op string, p []byte) error {
	if len(p) >= len(s.buf) {
		buf, err := allocSlice[byte](op, nextStringCapacity(len(p)))
		if err != nil {
			return err
		}
		s.buf = buf
	}
	s.length = copy(s.buf, p)
	s.buf[s.length] = 0
	return nil
}
