package adt

import (
	"errors"
	"fmt"
)

// ErrorKind classifies container failures.
type ErrorKind string

const (
	// InvalidArgument means a required source was absent or a parameter was malformed.
	InvalidArgument ErrorKind = "invalid argument"
	// IndexOutOfRange means an index fell outside the bound of the accessor used.
	IndexOutOfRange ErrorKind = "index out of range"
	// EmptyContainer means an element was requested from an empty array.
	EmptyContainer ErrorKind = "empty container"
	// AllocationFailure means a buffer could not be grown to the requested size.
	AllocationFailure ErrorKind = "allocation failure"
)

// Sentinel errors, one per kind. Every *Error unwraps to one of these.
var (
	ErrInvalidArgument   = errors.New("adt: invalid argument")
	ErrIndexOutOfRange   = errors.New("adt: index out of range")
	ErrEmptyContainer    = errors.New("adt: empty container")
	ErrAllocationFailure = errors.New("adt: allocation failure")
)

var errNilSource = errors.New("source is nil")

// Error describes a failed container operation.
type Error struct {
	Kind  ErrorKind
	Op    string // operation that detected the failure, e.g. "Array.At"
	Index int    // offending index for IndexOutOfRange
	Bound int    // exclusive upper bound the index was checked against
	Cause error  // underlying failure, if any
}

func (e *Error) Error() string {
	switch {
	case e.Kind == IndexOutOfRange:
		return fmt.Sprintf("%s: %s: index %d not in [0, %d)", e.Op, e.Kind, e.Index, e.Bound)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

// Unwrap returns the sentinel matching e.Kind followed by e.Cause,
// so errors.Is matches either.
func (e *Error) Unwrap() []error {
	var errs []error
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidArgument:
		return ErrInvalidArgument
	case IndexOutOfRange:
		return ErrIndexOutOfRange
	case EmptyContainer:
		return ErrEmptyContainer
	case AllocationFailure:
		return ErrAllocationFailure
	}
	return nil
}

func indexError(op string, i, bound int) *Error {
	return &Error{Kind: IndexOutOfRange, Op: op, Index: i, Bound: bound}
}

func invalidArgument(op string, cause error) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Cause: cause}
}

func emptyError(op string) *Error {
	return &Error{Kind: EmptyContainer, Op: op}
}

// IsIndexOutOfRange reports whether err is an IndexOutOfRange failure.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}
