package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pavanmanishd/adt"
)

// readLines collects every line of r into an array of strings.
func readLines(r io.Reader, capacity int) (*adt.Array[*adt.String], error) {
	lines := adt.NewArray[*adt.String](capacity)
	br := bufio.NewReader(r)
	for {
		line, err := adt.ParseLine(br)
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", lines.Len()+1, err)
		}
		if err := lines.Push(line); err != nil {
			return nil, err
		}
	}
}

// parseNumbers converts non-blank lines to integers.
func parseNumbers(lines *adt.Array[*adt.String]) (*adt.Array[int64], error) {
	nums := adt.NewArray[int64](lines.Cap())
	for i, line := range lines.All() {
		if line.Len() == 0 {
			continue
		}
		v, err := line.Int64()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := nums.Push(v); err != nil {
			return nil, err
		}
	}
	return nums, nil
}

// reversed drains a into a new array in reverse order.
func reversed[T any](a *adt.Array[T]) (*adt.Array[T], error) {
	out := adt.NewArray[T](a.Cap())
	for !a.IsEmpty() {
		var v T
		if err := a.PopInto(&v); err != nil {
			return nil, err
		}
		if err := out.Push(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
