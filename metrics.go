package adt

// BufferMetrics contains statistical information about a container's buffer.
type BufferMetrics struct {
	Len         int     // Elements (or content bytes) in use
	Cap         int     // Allocated slots
	Free        int     // Slots available before the next growth
	Utilization float64 // Ratio of used to allocated slots (0.0-1.0)
}

// Free returns the number of elements that can be pushed without growing.
func (a *Array[T]) Free() int {
	return len(a.buf) - a.length
}

// Utilization returns Len()/Cap(), or 0 if the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	return utilization(a.length, len(a.buf))
}

// Metrics returns a snapshot of the array's buffer statistics.
func (a *Array[T]) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:         a.Len(),
		Cap:         a.Cap(),
		Free:        a.Free(),
		Utilization: a.Utilization(),
	}
}

// Free returns the number of bytes that can be appended without growing.
// The terminator's slot is not counted.
func (s *String) Free() int {
	if len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - s.length - 1
}

// Utilization returns the share of the buffer used by content and terminator.
func (s *String) Utilization() float64 {
	if len(s.buf) == 0 {
		return 0
	}
	return utilization(s.length+1, len(s.buf))
}

// Metrics returns a snapshot of the string's buffer statistics.
func (s *String) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:         s.Len(),
		Cap:         s.Cap(),
		Free:        s.Free(),
		Utilization: s.Utilization(),
	}
}

func utilization(used, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity)
}
