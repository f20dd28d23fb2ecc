package adt

import (
	"fmt"
	"io"
	"strconv"
)

// ReadLine replaces the content of s with the next line from r.
// Reading stops after '\n' or at end of input; the newline, and a '\r'
// directly before it, are not stored. It returns io.EOF only when r was
// already exhausted, in which case s is left empty.
func (s *String) ReadLine(r io.ByteReader) error {
	s.init()
	s.length = 0
	s.buf[0] = 0

	read := false
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		read = true
		if c == '\n' {
			break
		}
		// room for c and the terminator before c is written
		if err := s.ensure("String.ReadLine", s.length+1); err != nil {
			return err
		}
		s.buf[s.length] = c
		s.length++
		s.buf[s.length] = 0
	}
	if !read {
		return io.EOF
	}
	if s.length > 0 && s.buf[s.length-1] == '\r' {
		s.length--
		s.buf[s.length] = 0
	}
	return nil
}

// ParseLine reads one line from r into a new String. See ReadLine.
func ParseLine(r io.ByteReader) (*String, error) {
	s := NewString()
	if err := s.ReadLine(r); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteTo writes the raw content of s to w. It implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf[:s.length])
	return int64(n), err
}

// WriteDebugTo writes s prefixed with its capacity and length, e.g. "[cap=16 len=3] abc".
func (s *String) WriteDebugTo(w io.Writer) (int64, error) {
	line := make([]byte, 0, s.length+32)
	line = append(line, "[cap="...)
	line = strconv.AppendInt(line, int64(len(s.buf)), 10)
	line = append(line, " len="...)
	line = strconv.AppendInt(line, int64(s.length), 10)
	line = append(line, "] "...)
	line = append(line, s.buf[:s.length]...)
	n, err := w.Write(line)
	return int64(n), err
}

// Format implements fmt.Formatter. %s and %v print the content, %+v adds
// the capacity and length, %q quotes it.
func (s *String) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		_, _ = s.WriteDebugTo(f)
	case verb == 'q':
		fmt.Fprintf(f, "%q", s.buf[:s.length])
	case verb == 's' || verb == 'v':
		_, _ = s.WriteTo(f)
	default:
		fmt.Fprintf(f, "%%!%c(adt.String=%s)", verb, s.buf[:s.length])
	}
}
