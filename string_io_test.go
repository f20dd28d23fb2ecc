package adt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first\nsecond\r\n\nlast"))

	var got []string
	for {
		s, err := ParseLine(r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		checkTerminated(t, s)
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"first", "second", "", "last"}, got)
}

func TestReadLineEmptyInput(t *testing.T) {
	s := StringOf("stale")
	err := s.ReadLine(strings.NewReader(""))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, s.Len())
	checkTerminated(t, s)
}

func TestReadLineCapacityBoundary(t *testing.T) {
	for _, n := range []int{14, 15, 16, 17, 31, 32, 33, 100} {
		t.Run(fmt.Sprintf("len-%d", n), func(t *testing.T) {
			line := strings.Repeat("x", n)
			s := NewString()
			require.NoError(t, s.ReadLine(strings.NewReader(line+"\nrest")))
			assert.Equal(t, line, s.String())
			assert.Equal(t, nextStringCapacity(n), s.Cap())
			checkTerminated(t, s)
		})
	}
}

func TestReadLineReusesBuffer(t *testing.T) {
	s := NewString()
	require.NoError(t, s.Reserve(100))
	require.NoError(t, s.ReadLine(strings.NewReader("short\n")))
	assert.Equal(t, "short", s.String())
	assert.Equal(t, 128, s.Cap())
}

type failingReader struct{ after int }

func (r *failingReader) ReadByte() (byte, error) {
	if r.after == 0 {
		return 0, errors.New("device gone")
	}
	r.after--
	return 'a', nil
}

func TestReadLineSourceError(t *testing.T) {
	s := NewString()
	err := s.ReadLine(&failingReader{after: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	checkTerminated(t, s)
}

func TestStringWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := StringOf("abc").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "abc", buf.String())
}

func TestStringWriteDebugTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := StringOf("abc").WriteDebugTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[cap=16 len=3] abc", buf.String())
}

func TestStringFormat(t *testing.T) {
	s := StringOf("a\tb")
	tests := []struct {
		format   string
		expected string
	}{
		{"%s", "a\tb"},
		{"%v", "a\tb"},
		{"%+v", "[cap=16 len=3] a\tb"},
		{"%q", `"a\tb"`},
		{"%d", "%!d(adt.String=a\tb)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, fmt.Sprintf(tt.format, s))
		})
	}
	assert.Equal(t, "a\tb", fmt.Sprint(s))
}
