package adt

import (
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Layout is a text layout policy for printing container contents.
// Rendering with a Layout never modifies the container.
type Layout struct {
	Columns         int    `yaml:"columns"`           // elements per line
	Width           int    `yaml:"width"`             // right-aligned field width, 0 for plain
	Separator       string `yaml:"separator"`         // between elements on one line
	SeparatorAtWrap bool   `yaml:"separator_at_wrap"` // also end a wrapped line with Separator
	Numbered        bool   `yaml:"numbered"`          // prefix each element with "<index>\t"
}

// Built-in layout names.
const (
	LayoutSmallInt = "small-int"
	LayoutWideInt  = "wide-int"
	LayoutLongInt  = "long-int"
	LayoutString   = "string"
)

// Presets holds the built-in layouts by name.
var Presets = map[string]Layout{
	LayoutSmallInt: {Columns: 5, Separator: ", "},
	LayoutWideInt:  {Columns: 7, Width: 10, Separator: ",", SeparatorAtWrap: true},
	LayoutLongInt:  {Columns: 4, Width: 18, Separator: ",", SeparatorAtWrap: true},
	LayoutString:   {Columns: 1, Numbered: true},
}

// LookupPreset returns the built-in layout called name.
func LookupPreset(name string) (Layout, bool) {
	l, ok := Presets[name]
	return l, ok
}

// PresetNames returns the built-in layout names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate reports ErrInvalidArgument for a layout that cannot be rendered.
func (l Layout) Validate() error {
	if l.Columns < 1 {
		return invalidArgument("Layout.Validate", fmt.Errorf("columns must be >= 1, got %d", l.Columns))
	}
	if l.Width < 0 {
		return invalidArgument("Layout.Validate", fmt.Errorf("width must be >= 0, got %d", l.Width))
	}
	return nil
}

// Lines lays out items, one string per output line, without trailing newlines.
// A layout with Columns < 1 is treated as one element per line.
func (l Layout) Lines(items []string) []string {
	cols := max(l.Columns, 1)
	lines := make([]string, 0, (len(items)+cols-1)/cols)
	line := NewString()
	for i, item := range items {
		col := i % cols
		if l.Numbered {
			_ = line.ConcatString(strconv.Itoa(i))
			_ = line.Append('\t')
		}
		if pad := l.Width - len(item); pad > 0 {
			_ = line.AppendN(' ', pad)
		}
		_ = line.ConcatString(item)

		last := i == len(items)-1
		wrap := col == cols-1
		if !last && (!wrap || l.SeparatorAtWrap) {
			_ = line.ConcatString(l.Separator)
		}
		if wrap || last {
			lines = append(lines, line.String())
			line = NewString()
		}
	}
	return lines
}

// Render lays out items using their fmt representation.
func Render[T any](l Layout, items []T) []string {
	text := make([]string, len(items))
	for i, item := range items {
		text[i] = elementText(item)
	}
	return l.Lines(text)
}

// RenderArray lays out the valid elements of a.
func RenderArray[T any](l Layout, a *Array[T]) []string {
	return Render(l, a.buf[:a.length])
}

// Fprint writes lines to w, each followed by a newline.
func (l Layout) Fprint(w io.Writer, lines []string) error {
	out := NewString()
	for _, line := range lines {
		if err := out.ConcatString(line); err != nil {
			return err
		}
		if err := out.Append('\n'); err != nil {
			return err
		}
	}
	_, err := out.WriteTo(w)
	return err
}

// FprintArray renders a with l and writes the result to w.
func FprintArray[T any](w io.Writer, l Layout, a *Array[T]) error {
	return l.Fprint(w, RenderArray(l, a))
}

func elementText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *String:
		if x == nil {
			return ""
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
