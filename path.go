package coerce

import (
	"strconv"
	"strings"
)

// Segment is one step in a coercion path: an object field name or a list
// index.
type Segment struct {
	name  string
	index int
	isIdx bool
}

// FieldSegment returns a segment for the named object field.
func FieldSegment(name string) Segment { return Segment{name: name} }

// IndexSegment returns a segment for the i-th list element.
func IndexSegment(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment denotes a list index.
func (s Segment) IsIndex() bool { return s.isIdx }

// FieldName returns the field name for a non-index segment.
func (s Segment) FieldName() string { return s.name }

// Index returns the list index for an index segment.
func (s Segment) Index() int { return s.index }

// Path is the ordered root-to-leaf location of a value inside the input.
type Path []Segment

// Field returns a new path extended with a field segment. The receiver is
// never modified; paths are chain-safe the way the engine hands them down.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), FieldSegment(name))
}

// Index returns a new path extended with an index segment.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), IndexSegment(i))
}

// String renders the path in message form: field names joined with dots,
// indices in brackets, e.g. "foo.bar[2]". The empty path renders empty.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, s := range p {
		switch {
		case s.isIdx:
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s.index))
			b.WriteString("]")
		case i == 0:
			b.WriteString(s.name)
		default:
			b.WriteString(".")
			b.WriteString(s.name)
		}
	}
	return b.String()
}

// withRoot renders the path appended to a root name, e.g. "value[0]" or
// "value.foo.bar[2]".
func (p Path) withRoot(root string) string {
	b := &strings.Builder{}
	b.WriteString(root)
	for _, s := range p {
		if s.isIdx {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s.index))
			b.WriteString("]")
		} else {
			b.WriteString(".")
			b.WriteString(s.name)
		}
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer, escaping "~" and
// "/" in field names. The empty path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteString("/")
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
		} else {
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.name, "~", "~0"), "/", "~1"))
		}
	}
	return b.String()
}
