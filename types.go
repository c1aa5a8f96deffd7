package coerce

import (
	"context"
	"sort"
)

// Kind tags the closed set of descriptor variants. Every consumer of the
// tree switches exhaustively over these.
type Kind int

const (
	KindNonNull Kind = iota + 1
	KindList
	KindScalar
	KindEnum
	KindInputObject
)

// Type is one node of a descriptor tree. The set of implementations is
// closed: NonNull, List, Scalar, Enum and InputObject. Descriptor trees are
// built once per schema and read-only afterwards, so concurrent coercions
// against the same tree need no coordination.
type Type interface {
	Kind() Kind
	// String renders the type notation, e.g. "Int!", "[Int]" or "Point".
	String() string

	isType()
}

// NonNull forbids null and absent input at its position.
type NonNull struct{ OfType Type }

// NonNullOf wraps t in a NonNull wrapper.
func NonNullOf(t Type) *NonNull { return &NonNull{OfType: t} }

func (*NonNull) Kind() Kind       { return KindNonNull }
func (t *NonNull) String() string { return t.OfType.String() + "!" }
func (*NonNull) isType()          {}

// List coerces a sequence element-wise. Nullability of the list itself is
// governed by an enclosing NonNull, not by List.
type List struct{ OfType Type }

// ListOf wraps t in a List wrapper.
func ListOf(t Type) *List { return &List{OfType: t} }

func (*List) Kind() Kind       { return KindList }
func (t *List) String() string { return "[" + t.OfType.String() + "]" }
func (*List) isType()          {}

// ParseFunc converts an already-decoded input value into the internal
// representation of a scalar. Returning an error rejects the value; the
// error message is appended to the standard "Expected type X." diagnostic.
type ParseFunc func(ctx context.Context, v any) (any, error)

// Scalar is a leaf type with a schema-supplied parser.
type Scalar struct {
	Name string
	// ParseValue may be nil, in which case values pass through unchanged.
	ParseValue ParseFunc
	// JSONType and JSONFormat optionally name the JSON Schema primitive and
	// format this scalar projects to. Empty leaves the projection untyped.
	JSONType   string
	JSONFormat string
}

// NewScalar returns a scalar descriptor with the given parser. A nil parse
// function accepts any value unchanged.
func NewScalar(name string, parse ParseFunc) *Scalar {
	return &Scalar{Name: name, ParseValue: parse}
}

func (*Scalar) Kind() Kind       { return KindScalar }
func (t *Scalar) String() string { return t.Name }
func (*Scalar) isType()          {}

// Enum is a leaf type matching declared member names (case-sensitive) to
// internal values. Internal values need not be strings and may repeat.
type Enum struct {
	Name   string
	values map[string]any
	names  []string
}

// NewEnum returns an enum descriptor over the given members.
func NewEnum(name string, values map[string]any) *Enum {
	names := make([]string, 0, len(values))
	vals := make(map[string]any, len(values))
	for k, v := range values {
		names = append(names, k)
		vals[k] = v
	}
	sort.Strings(names)
	return &Enum{Name: name, values: vals, names: names}
}

func (*Enum) Kind() Kind       { return KindEnum }
func (t *Enum) String() string { return t.Name }
func (*Enum) isType()          {}

// Value looks up the internal value for a declared member name.
func (t *Enum) Value(name string) (any, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Names returns the declared member names in sorted order.
func (t *Enum) Names() []string { return append([]string(nil), t.names...) }

// OutTypeFunc replaces the assembled output map of an InputObject with a
// domain-specific value. It runs only after all field-level validation
// succeeded; a failing transform should panic and the panic propagates to
// the caller.
type OutTypeFunc func(fields map[string]any) any

// InputField describes one declared field of an InputObject.
type InputField struct {
	Name string
	Type Type
	// Default is used verbatim when the key is missing from input; it is
	// assumed already internal-shaped and bypasses coercion. HasDefault
	// distinguishes a configured nil default from no default at all.
	Default    any
	HasDefault bool
	// OutName overrides Name as the key in the coerced output map.
	OutName string
}

// outKey returns the key this field writes into the output map.
func (f InputField) outKey() string {
	if f.OutName != "" {
		return f.OutName
	}
	return f.Name
}

// InputObject is a composite type built from named fields. Fields are
// processed in declaration order so multi-error output is deterministic.
type InputObject struct {
	Name    string
	OutType OutTypeFunc

	fields []InputField
	byName map[string]int
}

// NewInputObject returns an input object descriptor over the given fields,
// kept in declaration order. Later duplicates of a field name are ignored;
// the dsl package rejects them at build time instead.
func NewInputObject(name string, fields []InputField, outType OutTypeFunc) *InputObject {
	o := &InputObject{Name: name, OutType: outType, byName: make(map[string]int, len(fields))}
	for _, f := range fields {
		if _, dup := o.byName[f.Name]; dup {
			continue
		}
		o.byName[f.Name] = len(o.fields)
		o.fields = append(o.fields, f)
	}
	return o
}

func (*InputObject) Kind() Kind       { return KindInputObject }
func (t *InputObject) String() string { return t.Name }
func (*InputObject) isType()          {}

// Fields returns the declared fields in declaration order.
func (t *InputObject) Fields() []InputField { return append([]InputField(nil), t.fields...) }

// Field looks up a declared field by name.
func (t *InputObject) Field(name string) (InputField, bool) {
	if i, ok := t.byName[name]; ok {
		return t.fields[i], true
	}
	return InputField{}, false
}

// FieldNames returns the declared field names in declaration order.
func (t *InputObject) FieldNames() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}
