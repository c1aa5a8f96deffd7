// Package dsl provides fluent construction of descriptor trees.
//
//	ty := dsl.Object("Point").
//		Field("x", dsl.NonNullOf(scalars.Float)).
//		Field("y", scalars.Float).Default(0.0).
//		MustBuild()
package dsl

import (
	"fmt"

	"github.com/gqlkit/coerce"
)

// NonNullOf wraps t in a NonNull wrapper.
func NonNullOf(t coerce.Type) *coerce.NonNull { return coerce.NonNullOf(t) }

// ListOf wraps t in a List wrapper.
func ListOf(t coerce.Type) *coerce.List { return coerce.ListOf(t) }

// Scalar returns a scalar descriptor with the given parser.
func Scalar(name string, parse coerce.ParseFunc) *coerce.Scalar {
	return coerce.NewScalar(name, parse)
}

// Enum returns an enum descriptor over the given members.
func Enum(name string, values map[string]any) *coerce.Enum {
	return coerce.NewEnum(name, values)
}

type objectBuilder struct {
	name    string
	fields  []coerce.InputField
	outType coerce.OutTypeFunc
	errs    []error
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new input object builder.
func Object(name string) *objectBuilder {
	return &objectBuilder{name: name}
}

// Field registers a field with its type and returns a step for chaining
// per-field options. Fields keep their registration order at coercion time.
func (b *objectBuilder) Field(name string, t coerce.Type) *fieldStep {
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("dsl: empty field name on %q", b.name))
	}
	if t == nil {
		b.errs = append(b.errs, fmt.Errorf("dsl: nil type for field %q on %q", name, b.name))
	}
	for _, f := range b.fields {
		if f.Name == name {
			b.errs = append(b.errs, fmt.Errorf("dsl: duplicate field %q on %q", name, b.name))
		}
	}
	b.fields = append(b.fields, coerce.InputField{Name: name, Type: t})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Default configures the value used verbatim when the field is missing from
// input. The default bypasses coercion and is assumed internal-shaped.
func (f *fieldStep) Default(v any) *fieldStep {
	f.b.fields[f.idx].Default = v
	f.b.fields[f.idx].HasDefault = true
	return f
}

// OutName overrides the key the field writes into the coerced output map.
func (f *fieldStep) OutName(name string) *fieldStep {
	f.b.fields[f.idx].OutName = name
	return f
}

// Field continues the chain on the parent builder.
func (f *fieldStep) Field(name string, t coerce.Type) *fieldStep { return f.b.Field(name, t) }

// OutType continues the chain on the parent builder.
func (f *fieldStep) OutType(fn coerce.OutTypeFunc) *objectBuilder { return f.b.OutType(fn) }

// Build finalizes the descriptor from the field step.
func (f *fieldStep) Build() (*coerce.InputObject, error) { return f.b.Build() }

// MustBuild finalizes the descriptor from the field step, panicking on
// construction errors.
func (f *fieldStep) MustBuild() *coerce.InputObject { return f.b.MustBuild() }

// OutType installs the output-shape transform for the object.
func (b *objectBuilder) OutType(fn coerce.OutTypeFunc) *objectBuilder {
	b.outType = fn
	return b
}

// Build finalizes the descriptor.
func (b *objectBuilder) Build() (*coerce.InputObject, error) {
	if b.name == "" {
		return nil, fmt.Errorf("dsl: input object needs a name")
	}
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return coerce.NewInputObject(b.name, b.fields, b.outType), nil
}

// MustBuild finalizes the descriptor, panicking on construction errors.
func (b *objectBuilder) MustBuild() *coerce.InputObject {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}
