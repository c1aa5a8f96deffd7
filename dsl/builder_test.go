package dsl_test

import (
	"strings"
	"testing"

	"github.com/gqlkit/coerce"
	"github.com/gqlkit/coerce/dsl"
	"github.com/gqlkit/coerce/scalars"
)

func TestObjectBuild(t *testing.T) {
	ty, err := dsl.Object("Point").
		Field("x", dsl.NonNullOf(scalars.Float)).
		Field("y", scalars.Float).Default(0.0).OutName("why").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.Name != "Point" {
		t.Errorf("name = %q", ty.Name)
	}

	fields := ty.Fields()
	if len(fields) != 2 || fields[0].Name != "x" || fields[1].Name != "y" {
		t.Fatalf("fields = %#v", fields)
	}

	y, ok := ty.Field("y")
	if !ok {
		t.Fatal("field y missing")
	}
	if !y.HasDefault || y.Default != 0.0 {
		t.Errorf("y default = %#v (has=%v)", y.Default, y.HasDefault)
	}
	if y.OutName != "why" {
		t.Errorf("y out name = %q", y.OutName)
	}
}

func TestObjectBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		b    interface {
			Build() (*coerce.InputObject, error)
		}
		frag string
	}{
		{
			name: "missing object name",
			b:    dsl.Object("").Field("x", scalars.Int),
			frag: "needs a name",
		},
		{
			name: "empty field name",
			b:    dsl.Object("O").Field("", scalars.Int),
			frag: "empty field name",
		},
		{
			name: "nil field type",
			b:    dsl.Object("O").Field("x", nil),
			frag: "nil type",
		},
		{
			name: "duplicate field",
			b:    dsl.Object("O").Field("x", scalars.Int).Field("x", scalars.Int),
			frag: "duplicate field",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.b.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.frag) {
				t.Errorf("error = %q, want substring %q", err.Error(), c.frag)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	dsl.Object("").MustBuild()
}

func TestEnumHelper(t *testing.T) {
	ty := dsl.Enum("Color", map[string]any{"RED": 1})
	if v, ok := ty.Value("RED"); !ok || v != 1 {
		t.Fatalf("got %v, %v", v, ok)
	}
}

func TestScalarHelper(t *testing.T) {
	ty := dsl.Scalar("Passthrough", nil)
	if ty.Name != "Passthrough" || ty.Kind() != coerce.KindScalar {
		t.Fatalf("got %#v", ty)
	}
}

func TestListHelper(t *testing.T) {
	ty := dsl.ListOf(dsl.NonNullOf(scalars.Int))
	if ty.String() != "[Int!]" {
		t.Fatalf("got %q", ty.String())
	}
}
