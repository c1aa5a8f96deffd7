package coerce_test

import (
	"reflect"
	"testing"

	"github.com/gqlkit/coerce"
	"github.com/gqlkit/coerce/scalars"
)

func TestTypeNotation(t *testing.T) {
	cases := []struct {
		ty   coerce.Type
		want string
	}{
		{scalars.Int, "Int"},
		{coerce.NonNullOf(scalars.Int), "Int!"},
		{coerce.ListOf(scalars.Int), "[Int]"},
		{coerce.NonNullOf(coerce.ListOf(coerce.NonNullOf(scalars.Int))), "[Int!]!"},
	}
	for _, c := range cases {
		if got := c.ty.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestEnumNames(t *testing.T) {
	e := coerce.NewEnum("E", map[string]any{"B": 2, "A": 1, "C": 3})
	if !reflect.DeepEqual(e.Names(), []string{"A", "B", "C"}) {
		t.Fatalf("names = %v", e.Names())
	}
	if v, ok := e.Value("B"); !ok || v != 2 {
		t.Fatalf("got %v, %v", v, ok)
	}
	if _, ok := e.Value("b"); ok {
		t.Fatal("lookup is case-sensitive")
	}
}

func TestInputObjectLookup(t *testing.T) {
	o := coerce.NewInputObject("O", []coerce.InputField{
		{Name: "a", Type: scalars.Int},
		{Name: "b", Type: scalars.String},
		{Name: "a", Type: scalars.Float}, // later duplicate is ignored
	}, nil)

	if !reflect.DeepEqual(o.FieldNames(), []string{"a", "b"}) {
		t.Fatalf("names = %v", o.FieldNames())
	}
	a, ok := o.Field("a")
	if !ok || a.Type != coerce.Type(scalars.Int) {
		t.Fatalf("field a = %#v, %v", a, ok)
	}
	if _, ok := o.Field("z"); ok {
		t.Fatal("unexpected field z")
	}
}

func TestSentinels(t *testing.T) {
	if !coerce.IsAbsent(coerce.Absent) || coerce.IsAbsent(nil) || coerce.IsAbsent(0) {
		t.Error("IsAbsent misclassifies")
	}
	if !coerce.IsInvalid(coerce.Invalid) || coerce.IsInvalid(nil) {
		t.Error("IsInvalid misclassifies")
	}
	if coerce.IsAbsent(coerce.Invalid) || coerce.IsInvalid(coerce.Absent) {
		t.Error("sentinels conflated")
	}
}
