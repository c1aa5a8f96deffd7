package scalars_test

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gqlkit/coerce/scalars"
)

func TestInt(t *testing.T) {
	ctx := context.Background()
	ok := []struct {
		in   any
		want int
	}{
		{42, 42},
		{int32(-7), -7},
		{int64(1 << 20), 1 << 20},
		{float64(3), 3},
		{json.Number("123"), 123},
		// UseNumber decoding hands integral floats over as strings with a
		// fraction part; they coerce like their float64 counterparts.
		{json.Number("3.0"), 3},
		{json.Number("1e2"), 100},
	}
	for _, c := range ok {
		got, err := scalars.Int.ParseValue(ctx, c.in)
		if err != nil {
			t.Errorf("Int(%v): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Int(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	bad := []struct {
		in      any
		wantMsg string
	}{
		{"abc", `Int cannot represent non-integer value: "abc"`},
		{true, "Int cannot represent non-integer value: true"},
		{1.5, "Int cannot represent non-integer value: 1.5"},
		{math.NaN(), "Int cannot represent non-integer value: NaN"},
		{float64(1 << 33), "Int cannot represent non 32-bit signed integer value:"},
		{int64(1 << 33), "Int cannot represent non 32-bit signed integer value:"},
		{json.Number("1.5"), "Int cannot represent non-integer value: 1.5"},
		{json.Number("8589934592.0"), "Int cannot represent non 32-bit signed integer value:"},
		{json.Number("NaN"), "Int cannot represent non-integer value:"},
	}
	for _, c := range bad {
		_, err := scalars.Int.ParseValue(ctx, c.in)
		if err == nil {
			t.Errorf("Int(%v): expected error", c.in)
			continue
		}
		if !strings.HasPrefix(err.Error(), c.wantMsg) {
			t.Errorf("Int(%v) error = %q, want prefix %q", c.in, err.Error(), c.wantMsg)
		}
	}
}

func TestFloat(t *testing.T) {
	ctx := context.Background()
	for _, c := range []struct {
		in   any
		want float64
	}{
		{1, 1},
		{int64(2), 2},
		{2.5, 2.5},
		{json.Number("0.25"), 0.25},
	} {
		got, err := scalars.Float.ParseValue(ctx, c.in)
		if err != nil {
			t.Errorf("Float(%v): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Float(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []any{"x", true, math.NaN(), math.Inf(1)} {
		if _, err := scalars.Float.ParseValue(ctx, in); err == nil {
			t.Errorf("Float(%v): expected error", in)
		}
	}
}

func TestString(t *testing.T) {
	ctx := context.Background()
	got, err := scalars.String.ParseValue(ctx, "ok")
	if err != nil || got != "ok" {
		t.Fatalf("got %v, %v", got, err)
	}
	for _, in := range []any{1, true, nil, []any{"x"}} {
		if _, err := scalars.String.ParseValue(ctx, in); err == nil {
			t.Errorf("String(%v): expected error", in)
		}
	}
}

func TestBoolean(t *testing.T) {
	ctx := context.Background()
	got, err := scalars.Boolean.ParseValue(ctx, true)
	if err != nil || got != true {
		t.Fatalf("got %v, %v", got, err)
	}
	for _, in := range []any{1, "true", 0.0} {
		if _, err := scalars.Boolean.ParseValue(ctx, in); err == nil {
			t.Errorf("Boolean(%v): expected error", in)
		}
	}
}

func TestID(t *testing.T) {
	ctx := context.Background()
	for _, c := range []struct {
		in   any
		want string
	}{
		{"abc123", "abc123"},
		{42, "42"},
		{int64(9000000000), "9000000000"},
		{float64(7), "7"},
		{json.Number("88"), "88"},
	} {
		got, err := scalars.ID.ParseValue(ctx, c.in)
		if err != nil {
			t.Errorf("ID(%v): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ID(%v) = %v, want %q", c.in, got, c.want)
		}
	}
	for _, in := range []any{1.5, true, []any{"x"}} {
		if _, err := scalars.ID.ParseValue(ctx, in); err == nil {
			t.Errorf("ID(%v): expected error", in)
		}
	}
}

func TestDateTime(t *testing.T) {
	ctx := context.Background()
	got, err := scalars.DateTime.ParseValue(ctx, "2026-08-25T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	if !got.(time.Time).Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := scalars.DateTime.ParseValue(ctx, "2026-08-25T10:30:00.5Z"); err != nil {
		t.Errorf("fractional seconds rejected: %v", err)
	}
	for _, in := range []any{"not a time", 42, "2026-08-25"} {
		if _, err := scalars.DateTime.ParseValue(ctx, in); err == nil {
			t.Errorf("DateTime(%v): expected error", in)
		}
	}
}
