package coerce

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNonNull      = "non_null"      // null/absent at a NonNull position
	CodeScalar       = "scalar"        // leaf parser rejected the value
	CodeEnum         = "invalid_enum"  // value is not a declared member name
	CodeInputObject  = "invalid_type"  // non-object input at an InputObject position
	CodeRequired     = "required"      // required field missing with no default
	CodeUnknownField = "unknown_field" // input key not declared on the type
	CodeMaxDepth     = "max_depth"     // recursion budget exhausted
)

// CoercionError is a single path-annotated coercion failure.
type CoercionError struct {
	Path    Path   // Root-to-leaf location of the failure.
	Value   any    // The offending raw value.
	Code    string // One of the codes listed above.
	Message string // Diagnostic without the location prefix.
	Cause   error  // Optional: underlying parser error.
}

// Error renders the default-policy message: the offending value, the path
// rendered from an implicit "value" root, and the diagnostic. The path
// clause is omitted when the failure is at the root.
func (e *CoercionError) Error() string {
	b := &strings.Builder{}
	b.WriteString("Invalid value ")
	b.WriteString(Render(e.Value))
	if len(e.Path) > 0 {
		fmt.Fprintf(b, " at '%s'", e.Path.withRoot("value"))
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *CoercionError) Unwrap() error { return e.Cause }

// Errors is a collection of coercion failures that implements error.
type Errors []CoercionError

// Error summarizes the first few errors. An empty slice still renders a
// message so a wrapped empty Errors never yields a blank error string.
func (es Errors) Error() string {
	if len(es) == 0 {
		return "no errors"
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := es[i]
		// e.g. non_null at /items/2
		fmt.Fprintf(b, "%s at %s", e.Code, e.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends errors to the destination, initializing the slice
// when needed.
func AppendErrors(dst Errors, more ...CoercionError) Errors {
	if dst == nil {
		dst = Errors{}
	}
	return append(dst, more...)
}

// AsErrors extracts Errors from an error using errors.As internally. A bare
// *CoercionError unwraps to a one-element slice.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	var single *CoercionError
	if errors.As(err, &single) {
		return Errors{*single}, true
	}
	return nil, false
}
