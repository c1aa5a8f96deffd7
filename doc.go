// Package coerce validates already-decoded dynamic values against a
// declarative type descriptor tree and produces either a well-typed internal
// value or a list of path-annotated errors.
//
// - A closed descriptor model (NonNull/List/Scalar/Enum/InputObject)
// - A stable error model via Errors (path, code, message, offending value)
// - Pluggable error sinks: collect everything, or fail on the first error
// - Did-you-mean suggestions for unknown enum members and object fields
//
// Design policy:
// - Keep only public APIs in the root package; put helpers under internal/.
// - Place the builder DSL under dsl/, built-in leaf parsers under scalars/,
//   and the JSON Schema projection under jsonschema/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := coerce.Coerce(ctx, input, ty)
//	v, errs := coerce.CoerceCollect(ctx, input, ty)
//	v, err := coerce.CoerceJSON(ctx, payload, ty)
package coerce
