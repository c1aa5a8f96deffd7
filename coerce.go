package coerce

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/gqlkit/coerce/i18n"
	"github.com/gqlkit/coerce/internal/suggest"
)

// DefaultMaxDepth bounds the combined descriptor/input nesting the engine
// follows before aborting. Input shape is caller-controlled, so the budget
// guards against pathological nesting.
const DefaultMaxDepth = 256

// CoerceOpt bundles coercion options. When passed variadically the last
// option wins.
type CoerceOpt struct {
	// MaxDepth overrides DefaultMaxDepth when > 0.
	MaxDepth int
}

// Coerce validates value against t under the fail-fast policy: it returns a
// fully coerced value, or the first failure as a *CoercionError whose
// message reads "Invalid value <v>[ at '<path>']: <diagnostic>". No partial
// result is observable past the first failure.
func Coerce(ctx context.Context, value any, t Type, opts ...CoerceOpt) (any, error) {
	v, err := CoerceWith(ctx, value, t, failFastSink{}, opts...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CoerceCollect validates value against t under the collecting policy and
// returns the best-effort value together with every recorded failure. The
// value is trustworthy only when the returned Errors is empty.
func CoerceCollect(ctx context.Context, value any, t Type, opts ...CoerceOpt) (any, Errors) {
	var c Collector
	v, err := CoerceWith(ctx, value, t, &c, opts...)
	if err != nil {
		// The Collector never aborts; the only abort left is the depth budget.
		if es, ok := AsErrors(err); ok {
			c.Errors = AppendErrors(c.Errors, es...)
		}
	}
	return v, c.Errors
}

// CoerceWith validates value against t, reporting failures through sink.
// The returned error is non-nil only when the sink aborted the run or the
// depth budget was exhausted; otherwise the best-effort value is returned
// and the sink holds whatever was reported.
func CoerceWith(ctx context.Context, value any, t Type, sink ErrorSink, opts ...CoerceOpt) (any, error) {
	if t == nil {
		// A nil descriptor is a caller bug, not a coercion failure, so it
		// does not get a coded CoercionError.
		return nil, fmt.Errorf("coerce: nil type descriptor")
	}
	if sink == nil {
		sink = failFastSink{}
	}
	var opt CoerceOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	depth := opt.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return coerceValue(ctx, value, t, nil, sink, depth)
}

// report hands one failure to the sink and yields the Invalid placeholder,
// or the sink's abort error.
func report(sink ErrorSink, p Path, v any, code, msg string, cause error) (any, error) {
	if err := sink.Report(p, v, CoercionError{Path: p, Value: v, Code: code, Message: msg, Cause: cause}); err != nil {
		return nil, err
	}
	return Invalid, nil
}

func coerceValue(ctx context.Context, v any, t Type, p Path, sink ErrorSink, depth int) (any, error) {
	if depth <= 0 {
		return nil, &CoercionError{Path: p, Value: v, Code: CodeMaxDepth, Message: i18n.T(CodeMaxDepth, nil)}
	}
	if nn, ok := t.(*NonNull); ok {
		if isNullish(v) {
			return report(sink, p, v, CodeNonNull, i18n.T(CodeNonNull, map[string]string{"type": nn.String()}), nil)
		}
		return coerceValue(ctx, v, nn.OfType, p, sink, depth-1)
	}
	// Null and absence at a nullable position pass through unchanged; an
	// enclosing NonNull is the only thing that rejects them.
	if isNullish(v) {
		return v, nil
	}
	switch tt := t.(type) {
	case *List:
		return coerceList(ctx, v, tt, p, sink, depth)
	case *Scalar:
		return coerceScalar(ctx, v, tt, p, sink)
	case *Enum:
		return coerceEnum(v, tt, p, sink)
	case *InputObject:
		return coerceInputObject(ctx, v, tt, p, sink, depth)
	}
	// Type is closed; reaching here means a foreign implementation.
	return nil, fmt.Errorf("coerce: unknown type kind %T", t)
}

func coerceList(ctx context.Context, v any, tt *List, p Path, sink ErrorSink, depth int) (any, error) {
	if items, ok := sequenceOf(v); ok {
		out := make([]any, 0, len(items))
		for i, item := range items {
			cv, err := coerceValue(ctx, item, tt.OfType, p.Index(i), sink, depth-1)
			if err != nil {
				return nil, err
			}
			// Failed elements keep their position as Invalid placeholders.
			out = append(out, cv)
		}
		return out, nil
	}
	// Auto-wrap: a non-sequence coerces as a single element at the same
	// path (no index appended) and lands in a one-element list.
	cv, err := coerceValue(ctx, v, tt.OfType, p, sink, depth-1)
	if err != nil {
		return nil, err
	}
	return []any{cv}, nil
}

// sequenceOf reports whether v is an ordered sequence for list coercion.
// Strings, byte slices and mappings are atoms here, not sequences.
func sequenceOf(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case string, []byte, map[string]any:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

func coerceScalar(ctx context.Context, v any, tt *Scalar, p Path, sink ErrorSink) (any, error) {
	data := map[string]string{"type": tt.Name}
	parsed, perr := invokeParser(ctx, tt, v)
	if perr != nil {
		msg := i18n.T(CodeScalar, data)
		if s := perr.Error(); s != "" {
			msg += " " + s
		}
		return report(sink, p, v, CodeScalar, msg, perr)
	}
	if IsAbsent(parsed) || IsInvalid(parsed) {
		return report(sink, p, v, CodeScalar, i18n.T(CodeScalar, data), nil)
	}
	// Whatever the parser produced stands, NaN included.
	return parsed, nil
}

// invokeParser is the single point where a schema-supplied parser runs. A
// panicking parser is folded into an ordinary parse error here so arbitrary
// failures cannot escape the engine's error channel.
func invokeParser(ctx context.Context, tt *Scalar, v any) (parsed any, err error) {
	if tt.ParseValue == nil {
		return v, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return tt.ParseValue(ctx, v)
}

func coerceEnum(v any, tt *Enum, p Path, sink ErrorSink) (any, error) {
	name, isString := v.(string)
	if isString {
		if internal, ok := tt.Value(name); ok {
			return internal, nil
		}
	}
	msg := i18n.T(CodeEnum, map[string]string{"type": tt.Name})
	if isString {
		// Matching is by declared name only; a near-miss earns a hint.
		msg += suggest.DidYouMean(name, tt.Names())
	}
	return report(sink, p, v, CodeEnum, msg, nil)
}

func coerceInputObject(ctx context.Context, v any, tt *InputObject, p Path, sink ErrorSink, depth int) (any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return report(sink, p, v, CodeInputObject, i18n.T(CodeInputObject, map[string]string{"type": tt.Name}), nil)
	}
	out := make(map[string]any, len(tt.fields))
	for _, f := range tt.fields {
		raw, present := src[f.Name]
		if !present {
			if f.HasDefault {
				// Defaults are already internal-shaped; no recursion.
				out[f.outKey()] = f.Default
				continue
			}
			if f.Type.Kind() == KindNonNull {
				// Reported against the whole input at the current path.
				msg := i18n.T(CodeRequired, map[string]string{"field": f.Name, "type": f.Type.String()})
				if _, err := report(sink, p, src, CodeRequired, msg, nil); err != nil {
					return nil, err
				}
			}
			continue
		}
		cv, err := coerceValue(ctx, raw, f.Type, p.Field(f.Name), sink, depth-1)
		if err != nil {
			return nil, err
		}
		if IsAbsent(cv) {
			continue
		}
		out[f.outKey()] = cv
	}
	// Unknown keys, in sorted order for deterministic multi-error output.
	var unknown []string
	for k := range src {
		if _, known := tt.byName[k]; !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		msg := i18n.T(CodeUnknownField, map[string]string{"field": k, "type": tt.Name})
		msg += suggest.DidYouMean(k, tt.FieldNames())
		if _, err := report(sink, p, src, CodeUnknownField, msg, nil); err != nil {
			return nil, err
		}
	}
	if tt.OutType != nil {
		return tt.OutType(out), nil
	}
	return out, nil
}
