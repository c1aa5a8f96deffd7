package coerce

// ErrorSink receives coercion failures as they are found. The sink is an
// explicit parameter threaded through every recursive call, never shared
// state, so concurrent coercions cannot cross-contaminate error lists.
// Report returning a non-nil error aborts the whole coercion; the engine
// unwinds without producing a partial result.
type ErrorSink interface {
	Report(path Path, invalidValue any, err CoercionError) error
}

// OnErrorFunc adapts a plain callback to an ErrorSink that never aborts.
type OnErrorFunc func(path Path, invalidValue any, err CoercionError)

func (f OnErrorFunc) Report(path Path, invalidValue any, err CoercionError) error {
	f(path, invalidValue, err)
	return nil
}

// Collector is the collecting strategy: it records every failure and lets
// the engine return a best-effort value with Invalid placeholders where
// coercion failed.
type Collector struct{ Errors Errors }

func (c *Collector) Report(_ Path, _ any, err CoercionError) error {
	c.Errors = AppendErrors(c.Errors, err)
	return nil
}

// failFastSink aborts on the first failure. The *CoercionError it returns
// renders the single aggregated default-policy message via Error().
type failFastSink struct{}

func (failFastSink) Report(_ Path, _ any, err CoercionError) error {
	e := err
	return &e
}
