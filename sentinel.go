package coerce

// Coercion uses a three-valued presence model: a position may hold a value,
// hold an explicit null, or hold nothing at all. Absent marks the last case
// and is distinct from nil so that scalar parsers may legitimately produce
// nil results.

type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent marks "no value supplied at this position" (a missing object key or
// a missing top-level input), as opposed to an explicit null.
var Absent any = absentValue{}

type invalidValue struct{}

func (invalidValue) String() string { return "<invalid>" }

// Invalid is the placeholder the engine writes where coercion failed while a
// collecting sink keeps the call going. It never appears in a value returned
// without reported errors.
var Invalid any = invalidValue{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool { _, ok := v.(absentValue); return ok }

// IsInvalid reports whether v is the Invalid placeholder.
func IsInvalid(v any) bool { _, ok := v.(invalidValue); return ok }

// isNullish reports whether v is nil or Absent, the two inputs a NonNull
// wrapper rejects and every other variant passes through unchanged.
func isNullish(v any) bool { return v == nil || IsAbsent(v) }
