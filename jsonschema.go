package coerce

import (
	"fmt"

	js "github.com/gqlkit/coerce/jsonschema"
)

// JSONSchemaOf projects a descriptor tree into a minimal JSON Schema
// document. NonNull wrappers surface as required entries on the enclosing
// object; the engine's unknown-key rejection maps to
// additionalProperties: false. The caller owns circularity: descriptor
// trees are assumed already validated by the schema layer.
func JSONSchemaOf(t Type) (*js.Schema, error) {
	switch tt := t.(type) {
	case *NonNull:
		return JSONSchemaOf(tt.OfType)
	case *List:
		item, err := JSONSchemaOf(tt.OfType)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: item}, nil
	case *Scalar:
		return &js.Schema{Type: tt.JSONType, Format: tt.JSONFormat}, nil
	case *Enum:
		names := tt.Names()
		vals := make([]any, len(names))
		for i, n := range names {
			vals[i] = n
		}
		return &js.Schema{Type: "string", Enum: vals}, nil
	case *InputObject:
		props := make(map[string]*js.Schema, len(tt.fields))
		var required []string
		for _, f := range tt.fields {
			fs, err := JSONSchemaOf(f.Type)
			if err != nil {
				return nil, err
			}
			if f.HasDefault {
				// Shallow copy so shared descriptors do not leak defaults.
				c := *fs
				c.Default = f.Default
				fs = &c
			}
			props[f.Name] = fs
			if f.Type.Kind() == KindNonNull && !f.HasDefault {
				required = append(required, f.Name)
			}
		}
		return &js.Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: false}, nil
	}
	return nil, fmt.Errorf("coerce: unknown type kind %T", t)
}
