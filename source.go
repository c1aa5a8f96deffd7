package coerce

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON document into host values suitable for coercion
// (map[string]any, []any, string, bool, json.Number, nil). Numbers are kept
// as json.Number so scalar parsers decide precision.
func DecodeJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("coerce: decode json: %w", err)
	}
	// Reject trailing content so a concatenated payload cannot slip through.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("coerce: decode json: trailing data")
	}
	return v, nil
}

// DecodeYAML decodes a YAML document into host values for coercion.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("coerce: decode yaml: %w", err)
	}
	return v, nil
}

// CoerceJSON decodes data as JSON and coerces it against t under the
// fail-fast policy.
func CoerceJSON(ctx context.Context, data []byte, t Type, opts ...CoerceOpt) (any, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Coerce(ctx, v, t, opts...)
}

// CoerceYAML decodes data as YAML and coerces it against t under the
// fail-fast policy.
func CoerceYAML(ctx context.Context, data []byte, t Type, opts ...CoerceOpt) (any, error) {
	v, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Coerce(ctx, v, t, opts...)
}
