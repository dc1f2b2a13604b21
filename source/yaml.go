package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/propcheck"
)

// decodeYAML reads the first document. An empty input yields empty Values.
func decodeYAML(data []byte) (propcheck.Values, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return propcheck.Values{}, nil
		}
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	m := StringMap(node)
	if m == nil {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, node)
	}
	return m, nil
}

// StringMap converts a decoded YAML mapping into map[string]any, recursively
// normalizing nested mappings. Non-string keys are dropped. It returns nil
// when v is not a mapping.
func StringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return StringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
