package source

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/propcheck"
)

func decodeJSON(data []byte, opt Options) (propcheck.Values, error) {
	if opt.RejectDuplicateKeys {
		dups, err := duplicateTopLevelKeys(data)
		if err != nil {
			return nil, fmt.Errorf("source: json: %w", err)
		}
		if len(dups) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, dups)
		}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("source: json: trailing data after document")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, v)
	}
	return m, nil
}

// duplicateTopLevelKeys walks the token stream and reports keys that repeat
// in the top-level object. Nested objects are opaque property values here.
func duplicateTopLevelKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var (
		depth   int
		wantKey bool
		seen    = map[string]struct{}{}
		dups    []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return dups, nil
		}
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				if depth == 0 && d == '[' {
					return nil, nil
				}
				depth++
				wantKey = depth == 1 && d == '{'
			case '}', ']':
				depth--
				if depth == 1 {
					wantKey = true
				}
			}
			continue
		}
		if depth == 0 {
			return nil, nil
		}
		if depth != 1 {
			continue
		}
		if !wantKey {
			wantKey = true
			continue
		}
		k, _ := tok.(string)
		if _, ok := seen[k]; ok {
			dups = append(dups, k)
		}
		seen[k] = struct{}{}
		wantKey = false
	}
}
