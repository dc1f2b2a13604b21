// Package source decodes candidate values from JSON and YAML documents into
// propcheck.Values. Only the top-level document must be an object; nested
// values are kept as decoded (map[string]any, []any, json.Number, ...).
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/propcheck"
)

var (
	// ErrNotObject is returned when the top-level document is not an object.
	ErrNotObject = errors.New("source: document is not an object")
	// ErrTooLarge is returned when the input exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("source: max bytes exceeded")
	// ErrDuplicateKey is returned for repeated top-level keys when
	// Options.RejectDuplicateKeys is set.
	ErrDuplicateKey = errors.New("source: duplicate key")
	// ErrUnknownFormat is returned for file extensions without a decoder.
	ErrUnknownFormat = errors.New("source: unknown format")
)

// Format selects the decoder.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Options bundles decoding limits. The zero value applies no limits.
type Options struct {
	MaxBytes            int64
	RejectDuplicateKeys bool
}

func lastOpt(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}

// Read decodes a single document from r.
func Read(r io.Reader, f Format, opts ...Options) (propcheck.Values, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, ErrTooLarge
	}
	switch f {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data, opt)
	}
}

// JSON decodes a JSON object.
func JSON(data []byte, opts ...Options) (propcheck.Values, error) {
	return Read(bytes.NewReader(data), FormatJSON, opts...)
}

// YAML decodes a YAML mapping. Duplicate keys are always rejected by the YAML
// decoder itself.
func YAML(data []byte, opts ...Options) (propcheck.Values, error) {
	return Read(bytes.NewReader(data), FormatYAML, opts...)
}

// ReadFile decodes path, choosing the format from its extension.
func ReadFile(path string, opts ...Options) (propcheck.Values, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer fh.Close()
	return Read(fh, f, opts...)
}
