// Package schemadoc builds propcheck schemas from declarative YAML or JSON
// documents, for callers that cannot express their predicates in Go (for
// example the propcheck CLI).
//
//	properties:
//	  title: {type: string, required: true, minLength: 5, maxLength: 30}
//	  meta:
//	    type: object
//	    properties:
//	      count: {type: number, required: true}
//	  related: {anyOf: [{type: array}, {type: "null"}]}
//
// An object property with nested properties compiles to
// propcheck.ValidateFunc of the nested schema; there is no other nesting.
package schemadoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/reoring/propcheck/source"
)

var (
	// ErrUnknownType is returned for an unsupported "type" keyword.
	ErrUnknownType = errors.New("schemadoc: unknown type")
	// ErrUnknownFormat is returned for an unsupported "format" keyword.
	ErrUnknownFormat = errors.New("schemadoc: unknown format")
	// ErrInvalidDocument is returned when the document does not decode into
	// the expected shape.
	ErrInvalidDocument = errors.New("schemadoc: invalid document")
)

// Document is the root of a schema document.
type Document struct {
	Title       string              `mapstructure:"title"`
	Description string              `mapstructure:"description"`
	Properties  map[string]Property `mapstructure:"properties"`
}

// Property describes the rule for a single property.
type Property struct {
	Description string              `mapstructure:"description"`
	Type        string              `mapstructure:"type"`
	Required    bool                `mapstructure:"required"`
	Message     string              `mapstructure:"message"`
	Format      string              `mapstructure:"format"`
	MinLength   *int                `mapstructure:"minLength"`
	MaxLength   *int                `mapstructure:"maxLength"`
	Minimum     *float64            `mapstructure:"minimum"`
	Maximum     *float64            `mapstructure:"maximum"`
	Enum        []any               `mapstructure:"enum"`
	Properties  map[string]Property `mapstructure:"properties"`
	AnyOf       []Property          `mapstructure:"anyOf"`
	AllOf       []Property          `mapstructure:"allOf"`
	Not         *Property           `mapstructure:"not"`
}

// Parse decodes a schema document. Unknown keywords are rejected.
func Parse(data []byte, f source.Format) (*Document, error) {
	raw, err := source.Read(bytes.NewReader(data), f, source.Options{RejectDuplicateKeys: true})
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Load reads and parses a schema document, choosing the format from the file
// extension.
func Load(path string) (*Document, error) {
	f, err := source.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemadoc: %w", err)
	}
	return Parse(data, f)
}

// Decode converts an already decoded document into a Document.
func Decode(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  numberHook,
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// numberHook turns decoded JSON numbers into float64 so that mapstructure can
// assign them to numeric fields.
func numberHook(_ reflect.Type, _ reflect.Type, data any) (any, error) {
	if n, ok := data.(interface{ Float64() (float64, error) }); ok {
		return n.Float64()
	}
	return data, nil
}
