package schemadoc

import (
	"fmt"

	"github.com/reoring/propcheck"
	"github.com/reoring/propcheck/pred"
)

// Compile turns the document into a Schema. Nested object schemas are bound
// to e; nil means a default engine.
func (d *Document) Compile(e *propcheck.Engine) (propcheck.Schema, error) {
	if e == nil {
		e = propcheck.New()
	}
	return compileProperties(e, "", d.Properties)
}

func compileProperties(e *propcheck.Engine, prefix string, props map[string]Property) (propcheck.Schema, error) {
	s := make(propcheck.Schema, len(props))
	for name, p := range props {
		path := prefix + "/" + name
		fn, err := p.predicate(e, path)
		if err != nil {
			return nil, err
		}
		spec := propcheck.Optional(fn)
		if p.Required {
			spec = propcheck.Required(fn)
		}
		if p.Message != "" {
			spec = spec.WithMessage(p.Message)
		}
		s[name] = spec
	}
	return s, nil
}

// predicate compiles every keyword of p and combines them with IsAll.
func (p Property) predicate(e *propcheck.Engine, path string) (propcheck.Predicate, error) {
	var ps []propcheck.Predicate

	base, err := p.typePredicate(e, path)
	if err != nil {
		return nil, err
	}
	if base != nil {
		ps = append(ps, base)
	}

	switch p.Format {
	case "":
	case "uuid":
		ps = append(ps, pred.IsUUID)
	case "date-time":
		ps = append(ps, pred.IsDateString)
	default:
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownFormat, p.Format, path)
	}

	if p.MinLength != nil {
		ps = append(ps, pred.MinLength(*p.MinLength))
	}
	if p.MaxLength != nil {
		ps = append(ps, pred.MaxLength(*p.MaxLength))
	}
	if p.Minimum != nil {
		ps = append(ps, pred.Minimum(*p.Minimum))
	}
	if p.Maximum != nil {
		ps = append(ps, pred.Maximum(*p.Maximum))
	}
	if len(p.Enum) > 0 {
		ps = append(ps, pred.OneOf(p.Enum...))
	}

	if len(p.AnyOf) > 0 {
		branches, err := compileAll(e, path+"/anyOf", p.AnyOf)
		if err != nil {
			return nil, err
		}
		ps = append(ps, pred.IsAny(branches...))
	}
	if len(p.AllOf) > 0 {
		branches, err := compileAll(e, path+"/allOf", p.AllOf)
		if err != nil {
			return nil, err
		}
		ps = append(ps, branches...)
	}
	if p.Not != nil {
		inner, err := p.Not.predicate(e, path+"/not")
		if err != nil {
			return nil, err
		}
		ps = append(ps, pred.IsNot(inner))
	}

	switch len(ps) {
	case 0:
		return pred.Any, nil
	case 1:
		return ps[0], nil
	default:
		return pred.IsAll(ps...), nil
	}
}

func (p Property) typePredicate(e *propcheck.Engine, path string) (propcheck.Predicate, error) {
	switch p.Type {
	case "", "any":
		return nil, nil
	case "string":
		return pred.IsString, nil
	case "number":
		return pred.IsNumber, nil
	case "integer":
		return pred.IsInteger, nil
	case "boolean":
		return pred.IsBool, nil
	case "null":
		return pred.IsNull, nil
	case "array":
		return pred.IsArray, nil
	case "object":
		if p.Properties == nil {
			return pred.IsObject, nil
		}
		nested, err := compileProperties(e, path, p.Properties)
		if err != nil {
			return nil, err
		}
		return pred.IsAll(pred.IsObject, e.ValidateFunc(nested)), nil
	}
	return nil, fmt.Errorf("%w %q at %s", ErrUnknownType, p.Type, path)
}

func compileAll(e *propcheck.Engine, path string, props []Property) ([]propcheck.Predicate, error) {
	out := make([]propcheck.Predicate, 0, len(props))
	for i, p := range props {
		fn, err := p.predicate(e, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}
