package propcheck

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNotObject is returned by ValuesOf for inputs that have no properties.
var ErrNotObject = errors.New("propcheck: value is not an object")

// ValuesOf views v as a property map. It accepts Values, any map keyed by a
// string kind, and structs (or pointers to them). nil and Undefined yield an
// empty map. Struct fields are keyed by ResolveStructKey and fields tagged
// omitempty are left out when they hold their zero value.
func ValuesOf(v any) (Values, error) {
	if v == nil || IsUndefined(v) {
		return Values{}, nil
	}
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Values{}, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrNotObject, rv.Type().Key())
		}
		out := make(Values, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		return structValues(rv), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotObject, v)
}

func structValues(rv reflect.Value) Values {
	rt := rv.Type()
	out := make(Values, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fv := rv.Field(i)
		if omitEmpty(sf) && fv.IsZero() {
			continue
		}
		out[key] = fv.Interface()
	}
	return out
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's property name.
// Priority: propcheck:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if pt := sf.Tag.Get("propcheck"); pt != "" {
		for _, p := range strings.Split(pt, ",") {
			p = strings.TrimSpace(p)
			if p == "-" {
				return "-"
			}
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

func omitEmpty(sf reflect.StructField) bool {
	for _, tag := range []string{sf.Tag.Get("propcheck"), sf.Tag.Get("json")} {
		for _, p := range strings.Split(tag, ",") {
			if strings.TrimSpace(p) == "omitempty" {
				return true
			}
		}
	}
	return false
}
