// Package pred provides ready-made predicates and combinators for use as
// propcheck schema rules. None of them keep state.
package pred

import (
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/reoring/propcheck"
)

// IsAll is satisfied when every p is satisfied. With no predicates it always
// passes.
func IsAll(ps ...propcheck.Predicate) propcheck.Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// IsAny is satisfied when at least one p is satisfied.
func IsAny(ps ...propcheck.Predicate) propcheck.Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// IsNot negates p.
func IsNot(p propcheck.Predicate) propcheck.Predicate {
	return func(v any) bool { return !p(v) }
}

// Any accepts every defined value.
var Any propcheck.Predicate = func(v any) bool { return !propcheck.IsUndefined(v) }

var IsString propcheck.Predicate = func(v any) bool {
	_, ok := v.(string)
	return ok
}

var IsBool propcheck.Predicate = func(v any) bool {
	_, ok := v.(bool)
	return ok
}

var IsNull propcheck.Predicate = func(v any) bool { return v == nil }

// float64er matches json.Number from encoding/json and go-json.
type float64er interface {
	Float64() (float64, error)
}

// IsNumber accepts Go numeric kinds and decoded JSON numbers.
var IsNumber propcheck.Predicate = func(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// IsInteger accepts numbers without a fractional part.
var IsInteger propcheck.Predicate = func(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(float64er); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsArray accepts slices and arrays.
var IsArray propcheck.Predicate = func(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsObject accepts string-keyed maps.
var IsObject propcheck.Predicate = func(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

var IsDate propcheck.Predicate = func(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	}
	return false
}

// IsDateString accepts RFC 3339 timestamps.
var IsDateString propcheck.Predicate = func(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsUUID accepts strings in any form uuid.Parse understands.
var IsUUID propcheck.Predicate = func(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// OneOf accepts values equal to one of allowed. Numbers are compared by value,
// everything else with reflect.DeepEqual.
func OneOf(allowed ...any) propcheck.Predicate {
	return func(v any) bool {
		vf, vnum := toFloat(v)
		for _, a := range allowed {
			if af, anum := toFloat(a); anum && vnum {
				if af == vf {
					return true
				}
				continue
			}
			if reflect.DeepEqual(a, v) {
				return true
			}
		}
		return false
	}
}

// length returns the rune count of strings and the element count of slices,
// arrays and maps.
func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// HasLengthBetween is satisfied when lo < len(v) < hi.
func HasLengthBetween(lo, hi int) propcheck.Predicate {
	return func(v any) bool {
		n, ok := length(v)
		return ok && n > lo && n < hi
	}
}

// MinLength is satisfied when len(v) >= n.
func MinLength(n int) propcheck.Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l >= n
	}
}

// MaxLength is satisfied when len(v) <= n.
func MaxLength(n int) propcheck.Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l <= n
	}
}

// Minimum is satisfied by numbers >= lo.
func Minimum(lo float64) propcheck.Predicate {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && f >= lo
	}
}

// Maximum is satisfied by numbers <= hi.
func Maximum(hi float64) propcheck.Predicate {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && f <= hi
	}
}
