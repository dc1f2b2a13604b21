package pred_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/reoring/propcheck"
	"github.com/reoring/propcheck/pred"
)

func TestTypePredicates(t *testing.T) {
	cases := []struct {
		name string
		p    propcheck.Predicate
		v    any
		want bool
	}{
		{"string", pred.IsString, "a", true},
		{"string/int", pred.IsString, 1, false},
		{"string/undefined", pred.IsString, propcheck.Undefined, false},
		{"bool", pred.IsBool, true, true},
		{"bool/null", pred.IsBool, nil, false},
		{"null", pred.IsNull, nil, true},
		{"null/undefined", pred.IsNull, propcheck.Undefined, false},
		{"number/int", pred.IsNumber, 5, true},
		{"number/float", pred.IsNumber, 2.5, true},
		{"number/json", pred.IsNumber, json.Number("12"), true},
		{"number/string", pred.IsNumber, "12", false},
		{"integer", pred.IsInteger, 3.0, true},
		{"integer/frac", pred.IsInteger, 3.5, false},
		{"integer/large", pred.IsInteger, 1e20, true},
		{"integer/inf", pred.IsInteger, math.Inf(1), false},
		{"integer/nan", pred.IsInteger, math.NaN(), false},
		{"array/slice", pred.IsArray, []any{1}, true},
		{"array/array", pred.IsArray, [2]int{}, true},
		{"array/map", pred.IsArray, map[string]any{}, false},
		{"object", pred.IsObject, map[string]any{}, true},
		{"object/intkeys", pred.IsObject, map[int]any{}, false},
		{"date", pred.IsDate, time.Now(), true},
		{"date/zero", pred.IsDate, time.Time{}, false},
		{"datestring", pred.IsDateString, "2024-01-02T03:04:05Z", true},
		{"datestring/bad", pred.IsDateString, "yesterday", false},
		{"uuid", pred.IsUUID, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"uuid/bad", pred.IsUUID, "not-a-uuid", false},
		{"any", pred.Any, nil, true},
		{"any/undefined", pred.Any, propcheck.Undefined, false},
	}
	for _, tc := range cases {
		if got := tc.p(tc.v); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCombinators(t *testing.T) {
	short := pred.IsAll(pred.IsString, pred.HasLengthBetween(0, 4))
	if !short("abc") || short("abcd") || short(3) {
		t.Fatalf("IsAll/HasLengthBetween misbehaved")
	}
	strOrNull := pred.IsAny(pred.IsString, pred.IsNull)
	if !strOrNull(nil) || !strOrNull("x") || strOrNull(1) {
		t.Fatalf("IsAny misbehaved")
	}
	if pred.IsAny()(1) {
		t.Fatalf("empty IsAny must fail")
	}
	if !pred.IsAll()(1) {
		t.Fatalf("empty IsAll must pass")
	}
	notStr := pred.IsNot(pred.IsString)
	if notStr("x") || !notStr(1) {
		t.Fatalf("IsNot misbehaved")
	}
}

func TestLengthAndRange(t *testing.T) {
	if !pred.MinLength(2)("ab") || pred.MinLength(3)("ab") {
		t.Fatalf("MinLength misbehaved")
	}
	if !pred.MaxLength(2)([]any{1, 2}) || pred.MaxLength(1)([]any{1, 2}) {
		t.Fatalf("MaxLength misbehaved")
	}
	// runes, not bytes
	if !pred.MaxLength(2)("日本") {
		t.Fatalf("expected rune length")
	}
	if !pred.Minimum(1)(1) || pred.Minimum(1)(0.5) || pred.Minimum(1)("2") {
		t.Fatalf("Minimum misbehaved")
	}
	if !pred.Maximum(10)(json.Number("10")) || pred.Maximum(10)(11) {
		t.Fatalf("Maximum misbehaved")
	}
}

func TestOneOf(t *testing.T) {
	p := pred.OneOf("draft", "published", 3, nil)
	for _, v := range []any{"draft", "published", 3.0, json.Number("3"), nil} {
		if !p(v) {
			t.Errorf("expected %v to be allowed", v)
		}
	}
	for _, v := range []any{"archived", 4, []any{}, propcheck.Undefined} {
		if p(v) {
			t.Errorf("expected %v to be rejected", v)
		}
	}
}

type tagged struct{ X any }

func TestOneOf_UncomparableValues(t *testing.T) {
	p := pred.OneOf(tagged{X: []int{2}}, []any{"a"}, map[string]any{"k": 1})
	if p(tagged{X: []int{1}}) {
		t.Fatalf("expected different slice field to be rejected")
	}
	for _, v := range []any{tagged{X: []int{2}}, []any{"a"}, map[string]any{"k": 1}} {
		if !p(v) {
			t.Errorf("expected %v to be allowed", v)
		}
	}
}
