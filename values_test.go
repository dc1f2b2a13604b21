package propcheck_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/propcheck"
)

func TestValuesOf(t *testing.T) {
	type post struct {
		Title    string `json:"title"`
		Body     string `propcheck:"name=content"`
		Draft    bool   `json:"draft,omitempty"`
		Internal string `json:"-"`
		Author   string
		hidden   string
	}

	got, err := propcheck.ValuesOf(&post{Title: "t", Body: "b", Author: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := propcheck.Values{"title": "t", "content": "b", "Author": "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	m, err := propcheck.ValuesOf(map[string]int{"a": 1})
	if err != nil || m["a"] != 1 {
		t.Fatalf("typed map: %v %v", m, err)
	}

	for _, empty := range []any{nil, propcheck.Undefined, (*post)(nil)} {
		v, err := propcheck.ValuesOf(empty)
		if err != nil || len(v) != 0 {
			t.Fatalf("ValuesOf(%v) = %v, %v", empty, v, err)
		}
	}

	for _, bad := range []any{5, "s", []any{}, map[int]any{}} {
		if _, err := propcheck.ValuesOf(bad); !errors.Is(err, propcheck.ErrNotObject) {
			t.Fatalf("ValuesOf(%v): expected ErrNotObject, got %v", bad, err)
		}
	}
}

func TestValuesOf_MapIdentity(t *testing.T) {
	in := propcheck.Values{"a": 1}
	out, _ := propcheck.ValuesOf(in)
	if reflect.ValueOf(in).Pointer() != reflect.ValueOf(out).Pointer() {
		t.Fatalf("expected map[string]any to be used as-is")
	}
}
