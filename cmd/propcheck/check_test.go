package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const schemaDoc = `properties:
  title: {type: string, required: true}
  tags: {type: array}
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck_Valid(t *testing.T) {
	dir := t.TempDir()
	s := writeFile(t, dir, "schema.yaml", schemaDoc)
	d := writeFile(t, dir, "data.json", `{"title":"Hello","tags":["a"]}`)

	out, err := run(t, "check", "--schema", s, "--data", d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "valid" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCheck_InvalidText(t *testing.T) {
	dir := t.TempDir()
	s := writeFile(t, dir, "schema.yaml", schemaDoc)
	d := writeFile(t, dir, "data.yaml", "tags: nope\nextra: 1\n")

	out, err := run(t, "check", "-s", s, "-d", d)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 error lines, got %q", out)
	}
	for i, prefix := range []string{"VALUE\ttags", "REQUIRED\ttitle", "UNSUPPORTED\textra"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestCheck_JSONFailFast(t *testing.T) {
	dir := t.TempDir()
	s := writeFile(t, dir, "schema.yaml", schemaDoc)
	d := writeFile(t, dir, "data.json", `{"extra":1}`)

	out, err := run(t, "check", "-s", s, "-d", d, "--format", "json", "--fail-fast")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	if !strings.Contains(out, `"valid": false`) || !strings.Contains(out, `"errorCode": "REQUIRED"`) {
		t.Fatalf("unexpected json output %s", out)
	}
	if strings.Contains(out, "UNSUPPORTED") {
		t.Fatalf("fail-fast should report a single error, got %s", out)
	}
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	s := writeFile(t, dir, "schema.yaml", schemaDoc)
	d := writeFile(t, dir, "data.json", `{"title":"a","title":"b"}`)

	if _, err := run(t, "check", "-s", s, "-d", d, "--strict-keys"); err == nil || errors.Is(err, errInvalid) {
		t.Fatalf("expected load error for duplicate keys, got %v", err)
	}
	if _, err := run(t, "check", "-s", s, "-d", d, "--format", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := run(t, "check", "-s", filepath.Join(dir, "missing.yaml"), "-d", d); err == nil {
		t.Fatalf("expected error for missing schema")
	}
	if _, err := run(t, "check", "-d", d); err == nil {
		t.Fatalf("expected error for missing --schema flag")
	}
}

func TestCheck_Japanese(t *testing.T) {
	dir := t.TempDir()
	s := writeFile(t, dir, "schema.yaml", schemaDoc)
	d := writeFile(t, dir, "data.json", `{}`)

	out, _ := run(t, "check", "-s", s, "-d", d, "--lang", "ja")
	if strings.Contains(out, "Missing required parameter") {
		t.Fatalf("expected japanese message, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil || !strings.HasPrefix(out, "propcheck ") {
		t.Fatalf("unexpected version output %q, %v", out, err)
	}
}
