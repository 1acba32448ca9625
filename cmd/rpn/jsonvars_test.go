package main

import (
	"os"
	"path/filepath"
	"testing"

	"rpn"
)

const jsonDoc = `{
  "width": 4,
  "ok": true,
  "box": {"h": 2.5, "inner": {"d": 1}},
  "list": [{"x": 1}, {"x": 2, "y": 3}]
}`

func TestLoadJSONVariablesFlatten(t *testing.T) {
	c := rpn.New()
	n, err := loadJSONVariables(c, []byte(`{"width": 4, "ok": true, "box": {"h": 2.5, "inner": {"d": 1}}}`), "")
	if err != nil {
		t.Fatalf("loadJSONVariables: %v", err)
	}
	if n != 4 {
		t.Fatalf("set %d variables, want 4", n)
	}
	want := map[string]rpn.Value{"width": 4, "ok": 1, "box.h": 2.5, "box.inner.d": 1}
	for name, v := range want {
		if got, ok := c.Variable(name); !ok || got != v {
			t.Fatalf("%s = %v (%v), want %v", name, got, ok, v)
		}
	}
	if err := c.Evaluate("$width $box.h *", true); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if top, _ := c.Stack().Peek(0); top != 10 {
		t.Fatalf("top = %v, want 10", top)
	}
}

func TestLoadJSONVariablesQuery(t *testing.T) {
	c := rpn.New()
	n, err := loadJSONVariables(c, []byte(jsonDoc), ".list[]")
	if err != nil {
		t.Fatalf("loadJSONVariables: %v", err)
	}
	if n != 2 {
		t.Fatalf("set %d variables, want 2", n)
	}
	if x, _ := c.Variable("x"); x != 2 {
		t.Fatalf("later object should win, x = %v", x)
	}
}

func TestLoadJSONVariablesErrors(t *testing.T) {
	cases := []struct {
		doc, query string
	}{
		{`{"a": 1}`, ".["},
		{`{"a": `, ""},
		{`{"a": "text"}`, ""},
		{`{"a": [1, 2]}`, ""},
		{`[1, 2]`, ".[]"},
		{`{"a": 1}`, `error("boom")`},
	}
	for _, tc := range cases {
		c := rpn.New()
		if _, err := loadJSONVariables(c, []byte(tc.doc), tc.query); err == nil {
			t.Fatalf("doc %q query %q: expected an error", tc.doc, tc.query)
		}
		if c.VariableCount() != 0 {
			t.Fatalf("doc %q query %q: variables set despite error", tc.doc, tc.query)
		}
	}
}

func TestLoadJSONVariablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	c := rpn.New()
	if _, err := loadJSONVariablesFile(c, path, ".box"); err != nil {
		t.Fatalf("loadJSONVariablesFile: %v", err)
	}
	if d, ok := c.Variable("inner.d"); !ok || d != 1 {
		t.Fatalf("inner.d = %v, %v", d, ok)
	}
	if _, err := loadJSONVariablesFile(c, path+".missing", ""); err == nil {
		t.Fatalf("missing file should fail")
	}
}
