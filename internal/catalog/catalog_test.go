package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}

	if cat.Name != "midnight-ritual" {
		t.Fatalf("expected name midnight-ritual, got %q", cat.Name)
	}
	if cat.Source != "builtin" {
		t.Fatalf("expected source builtin, got %q", cat.Source)
	}

	want := []int{1200, 1500, 1400, 1100, 1300}
	if len(cat.Steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(cat.Steps))
	}
	for i, ms := range want {
		if cat.Steps[i].DurationMs != ms {
			t.Errorf("step %d: expected %dms, got %dms", i, ms, cat.Steps[i].DurationMs)
		}
	}

	if got := cat.TotalDuration(); got != 6500*time.Millisecond {
		t.Fatalf("expected 6.5s total, got %s", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `name: custom
description: Custom ceremony
steps:
  - id: one
    title: "  First  "
    duration_ms: 100
  - id: two
    title: Second
    duration_ms: 250
    highlight: "very fast"
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Source != path {
		t.Fatalf("expected source %q, got %q", path, cat.Source)
	}
	if cat.Steps[0].Title != "First" {
		t.Fatalf("expected trimmed title, got %q", cat.Steps[0].Title)
	}
	if got := cat.Steps[1].Duration(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}
}

func TestParseCatalogValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing name", "steps:\n  - id: a\n    title: A\n    duration_ms: 100\n"},
		{"no steps", "name: empty\n"},
		{"missing id", "name: bad\nsteps:\n  - title: A\n    duration_ms: 100\n"},
		{"duplicate id", "name: bad\nsteps:\n  - id: a\n    title: A\n    duration_ms: 100\n  - id: a\n    title: B\n    duration_ms: 100\n"},
		{"missing title", "name: bad\nsteps:\n  - id: a\n    duration_ms: 100\n"},
		{"zero duration", "name: bad\nsteps:\n  - id: a\n    title: A\n    duration_ms: 0\n"},
		{"negative duration", "name: bad\nsteps:\n  - id: a\n    title: A\n    duration_ms: -5\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tc.yaml)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestScaled(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}

	fast := cat.Scaled(10)
	if fast.Steps[0].DurationMs != 120 {
		t.Fatalf("expected 120ms, got %dms", fast.Steps[0].DurationMs)
	}
	// Original must be untouched.
	if cat.Steps[0].DurationMs != 1200 {
		t.Fatalf("original catalog was mutated: %dms", cat.Steps[0].DurationMs)
	}

	// Durations never drop below 1ms.
	crawl := cat.Scaled(1e9)
	for i, step := range crawl.Steps {
		if step.DurationMs < 1 {
			t.Fatalf("step %d scaled below 1ms", i)
		}
	}
}

func TestDemoScript(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}

	script := DemoScript()
	if len(script) != len(cat.Steps)+1 {
		t.Fatalf("expected %d beats, got %d", len(cat.Steps)+1, len(script))
	}
	for i, beat := range script {
		if beat.Caption == "" {
			t.Errorf("beat %d has no caption", i)
		}
	}

	// Callers get their own copy.
	script[0].Caption = "mutated"
	if DemoScript()[0].Caption == "mutated" {
		t.Fatal("DemoScript shares state across calls")
	}
}
