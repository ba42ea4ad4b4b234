package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/fractals"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.kage")

	tests := []struct {
		name string
		args []string
		want int
		out  string
	}{
		{"no args", nil, fractals.ExitUsage, fractals.Usage},
		{"two args", []string{"a.kage", "800"}, fractals.ExitUsage, "expected 1 or 3 arguments, got 2"},
		{"four args", []string{"a.kage", "800", "600", "x"}, fractals.ExitUsage, "got 4"},
		{"bad width", []string{"a.kage", "wide", "600"}, fractals.ExitUsage, "invalid surface size 0x600"},
		{"bad flag", []string{"-nope", "a.kage"}, fractals.ExitUsage, fractals.Usage},
		{"missing program", []string{missing}, fractals.ExitProgramIO, "Could not load"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if got := run(tt.args, &out); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
			if !strings.Contains(out.String(), tt.out) {
				t.Errorf("output %q does not contain %q", out.String(), tt.out)
			}
		})
	}
}

func TestRunMissingProgramOmitsDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.kage")
	var out bytes.Buffer
	run([]string{path}, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1: %q", len(lines), out.String())
	}
}

func TestRunUsageIsOneLine(t *testing.T) {
	var out bytes.Buffer
	run([]string{"a.kage", "800"}, &out)

	want := fractals.Usage + " (expected 1 or 3 arguments, got 2)\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunCompileFailurePrintsDiagnostic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.kage")
	src := "//kage:unit pixels\n\npackage main\n\nfunc Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {\n\treturn undefinedColor\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if got := run([]string{path}, &out); got != fractals.ExitCompile {
		t.Fatalf("run = %d, want %d (output %q)", got, fractals.ExitCompile, out.String())
	}

	_, err := fractals.LoadProgram(path)
	var progErr *fractals.ProgramError
	if !errors.As(err, &progErr) {
		t.Fatalf("LoadProgram err = %v, want *ProgramError", err)
	}
	want := progErr.Error() + "\n" + progErr.Detail() + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), "undefinedColor") {
		t.Errorf("compiler text missing from output %q", out.String())
	}
}
