package emit

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bindweld/bindweld/internal/ast"
)

var update = flag.Bool("update", false, "update golden files")

func defaultEmitter() *Emitter {
	return &Emitter{
		UsePath:    "crate::gen::py_bindings::src_py",
		CallPrefix: "src_py",
		Marker:     "#[tauri::command]",
		ScopeOpen:  "pyo3::Python::with_gil(|py| {",
		ScopeClose: "})",
		ContextArg: "py",
	}
}

func TestRender_Golden(t *testing.T) {
	commands := []*ast.Command{
		{
			Name:    "greet",
			Params:  []ast.CommandParam{{Name: "name", Type: "&str"}},
			Success: "String",
		},
		{
			Name:    "sum",
			Params:  []ast.CommandParam{{Name: "a", Type: "i64"}, {Name: "b", Type: "i64"}},
			Success: "i64",
		},
	}

	got, err := defaultEmitter().Render(commands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	golden := filepath.Join("testdata", "commands.golden")
	if *update {
		if err := os.WriteFile(golden, got, 0o644); err != nil {
			t.Fatalf("updating golden file: %v", err)
		}
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRender_NoCommands(t *testing.T) {
	got, err := defaultEmitter().Render(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "use crate::gen::py_bindings::src_py;\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRender_Idempotent(t *testing.T) {
	commands := []*ast.Command{
		{Name: "f", Params: []ast.CommandParam{{Name: "x", Type: "i32"}}, Success: "i32"},
	}

	e := defaultEmitter()
	first, err := e.Render(commands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Render(commands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Error("rendering the same input twice produced different output")
	}
}

func TestRender_CustomConvention(t *testing.T) {
	e := &Emitter{
		UsePath:    "crate::bindings::host",
		CallPrefix: "host",
		Marker:     "#[dispatch::entry]",
		ScopeOpen:  "runtime::lock(|vm| {",
		ScopeClose: "})",
		ContextArg: "vm",
	}
	got, err := e.Render([]*ast.Command{
		{Name: "ping", Params: []ast.CommandParam{{Name: "n", Type: "u8"}}, Success: "u8"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, wantPart := range []string{
		"use crate::bindings::host;",
		"#[dispatch::entry]",
		"pub fn ping(n: u8) -> Result<u8, String> {",
		"runtime::lock(|vm| {",
		"host::ping(vm, n).map_err(|e| e.to_string())",
	} {
		if !strings.Contains(string(got), wantPart) {
			t.Errorf("output missing %q:\n%s", wantPart, got)
		}
	}
}
