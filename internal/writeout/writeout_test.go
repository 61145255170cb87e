package writeout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite_NoFormatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")

	if err := Write(path, []byte("use a;\n"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "use a;\n" {
		t.Errorf("content = %q, want %q", got, "use a;\n")
	}
}

func TestWrite_ReplacesPreviousOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, []byte("new"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWrite_FormatterFailureKeepsOldOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.rs")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Write(path, []byte("new"), []string{"false"})
	if err == nil {
		t.Fatal("expected formatter failure")
	}

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("content = %q, want untouched %q", got, "old")
	}

	// The failed attempt must not leave temp files behind.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestWrite_MissingFormatterBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")
	if err := Write(path, []byte("x"), []string{"definitely-not-a-formatter-binary"}); err == nil {
		t.Fatal("expected an error for a missing formatter")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file should not exist after a failed write")
	}
}

func TestWrite_FormatterRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")

	// "true" accepts the file argument and succeeds without touching it.
	if err := Write(path, []byte("content"), []string{"true"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "content" {
		t.Errorf("content = %q, want %q", got, "content")
	}
}
