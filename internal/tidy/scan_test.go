package tidy

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = 'a'
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "notes.txt"), 5)
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeBytes(t, filepath.Join(dir, "sub", "inner.txt"), 7)

	entries, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	byName := make(map[string]Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	file, ok := byName["notes.txt"]
	if !ok {
		t.Fatal("notes.txt not scanned")
	}
	if file.IsDir {
		t.Error("notes.txt reported as directory")
	}
	if file.Size != 5 {
		t.Errorf("notes.txt size = %d, want 5", file.Size)
	}
	if file.ModTime.IsZero() {
		t.Error("notes.txt has zero mtime")
	}
	if file.Path != filepath.Join(dir, "notes.txt") {
		t.Errorf("notes.txt path = %q", file.Path)
	}

	sub, ok := byName["sub"]
	if !ok {
		t.Fatal("sub not scanned")
	}
	if !sub.IsDir {
		t.Error("sub not reported as directory")
	}
	if sub.Size != 7 {
		t.Errorf("sub size = %d, want 7 (recursive)", sub.Size)
	}
}

func TestScanNonRecursive(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeBytes(t, filepath.Join(dir, "sub", "inner.txt"), 1)

	entries, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 (immediate children only)", len(entries))
	}
}

func TestScanMissingDirIsFatal(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("Scan of missing directory should fail")
	}
}

func TestScanEmptyDir(t *testing.T) {
	entries, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
