package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSafeWriteFileCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "dashboard.html")
	if err := SafeWriteFile(path, []byte("<p>ok</p>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "<p>ok</p>" {
		t.Fatalf("unexpected content %q", b)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestSafeWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.json")
	if err := SafeWriteFile(path, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := SafeWriteFile(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "new" {
		t.Fatalf("expected replacement, got %q", b)
	}
}

func TestEnsureDirNoopForCurrentDir(t *testing.T) {
	if err := EnsureDir("."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := EnsureDir(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"count": 3})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n  \"count\": 3") {
		t.Fatalf("expected indented output, got %s", b)
	}
}
