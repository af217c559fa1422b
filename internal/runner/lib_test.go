package runner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLibDirNear(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "piyathon")

	if _, ok := libDirNear(exe); ok {
		t.Fatal("no Lib directory yet")
	}
	// обычный файл с именем Lib не считается
	if err := os.WriteFile(filepath.Join(dir, bundledLibName), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := libDirNear(exe); ok {
		t.Fatal("a file named Lib must be ignored")
	}
	if err := os.Remove(filepath.Join(dir, bundledLibName)); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, bundledLibName), 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok := libDirNear(exe)
	if !ok || got != filepath.Join(dir, bundledLibName) {
		t.Fatalf("libDirNear = %q, %v", got, ok)
	}
}
