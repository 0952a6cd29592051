package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"videolow/internal/fileutil"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	ok, err := fileutil.Exists(filepath.Join(dir, "absent.mp4"))
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if ok {
		t.Fatal("absent file reported as existing")
	}

	path := filepath.Join(dir, "present.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	ok, err = fileutil.Exists(path)
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !ok {
		t.Fatal("present file reported as missing")
	}
}

func TestExistsRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	ok, err := fileutil.Exists(dir)
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if ok {
		t.Fatal("directory reported as regular file")
	}
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fileutil.EnsureDir(target); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}
	if err := fileutil.EnsureDir(target); err != nil {
		t.Fatalf("EnsureDir second call returned error: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err=%v", target, err)
	}
}
