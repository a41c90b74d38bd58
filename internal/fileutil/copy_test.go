package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with content, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "dst.json")
	writeFile(t, src, `{"id": "server"}`)

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != `{"id": "server"}` {
		t.Errorf("content = %q, want the source content", content)
	}
}

func TestCopyFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "nested", "deep", "dst.json")
	writeFile(t, src, "x")

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyFile(filepath.Join(dir, "absent.json"), filepath.Join(dir, "dst.json")); err == nil {
		t.Error("CopyFile succeeded with a missing source")
	}
}

func TestCopyFilePreservesMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.sh")
	dst := filepath.Join(dir, "dst.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestCopyFileDestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	writeFile(t, src, "x")
	dst := filepath.Join(dir, "taken")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	if err := CopyFile(src, dst); err == nil {
		t.Error("CopyFile succeeded onto a directory")
	}
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.json"), "a")
	writeFile(t, filepath.Join(src, "sub", "b.json"), "b")

	dst := filepath.Join(dir, "dst")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dst, "sub", "b.json"))
	if err != nil {
		t.Fatalf("nested file not copied: %v", err)
	}
	if string(content) != "b" {
		t.Errorf("content = %q, want %q", content, "b")
	}
}

func TestCopyDirOnFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "only.json")
	writeFile(t, src, "x")

	dst := filepath.Join(dir, "copy.json")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir on a file failed: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}
}

func TestCopyDirMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyDir(filepath.Join(dir, "absent"), filepath.Join(dir, "dst")); err == nil {
		t.Error("CopyDir succeeded with a missing source")
	}
}

func TestCopyDirBlockedDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.json"), "a")
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "in the way")

	if err := CopyDir(src, blocker); err == nil {
		t.Error("CopyDir succeeded over a file destination")
	}
}
