package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHashCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var err error
	out := captureOutput(func() {
		err = hashCmd.RunE(hashCmd, []string{path})
	})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.Contains(out, "5eb63bbbe01eeed093cb22bb8f5acdc3  "+path) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHashCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var err error
	out := captureOutput(func() {
		err = hashCmd.RunE(hashCmd, []string{dir})
	})
	if err != nil {
		t.Fatalf("hash dir: %v", err)
	}
	if !strings.Contains(out, dir) || len(strings.Fields(out)) != 2 {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHashCommandMissingPath(t *testing.T) {
	if err := hashCmd.RunE(hashCmd, []string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
