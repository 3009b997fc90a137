package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := WriteFile(path, "hello\nworld\n"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "hello\nworld\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	if err := WriteLines(path, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 3 || lines[0] != "a" || lines[2] != "c" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestAppendFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")
	if err := AppendFile(path, "one\n"); err != nil {
		t.Fatalf("AppendFile: %v", err)
	}
	if err := AppendFile(path, "two\n"); err != nil {
		t.Fatalf("AppendFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "one\ntwo\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestMkdirParents(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := Mkdir(nested, true); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	// idempotent
	if err := Mkdir(nested, true); err != nil {
		t.Fatalf("Mkdir twice: %v", err)
	}
	info, err := os.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", nested)
	}
}

func TestMkdirNoParents(t *testing.T) {
	dir := t.TempDir()
	if err := Mkdir(filepath.Join(dir, "x", "y"), false); err == nil {
		t.Fatalf("expected error without parent creation")
	}
}

func TestDeleteFileMissing(t *testing.T) {
	if err := DeleteFile(filepath.Join(t.TempDir(), "nope.txt")); err != nil {
		t.Fatalf("DeleteFile on missing file: %v", err)
	}
}

func TestDeleteDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := Mkdir(sub, true); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := WriteFile(filepath.Join(sub, "f.txt"), "x"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := DeleteDir(sub); err != nil {
		t.Fatalf("DeleteDir: %v", err)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Fatalf("expected directory to be gone")
	}
	// missing dir is not an error
	if err := DeleteDir(sub); err != nil {
		t.Fatalf("DeleteDir on missing dir: %v", err)
	}
}

func TestMoveDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := Mkdir(src, true); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := WriteFile(filepath.Join(src, "f.txt"), "x"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := MoveDir(src, dst); err != nil {
		t.Fatalf("MoveDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "f.txt")); err != nil {
		t.Fatalf("expected moved file: %v", err)
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel, content string) {
		path := filepath.Join(dir, rel)
		if err := Mkdir(filepath.Dir(path), true); err != nil {
			t.Fatalf("Mkdir: %v", err)
		}
		if err := WriteFile(path, content); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	mustWrite("a/one.go", "package a")
	mustWrite("a/two.txt", "two")
	mustWrite("b/three.go", "package b")
	mustWrite("b/pre_four.go", "package b")

	got, err := FindBySuffix(dir, ".go")
	if err != nil {
		t.Fatalf("FindBySuffix: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 .go files, got %d: %v", len(got), got)
	}

	got, err = FindFiles(dir, FindOptions{Prefix: "pre_", Suffix: ".go"})
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(got) != 1 || !strings.HasSuffix(got[0], "pre_four.go") {
		t.Fatalf("unexpected result: %v", got)
	}

	got, err = FindFiles(dir, FindOptions{Filter: func(d, name string) bool {
		return filepath.Base(d) == "b"
	}})
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files in b, got %v", got)
	}
}
