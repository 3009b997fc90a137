// Package fileutil provides small filesystem helpers used across gorel.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads the whole file and returns its content as a string.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLines reads the file and returns its lines without trailing newlines.
// A trailing newline at the end of the file does not produce an empty line.
func ReadLines(path string) ([]string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// WriteFile writes content to path, creating or truncating the file.
func WriteFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteLines writes lines to path joined by newlines, with a trailing newline.
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return WriteFile(path, sb.String())
}

// AppendFile appends content to path, creating the file if needed.
func AppendFile(path string, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Mkdir creates a directory. When parents is true missing parent directories
// are created as well. An existing directory is not an error.
func Mkdir(path string, parents bool) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("mkdir %s: path exists and is not a directory", path)
	}
	if parents {
		return os.MkdirAll(path, 0o755)
	}
	return os.Mkdir(path, 0o755)
}

// MoveDir moves src to dst.
func MoveDir(src, dst string) error {
	return os.Rename(src, dst)
}

// DeleteDir removes a directory tree. A missing directory is not an error.
func DeleteDir(path string) error {
	return os.RemoveAll(path)
}

// DeleteFile removes a file. A missing file is not an error.
func DeleteFile(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// FindOptions narrows the results of FindFiles. All set fields must match.
type FindOptions struct {
	Prefix string
	Suffix string
	// Filter receives the containing directory and the file name.
	Filter func(dir, name string) bool
}

// FindFiles walks dir recursively and returns the paths of all regular files
// matching opts.
func FindFiles(dir string, opts FindOptions) ([]string, error) {
	var result []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if opts.Prefix != "" && !strings.HasPrefix(name, opts.Prefix) {
			return nil
		}
		if opts.Suffix != "" && !strings.HasSuffix(name, opts.Suffix) {
			return nil
		}
		if opts.Filter != nil && !opts.Filter(filepath.Dir(path), name) {
			return nil
		}
		result = append(result, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindBySuffix returns all files under dir whose name ends with suffix.
func FindBySuffix(dir, suffix string) ([]string, error) {
	return FindFiles(dir, FindOptions{Suffix: suffix})
}
