// Package hashutil computes MD5 digests of files and directory trees.
package hashutil

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MD5File returns the hex MD5 digest of the file at path. The file is
// streamed in 4KiB chunks so large files do not load into memory.
func MD5File(path string) (string, error) {
	h := md5.New()
	if err := updateFromFile(path, h); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5Dir returns the hex MD5 digest of the directory tree at path. Entry
// names are mixed into the digest and entries are visited in
// case-insensitive path order, so the digest is stable across platforms and
// changes when a file is renamed, added, removed or modified.
func MD5Dir(path string) (string, error) {
	h := md5.New()
	if err := updateFromDir(path, h); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func updateFromFile(path string, h hash.Hash) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	buf := make([]byte, 4096)
	_, err = io.CopyBuffer(h, f, buf)
	return err
}

func updateFromDir(dir string, h hash.Hash) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	for _, e := range entries {
		h.Write([]byte(e.Name()))
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if err := updateFromDir(full, h); err != nil {
				return err
			}
		} else if e.Type().IsRegular() {
			if err := updateFromFile(full, h); err != nil {
				return err
			}
		}
	}
	return nil
}
