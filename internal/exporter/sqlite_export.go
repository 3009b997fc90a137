// Package exporter writes release history out of the active database.
package exporter

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"gorel/internal/config"
	dbpkg "gorel/internal/db"
)

// ExportDatabase copies the active gorel database to dstPath.
func ExportDatabase(dstPath string) error {
	src, err := config.DBPath()
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source db: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create dst db: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return nil
}

// ExportReleases copies every release row from srcDB into a standalone
// SQLite database at dstPath, creating the schema there first.
func ExportReleases(srcDB *sql.DB, dstPath string) error {
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	dstDB, err := dbpkg.OpenAt(dstPath)
	if err != nil {
		return fmt.Errorf("open dst db: %w", err)
	}
	defer func() { _ = dstDB.Close() }()

	rows, err := srcDB.Query("SELECT version, tag, commit_hash, notes, created_at FROM releases ORDER BY id ASC")
	if err != nil {
		return fmt.Errorf("select releases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var version, tag, commit, notes, created string
		if err := rows.Scan(&version, &tag, &commit, &notes, &created); err != nil {
			return err
		}
		if _, err := dstDB.Exec(
			"INSERT INTO releases (version, tag, commit_hash, notes, created_at) VALUES (?, ?, ?, ?, ?)",
			version, tag, commit, notes, created); err != nil {
			return fmt.Errorf("insert release: %w", err)
		}
	}
	return rows.Err()
}
