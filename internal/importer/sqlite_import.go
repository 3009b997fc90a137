// Package importer merges release history from another gorel database.
package importer

import (
	"database/sql"
	"fmt"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"
)

// ImportReleases copies release rows from srcPath into dstDB. Rows whose
// tag already exists in the destination are skipped, so importing the same
// file twice is harmless. Returns how many rows were added.
func ImportReleases(dstDB *sql.DB, srcPath string) (int, error) {
	src, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return 0, fmt.Errorf("open src: %w", err)
	}
	defer func() { _ = src.Close() }()

	rows, err := src.Query("SELECT version, tag, commit_hash, notes, created_at FROM releases ORDER BY id ASC")
	if err != nil {
		return 0, fmt.Errorf("select releases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	added := 0
	for rows.Next() {
		var version, tag, commit, notes, created string
		if err := rows.Scan(&version, &tag, &commit, &notes, &created); err != nil {
			return added, err
		}
		var cnt int
		if err := dstDB.QueryRow("SELECT count(*) FROM releases WHERE tag = ?", tag).Scan(&cnt); err != nil {
			return added, err
		}
		if cnt > 0 {
			continue
		}
		if _, err := dstDB.Exec(
			"INSERT INTO releases (version, tag, commit_hash, notes, created_at) VALUES (?, ?, ?, ?, ?)",
			version, tag, commit, notes, created); err != nil {
			return added, fmt.Errorf("insert release: %w", err)
		}
		added++
	}
	return added, rows.Err()
}
