package release

import (
	"database/sql"
	"fmt"
	"time"
)

// Record is one row of release history.
type Record struct {
	ID         int64
	Version    string
	Tag        string
	CommitHash string
	Notes      string
	CreatedAt  time.Time
}

// History provides read and append access to the releases table.
type History struct {
	db *sql.DB
}

// NewHistory creates a History using db.
func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

// Record appends one release and returns its ID.
func (h *History) Record(version, tag, commitHash, notes string) (int64, error) {
	res, err := h.db.Exec(
		`INSERT INTO releases (version, tag, commit_hash, notes, created_at) VALUES (?, ?, ?, ?, datetime('now'))`,
		version, tag, commitHash, notes)
	if err != nil {
		return 0, fmt.Errorf("insert release: %w", err)
	}
	return res.LastInsertId()
}

// List returns releases newest-first, at most limit rows. limit <= 0
// returns everything.
func (h *History) List(limit int) ([]Record, error) {
	q := `SELECT id, version, tag, commit_hash, notes, created_at FROM releases ORDER BY id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := h.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.Version, &r.Tag, &r.CommitHash, &r.Notes, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			r.CreatedAt = t.UTC()
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Latest returns the most recent release, or nil when the table is empty.
func (h *History) Latest() (*Record, error) {
	recs, err := h.List(1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}
