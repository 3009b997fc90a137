package importer

import (
	"path/filepath"
	"testing"

	"gorel/internal/db"
	"gorel/internal/release"
)

func TestImportReleasesMergesAndDedupes(t *testing.T) {
	dir := t.TempDir()

	srcDB, err := db.OpenAt(filepath.Join(dir, "src.db"))
	if err != nil {
		t.Fatalf("open src: %v", err)
	}
	srcHist := release.NewHistory(srcDB)
	if _, err := srcHist.Record("1.0.0", "v1.0.0", "aaaa", ""); err != nil {
		t.Fatalf("seed src: %v", err)
	}
	if _, err := srcHist.Record("1.1.0", "v1.1.0", "bbbb", ""); err != nil {
		t.Fatalf("seed src: %v", err)
	}
	if err := srcDB.Close(); err != nil {
		t.Fatalf("close src: %v", err)
	}

	dstDB, err := db.OpenAt(filepath.Join(dir, "dst.db"))
	if err != nil {
		t.Fatalf("open dst: %v", err)
	}
	defer func() { _ = dstDB.Close() }()
	if _, err := release.NewHistory(dstDB).Record("1.0.0", "v1.0.0", "aaaa", ""); err != nil {
		t.Fatalf("seed dst: %v", err)
	}

	added, err := ImportReleases(dstDB, filepath.Join(dir, "src.db"))
	if err != nil {
		t.Fatalf("ImportReleases: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}

	recs, err := release.NewHistory(dstDB).List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("dst rows = %d, want 2", len(recs))
	}

	// importing again is a no-op
	added, err = ImportReleases(dstDB, filepath.Join(dir, "src.db"))
	if err != nil {
		t.Fatalf("second ImportReleases: %v", err)
	}
	if added != 0 {
		t.Fatalf("second import added = %d, want 0", added)
	}
}

func TestImportReleasesMissingSource(t *testing.T) {
	dstDB, err := db.OpenAt(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("open dst: %v", err)
	}
	defer func() { _ = dstDB.Close() }()

	if _, err := ImportReleases(dstDB, filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatalf("expected error for missing source")
	}
}
