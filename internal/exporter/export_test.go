package exporter

import (
	"path/filepath"
	"testing"

	"gorel/internal/db"
	"gorel/internal/release"
)

func TestExportReleases(t *testing.T) {
	dir := t.TempDir()

	srcDB, err := db.OpenAt(filepath.Join(dir, "src.db"))
	if err != nil {
		t.Fatalf("open src: %v", err)
	}
	defer func() { _ = srcDB.Close() }()
	hist := release.NewHistory(srcDB)
	if _, err := hist.Record("1.0.0", "v1.0.0", "aaaa", "first"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := hist.Record("2.0.0", "v2.0.0", "bbbb", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dst := filepath.Join(dir, "out", "export.db")
	if err := ExportReleases(srcDB, dst); err != nil {
		t.Fatalf("ExportReleases: %v", err)
	}

	dstDB, err := db.OpenAt(dst)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer func() { _ = dstDB.Close() }()

	recs, err := release.NewHistory(dstDB).List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("exported rows = %d, want 2", len(recs))
	}
	if recs[0].Tag != "v2.0.0" || recs[1].Notes != "first" {
		t.Fatalf("exported rows wrong: %+v", recs)
	}
}

func TestExportDatabaseCopiesActiveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "gorel.db")
	t.Setenv("GOREL_DB", src)

	srcDB, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if _, err := release.NewHistory(srcDB).Record("1.0.0", "v1.0.0", "", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := srcDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	dst := filepath.Join(dir, "backup", "copy.db")
	if err := ExportDatabase(dst); err != nil {
		t.Fatalf("ExportDatabase: %v", err)
	}

	dstDB, err := db.OpenAt(dst)
	if err != nil {
		t.Fatalf("open copy: %v", err)
	}
	defer func() { _ = dstDB.Close() }()
	recs, err := release.NewHistory(dstDB).List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("copied rows = %d, want 1", len(recs))
	}
}
