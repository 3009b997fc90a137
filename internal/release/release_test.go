package release

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorel/internal/config"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testManifest(t *testing.T, files ...config.VersionFile) *config.Manifest {
	t.Helper()
	m := &config.Manifest{Files: files, Dir: t.TempDir()}
	for i := range m.Files {
		if m.Files[i].Pattern == "" {
			m.Files[i].Pattern = config.DefaultVersionPattern
		}
	}
	m.TagPrefix = "v"
	m.CommitMessage = "release {version}"
	m.TagMessage = m.CommitMessage
	return m
}

func TestCurrentSingleFile(t *testing.T) {
	m := testManifest(t, config.VersionFile{Path: "meta.yaml"})
	writeFile(t, m.Dir, "meta.yaml", "name: demo\nversion: \"1.4.2\"\n")

	e := NewEngine(m)
	v, files, err := e.Current()
	if err != nil {
		t.Fatalf("Current(): %v", err)
	}
	if v != "1.4.2" {
		t.Fatalf("version = %q, want 1.4.2", v)
	}
	if len(files) != 1 || files[0].Version != "1.4.2" {
		t.Fatalf("files = %+v", files)
	}
}

func TestCurrentMismatch(t *testing.T) {
	m := testManifest(t,
		config.VersionFile{Path: "a.cfg"},
		config.VersionFile{Path: "b.cfg"},
		config.VersionFile{Path: "c.cfg"},
	)
	writeFile(t, m.Dir, "a.cfg", "version = 1.0.0\n")
	writeFile(t, m.Dir, "b.cfg", "version = 1.0.1\n")
	writeFile(t, m.Dir, "c.cfg", "version = 1.0.2\n")

	_, _, err := NewEngine(m).Current()
	if err == nil {
		t.Fatalf("expected mismatch error")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
	// every file and its version must be named, not just the first conflict
	for _, want := range []string{"a.cfg has 1.0.0", "b.cfg has 1.0.1", "c.cfg has 1.0.2"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestPlanBumpParts(t *testing.T) {
	cases := map[string]string{
		"patch": "1.2.4",
		"minor": "1.3.0",
		"major": "2.0.0",
	}
	for target, want := range cases {
		m := testManifest(t, config.VersionFile{Path: "meta.yaml"})
		writeFile(t, m.Dir, "meta.yaml", "version: 1.2.3\n")

		p, err := NewEngine(m).Plan(target, false)
		if err != nil {
			t.Fatalf("Plan(%q): %v", target, err)
		}
		if p.Next != want {
			t.Fatalf("Plan(%q).Next = %q, want %q", target, p.Next, want)
		}
		if p.Tag != "v"+want {
			t.Fatalf("Plan(%q).Tag = %q", target, p.Tag)
		}
		if p.CommitMessage != "release "+want {
			t.Fatalf("commit message = %q", p.CommitMessage)
		}
	}
}

func TestPlanExplicitVersion(t *testing.T) {
	m := testManifest(t, config.VersionFile{Path: "meta.yaml"})
	writeFile(t, m.Dir, "meta.yaml", "version: 1.2.3\n")
	e := NewEngine(m)

	p, err := e.Plan("2.0.0-rc.1", false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if p.Next != "2.0.0-rc.1" || p.Tag != "v2.0.0-rc.1" {
		t.Fatalf("plan = %+v", p)
	}

	// tag-prefixed input is accepted
	if p, err = e.Plan("v3.0.0", false); err != nil || p.Next != "3.0.0" {
		t.Fatalf("Plan(v3.0.0) = %+v, %v", p, err)
	}

	// downgrades need force
	if _, err := e.Plan("1.0.0", false); err == nil {
		t.Fatalf("expected error for downgrade without force")
	}
	if p, err = e.Plan("1.0.0", true); err != nil || p.Next != "1.0.0" {
		t.Fatalf("forced Plan(1.0.0) = %+v, %v", p, err)
	}
}

func TestPlanRejectsGarbage(t *testing.T) {
	m := testManifest(t, config.VersionFile{Path: "meta.yaml"})
	writeFile(t, m.Dir, "meta.yaml", "version: 1.2.3\n")
	if _, err := NewEngine(m).Plan("banana", false); err == nil {
		t.Fatalf("expected error for non-version target")
	}
}

func TestApplyRewritesOnlyTheVersion(t *testing.T) {
	m := testManifest(t, config.VersionFile{
		Path:    "setup.cfg",
		Pattern: `version = ([0-9]+\.[0-9]+\.[0-9]+)`,
	})
	before := "[metadata]\nname = demo\nversion = 0.9.0\nlicense = MIT\n"
	writeFile(t, m.Dir, "setup.cfg", before)

	e := NewEngine(m)
	p, err := e.Plan("minor", false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if err := e.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	after, err := os.ReadFile(filepath.Join(m.Dir, "setup.cfg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "[metadata]\nname = demo\nversion = 0.10.0\nlicense = MIT\n"
	if string(after) != want {
		t.Fatalf("file after apply:\n%s\nwant:\n%s", after, want)
	}
}

// After a bump every file must carry the exact version named by the tag.
func TestAppliedVersionMatchesTag(t *testing.T) {
	m := testManifest(t,
		config.VersionFile{Path: "meta.yaml"},
		config.VersionFile{Path: "cfg/app.toml", Pattern: `version = "([^"]+)"`},
	)
	m.TagPrefix = "release-"
	writeFile(t, m.Dir, "meta.yaml", "version: 2.1.0\n")
	writeFile(t, m.Dir, "cfg/app.toml", "version = \"2.1.0\"\n")

	e := NewEngine(m)
	p, err := e.Plan("major", false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if err := e.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	now, _, err := e.Current()
	if err != nil {
		t.Fatalf("Current after apply: %v", err)
	}
	if got := m.Tag(now); got != p.Tag {
		t.Fatalf("tag %q does not name the recorded version %q", p.Tag, now)
	}
	if p.Tag != "release-3.0.0" {
		t.Fatalf("tag = %q", p.Tag)
	}
}

func TestPlanRejectsBadTagName(t *testing.T) {
	m := testManifest(t, config.VersionFile{Path: "meta.yaml"})
	m.TagPrefix = "rel "
	writeFile(t, m.Dir, "meta.yaml", "version: 1.2.3\n")
	if _, err := NewEngine(m).Plan("patch", false); err == nil {
		t.Fatalf("expected error for tag prefix with whitespace")
	}
}

func TestParseBump(t *testing.T) {
	if b, err := ParseBump(" Minor "); err != nil || b != BumpMinor {
		t.Fatalf("ParseBump(Minor) = %v, %v", b, err)
	}
	if _, err := ParseBump("huge"); err == nil {
		t.Fatalf("expected error for unknown bump")
	}
}
