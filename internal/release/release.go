// Package release implements the version bump workflow: reading the
// current version out of the manifest's files, computing the next one, and
// rewriting every file so they all agree with the tag that gets created.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"gorel/internal/config"
	"gorel/internal/nameutil"
)

// Bump selects which part of the version to increment.
type Bump int

const (
	BumpPatch Bump = iota
	BumpMinor
	BumpMajor
)

// ParseBump resolves a bump name ("major", "minor", "patch").
func ParseBump(s string) (Bump, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	}
	return 0, fmt.Errorf("unknown bump %q (want major, minor or patch)", s)
}

// FileVersion is the version found in one manifest file.
type FileVersion struct {
	File    config.VersionFile
	Version string
}

// Plan describes a bump before it is applied. Tag always equals the tag
// prefix plus the version written into every file.
type Plan struct {
	Current       string
	Next          string
	Tag           string
	Files         []FileVersion
	CommitMessage string
	TagMessage    string
}

// Engine reads and rewrites version files for one manifest.
type Engine struct {
	manifest *config.Manifest
}

// NewEngine returns an engine bound to m.
func NewEngine(m *config.Manifest) *Engine {
	return &Engine{manifest: m}
}

// Current returns the version shared by all manifest files. Files that
// disagree are an error: a half-finished release must be repaired by hand
// before the next bump.
func (e *Engine) Current() (string, []FileVersion, error) {
	found := make([]FileVersion, 0, len(e.manifest.Files))
	for _, f := range e.manifest.Files {
		v, err := e.readVersion(f)
		if err != nil {
			return "", nil, err
		}
		found = append(found, FileVersion{File: f, Version: v})
	}
	first := found[0].Version
	for _, fv := range found[1:] {
		if fv.Version != first {
			parts := make([]string, len(found))
			for i, f := range found {
				parts[i] = fmt.Sprintf("%s has %s", f.File.Path, f.Version)
			}
			return "", nil, fmt.Errorf("version mismatch: %s", strings.Join(parts, ", "))
		}
	}
	return first, found, nil
}

// Plan computes the bump described by target without touching any file.
// target is either a bump name (major, minor, patch) or an explicit
// version; an explicit version must be greater than the current one unless
// force is set.
func (e *Engine) Plan(target string, force bool) (*Plan, error) {
	current, files, err := e.Current()
	if err != nil {
		return nil, err
	}
	cur, err := semver.StrictNewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("current version %q: %w", current, err)
	}

	var next string
	if b, err := ParseBump(target); err == nil {
		var nv semver.Version
		switch b {
		case BumpMajor:
			nv = cur.IncMajor()
		case BumpMinor:
			nv = cur.IncMinor()
		default:
			nv = cur.IncPatch()
		}
		next = nv.String()
	} else {
		nv, err := semver.StrictNewVersion(strings.TrimPrefix(target, e.manifest.TagPrefix))
		if err != nil {
			return nil, fmt.Errorf("target version %q: %w", target, err)
		}
		if !force && !nv.GreaterThan(cur) {
			return nil, fmt.Errorf("target %s is not greater than current %s (use force to override)", nv, cur)
		}
		next = nv.String()
	}

	tag := e.manifest.Tag(next)
	if err := nameutil.ValidateTag(tag); err != nil {
		return nil, err
	}

	return &Plan{
		Current:       current,
		Next:          next,
		Tag:           tag,
		Files:         files,
		CommitMessage: e.manifest.RenderMessage(e.manifest.CommitMessage, next),
		TagMessage:    e.manifest.RenderMessage(e.manifest.TagMessage, next),
	}, nil
}

// Apply rewrites every manifest file so its version matches p.Next.
func (e *Engine) Apply(p *Plan) error {
	for _, fv := range p.Files {
		if err := e.writeVersion(fv.File, p.Next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) readVersion(f config.VersionFile) (string, error) {
	data, err := os.ReadFile(e.path(f))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}
	re := regexp.MustCompile(f.Pattern)
	m := re.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%s: no version matched by pattern %q", f.Path, f.Pattern)
	}
	return string(m[1]), nil
}

// writeVersion splices the new version over capture group 1 of the first
// match, leaving the rest of the file byte-for-byte untouched.
func (e *Engine) writeVersion(f config.VersionFile, version string) error {
	path := e.path(f)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}
	re := regexp.MustCompile(f.Pattern)
	loc := re.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: no version matched by pattern %q", f.Path, f.Pattern)
	}
	start, end := loc[2], loc[3]
	out := make([]byte, 0, len(data)+len(version)-(end-start))
	out = append(out, data[:start]...)
	out = append(out, version...)
	out = append(out, data[end:]...)
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

func (e *Engine) path(f config.VersionFile) string {
	if filepath.IsAbs(f.Path) {
		return f.Path
	}
	return filepath.Join(e.manifest.Dir, f.Path)
}
