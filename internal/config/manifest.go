package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file gorel looks for at the repository root.
const ManifestName = ".gorel.yaml"

// DefaultVersionPattern matches a bare semantic version on a line like
// `version: "1.2.3"` or `version = 1.2.3`. Capture group 1 is the version.
const DefaultVersionPattern = `(?m)^\s*version\s*[:=]\s*"?([0-9]+\.[0-9]+\.[0-9]+(?:[-+][0-9A-Za-z.-]+)?)"?`

// VersionFile names one file holding the project version and the pattern
// used to locate it. Pattern must contain exactly one capture group, which
// spans the version string itself.
type VersionFile struct {
	Path    string `yaml:"path"`
	Pattern string `yaml:"pattern,omitempty"`
}

// Manifest is the parsed .gorel.yaml.
type Manifest struct {
	Files         []VersionFile `yaml:"files"`
	TagPrefix     string        `yaml:"tag_prefix,omitempty"`
	CommitMessage string        `yaml:"commit_message,omitempty"`
	TagMessage    string        `yaml:"tag_message,omitempty"`

	// Dir is the directory the manifest was loaded from. Not serialized.
	Dir string `yaml:"-"`
}

// LoadManifest reads dir/.gorel.yaml and fills in defaults: tag prefix
// "v", commit and tag messages "release {version}", and the default
// version pattern for files that name none.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	m.Dir = dir
	if err := m.normalize(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) normalize() error {
	if len(m.Files) == 0 {
		return fmt.Errorf("%s: no version files listed", ManifestName)
	}
	if m.TagPrefix == "" {
		m.TagPrefix = "v"
	}
	if m.CommitMessage == "" {
		m.CommitMessage = "release {version}"
	}
	if m.TagMessage == "" {
		m.TagMessage = m.CommitMessage
	}
	for i := range m.Files {
		f := &m.Files[i]
		if f.Path == "" {
			return fmt.Errorf("%s: files[%d]: missing path", ManifestName, i)
		}
		if f.Pattern == "" {
			f.Pattern = DefaultVersionPattern
		}
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return fmt.Errorf("%s: files[%d]: %w", ManifestName, i, err)
		}
		if re.NumSubexp() != 1 {
			return fmt.Errorf("%s: files[%d]: pattern must have exactly one capture group", ManifestName, i)
		}
	}
	return nil
}

// Tag returns the tag name for version, honoring the tag prefix.
func (m *Manifest) Tag(version string) string {
	return m.TagPrefix + version
}

// RenderMessage expands {version} and {tag} placeholders in msg.
func (m *Manifest) RenderMessage(msg, version string) string {
	msg = strings.ReplaceAll(msg, "{version}", version)
	return strings.ReplaceAll(msg, "{tag}", m.Tag(version))
}
