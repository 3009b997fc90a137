package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateTag checks whether name is acceptable as a git ref name. It
// rejects the patterns git itself refuses: empty names, whitespace and
// control characters, "..", a leading dash or dot, and the ".lock" suffix.
// It does NOT mutate the input; use SanitizeTag first when desired.
func ValidateTag(name string) error {
	if name == "" {
		return fmt.Errorf("invalid tag: name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid tag: contains invalid encoding")
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid tag: cannot start with %q", name[:1])
	}
	if strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, "/") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("invalid tag: bad suffix in %q", name)
	}
	if strings.Contains(name, "..") || strings.Contains(name, "@{") || strings.Contains(name, "//") {
		return fmt.Errorf("invalid tag: %q contains a forbidden sequence", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("invalid tag: contains U+%04X (%q)", r, r)
		}
		switch r {
		case '~', '^', ':', '?', '*', '[', '\\':
			return fmt.Errorf("invalid tag: contains %q", r)
		}
	}
	return nil
}

// SanitizeTag removes characters that ValidateTag rejects where dropping
// them is safe: control characters, whitespace, and the zero-width runes
// commonly introduced by copy/paste. It returns the sanitized string and
// whether any change was made.
func SanitizeTag(name string) (string, bool) {
	if name == "" {
		return name, false
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			continue
		}
		out = append(out, r)
	}
	res := string(out)
	return res, res != name
}
