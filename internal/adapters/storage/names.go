package storage

import (
	"path"
	"strings"
)

// sanitize keeps letters, digits, dots, dashes and underscores; anything else becomes "_".
func sanitize(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), ".")
	if s == "" {
		return "file"
	}
	return s
}

// cleanFolder sanitizes every segment of a slash-separated folder.
func cleanFolder(folder string) string {
	var parts []string
	for _, p := range strings.Split(folder, "/") {
		if p == "" || p == "." || p == ".." {
			continue
		}
		parts = append(parts, sanitize(p))
	}
	return strings.Join(parts, "/")
}
