package codegen

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases a name, collapses non-alphanumeric runs to one hyphen,
// and strips leading/trailing hyphens.
func Slug(name string) string {
	s := slugRuns.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// writeFile ensures dir exists and persists one generated module. A failure
// here is scoped to the bucket being written; callers collect it and keep
// going.
func writeFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
