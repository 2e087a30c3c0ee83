package table

import (
	"path/filepath"
	"strings"
)

// DeriveFeatureName builds a feature name from a file path when the source
// document supplies none: extension stripped, a trailing "-decision-table"
// stripped, separators spaced, words capitalized.
func DeriveFeatureName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, "-decision-table")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
