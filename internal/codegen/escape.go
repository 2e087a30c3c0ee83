package codegen

import "strings"

// escapeText prepares free text for embedding in generated single-quoted
// source strings. Scope is intentionally narrow: single quotes and newlines
// only. Broader escaping would change generated-file bytes that downstream
// tooling depends on, so it must not be widened silently.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
