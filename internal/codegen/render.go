package codegen

import (
	"strings"
	"text/template"

	"specforge/internal/config"
)

// fileTemplate is the common skeleton of a generated test module: import
// preamble, optional file-level declarations, one named suite wrapper.
var fileTemplate = template.Must(template.New("spec").Parse(
	`{{.Imports}}

{{if .Preamble}}{{.Preamble}}

{{end}}test.describe('{{.Suite}}', () => {
{{.Body}}});
`))

type fileData struct {
	Imports  string
	Preamble string
	Suite    string
	Body     string
}

func renderFile(data fileData) (string, error) {
	var sb strings.Builder
	if err := fileTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// importLine returns the Playwright import for the configured dialect.
func importLine(lang config.Language) string {
	if lang == config.LanguageJavaScript {
		return `const { test, expect } = require('@playwright/test');`
	}
	return `import { test, expect } from '@playwright/test';`
}

// testTitle is the rendered test name: id-prefixed, quote-safe.
func testTitle(id, name string) string {
	return escapeText(id + ": " + name)
}
