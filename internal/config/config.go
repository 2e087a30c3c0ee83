// Package config holds the test code generation configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Framework selects which renderers run.
type Framework string

const (
	FrameworkPlaywright Framework = "playwright"
	FrameworkAPI        Framework = "api"
	FrameworkBoth       Framework = "both"
)

// Language selects the generated file dialect.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// Style names a code organization style. Non-standard styles are accepted
// but currently render identically to standard.
type Style string

const (
	StyleStandard   Style = "standard"
	StylePageObject Style = "page-object"
	StyleScreenplay Style = "screenplay"
)

// Generation configures one generation run.
type Generation struct {
	Framework  Framework `yaml:"framework"`
	OutputPath string    `yaml:"output_path"`
	Language   Language  `yaml:"language"`
	Style      Style     `yaml:"style"`
}

// Default returns the generation defaults: Playwright TypeScript in standard
// style, writing to ./generated-tests.
func Default() Generation {
	return Generation{
		Framework:  FrameworkPlaywright,
		OutputPath: "generated-tests",
		Language:   LanguageTypeScript,
		Style:      StyleStandard,
	}
}

// Load overlays a YAML config file on the defaults.
func Load(path string) (Generation, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

// ApplyDefaults fills zero-valued fields from Default.
func (g *Generation) ApplyDefaults() {
	d := Default()
	if g.Framework == "" {
		g.Framework = d.Framework
	}
	if g.OutputPath == "" {
		g.OutputPath = d.OutputPath
	}
	if g.Language == "" {
		g.Language = d.Language
	}
	if g.Style == "" {
		g.Style = d.Style
	}
}

// Validate checks the enum fields.
func (g Generation) Validate() error {
	switch g.Framework {
	case FrameworkPlaywright, FrameworkAPI, FrameworkBoth:
	default:
		return fmt.Errorf("unknown framework %q (expected playwright, api or both)", g.Framework)
	}
	switch g.Language {
	case LanguageTypeScript, LanguageJavaScript:
	default:
		return fmt.Errorf("unknown language %q (expected typescript or javascript)", g.Language)
	}
	switch g.Style {
	case StyleStandard, StylePageObject, StyleScreenplay:
	default:
		return fmt.Errorf("unknown style %q (expected standard, page-object or screenplay)", g.Style)
	}
	return nil
}

// Ext returns the generated file extension for the configured language.
func (g Generation) Ext() string {
	if g.Language == LanguageJavaScript {
		return "js"
	}
	return "ts"
}
