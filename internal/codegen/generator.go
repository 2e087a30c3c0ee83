package codegen

import (
	"fmt"

	"specforge/internal/config"
	"specforge/internal/steps"
	"specforge/internal/table"

	"go.uber.org/zap"
)

// GeneratedFile records one written test module. Created per render, written
// once, never mutated.
type GeneratedFile struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	TestCount int    `json:"test_count"`
	Framework string `json:"framework"`
}

// Result is the outcome of one generation run. Per-bucket failures land in
// Errors without aborting sibling buckets; callers must inspect Success and
// Errors rather than rely on a returned error. TotalTests counts the test
// cases that came in, not the subset that rendered.
type Result struct {
	Files      []GeneratedFile `json:"files_generated"`
	TotalTests int             `json:"total_tests"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors,omitempty"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// renderer is one target-framework backend.
type renderer interface {
	framework() string
	render(bucketName string, entries []entry) (string, error)
}

// Generator renders and writes test modules for one configuration. It holds
// no mutable state across calls.
type Generator struct {
	cfg    config.Generation
	logger *zap.Logger
}

// New returns a generator for cfg. A nil logger disables diagnostics.
func New(cfg config.Generation, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ApplyDefaults()
	return &Generator{cfg: cfg, logger: logger}
}

// Generate joins tbl's test cases with stepSets, renders one module per
// bucket per selected framework, and writes the files sequentially under the
// configured output directory.
func (g *Generator) Generate(tbl *table.DecisionTable, stepSets []steps.TestSteps) *Result {
	res := &Result{
		Files:      []GeneratedFile{},
		TotalTests: len(tbl.TestCases),
	}

	buckets, warnings := groupCases(tbl.TestCases, stepSets)
	res.Warnings = warnings
	for _, w := range warnings {
		g.logger.Warn("skipping test case during generation", zap.String("reason", w))
	}

	both := g.cfg.Framework == config.FrameworkBoth
	if both || g.cfg.Framework == config.FrameworkPlaywright {
		g.renderPass(res, buckets, steps.TypeWeb, playwrightRenderer{language: g.cfg.Language}, "")
	}
	if both || g.cfg.Framework == config.FrameworkAPI {
		// In both mode the API files get a distinct slug so one bucket's web
		// and API output cannot overwrite each other.
		suffix := ""
		if both {
			suffix = "-api"
		}
		g.renderPass(res, buckets, steps.TypeAPI, apiRenderer{language: g.cfg.Language}, suffix)
	}

	res.Success = len(res.Errors) == 0
	g.logger.Info("generation finished",
		zap.Int("files", len(res.Files)),
		zap.Int("total_tests", res.TotalTests),
		zap.Int("errors", len(res.Errors)),
		zap.Bool("success", res.Success))
	return res
}

// renderPass renders every bucket holding entries of stepType and writes the
// results, collecting per-bucket failures.
func (g *Generator) renderPass(res *Result, buckets []bucket, stepType steps.Type, r renderer, slugSuffix string) {
	for _, b := range buckets {
		entries := b.filterType(stepType)
		if len(entries) == 0 {
			continue
		}

		content, err := r.render(b.name, entries)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("bucket %s: %v", b.name, err))
			continue
		}

		name := Slug(b.name) + slugSuffix + ".spec." + g.cfg.Ext()
		path, err := writeFile(g.cfg.OutputPath, name, content)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("bucket %s: %v", b.name, err))
			continue
		}

		res.Files = append(res.Files, GeneratedFile{
			Path:      path,
			Content:   content,
			TestCount: len(entries),
			Framework: r.framework(),
		})
		g.logger.Debug("wrote test module",
			zap.String("path", path),
			zap.String("framework", r.framework()),
			zap.Int("tests", len(entries)))
	}
}
