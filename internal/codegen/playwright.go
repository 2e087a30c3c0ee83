package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"specforge/internal/config"
	"specforge/internal/steps"
)

// playwrightRenderer turns a bucket of web-typed entries into one Playwright
// UI test module.
type playwrightRenderer struct {
	language config.Language
}

func (r playwrightRenderer) framework() string { return string(config.FrameworkPlaywright) }

func (r playwrightRenderer) render(bucketName string, entries []entry) (string, error) {
	var body strings.Builder
	for i, e := range entries {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(fmt.Sprintf("  test('%s', async ({ page }) => {\n", testTitle(e.testCase.ID, e.testCase.Name)))
		for idx, step := range e.steps.Web {
			if step.Description != "" {
				body.WriteString("    // " + escapeText(step.Description) + "\n")
			}
			body.WriteString("    " + webStatement(step, e.testCase.ID, idx) + "\n")
		}
		body.WriteString("  });\n")
	}

	return renderFile(fileData{
		Imports: importLine(r.language),
		Suite:   escapeText(bucketName),
		Body:    body.String(),
	})
}

// webStatement maps one web step to one Playwright statement.
func webStatement(s steps.Web, testCaseID string, stepIndex int) string {
	switch s.Action {
	case steps.ActionNavigate:
		return fmt.Sprintf("await page.goto('%s');", escapeText(s.Target))
	case steps.ActionClick:
		return fmt.Sprintf("await page.click('%s');", escapeText(s.Selector))
	case steps.ActionFill:
		return fmt.Sprintf("await page.fill('%s', '%s');", escapeText(s.Selector), escapeText(s.Value))
	case steps.ActionSelect:
		return fmt.Sprintf("await page.selectOption('%s', '%s');", escapeText(s.Selector), escapeText(s.Value))
	case steps.ActionCheck:
		return fmt.Sprintf("await page.check('%s');", escapeText(s.Selector))
	case steps.ActionUncheck:
		return fmt.Sprintf("await page.uncheck('%s');", escapeText(s.Selector))
	case steps.ActionWait:
		switch {
		case s.Selector != "":
			return fmt.Sprintf("await page.waitForSelector('%s', { state: 'visible' });", escapeText(s.Selector))
		case s.Value != "":
			ms, err := strconv.Atoi(s.Value)
			if err != nil {
				return fmt.Sprintf("// TODO: invalid wait duration '%s'", escapeText(s.Value))
			}
			return fmt.Sprintf("await page.waitForTimeout(%d);", ms)
		default:
			return "await page.waitForLoadState('load');"
		}
	case steps.ActionAssert:
		if s.Value != "" {
			return fmt.Sprintf("await expect(page.locator('%s')).toContainText('%s');", escapeText(s.Selector), escapeText(s.Value))
		}
		return fmt.Sprintf("await expect(page.locator('%s')).toBeVisible();", escapeText(s.Selector))
	case steps.ActionScreenshot:
		return fmt.Sprintf("await page.screenshot({ path: '%s-step-%d.png' });", Slug(testCaseID), stepIndex+1)
	default:
		return fmt.Sprintf("// TODO: unsupported action '%s'", escapeText(string(s.Action)))
	}
}
