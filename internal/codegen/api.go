package codegen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"specforge/internal/config"
	"specforge/internal/steps"
)

// apiRenderer turns a bucket of api-typed entries into one Playwright
// request-context test module. Responses captured via save_response live in
// a file-level map; substitution of saved values happens when the generated
// test runs, not here.
type apiRenderer struct {
	language config.Language
}

func (r apiRenderer) framework() string { return string(config.FrameworkAPI) }

func (r apiRenderer) render(bucketName string, entries []entry) (string, error) {
	preamble := "const savedResponses = {};"
	if r.language == config.LanguageTypeScript {
		preamble = "const savedResponses: Record<string, any> = {};"
	}

	var body strings.Builder
	for i, e := range entries {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(fmt.Sprintf("  test('%s', async ({ request }) => {\n", testTitle(e.testCase.ID, e.testCase.Name)))
		for idx, step := range e.steps.API {
			writeAPIStatement(&body, step, idx+1)
		}
		body.WriteString("  });\n")
	}

	return renderFile(fileData{
		Imports:  importLine(r.language),
		Preamble: preamble,
		Suite:    escapeText(bucketName),
		Body:     body.String(),
	})
}

var apiMethods = map[string]string{
	"GET":    "get",
	"POST":   "post",
	"PUT":    "put",
	"PATCH":  "patch",
	"DELETE": "delete",
}

// writeAPIStatement renders one HTTP call: the request, the status
// assertion, then the optional body assertion and response capture.
func writeAPIStatement(body *strings.Builder, s steps.API, n int) {
	if s.Description != "" {
		body.WriteString("    // " + escapeText(s.Description) + "\n")
	}

	method, ok := apiMethods[strings.ToUpper(s.Method)]
	if !ok {
		fmt.Fprintf(body, "    // TODO: unsupported method '%s'\n", escapeText(s.Method))
		return
	}

	endpoint := s.Endpoint + queryString(s.Query)
	opts := requestOptions(s)
	if opts == "" {
		fmt.Fprintf(body, "    const response%d = await request.%s('%s');\n", n, method, escapeText(endpoint))
	} else {
		fmt.Fprintf(body, "    const response%d = await request.%s('%s', {\n%s    });\n", n, method, escapeText(endpoint), opts)
	}

	fmt.Fprintf(body, "    expect(response%d.status()).toBe(%d);\n", n, s.Status())

	if s.ExpectedBody != nil {
		fmt.Fprintf(body, "    expect(await response%d.json()).toMatchObject(%s);\n", n, jsLiteral(s.ExpectedBody))
	}
	if s.SaveResponse != "" {
		fmt.Fprintf(body, "    savedResponses['%s'] = await response%d.json();\n", escapeText(s.SaveResponse), n)
	}
}

// requestOptions renders the headers/data options block, one key per line,
// or empty when the step carries neither.
func requestOptions(s steps.API) string {
	var sb strings.Builder
	if len(s.Headers) > 0 {
		sb.WriteString("      headers: " + jsLiteral(s.Headers) + ",\n")
	}
	if s.Body != nil {
		sb.WriteString("      data: " + jsLiteral(s.Body) + ",\n")
	}
	return sb.String()
}

// queryString appends query parameters in sorted key order so generation
// stays deterministic.
func queryString(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + query[k]
	}
	return "?" + strings.Join(pairs, "&")
}

// jsLiteral renders a value as a JavaScript object literal. JSON is valid
// JS, and Go's encoder sorts map keys, so output is deterministic.
func jsLiteral(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
