package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	content := `
- test_case_id: TC001
  type: web
  steps:
    - action: navigate
      target: https://example.com/login
      description: Open the login page
    - action: fill
      selector: "#email"
      value: test@example.com
      description: Enter email
- test_case_id: PAY001
  type: api
  steps:
    - method: POST
      endpoint: /api/payments
      expected_status: 201
      save_response: payment
      description: Create payment
`
	path := writeTemp(t, "steps.yaml", content)

	sets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	web := sets[0]
	assert.Equal(t, "TC001", web.TestCaseID)
	assert.Equal(t, TypeWeb, web.Type)
	require.Len(t, web.Web, 2)
	assert.Equal(t, ActionNavigate, web.Web[0].Action)
	assert.Equal(t, "https://example.com/login", web.Web[0].Target)
	assert.Equal(t, DefaultTimeoutMs, web.Web[0].TimeoutMs())
	assert.True(t, web.Web[0].CaptureOnFailure())

	api := sets[1]
	assert.Equal(t, TypeAPI, api.Type)
	require.Len(t, api.API, 1)
	assert.Equal(t, "POST", api.API[0].Method)
	assert.Equal(t, 201, api.API[0].Status())
	assert.Equal(t, "payment", api.API[0].SaveResponse)
}

func TestLoadFileYAMLWrapped(t *testing.T) {
	content := `
test_steps:
  - test_case_id: TC002
    type: web
    steps:
      - action: click
        selector: "#submit"
        description: Submit the form
`
	path := writeTemp(t, "steps.yml", content)

	sets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "TC002", sets[0].TestCaseID)
	require.Len(t, sets[0].Web, 1)
	assert.Equal(t, ActionClick, sets[0].Web[0].Action)
}

func TestLoadFileJSON(t *testing.T) {
	content := `[
		{
			"test_case_id": "TC003",
			"type": "api",
			"steps": [
				{"method": "GET", "endpoint": "/api/health", "description": "Health check"}
			]
		}
	]`
	path := writeTemp(t, "steps.json", content)

	sets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0].API, 1)
	assert.Equal(t, DefaultExpectedStatus, sets[0].API[0].Status())
}

func TestLoadFileDefaultsOverride(t *testing.T) {
	content := `
- test_case_id: TC004
  type: web
  steps:
    - action: wait
      value: "1500"
      timeout: 5000
      screenshot_on_failure: false
      description: Pause
`
	path := writeTemp(t, "steps.yaml", content)

	sets, err := LoadFile(path)
	require.NoError(t, err)
	step := sets[0].Web[0]
	assert.Equal(t, 5000, step.TimeoutMs())
	assert.False(t, step.CaptureOnFailure())
}

func TestLoadFileUnknownType(t *testing.T) {
	content := `
- test_case_id: TC005
  type: mobile
  steps:
    - action: tap
`
	path := writeTemp(t, "steps.yaml", content)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile")
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "steps.toml", "x = 1")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".toml")
}
