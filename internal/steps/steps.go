// Package steps models the executable step sequences supplied alongside a
// decision table. Steps are consumed read-only by the code generator; live
// execution belongs to the external engines that run the generated tests.
package steps

// Type discriminates which backend a step sequence targets.
type Type string

const (
	TypeWeb Type = "web"
	TypeAPI Type = "api"
)

// WebAction enumerates the recognized browser interactions. Unrecognized
// actions are not an error; the renderer emits a placeholder for them.
type WebAction string

const (
	ActionNavigate   WebAction = "navigate"
	ActionClick      WebAction = "click"
	ActionFill       WebAction = "fill"
	ActionSelect     WebAction = "select"
	ActionCheck      WebAction = "check"
	ActionUncheck    WebAction = "uncheck"
	ActionWait       WebAction = "wait"
	ActionAssert     WebAction = "assert"
	ActionScreenshot WebAction = "screenshot"
)

// DefaultTimeoutMs is the per-step timeout applied when a web step names none.
const DefaultTimeoutMs = 30000

// DefaultExpectedStatus is the response status an API step asserts when it
// names none.
const DefaultExpectedStatus = 200

// Web is one browser interaction step.
type Web struct {
	Action              WebAction `json:"action" yaml:"action"`
	Selector            string    `json:"selector,omitempty" yaml:"selector,omitempty"`
	Target              string    `json:"target,omitempty" yaml:"target,omitempty"`
	Value               string    `json:"value,omitempty" yaml:"value,omitempty"`
	Description         string    `json:"description" yaml:"description"`
	Timeout             int       `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ScreenshotOnFailure *bool     `json:"screenshot_on_failure,omitempty" yaml:"screenshot_on_failure,omitempty"`
}

// TimeoutMs returns the step timeout with the default applied.
func (w Web) TimeoutMs() int {
	if w.Timeout > 0 {
		return w.Timeout
	}
	return DefaultTimeoutMs
}

// CaptureOnFailure reports whether a failure screenshot is wanted; the
// default is true.
func (w Web) CaptureOnFailure() bool {
	if w.ScreenshotOnFailure == nil {
		return true
	}
	return *w.ScreenshotOnFailure
}

// API is one HTTP call step.
type API struct {
	Method         string            `json:"method" yaml:"method"`
	Endpoint       string            `json:"endpoint" yaml:"endpoint"`
	Headers        map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body           interface{}       `json:"body,omitempty" yaml:"body,omitempty"`
	Query          map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	ExpectedStatus int               `json:"expected_status,omitempty" yaml:"expected_status,omitempty"`
	ExpectedBody   interface{}       `json:"expected_body,omitempty" yaml:"expected_body,omitempty"`
	Description    string            `json:"description" yaml:"description"`
	SaveResponse   string            `json:"save_response,omitempty" yaml:"save_response,omitempty"`
}

// Status returns the expected response status with the default applied.
func (a API) Status() int {
	if a.ExpectedStatus > 0 {
		return a.ExpectedStatus
	}
	return DefaultExpectedStatus
}

// TestSteps binds a homogeneous step sequence to a test case by exact id
// match. Exactly one of Web/API is populated, matching Type.
type TestSteps struct {
	TestCaseID string `json:"test_case_id" yaml:"test_case_id"`
	Type       Type   `json:"type" yaml:"type"`
	Web        []Web  `json:"web_steps,omitempty" yaml:"web_steps,omitempty"`
	API        []API  `json:"api_steps,omitempty" yaml:"api_steps,omitempty"`
}
