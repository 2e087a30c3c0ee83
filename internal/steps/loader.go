package steps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step files carry a list of TestSteps. Each entry may spell its sequence as
// a generic "steps" key (decoded by the declared type) or as explicit
// web_steps/api_steps keys; both forms are accepted.

type yamlAlias struct {
	TestCaseID string    `yaml:"test_case_id"`
	Type       Type      `yaml:"type"`
	Steps      yaml.Node `yaml:"steps"`
	Web        []Web     `yaml:"web_steps"`
	API        []API     `yaml:"api_steps"`
}

// UnmarshalYAML decodes one TestSteps entry, resolving the generic "steps"
// key against the declared type.
func (ts *TestSteps) UnmarshalYAML(node *yaml.Node) error {
	var aux yamlAlias
	if err := node.Decode(&aux); err != nil {
		return err
	}
	ts.TestCaseID = aux.TestCaseID
	ts.Type = aux.Type
	ts.Web = aux.Web
	ts.API = aux.API
	if aux.Steps.Kind == 0 {
		return nil
	}
	switch aux.Type {
	case TypeWeb:
		return aux.Steps.Decode(&ts.Web)
	case TypeAPI:
		return aux.Steps.Decode(&ts.API)
	default:
		return fmt.Errorf("test steps for %q: unknown type %q", aux.TestCaseID, aux.Type)
	}
}

type jsonAlias struct {
	TestCaseID string          `json:"test_case_id"`
	Type       Type            `json:"type"`
	Steps      json.RawMessage `json:"steps"`
	Web        []Web           `json:"web_steps"`
	API        []API           `json:"api_steps"`
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON step files.
func (ts *TestSteps) UnmarshalJSON(data []byte) error {
	var aux jsonAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ts.TestCaseID = aux.TestCaseID
	ts.Type = aux.Type
	ts.Web = aux.Web
	ts.API = aux.API
	if len(aux.Steps) == 0 {
		return nil
	}
	switch aux.Type {
	case TypeWeb:
		return json.Unmarshal(aux.Steps, &ts.Web)
	case TypeAPI:
		return json.Unmarshal(aux.Steps, &ts.API)
	default:
		return fmt.Errorf("test steps for %q: unknown type %q", aux.TestCaseID, aux.Type)
	}
}

// LoadFile reads a YAML or JSON step file from disk. The document is either
// a bare list of TestSteps or an object with a "test_steps" list.
func LoadFile(path string) ([]TestSteps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading steps file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return loadYAML(data, path)
	case ".json":
		return loadJSON(data, path)
	default:
		return nil, fmt.Errorf("unsupported steps file extension %q for %s (expected .yaml, .yml or .json)", ext, path)
	}
}

func loadYAML(data []byte, path string) ([]TestSteps, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing steps file %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	body := root.Content[0]
	if body.Kind == yaml.SequenceNode {
		var list []TestSteps
		if err := body.Decode(&list); err != nil {
			return nil, fmt.Errorf("parsing steps file %s: %w", path, err)
		}
		return list, nil
	}
	var doc struct {
		TestSteps []TestSteps `yaml:"test_steps"`
	}
	if err := body.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing steps file %s: %w", path, err)
	}
	return doc.TestSteps, nil
}

func loadJSON(data []byte, path string) ([]TestSteps, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []TestSteps
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing steps file %s: %w", path, err)
		}
		return list, nil
	}
	var doc struct {
		TestSteps []TestSteps `json:"test_steps"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing steps file %s: %w", path, err)
	}
	return doc.TestSteps, nil
}
