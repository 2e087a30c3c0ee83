package table

import (
	"encoding/json"
	"sort"
)

// jsonRule is the per-row shape of the {feature, rules} document variant.
type jsonRule struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Conditions  map[string]Value `json:"conditions"`
	Actions     []string         `json:"actions"`
	Expected    []string         `json:"expected"`
	Priority    Priority         `json:"priority"`
	Tags        []string         `json:"tags"`
}

// parseJSON accepts two document shapes: a canonical {feature, test_cases}
// document passed through with defaults filled, or a {feature, rules}
// document whose rules run through the shared id/name synthesis rules.
// Anything else fails with InvalidFormatError.
func parseJSON(content []byte, source string) (*DecisionTable, error) {
	var doc struct {
		Feature     string     `json:"feature"`
		Description string     `json:"description"`
		TestCases   []TestCase `json:"test_cases"`
		Rules       []jsonRule `json:"rules"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &InvalidFormatError{Path: source, Reason: err.Error()}
	}

	feature := doc.Feature
	if feature == "" {
		feature = DeriveFeatureName(source)
	}

	var cases []TestCase
	switch {
	case doc.TestCases != nil:
		// Canonical shape: taken as-is, only defaults filled in.
		cases = make([]TestCase, len(doc.TestCases))
		for i, tc := range doc.TestCases {
			cases[i] = fillDefaults(tc, i+1)
		}
	case doc.Rules != nil:
		cases = make([]TestCase, len(doc.Rules))
		for i, rule := range doc.Rules {
			cases[i] = ruleToTestCase(rule, i+1)
		}
	default:
		return nil, &InvalidFormatError{
			Path:   source,
			Reason: "expected either a {feature, test_cases} or a {feature, rules} document",
		}
	}

	return &DecisionTable{
		Feature:     feature,
		Description: doc.Description,
		TestCases:   cases,
		Metadata: Metadata{
			Source:   source,
			Format:   FormatJSON,
			RowCount: len(cases),
		},
	}, nil
}

func fillDefaults(tc TestCase, autoIndex int) TestCase {
	if tc.ID == "" {
		tc.ID = AutoID(autoIndex)
	}
	if tc.Priority == "" {
		tc.Priority = PriorityMedium
	}
	if tc.Conditions == nil {
		tc.Conditions = map[string]Value{}
	}
	if tc.Actions == nil {
		tc.Actions = []string{}
	}
	if tc.ExpectedResults == nil {
		tc.ExpectedResults = []string{}
	}
	if tc.Tags == nil {
		tc.Tags = []string{}
	}
	return tc
}

func ruleToTestCase(rule jsonRule, autoIndex int) TestCase {
	tc := TestCase{
		ID:              rule.ID,
		Name:            rule.Name,
		Description:     rule.Description,
		Conditions:      rule.Conditions,
		Actions:         rule.Actions,
		ExpectedResults: rule.Expected,
		Priority:        rule.Priority,
		Tags:            rule.Tags,
	}
	tc = fillDefaults(tc, autoIndex)
	if tc.Name == "" {
		// Go maps are unordered; sorted keys keep synthesized names stable.
		keys := make([]string, 0, len(tc.Conditions))
		for k := range tc.Conditions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make([]conditionEntry, len(keys))
		for i, k := range keys {
			ordered[i] = conditionEntry{key: k, value: tc.Conditions[k]}
		}
		tc.Name = synthesizeName(ordered, tc.ExpectedResults)
	}
	return tc
}
