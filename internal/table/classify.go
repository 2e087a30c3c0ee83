package table

import (
	"strconv"
	"strings"
)

// Structural column headers recognized case-insensitively after trimming.
// Every other header becomes a condition entry.
var structuralHeaders = map[string]string{
	"id":              "id",
	"test id":         "id",
	"test_id":         "id",
	"name":            "name",
	"test name":       "name",
	"test_name":       "name",
	"description":     "description",
	"action":          "actions",
	"actions":         "actions",
	"expected result": "expected",
	"expected_result": "expected",
	"expected":        "expected",
	"priority":        "priority",
	"tags":            "tags",
}

// conditionEntry keeps the column encounter order that name synthesis needs;
// the canonical model itself stores conditions as an unordered map.
type conditionEntry struct {
	key   string
	value Value
}

// CoerceValue applies the condition scalar coercion rules: the literal
// tokens true/false/null/undefined, then a full numeric parse, else string.
func CoerceValue(raw string) Value {
	s := strings.TrimSpace(raw)
	switch s {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	case "null":
		return NullValue()
	case "undefined":
		return UndefinedValue()
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(n)
	}
	return StringValue(s)
}

// splitMulti comma-splits a multi-value cell, trimming fragments and
// dropping empty ones. Always returns a non-nil slice.
func splitMulti(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// rowToTestCase classifies one raw row against its headers and assembles a
// canonical test case. autoIndex is the 1-based fallback used when the row
// carries no id.
func rowToTestCase(headers []string, cells []string, autoIndex int) TestCase {
	tc := TestCase{
		Conditions:      map[string]Value{},
		Actions:         []string{},
		ExpectedResults: []string{},
		Priority:        PriorityMedium,
		Tags:            []string{},
	}

	var ordered []conditionEntry
	for i, header := range headers {
		cell := ""
		if i < len(cells) {
			cell = strings.TrimSpace(cells[i])
		}
		key := strings.ToLower(strings.TrimSpace(header))
		field, structural := structuralHeaders[key]
		if !structural {
			if key == "" {
				continue
			}
			v := CoerceValue(cell)
			tc.Conditions[key] = v
			ordered = append(ordered, conditionEntry{key: key, value: v})
			continue
		}
		if cell == "" {
			continue
		}
		switch field {
		case "id":
			tc.ID = cell
		case "name":
			tc.Name = cell
		case "description":
			tc.Description = cell
		case "actions":
			tc.Actions = splitMulti(cell)
		case "expected":
			tc.ExpectedResults = splitMulti(cell)
		case "priority":
			// Lenient: unrecognized priority strings pass through unchanged.
			tc.Priority = Priority(cell)
		case "tags":
			tc.Tags = splitMulti(cell)
		}
	}

	if tc.ID == "" {
		tc.ID = AutoID(autoIndex)
	}
	if tc.Name == "" {
		tc.Name = synthesizeName(ordered, tc.ExpectedResults)
	}
	return tc
}

// synthesizeName builds a readable name from the first two condition entries
// plus the first expected result when one exists.
func synthesizeName(conditions []conditionEntry, expected []string) string {
	var parts []string
	for i, c := range conditions {
		if i >= 2 {
			break
		}
		parts = append(parts, c.key+": "+c.value.String())
	}
	name := strings.Join(parts, ", ")
	if len(expected) > 0 {
		if name != "" {
			name += " → " + expected[0]
		} else {
			name = expected[0]
		}
	}
	if name == "" {
		name = "Test case"
	}
	return name
}
