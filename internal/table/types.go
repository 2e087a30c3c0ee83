// Package table implements the decision table normalization engine: it turns
// CSV, JSON, and Markdown test specifications into one canonical in-memory
// model of test cases.
package table

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Format identifies a supported source format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Priority ranks a test case. Unrecognized values pass through unchanged;
// the parser is deliberately lenient here.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValueKind discriminates the condition scalar variants.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
)

// Value is one condition scalar. It is a tagged variant so that "null" and
// "undefined" stay distinct in memory; JSON has no undefined, so both
// serialize to null.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue wraps s as a string condition value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// NumberValue wraps n as a numeric condition value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// BoolValue wraps b as a boolean condition value.
func BoolValue(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// NullValue returns the null condition value.
func NullValue() Value { return Value{Kind: KindNull} }

// UndefinedValue returns the undefined condition value.
func UndefinedValue() Value { return Value{Kind: KindUndefined} }

// String renders the value the way it appears in synthesized test names and
// generated code: numbers without trailing zeros, booleans as true/false.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	default:
		return v.Str
	}
}

// MarshalJSON emits the native JSON scalar for the variant.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBoolean:
		return json.Marshal(v.Bool)
	case KindNull, KindUndefined:
		return []byte("null"), nil
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON accepts any JSON scalar and tags it accordingly.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = NullValue()
	case bool:
		*v = BoolValue(t)
	case float64:
		*v = NumberValue(t)
	case string:
		*v = StringValue(t)
	default:
		return fmt.Errorf("condition value must be a scalar, got %T", raw)
	}
	return nil
}

// TestCase is the canonical per-row representation of one scenario.
type TestCase struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Conditions      map[string]Value `json:"conditions"`
	Actions         []string         `json:"actions"`
	ExpectedResults []string         `json:"expected_results"`
	Priority        Priority         `json:"priority"`
	Tags            []string         `json:"tags"`
}

// Metadata records where a table came from.
type Metadata struct {
	Source   string `json:"source"`
	Format   Format `json:"format"`
	RowCount int    `json:"row_count,omitempty"`
}

// DecisionTable is the canonical model all three source formats converge to.
// It is created once per parse call and never mutated afterward.
type DecisionTable struct {
	Feature     string     `json:"feature"`
	Description string     `json:"description,omitempty"`
	TestCases   []TestCase `json:"test_cases"`
	Metadata    Metadata   `json:"metadata"`
}

// AutoID formats the auto-assigned id for the 1-based index n.
func AutoID(n int) string {
	return fmt.Sprintf("TC%03d", n)
}
