package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		raw  string
		want Value
	}{
		{"true", BoolValue(true)},
		{"false", BoolValue(false)},
		{"null", NullValue()},
		{"undefined", UndefinedValue()},
		{"42", NumberValue(42)},
		{"99.99", NumberValue(99.99)},
		{"-7", NumberValue(-7)},
		{"  true  ", BoolValue(true)},
		{"42abc", StringValue("42abc")},
		{"TRUE", StringValue("TRUE")},
		{"test@example.com", StringValue("test@example.com")},
		{"", StringValue("")},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceValue(tc.raw))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", NumberValue(42).String())
	assert.Equal(t, "99.99", NumberValue(99.99).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "undefined", UndefinedValue().String())
	assert.Equal(t, "hello", StringValue("hello").String())
}

func TestRowToTestCaseNameSynthesis(t *testing.T) {
	headers := []string{"email", "password", "expected result"}

	t.Run("conditions and expected", func(t *testing.T) {
		tc := rowToTestCase(headers, []string{"a@b.com", "secret", "Dashboard shown"}, 1)
		assert.Equal(t, "email: a@b.com, password: secret → Dashboard shown", tc.Name)
	})

	t.Run("conditions only", func(t *testing.T) {
		tc := rowToTestCase(headers, []string{"a@b.com", "secret", ""}, 1)
		assert.Equal(t, "email: a@b.com, password: secret", tc.Name)
	})

	t.Run("caps at two conditions", func(t *testing.T) {
		h := []string{"one", "two", "three"}
		tc := rowToTestCase(h, []string{"1", "2", "3"}, 1)
		assert.Equal(t, "one: 1, two: 2", tc.Name)
	})
}

func TestRowToTestCaseDefaults(t *testing.T) {
	headers := []string{"name", "amount"}
	tc := rowToTestCase(headers, []string{"Refund", "100"}, 3)

	assert.Equal(t, "TC003", tc.ID)
	assert.Equal(t, PriorityMedium, tc.Priority)
	assert.Empty(t, tc.Actions)
	assert.Empty(t, tc.ExpectedResults)
	assert.Empty(t, tc.Tags)
	assert.Equal(t, NumberValue(100), tc.Conditions["amount"])
}

func TestRowToTestCaseMultiValueSplit(t *testing.T) {
	headers := []string{"id", "actions", "tags"}
	tc := rowToTestCase(headers, []string{"X1", "Open page, Click Login, , Submit", "smoke,auth"}, 1)

	assert.Equal(t, "X1", tc.ID)
	assert.Equal(t, []string{"Open page", "Click Login", "Submit"}, tc.Actions)
	assert.Equal(t, []string{"smoke", "auth"}, tc.Tags)
}

func TestRowToTestCasePriorityPassthrough(t *testing.T) {
	headers := []string{"id", "priority"}
	tc := rowToTestCase(headers, []string{"X1", "critical"}, 1)
	assert.Equal(t, Priority("critical"), tc.Priority)
}
