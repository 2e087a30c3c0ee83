package codegen

import (
	"testing"

	"specforge/internal/steps"
	"specforge/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webSteps(id string, ws ...steps.Web) steps.TestSteps {
	return steps.TestSteps{TestCaseID: id, Type: steps.TypeWeb, Web: ws}
}

func TestGroupCasesByFirstTag(t *testing.T) {
	cases := []table.TestCase{
		{ID: "T1", Name: "one", Tags: []string{"auth", "smoke"}},
		{ID: "T2", Name: "two", Tags: []string{"billing"}},
		{ID: "T3", Name: "three", Tags: []string{"auth"}},
		{ID: "T4", Name: "four"},
	}
	stepSets := []steps.TestSteps{
		webSteps("T1"), webSteps("T2"), webSteps("T3"), webSteps("T4"),
	}

	buckets, warnings := groupCases(cases, stepSets)
	assert.Empty(t, warnings)
	require.Len(t, buckets, 3)

	// First-seen encounter order for buckets and entries alike.
	assert.Equal(t, "auth", buckets[0].name)
	assert.Equal(t, "billing", buckets[1].name)
	assert.Equal(t, "general", buckets[2].name)
	require.Len(t, buckets[0].entries, 2)
	assert.Equal(t, "T1", buckets[0].entries[0].testCase.ID)
	assert.Equal(t, "T3", buckets[0].entries[1].testCase.ID)
}

func TestGroupCasesUnmatchedSkipped(t *testing.T) {
	cases := []table.TestCase{
		{ID: "T1", Name: "matched", Tags: []string{"auth"}},
		{ID: "T2", Name: "orphan"},
	}
	stepSets := []steps.TestSteps{webSteps("T1")}

	buckets, warnings := groupCases(cases, stepSets)
	require.Len(t, buckets, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "T2")
	assert.Contains(t, warnings[0], "no matching steps")
}

func TestGroupCasesExactIDMatch(t *testing.T) {
	cases := []table.TestCase{{ID: "TC001", Name: "exact"}}
	stepSets := []steps.TestSteps{webSteps("tc001")}

	buckets, warnings := groupCases(cases, stepSets)
	assert.Empty(t, buckets)
	require.Len(t, warnings, 1)
}

func TestBucketFilterType(t *testing.T) {
	b := bucket{entries: []entry{
		{testCase: table.TestCase{ID: "W1"}, steps: steps.TestSteps{Type: steps.TypeWeb}},
		{testCase: table.TestCase{ID: "A1"}, steps: steps.TestSteps{Type: steps.TypeAPI}},
	}}
	web := b.filterType(steps.TypeWeb)
	require.Len(t, web, 1)
	assert.Equal(t, "W1", web[0].testCase.ID)
}
