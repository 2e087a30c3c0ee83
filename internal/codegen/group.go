// Package codegen implements the test code generation engine: it joins
// canonical test cases with caller-supplied step sequences, groups them into
// tag buckets, renders one source module per bucket, and writes the files.
package codegen

import (
	"fmt"

	"specforge/internal/steps"
	"specforge/internal/table"
)

// entry is one test case joined with its step sequence.
type entry struct {
	testCase table.TestCase
	steps    steps.TestSteps
}

// bucket is a named group of entries sharing a first tag. Bucket and entry
// order follow first-seen encounter order.
type bucket struct {
	name    string
	entries []entry
}

// groupCases joins cases with their steps by exact id match and partitions
// them by first tag ("general" when untagged). A case with no matching
// steps is excluded from generation; the exclusion is reported as a warning,
// not an error.
func groupCases(cases []table.TestCase, stepSets []steps.TestSteps) ([]bucket, []string) {
	byID := make(map[string]steps.TestSteps, len(stepSets))
	for _, ss := range stepSets {
		if _, dup := byID[ss.TestCaseID]; !dup {
			byID[ss.TestCaseID] = ss
		}
	}

	var buckets []bucket
	index := map[string]int{}
	var warnings []string
	for _, tc := range cases {
		ss, ok := byID[tc.ID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("test case %s (%s) has no matching steps and was skipped", tc.ID, tc.Name))
			continue
		}
		name := "general"
		if len(tc.Tags) > 0 {
			name = tc.Tags[0]
		}
		i, seen := index[name]
		if !seen {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, bucket{name: name})
		}
		buckets[i].entries = append(buckets[i].entries, entry{testCase: tc, steps: ss})
	}
	return buckets, warnings
}

// filterType returns the bucket entries whose step sequences target t.
func (b bucket) filterType(t steps.Type) []entry {
	var out []entry
	for _, e := range b.entries {
		if e.steps.Type == t {
			out = append(out, e)
		}
	}
	return out
}
