package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// parseCSV reads a header-plus-rows CSV document. Blank lines are skipped,
// an empty document parses to an empty test case sequence.
func parseCSV(content []byte, source string) (*DecisionTable, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var headers []string
	var cases []TestCase
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv %s: %w", source, err)
		}
		if isBlankRecord(record) {
			continue
		}
		if headers == nil {
			headers = record
			continue
		}
		row++
		cases = append(cases, rowToTestCase(headers, record, row))
	}
	if cases == nil {
		cases = []TestCase{}
	}

	return &DecisionTable{
		Feature:   DeriveFeatureName(source),
		TestCases: cases,
		Metadata: Metadata{
			Source:   source,
			Format:   FormatCSV,
			RowCount: row,
		},
	}, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
