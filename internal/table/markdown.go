package table

import "strings"

// parseMarkdown scans a Markdown document for the tokens the engine cares
// about: the first level-1 heading (feature name), the first paragraph
// (description), and every pipe table (test case rows). It is deliberately a
// minimal line scanner, not a full Markdown parser.
func parseMarkdown(content []byte, source string) (*DecisionTable, error) {
	lines := strings.Split(string(content), "\n")

	var feature, description string
	var cases []TestCase
	autoIndex := 0 // document-wide so ids stay unique across tables

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "":
			i++
		case strings.HasPrefix(line, "# "):
			if feature == "" {
				feature = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			}
			i++
		case strings.HasPrefix(line, "#"):
			// Deeper headings carry no structural meaning here.
			i++
		case strings.HasPrefix(line, "|"):
			table, consumed := scanPipeTable(lines[i:])
			i += consumed
			for _, row := range table.rows {
				autoIndex++
				cases = append(cases, rowToTestCase(table.headers, row, autoIndex))
			}
		default:
			// A run of plain lines is a paragraph; the first one becomes the
			// table description.
			var para []string
			for i < len(lines) {
				l := strings.TrimSpace(lines[i])
				if l == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "|") {
					break
				}
				para = append(para, l)
				i++
			}
			if description == "" {
				description = strings.Join(para, " ")
			}
		}
	}

	if feature == "" {
		feature = DeriveFeatureName(source)
	}
	if cases == nil {
		cases = []TestCase{}
	}

	return &DecisionTable{
		Feature:     feature,
		Description: description,
		TestCases:   cases,
		Metadata: Metadata{
			Source:   source,
			Format:   FormatMarkdown,
			RowCount: len(cases),
		},
	}, nil
}

type pipeTable struct {
	headers []string
	rows    [][]string
}

// scanPipeTable consumes a pipe table starting at lines[0] and returns it
// along with the number of lines consumed. The separator row under the
// header is discarded; rows shorter than the header are padded during
// classification (a missing cell reads as empty).
func scanPipeTable(lines []string) (pipeTable, int) {
	var t pipeTable
	consumed := 0
	for consumed < len(lines) {
		line := strings.TrimSpace(lines[consumed])
		if !strings.HasPrefix(line, "|") {
			break
		}
		consumed++
		cells := splitPipeRow(line)
		if t.headers == nil {
			for i := range cells {
				cells[i] = strings.ToLower(cells[i])
			}
			t.headers = cells
			continue
		}
		if isSeparatorRow(cells) {
			continue
		}
		t.rows = append(t.rows, cells)
	}
	return t, consumed
}

func splitPipeRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if strings.Trim(cell, "-: ") != "" {
			return false
		}
	}
	return true
}
