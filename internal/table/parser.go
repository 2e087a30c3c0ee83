package table

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Parser is the front door of the normalization engine. It holds no state
// between calls; every parse takes a fresh snapshot of its input and returns
// an independent table.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a parser logging through the given logger. A nil logger
// disables diagnostics.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// ParseFile detects the format from the file extension, reads the file, and
// parses it. Failures are fatal for the call; no partial table is returned.
func (p *Parser) ParseFile(path string) (*DecisionTable, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading decision table %s: %w", path, err)
	}
	return p.Parse(content, format, path)
}

// Parse converts raw document content of a known format into the canonical
// model. source is recorded in the table metadata and used for feature name
// derivation when the document names no feature.
func (p *Parser) Parse(content []byte, format Format, source string) (*DecisionTable, error) {
	var tbl *DecisionTable
	var err error
	switch format {
	case FormatCSV:
		tbl, err = parseCSV(content, source)
	case FormatJSON:
		tbl, err = parseJSON(content, source)
	case FormatMarkdown:
		tbl, err = parseMarkdown(content, source)
	default:
		return nil, &UnsupportedFormatError{Path: source, Ext: string(format)}
	}
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed decision table",
		zap.String("source", source),
		zap.String("format", string(format)),
		zap.String("feature", tbl.Feature),
		zap.Int("test_cases", len(tbl.TestCases)))
	return tbl, nil
}
