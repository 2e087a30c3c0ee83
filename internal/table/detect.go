package table

import (
	"path/filepath"
	"strings"
)

// DetectFormat maps a file extension to a source format. Anything outside
// .csv/.json/.md/.markdown fails with UnsupportedFormatError.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}
