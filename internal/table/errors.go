package table

import "fmt"

// UnsupportedFormatError reports a file extension that maps to no known
// format. Fatal for the parse call that hit it.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported decision table format %q for %s (expected .csv, .json, .md or .markdown)", e.Ext, e.Path)
}

// InvalidFormatError reports a structurally unrecognized document, currently
// only raised for JSON input that matches neither accepted shape.
type InvalidFormatError struct {
	Path   string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid decision table document %s: %s", e.Path, e.Reason)
}
