// Package document loads Word templates and exposes their text containers
// (body paragraphs, table cells, headers, footers) for scanning.
package document

import "fmt"

// LoadError represents a template file that exists but cannot be opened or
// parsed as a Word document.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load document %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to load document %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError represents a template with an extension the loader
// does not handle, such as the legacy .doc binary format.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported template format %q for %s (only .docx is supported)", e.Ext, e.Path)
}
