// Package templates discovers Word templates in a directory and scans them in
// bulk for the ranking and reporting commands.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/document"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/types"
	"github.com/khairulnizam/template-mapper/internal/validation"
)

// DiscoverError wraps a failure to list a template directory.
type DiscoverError struct {
	Dir   string
	Cause error
}

func (e *DiscoverError) Error() string {
	return fmt.Sprintf("failed to list templates in %s: %v", e.Dir, e.Cause)
}

func (e *DiscoverError) Unwrap() error { return e.Cause }

// Discover lists the .docx templates directly inside dir, sorted by file name.
// Extension matching is case-folded. Legacy .doc files are not templates; they
// come back in skipped so commands can tell the operator why a file they can
// see was not scanned. Subdirectories are ignored.
func Discover(dir string) (paths []string, skipped []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &DiscoverError{Dir: dir, Cause: err}
	}

	paths = []string{}
	skipped = []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".docx":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		case ".doc":
			skipped = append(skipped, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	sort.Strings(skipped)
	return paths, skipped, nil
}

// ScanAll discovers and scans every template in dir. A template that fails to
// load becomes an invalid row in the result rather than aborting the batch,
// so one corrupt file never hides the rest of the directory.
func ScanAll(dir string) ([]types.TemplateScan, error) {
	paths, _, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	scans := make([]types.TemplateScan, 0, len(paths))
	for _, path := range paths {
		scans = append(scans, ScanOne(path))
	}
	return scans, nil
}

// ScanOne scans and validates a single template file.
func ScanOne(path string) types.TemplateScan {
	scan := types.TemplateScan{
		Name:         filepath.Base(path),
		Path:         path,
		Placeholders: []string{},
	}

	doc, err := document.Open(path)
	if err != nil {
		scan.Errors = []string{fmt.Sprintf("Validation failed: %v", err)}
		return scan
	}

	scan.Placeholders = scanning.Scan(doc)
	report := validation.CheckDocument(doc)
	scan.Valid = report.Valid
	scan.Errors = report.Errors
	scan.Warnings = report.Warnings
	return scan
}
