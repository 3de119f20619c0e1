package list

import (
	"path/filepath"
	"slices"
	"strings"
)

// OutputFormat controls how search results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Result holds the projects found below Root, sorted by path.
type Result struct {
	Root     string
	Projects []string
}

// NewResult creates a Result with a sorted copy of projects.
func NewResult(root string, projects []string) *Result {
	sorted := slices.Clone(projects)
	slices.Sort(sorted)
	return &Result{Root: root, Projects: sorted}
}

// Rel returns path relative to the result root, or path itself when it is
// not below the root.
func (r *Result) Rel(path string) string {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// Name returns the project name: the file name without its extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
