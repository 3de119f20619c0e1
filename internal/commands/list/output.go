package list

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/kopen/internal/printer"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Formatter handles display of search results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the result for display.
func (f *Formatter) FormatResult(result *Result) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result)
	default:
		return f.formatText(result)
	}
}

// formatText formats the result as human-readable text.
func (f *Formatter) formatText(result *Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("KiCad Projects"))
	sb.WriteString(" ")
	sb.WriteString(printer.Faint(result.Root))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	for _, p := range result.Projects {
		status := printer.Success("✓")
		fmt.Fprintf(&sb, "  %s %s\n", status, printer.Project(result.Rel(p)))
	}

	if len(result.Projects) > 0 {
		sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
		sb.WriteString("\n")
	}
	sb.WriteString(f.formatSummary(result))
	sb.WriteString("\n")

	return sb.String()
}

// formatTable formats the result as a table.
func (f *Formatter) formatTable(result *Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-24s %-50s\n", "NAME", "PATH")
	sb.WriteString(strings.Repeat("-", 75) + "\n")
	for _, p := range result.Projects {
		fmt.Fprintf(&sb, "%-24s %-50s\n", Name(p), result.Rel(p))
	}
	sb.WriteString("\n")
	sb.WriteString(f.formatSummary(result))
	sb.WriteString("\n")

	return sb.String()
}

// formatJSON formats the result as indented JSON.
func (f *Formatter) formatJSON(result *Result) string {
	type jsonProject struct {
		Name string `json:"name"`
		Path string `json:"path"`
		Dir  string `json:"dir"`
	}

	data := []byte(`{}`)
	var err error

	data, err = sjson.SetBytes(data, "root", result.Root)
	if err == nil {
		data, err = sjson.SetBytes(data, "count", len(result.Projects))
	}
	if err == nil {
		data, err = sjson.SetRawBytes(data, "projects", []byte(`[]`))
	}
	for _, p := range result.Projects {
		if err != nil {
			break
		}
		data, err = sjson.SetBytes(data, "projects.-1", jsonProject{
			Name: Name(p),
			Path: p,
			Dir:  filepath.Dir(p),
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(pretty.Pretty(data))
}

// formatSummary returns a summary line for the result.
func (f *Formatter) formatSummary(result *Result) string {
	switch n := len(result.Projects); n {
	case 0:
		return printer.Faint("No KiCad projects found")
	case 1:
		return "Found: " + printer.Bold("1 project")
	default:
		return "Found: " + printer.Bold(fmt.Sprintf("%d projects", n))
	}
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(result *Result) {
	fmt.Print(f.FormatResult(result))
}
