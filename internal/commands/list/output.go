package list

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/cargodex/internal/discovery"
	"github.com/indaco/cargodex/internal/printer"
)

// OutputFormat controls how the project listing is displayed.
type OutputFormat string

const (
	// FormatText outputs the numbered human-readable listing.
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

// Formatter handles display of discovered projects.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatCollection formats the discovered projects for display.
func (f *Formatter) FormatCollection(root string, projects *discovery.Collection) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(root, projects)
	case FormatTable:
		return f.formatTable(projects)
	default:
		return f.formatText(projects)
	}
}

// formatText renders the numbered listing, one project per line.
func (f *Formatter) formatText(projects *discovery.Collection) string {
	if projects.IsEmpty() {
		return "No Rust projects found.\n"
	}

	var sb strings.Builder
	for i, p := range projects.All() {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, p.Name, p.DescriptionOrDefault())
	}
	return sb.String()
}

// formatTable renders the projects as a fixed-width table.
func (f *Formatter) formatTable(projects *discovery.Collection) string {
	if projects.IsEmpty() {
		return "No Rust projects found.\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-25s %-40s %s\n", "NAME", "DESCRIPTION", "PATH")
	sb.WriteString(strings.Repeat("-", 90) + "\n")
	for _, p := range projects.All() {
		fmt.Fprintf(&sb, "%-25s %-40s %s\n", p.Name, p.DescriptionOrDefault(), p.Dir)
	}
	fmt.Fprintf(&sb, "\n%s\n", printer.Faint(fmt.Sprintf("%d project(s) found", projects.Len())))
	return sb.String()
}

// formatJSON renders the projects as JSON.
func (f *Formatter) formatJSON(root string, projects *discovery.Collection) string {
	type jsonProject struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Path        string `json:"path"`
		RunPath     string `json:"run_path"`
	}

	output := struct {
		Root     string        `json:"root"`
		Count    int           `json:"count"`
		Projects []jsonProject `json:"projects"`
	}{
		Root:     root,
		Count:    projects.Len(),
		Projects: make([]jsonProject, 0, projects.Len()),
	}

	for _, p := range projects.All() {
		output.Projects = append(output.Projects, jsonProject{
			Name:        p.Name,
			Description: p.Description,
			Path:        p.Dir,
			RunPath:     p.RunPath(),
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data) + "\n"
}

// PrintCollection prints the formatted projects to stdout.
func (f *Formatter) PrintCollection(root string, projects *discovery.Collection) {
	fmt.Print(f.FormatCollection(root, projects))
}
