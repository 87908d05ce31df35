// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs section counts for the résumé.
func (p *Printer) PrintSummary(data types.ResumeData) {
	var sb strings.Builder

	name := data.Name
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:        %s\n", name))
	sb.WriteString(fmt.Sprintf("Education:   %d\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Experience:  %d\n", len(data.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", len(data.Projects)))

	for i, proj := range data.Projects {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Projects)-maxItemsToShow))
			break
		}
		label := proj.Name
		if label == "" {
			label = "Untitled Project"
		}
		sb.WriteString(fmt.Sprintf("  • %s (%d tech)\n", label, len(proj.TechStack)))
	}

	for _, cat := range types.SkillCategories {
		sb.WriteString(fmt.Sprintf("%s: %d\n", cat.Label(), len(data.CategorizedSkills.Get(cat))))
	}
	sb.WriteString(fmt.Sprintf("Links:       %d", len(data.Links)))

	p.printBox("RESUME SUMMARY", sb.String())
}

// PrintWarnings outputs advisory warnings, or a success box when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []types.Warning) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w.Message))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}

// PrintSchemaIssues outputs structural findings from the JSON schema check.
func (p *Printer) PrintSchemaIssues(issues []string) {
	if len(issues) == 0 {
		return
	}

	var sb strings.Builder
	for i, issue := range issues {
		sb.WriteString("• " + issue)
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA ISSUES", sb.String())
}
