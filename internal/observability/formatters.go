// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumepilot/internal/schema"
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

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// stringAt reads a string value from a nested document field, returning
// "" when the path is missing or the value is not a string.
func stringAt(doc schema.Document, keys ...string) string {
	var cur any = map[string]any(doc)
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = obj[key]
	}
	s, _ := cur.(string)
	return s
}

// listAt reads a list value from a document field, returning nil when
// the field is missing or not a list.
func listAt(doc schema.Document, keys ...string) []any {
	var cur any = map[string]any(doc)
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	list, _ := cur.([]any)
	return list
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(doc schema.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", stringAt(doc, "contact", "name")))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", stringAt(doc, "contact", "email")))
	sb.WriteString("\n")

	experience := listAt(doc, "experience")
	if len(experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry, _ := experience[i].(map[string]any)
			title, _ := entry["title"].(string)
			company, _ := entry["company"].(string)
			line := title
			if company != "" {
				line = fmt.Sprintf("%s, %s", title, company)
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	technical := listAt(doc, "skills", "technical")
	if len(technical) > 0 {
		var names []string
		for _, item := range technical {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		skills := strings.Join(names, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}

	sb.WriteString(fmt.Sprintf("Education: %d entries, Projects: %d",
		len(listAt(doc, "education")), len(listAt(doc, "projects"))))

	p.printBox("EXTRACTED PROFILE", sb.String())
}

// PrintResume outputs a human-readable summary of a tailored resume.
func (p *Printer) PrintResume(doc schema.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	summary := stringAt(doc, "summary")
	if summary != "" {
		sb.WriteString("Summary:\n")
		lines := wrapText(summary, boxWidth-8)
		count := min(len(lines), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
		}
		if len(lines) > 3 {
			sb.WriteString("  ...\n")
		}
		sb.WriteString("\n")
	}

	experience := listAt(doc, "experience")
	if len(experience) > 0 {
		bullets := 0
		for _, item := range experience {
			entry, _ := item.(map[string]any)
			if entry == nil {
				continue
			}
			list, _ := entry["bullets"].([]any)
			bullets += len(list)
		}
		sb.WriteString(fmt.Sprintf("Experience: %d roles, %d bullets\n", len(experience), bullets))
	}

	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(listAt(doc, "education"))))
	sb.WriteString(fmt.Sprintf("Projects:   %d entries", len(listAt(doc, "projects"))))

	p.printBox("TAILORED RESUME", sb.String())
}

// PrintWarnings outputs normalization warnings, or a confirmation box
// when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []schema.Warning) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, w := range warnings {
		message := w.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("NORMALIZATION WARNINGS", sb.String())
}

// wrapText splits text into lines of at most width characters, breaking
// on word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
