// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the extracted facts.
func (p *Printer) PrintParsedResume(record *types.ParsedResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(record.Phone)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", formatYears(record.ExperienceYears)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(record.Skills)))
	for i, skill := range record.Skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	sb.WriteString(fmt.Sprintf("\nWork history (%d roles):\n", len(record.WorkExperience)))
	for _, entry := range record.WorkExperience {
		sb.WriteString(fmt.Sprintf("  - %s\n", entry.TitleLine))
		if entry.DateRange != nil {
			sb.WriteString(fmt.Sprintf("    %s", entry.DateRange.Raw))
			if entry.DurationYears != nil {
				sb.WriteString(fmt.Sprintf(" (~%d years)", *entry.DurationYears))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nEducation (%d):\n", len(record.Education)))
	for _, line := range record.Education {
		sb.WriteString(fmt.Sprintf("  - %s\n", line))
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs a human-readable summary of an analysis report.
func (p *Printer) PrintReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if report.Summary != "" {
		sb.WriteString(report.Summary)
		sb.WriteString("\n\n")
	}

	writeSection := func(name string, items []string) {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", name, len(items)))
		for i, item := range items {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}
	writeSection("Strengths", report.Strengths)
	writeSection("Weaknesses", report.Weaknesses)
	writeSection("Recommendations", report.Recommendations)

	p.printBox("Analysis Report", strings.TrimRight(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatYears(years int) string {
	if years <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d+ years", years)
}
