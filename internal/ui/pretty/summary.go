package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/report"
)

const (
	defaultDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats *report.Stats) string {
	if stats.WarningsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	issueWord := "issues"
	if stats.WarningsTotal == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors := stats.WarningsBySeverity[config.SeverityError]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.WarningsBySeverity[config.SeverityWarning]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.WarningsTotal, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.WarningsTotal, issueWord))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	if stats.RotMatches > 0 {
		parts = append(parts, s.Advisory.Render(fmt.Sprintf("%d outdated hosts", stats.RotMatches)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block sized to the
// terminal the writer is attached to.
func (s *Styles) FormatSummary(stats *report.Stats, writer io.Writer) string {
	var builder strings.Builder

	width := dividerWidth(writer)

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", width))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.WarningsTotal)) + "\n")

	if errors := stats.WarningsBySeverity[config.SeverityError]; errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.WarningsBySeverity[config.SeverityWarning]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if stats.RotMatches > 0 {
		builder.WriteString("    Outdated hosts:  " +
			s.Advisory.Render(strconv.Itoa(stats.RotMatches)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.WarningsBySeverity[config.SeverityError] > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case stats.WarningsBySeverity[config.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// dividerWidth returns the terminal width of the writer, capped to keep
// the divider from spanning very wide terminals.
func dividerWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 && width < defaultDividerWidth {
			return width
		}
	}
	return defaultDividerWidth
}
