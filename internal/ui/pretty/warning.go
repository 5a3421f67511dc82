package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
	"github.com/yaklabco/mdlinkcheck/pkg/report"
)

// FormatWarning formats a single check warning for terminal output.
func (s *Styles) FormatWarning(w report.Warning) string {
	location := fmt.Sprintf("%s:%d", s.FilePath.Render(w.Path), w.Row+1)

	return fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(w.Severity),
		s.Message.Render(w.Message),
		s.RuleID.Render("("+w.RuleID+")"),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// FormatRotMatch formats one advisory link-rot match. Rot hits never
// affect the exit code, only the suggestion line.
func (s *Styles) FormatRotMatch(path string, m linkcheck.RotMatch) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("  %s:%d  %s  %s\n",
		s.FilePath.Render(path),
		m.Row+1,
		s.Info.Render("advisory"),
		s.Message.Render(m.Reason),
	))
	if m.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Advisory.Render(m.Suggestion) + "\n")
	}

	return builder.String()
}
